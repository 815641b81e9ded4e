// Package reader extracts structured content from local office documents
// (pptx, docx, xlsx) into the canonical content model. Each format has one
// normalizer behind the same (path, limits) -> DocumentContent shape;
// extraction is all or nothing, with no partial-content recovery.
package reader

import (
	"log/slog"
	"time"

	"github.com/hazyhaar/officepipe/model"
)

// Reader runs the local extraction normalizers.
type Reader struct {
	limits Limits
	logger *slog.Logger
}

// New creates a Reader with the given limits.
func New(limits Limits, logger *slog.Logger) *Reader {
	limits.defaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{limits: limits, logger: logger}
}

// PowerPoint extracts a .pptx file.
func (r *Reader) PowerPoint(path string) (*model.DocumentContent, error) {
	start := time.Now()
	if err := checkFile(path, r.limits.MaxFileSize); err != nil {
		return nil, err
	}
	content, err := extractPptx(path, r.limits.MaxSlides)
	if err != nil {
		r.logger.Error("powerpoint extraction failed", "path", path, "error", err)
		return nil, err
	}
	r.logger.Info("powerpoint file read",
		"path", path,
		"slides", len(content.Slides),
		"duration", time.Since(start))
	return &model.DocumentContent{
		FormatType: model.FormatPowerPoint,
		Metadata: map[string]any{
			"slide_count": len(content.Slides),
			"file_path":   path,
		},
		Content: content,
	}, nil
}

// Word extracts a .docx file.
func (r *Reader) Word(path string) (*model.DocumentContent, error) {
	start := time.Now()
	if err := checkFile(path, r.limits.MaxFileSize); err != nil {
		return nil, err
	}
	content, err := extractDocx(path)
	if err != nil {
		r.logger.Error("word extraction failed", "path", path, "error", err)
		return nil, err
	}
	r.logger.Info("word file read",
		"path", path,
		"paragraphs", len(content.Paragraphs),
		"tables", len(content.Tables),
		"duration", time.Since(start))
	return &model.DocumentContent{
		FormatType: model.FormatWord,
		Metadata: map[string]any{
			"paragraph_count": len(content.Paragraphs),
			"table_count":     len(content.Tables),
			"file_path":       path,
		},
		Content: content,
	}, nil
}

// Excel extracts a .xlsx file.
func (r *Reader) Excel(path string) (*model.DocumentContent, error) {
	start := time.Now()
	if err := checkFile(path, r.limits.MaxFileSize); err != nil {
		return nil, err
	}
	content, err := extractXlsx(path, r.limits.MaxSheets)
	if err != nil {
		r.logger.Error("excel extraction failed", "path", path, "error", err)
		return nil, err
	}
	r.logger.Info("excel file read",
		"path", path,
		"sheets", len(content.Sheets),
		"duration", time.Since(start))
	return &model.DocumentContent{
		FormatType: model.FormatExcel,
		Metadata: map[string]any{
			"sheet_count": len(content.Sheets),
			"file_path":   path,
		},
		Content: content,
	}, nil
}
