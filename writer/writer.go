// Package writer generates office documents (pptx, docx, xlsx) from
// validated structured input. Validation always precedes construction, so
// a rejected input never leaves a partially-written file behind.
package writer

import (
	"archive/zip"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Writer runs the local generation normalizers.
type Writer struct {
	logger *slog.Logger
}

// New creates a Writer.
func New(logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{logger: logger}
}

// zipPart is one named entry of an OPC package.
type zipPart struct {
	name string
	data string
}

// savePackage writes an OPC zip to outputPath, creating the parent
// directory when needed.
func (w *Writer) savePackage(outputPath string, parts []zipPart) error {
	if err := ensureDir(outputPath); err != nil {
		return err
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return saveError(outputPath, err)
	}
	zw := zip.NewWriter(f)
	for _, part := range parts {
		pw, err := zw.Create(part.name)
		if err != nil {
			zw.Close()
			f.Close()
			return fmt.Errorf("write part %s: %w", part.name, err)
		}
		if _, err := pw.Write([]byte(part.data)); err != nil {
			zw.Close()
			f.Close()
			return fmt.Errorf("write part %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalize %s: %w", outputPath, err)
	}
	if err := f.Close(); err != nil {
		return saveError(outputPath, err)
	}
	return nil
}

func ensureDir(outputPath string) error {
	dir := filepath.Dir(outputPath)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return saveError(outputPath, err)
	}
	return nil
}

// saveError maps OS-level save failures, surfacing permission problems
// distinctly from everything else.
func saveError(outputPath string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return permissionError(outputPath, err)
	}
	return fmt.Errorf("save %s: %w", outputPath, err)
}
