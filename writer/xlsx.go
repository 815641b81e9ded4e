package writer

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	minColumnWidth = 10.0
	maxColumnWidth = 50.0
)

// Excel generates a .xlsx workbook from validated input. Sheet names are
// truncated to the 31-character limit; scalar cell values keep their
// type. Header styling and auto width run independently per sheet and
// are on unless switched off.
func (w *Writer) Excel(data Workbook, outputPath string) error {
	start := time.Now()
	if err := data.Validate(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, spec := range data.Sheets {
		name := sheetName(spec.Name)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("rename sheet %q: %w", name, err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return fmt.Errorf("create sheet %q: %w", name, err)
			}
		}
		if err := w.fillSheet(f, name, spec); err != nil {
			return err
		}
	}

	if err := ensureDir(outputPath); err != nil {
		return err
	}
	if err := f.SaveAs(outputPath); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return permissionError(outputPath, err)
		}
		return fmt.Errorf("save %s: %w", outputPath, err)
	}

	w.logger.Info("excel file created",
		"path", outputPath,
		"sheets", len(data.Sheets),
		"duration", time.Since(start))
	return nil
}

func (w *Writer) fillSheet(f *excelize.File, name string, spec SheetSpec) error {
	for r, row := range spec.Data {
		for c, value := range row {
			addr, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("cell address (%d,%d): %w", c+1, r+1, err)
			}
			if s, ok := value.(string); ok {
				value = sanitizeText(s)
			}
			if err := f.SetCellValue(name, addr, value); err != nil {
				return fmt.Errorf("set cell %s!%s: %w", name, addr, err)
			}
		}
	}

	if spec.Formatting.HeaderRowEnabled() && len(spec.Data) > 0 && len(spec.Data[0]) > 0 {
		if err := w.styleHeaderRow(f, name, len(spec.Data[0])); err != nil {
			return err
		}
	}
	if spec.Formatting.AutoWidthEnabled() {
		if err := w.autoWidth(f, name, spec.Data); err != nil {
			return err
		}
	}
	return nil
}

// styleHeaderRow applies bold white text on a solid blue fill, centered,
// to row 1.
func (w *Writer) styleHeaderRow(f *excelize.File, name string, columns int) error {
	styleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(columns, 1)
	if err != nil {
		return fmt.Errorf("header range: %w", err)
	}
	if err := f.SetCellStyle(name, "A1", last, styleID); err != nil {
		return fmt.Errorf("apply header style on %s: %w", name, err)
	}
	return nil
}

// autoWidth sizes each column to its longest rendered value plus padding,
// clamped to [10, 50].
func (w *Writer) autoWidth(f *excelize.File, name string, data [][]any) error {
	widths := map[int]int{}
	for _, row := range data {
		for c, value := range row {
			if n := len(cellString(value)); n > widths[c] {
				widths[c] = n
			}
		}
	}
	for c, n := range widths {
		width := float64(n) + 2
		if width < minColumnWidth {
			width = minColumnWidth
		}
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return fmt.Errorf("column name %d: %w", c+1, err)
		}
		if err := f.SetColWidth(name, col, col, width); err != nil {
			return fmt.Errorf("set width of %s!%s: %w", name, col, err)
		}
	}
	return nil
}

// sheetName enforces the xlsx 31-character sheet name limit.
func sheetName(name string) string {
	runes := []rune(name)
	if len(runes) > 31 {
		return string(runes[:31])
	}
	return name
}
