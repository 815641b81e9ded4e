package reader

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/hazyhaar/officepipe/model"
)

// extractXlsx parses a .xlsx workbook. Sheets beyond maxSheets are
// truncated with a warning; rows are padded to the sheet's row width so
// every row has the same shape. Formula cells keep the "="-prefixed
// formula text in data and record the raw formula at their address.
func extractXlsx(path string, maxSheets int) (*model.WorkbookContent, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, corrupted(path, err)
	}
	defer f.Close()

	names := f.GetSheetList()
	total := len(names)
	process := names
	warning := ""
	if total > maxSheets {
		process = names[:maxSheets]
		warning = fmt.Sprintf("file contains %d sheets; only the first %d were processed", total, maxSheets)
	}

	sheets := make([]model.Sheet, 0, len(process))
	for _, name := range process {
		sheet, err := extractSheet(f, name)
		if err != nil {
			return nil, corrupted(path, err)
		}
		sheets = append(sheets, sheet)
	}

	return &model.WorkbookContent{Sheets: sheets, Warning: warning}, nil
}

func extractSheet(f *excelize.File, name string) (model.Sheet, error) {
	sheet := model.Sheet{
		Name:     name,
		Data:     [][]string{},
		Formulas: map[string]string{},
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return sheet, fmt.Errorf("read sheet %q: %w", name, err)
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	for r, row := range rows {
		cells := make([]string, width)
		for c := 0; c < width; c++ {
			value := ""
			if c < len(row) {
				value = row[c]
			}
			addr := columnLetter(c+1) + strconv.Itoa(r+1)
			formula, err := f.GetCellFormula(name, addr)
			if err != nil {
				return sheet, fmt.Errorf("read formula at %s!%s: %w", name, addr, err)
			}
			if formula != "" {
				sheet.Formulas[addr] = formula
				value = "=" + formula
			}
			cells[c] = value
		}
		sheet.Data = append(sheet.Data, cells)
	}

	return sheet, nil
}

// columnLetter encodes a 1-based column index as its base-26 letter form:
// 1 -> A, 26 -> Z, 27 -> AA.
func columnLetter(col int) string {
	var buf []byte
	for col > 0 {
		col--
		buf = append([]byte{byte('A' + col%26)}, buf...)
		col /= 26
	}
	return string(buf)
}
