package writer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestSheetName_Truncation(t *testing.T) {
	long := strings.Repeat("x", 40)
	if got := sheetName(long); len([]rune(got)) != 31 {
		t.Errorf("sheetName length = %d, want 31", len([]rune(got)))
	}
	if got := sheetName("Sales"); got != "Sales" {
		t.Errorf("short name changed to %q", got)
	}
}

func TestExcel_AutoWidthClamped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "width.xlsx")
	wb := Workbook{Sheets: []SheetSpec{
		{Name: "Data", Data: [][]any{
			{"ab", strings.Repeat("z", 80)},
		}},
	}}
	if err := New(nil).Excel(wb, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	// Short content floors at 10, long content caps at 50.
	wA, err := f.GetColWidth("Data", "A")
	if err != nil {
		t.Fatal(err)
	}
	if wA != 10 {
		t.Errorf("column A width = %v, want 10", wA)
	}
	wB, err := f.GetColWidth("Data", "B")
	if err != nil {
		t.Fatal(err)
	}
	if wB != 50 {
		t.Errorf("column B width = %v, want 50", wB)
	}
}

func TestExcel_CellTypesPreserved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.xlsx")
	wb := Workbook{Sheets: []SheetSpec{
		{Name: "Data", Formatting: &Formatting{}, Data: [][]any{
			{"label", 42, 1.5, true, nil},
		}},
	}}
	if err := New(nil).Excel(wb, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	for addr, want := range map[string]string{
		"A1": "label",
		"B1": "42",
		"C1": "1.5",
		"D1": "TRUE",
	} {
		got, err := f.GetCellValue("Data", addr)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("cell %s = %q, want %q", addr, got, want)
		}
	}
}

func TestExcel_SanitizesStringCells(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sanitized.xlsx")
	wb := Workbook{Sheets: []SheetSpec{
		{Name: "Data", Data: [][]any{{"bad\x00byte\x01s"}}},
	}}
	if err := New(nil).Excel(wb, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Data", "A1")
	if err != nil {
		t.Fatal(err)
	}
	if got != "badbytes" {
		t.Errorf("cell = %q, want control characters stripped", got)
	}
}
