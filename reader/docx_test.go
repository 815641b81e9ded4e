package reader

import (
	"path/filepath"
	"testing"

	"github.com/hazyhaar/officepipe/model"
	"github.com/hazyhaar/officepipe/oferr"
	"github.com/hazyhaar/officepipe/writer"
)

func intPtr(n int) *int { return &n }

func TestHeadingLevel(t *testing.T) {
	tests := []struct {
		style string
		want  int
	}{
		{"Heading 1", 1},
		{"Heading 3", 3},
		{"Heading3", 3},
		{"Heading 9", 9},
		{"Heading 10", 0},
		{"Heading X", 0},
		{"Heading", 0},
		{"Normal", 0},
		{"Title", 0},
		{"ListBullet", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := headingLevel(tt.style); got != tt.want {
			t.Errorf("headingLevel(%q) = %d, want %d", tt.style, got, tt.want)
		}
	}
}

func TestWord_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.docx")

	doc := writer.WordDocument{
		Title: "Quarterly Report",
		Sections: []writer.WordSection{
			{
				Heading:    "Results",
				Level:      intPtr(2),
				Paragraphs: []string{"Revenue grew.", "Costs fell."},
				Bullets:    []string{"item one", "item two"},
				Tables: []writer.TableData{
					{Data: [][]any{{"Region", "Total"}, {"North", 42}}},
				},
			},
		},
	}
	if err := writer.New(nil).Word(doc, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	content, err := New(Limits{}, nil).Word(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	body := content.Content.(*model.DocContent)

	// Title + heading + 2 paragraphs + 2 bullets.
	if len(body.Paragraphs) != 6 {
		t.Fatalf("paragraphs = %d, want 6", len(body.Paragraphs))
	}
	if body.Paragraphs[0].Text != "Quarterly Report" || body.Paragraphs[0].Style != "Title" {
		t.Errorf("title paragraph = %+v", body.Paragraphs[0])
	}
	if body.Paragraphs[1].Style != "Heading2" || body.Paragraphs[1].Level != 2 {
		t.Errorf("heading paragraph = %+v", body.Paragraphs[1])
	}
	if body.Paragraphs[2].Style != "Normal" || body.Paragraphs[2].Level != 0 {
		t.Errorf("body paragraph = %+v", body.Paragraphs[2])
	}
	if body.Paragraphs[4].Style != "ListBullet" {
		t.Errorf("bullet paragraph = %+v", body.Paragraphs[4])
	}

	if len(body.Tables) != 1 {
		t.Fatalf("tables = %d, want 1", len(body.Tables))
	}
	table := body.Tables[0]
	if table.Rows != 2 || table.Columns != 2 {
		t.Errorf("table shape = %dx%d, want 2x2", table.Rows, table.Columns)
	}
	if table.Data[1][1] != "42" {
		t.Errorf("cell = %q, want \"42\"", table.Data[1][1])
	}

	if content.Metadata["paragraph_count"] != 6 {
		t.Errorf("paragraph_count = %v, want 6", content.Metadata["paragraph_count"])
	}
}

func TestWord_RaggedTableRectangular(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ragged.docx")

	doc := writer.WordDocument{
		Sections: []writer.WordSection{
			{Tables: []writer.TableData{
				{Data: [][]any{
					{"a", "b", "c"},
					{"d"},
					{"e", "f", "g", "h"},
				}},
			}},
		},
	}
	if err := writer.New(nil).Word(doc, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	content, err := New(Limits{}, nil).Word(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	body := content.Content.(*model.DocContent)
	if len(body.Tables) != 1 {
		t.Fatalf("tables = %d, want 1", len(body.Tables))
	}
	table := body.Tables[0]
	if table.Columns != 3 {
		t.Fatalf("columns = %d, want 3 (from first row)", table.Columns)
	}
	for i, row := range table.Data {
		if len(row) != 3 {
			t.Errorf("row %d has %d cells, want 3", i, len(row))
		}
	}
	if table.Data[1][1] != "" || table.Data[1][2] != "" {
		t.Errorf("short row not padded: %v", table.Data[1])
	}
	if table.Data[2][2] != "g" {
		t.Errorf("long row not truncated at column count: %v", table.Data[2])
	}
}

func TestWord_FileNotFound(t *testing.T) {
	_, err := New(Limits{}, nil).Word(filepath.Join(t.TempDir(), "missing.docx"))
	if !oferr.IsKind(err, oferr.FileNotFound) {
		t.Fatalf("error kind = %v, want FileNotFound", oferr.KindOf(err))
	}
}

func TestWord_CorruptedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.docx")
	writeFile(t, path, []byte("this is not a zip archive"))

	_, err := New(Limits{}, nil).Word(path)
	if !oferr.IsKind(err, oferr.CorruptedFile) {
		t.Fatalf("error kind = %v, want CorruptedFile", oferr.KindOf(err))
	}
}

func TestWord_FileSizeLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.docx")
	writeFile(t, path, make([]byte, 2048))

	_, err := New(Limits{MaxFileSize: 1024}, nil).Word(path)
	if !oferr.IsKind(err, oferr.CorruptedFile) {
		t.Fatalf("error kind = %v, want CorruptedFile", oferr.KindOf(err))
	}
}
