package model

import "testing"

func TestReadResultConstructors(t *testing.T) {
	content := &DocumentContent{FormatType: FormatWord, Content: "x"}
	ok := ReadOK("/tmp/a.docx", content)
	if !ok.Success || ok.Content != content || ok.FilePath != "/tmp/a.docx" {
		t.Errorf("ReadOK = %+v", ok)
	}

	// The identifier survives failure so the caller can report what it
	// tried to read.
	failed := ReadFailed("/tmp/a.docx", "boom")
	if failed.Success || failed.Error != "boom" || failed.FilePath != "/tmp/a.docx" {
		t.Errorf("ReadFailed = %+v", failed)
	}
}

func TestWriteResultConstructors(t *testing.T) {
	if r := WroteFile("/out/a.xlsx"); !r.Success || r.OutputPath != "/out/a.xlsx" || r.URL != "" {
		t.Errorf("WroteFile = %+v", r)
	}
	if r := WroteURL("https://example.com/d/1"); !r.Success || r.URL != "https://example.com/d/1" || r.OutputPath != "" {
		t.Errorf("WroteURL = %+v", r)
	}
	if r := WriteFailed("boom"); r.Success || r.Error != "boom" {
		t.Errorf("WriteFailed = %+v", r)
	}
}
