package reader

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hazyhaar/officepipe/model"
)

// extractDocx parses a .docx file by walking word/document.xml from the
// ZIP archive. Paragraphs and tables are collected as separate flat lists;
// whitespace-only paragraphs are dropped.
func extractDocx(path string) (*model.DocContent, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, corrupted(path, err)
	}
	defer r.Close()

	rc, err := openZipPart(&r.Reader, "word/document.xml")
	if err != nil {
		return nil, corrupted(path, err)
	}
	defer rc.Close()

	content, err := walkDocumentXML(rc)
	if err != nil {
		return nil, corrupted(path, err)
	}
	return content, nil
}

func openZipPart(r *zip.Reader, name string) (io.ReadCloser, error) {
	for _, f := range r.File {
		if f.Name == name {
			return f.Open()
		}
	}
	return nil, fmt.Errorf("%s not found in archive", name)
}

// walkDocumentXML streams the WordprocessingML body. Paragraphs inside
// table cells belong to the cell, not to the paragraph list.
func walkDocumentXML(rc io.Reader) (*model.DocContent, error) {
	decoder := xml.NewDecoder(rc)

	content := &model.DocContent{
		Paragraphs: []model.Paragraph{},
		Tables:     []model.Table{},
	}

	var (
		inParagraph bool
		paraStyle   string
		paraText    strings.Builder

		tblDepth int
		columns  int
		rows     [][]string
		cellText strings.Builder
		rowCells []string
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tblDepth++
				if tblDepth == 1 {
					columns = 0
					rows = nil
				}
			case "gridCol":
				if tblDepth == 1 {
					columns++
				}
			case "tr":
				if tblDepth == 1 {
					rowCells = nil
				}
			case "tc":
				if tblDepth == 1 {
					cellText.Reset()
				}
			case "p":
				if tblDepth == 0 {
					inParagraph = true
					paraStyle = ""
					paraText.Reset()
				}
			case "pStyle":
				if inParagraph {
					for _, attr := range t.Attr {
						if attr.Name.Local == "val" {
							paraStyle = attr.Value
						}
					}
				}
			}

		case xml.CharData:
			if tblDepth > 0 {
				cellText.Write(t)
			} else if inParagraph {
				paraText.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if tblDepth == 0 && inParagraph {
					inParagraph = false
					text := strings.TrimSpace(paraText.String())
					if text == "" {
						continue
					}
					style := paraStyle
					if style == "" {
						style = "Normal"
					}
					content.Paragraphs = append(content.Paragraphs, model.Paragraph{
						Text:  text,
						Style: style,
						Level: headingLevel(style),
					})
				}
			case "tc":
				if tblDepth == 1 {
					rowCells = append(rowCells, strings.TrimSpace(cellText.String()))
				}
			case "tr":
				if tblDepth == 1 {
					rows = append(rows, rowCells)
				}
			case "tbl":
				tblDepth--
				if tblDepth == 0 {
					content.Tables = append(content.Tables, buildTable(rows, columns))
				}
			}
		}
	}

	return content, nil
}

// buildTable shapes raw rows into a rectangular table: exactly columns
// cells per row, short rows padded with empty strings.
func buildTable(rows [][]string, columns int) model.Table {
	if columns == 0 && len(rows) > 0 {
		columns = len(rows[0])
	}
	data := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, columns)
		for c := 0; c < columns && c < len(row); c++ {
			cells[c] = row[c]
		}
		data[i] = cells
	}
	return model.Table{Rows: len(rows), Columns: columns, Data: data}
}

// headingLevel derives the heading depth from a paragraph style name.
// "Heading 3" and "Heading3" both yield 3; anything not matching the
// Heading-N pattern is body text (level 0).
func headingLevel(style string) int {
	rest, ok := strings.CutPrefix(style, "Heading")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil || n < 1 || n > 9 {
		return 0
	}
	return n
}
