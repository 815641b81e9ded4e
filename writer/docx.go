package writer

import (
	"fmt"
	"strings"
	"time"
)

// Word generates a .docx file from validated document input. Sections
// compose in fixed order: heading, paragraphs, bullets, tables.
func (w *Writer) Word(data WordDocument, outputPath string) error {
	start := time.Now()
	if err := data.Validate(); err != nil {
		return err
	}

	var body strings.Builder
	if data.Title != "" {
		writeDocxTitle(&body, sanitizeText(data.Title))
	}
	for _, section := range data.Sections {
		w.writeDocxSection(&body, section)
	}

	document := docxDocumentOpen + body.String() + docxDocumentClose

	parts := []zipPart{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRootRels},
		{"word/document.xml", document},
		{"word/styles.xml", docxStyles},
		{"word/_rels/document.xml.rels", docxDocumentRels},
	}
	if err := w.savePackage(outputPath, parts); err != nil {
		return err
	}

	w.logger.Info("word file created",
		"path", outputPath,
		"sections", len(data.Sections),
		"duration", time.Since(start))
	return nil
}

func (w *Writer) writeDocxSection(body *strings.Builder, section WordSection) {
	if section.Heading != "" {
		writeDocxParagraph(body, sanitizeText(section.Heading),
			fmt.Sprintf("Heading%d", section.HeadingLevel()), false)
	}
	for _, text := range section.Paragraphs {
		if text != "" {
			writeDocxParagraph(body, sanitizeText(text), "", false)
		}
	}
	for _, item := range section.Bullets {
		if item != "" {
			writeDocxParagraph(body, sanitizeText(item), "ListBullet", false)
		}
	}
	for _, table := range section.Tables {
		w.writeDocxTable(body, table)
	}
}

func writeDocxTitle(body *strings.Builder, title string) {
	body.WriteString(`<w:p><w:pPr><w:pStyle w:val="Title"/><w:jc w:val="center"/></w:pPr>`)
	body.WriteString(`<w:r><w:t xml:space="preserve">`)
	body.WriteString(xmlEscape(title))
	body.WriteString(`</w:t></w:r></w:p>`)
}

func writeDocxParagraph(body *strings.Builder, text, style string, center bool) {
	body.WriteString(`<w:p>`)
	if style != "" || center {
		body.WriteString(`<w:pPr>`)
		if style != "" {
			fmt.Fprintf(body, `<w:pStyle w:val="%s"/>`, style)
		}
		if center {
			body.WriteString(`<w:jc w:val="center"/>`)
		}
		body.WriteString(`</w:pPr>`)
	}
	body.WriteString(`<w:r><w:t xml:space="preserve">`)
	body.WriteString(xmlEscape(text))
	body.WriteString(`</w:t></w:r></w:p>`)
}

// writeDocxTable declares the column count from the first row only and
// writes exactly that many cells per row: short rows are padded with
// empty cells, surplus cells are dropped.
func (w *Writer) writeDocxTable(body *strings.Builder, table TableData) {
	if len(table.Data) == 0 {
		w.logger.Warn("table data is empty, skipping table")
		return
	}
	columns := len(table.Data[0])
	if columns == 0 {
		columns = 1
	}

	body.WriteString(`<w:tbl><w:tblPr><w:tblStyle w:val="LightGridAccent1"/><w:tblW w:w="0" w:type="auto"/></w:tblPr><w:tblGrid>`)
	for i := 0; i < columns; i++ {
		body.WriteString(`<w:gridCol/>`)
	}
	body.WriteString(`</w:tblGrid>`)

	for _, row := range table.Data {
		body.WriteString(`<w:tr>`)
		for c := 0; c < columns; c++ {
			value := ""
			if c < len(row) {
				value = sanitizeText(cellString(row[c]))
			}
			body.WriteString(`<w:tc><w:tcPr/><w:p><w:r><w:t xml:space="preserve">`)
			body.WriteString(xmlEscape(value))
			body.WriteString(`</w:t></w:r></w:p></w:tc>`)
		}
		body.WriteString(`</w:tr>`)
	}
	body.WriteString(`</w:tbl>`)
}

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/><Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/></Types>`

const docxRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

const docxDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/></Relationships>`

const docxDocumentOpen = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

const docxDocumentClose = `<w:sectPr/></w:body></w:document>`

const docxStyles = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style><w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:basedOn w:val="Normal"/><w:rPr><w:sz w:val="56"/></w:rPr></w:style><w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/><w:rPr><w:b/><w:sz w:val="32"/></w:rPr></w:style><w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:basedOn w:val="Normal"/><w:rPr><w:b/><w:sz w:val="28"/></w:rPr></w:style><w:style w:type="paragraph" w:styleId="Heading3"><w:name w:val="heading 3"/><w:basedOn w:val="Normal"/><w:rPr><w:b/><w:sz w:val="24"/></w:rPr></w:style><w:style w:type="paragraph" w:styleId="ListBullet"><w:name w:val="List Bullet"/><w:basedOn w:val="Normal"/></w:style><w:style w:type="table" w:styleId="LightGridAccent1"><w:name w:val="Light Grid Accent 1"/></w:style></w:styles>`
