package gworkspace

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hazyhaar/officepipe/model"
)

var headingLevelRe = regexp.MustCompile(`HEADING_(\d+)`)

// Spreadsheet reads a Google spreadsheet: one metadata call for the sheet
// list, then one values call per sheet.
func (c *Client) Spreadsheet(ctx context.Context, fileIDOrURL string) (*model.DocumentContent, error) {
	fileID := ExtractFileID(fileIDOrURL)
	start := time.Now()

	var meta spreadsheetResponse
	if err := c.call(ctx, "sheets.get", "GET",
		fmt.Sprintf("%s/spreadsheets/%s", c.sheetsBaseURL, fileID), nil, &meta); err != nil {
		return nil, mapAPIError("google spreadsheet", fileID, err)
	}

	sheets := make([]model.CloudSheet, 0, len(meta.Sheets))
	for _, s := range meta.Sheets {
		var values valuesResponse
		if err := c.call(ctx, "sheets.values.get", "GET",
			fmt.Sprintf("%s/spreadsheets/%s/values/%s", c.sheetsBaseURL, fileID, url.PathEscape(s.Properties.Title)),
			nil, &values); err != nil {
			return nil, mapAPIError("google spreadsheet", fileID, err)
		}
		data := values.Values
		if data == nil {
			data = [][]any{}
		}
		columns := 0
		for _, row := range data {
			if len(row) > columns {
				columns = len(row)
			}
		}
		sheets = append(sheets, model.CloudSheet{
			Name:        s.Properties.Title,
			Data:        data,
			RowCount:    len(data),
			ColumnCount: columns,
		})
	}

	c.logger.Info("google spreadsheet read",
		"file_id", fileID,
		"title", meta.Properties.Title,
		"sheets", len(sheets),
		"duration", time.Since(start))

	return &model.DocumentContent{
		FormatType: model.FormatGoogleSheets,
		Metadata: map[string]any{
			"title":       meta.Properties.Title,
			"sheet_count": len(sheets),
			"file_id":     fileID,
		},
		Content: &model.SheetsContent{Title: meta.Properties.Title, Sheets: sheets},
	}, nil
}

// Document reads a Google document into a flat element list of headings,
// paragraphs and tables.
func (c *Client) Document(ctx context.Context, fileIDOrURL string) (*model.DocumentContent, error) {
	fileID := ExtractFileID(fileIDOrURL)
	start := time.Now()

	var doc documentResponse
	if err := c.call(ctx, "docs.get", "GET",
		fmt.Sprintf("%s/documents/%s", c.docsBaseURL, fileID), nil, &doc); err != nil {
		return nil, mapAPIError("google document", fileID, err)
	}

	elements := []model.DocElement{}
	for _, el := range doc.Body.Content {
		switch {
		case el.Paragraph != nil:
			text := strings.TrimSpace(paragraphText(el.Paragraph))
			if text == "" {
				continue
			}
			style := el.Paragraph.ParagraphStyle.NamedStyleType
			if style == "" {
				style = "NORMAL_TEXT"
			}
			item := model.DocElement{Type: "paragraph", Text: text, Style: style}
			if strings.Contains(style, "HEADING") {
				item.Type = "heading"
				if m := headingLevelRe.FindStringSubmatch(style); m != nil {
					item.Level, _ = strconv.Atoi(m[1])
				}
			}
			elements = append(elements, item)
		case el.Table != nil:
			data := make([][]string, 0, len(el.Table.TableRows))
			columns := 0
			for _, row := range el.Table.TableRows {
				cells := make([]string, 0, len(row.TableCells))
				for _, cell := range row.TableCells {
					var parts []string
					for _, cellEl := range cell.Content {
						if cellEl.Paragraph != nil {
							parts = append(parts, paragraphText(cellEl.Paragraph))
						}
					}
					cells = append(cells, strings.TrimSpace(strings.Join(parts, "")))
				}
				if len(cells) > columns {
					columns = len(cells)
				}
				data = append(data, cells)
			}
			elements = append(elements, model.DocElement{
				Type:    "table",
				Data:    data,
				Rows:    len(data),
				Columns: columns,
			})
		}
	}

	c.logger.Info("google document read",
		"file_id", fileID,
		"title", doc.Title,
		"elements", len(elements),
		"duration", time.Since(start))

	return &model.DocumentContent{
		FormatType: model.FormatGoogleDocs,
		Metadata: map[string]any{
			"title":         doc.Title,
			"content_count": len(elements),
			"file_id":       fileID,
		},
		Content: &model.GoogleDocContent{Title: doc.Title, Content: elements},
	}, nil
}

// Slides reads a Google presentation. Page elements become typed entries:
// text shapes, tables and images; anything else is skipped.
func (c *Client) Slides(ctx context.Context, fileIDOrURL string) (*model.DocumentContent, error) {
	fileID := ExtractFileID(fileIDOrURL)
	start := time.Now()

	var pres presentationResponse
	if err := c.call(ctx, "slides.get", "GET",
		fmt.Sprintf("%s/presentations/%s", c.slidesBaseURL, fileID), nil, &pres); err != nil {
		return nil, mapAPIError("google presentation", fileID, err)
	}

	slides := make([]model.CloudSlide, 0, len(pres.Slides))
	for i, page := range pres.Slides {
		elements := []model.SlideElement{}
		for _, pe := range page.PageElements {
			switch {
			case pe.Shape != nil:
				text := strings.TrimSpace(shapeText(pe.Shape.Text))
				if text != "" {
					elements = append(elements, model.SlideElement{Type: "text", Content: text})
				}
			case pe.Table != nil:
				data := make([][]string, 0, len(pe.Table.TableRows))
				columns := 0
				for _, row := range pe.Table.TableRows {
					cells := make([]string, 0, len(row.TableCells))
					for _, cell := range row.TableCells {
						cells = append(cells, strings.TrimSpace(shapeText(cell.Text)))
					}
					if len(cells) > columns {
						columns = len(cells)
					}
					data = append(data, cells)
				}
				elements = append(elements, model.SlideElement{
					Type:    "table",
					Content: &model.SlideTable{Data: data, Rows: len(data), Columns: columns},
				})
			case pe.Image != nil:
				elements = append(elements, model.SlideElement{
					Type:    "image",
					Content: &model.SlideImage{Description: pe.Image.ContentURL, Title: pe.Image.Title},
				})
			}
		}
		slides = append(slides, model.CloudSlide{SlideNumber: i + 1, Elements: elements})
	}

	c.logger.Info("google presentation read",
		"file_id", fileID,
		"title", pres.Title,
		"slides", len(slides),
		"duration", time.Since(start))

	return &model.DocumentContent{
		FormatType: model.FormatGoogleSlides,
		Metadata: map[string]any{
			"title":       pres.Title,
			"slide_count": len(slides),
			"file_id":     fileID,
		},
		Content: &model.SlidesContent{Title: pres.Title, Slides: slides},
	}, nil
}

func paragraphText(p *docParagraph) string {
	var b strings.Builder
	for _, el := range p.Elements {
		if el.TextRun != nil {
			b.WriteString(el.TextRun.Content)
		}
	}
	return b.String()
}

func shapeText(t *slideText) string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	for _, el := range t.TextElements {
		if el.TextRun != nil {
			b.WriteString(el.TextRun.Content)
		}
	}
	return b.String()
}
