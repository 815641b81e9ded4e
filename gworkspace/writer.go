package gworkspace

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hazyhaar/officepipe/writer"
)

// batchRequest is one entry of a batchUpdate request union. The unions
// differ per API, so they stay generic JSON objects.
type batchRequest map[string]any

// CreateSpreadsheet creates a Google spreadsheet with the given title and
// fills it sheet by sheet. The first sheet reuses the default Sheet1,
// renamed when needed; every further sheet is added explicitly. Returns
// the spreadsheet URL.
func (c *Client) CreateSpreadsheet(ctx context.Context, data writer.Workbook, title string) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	start := time.Now()

	var created spreadsheetResponse
	if err := c.call(ctx, "sheets.create", "POST",
		c.sheetsBaseURL+"/spreadsheets",
		map[string]any{"properties": map[string]any{"title": title}},
		&created); err != nil {
		return "", mapAPIError("google spreadsheet", title, err)
	}
	id := created.SpreadsheetID

	for i, sheet := range data.Sheets {
		if i == 0 {
			if len(sheet.Data) > 0 {
				if err := c.updateValues(ctx, id, "Sheet1!A1", sheet.Data); err != nil {
					return "", mapAPIError("google spreadsheet", id, err)
				}
			}
			if sheet.Name != "Sheet1" {
				if err := c.sheetsBatchUpdate(ctx, id, []batchRequest{{
					"updateSheetProperties": map[string]any{
						"properties": map[string]any{"sheetId": 0, "title": sheet.Name},
						"fields":     "title",
					},
				}}); err != nil {
					return "", mapAPIError("google spreadsheet", id, err)
				}
			}
			continue
		}
		if err := c.sheetsBatchUpdate(ctx, id, []batchRequest{{
			"addSheet": map[string]any{
				"properties": map[string]any{"title": sheet.Name},
			},
		}}); err != nil {
			return "", mapAPIError("google spreadsheet", id, err)
		}
		if len(sheet.Data) > 0 {
			if err := c.updateValues(ctx, id, sheet.Name+"!A1", sheet.Data); err != nil {
				return "", mapAPIError("google spreadsheet", id, err)
			}
		}
	}

	c.logger.Info("google spreadsheet created",
		"file_id", id,
		"title", title,
		"sheets", len(data.Sheets),
		"duration", time.Since(start))
	return created.SpreadsheetURL, nil
}

func (c *Client) updateValues(ctx context.Context, id, rng string, values [][]any) error {
	return c.call(ctx, "sheets.values.update", "PUT",
		fmt.Sprintf("%s/spreadsheets/%s/values/%s?valueInputOption=RAW",
			c.sheetsBaseURL, id, url.PathEscape(rng)),
		valuesUpdateRequest{Values: values}, nil)
}

func (c *Client) sheetsBatchUpdate(ctx context.Context, id string, reqs []batchRequest) error {
	return c.call(ctx, "sheets.batchUpdate", "POST",
		fmt.Sprintf("%s/spreadsheets/%s:batchUpdate", c.sheetsBaseURL, id),
		map[string]any{"requests": reqs}, nil)
}

// CreateDocument creates a Google document and writes all sections in a
// single batch. The insertion cursor advances by the inserted text length
// plus its trailing newline, and by the fixed skeleton size for tables.
func (c *Client) CreateDocument(ctx context.Context, data writer.WordDocument, title string) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	start := time.Now()

	var created documentResponse
	if err := c.call(ctx, "docs.create", "POST",
		c.docsBaseURL+"/documents",
		createDocumentRequest{Title: title}, &created); err != nil {
		return "", mapAPIError("google document", title, err)
	}
	id := created.DocumentID
	docURL := fmt.Sprintf("https://docs.google.com/document/d/%s/edit", id)

	var reqs []batchRequest
	cursor := 1
	for _, section := range data.Sections {
		if section.Heading != "" {
			n := utf8.RuneCountInString(section.Heading) + 1
			reqs = append(reqs,
				batchRequest{"insertText": map[string]any{
					"location": map[string]any{"index": cursor},
					"text":     section.Heading + "\n",
				}},
				batchRequest{"updateParagraphStyle": map[string]any{
					"range": map[string]any{"startIndex": cursor, "endIndex": cursor + n},
					"paragraphStyle": map[string]any{
						"namedStyleType": fmt.Sprintf("HEADING_%d", section.HeadingLevel()),
					},
					"fields": "namedStyleType",
				}})
			cursor += n
		}
		for _, paragraph := range section.Paragraphs {
			if paragraph == "" {
				continue
			}
			reqs = append(reqs, batchRequest{"insertText": map[string]any{
				"location": map[string]any{"index": cursor},
				"text":     paragraph + "\n",
			}})
			cursor += utf8.RuneCountInString(paragraph) + 1
		}
		for _, table := range section.Tables {
			if len(table.Data) == 0 {
				continue
			}
			columns := 0
			for _, row := range table.Data {
				if len(row) > columns {
					columns = len(row)
				}
			}
			reqs = append(reqs, batchRequest{"insertTable": map[string]any{
				"location": map[string]any{"index": cursor},
				"rows":     len(table.Data),
				"columns":  columns,
			}})
			cursor += 3
		}
	}

	if len(reqs) > 0 {
		if err := c.call(ctx, "docs.batchUpdate", "POST",
			fmt.Sprintf("%s/documents/%s:batchUpdate", c.docsBaseURL, id),
			map[string]any{"requests": reqs}, nil); err != nil {
			return "", mapAPIError("google document", id, err)
		}
	}

	c.logger.Info("google document created",
		"file_id", id,
		"title", title,
		"sections", len(data.Sections),
		"duration", time.Since(start))
	return docURL, nil
}

// CreateSlides creates a Google presentation. The default first slide's
// title and subtitle placeholders receive the first input slide; further
// slides are created from predefined layouts.
func (c *Client) CreateSlides(ctx context.Context, data writer.Presentation, title string) (string, error) {
	if err := data.Validate(); err != nil {
		return "", err
	}
	start := time.Now()

	var created presentationResponse
	if err := c.call(ctx, "slides.create", "POST",
		c.slidesBaseURL+"/presentations",
		createPresentationRequest{Title: title}, &created); err != nil {
		return "", mapAPIError("google presentation", title, err)
	}
	id := created.PresentationID
	presURL := fmt.Sprintf("https://docs.google.com/presentation/d/%s/edit", id)

	var reqs []batchRequest
	if len(data.Slides) > 0 {
		var current presentationResponse
		if err := c.call(ctx, "slides.get", "GET",
			fmt.Sprintf("%s/presentations/%s", c.slidesBaseURL, id), nil, &current); err != nil {
			return "", mapAPIError("google presentation", id, err)
		}
		if len(current.Slides) > 0 {
			first := data.Slides[0]
			titleID, subtitleID := findTitlePlaceholders(current.Slides[0])
			if titleID != "" && first.Title != "" {
				reqs = append(reqs, batchRequest{"insertText": map[string]any{
					"objectId": titleID,
					"text":     first.Title,
				}})
			}
			if content := contentText(first.Content); subtitleID != "" && content != "" {
				reqs = append(reqs, batchRequest{"insertText": map[string]any{
					"objectId": subtitleID,
					"text":     content,
				}})
			}
		}
		for _, slide := range data.Slides[1:] {
			layout := "TITLE_AND_BODY"
			if slide.Layout == "title" {
				layout = "TITLE"
			}
			reqs = append(reqs, batchRequest{"createSlide": map[string]any{
				"objectId": fmt.Sprintf("slide_%d", len(reqs)),
				"slideLayoutReference": map[string]any{
					"predefinedLayout": layout,
				},
			}})
		}
	}

	if len(reqs) > 0 {
		if err := c.call(ctx, "slides.batchUpdate", "POST",
			fmt.Sprintf("%s/presentations/%s:batchUpdate", c.slidesBaseURL, id),
			map[string]any{"requests": reqs}, nil); err != nil {
			return "", mapAPIError("google presentation", id, err)
		}
	}

	c.logger.Info("google presentation created",
		"file_id", id,
		"title", title,
		"slides", len(data.Slides),
		"duration", time.Since(start))
	return presURL, nil
}

// contentText flattens slide content into one string, joining list items
// with newlines.
func contentText(content any) string {
	switch v := content.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, "\n")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, "\n")
	default:
		return fmt.Sprint(v)
	}
}

// findTitlePlaceholders scans the first slide for title and subtitle
// placeholder shapes. CENTERED_TITLE and TITLE both count as the title.
func findTitlePlaceholders(page slidePage) (titleID, subtitleID string) {
	for _, el := range page.PageElements {
		if el.Shape == nil || el.Shape.Placeholder == nil {
			continue
		}
		switch el.Shape.Placeholder.Type {
		case "CENTERED_TITLE", "TITLE":
			titleID = el.ObjectID
		case "SUBTITLE":
			subtitleID = el.ObjectID
		}
	}
	return titleID, subtitleID
}
