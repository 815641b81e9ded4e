package writer

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hazyhaar/officepipe/oferr"
)

// Presentation is the structured input for slide-deck generation.
type Presentation struct {
	Title  string      `json:"title"`
	Slides []SlideSpec `json:"slides"`
}

// SlideSpec describes one slide. Layout must be one of title, content or
// bullet (empty defaults to content). Content is a string, or a list of
// item strings for bullet slides.
type SlideSpec struct {
	Layout  string `json:"layout"`
	Title   string `json:"title"`
	Content any    `json:"content"`
}

// Validate checks the presentation input before any file is created.
func (p Presentation) Validate() error {
	if err := validation.ValidateStruct(&p,
		validation.Field(&p.Slides, validation.NotNil.Error("the 'slides' key is required")),
	); err != nil {
		return invalidInput("presentation", err)
	}
	for i, s := range p.Slides {
		if err := validation.ValidateStruct(&s,
			validation.Field(&s.Layout,
				validation.In("title", "content", "bullet").Error("must be one of title, content, bullet")),
		); err != nil {
			return oferr.New(oferr.ValidationError,
				fmt.Sprintf("slide %d: %v", i+1, err),
				map[string]any{"slide_index": i, "layout": s.Layout})
		}
	}
	return nil
}

// WordDocument is the structured input for word-processor generation.
type WordDocument struct {
	Title    string        `json:"title"`
	Sections []WordSection `json:"sections"`
}

// WordSection composes, in order: heading, paragraphs, bullets, tables.
// Level is nil when the key was omitted, which defaults to 1.
type WordSection struct {
	Heading    string      `json:"heading"`
	Level      *int        `json:"level"`
	Paragraphs []string    `json:"paragraphs"`
	Bullets    []string    `json:"bullets"`
	Tables     []TableData `json:"tables"`
}

// TableData carries raw table rows; cell values may be any scalar.
type TableData struct {
	Data [][]any `json:"data"`
}

// Validate checks the document input. An explicit heading level outside
// 1-3 is rejected, zero included; only an absent key defaults.
func (d WordDocument) Validate() error {
	if err := validation.ValidateStruct(&d,
		validation.Field(&d.Sections, validation.NotNil.Error("the 'sections' key is required")),
	); err != nil {
		return invalidInput("document", err)
	}
	for i, s := range d.Sections {
		if s.Level != nil && (*s.Level < 1 || *s.Level > 3) {
			return oferr.New(oferr.ValidationError,
				fmt.Sprintf("section %d: heading level must be between 1 and 3", i+1),
				map[string]any{"section_index": i, "level": *s.Level})
		}
	}
	return nil
}

// HeadingLevel returns the effective heading level for the section.
func (s WordSection) HeadingLevel() int {
	if s.Level == nil {
		return 1
	}
	return *s.Level
}

// Workbook is the structured input for spreadsheet generation.
type Workbook struct {
	Sheets []SheetSpec `json:"sheets"`
}

// SheetSpec describes one sheet. Formatting toggles default to on when
// the block is absent.
type SheetSpec struct {
	Name       string      `json:"name"`
	Data       [][]any     `json:"data"`
	Formatting *Formatting `json:"formatting"`
}

// Formatting controls the two independent generation-time passes.
type Formatting struct {
	HeaderRow *bool `json:"header_row"`
	AutoWidth *bool `json:"auto_width"`
}

// HeaderRowEnabled reports whether row 1 gets header styling.
func (f *Formatting) HeaderRowEnabled() bool {
	return f == nil || f.HeaderRow == nil || *f.HeaderRow
}

// AutoWidthEnabled reports whether column widths are derived from content.
func (f *Formatting) AutoWidthEnabled() bool {
	return f == nil || f.AutoWidth == nil || *f.AutoWidth
}

// Validate checks the workbook input. At least one sheet is required, and
// every sheet needs a name and a data matrix.
func (w Workbook) Validate() error {
	if err := validation.ValidateStruct(&w,
		validation.Field(&w.Sheets, validation.Required.Error("at least one sheet is required")),
	); err != nil {
		return invalidInput("workbook", err)
	}
	for i, s := range w.Sheets {
		if err := validation.ValidateStruct(&s,
			validation.Field(&s.Name, validation.Required.Error("the 'name' key is required")),
			validation.Field(&s.Data, validation.NotNil.Error("the 'data' key is required")),
		); err != nil {
			return oferr.New(oferr.ValidationError,
				fmt.Sprintf("sheet %d: %v", i+1, err),
				map[string]any{"sheet_index": i})
		}
	}
	return nil
}

func invalidInput(what string, err error) error {
	return oferr.New(oferr.ValidationError,
		fmt.Sprintf("invalid %s input: %v", what, err), nil)
}

// bulletItems turns bullet content into item strings: a list is used as
// is, a single string is split on newlines with blank lines dropped.
func bulletItems(content any) []string {
	switch v := content.(type) {
	case nil:
		return nil
	case []string:
		return v
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, cellString(item))
		}
		return items
	default:
		var items []string
		for _, line := range strings.Split(cellString(v), "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				items = append(items, line)
			}
		}
		return items
	}
}

// contentString flattens slide content into a single string, joining list
// items with newlines.
func contentString(content any) string {
	switch v := content.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, "\n")
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, cellString(item))
		}
		return strings.Join(items, "\n")
	default:
		return fmt.Sprint(v)
	}
}

// cellString renders a scalar cell value; nil becomes the empty string.
func cellString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
