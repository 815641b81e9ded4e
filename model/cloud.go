package model

// CloudSheet is one sheet of a Google spreadsheet as returned by the
// values API. Cell values keep their wire types (string or number).
type CloudSheet struct {
	Name        string  `json:"name"`
	Data        [][]any `json:"data"`
	RowCount    int     `json:"row_count"`
	ColumnCount int     `json:"column_count"`
}

// SheetsContent is the content body for a Google spreadsheet.
type SheetsContent struct {
	Title  string       `json:"title"`
	Sheets []CloudSheet `json:"sheets"`
}

// DocElement is one structural element of a Google document: a heading,
// a paragraph, or a table. Fields are populated per Type.
type DocElement struct {
	Type    string     `json:"type"`
	Text    string     `json:"text,omitempty"`
	Style   string     `json:"style,omitempty"`
	Level   int        `json:"level,omitempty"`
	Data    [][]string `json:"data,omitempty"`
	Rows    int        `json:"rows,omitempty"`
	Columns int        `json:"columns,omitempty"`
}

// GoogleDocContent is the content body for a Google document.
type GoogleDocContent struct {
	Title   string       `json:"title"`
	Content []DocElement `json:"content"`
}

// SlideTable is the table payload of a slide element.
type SlideTable struct {
	Data    [][]string `json:"data"`
	Rows    int        `json:"rows"`
	Columns int        `json:"columns"`
}

// SlideImage is the image payload of a slide element.
type SlideImage struct {
	Description string `json:"description"`
	Title       string `json:"title"`
}

// SlideElement is one page element of a Google slide. Content is a string
// for text elements, a SlideTable for tables and a SlideImage for images.
type SlideElement struct {
	Type    string `json:"type"`
	Content any    `json:"content"`
}

// CloudSlide is one slide of a Google presentation.
type CloudSlide struct {
	SlideNumber int            `json:"slide_number"`
	Elements    []SlideElement `json:"elements"`
}

// SlidesContent is the content body for a Google presentation.
type SlidesContent struct {
	Title  string       `json:"title"`
	Slides []CloudSlide `json:"slides"`
}
