package model

// Slide is one slide of a presentation deck. SlideNumber is 1-based and
// contiguous. Title and Notes are empty strings when absent, never null.
type Slide struct {
	SlideNumber int     `json:"slide_number"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	Notes       string  `json:"notes"`
	Tables      []Table `json:"tables"`
}

// Paragraph is one non-empty paragraph of a word-processor document.
// Level is 0 for body text, 1-9 for headings derived from the style name.
type Paragraph struct {
	Text  string `json:"text"`
	Style string `json:"style"`
	Level int    `json:"level"`
}

// Table is the shared rectangular table shape: every row of Data has
// exactly Columns entries.
type Table struct {
	Rows    int        `json:"rows"`
	Columns int        `json:"columns"`
	Data    [][]string `json:"data"`
}

// Sheet is one worksheet of a spreadsheet. Data rows all share the sheet's
// row width; missing cells are explicit empty strings. Formulas maps a cell
// address ("C4") to the raw formula text for cells whose native type is
// formula; the same cell holds the "="-prefixed formula in Data.
type Sheet struct {
	Name     string            `json:"name"`
	Data     [][]string        `json:"data"`
	Formulas map[string]string `json:"formulas"`
}

// DeckContent is the content body for a slide deck.
type DeckContent struct {
	Slides  []Slide `json:"slides"`
	Warning string  `json:"warning,omitempty"`
}

// DocContent is the content body for a word-processor document. Tables are
// a flat list independent of their position between paragraphs; only the
// relative order within each kind is preserved.
type DocContent struct {
	Paragraphs []Paragraph `json:"paragraphs"`
	Tables     []Table     `json:"tables"`
}

// WorkbookContent is the content body for a spreadsheet.
type WorkbookContent struct {
	Sheets  []Sheet `json:"sheets"`
	Warning string  `json:"warning,omitempty"`
}
