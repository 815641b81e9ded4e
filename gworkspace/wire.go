package gworkspace

// Wire types for the slices of the Sheets, Docs and Slides REST payloads
// this package actually touches. Batch-update request unions are built as
// generic JSON objects instead; see writer.go.

type spreadsheetResponse struct {
	SpreadsheetID  string                `json:"spreadsheetId"`
	SpreadsheetURL string                `json:"spreadsheetUrl"`
	Properties     spreadsheetProperties `json:"properties"`
	Sheets         []spreadsheetSheet    `json:"sheets"`
}

type spreadsheetProperties struct {
	Title string `json:"title"`
}

type spreadsheetSheet struct {
	Properties sheetProperties `json:"properties"`
}

type sheetProperties struct {
	SheetID int    `json:"sheetId"`
	Title   string `json:"title"`
}

type valuesResponse struct {
	Values [][]any `json:"values"`
}

type valuesUpdateRequest struct {
	Values [][]any `json:"values"`
}

type documentResponse struct {
	DocumentID string  `json:"documentId"`
	Title      string  `json:"title"`
	Body       docBody `json:"body"`
}

type docBody struct {
	Content []docStructuralElement `json:"content"`
}

type docStructuralElement struct {
	Paragraph *docParagraph `json:"paragraph,omitempty"`
	Table     *docTable     `json:"table,omitempty"`
}

type docParagraph struct {
	ParagraphStyle docParagraphStyle `json:"paragraphStyle"`
	Elements       []docTextElement  `json:"elements"`
}

type docParagraphStyle struct {
	NamedStyleType string `json:"namedStyleType"`
}

type docTextElement struct {
	TextRun *docTextRun `json:"textRun,omitempty"`
}

type docTextRun struct {
	Content string `json:"content"`
}

type docTable struct {
	TableRows []docTableRow `json:"tableRows"`
}

type docTableRow struct {
	TableCells []docTableCell `json:"tableCells"`
}

type docTableCell struct {
	Content []docStructuralElement `json:"content"`
}

type presentationResponse struct {
	PresentationID string      `json:"presentationId"`
	Title          string      `json:"title"`
	Slides         []slidePage `json:"slides"`
}

type slidePage struct {
	ObjectID     string        `json:"objectId"`
	PageElements []pageElement `json:"pageElements"`
}

type pageElement struct {
	ObjectID string          `json:"objectId"`
	Shape    *slideShape     `json:"shape,omitempty"`
	Table    *slideTableWire `json:"table,omitempty"`
	Image    *slideImageWire `json:"image,omitempty"`
}

type slideShape struct {
	Placeholder *slidePlaceholder `json:"placeholder,omitempty"`
	Text        *slideText        `json:"text,omitempty"`
}

type slidePlaceholder struct {
	Type string `json:"type"`
}

type slideText struct {
	TextElements []slideTextElement `json:"textElements"`
}

type slideTextElement struct {
	TextRun *docTextRun `json:"textRun,omitempty"`
}

type slideTableWire struct {
	TableRows []slideTableRow `json:"tableRows"`
}

type slideTableRow struct {
	TableCells []slideTableCell `json:"tableCells"`
}

type slideTableCell struct {
	Text *slideText `json:"text,omitempty"`
}

type slideImageWire struct {
	ContentURL string `json:"contentUrl"`
	Title      string `json:"title"`
}

type createDocumentRequest struct {
	Title string `json:"title"`
}

type createPresentationRequest struct {
	Title string `json:"title"`
}
