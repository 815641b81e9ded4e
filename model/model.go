// Package model defines the canonical content model shared by every
// extractor and generator: DocumentContent in the middle, ReadResult and
// WriteResult at the edges. All values are built once during a normalize
// pass and never mutated afterwards.
package model

// FormatType identifies a document kind.
type FormatType string

const (
	FormatPowerPoint   FormatType = "pptx"
	FormatWord         FormatType = "docx"
	FormatExcel        FormatType = "xlsx"
	FormatGoogleSheets FormatType = "google_sheets"
	FormatGoogleDocs   FormatType = "google_docs"
	FormatGoogleSlides FormatType = "google_slides"
)

// DocumentContent is the normalized form every format maps into.
// Metadata always carries at least one count field matching the
// cardinality of the primary collection in Content.
type DocumentContent struct {
	FormatType FormatType     `json:"format_type"`
	Metadata   map[string]any `json:"metadata"`
	Content    any            `json:"content"`
}

// ReadResult is the tagged outcome of a read operation. Exactly one of
// Content and Error is populated; FilePath always records the identifier
// operated on (local path or remote file id).
type ReadResult struct {
	Success  bool             `json:"success"`
	Content  *DocumentContent `json:"content,omitempty"`
	Error    string           `json:"error,omitempty"`
	FilePath string           `json:"file_path"`
}

// WriteResult is the tagged outcome of a write operation. On success
// exactly one of OutputPath (local) and URL (remote) is populated.
type WriteResult struct {
	Success    bool   `json:"success"`
	OutputPath string `json:"output_path,omitempty"`
	URL        string `json:"url,omitempty"`
	Error      string `json:"error,omitempty"`
}

// ReadOK wraps extracted content in a successful ReadResult.
func ReadOK(id string, content *DocumentContent) ReadResult {
	return ReadResult{Success: true, Content: content, FilePath: id}
}

// ReadFailed records a failed read for the given identifier.
func ReadFailed(id, errMsg string) ReadResult {
	return ReadResult{Success: false, Error: errMsg, FilePath: id}
}

// WroteFile records a successful local write.
func WroteFile(path string) WriteResult {
	return WriteResult{Success: true, OutputPath: path}
}

// WroteURL records a successful remote write.
func WroteURL(url string) WriteResult {
	return WriteResult{Success: true, URL: url}
}

// WriteFailed records a failed write.
func WriteFailed(errMsg string) WriteResult {
	return WriteResult{Success: false, Error: errMsg}
}
