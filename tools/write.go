package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/officepipe/kit"
	"github.com/hazyhaar/officepipe/model"
	"github.com/hazyhaar/officepipe/oferr"
	"github.com/hazyhaar/officepipe/writer"
)

// Write tool arguments keep data as raw JSON: the typed unmarshal happens
// in the endpoint so a malformed shape becomes a ValidationError envelope
// instead of a transport fault.

type writeFileReq struct {
	Data       json.RawMessage `json:"data"`
	OutputPath string          `json:"output_path"`
}

type writeCloudReq struct {
	Data  json.RawMessage `json:"data"`
	Title string          `json:"title"`
}

func decodeWriteFile(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
	var r writeFileReq
	if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
		return nil, err
	}
	return &kit.MCPDecodeResult{Request: &r}, nil
}

func decodeWriteCloud(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
	var r writeCloudReq
	if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
		return nil, err
	}
	return &kit.MCPDecodeResult{Request: &r}, nil
}

func decodeData(raw json.RawMessage, out any) error {
	if len(raw) == 0 {
		return oferr.New(oferr.ValidationError,
			"required parameter is missing: data",
			map[string]any{"missing_parameter": "data"})
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return oferr.New(oferr.ValidationError,
			fmt.Sprintf("invalid data shape: %v", err),
			map[string]any{"parameter": "data"})
	}
	return nil
}

// writeFailed wraps the error in a failed WriteResult and flattens it.
func writeFailed(what string, err error) map[string]any {
	return writeEnvelope(model.WriteFailed(err.Error()), what, err)
}

// writeLocal is the shared endpoint body for the three local write tools.
// data must already be decoded into the writer's input type.
func (h *Handlers) writeLocal(req any, what string, data any, save func(string) error) any {
	r := req.(*writeFileReq)
	path, err := requireString("output_path", r.OutputPath)
	if err != nil {
		return writeFailed(what, err)
	}
	if err := decodeData(r.Data, data); err != nil {
		return writeFailed(what, err)
	}
	path = h.resolveOutputPath(path)
	if err := save(path); err != nil {
		return writeFailed(what, err)
	}
	return writeEnvelope(model.WroteFile(path), what, nil)
}

// writeCloud is the shared endpoint body for the three Google write tools.
func (h *Handlers) writeCloud(req any, what string, data any, create func(string) (string, error)) any {
	r := req.(*writeCloudReq)
	if err := h.requireGoogle(); err != nil {
		return writeFailed(what, err)
	}
	title, err := requireString("title", r.Title)
	if err != nil {
		return writeFailed(what, err)
	}
	if err := decodeData(r.Data, data); err != nil {
		return writeFailed(what, err)
	}
	url, err := create(title)
	if err != nil {
		return writeFailed(what, err)
	}
	return writeEnvelope(model.WroteURL(url), what, nil)
}

func (h *Handlers) registerWritePowerPoint(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "write_powerpoint",
		Description: "Create a PowerPoint (.pptx) file from structured slide data (title, content and bullet layouts).",
		InputSchema: inputSchema(map[string]any{
			"data":        map[string]any{"type": "object", "description": "Presentation data: {title, slides: [{layout, title, content}]}"},
			"output_path": map[string]any{"type": "string", "description": "Destination path for the .pptx file"},
		}, []string{"data", "output_path"}),
	}

	endpoint := func(_ context.Context, req any) (any, error) {
		var data writer.Presentation
		return h.writeLocal(req, "PowerPoint", &data, func(path string) error {
			return h.writer.PowerPoint(data, path)
		}), nil
	}

	h.register(srv, tool, endpoint, decodeWriteFile)
}

func (h *Handlers) registerWriteWord(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "write_word",
		Description: "Create a Word (.docx) file from structured document data (title, sections with headings, paragraphs, bullets and tables).",
		InputSchema: inputSchema(map[string]any{
			"data":        map[string]any{"type": "object", "description": "Document data: {title, sections: [{heading, level, paragraphs, bullets, tables}]}"},
			"output_path": map[string]any{"type": "string", "description": "Destination path for the .docx file"},
		}, []string{"data", "output_path"}),
	}

	endpoint := func(_ context.Context, req any) (any, error) {
		var data writer.WordDocument
		return h.writeLocal(req, "Word", &data, func(path string) error {
			return h.writer.Word(data, path)
		}), nil
	}

	h.register(srv, tool, endpoint, decodeWriteFile)
}

func (h *Handlers) registerWriteExcel(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "write_excel",
		Description: "Create an Excel (.xlsx) file from structured sheet data, with optional header styling and column auto width.",
		InputSchema: inputSchema(map[string]any{
			"data":        map[string]any{"type": "object", "description": "Workbook data: {sheets: [{name, data, formatting: {header_row, auto_width}}]}"},
			"output_path": map[string]any{"type": "string", "description": "Destination path for the .xlsx file"},
		}, []string{"data", "output_path"}),
	}

	endpoint := func(_ context.Context, req any) (any, error) {
		var data writer.Workbook
		return h.writeLocal(req, "Excel", &data, func(path string) error {
			return h.writer.Excel(data, path)
		}), nil
	}

	h.register(srv, tool, endpoint, decodeWriteFile)
}

func (h *Handlers) registerWriteGoogleSpreadsheet(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "write_google_spreadsheet",
		Description: "Create a Google spreadsheet from structured sheet data and return its URL.",
		InputSchema: inputSchema(map[string]any{
			"data":  map[string]any{"type": "object", "description": "Workbook data: {sheets: [{name, data}]}"},
			"title": map[string]any{"type": "string", "description": "Spreadsheet title"},
		}, []string{"data", "title"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		var data writer.Workbook
		return h.writeCloud(req, "Google spreadsheet", &data, func(title string) (string, error) {
			return h.google.CreateSpreadsheet(ctx, data, title)
		}), nil
	}

	h.register(srv, tool, endpoint, decodeWriteCloud)
}

func (h *Handlers) registerWriteGoogleDocument(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "write_google_document",
		Description: "Create a Google document from structured section data and return its URL.",
		InputSchema: inputSchema(map[string]any{
			"data":  map[string]any{"type": "object", "description": "Document data: {sections: [{heading, level, paragraphs, tables}]}"},
			"title": map[string]any{"type": "string", "description": "Document title"},
		}, []string{"data", "title"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		var data writer.WordDocument
		return h.writeCloud(req, "Google document", &data, func(title string) (string, error) {
			return h.google.CreateDocument(ctx, data, title)
		}), nil
	}

	h.register(srv, tool, endpoint, decodeWriteCloud)
}

func (h *Handlers) registerWriteGoogleSlides(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "write_google_slides",
		Description: "Create a Google presentation from structured slide data and return its URL.",
		InputSchema: inputSchema(map[string]any{
			"data":  map[string]any{"type": "object", "description": "Presentation data: {slides: [{layout, title, content}]}"},
			"title": map[string]any{"type": "string", "description": "Presentation title"},
		}, []string{"data", "title"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		var data writer.Presentation
		return h.writeCloud(req, "Google presentation", &data, func(title string) (string, error) {
			return h.google.CreateSlides(ctx, data, title)
		}), nil
	}

	h.register(srv, tool, endpoint, decodeWriteCloud)
}
