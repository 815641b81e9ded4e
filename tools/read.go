package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/officepipe/config"
	"github.com/hazyhaar/officepipe/kit"
	"github.com/hazyhaar/officepipe/model"
)

type readFileReq struct {
	FilePath string `json:"file_path"`
}

type readCloudReq struct {
	FileID string `json:"file_id"`
}

func decodeReadFile(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
	var r readFileReq
	if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
		return nil, err
	}
	return &kit.MCPDecodeResult{Request: &r}, nil
}

func decodeReadCloud(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
	var r readCloudReq
	if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
		return nil, err
	}
	return &kit.MCPDecodeResult{Request: &r}, nil
}

// readLocal is the shared endpoint body for the three local read tools.
// Every outcome is a ReadResult recording the path it ran against.
func (h *Handlers) readLocal(req any, extract func(string) (*model.DocumentContent, error)) any {
	r := req.(*readFileReq)
	path, err := requireString("file_path", r.FilePath)
	if err != nil {
		return readEnvelope(model.ReadFailed(r.FilePath, err.Error()), err)
	}
	path = config.ExpandHome(path)
	content, err := extract(path)
	if err != nil {
		return readEnvelope(model.ReadFailed(path, err.Error()), err)
	}
	return readEnvelope(model.ReadOK(path, content), nil)
}

// readCloud is the shared endpoint body for the three Google read tools.
func (h *Handlers) readCloud(ctx context.Context, req any, fetch func(context.Context, string) (*model.DocumentContent, error)) any {
	r := req.(*readCloudReq)
	if err := h.requireGoogle(); err != nil {
		return readEnvelope(model.ReadFailed(r.FileID, err.Error()), err)
	}
	id, err := requireString("file_id", r.FileID)
	if err != nil {
		return readEnvelope(model.ReadFailed(r.FileID, err.Error()), err)
	}
	content, err := fetch(ctx, id)
	if err != nil {
		return readEnvelope(model.ReadFailed(id, err.Error()), err)
	}
	return readEnvelope(model.ReadOK(id, content), nil)
}

func (h *Handlers) registerReadPowerPoint(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "read_powerpoint",
		Description: "Read a PowerPoint (.pptx) file and return slides with titles, body text, speaker notes and tables.",
		InputSchema: inputSchema(map[string]any{
			"file_path": map[string]any{"type": "string", "description": "Path to the .pptx file"},
		}, []string{"file_path"}),
	}

	endpoint := func(_ context.Context, req any) (any, error) {
		return h.readLocal(req, h.reader.PowerPoint), nil
	}

	h.register(srv, tool, endpoint, decodeReadFile)
}

func (h *Handlers) registerReadWord(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "read_word",
		Description: "Read a Word (.docx) file and return paragraphs with styles, heading levels and tables.",
		InputSchema: inputSchema(map[string]any{
			"file_path": map[string]any{"type": "string", "description": "Path to the .docx file"},
		}, []string{"file_path"}),
	}

	endpoint := func(_ context.Context, req any) (any, error) {
		return h.readLocal(req, h.reader.Word), nil
	}

	h.register(srv, tool, endpoint, decodeReadFile)
}

func (h *Handlers) registerReadExcel(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "read_excel",
		Description: "Read an Excel (.xlsx) file and return sheets with cell data and formulas.",
		InputSchema: inputSchema(map[string]any{
			"file_path": map[string]any{"type": "string", "description": "Path to the .xlsx file"},
		}, []string{"file_path"}),
	}

	endpoint := func(_ context.Context, req any) (any, error) {
		return h.readLocal(req, h.reader.Excel), nil
	}

	h.register(srv, tool, endpoint, decodeReadFile)
}

func (h *Handlers) registerReadGoogleSpreadsheet(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "read_google_spreadsheet",
		Description: "Read a Google spreadsheet by file id or URL and return all sheets with cell data.",
		InputSchema: inputSchema(map[string]any{
			"file_id": map[string]any{"type": "string", "description": "Spreadsheet file id or URL"},
		}, []string{"file_id"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		return h.readCloud(ctx, req, h.google.Spreadsheet), nil
	}

	h.register(srv, tool, endpoint, decodeReadCloud)
}

func (h *Handlers) registerReadGoogleDocument(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "read_google_document",
		Description: "Read a Google document by file id or URL and return headings, paragraphs and tables.",
		InputSchema: inputSchema(map[string]any{
			"file_id": map[string]any{"type": "string", "description": "Document file id or URL"},
		}, []string{"file_id"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		return h.readCloud(ctx, req, h.google.Document), nil
	}

	h.register(srv, tool, endpoint, decodeReadCloud)
}

func (h *Handlers) registerReadGoogleSlides(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "read_google_slides",
		Description: "Read a Google presentation by file id or URL and return slides with text, tables and images.",
		InputSchema: inputSchema(map[string]any{
			"file_id": map[string]any{"type": "string", "description": "Presentation file id or URL"},
		}, []string{"file_id"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		return h.readCloud(ctx, req, h.google.Slides), nil
	}

	h.register(srv, tool, endpoint, decodeReadCloud)
}
