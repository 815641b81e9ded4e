// Package tools exposes every read and write operation as an MCP tool.
// Handlers translate between the flat tool argument shapes and the typed
// reader, writer and gworkspace APIs; every outcome, success or failure,
// is returned as a response envelope rather than a transport error.
package tools

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/officepipe/config"
	"github.com/hazyhaar/officepipe/gworkspace"
	"github.com/hazyhaar/officepipe/kit"
	"github.com/hazyhaar/officepipe/model"
	"github.com/hazyhaar/officepipe/oferr"
	"github.com/hazyhaar/officepipe/reader"
	"github.com/hazyhaar/officepipe/retry"
	"github.com/hazyhaar/officepipe/writer"
)

// Handlers carries the shared dependencies of every tool.
type Handlers struct {
	cfg    *config.Config
	logger *slog.Logger
	reader *reader.Reader
	writer *writer.Writer

	// google is nil when Google Workspace support is disabled or the
	// credentials could not be loaded at startup.
	google *gworkspace.Client
}

// New wires up the readers, writers and, when enabled, the Google
// Workspace client. A failed Google setup is logged and skipped so the
// local tools stay available.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}

	h := &Handlers{
		cfg:    cfg,
		logger: logger,
		reader: reader.New(reader.Limits{
			MaxSlides:   cfg.MaxSlides,
			MaxSheets:   cfg.MaxSheets,
			MaxFileSize: cfg.MaxFileSize(),
		}, logger),
		writer: writer.New(logger),
	}

	if cfg.EnableGoogleWorkspace {
		engine := retry.New(cfg.MaxRetries, cfg.APITimeout(), logger)
		client, err := gworkspace.NewClient(ctx, cfg.GoogleCredentialsPath, engine, logger)
		if err != nil {
			logger.Warn("google workspace unavailable, cloud tools will reject calls", "error", err)
		} else {
			h.google = client
		}
	}

	return h
}

// Register adds all twelve tools to the server.
func (h *Handlers) Register(srv *mcp.Server) {
	h.registerReadPowerPoint(srv)
	h.registerReadWord(srv)
	h.registerReadExcel(srv)
	h.registerReadGoogleSpreadsheet(srv)
	h.registerReadGoogleDocument(srv)
	h.registerReadGoogleSlides(srv)
	h.registerWritePowerPoint(srv)
	h.registerWriteWord(srv)
	h.registerWriteExcel(srv)
	h.registerWriteGoogleSpreadsheet(srv)
	h.registerWriteGoogleDocument(srv)
	h.registerWriteGoogleSlides(srv)
}

// register wires one endpoint into the server behind the shared
// middleware chain.
func (h *Handlers) register(srv *mcp.Server, tool *mcp.Tool, endpoint kit.Endpoint, decode func(*mcp.CallToolRequest) (*kit.MCPDecodeResult, error)) {
	kit.RegisterMCPTool(srv, tool, kit.Chain(h.traced())(endpoint), decode)
}

// traced tags every call with a request id and logs one completion line
// per invocation: tool name, transport and duration.
func (h *Handlers) traced() kit.Middleware {
	return func(next kit.Endpoint) kit.Endpoint {
		return func(ctx context.Context, req any) (any, error) {
			if kit.GetRequestID(ctx) == "" {
				ctx = kit.WithRequestID(ctx, newRequestID())
			}
			start := time.Now()
			resp, err := next(ctx, req)
			h.logger.Debug("tool call completed",
				"tool", kit.GetToolName(ctx),
				"request_id", kit.GetRequestID(ctx),
				"transport", kit.GetTransport(ctx),
				"duration", time.Since(start))
			return resp, err
		}
	}
}

func newRequestID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// readEnvelope flattens a ReadResult onto the wire. Success carries only
// the format tag and the content body; the metadata map stays internal.
// On failure the identifier the operation ran against lands in the error
// details under file_path, whether it was a local path or a remote id.
func readEnvelope(res model.ReadResult, cause error) map[string]any {
	if !res.Success {
		return failureWithID(res.FilePath, cause)
	}
	return map[string]any{
		"success":     res.Success,
		"format_type": res.Content.FormatType,
		"content":     res.Content.Content,
	}
}

// writeEnvelope flattens a WriteResult onto the wire. Exactly one of
// output_path and url is populated on success.
func writeEnvelope(res model.WriteResult, what string, cause error) map[string]any {
	if !res.Success {
		return failure(cause)
	}
	if res.OutputPath != "" {
		return map[string]any{
			"success":     res.Success,
			"output_path": res.OutputPath,
			"message":     fmt.Sprintf("%s file created: %s", what, res.OutputPath),
		}
	}
	return map[string]any{
		"success": res.Success,
		"url":     res.URL,
		"message": fmt.Sprintf("%s created: %s", what, res.URL),
	}
}

// failure builds the error envelope; unknown errors are coerced into the
// taxonomy first.
func failure(err error) map[string]any {
	e := oferr.From(err)
	return map[string]any{
		"success": false,
		"error": map[string]any{
			"type":    string(e.Kind),
			"message": e.Message,
			"details": e.Details,
		},
	}
}

// failureWithID is failure with the operation's identifier added to the
// details. The error's own details map is copied, never mutated.
func failureWithID(id string, err error) map[string]any {
	e := oferr.From(err)
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	if _, ok := details["file_path"]; !ok && id != "" {
		details["file_path"] = id
	}
	return map[string]any{
		"success": false,
		"error": map[string]any{
			"type":    string(e.Kind),
			"message": e.Message,
			"details": details,
		},
	}
}

// requireGoogle produces the rejection envelope for cloud tools when the
// Google client never came up.
func (h *Handlers) requireGoogle() error {
	if h.google != nil {
		return nil
	}
	return oferr.New(oferr.ValidationError,
		"google workspace support is not enabled",
		map[string]any{"enable_google_workspace": h.cfg.EnableGoogleWorkspace})
}

func requireString(name, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", oferr.New(oferr.ValidationError,
			fmt.Sprintf("required parameter is missing or empty: %s", name),
			map[string]any{"parameter": name})
	}
	return value, nil
}

// resolveOutputPath expands ~ and anchors relative paths under the
// configured output directory.
func (h *Handlers) resolveOutputPath(path string) string {
	path = config.ExpandHome(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(h.cfg.OutputDirectory, path)
}
