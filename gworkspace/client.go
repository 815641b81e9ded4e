// Package gworkspace talks to the Google Sheets, Docs and Slides REST
// APIs. All remote calls go through the retry engine, so transient API
// failures are re-attempted with exponential backoff while permission
// and not-found failures surface immediately.
package gworkspace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/hazyhaar/officepipe/oferr"
	"github.com/hazyhaar/officepipe/retry"
)

const (
	defaultSheetsBaseURL = "https://sheets.googleapis.com/v4"
	defaultDocsBaseURL   = "https://docs.googleapis.com/v1"
	defaultSlidesBaseURL = "https://slides.googleapis.com/v1"
)

var scopes = []string{
	"https://www.googleapis.com/auth/spreadsheets",
	"https://www.googleapis.com/auth/documents",
	"https://www.googleapis.com/auth/presentations",
	"https://www.googleapis.com/auth/drive.file",
}

// Client is an authenticated Google Workspace API client.
type Client struct {
	http   *http.Client
	engine *retry.Engine
	logger *slog.Logger

	sheetsBaseURL string
	docsBaseURL   string
	slidesBaseURL string
}

// NewClient loads service-account credentials from credentialsPath and
// builds an authenticated client. A missing credentials file is a
// configuration problem; an unparseable one is an authentication problem.
func NewClient(ctx context.Context, credentialsPath string, engine *retry.Engine, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	raw, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, oferr.New(oferr.ConfigurationError,
			fmt.Sprintf("google credentials file not found: %s", credentialsPath),
			map[string]any{"credentials_path": credentialsPath})
	}
	creds, err := google.CredentialsFromJSON(ctx, raw, scopes...)
	if err != nil {
		return nil, oferr.New(oferr.AuthenticationError,
			fmt.Sprintf("invalid google credentials: %v", err),
			map[string]any{"credentials_path": credentialsPath})
	}

	return &Client{
		http:          oauth2.NewClient(ctx, creds.TokenSource),
		engine:        engine,
		logger:        logger,
		sheetsBaseURL: defaultSheetsBaseURL,
		docsBaseURL:   defaultDocsBaseURL,
		slidesBaseURL: defaultSlidesBaseURL,
	}, nil
}

// newTestClient builds a Client aimed at a test server, bypassing auth.
func newTestClient(baseURL string, hc *http.Client, engine *retry.Engine, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		http:          hc,
		engine:        engine,
		logger:        logger,
		sheetsBaseURL: baseURL,
		docsBaseURL:   baseURL,
		slidesBaseURL: baseURL,
	}
}

// statusError carries the HTTP status of a failed API call so the retry
// engine can classify it.
type statusError struct {
	Status int
	Body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("google api returned status %d: %s", e.Status, e.Body)
}

func (e *statusError) HTTPStatus() int { return e.Status }

// call performs one JSON request through the retry engine and decodes
// the settled response into out. The request body is marshaled once and
// re-read per attempt so every retry sends fresh bytes; the typed decode
// happens exactly once, after the engine gives up or succeeds.
func (c *Client) call(ctx context.Context, op, method, url string, payload, out any) error {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", op, err)
		}
	}

	raw, err := retry.Call(ctx, c.engine, op, func(ctx context.Context) ([]byte, error) {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return nil, fmt.Errorf("create %s request: %w", op, err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		start := time.Now()
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%s request failed: %w", op, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			c.logger.Debug("google api error",
				"op", op,
				"status", resp.StatusCode,
				"duration", time.Since(start))
			return nil, &statusError{Status: resp.StatusCode, Body: string(respBody)}
		}

		if out == nil {
			io.Copy(io.Discard, resp.Body)
			return nil, nil
		}
		return io.ReadAll(resp.Body)
	})
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}
