package gworkspace

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hazyhaar/officepipe/oferr"
	"github.com/hazyhaar/officepipe/writer"
)

type capturedRequest struct {
	Method string
	Path   string
	Body   map[string]any
}

// captureServer records every request and answers from the responses map,
// keyed by "METHOD path".
func captureServer(t *testing.T, captured *[]capturedRequest, responses map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			if err := json.Unmarshal(raw, &body); err != nil {
				t.Errorf("bad request body on %s %s: %v", r.Method, r.URL.Path, err)
			}
		}
		*captured = append(*captured, capturedRequest{Method: r.Method, Path: r.URL.Path, Body: body})

		if resp, ok := responses[r.Method+" "+r.URL.Path]; ok {
			w.Write([]byte(resp))
			return
		}
		w.Write([]byte(`{}`))
	}))
}

func requestsOf(body map[string]any) []any {
	reqs, _ := body["requests"].([]any)
	return reqs
}

func TestCreateSpreadsheet_RequestSequence(t *testing.T) {
	var captured []capturedRequest
	srv := captureServer(t, &captured, map[string]string{
		"POST /spreadsheets": `{"spreadsheetId":"new1","spreadsheetUrl":"https://docs.google.com/spreadsheets/d/new1/edit"}`,
	})
	defer srv.Close()

	wb := writer.Workbook{Sheets: []writer.SheetSpec{
		{Name: "Budget", Data: [][]any{{"a", "b"}}},
		{Name: "Extra", Data: [][]any{{"c"}}},
	}}
	url, err := testClient(srv).CreateSpreadsheet(context.Background(), wb, "Budget 2026")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if url != "https://docs.google.com/spreadsheets/d/new1/edit" {
		t.Errorf("url = %q", url)
	}

	wantPaths := []string{
		"/spreadsheets",                       // create
		"/spreadsheets/new1/values/Sheet1!A1", // first sheet data
		"/spreadsheets/new1:batchUpdate",      // rename Sheet1 to Budget
		"/spreadsheets/new1:batchUpdate",      // addSheet Extra
		"/spreadsheets/new1/values/Extra!A1",  // second sheet data
	}
	if len(captured) != len(wantPaths) {
		t.Fatalf("requests = %d, want %d: %+v", len(captured), len(wantPaths), captured)
	}
	for i, want := range wantPaths {
		if captured[i].Path != want {
			t.Errorf("request %d path = %q, want %q", i, captured[i].Path, want)
		}
	}

	if captured[0].Body["properties"].(map[string]any)["title"] != "Budget 2026" {
		t.Errorf("create body = %v", captured[0].Body)
	}
	if captured[1].Method != "PUT" {
		t.Errorf("values update method = %q, want PUT", captured[1].Method)
	}
	rename := requestsOf(captured[2].Body)[0].(map[string]any)["updateSheetProperties"].(map[string]any)
	if rename["properties"].(map[string]any)["title"] != "Budget" {
		t.Errorf("rename request = %v", rename)
	}
}

func TestCreateSpreadsheet_DefaultFirstSheetNotRenamed(t *testing.T) {
	var captured []capturedRequest
	srv := captureServer(t, &captured, map[string]string{
		"POST /spreadsheets": `{"spreadsheetId":"new2","spreadsheetUrl":"u"}`,
	})
	defer srv.Close()

	wb := writer.Workbook{Sheets: []writer.SheetSpec{
		{Name: "Sheet1", Data: [][]any{{"a"}}},
	}}
	if _, err := testClient(srv).CreateSpreadsheet(context.Background(), wb, "t"); err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, req := range captured {
		if req.Path == "/spreadsheets/new2:batchUpdate" {
			t.Errorf("unexpected batchUpdate for a sheet already named Sheet1")
		}
	}
}

func TestCreateSpreadsheet_RejectsInvalidInput(t *testing.T) {
	var captured []capturedRequest
	srv := captureServer(t, &captured, nil)
	defer srv.Close()

	_, err := testClient(srv).CreateSpreadsheet(context.Background(), writer.Workbook{}, "t")
	if !oferr.IsKind(err, oferr.ValidationError) {
		t.Fatalf("error kind = %v, want ValidationError", oferr.KindOf(err))
	}
	if len(captured) != 0 {
		t.Errorf("no API call may happen on invalid input, got %+v", captured)
	}
}

func TestCreateDocument_CursorAdvancement(t *testing.T) {
	var captured []capturedRequest
	srv := captureServer(t, &captured, map[string]string{
		"POST /documents": `{"documentId":"d1"}`,
	})
	defer srv.Close()

	level := 2
	doc := writer.WordDocument{Sections: []writer.WordSection{
		{
			Heading:    "Intro",
			Level:      &level,
			Paragraphs: []string{"Hello"},
			Tables:     []writer.TableData{{Data: [][]any{{"a", "b"}}}},
		},
	}}
	url, err := testClient(srv).CreateDocument(context.Background(), doc, "Notes")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if url != "https://docs.google.com/document/d/d1/edit" {
		t.Errorf("url = %q", url)
	}

	if len(captured) != 2 || captured[1].Path != "/documents/d1:batchUpdate" {
		t.Fatalf("requests = %+v", captured)
	}
	reqs := requestsOf(captured[1].Body)
	if len(reqs) != 4 {
		t.Fatalf("batch requests = %d, want 4", len(reqs))
	}

	// "Intro\n" inserts at 1 and occupies 6 positions, so the heading
	// style covers [1,7) and the paragraph lands at 7.
	heading := reqs[0].(map[string]any)["insertText"].(map[string]any)
	if heading["text"] != "Intro\n" || heading["location"].(map[string]any)["index"] != float64(1) {
		t.Errorf("heading insert = %v", heading)
	}
	style := reqs[1].(map[string]any)["updateParagraphStyle"].(map[string]any)
	rng := style["range"].(map[string]any)
	if rng["startIndex"] != float64(1) || rng["endIndex"] != float64(7) {
		t.Errorf("style range = %v", rng)
	}
	if style["paragraphStyle"].(map[string]any)["namedStyleType"] != "HEADING_2" {
		t.Errorf("style = %v", style)
	}
	para := reqs[2].(map[string]any)["insertText"].(map[string]any)
	if para["location"].(map[string]any)["index"] != float64(7) {
		t.Errorf("paragraph insert = %v", para)
	}
	table := reqs[3].(map[string]any)["insertTable"].(map[string]any)
	if table["location"].(map[string]any)["index"] != float64(13) ||
		table["rows"] != float64(1) || table["columns"] != float64(2) {
		t.Errorf("table insert = %v", table)
	}
}

func TestCreateSlides_FillsPlaceholdersAndAddsSlides(t *testing.T) {
	var captured []capturedRequest
	srv := captureServer(t, &captured, map[string]string{
		"POST /presentations": `{"presentationId":"p1"}`,
		"GET /presentations/p1": `{
			"presentationId": "p1",
			"slides": [{"objectId": "s0", "pageElements": [
				{"objectId": "ct", "shape": {"placeholder": {"type": "CENTERED_TITLE"}}},
				{"objectId": "st", "shape": {"placeholder": {"type": "SUBTITLE"}}}
			]}]
		}`,
	})
	defer srv.Close()

	deck := writer.Presentation{Slides: []writer.SlideSpec{
		{Layout: "title", Title: "Hi", Content: "Sub"},
		{Layout: "content", Title: "More"},
		{Layout: "title", Title: "Closing"},
	}}
	url, err := testClient(srv).CreateSlides(context.Background(), deck, "Deck")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if url != "https://docs.google.com/presentation/d/p1/edit" {
		t.Errorf("url = %q", url)
	}

	if len(captured) != 3 || captured[2].Path != "/presentations/p1:batchUpdate" {
		t.Fatalf("requests = %+v", captured)
	}
	reqs := requestsOf(captured[2].Body)
	if len(reqs) != 4 {
		t.Fatalf("batch requests = %d, want 4", len(reqs))
	}

	title := reqs[0].(map[string]any)["insertText"].(map[string]any)
	if title["objectId"] != "ct" || title["text"] != "Hi" {
		t.Errorf("title insert = %v", title)
	}
	subtitle := reqs[1].(map[string]any)["insertText"].(map[string]any)
	if subtitle["objectId"] != "st" || subtitle["text"] != "Sub" {
		t.Errorf("subtitle insert = %v", subtitle)
	}
	second := reqs[2].(map[string]any)["createSlide"].(map[string]any)
	if second["slideLayoutReference"].(map[string]any)["predefinedLayout"] != "TITLE_AND_BODY" {
		t.Errorf("second slide = %v", second)
	}
	third := reqs[3].(map[string]any)["createSlide"].(map[string]any)
	if third["slideLayoutReference"].(map[string]any)["predefinedLayout"] != "TITLE" {
		t.Errorf("third slide = %v", third)
	}
}
