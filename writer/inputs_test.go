package writer

import (
	"reflect"
	"testing"

	"github.com/hazyhaar/officepipe/oferr"
)

func TestBulletItems(t *testing.T) {
	tests := []struct {
		name    string
		content any
		want    []string
	}{
		{"nil", nil, nil},
		{"string list", []string{"a", "b"}, []string{"a", "b"}},
		{"any list", []any{"a", 2}, []string{"a", "2"}},
		{"multiline string", "one\n\n two \n", []string{"one", "two"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bulletItems(tt.content); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("bulletItems(%v) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestContentString(t *testing.T) {
	tests := []struct {
		name    string
		content any
		want    string
	}{
		{"nil", nil, ""},
		{"string", "hello", "hello"},
		{"string list", []string{"a", "b"}, "a\nb"},
		{"any list", []any{"a", 2}, "a\n2"},
		{"number", 7, "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contentString(tt.content); got != tt.want {
				t.Errorf("contentString(%v) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestFormattingDefaults(t *testing.T) {
	var f *Formatting
	if !f.HeaderRowEnabled() || !f.AutoWidthEnabled() {
		t.Error("nil formatting must default both passes on")
	}

	off := false
	f = &Formatting{HeaderRow: &off}
	if f.HeaderRowEnabled() {
		t.Error("explicit header_row=false ignored")
	}
	if !f.AutoWidthEnabled() {
		t.Error("auto_width must stay on when only header_row is set")
	}
}

func intPtr(n int) *int { return &n }

func TestWordDocument_HeadingLevels(t *testing.T) {
	doc := WordDocument{Sections: []WordSection{{Heading: "Intro"}}}
	if err := doc.Validate(); err != nil {
		t.Fatalf("omitted level must validate: %v", err)
	}
	if got := doc.Sections[0].HeadingLevel(); got != 1 {
		t.Errorf("omitted level = %d, want default 1", got)
	}

	doc = WordDocument{Sections: []WordSection{{Heading: "Intro", Level: intPtr(2)}}}
	if err := doc.Validate(); err != nil {
		t.Fatalf("level 2 must validate: %v", err)
	}

	// An explicit zero is out of range, not a request for the default.
	doc = WordDocument{Sections: []WordSection{{Heading: "Intro", Level: intPtr(0)}}}
	if err := doc.Validate(); !oferr.IsKind(err, oferr.ValidationError) {
		t.Fatalf("explicit level 0: error kind = %v, want ValidationError", oferr.KindOf(err))
	}
}

func TestPresentation_EmptyLayoutAccepted(t *testing.T) {
	p := Presentation{Slides: []SlideSpec{{Title: "x", Content: "y"}}}
	if err := p.Validate(); err != nil {
		t.Fatalf("empty layout must validate as content: %v", err)
	}
}
