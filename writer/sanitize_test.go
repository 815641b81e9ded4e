package writer

import "testing"

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"tab\tnewline\ncr\r", "tab\tnewline\ncr\r"},
		{"nul\x00bell\x07", "nulbell"},
		{"\x0b\x0c", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := sanitizeText(tt.in); got != tt.want {
			t.Errorf("sanitizeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestXMLEscape(t *testing.T) {
	if got := xmlEscape(`a<b&"c"`); got != `a&lt;b&amp;&#34;c&#34;` {
		t.Errorf("xmlEscape = %q", got)
	}
}
