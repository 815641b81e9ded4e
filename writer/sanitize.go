package writer

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/hazyhaar/officepipe/oferr"
)

// sanitizeText strips control characters the OOXML text model rejects:
// x00-x08, x0B, x0C and x0E-x1F. Tab, newline and carriage return are
// kept. No other transformation happens.
func sanitizeText(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' {
			return r
		}
		if r < 0x20 {
			return -1
		}
		return r
	}, s)
}

// xmlEscape escapes text for embedding in an XML text node.
func xmlEscape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func permissionError(path string, err error) error {
	return oferr.New(oferr.PermissionDenied,
		fmt.Sprintf("permission denied saving file: %s", path),
		map[string]any{"output_path": path, "error": err.Error()})
}
