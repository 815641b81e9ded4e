package gworkspace

import "regexp"

var (
	pathIDRe  = regexp.MustCompile(`/d/([a-zA-Z0-9-_]+)`)
	queryIDRe = regexp.MustCompile(`id=([a-zA-Z0-9-_]+)`)
)

// ExtractFileID pulls a Drive file id out of a share URL. Both the /d/<id>
// path form and the ?id=<id> query form are recognized; anything else is
// assumed to already be a bare id.
func ExtractFileID(urlOrID string) string {
	if m := pathIDRe.FindStringSubmatch(urlOrID); m != nil {
		return m[1]
	}
	if m := queryIDRe.FindStringSubmatch(urlOrID); m != nil {
		return m[1]
	}
	return urlOrID
}
