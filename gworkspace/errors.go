package gworkspace

import (
	"errors"
	"fmt"

	"github.com/hazyhaar/officepipe/oferr"
)

// mapAPIError converts a terminal API failure into the flat taxonomy.
// 404 means the document does not exist or is not shared with the
// service account; 403 means it exists but access was refused. Errors
// already carrying a kind (retry exhaustion, auth failures) pass through.
func mapAPIError(what, fileID string, err error) error {
	var oe *oferr.Error
	if errors.As(err, &oe) {
		return oe
	}
	var se *statusError
	if errors.As(err, &se) {
		details := map[string]any{"file_id": fileID, "status": se.Status}
		switch se.Status {
		case 404:
			return oferr.New(oferr.FileNotFound,
				fmt.Sprintf("%s not found: %s", what, fileID), details)
		case 403:
			return oferr.New(oferr.PermissionDenied,
				fmt.Sprintf("permission denied accessing %s: %s", what, fileID), details)
		default:
			return oferr.New(oferr.APIError,
				fmt.Sprintf("google api error accessing %s: %v", what, se), details)
		}
	}
	return oferr.New(oferr.APIError,
		fmt.Sprintf("google api error accessing %s: %v", what, err),
		map[string]any{"file_id": fileID})
}
