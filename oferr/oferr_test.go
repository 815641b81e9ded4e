package oferr

import (
	"errors"
	"fmt"
	"testing"
)

func TestFrom_PassesKnownKindsThrough(t *testing.T) {
	orig := New(FileNotFound, "gone", map[string]any{"file_path": "/x"})
	got := From(fmt.Errorf("wrapped: %w", orig))
	if got != orig {
		t.Errorf("From returned %v, want the original error", got)
	}
}

func TestFrom_CoercesUnknownErrors(t *testing.T) {
	got := From(errors.New("boom"))
	if got.Kind != UnexpectedError {
		t.Errorf("kind = %v, want UnexpectedError", got.Kind)
	}
	if got.Message != "unexpected error: boom" {
		t.Errorf("message = %q", got.Message)
	}
	if got.Details == nil {
		t.Error("details must never be nil")
	}
}

func TestIsKind(t *testing.T) {
	err := Newf(ValidationError, "bad input: %s", "layout")
	if !IsKind(err, ValidationError) {
		t.Error("IsKind missed a direct match")
	}
	if IsKind(err, APIError) {
		t.Error("IsKind matched the wrong kind")
	}
	if !IsKind(fmt.Errorf("outer: %w", err), ValidationError) {
		t.Error("IsKind missed a wrapped match")
	}
	if IsKind(errors.New("plain"), ValidationError) {
		t.Error("IsKind matched a plain error")
	}
	if KindOf(nil) != "" {
		t.Error("KindOf(nil) must be empty")
	}
}
