// Package oferr defines the flat error taxonomy used across officepipe.
// Every failure that crosses the tool boundary is one of these kinds,
// carrying a message and a details map; there is no hierarchy beyond that.
package oferr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the tool boundary.
type Kind string

const (
	FileNotFound        Kind = "FileNotFound"
	CorruptedFile       Kind = "CorruptedFile"
	ValidationError     Kind = "ValidationError"
	ConfigurationError  Kind = "ConfigurationError"
	AuthenticationError Kind = "AuthenticationError"
	PermissionDenied    Kind = "PermissionDenied"
	APIError            Kind = "APIError"
	UnexpectedError     Kind = "UnexpectedError"
)

// Error is the common failure value: a kind, a human-readable message and
// a details map for structured context.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]any
}

func (e *Error) Error() string { return e.Message }

// New builds an Error of the given kind. details may be nil.
func New(kind Kind, message string, details map[string]any) *Error {
	if details == nil {
		details = map[string]any{}
	}
	return &Error{Kind: kind, Message: message, Details: details}
}

// Newf builds an Error with a formatted message and no details.
func Newf(kind Kind, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...), nil)
}

// From coerces any error into an *Error. Known kinds pass through
// unchanged; anything else becomes an UnexpectedError preserving the
// original message.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return New(UnexpectedError, fmt.Sprintf("unexpected error: %v", err), nil)
}

// KindOf reports the kind of err, or an empty Kind when err is not an
// *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
