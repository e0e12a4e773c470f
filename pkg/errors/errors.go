// Package errors defines the coded errors scifig returns to callers.
//
// Audit findings are never errors; they are [audit.Issue] values. An error
// means an audit or a render could not run at all:
//   - JOURNAL_NOT_FOUND: a journal name the registry does not know
//   - FILE_NOT_FOUND, INVALID_PATH: an unreadable script or figure file
//   - INVALID_FORMAT: an unknown report or image format
//   - INVALID_INPUT: a malformed figure, journals file or request
//   - INTERNAL_ERROR, UNSUPPORTED: everything else
//
// The CLI prints [UserMessage] and exits with status 1; the HTTP API maps the
// code to a status (404 for the *_NOT_FOUND codes, 400 for INVALID_*).
//
//	spec, err := journal.Get(name)
//	if errors.Is(err, errors.ErrCodeJournalNotFound) {
//	    // offer journal.List()
//	}
//
// [audit.Issue]: https://pkg.go.dev/github.com/matzehuels/scifig/pkg/audit#Issue
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound        Code = "NOT_FOUND"
	ErrCodeJournalNotFound Code = "JOURNAL_NOT_FOUND"
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message printed by the CLI: the message of the
// outermost *Error without its code, followed by the user message of its
// cause, so "read plot.py: permission denied" keeps the reason the file
// could not be read. Other errors are returned as-is.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + UserMessage(e.Cause)
}
