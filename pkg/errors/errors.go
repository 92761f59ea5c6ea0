// Package errors provides structured error types for uniplot.
//
// Every failure that aborts a render carries a [Code] so that the CLI can
// report a stable, machine-readable category alongside the human message.
//
// # Error Codes
//
//   - UNKNOWN_PARSER: a parser was requested by name but is not registered
//   - NO_PARSER_FOUND: no registered parser claims the input file
//   - MALFORMED_INPUT: structurally invalid input (missing markers, bad numbers)
//   - INVALID_AXIS_SPEC: an axis value has an unrecognized shape or bad length
//   - FILE_NOT_FOUND: the input file does not exist
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownParser, "no parser named %q", name)
//	if errors.Is(err, errors.ErrCodeUnknownParser) {
//	    // Handle lookup failure
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Parser resolution errors
	ErrCodeUnknownParser Code = "UNKNOWN_PARSER"
	ErrCodeNoParserFound Code = "NO_PARSER_FOUND"

	// Input validation errors
	ErrCodeMalformedInput  Code = "MALFORMED_INPUT"
	ErrCodeInvalidAxisSpec Code = "INVALID_AXIS_SPEC"
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidStyle    Code = "INVALID_STYLE"
	ErrCodeInvalidName     Code = "INVALID_NAME"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Output errors
	ErrCodeRenderFailed Code = "RENDER_FAILED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
// The outermost *Error decides.
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

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message (and cause) without code prefixes,
// including those of nested *Error causes.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s", e.Message, UserMessage(e.Cause))
		}
		return e.Message
	}
	return err.Error()
}
