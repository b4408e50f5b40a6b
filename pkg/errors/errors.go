// Package errors provides structured error types for ribpatch.
//
// Every failure of a conversion run maps to exactly one [Code]. Errors raised
// while interpreting a scene carry the 1-based line number of the directive
// that caused them, so the CLI can point at the offending input.
//
// # Error Codes
//
//   - USAGE: wrong argument count or unusable paths
//   - IO_ERROR: input unreadable or output unwritable
//   - STACK_UNDERFLOW: TransformEnd without a matching TransformBegin
//   - NUMBER_PARSE: a non-numeric token where a float was required
//   - DEGENERATE_AXIS: Rotate with a zero-length axis
//   - MALFORMED_PATCH: patch directive without a bracketed list
//   - BAD_CONTROL_POINT_COUNT: coordinate count not a multiple of 3
//   - WRONG_PATCH_SIZE: control point count other than 16
//
// # Usage
//
//	err := errors.New(errors.ErrCodeDegenerateAxis, "rotation axis has zero length")
//	err = errors.WithLine(err, 12)
//	if errors.Is(err, errors.ErrCodeDegenerateAxis) {
//	    // Handle the bad rotation
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the conversion pipeline.
const (
	// Invocation errors
	ErrCodeUsage         Code = "USAGE"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// I/O errors
	ErrCodeIO            Code = "IO_ERROR"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Scene interpretation errors
	ErrCodeStackUnderflow       Code = "STACK_UNDERFLOW"
	ErrCodeNumberParse          Code = "NUMBER_PARSE"
	ErrCodeDegenerateAxis       Code = "DEGENERATE_AXIS"
	ErrCodeMalformedPatch       Code = "MALFORMED_PATCH"
	ErrCodeBadControlPointCount Code = "BAD_CONTROL_POINT_COUNT"
	ErrCodeWrongPatchSize       Code = "WRONG_PATCH_SIZE"

	// Mesh integrity errors
	ErrCodeInvalidMesh Code = "INVALID_MESH"
)

// Error is a structured error with a code, optional line and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Line    int    // 1-based input line, 0 if not applicable
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
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

// WithLine attaches a line number to err.
// If err is (or wraps) an *Error without a line, a copy carrying line is
// returned; any other error is returned unchanged.
func WithLine(err error, line int) error {
	var e *Error
	if !errors.As(err, &e) || e.Line != 0 {
		return err
	}
	cp := *e
	cp.Line = line
	return &cp
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

// GetLine extracts the input line from an error, or 0 if there is none.
func GetLine(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Line
	}
	return 0
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Line > 0 {
			return fmt.Sprintf("line %d: %s", e.Line, e.Message)
		}
		return e.Message
	}
	return err.Error()
}
