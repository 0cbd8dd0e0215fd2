// Package errors provides structured error types for the nfsf compiler.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the parser, registry, expander and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly diagnostics that name the failing record or reference
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Codes group failures by the stage that detects them:
//   - IO_ERROR: input unreadable or output unwritable
//   - PARSE_ERROR: a line that is not one of the recognized records
//   - DUPLICATE_NAME, UNKNOWN_REFERENCE: structural problems in the model
//   - LIMIT_EXCEEDED: expansion produced more geometry than allowed
//
// Reaching a recursion cutoff during expansion is not an error and has no code.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownReference, "unknown shape %q", name)
//	if errors.Is(err, errors.ErrCodeUnknownReference) {
//	    // Handle the broken reference
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input and usage errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeUsage        Code = "USAGE"
	ErrCodeParse        Code = "PARSE_ERROR"

	// Model errors
	ErrCodeDuplicateName    Code = "DUPLICATE_NAME"
	ErrCodeUnknownReference Code = "UNKNOWN_REFERENCE"
	ErrCodeRegistryFrozen   Code = "REGISTRY_FROZEN"

	// Expansion errors
	ErrCodeLimitExceeded Code = "LIMIT_EXCEEDED"

	// File system errors
	ErrCodeIO Code = "IO_ERROR"

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

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix, followed
// by the user message of the cause if there is one.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// Syntax returns a PARSE_ERROR locating the offending input line.
// line is 1-based; text is the line as read, trimmed by the caller.
func Syntax(line int, text, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	if text == "" {
		return New(ErrCodeParse, "line %d: %s", line, msg)
	}
	return New(ErrCodeParse, "line %d: %s: %q", line, msg, text)
}
