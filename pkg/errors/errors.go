// Package errors provides structured error types for the framesketch application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - ENHANCE_*: Enhancement capability failures (recovered, never fatal)
//   - NOT_FOUND: Resource not found
//   - INTERNAL_ERROR: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidComponent, "unknown component type: %q", t)
//	if errors.Is(err, errors.ErrCodeInvalidComponent) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeEnhanceFailed, origErr, "enhance %s", id)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors. These reject a request before the pipeline runs.
	ErrCodeInvalidPrompt    Code = "INVALID_PROMPT"
	ErrCodeInvalidCanvas    Code = "INVALID_CANVAS"
	ErrCodeInvalidArchetype Code = "INVALID_ARCHETYPE"
	ErrCodeInvalidStyle     Code = "INVALID_STYLE"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"

	// ErrCodeInvalidComponent marks a component type outside the canonical
	// set reaching the synthesizer. Fatal for the request, never retried.
	ErrCodeInvalidComponent Code = "INVALID_COMPONENT"

	// Enhancement errors. Always recovered locally: the deterministic
	// rendering is the fallback result.
	ErrCodeEnhanceUnavailable Code = "ENHANCE_UNAVAILABLE"
	ErrCodeEnhanceFailed      Code = "ENHANCE_FAILED"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

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
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsValidation reports whether err carries one of the input validation codes.
// Validation errors map to a 400 response in the API layer.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidPrompt, ErrCodeInvalidCanvas, ErrCodeInvalidArchetype,
		ErrCodeInvalidStyle, ErrCodeInvalidFormat, ErrCodeInvalidComponent:
		return true
	}
	return false
}
