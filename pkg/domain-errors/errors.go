// Package domainerrors provides coded application errors shared across
// services and transport. Services wrap infrastructure failures with a code;
// the HTTP layer maps codes to status lines without inspecting messages.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a class of failure. The set is closed on purpose: handlers
// switch on codes, so a new code is an API decision, not a convenience.
type Code string

const (
	// CodeBadRequest indicates a malformed request envelope.
	CodeBadRequest Code = "bad_request"

	// CodeValidation indicates a well-formed request with invalid fields.
	CodeValidation Code = "validation_failed"

	// CodeInvalidInput indicates a domain value that failed its parse
	// invariants.
	CodeInvalidInput Code = "invalid_input"

	// CodeNotFound indicates a missing resource.
	CodeNotFound Code = "not_found"

	// CodeUnavailable indicates a dependency that is temporarily unusable.
	CodeUnavailable Code = "unavailable"

	// CodeInternal indicates an unexpected failure. Details are logged, never
	// returned to callers.
	CodeInternal Code = "internal_error"
)

// Error is a coded error value. Construct via New or Wrap.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap supports error unwrapping.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap annotates an underlying error with a code and message.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// Is is a readable alias for HasCode at call sites that branch on codes.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// CodeOf extracts the code from an error, defaulting to CodeInternal for
// uncoded errors so nothing leaks an unclassified failure to callers.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// MessageOf extracts the message from a coded error, empty for uncoded ones.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}

// HTTPStatus maps a code to its HTTP status line.
func HTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeValidation, CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
