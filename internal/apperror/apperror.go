// Package apperror defines the closed set of failure classifications used
// across the service. Every error raised by the stores, repositories and
// handlers is an *Error carrying one of these codes; the HTTP layer maps
// the code to a status with HTTPStatus. Callers should use errors.As (or
// the CodeOf helper) to match.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a failure.
type Code string

const (
	CodeBadRequest   Code = "bad_request"
	CodeUnauthorized Code = "unauthorized"
	CodeForbidden    Code = "forbidden"
	CodeNotFound     Code = "not_found"
	CodeNotAllowed   Code = "not_allowed"
	CodeConflict     Code = "conflict"
	CodeInternal     Code = "internal"
)

// Error is the only error shape produced by the core.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the response status for the error's code.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeNotAllowed:
		return http.StatusMethodNotAllowed
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a cause to a classified error. The cause is kept for
// logs and errors.Is/As chains, never for client responses.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func BadRequest(message string) *Error   { return New(CodeBadRequest, message) }
func Unauthorized(message string) *Error { return New(CodeUnauthorized, message) }
func Forbidden(message string) *Error    { return New(CodeForbidden, message) }
func NotFound(message string) *Error     { return New(CodeNotFound, message) }
func NotAllowed(message string) *Error   { return New(CodeNotAllowed, message) }
func Conflict(message string) *Error     { return New(CodeConflict, message) }
func Internal(message string) *Error     { return New(CodeInternal, message) }

// CodeOf extracts the classification of err, defaulting to CodeInternal
// for unclassified errors.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}
