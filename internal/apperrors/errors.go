// Package apperrors provides the unified error type used across the service.
//
// Infrastructure layers (postgres, S3) wrap their native errors into
// *apperrors.Error before returning them; raw driver errors never cross a
// service boundary. Controllers translate the kind into an HTTP status and a
// {statusCode, message} body. Callers use the Is* predicates to handle errors
// without importing driver-specific packages.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind categorises an error without exposing backend-specific codes.
type Kind int

const (
	KindInternal      Kind = iota
	KindBadRequest         // malformed input, failed storage operation
	KindUnauthorized       // missing/invalid/blacklisted token, unknown user at login
	KindNotAcceptable      // password mismatch
	KindNotFound           // no row, no object
	KindConflict           // duplicate insert
	KindTimeout            // context deadline / cancellation on an outbound call
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotAcceptable:
		return "not_acceptable"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindTimeout:
		return "timeout"
	default:
		return "internal"
	}
}

// Error is the single error type surfaced by services.
type Error struct {
	Kind    Kind
	Message string
	Cause   error // original driver-level error, preserved for logging
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is / errors.As to traverse the cause chain.
func (e *Error) Unwrap() error {
	return e.Cause
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// --- Predicates ---

func IsBadRequest(err error) bool    { return kindOf(err) == KindBadRequest }
func IsUnauthorized(err error) bool  { return kindOf(err) == KindUnauthorized }
func IsNotAcceptable(err error) bool { return kindOf(err) == KindNotAcceptable }
func IsNotFound(err error) bool      { return kindOf(err) == KindNotFound }
func IsConflict(err error) bool      { return kindOf(err) == KindConflict }
func IsTimeout(err error) bool       { return kindOf(err) == KindTimeout }

func kindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps the error's kind to an HTTP status code.
func HTTPStatus(err error) int {
	switch kindOf(err) {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotAcceptable:
		return http.StatusNotAcceptable
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the user-facing message for err. Internal errors are
// masked so that driver details never leak into a response body.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Message
	}
	return "internal error"
}
