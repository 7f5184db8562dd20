// Package errors carries the service's error model: a Code, a caller-facing
// message, an optional cause and string metadata that survives the trip
// through gRPC status details.
package errors

import (
	"errors"
	"fmt"
)

// Error is the structured error returned by repositories, orchestrators and
// handlers.
type Error struct {
	Code    Code              `json:"code"`
	Message string            `json:"message"`
	Cause   error             `json:"-"`
	Meta    map[string]string `json:"meta,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta attaches a metadata entry and returns e for chaining.
func (e *Error) WithMeta(key, value string) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]string)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf is New with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err, keeping its code and metadata when it already is an *Error
// and falling back to CodeInternal otherwise.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return &Error{Code: existing.Code, Message: message, Cause: err, Meta: copyMeta(existing.Meta)}
	}

	return &Error{Code: CodeInternal, Message: message, Cause: err}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err under an explicit code.
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: code, Message: message, Cause: err}
	var existing *Error
	if errors.As(err, &existing) {
		wrapped.Meta = copyMeta(existing.Meta)
	}
	return wrapped
}

func copyMeta(meta map[string]string) map[string]string {
	if len(meta) == 0 {
		return nil
	}
	out := make(map[string]string, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}

func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func Internal(message string) *Error {
	return New(CodeInternal, message)
}

func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}
