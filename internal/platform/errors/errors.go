// Package errors is the coded error type shared by services and transports
//
// import it as perr so it does not shadow the standard library package
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode is the machine readable class of an error
// the numeric values go over the wire, append new codes at the end
type ErrorCode uint16

const (
	// ErrorCodeUnknown is anything not classified below
	ErrorCodeUnknown ErrorCode = iota
	// ErrorCodePanic marks a recovered panic
	ErrorCodePanic
	// ErrorCodeUnavailable means the caller may retry later
	ErrorCodeUnavailable
	// ErrorCodeTooManyRequests is load shedding
	ErrorCodeTooManyRequests
	// ErrorCodeInvalidArgument is well formed input the search cannot satisfy
	ErrorCodeInvalidArgument
	// ErrorCodeValidation is input rejected by struct validation
	ErrorCodeValidation
	// ErrorCodeJSON is a body that does not decode
	ErrorCodeJSON
	// ErrorCodeNotFound is a missing route or resource
	ErrorCodeNotFound
	// ErrorCodeTimeout is work abandoned because its deadline passed
	ErrorCodeTimeout
	// ErrorCodeMethodNotAllowed is a known route hit with the wrong method
	ErrorCodeMethodNotAllowed
)

var statusByCode = map[ErrorCode]int{
	ErrorCodeUnavailable:      http.StatusServiceUnavailable,
	ErrorCodeTooManyRequests:  http.StatusTooManyRequests,
	ErrorCodeInvalidArgument:  http.StatusUnprocessableEntity,
	ErrorCodeValidation:       http.StatusBadRequest,
	ErrorCodeJSON:             http.StatusBadRequest,
	ErrorCodeNotFound:         http.StatusNotFound,
	ErrorCodeTimeout:          http.StatusGatewayTimeout,
	ErrorCodeMethodNotAllowed: http.StatusMethodNotAllowed,
}

// HTTPStatusCode maps a code to its response status, 500 when unmapped
func HTTPStatusCode(c ErrorCode) int {
	if s, ok := statusByCode[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Error carries a code, a message, the offending input field and an optional cause
type Error struct {
	code  ErrorCode
	msg   string
	field string
	cause error
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.cause != nil:
		return e.msg + ": " + e.cause.Error()
	default:
		return e.msg
	}
}

// Unwrap exposes the cause to errors.Is and errors.As
func (e *Error) Unwrap() error { return e.cause }

// Code returns the error class
func (e *Error) Code() ErrorCode { return e.code }

// Field names the input that caused the error, empty when not tied to one
func (e *Error) Field() string { return e.field }

// Wire is the error shape written to clients
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// WireFrom renders any error for clients; foreign errors become ErrorCodeUnknown
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return Wire{Code: e.code, Message: e.msg, Field: e.field}
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// As finds the first *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrs.As(err, &e)
	return e, ok
}

// CodeOf returns err's code or ErrorCodeUnknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus is HTTPStatusCode(CodeOf(err))
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// WithField returns a copy of err naming field; errors of other types pass through
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	c.field = field
	return &c
}

// New builds an error with a fixed message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf builds an error with a formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return New(code, fmt.Sprintf(format, a...))
}

// Wrap attaches code and message to cause
func Wrap(cause error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, cause: cause}
}

// Wrapf is Wrap with a formatted message
func Wrapf(cause error, code ErrorCode, format string, a ...any) error {
	return Wrap(cause, code, fmt.Sprintf(format, a...))
}

// InvalidArgf builds an ErrorCodeInvalidArgument error
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// JSONErrf builds an ErrorCodeJSON error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// Validationf builds an ErrorCodeValidation error
func Validationf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }
