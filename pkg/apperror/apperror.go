package apperror

import (
	"errors"
	"net/http"
)

// Error is an expected failure that already knows its HTTP status.
type Error struct {
	Status  int
	Message string
	Details interface{}
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches on status and message so that sentinel errors survive wrapping
// and WithDetails copies.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Status == t.Status && e.Message == t.Message
}

// WithDetails returns a copy carrying field-level details.
func (e *Error) WithDetails(details interface{}) *Error {
	return &Error{Status: e.Status, Message: e.Message, Details: details}
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

func TooManyRequests(message string) *Error {
	return New(http.StatusTooManyRequests, message)
}

// As extracts an *Error from the chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
