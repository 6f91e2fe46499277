// Package apperr defines the error taxonomy returned to API clients.
// Every domain failure is one of these; anything else surfaces as a
// generic 500 with no internal detail.
package apperr

import (
	"errors"
	"net/http"
)

type Error struct {
	Status  int               `json:"-"`
	Message string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// From extracts an *Error from err, if it carries one.
func From(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// InvalidInput reports a validation failure with per-field messages.
// All failing fields are collected before this is returned.
func InvalidInput(fields map[string]string) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Message: "Received data is not valid.",
		Fields:  fields,
	}
}

// InvalidState reports an operation rejected by the entity's current state.
func InvalidState(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}
