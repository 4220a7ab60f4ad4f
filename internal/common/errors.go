package common

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeMalformed   Code = "MALFORMED"
	CodeValidation  Code = "VALIDATION"
	CodeStorage     Code = "STORAGE"
	CodePersistence Code = "PERSISTENCE"
	CodeMirror      Code = "MIRROR"
	CodeInternal    Code = "INTERNAL"
)

// Error is the failure shape every service call returns across the
// handler boundary. Fields is only set for validation failures and holds
// the per-field messages, every violated field included.
type Error struct {
	Code    Code
	Message string
	Fields  map[string][]string
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

func NewError(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func NewValidationError(message string, fields map[string][]string) *Error {
	return &Error{Code: CodeValidation, Message: message, Fields: fields}
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// HTTPStatus maps an error code to the status the JSON response uses.
// Internal detail never leaks: callers send only the static Message.
func HTTPStatus(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeMalformed, CodeValidation:
		return http.StatusBadRequest
	case CodeStorage, CodePersistence, CodeMirror, CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
