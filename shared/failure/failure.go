// Package failure carries the HTTP status of an error from the layer that knows it to the
// handler that writes it.
package failure

import (
	"errors"
	"fmt"
	"net/http"
)

const messageInternal = "something went wrong, please try again"

// Failure is an error with the status code it should be answered with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	cause   error
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

func (e *Failure) Error() string {
	return e.Message
}

func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest wraps a decoding or validation error; nil stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: http.StatusBadRequest, Message: err.Error(), cause: err}
}

func BadRequestFromString(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

func Unauthorized(msg string) error {
	return &Failure{Code: http.StatusUnauthorized, Message: msg}
}

func Forbidden(msg string) error {
	return &Failure{Code: http.StatusForbidden, Message: msg}
}

// NotFound reports a missing record, e.g. NotFound("room not found").
func NotFound(msg string) error {
	return &Failure{Code: http.StatusNotFound, Message: msg}
}

// Conflict reports a request that clashes with the current state of a record: a duplicate
// room number, a task completed twice, a reward the member cannot afford.
func Conflict(msg string) error {
	return &Failure{Code: http.StatusConflict, Message: msg}
}

// Conflictf is Conflict with formatting.
func Conflictf(format string, args ...any) error {
	return Conflict(fmt.Sprintf(format, args...))
}

// InternalError wraps an unexpected error; nil stays nil.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: http.StatusInternalServerError, Message: err.Error(), cause: err}
}

// GetCode returns the status of the first Failure in err's chain, 500 when there is none.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// Is reports whether err carries the given status.
func Is(err error, code int) bool {
	return err != nil && GetCode(err) == code
}

// Public is the message a client may see. Errors that are not failures, such as a lost
// database connection, are replaced by a generic message.
func Public(err error) string {
	var fail *Failure
	if errors.As(err, &fail) && fail.Code < http.StatusInternalServerError {
		return fail.Message
	}

	return messageInternal
}
