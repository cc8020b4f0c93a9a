package constants

import (
	"errors"
	"net/http"
)

// CodedError carries the HTTP status a failure should be answered with.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrUnauthorized = NewCodedError(http.StatusUnauthorized, "Unauthorized")
	ErrDBNotFound   = NewCodedError(http.StatusNotFound, "record not found")
)

// NewValidationError is answered with 400 and msg as the human message.
func NewValidationError(msg string) *CodedError {
	return NewCodedError(http.StatusBadRequest, msg)
}

// OpError attaches the operation's human message to the underlying cause.
// The error handler shows Message to the client and keeps Err as diagnostic.
type OpError struct {
	Message string
	Err     error
}

func (e *OpError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// Fail wraps err with the message a client sees when the operation fails.
func Fail(message string, err error) error {
	return &OpError{Message: message, Err: err}
}

// StatusCode returns the status of the first CodedError in err's chain, or 500.
func StatusCode(err error) int {
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return http.StatusInternalServerError
}
