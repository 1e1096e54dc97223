package exception

import (
	"errors"
	"fmt"
)

// FieldError describes one invalid field of a request or term.
type FieldError struct {
	Path    string `json:"path"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ApplicationError handles application level errors.
type ApplicationError struct {
	Message    string
	StatusCode int
	Cause      error
	Fields     []FieldError
}

// Error interface implementation.
func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	if e.Cause == nil {
		return errors.New(e.Message)
	}

	return e.Cause
}

// Is matches on message. A target without a cause acts as a sentinel and
// matches any error carrying the same message.
func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	if e.Message != targetErr.Message {
		return false
	}

	return targetErr.Cause == nil || errors.Is(e.Cause, targetErr.Cause)
}

// ErrorCode returns error code for an application error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}

// WithCause returns a copy of e wrapping cause.
func (e ApplicationError) WithCause(cause error) ApplicationError {
	e.Cause = cause
	return e
}

// WithFields returns a copy of e carrying field level details.
func (e ApplicationError) WithFields(fields ...FieldError) ApplicationError {
	e.Fields = append(append([]FieldError(nil), e.Fields...), fields...)
	return e
}
