package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError represents a structured error response that implements the error interface.
type HTTPError struct {
	Status  int            `json:"-"`                 // HTTP status code (not in JSON)
	Code    string         `json:"code"`              // Machine-readable error code
	Message string         `json:"message"`           // Human-readable message
	Details map[string]any `json:"details,omitempty"` // Optional context

	cause error
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code for the error.
func (e HTTPError) StatusCode() int {
	return e.Status
}

// Unwrap returns the error attached with WithError, if any.
func (e HTTPError) Unwrap() error {
	return e.cause
}

// Is reports whether target is an error of the same kind.
// Kinds are identified by status code, so a NotFound with a custom
// message still matches ErrNotFound.
func (e HTTPError) Is(target error) bool {
	switch t := target.(type) {
	case HTTPError:
		return t.Status == e.Status
	case *HTTPError:
		return t != nil && t.Status == e.Status
	}
	return false
}

// WithMessage returns a copy of the error with a custom message.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// WithDetails returns a copy of the error with additional details.
func (e HTTPError) WithDetails(details map[string]any) HTTPError {
	e.Details = details
	return e
}

// WithError returns a copy of the error with an error cause.
// The cause is exposed through Unwrap and recorded under details["cause"].
func (e HTTPError) WithError(err error) HTTPError {
	if err == nil {
		return e
	}
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details["cause"] = err.Error()
	e.Details = details
	e.cause = err
	return e
}

// Lookup returns the error kind registered for status.
func Lookup(status int) (HTTPError, bool) {
	e, ok := byStatus[status]
	return e, ok
}

// New returns the error kind for status carrying message.
// An empty message keeps the status text.
//
// New panics when status has no registered kind: passing an arbitrary
// code is a caller bug, not a condition to render as a response.
func New(status int, message string) HTTPError {
	e, ok := byStatus[status]
	if !ok {
		panic(fmt.Sprintf("httperr: no error kind for status %d", status))
	}
	if message != "" {
		e.Message = message
	}
	return e
}

// statusCoder is implemented by errors that carry their own HTTP status.
type statusCoder interface {
	StatusCode() int
}

// From converts any error into an HTTPError.
// HTTPError values pass through unchanged; errors exposing StatusCode()
// map to the matching kind; everything else becomes InternalServerError
// with err attached as the cause.
func From(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	var sc statusCoder
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	base, ok := byStatus[status]
	if !ok {
		base = ErrInternalServerError
	}
	return base.WithError(err)
}
