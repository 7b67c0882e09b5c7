// Package httperr maps HTTP status codes to typed error kinds.
//
// Every standard 4xx and 5xx status has a predefined HTTPError value
// (ErrBadRequest, ErrUnauthorized, ErrNotFound, ...). Kinds are compared by
// status code, so errors.Is matches regardless of the message:
//
//	err := httperr.New(http.StatusNotFound, "no such user")
//	errors.Is(err, httperr.ErrNotFound) // true
//
// New panics for status codes without a kind. From converts arbitrary
// errors for rendering, falling back to ErrInternalServerError.
package httperr
