package cookie

import (
	"errors"
	"fmt"
)

var (
	// ErrNoKeys indicates a signed cookie operation without signing keys.
	ErrNoKeys = errors.New("no keys configured for signed cookies")

	// ErrInvalidSignature indicates cookie signature verification failed,
	// suggesting tampering or a key that was rotated out.
	ErrInvalidSignature = errors.New("cookie signature verification failed")

	// ErrCookieNotFound indicates the requested cookie doesn't exist in the request.
	ErrCookieNotFound = errors.New("cookie not found in request")

	// ErrInvalidFormat indicates the cookie value has unexpected format.
	ErrInvalidFormat = errors.New("invalid cookie format")

	// ErrInsecureTransport indicates a Secure cookie was written for a plain HTTP request.
	ErrInsecureTransport = errors.New("cannot send secure cookie over unencrypted connection")

	// ErrInvalidName indicates the cookie name contains forbidden characters.
	ErrInvalidName = errors.New("invalid cookie name")
)

// ErrCookieTooLarge indicates the cookie exceeds the maximum allowed size.
type ErrCookieTooLarge struct {
	Name string
	Size int
	Max  int
}

// Error implements the error interface.
func (e ErrCookieTooLarge) Error() string {
	return fmt.Sprintf("cookie %q size %d exceeds maximum %d bytes", e.Name, e.Size, e.Max)
}
