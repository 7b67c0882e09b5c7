// Package cookie provides the per-request cookie accessor.
//
// A Cookies value is bound to one request's headers (for reading) and the
// matching response's headers (for writing Set-Cookie). It stores nothing
// itself, so it is cheap to create for every request.
//
// # Basic Usage
//
//	c := cookie.New(r.Header, res.Header(),
//		cookie.WithKeys("current-key", "previous-key"),
//		cookie.WithSecureTransport(r.TLS != nil),
//	)
//
//	// Read a request cookie
//	theme, err := c.Get("theme")
//	if errors.Is(err, cookie.ErrCookieNotFound) {
//		theme = "light"
//	}
//
//	// Queue a Set-Cookie header
//	err = c.Set("theme", "dark", cookie.WithMaxAge(3600))
//
//	// Expire a cookie
//	err = c.Delete("theme")
//
// # Signed Cookies
//
// Signed cookies carry an HMAC-SHA256 signature bound to the cookie name.
// The first key signs; every key verifies, which allows key rotation:
//
//	err := c.SetSigned("uid", "42")
//	uid, err := c.GetSigned("uid")
//	if errors.Is(err, cookie.ErrInvalidSignature) {
//		// tampered or signed with a retired key
//	}
//
// # Secure Defaults
//
// Cookies default to Path=/, HttpOnly and SameSite=Lax. Writing a Secure
// cookie for a request that did not arrive over TLS fails with
// ErrInsecureTransport instead of silently dropping the flag.
//
// # Configuration
//
// Config loads the defaults from COOKIE_* environment variables; pass
// cfg.Options() to New.
package cookie
