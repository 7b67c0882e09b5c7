package cookie

import (
	"net/http"
	"time"
)

// Options configures cookie attributes for HTTP cookie operations.
type Options struct {
	Path     string
	Domain   string
	MaxAge   int
	Expires  time.Time
	Secure   bool
	HttpOnly bool
	SameSite http.SameSite
}

// Option is a functional option for configuring cookie options.
type Option func(*Options)

// WithPath sets the cookie path attribute.
func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

// WithDomain sets the cookie domain attribute.
func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

// WithMaxAge sets the cookie max-age in seconds.
// Negative values delete the cookie immediately.
func WithMaxAge(seconds int) Option {
	return func(o *Options) {
		o.MaxAge = seconds
	}
}

// WithExpires sets an absolute expiry time.
func WithExpires(t time.Time) Option {
	return func(o *Options) {
		o.Expires = t
	}
}

// WithSecure sets the secure flag, ensuring cookies are only sent over HTTPS.
func WithSecure(secure bool) Option {
	return func(o *Options) {
		o.Secure = secure
	}
}

// WithHTTPOnly prevents JavaScript access to the cookie.
func WithHTTPOnly(httpOnly bool) Option {
	return func(o *Options) {
		o.HttpOnly = httpOnly
	}
}

// WithSameSite sets the SameSite attribute for CSRF protection.
func WithSameSite(sameSite http.SameSite) Option {
	return func(o *Options) {
		o.SameSite = sameSite
	}
}

// applyOptions copies base and applies opts, leaving base untouched.
func applyOptions(base Options, opts []Option) Options {
	result := base
	for _, opt := range opts {
		opt(&result)
	}
	return result
}

// CookiesOption configures a Cookies accessor.
type CookiesOption func(*Cookies)

// WithKeys sets the signing keys. The first key signs new cookies; all keys
// are tried when verifying, which allows rotating keys without logging
// users out. Empty keys are ignored.
func WithKeys(keys ...string) CookiesOption {
	return func(c *Cookies) {
		for _, k := range keys {
			if k != "" {
				c.keys = append(c.keys, []byte(k))
			}
		}
	}
}

// WithDefaults sets the attributes applied to every cookie written.
func WithDefaults(opts ...Option) CookiesOption {
	return func(c *Cookies) {
		c.defaults = applyOptions(c.defaults, opts)
	}
}

// WithMaxSize sets the maximum serialized cookie size.
func WithMaxSize(size int) CookiesOption {
	return func(c *Cookies) {
		if size > 0 {
			c.maxSize = size
		}
	}
}

// WithSecureTransport tells the accessor whether the request arrived over
// TLS. Secure cookies are refused on plain connections.
func WithSecureTransport(secure bool) CookiesOption {
	return func(c *Cookies) {
		c.secureTransport = secure
	}
}
