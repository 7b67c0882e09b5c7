package ctxkit

import (
	"log/slog"

	"github.com/dmitrymomot/ctxkit/core/cookie"
	"github.com/dmitrymomot/ctxkit/core/state"
)

// Option configures an App.
type Option func(*App)

// WithState shares s with every request instead of a fresh empty state.
func WithState(s *state.State) Option {
	return func(a *App) {
		if s != nil {
			a.state = s
		}
	}
}

// WithLogger sets the logger used for request and error logs.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithErrorHandler replaces DefaultErrorHandler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		if h != nil {
			a.errorHandler = h
		}
	}
}

// WithCookieOptions adds options for every request's cookie accessor.
func WithCookieOptions(opts ...cookie.CookiesOption) Option {
	return func(a *App) {
		a.cookieOpts = append(a.cookieOpts, opts...)
	}
}

// WithKeys sets the cookie signing keys. The first key signs; all verify.
func WithKeys(keys ...string) Option {
	return WithCookieOptions(cookie.WithKeys(keys...))
}

// WithRequestIDHeader changes the header the request id is read from and
// echoed in.
func WithRequestIDHeader(name string) Option {
	return func(a *App) {
		if name != "" {
			a.requestIDHeader = name
		}
	}
}

// WithRequestIDGenerator replaces the UUID generator used when the request
// carries no id.
func WithRequestIDGenerator(fn func() string) Option {
	return func(a *App) {
		if fn != nil {
			a.newRequestID = fn
		}
	}
}
