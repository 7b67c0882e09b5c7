package ctxkit

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/ctxkit/core/cookie"
	"github.com/dmitrymomot/ctxkit/core/httperr"
	"github.com/dmitrymomot/ctxkit/core/logger"
	"github.com/dmitrymomot/ctxkit/core/state"
)

// HandlerFunc handles one request. A returned error is passed to the
// application's ErrorHandler.
type HandlerFunc func(ctx *Context) error

// ErrorHandler turns an error into the context's response.
type ErrorHandler func(ctx *Context, err error)

// App owns the state shared by every request and serves each request with
// a single handler. It is an http.Handler.
type App struct {
	state           *state.State
	handler         HandlerFunc
	errorHandler    ErrorHandler
	logger          *slog.Logger
	cookieOpts      []cookie.CookiesOption
	requestIDHeader string
	newRequestID    func() string
}

var (
	_ http.Handler = (*App)(nil)
	_ Application  = (*App)(nil)
)

// New creates an App dispatching every request to handler. A nil handler
// answers 404. Logging is discarded unless WithLogger is given.
func New(handler HandlerFunc, opts ...Option) *App {
	a := &App{
		state:           state.New(nil),
		handler:         handler,
		errorHandler:    DefaultErrorHandler,
		logger:          logger.Discard(),
		requestIDHeader: DefaultRequestIDHeader,
		newRequestID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.handler == nil {
		a.handler = func(ctx *Context) error {
			return ctx.Throw(http.StatusNotFound)
		}
	}
	return a
}

// NewFromConfig creates an App with the logger and cookie settings from
// cfg. Explicit opts are applied after the configuration.
func NewFromConfig(cfg Config, handler HandlerFunc, opts ...Option) *App {
	return New(handler, append(cfg.Options(), opts...)...)
}

// State returns the shared application state.
func (a *App) State() *state.State {
	return a.state
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// CookieOptions returns the options every Context's cookie accessor is
// built with.
func (a *App) CookieOptions() []cookie.CookiesOption {
	return a.cookieOpts
}

// ServeHTTP builds a Context for r, runs the handler, converts a returned
// error into a response and writes the response. The response body is
// always released, including when the handler panics.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id := r.Header.Get(a.requestIDHeader)
	if id == "" {
		id = a.newRequestID()
	}
	r = r.WithContext(withRequestID(r.Context(), id))

	ctx := NewContext(a, r)
	res := ctx.Response()
	defer func() { _ = res.Destroy() }()

	if err := a.handler(ctx); err != nil {
		if httpErr := httperr.From(err); httpErr.Status >= http.StatusInternalServerError {
			a.logger.ErrorContext(ctx, "request failed",
				logger.StatusCode(httpErr.Status),
				logger.Error(err),
			)
		}
		a.errorHandler(ctx, err)
	}
	res.Header().Set(a.requestIDHeader, id)

	ww := &responseWriter{ResponseWriter: w}
	if err := res.Render(ctx, ww); err != nil {
		a.logger.ErrorContext(ctx, "failed to write response", logger.Error(err))
	}

	a.logger.LogAttrs(ctx, levelFor(ww.Status()), "request completed",
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		logger.StatusCode(ww.Status()),
		logger.Latency(time.Since(start)),
		logger.BytesOut(ww.written),
		logger.ClientIP(ctx.Request().IP()),
	)
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
