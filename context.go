package ctxkit

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/ctxkit/core/cookie"
	"github.com/dmitrymomot/ctxkit/core/httperr"
	"github.com/dmitrymomot/ctxkit/core/request"
	"github.com/dmitrymomot/ctxkit/core/response"
	"github.com/dmitrymomot/ctxkit/core/state"
	"github.com/dmitrymomot/ctxkit/core/static"
)

// Application is what a Context needs from the application serving it.
type Application interface {
	State() *state.State
}

// cookieConfigurer is implemented by applications that supply cookie
// defaults or signing keys.
type cookieConfigurer interface {
	CookieOptions() []cookie.CookiesOption
}

// Context carries everything a handler needs for one request: the request,
// the response being built, cookie access and the application's shared
// state.
//
// Context implements context.Context by delegating to the request's
// context, so it can be passed to any blocking call and observes client
// disconnects.
type Context struct {
	app      Application
	state    *state.State
	request  *request.Request
	response *response.Response
	cookies  *cookie.Cookies
}

var _ context.Context = (*Context)(nil)

// NewContext binds a fresh Request, Response and Cookies accessor to r and
// shares app's state. It performs no I/O.
//
// It panics when app or r is nil.
func NewContext(app Application, r *http.Request) *Context {
	if app == nil {
		panic("ctxkit: nil Application")
	}
	req := request.New(r)
	res := response.New()

	opts := []cookie.CookiesOption{cookie.WithSecureTransport(req.Secure())}
	if cc, ok := app.(cookieConfigurer); ok {
		opts = slices.Concat(cc.CookieOptions(), opts)
	}

	return &Context{
		app:      app,
		state:    app.State(),
		request:  req,
		response: res,
		cookies:  cookie.New(req.Header(), res.Header(), opts...),
	}
}

// Deadline delegates to the request context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.request.Raw().Context().Deadline()
}

// Done delegates to the request context.
func (c *Context) Done() <-chan struct{} {
	return c.request.Raw().Context().Done()
}

// Err delegates to the request context.
func (c *Context) Err() error {
	return c.request.Raw().Context().Err()
}

// Value delegates to the request context.
func (c *Context) Value(key any) any {
	return c.request.Raw().Context().Value(key)
}

// App returns the application that created the context.
func (c *Context) App() Application {
	return c.app
}

// State returns the application state. It is the same pointer for every
// Context of the application.
func (c *Context) State() *state.State {
	return c.state
}

// Request returns the inbound request.
func (c *Context) Request() *request.Request {
	return c.request
}

// Response returns the response being built.
func (c *Context) Response() *response.Response {
	return c.response
}

// Cookies returns the cookie accessor bound to this request and response.
func (c *Context) Cookies() *cookie.Cookies {
	return c.cookies
}

// Assert returns nil when cond is truthy and the error kind for status
// otherwise. The message defaults to the status text.
//
// Falsy values are nil, false, numeric zero (NaN included), the empty
// string and nil pointers, maps, slices, funcs, channels and interfaces.
// Everything else, including empty non-nil slices, is truthy.
//
//	if err := ctx.Assert(user, http.StatusUnauthorized); err != nil {
//		return err
//	}
//
// Assert panics when status has no error kind, even if cond is truthy.
func (c *Context) Assert(cond any, status int, message ...string) error {
	err := httperr.New(status, strings.Join(message, " "))
	if truthy(cond) {
		return nil
	}
	return err
}

// Throw returns the error kind for status. Return it from the handler:
//
//	return ctx.Throw(http.StatusNotFound, "no such user")
//
// Throw panics when status has no error kind.
func (c *Context) Throw(status int, message ...string) error {
	return httperr.New(status, strings.Join(message, " "))
}

// Send serves a file from opts.Root as the response body. See static.Send.
// It returns the root-relative name of the served file.
func (c *Context) Send(opts static.Options) (string, error) {
	return static.Send(c, c.request, c.response, opts)
}
