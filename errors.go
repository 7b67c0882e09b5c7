package ctxkit

import (
	"strings"

	"github.com/dmitrymomot/ctxkit/core/httperr"
)

// DefaultErrorHandler replaces the response with a rendering of err.
//
// httperr kinds keep their status and message; any other error becomes
// 500 Internal Server Error. Clients that accept JSON receive
// {"code","message","details"}, everyone else the plain message. Details
// of 5xx errors are never sent to the client.
func DefaultErrorHandler(ctx *Context, err error) {
	httpErr := httperr.From(err)
	if httpErr.Status >= 500 {
		httpErr = httpErr.WithDetails(nil)
	}

	res := ctx.Response()
	_ = res.Reset()
	res.SetStatus(httpErr.Status)

	if acceptsJSON(ctx.Request().Header().Get("Accept")) {
		res.SetType("json")
		res.SetBody(httpErr)
		return
	}
	res.SetType(".txt")
	res.SetBody(httpErr.Message)
}

func acceptsJSON(accept string) bool {
	return strings.Contains(accept, "application/json") || strings.Contains(accept, "+json")
}
