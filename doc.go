// Package ctxkit provides a per-request Context for HTTP handlers and a
// minimal App that hosts one handler.
//
// A Context bundles the inbound request, the response being built, a cookie
// accessor and the application's shared state, and offers three helpers:
// Assert and Throw convert conditions into typed HTTP errors, and Send
// streams a static file as the response body.
//
// # Features
//
//   - One Request, Response and Cookies accessor per request, never reassigned
//   - Shared application state by pointer, identical across all contexts
//   - Assert/Throw returning httperr kinds for every standard 4xx/5xx status
//   - Static file delivery with traversal protection and cache headers
//   - Context implements context.Context through the request context
//   - Request ids (X-Request-ID or a generated UUID) attached to logs
//
// # Basic Usage
//
//	app := ctxkit.New(func(ctx *ctxkit.Context) error {
//		if err := ctx.Assert(ctx.Cookies().Has("session"), http.StatusUnauthorized); err != nil {
//			return err
//		}
//		_, err := ctx.Send(static.Options{Root: "./public", Index: "index.html"})
//		return err
//	}, ctxkit.WithLogger(log))
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(server.New(":8080").Run(ctx, app))
//	err := g.Wait()
//
// # Errors
//
// A handler signals failure by returning an error. The App's ErrorHandler
// (DefaultErrorHandler unless replaced with WithErrorHandler) resets the
// response and renders the error: httperr kinds keep their status, anything
// else becomes 500.
//
//	return ctx.Throw(http.StatusNotFound, "no such page")
//
// Passing a status without an error kind to Assert or Throw panics: it is
// a bug in the caller, not a condition to report to the client.
//
// # Resource Release
//
// After a successful Send the response body is an open file. App releases
// it once the response is written. Code that builds a Context with
// NewContext and never renders it must call ctx.Response().Destroy().
//
// # Configuration
//
// Config reads APP_NAME, APP_ENV, LOG_LEVEL and the COOKIE_* variables:
//
//	var cfg ctxkit.Config
//	config.MustLoad(&cfg)
//	app := ctxkit.NewFromConfig(cfg, handler)
package ctxkit
