// Package server runs an http.Handler with production timeouts and graceful
// shutdown. It is the listener half of a ctxkit application: ctxkit.App is
// an http.Handler, and Server drives it.
//
// # Usage
//
//	srv := server.New(":8080",
//		server.WithLogger(log),
//		server.WithShutdownTimeout(10*time.Second),
//	)
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, app))
//	if err := g.Wait(); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run returns a func() error so it drops straight into errgroup. When ctx
// is canceled the server stops accepting connections and waits up to the
// shutdown timeout for in-flight responses.
//
// # Configuration
//
// Config reads SERVER_* environment variables:
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//
// Setting SERVER_TLS_CERT_FILE and SERVER_TLS_KEY_FILE switches to HTTPS
// with TLS 1.2 as the minimum version. WithTLS accepts a custom tls.Config.
//
// # Defaults
//
//   - ReadTimeout: 15s
//   - ReadHeaderTimeout: 5s
//   - WriteTimeout: none, file bodies are streamed
//   - IdleTimeout: 60s
//   - ShutdownTimeout: 30s
//   - MaxHeaderBytes: 1 MB
//
// Start binds synchronously, so a port already in use is reported as
// ErrListen before anything is served. Addr reports the bound address,
// which makes ":0" usable in tests.
package server
