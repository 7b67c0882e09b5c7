// Package logger builds slog loggers and provides attribute helpers with
// consistent key names.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithProduction("ctxkit"),
//		logger.WithOutput(os.Stderr),
//	)
//
//	log.Info("server started",
//		logger.Component("server"),
//		logger.Event("startup"),
//	)
//
// WithDevelopment selects text output at debug level; WithStaging and
// WithProduction select JSON at info level. Every environment preset adds
// "service" and "env" attributes.
//
// # Context Values
//
// Extractors copy request-scoped values from the context into each record
// logged with one of the *Context methods:
//
//	log := logger.New(
//		logger.WithJSONFormatter(),
//		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
//			id := ctxkit.RequestIDFromContext(ctx)
//			return logger.RequestID(id), id != ""
//		}),
//	)
//	log.InfoContext(ctx, "file served", logger.File(name))
//
// # Attribute Helpers
//
//	log.Info("request completed",
//		logger.Method(r.Method),
//		logger.Path(r.URL.Path),
//		logger.StatusCode(200),
//		logger.Latency(time.Since(start)),
//		logger.BytesOut(n),
//	)
//
// Helpers that take an error, id or optional value return an empty Attr for
// the zero input, which slog drops:
//
//	log.Error("render failed", logger.Error(err)) // safe when err is nil
//
// # Testing
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
package logger
