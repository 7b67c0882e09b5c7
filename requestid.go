package ctxkit

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/ctxkit/core/logger"
)

// DefaultRequestIDHeader carries the request id in and out.
const DefaultRequestIDHeader = "X-Request-ID"

type requestIDContextKey struct{}

// RequestIDFromContext returns the id App assigned to the request, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, id)
}

// RequestIDExtractor adds the request id to records logged with a request
// context. Pass it to logger.WithContextExtractors.
func RequestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id := RequestIDFromContext(ctx)
	return logger.RequestID(id), id != ""
}
