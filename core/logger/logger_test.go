package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ctxkit/core/logger"
)

type ctxKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("service", "test")),
	)

	log.Info("served",
		logger.Method("GET"),
		logger.Path("/test.html"),
		logger.StatusCode(200),
		logger.Error(nil),
		logger.RequestID(""),
	)

	rec := decode(t, &buf)
	assert.Equal(t, "served", rec["msg"])
	assert.Equal(t, "test", rec["service"])
	assert.Equal(t, "GET", rec["method"])
	assert.Equal(t, "/test.html", rec["path"])
	assert.InDelta(t, 200, rec["status_code"], 0)
	assert.NotContains(t, rec, "error")
	assert.NotContains(t, rec, "request_id")
}

func TestNew_Level(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "msg=kept")
}

func TestNew_Environments(t *testing.T) {
	t.Parallel()

	t.Run("production", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithProduction("ctxkit"), logger.WithOutput(&buf))

		log.Debug("hidden")
		log.Info("visible")

		rec := decode(t, &buf)
		assert.Equal(t, "visible", rec["msg"])
		assert.Equal(t, "ctxkit", rec["service"])
		assert.Equal(t, "production", rec["env"])
	})

	t.Run("development", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("ctxkit"), logger.WithOutput(&buf))

		log.Debug("details")
		assert.Contains(t, buf.String(), "msg=details")
		assert.Contains(t, buf.String(), "env=development")
	})
}

func TestWithContextExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(&buf),
		logger.WithContextValue("request_id", ctxKey{}),
	)

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	log.With(logger.Component("static")).InfoContext(ctx, "hello")

	rec := decode(t, &buf)
	assert.Equal(t, "req-1", rec["request_id"])
	assert.Equal(t, "static", rec["component"])

	buf.Reset()
	log.InfoContext(context.Background(), "no id")
	assert.NotContains(t, decode(t, &buf), "request_id")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
	assert.True(t, logger.File("").Equal(slog.Attr{}))
	assert.True(t, logger.Key("k", nil).Equal(slog.Attr{}))

	errs := logger.Errors(nil, errors.New("boom"))
	assert.Equal(t, "errors", errs.Key)
	require.Len(t, errs.Value.Group(), 1)
	assert.Equal(t, "1", errs.Value.Group()[0].Key)

	assert.Equal(t, 2*time.Second, logger.Latency(2*time.Second).Value.Duration())
}

func TestDiscard(t *testing.T) {
	t.Parallel()
	assert.False(t, logger.Discard().Enabled(context.Background(), slog.LevelError))
}
