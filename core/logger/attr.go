package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Helpers return an empty Attr for zero inputs where that makes sense,
// so log.Info("msg", logger.Error(err)) needs no nil check.

// Group nests attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error logs err under "error". Nil errors produce an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errs under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Duration logs d under "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Latency logs d under "latency".
func Latency(d time.Duration) slog.Attr {
	return slog.Duration("latency", d)
}

// RequestID logs a request identifier. Empty ids produce an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Method logs an HTTP method.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path logs a URL path.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// StatusCode logs an HTTP status code.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// ClientIP logs the client address.
func ClientIP(ip string) slog.Attr {
	if ip == "" {
		return slog.Attr{}
	}
	return slog.String("client_ip", ip)
}

// UserAgent logs the User-Agent header.
func UserAgent(ua string) slog.Attr {
	if ua == "" {
		return slog.Attr{}
	}
	return slog.String("user_agent", ua)
}

// BytesOut logs the number of body bytes written.
func BytesOut(n int64) slog.Attr {
	return slog.Int64("bytes_out", n)
}

// File logs the name of a served file.
func File(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("file", name)
}

// Component logs the subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event logs a lifecycle event name.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Key logs an arbitrary value. Nil values produce an empty Attr.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}
