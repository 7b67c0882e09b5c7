package ctxkit

import (
	"os"

	"github.com/dmitrymomot/ctxkit/core/cookie"
	"github.com/dmitrymomot/ctxkit/core/logger"
)

// Config provides environment-based configuration for an App.
type Config struct {
	Name     string `env:"APP_NAME" envDefault:"ctxkit"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`
	Cookie   cookie.Config
}

// DefaultConfig returns a development configuration.
func DefaultConfig() Config {
	return Config{
		Name:   "ctxkit",
		Env:    "development",
		Cookie: cookie.DefaultConfig(),
	}
}

// Options converts the configuration into App options: a logger for the
// environment that tags records with the request id, and cookie defaults.
func (c Config) Options() []Option {
	logOpts := make([]logger.Option, 0, 4)
	switch c.Env {
	case "production":
		logOpts = append(logOpts, logger.WithProduction(c.Name))
	case "staging":
		logOpts = append(logOpts, logger.WithStaging(c.Name))
	default:
		logOpts = append(logOpts, logger.WithDevelopment(c.Name))
	}
	if c.LogLevel != "" {
		logOpts = append(logOpts, logger.WithLevel(logger.ParseLevel(c.LogLevel)))
	}
	logOpts = append(logOpts,
		logger.WithOutput(os.Stdout),
		logger.WithContextExtractors(RequestIDExtractor),
	)

	return []Option{
		WithLogger(logger.New(logOpts...)),
		WithCookieOptions(c.Cookie.Options()...),
	}
}
