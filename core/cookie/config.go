package cookie

import (
	"net/http"
	"strings"
)

// Config provides environment-based configuration for cookie accessors.
type Config struct {
	Keys     string        `env:"COOKIE_KEYS" envDefault:""`
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN" envDefault:""`
	MaxAge   int           `env:"COOKIE_MAX_AGE" envDefault:"0"`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // SameSiteLaxMode
	MaxSize  int           `env:"COOKIE_MAX_SIZE" envDefault:"4096"`
}

// DefaultConfig returns a Config with secure defaults.
func DefaultConfig() Config {
	return Config{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxSize:  MaxCookieSize,
	}
}

// ParseKeys splits comma-separated keys for rotation support.
// Blank entries are dropped.
func (c Config) ParseKeys() []string {
	if c.Keys == "" {
		return nil
	}

	parts := strings.Split(c.Keys, ",")
	keys := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			keys = append(keys, s)
		}
	}
	return keys
}

// Options converts the configuration into accessor options.
// Only non-zero values override the accessor defaults.
func (c Config) Options() []CookiesOption {
	attrs := make([]Option, 0, 6)
	if c.Path != "" {
		attrs = append(attrs, WithPath(c.Path))
	}
	if c.Domain != "" {
		attrs = append(attrs, WithDomain(c.Domain))
	}
	if c.MaxAge != 0 {
		attrs = append(attrs, WithMaxAge(c.MaxAge))
	}
	if c.Secure {
		attrs = append(attrs, WithSecure(true))
	}
	attrs = append(attrs, WithHTTPOnly(c.HttpOnly))
	if c.SameSite != 0 {
		attrs = append(attrs, WithSameSite(c.SameSite))
	}

	opts := []CookiesOption{WithDefaults(attrs...)}
	if keys := c.ParseKeys(); len(keys) > 0 {
		opts = append(opts, WithKeys(keys...))
	}
	if c.MaxSize > 0 {
		opts = append(opts, WithMaxSize(c.MaxSize))
	}
	return opts
}
