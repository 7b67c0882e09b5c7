package static

import "time"

// Options controls a single Send call.
type Options struct {
	// Root is the directory (or key prefix, for custom sources) files are
	// served from. Required.
	Root string

	// Path overrides the request path when set.
	Path string

	// Index is the file served for paths ending in a slash, e.g. "index.html".
	Index string

	// MaxAge is written as Cache-Control max-age, rounded down to seconds.
	MaxAge time.Duration

	// Immutable appends the immutable directive to Cache-Control.
	Immutable bool

	// Hidden allows files and directories whose name starts with a dot.
	Hidden bool

	// Format serves a directory's Index even without the trailing slash.
	Format bool

	// Extensions are tried in order when the path has no extension and
	// does not exist as given, e.g. []string{"html", "htm"}.
	Extensions []string

	// Brotli and Gzip serve precompressed .br and .gz siblings when the
	// client accepts the encoding.
	Brotli bool
	Gzip   bool

	// Confine refuses symbolic links that resolve outside Root. Use it
	// when untrusted users can write below Root. Ignored with a Source.
	Confine bool

	// Source supplies the files. Defaults to Dir(Root), or ConfinedDir(Root)
	// with Confine.
	Source Source
}

// Config provides environment-based defaults for Options.
type Config struct {
	Root       string        `env:"STATIC_ROOT" envDefault:"./public"`
	Index      string        `env:"STATIC_INDEX" envDefault:"index.html"`
	MaxAge     time.Duration `env:"STATIC_MAX_AGE" envDefault:"0s"`
	Immutable  bool          `env:"STATIC_IMMUTABLE" envDefault:"false"`
	Hidden     bool          `env:"STATIC_HIDDEN" envDefault:"false"`
	Format     bool          `env:"STATIC_FORMAT" envDefault:"true"`
	Extensions []string      `env:"STATIC_EXTENSIONS" envSeparator:","`
	Brotli     bool          `env:"STATIC_BROTLI" envDefault:"false"`
	Gzip       bool          `env:"STATIC_GZIP" envDefault:"false"`
	Confine    bool          `env:"STATIC_CONFINE" envDefault:"false"`
}

// DefaultConfig returns a Config serving ./public with index.html.
func DefaultConfig() Config {
	return Config{
		Root:   "./public",
		Index:  "index.html",
		Format: true,
	}
}

// Options converts the configuration into Send options.
func (c Config) Options() Options {
	return Options{
		Root:       c.Root,
		Index:      c.Index,
		MaxAge:     c.MaxAge,
		Immutable:  c.Immutable,
		Hidden:     c.Hidden,
		Format:     c.Format,
		Extensions: c.Extensions,
		Brotli:     c.Brotli,
		Gzip:       c.Gzip,
		Confine:    c.Confine,
	}
}
