// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/ctxkit/core/config"
//
//	var cfg static.Config // STATIC_ROOT, STATIC_INDEX, STATIC_MAX_AGE, ...
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure during startup
//	var srv server.Config
//	config.MustLoad(&srv)
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 s3.Config
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 s3.Config
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	// Each type has its own cache entry
//	config.MustLoad(&server.Config{})
//	config.MustLoad(&ctxkit.Config{})
//
// Call Reset in tests that change the environment between loads.
package config
