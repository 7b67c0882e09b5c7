package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ctxkit/core/config"
)

type cachedConfig struct {
	Name    string        `env:"CONFIG_TEST_NAME" envDefault:"default"`
	Timeout time.Duration `env:"CONFIG_TEST_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Secret string `env:"CONFIG_TEST_SECRET,required"`
}

func TestLoad_Caches(t *testing.T) {
	config.Reset()
	t.Setenv("CONFIG_TEST_NAME", "first")

	var cfg cachedConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "first", cfg.Name)
	assert.Equal(t, 5*time.Second, cfg.Timeout)

	t.Setenv("CONFIG_TEST_NAME", "second")
	var again cachedConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "first", again.Name)

	config.Reset()
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "second", again.Name)
}

func TestLoad_Errors(t *testing.T) {
	config.Reset()

	err := config.Load(&requiredConfig{})
	assert.ErrorIs(t, err, config.ErrParse)

	assert.ErrorIs(t, config.Load[requiredConfig](nil), config.ErrNilConfig)
	assert.Panics(t, func() { config.MustLoad(&requiredConfig{}) })

	t.Setenv("CONFIG_TEST_SECRET", "s3cr3t")
	var cfg requiredConfig
	assert.NotPanics(t, func() { config.MustLoad(&cfg) })
	assert.Equal(t, "s3cr3t", cfg.Secret)
}
