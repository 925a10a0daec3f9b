package config_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accesskit/accesskit/pkg/config"
)

type testConfig struct {
	Level  string `env:"TEST_CFG_LEVEL" envDefault:"info"`
	Format string `env:"TEST_CFG_FORMAT" envDefault:"json"`
	Depth  int    `env:"TEST_CFG_DEPTH" envDefault:"10"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, 10, cfg.Depth)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("TEST_CFG_LEVEL", "debug")
		t.Setenv("TEST_CFG_DEPTH", "3")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "debug", cfg.Level)
		assert.Equal(t, 3, cfg.Depth)
	})

	t.Run("unparsable value", func(t *testing.T) {
		t.Setenv("TEST_CFG_DEPTH", "not-a-number")

		var cfg testConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrParsingConfig))
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.True(t, errors.Is(err, config.ErrNilPointer))
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("valid config does not panic", func(t *testing.T) {
		var cfg testConfig
		assert.NotPanics(t, func() {
			config.MustLoad(&cfg)
		})
	})

	t.Run("invalid config panics", func(t *testing.T) {
		t.Setenv("TEST_CFG_DEPTH", "boom")
		var cfg testConfig
		assert.Panics(t, func() {
			config.MustLoad(&cfg)
		})
	})
}
