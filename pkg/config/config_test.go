package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/pkg/config"
)

type cachedConfig struct {
	Name string `env:"CONFIG_TEST_CACHED_NAME" envDefault:"default"`
}

type requiredConfig struct {
	Token string `env:"CONFIG_TEST_REQUIRED_TOKEN,required"`
}

type parsedConfig struct {
	Addr    string        `env:"ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
	Tags    []string      `env:"TAGS" envSeparator:","`
}

func TestLoad(t *testing.T) {
	t.Setenv("CONFIG_TEST_CACHED_NAME", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Name)

	t.Setenv("CONFIG_TEST_CACHED_NAME", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Name)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, config.Load[cachedConfig](nil), config.ErrNilConfig)

	var cfg requiredConfig
	require.ErrorIs(t, config.Load(&cfg), config.ErrParse)
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		var cfg parsedConfig
		require.NoError(t, config.Parse(&cfg, map[string]string{}))
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Empty(t, cfg.Tags)
	})

	t.Run("explicit environment", func(t *testing.T) {
		t.Parallel()

		var cfg parsedConfig
		require.NoError(t, config.Parse(&cfg, map[string]string{
			"ADDR":    ":9090",
			"TIMEOUT": "1m",
			"TAGS":    "a,b",
		}))
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, time.Minute, cfg.Timeout)
		assert.Equal(t, []string{"a", "b"}, cfg.Tags)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()

		var cfg parsedConfig
		require.ErrorIs(t, config.Parse(&cfg, map[string]string{"TIMEOUT": "soon"}), config.ErrParse)
		require.ErrorIs(t, config.Parse[parsedConfig](nil, nil), config.ErrNilConfig)
	})
}
