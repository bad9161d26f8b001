package intl_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/pkg/format"
	"github.com/dmitrymomot/intl/pkg/intl"
)

func TestConfigure(t *testing.T) {
	t.Parallel()

	t.Run("bundled and unsupported locales", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		require.NoError(t, intl.Configure(logger, "es", "en-US", "sw"))
		assert.True(t, format.Supported("sw"))
		assert.Contains(t, buf.String(), `"locale":"sw"`)
		assert.NotContains(t, buf.String(), `"locale":"en-US"`)

		require.NoError(t, intl.Configure(nil, "sw"))

		cfg, err := intl.NewConfig(intl.WithDefaultLocale("sw"))
		require.NoError(t, err)
		got, err := intl.New(cfg, nil).FormatDate(sample, "long", nil)
		require.NoError(t, err)
		assert.Equal(t, "January 2, 2024", got)
	})

	t.Run("alias keeps an unsupported locale first in a list", func(t *testing.T) {
		t.Parallel()

		cfg, err := intl.NewConfig(intl.WithDefaultLocale("en"))
		require.NoError(t, err)
		opts := intl.Options{"locales": []string{"zu", "es"}}

		got, err := intl.New(cfg, nil).FormatDate(sample, "long", opts)
		require.NoError(t, err)
		assert.Equal(t, "2 de enero de 2024", got)

		require.NoError(t, intl.Configure(nil, "zu"))

		got, err = intl.New(cfg, nil).FormatDate(sample, "long", opts)
		require.NoError(t, err)
		assert.Equal(t, "January 2, 2024", got)
	})

	t.Run("invalid locales", func(t *testing.T) {
		t.Parallel()

		err := intl.Configure(nil, "", "not a locale!", "es")
		require.ErrorIs(t, err, intl.ErrEmptyLocale)
		require.ErrorIs(t, err, intl.ErrInvalidLocale)
	})
}
