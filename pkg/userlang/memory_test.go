package userlang_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/pkg/userlang"
)

func TestMemory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("round trip with canonical codes", func(t *testing.T) {
		t.Parallel()

		store := userlang.NewMemory()
		id := uuid.New()

		_, err := store.Language(ctx, id)
		require.ErrorIs(t, err, userlang.ErrNotFound)

		require.NoError(t, store.SetLanguage(ctx, id, "EN_us"))
		lang, err := store.Language(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "en-US", lang.Code)
		assert.False(t, lang.UpdatedAt.IsZero())

		require.NoError(t, store.SetLanguage(ctx, id, "es"))
		lang, err = store.Language(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "es", lang.Code)
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()

		store := userlang.NewMemory()
		require.ErrorIs(t, store.SetLanguage(ctx, uuid.Nil, "es"), userlang.ErrInvalidUserID)
		require.ErrorIs(t, store.SetLanguage(ctx, uuid.New(), ""), userlang.ErrInvalidLanguage)
		require.ErrorIs(t, store.SetLanguage(ctx, uuid.New(), "not a language"), userlang.ErrInvalidLanguage)

		_, err := store.Language(ctx, uuid.Nil)
		require.ErrorIs(t, err, userlang.ErrInvalidUserID)
	})
}

func TestParseUserID(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	got, err := userlang.ParseUserID(" " + id.String() + " ")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	for _, in := range []string{"", "42", uuid.Nil.String()} {
		_, err := userlang.ParseUserID(in)
		require.ErrorIs(t, err, userlang.ErrInvalidUserID, in)
	}
}

func TestCanonicalCode(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"es":    "es",
		"pt_br": "pt-BR",
		"EN-gb": "en-GB",
	}
	for in, want := range tests {
		got, err := userlang.CanonicalCode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
