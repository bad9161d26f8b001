package intl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/pkg/intl"
)

func TestIntl_FormatHTMLMessage(t *testing.T) {
	t.Parallel()

	i := intl.New(newConfig(t).WithLocale("en"), nil)

	t.Run("keeps inline markup and strips values", func(t *testing.T) {
		t.Parallel()

		got, err := i.FormatHTMLMessage("<strong>Welcome</strong>, {name}!", intl.Options{
			"name": `<img src=x onerror="alert(1)">Ana`,
		})
		require.NoError(t, err)
		assert.Equal(t, "<strong>Welcome</strong>, Ana!", string(got))
	})

	t.Run("removes unsafe markup from templates", func(t *testing.T) {
		t.Parallel()

		got, err := i.FormatHTMLMessage(`Read the <a href="https://example.com/terms" onclick="x()">terms</a><script>alert(1)</script>`, nil)
		require.NoError(t, err)
		assert.Contains(t, string(got), `href="https://example.com/terms"`)
		assert.Contains(t, string(got), `rel="nofollow"`)
		assert.NotContains(t, string(got), "onclick")
		assert.NotContains(t, string(got), "script")
	})

	t.Run("non-string values pass through", func(t *testing.T) {
		t.Parallel()

		got, err := i.FormatHTMLMessage("<em>{n, plural, one {# item} other {# items}}</em>", intl.Options{"n": 1200})
		require.NoError(t, err)
		assert.Equal(t, "<em>1,200 items</em>", string(got))
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()

		_, err := i.FormatHTMLMessage(nil, nil)
		require.ErrorIs(t, err, intl.ErrInvalidArgument)
	})
}
