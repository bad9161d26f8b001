package intl_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/pkg/intl"
)

func TestLoadMessagesFS(t *testing.T) {
	t.Parallel()

	t.Run("layouts", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"en.json":          {Data: []byte(`{"greeting": "Hello, {name}!", "nav": {"home": "Home"}}`)},
			"en/billing.yaml":  {Data: []byte("invoice:\n  title: Invoice {n}\n")},
			"en/nav.yml":       {Data: []byte("about: About\n")},
			"es/shop/cart.yml": {Data: []byte("empty: Tu carrito está vacío\n")},
			"README.md":        {Data: []byte("# not a catalog")},
		}

		messages, err := intl.LoadMessagesFS(fsys)
		require.NoError(t, err)

		for path, want := range map[string]string{
			"greeting":              "Hello, {name}!",
			"nav.home":              "Home",
			"nav.about":             "About",
			"billing.invoice.title": "Invoice {n}",
		} {
			got, ok := intl.Lookup(messages["en"], path)
			require.True(t, ok, path)
			assert.Equal(t, want, got, path)
		}

		got, ok := intl.Lookup(messages["es"], "shop.cart.empty")
		require.True(t, ok)
		assert.Equal(t, "Tu carrito está vacío", got)
		assert.NotContains(t, messages, "README")
	})

	t.Run("invalid files", func(t *testing.T) {
		t.Parallel()

		for name, data := range map[string]string{
			"en.json": `{"greeting": `,
			"fr.json": `["not", "a", "catalog"]`,
			"de.yaml": "key: [unterminated\n",
		} {
			_, err := intl.LoadMessagesFS(fstest.MapFS{name: {Data: []byte(data)}})
			require.ErrorIs(t, err, intl.ErrInvalidFile, name)
		}
	})

	t.Run("config option", func(t *testing.T) {
		t.Parallel()

		cfg, err := intl.NewConfig(
			intl.WithLocaleMessages("en", map[string]any{"nav": map[string]any{"home": "Start"}}),
			intl.WithMessagesFS(fstest.MapFS{
				"en/nav.json": {Data: []byte(`{"home": "Home"}`)},
			}),
		)
		require.NoError(t, err)

		got, err := intl.New(cfg.WithLocale("en"), nil).Get("nav.home", nil)
		require.NoError(t, err)
		assert.Equal(t, "Home", got)
	})
}
