package intl_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/intl/pkg/intl"
)

func TestMatchAcceptLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		available []string
		want      []string
	}{
		{"regional falls back to base", "fr-CA,fr;q=0.9,es;q=0.8", []string{"es", "fr"}, []string{"fr", "es"}},
		{"unsupported entries are skipped", "fr,es", []string{"es", "en"}, []string{"es"}},
		{"nothing acceptable", "de,fr", []string{"es", "en"}, nil},
		{"empty header", "", []string{"es", "en"}, nil},
		{"no available locales", "es", nil, nil},
		{"quality order", "en;q=0.5, es;q=0.9", []string{"en", "es"}, []string{"es", "en"}},
		{"equal quality keeps header order", "en, es", []string{"es", "en"}, []string{"en", "es"}},
		{"q=0 is rejected", "es;q=0, en", []string{"es", "en"}, []string{"en"}},
		{"malformed quality is ignored", "en;q=abc, es", []string{"es", "en"}, []string{"es"}},
		{"quality out of range is ignored", "en;q=2, es", []string{"es", "en"}, []string{"es"}},
		{"invalid tag is ignored", "not a tag!, es", []string{"es", "en"}, []string{"es"}},
		{"case insensitive", "EN-us", []string{"es", "en-US"}, []string{"en-US"}},
		{"same base language", "en-GB", []string{"es", "en-US"}, []string{"en-US"}},
		{"exact beats base", "en-GB", []string{"en", "en-GB"}, []string{"en-GB"}},
		{"wildcard", "de, *;q=0.1", []string{"es", "en"}, []string{"es", "en"}},
		{"wildcard after match", "en, *", []string{"es", "en"}, []string{"en", "es"}},
		{"duplicates collapse", "es-ES, es-MX, es", []string{"es"}, []string{"es"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, intl.MatchAcceptLanguage(tt.header, tt.available))
		})
	}

	t.Run("oversized header is truncated", func(t *testing.T) {
		t.Parallel()

		header := "es," + strings.Repeat("de;q=0.5,", 600) + "en"
		assert.Equal(t, []string{"es"}, intl.MatchAcceptLanguage(header, []string{"es", "en"}))
	})
}

func TestNegotiate(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Accept-Language", "en-US,en;q=0.9")
	assert.Equal(t, []string{"en"}, intl.Negotiate(r, []string{"es", "en"}))

	bare := httptest.NewRequest("GET", "/", nil)
	assert.Nil(t, intl.Negotiate(bare, []string{"es", "en"}))
}
