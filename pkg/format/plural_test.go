package format_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/intl/pkg/format"
)

func TestPluralCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale string
		n      float64
		want   string
	}{
		{"en", 1, format.PluralOne},
		{"en", -1, format.PluralOne},
		{"en", 0, format.PluralOther},
		{"en", 2, format.PluralOther},
		{"en", 1.5, format.PluralOther},
		{"fr", 0, format.PluralOne},
		{"fr", 1, format.PluralOne},
		{"fr", 2, format.PluralOther},
		{"ru", 1, format.PluralOne},
		{"ru", 3, format.PluralFew},
		{"ru", 5, format.PluralMany},
		{"ru", 21, format.PluralOne},
		{"ar", 0, format.PluralZero},
		{"ar", 2, format.PluralTwo},
		{"en", math.NaN(), format.PluralOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, format.PluralCategory([]string{tt.locale}, tt.n), "%s %v", tt.locale, tt.n)
	}
}

func TestOrdinalCategory(t *testing.T) {
	t.Parallel()

	en := []string{"en"}
	assert.Equal(t, format.PluralOne, format.OrdinalCategory(en, 1))
	assert.Equal(t, format.PluralTwo, format.OrdinalCategory(en, 2))
	assert.Equal(t, format.PluralFew, format.OrdinalCategory(en, 3))
	assert.Equal(t, format.PluralOther, format.OrdinalCategory(en, 4))
	assert.Equal(t, format.PluralOther, format.OrdinalCategory(en, 11))
	assert.Equal(t, format.PluralOne, format.OrdinalCategory(en, 21))
}
