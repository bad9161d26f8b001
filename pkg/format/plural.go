package format

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/feature/plural"
)

// Plural category names as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// PluralCategory returns the cardinal plural category of n for the first
// usable locale in the list ("1 day", "2 days").
func PluralCategory(locales []string, n float64) string {
	return matchPlural(plural.Cardinal, locales, n)
}

// OrdinalCategory returns the ordinal plural category of n
// ("1st", "2nd", "3rd", "4th" in English).
func OrdinalCategory(locales []string, n float64) string {
	return matchPlural(plural.Ordinal, locales, n)
}

func matchPlural(rules *plural.Rules, locales []string, n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return PluralOther
	}
	i, v, w, f, t := operands(math.Abs(n))
	switch rules.MatchPlural(Tag(locales), i, v, w, f, t) {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}

// operands computes the CLDR plural operands of a non-negative number:
// integer digits, visible fraction digit count with and without trailing
// zeros, and the fraction digits themselves with and without trailing zeros.
func operands(n float64) (i, v, w, f, t int) {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	// Rules only inspect the low digits of the integer part.
	if len(intPart) > 9 {
		intPart = "1" + intPart[len(intPart)-8:]
	}
	i, _ = strconv.Atoi(intPart)

	if len(frac) > 9 {
		frac = frac[:9]
	}
	v = len(frac)
	if v > 0 {
		f, _ = strconv.Atoi(frac)
	}
	trimmed := strings.TrimRight(frac, "0")
	w = len(trimmed)
	if w > 0 {
		t, _ = strconv.Atoi(trimmed)
	}
	return i, v, w, f, t
}
