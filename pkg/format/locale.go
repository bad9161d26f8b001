package format

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Locale holds the calendar and relative-time data a formatter renders with.
// Bundled locales are immutable; do not modify a Locale returned by Resolve.
type Locale struct {
	Tag string

	Months        [12]string
	MonthsShort   [12]string
	Weekdays      [7]string // Sunday first, matching time.Weekday
	WeekdaysShort [7]string

	// NumericOrder lists "year", "month" and "day" in the order numeric dates
	// are written, joined by DateSeparator.
	NumericOrder  [3]string
	DateSeparator string

	// TextPattern lays out dates with a textual month. Field tokens are
	// "weekday", "day", "month" and "year"; any other entry is a literal.
	TextPattern []string

	WeekdaySeparator  string // between weekday and a numeric date
	DateTimeSeparator string
	Hour12            bool
	AM, PM            string

	CurrencyAfter bool // "1.234,50 €" rather than "€1,234.50"

	Relative RelativeData
}

// RelativeData holds relative-time phrases. Future and Past contain a single
// "{0}" placeholder for the quantity and unit.
type RelativeData struct {
	Future, Past string

	// Units maps a unit name to plural category to word,
	// e.g. "day" -> {"one": "day", "other": "days"}.
	Units      map[string]map[string]string
	UnitsShort map[string]map[string]string

	Now                        string
	Yesterday, Today, Tomorrow string
}

var (
	registryMu sync.RWMutex
	aliases    = map[string]string{}
)

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}

func baseLanguage(locale string) string {
	if i := strings.IndexByte(locale, '-'); i > 0 {
		return locale[:i]
	}
	return locale
}

func lookupLocale(locale string) (*Locale, bool) {
	locale = normalizeLocale(locale)
	if locale == "" {
		return nil, false
	}
	if l, ok := bundled[locale]; ok {
		return l, true
	}

	registryMu.RLock()
	target, ok := aliases[locale]
	registryMu.RUnlock()
	if ok {
		if l, ok := bundled[target]; ok {
			return l, true
		}
	}

	if base := baseLanguage(locale); base != locale {
		return lookupLocale(base)
	}
	return nil, false
}

// Supported reports whether formatting data exists for locale, either bundled,
// aliased or through its base language.
func Supported(locale string) bool {
	_, ok := lookupLocale(locale)
	return ok
}

// RegisterAlias maps locale onto the data of target, which must resolve to
// bundled data. Registering the same alias twice is a no-op.
func RegisterAlias(locale, target string) error {
	locale = normalizeLocale(locale)
	if locale == "" {
		return ErrEmptyLocale
	}
	l, ok := lookupLocale(target)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLocale, target)
	}

	registryMu.Lock()
	aliases[locale] = normalizeLocale(l.Tag)
	registryMu.Unlock()
	return nil
}

// Resolve returns the data of the first locale in the list that has any,
// falling back to English.
func Resolve(locales []string) *Locale {
	for _, locale := range locales {
		if l, ok := lookupLocale(locale); ok {
			return l
		}
	}
	return bundled["en"]
}

// Tag returns the first locale in the list that parses as a BCP 47 tag.
// It drives golang.org/x/text number and plural data, which covers far more
// languages than the bundled calendar tables.
func Tag(locales []string) language.Tag {
	for _, locale := range locales {
		if tag, err := language.Parse(strings.TrimSpace(locale)); err == nil {
			return tag
		}
	}
	return language.English
}
