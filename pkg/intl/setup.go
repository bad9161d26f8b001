package intl

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/intl/pkg/format"
)

// FallbackLocale backs locales without bundled calendar data.
const FallbackLocale = "en"

// Configure checks that formatting data exists for every locale the
// application serves. Each locale must be a valid BCP 47 tag. Locales with
// no bundled data, even through their base language, are aliased to
// FallbackLocale; number formatting and plural rules still follow the
// locale itself. Calling Configure again is a no-op.
//
// A lone unsupported locale already renders with FallbackLocale data. The
// alias matters for locale lists that mix unsupported and bundled tags:
// without it ["sw", "es"] skips "sw" and renders Spanish calendar names,
// with it the first entry wins and renders with FallbackLocale data.
func Configure(logger *slog.Logger, locales ...string) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var errs []error
	for _, locale := range locales {
		if locale == "" {
			errs = append(errs, ErrEmptyLocale)
			continue
		}
		if _, err := language.Parse(locale); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, locale, err))
			continue
		}
		if format.Supported(locale) {
			continue
		}

		if err := format.RegisterAlias(locale, FallbackLocale); err != nil {
			errs = append(errs, err)
			continue
		}
		logger.Info("intl: no bundled locale data, using fallback",
			slog.String("locale", locale),
			slog.String("fallback", FallbackLocale),
		)
	}
	return errors.Join(errs...)
}
