package logger

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/intl/pkg/intl"
)

// LocaleExtractor adds the request locale resolved by the intl middleware
// as the "locale" attribute.
func LocaleExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if locale := intl.LocaleFromContext(ctx); locale != "" {
			return slog.String("locale", locale), true
		}
		return slog.Attr{}, false
	}
}
