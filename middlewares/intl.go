package middlewares

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/intl/pkg/intl"
	"github.com/dmitrymomot/intl/pkg/logger"
)

// ErrNoLanguage is returned by User.Language when the user has no stored
// preference. The negotiated locale is kept without logging.
var ErrNoLanguage = errors.New("middlewares: user has no language preference")

// Language is a stored language preference.
type Language struct {
	Code string
}

// User is an authenticated user whose language preference can be looked up.
type User interface {
	Language(ctx context.Context) (Language, error)
}

// Negotiator picks the acceptable available locales for a request, best
// first. An empty result means no preference.
type Negotiator func(r *http.Request, available []string) []string

// UserResolver returns the authenticated user of a request, if any.
type UserResolver func(r *http.Request) (User, bool)

// IntlConfig configures the Intl middleware.
type IntlConfig struct {
	Negotiator          Negotiator
	UserResolver        UserResolver
	UserLanguageTimeout time.Duration
	Logger              *slog.Logger
	IntlOptions         []intl.IntlOption
}

// IntlOption configures IntlConfig.
type IntlOption func(*IntlConfig)

// WithNegotiator replaces the default Accept-Language negotiation.
func WithNegotiator(n Negotiator) IntlOption {
	return func(cfg *IntlConfig) {
		cfg.Negotiator = n
	}
}

// WithUserResolver enables stored user preferences. A user's language, when
// it can be loaded, takes precedence over negotiation.
func WithUserResolver(fn UserResolver) IntlOption {
	return func(cfg *IntlConfig) {
		cfg.UserResolver = fn
	}
}

// WithUserLanguageTimeout bounds the user language lookup.
func WithUserLanguageTimeout(d time.Duration) IntlOption {
	return func(cfg *IntlConfig) {
		cfg.UserLanguageTimeout = d
	}
}

// WithIntlLogger sets the logger for lookup failures. It is also handed to
// every façade for missing message warnings.
func WithIntlLogger(l *slog.Logger) IntlOption {
	return func(cfg *IntlConfig) {
		cfg.Logger = l
	}
}

// WithIntlOptions passes extra options to every per-request façade.
func WithIntlOptions(opts ...intl.IntlOption) IntlOption {
	return func(cfg *IntlConfig) {
		cfg.IntlOptions = append(cfg.IntlOptions, opts...)
	}
}

// Intl returns middleware that resolves the request locale and attaches an
// *intl.Intl bound to it to the request context.
//
// The locale is the first negotiated available locale, or base.DefaultLocale.
// When a user resolver is configured and the request has a user, the user's
// stored language replaces it; an empty stored code selects the default
// locale and ErrNoLanguage keeps the negotiated one. A failed lookup is
// logged and the negotiated locale is kept, so the request never fails
// because of it.
//
// base is never modified. cache should be shared by the whole process.
func Intl(base *intl.Config, cache *intl.FormatterCache, opts ...IntlOption) func(http.Handler) http.Handler {
	cfg := &IntlConfig{
		Negotiator: intl.Negotiate,
		Logger:     logger.NewNope(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cache == nil {
		cache = intl.NewFormatterCache()
	}

	intlOpts := append([]intl.IntlOption{intl.WithLogger(cfg.Logger)}, cfg.IntlOptions...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := base.DefaultLocale
			if matched := cfg.Negotiator(r, base.AvailableLocales); len(matched) > 0 {
				locale = matched[0]
			}

			if cfg.UserResolver != nil {
				if user, ok := cfg.UserResolver(r); ok && user != nil {
					locale = userLocale(r, cfg, user, base.DefaultLocale, locale)
				}
			}

			i := intl.New(base.WithLocale(locale), cache, intlOpts...)
			next.ServeHTTP(w, r.WithContext(intl.NewContext(r.Context(), i)))
		})
	}
}

func userLocale(r *http.Request, cfg *IntlConfig, user User, defaultLocale, negotiated string) string {
	ctx := r.Context()
	if cfg.UserLanguageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.UserLanguageTimeout)
		defer cancel()
	}

	lang, err := user.Language(ctx)
	if errors.Is(err, ErrNoLanguage) {
		return negotiated
	}
	if err != nil {
		cfg.Logger.WarnContext(r.Context(), "intl: user language lookup failed",
			slog.String("error", err.Error()),
			slog.String("locale", negotiated),
		)
		return negotiated
	}
	if lang.Code == "" {
		return defaultLocale
	}
	return lang.Code
}

// FromCookie returns a negotiator that reads the locale from a cookie. The
// value is matched against the available locales like an Accept-Language
// entry.
func FromCookie(name string) Negotiator {
	return func(r *http.Request, available []string) []string {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return nil
		}
		return intl.MatchAcceptLanguage(c.Value, available)
	}
}

// FirstOf combines negotiators; the first non-empty result wins.
func FirstOf(negotiators ...Negotiator) Negotiator {
	return func(r *http.Request, available []string) []string {
		for _, n := range negotiators {
			if matched := n(r, available); len(matched) > 0 {
				return matched
			}
		}
		return nil
	}
}

// GetIntl returns the request façade, or nil if the Intl middleware is not used.
func GetIntl(ctx context.Context) *intl.Intl {
	return intl.FromContext(ctx)
}

// GetLocale returns the resolved request locale, or an empty string if the
// Intl middleware is not used.
func GetLocale(ctx context.Context) string {
	return intl.LocaleFromContext(ctx)
}
