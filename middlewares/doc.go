// Package middlewares provides net/http middleware for localized applications.
// Every middleware has the func(http.Handler) http.Handler shape and plugs
// into chi or any compatible router.
//
// # Intl
//
// Intl resolves the locale of each request and attaches an *intl.Intl bound
// to it to the request context. The locale comes from Accept-Language
// negotiation against the configured available locales, replaced by the
// signed-in user's stored language when a user resolver is configured:
//
//	base, _ := intl.NewConfig(
//	    intl.WithDefaultLocale("es"),
//	    intl.WithAvailableLocales("es", "en"),
//	    intl.WithMessagesFS(locales),
//	)
//	cache := intl.NewFormatterCache()
//
//	r := chi.NewRouter()
//	r.Use(middlewares.Intl(base, cache,
//	    middlewares.WithNegotiator(middlewares.FirstOf(middlewares.FromCookie("lang"), intl.Negotiate)),
//	    middlewares.WithUserResolver(currentUser),
//	    middlewares.WithUserLanguageTimeout(200*time.Millisecond),
//	))
//
// Handlers read the façade back:
//
//	i := middlewares.GetIntl(r.Context())
//	title, _ := i.Get("page.title", nil)
//
// A failed user language lookup is logged and never fails the request.
//
// # Request ID
//
// RequestID reuses an upstream X-Request-ID or X-Correlation-ID header or
// generates a UUID. RequestIDExtractor adds it to log records:
//
//	log := logger.New(cfg, middlewares.RequestIDExtractor(), logger.LocaleExtractor())
//
// # Recover
//
// Recover logs handler panics with their stack trace and responds with 500.
package middlewares
