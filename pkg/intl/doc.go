// Package intl provides request-scoped formatting of dates, times, relative
// times, numbers and ICU messages, bound to a resolved locale and a message
// catalog.
//
// A base [Config] and a [FormatterCache] are built once at startup. Each
// request gets a locale-bound copy of the configuration and a façade over it,
// usually through the middlewares.Intl middleware:
//
//	cfg, err := intl.NewConfig(
//	    intl.WithDefaultLocale("es"),
//	    intl.WithAvailableLocales("es", "en"),
//	    intl.WithMessagesFS(locales),
//	    intl.WithFormats(intl.Formats{
//	        "date": {"abbrev": {"style": "short", "timeZone": "UTC"}},
//	    }),
//	)
//	cache := intl.NewFormatterCache()
//
//	i := intl.New(cfg.WithLocale("en"), cache)
//	i.FormatDate(time.Now(), "abbrev", intl.Options{"timeZone": "America/Bogota"})
//	i.FormatNumber(0.25, "percent", nil)          // "25%"
//	i.FormatRelative(then, "", nil)               // "3 hours ago"
//	i.FormatMessage("Hi {name}", intl.Options{"name": "Ana"})
//	i.Get("nav.home", nil)                        // "[nav.home]" when missing
//
// # Options
//
// Formatting operations take an optional preset name and optional options.
// The preset formats.<kind>.<name> is looked up in the per-call options, then
// in override data passed under "intl", then in the configuration; an unknown
// name becomes {"style": name}. Caller options win over preset keys.
//
// The keys "locales", "intl", "formats" and "now" steer a single call and are
// never passed to formatter construction.
//
// # Caching
//
// Formatters are cached by locale list and merged options for the lifetime of
// the process, so repeated calls with equal inputs reuse one instance.
// Construction errors wrap [ErrFormatterConstruction] and are never cached.
//
// # Catalogs
//
// Messages are nested maps per locale, loaded from Go values, from an fs.FS
// ([LoadMessagesFS]) or from an S3 bucket ([LoadMessagesS3]). Entries are ICU
// message templates, [MessageFunc] values or [Renderer] values.
package intl
