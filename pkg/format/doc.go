// Package format implements locale-aware formatters for numbers, dates, times
// and relative times, plus the bundled locale data they render with.
//
// Formatters are built once from a locale list and an option map and are
// immutable afterwards, so a single instance can be shared between goroutines:
//
//	nf, err := format.NewNumberFormat([]string{"de"}, format.Options{
//	    "maximumFractionDigits": 1,
//	})
//	nf.Format(1234.5) // "1.234,5"
//
//	df, err := format.NewDateTimeFormat([]string{"es"}, format.Options{
//	    "dateStyle": "long",
//	    "timeZone":  "America/Bogota",
//	})
//	df.Format(time.Now())
//
//	rf, err := format.NewRelativeFormat([]string{"en"}, nil)
//	rf.Format(then, time.Now()) // "3 hours ago"
//
// Option names mirror the ECMA-402 constructors (Intl.NumberFormat,
// Intl.DateTimeFormat) so presets written for browsers can be reused on the
// server. Values may come from Go code, JSON or YAML; numeric options accept
// any Go number type.
//
// # Locale data
//
// Formatting data is bundled for en, es, fr, de, pt and it. Locale lists are
// resolved left to right: an exact match wins, then a registered alias, then
// the base language of a regional tag. When nothing matches, English is used.
// Use [RegisterAlias] to map additional locales onto bundled data.
//
// Number digits and grouping come from golang.org/x/text, which carries CLDR
// data for every locale, and plural categories come from
// golang.org/x/text/feature/plural.
package format
