// Package messageformat compiles and renders ICU MessageFormat patterns.
//
// A pattern is parsed once by [New] and can then be rendered any number of
// times, concurrently, with different argument values:
//
//	mf, err := messageformat.New(
//	    "{name} has {count, plural, =0 {no photos} one {# photo} other {# photos}}.",
//	    []string{"en"}, nil,
//	)
//	mf.Format(map[string]any{"name": "Ana", "count": 3}) // "Ana has 3 photos."
//
// Supported syntax:
//
//	{arg}                              value as text
//	{arg, number[, style]}             integer, percent, currency or a preset
//	{arg, date[, style]}               short, medium, long, full or a preset
//	{arg, time[, style]}               short, medium, long, full or a preset
//	{arg, plural, [offset:n] cases}    =n exact cases, CLDR categories, # value
//	{arg, selectordinal, cases}        ordinal categories, # value
//	{arg, select, cases}               string keys, other required
//
// Apostrophes quote syntax characters: '{' renders a literal brace and ”
// renders a single apostrophe. Named styles are looked up in the presets
// passed to New before the built-in styles.
package messageformat
