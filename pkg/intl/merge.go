package intl

import (
	"maps"

	"github.com/dmitrymomot/intl/pkg/format"
)

// defaultCurrency backs the currency preset when the caller names no code.
const defaultCurrency = "USD"

// DefaultFormats returns the built-in presets: date and time styles short,
// medium, long and full, the number presets currency and percent, and a
// "default" preset for every kind.
func DefaultFormats() Formats {
	f := Formats{
		"date": {"default": {"year": format.Numeric, "month": format.Numeric, "day": format.Numeric}},
		"time": {"default": {"hour": format.Numeric, "minute": format.TwoDigit}},
		"number": {
			"default":  {},
			"currency": {"style": format.StyleCurrency, "currency": defaultCurrency},
			"percent":  {"style": format.StylePercent},
		},
		"relative": {"default": {}, "numeric": {"style": format.StyleNumeric}},
	}
	for _, name := range []string{"short", "medium", "long", "full"} {
		f["date"][name], _ = format.DateStyle(name)
		f["time"][name], _ = format.TimeStyle(name)
	}
	return f
}

// MergeOptions combines the preset named name of the given kind with the
// caller options, caller keys winning.
//
// The preset path formats.<kind>.<name> is looked up in the caller options
// (their "formats" key), then in the per-call override data under "intl",
// then in the configuration. An unknown name becomes the preset
// {"style": name}. Without a name the result is a copy of opts.
func (c *Config) MergeOptions(kind, name string, opts Options) Options {
	merged := Options{}

	if name != "" {
		path := "formats." + kind + "." + name
		preset, ok := Lookup(map[string]any(opts), path)
		if !ok {
			preset, ok = Lookup(opts[KeyIntl], path)
		}
		if !ok {
			preset, ok = Lookup(c, path)
		}

		if p, isMap := asOptions(preset); ok && isMap {
			maps.Copy(merged, p)
		} else {
			merged["style"] = name
		}
	}

	maps.Copy(merged, opts)
	return merged
}

func asOptions(v any) (Options, bool) {
	switch m := v.(type) {
	case Options:
		return m, true
	case map[string]any:
		return m, true
	}
	return nil, false
}
