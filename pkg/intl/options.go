package intl

import (
	"fmt"
	"slices"
	"time"
)

// Reserved per-call option keys. They steer a single call and never reach
// formatter construction, so they do not fragment the formatter cache.
const (
	// KeyLocales overrides the locale list for one call ([]string or string).
	KeyLocales = "locales"
	// KeyIntl carries override data (a *Config or a map with "formats" and
	// "messages") consulted before the base configuration.
	KeyIntl = "intl"
	// KeyFormats carries per-call presets, consulted first.
	KeyFormats = "formats"
	// KeyNow is the reference instant for relative formatting.
	KeyNow = "now"
)

var reservedKeys = []string{KeyLocales, KeyIntl, KeyFormats, KeyNow}

// constructionOptions returns a copy of opts without reserved keys.
func constructionOptions(opts Options) Options {
	out := make(Options, len(opts))
	for k, v := range opts {
		if !slices.Contains(reservedKeys, k) {
			out[k] = v
		}
	}
	return out
}

// locales resolves the locale list for a call, in order:
//
//  1. opts["locales"]
//  2. Config.Locales
//  3. Config.CurrentLocale
//  4. Config.DefaultLocale
func (c *Config) locales(opts Options) []string {
	switch v := opts[KeyLocales].(type) {
	case []string:
		if len(v) > 0 {
			return v
		}
	case string:
		if v != "" {
			return []string{v}
		}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	if len(c.Locales) > 0 {
		return c.Locales
	}
	return []string{c.Locale()}
}

// now resolves the relative-time reference instant: opts["now"], then
// Config.Now, then the clock.
func (c *Config) now(opts Options, clock func() time.Time) (time.Time, error) {
	if raw, ok := opts[KeyNow]; ok && raw != nil {
		t, err := toTime(raw)
		if err != nil {
			return time.Time{}, fmt.Errorf("now: %w", err)
		}
		return t, nil
	}
	if !c.Now.IsZero() {
		return c.Now, nil
	}
	return clock(), nil
}

// ResolveFormatArgs resolves the optional trailing arguments of the
// formatting helpers. A string is a preset name and a map is the options
// argument, so both f(date, "short") and f(date, opts) are accepted, as is
// f(date, "short", opts).
func ResolveFormatArgs(args ...any) (string, Options, error) {
	var (
		name string
		opts Options
	)
	for i, arg := range args {
		switch v := arg.(type) {
		case nil:
		case string:
			if i != 0 {
				return "", nil, fmt.Errorf("%w: preset name must come first", ErrInvalidArgument)
			}
			name = v
		case Options:
			opts = v
		case map[string]any:
			opts = Options(v)
		default:
			return "", nil, fmt.Errorf("%w: unexpected %T argument", ErrInvalidArgument, arg)
		}
	}
	if opts == nil {
		opts = Options{}
	}
	return name, opts, nil
}
