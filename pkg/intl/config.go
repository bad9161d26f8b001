package intl

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/intl/pkg/format"
)

// DefaultLocale is used when no locale can be negotiated and none is configured.
const DefaultLocale = "es"

type (
	// Options are formatter options keyed by ECMA-402 option name, plus the
	// reserved per-call keys "locales", "intl", "formats" and "now".
	Options = format.Options

	// Formats maps a formatter kind ("date", "time", "number", "relative") to
	// named presets.
	Formats = format.Presets
)

// Messages maps a locale to its nested message catalog.
type Messages map[string]map[string]any

// Config is the data a façade is built from. A base Config is built once at
// startup; every request gets its own copy via WithLocale and never mutates it.
type Config struct {
	DefaultLocale    string
	AvailableLocales []string
	Formats          Formats
	Messages         Messages

	// CurrentLocale is the locale resolved for the current request.
	CurrentLocale string

	// Locales, when set, overrides the locale list formatters are built for.
	Locales []string

	// Now, when non-zero, is the reference instant for relative formatting.
	Now time.Time
}

// ConfigOption configures a Config during construction.
type ConfigOption func(*Config) error

// NewConfig creates a base configuration. Built-in date, time and number
// presets are always present and can be overridden with WithFormats.
func NewConfig(opts ...ConfigOption) (*Config, error) {
	c := &Config{
		DefaultLocale: DefaultLocale,
		Formats:       DefaultFormats(),
		Messages:      Messages{},
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if c.DefaultLocale == "" {
		return nil, ErrEmptyLocale
	}

	return c, nil
}

// WithDefaultLocale sets the fallback locale.
func WithDefaultLocale(locale string) ConfigOption {
	return func(c *Config) error {
		locale = strings.TrimSpace(locale)
		if locale == "" {
			return ErrEmptyLocale
		}
		c.DefaultLocale = locale
		return nil
	}
}

// WithAvailableLocales sets the locales the application supports, in order
// of preference. Empty entries and duplicates are dropped.
func WithAvailableLocales(locales ...string) ConfigOption {
	return func(c *Config) error {
		seen := make(map[string]bool, len(locales))
		c.AvailableLocales = make([]string, 0, len(locales))
		for _, locale := range locales {
			locale = strings.TrimSpace(locale)
			key := strings.ToLower(locale)
			if locale == "" || seen[key] {
				continue
			}
			seen[key] = true
			c.AvailableLocales = append(c.AvailableLocales, locale)
		}
		return nil
	}
}

// WithFormats merges named presets into the configuration. Presets with the
// same kind and name replace earlier ones, including the built-in presets.
func WithFormats(formats Formats) ConfigOption {
	return func(c *Config) error {
		for kind, named := range formats {
			if c.Formats[kind] == nil {
				c.Formats[kind] = make(map[string]Options, len(named))
			}
			for name, opts := range named {
				c.Formats[kind][name] = maps.Clone(opts)
			}
		}
		return nil
	}
}

// WithMessages deep-merges message catalogs into the configuration.
func WithMessages(messages Messages) ConfigOption {
	return func(c *Config) error {
		for locale, catalog := range messages {
			if err := WithLocaleMessages(locale, catalog)(c); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithLocaleMessages deep-merges a nested message catalog for one locale.
func WithLocaleMessages(locale string, catalog map[string]any) ConfigOption {
	return func(c *Config) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		if c.Messages[locale] == nil {
			c.Messages[locale] = map[string]any{}
		}
		mergeCatalog(c.Messages[locale], catalog)
		return nil
	}
}

func mergeCatalog(dst, src map[string]any) {
	for k, v := range src {
		srcMap, ok := v.(map[string]any)
		if !ok {
			dst[k] = v
			continue
		}
		dstMap, ok := dst[k].(map[string]any)
		if !ok {
			dstMap = map[string]any{}
			dst[k] = dstMap
		}
		mergeCatalog(dstMap, srcMap)
	}
}

// WithLocales fixes the locale list formatters are built for, overriding the
// per-request locale.
func WithLocales(locales ...string) ConfigOption {
	return func(c *Config) error {
		c.Locales = slices.Clone(locales)
		return nil
	}
}

// WithNow pins the reference instant for relative formatting.
func WithNow(now time.Time) ConfigOption {
	return func(c *Config) error {
		c.Now = now
		return nil
	}
}

// WithLocale returns a copy of the configuration bound to locale. Slices are
// copied; formats and messages are shared and must be treated as read-only.
func (c *Config) WithLocale(locale string) *Config {
	clone := *c
	clone.AvailableLocales = slices.Clone(c.AvailableLocales)
	clone.Locales = slices.Clone(c.Locales)
	clone.CurrentLocale = locale
	return &clone
}

// Locale returns CurrentLocale, falling back to DefaultLocale.
func (c *Config) Locale() string {
	if c.CurrentLocale != "" {
		return c.CurrentLocale
	}
	return c.DefaultLocale
}

// EnvConfig carries intl settings loaded from the environment.
type EnvConfig struct {
	DefaultLocale    string   `env:"INTL_DEFAULT_LOCALE" envDefault:"es"`
	AvailableLocales []string `env:"INTL_AVAILABLE_LOCALES" envSeparator:"," envDefault:"es,en"`
}

// Options converts the environment settings into configuration options.
func (e EnvConfig) Options() []ConfigOption {
	return []ConfigOption{
		WithDefaultLocale(e.DefaultLocale),
		WithAvailableLocales(e.AvailableLocales...),
	}
}
