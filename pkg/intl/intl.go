package intl

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/intl/pkg/format"
)

// Intl is the per-request formatting façade. It is bound to a locale-resolved
// configuration and shares the process-wide formatter cache.
type Intl struct {
	cfg     *Config
	cache   *FormatterCache
	logger  *slog.Logger
	clock   func() time.Time
	missing func(locale, path string)
}

// IntlOption configures an Intl façade.
type IntlOption func(*Intl)

// WithLogger sets the logger used for catalog lookup misses.
func WithLogger(l *slog.Logger) IntlOption {
	return func(i *Intl) {
		if l != nil {
			i.logger = l
		}
	}
}

// WithClock sets the clock relative formatting falls back to.
func WithClock(clock func() time.Time) IntlOption {
	return func(i *Intl) {
		if clock != nil {
			i.clock = clock
		}
	}
}

// WithMissingMessageHandler registers a callback invoked when Get misses.
// Useful for collecting untranslated keys during development.
func WithMissingMessageHandler(fn func(locale, path string)) IntlOption {
	return func(i *Intl) {
		i.missing = fn
	}
}

// New builds a façade over cfg using the shared cache. A nil cfg uses a
// default configuration and a nil cache gets a private one.
func New(cfg *Config, cache *FormatterCache, opts ...IntlOption) *Intl {
	if cfg == nil {
		cfg, _ = NewConfig()
	}
	if cache == nil {
		cache = NewFormatterCache()
	}

	i := &Intl{
		cfg:    cfg,
		cache:  cache,
		logger: slog.New(slog.DiscardHandler),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Config returns the configuration the façade is bound to.
func (i *Intl) Config() *Config { return i.cfg }

// Locale returns the locale the façade is bound to.
func (i *Intl) Locale() string { return i.cfg.Locale() }

// FormatDate renders date with the named "date" preset merged with opts.
// Both name and opts may be empty.
func (i *Intl) FormatDate(date any, name string, opts Options) (string, error) {
	return i.formatDateTime("format date", "date", date, name, opts)
}

// FormatTime renders the time of day of date with the named "time" preset
// merged with opts. Without any component or style it renders hours and
// minutes.
func (i *Intl) FormatTime(date any, name string, opts Options) (string, error) {
	return i.formatDateTime("format time", "time", date, name, opts)
}

func (i *Intl) formatDateTime(op, kind string, date any, name string, opts Options) (string, error) {
	t, err := toTime(date)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	built := constructionOptions(i.cfg.MergeOptions(kind, name, opts))
	// An unknown preset name falls through to {style: name}; like an unknown
	// style it selects nothing.
	if style, ok := built["style"].(string); ok {
		if _, known := format.DateStyle(style); !known {
			delete(built, "style")
		}
	}
	if kind == "time" {
		timeOptions(built)
	}

	f, err := i.cache.DateTimeFormat(i.cfg.locales(opts), built)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return f.Format(t), nil
}

var dateTimeComponents = []string{"weekday", "year", "month", "day", "hour", "minute", "second", "dateStyle", "timeStyle"}

// timeOptions reads a bare style as a time style and defaults to hours and
// minutes when nothing selects a component.
func timeOptions(opts Options) {
	if style, ok := opts["style"]; ok {
		delete(opts, "style")
		if _, ok := opts["timeStyle"]; !ok {
			opts["timeStyle"] = style
		}
	}
	for _, key := range dateTimeComponents {
		if _, ok := opts[key]; ok {
			return
		}
	}
	opts["hour"] = format.Numeric
	opts["minute"] = format.TwoDigit
}

// FormatRelative renders date relative to a reference instant: opts["now"],
// then Config.Now, then the clock. The reference instant is not part of the
// formatter options, so one cached formatter serves every instant.
func (i *Intl) FormatRelative(date any, name string, opts Options) (string, error) {
	const op = "format relative"

	t, err := toTime(date)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	now, err := i.cfg.now(opts, i.clock)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	built := constructionOptions(i.cfg.MergeOptions("relative", name, opts))
	f, err := i.cache.RelativeFormat(i.cfg.locales(opts), built)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return f.Format(t, now), nil
}

// FormatNumber renders num, which must be a Go number, with the named
// "number" preset merged with opts.
func (i *Intl) FormatNumber(num any, name string, opts Options) (string, error) {
	const op = "format number"

	n, ok := format.ToFloat(num)
	if !ok {
		return "", fmt.Errorf("%s: %w: %T is not a number", op, ErrInvalidArgument, num)
	}

	built := constructionOptions(i.cfg.MergeOptions("number", name, opts))
	f, err := i.cache.NumberFormat(i.cfg.locales(opts), built)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return f.Format(n), nil
}

// FormatMessage renders message with values. Templates are compiled once per
// (pattern, locales, presets) through the cache; callables and renderers are
// invoked directly.
func (i *Intl) FormatMessage(message any, values Options) (string, error) {
	const op = "format message"

	msg, err := ParseMessage(message)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if values == nil {
		values = Options{}
	}

	var out string
	switch msg.kind {
	case MessageCallable:
		out, err = msg.fn(values)
	case MessageRenderer:
		out, err = msg.renderer.Format(values)
	default:
		mf, cerr := i.cache.MessageFormat(msg.template, i.cfg.locales(values), i.formats(values))
		if cerr != nil {
			return "", fmt.Errorf("%s: %w", op, cerr)
		}
		out, err = mf.Format(values)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// formats resolves the presets a message template may reference: per-call
// "formats", then the override data under "intl", then the configuration.
func (i *Intl) formats(values Options) Formats {
	if f, ok := values[KeyFormats].(Formats); ok {
		return f
	}
	switch override := values[KeyIntl].(type) {
	case *Config:
		if override != nil && override.Formats != nil {
			return override.Formats
		}
	case map[string]any:
		if f, ok := override["formats"].(Formats); ok {
			return f
		}
	}
	return i.cfg.Formats
}

// Get renders the catalog message at the dot-separated path for the current
// locale, passing opts as the message values. A catalog in opts["intl"] takes
// precedence over the configured one. A miss is logged and renders as
// "[path]" without an error.
func (i *Intl) Get(path string, opts Options) (string, error) {
	locale := i.cfg.Locale()

	root := any(i.cfg.Messages[locale])
	if override, ok := opts[KeyIntl]; ok {
		if catalog, ok := Lookup(override, "messages."+locale); ok {
			root = catalog
		}
	}

	message, ok := Lookup(root, path)
	if !ok {
		i.logger.Warn("intl: message not found", slog.String("locale", locale), slog.String("path", path))
		if i.missing != nil {
			i.missing(locale, path)
		}
		return "[" + path + "]", nil
	}

	return i.FormatMessage(message, opts)
}

func toTime(v any) (time.Time, error) {
	t, err := format.ToTime(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return t, nil
}
