package intl

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/intl/pkg/format"
	"github.com/dmitrymomot/intl/pkg/messageformat"
)

// Kind identifies a formatter family held by the cache.
type Kind string

const (
	KindNumber   Kind = "number"
	KindDateTime Kind = "datetime"
	KindMessage  Kind = "message"
	KindRelative Kind = "relative"
)

// FormatterCache memoizes formatter construction for the lifetime of the
// process. Construction is the expensive part of formatting, and formatters
// are immutable, so one instance per (locales, options) is shared by all
// requests. There is no eviction.
//
// Create one cache at startup and pass it to every façade.
type FormatterCache struct {
	mu    sync.RWMutex
	items map[Kind]map[string]any
	group singleflight.Group
}

// NewFormatterCache creates an empty cache.
func NewFormatterCache() *FormatterCache {
	return &FormatterCache{
		items: map[Kind]map[string]any{
			KindNumber:   {},
			KindDateTime: {},
			KindMessage:  {},
			KindRelative: {},
		},
	}
}

// NumberFormat returns the cached number formatter for locales and opts,
// building it on first use.
func (c *FormatterCache) NumberFormat(locales []string, opts Options) (*format.NumberFormat, error) {
	return getOrCreate(c, KindNumber, cacheKey(locales, opts), func() (*format.NumberFormat, error) {
		return format.NewNumberFormat(locales, opts)
	})
}

// DateTimeFormat returns the cached date/time formatter for locales and opts.
func (c *FormatterCache) DateTimeFormat(locales []string, opts Options) (*format.DateTimeFormat, error) {
	return getOrCreate(c, KindDateTime, cacheKey(locales, opts), func() (*format.DateTimeFormat, error) {
		return format.NewDateTimeFormat(locales, opts)
	})
}

// RelativeFormat returns the cached relative time formatter for locales and opts.
func (c *FormatterCache) RelativeFormat(locales []string, opts Options) (*format.RelativeFormat, error) {
	return getOrCreate(c, KindRelative, cacheKey(locales, opts), func() (*format.RelativeFormat, error) {
		return format.NewRelativeFormat(locales, opts)
	})
}

// MessageFormat returns the cached compiled message for pattern, locales and
// the presets it may reference.
func (c *FormatterCache) MessageFormat(pattern string, locales []string, formats Formats) (*messageformat.MessageFormat, error) {
	key := pattern + "\x00" + cacheKey(locales, formats)
	return getOrCreate(c, KindMessage, key, func() (*messageformat.MessageFormat, error) {
		return messageformat.New(pattern, locales, formats)
	})
}

// Len reports how many formatters of the kind are cached.
func (c *FormatterCache) Len(kind Kind) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items[kind])
}

func getOrCreate[T any](c *FormatterCache, kind Kind, key string, build func() (T, error)) (T, error) {
	c.mu.RLock()
	cached, ok := c.items[kind][key]
	c.mu.RUnlock()
	if ok {
		return cached.(T), nil
	}

	v, err, _ := c.group.Do(string(kind)+"\x00"+key, func() (any, error) {
		c.mu.RLock()
		cached, ok := c.items[kind][key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		f, err := build()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if cached, ok := c.items[kind][key]; ok {
			return cached, nil
		}
		c.items[kind][key] = f
		return f, nil
	})
	if err != nil {
		var zero T
		return zero, errors.Join(ErrFormatterConstruction, err)
	}
	return v.(T), nil
}

// cacheKey encodes locales and options canonically: encoding/json sorts map
// keys at every level, so deep-equal options produce equal keys.
func cacheKey(locales []string, opts any) string {
	data, err := json.Marshal(opts)
	if err != nil {
		data = fmt.Appendf(nil, "%#v", opts)
	}
	return strings.Join(locales, ",") + "|" + string(data)
}
