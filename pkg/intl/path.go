package intl

import (
	"reflect"
	"strconv"
	"strings"
)

// Lookup walks obj along a dot-separated path and returns the value found.
//
// Maps with string keys are traversed by key and slices by numeric index.
// A *Config exposes its fields as "defaultLocale", "availableLocales",
// "formats", "messages", "currentLocale", "locales" and "now". A missing
// segment or a value that cannot be traversed reports ok == false. Zero
// values, empty strings and false are present values.
func Lookup(obj any, path string) (any, bool) {
	if obj == nil || path == "" {
		return nil, false
	}

	cur := obj
	for seg := range strings.SplitSeq(path, ".") {
		next, ok := step(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func step(cur any, seg string) (any, bool) {
	switch v := cur.(type) {
	case nil:
		return nil, false
	case map[string]any:
		next, ok := v[seg]
		return next, ok
	case Options:
		next, ok := v[seg]
		return next, ok
	case Messages:
		next, ok := v[seg]
		return next, ok
	case Formats:
		next, ok := v[seg]
		return next, ok
	case []any:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= len(v) {
			return nil, false
		}
		return v[i], true
	case *Config:
		if v == nil {
			return nil, false
		}
		return configField(v, seg)
	}

	rv := reflect.ValueOf(cur)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		next := rv.MapIndex(reflect.ValueOf(seg).Convert(rv.Type().Key()))
		if !next.IsValid() {
			return nil, false
		}
		return next.Interface(), true
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	}
	return nil, false
}

func configField(c *Config, name string) (any, bool) {
	switch name {
	case "defaultLocale":
		return c.DefaultLocale, true
	case "availableLocales":
		return c.AvailableLocales, true
	case "formats":
		return c.Formats, c.Formats != nil
	case "messages":
		return c.Messages, c.Messages != nil
	case "currentLocale":
		return c.CurrentLocale, true
	case "locales":
		return c.Locales, c.Locales != nil
	case "now":
		return c.Now, !c.Now.IsZero()
	}
	return nil, false
}
