package format

import (
	"fmt"
	"math"
)

// Options holds formatter construction options keyed by ECMA-402 option name.
type Options map[string]any

// Presets maps a formatter kind ("number", "date", "time", "relative") to
// named option sets.
type Presets map[string]map[string]Options

// Preset returns the named option set of the given kind.
func (p Presets) Preset(kind, name string) (Options, bool) {
	if p == nil {
		return nil, false
	}
	named, ok := p[kind]
	if !ok {
		return nil, false
	}
	opts, ok := named[name]
	return opts, ok
}

func optString(opts Options, key string, allowed ...string) (string, error) {
	raw, ok := opts[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidOption, key, raw)
	}
	if len(allowed) == 0 {
		return s, nil
	}
	for _, a := range allowed {
		if s == a {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %s %q is not one of %v", ErrInvalidOption, key, s, allowed)
}

func optInt(opts Options, key string, lo, hi int) (int, bool, error) {
	raw, ok := opts[key]
	if !ok || raw == nil {
		return 0, false, nil
	}
	f, ok := ToFloat(raw)
	if !ok || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false, fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidOption, key, raw)
	}
	n := int(f)
	if n < lo || n > hi {
		return 0, false, fmt.Errorf("%w: %s %d out of range [%d, %d]", ErrInvalidOption, key, n, lo, hi)
	}
	return n, true, nil
}

func optBool(opts Options, key string) (bool, bool, error) {
	raw, ok := opts[key]
	if !ok || raw == nil {
		return false, false, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, false, fmt.Errorf("%w: %s must be a boolean, got %T", ErrInvalidOption, key, raw)
	}
	return b, true, nil
}
