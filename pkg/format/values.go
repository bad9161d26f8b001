package format

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// ToFloat converts any Go numeric value to float64.
// Strings, booleans and nil are not numbers.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// ToTime converts v to a time.Time.
//
// Accepted inputs are time.Time, *time.Time, integers and floats holding Unix
// milliseconds, and RFC 3339 strings. NaN and infinite floats are rejected.
// The zero time.Time is a valid date.
func ToTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case *time.Time:
		if t == nil {
			return time.Time{}, fmt.Errorf("%w: nil time", ErrInvalidValue)
		}
		return *t, nil
	case string:
		s := strings.TrimSpace(t)
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q is not an RFC 3339 date", ErrInvalidValue, t)
		}
		return parsed, nil
	}

	ms, ok := ToFloat(v)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %T is not a date", ErrInvalidValue, v)
	}
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return time.Time{}, fmt.Errorf("%w: %v is not a finite date", ErrInvalidValue, ms)
	}
	sec := math.Floor(ms / 1000)
	nsec := (ms - sec*1000) * float64(time.Millisecond)
	return time.Unix(int64(sec), int64(nsec)).UTC(), nil
}
