package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Component option values.
const (
	Numeric  = "numeric"
	TwoDigit = "2-digit"
	Long     = "long"
	Short    = "short"
	Narrow   = "narrow"
)

// Named styles accepted by dateStyle, timeStyle and style.
var (
	dateStyles = map[string]Options{
		"short":  {"year": TwoDigit, "month": Numeric, "day": Numeric},
		"medium": {"year": Numeric, "month": Short, "day": Numeric},
		"long":   {"year": Numeric, "month": Long, "day": Numeric},
		"full":   {"year": Numeric, "month": Long, "day": Numeric, "weekday": Long},
	}
	timeStyles = map[string]Options{
		"short":  {"hour": Numeric, "minute": TwoDigit},
		"medium": {"hour": Numeric, "minute": TwoDigit, "second": TwoDigit},
		"long":   {"hour": Numeric, "minute": TwoDigit, "second": TwoDigit, "timeZoneName": Short},
		"full":   {"hour": Numeric, "minute": TwoDigit, "second": TwoDigit, "timeZoneName": Long},
	}
)

// DateStyle returns the component options a date style expands to.
func DateStyle(name string) (Options, bool) {
	opts, ok := dateStyles[name]
	return clone(opts), ok
}

// TimeStyle returns the component options a time style expands to.
func TimeStyle(name string) (Options, bool) {
	opts, ok := timeStyles[name]
	return clone(opts), ok
}

func clone(opts Options) Options {
	if opts == nil {
		return nil
	}
	out := make(Options, len(opts))
	for k, v := range opts {
		out[k] = v
	}
	return out
}

// DateTimeFormat formats dates and times for a locale.
// It is safe for concurrent use.
type DateTimeFormat struct {
	locale *Locale
	loc    *time.Location

	weekday, year, month, day string
	hour, minute, second      string
	zoneName                  string
	hour12                    bool
}

// NewDateTimeFormat builds a date/time formatter.
//
// Supported options: weekday, year, month, day, hour, minute, second,
// timeZoneName, hour12, timeZone (IANA name), dateStyle, timeStyle and style
// (an alias of dateStyle). Explicit component options override the
// components a style expands to. Without any component the formatter renders
// a numeric date.
//
// Without a timeZone option values are rendered in their own location.
func NewDateTimeFormat(locales []string, opts Options) (*DateTimeFormat, error) {
	l := Resolve(locales)
	f := &DateTimeFormat{locale: l, hour12: l.Hour12}

	merged := Options{}
	for _, key := range []string{"style", "dateStyle"} {
		name, err := optString(opts, key, "short", "medium", "long", "full")
		if err != nil {
			return nil, err
		}
		if name != "" {
			for k, v := range dateStyles[name] {
				merged[k] = v
			}
		}
	}
	name, err := optString(opts, "timeStyle", "short", "medium", "long", "full")
	if err != nil {
		return nil, err
	}
	if name != "" {
		for k, v := range timeStyles[name] {
			merged[k] = v
		}
	}
	for k, v := range opts {
		merged[k] = v
	}

	fields := []struct {
		key     string
		dst     *string
		allowed []string
	}{
		{"weekday", &f.weekday, []string{Long, Short, Narrow}},
		{"year", &f.year, []string{Numeric, TwoDigit}},
		{"month", &f.month, []string{Numeric, TwoDigit, Long, Short, Narrow}},
		{"day", &f.day, []string{Numeric, TwoDigit}},
		{"hour", &f.hour, []string{Numeric, TwoDigit}},
		{"minute", &f.minute, []string{Numeric, TwoDigit}},
		{"second", &f.second, []string{Numeric, TwoDigit}},
		{"timeZoneName", &f.zoneName, []string{Long, Short}},
	}
	for _, field := range fields {
		v, err := optString(merged, field.key, field.allowed...)
		if err != nil {
			return nil, err
		}
		*field.dst = v
	}

	if h12, ok, err := optBool(merged, "hour12"); err != nil {
		return nil, err
	} else if ok {
		f.hour12 = h12
	}

	zone, err := optString(merged, "timeZone")
	if err != nil {
		return nil, err
	}
	if zone != "" {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTimeZone, zone)
		}
		f.loc = loc
	}

	if f.weekday == "" && f.year == "" && f.month == "" && f.day == "" &&
		f.hour == "" && f.minute == "" && f.second == "" {
		f.year, f.month, f.day = Numeric, Numeric, Numeric
	}

	return f, nil
}

// Format renders t.
func (f *DateTimeFormat) Format(t time.Time) string {
	if f.loc != nil {
		t = t.In(f.loc)
	}

	date := f.formatDate(t)
	clock := f.formatTime(t)
	switch {
	case date == "":
		return clock
	case clock == "":
		return date
	default:
		return date + f.locale.DateTimeSeparator + clock
	}
}

func (f *DateTimeFormat) formatDate(t time.Time) string {
	if f.month == Long || f.month == Short || f.month == Narrow {
		return f.textDate(t)
	}

	var parts []string
	for _, field := range f.locale.NumericOrder {
		if s := f.field(t, field); s != "" {
			parts = append(parts, s)
		}
	}
	date := strings.Join(parts, f.locale.DateSeparator)

	weekday := f.field(t, "weekday")
	switch {
	case weekday == "":
		return date
	case date == "":
		return weekday
	default:
		return weekday + f.locale.WeekdaySeparator + date
	}
}

// textDate walks the locale pattern, keeping present fields and the literal
// that directly precedes each of them.
func (f *DateTimeFormat) textDate(t time.Time) string {
	var (
		b       strings.Builder
		literal string
	)
	for _, token := range f.locale.TextPattern {
		switch token {
		case "weekday", "day", "month", "year":
			s := f.field(t, token)
			if s == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteString(literal)
			}
			b.WriteString(s)
		default:
			literal = token
		}
	}
	return b.String()
}

func (f *DateTimeFormat) field(t time.Time, name string) string {
	switch name {
	case "weekday":
		switch f.weekday {
		case Long:
			return f.locale.Weekdays[t.Weekday()]
		case Short:
			return f.locale.WeekdaysShort[t.Weekday()]
		case Narrow:
			return firstRune(f.locale.Weekdays[t.Weekday()])
		}
	case "year":
		switch f.year {
		case Numeric:
			return strconv.Itoa(t.Year())
		case TwoDigit:
			return pad2(t.Year() % 100)
		}
	case "month":
		switch f.month {
		case Numeric:
			return strconv.Itoa(int(t.Month()))
		case TwoDigit:
			return pad2(int(t.Month()))
		case Long:
			return f.locale.Months[t.Month()-1]
		case Short:
			return f.locale.MonthsShort[t.Month()-1]
		case Narrow:
			return firstRune(f.locale.Months[t.Month()-1])
		}
	case "day":
		switch f.day {
		case Numeric:
			return strconv.Itoa(t.Day())
		case TwoDigit:
			return pad2(t.Day())
		}
	}
	return ""
}

func (f *DateTimeFormat) formatTime(t time.Time) string {
	if f.hour == "" && f.minute == "" && f.second == "" {
		return ""
	}

	var parts []string
	if f.hour != "" {
		h := t.Hour()
		if f.hour12 {
			h %= 12
			if h == 0 {
				h = 12
			}
		}
		if f.hour == TwoDigit || (!f.hour12 && f.minute != "") {
			parts = append(parts, pad2(h))
		} else {
			parts = append(parts, strconv.Itoa(h))
		}
	}
	if f.minute != "" {
		if f.minute == TwoDigit || f.hour != "" {
			parts = append(parts, pad2(t.Minute()))
		} else {
			parts = append(parts, strconv.Itoa(t.Minute()))
		}
	}
	if f.second != "" {
		if f.second == TwoDigit || f.minute != "" {
			parts = append(parts, pad2(t.Second()))
		} else {
			parts = append(parts, strconv.Itoa(t.Second()))
		}
	}

	out := strings.Join(parts, ":")
	if f.hour != "" && f.hour12 {
		if t.Hour() < 12 {
			out += " " + f.locale.AM
		} else {
			out += " " + f.locale.PM
		}
	}

	switch f.zoneName {
	case Short:
		name, _ := t.Zone()
		out += " " + name
	case Long:
		out += " " + t.Location().String()
	}
	return out
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func firstRune(s string) string {
	for _, r := range s {
		return strings.ToUpper(string(r))
	}
	return ""
}
