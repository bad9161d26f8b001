package format

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Relative time units in ascending order.
const (
	UnitSecond = "second"
	UnitMinute = "minute"
	UnitHour   = "hour"
	UnitDay    = "day"
	UnitMonth  = "month"
	UnitYear   = "year"
)

// Relative time styles.
const (
	StyleBestFit = "best fit"
	StyleNumeric = "numeric"
)

// Unit selection thresholds: a difference is expressed in the next larger
// unit once it reaches the threshold of the current one.
var relativeThresholds = []struct {
	unit  string
	limit float64
}{
	{UnitSecond, 45},
	{UnitMinute, 45},
	{UnitHour, 22},
	{UnitDay, 26},
	{UnitMonth, 11},
}

// RelativeFormat renders the distance between two instants as a phrase such
// as "in 3 days" or "2 hours ago". It is safe for concurrent use.
type RelativeFormat struct {
	locales []string
	tag     language.Tag
	locale  *Locale
	unit    string
	short   bool
	numeric bool
}

// NewRelativeFormat builds a relative time formatter.
//
// Supported options: units (second, minute, hour, day, month, year, each with
// an optional "-short" suffix) fixes the unit instead of picking the best
// one, and style ("best fit" or "numeric"). The best fit style renders
// "now", "yesterday" and "tomorrow" where the locale has such words.
func NewRelativeFormat(locales []string, opts Options) (*RelativeFormat, error) {
	f := &RelativeFormat{
		locales: locales,
		tag:     Tag(locales),
		locale:  Resolve(locales),
	}

	u, err := optString(opts, "units",
		UnitSecond, UnitMinute, UnitHour, UnitDay, UnitMonth, UnitYear,
		UnitSecond+"-short", UnitMinute+"-short", UnitHour+"-short",
		UnitDay+"-short", UnitMonth+"-short", UnitYear+"-short",
	)
	if err != nil {
		return nil, err
	}
	f.unit, f.short = strings.CutSuffix(u, "-short")

	style, err := optString(opts, "style", StyleBestFit, StyleNumeric)
	if err != nil {
		return nil, err
	}
	f.numeric = style == StyleNumeric

	return f, nil
}

// Format renders t relative to now.
func (f *RelativeFormat) Format(t, now time.Time) string {
	unit, value := f.selectUnit(t.Sub(now))

	if !f.numeric {
		if s := f.special(unit, value); s != "" {
			return s
		}
	}

	abs := math.Abs(value)
	names := f.locale.Relative.Units[unit]
	if f.short {
		names = f.locale.Relative.UnitsShort[unit]
	}
	name, ok := names[PluralCategory(f.locales, abs)]
	if !ok {
		name = names[PluralOther]
	}

	qty := message.NewPrinter(f.tag).Sprint(number.Decimal(abs, number.MaxFractionDigits(0)))
	phrase := f.locale.Relative.Future
	if value < 0 {
		phrase = f.locale.Relative.Past
	}
	return strings.Replace(phrase, "{0}", qty+" "+name, 1)
}

func (f *RelativeFormat) special(unit string, value float64) string {
	rel := f.locale.Relative
	switch {
	case unit == UnitSecond && value == 0:
		return rel.Now
	case unit == UnitDay && value == -1:
		return rel.Yesterday
	case unit == UnitDay && value == 0:
		return rel.Today
	case unit == UnitDay && value == 1:
		return rel.Tomorrow
	}
	return ""
}

// selectUnit converts a duration into every unit, rounding each step, and
// returns the fixed unit or the first one below its threshold.
func (f *RelativeFormat) selectUnit(d time.Duration) (string, float64) {
	ms := float64(d / time.Millisecond)
	seconds := math.Round(ms / 1000)
	minutes := math.Round(seconds / 60)
	hours := math.Round(minutes / 60)
	days := math.Round(hours / 24)
	rawYears := days * 400 / 146097
	months := math.Round(rawYears * 12)
	years := math.Round(rawYears)

	values := map[string]float64{
		UnitSecond: seconds,
		UnitMinute: minutes,
		UnitHour:   hours,
		UnitDay:    days,
		UnitMonth:  months,
		UnitYear:   years,
	}

	if f.unit != "" {
		return f.unit, values[f.unit]
	}
	for _, th := range relativeThresholds {
		v := values[th.unit]
		if math.Abs(v) < th.limit {
			return th.unit, v
		}
	}
	return UnitYear, years
}
