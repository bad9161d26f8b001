package format

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Number styles.
const (
	StyleDecimal  = "decimal"
	StylePercent  = "percent"
	StyleCurrency = "currency"
)

// NumberFormat formats numbers for a locale. It is safe for concurrent use.
type NumberFormat struct {
	tag      language.Tag
	locale   *Locale
	style    string
	unit     currency.Unit
	display  string
	digits   []number.Option
	grouping bool
}

// NewNumberFormat builds a number formatter.
//
// Supported options: style ("decimal", "percent", "currency"), currency (ISO
// 4217 code, required for the currency style), currencyDisplay ("symbol",
// "code"), minimumIntegerDigits, minimumFractionDigits, maximumFractionDigits
// and useGrouping.
func NewNumberFormat(locales []string, opts Options) (*NumberFormat, error) {
	f := &NumberFormat{
		tag:      Tag(locales),
		locale:   Resolve(locales),
		grouping: true,
	}

	style, err := optString(opts, "style", StyleDecimal, StylePercent, StyleCurrency)
	if err != nil {
		return nil, err
	}
	if style == "" {
		style = StyleDecimal
	}
	f.style = style

	if style == StyleCurrency {
		code, err := optString(opts, "currency")
		if err != nil {
			return nil, err
		}
		if code == "" {
			return nil, fmt.Errorf("%w: currency code is required with currency style", ErrInvalidOption)
		}
		f.unit, err = currency.ParseISO(strings.ToUpper(code))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCurrency, code)
		}
		f.display, err = optString(opts, "currencyDisplay", "symbol", "code")
		if err != nil {
			return nil, err
		}
	}

	if grouping, ok, err := optBool(opts, "useGrouping"); err != nil {
		return nil, err
	} else if ok {
		f.grouping = grouping
	}

	minInt, hasMinInt, err := optInt(opts, "minimumIntegerDigits", 1, 21)
	if err != nil {
		return nil, err
	}
	minFrac, hasMinFrac, err := optInt(opts, "minimumFractionDigits", 0, 20)
	if err != nil {
		return nil, err
	}
	maxFrac, hasMaxFrac, err := optInt(opts, "maximumFractionDigits", 0, 20)
	if err != nil {
		return nil, err
	}
	if hasMinFrac && hasMaxFrac && minFrac > maxFrac {
		return nil, fmt.Errorf("%w: minimumFractionDigits %d exceeds maximumFractionDigits %d", ErrInvalidOption, minFrac, maxFrac)
	}

	if style == StyleCurrency && !hasMinFrac && !hasMaxFrac {
		scale, _ := currency.Standard.Rounding(f.unit)
		minFrac, maxFrac = scale, scale
		hasMinFrac, hasMaxFrac = true, true
	}
	if hasMinFrac && !hasMaxFrac && minFrac > defaultMaxFraction(style) {
		maxFrac, hasMaxFrac = minFrac, true
	}

	if hasMinInt {
		f.digits = append(f.digits, number.MinIntegerDigits(minInt))
	}
	if hasMinFrac {
		f.digits = append(f.digits, number.MinFractionDigits(minFrac))
	}
	if hasMaxFrac {
		f.digits = append(f.digits, number.MaxFractionDigits(maxFrac))
	}
	if !f.grouping {
		f.digits = append(f.digits, number.NoSeparator())
	}

	return f, nil
}

func defaultMaxFraction(style string) int {
	if style == StylePercent {
		return 0
	}
	return 3
}

// Format renders v. NaN and infinities are rendered as text.
func (f *NumberFormat) Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}

	p := message.NewPrinter(f.tag)
	switch f.style {
	case StylePercent:
		return p.Sprint(number.Percent(v, f.digits...))
	case StyleCurrency:
		return f.formatCurrency(p, v)
	default:
		return p.Sprint(number.Decimal(v, f.digits...))
	}
}

func (f *NumberFormat) formatCurrency(p *message.Printer, v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	amount := p.Sprint(number.Decimal(v, f.digits...))

	symbol := f.unit.String()
	if f.display != "code" {
		symbol = p.Sprint(currency.Symbol(f.unit))
	}

	if f.locale.CurrencyAfter {
		return sign + amount + " " + symbol
	}
	if f.display == "code" {
		return sign + symbol + " " + amount
	}
	return sign + symbol + amount
}

// Locale returns the BCP 47 tag the formatter renders digits for.
func (f *NumberFormat) Locale() string {
	return f.tag.String()
}
