package format

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/number"
)

// ErrUnknownCurrency is returned for codes that are not ISO 4217 currencies.
var ErrUnknownCurrency = errors.New("format: unknown currency code")

// defaultMaxFraction mirrors the CLDR "#,##0.###" decimal pattern.
const defaultMaxFraction = 3

// Number formats a number with the locale's grouping and decimal separators.
func (f *Formatter) Number(v any) string {
	return f.Decimal(v, -1)
}

// Decimal formats a number with a fixed number of fraction digits, or with up
// to three when precision is negative.
func (f *Formatter) Decimal(v any, precision int) string {
	if precision < 0 {
		return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(defaultMaxFraction)))
	}
	return f.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(precision),
		number.MaxFractionDigits(precision),
	))
}

// Currency formats an amount in the given ISO 4217 currency, using the
// currency's standard number of fraction digits and the locale's symbol
// placement.
func (f *Formatter) Currency(amount float64, code string) (string, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}

	scale, _ := currency.Standard.Rounding(unit)
	negative := amount < 0
	if negative {
		amount = -amount
	}

	num := f.Decimal(amount, scale)
	sym := f.printer.Sprint(currency.Symbol(unit))

	var result string
	switch f.currencyPlacement() {
	case placeAfter:
		result = num + " " + sym
	case placeBeforeSpaced:
		result = sym + " " + num
	default:
		result = sym + num
	}

	if negative {
		result = "-" + result
	}
	return result, nil
}

// Percent formats a ratio as a percentage (0.25 → "25%").
func (f *Formatter) Percent(v any) string {
	return f.printer.Sprint(number.Percent(v))
}

// Scientific formats a number in the CLDR "#E0" notation, keeping every
// significant digit: 12345 → "1.2345E4", 0.000123 → "1.23E-4". The mantissa
// uses the locale's decimal separator.
func (f *Formatter) Scientific(v any) string {
	x, ok := toFloat(v)
	if !ok {
		return fmt.Sprint(v)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return f.printer.Sprint(number.Decimal(x))
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(x, 'e', -1, 64), "e")
	n, _ := strconv.Atoi(exp)
	return strings.Replace(mantissa, ".", f.decimalSeparator(), 1) + "E" + strconv.Itoa(n)
}

func (f *Formatter) decimalSeparator() string {
	s := f.printer.Sprint(number.Decimal(1.5, number.MinFractionDigits(1)))
	return strings.TrimSuffix(strings.TrimPrefix(s, "1"), "5")
}

func toFloat(v any) (float64, bool) {
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
	}
	return 0, false
}

type placement int

const (
	placeBefore placement = iota
	placeBeforeSpaced
	placeAfter
)

var symbolAfter = map[string]bool{
	"de": true, "fr": true, "es": true, "it": true, "pl": true, "ru": true,
	"cs": true, "uk": true, "fi": true, "sv": true, "da": true, "nb": true,
}

func (f *Formatter) currencyPlacement() placement {
	if f.locale == nil {
		return placeBefore
	}
	lang := f.locale.Language()
	switch {
	case symbolAfter[lang], lang == "pt" && f.locale.Territory() == "PT":
		return placeAfter
	case lang == "nl", lang == "pt":
		return placeBeforeSpaced
	default:
		return placeBefore
	}
}
