// Package currency formats expense amounts for display. Amounts are a
// single fixed currency; conversion is out of scope.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	Code   = "ETB"
	Symbol = "Br"
	Name   = "Ethiopian Birr"
)

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
)

// Format renders an amount with the currency symbol, thousands separators,
// and exactly two fraction digits, e.g. "Br1,234.50".
func Format(amount decimal.Decimal) string {
	return Symbol + group(amount.StringFixed(2))
}

// FormatCompact renders large amounts in short form: "Br1.2K" from a
// thousand up, "Br1.2M" from a million up, otherwise the full Format.
func FormatCompact(amount decimal.Decimal) string {
	if amount.GreaterThanOrEqual(million) {
		return Symbol + amount.Div(million).StringFixed(1) + "M"
	}
	if amount.GreaterThanOrEqual(thousand) {
		return Symbol + amount.Div(thousand).StringFixed(1) + "K"
	}
	return Format(amount)
}

// group inserts comma separators into the integer part of a fixed-point
// decimal string such as "1234.50" or "-1234.50".
func group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return sign + intPart + "." + fracPart
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + "." + fracPart
}
