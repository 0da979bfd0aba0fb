package whale

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultQuantityDecimals is the display precision for asset quantities.
const DefaultQuantityDecimals = 8

// FormatQuantity renders an asset quantity for display with the default
// precision.
//
// Exact zero renders as "0". Dust amounts below 1e-6 render with all
// decimal places so they do not collapse to zero on screen. Everything
// else is thousands-grouped with trailing insignificant zeros trimmed.
func FormatQuantity(q Quantity) string {
	return FormatQuantityPrec(q, DefaultQuantityDecimals)
}

// FormatQuantityPrec is FormatQuantity with an explicit number of decimal
// places.
func FormatQuantityPrec(q Quantity, decimals int32) string {
	v := q.value
	if v.IsZero() {
		return "0"
	}
	if v.Abs().LessThan(decimal.New(1, -6)) {
		return v.StringFixed(decimals)
	}
	s := v.Round(decimals).String()
	if intPart, fracPart, ok := strings.Cut(s, "."); ok {
		if fracPart = strings.TrimRight(fracPart, "0"); fracPart == "" {
			s = intPart
		} else {
			s = intPart + "." + fracPart
		}
	}
	return group(s)
}

// group inserts thousands separators in the integer part of a plain
// decimal string.
func group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
