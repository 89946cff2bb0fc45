// Package money converts between free-form currency text and decimal amounts.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse interprets free-form user input as a non-negative currency amount.
// Every character that is not a digit or a decimal point is stripped before
// parsing, so "$1,234.56", "1234.56 USD" and "1234.56" are all equivalent.
// Empty input, or input with nothing left after stripping, yields zero.
// Malformed remainders (e.g. "1.2.3") also yield zero rather than an error.
func Parse(text string) decimal.Decimal {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Format renders an amount as a display currency string with two decimals
// and thousands separators, e.g. 1234.5 -> "$1,234.50". Zero renders as
// "$0.00" and negative amounts as "$-3,000.00".
func Format(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	fixed := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	return "$" + sign + groupThousands(intPart) + "." + frac
}

// groupThousands inserts comma separators into a digit string.
// e.g. "1234567" -> "1,234,567"
func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
