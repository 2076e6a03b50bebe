// Package decimal wraps shopspring/decimal with helpers for the German
// amount convention used throughout the invoice documents: "." groups
// thousands, "," separates decimals, a leading "-" marks negative amounts.
package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// ParseGerman converts an amount like "1.234,56" into a decimal by removing
// the thousands separator and replacing the decimal comma.
func ParseGerman(s string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(s, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	return decimal.NewFromString(normalized)
}

// MustParseGerman parses a German-formatted amount, panics on error.
func MustParseGerman(s string) decimal.Decimal {
	d, err := ParseGerman(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FormatGerman renders a decimal back into the canonical German form with
// two decimal places, a decimal comma and dot-grouped thousands, so that
// parsed amounts round-trip to their original digits.
func FormatGerman(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	out := grouped.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// Sum sums a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// WithinRelative reports whether a and b are equal within the relative
// tolerance tol: |a-b| <= tol * max(|a|, |b|).
func WithinRelative(a, b, tol decimal.Decimal) bool {
	diff := a.Sub(b).Abs()
	scale := decimal.Max(a.Abs(), b.Abs())
	return diff.LessThanOrEqual(tol.Mul(scale))
}
