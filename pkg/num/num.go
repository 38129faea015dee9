// Package num converts user-entered text into numbers at the edges of the
// program. The calculation packages only ever see float64 values.
package num

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseOrZero parses s as a decimal, accepting "," as the decimal
// separator. Anything that does not parse, including "", yields 0.
func ParseOrZero(s string) float64 {
	s = strings.TrimSpace(strings.Replace(s, ",", ".", 1))
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return Finite(f)
}

// Finite replaces NaN and infinities with 0.
func Finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// NonNegative is Finite, additionally clamping negatives to 0.
func NonNegative(x float64) float64 {
	x = Finite(x)
	if x < 0 {
		return 0
	}
	return x
}

// Round rounds x half away from zero to the given number of decimal places.
func Round(x float64, places int32) float64 {
	x = Finite(x)
	f, _ := decimal.NewFromFloat(x).Round(places).Float64()
	return f
}
