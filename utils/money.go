package utils

import "math"

// Round2 rounds x to 2 decimal places (banking-style simple round).
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Cents converts an amount to integer cents. Money comparisons go through this
// so float noise cannot flip them.
func Cents(x float64) int64 {
	return int64(math.Round(x * 100))
}

// ApplyDiscount reduces amount by a percentage in [0,100].
func ApplyDiscount(amount, pct float64) float64 {
	return amount * (1 - pct/100)
}
