// Package money centralizes the monetary rounding and formatting rules
// shared by the loan and property domains. All schedule math rounds
// half away from zero at two decimal places at every intermediate
// assignment; changing this changes the cumulative drift across a
// multi-period schedule.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundCents rounds a monetary value to two decimal places, half away
// from zero.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// RoundTo rounds half away from zero at the given number of decimal
// places.
func RoundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}

// FormatUSD renders a value as a fixed two-decimal USD string, e.g.
// "$8333.33".
func FormatUSD(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}

// FormatAmount renders a value as a bare fixed two-decimal string for
// JSON payloads, e.g. "8333.33".
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatPercent renders a rate fraction as a percent string with the
// requested number of decimal places, e.g. FormatPercent(0.085, 2) ==
// "8.50%".
func FormatPercent(rate float64, places int) string {
	return decimal.NewFromFloat(rate * 100).StringFixed(int32(places)) + "%"
}
