// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/shopspring/decimal"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// RoundCurrency rounds to minor units, half away from zero, on the shortest
// decimal representation of val. 1.005 rounds to 1.01 even though its binary
// value sits slightly below the midpoint.
func RoundCurrency(val float64) float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return val
	}
	return decimal.NewFromFloat(val).Round(constants.CurrencyPlaces).InexactFloat64()
}

// FixedCurrency renders val with exactly two decimals using RoundCurrency rules.
func FixedCurrency(val float64) string {
	return decimal.NewFromFloat(val).StringFixed(constants.CurrencyPlaces)
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// IsFinite reports whether val is neither NaN nor infinite.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// PercentToMonthlyRate converts an annual percentage into a monthly fraction.
func PercentToMonthlyRate(annualPercent float64) float64 {
	return annualPercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}
