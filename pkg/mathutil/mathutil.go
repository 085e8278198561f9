// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/pension-calculator/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons, never inside the pension formulas.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsFinite reports whether val is neither NaN nor infinite.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// CalculatePercentage calculates what percentage value is of total.
// A zero or non-finite total yields 0.
func CalculatePercentage(value, total float64) float64 {
	if total == 0 || !IsFinite(total) {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}

// RoundPercent rounds a percentage to the nearest whole percent, half away
// from zero.
func RoundPercent(pct float64) int {
	if !IsFinite(pct) {
		return 0
	}
	return int(math.Round(pct))
}
