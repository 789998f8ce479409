// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/mortgage-calc/pkg/constants"
)

// IsZero checks if a value is effectively zero (within one cent)
func IsZero(val float64) bool {
	return WithinTolerance(val, 0, constants.CurrencyTolerance)
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// ToPercentage converts a fraction such as 0.045 into 4.5
func ToPercentage(fraction float64) float64 {
	return fraction * constants.PercentageMultiplier
}
