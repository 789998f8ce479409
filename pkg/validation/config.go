// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/mortgage-calc/pkg/constants"
)

// ValidateFraction checks that a configured rate is a fraction in [0, 1).
func ValidateFraction(key string, value float64) error {
	if value < 0 || value >= 1 {
		return fmt.Errorf("%s must be a fraction in [0, 1), got %v", key, value)
	}
	return nil
}

// ValidateLoanTermYears checks a default loan term; zero disables the default.
func ValidateLoanTermYears(key string, years int) error {
	if years < 0 || years > constants.MaxLoanTermYears {
		return fmt.Errorf("%s must be between 0 and %d, got %d", key, constants.MaxLoanTermYears, years)
	}
	return nil
}
