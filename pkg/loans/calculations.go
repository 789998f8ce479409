// Package loans provides the payment math for fixed-rate amortizing loans.
package loans

import (
	"math"

	"github.com/iwvelando/mortgage-calc/pkg/constants"
)

// PeriodicPayment returns the constant payment that fully amortizes principal
// over numPeriods periods at periodicRate per period, using the annuity
// formula p * (r + r / ((1+r)^n - 1)).
func PeriodicPayment(principal, periodicRate, numPeriods float64) float64 {
	if periodicRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / numPeriods
	}

	growth := math.Pow(1.00+periodicRate, numPeriods) - 1.00
	return principal * (periodicRate + periodicRate/growth)
}

// MonthlyPayment calculates the monthly payment for a loan of termYears at a
// nominal annualRate expressed as a fraction (0.045 for 4.5%).
func MonthlyPayment(principal, annualRate float64, termYears int) float64 {
	return PeriodicPayment(principal, annualRate/constants.MonthsPerYear, float64(termYears*constants.MonthsPerYear))
}

// CalculateInterestPayment calculates the interest accrued on a balance over one month.
func CalculateInterestPayment(remainingPrincipal, annualRate float64) float64 {
	return annualRate / constants.MonthsPerYear * remainingPrincipal
}
