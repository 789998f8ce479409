// Package scenario turns raw user inputs into fully resolved mortgage
// scenarios: it applies defaults, derives dependent values, validates
// cross-field rules and expands multi-valued inputs into a cross-product.
package scenario

import "github.com/iwvelando/mortgage-calc/pkg/constants"

// Scenario is one fully resolved set of inputs. It is a comparable value;
// nothing in it is left unspecified.
type Scenario struct {
	LoanTermMonths  int
	AnnualRate      float64
	PurchasePrice   int64
	AvailableFunds  int64
	AnnualTaxes     int64
	AnnualInsurance int64
	ClosingCosts    int64
	RenovationCosts int64
	Downpayment     int64
	Derived         Derivations
}

// Derivations records which fields were filled in by the resolver rather
// than supplied by the user.
type Derivations struct {
	LoanTerm        bool
	AnnualRate      bool
	AnnualInsurance bool
	ClosingCosts    bool
	RenovationCosts bool
	Downpayment     bool
}

// Principal is the amount borrowed.
func (s Scenario) Principal() int64 {
	return s.PurchasePrice - s.Downpayment
}

// TermYears is the loan term in whole years.
func (s Scenario) TermYears() int {
	return s.LoanTermMonths / constants.MonthsPerYear
}

// MonthlyRate is the periodic rate applied each month.
func (s Scenario) MonthlyRate() float64 {
	return s.AnnualRate / constants.MonthsPerYear
}
