// Package amortization computes payment breakdowns and month-by-month
// amortization schedules for resolved scenarios.
package amortization

import (
	"iter"

	"github.com/iwvelando/mortgage-calc/internal/scenario"
	"github.com/iwvelando/mortgage-calc/pkg/constants"
	"github.com/iwvelando/mortgage-calc/pkg/loans"
	"github.com/iwvelando/mortgage-calc/pkg/mathutil"
	"gonum.org/v1/gonum/floats"
)

// Summary is the monthly cost of a scenario.
type Summary struct {
	MortgagePayment  float64
	TaxPayment       float64
	InsurancePayment float64
	Total            float64
}

// Row holds the values for a given payment period.
type Row struct {
	Period             int
	Interest           float64
	Principal          float64
	RemainingPrincipal float64
}

// Totals folds a whole schedule into lifetime figures.
type Totals struct {
	Periods      int
	Interest     float64
	Principal    float64
	Paid         float64
	FinalBalance float64
	// Settled is true when the final balance is within a cent of zero.
	Settled bool
}

// MonthlySummary computes the mortgage, tax and insurance payment per month.
// The scenario must have a positive loan term.
func MonthlySummary(s scenario.Scenario) Summary {
	summary := Summary{
		MortgagePayment:  loans.MonthlyPayment(float64(s.Principal()), s.AnnualRate, s.TermYears()),
		TaxPayment:       float64(s.AnnualTaxes) / constants.MonthsPerYear,
		InsurancePayment: float64(s.AnnualInsurance) / constants.MonthsPerYear,
	}
	summary.Total = summary.MortgagePayment + summary.TaxPayment + summary.InsurancePayment
	return summary
}

// Schedule yields one Row per month of the loan term. Each range over the
// returned sequence starts again from the full principal. No rounding is
// applied, so the last RemainingPrincipal is only approximately zero.
func Schedule(s scenario.Scenario) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		remaining := float64(s.Principal())
		payment := loans.PeriodicPayment(remaining, s.MonthlyRate(), float64(s.LoanTermMonths))

		for period := 0; period < s.LoanTermMonths; period++ {
			interest := loans.CalculateInterestPayment(remaining, s.AnnualRate)
			principal := payment - interest
			remaining -= principal
			if !yield(Row{
				Period:             period,
				Interest:           interest,
				Principal:          principal,
				RemainingPrincipal: remaining,
			}) {
				return
			}
		}
	}
}

// Collect materializes the schedule of a scenario.
func Collect(s scenario.Scenario) []Row {
	rows := make([]Row, 0, s.LoanTermMonths)
	for row := range Schedule(s) {
		rows = append(rows, row)
	}
	return rows
}

// Summarize computes lifetime totals over the schedule of a scenario.
func Summarize(s scenario.Scenario) Totals {
	rows := Collect(s)
	interest := make([]float64, len(rows))
	principal := make([]float64, len(rows))
	for i, row := range rows {
		interest[i] = row.Interest
		principal[i] = row.Principal
	}

	totals := Totals{
		Periods:   len(rows),
		Interest:  floats.Sum(interest),
		Principal: floats.Sum(principal),
	}
	totals.Paid = totals.Interest + totals.Principal
	if len(rows) > 0 {
		totals.FinalBalance = rows[len(rows)-1].RemainingPrincipal
	}
	totals.Settled = mathutil.IsZero(totals.FinalBalance)
	return totals
}
