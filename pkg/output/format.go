// Package output provides utilities for formatting and displaying mortgage reports.
package output

import (
	"fmt"
	"io"

	"github.com/iwvelando/mortgage-calc/internal/amortization"
	"github.com/iwvelando/mortgage-calc/internal/scenario"
	"github.com/iwvelando/mortgage-calc/pkg/constants"
	"github.com/iwvelando/mortgage-calc/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// Options control what PrettyFormat prints besides the summary.
type Options struct {
	Schedule bool
}

// Amount renders a currency amount with two decimals. Values that round to
// zero print as 0.00, never -0.00.
func Amount(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(constants.DisplayDecimals)
}

// Rate renders an annual rate fraction as a percentage with three decimals.
func Rate(annualRate float64) string {
	return fmt.Sprintf("%.3f%%", mathutil.ToPercentage(annualRate))
}

// Notices prints the assumptions made while resolving scenarios.
func Notices(w io.Writer, notices []string) {
	for _, notice := range notices {
		fmt.Fprintln(w, notice)
	}
	if len(notices) > 0 {
		fmt.Fprintln(w)
	}
}

// PrettyFormat outputs a human-readable block per report, in order.
func PrettyFormat(w io.Writer, reports []amortization.Report, opts Options) {
	for i, report := range reports {
		fmt.Fprintf(w, "--- Scenario %d of %d ---\n", i+1, len(reports))
		parameters(w, report.Scenario)
		downpayment(w, report.Scenario)
		summary(w, report)
		if opts.Schedule {
			fmt.Fprintln(w)
			ScheduleFormat(w, report.Scenario)
		}
		if i < len(reports)-1 {
			fmt.Fprintln(w)
		}
	}
}

func parameters(w io.Writer, s scenario.Scenario) {
	fmt.Fprintf(w, "Purchase price:   %10d\n", s.PurchasePrice)
	fmt.Fprintf(w, "Available funds:  %10d\n", s.AvailableFunds)
	fmt.Fprintf(w, "Annual taxes:     %10d\n", s.AnnualTaxes)
	fmt.Fprintf(w, "Annual insurance: %10d%s\n", s.AnnualInsurance, assumed(s.Derived.AnnualInsurance))
	fmt.Fprintf(w, "Closing costs:    %10d%s\n", s.ClosingCosts, assumed(s.Derived.ClosingCosts))
	fmt.Fprintf(w, "Renovation costs: %10d%s\n", s.RenovationCosts, assumed(s.Derived.RenovationCosts))
	fmt.Fprintf(w, "APR:              %10s%s\n", Rate(s.AnnualRate), assumed(s.Derived.AnnualRate))
	fmt.Fprintf(w, "Loan term:        %10d years%s\n", s.TermYears(), assumed(s.Derived.LoanTerm))
}

func assumed(derived bool) string {
	if derived {
		return " (assumed)"
	}
	return ""
}

// downpayment shows how a derived downpayment was reached.
func downpayment(w io.Writer, s scenario.Scenario) {
	if s.Derived.Downpayment {
		fmt.Fprintln(w, "Using all cash available for downpayment:")
		fmt.Fprintf(w, "    %8d (funds available)\n", s.AvailableFunds)
		fmt.Fprintf(w, "  - %8d (renovations)\n", s.RenovationCosts)
		fmt.Fprintf(w, "  - %8d (closing costs)\n", s.ClosingCosts)
		fmt.Fprintln(w, "------------")
		fmt.Fprintf(w, "  = %8d\n", s.Downpayment)
	}
	fmt.Fprintf(w, "Downpayment: %d\n", s.Downpayment)
}

func summary(w io.Writer, report amortization.Report) {
	s := report.Scenario
	fmt.Fprintf(w, "Borrowing %d at %s for %d years\n", s.Principal(), Rate(s.AnnualRate), s.TermYears())
	fmt.Fprintln(w, "Monthly payment")
	fmt.Fprintf(w, "  %10s (mortgage)\n", Amount(report.Summary.MortgagePayment))
	fmt.Fprintf(w, "+ %10s (taxes)\n", Amount(report.Summary.TaxPayment))
	fmt.Fprintf(w, "+ %10s (insurance)\n", Amount(report.Summary.InsurancePayment))
	fmt.Fprintln(w, "------------")
	fmt.Fprintf(w, "= %10s (total)\n", Amount(report.Summary.Total))
	fmt.Fprintf(w, "Over %d payments: %s interest, %s total paid\n",
		report.Totals.Periods, Amount(report.Totals.Interest), Amount(report.Totals.Paid))
}

// ScheduleFormat prints the amortization schedule of a scenario, one row per month.
func ScheduleFormat(w io.Writer, s scenario.Scenario) {
	fmt.Fprintln(w, "Month | Interest   | Principal  | Remaining")
	fmt.Fprintln(w, "_____ | __________ | __________ | ____________")
	for row := range amortization.Schedule(s) {
		fmt.Fprintf(w, "%5d | %10s | %10s | %12s\n",
			row.Period, Amount(row.Interest), Amount(row.Principal), Amount(row.RemainingPrincipal))
	}
}
