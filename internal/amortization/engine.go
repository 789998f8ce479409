package amortization

import (
	"context"
	"fmt"
	"runtime"

	"github.com/iwvelando/mortgage-calc/internal/scenario"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Report is everything computed for one scenario.
type Report struct {
	Scenario scenario.Scenario
	Summary  Summary
	Totals   Totals
}

// BuildReport computes the summary and lifetime totals for a scenario.
func BuildReport(s scenario.Scenario) Report {
	return Report{
		Scenario: s,
		Summary:  MonthlySummary(s),
		Totals:   Summarize(s),
	}
}

// Engine evaluates many scenarios at once.
type Engine struct {
	logger *zap.Logger
	limit  int
}

// NewEngine creates an engine bounded to GOMAXPROCS concurrent evaluations.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger, limit: runtime.GOMAXPROCS(0)}
}

// Evaluate builds a report for every scenario. Reports come back in the same
// order as the scenarios regardless of completion order.
func (e *Engine) Evaluate(ctx context.Context, scenarios []scenario.Scenario) ([]Report, error) {
	reports := make([]Report, len(scenarios))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.limit)
	for i, s := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = BuildReport(s)
			e.logger.Debug(fmt.Sprintf("evaluated scenario %d: %d months at %.4f on %d",
				i+1, s.LoanTermMonths, s.AnnualRate, s.Principal()),
				zap.String("op", "amortization.Evaluate"),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to evaluate scenarios: %w", err)
	}
	return reports, nil
}
