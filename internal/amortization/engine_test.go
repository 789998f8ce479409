package amortization

import (
	"context"
	"errors"
	"testing"

	"github.com/iwvelando/mortgage-calc/internal/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEngineEvaluatePreservesOrder(t *testing.T) {
	var scenarios []scenario.Scenario
	for years := 1; years <= 40; years++ {
		s := referenceScenario()
		s.LoanTermMonths = years * 12
		scenarios = append(scenarios, s)
	}

	reports, err := NewEngine(zap.NewNop()).Evaluate(context.Background(), scenarios)
	require.NoError(t, err)
	require.Len(t, reports, len(scenarios))

	for i, report := range reports {
		assert.Equal(t, scenarios[i], report.Scenario)
		assert.Equal(t, BuildReport(scenarios[i]), report)
		assert.Equal(t, scenarios[i].LoanTermMonths, report.Totals.Periods)
	}
}

func TestEngineEvaluateEmpty(t *testing.T) {
	reports, err := NewEngine(nil).Evaluate(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestEngineEvaluateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reports, err := NewEngine(zap.NewNop()).Evaluate(ctx, []scenario.Scenario{referenceScenario()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Nil(t, reports)
}

func TestBuildReport(t *testing.T) {
	report := BuildReport(referenceScenario())

	assert.InDelta(t, 805.23, report.Summary.MortgagePayment, 0.005)
	assert.InDelta(t, 1105.23, report.Summary.Total, 0.005)
	assert.True(t, report.Totals.Settled)
}
