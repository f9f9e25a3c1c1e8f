package quant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

func assertDimensionsInRange(t *testing.T, ev *Evaluation) {
	t.Helper()
	for name, score := range map[string]float64{
		"profitability": ev.Profitability,
		"risk":          ev.Risk,
		"stability":     ev.Stability,
		"adaptability":  ev.Adaptability,
	} {
		assert.GreaterOrEqual(t, score, 0.0, name)
		assert.LessOrEqual(t, score, 100.0, name)
	}
}

func TestEvaluateUptrend(t *testing.T) {
	rules := models.StrategyRules{Indicator: IndicatorSMACross, FastPeriod: 5, SlowPeriod: 20}
	ev, err := Evaluate(rules, rising(100, 120))
	require.NoError(t, err)

	assert.Greater(t, ev.TotalReturn, 0.0)
	assert.Greater(t, ev.AnnualReturn, 0.0)
	assert.Greater(t, ev.Profitability, 50.0, "profitable strategies beat the baseline")
	assert.Greater(t, ev.WinRate, 0.9)
	assert.Equal(t, 1, ev.Trades)
	assertDimensionsInRange(t, ev)
}

func TestEvaluateDowntrendStaysFlat(t *testing.T) {
	rules := models.StrategyRules{Indicator: IndicatorSMACross, FastPeriod: 5, SlowPeriod: 20}
	ev, err := Evaluate(rules, falling(300, 120))
	require.NoError(t, err)

	// Never entering means no returns, no drawdown, full risk score.
	assert.Zero(t, ev.TotalReturn)
	assert.Zero(t, ev.MaxDrawdown)
	assert.Zero(t, ev.Trades)
	assert.InDelta(t, 50.0, ev.Profitability, 1e-9)
	assertDimensionsInRange(t, ev)
}

func TestEvaluatePropagatesSignalErrors(t *testing.T) {
	_, err := Evaluate(models.StrategyRules{Indicator: "astrology"}, rising(100, 60))
	require.ErrorIs(t, err, ErrUnknownIndicator)

	rules := models.StrategyRules{Indicator: IndicatorSMACross, FastPeriod: 5, SlowPeriod: 20}
	_, err = Evaluate(rules, rising(100, 5))
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestNeutralEvaluation(t *testing.T) {
	ev := Neutral()
	assert.InDelta(t, 50.0, ev.Profitability, 1e-9)
	assert.InDelta(t, 50.0, ev.Risk, 1e-9)
	assert.InDelta(t, 50.0, ev.Stability, 1e-9)
	assert.InDelta(t, 50.0, ev.Adaptability, 1e-9)
	assert.Zero(t, ev.Trades)
}

func TestClampScore(t *testing.T) {
	assert.Zero(t, clampScore(-3))
	assert.Equal(t, 100.0, clampScore(250))
	assert.InDelta(t, 42.0, clampScore(42), 1e-9)
}
