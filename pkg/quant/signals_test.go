package quant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// rising returns n closes climbing steadily from start.
func rising(start float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)
	}
	return out
}

// falling returns n closes declining steadily from start.
func falling(start float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start - float64(i)
	}
	return out
}

func TestSignalsSMACrossLongInUptrend(t *testing.T) {
	rules := models.StrategyRules{Indicator: IndicatorSMACross, FastPeriod: 5, SlowPeriod: 20}
	positions, err := Signals(rules, rising(100, 60))
	require.NoError(t, err)
	require.Len(t, positions, 60)

	// Before the slow window fills there is no position.
	for i := 0; i < 19; i++ {
		assert.Zero(t, positions[i], "bar %d", i)
	}
	// In a monotone uptrend the fast SMA sits above the slow from the first
	// valid bar onward.
	for i := 25; i < 60; i++ {
		assert.Equal(t, 1, positions[i], "bar %d", i)
	}
	assert.Equal(t, 1, Trades(positions))
}

func TestSignalsSMACrossFlatInDowntrend(t *testing.T) {
	rules := models.StrategyRules{Indicator: IndicatorSMACross, FastPeriod: 5, SlowPeriod: 20}
	positions, err := Signals(rules, falling(200, 60))
	require.NoError(t, err)
	for i, p := range positions {
		assert.Zero(t, p, "bar %d", i)
	}
	assert.Zero(t, Trades(positions))
}

func TestSignalsStopLossExitsAndBlocksReentry(t *testing.T) {
	// A steady climb establishes a long, then one crash bar takes the price
	// 20% down while the fast SMA is still above the slow.
	closes := rising(100, 40)
	crash := 40
	closes = append(closes, closes[len(closes)-1]*0.80)
	closes = append(closes, closes[len(closes)-1], closes[len(closes)-1])

	rules := models.StrategyRules{
		Indicator: IndicatorSMACross, FastPeriod: 5, SlowPeriod: 20, StopLossPct: 0.05,
	}
	positions, err := Signals(rules, closes)
	require.NoError(t, err)

	require.Equal(t, 1, positions[crash-1], "long before the crash")
	assert.Zero(t, positions[crash], "stop-loss exits on the crash bar")

	// The raw indicator is still long on the crash bar (short SMA window
	// keeps the fast above the slow), so the exit had to come from the
	// stop, and re-entry stays blocked until the raw signal resets.
	raw, err := rawSignals(normalize(rules), closes)
	require.NoError(t, err)
	require.Equal(t, 1, raw[crash])
	for i := crash; i < len(positions) && raw[i] == 1; i++ {
		assert.Zero(t, positions[i], "bar %d must stay flat while blocked", i)
	}
}

func TestSignalsRSIEntryAndExit(t *testing.T) {
	// Twenty falling bars push RSI deep into oversold, then twenty strong
	// up bars push it overbought.
	closes := make([]float64, 0, 41)
	price := 100.0
	closes = append(closes, price)
	for i := 0; i < 20; i++ {
		price *= 0.99
		closes = append(closes, price)
	}
	for i := 0; i < 20; i++ {
		price *= 1.02
		closes = append(closes, price)
	}

	rules := models.StrategyRules{Indicator: IndicatorRSI, Period: 14, EntryLevel: 30, ExitLevel: 70}
	positions, err := Signals(rules, closes)
	require.NoError(t, err)

	assert.Equal(t, 1, positions[20], "oversold bottom should be long")
	assert.Zero(t, positions[len(positions)-1], "overbought top should have exited")
	assert.GreaterOrEqual(t, Trades(positions), 1)
}

func TestSignalsMomentum(t *testing.T) {
	rules := models.StrategyRules{Indicator: IndicatorMomentum, Period: 10}
	positions, err := Signals(rules, rising(100, 30))
	require.NoError(t, err)
	assert.Equal(t, 1, positions[len(positions)-1])

	positions, err = Signals(rules, falling(200, 30))
	require.NoError(t, err)
	assert.Zero(t, positions[len(positions)-1])
}

func TestSignalsMACD(t *testing.T) {
	// Accelerating growth keeps the MACD histogram clearly positive; a
	// linear trend would let it converge to zero.
	closes := make([]float64, 80)
	price := 100.0
	for i := range closes {
		closes[i] = price
		price *= 1.01
	}

	rules := models.StrategyRules{Indicator: IndicatorMACD}
	positions, err := Signals(rules, closes)
	require.NoError(t, err)
	assert.Equal(t, 1, positions[len(positions)-1], "uptrend MACD histogram is positive")
}

func TestSignalsUnknownIndicator(t *testing.T) {
	_, err := Signals(models.StrategyRules{Indicator: "astrology"}, rising(100, 60))
	require.ErrorIs(t, err, ErrUnknownIndicator)
}

func TestSignalsInsufficientData(t *testing.T) {
	rules := models.StrategyRules{Indicator: IndicatorSMACross, FastPeriod: 5, SlowPeriod: 20}
	_, err := Signals(rules, rising(100, 10))
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestNormalizeSwapsDegenerateCrossPeriods(t *testing.T) {
	rules := normalize(models.StrategyRules{Indicator: IndicatorSMACross, FastPeriod: 30, SlowPeriod: 20})
	assert.Less(t, rules.FastPeriod, rules.SlowPeriod)

	rules = normalize(models.StrategyRules{Indicator: IndicatorRSI})
	assert.Equal(t, 14, rules.Period)
	assert.InDelta(t, 30, rules.EntryLevel, 1e-9)
	assert.InDelta(t, 70, rules.ExitLevel, 1e-9)
}
