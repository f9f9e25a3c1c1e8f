package quant

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturns(t *testing.T) {
	rets := Returns([]float64{100, 110, 99})
	require.Len(t, rets, 2)
	assert.InDelta(t, 0.10, rets[0], 1e-9)
	assert.InDelta(t, -0.10, rets[1], 1e-9)

	assert.Nil(t, Returns([]float64{100}))
	assert.Nil(t, Returns(nil))
}

func TestStrategyReturnsGatesByPosition(t *testing.T) {
	closes := []float64{100, 110, 121, 121}
	positions := []int{0, 1, 0, 0}

	strat := StrategyReturns(closes, positions)
	require.Len(t, strat, 3)
	// Flat at close of bar 0: the 0->1 move is not earned.
	assert.Zero(t, strat[0])
	// Long at close of bar 1: earns the 10% move into bar 2.
	assert.InDelta(t, 0.10, strat[1], 1e-9)
	assert.Zero(t, strat[2])
}

func TestMeanAndStdDev(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	assert.InDelta(t, 2.5, Mean(xs), 1e-9)
	assert.InDelta(t, math.Sqrt(5.0/3.0), StdDev(xs), 1e-9)

	assert.Zero(t, Mean(nil))
	assert.Zero(t, StdDev([]float64{1}))
}

func TestPercentile(t *testing.T) {
	xs := []float64{4, 1, 3, 2}
	assert.InDelta(t, 2, Percentile(xs, 0.5), 1e-9)
	assert.InDelta(t, 1, Percentile(xs, 0.1), 1e-9)
	assert.InDelta(t, 4, Percentile(xs, 1.0), 1e-9)
	assert.Zero(t, Percentile(nil, 0.5))
}

func TestTotalAndAnnualizedReturn(t *testing.T) {
	assert.InDelta(t, 0.21, TotalReturn([]float64{0.1, 0.1}), 1e-9)
	assert.Zero(t, TotalReturn(nil))

	// A full year of zero returns annualizes to zero.
	flat := make([]float64, 252)
	assert.Zero(t, AnnualizedReturn(flat))

	// One +1% day compounds to (1.01)^252 - 1.
	want := math.Pow(1.01, 252) - 1
	assert.InDelta(t, want, AnnualizedReturn([]float64{0.01}), 1e-6)

	// Total loss caps at -1.
	assert.Equal(t, -1.0, AnnualizedReturn([]float64{-1.0}))
}

func TestMaxDrawdown(t *testing.T) {
	// Equity: 1.10 -> 0.55 -> 0.66; trough against the 1.10 peak is 50%.
	dd := MaxDrawdown([]float64{0.1, -0.5, 0.2})
	assert.InDelta(t, 0.5, dd, 1e-9)

	assert.Zero(t, MaxDrawdown([]float64{0.1, 0.2}))
	assert.Zero(t, MaxDrawdown(nil))
}

func TestMaxConsecutiveLosses(t *testing.T) {
	assert.Equal(t, 2, MaxConsecutiveLosses([]float64{-0.1, -0.2, 0.1, -0.1}))
	assert.Equal(t, 0, MaxConsecutiveLosses([]float64{0.1, 0.2}))
	assert.Equal(t, 3, MaxConsecutiveLosses([]float64{-0.1, -0.1, -0.1}))
}

func TestWinRate(t *testing.T) {
	// Zero-return days are flat days, not losses.
	assert.InDelta(t, 2.0/3.0, WinRate([]float64{0.1, -0.1, 0, 0.2}), 1e-9)
	assert.Zero(t, WinRate([]float64{0, 0}))
	assert.Zero(t, WinRate(nil))
}

func TestSharpeRatio(t *testing.T) {
	assert.Zero(t, SharpeRatio([]float64{0.01, 0.01}), "constant returns have no volatility")

	rets := []float64{0.01, -0.005, 0.02, 0.003}
	want := Mean(rets) / StdDev(rets) * math.Sqrt(252)
	assert.InDelta(t, want, SharpeRatio(rets), 1e-9)
}

func TestAnnualizedVolatility(t *testing.T) {
	rets := []float64{0.01, -0.01, 0.02, -0.02}
	assert.InDelta(t, StdDev(rets)*math.Sqrt(252), AnnualizedVolatility(rets), 1e-9)
}
