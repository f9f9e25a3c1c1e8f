// Package quant turns strategy rule-sets into positions over daily bars and
// measures the resulting return series. The arena's competition engine builds
// its dimension scores on top of these primitives.
package quant

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// tradingDaysPerYear is the annualization base for A-share style calendars.
const tradingDaysPerYear = 252

// Returns computes simple day-over-day returns. The result has one fewer
// element than closes.
func Returns(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	out := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			out[i-1] = 0
			continue
		}
		out[i-1] = closes[i]/closes[i-1] - 1
	}
	return out
}

// StrategyReturns gates daily returns by held positions: the move from bar j
// to bar j+1 accrues only when the strategy held a position at the close of
// bar j. positions must be per-bar (same length as closes).
func StrategyReturns(closes []float64, positions []int) []float64 {
	rets := Returns(closes)
	out := make([]float64, len(rets))
	for j := range rets {
		if j < len(positions) && positions[j] == 1 {
			out[j] = rets[j]
		}
	}
	return out
}

// Mean is the arithmetic mean, zero for an empty series.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// StdDev is the sample standard deviation (n-1), zero below two samples.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}

// Percentile returns the empirical p-quantile (p in [0,1]) of xs.
func Percentile(xs []float64, p float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// TotalReturn compounds a return series.
func TotalReturn(returns []float64) float64 {
	cum := 1.0
	for _, r := range returns {
		cum *= 1 + r
	}
	return cum - 1
}

// AnnualizedReturn compounds and rescales to a 252-day year. A series that
// loses everything reports -1.
func AnnualizedReturn(returns []float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	cum := 1 + TotalReturn(returns)
	if cum <= 0 {
		return -1
	}
	return math.Pow(cum, float64(tradingDaysPerYear)/float64(len(returns))) - 1
}

// AnnualizedVolatility rescales the sample stddev to a 252-day year.
func AnnualizedVolatility(returns []float64) float64 {
	return StdDev(returns) * math.Sqrt(tradingDaysPerYear)
}

// SharpeRatio is the annualized mean over annualized volatility with a zero
// risk-free rate. Zero-volatility series report 0.
func SharpeRatio(returns []float64) float64 {
	vol := StdDev(returns)
	if vol == 0 {
		return 0
	}
	return Mean(returns) / vol * math.Sqrt(tradingDaysPerYear)
}

// MaxDrawdown walks the compounded equity curve and reports the deepest
// peak-to-trough loss as a positive fraction.
func MaxDrawdown(returns []float64) float64 {
	equity := 1.0
	peak := 1.0
	maxDD := 0.0
	for _, r := range returns {
		equity *= 1 + r
		if equity > peak {
			peak = equity
		}
		if peak > 0 {
			dd := (peak - equity) / peak
			if dd > maxDD {
				maxDD = dd
			}
		}
	}
	return maxDD
}

// MaxConsecutiveLosses counts the longest run of strictly negative returns.
func MaxConsecutiveLosses(returns []float64) int {
	maxRun := 0
	run := 0
	for _, r := range returns {
		if r < 0 {
			run++
			if run > maxRun {
				maxRun = run
			}
		} else {
			run = 0
		}
	}
	return maxRun
}

// WinRate is the share of winning days among days with a nonzero return.
func WinRate(returns []float64) float64 {
	wins, active := 0, 0
	for _, r := range returns {
		if r > 0 {
			wins++
			active++
		} else if r < 0 {
			active++
		}
	}
	if active == 0 {
		return 0
	}
	return float64(wins) / float64(active)
}
