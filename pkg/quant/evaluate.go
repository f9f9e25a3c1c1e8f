package quant

import (
	"github.com/markcheno/go-talib"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// Evaluation carries the raw backtest metrics of one rule-set over one
// series, plus the four dimension scores on [0,100] the competition engine
// weighs into a composite.
type Evaluation struct {
	TotalReturn          float64 `json:"total_return"`
	AnnualReturn         float64 `json:"annual_return"`
	MaxDrawdown          float64 `json:"max_drawdown"`
	Volatility           float64 `json:"volatility"`
	Sharpe               float64 `json:"sharpe"`
	WinRate              float64 `json:"win_rate"`
	Trades               int     `json:"trades"`
	MaxConsecutiveLosses int     `json:"max_consecutive_losses"`

	Profitability float64 `json:"profitability"`
	Risk          float64 `json:"risk"`
	Stability     float64 `json:"stability"`
	Adaptability  float64 `json:"adaptability"`
}

// Dimension score mappings. Each maps a raw metric onto [0,100] with 50 as
// the do-nothing baseline, clamped at the edges.
const (
	neutralScore = 50.0

	// +50% annualized return scores 100, -50% scores 0.
	annualReturnPerPoint = 100.0

	// A 40% drawdown exhausts the drawdown component.
	drawdownPerPoint = 250.0

	// 50% annualized volatility exhausts the stability score.
	volatilityPerPoint = 200.0

	// +1% mean daily return in a regime scores that regime 100.
	regimeReturnPerPoint = 5000.0

	// Risk blends the drawdown component with the win-rate component.
	riskDrawdownWeight = 0.7
	riskWinRateWeight  = 0.3

	// regimeSplitPeriod is the SMA lookback classifying up/down regimes.
	regimeSplitPeriod = 20

	// minRegimeSamples is how many observations a regime needs to count.
	minRegimeSamples = 5
)

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Neutral is the evaluation assigned when a strategy cannot be measured
// (unknown indicator, series shorter than the lookback). Every dimension
// sits at the baseline so the strategy neither gains nor loses ground.
func Neutral() *Evaluation {
	return &Evaluation{
		Profitability: neutralScore,
		Risk:          neutralScore,
		Stability:     neutralScore,
		Adaptability:  neutralScore,
	}
}

// Evaluate backtests a rule-set over one close series and scores the four
// dimensions. closes must be in trade-date order.
func Evaluate(rules models.StrategyRules, closes []float64) (*Evaluation, error) {
	positions, err := Signals(rules, closes)
	if err != nil {
		return nil, err
	}

	strat := StrategyReturns(closes, positions)
	ev := &Evaluation{
		TotalReturn:          TotalReturn(strat),
		AnnualReturn:         AnnualizedReturn(strat),
		MaxDrawdown:          MaxDrawdown(strat),
		Volatility:           AnnualizedVolatility(strat),
		Sharpe:               SharpeRatio(strat),
		WinRate:              WinRate(strat),
		Trades:               Trades(positions),
		MaxConsecutiveLosses: MaxConsecutiveLosses(strat),
	}

	ev.Profitability = clampScore(neutralScore + ev.AnnualReturn*annualReturnPerPoint)
	ev.Risk = clampScore(riskDrawdownWeight*(100-ev.MaxDrawdown*drawdownPerPoint) +
		riskWinRateWeight*(100*ev.WinRate))
	ev.Stability = clampScore(100 - ev.Volatility*volatilityPerPoint)
	ev.Adaptability = adaptability(closes, strat)
	return ev, nil
}

// adaptability scores performance consistency across market regimes. Days
// are classified up or down by the close against its 20-day SMA; each regime
// with enough observations is scored by its mean strategy return, and the
// dimension is the average of regime scores. Without two populated regimes
// the score stays neutral.
func adaptability(closes []float64, strat []float64) float64 {
	if len(closes) <= regimeSplitPeriod {
		return neutralScore
	}
	sma := talib.Sma(closes, regimeSplitPeriod)

	var up, down []float64
	for j := range strat {
		// strat[j] is the move into bar j+1; classify by the regime at
		// the bar where the position was held.
		i := j + 1
		if i < regimeSplitPeriod {
			continue
		}
		if closes[i] > sma[i] {
			up = append(up, strat[j])
		} else {
			down = append(down, strat[j])
		}
	}

	var scores []float64
	if len(up) >= minRegimeSamples {
		scores = append(scores, clampScore(neutralScore+Mean(up)*regimeReturnPerPoint))
	}
	if len(down) >= minRegimeSamples {
		scores = append(scores, clampScore(neutralScore+Mean(down)*regimeReturnPerPoint))
	}
	if len(scores) < 2 {
		return neutralScore
	}
	return Mean(scores)
}
