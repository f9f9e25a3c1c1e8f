package quant

import (
	"errors"
	"fmt"

	"github.com/markcheno/go-talib"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// Supported rule indicators. The LLM proposes rules in this vocabulary; an
// unknown indicator is rejected so the orchestrator can fall back.
const (
	IndicatorSMACross = "sma_cross"
	IndicatorEMACross = "ema_cross"
	IndicatorRSI      = "rsi"
	IndicatorMACD     = "macd"
	IndicatorMomentum = "momentum"
)

var (
	// ErrUnknownIndicator reports a rule-set naming an unsupported indicator.
	ErrUnknownIndicator = errors.New("unknown indicator")

	// ErrInsufficientData reports a series too short for the rule's lookback.
	ErrInsufficientData = errors.New("insufficient data for indicator lookback")
)

// KnownIndicator reports whether name is a supported rule indicator.
func KnownIndicator(name string) bool {
	switch name {
	case IndicatorSMACross, IndicatorEMACross, IndicatorRSI, IndicatorMACD, IndicatorMomentum:
		return true
	default:
		return false
	}
}

// DefaultRules is the fallback rule-set used when an agent's proposal cannot
// be parsed or evaluated.
func DefaultRules() models.StrategyRules {
	return models.StrategyRules{
		Indicator:   IndicatorSMACross,
		FastPeriod:  5,
		SlowPeriod:  20,
		StopLossPct: 0.05,
	}
}

// normalize fills rule defaults in place of zero values.
func normalize(rules models.StrategyRules) models.StrategyRules {
	switch rules.Indicator {
	case IndicatorSMACross, IndicatorEMACross:
		if rules.FastPeriod <= 0 {
			rules.FastPeriod = 5
		}
		if rules.SlowPeriod <= 0 {
			rules.SlowPeriod = 20
		}
		if rules.FastPeriod >= rules.SlowPeriod {
			rules.FastPeriod = rules.SlowPeriod / 2
			if rules.FastPeriod < 1 {
				rules.FastPeriod = 1
			}
		}
	case IndicatorRSI:
		if rules.Period <= 0 {
			rules.Period = 14
		}
		if rules.EntryLevel <= 0 {
			rules.EntryLevel = 30
		}
		if rules.ExitLevel <= 0 {
			rules.ExitLevel = 70
		}
	case IndicatorMACD:
		if rules.FastPeriod <= 0 {
			rules.FastPeriod = 12
		}
		if rules.SlowPeriod <= 0 {
			rules.SlowPeriod = 26
		}
		if rules.FastPeriod >= rules.SlowPeriod {
			rules.FastPeriod = rules.SlowPeriod / 2
			if rules.FastPeriod < 1 {
				rules.FastPeriod = 1
			}
		}
	case IndicatorMomentum:
		if rules.Period <= 0 {
			rules.Period = 10
		}
	}
	return rules
}

// lookback is the number of bars the indicator needs before its first valid
// value.
func lookback(rules models.StrategyRules) int {
	switch rules.Indicator {
	case IndicatorSMACross, IndicatorEMACross:
		return rules.SlowPeriod
	case IndicatorRSI:
		return rules.Period + 1
	case IndicatorMACD:
		// Slow EMA plus the 9-period signal line.
		return rules.SlowPeriod + 9
	case IndicatorMomentum:
		return rules.Period + 1
	default:
		return 0
	}
}

// Signals evaluates a rule-set over closing prices and returns a per-bar
// position series (1 long, 0 flat). A stop-loss exit blocks re-entry until
// the raw indicator signal has reset once.
func Signals(rules models.StrategyRules, closes []float64) ([]int, error) {
	rules = normalize(rules)
	raw, err := rawSignals(rules, closes)
	if err != nil {
		return nil, err
	}

	positions := make([]int, len(closes))
	pos := 0
	entry := 0.0
	blocked := false
	for i := range closes {
		if pos == 1 {
			switch {
			case rules.StopLossPct > 0 && closes[i] <= entry*(1-rules.StopLossPct):
				pos = 0
				blocked = true
			case raw[i] == 0:
				pos = 0
			}
		} else {
			if raw[i] == 0 {
				blocked = false
			}
			if raw[i] == 1 && !blocked {
				pos = 1
				entry = closes[i]
			}
		}
		positions[i] = pos
	}
	return positions, nil
}

// rawSignals computes the indicator's own long/flat series before the
// stop-loss overlay.
func rawSignals(rules models.StrategyRules, closes []float64) ([]int, error) {
	lb := lookback(rules)
	if lb == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIndicator, rules.Indicator)
	}
	if len(closes) <= lb {
		return nil, fmt.Errorf("%w: need more than %d bars, have %d",
			ErrInsufficientData, lb, len(closes))
	}

	raw := make([]int, len(closes))
	switch rules.Indicator {
	case IndicatorSMACross:
		fast := talib.Sma(closes, rules.FastPeriod)
		slow := talib.Sma(closes, rules.SlowPeriod)
		for i := rules.SlowPeriod - 1; i < len(closes); i++ {
			if fast[i] > slow[i] {
				raw[i] = 1
			}
		}

	case IndicatorEMACross:
		fast := talib.Ema(closes, rules.FastPeriod)
		slow := talib.Ema(closes, rules.SlowPeriod)
		for i := rules.SlowPeriod - 1; i < len(closes); i++ {
			if fast[i] > slow[i] {
				raw[i] = 1
			}
		}

	case IndicatorRSI:
		rsi := talib.Rsi(closes, rules.Period)
		// Oversold entry, overbought exit, hold in between.
		state := 0
		for i := rules.Period; i < len(closes); i++ {
			switch {
			case rsi[i] < rules.EntryLevel:
				state = 1
			case rsi[i] > rules.ExitLevel:
				state = 0
			}
			raw[i] = state
		}

	case IndicatorMACD:
		_, _, hist := talib.Macd(closes, rules.FastPeriod, rules.SlowPeriod, 9)
		for i := lb - 1; i < len(closes); i++ {
			if hist[i] > 0 {
				raw[i] = 1
			}
		}

	case IndicatorMomentum:
		roc := talib.Roc(closes, rules.Period)
		for i := rules.Period; i < len(closes); i++ {
			if roc[i] > rules.EntryLevel {
				raw[i] = 1
			}
		}
	}
	return raw, nil
}

// Trades counts position openings (flat-to-long transitions).
func Trades(positions []int) int {
	trades := 0
	prev := 0
	for _, p := range positions {
		if p == 1 && prev == 0 {
			trades++
		}
		prev = p
	}
	return trades
}
