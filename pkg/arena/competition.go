package arena

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/quant"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// Dimension weights of the composite score. They sum to exactly 1.0.
const (
	weightProfitability = 0.30
	weightRisk          = 0.30
	weightStability     = 0.20
	weightAdaptability  = 0.20
)

// Competition scores strategies against market data and advances them
// through the validation stages.
type Competition struct {
	strategies store.StrategyStore
	bars       BarSource
	nowFn      func() time.Time
	logger     *slog.Logger
}

func newCompetition(strategies store.StrategyStore, bars BarSource, nowFn func() time.Time) *Competition {
	return &Competition{
		strategies: strategies,
		bars:       bars,
		nowFn:      nowFn,
		logger:     slog.With("component", "arena.competition"),
	}
}

// composite collapses the four dimension scores into [0,100].
func composite(e *quant.Evaluation) float64 {
	s := weightProfitability*e.Profitability +
		weightRisk*e.Risk +
		weightStability*e.Stability +
		weightAdaptability*e.Adaptability
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// RunStage rescores every active strategy of the arena over the backtest
// window, then advances the ones sitting in advanceFrom to the next stage.
// Strategies past advanceFrom keep their stage but still pick up fresh
// scores, so the leaderboard tracks the market.
func (c *Competition) RunStage(ctx context.Context, a *models.Arena, advanceFrom models.StrategyStage) error {
	active, err := c.strategies.ListActive(ctx, a.ArenaID)
	if err != nil {
		return err
	}
	series := c.loadSeries(ctx, a)
	for _, s := range active {
		if err := ctx.Err(); err != nil {
			return err
		}
		eval := c.evaluate(s, series)
		s.ProfitabilityScore = eval.Profitability
		s.RiskScore = eval.Risk
		s.StabilityScore = eval.Stability
		s.AdaptabilityScore = eval.Adaptability
		s.CurrentScore = composite(eval)
		if s.Stage == advanceFrom {
			s.Stage = s.Stage.Next()
		}
		s.UpdatedAt = c.nowFn().UTC()
		if err := c.strategies.Update(ctx, s); err != nil {
			return fmt.Errorf("updating strategy %s: %w", s.StrategyID, err)
		}
	}
	c.logger.Info("Stage scoring complete",
		"arena_id", a.ArenaID, "stage", advanceFrom, "strategies", len(active), "symbols", len(series))
	return nil
}

// loadSeries fetches the close series of every configured symbol. Symbols
// without data are dropped; scoring degrades to neutral when nothing loads.
func (c *Competition) loadSeries(ctx context.Context, a *models.Arena) map[string][]float64 {
	to := c.nowFn()
	from := to.AddDate(0, 0, -a.Config.BacktestWindowDays)
	series := make(map[string][]float64, len(a.Config.Symbols))
	for _, symbol := range a.Config.Symbols {
		bars, err := c.bars.DailyBars(ctx, symbol, models.FormatTradeDate(from), models.FormatTradeDate(to))
		if err != nil {
			c.logger.Warn("Market data unavailable for scoring", "arena_id", a.ArenaID, "symbol", symbol, "error", err)
			continue
		}
		if len(bars) == 0 {
			continue
		}
		closes := make([]float64, len(bars))
		for i, bar := range bars {
			closes[i] = bar.Close
		}
		series[symbol] = closes
	}
	return series
}

// evaluate averages the per-symbol dimension scores of one strategy.
// Symbols the rule-set cannot be scored on are skipped; a strategy with no
// scorable symbol falls back to the neutral evaluation rather than zero.
func (c *Competition) evaluate(s *models.Strategy, series map[string][]float64) *quant.Evaluation {
	symbols := make([]string, 0, len(series))
	for symbol := range series {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)

	sum := quant.Evaluation{}
	count := 0
	for _, symbol := range symbols {
		eval, err := quant.Evaluate(s.Rules, series[symbol])
		if err != nil {
			c.logger.Warn("Strategy not scorable on symbol",
				"strategy_id", s.StrategyID, "symbol", symbol, "error", err)
			continue
		}
		sum.Profitability += eval.Profitability
		sum.Risk += eval.Risk
		sum.Stability += eval.Stability
		sum.Adaptability += eval.Adaptability
		count++
	}
	if count == 0 {
		return quant.Neutral()
	}
	sum.Profitability /= float64(count)
	sum.Risk /= float64(count)
	sum.Stability /= float64(count)
	sum.Adaptability /= float64(count)
	return &sum
}
