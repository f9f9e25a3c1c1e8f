package arena

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/quant"
)

func (h *harness) setStage(t *testing.T, s *models.Strategy, stage models.StrategyStage) {
	t.Helper()
	s.Stage = stage
	require.NoError(t, h.stores.Strategies.Update(context.Background(), s))
}

func TestRunStageScoresAndAdvances(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createArena(t, models.ArenaConfig{AgentCount: 3})
	s1 := h.seedStrategy(t, a.ArenaID, "agent-1", 0, 1, true)
	s2 := h.seedStrategy(t, a.ArenaID, "agent-2", 0, 2, true)
	s3 := h.seedStrategy(t, a.ArenaID, "agent-3", 0, 3, true)
	h.setStage(t, s2, models.StrategyStageSimulated)
	h.setStage(t, s3, models.StrategyStageLive)

	require.NoError(t, h.m.competition.RunStage(ctx, a, models.StrategyStageBacktest))

	// Only the backtest-stage strategy advances; the others are rescored
	// in place.
	got1, err := h.stores.Strategies.Get(ctx, s1.StrategyID)
	require.NoError(t, err)
	assert.Equal(t, models.StrategyStageSimulated, got1.Stage)
	got2, err := h.stores.Strategies.Get(ctx, s2.StrategyID)
	require.NoError(t, err)
	assert.Equal(t, models.StrategyStageSimulated, got2.Stage)
	got3, err := h.stores.Strategies.Get(ctx, s3.StrategyID)
	require.NoError(t, err)
	assert.Equal(t, models.StrategyStageLive, got3.Stage)

	for _, s := range []*models.Strategy{got1, got2, got3} {
		assert.Greater(t, s.CurrentScore, 0.0)
		assert.LessOrEqual(t, s.CurrentScore, 100.0)
		for _, dim := range []float64{s.ProfitabilityScore, s.RiskScore, s.StabilityScore, s.AdaptabilityScore} {
			assert.GreaterOrEqual(t, dim, 0.0)
			assert.LessOrEqual(t, dim, 100.0)
		}
	}

	require.NoError(t, h.m.competition.RunStage(ctx, a, models.StrategyStageSimulated))
	got1, err = h.stores.Strategies.Get(ctx, s1.StrategyID)
	require.NoError(t, err)
	assert.Equal(t, models.StrategyStageLive, got1.Stage)
	got2, err = h.stores.Strategies.Get(ctx, s2.StrategyID)
	require.NoError(t, err)
	assert.Equal(t, models.StrategyStageLive, got2.Stage)
}

func TestRunStageSkipsEliminatedStrategies(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createArena(t, models.ArenaConfig{AgentCount: 3})
	h.seedStrategy(t, a.ArenaID, "agent-1", 0, 1, true)
	out := h.seedStrategy(t, a.ArenaID, "agent-2", 12.5, 2, false)

	require.NoError(t, h.m.competition.RunStage(ctx, a, models.StrategyStageBacktest))

	got, err := h.stores.Strategies.Get(ctx, out.StrategyID)
	require.NoError(t, err)
	assert.Equal(t, models.StrategyStageBacktest, got.Stage)
	assert.InDelta(t, 12.5, got.CurrentScore, 1e-9)
}

func TestRunStageNeutralWithoutMarketData(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createArena(t, models.ArenaConfig{AgentCount: 3})
	s := h.seedStrategy(t, a.ArenaID, "agent-1", 0, 1, true)
	h.bars.err = errors.New("source down")

	require.NoError(t, h.m.competition.RunStage(ctx, a, models.StrategyStageBacktest))

	// Missing data must not zero out a strategy; it scores neutral and
	// still advances.
	got, err := h.stores.Strategies.Get(ctx, s.StrategyID)
	require.NoError(t, err)
	assert.InDelta(t, 50, got.CurrentScore, 1e-9)
	assert.InDelta(t, 50, got.ProfitabilityScore, 1e-9)
	assert.InDelta(t, 50, got.RiskScore, 1e-9)
	assert.InDelta(t, 50, got.StabilityScore, 1e-9)
	assert.InDelta(t, 50, got.AdaptabilityScore, 1e-9)
	assert.Equal(t, models.StrategyStageSimulated, got.Stage)
}

func TestRunStageHonorsCancellation(t *testing.T) {
	h := newHarness(t)

	a := h.createArena(t, models.ArenaConfig{AgentCount: 3})
	h.seedStrategy(t, a.ArenaID, "agent-1", 0, 1, true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := h.m.competition.RunStage(ctx, a, models.StrategyStageBacktest)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCompositeWeighsDimensions(t *testing.T) {
	assert.InDelta(t, 1.0, weightProfitability+weightRisk+weightStability+weightAdaptability, 1e-12)

	full := &quant.Evaluation{Profitability: 100, Risk: 100, Stability: 100, Adaptability: 100}
	assert.InDelta(t, 100, composite(full), 1e-9)

	assert.InDelta(t, 30, composite(&quant.Evaluation{Profitability: 100}), 1e-9)
	assert.InDelta(t, 30, composite(&quant.Evaluation{Risk: 100}), 1e-9)
	assert.InDelta(t, 20, composite(&quant.Evaluation{Stability: 100}), 1e-9)
	assert.InDelta(t, 20, composite(&quant.Evaluation{Adaptability: 100}), 1e-9)
	assert.Zero(t, composite(&quant.Evaluation{}))

	mixed := &quant.Evaluation{Profitability: 80, Risk: 60, Stability: 40, Adaptability: 20}
	assert.InDelta(t, 24+18+8+4, composite(mixed), 1e-9)
}
