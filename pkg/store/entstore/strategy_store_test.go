package entstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

func testStrategy(id, arenaID string, createdAt time.Time) *models.Strategy {
	return &models.Strategy{
		StrategyID: id,
		ArenaID:    arenaID,
		Name:       "Momentum " + id,
		AgentID:    "agent-1",
		AgentRole:  models.AgentRoleStrategyGenerator,
		Stage:      models.StrategyStageBacktest,
		IsActive:   true,
		Logic:      "buy strength, cut weakness",
		Rules: models.StrategyRules{
			Indicator:   "macd",
			FastPeriod:  12,
			SlowPeriod:  26,
			StopLossPct: 0.05,
		},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestStrategyStore_RoundTrip(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	require.NoError(t, stores.Arenas.Create(ctx, testArena("arena-1", now)))
	require.NoError(t, stores.Strategies.Create(ctx, testStrategy("strat-1", "arena-1", now)))

	err := stores.Strategies.Create(ctx, testStrategy("strat-1", "arena-1", now))
	assert.ErrorIs(t, err, store.ErrAlreadyExists)

	got, err := stores.Strategies.Get(ctx, "strat-1")
	require.NoError(t, err)
	assert.Equal(t, "arena-1", got.ArenaID)
	assert.Equal(t, models.AgentRoleStrategyGenerator, got.AgentRole)
	assert.Equal(t, models.StrategyStageBacktest, got.Stage)
	assert.Equal(t, "macd", got.Rules.Indicator)
	assert.Equal(t, 26, got.Rules.SlowPeriod)
	assert.InDelta(t, 0.05, got.Rules.StopLossPct, 1e-9)
	assert.True(t, got.IsActive)

	// Scoring updates land on the row.
	got.CurrentScore = 58.4
	got.CurrentRank = 2
	got.ProfitabilityScore = 61.0
	got.Stage = models.StrategyStageSimulated
	got.UpdatedAt = now.Add(time.Hour)
	require.NoError(t, stores.Strategies.Update(ctx, got))

	scored, err := stores.Strategies.Get(ctx, "strat-1")
	require.NoError(t, err)
	assert.InDelta(t, 58.4, scored.CurrentScore, 1e-9)
	assert.Equal(t, 2, scored.CurrentRank)
	assert.Equal(t, models.StrategyStageSimulated, scored.Stage)

	err = stores.Strategies.Update(ctx, testStrategy("missing", "arena-1", now))
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStrategyStore_ListByArena(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	require.NoError(t, stores.Arenas.Create(ctx, testArena("arena-1", base)))
	require.NoError(t, stores.Arenas.Create(ctx, testArena("arena-2", base)))

	for i, id := range []string{"strat-b", "strat-a", "strat-c"} {
		require.NoError(t, stores.Strategies.Create(ctx, testStrategy(id, "arena-1", base.Add(time.Duration(i)*time.Minute))))
	}
	require.NoError(t, stores.Strategies.Create(ctx, testStrategy("strat-other", "arena-2", base)))

	got, err := stores.Strategies.ListByArena(ctx, "arena-1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "strat-b", got[0].StrategyID, "creation order")
	assert.Equal(t, "strat-c", got[2].StrategyID)
}

func TestStrategyStore_ListActiveOrdering(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	require.NoError(t, stores.Arenas.Create(ctx, testArena("arena-1", now)))

	for _, tt := range []struct {
		id     string
		score  float64
		rank   int
		active bool
	}{
		{"strat-low", 31.0, 4, true},
		{"strat-top", 72.5, 1, true},
		{"strat-tied-worse", 55.0, 3, true},
		{"strat-tied-better", 55.0, 2, true},
		{"strat-out", 90.0, 1, false},
	} {
		s := testStrategy(tt.id, "arena-1", now)
		s.CurrentScore = tt.score
		s.CurrentRank = tt.rank
		s.IsActive = tt.active
		require.NoError(t, stores.Strategies.Create(ctx, s))
	}

	active, err := stores.Strategies.ListActive(ctx, "arena-1")
	require.NoError(t, err)
	require.Len(t, active, 4, "eliminated strategies stay out of the roster")
	assert.Equal(t, "strat-top", active[0].StrategyID)
	assert.Equal(t, "strat-tied-better", active[1].StrategyID, "stored rank breaks score ties")
	assert.Equal(t, "strat-tied-worse", active[2].StrategyID)
	assert.Equal(t, "strat-low", active[3].StrategyID)
}
