package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

func testStrategy(id, arenaID string, score float64, rank int) *models.Strategy {
	return &models.Strategy{
		StrategyID:   id,
		ArenaID:      arenaID,
		Name:         "strategy " + id,
		AgentID:      "agent-" + id,
		AgentRole:    models.AgentRoleStrategyGenerator,
		Stage:        models.StrategyStageBacktest,
		IsActive:     true,
		CurrentScore: score,
		CurrentRank:  rank,
		CreatedAt:    time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
	}
}

func TestStrategyStore_CreateGetUpdate(t *testing.T) {
	s := NewStrategyStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, testStrategy("strat-1", "arena-1", 50, 1)))

	err := s.Create(ctx, testStrategy("strat-1", "arena-1", 50, 1))
	assert.ErrorIs(t, err, store.ErrAlreadyExists)

	got, err := s.Get(ctx, "strat-1")
	require.NoError(t, err)
	got.CurrentScore = 72.5
	require.NoError(t, s.Update(ctx, got))

	fresh, err := s.Get(ctx, "strat-1")
	require.NoError(t, err)
	assert.InDelta(t, 72.5, fresh.CurrentScore, 1e-9)

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStrategyStore_ListActiveOrdering(t *testing.T) {
	s := NewStrategyStore()
	ctx := context.Background()

	// Two strategies tie on score; the one holding the better rank sorts first.
	strategies := []*models.Strategy{
		testStrategy("strat-1", "arena-1", 61.0, 2),
		testStrategy("strat-2", "arena-1", 61.0, 1),
		testStrategy("strat-3", "arena-1", 88.0, 3),
		testStrategy("strat-4", "arena-1", 40.0, 4),
		testStrategy("strat-5", "arena-2", 99.0, 1),
	}
	strategies[3].IsActive = false
	for _, st := range strategies {
		require.NoError(t, s.Create(ctx, st))
	}

	active, err := s.ListActive(ctx, "arena-1")
	require.NoError(t, err)
	require.Len(t, active, 3)
	assert.Equal(t, "strat-3", active[0].StrategyID)
	assert.Equal(t, "strat-2", active[1].StrategyID)
	assert.Equal(t, "strat-1", active[2].StrategyID)

	all, err := s.ListByArena(ctx, "arena-1")
	require.NoError(t, err)
	assert.Len(t, all, 4, "inactive strategies still listed")
}
