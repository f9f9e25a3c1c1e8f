package arena

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// seedRanked creates one active strategy per score, highest first, with
// stored ranks matching the order.
func (h *harness) seedRanked(t *testing.T, arenaID string, scores ...float64) []*models.Strategy {
	t.Helper()
	out := make([]*models.Strategy, 0, len(scores))
	for i, score := range scores {
		out = append(out, h.seedStrategy(t, arenaID, fmt.Sprintf("agent-%d", i+1), score, i+1, true))
	}
	return out
}

func TestWeeklyEvaluationEliminatesBottomTwentyPercent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createArena(t, models.ArenaConfig{AgentCount: 5})
	seeded := h.seedRanked(t, a.ArenaID, 100, 95, 90, 85, 80, 75, 70, 65, 60, 55)

	report, err := h.m.evaluator.Run(ctx, a, models.EvaluationPeriodWeekly)
	require.NoError(t, err)
	assert.Equal(t, 10, report.Evaluated)
	assert.Equal(t, 2, report.Eliminated)
	assert.False(t, report.MinFloorApplied)
	require.Len(t, report.Rankings, 10)
	for i, entry := range report.Rankings {
		assert.Equal(t, i+1, entry.Rank)
		assert.Equal(t, entry.Rank <= 8, entry.IsActive)
	}

	active, err := h.stores.Strategies.ListActive(ctx, a.ArenaID)
	require.NoError(t, err)
	assert.Len(t, active, 8)

	// The two lowest scores went out, with an event each.
	for _, victim := range seeded[8:] {
		got, err := h.stores.Strategies.Get(ctx, victim.StrategyID)
		require.NoError(t, err)
		assert.False(t, got.IsActive)
	}
	events, err := h.stores.Eliminations.ListByArena(ctx, a.ArenaID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, models.EvaluationPeriodWeekly, e.Period)
		assert.Contains(t, e.Reason, "of 10")
	}

	fresh, err := h.stores.Arenas.Get(ctx, a.ArenaID)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.EvaluationsRun)

	reports, err := h.stores.Reports.ListByArena(ctx, a.ArenaID)
	require.NoError(t, err)
	assert.Len(t, reports, 1)
}

func TestDailyEvaluationRanksWithoutEliminating(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createArena(t, models.ArenaConfig{AgentCount: 3})
	h.seedRanked(t, a.ArenaID, 90, 70, 50, 30, 10)

	report, err := h.m.evaluator.Run(ctx, a, models.EvaluationPeriodDaily)
	require.NoError(t, err)
	assert.Equal(t, 5, report.Evaluated)
	assert.Zero(t, report.Eliminated)
	assert.False(t, report.MinFloorApplied)

	active, err := h.stores.Strategies.ListActive(ctx, a.ArenaID)
	require.NoError(t, err)
	require.Len(t, active, 5)
	for i, s := range active {
		assert.Equal(t, i+1, s.CurrentRank)
	}
}

func TestEliminationFloorKeepsMinimumActive(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	// Three actives sitting right on the floor: the weekly ratio wants
	// one gone, the floor refuses.
	a := h.createArena(t, models.ArenaConfig{AgentCount: 3, MinActiveStrategies: 3})
	h.seedRanked(t, a.ArenaID, 80, 60, 40)

	report, err := h.m.evaluator.Run(ctx, a, models.EvaluationPeriodWeekly)
	require.NoError(t, err)
	assert.Zero(t, report.Eliminated)
	assert.True(t, report.MinFloorApplied)

	active, err := h.stores.Strategies.ListActive(ctx, a.ArenaID)
	require.NoError(t, err)
	assert.Len(t, active, 3)
}

func TestEliminationTieBreaksOnStoredRank(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	// Equal scores everywhere: the strategy that already held the worst
	// rank is the one to go.
	a := h.createArena(t, models.ArenaConfig{AgentCount: 3, MinActiveStrategies: 2})
	seeded := h.seedRanked(t, a.ArenaID, 60, 60, 60)

	report, err := h.m.evaluator.Run(ctx, a, models.EvaluationPeriodWeekly)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Eliminated)

	got, err := h.stores.Strategies.Get(ctx, seeded[2].StrategyID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	for _, survivor := range seeded[:2] {
		got, err := h.stores.Strategies.Get(ctx, survivor.StrategyID)
		require.NoError(t, err)
		assert.True(t, got.IsActive)
	}
}

func TestEvaluationSummaryReachesSubscribers(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createArena(t, models.ArenaConfig{AgentCount: 3})
	h.seedRanked(t, a.ArenaID, 88, 44)

	sub, err := h.stream.Subscribe(a.ArenaID)
	require.NoError(t, err)
	defer sub.Close()

	report, err := h.m.evaluator.Run(ctx, a, models.EvaluationPeriodDaily)
	require.NoError(t, err)

	select {
	case msg := <-sub.C:
		assert.Equal(t, models.MessageTypeSystem, msg.Type)
		assert.Contains(t, msg.Content, "daily evaluation: 2 strategies ranked")
		assert.Contains(t, msg.Content, "Seeded agent-1")
		assert.Equal(t, report.ID, msg.Metadata["report_id"])
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for the evaluation summary")
	}
}

func TestEliminationCount(t *testing.T) {
	cases := []struct {
		period    models.EvaluationPeriod
		n         int
		minActive int
		want      int
		floor     bool
	}{
		{models.EvaluationPeriodDaily, 10, 3, 0, false},
		{models.EvaluationPeriodWeekly, 10, 3, 2, false},
		{models.EvaluationPeriodMonthly, 10, 3, 1, false},
		{models.EvaluationPeriodWeekly, 3, 3, 0, true},
		{models.EvaluationPeriodWeekly, 4, 3, 1, false},
		{models.EvaluationPeriodWeekly, 5, 3, 1, false},
		{models.EvaluationPeriodMonthly, 4, 3, 0, false},
		{models.EvaluationPeriodMonthly, 30, 3, 3, false},
		{models.EvaluationPeriodWeekly, 0, 3, 0, false},
		{models.EvaluationPeriodManual, 10, 3, 0, false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s/n=%d/min=%d", tc.period, tc.n, tc.minActive), func(t *testing.T) {
			got, floor := eliminationCount(tc.period, tc.n, tc.minActive)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.floor, floor)
		})
	}
}
