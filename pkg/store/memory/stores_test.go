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

func TestNewStoresWiresEverything(t *testing.T) {
	s := NewStores()

	require.NotNil(t, s.Executions)
	require.NotNil(t, s.SubTasks)
	require.NotNil(t, s.SchemaAudits)
	require.NotNil(t, s.PluginSettings)
	require.NotNil(t, s.Arenas)
	require.NotNil(t, s.Strategies)
	require.NotNil(t, s.Rounds)
	require.NotNil(t, s.Messages)
	require.NotNil(t, s.Eliminations)
	require.NotNil(t, s.Reports)
}

func TestPluginSettingStore_PutIsUpsert(t *testing.T) {
	s := NewPluginSettingStore()
	ctx := context.Background()
	at := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.Put(ctx, &models.PluginSetting{PluginName: "daily_bar", ScheduleEnabled: false, UpdatedAt: at}))
	require.NoError(t, s.Put(ctx, &models.PluginSetting{PluginName: "daily_bar", ScheduleEnabled: true, UpdatedAt: at.Add(time.Hour)}))
	require.NoError(t, s.Put(ctx, &models.PluginSetting{PluginName: "adj_factor", ScheduleEnabled: false, UpdatedAt: at}))

	got, err := s.Get(ctx, "daily_bar")
	require.NoError(t, err)
	assert.True(t, got.ScheduleEnabled)

	_, err = s.Get(ctx, "moneyflow")
	assert.ErrorIs(t, err, store.ErrNotFound)

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "adj_factor", all[0].PluginName, "sorted by name")
}

func TestRoundStore_ListByArenaOrder(t *testing.T) {
	s := NewRoundStore()
	ctx := context.Background()
	at := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	for _, r := range []*models.DiscussionRound{
		{RoundID: "round-2", ArenaID: "arena-1", RoundNumber: 2, Mode: models.DiscussionModeDebate, StartedAt: at},
		{RoundID: "round-1", ArenaID: "arena-1", RoundNumber: 1, Mode: models.DiscussionModeDebate, StartedAt: at},
	} {
		require.NoError(t, s.Create(ctx, r))
	}

	got, err := s.ListByArena(ctx, "arena-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].RoundNumber)
	assert.Equal(t, 2, got[1].RoundNumber)

	// Completing a round persists conclusions without touching the caller's map.
	done := at.Add(5 * time.Minute)
	got[1].CompletedAt = &done
	got[1].Conclusions = map[string]string{"agent-1": "hold"}
	require.NoError(t, s.Update(ctx, got[1]))
	got[1].Conclusions["agent-1"] = "mutated"

	fresh, err := s.Get(ctx, "round-2")
	require.NoError(t, err)
	require.NotNil(t, fresh.CompletedAt)
	assert.Equal(t, "hold", fresh.Conclusions["agent-1"])
}

func TestEliminationStore_AppendAndList(t *testing.T) {
	s := NewEliminationStore()
	ctx := context.Background()
	at := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	e1 := &models.EliminationEvent{ArenaID: "arena-1", Period: models.EvaluationPeriodWeekly, StrategyID: "strat-9", Score: 12.5, Reason: "weekly tail elimination", Timestamp: at}
	e2 := &models.EliminationEvent{ArenaID: "arena-1", Period: models.EvaluationPeriodManual, StrategyID: "strat-4", Score: 30.0, Reason: "operator intervention", Timestamp: at.Add(time.Minute)}
	require.NoError(t, s.Append(ctx, e1))
	require.NoError(t, s.Append(ctx, e2))
	assert.Equal(t, int64(1), e1.ID)
	assert.Equal(t, int64(2), e2.ID)

	got, err := s.ListByArena(ctx, "arena-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "strat-9", got[0].StrategyID, "oldest first")
}

func TestReportStore_Latest(t *testing.T) {
	s := NewReportStore()
	ctx := context.Background()
	at := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	_, err := s.Latest(ctx, "arena-1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Create(ctx, &models.EvaluationReport{
		ID: "report-1", ArenaID: "arena-1", Period: models.EvaluationPeriodDaily,
		Evaluated: 5, CreatedAt: at,
	}))
	require.NoError(t, s.Create(ctx, &models.EvaluationReport{
		ID: "report-2", ArenaID: "arena-1", Period: models.EvaluationPeriodWeekly,
		Evaluated: 5, Eliminated: 1,
		Rankings:  []models.RankingEntry{{StrategyID: "strat-1", Score: 88, Rank: 1, IsActive: true}},
		CreatedAt: at.Add(time.Hour),
	}))

	latest, err := s.Latest(ctx, "arena-1")
	require.NoError(t, err)
	assert.Equal(t, "report-2", latest.ID)
	assert.Equal(t, models.EvaluationPeriodWeekly, latest.Period)

	all, err := s.ListByArena(ctx, "arena-1")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "report-2", all[0].ID, "newest first")
}

func TestArenaStore_Lifecycle(t *testing.T) {
	s := NewArenaStore()
	ctx := context.Background()
	at := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	arena := &models.Arena{
		ArenaID: "arena-1",
		Name:    "momentum cup",
		Config: models.ArenaConfig{
			AgentCount:          5,
			MinActiveStrategies: 3,
			DiscussionMaxRounds: 4,
			Symbols:             []string{"600000.SH"},
		},
		State:     models.ArenaStateCreated,
		CreatedAt: at,
		UpdatedAt: at,
	}
	require.NoError(t, s.Create(ctx, arena))
	assert.ErrorIs(t, s.Create(ctx, arena), store.ErrAlreadyExists)

	// Symbols are copied on the way in and out.
	arena.Config.Symbols[0] = "000001.SZ"
	got, err := s.Get(ctx, "arena-1")
	require.NoError(t, err)
	assert.Equal(t, "600000.SH", got.Config.Symbols[0])

	got.State = models.ArenaStateDiscussing
	require.NoError(t, s.Update(ctx, got))

	later := &models.Arena{ArenaID: "arena-2", Name: "value cup", State: models.ArenaStateCreated, CreatedAt: at.Add(time.Hour), UpdatedAt: at.Add(time.Hour)}
	require.NoError(t, s.Create(ctx, later))

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "arena-2", all[0].ArenaID, "newest first")

	require.NoError(t, s.Delete(ctx, "arena-2"))
	assert.ErrorIs(t, s.Delete(ctx, "arena-2"), store.ErrNotFound)
}
