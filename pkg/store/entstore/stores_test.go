package entstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
	testdb "github.com/Yourdaylight/stock-datasource-sub001/test/database"
)

// newTestStores returns stores backed by a PostgreSQL schema private to this
// test. The schema and its connections are dropped when the test ends.
func newTestStores(t *testing.T) *store.Stores {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	client := testdb.NewTestClient(t)
	return NewStores(client.Client)
}

func testArena(id string, createdAt time.Time) *models.Arena {
	return &models.Arena{
		ArenaID: id,
		Name:    "Alpha League",
		Config: models.ArenaConfig{
			AgentCount:          3,
			MinActiveStrategies: 2,
			DiscussionMaxRounds: 3,
		},
		State:     models.ArenaStateCreated,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestNewStores_WiresEveryInterface(t *testing.T) {
	stores := newTestStores(t)

	assert.NotNil(t, stores.Executions)
	assert.NotNil(t, stores.SubTasks)
	assert.NotNil(t, stores.SchemaAudits)
	assert.NotNil(t, stores.PluginSettings)
	assert.NotNil(t, stores.Arenas)
	assert.NotNil(t, stores.Strategies)
	assert.NotNil(t, stores.Rounds)
	assert.NotNil(t, stores.Messages)
	assert.NotNil(t, stores.Eliminations)
	assert.NotNil(t, stores.Reports)
}

func TestArenaStore_RoundTrip(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	created := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	a := testArena("arena-1", created)
	require.NoError(t, stores.Arenas.Create(ctx, a))

	err := stores.Arenas.Create(ctx, testArena("arena-1", created))
	assert.ErrorIs(t, err, store.ErrAlreadyExists)

	got, err := stores.Arenas.Get(ctx, "arena-1")
	require.NoError(t, err)
	assert.Equal(t, "Alpha League", got.Name)
	assert.Equal(t, 3, got.Config.AgentCount)
	assert.Equal(t, models.ArenaStateCreated, got.State)
	assert.Empty(t, got.ResumeState)

	// Pausing parks the phase to re-enter in ResumeState.
	got.State = models.ArenaStatePaused
	got.ResumeState = models.ArenaStateDiscussing
	got.RoundsCompleted = 2
	require.NoError(t, stores.Arenas.Update(ctx, got))

	paused, err := stores.Arenas.Get(ctx, "arena-1")
	require.NoError(t, err)
	assert.Equal(t, models.ArenaStatePaused, paused.State)
	assert.Equal(t, models.ArenaStateDiscussing, paused.ResumeState)
	assert.Equal(t, 2, paused.RoundsCompleted)

	// Resuming clears the parked phase again.
	paused.State = models.ArenaStateDiscussing
	paused.ResumeState = ""
	require.NoError(t, stores.Arenas.Update(ctx, paused))

	resumed, err := stores.Arenas.Get(ctx, "arena-1")
	require.NoError(t, err)
	assert.Empty(t, resumed.ResumeState)
}

func TestArenaStore_ListNewestFirst(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	for i, id := range []string{"arena-a", "arena-b", "arena-c"} {
		require.NoError(t, stores.Arenas.Create(ctx, testArena(id, base.Add(time.Duration(i)*time.Minute))))
	}

	all, err := stores.Arenas.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "arena-c", all[0].ArenaID)
	assert.Equal(t, "arena-a", all[2].ArenaID)
}

func TestArenaStore_DeleteCascadesChildren(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	require.NoError(t, stores.Arenas.Create(ctx, testArena("arena-1", now)))
	require.NoError(t, stores.Strategies.Create(ctx, testStrategy("strat-1", "arena-1", now)))
	require.NoError(t, stores.Messages.Append(ctx, &models.ThinkingMessage{
		ID:        "msg-1",
		ArenaID:   "arena-1",
		Type:      models.MessageTypeSystem,
		Content:   "arena created",
		Sequence:  1,
		Timestamp: now,
	}))

	require.NoError(t, stores.Arenas.Delete(ctx, "arena-1"))

	_, err := stores.Arenas.Get(ctx, "arena-1")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = stores.Strategies.Get(ctx, "strat-1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	seq, err := stores.Messages.LastSequence(ctx, "arena-1")
	require.NoError(t, err)
	assert.Zero(t, seq)

	err = stores.Arenas.Delete(ctx, "arena-1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRoundStore_OrderAndUniqueNumber(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	require.NoError(t, stores.Arenas.Create(ctx, testArena("arena-1", now)))

	second := &models.DiscussionRound{
		RoundID:      "round-2",
		ArenaID:      "arena-1",
		RoundNumber:  2,
		Mode:         models.DiscussionModeDebate,
		Participants: []string{"agent-1", "agent-2"},
		StartedAt:    now.Add(time.Minute),
	}
	first := &models.DiscussionRound{
		RoundID:      "round-1",
		ArenaID:      "arena-1",
		RoundNumber:  1,
		Mode:         models.DiscussionModeDebate,
		Participants: []string{"agent-1", "agent-2"},
		StartedAt:    now,
	}
	require.NoError(t, stores.Rounds.Create(ctx, second))
	require.NoError(t, stores.Rounds.Create(ctx, first))

	// A second round with an already taken number must be rejected.
	err := stores.Rounds.Create(ctx, &models.DiscussionRound{
		RoundID:      "round-dup",
		ArenaID:      "arena-1",
		RoundNumber:  1,
		Mode:         models.DiscussionModeReview,
		Participants: []string{"agent-1"},
		StartedAt:    now,
	})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)

	rounds, err := stores.Rounds.ListByArena(ctx, "arena-1")
	require.NoError(t, err)
	require.Len(t, rounds, 2)
	assert.Equal(t, 1, rounds[0].RoundNumber)
	assert.Equal(t, 2, rounds[1].RoundNumber)

	// Closing a round persists its conclusions.
	done := now.Add(2 * time.Minute)
	first.Conclusions = map[string]string{"agent-1": "hold", "agent-2": "rotate"}
	first.CompletedAt = &done
	require.NoError(t, stores.Rounds.Update(ctx, first))

	got, err := stores.Rounds.Get(ctx, "round-1")
	require.NoError(t, err)
	assert.Equal(t, "hold", got.Conclusions["agent-1"])
	require.NotNil(t, got.CompletedAt)
}

func TestSettingStore_PutIsUpsert(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	_, err := stores.PluginSettings.Get(ctx, "daily_quote")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, stores.PluginSettings.Put(ctx, &models.PluginSetting{
		PluginName:      "daily_quote",
		ScheduleEnabled: false,
		UpdatedAt:       now,
	}))
	require.NoError(t, stores.PluginSettings.Put(ctx, &models.PluginSetting{
		PluginName:      "stock_basic",
		ScheduleEnabled: true,
		UpdatedAt:       now,
	}))

	got, err := stores.PluginSettings.Get(ctx, "daily_quote")
	require.NoError(t, err)
	assert.False(t, got.ScheduleEnabled)

	// Second Put replaces the stored value.
	require.NoError(t, stores.PluginSettings.Put(ctx, &models.PluginSetting{
		PluginName:      "daily_quote",
		ScheduleEnabled: true,
		UpdatedAt:       now.Add(time.Hour),
	}))

	got, err = stores.PluginSettings.Get(ctx, "daily_quote")
	require.NoError(t, err)
	assert.True(t, got.ScheduleEnabled)

	all, err := stores.PluginSettings.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "daily_quote", all[0].PluginName)
	assert.Equal(t, "stock_basic", all[1].PluginName)
}

func TestAuditStore_AppendAndFilter(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	entries := []*models.SchemaAudit{
		{Table: "ods_daily_quote", Action: models.SchemaAuditActionCreateTable, At: base},
		{Table: "ods_daily_quote", Column: "turnover", Action: models.SchemaAuditActionAddColumn, NewType: "Float64", At: base.Add(time.Minute)},
		{Table: "ods_stock_basic", Action: models.SchemaAuditActionCreateTable, At: base.Add(2 * time.Minute)},
	}
	for _, e := range entries {
		require.NoError(t, stores.SchemaAudits.Append(ctx, e))
	}

	// The database assigns increasing IDs.
	assert.Positive(t, entries[0].ID)
	assert.Greater(t, entries[1].ID, entries[0].ID)

	all, err := stores.SchemaAudits.List(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "ods_stock_basic", all[0].Table, "newest first")

	quotes, err := stores.SchemaAudits.List(ctx, "ods_daily_quote", 0)
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, models.SchemaAuditActionAddColumn, quotes[0].Action)
	assert.Equal(t, "turnover", quotes[0].Column)

	limited, err := stores.SchemaAudits.List(ctx, "", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestEliminationStore_AppendAndList(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	require.NoError(t, stores.Arenas.Create(ctx, testArena("arena-1", base)))

	first := &models.EliminationEvent{
		ArenaID:    "arena-1",
		Period:     models.EvaluationPeriodWeekly,
		StrategyID: "strat-1",
		Score:      31.5,
		Reason:     "weekly bottom 20%",
		Timestamp:  base,
	}
	second := &models.EliminationEvent{
		ArenaID:    "arena-1",
		Period:     models.EvaluationPeriodManual,
		StrategyID: "strat-2",
		Score:      44.0,
		Reason:     "operator elimination",
		Timestamp:  base.Add(time.Hour),
	}
	require.NoError(t, stores.Eliminations.Append(ctx, first))
	require.NoError(t, stores.Eliminations.Append(ctx, second))

	assert.Positive(t, first.ID)
	assert.Greater(t, second.ID, first.ID)

	events, err := stores.Eliminations.ListByArena(ctx, "arena-1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "strat-1", events[0].StrategyID, "oldest first")
	assert.Equal(t, models.EvaluationPeriodManual, events[1].Period)
}

func TestReportStore_LatestAndList(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	require.NoError(t, stores.Arenas.Create(ctx, testArena("arena-1", base)))

	_, err := stores.Reports.Latest(ctx, "arena-1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	older := &models.EvaluationReport{
		ID:        "report-1",
		ArenaID:   "arena-1",
		Period:    models.EvaluationPeriodDaily,
		Evaluated: 3,
		Rankings: []models.RankingEntry{
			{StrategyID: "strat-1", Name: "Momentum A", Score: 62.1, Rank: 1, IsActive: true},
		},
		CreatedAt: base,
	}
	newer := &models.EvaluationReport{
		ID:              "report-2",
		ArenaID:         "arena-1",
		Period:          models.EvaluationPeriodWeekly,
		Evaluated:       3,
		Eliminated:      1,
		MinFloorApplied: true,
		Rankings: []models.RankingEntry{
			{StrategyID: "strat-1", Name: "Momentum A", Score: 64.8, Rank: 1, IsActive: true},
			{StrategyID: "strat-2", Name: "Reversal B", Score: 31.5, Rank: 2, IsActive: false},
		},
		CreatedAt: base.Add(24 * time.Hour),
	}
	require.NoError(t, stores.Reports.Create(ctx, older))
	require.NoError(t, stores.Reports.Create(ctx, newer))

	err = stores.Reports.Create(ctx, older)
	assert.ErrorIs(t, err, store.ErrAlreadyExists)

	latest, err := stores.Reports.Latest(ctx, "arena-1")
	require.NoError(t, err)
	assert.Equal(t, "report-2", latest.ID)
	assert.True(t, latest.MinFloorApplied)
	require.Len(t, latest.Rankings, 2)
	assert.Equal(t, "strat-2", latest.Rankings[1].StrategyID)
	assert.False(t, latest.Rankings[1].IsActive)

	all, err := stores.Reports.ListByArena(ctx, "arena-1")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "report-2", all[0].ID, "newest first")
}
