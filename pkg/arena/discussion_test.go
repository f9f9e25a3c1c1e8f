package arena

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/llm"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// noWait is the open pause gate used when driving the orchestrator
// directly.
func noWait(ctx context.Context) error { return ctx.Err() }

// initialized creates an arena and seeds its generator strategies without
// starting the run loop.
func (h *harness) initialized(t *testing.T, cfg models.ArenaConfig) *models.Arena {
	t.Helper()
	a := h.createArena(t, cfg)
	require.NoError(t, h.m.initialize(context.Background(), a))
	return a
}

func (h *harness) strategyOfAgent(t *testing.T, arenaID, agentID string) *models.Strategy {
	t.Helper()
	all, err := h.stores.Strategies.ListByArena(context.Background(), arenaID)
	require.NoError(t, err)
	for _, s := range all {
		if s.AgentID == agentID {
			return s
		}
	}
	t.Fatalf("no strategy owned by %s in arena %s", agentID, arenaID)
	return nil
}

func TestRunRoundPublishesFullLifecycle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.initialized(t, models.ArenaConfig{AgentCount: 4, DiscussionMaxRounds: 1})
	h.client.AddRouted("agent-1", llm.ScriptEntry{Chunks: []llm.Chunk{
		&llm.ThinkingChunk{Content: "Comparing my SMA cross against the recent tape."},
		&llm.TextChunk{Content: "The trend regime still favors my rules.\n\nCONCLUSION: no change needed."},
		&llm.UsageChunk{InputTokens: 42, OutputTokens: 17, TotalTokens: 59},
	}})
	h.scriptReplies(3)

	edits, err := h.m.orchestrator.RunRounds(ctx, a, buildRoster(4), noWait)
	require.NoError(t, err)
	assert.Zero(t, edits)

	rounds, err := h.stores.Rounds.ListByArena(ctx, a.ArenaID)
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	round := rounds[0]
	assert.Equal(t, 1, round.RoundNumber)
	assert.Equal(t, models.DiscussionModeCollaboration, round.Mode)
	assert.Equal(t, []string{"agent-1", "agent-2", "agent-3", "agent-4"}, round.Participants)
	assert.Len(t, round.Conclusions, 4)
	assert.Equal(t, "no change needed.", round.Conclusions["agent-1"])
	require.NotNil(t, round.CompletedAt)

	fresh, err := h.stores.Arenas.Get(ctx, a.ArenaID)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.RoundsCompleted)

	// Per participant the stream carries thinking before argument before
	// conclusion, in sequence order.
	msgs, err := h.stores.Messages.ListByArena(ctx, a.ArenaID, 0, 0)
	require.NoError(t, err)
	seqOf := func(mt models.MessageType) int64 {
		for _, m := range msgs {
			if m.AgentID == "agent-1" && m.Type == mt {
				return m.Sequence
			}
		}
		t.Fatalf("no %s message from agent-1", mt)
		return 0
	}
	thinking, argument, conclusion := seqOf(models.MessageTypeThinking), seqOf(models.MessageTypeArgument), seqOf(models.MessageTypeConclusion)
	assert.Less(t, thinking, argument)
	assert.Less(t, argument, conclusion)

	for _, m := range msgs {
		if m.AgentID == "agent-1" && m.Type == models.MessageTypeArgument {
			assert.EqualValues(t, 42, m.Metadata["input_tokens"])
			assert.EqualValues(t, 17, m.Metadata["output_tokens"])
			assert.Equal(t, round.RoundID, m.RoundID)
			assert.Equal(t, models.AgentRoleStrategyGenerator, m.AgentRole)
		}
	}

	var started, completed bool
	for _, m := range msgs {
		if m.Type != models.MessageTypeSystem || m.RoundID != round.RoundID {
			continue
		}
		if strings.HasPrefix(m.Content, "round 1 started") {
			started = true
		}
		if strings.HasPrefix(m.Content, "round 1 completed") {
			completed = true
		}
	}
	assert.True(t, started, "expected a round-started notice")
	assert.True(t, completed, "expected a round-completed notice")
}

func TestDiscussionAppliesRuleEdit(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.initialized(t, models.ArenaConfig{AgentCount: 3, DiscussionMaxRounds: 1})

	// Push the generator's strategy to live first so the reset back to
	// backtest is observable.
	own := h.strategyOfAgent(t, a.ArenaID, "agent-1")
	own.Stage = models.StrategyStageLive
	require.NoError(t, h.stores.Strategies.Update(ctx, own))

	h.client.AddRouted("agent-1", llm.ScriptEntry{
		Text: "The cross lags this tape; switching to a mean-reversion rule.\n\n" +
			"```json\n{\"indicator\": \"rsi\", \"period\": 14, \"entry_level\": 30, \"exit_level\": 70, \"stop_loss_pct\": 0.04}\n```\n\n" +
			"CONCLUSION: revised to RSI reversal.",
	})
	h.scriptReplies(2)

	edits, err := h.m.orchestrator.RunRounds(ctx, a, buildRoster(3), noWait)
	require.NoError(t, err)
	assert.Equal(t, 1, edits)

	got := h.strategyOfAgent(t, a.ArenaID, "agent-1")
	assert.Equal(t, models.StrategyRules{
		Indicator:   "rsi",
		Period:      14,
		EntryLevel:  30,
		ExitLevel:   70,
		StopLossPct: 0.04,
	}, got.Rules)
	assert.Equal(t, models.StrategyStageBacktest, got.Stage)

	var revised bool
	for _, m := range h.messagesOfType(t, a.ArenaID, models.MessageTypeSystem) {
		if m.Metadata["strategy_id"] == got.StrategyID {
			revised = true
		}
	}
	assert.True(t, revised, "expected a revision notice on the stream")
}

func TestDiscussionIgnoresUnknownIndicator(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.initialized(t, models.ArenaConfig{AgentCount: 3, DiscussionMaxRounds: 1})
	before := h.strategyOfAgent(t, a.ArenaID, "agent-1").Rules

	h.client.AddRouted("agent-1", llm.ScriptEntry{
		Text: "Trying something exotic.\n\n" +
			"```json\n{\"indicator\": \"astrology\", \"period\": 7}\n```\n\n" +
			"CONCLUSION: stars say buy.",
	})
	h.scriptReplies(2)

	edits, err := h.m.orchestrator.RunRounds(ctx, a, buildRoster(3), noWait)
	require.NoError(t, err)
	assert.Zero(t, edits)
	assert.Equal(t, before, h.strategyOfAgent(t, a.ArenaID, "agent-1").Rules)
}

func TestRoundContinuesAfterOneFailure(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.initialized(t, models.ArenaConfig{AgentCount: 3, DiscussionMaxRounds: 1})
	h.client.AddRouted("agent-2", llm.ScriptEntry{Err: errors.New("rate limited")})
	h.scriptReplies(2)

	_, err := h.m.orchestrator.RunRounds(ctx, a, buildRoster(3), noWait)
	require.NoError(t, err)

	rounds, err := h.stores.Rounds.ListByArena(ctx, a.ArenaID)
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Len(t, rounds[0].Conclusions, 2)
	assert.NotContains(t, rounds[0].Conclusions, "agent-2")
	require.NotNil(t, rounds[0].CompletedAt)

	failures := h.messagesOfType(t, a.ArenaID, models.MessageTypeError)
	require.Len(t, failures, 1)
	assert.Equal(t, "agent-2", failures[0].AgentID)
}

func TestRunRoundsStopsWhenWaitAborts(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.initialized(t, models.ArenaConfig{AgentCount: 3, DiscussionMaxRounds: 3})
	h.scriptReplies(9)

	// The gate opens for the round and the first participant, then slams
	// shut, as when an arena is deleted mid-round.
	abort := errors.New("gate torn down")
	calls := 0
	gate := func(ctx context.Context) error {
		calls++
		if calls > 2 {
			return abort
		}
		return nil
	}

	_, err := h.m.orchestrator.RunRounds(ctx, a, buildRoster(3), gate)
	require.ErrorIs(t, err, abort)
	assert.Equal(t, 1, h.client.CallCount())

	// The interrupted round stays open and the arena's counter is
	// untouched.
	rounds, err := h.stores.Rounds.ListByArena(ctx, a.ArenaID)
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Nil(t, rounds[0].CompletedAt)

	fresh, err := h.stores.Arenas.Get(ctx, a.ArenaID)
	require.NoError(t, err)
	assert.Zero(t, fresh.RoundsCompleted)
}

func TestPickParticipants(t *testing.T) {
	roster := buildRoster(5) // agent-1..3 generators, agent-4 reviewer, agent-5 risk

	debate := pickParticipants(models.DiscussionModeDebate, roster)
	require.Len(t, debate, 2)
	assert.Equal(t, "agent-1", debate[0].ID)
	assert.Equal(t, "agent-4", debate[1].ID)

	review := pickParticipants(models.DiscussionModeReview, roster)
	require.Len(t, review, 2)
	assert.Equal(t, "agent-4", review[0].ID)
	assert.Equal(t, "agent-5", review[1].ID)

	collab := pickParticipants(models.DiscussionModeCollaboration, roster)
	assert.Len(t, collab, 5)

	// With generators only there is no opposing seat; both modes fall
	// back to the generators themselves.
	gensOnly := buildRoster(3)[:2]
	assert.Len(t, pickParticipants(models.DiscussionModeDebate, gensOnly), 2)
	assert.Len(t, pickParticipants(models.DiscussionModeReview, gensOnly), 2)
}

func TestActiveRosterDropsEliminatedGenerators(t *testing.T) {
	roster := buildRoster(4) // agent-1/2 generators, agent-3 reviewer, agent-4 risk
	active := []*models.Strategy{{AgentID: "agent-2"}}

	got := activeRoster(roster, active)
	require.Len(t, got, 3)
	assert.Equal(t, "agent-2", got[0].ID)
	assert.Equal(t, "agent-3", got[1].ID)
	assert.Equal(t, "agent-4", got[2].ID)
}

func TestMarketSnapshotSummarizesSymbols(t *testing.T) {
	h := newHarness(t)
	a := h.createArena(t, models.ArenaConfig{AgentCount: 3})

	snapshot := h.m.orchestrator.marketSnapshot(context.Background(), a)
	assert.Contains(t, snapshot, "600000.SH: last close")
	assert.Contains(t, snapshot, "000001.SZ: last close")
	assert.Contains(t, snapshot, "20-day change")

	// A dead data source degrades to an empty snapshot, never an error.
	h.bars.err = errors.New("connection refused")
	assert.Empty(t, h.m.orchestrator.marketSnapshot(context.Background(), a))
}
