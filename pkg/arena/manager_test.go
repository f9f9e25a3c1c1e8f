package arena

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/llm"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/quant"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store/memory"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/stream"
)

// fakeBars serves synthetic daily bars keyed by symbol.
type fakeBars struct {
	series map[string][]float64
	err    error
}

func (f *fakeBars) DailyBars(_ context.Context, code, _, _ string) ([]models.DailyBar, error) {
	if f.err != nil {
		return nil, f.err
	}
	closes := f.series[code]
	base := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	bars := make([]models.DailyBar, len(closes))
	for i, c := range closes {
		bars[i] = models.DailyBar{
			Code:      code,
			TradeDate: models.FormatTradeDate(base.AddDate(0, 0, i)),
			Open:      c,
			High:      c * 1.01,
			Low:       c * 0.99,
			Close:     c,
			Volume:    1000,
			Amount:    1000 * c,
		}
	}
	return bars, nil
}

// uptrend builds n closes drifting upward with a mild wobble.
func uptrend(n int) []float64 {
	out := make([]float64, n)
	price := 100.0
	for i := range out {
		out[i] = price
		price *= 1.004
		if i%7 == 3 {
			price *= 0.995
		}
	}
	return out
}

type harness struct {
	stores *store.Stores
	stream *stream.Processor
	client *llm.ScriptedClient
	bars   *fakeBars
	m      *Manager
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		stores: memory.NewStores(),
		client: llm.NewScriptedClient(),
		bars: &fakeBars{series: map[string][]float64{
			"600000.SH": uptrend(140),
			"000001.SZ": uptrend(140),
		}},
	}
	h.stream = stream.New(h.stores.Messages, 64)
	h.m = NewManager(Deps{
		Stores: h.stores,
		Stream: h.stream,
		LLM:    h.client,
		Bars:   h.bars,
	})
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, h.m.Shutdown(ctx))
	})
	return h
}

func (h *harness) createArena(t *testing.T, cfg models.ArenaConfig) *models.Arena {
	t.Helper()
	a, err := h.m.Create(context.Background(), &models.CreateArenaRequest{Name: "alpha cup", Config: cfg})
	require.NoError(t, err)
	return a
}

// scriptReplies queues n plain replies that change no rules, so every
// strategy validates through to live on the first cycle.
func (h *harness) scriptReplies(n int) {
	for i := 0; i < n; i++ {
		h.client.AddSequential(llm.ScriptEntry{
			Text: fmt.Sprintf("The current rules hold up in this tape, reply %d.\n\nCONCLUSION: keep the rules as they are.", i+1),
		})
	}
}

func (h *harness) waitState(t *testing.T, arenaID string, want models.ArenaState) *models.Arena {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for {
		a, err := h.stores.Arenas.Get(context.Background(), arenaID)
		require.NoError(t, err)
		if a.State == want {
			return a
		}
		if a.State.IsTerminal() {
			t.Fatalf("arena %s ended %s, want %s (last error %q)", arenaID, a.State, want, a.LastError)
		}
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for arena %s to reach %s, still %s", arenaID, want, a.State)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func (h *harness) seedStrategy(t *testing.T, arenaID, agentID string, score float64, rank int, active bool) *models.Strategy {
	t.Helper()
	now := time.Now().UTC()
	s := &models.Strategy{
		StrategyID:   fmt.Sprintf("strat-%s-%d", agentID, rank),
		ArenaID:      arenaID,
		Name:         fmt.Sprintf("Seeded %s", agentID),
		AgentID:      agentID,
		AgentRole:    models.AgentRoleStrategyGenerator,
		Stage:        models.StrategyStageBacktest,
		IsActive:     active,
		CurrentScore: score,
		CurrentRank:  rank,
		Rules:        quant.DefaultRules(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, h.stores.Strategies.Create(context.Background(), s))
	return s
}

func (h *harness) messagesOfType(t *testing.T, arenaID string, mt models.MessageType) []*models.ThinkingMessage {
	t.Helper()
	all, err := h.stores.Messages.ListByArena(context.Background(), arenaID, 0, 0)
	require.NoError(t, err)
	var out []*models.ThinkingMessage
	for _, msg := range all {
		if msg.Type == mt {
			out = append(out, msg)
		}
	}
	return out
}

func TestCreateAppliesDefaults(t *testing.T) {
	h := newHarness(t)

	a := h.createArena(t, models.ArenaConfig{})
	assert.Equal(t, models.ArenaStateCreated, a.State)
	assert.Equal(t, 5, a.Config.AgentCount)
	assert.Equal(t, 3, a.Config.MinActiveStrategies)
	assert.Equal(t, 3, a.Config.DiscussionMaxRounds)
	assert.Equal(t, models.DiscussionModeCollaboration, a.Config.DiscussionMode)
	assert.Equal(t, 120, a.Config.BacktestWindowDays)
	assert.Equal(t, []string{"600000.SH", "000001.SZ"}, a.Config.Symbols)
	assert.NotEmpty(t, a.ArenaID)

	got, err := h.m.Get(context.Background(), a.ArenaID)
	require.NoError(t, err)
	assert.Equal(t, a.Config, got.Config)
}

func TestCreateValidation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  *models.CreateArenaRequest
	}{
		{"nil request", nil},
		{"blank name", &models.CreateArenaRequest{Name: "   "}},
		{"too few agents", &models.CreateArenaRequest{Name: "a", Config: models.ArenaConfig{AgentCount: 2}}},
		{"too many agents", &models.CreateArenaRequest{Name: "a", Config: models.ArenaConfig{AgentCount: 11}}},
		{"negative floor", &models.CreateArenaRequest{Name: "a", Config: models.ArenaConfig{MinActiveStrategies: -1}}},
		{"negative rounds", &models.CreateArenaRequest{Name: "a", Config: models.ArenaConfig{DiscussionMaxRounds: -2}}},
		{"unknown mode", &models.CreateArenaRequest{Name: "a", Config: models.ArenaConfig{DiscussionMode: "duel"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.m.Create(ctx, tc.req)
			require.ErrorIs(t, err, store.ErrInvalidInput)
		})
	}
}

func TestStartRunsArenaToCompletion(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	// 3 agents = 2 generators + 1 reviewer; 3 collaboration rounds make
	// 9 generations. No reply revises rules, so both strategies validate
	// backtest -> simulated -> live and the first evaluation completes
	// the arena.
	a := h.createArena(t, models.ArenaConfig{AgentCount: 3})
	h.scriptReplies(9)

	started, err := h.m.Start(ctx, a.ArenaID)
	require.NoError(t, err)
	assert.True(t, started.State.IsActive())

	done := h.waitState(t, a.ArenaID, models.ArenaStateCompleted)
	assert.Equal(t, 3, done.RoundsCompleted)
	assert.Equal(t, 1, done.EvaluationsRun)
	assert.Empty(t, done.LastError)
	assert.Empty(t, done.ResumeState)
	assert.Equal(t, 9, h.client.CallCount())

	strategies, err := h.m.Strategies(ctx, a.ArenaID, false)
	require.NoError(t, err)
	require.Len(t, strategies, 2)
	for _, s := range strategies {
		assert.True(t, s.IsActive)
		assert.Equal(t, models.StrategyStageLive, s.Stage)
		assert.Greater(t, s.CurrentScore, 0.0)
		assert.LessOrEqual(t, s.CurrentScore, 100.0)
	}

	board, err := h.m.Leaderboard(ctx, a.ArenaID)
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, 1, board[0].CurrentRank)
	assert.Equal(t, 2, board[1].CurrentRank)
	assert.GreaterOrEqual(t, board[0].CurrentScore, board[1].CurrentScore)

	rounds, err := h.stores.Rounds.ListByArena(ctx, a.ArenaID)
	require.NoError(t, err)
	require.Len(t, rounds, 3)
	for _, r := range rounds {
		assert.Equal(t, models.DiscussionModeCollaboration, r.Mode)
		assert.Len(t, r.Participants, 3)
		assert.Len(t, r.Conclusions, 3)
		require.NotNil(t, r.CompletedAt)
	}

	reports, err := h.stores.Reports.ListByArena(ctx, a.ArenaID)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, models.EvaluationPeriodDaily, reports[0].Period)
	assert.Equal(t, 2, reports[0].Evaluated)
	assert.Zero(t, reports[0].Eliminated)

	assert.Len(t, h.messagesOfType(t, a.ArenaID, models.MessageTypeArgument), 9)
	assert.Len(t, h.messagesOfType(t, a.ArenaID, models.MessageTypeConclusion), 9)
	assert.NotEmpty(t, h.messagesOfType(t, a.ArenaID, models.MessageTypeSystem))

	// The stream terminated with the arena.
	_, err = h.stream.Subscribe(a.ArenaID)
	require.ErrorIs(t, err, stream.ErrStreamClosed)
}

func TestPauseBlocksLoopAndResumeContinues(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createArena(t, models.ArenaConfig{AgentCount: 3, DiscussionMaxRounds: 1})

	// The first generation parks inside the client until released, so the
	// pause lands while a participant is mid-flight.
	inFlight := make(chan struct{}, 1)
	release := make(chan struct{})
	h.client.AddSequential(llm.ScriptEntry{
		Text:    "Slow thinking.\n\nCONCLUSION: hold.",
		WaitCh:  release,
		OnBlock: inFlight,
	})
	h.scriptReplies(2)

	_, err := h.m.Start(ctx, a.ArenaID)
	require.NoError(t, err)
	<-inFlight

	require.NoError(t, h.m.Pause(ctx, a.ArenaID))
	paused, err := h.m.Get(ctx, a.ArenaID)
	require.NoError(t, err)
	assert.Equal(t, models.ArenaStatePaused, paused.State)
	assert.Equal(t, models.ArenaStateDiscussing, paused.ResumeState)

	// Pausing twice is rejected, and a paused arena cannot be started.
	require.ErrorIs(t, h.m.Pause(ctx, a.ArenaID), ErrInvalidState)
	_, err = h.m.Start(ctx, a.ArenaID)
	require.ErrorIs(t, err, ErrInvalidState)

	// Release the in-flight generation: it finishes, then the loop blocks
	// at the next yield point instead of calling the second participant.
	close(release)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, h.client.CallCount())
	still, err := h.m.Get(ctx, a.ArenaID)
	require.NoError(t, err)
	assert.Equal(t, models.ArenaStatePaused, still.State)

	require.NoError(t, h.m.Resume(ctx, a.ArenaID))
	done := h.waitState(t, a.ArenaID, models.ArenaStateCompleted)
	assert.Empty(t, done.ResumeState)
	assert.Equal(t, 1, done.RoundsCompleted)
	assert.Equal(t, 3, h.client.CallCount())

	// Resume only applies to paused arenas.
	require.ErrorIs(t, h.m.Resume(ctx, a.ArenaID), ErrInvalidState)
}

func TestStartRejectsRunningArena(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createArena(t, models.ArenaConfig{AgentCount: 3})
	parked := make(chan struct{}, 1)
	h.client.AddSequential(llm.ScriptEntry{BlockUntilCancelled: true, OnBlock: parked})

	_, err := h.m.Start(ctx, a.ArenaID)
	require.NoError(t, err)

	_, err = h.m.Start(ctx, a.ArenaID)
	require.ErrorIs(t, err, ErrInvalidState)

	_, err = h.m.Start(ctx, "no-such-arena")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteStopsRunLoop(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createArena(t, models.ArenaConfig{AgentCount: 3})
	parked := make(chan struct{}, 1)
	h.client.AddSequential(llm.ScriptEntry{BlockUntilCancelled: true, OnBlock: parked})

	_, err := h.m.Start(ctx, a.ArenaID)
	require.NoError(t, err)
	<-parked

	require.NoError(t, h.m.Delete(ctx, a.ArenaID))
	_, err = h.m.Get(ctx, a.ArenaID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, h.m.Delete(ctx, a.ArenaID), store.ErrNotFound)
}

func TestShutdownLeavesArenaForRecovery(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createArena(t, models.ArenaConfig{AgentCount: 3})
	parked := make(chan struct{}, 1)
	h.client.AddSequential(llm.ScriptEntry{BlockUntilCancelled: true, OnBlock: parked})

	_, err := h.m.Start(ctx, a.ArenaID)
	require.NoError(t, err)
	<-parked

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, h.m.Shutdown(shutdownCtx))

	// The stored state survives for RecoverInterrupted on the next start.
	got, err := h.stores.Arenas.Get(ctx, a.ArenaID)
	require.NoError(t, err)
	assert.True(t, got.State.IsActive())
	assert.NotEqual(t, models.ArenaStateFailed, got.State)
}

func TestArenaFailsWhenEveryParticipantErrors(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createArena(t, models.ArenaConfig{AgentCount: 3, DiscussionMaxRounds: 1})
	for i := 0; i < 3; i++ {
		h.client.AddSequential(llm.ScriptEntry{Err: errors.New("provider unavailable")})
	}

	_, err := h.m.Start(ctx, a.ArenaID)
	require.NoError(t, err)

	deadline := time.Now().Add(5 * time.Second)
	for {
		got, err := h.stores.Arenas.Get(ctx, a.ArenaID)
		require.NoError(t, err)
		if got.State == models.ArenaStateFailed {
			assert.Contains(t, got.LastError, "every participant failed")
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for arena %s to fail, still %s", a.ArenaID, got.State)
		}
		time.Sleep(10 * time.Millisecond)
	}

	assert.Len(t, h.messagesOfType(t, a.ArenaID, models.MessageTypeError), 3)
}

func TestInterveneAdjustScoreClampsDelta(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createArena(t, models.ArenaConfig{AgentCount: 3})
	s := h.seedStrategy(t, a.ArenaID, "agent-1", 40, 1, true)

	// The delta is clamped to +-50 per intervention and the result stays
	// inside [0,100].
	require.NoError(t, h.m.Intervene(ctx, a.ArenaID, &models.InterventionRequest{
		Action: models.InterventionAdjustScore, StrategyID: s.StrategyID, Delta: 500,
	}))
	got, err := h.stores.Strategies.Get(ctx, s.StrategyID)
	require.NoError(t, err)
	assert.InDelta(t, 90, got.CurrentScore, 1e-9)

	require.NoError(t, h.m.Intervene(ctx, a.ArenaID, &models.InterventionRequest{
		Action: models.InterventionAdjustScore, StrategyID: s.StrategyID, Delta: 50,
	}))
	got, err = h.stores.Strategies.Get(ctx, s.StrategyID)
	require.NoError(t, err)
	assert.InDelta(t, 100, got.CurrentScore, 1e-9)

	require.NoError(t, h.m.Intervene(ctx, a.ArenaID, &models.InterventionRequest{
		Action: models.InterventionAdjustScore, StrategyID: s.StrategyID, Delta: -500,
	}))
	got, err = h.stores.Strategies.Get(ctx, s.StrategyID)
	require.NoError(t, err)
	assert.InDelta(t, 50, got.CurrentScore, 1e-9)

	assert.NotEmpty(t, h.messagesOfType(t, a.ArenaID, models.MessageTypeSystem))
}

func TestInterveneEliminateStrategy(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createArena(t, models.ArenaConfig{AgentCount: 3})
	s := h.seedStrategy(t, a.ArenaID, "agent-1", 55, 1, true)

	require.NoError(t, h.m.Intervene(ctx, a.ArenaID, &models.InterventionRequest{
		Action: models.InterventionEliminateStrategy, StrategyID: s.StrategyID,
	}))
	got, err := h.stores.Strategies.Get(ctx, s.StrategyID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	events, err := h.stores.Eliminations.ListByArena(ctx, a.ArenaID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.EvaluationPeriodManual, events[0].Period)
	assert.Equal(t, s.StrategyID, events[0].StrategyID)
	assert.Contains(t, events[0].Reason, "operator")

	// A second elimination of the same strategy is rejected.
	err = h.m.Intervene(ctx, a.ArenaID, &models.InterventionRequest{
		Action: models.InterventionEliminateStrategy, StrategyID: s.StrategyID,
	})
	require.ErrorIs(t, err, store.ErrInvalidInput)
}

func TestInterveneInjectMessageReachesSubscribers(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createArena(t, models.ArenaConfig{AgentCount: 3})
	sub, err := h.stream.Subscribe(a.ArenaID)
	require.NoError(t, err)
	defer sub.Close()

	require.NoError(t, h.m.Intervene(ctx, a.ArenaID, &models.InterventionRequest{
		Action:  models.InterventionInjectMessage,
		Content: "Focus the next round on drawdown control.",
	}))

	select {
	case msg := <-sub.C:
		assert.Equal(t, models.MessageTypeIntervention, msg.Type)
		assert.Equal(t, "Focus the next round on drawdown control.", msg.Content)
		assert.Equal(t, "operator", msg.Metadata["source"])
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for the injected message")
	}

	msgs, err := h.m.Messages(ctx, a.ArenaID, 0, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, models.MessageTypeIntervention, msgs[0].Type)
}

func TestInterveneValidation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createArena(t, models.ArenaConfig{AgentCount: 3})
	other := h.createArena(t, models.ArenaConfig{AgentCount: 3})
	foreign := h.seedStrategy(t, other.ArenaID, "agent-1", 50, 1, true)

	err := h.m.Intervene(ctx, a.ArenaID, nil)
	require.ErrorIs(t, err, store.ErrInvalidInput)

	err = h.m.Intervene(ctx, a.ArenaID, &models.InterventionRequest{Action: "reshuffle"})
	require.ErrorIs(t, err, store.ErrInvalidInput)

	err = h.m.Intervene(ctx, a.ArenaID, &models.InterventionRequest{Action: models.InterventionInjectMessage})
	require.ErrorIs(t, err, store.ErrInvalidInput)

	err = h.m.Intervene(ctx, a.ArenaID, &models.InterventionRequest{Action: models.InterventionAdjustScore, Delta: 10})
	require.ErrorIs(t, err, store.ErrInvalidInput)

	// A strategy from another arena is invisible here.
	err = h.m.Intervene(ctx, a.ArenaID, &models.InterventionRequest{
		Action: models.InterventionAdjustScore, StrategyID: foreign.StrategyID, Delta: 10,
	})
	require.ErrorIs(t, err, store.ErrNotFound)

	// Terminal arenas accept no interventions.
	done, err := h.stores.Arenas.Get(ctx, a.ArenaID)
	require.NoError(t, err)
	done.State = models.ArenaStateCompleted
	require.NoError(t, h.stores.Arenas.Update(ctx, done))
	err = h.m.Intervene(ctx, a.ArenaID, &models.InterventionRequest{
		Action: models.InterventionInjectMessage, Content: "too late",
	})
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestEvaluateValidatesPeriod(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createArena(t, models.ArenaConfig{AgentCount: 3})

	_, err := h.m.Evaluate(ctx, a.ArenaID, "hourly")
	require.ErrorIs(t, err, store.ErrInvalidInput)
	_, err = h.m.Evaluate(ctx, a.ArenaID, models.EvaluationPeriodManual)
	require.ErrorIs(t, err, store.ErrInvalidInput)
	_, err = h.m.Evaluate(ctx, "no-such-arena", models.EvaluationPeriodDaily)
	require.ErrorIs(t, err, store.ErrNotFound)

	h.seedStrategy(t, a.ArenaID, "agent-1", 70, 1, true)
	h.seedStrategy(t, a.ArenaID, "agent-2", 60, 2, true)
	report, err := h.m.Evaluate(ctx, a.ArenaID, models.EvaluationPeriodWeekly)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Evaluated)
}

func TestStartDiscussionAppliesOverrides(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	// 4 agents = generators agent-1/agent-2, reviewer agent-3, risk
	// analyst agent-4. One debate round pits the first generator against
	// the reviewer, so exactly two generations run.
	a := h.createArena(t, models.ArenaConfig{AgentCount: 4})
	h.scriptReplies(2)

	require.NoError(t, h.m.StartDiscussion(ctx, a.ArenaID, &models.StartDiscussionRequest{
		Mode:      models.DiscussionModeDebate,
		MaxRounds: 1,
	}))
	done := h.waitState(t, a.ArenaID, models.ArenaStateCompleted)
	assert.Equal(t, models.DiscussionModeDebate, done.Config.DiscussionMode)
	assert.Equal(t, 1, done.Config.DiscussionMaxRounds)
	assert.Equal(t, 1, done.RoundsCompleted)
	assert.Equal(t, 2, h.client.CallCount())

	rounds, err := h.stores.Rounds.ListByArena(ctx, a.ArenaID)
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, models.DiscussionModeDebate, rounds[0].Mode)
	assert.Equal(t, []string{"agent-1", "agent-3"}, rounds[0].Participants)

	// Once terminal, the command is rejected.
	err = h.m.StartDiscussion(ctx, a.ArenaID, nil)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestStartDiscussionValidatesRequest(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createArena(t, models.ArenaConfig{AgentCount: 3})
	err := h.m.StartDiscussion(ctx, a.ArenaID, &models.StartDiscussionRequest{Mode: "brawl"})
	require.ErrorIs(t, err, store.ErrInvalidInput)
	err = h.m.StartDiscussion(ctx, a.ArenaID, &models.StartDiscussionRequest{MaxRounds: -1})
	require.ErrorIs(t, err, store.ErrInvalidInput)

	got, err := h.m.Get(ctx, a.ArenaID)
	require.NoError(t, err)
	assert.Equal(t, models.ArenaStateCreated, got.State)
}

func TestStatusCountsStrategies(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createArena(t, models.ArenaConfig{AgentCount: 3})
	h.seedStrategy(t, a.ArenaID, "agent-1", 70, 1, true)
	h.seedStrategy(t, a.ArenaID, "agent-2", 60, 2, true)
	h.seedStrategy(t, a.ArenaID, "agent-3", 10, 3, false)

	status, err := h.m.Status(ctx, a.ArenaID)
	require.NoError(t, err)
	assert.Equal(t, 2, status.ActiveStrategies)
	assert.Equal(t, 3, status.TotalStrategies)
	assert.Equal(t, 0, status.CurrentRound)
	assert.Equal(t, a.ArenaID, status.Arena.ArenaID)

	_, err = h.m.Status(ctx, "no-such-arena")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestStrategiesActiveOnlyFilter(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	a := h.createArena(t, models.ArenaConfig{AgentCount: 3})
	h.seedStrategy(t, a.ArenaID, "agent-1", 70, 1, true)
	h.seedStrategy(t, a.ArenaID, "agent-2", 60, 2, false)

	all, err := h.m.Strategies(ctx, a.ArenaID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := h.m.Strategies(ctx, a.ArenaID, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "agent-1", active[0].AgentID)

	_, err = h.m.Strategies(ctx, "no-such-arena", false)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRecoverInterruptedParksActiveArenas(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	interrupted := h.createArena(t, models.ArenaConfig{AgentCount: 3})
	idle := h.createArena(t, models.ArenaConfig{AgentCount: 3})

	// Simulate a crash mid-phase: the stored state is active but no run
	// loop exists.
	a, err := h.stores.Arenas.Get(ctx, interrupted.ArenaID)
	require.NoError(t, err)
	a.State = models.ArenaStateBacktesting
	require.NoError(t, h.stores.Arenas.Update(ctx, a))

	n, err := h.m.RecoverInterrupted(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := h.stores.Arenas.Get(ctx, interrupted.ArenaID)
	require.NoError(t, err)
	assert.Equal(t, models.ArenaStatePaused, got.State)
	assert.Equal(t, models.ArenaStateBacktesting, got.ResumeState)

	untouched, err := h.stores.Arenas.Get(ctx, idle.ArenaID)
	require.NoError(t, err)
	assert.Equal(t, models.ArenaStateCreated, untouched.State)
}

func TestResumeAfterRestartSpawnsFreshRunLoop(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	// An arena parked by RecoverInterrupted has strategies but no runner;
	// Resume must spawn one at the recorded phase. Resuming at
	// backtesting skips discussion entirely, so no generations run.
	a := h.createArena(t, models.ArenaConfig{AgentCount: 3})
	h.seedStrategy(t, a.ArenaID, "agent-1", 0, 0, true)
	h.seedStrategy(t, a.ArenaID, "agent-2", 0, 0, true)

	stored, err := h.stores.Arenas.Get(ctx, a.ArenaID)
	require.NoError(t, err)
	stored.State = models.ArenaStatePaused
	stored.ResumeState = models.ArenaStateBacktesting
	require.NoError(t, h.stores.Arenas.Update(ctx, stored))

	require.NoError(t, h.m.Resume(ctx, a.ArenaID))
	done := h.waitState(t, a.ArenaID, models.ArenaStateCompleted)
	assert.Equal(t, 0, done.RoundsCompleted)
	assert.Equal(t, 0, h.client.CallCount())

	strategies, err := h.m.Strategies(ctx, a.ArenaID, true)
	require.NoError(t, err)
	require.Len(t, strategies, 2)
	for _, s := range strategies {
		assert.Equal(t, models.StrategyStageLive, s.Stage)
	}
}

func TestListReturnsAllArenas(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	first := h.createArena(t, models.ArenaConfig{AgentCount: 3})
	second := h.createArena(t, models.ArenaConfig{AgentCount: 3})

	arenas, err := h.m.List(ctx)
	require.NoError(t, err)
	require.Len(t, arenas, 2)
	ids := []string{arenas[0].ArenaID, arenas[1].ArenaID}
	assert.Contains(t, ids, first.ArenaID)
	assert.Contains(t, ids, second.ArenaID)
}
