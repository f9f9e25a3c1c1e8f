package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/quant"
)

func arenaHarness(t *testing.T) *harness {
	t.Helper()
	return newHarness(t, []*plugin.Plugin{testPlugin("daily_quote", "ods_daily_quote", 2)}, nil)
}

// seedArena plants an arena row in a chosen state, bypassing the lifecycle,
// so state-dependent handler paths can be probed without a live run loop.
func (h *harness) seedArena(t *testing.T, id string, state models.ArenaState) *models.Arena {
	t.Helper()
	a := &models.Arena{
		ArenaID: id,
		Name:    "Seeded " + id,
		Config: models.ArenaConfig{
			AgentCount:          3,
			MinActiveStrategies: 2,
			DiscussionMaxRounds: 2,
			Symbols:             []string{"600000.SH"},
			BacktestWindowDays:  60,
		},
		State:     state,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
	require.NoError(t, h.stores.Arenas.Create(context.Background(), a))
	return a
}

func (h *harness) seedStrategy(t *testing.T, arenaID, id string, score float64, rank int, active bool) *models.Strategy {
	t.Helper()
	s := &models.Strategy{
		StrategyID:   id,
		ArenaID:      arenaID,
		Name:         "Seeded " + id,
		AgentID:      "agent-" + id,
		AgentRole:    models.AgentRoleStrategyGenerator,
		Stage:        models.StrategyStageBacktest,
		IsActive:     active,
		CurrentScore: score,
		CurrentRank:  rank,
		Rules:        quant.DefaultRules(),
		CreatedAt:    testNow,
		UpdatedAt:    testNow,
	}
	require.NoError(t, h.stores.Strategies.Create(context.Background(), s))
	return s
}

func TestCreateArenaEndpoint(t *testing.T) {
	h := arenaHarness(t)

	t.Run("name required", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodPost, "/api/arena/create",
			map[string]any{"config": map[string]any{"agent_count": 5}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
		assert.Contains(t, envelope.Message, "name")
	})

	t.Run("agent count bounds enforced", func(t *testing.T) {
		for _, count := range []int{2, 11} {
			rec, envelope := h.do(t, http.MethodPost, "/api/arena/create",
				map[string]any{"name": "out of bounds", "config": map[string]any{"agent_count": count}})
			assert.Equal(t, http.StatusBadRequest, rec.Code, "agent_count=%d", count)
			assert.Equal(t, codeInvalidArgs, envelope.Code, "agent_count=%d", count)
		}
	})

	t.Run("create fills defaults", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodPost, "/api/arena/create",
			map[string]any{"name": "alpha cup"})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 0, envelope.Code, "message: %s", envelope.Message)

		a := dataAs[models.Arena](t, envelope)
		assert.NotEmpty(t, a.ArenaID)
		assert.Equal(t, "alpha cup", a.Name)
		assert.Equal(t, models.ArenaStateCreated, a.State)
		assert.Equal(t, 5, a.Config.AgentCount)
		assert.Equal(t, 3, a.Config.MinActiveStrategies)
		assert.NotEmpty(t, a.Config.Symbols)

		_, listEnv := h.do(t, http.MethodGet, "/api/arena/list", nil)
		arenas := dataAs[[]*models.Arena](t, listEnv)
		require.Len(t, arenas, 1)
		assert.Equal(t, a.ArenaID, arenas[0].ArenaID)
	})
}

func TestArenaLifecycleEndpoints(t *testing.T) {
	h := arenaHarness(t)

	t.Run("start unknown arena maps to not found", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodPost, "/api/arena/nope/start", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, codeNotFound, envelope.Code)
	})

	t.Run("start on terminal arena rejected", func(t *testing.T) {
		h.seedArena(t, "arena-done", models.ArenaStateCompleted)

		rec, envelope := h.do(t, http.MethodPost, "/api/arena/arena-done/start", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
		assert.Contains(t, envelope.Message, "cannot start")
	})

	t.Run("pause on created arena rejected", func(t *testing.T) {
		h.seedArena(t, "arena-fresh", models.ArenaStateCreated)

		rec, envelope := h.do(t, http.MethodPost, "/api/arena/arena-fresh/pause", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
	})

	t.Run("resume on created arena rejected", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodPost, "/api/arena/arena-fresh/resume", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
	})

	t.Run("delete acknowledges and status 404s after", func(t *testing.T) {
		h.seedArena(t, "arena-gone", models.ArenaStateCreated)

		rec, envelope := h.do(t, http.MethodDelete, "/api/arena/arena-gone", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, dataAs[Ack](t, envelope).OK)

		rec, envelope = h.do(t, http.MethodGet, "/api/arena/arena-gone/status", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, codeNotFound, envelope.Code)
	})
}

func TestArenaStatusEndpoint(t *testing.T) {
	h := arenaHarness(t)
	h.seedArena(t, "arena-status", models.ArenaStateDiscussing)
	h.seedStrategy(t, "arena-status", "strat-a", 80, 1, true)
	h.seedStrategy(t, "arena-status", "strat-b", 60, 2, true)
	h.seedStrategy(t, "arena-status", "strat-c", 40, 3, false)

	rec, envelope := h.do(t, http.MethodGet, "/api/arena/arena-status/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 0, envelope.Code)

	status := dataAs[models.ArenaStatusResponse](t, envelope)
	assert.Equal(t, "arena-status", status.ArenaID)
	assert.Equal(t, models.ArenaStateDiscussing, status.State)
	assert.Equal(t, 2, status.ActiveStrategies)
	assert.Equal(t, 3, status.TotalStrategies)
}

func TestArenaStrategiesEndpoint(t *testing.T) {
	h := arenaHarness(t)
	h.seedArena(t, "arena-strats", models.ArenaStateDiscussing)
	h.seedStrategy(t, "arena-strats", "strat-high", 90, 1, true)
	h.seedStrategy(t, "arena-strats", "strat-low", 30, 2, true)
	h.seedStrategy(t, "arena-strats", "strat-out", 10, 3, false)

	t.Run("invalid active_only rejected", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodGet, "/api/arena/arena-strats/strategies?active_only=sure", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
	})

	t.Run("all strategies by default", func(t *testing.T) {
		_, envelope := h.do(t, http.MethodGet, "/api/arena/arena-strats/strategies", nil)
		strategies := dataAs[[]*models.Strategy](t, envelope)
		assert.Len(t, strategies, 3)
	})

	t.Run("active_only filters eliminated", func(t *testing.T) {
		_, envelope := h.do(t, http.MethodGet, "/api/arena/arena-strats/strategies?active_only=true", nil)
		strategies := dataAs[[]*models.Strategy](t, envelope)
		require.Len(t, strategies, 2)
		for _, s := range strategies {
			assert.True(t, s.IsActive)
		}
	})

	t.Run("leaderboard ranks by score", func(t *testing.T) {
		_, envelope := h.do(t, http.MethodGet, "/api/arena/arena-strats/leaderboard", nil)
		ranked := dataAs[[]*models.Strategy](t, envelope)
		require.Len(t, ranked, 2)
		assert.Equal(t, "strat-high", ranked[0].StrategyID)
		assert.Equal(t, "strat-low", ranked[1].StrategyID)
	})
}

func TestEvaluateArenaEndpoint(t *testing.T) {
	h := arenaHarness(t)
	h.seedArena(t, "arena-eval", models.ArenaStateDiscussing)
	for i := 1; i <= 3; i++ {
		h.seedStrategy(t, "arena-eval", fmt.Sprintf("strat-%d", i), 50, i, true)
	}

	t.Run("unknown period rejected", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodPost, "/api/arena/arena-eval/evaluate",
			map[string]any{"period": "hourly"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
	})

	t.Run("manual period rejected for the endpoint", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodPost, "/api/arena/arena-eval/evaluate",
			map[string]any{"period": "manual"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
	})

	t.Run("daily evaluation rescores without eliminating", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodPost, "/api/arena/arena-eval/evaluate",
			map[string]any{"period": "daily"})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 0, envelope.Code, "message: %s", envelope.Message)

		report := dataAs[models.EvaluationReport](t, envelope)
		assert.Equal(t, models.EvaluationPeriodDaily, report.Period)
		assert.Equal(t, 3, report.Evaluated)
		assert.Zero(t, report.Eliminated)
		assert.Len(t, report.Rankings, 3)

		active, err := h.stores.Strategies.ListActive(context.Background(), "arena-eval")
		require.NoError(t, err)
		assert.Len(t, active, 3)
	})
}

func TestDiscussionEndpoints(t *testing.T) {
	h := arenaHarness(t)

	t.Run("start with invalid mode rejected", func(t *testing.T) {
		h.seedArena(t, "arena-disc", models.ArenaStateCreated)

		rec, envelope := h.do(t, http.MethodPost, "/api/arena/arena-disc/discussion/start",
			map[string]any{"mode": "shouting"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
	})

	t.Run("start while running rejected", func(t *testing.T) {
		h.seedArena(t, "arena-busy", models.ArenaStateBacktesting)

		rec, envelope := h.do(t, http.MethodPost, "/api/arena/arena-busy/discussion/start", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
	})

	t.Run("intervention requires known action", func(t *testing.T) {
		h.seedArena(t, "arena-iv", models.ArenaStateDiscussing)

		rec, envelope := h.do(t, http.MethodPost, "/api/arena/arena-iv/discussion/intervention",
			map[string]any{"action": "shout"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
	})

	t.Run("inject_message requires content", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodPost, "/api/arena/arena-iv/discussion/intervention",
			map[string]any{"action": "inject_message"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
		assert.Contains(t, envelope.Message, "content")
	})

	t.Run("inject_message lands in history", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodPost, "/api/arena/arena-iv/discussion/intervention",
			map[string]any{"action": "inject_message", "content": "watch the drawdown"})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 0, envelope.Code)

		_, msgEnv := h.do(t, http.MethodGet, "/api/arena/arena-iv/messages", nil)
		messages := dataAs[[]*models.ThinkingMessage](t, msgEnv)
		require.Len(t, messages, 1)
		assert.Equal(t, models.MessageTypeIntervention, messages[0].Type)
		assert.Equal(t, "watch the drawdown", messages[0].Content)
		assert.Equal(t, int64(1), messages[0].Sequence)
	})

	t.Run("adjust_score clamps to the score range", func(t *testing.T) {
		h.seedStrategy(t, "arena-iv", "strat-clamp", 90, 1, true)

		rec, envelope := h.do(t, http.MethodPost, "/api/arena/arena-iv/discussion/intervention",
			map[string]any{"action": "adjust_score", "strategy_id": "strat-clamp", "delta": 50})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 0, envelope.Code)

		s, err := h.stores.Strategies.Get(context.Background(), "strat-clamp")
		require.NoError(t, err)
		assert.Equal(t, 100.0, s.CurrentScore)
	})

	t.Run("eliminate_strategy is not repeatable", func(t *testing.T) {
		h.seedStrategy(t, "arena-iv", "strat-cut", 20, 5, true)

		body := map[string]any{"action": "eliminate_strategy", "strategy_id": "strat-cut"}
		rec, envelope := h.do(t, http.MethodPost, "/api/arena/arena-iv/discussion/intervention", body)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 0, envelope.Code)

		rec, envelope = h.do(t, http.MethodPost, "/api/arena/arena-iv/discussion/intervention", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
		assert.Contains(t, envelope.Message, "already eliminated")
	})

	t.Run("intervention on terminal arena rejected", func(t *testing.T) {
		h.seedArena(t, "arena-over", models.ArenaStateFailed)

		rec, envelope := h.do(t, http.MethodPost, "/api/arena/arena-over/discussion/intervention",
			map[string]any{"action": "inject_message", "content": "too late"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
	})
}

func TestArenaMessagesEndpoint(t *testing.T) {
	h := arenaHarness(t)
	h.seedArena(t, "arena-msgs", models.ArenaStateDiscussing)
	for i := 1; i <= 4; i++ {
		require.NoError(t, h.proc.Publish(context.Background(), &models.ThinkingMessage{
			ArenaID: "arena-msgs",
			Type:    models.MessageTypeSystem,
			Content: fmt.Sprintf("note %d", i),
		}))
	}

	t.Run("invalid after_seq rejected", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodGet, "/api/arena/arena-msgs/messages?after_seq=x", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
	})

	t.Run("window resumes after a sequence", func(t *testing.T) {
		_, envelope := h.do(t, http.MethodGet, "/api/arena/arena-msgs/messages?after_seq=1&limit=2", nil)
		messages := dataAs[[]*models.ThinkingMessage](t, envelope)
		require.Len(t, messages, 2)
		assert.Equal(t, int64(2), messages[0].Sequence)
		assert.Equal(t, int64(3), messages[1].Sequence)
	})

	t.Run("unknown arena maps to not found", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodGet, "/api/arena/nope/messages", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, codeNotFound, envelope.Code)
	})
}
