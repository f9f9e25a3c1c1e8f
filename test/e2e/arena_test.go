package e2e

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/llm"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// seedDailyBars backfills the quote history the competition engine scores
// against.
func (app *TestApp) seedDailyBars(dates []string) {
	app.t.Helper()
	app.Provider.Script("daily", QuoteRows("600000.SH", "000001.SZ"))
	id := app.triggerSync(&models.SyncRequest{
		PluginName: "daily_bar",
		TaskType:   models.TaskTypeBackfill,
		TradeDates: dates,
	})
	detail := app.waitExecution(id, 2*time.Minute)
	require.Equal(app.t, models.ExecutionStatusCompleted, detail.Status)
}

// waitArenaState polls the status endpoint until the arena reaches the
// wanted state, failing fast when it lands on a different terminal one.
func (app *TestApp) waitArenaState(id string, want models.ArenaState, timeout time.Duration) *models.ArenaStatusResponse {
	app.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		var status models.ArenaStatusResponse
		app.get("/api/arena/"+id+"/status", &status)
		if status.State == want {
			return &status
		}
		if status.State.IsTerminal() {
			app.t.Fatalf("arena %s ended %s, want %s (last error %q)", id, status.State, want, status.LastError)
		}
		if time.Now().After(deadline) {
			app.t.Fatalf("timed out waiting for arena %s to reach %s, still %s", id, want, status.State)
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// sseStream reads one thinking-stream connection in the background.
type sseStream struct {
	frames chan string
	done   chan struct{}
}

// openThinkingStream subscribes over a real TCP connection and collects the
// `data:` payloads until the terminal done frame.
func openThinkingStream(app *TestApp, arenaID string) *sseStream {
	app.t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	app.t.Cleanup(cancel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		app.BaseURL+"/api/arena/"+arenaID+"/thinking-stream", nil)
	require.NoError(app.t, err)
	resp, err := (&http.Client{}).Do(req)
	require.NoError(app.t, err)
	require.Equal(app.t, http.StatusOK, resp.StatusCode)
	require.Equal(app.t, "text/event-stream", resp.Header.Get("Content-Type"))

	s := &sseStream{frames: make(chan string, 1024), done: make(chan struct{})}
	go func() {
		defer close(s.done)
		defer resp.Body.Close()
		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			payload, ok := strings.CutPrefix(scanner.Text(), "data: ")
			if !ok {
				continue
			}
			s.frames <- payload
			if payload == `{"type":"done"}` {
				return
			}
		}
	}()
	return s
}

// wait blocks until the stream ends and returns every frame received.
func (s *sseStream) wait(t *testing.T, timeout time.Duration) []string {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(timeout):
		t.Fatal("thinking stream did not terminate")
	}
	var out []string
	for {
		select {
		case f := <-s.frames:
			out = append(out, f)
		default:
			return out
		}
	}
}

// TestArenaTournamentRunsToCompletionOverHTTP drives a whole tournament the
// way the dashboard does: ingest bars, create, subscribe to the thinking
// stream, start, then read the results back.
func TestArenaTournamentRunsToCompletionOverHTTP(t *testing.T) {
	app := StartTestApp(t)
	now := time.Now()

	// Enough history for the slow indicator period of the default rules.
	app.seedDailyBars(weekdays(now.AddDate(0, 0, -60), now.AddDate(0, 0, -1)))

	var created models.Arena
	app.post("/api/arena/create", &models.CreateArenaRequest{
		Name:   "alpha cup e2e",
		Config: models.ArenaConfig{AgentCount: 3, DiscussionMaxRounds: 1},
	}, &created)
	require.NotEmpty(t, created.ArenaID)
	assert.Equal(t, models.ArenaStateCreated, created.State)
	assert.Equal(t, []string{"600000.SH", "000001.SZ"}, created.Config.Symbols)

	// 3 agents, 1 round: 3 generations, none revising rules.
	for i := 0; i < 3; i++ {
		app.LLM.AddSequential(llm.ScriptEntry{
			Text: fmt.Sprintf("Signal quality holds on this tape, reply %d.\n\nCONCLUSION: keep the rules as they are.", i+1),
		})
	}

	live := openThinkingStream(app, created.ArenaID)

	var started models.Arena
	app.post("/api/arena/"+created.ArenaID+"/start", nil, &started)
	assert.True(t, started.State.IsActive())

	status := app.waitArenaState(created.ArenaID, models.ArenaStateCompleted, time.Minute)
	assert.Equal(t, 1, status.RoundsCompleted)
	assert.Equal(t, 1, status.EvaluationsRun)
	assert.Equal(t, 2, status.TotalStrategies)
	assert.Equal(t, 2, status.ActiveStrategies)
	assert.Empty(t, status.LastError)
	assert.Equal(t, 3, app.LLM.CallCount())

	var strategies []*models.Strategy
	app.get("/api/arena/"+created.ArenaID+"/strategies", &strategies)
	require.Len(t, strategies, 2)
	for _, s := range strategies {
		assert.True(t, s.IsActive)
		assert.Equal(t, models.StrategyStageLive, s.Stage)
		assert.Greater(t, s.CurrentScore, 0.0)
		assert.LessOrEqual(t, s.CurrentScore, 100.0)
	}

	var board []*models.Strategy
	app.get("/api/arena/"+created.ArenaID+"/leaderboard", &board)
	require.Len(t, board, 2)
	assert.Equal(t, 1, board[0].CurrentRank)
	assert.Equal(t, 2, board[1].CurrentRank)
	assert.GreaterOrEqual(t, board[0].CurrentScore, board[1].CurrentScore)

	var messages []*models.ThinkingMessage
	app.get("/api/arena/"+created.ArenaID+"/messages", &messages)
	require.NotEmpty(t, messages)
	for i := 1; i < len(messages); i++ {
		assert.Greater(t, messages[i].Sequence, messages[i-1].Sequence)
	}

	frames := live.wait(t, 30*time.Second)
	require.NotEmpty(t, frames)
	assert.Equal(t, `{"type":"done"}`, frames[len(frames)-1])
	sawArgument := false
	for _, f := range frames[:len(frames)-1] {
		var msg models.ThinkingMessage
		require.NoError(t, json.Unmarshal([]byte(f), &msg))
		assert.Equal(t, created.ArenaID, msg.ArenaID)
		if msg.Type == models.MessageTypeArgument {
			sawArgument = true
		}
	}
	assert.True(t, sawArgument, "stream carried no agent arguments")

	// A subscriber arriving after the end gets the closing frame right away.
	late := openThinkingStream(app, created.ArenaID)
	assert.Equal(t, []string{`{"type":"done"}`}, late.wait(t, 10*time.Second))

	// Completed arenas cannot be re-evaluated.
	code, env := app.request(http.MethodPost, "/api/arena/"+created.ArenaID+"/evaluate",
		&models.EvaluateRequest{Period: models.EvaluationPeriodDaily}, true)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, 40001, env.Code)

	var list []*models.Arena
	app.get("/api/arena/list", &list)
	require.Len(t, list, 1)

	app.del("/api/arena/" + created.ArenaID)
	code, env = app.request(http.MethodGet, "/api/arena/"+created.ArenaID+"/status", nil, false)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, 40002, env.Code)
}

// TestArenaPauseAndResumeOverHTTP pauses a tournament while a generation is
// mid-flight and resumes it to completion.
func TestArenaPauseAndResumeOverHTTP(t *testing.T) {
	app := StartTestApp(t)
	now := time.Now()
	app.seedDailyBars(weekdays(now.AddDate(0, 0, -60), now.AddDate(0, 0, -1)))

	var created models.Arena
	app.post("/api/arena/create", &models.CreateArenaRequest{
		Name:   "pausable cup",
		Config: models.ArenaConfig{AgentCount: 3, DiscussionMaxRounds: 1},
	}, &created)

	inFlight := make(chan struct{}, 1)
	release := make(chan struct{})
	app.LLM.AddSequential(llm.ScriptEntry{
		Text:    "Slow thinking on the open position.\n\nCONCLUSION: keep the rules as they are.",
		WaitCh:  release,
		OnBlock: inFlight,
	})

	app.post("/api/arena/"+created.ArenaID+"/start", nil, nil)
	select {
	case <-inFlight:
	case <-time.After(30 * time.Second):
		t.Fatal("first generation never started")
	}

	app.post("/api/arena/"+created.ArenaID+"/pause", nil, nil)
	var status models.ArenaStatusResponse
	app.get("/api/arena/"+created.ArenaID+"/status", &status)
	assert.Equal(t, models.ArenaStatePaused, status.State)
	assert.Equal(t, models.ArenaStateDiscussing, status.ResumeState)

	// Pausing twice is rejected.
	code, env := app.request(http.MethodPost, "/api/arena/"+created.ArenaID+"/pause", nil, true)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, 40001, env.Code)

	// Let the parked generation finish; the loop stays paused either way.
	close(release)
	for i := 0; i < 2; i++ {
		app.LLM.AddSequential(llm.ScriptEntry{
			Text: fmt.Sprintf("Back from the break, reply %d.\n\nCONCLUSION: keep the rules as they are.", i+1),
		})
	}

	app.post("/api/arena/"+created.ArenaID+"/resume", nil, nil)
	done := app.waitArenaState(created.ArenaID, models.ArenaStateCompleted, time.Minute)
	assert.Equal(t, 1, done.RoundsCompleted)
	assert.Equal(t, 1, done.EvaluationsRun)
	assert.Empty(t, done.ResumeState)
	assert.Equal(t, 3, app.LLM.CallCount())

	// Resume only applies to paused arenas.
	code, env = app.request(http.MethodPost, "/api/arena/"+created.ArenaID+"/resume", nil, true)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, 40001, env.Code)
}
