package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/config"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/ods"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/provider"
)

// callLog records provider calls as "plugin@date" in arrival order.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (c *callLog) record(name, date string) {
	c.mu.Lock()
	c.calls = append(c.calls, name+"@"+date)
	c.mu.Unlock()
}

func (c *callLog) list() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

func logged(log *callLog, name string, inner plugin.Extractor) plugin.Extractor {
	return func(ctx context.Context, params map[string]string, emit plugin.EmitFunc) error {
		log.record(name, params["trade_date"])
		return inner(ctx, params, emit)
	}
}

func emitError(msg string) plugin.Extractor {
	return func(context.Context, map[string]string, plugin.EmitFunc) error {
		return errors.New(msg)
	}
}

func TestIncrementalEndToEnd(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(3))}, nil)
	h.start(t)

	exec, err := h.s.TriggerManual(context.Background(), models.SyncRequest{PluginName: "daily_bar"})
	require.NoError(t, err)

	final := h.waitExecution(t, exec.ExecutionID, models.ExecutionStatusCompleted)
	assert.Equal(t, 1, final.TotalPlugins)
	assert.Equal(t, 1, final.CompletedPlugins)
	assert.Equal(t, 0, final.FailedPlugins)
	assert.False(t, final.CanRetry)
	assert.Empty(t, final.ErrorSummary)
	require.NotNil(t, final.CompletedAt)

	tasks := h.subTasks(t, exec.ExecutionID)
	require.Len(t, tasks, 1)
	sub := tasks[0]
	assert.Equal(t, models.SubTaskStatusCompleted, sub.Status)
	assert.Equal(t, 100, sub.Progress)
	assert.Equal(t, 3, sub.RecordsProcessed)
	assert.Equal(t, "20260824", sub.TradeDate())
	require.NotNil(t, sub.StartedAt)
	require.NotNil(t, sub.CompletedAt)

	assert.Equal(t, 3, h.loader.loaded("ods_daily_bar"))
	assert.Equal(t, 1, h.syncer.callCount())
}

func TestDependencyOrdering(t *testing.T) {
	log := &callLog{}
	bar := testPlugin("daily_bar", "ods_daily_bar", nil, logged(log, "daily_bar", emitRows(2)))
	adj := testPlugin("adj_factor", "ods_adj_factor", []string{"daily_bar"}, logged(log, "adj_factor", emitRows(1)))
	groups := map[string]config.PluginGroupConfig{
		"market": {Plugins: []string{"adj_factor", "daily_bar"}},
	}

	h := newHarness(t, []*plugin.Plugin{bar, adj}, groups)
	h.start(t)

	exec, err := h.s.TriggerGroup(context.Background(), "market", models.GroupTriggerRequest{})
	require.NoError(t, err)
	h.waitExecution(t, exec.ExecutionID, models.ExecutionStatusCompleted)

	assert.Equal(t, []string{"daily_bar@20260824", "adj_factor@20260824"}, log.list())
	assert.Equal(t, 2, h.loader.loaded("ods_daily_bar"))
	assert.Equal(t, 1, h.loader.loaded("ods_adj_factor"))
}

func TestSkipAlreadyPresent(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(3))}, nil)
	h.reader.add("ods_daily_bar", "20260824")
	h.start(t)

	exec, err := h.s.TriggerManual(context.Background(), models.SyncRequest{PluginName: "daily_bar"})
	require.NoError(t, err)

	final := h.waitExecution(t, exec.ExecutionID, models.ExecutionStatusCompleted)
	assert.Equal(t, 1, final.CompletedPlugins)

	tasks := h.subTasks(t, exec.ExecutionID)
	require.Len(t, tasks, 1)
	assert.Equal(t, models.SubTaskStatusSkipped, tasks[0].Status)
	assert.Equal(t, 100, tasks[0].Progress)
	assert.Equal(t, 0, tasks[0].RecordsProcessed)

	// The provider was never touched.
	assert.Equal(t, 0, h.syncer.callCount())
	assert.Equal(t, 0, h.loader.loaded("ods_daily_bar"))
}

func TestForceOverwriteRunsPresentDate(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(3))}, nil)
	h.reader.add("ods_daily_bar", "20260824")
	h.start(t)

	exec, err := h.s.TriggerManual(context.Background(), models.SyncRequest{
		PluginName:     "daily_bar",
		ForceOverwrite: true,
	})
	require.NoError(t, err)

	h.waitExecution(t, exec.ExecutionID, models.ExecutionStatusCompleted)

	tasks := h.subTasks(t, exec.ExecutionID)
	require.Len(t, tasks, 1)
	assert.Equal(t, models.SubTaskStatusCompleted, tasks[0].Status)
	assert.Equal(t, 3, h.loader.loaded("ods_daily_bar"))
}

func TestFailedDependencyCancelsDependent(t *testing.T) {
	bar := testPlugin("daily_bar", "ods_daily_bar", nil, emitError("provider unavailable"))
	adj := testPlugin("adj_factor", "ods_adj_factor", []string{"daily_bar"}, emitRows(1))
	groups := map[string]config.PluginGroupConfig{
		"market": {Plugins: []string{"daily_bar", "adj_factor"}},
	}

	h := newHarness(t, []*plugin.Plugin{bar, adj}, groups)
	h.start(t)

	exec, err := h.s.TriggerGroup(context.Background(), "market", models.GroupTriggerRequest{})
	require.NoError(t, err)

	final := h.waitExecution(t, exec.ExecutionID, models.ExecutionStatusFailed)
	assert.True(t, final.CanRetry)
	assert.Equal(t, 1, final.FailedPlugins)
	assert.Contains(t, final.ErrorSummary, "1 of 2 sub-tasks failed, 1 cancelled")
	assert.Contains(t, final.ErrorSummary, "daily_bar: ")

	byName := map[string]*models.SubTask{}
	for _, sub := range h.subTasks(t, exec.ExecutionID) {
		byName[sub.PluginName] = sub
	}
	require.Len(t, byName, 2)
	assert.Equal(t, models.SubTaskStatusFailed, byName["daily_bar"].Status)
	assert.Contains(t, byName["daily_bar"].ErrorMessage, "provider unavailable")
	assert.Equal(t, models.SubTaskStatusCancelled, byName["adj_factor"].Status)
	assert.Contains(t, byName["adj_factor"].ErrorMessage, "dependency daily_bar did not complete")
}

func TestWidenFailureStopsRun(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(2))}, nil,
		func(cfg *config.SchedulerConfig) { cfg.WorkerCount = 1 })
	h.syncer.fail = map[string]error{
		"daily_bar": fmt.Errorf("widening ods_daily_bar.close: %w", ods.ErrWidenTypeFailed),
	}
	h.start(t)

	exec, err := h.s.TriggerManual(context.Background(), models.SyncRequest{
		PluginName: "daily_bar",
		TaskType:   models.TaskTypeBackfill,
		TradeDates: []string{"20260820", "20260821"},
	})
	require.NoError(t, err)

	final := h.waitExecution(t, exec.ExecutionID, models.ExecutionStatusFailed)
	assert.True(t, final.CanRetry)
	assert.Contains(t, final.ErrorSummary, "widening")

	var failed, cancelled int
	for _, sub := range h.subTasks(t, exec.ExecutionID) {
		switch sub.Status {
		case models.SubTaskStatusFailed:
			failed++
			assert.Contains(t, sub.ErrorMessage, "widening")
		case models.SubTaskStatusCancelled:
			cancelled++
			assert.Equal(t, "stopped after schema widening failure", sub.ErrorMessage)
		}
	}
	assert.Equal(t, 1, failed)
	assert.Equal(t, 1, cancelled)

	assert.Equal(t, 0, h.loader.loaded("ods_daily_bar"))
}

// backoffFetcher answers one 429 for limitedDate, then serves a one-row
// page for every call.
type backoffFetcher struct {
	mu          sync.Mutex
	limitedDate string
	limited     bool
	calls       []string
}

func (f *backoffFetcher) Query(_ context.Context, _ string, params map[string]string, _ []string) (*provider.Payload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	date := params["trade_date"]
	f.calls = append(f.calls, date)
	if date == f.limitedDate && !f.limited {
		f.limited = true
		return nil, &provider.RateLimitError{APIName: "daily", RetryAfter: 50 * time.Millisecond}
	}
	return &provider.Payload{
		Fields: []string{"ts_code", "trade_date", "close"},
		Items:  [][]any{{"000001.SZ", date, 10.5}},
	}, nil
}

func (f *backoffFetcher) attempts(date string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, d := range f.calls {
		if d == date {
			n++
		}
	}
	return n
}

// recordingGate admits every call and remembers applied penalties.
type recordingGate struct {
	mu        sync.Mutex
	penalties map[string]time.Duration
}

func (g *recordingGate) Acquire(context.Context, string) error { return nil }

func (g *recordingGate) Penalty(plugin string, d time.Duration) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.penalties == nil {
		g.penalties = make(map[string]time.Duration)
	}
	g.penalties[plugin] = d
	return nil
}

func (g *recordingGate) penalty(plugin string) time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.penalties[plugin]
}

func TestRateLimitedDateRetriesAfterPenalty(t *testing.T) {
	fetcher := &backoffFetcher{limitedDate: "20260819"}
	gate := &recordingGate{}

	// The provider 429 must ride the real gated extractor, not a test stub.
	bar := testPlugin("daily_bar", "ods_daily_bar", nil, nil)
	_, err := plugin.BuildRegistry([]*plugin.Plugin{bar}, fetcher, gate)
	require.NoError(t, err)
	require.NotNil(t, bar.Extract)

	h := newHarness(t, []*plugin.Plugin{bar}, nil)
	h.start(t)

	exec, err := h.s.TriggerManual(context.Background(), models.SyncRequest{
		PluginName: "daily_bar",
		TaskType:   models.TaskTypeBackfill,
		TradeDates: []string{"20260817", "20260818", "20260819"},
	})
	require.NoError(t, err)

	final := h.waitExecution(t, exec.ExecutionID, models.ExecutionStatusCompleted)
	assert.Equal(t, 3, final.CompletedPlugins)
	assert.Equal(t, 0, final.FailedPlugins)

	for _, task := range h.subTasks(t, exec.ExecutionID) {
		assert.Equal(t, models.SubTaskStatusCompleted, task.Status, task.TradeDate())
		assert.Equal(t, 1, task.RecordsProcessed, task.TradeDate())
	}

	assert.Equal(t, 50*time.Millisecond, gate.penalty("daily_bar"))
	assert.Equal(t, 2, fetcher.attempts("20260819"), "rate-limited date re-issued after the penalty")
	assert.Equal(t, 1, fetcher.attempts("20260817"))
	assert.Equal(t, 1, fetcher.attempts("20260818"))
	assert.Equal(t, 3, h.loader.loaded("ods_daily_bar"))
}

func TestNoDataCompletes(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("hk_daily", "ods_hk_daily", nil, emitNothing)}, nil)
	h.start(t)

	exec, err := h.s.TriggerManual(context.Background(), models.SyncRequest{PluginName: "hk_daily"})
	require.NoError(t, err)

	final := h.waitExecution(t, exec.ExecutionID, models.ExecutionStatusCompleted)
	assert.Equal(t, 1, final.CompletedPlugins)

	tasks := h.subTasks(t, exec.ExecutionID)
	require.Len(t, tasks, 1)
	assert.Equal(t, models.SubTaskStatusCompleted, tasks[0].Status)
	assert.True(t, tasks[0].NoData())
}

func TestFullSyncSkipsPresentDates(t *testing.T) {
	log := &callLog{}
	bar := testPlugin("daily_bar", "ods_daily_bar", nil, logged(log, "daily_bar", emitRows(2)))
	h := newHarness(t, []*plugin.Plugin{bar}, nil,
		func(cfg *config.SchedulerConfig) { cfg.MissingWindowDays = 30 })
	h.reader.add("ods_daily_bar", "20260817", "20260818")
	h.start(t)

	exec, err := h.s.TriggerManual(context.Background(), models.SyncRequest{
		PluginName: "daily_bar",
		TaskType:   models.TaskTypeFull,
	})
	require.NoError(t, err)

	h.waitExecution(t, exec.ExecutionID, models.ExecutionStatusCompleted)

	// Six trading days in the window, two already present.
	calls := log.list()
	assert.Len(t, calls, 4)
	assert.NotContains(t, calls, "daily_bar@20260817")
	assert.NotContains(t, calls, "daily_bar@20260818")
	assert.Equal(t, 8, h.loader.loaded("ods_daily_bar"))

	tasks := h.subTasks(t, exec.ExecutionID)
	require.Len(t, tasks, 1)
	assert.Equal(t, models.SubTaskStatusCompleted, tasks[0].Status)
	assert.Equal(t, 100, tasks[0].Progress)
	assert.Equal(t, 8, tasks[0].RecordsProcessed)
}

func TestCalendarInvalidatedAfterCalendarSync(t *testing.T) {
	cal := basicPlugin("trade_calendar", "ods_trade_calendar", emitRows(5))
	h := newHarness(t, []*plugin.Plugin{cal}, nil)
	h.start(t)

	exec, err := h.s.TriggerManual(context.Background(), models.SyncRequest{PluginName: "trade_calendar"})
	require.NoError(t, err)
	h.waitExecution(t, exec.ExecutionID, models.ExecutionStatusCompleted)

	assert.Equal(t, int64(1), h.cal.invalidated.Load())
}
