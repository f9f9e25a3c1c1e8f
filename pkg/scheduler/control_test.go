package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/config"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

func TestStopExecutionMidFlight(t *testing.T) {
	gate := make(chan struct{})
	inFlight := make(chan string, 8)
	blocking := func(ctx context.Context, params map[string]string, emit plugin.EmitFunc) error {
		inFlight <- params["trade_date"]
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
		return emitRows(1)(ctx, params, emit)
	}

	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_bar", "ods_daily_bar", nil, blocking)}, nil,
		func(cfg *config.SchedulerConfig) { cfg.WorkerCount = 1 })
	h.start(t)

	exec, err := h.s.TriggerManual(context.Background(), models.SyncRequest{
		PluginName: "daily_bar",
		TaskType:   models.TaskTypeBackfill,
		TradeDates: []string{"20260819", "20260820", "20260821"},
	})
	require.NoError(t, err)

	// Wait for the first sub-task to reach the provider, then stop.
	select {
	case <-inFlight:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for the first provider call")
	}

	stopped, err := h.s.StopExecution(context.Background(), exec.ExecutionID)
	require.NoError(t, err)
	assert.Equal(t, models.ExecutionStatusStopping, stopped.Status)

	// A second stop while winding down is a no-op.
	again, err := h.s.StopExecution(context.Background(), exec.ExecutionID)
	require.NoError(t, err)
	assert.Equal(t, models.ExecutionStatusStopping, again.Status)

	// Release the in-flight call; it notices the stop at the batch boundary.
	close(gate)
	final := h.waitExecution(t, exec.ExecutionID, models.ExecutionStatusStopped)
	assert.True(t, final.CanRetry)
	require.NotNil(t, final.CompletedAt)

	reasons := map[string]int{}
	for _, sub := range h.subTasks(t, exec.ExecutionID) {
		assert.Equal(t, models.SubTaskStatusCancelled, sub.Status)
		reasons[sub.ErrorMessage]++
	}
	assert.Equal(t, 1, reasons["stopped before completion"])
	assert.Equal(t, 2, reasons["stopped by user"])

	assert.Equal(t, 0, h.loader.loaded("ods_daily_bar"))

	_, err = h.s.StopExecution(context.Background(), exec.ExecutionID)
	require.ErrorIs(t, err, ErrExecutionNotActive)
}

func TestStopExecutionValidation(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(1))}, nil)
	h.start(t)

	_, err := h.s.StopExecution(context.Background(), "no-such-execution")
	require.ErrorIs(t, err, store.ErrNotFound)

	exec, err := h.s.TriggerManual(context.Background(), models.SyncRequest{PluginName: "daily_bar"})
	require.NoError(t, err)
	h.waitExecution(t, exec.ExecutionID, models.ExecutionStatusCompleted)

	_, err = h.s.StopExecution(context.Background(), exec.ExecutionID)
	require.ErrorIs(t, err, ErrExecutionNotActive)
}

func TestStopExecutionSettlesOrphanRow(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(1))}, nil)
	ctx := context.Background()

	// An active row with no live run, as an earlier crash would leave behind.
	orphan := &models.BatchExecution{
		ExecutionID:  "orphan-1",
		TriggerType:  models.TriggerTypeManual,
		Status:       models.ExecutionStatusRunning,
		TotalPlugins: 1,
		StartedAt:    testNow.Add(-time.Hour),
	}
	require.NoError(t, h.stores.Executions.Create(ctx, orphan))
	require.NoError(t, h.stores.SubTasks.CreateBatch(ctx, []*models.SubTask{{
		TaskID:      "orphan-1-t1",
		ExecutionID: "orphan-1",
		PluginName:  "daily_bar",
		TaskType:    models.TaskTypeIncremental,
		Status:      models.SubTaskStatusRunning,
		CreatedAt:   testNow.Add(-time.Hour),
	}}))

	got, err := h.s.StopExecution(ctx, "orphan-1")
	require.NoError(t, err)
	assert.Equal(t, models.ExecutionStatusInterrupted, got.Status)
	assert.True(t, got.CanRetry)

	tasks := h.subTasks(t, "orphan-1")
	require.Len(t, tasks, 1)
	assert.Equal(t, models.SubTaskStatusCancelled, tasks[0].Status)
	assert.Equal(t, "interrupted by restart", tasks[0].ErrorMessage)
}

func TestRetryPartialReusesExecution(t *testing.T) {
	var failedOnce atomic.Bool
	flaky := func(ctx context.Context, params map[string]string, emit plugin.EmitFunc) error {
		if failedOnce.CompareAndSwap(false, true) {
			return errors.New("transient provider error")
		}
		return emitRows(2)(ctx, params, emit)
	}

	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_bar", "ods_daily_bar", nil, flaky)}, nil)
	h.start(t)
	ctx := context.Background()

	exec, err := h.s.TriggerManual(ctx, models.SyncRequest{PluginName: "daily_bar"})
	require.NoError(t, err)
	failed := h.waitExecution(t, exec.ExecutionID, models.ExecutionStatusFailed)
	assert.True(t, failed.CanRetry)

	retried, err := h.s.RetryExecution(ctx, exec.ExecutionID, false)
	require.NoError(t, err)
	assert.Equal(t, exec.ExecutionID, retried.ExecutionID)

	final := h.waitExecution(t, exec.ExecutionID, models.ExecutionStatusCompleted)
	assert.False(t, final.CanRetry)
	assert.Empty(t, final.ErrorSummary)
	assert.Equal(t, 1, final.CompletedPlugins)
	assert.Equal(t, 0, final.FailedPlugins)

	tasks := h.subTasks(t, exec.ExecutionID)
	require.Len(t, tasks, 1)
	assert.Equal(t, models.SubTaskStatusCompleted, tasks[0].Status)
	assert.Equal(t, 2, tasks[0].RecordsProcessed)
	assert.Empty(t, tasks[0].ErrorMessage)
}

func TestRetryPartialKeepsCompletedWork(t *testing.T) {
	var failedOnce atomic.Bool
	flaky := func(ctx context.Context, params map[string]string, emit plugin.EmitFunc) error {
		if failedOnce.CompareAndSwap(false, true) {
			return errors.New("transient provider error")
		}
		return emitRows(1)(ctx, params, emit)
	}
	bar := testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(2))
	adj := testPlugin("adj_factor", "ods_adj_factor", []string{"daily_bar"}, flaky)
	groups := map[string]config.PluginGroupConfig{
		"market": {Plugins: []string{"daily_bar", "adj_factor"}},
	}

	h := newHarness(t, []*plugin.Plugin{bar, adj}, groups)
	h.start(t)
	ctx := context.Background()

	exec, err := h.s.TriggerGroup(ctx, "market", models.GroupTriggerRequest{})
	require.NoError(t, err)
	h.waitExecution(t, exec.ExecutionID, models.ExecutionStatusFailed)
	assert.Equal(t, 2, h.loader.loaded("ods_daily_bar"))

	_, err = h.s.RetryExecution(ctx, exec.ExecutionID, false)
	require.NoError(t, err)
	h.waitExecution(t, exec.ExecutionID, models.ExecutionStatusCompleted)

	// The completed dependency was not re-run.
	assert.Equal(t, 2, h.loader.loaded("ods_daily_bar"))
	assert.Equal(t, 1, h.loader.loaded("ods_adj_factor"))
}

func TestRetryFullCreatesNewExecution(t *testing.T) {
	var failedOnce atomic.Bool
	flaky := func(ctx context.Context, params map[string]string, emit plugin.EmitFunc) error {
		if failedOnce.CompareAndSwap(false, true) {
			return errors.New("transient provider error")
		}
		return emitRows(2)(ctx, params, emit)
	}

	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_bar", "ods_daily_bar", nil, flaky)}, nil)
	h.start(t)
	ctx := context.Background()

	exec, err := h.s.TriggerManual(ctx, models.SyncRequest{PluginName: "daily_bar"})
	require.NoError(t, err)
	h.waitExecution(t, exec.ExecutionID, models.ExecutionStatusFailed)

	clone, err := h.s.RetryExecution(ctx, exec.ExecutionID, true)
	require.NoError(t, err)
	assert.NotEqual(t, exec.ExecutionID, clone.ExecutionID)
	assert.Equal(t, models.TriggerTypeRetry, clone.TriggerType)

	h.waitExecution(t, clone.ExecutionID, models.ExecutionStatusCompleted)

	// The source execution keeps its failed outcome.
	src, err := h.stores.Executions.Get(ctx, exec.ExecutionID)
	require.NoError(t, err)
	assert.Equal(t, models.ExecutionStatusFailed, src.Status)

	tasks := h.subTasks(t, clone.ExecutionID)
	require.Len(t, tasks, 1)
	assert.Equal(t, "20260824", tasks[0].TradeDate())
}

func TestRetryValidation(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(1))}, nil)
	ctx := context.Background()

	_, err := h.s.RetryExecution(ctx, "anything", false)
	require.ErrorIs(t, err, ErrNotStarted)

	h.markStarted()

	_, err = h.s.RetryExecution(ctx, "no-such-execution", false)
	require.ErrorIs(t, err, store.ErrNotFound)

	// Still pending: nothing terminal to retry yet.
	exec, err := h.s.TriggerManual(ctx, models.SyncRequest{PluginName: "daily_bar"})
	require.NoError(t, err)
	_, err = h.s.RetryExecution(ctx, exec.ExecutionID, false)
	require.ErrorIs(t, err, ErrExecutionActive)
}

func TestRetryNothingToRetry(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(1))}, nil)
	h.start(t)
	ctx := context.Background()

	exec, err := h.s.TriggerManual(ctx, models.SyncRequest{PluginName: "daily_bar"})
	require.NoError(t, err)
	h.waitExecution(t, exec.ExecutionID, models.ExecutionStatusCompleted)

	_, err = h.s.RetryExecution(ctx, exec.ExecutionID, false)
	require.ErrorIs(t, err, ErrNothingToRetry)
}

func TestDeleteExecution(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(1))}, nil)
	h.start(t)
	ctx := context.Background()

	exec, err := h.s.TriggerManual(ctx, models.SyncRequest{PluginName: "daily_bar"})
	require.NoError(t, err)
	h.waitExecution(t, exec.ExecutionID, models.ExecutionStatusCompleted)

	require.NoError(t, h.s.DeleteExecution(ctx, exec.ExecutionID))

	_, err = h.stores.Executions.Get(ctx, exec.ExecutionID)
	require.ErrorIs(t, err, store.ErrNotFound)
	assert.Empty(t, h.subTasks(t, exec.ExecutionID))

	err = h.s.DeleteExecution(ctx, "no-such-execution")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteExecutionRefusedWhileActive(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(1))}, nil)
	h.markStarted()
	ctx := context.Background()

	exec, err := h.s.TriggerManual(ctx, models.SyncRequest{PluginName: "daily_bar"})
	require.NoError(t, err)

	err = h.s.DeleteExecution(ctx, exec.ExecutionID)
	require.ErrorIs(t, err, ErrExecutionActive)

	// The row is untouched.
	got, err := h.stores.Executions.Get(ctx, exec.ExecutionID)
	require.NoError(t, err)
	assert.Equal(t, models.ExecutionStatusPending, got.Status)
}

func TestListExecutions(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(1))}, nil)
	h.markStarted()
	ctx := context.Background()

	_, err := h.s.ListExecutions(ctx, models.ExecutionFilters{Status: "bogus"})
	require.ErrorIs(t, err, ErrInvalidRequest)
	_, err = h.s.ListExecutions(ctx, models.ExecutionFilters{TriggerType: "bogus"})
	require.ErrorIs(t, err, ErrInvalidRequest)

	exec, err := h.s.TriggerManual(ctx, models.SyncRequest{PluginName: "daily_bar"})
	require.NoError(t, err)

	resp, err := h.s.ListExecutions(ctx, models.ExecutionFilters{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalCount)
	assert.Equal(t, defaultListLimit, resp.Limit)
	require.Len(t, resp.Executions, 1)
	assert.Equal(t, exec.ExecutionID, resp.Executions[0].ExecutionID)

	resp, err = h.s.ListExecutions(ctx, models.ExecutionFilters{Status: models.ExecutionStatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalCount)
}

func TestRecoverInterruptedOnStart(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(1))}, nil)
	ctx := context.Background()

	stale := &models.BatchExecution{
		ExecutionID:  "stale-1",
		TriggerType:  models.TriggerTypeScheduled,
		Status:       models.ExecutionStatusRunning,
		TotalPlugins: 3,
		StartedAt:    testNow.Add(-2 * time.Hour),
	}
	require.NoError(t, h.stores.Executions.Create(ctx, stale))
	require.NoError(t, h.stores.SubTasks.CreateBatch(ctx, []*models.SubTask{
		{
			TaskID: "stale-1-t1", ExecutionID: "stale-1", PluginName: "daily_bar",
			TaskType: models.TaskTypeBackfill, Status: models.SubTaskStatusCompleted,
			RecordsProcessed: 7, CreatedAt: testNow.Add(-2 * time.Hour),
		},
		{
			TaskID: "stale-1-t2", ExecutionID: "stale-1", PluginName: "daily_bar",
			TaskType: models.TaskTypeBackfill, Status: models.SubTaskStatusRunning,
			CreatedAt: testNow.Add(-2*time.Hour + time.Microsecond),
		},
		{
			TaskID: "stale-1-t3", ExecutionID: "stale-1", PluginName: "daily_bar",
			TaskType: models.TaskTypeBackfill, Status: models.SubTaskStatusPending,
			CreatedAt: testNow.Add(-2*time.Hour + 2*time.Microsecond),
		},
	}))

	h.start(t)

	got, err := h.stores.Executions.Get(ctx, "stale-1")
	require.NoError(t, err)
	assert.Equal(t, models.ExecutionStatusInterrupted, got.Status)
	assert.True(t, got.CanRetry)
	assert.Equal(t, "interrupted by restart", got.ErrorSummary)
	assert.Equal(t, 1, got.CompletedPlugins)

	tasks := h.subTasks(t, "stale-1")
	require.Len(t, tasks, 3)
	assert.Equal(t, models.SubTaskStatusCompleted, tasks[0].Status)
	assert.Equal(t, 7, tasks[0].RecordsProcessed)
	for _, sub := range tasks[1:] {
		assert.Equal(t, models.SubTaskStatusCancelled, sub.Status)
		assert.Equal(t, "interrupted by restart", sub.ErrorMessage)
	}
}

func TestRetentionSweep(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(1))}, nil)
	ctx := context.Background()

	seed := func(id string, status models.ExecutionStatus, age time.Duration) {
		require.NoError(t, h.stores.Executions.Create(ctx, &models.BatchExecution{
			ExecutionID: id,
			TriggerType: models.TriggerTypeManual,
			Status:      status,
			StartedAt:   testNow.Add(-age),
		}))
		require.NoError(t, h.stores.SubTasks.CreateBatch(ctx, []*models.SubTask{{
			TaskID: id + "-t1", ExecutionID: id, PluginName: "daily_bar",
			TaskType: models.TaskTypeIncremental, Status: models.SubTaskStatusCompleted,
			CreatedAt: testNow.Add(-age),
		}}))
	}
	seed("old-done", models.ExecutionStatusCompleted, 40*24*time.Hour)
	seed("old-running", models.ExecutionStatusRunning, 40*24*time.Hour)
	seed("recent-done", models.ExecutionStatusCompleted, 5*24*time.Hour)

	h.s.sweepOnce(ctx)

	_, err := h.stores.Executions.Get(ctx, "old-done")
	require.ErrorIs(t, err, store.ErrNotFound)
	assert.Empty(t, h.subTasks(t, "old-done"))

	_, err = h.stores.Executions.Get(ctx, "old-running")
	assert.NoError(t, err)
	_, err = h.stores.Executions.Get(ctx, "recent-done")
	assert.NoError(t, err)
}
