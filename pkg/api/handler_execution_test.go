package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
)

// seedExecution plants an execution row directly in the store, bypassing
// dispatch, so handler behavior on each lifecycle state can be probed.
func (h *harness) seedExecution(t *testing.T, id string, status models.ExecutionStatus, startedAt time.Time) *models.BatchExecution {
	t.Helper()
	exec := &models.BatchExecution{
		ExecutionID:  id,
		TriggerType:  models.TriggerTypeManual,
		DateRange:    []string{"20260820", "20260820"},
		Status:       status,
		TotalPlugins: 1,
		StartedAt:    startedAt,
	}
	require.NoError(t, h.stores.Executions.Create(context.Background(), exec))
	return exec
}

func (h *harness) seedSubTask(t *testing.T, taskID, executionID string, status models.SubTaskStatus) *models.SubTask {
	t.Helper()
	sub := &models.SubTask{
		TaskID:      taskID,
		ExecutionID: executionID,
		PluginName:  "daily_quote",
		TaskType:    models.TaskTypeBackfill,
		Parameters:  map[string]any{"trade_date": "20260820"},
		Status:      status,
		CreatedAt:   testNow,
	}
	require.NoError(t, h.stores.SubTasks.CreateBatch(context.Background(), []*models.SubTask{sub}))
	return sub
}

func TestExecutionsListEndpoint(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_quote", "ods_daily_quote", 2)}, nil)
	for i := 0; i < 3; i++ {
		h.seedExecution(t, fmt.Sprintf("exec-%d", i), models.ExecutionStatusCompleted,
			testNow.Add(time.Duration(i)*time.Minute))
	}
	h.seedExecution(t, "exec-failed", models.ExecutionStatusFailed, testNow.Add(time.Hour))

	t.Run("invalid status rejected", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodGet, "/api/datasource/executions?status=bogus", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
		assert.Contains(t, envelope.Message, "invalid status")
	})

	t.Run("invalid trigger_type rejected", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodGet, "/api/datasource/executions?trigger_type=webhook", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
	})

	t.Run("invalid limit rejected", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodGet, "/api/datasource/executions?limit=-1", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
	})

	t.Run("newest first with total count", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodGet, "/api/datasource/executions?limit=2", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 0, envelope.Code)

		page := dataAs[models.ExecutionListResponse](t, envelope)
		assert.Equal(t, 4, page.TotalCount)
		assert.Equal(t, 2, page.Limit)
		require.Len(t, page.Executions, 2)
		assert.Equal(t, "exec-failed", page.Executions[0].ExecutionID)
		assert.Equal(t, "exec-2", page.Executions[1].ExecutionID)
	})

	t.Run("status filter", func(t *testing.T) {
		_, envelope := h.do(t, http.MethodGet, "/api/datasource/executions?status=failed", nil)
		page := dataAs[models.ExecutionListResponse](t, envelope)
		require.Len(t, page.Executions, 1)
		assert.Equal(t, "exec-failed", page.Executions[0].ExecutionID)
	})
}

func TestExecutionDetailEndpoint(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_quote", "ods_daily_quote", 2)}, nil)

	t.Run("unknown id maps to not found", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodGet, "/api/datasource/executions/nope", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, codeNotFound, envelope.Code)
	})

	t.Run("detail includes sub-tasks", func(t *testing.T) {
		h.seedExecution(t, "exec-detail", models.ExecutionStatusFailed, testNow)
		h.seedSubTask(t, "task-detail", "exec-detail", models.SubTaskStatusFailed)

		rec, envelope := h.do(t, http.MethodGet, "/api/datasource/executions/exec-detail", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		detail := dataAs[models.ExecutionDetail](t, envelope)
		assert.Equal(t, "exec-detail", detail.ExecutionID)
		require.Len(t, detail.SubTasks, 1)
		assert.Equal(t, "task-detail", detail.SubTasks[0].TaskID)
	})
}

func TestStopExecutionEndpoint(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_quote", "ods_daily_quote", 2)}, nil)

	t.Run("unknown id maps to not found", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodPost, "/api/datasource/executions/nope/stop", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, codeNotFound, envelope.Code)
	})

	t.Run("stop on terminal execution rejected", func(t *testing.T) {
		h.seedExecution(t, "exec-done", models.ExecutionStatusCompleted, testNow)

		rec, envelope := h.do(t, http.MethodPost, "/api/datasource/executions/exec-done/stop", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
		assert.Contains(t, envelope.Message, "not active")
	})

	t.Run("stop on orphaned active row settles it", func(t *testing.T) {
		h.seedExecution(t, "exec-orphan", models.ExecutionStatusRunning, testNow)
		h.seedSubTask(t, "task-orphan", "exec-orphan", models.SubTaskStatusRunning)

		rec, envelope := h.do(t, http.MethodPost, "/api/datasource/executions/exec-orphan/stop", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 0, envelope.Code)
		assert.True(t, dataAs[Ack](t, envelope).OK)

		exec, err := h.stores.Executions.Get(context.Background(), "exec-orphan")
		require.NoError(t, err)
		assert.Equal(t, models.ExecutionStatusInterrupted, exec.Status)
	})
}

func TestRetryExecutionEndpoint(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_quote", "ods_daily_quote", 2)}, nil)

	t.Run("retry of active execution rejected", func(t *testing.T) {
		h.seedExecution(t, "exec-live", models.ExecutionStatusRunning, testNow)

		rec, envelope := h.do(t, http.MethodPost, "/api/datasource/executions/exec-live/retry", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
		assert.Contains(t, envelope.Message, "still active")
	})

	t.Run("nothing to retry rejected", func(t *testing.T) {
		h.seedExecution(t, "exec-clean", models.ExecutionStatusCompleted, testNow)
		h.seedSubTask(t, "task-clean", "exec-clean", models.SubTaskStatusCompleted)

		rec, envelope := h.do(t, http.MethodPost, "/api/datasource/executions/exec-clean/retry", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
		assert.Contains(t, envelope.Message, "no failed or cancelled")
	})

	t.Run("invalid full flag rejected", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodPost, "/api/datasource/executions/x/retry?full=maybe", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
	})

	t.Run("partial retry re-runs failed sub-tasks in place", func(t *testing.T) {
		h.seedExecution(t, "exec-retry", models.ExecutionStatusFailed, testNow)
		h.seedSubTask(t, "task-retry", "exec-retry", models.SubTaskStatusFailed)

		rec, envelope := h.do(t, http.MethodPost, "/api/datasource/executions/exec-retry/retry", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 0, envelope.Code, "message: %s", envelope.Message)
		assert.Equal(t, "exec-retry", dataAs[ExecutionRef](t, envelope).ExecutionID)

		require.Eventually(t, func() bool {
			exec, err := h.stores.Executions.Get(context.Background(), "exec-retry")
			require.NoError(t, err)
			return exec.Status == models.ExecutionStatusCompleted
		}, 5*time.Second, 20*time.Millisecond)

		sub, err := h.stores.SubTasks.Get(context.Background(), "task-retry")
		require.NoError(t, err)
		assert.Equal(t, models.SubTaskStatusCompleted, sub.Status)
		assert.Equal(t, 2, sub.RecordsProcessed)
	})

	t.Run("full retry clones into a fresh execution", func(t *testing.T) {
		h.seedExecution(t, "exec-src", models.ExecutionStatusStopped, testNow)
		h.seedSubTask(t, "task-src", "exec-src", models.SubTaskStatusCancelled)

		rec, envelope := h.do(t, http.MethodPost, "/api/datasource/executions/exec-src/retry?full=true", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 0, envelope.Code, "message: %s", envelope.Message)

		ref := dataAs[ExecutionRef](t, envelope)
		require.NotEmpty(t, ref.ExecutionID)
		assert.NotEqual(t, "exec-src", ref.ExecutionID)

		require.Eventually(t, func() bool {
			exec, err := h.stores.Executions.Get(context.Background(), ref.ExecutionID)
			require.NoError(t, err)
			return exec.Status == models.ExecutionStatusCompleted
		}, 5*time.Second, 20*time.Millisecond)

		exec, err := h.stores.Executions.Get(context.Background(), ref.ExecutionID)
		require.NoError(t, err)
		assert.Equal(t, models.TriggerTypeRetry, exec.TriggerType)
	})
}

func TestDeleteExecutionEndpoint(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_quote", "ods_daily_quote", 2)}, nil)

	t.Run("delete of active execution rejected", func(t *testing.T) {
		h.seedExecution(t, "exec-running", models.ExecutionStatusRunning, testNow)

		rec, envelope := h.do(t, http.MethodDelete, "/api/datasource/executions/exec-running", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
	})

	t.Run("delete prunes execution and sub-tasks", func(t *testing.T) {
		h.seedExecution(t, "exec-prune", models.ExecutionStatusFailed, testNow)
		h.seedSubTask(t, "task-prune", "exec-prune", models.SubTaskStatusFailed)

		rec, envelope := h.do(t, http.MethodDelete, "/api/datasource/executions/exec-prune", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, dataAs[Ack](t, envelope).OK)

		rec, envelope = h.do(t, http.MethodGet, "/api/datasource/executions/exec-prune", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, codeNotFound, envelope.Code)
	})
}
