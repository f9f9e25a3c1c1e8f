package entstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

func testSubTask(taskID, executionID string, createdAt time.Time) *models.SubTask {
	return &models.SubTask{
		TaskID:      taskID,
		ExecutionID: executionID,
		PluginName:  "daily_quote",
		TaskType:    models.TaskTypeIncremental,
		Parameters:  map[string]any{"trade_date": "20260820"},
		Status:      models.SubTaskStatusPending,
		CreatedAt:   createdAt,
	}
}

func TestSubTaskStore_CreateBatchAndList(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	require.NoError(t, stores.Executions.Create(ctx, testExecution("exec-1", now)))
	require.NoError(t, stores.SubTasks.CreateBatch(ctx, []*models.SubTask{
		testSubTask("task-b", "exec-1", now.Add(time.Second)),
		testSubTask("task-a", "exec-1", now),
		testSubTask("task-c", "exec-1", now.Add(2*time.Second)),
	}))

	tasks, err := stores.SubTasks.ListByExecution(ctx, "exec-1")
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "task-a", tasks[0].TaskID, "creation order")
	assert.Equal(t, "task-c", tasks[2].TaskID)

	got, err := stores.SubTasks.Get(ctx, "task-a")
	require.NoError(t, err)
	assert.Equal(t, "daily_quote", got.PluginName)
	assert.Equal(t, models.TaskTypeIncremental, got.TaskType)
	assert.Equal(t, "20260820", got.TradeDate())
	assert.Nil(t, got.StartedAt)
}

func TestSubTaskStore_CreateBatchIsAtomic(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	require.NoError(t, stores.Executions.Create(ctx, testExecution("exec-1", now)))
	require.NoError(t, stores.SubTasks.CreateBatch(ctx, []*models.SubTask{
		testSubTask("task-1", "exec-1", now),
	}))

	// One duplicate poisons the whole batch; the fresh task must not land.
	err := stores.SubTasks.CreateBatch(ctx, []*models.SubTask{
		testSubTask("task-2", "exec-1", now),
		testSubTask("task-1", "exec-1", now),
	})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = stores.SubTasks.Get(ctx, "task-2")
	assert.ErrorIs(t, err, store.ErrNotFound)

	tasks, err := stores.SubTasks.ListByExecution(ctx, "exec-1")
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestSubTaskStore_UpdateLifecycle(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	require.NoError(t, stores.Executions.Create(ctx, testExecution("exec-1", now)))
	require.NoError(t, stores.SubTasks.CreateBatch(ctx, []*models.SubTask{
		testSubTask("task-1", "exec-1", now),
	}))

	task, err := stores.SubTasks.Get(ctx, "task-1")
	require.NoError(t, err)

	started := now.Add(time.Minute)
	task.Status = models.SubTaskStatusRunning
	task.StartedAt = &started
	task.Progress = 40
	require.NoError(t, stores.SubTasks.Update(ctx, task))

	completed := now.Add(5 * time.Minute)
	task.Status = models.SubTaskStatusCompleted
	task.Progress = 100
	task.RecordsProcessed = 5123
	task.CompletedAt = &completed
	require.NoError(t, stores.SubTasks.Update(ctx, task))

	got, err := stores.SubTasks.Get(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, models.SubTaskStatusCompleted, got.Status)
	assert.Equal(t, 100, got.Progress)
	assert.Equal(t, 5123, got.RecordsProcessed)
	require.NotNil(t, got.StartedAt)
	require.NotNil(t, got.CompletedAt)
	assert.WithinDuration(t, completed, *got.CompletedAt, time.Second)
	assert.False(t, got.NoData())

	err = stores.SubTasks.Update(ctx, testSubTask("missing", "exec-1", now))
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSubTaskStore_DeleteByExecution(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	require.NoError(t, stores.Executions.Create(ctx, testExecution("exec-1", now)))
	require.NoError(t, stores.Executions.Create(ctx, testExecution("exec-2", now.Add(time.Minute))))
	require.NoError(t, stores.SubTasks.CreateBatch(ctx, []*models.SubTask{
		testSubTask("task-1", "exec-1", now),
		testSubTask("task-2", "exec-1", now),
		testSubTask("task-3", "exec-2", now),
	}))

	n, err := stores.SubTasks.DeleteByExecution(ctx, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// The other execution's tasks are untouched.
	tasks, err := stores.SubTasks.ListByExecution(ctx, "exec-2")
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	n, err = stores.SubTasks.DeleteByExecution(ctx, "exec-1")
	require.NoError(t, err)
	assert.Zero(t, n)
}
