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

func testSubTask(taskID, execID, tradeDate string, createdAt time.Time) *models.SubTask {
	return &models.SubTask{
		TaskID:      taskID,
		ExecutionID: execID,
		PluginName:  "daily_bar",
		TaskType:    models.TaskTypeIncremental,
		Parameters:  map[string]any{"trade_date": tradeDate},
		Status:      models.SubTaskStatusPending,
		CreatedAt:   createdAt,
	}
}

func TestSubTaskStore_CreateBatchAndList(t *testing.T) {
	s := NewSubTaskStore()
	ctx := context.Background()
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	tasks := []*models.SubTask{
		testSubTask("task-2", "exec-1", "20260821", base.Add(time.Second)),
		testSubTask("task-1", "exec-1", "20260820", base),
		testSubTask("task-3", "exec-2", "20260820", base),
	}
	require.NoError(t, s.CreateBatch(ctx, tasks))

	got, err := s.ListByExecution(ctx, "exec-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "task-1", got[0].TaskID, "creation order")
	assert.Equal(t, "task-2", got[1].TaskID)
	assert.Equal(t, "20260820", got[0].TradeDate())
}

func TestSubTaskStore_CreateBatchFailsAtomically(t *testing.T) {
	s := NewSubTaskStore()
	ctx := context.Background()
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.CreateBatch(ctx, []*models.SubTask{
		testSubTask("task-1", "exec-1", "20260820", base),
	}))

	err := s.CreateBatch(ctx, []*models.SubTask{
		testSubTask("task-2", "exec-1", "20260821", base),
		testSubTask("task-1", "exec-1", "20260820", base),
	})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)

	// Nothing from the failed batch was stored.
	_, err = s.Get(ctx, "task-2")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSubTaskStore_UpdateAndCopySemantics(t *testing.T) {
	s := NewSubTaskStore()
	ctx := context.Background()
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	task := testSubTask("task-1", "exec-1", "20260820", base)
	require.NoError(t, s.CreateBatch(ctx, []*models.SubTask{task}))

	// Mutating the caller's parameters after insert must not leak in.
	task.Parameters["trade_date"] = "19990101"

	got, err := s.Get(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, "20260820", got.TradeDate())

	got.Status = models.SubTaskStatusCompleted
	got.Progress = 100
	got.RecordsProcessed = 4200
	require.NoError(t, s.Update(ctx, got))

	fresh, err := s.Get(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, models.SubTaskStatusCompleted, fresh.Status)
	assert.Equal(t, 4200, fresh.RecordsProcessed)
}

func TestSubTaskStore_UpdateNotFound(t *testing.T) {
	s := NewSubTaskStore()
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	err := s.Update(context.Background(), testSubTask("missing", "exec-1", "20260820", base))
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSubTaskStore_DeleteByExecution(t *testing.T) {
	s := NewSubTaskStore()
	ctx := context.Background()
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.CreateBatch(ctx, []*models.SubTask{
		testSubTask("task-1", "exec-1", "20260820", base),
		testSubTask("task-2", "exec-1", "20260821", base),
		testSubTask("task-3", "exec-2", "20260820", base),
	}))

	removed, err := s.DeleteByExecution(ctx, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	left, err := s.ListByExecution(ctx, "exec-2")
	require.NoError(t, err)
	assert.Len(t, left, 1)
}
