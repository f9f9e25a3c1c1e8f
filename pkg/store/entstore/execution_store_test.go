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

func testExecution(id string, startedAt time.Time) *models.BatchExecution {
	return &models.BatchExecution{
		ExecutionID:  id,
		TriggerType:  models.TriggerTypeManual,
		DateRange:    []string{"20260820", "20260821"},
		Status:       models.ExecutionStatusPending,
		TotalPlugins: 2,
		StartedAt:    startedAt,
	}
}

func TestExecutionStore_RoundTrip(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	started := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	exec := testExecution("exec-1", started)
	require.NoError(t, stores.Executions.Create(ctx, exec))

	err := stores.Executions.Create(ctx, testExecution("exec-1", started))
	assert.ErrorIs(t, err, store.ErrAlreadyExists)

	got, err := stores.Executions.Get(ctx, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, models.TriggerTypeManual, got.TriggerType)
	assert.Equal(t, []string{"20260820", "20260821"}, got.DateRange)
	assert.Equal(t, models.ExecutionStatusPending, got.Status)
	assert.WithinDuration(t, started, got.StartedAt, time.Second)
	assert.Nil(t, got.CompletedAt)

	// Completing writes the nullable timestamp.
	done := started.Add(10 * time.Minute)
	got.Status = models.ExecutionStatusCompleted
	got.CompletedPlugins = 2
	got.CompletedAt = &done
	require.NoError(t, stores.Executions.Update(ctx, got))

	finished, err := stores.Executions.Get(ctx, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, models.ExecutionStatusCompleted, finished.Status)
	require.NotNil(t, finished.CompletedAt)
	assert.WithinDuration(t, done, *finished.CompletedAt, time.Second)

	_, err = stores.Executions.Get(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestExecutionStore_UpdateVersionGuard(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	started := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	require.NoError(t, stores.Executions.Create(ctx, testExecution("exec-1", started)))

	first, err := stores.Executions.Get(ctx, "exec-1")
	require.NoError(t, err)
	second, err := stores.Executions.Get(ctx, "exec-1")
	require.NoError(t, err)

	first.Status = models.ExecutionStatusRunning
	require.NoError(t, stores.Executions.Update(ctx, first))

	// The second reader still holds the old version.
	second.Status = models.ExecutionStatusFailed
	err = stores.Executions.Update(ctx, second)
	assert.ErrorIs(t, err, store.ErrConcurrentModification)

	// The winner's version advanced with the update, so it can keep going.
	first.CompletedPlugins = 2
	require.NoError(t, stores.Executions.Update(ctx, first))

	got, err := stores.Executions.Get(ctx, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, models.ExecutionStatusRunning, got.Status)
	assert.Equal(t, 2, got.CompletedPlugins)
}

func TestExecutionStore_UpdateMissing(t *testing.T) {
	stores := newTestStores(t)

	err := stores.Executions.Update(context.Background(), testExecution("missing", time.Now()))
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestExecutionStore_ListFiltersAndPages(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	for i, tt := range []struct {
		id      string
		trigger models.TriggerType
		status  models.ExecutionStatus
	}{
		{"exec-1", models.TriggerTypeManual, models.ExecutionStatusCompleted},
		{"exec-2", models.TriggerTypeScheduled, models.ExecutionStatusCompleted},
		{"exec-3", models.TriggerTypeManual, models.ExecutionStatusFailed},
		{"exec-4", models.TriggerTypeScheduled, models.ExecutionStatusRunning},
	} {
		e := testExecution(tt.id, base.Add(time.Duration(i)*time.Minute))
		e.TriggerType = tt.trigger
		e.Status = tt.status
		require.NoError(t, stores.Executions.Create(ctx, e))
	}

	all, total, err := stores.Executions.List(ctx, models.ExecutionFilters{})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, all, 4)
	assert.Equal(t, "exec-4", all[0].ExecutionID, "newest first")
	assert.Equal(t, "exec-1", all[3].ExecutionID)

	completed, total, err := stores.Executions.List(ctx, models.ExecutionFilters{Status: models.ExecutionStatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, completed, 2)

	manual, total, err := stores.Executions.List(ctx, models.ExecutionFilters{TriggerType: models.TriggerTypeManual, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, total, "total counts matches before paging")
	require.Len(t, manual, 1)
	assert.Equal(t, "exec-3", manual[0].ExecutionID)

	page, total, err := stores.Executions.List(ctx, models.ExecutionFilters{Limit: 2, Offset: 3})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, page, 1)
	assert.Equal(t, "exec-1", page[0].ExecutionID)
}

func TestExecutionStore_ListByStatus(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	running := testExecution("exec-b", base.Add(time.Minute))
	running.Status = models.ExecutionStatusRunning
	stopping := testExecution("exec-a", base)
	stopping.Status = models.ExecutionStatusStopping
	done := testExecution("exec-c", base.Add(2*time.Minute))
	done.Status = models.ExecutionStatusCompleted

	for _, e := range []*models.BatchExecution{running, stopping, done} {
		require.NoError(t, stores.Executions.Create(ctx, e))
	}

	got, err := stores.Executions.ListByStatus(ctx, models.ExecutionStatusRunning, models.ExecutionStatusStopping)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "exec-a", got[0].ExecutionID, "oldest first")
	assert.Equal(t, "exec-b", got[1].ExecutionID)
}

func TestExecutionStore_DeleteCascadesSubTasks(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	require.NoError(t, stores.Executions.Create(ctx, testExecution("exec-1", now)))
	require.NoError(t, stores.SubTasks.CreateBatch(ctx, []*models.SubTask{
		testSubTask("task-1", "exec-1", now),
		testSubTask("task-2", "exec-1", now.Add(time.Second)),
	}))

	require.NoError(t, stores.Executions.Delete(ctx, "exec-1"))

	_, err := stores.SubTasks.Get(ctx, "task-1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	tasks, err := stores.SubTasks.ListByExecution(ctx, "exec-1")
	require.NoError(t, err)
	assert.Empty(t, tasks)

	err = stores.Executions.Delete(ctx, "exec-1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestExecutionStore_DeleteBefore(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	cutoff := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	oldDone := testExecution("exec-old-done", cutoff.AddDate(0, 0, -40))
	oldDone.Status = models.ExecutionStatusCompleted
	oldFailed := testExecution("exec-old-failed", cutoff.AddDate(0, 0, -35))
	oldFailed.Status = models.ExecutionStatusFailed
	oldRunning := testExecution("exec-old-running", cutoff.AddDate(0, 0, -40))
	oldRunning.Status = models.ExecutionStatusRunning
	recent := testExecution("exec-recent", cutoff.AddDate(0, 0, 5))
	recent.Status = models.ExecutionStatusFailed

	for _, e := range []*models.BatchExecution{oldDone, oldFailed, oldRunning, recent} {
		require.NoError(t, stores.Executions.Create(ctx, e))
	}

	deleted, err := stores.Executions.DeleteBefore(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, []string{"exec-old-done", "exec-old-failed"}, deleted)

	// Non-terminal executions survive regardless of age.
	_, err = stores.Executions.Get(ctx, "exec-old-running")
	assert.NoError(t, err)
	_, err = stores.Executions.Get(ctx, "exec-recent")
	assert.NoError(t, err)
	_, err = stores.Executions.Get(ctx, "exec-old-done")
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Nothing left to sweep.
	deleted, err = stores.Executions.DeleteBefore(ctx, cutoff)
	require.NoError(t, err)
	assert.Empty(t, deleted)
}
