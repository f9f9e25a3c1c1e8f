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

func TestExecutionStore_CreateAndGet(t *testing.T) {
	s := NewExecutionStore()
	ctx := context.Background()
	started := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	exec := testExecution("exec-1", started)
	require.NoError(t, s.Create(ctx, exec))

	got, err := s.Get(ctx, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, "exec-1", got.ExecutionID)
	assert.Equal(t, models.TriggerTypeManual, got.TriggerType)
	assert.Equal(t, []string{"20260820", "20260821"}, got.DateRange)

	// Mutating the returned copy must not leak into the store.
	got.DateRange[0] = "19990101"
	got.Status = models.ExecutionStatusFailed

	fresh, err := s.Get(ctx, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, "20260820", fresh.DateRange[0])
	assert.Equal(t, models.ExecutionStatusPending, fresh.Status)
}

func TestExecutionStore_CreateDuplicate(t *testing.T) {
	s := NewExecutionStore()
	ctx := context.Background()
	started := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.Create(ctx, testExecution("exec-1", started)))
	err := s.Create(ctx, testExecution("exec-1", started))
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestExecutionStore_GetNotFound(t *testing.T) {
	s := NewExecutionStore()

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestExecutionStore_UpdateVersionGuard(t *testing.T) {
	s := NewExecutionStore()
	ctx := context.Background()
	started := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.Create(ctx, testExecution("exec-1", started)))

	first, err := s.Get(ctx, "exec-1")
	require.NoError(t, err)
	second, err := s.Get(ctx, "exec-1")
	require.NoError(t, err)

	first.Status = models.ExecutionStatusRunning
	require.NoError(t, s.Update(ctx, first))

	// The second reader still holds the old version.
	second.Status = models.ExecutionStatusFailed
	err = s.Update(ctx, second)
	assert.ErrorIs(t, err, store.ErrConcurrentModification)

	// The winner's version advanced with the update, so it can keep going.
	first.CompletedPlugins = 2
	require.NoError(t, s.Update(ctx, first))

	got, err := s.Get(ctx, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, models.ExecutionStatusRunning, got.Status)
	assert.Equal(t, 2, got.CompletedPlugins)
}

func TestExecutionStore_ListFiltersAndPages(t *testing.T) {
	s := NewExecutionStore()
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
		require.NoError(t, s.Create(ctx, e))
	}

	all, total, err := s.List(ctx, models.ExecutionFilters{})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, all, 4)
	assert.Equal(t, "exec-4", all[0].ExecutionID, "newest first")
	assert.Equal(t, "exec-1", all[3].ExecutionID)

	completed, total, err := s.List(ctx, models.ExecutionFilters{Status: models.ExecutionStatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, completed, 2)

	manual, total, err := s.List(ctx, models.ExecutionFilters{TriggerType: models.TriggerTypeManual, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, total, "total counts matches before paging")
	require.Len(t, manual, 1)
	assert.Equal(t, "exec-3", manual[0].ExecutionID)

	page, total, err := s.List(ctx, models.ExecutionFilters{Limit: 2, Offset: 3})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, page, 1)
	assert.Equal(t, "exec-1", page[0].ExecutionID)

	empty, _, err := s.List(ctx, models.ExecutionFilters{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestExecutionStore_ListByStatus(t *testing.T) {
	s := NewExecutionStore()
	ctx := context.Background()
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	running := testExecution("exec-b", base.Add(time.Minute))
	running.Status = models.ExecutionStatusRunning
	stopping := testExecution("exec-a", base)
	stopping.Status = models.ExecutionStatusStopping
	done := testExecution("exec-c", base.Add(2*time.Minute))
	done.Status = models.ExecutionStatusCompleted

	for _, e := range []*models.BatchExecution{running, stopping, done} {
		require.NoError(t, s.Create(ctx, e))
	}

	got, err := s.ListByStatus(ctx, models.ExecutionStatusRunning, models.ExecutionStatusStopping)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "exec-a", got[0].ExecutionID, "oldest first")
	assert.Equal(t, "exec-b", got[1].ExecutionID)
}

func TestExecutionStore_DeleteNotFound(t *testing.T) {
	s := NewExecutionStore()

	err := s.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestExecutionStore_DeleteBefore(t *testing.T) {
	s := NewExecutionStore()
	ctx := context.Background()
	cutoff := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	oldDone := testExecution("exec-old-done", cutoff.AddDate(0, 0, -40))
	oldDone.Status = models.ExecutionStatusCompleted
	oldRunning := testExecution("exec-old-running", cutoff.AddDate(0, 0, -40))
	oldRunning.Status = models.ExecutionStatusRunning
	recent := testExecution("exec-recent", cutoff.AddDate(0, 0, 5))
	recent.Status = models.ExecutionStatusFailed

	for _, e := range []*models.BatchExecution{oldDone, oldRunning, recent} {
		require.NoError(t, s.Create(ctx, e))
	}

	deleted, err := s.DeleteBefore(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, []string{"exec-old-done"}, deleted)

	// Non-terminal executions survive regardless of age.
	_, err = s.Get(ctx, "exec-old-running")
	assert.NoError(t, err)
	_, err = s.Get(ctx, "exec-recent")
	assert.NoError(t, err)
	_, err = s.Get(ctx, "exec-old-done")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
