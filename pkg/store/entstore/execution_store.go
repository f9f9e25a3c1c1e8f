package entstore

import (
	"context"
	"fmt"
	"time"

	"github.com/Yourdaylight/stock-datasource-sub001/ent"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/batchexecution"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// ExecutionStore is an Ent-backed implementation of store.ExecutionStore.
type ExecutionStore struct {
	client *ent.Client
}

// NewExecutionStore creates a new execution store on the given client.
func NewExecutionStore(client *ent.Client) *ExecutionStore {
	return &ExecutionStore{client: client}
}

// Create adds a new execution. Returns ErrAlreadyExists if execution_id exists.
func (s *ExecutionStore) Create(_ context.Context, exec *models.BatchExecution) error {
	if exec == nil || exec.ExecutionID == "" {
		return store.ErrInvalidInput
	}

	ctx, cancel := writeCtx()
	defer cancel()

	create := s.client.BatchExecution.Create().
		SetID(exec.ExecutionID).
		SetTriggerType(batchexecution.TriggerType(exec.TriggerType)).
		SetGroupName(exec.GroupName).
		SetStatus(batchexecution.Status(exec.Status)).
		SetTotalPlugins(exec.TotalPlugins).
		SetCompletedPlugins(exec.CompletedPlugins).
		SetFailedPlugins(exec.FailedPlugins).
		SetErrorSummary(exec.ErrorSummary).
		SetCanRetry(exec.CanRetry).
		SetStartedAt(exec.StartedAt).
		SetVersion(exec.Version)
	if exec.DateRange != nil {
		create.SetDateRange(exec.DateRange)
	}
	if exec.CompletedAt != nil {
		create.SetCompletedAt(*exec.CompletedAt)
	}

	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return store.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create execution: %w", err)
	}
	return nil
}

// Get retrieves an execution by its ID. Returns ErrNotFound if not exists.
func (s *ExecutionStore) Get(ctx context.Context, executionID string) (*models.BatchExecution, error) {
	row, err := s.client.BatchExecution.Get(ctx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}
	return executionFromRow(row), nil
}

// Update persists an execution guarded by its Version. The row is only
// written when the stored version still matches; zero affected rows then
// means either a concurrent writer won or the row is gone.
func (s *ExecutionStore) Update(_ context.Context, exec *models.BatchExecution) error {
	if exec == nil || exec.ExecutionID == "" {
		return store.ErrInvalidInput
	}

	ctx, cancel := writeCtx()
	defer cancel()

	update := s.client.BatchExecution.Update().
		Where(
			batchexecution.IDEQ(exec.ExecutionID),
			batchexecution.VersionEQ(exec.Version),
		).
		SetTriggerType(batchexecution.TriggerType(exec.TriggerType)).
		SetGroupName(exec.GroupName).
		SetStatus(batchexecution.Status(exec.Status)).
		SetTotalPlugins(exec.TotalPlugins).
		SetCompletedPlugins(exec.CompletedPlugins).
		SetFailedPlugins(exec.FailedPlugins).
		SetErrorSummary(exec.ErrorSummary).
		SetCanRetry(exec.CanRetry).
		SetStartedAt(exec.StartedAt).
		SetVersion(exec.Version + 1)
	if exec.DateRange != nil {
		update.SetDateRange(exec.DateRange)
	} else {
		update.ClearDateRange()
	}
	if exec.CompletedAt != nil {
		update.SetCompletedAt(*exec.CompletedAt)
	} else {
		update.ClearCompletedAt()
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update execution: %w", err)
	}
	if n == 0 {
		exists, err := s.client.BatchExecution.Query().
			Where(batchexecution.IDEQ(exec.ExecutionID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check execution: %w", err)
		}
		if !exists {
			return store.ErrNotFound
		}
		return store.ErrConcurrentModification
	}

	exec.Version++
	return nil
}

// List retrieves executions newest first, narrowed by filters.
func (s *ExecutionStore) List(ctx context.Context, filters models.ExecutionFilters) ([]*models.BatchExecution, int, error) {
	query := s.client.BatchExecution.Query()
	if filters.Status != "" {
		query = query.Where(batchexecution.StatusEQ(batchexecution.Status(filters.Status)))
	}
	if filters.TriggerType != "" {
		query = query.Where(batchexecution.TriggerTypeEQ(batchexecution.TriggerType(filters.TriggerType)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count executions: %w", err)
	}

	query = query.Order(
		ent.Desc(batchexecution.FieldStartedAt),
		ent.Desc(batchexecution.FieldID),
	)
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list executions: %w", err)
	}

	result := make([]*models.BatchExecution, 0, len(rows))
	for _, row := range rows {
		result = append(result, executionFromRow(row))
	}
	return result, total, nil
}

// ListByStatus retrieves every execution in one of the given states, oldest first.
func (s *ExecutionStore) ListByStatus(ctx context.Context, statuses ...models.ExecutionStatus) ([]*models.BatchExecution, error) {
	want := make([]batchexecution.Status, 0, len(statuses))
	for _, st := range statuses {
		want = append(want, batchexecution.Status(st))
	}

	rows, err := s.client.BatchExecution.Query().
		Where(batchexecution.StatusIn(want...)).
		Order(
			ent.Asc(batchexecution.FieldStartedAt),
			ent.Asc(batchexecution.FieldID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions by status: %w", err)
	}

	result := make([]*models.BatchExecution, 0, len(rows))
	for _, row := range rows {
		result = append(result, executionFromRow(row))
	}
	return result, nil
}

// Delete removes an execution by its ID. Returns ErrNotFound if not exists.
func (s *ExecutionStore) Delete(_ context.Context, executionID string) error {
	ctx, cancel := writeCtx()
	defer cancel()

	err := s.client.BatchExecution.DeleteOneID(executionID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return store.ErrNotFound
		}
		return fmt.Errorf("failed to delete execution: %w", err)
	}
	return nil
}

// DeleteBefore removes terminal executions started before cutoff and returns
// their IDs so callers can cascade sub-task deletion.
func (s *ExecutionStore) DeleteBefore(_ context.Context, cutoff time.Time) ([]string, error) {
	ctx, cancel := writeCtx()
	defer cancel()

	terminal := []batchexecution.Status{
		batchexecution.StatusCompleted,
		batchexecution.StatusFailed,
		batchexecution.StatusStopped,
		batchexecution.StatusSkipped,
		batchexecution.StatusInterrupted,
	}

	ids, err := s.client.BatchExecution.Query().
		Where(
			batchexecution.StatusIn(terminal...),
			batchexecution.StartedAtLT(cutoff),
		).
		Order(ent.Asc(batchexecution.FieldID)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to select expired executions: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	_, err = s.client.BatchExecution.Delete().
		Where(batchexecution.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to delete expired executions: %w", err)
	}
	return ids, nil
}

func executionFromRow(row *ent.BatchExecution) *models.BatchExecution {
	exec := &models.BatchExecution{
		ExecutionID:      row.ID,
		TriggerType:      models.TriggerType(row.TriggerType),
		GroupName:        row.GroupName,
		DateRange:        row.DateRange,
		Status:           models.ExecutionStatus(row.Status),
		TotalPlugins:     row.TotalPlugins,
		CompletedPlugins: row.CompletedPlugins,
		FailedPlugins:    row.FailedPlugins,
		ErrorSummary:     row.ErrorSummary,
		CanRetry:         row.CanRetry,
		StartedAt:        row.StartedAt,
		Version:          row.Version,
	}
	if row.CompletedAt != nil {
		t := *row.CompletedAt
		exec.CompletedAt = &t
	}
	return exec
}

// Verify interface compliance at compile time.
var _ store.ExecutionStore = (*ExecutionStore)(nil)
