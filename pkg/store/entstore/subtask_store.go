package entstore

import (
	"context"
	"fmt"

	"github.com/Yourdaylight/stock-datasource-sub001/ent"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/subtask"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// SubTaskStore is an Ent-backed implementation of store.SubTaskStore.
type SubTaskStore struct {
	client *ent.Client
}

// NewSubTaskStore creates a new sub-task store on the given client.
func NewSubTaskStore(client *ent.Client) *SubTaskStore {
	return &SubTaskStore{client: client}
}

// CreateBatch adds all sub-tasks of one decomposition. The bulk insert is a
// single statement, so a duplicate task_id fails the entire batch.
func (s *SubTaskStore) CreateBatch(_ context.Context, tasks []*models.SubTask) error {
	if len(tasks) == 0 {
		return nil
	}

	builders := make([]*ent.SubTaskCreate, 0, len(tasks))
	for _, t := range tasks {
		if t == nil || t.TaskID == "" || t.ExecutionID == "" {
			return store.ErrInvalidInput
		}
		create := s.client.SubTask.Create().
			SetID(t.TaskID).
			SetExecutionID(t.ExecutionID).
			SetPluginName(t.PluginName).
			SetTaskType(subtask.TaskType(t.TaskType)).
			SetStatus(subtask.Status(t.Status)).
			SetProgress(t.Progress).
			SetRecordsProcessed(t.RecordsProcessed).
			SetRecordsFailed(t.RecordsFailed).
			SetErrorMessage(t.ErrorMessage).
			SetCreatedAt(t.CreatedAt)
		if t.Parameters != nil {
			create.SetParameters(t.Parameters)
		}
		if t.StartedAt != nil {
			create.SetStartedAt(*t.StartedAt)
		}
		if t.CompletedAt != nil {
			create.SetCompletedAt(*t.CompletedAt)
		}
		builders = append(builders, create)
	}

	ctx, cancel := writeCtx()
	defer cancel()

	if err := s.client.SubTask.CreateBulk(builders...).Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return store.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create sub-tasks: %w", err)
	}
	return nil
}

// Get retrieves a sub-task by its ID. Returns ErrNotFound if not exists.
func (s *SubTaskStore) Get(ctx context.Context, taskID string) (*models.SubTask, error) {
	row, err := s.client.SubTask.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sub-task: %w", err)
	}
	return subTaskFromRow(row), nil
}

// Update persists a sub-task. Returns ErrNotFound if not exists.
func (s *SubTaskStore) Update(_ context.Context, task *models.SubTask) error {
	if task == nil || task.TaskID == "" {
		return store.ErrInvalidInput
	}

	ctx, cancel := writeCtx()
	defer cancel()

	update := s.client.SubTask.UpdateOneID(task.TaskID).
		SetPluginName(task.PluginName).
		SetTaskType(subtask.TaskType(task.TaskType)).
		SetStatus(subtask.Status(task.Status)).
		SetProgress(task.Progress).
		SetRecordsProcessed(task.RecordsProcessed).
		SetRecordsFailed(task.RecordsFailed).
		SetErrorMessage(task.ErrorMessage)
	if task.Parameters != nil {
		update.SetParameters(task.Parameters)
	} else {
		update.ClearParameters()
	}
	if task.StartedAt != nil {
		update.SetStartedAt(*task.StartedAt)
	} else {
		update.ClearStartedAt()
	}
	if task.CompletedAt != nil {
		update.SetCompletedAt(*task.CompletedAt)
	} else {
		update.ClearCompletedAt()
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return store.ErrNotFound
		}
		return fmt.Errorf("failed to update sub-task: %w", err)
	}
	return nil
}

// ListByExecution retrieves all sub-tasks of an execution, ordered by
// creation time then task ID.
func (s *SubTaskStore) ListByExecution(ctx context.Context, executionID string) ([]*models.SubTask, error) {
	rows, err := s.client.SubTask.Query().
		Where(subtask.ExecutionIDEQ(executionID)).
		Order(
			ent.Asc(subtask.FieldCreatedAt),
			ent.Asc(subtask.FieldID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sub-tasks: %w", err)
	}

	result := make([]*models.SubTask, 0, len(rows))
	for _, row := range rows {
		result = append(result, subTaskFromRow(row))
	}
	return result, nil
}

// DeleteByExecution removes every sub-task of an execution.
func (s *SubTaskStore) DeleteByExecution(_ context.Context, executionID string) (int, error) {
	ctx, cancel := writeCtx()
	defer cancel()

	n, err := s.client.SubTask.Delete().
		Where(subtask.ExecutionIDEQ(executionID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete sub-tasks: %w", err)
	}
	return n, nil
}

func subTaskFromRow(row *ent.SubTask) *models.SubTask {
	task := &models.SubTask{
		TaskID:           row.ID,
		ExecutionID:      row.ExecutionID,
		PluginName:       row.PluginName,
		TaskType:         models.TaskType(row.TaskType),
		Parameters:       row.Parameters,
		Status:           models.SubTaskStatus(row.Status),
		Progress:         row.Progress,
		RecordsProcessed: row.RecordsProcessed,
		RecordsFailed:    row.RecordsFailed,
		ErrorMessage:     row.ErrorMessage,
		CreatedAt:        row.CreatedAt,
	}
	if row.StartedAt != nil {
		t := *row.StartedAt
		task.StartedAt = &t
	}
	if row.CompletedAt != nil {
		t := *row.CompletedAt
		task.CompletedAt = &t
	}
	return task
}

// Verify interface compliance at compile time.
var _ store.SubTaskStore = (*SubTaskStore)(nil)
