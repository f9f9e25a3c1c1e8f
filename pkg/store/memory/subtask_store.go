package memory

import (
	"context"
	"maps"
	"sort"
	"sync"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// SubTaskStore is an in-memory implementation of store.SubTaskStore.
type SubTaskStore struct {
	mu   sync.RWMutex
	data map[string]*models.SubTask // keyed by task_id
}

// NewSubTaskStore creates a new in-memory sub-task store.
func NewSubTaskStore() *SubTaskStore {
	return &SubTaskStore{
		data: make(map[string]*models.SubTask),
	}
}

// CreateBatch adds all sub-tasks of one decomposition. Fails the entire
// batch with ErrAlreadyExists if any task_id exists.
func (s *SubTaskStore) CreateBatch(_ context.Context, tasks []*models.SubTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if t == nil || t.TaskID == "" || t.ExecutionID == "" {
			return store.ErrInvalidInput
		}
		if seen[t.TaskID] {
			return store.ErrAlreadyExists
		}
		if _, exists := s.data[t.TaskID]; exists {
			return store.ErrAlreadyExists
		}
		seen[t.TaskID] = true
	}

	for _, t := range tasks {
		s.data[t.TaskID] = cloneSubTask(t)
	}
	return nil
}

// Get retrieves a sub-task by its ID. Returns ErrNotFound if not exists.
func (s *SubTaskStore) Get(_ context.Context, taskID string) (*models.SubTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, exists := s.data[taskID]
	if !exists {
		return nil, store.ErrNotFound
	}
	return cloneSubTask(t), nil
}

// Update persists a sub-task. Returns ErrNotFound if not exists.
func (s *SubTaskStore) Update(_ context.Context, task *models.SubTask) error {
	if task == nil || task.TaskID == "" {
		return store.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[task.TaskID]; !exists {
		return store.ErrNotFound
	}
	s.data[task.TaskID] = cloneSubTask(task)
	return nil
}

// ListByExecution retrieves all sub-tasks of an execution, ordered by
// creation time then task ID.
func (s *SubTaskStore) ListByExecution(_ context.Context, executionID string) ([]*models.SubTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.SubTask
	for _, t := range s.data {
		if t.ExecutionID == executionID {
			result = append(result, cloneSubTask(t))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].TaskID < result[j].TaskID
	})
	return result, nil
}

// DeleteByExecution removes every sub-task of an execution.
func (s *SubTaskStore) DeleteByExecution(_ context.Context, executionID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, t := range s.data {
		if t.ExecutionID == executionID {
			delete(s.data, id)
			removed++
		}
	}
	return removed, nil
}

func cloneSubTask(t *models.SubTask) *models.SubTask {
	c := *t
	c.Parameters = maps.Clone(t.Parameters)
	if t.StartedAt != nil {
		v := *t.StartedAt
		c.StartedAt = &v
	}
	if t.CompletedAt != nil {
		v := *t.CompletedAt
		c.CompletedAt = &v
	}
	return &c
}

// Verify interface compliance at compile time.
var _ store.SubTaskStore = (*SubTaskStore)(nil)
