package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// ExecutionStore is an in-memory implementation of store.ExecutionStore.
type ExecutionStore struct {
	mu   sync.RWMutex
	data map[string]*models.BatchExecution // keyed by execution_id
}

// NewExecutionStore creates a new in-memory execution store.
func NewExecutionStore() *ExecutionStore {
	return &ExecutionStore{
		data: make(map[string]*models.BatchExecution),
	}
}

// Create adds a new execution. Returns ErrAlreadyExists if execution_id exists.
func (s *ExecutionStore) Create(_ context.Context, exec *models.BatchExecution) error {
	if exec == nil || exec.ExecutionID == "" {
		return store.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[exec.ExecutionID]; exists {
		return store.ErrAlreadyExists
	}

	// Store a copy to prevent external mutation
	s.data[exec.ExecutionID] = cloneExecution(exec)
	return nil
}

// Get retrieves an execution by its ID. Returns ErrNotFound if not exists.
func (s *ExecutionStore) Get(_ context.Context, executionID string) (*models.BatchExecution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, exists := s.data[executionID]
	if !exists {
		return nil, store.ErrNotFound
	}
	return cloneExecution(e), nil
}

// Update persists an execution guarded by its Version. Returns
// ErrConcurrentModification when the stored version no longer matches.
func (s *ExecutionStore) Update(_ context.Context, exec *models.BatchExecution) error {
	if exec == nil || exec.ExecutionID == "" {
		return store.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.data[exec.ExecutionID]
	if !exists {
		return store.ErrNotFound
	}
	if current.Version != exec.Version {
		return store.ErrConcurrentModification
	}

	exec.Version++
	s.data[exec.ExecutionID] = cloneExecution(exec)
	return nil
}

// List retrieves executions newest first, narrowed by filters.
func (s *ExecutionStore) List(_ context.Context, filters models.ExecutionFilters) ([]*models.BatchExecution, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*models.BatchExecution
	for _, e := range s.data {
		if filters.Status != "" && e.Status != filters.Status {
			continue
		}
		if filters.TriggerType != "" && e.TriggerType != filters.TriggerType {
			continue
		}
		matched = append(matched, cloneExecution(e))
	}

	// Sort by started_at DESC
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].StartedAt.Equal(matched[j].StartedAt) {
			return matched[i].StartedAt.After(matched[j].StartedAt)
		}
		return matched[i].ExecutionID > matched[j].ExecutionID
	})

	total := len(matched)
	if filters.Offset > 0 {
		if filters.Offset >= len(matched) {
			return nil, total, nil
		}
		matched = matched[filters.Offset:]
	}
	if filters.Limit > 0 && filters.Limit < len(matched) {
		matched = matched[:filters.Limit]
	}
	return matched, total, nil
}

// ListByStatus retrieves every execution in one of the given states, oldest first.
func (s *ExecutionStore) ListByStatus(_ context.Context, statuses ...models.ExecutionStatus) ([]*models.BatchExecution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	want := make(map[models.ExecutionStatus]bool, len(statuses))
	for _, st := range statuses {
		want[st] = true
	}

	var result []*models.BatchExecution
	for _, e := range s.data {
		if want[e.Status] {
			result = append(result, cloneExecution(e))
		}
	}

	// Sort by started_at ASC
	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartedAt.Equal(result[j].StartedAt) {
			return result[i].StartedAt.Before(result[j].StartedAt)
		}
		return result[i].ExecutionID < result[j].ExecutionID
	})
	return result, nil
}

// Delete removes an execution by its ID. Returns ErrNotFound if not exists.
func (s *ExecutionStore) Delete(_ context.Context, executionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[executionID]; !exists {
		return store.ErrNotFound
	}
	delete(s.data, executionID)
	return nil
}

// DeleteBefore removes terminal executions started before cutoff.
func (s *ExecutionStore) DeleteBefore(_ context.Context, cutoff time.Time) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted []string
	for id, e := range s.data {
		if e.Status.IsTerminal() && e.StartedAt.Before(cutoff) {
			delete(s.data, id)
			deleted = append(deleted, id)
		}
	}
	sort.Strings(deleted)
	return deleted, nil
}

func cloneExecution(e *models.BatchExecution) *models.BatchExecution {
	c := *e
	c.DateRange = slices.Clone(e.DateRange)
	if e.CompletedAt != nil {
		t := *e.CompletedAt
		c.CompletedAt = &t
	}
	return &c
}

// Verify interface compliance at compile time.
var _ store.ExecutionStore = (*ExecutionStore)(nil)
