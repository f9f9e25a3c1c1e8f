package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// EliminationStore is an in-memory implementation of store.EliminationStore.
type EliminationStore struct {
	mu     sync.RWMutex
	data   []*models.EliminationEvent
	nextID int64
}

// NewEliminationStore creates a new in-memory elimination event store.
func NewEliminationStore() *EliminationStore {
	return &EliminationStore{nextID: 1}
}

// Append stores an elimination event and assigns its ID.
func (s *EliminationStore) Append(_ context.Context, event *models.EliminationEvent) error {
	if event == nil || event.ArenaID == "" || event.StrategyID == "" {
		return store.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := *event
	c.ID = s.nextID
	s.nextID++
	event.ID = c.ID
	s.data = append(s.data, &c)
	return nil
}

// ListByArena retrieves all eliminations of an arena, oldest first.
func (s *EliminationStore) ListByArena(_ context.Context, arenaID string) ([]*models.EliminationEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.EliminationEvent
	for _, e := range s.data {
		if e.ArenaID == arenaID {
			c := *e
			result = append(result, &c)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Timestamp.Equal(result[j].Timestamp) {
			return result[i].Timestamp.Before(result[j].Timestamp)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Verify interface compliance at compile time.
var _ store.EliminationStore = (*EliminationStore)(nil)
