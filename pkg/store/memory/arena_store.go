package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// ArenaStore is an in-memory implementation of store.ArenaStore.
type ArenaStore struct {
	mu   sync.RWMutex
	data map[string]*models.Arena // keyed by arena_id
}

// NewArenaStore creates a new in-memory arena store.
func NewArenaStore() *ArenaStore {
	return &ArenaStore{
		data: make(map[string]*models.Arena),
	}
}

// Create adds a new arena. Returns ErrAlreadyExists if arena_id exists.
func (s *ArenaStore) Create(_ context.Context, arena *models.Arena) error {
	if arena == nil || arena.ArenaID == "" {
		return store.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[arena.ArenaID]; exists {
		return store.ErrAlreadyExists
	}
	s.data[arena.ArenaID] = cloneArena(arena)
	return nil
}

// Get retrieves an arena by its ID. Returns ErrNotFound if not exists.
func (s *ArenaStore) Get(_ context.Context, arenaID string) (*models.Arena, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, exists := s.data[arenaID]
	if !exists {
		return nil, store.ErrNotFound
	}
	return cloneArena(a), nil
}

// Update persists an arena. Returns ErrNotFound if not exists.
func (s *ArenaStore) Update(_ context.Context, arena *models.Arena) error {
	if arena == nil || arena.ArenaID == "" {
		return store.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[arena.ArenaID]; !exists {
		return store.ErrNotFound
	}
	s.data[arena.ArenaID] = cloneArena(arena)
	return nil
}

// List retrieves all arenas newest first.
func (s *ArenaStore) List(_ context.Context) ([]*models.Arena, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Arena, 0, len(s.data))
	for _, a := range s.data {
		result = append(result, cloneArena(a))
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ArenaID > result[j].ArenaID
	})
	return result, nil
}

// Delete removes an arena by its ID. Returns ErrNotFound if not exists.
func (s *ArenaStore) Delete(_ context.Context, arenaID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[arenaID]; !exists {
		return store.ErrNotFound
	}
	delete(s.data, arenaID)
	return nil
}

func cloneArena(a *models.Arena) *models.Arena {
	c := *a
	c.Config.Symbols = slices.Clone(a.Config.Symbols)
	return &c
}

// Verify interface compliance at compile time.
var _ store.ArenaStore = (*ArenaStore)(nil)
