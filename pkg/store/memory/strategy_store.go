package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// StrategyStore is an in-memory implementation of store.StrategyStore.
type StrategyStore struct {
	mu   sync.RWMutex
	data map[string]*models.Strategy // keyed by strategy_id
}

// NewStrategyStore creates a new in-memory strategy store.
func NewStrategyStore() *StrategyStore {
	return &StrategyStore{
		data: make(map[string]*models.Strategy),
	}
}

// Create adds a new strategy. Returns ErrAlreadyExists if strategy_id exists.
func (s *StrategyStore) Create(_ context.Context, strategy *models.Strategy) error {
	if strategy == nil || strategy.StrategyID == "" || strategy.ArenaID == "" {
		return store.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[strategy.StrategyID]; exists {
		return store.ErrAlreadyExists
	}
	c := *strategy
	s.data[strategy.StrategyID] = &c
	return nil
}

// Get retrieves a strategy by its ID. Returns ErrNotFound if not exists.
func (s *StrategyStore) Get(_ context.Context, strategyID string) (*models.Strategy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, exists := s.data[strategyID]
	if !exists {
		return nil, store.ErrNotFound
	}
	c := *v
	return &c, nil
}

// Update persists a strategy. Returns ErrNotFound if not exists.
func (s *StrategyStore) Update(_ context.Context, strategy *models.Strategy) error {
	if strategy == nil || strategy.StrategyID == "" {
		return store.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[strategy.StrategyID]; !exists {
		return store.ErrNotFound
	}
	c := *strategy
	s.data[strategy.StrategyID] = &c
	return nil
}

// ListByArena retrieves all strategies of an arena, ordered by creation
// time then strategy ID.
func (s *StrategyStore) ListByArena(_ context.Context, arenaID string) ([]*models.Strategy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.Strategy
	for _, v := range s.data {
		if v.ArenaID == arenaID {
			c := *v
			result = append(result, &c)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].StrategyID < result[j].StrategyID
	})
	return result, nil
}

// ListActive retrieves the active strategies of an arena, highest score
// first with ties broken by the better stored rank.
func (s *StrategyStore) ListActive(_ context.Context, arenaID string) ([]*models.Strategy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.Strategy
	for _, v := range s.data {
		if v.ArenaID == arenaID && v.IsActive {
			c := *v
			result = append(result, &c)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CurrentScore != result[j].CurrentScore {
			return result[i].CurrentScore > result[j].CurrentScore
		}
		if result[i].CurrentRank != result[j].CurrentRank {
			return result[i].CurrentRank < result[j].CurrentRank
		}
		return result[i].StrategyID < result[j].StrategyID
	})
	return result, nil
}

// Verify interface compliance at compile time.
var _ store.StrategyStore = (*StrategyStore)(nil)
