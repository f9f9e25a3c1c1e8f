package memory

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// RoundStore is an in-memory implementation of store.RoundStore.
type RoundStore struct {
	mu   sync.RWMutex
	data map[string]*models.DiscussionRound // keyed by round_id
}

// NewRoundStore creates a new in-memory discussion round store.
func NewRoundStore() *RoundStore {
	return &RoundStore{
		data: make(map[string]*models.DiscussionRound),
	}
}

// Create adds a new round. Returns ErrAlreadyExists if round_id exists.
func (s *RoundStore) Create(_ context.Context, round *models.DiscussionRound) error {
	if round == nil || round.RoundID == "" || round.ArenaID == "" {
		return store.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[round.RoundID]; exists {
		return store.ErrAlreadyExists
	}
	s.data[round.RoundID] = cloneRound(round)
	return nil
}

// Get retrieves a round by its ID. Returns ErrNotFound if not exists.
func (s *RoundStore) Get(_ context.Context, roundID string) (*models.DiscussionRound, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, exists := s.data[roundID]
	if !exists {
		return nil, store.ErrNotFound
	}
	return cloneRound(r), nil
}

// Update persists a round. Returns ErrNotFound if not exists.
func (s *RoundStore) Update(_ context.Context, round *models.DiscussionRound) error {
	if round == nil || round.RoundID == "" {
		return store.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[round.RoundID]; !exists {
		return store.ErrNotFound
	}
	s.data[round.RoundID] = cloneRound(round)
	return nil
}

// ListByArena retrieves all rounds of an arena ordered by round number.
func (s *RoundStore) ListByArena(_ context.Context, arenaID string) ([]*models.DiscussionRound, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.DiscussionRound
	for _, r := range s.data {
		if r.ArenaID == arenaID {
			result = append(result, cloneRound(r))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].RoundNumber != result[j].RoundNumber {
			return result[i].RoundNumber < result[j].RoundNumber
		}
		return result[i].RoundID < result[j].RoundID
	})
	return result, nil
}

func cloneRound(r *models.DiscussionRound) *models.DiscussionRound {
	c := *r
	c.Participants = slices.Clone(r.Participants)
	c.Conclusions = maps.Clone(r.Conclusions)
	if r.CompletedAt != nil {
		v := *r.CompletedAt
		c.CompletedAt = &v
	}
	return &c
}

// Verify interface compliance at compile time.
var _ store.RoundStore = (*RoundStore)(nil)
