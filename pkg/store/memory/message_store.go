package memory

import (
	"context"
	"maps"
	"sort"
	"sync"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// MessageStore is an in-memory implementation of store.MessageStore.
type MessageStore struct {
	mu   sync.RWMutex
	ids  map[string]bool
	data map[string][]*models.ThinkingMessage // keyed by arena_id
}

// NewMessageStore creates a new in-memory thinking message store.
func NewMessageStore() *MessageStore {
	return &MessageStore{
		ids:  make(map[string]bool),
		data: make(map[string][]*models.ThinkingMessage),
	}
}

// Append stores a message. Returns ErrAlreadyExists if its id exists.
func (s *MessageStore) Append(_ context.Context, msg *models.ThinkingMessage) error {
	if msg == nil || msg.ID == "" || msg.ArenaID == "" {
		return store.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ids[msg.ID] {
		return store.ErrAlreadyExists
	}
	s.ids[msg.ID] = true
	s.data[msg.ArenaID] = append(s.data[msg.ArenaID], cloneMessage(msg))
	return nil
}

// ListByArena retrieves messages with Sequence > afterSeq in sequence order,
// up to limit entries. limit <= 0 returns everything.
func (s *MessageStore) ListByArena(_ context.Context, arenaID string, afterSeq int64, limit int) ([]*models.ThinkingMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.ThinkingMessage
	for _, m := range s.data[arenaID] {
		if m.Sequence > afterSeq {
			result = append(result, cloneMessage(m))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Sequence < result[j].Sequence
	})
	if limit > 0 && limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

// LastSequence returns the highest sequence stored for an arena, or zero
// when the arena has no messages.
func (s *MessageStore) LastSequence(_ context.Context, arenaID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var last int64
	for _, m := range s.data[arenaID] {
		if m.Sequence > last {
			last = m.Sequence
		}
	}
	return last, nil
}

func cloneMessage(m *models.ThinkingMessage) *models.ThinkingMessage {
	c := *m
	c.Metadata = maps.Clone(m.Metadata)
	return &c
}

// Verify interface compliance at compile time.
var _ store.MessageStore = (*MessageStore)(nil)
