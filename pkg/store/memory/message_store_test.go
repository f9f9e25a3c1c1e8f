package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

func TestMessageStore_AppendAndListAfterSeq(t *testing.T) {
	s := NewMessageStore()
	ctx := context.Background()
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	for i := 1; i <= 5; i++ {
		require.NoError(t, s.Append(ctx, &models.ThinkingMessage{
			ID:        fmt.Sprintf("msg-%d", i),
			ArenaID:   "arena-1",
			Type:      models.MessageTypeThinking,
			Content:   fmt.Sprintf("step %d", i),
			Sequence:  int64(i),
			Timestamp: base.Add(time.Duration(i) * time.Second),
		}))
	}
	require.NoError(t, s.Append(ctx, &models.ThinkingMessage{
		ID:       "other-1",
		ArenaID:  "arena-2",
		Type:     models.MessageTypeSystem,
		Content:  "unrelated",
		Sequence: 1,
	}))

	all, err := s.ListByArena(ctx, "arena-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, int64(1), all[0].Sequence)
	assert.Equal(t, int64(5), all[4].Sequence)

	tail, err := s.ListByArena(ctx, "arena-1", 2, 0)
	require.NoError(t, err)
	require.Len(t, tail, 3)
	assert.Equal(t, int64(3), tail[0].Sequence)

	page, err := s.ListByArena(ctx, "arena-1", 0, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(1), page[0].Sequence)
	assert.Equal(t, int64(2), page[1].Sequence)
}

func TestMessageStore_DuplicateID(t *testing.T) {
	s := NewMessageStore()
	ctx := context.Background()

	msg := &models.ThinkingMessage{ID: "msg-1", ArenaID: "arena-1", Type: models.MessageTypeThinking, Sequence: 1}
	require.NoError(t, s.Append(ctx, msg))

	err := s.Append(ctx, &models.ThinkingMessage{ID: "msg-1", ArenaID: "arena-1", Type: models.MessageTypeThinking, Sequence: 2})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestMessageStore_MetadataIsolation(t *testing.T) {
	s := NewMessageStore()
	ctx := context.Background()

	msg := &models.ThinkingMessage{
		ID:       "msg-1",
		ArenaID:  "arena-1",
		Type:     models.MessageTypeIntervention,
		Metadata: map[string]any{"action": "adjust_score", "delta": 10.0},
		Sequence: 1,
	}
	require.NoError(t, s.Append(ctx, msg))
	msg.Metadata["delta"] = -99.0

	got, err := s.ListByArena(ctx, "arena-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 10.0, got[0].Metadata["delta"])
}
