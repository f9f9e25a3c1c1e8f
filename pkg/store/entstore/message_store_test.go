package entstore

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

func testMessage(arenaID string, seq int64, at time.Time) *models.ThinkingMessage {
	return &models.ThinkingMessage{
		ID:        fmt.Sprintf("%s-msg-%d", arenaID, seq),
		ArenaID:   arenaID,
		AgentID:   "agent-1",
		AgentRole: models.AgentRoleStrategyGenerator,
		Type:      models.MessageTypeThinking,
		Content:   fmt.Sprintf("step %d", seq),
		Sequence:  seq,
		Timestamp: at,
	}
}

func TestMessageStore_AppendAndWindow(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	require.NoError(t, stores.Arenas.Create(ctx, testArena("arena-1", base)))
	for seq := int64(1); seq <= 5; seq++ {
		require.NoError(t, stores.Messages.Append(ctx, testMessage("arena-1", seq, base.Add(time.Duration(seq)*time.Second))))
	}

	all, err := stores.Messages.ListByArena(ctx, "arena-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, int64(1), all[0].Sequence)
	assert.Equal(t, "step 1", all[0].Content)
	assert.Equal(t, models.AgentRoleStrategyGenerator, all[0].AgentRole)

	window, err := stores.Messages.ListByArena(ctx, "arena-1", 2, 2)
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, int64(3), window[0].Sequence)
	assert.Equal(t, int64(4), window[1].Sequence)

	tail, err := stores.Messages.ListByArena(ctx, "arena-1", 5, 0)
	require.NoError(t, err)
	assert.Empty(t, tail)
}

func TestMessageStore_SequenceUniquePerArena(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	require.NoError(t, stores.Arenas.Create(ctx, testArena("arena-1", now)))
	require.NoError(t, stores.Arenas.Create(ctx, testArena("arena-2", now)))

	require.NoError(t, stores.Messages.Append(ctx, testMessage("arena-1", 1, now)))

	// Same sequence in the same arena is rejected even under a fresh id.
	dup := testMessage("arena-1", 1, now)
	dup.ID = "another-id"
	assert.ErrorIs(t, stores.Messages.Append(ctx, dup), store.ErrAlreadyExists)

	// The same sequence is fine in a different arena.
	require.NoError(t, stores.Messages.Append(ctx, testMessage("arena-2", 1, now)))
}

func TestMessageStore_LastSequence(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	require.NoError(t, stores.Arenas.Create(ctx, testArena("arena-1", now)))
	require.NoError(t, stores.Arenas.Create(ctx, testArena("arena-2", now)))

	seq, err := stores.Messages.LastSequence(ctx, "arena-1")
	require.NoError(t, err)
	assert.Zero(t, seq, "no messages yet")

	for i := int64(1); i <= 3; i++ {
		require.NoError(t, stores.Messages.Append(ctx, testMessage("arena-1", i, now)))
	}
	require.NoError(t, stores.Messages.Append(ctx, testMessage("arena-2", 9, now)))

	seq, err = stores.Messages.LastSequence(ctx, "arena-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), seq, "counts only this arena's stream")
}

func TestMessageStore_SystemMessageWithoutAgent(t *testing.T) {
	stores := newTestStores(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	require.NoError(t, stores.Arenas.Create(ctx, testArena("arena-1", now)))
	require.NoError(t, stores.Messages.Append(ctx, &models.ThinkingMessage{
		ID:        "msg-sys",
		ArenaID:   "arena-1",
		Type:      models.MessageTypeSystem,
		Content:   "evaluation started",
		Metadata:  map[string]any{"period": "weekly"},
		Sequence:  1,
		Timestamp: now,
	}))

	got, err := stores.Messages.ListByArena(ctx, "arena-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].AgentID)
	assert.Empty(t, got[0].AgentRole)
	assert.Equal(t, models.MessageTypeSystem, got[0].Type)
	assert.Equal(t, "weekly", got[0].Metadata["period"])
	assert.WithinDuration(t, now, got[0].Timestamp, time.Second)
}
