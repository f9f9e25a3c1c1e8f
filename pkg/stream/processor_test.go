package stream

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store/memory"
)

func publishText(t *testing.T, p *Processor, arenaID, content string) *models.ThinkingMessage {
	t.Helper()
	msg := &models.ThinkingMessage{
		ArenaID: arenaID,
		Type:    models.MessageTypeThinking,
		Content: content,
	}
	require.NoError(t, p.Publish(context.Background(), msg))
	return msg
}

func receiveOne(t *testing.T, sub *Subscription) *models.ThinkingMessage {
	t.Helper()
	select {
	case msg, ok := <-sub.C:
		require.True(t, ok, "subscription closed unexpectedly")
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func TestPublishAssignsSequenceAndPersists(t *testing.T) {
	messages := memory.NewMessageStore()
	p := New(messages, 8)

	m1 := publishText(t, p, "arena-1", "first")
	m2 := publishText(t, p, "arena-1", "second")

	assert.Equal(t, int64(1), m1.Sequence)
	assert.Equal(t, int64(2), m2.Sequence)
	assert.NotEmpty(t, m1.ID)
	assert.False(t, m1.Timestamp.IsZero())

	stored, err := messages.ListByArena(context.Background(), "arena-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "first", stored[0].Content)
	assert.Equal(t, "second", stored[1].Content)
}

func TestSequenceResumesFromStore(t *testing.T) {
	messages := memory.NewMessageStore()
	require.NoError(t, messages.Append(context.Background(), &models.ThinkingMessage{
		ID:       "seed",
		ArenaID:  "arena-1",
		Type:     models.MessageTypeThinking,
		Content:  "earlier life",
		Sequence: 7,
	}))

	p := New(messages, 8)
	msg := publishText(t, p, "arena-1", "after restart")
	assert.Equal(t, int64(8), msg.Sequence)
}

func TestSubscriberReceivesInOrder(t *testing.T) {
	p := New(memory.NewMessageStore(), 8)
	sub, err := p.Subscribe("arena-1")
	require.NoError(t, err)
	defer sub.Close()

	publishText(t, p, "arena-1", "a")
	publishText(t, p, "arena-1", "b")
	publishText(t, p, "arena-1", "c")

	assert.Equal(t, "a", receiveOne(t, sub).Content)
	assert.Equal(t, "b", receiveOne(t, sub).Content)
	assert.Equal(t, "c", receiveOne(t, sub).Content)
}

func TestMultipleSubscribersAllReceive(t *testing.T) {
	p := New(memory.NewMessageStore(), 8)
	sub1, err := p.Subscribe("arena-1")
	require.NoError(t, err)
	defer sub1.Close()
	sub2, err := p.Subscribe("arena-1")
	require.NoError(t, err)
	defer sub2.Close()

	publishText(t, p, "arena-1", "hello")

	assert.Equal(t, "hello", receiveOne(t, sub1).Content)
	assert.Equal(t, "hello", receiveOne(t, sub2).Content)
	assert.Equal(t, 2, p.SubscriberCount("arena-1"))
}

func TestLateSubscriberStartsAtCurrentPosition(t *testing.T) {
	p := New(memory.NewMessageStore(), 8)
	publishText(t, p, "arena-1", "missed")

	sub, err := p.Subscribe("arena-1")
	require.NoError(t, err)
	defer sub.Close()

	publishText(t, p, "arena-1", "seen")
	got := receiveOne(t, sub)
	assert.Equal(t, "seen", got.Content)
	assert.Equal(t, int64(2), got.Sequence)
}

func TestCrossArenaIsolation(t *testing.T) {
	p := New(memory.NewMessageStore(), 8)
	sub, err := p.Subscribe("arena-1")
	require.NoError(t, err)
	defer sub.Close()

	publishText(t, p, "arena-2", "elsewhere")
	publishText(t, p, "arena-1", "here")

	got := receiveOne(t, sub)
	assert.Equal(t, "here", got.Content)
	// Sequences are per-arena.
	assert.Equal(t, int64(1), got.Sequence)
}

func TestSlowSubscriberDropped(t *testing.T) {
	messages := memory.NewMessageStore()
	p := New(messages, 1, WithPublishWait(5*time.Millisecond))

	slow, err := p.Subscribe("arena-1")
	require.NoError(t, err)
	healthy, err := p.Subscribe("arena-1")
	require.NoError(t, err)
	defer healthy.Close()

	// Fill the slow subscriber's queue (size 1), then overflow it. The
	// healthy subscriber is drained as we go.
	publishText(t, p, "arena-1", "one")
	assert.Equal(t, "one", receiveOne(t, healthy).Content)
	publishText(t, p, "arena-1", "two")
	assert.Equal(t, "two", receiveOne(t, healthy).Content)

	assert.Equal(t, 1, p.SubscriberCount("arena-1"))

	// The slow subscriber's channel drains its one buffered message and
	// then closes.
	assert.Equal(t, "one", receiveOne(t, slow).Content)
	select {
	case _, ok := <-slow.C:
		assert.False(t, ok, "slow subscriber channel should be closed")
	case <-time.After(2 * time.Second):
		t.Fatal("slow subscriber channel never closed")
	}

	// The drop was recorded as a system message, visible to the healthy
	// subscriber and in history.
	notice := receiveOne(t, healthy)
	assert.Equal(t, models.MessageTypeSystem, notice.Type)
	assert.Contains(t, notice.Content, "queue overflow")

	stored, err := messages.ListByArena(context.Background(), "arena-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, models.MessageTypeSystem, stored[2].Type)
}

func TestCloseArena(t *testing.T) {
	p := New(memory.NewMessageStore(), 8)
	sub, err := p.Subscribe("arena-1")
	require.NoError(t, err)

	p.CloseArena("arena-1")

	select {
	case _, ok := <-sub.C:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber channel never closed")
	}

	err = p.Publish(context.Background(), &models.ThinkingMessage{
		ArenaID: "arena-1", Type: models.MessageTypeThinking, Content: "late",
	})
	assert.ErrorIs(t, err, ErrStreamClosed)

	_, err = p.Subscribe("arena-1")
	assert.ErrorIs(t, err, ErrStreamClosed)
}

func TestSubscriptionCloseIdempotent(t *testing.T) {
	p := New(memory.NewMessageStore(), 8)
	sub, err := p.Subscribe("arena-1")
	require.NoError(t, err)

	sub.Close()
	sub.Close()
	assert.Equal(t, 0, p.SubscriberCount("arena-1"))

	// Publishing after the only subscriber left is fine.
	publishText(t, p, "arena-1", "nobody listening")
}

func TestForgetDiscardsArena(t *testing.T) {
	p := New(memory.NewMessageStore(), 8)
	sub, err := p.Subscribe("arena-1")
	require.NoError(t, err)

	p.Forget("arena-1")
	select {
	case _, ok := <-sub.C:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber channel never closed")
	}

	// A new arena under the same ID starts fresh.
	sub2, err := p.Subscribe("arena-1")
	require.NoError(t, err)
	sub2.Close()
}
