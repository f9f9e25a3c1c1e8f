package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// sseFrames splits an SSE body into its data payloads.
func sseFrames(t *testing.T, body string) []string {
	t.Helper()
	var frames []string
	for _, chunk := range strings.Split(body, "\n\n") {
		if chunk == "" {
			continue
		}
		require.True(t, strings.HasPrefix(chunk, "data: "), "malformed frame: %q", chunk)
		frames = append(frames, strings.TrimPrefix(chunk, "data: "))
	}
	return frames
}

func TestThinkingStreamEndpoint(t *testing.T) {
	h := arenaHarness(t)
	h.seedArena(t, "arena-sse", models.ArenaStateDiscussing)

	req := httptest.NewRequest(http.MethodGet, "/api/arena/arena-sse/thinking-stream", nil)
	rec := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.router.ServeHTTP(rec, req)
	}()

	require.Eventually(t, func() bool {
		return h.proc.SubscriberCount("arena-sse") == 1
	}, 2*time.Second, 5*time.Millisecond, "subscriber never attached")

	ctx := context.Background()
	require.NoError(t, h.proc.Publish(ctx, &models.ThinkingMessage{
		ArenaID: "arena-sse",
		AgentID: "agent-1",
		Type:    models.MessageTypeThinking,
		Content: "momentum looks stretched",
	}))
	require.NoError(t, h.proc.Publish(ctx, &models.ThinkingMessage{
		ArenaID: "arena-sse",
		Type:    models.MessageTypeSystem,
		Content: "round complete",
	}))
	h.proc.CloseArena("arena-sse")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not finish after the stream closed")
	}

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))

	frames := sseFrames(t, rec.Body.String())
	require.Len(t, frames, 3)

	var first models.ThinkingMessage
	require.NoError(t, json.Unmarshal([]byte(frames[0]), &first))
	assert.Equal(t, "momentum looks stretched", first.Content)
	assert.Equal(t, models.MessageTypeThinking, first.Type)
	assert.Equal(t, int64(1), first.Sequence)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.Timestamp.IsZero())

	var second models.ThinkingMessage
	require.NoError(t, json.Unmarshal([]byte(frames[1]), &second))
	assert.Equal(t, "round complete", second.Content)
	assert.Equal(t, int64(2), second.Sequence)

	assert.JSONEq(t, `{"type":"done"}`, frames[2])
}

func TestThinkingStreamAfterArenaEnded(t *testing.T) {
	h := arenaHarness(t)
	h.seedArena(t, "arena-ended", models.ArenaStateCompleted)

	// Put the stream through its lifecycle so a late subscriber meets a
	// closed stream rather than a fresh one.
	require.NoError(t, h.proc.Publish(context.Background(), &models.ThinkingMessage{
		ArenaID: "arena-ended",
		Type:    models.MessageTypeSystem,
		Content: "final standings published",
	}))
	h.proc.CloseArena("arena-ended")

	rec, _ := h.do(t, http.MethodGet, "/api/arena/arena-ended/thinking-stream", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	frames := sseFrames(t, rec.Body.String())
	require.Len(t, frames, 1)
	assert.JSONEq(t, `{"type":"done"}`, frames[0])
}

func TestThinkingStreamUnknownArena(t *testing.T) {
	h := arenaHarness(t)

	rec, envelope := h.do(t, http.MethodGet, "/api/arena/nope/thinking-stream", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, codeNotFound, envelope.Code)
}
