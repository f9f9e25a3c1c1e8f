package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/config"
)

func testLLMConfig(baseURL string) *config.LLMConfig {
	return &config.LLMConfig{
		BaseURL:        baseURL,
		Model:          "test-model",
		Temperature:    0.2,
		TimeoutSeconds: 5,
		MaxRetries:     2,
	}
}

func writeSSE(t *testing.T, w http.ResponseWriter, payload string) {
	t.Helper()
	_, err := fmt.Fprintf(w, "data: %s\n\n", payload)
	require.NoError(t, err)
	w.(http.Flusher).Flush()
}

func collectChunks(t *testing.T, ch <-chan Chunk) []Chunk {
	t.Helper()
	var out []Chunk
	timeout := time.After(5 * time.Second)
	for {
		select {
		case chunk, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, chunk)
		case <-timeout:
			t.Fatalf("timed out waiting for chunks, got %d so far", len(out))
		}
	}
}

func TestOpenAIClientStreamsChunks(t *testing.T) {
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "text/event-stream")

		writeSSE(t, w, `{"choices":[{"delta":{"reasoning_content":"weighing momentum "}}]}`)
		writeSSE(t, w, `{"choices":[{"delta":{"reasoning_content":"vs mean reversion"}}]}`)
		writeSSE(t, w, `{"choices":[{"delta":{"content":"Buy on the"}}]}`)
		writeSSE(t, w, `{"choices":[{"delta":{"content":" golden cross."}}]}`)
		writeSSE(t, w, `{"choices":[],"usage":{"prompt_tokens":12,"completion_tokens":7,"total_tokens":19}}`)
		writeSSE(t, w, `[DONE]`)
	}))
	defer srv.Close()

	client := NewOpenAIClient(testLLMConfig(srv.URL))
	ch, err := client.Generate(context.Background(), &GenerateInput{
		ArenaID: "arena-1",
		AgentID: "agent-1",
		Messages: []Message{
			{Role: RoleSystem, Content: "You are a strategy generator."},
			{Role: RoleUser, Content: "Propose a strategy."},
		},
	})
	require.NoError(t, err)

	chunks := collectChunks(t, ch)
	require.Len(t, chunks, 5)
	assert.Equal(t, &ThinkingChunk{Content: "weighing momentum "}, chunks[0])
	assert.Equal(t, &ThinkingChunk{Content: "vs mean reversion"}, chunks[1])
	assert.Equal(t, &TextChunk{Content: "Buy on the"}, chunks[2])
	assert.Equal(t, &TextChunk{Content: " golden cross."}, chunks[3])
	assert.Equal(t, &UsageChunk{InputTokens: 12, OutputTokens: 7, TotalTokens: 19}, chunks[4])

	// Request carried the configured model and streaming flags.
	assert.Equal(t, "test-model", gotReq.Model)
	assert.True(t, gotReq.Stream)
	require.NotNil(t, gotReq.StreamOptions)
	assert.True(t, gotReq.StreamOptions.IncludeUsage)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, RoleSystem, gotReq.Messages[0].Role)
}

func TestOpenAIClientRetriesOn429(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, `{"error":{"message":"rate limited"}}`)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		writeSSE(t, w, `{"choices":[{"delta":{"content":"ok"}}]}`)
		writeSSE(t, w, `[DONE]`)
	}))
	defer srv.Close()

	client := NewOpenAIClient(testLLMConfig(srv.URL))
	ch, err := client.Generate(context.Background(), &GenerateInput{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)

	chunks := collectChunks(t, ch)
	require.Len(t, chunks, 1)
	assert.Equal(t, &TextChunk{Content: "ok"}, chunks[0])
	assert.Equal(t, int32(2), calls.Load())
}

func TestOpenAIClientExhaustedRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	cfg := testLLMConfig(srv.URL)
	cfg.MaxRetries = 1
	client := NewOpenAIClient(cfg)
	ch, err := client.Generate(context.Background(), &GenerateInput{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)

	chunks := collectChunks(t, ch)
	require.Len(t, chunks, 1)
	errChunk, ok := chunks[0].(*ErrorChunk)
	require.True(t, ok, "expected ErrorChunk, got %T", chunks[0])
	assert.Contains(t, errChunk.Message, "max retries exceeded")
	assert.True(t, errChunk.Retryable)
}

func TestOpenAIClientNonRetryableStatus(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"model not found"}}`)
	}))
	defer srv.Close()

	client := NewOpenAIClient(testLLMConfig(srv.URL))
	ch, err := client.Generate(context.Background(), &GenerateInput{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)

	chunks := collectChunks(t, ch)
	require.Len(t, chunks, 1)
	errChunk, ok := chunks[0].(*ErrorChunk)
	require.True(t, ok)
	assert.Contains(t, errChunk.Message, "status 400")
	assert.False(t, errChunk.Retryable)
	assert.Equal(t, int32(1), calls.Load(), "400 must not be retried")
}

func TestOpenAIClientProviderErrorMidStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		writeSSE(t, w, `{"choices":[{"delta":{"content":"partial"}}]}`)
		writeSSE(t, w, `{"error":{"message":"backend overloaded"}}`)
	}))
	defer srv.Close()

	client := NewOpenAIClient(testLLMConfig(srv.URL))
	ch, err := client.Generate(context.Background(), &GenerateInput{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)

	chunks := collectChunks(t, ch)
	require.Len(t, chunks, 2)
	assert.Equal(t, &TextChunk{Content: "partial"}, chunks[0])
	errChunk, ok := chunks[1].(*ErrorChunk)
	require.True(t, ok)
	assert.Contains(t, errChunk.Message, "backend overloaded")
}

func TestOpenAIClientEmptyConversation(t *testing.T) {
	client := NewOpenAIClient(testLLMConfig("http://127.0.0.1:0"))
	_, err := client.Generate(context.Background(), &GenerateInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty conversation")
}

func TestOpenAIClientContextCancelledMidStream(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		writeSSE(t, w, `{"choices":[{"delta":{"content":"first"}}]}`)
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	client := NewOpenAIClient(testLLMConfig(srv.URL))
	ch, err := client.Generate(ctx, &GenerateInput{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	require.NoError(t, err)

	select {
	case chunk := <-ch:
		assert.Equal(t, &TextChunk{Content: "first"}, chunk)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for first chunk")
	}

	cancel()
	chunks := collectChunks(t, ch)
	require.NotEmpty(t, chunks)
	_, ok := chunks[len(chunks)-1].(*ErrorChunk)
	assert.True(t, ok, "cancellation should surface as a trailing ErrorChunk")
}
