package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, ch <-chan Chunk) []Chunk {
	t.Helper()
	var out []Chunk
	timeout := time.After(2 * time.Second)
	for {
		select {
		case chunk, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, chunk)
		case <-timeout:
			t.Fatal("timed out draining chunks")
		}
	}
}

func TestScriptedClientSequential(t *testing.T) {
	client := NewScriptedClient()
	client.AddSequential(ScriptEntry{Text: "first"})
	client.AddSequential(ScriptEntry{Text: "second"})

	ch, err := client.Generate(context.Background(), &GenerateInput{})
	require.NoError(t, err)
	chunks := drain(t, ch)
	require.Len(t, chunks, 2)
	assert.Equal(t, &TextChunk{Content: "first"}, chunks[0])

	ch, err = client.Generate(context.Background(), &GenerateInput{})
	require.NoError(t, err)
	chunks = drain(t, ch)
	assert.Equal(t, &TextChunk{Content: "second"}, chunks[0])

	// Exhausted.
	_, err = client.Generate(context.Background(), &GenerateInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no more entries")
	assert.Equal(t, 3, client.CallCount())
}

func TestScriptedClientRoutedDispatch(t *testing.T) {
	client := NewScriptedClient()
	client.AddRouted("agent-a", ScriptEntry{Text: "from a"})
	client.AddRouted("agent-b", ScriptEntry{Text: "from b"})
	client.AddSequential(ScriptEntry{Text: "fallback"})

	ch, err := client.Generate(context.Background(), &GenerateInput{AgentID: "agent-b"})
	require.NoError(t, err)
	assert.Equal(t, &TextChunk{Content: "from b"}, drain(t, ch)[0])

	ch, err = client.Generate(context.Background(), &GenerateInput{AgentID: "agent-a"})
	require.NoError(t, err)
	assert.Equal(t, &TextChunk{Content: "from a"}, drain(t, ch)[0])

	// Routed script exhausted for agent-a: falls back to sequential.
	ch, err = client.Generate(context.Background(), &GenerateInput{AgentID: "agent-a"})
	require.NoError(t, err)
	assert.Equal(t, &TextChunk{Content: "fallback"}, drain(t, ch)[0])
}

func TestScriptedClientPreBuiltChunks(t *testing.T) {
	client := NewScriptedClient()
	client.AddSequential(ScriptEntry{Chunks: []Chunk{
		&ThinkingChunk{Content: "hmm"},
		&TextChunk{Content: "answer"},
	}})

	ch, err := client.Generate(context.Background(), &GenerateInput{})
	require.NoError(t, err)
	chunks := drain(t, ch)
	require.Len(t, chunks, 2)
	assert.Equal(t, &ThinkingChunk{Content: "hmm"}, chunks[0])
	assert.Equal(t, &TextChunk{Content: "answer"}, chunks[1])
}

func TestScriptedClientError(t *testing.T) {
	client := NewScriptedClient()
	scriptErr := errors.New("provider down")
	client.AddSequential(ScriptEntry{Err: scriptErr})

	_, err := client.Generate(context.Background(), &GenerateInput{})
	require.ErrorIs(t, err, scriptErr)
}

func TestScriptedClientBlockUntilCancelled(t *testing.T) {
	client := NewScriptedClient()
	onBlock := make(chan struct{}, 1)
	client.AddSequential(ScriptEntry{BlockUntilCancelled: true, OnBlock: onBlock})

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := client.Generate(ctx, &GenerateInput{})
	require.NoError(t, err)

	select {
	case <-onBlock:
	case <-time.After(2 * time.Second):
		t.Fatal("OnBlock never signalled")
	}

	cancel()
	assert.Empty(t, drain(t, ch))
}
