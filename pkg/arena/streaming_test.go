package arena

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/llm"
)

func chunkStream(chunks ...llm.Chunk) <-chan llm.Chunk {
	ch := make(chan llm.Chunk, len(chunks))
	for _, c := range chunks {
		ch <- c
	}
	close(ch)
	return ch
}

func TestCollectGenerationAccumulatesTextAndUsage(t *testing.T) {
	var flushes []string
	flush := func(delta string) error {
		flushes = append(flushes, delta)
		return nil
	}

	res, err := collectGeneration(chunkStream(
		&llm.ThinkingChunk{Content: "weighing the "},
		&llm.ThinkingChunk{Content: "evidence"},
		&llm.TextChunk{Content: "First half. "},
		&llm.TextChunk{Content: "Second half."},
		&llm.UsageChunk{InputTokens: 100, OutputTokens: 25, TotalTokens: 125},
	), flush)
	require.NoError(t, err)

	assert.Equal(t, "First half. Second half.", res.Text)
	assert.Equal(t, "weighing the evidence", res.ThinkingText)
	assert.Equal(t, 100, res.InputTokens)
	assert.Equal(t, 25, res.OutputTokens)

	// Short thinking deltas coalesce into a single end-of-stream flush.
	assert.Equal(t, []string{"weighing the evidence"}, flushes)
}

func TestCollectGenerationFlushesAtThreshold(t *testing.T) {
	long := strings.Repeat("x", thinkingFlushLen)
	var flushes []string
	flush := func(delta string) error {
		flushes = append(flushes, delta)
		return nil
	}

	res, err := collectGeneration(chunkStream(
		&llm.ThinkingChunk{Content: "a"},
		&llm.ThinkingChunk{Content: long},
		&llm.ThinkingChunk{Content: "tail"},
		&llm.TextChunk{Content: "done"},
	), flush)
	require.NoError(t, err)

	require.Len(t, flushes, 2)
	assert.Equal(t, "a"+long, flushes[0])
	assert.Equal(t, "tail", flushes[1])
	assert.Equal(t, "a"+long+"tail", res.ThinkingText)
}

func TestCollectGenerationErrorChunkAborts(t *testing.T) {
	flush := func(string) error { return nil }

	res, err := collectGeneration(chunkStream(
		&llm.TextChunk{Content: "partial"},
		&llm.ErrorChunk{Message: "provider overloaded", Retryable: true},
	), flush)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider overloaded")
	assert.Nil(t, res)
}

func TestCollectGenerationFlushErrorAborts(t *testing.T) {
	boom := errors.New("subscriber gone")
	flush := func(string) error { return boom }

	res, err := collectGeneration(chunkStream(
		&llm.ThinkingChunk{Content: strings.Repeat("y", thinkingFlushLen+1)},
	), flush)
	require.ErrorIs(t, err, boom)
	assert.Nil(t, res)
}

func TestCollectGenerationEmptyStream(t *testing.T) {
	flush := func(string) error {
		t.Fatal("flush must not run for an empty stream")
		return nil
	}

	res, err := collectGeneration(chunkStream(), flush)
	require.NoError(t, err)
	assert.Empty(t, res.Text)
	assert.Empty(t, res.ThinkingText)
}
