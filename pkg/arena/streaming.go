package arena

import (
	"context"
	"fmt"
	"strings"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/llm"
)

// thinkingFlushLen is the rune threshold at which buffered thinking deltas
// are flushed to the stream as one message. Batching keeps the live feed
// readable without holding deltas back until the generation ends.
const thinkingFlushLen = 400

// llmResult is the collected outcome of one generation.
type llmResult struct {
	Text         string
	ThinkingText string
	InputTokens  int
	OutputTokens int
}

// collectGeneration drains one LLM stream, batching thinking deltas through
// flush and accumulating the final text. An ErrorChunk aborts the collection
// with its message as the error; a flush error aborts it unchanged so the
// caller sees stream shutdown directly.
func collectGeneration(stream <-chan llm.Chunk, flush func(delta string) error) (*llmResult, error) {
	var text, thinking, pending strings.Builder
	res := &llmResult{}
	for chunk := range stream {
		switch c := chunk.(type) {
		case *llm.ThinkingChunk:
			thinking.WriteString(c.Content)
			pending.WriteString(c.Content)
			if pending.Len() >= thinkingFlushLen {
				if err := flush(pending.String()); err != nil {
					return nil, err
				}
				pending.Reset()
			}
		case *llm.TextChunk:
			text.WriteString(c.Content)
		case *llm.UsageChunk:
			res.InputTokens = c.InputTokens
			res.OutputTokens = c.OutputTokens
		case *llm.ErrorChunk:
			return nil, fmt.Errorf("llm generation failed: %s", c.Message)
		}
	}
	if pending.Len() > 0 {
		if err := flush(pending.String()); err != nil {
			return nil, err
		}
	}
	res.Text = text.String()
	res.ThinkingText = thinking.String()
	return res, nil
}

// generate runs one LLM call under a derived context so an early abort
// releases the producer goroutine.
func (o *Orchestrator) generate(ctx context.Context, input *llm.GenerateInput, flush func(delta string) error) (*llmResult, error) {
	llmCtx, llmCancel := context.WithCancel(ctx)
	defer llmCancel()

	stream, err := o.llm.Generate(llmCtx, input)
	if err != nil {
		return nil, err
	}
	return collectGeneration(stream, flush)
}
