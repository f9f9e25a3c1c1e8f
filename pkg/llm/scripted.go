package llm

import (
	"context"
	"fmt"
	"sync"
)

// ScriptEntry defines a single scripted generation.
type ScriptEntry struct {
	// Response content (at most one of Chunks/Text/Err should be set).
	Chunks []Chunk // pre-built chunks to return
	Text   string  // shorthand: wrapped as TextChunk + UsageChunk
	Err    error   // returned from Generate() itself

	// Test control.
	BlockUntilCancelled bool            // block Generate() until ctx is cancelled
	WaitCh              <-chan struct{} // block Generate() until closed, then respond
	OnBlock             chan<- struct{} // notified when a blocking path is entered
}

// ScriptedClient implements Client with a dual-dispatch script: per-agent
// routing for discussions where call order is non-deterministic, plus a
// sequential fallback for everything else.
type ScriptedClient struct {
	mu             sync.Mutex
	sequential     []ScriptEntry
	seqIndex       int
	routes         map[string][]ScriptEntry // agent ID -> per-agent script
	routeIndex     map[string]int
	capturedInputs []*GenerateInput
}

// NewScriptedClient creates an empty ScriptedClient.
func NewScriptedClient() *ScriptedClient {
	return &ScriptedClient{
		routes:     make(map[string][]ScriptEntry),
		routeIndex: make(map[string]int),
	}
}

// AddSequential adds an entry consumed in order by non-routed calls.
func (c *ScriptedClient) AddSequential(entry ScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sequential = append(c.sequential, entry)
}

// AddRouted adds an entry for a specific agent ID.
func (c *ScriptedClient) AddRouted(agentID string, entry ScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.routes[agentID] = append(c.routes[agentID], entry)
}

// Generate implements Client.
func (c *ScriptedClient) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	c.mu.Lock()
	c.capturedInputs = append(c.capturedInputs, input)
	entry, err := c.nextEntry(input)
	c.mu.Unlock()

	if err != nil {
		return nil, err
	}

	if entry.BlockUntilCancelled {
		ch := make(chan Chunk)
		go func() {
			<-ctx.Done()
			close(ch)
		}()
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		return ch, nil
	}

	if entry.WaitCh != nil {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		select {
		case <-entry.WaitCh:
			// Released, fall through to the normal response.
		case <-ctx.Done():
			ch := make(chan Chunk)
			close(ch)
			return ch, nil
		}
	}

	if entry.Err != nil {
		return nil, entry.Err
	}

	chunks := entry.Chunks
	if len(chunks) == 0 && entry.Text != "" {
		chunks = []Chunk{
			&TextChunk{Content: entry.Text},
			&UsageChunk{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
		}
	}

	ch := make(chan Chunk, len(chunks))
	for _, chunk := range chunks {
		ch <- chunk
	}
	close(ch)
	return ch, nil
}

// Close implements Client.
func (c *ScriptedClient) Close() error { return nil }

// CallCount returns the total number of Generate() calls made.
func (c *ScriptedClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.capturedInputs)
}

// CapturedInputs returns every GenerateInput seen so far.
func (c *ScriptedClient) CapturedInputs() []*GenerateInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*GenerateInput, len(c.capturedInputs))
	copy(out, c.capturedInputs)
	return out
}

// nextEntry selects the next script entry: routed first, then sequential.
// Must be called with c.mu held.
func (c *ScriptedClient) nextEntry(input *GenerateInput) (*ScriptEntry, error) {
	if input.AgentID != "" {
		if entries, ok := c.routes[input.AgentID]; ok {
			idx := c.routeIndex[input.AgentID]
			if idx < len(entries) {
				c.routeIndex[input.AgentID] = idx + 1
				return &entries[idx], nil
			}
		}
	}

	if c.seqIndex < len(c.sequential) {
		entry := &c.sequential[c.seqIndex]
		c.seqIndex++
		return entry, nil
	}

	return nil, fmt.Errorf("scripted client: no more entries (agent=%q, sequential=%d/%d)",
		input.AgentID, c.seqIndex, len(c.sequential))
}
