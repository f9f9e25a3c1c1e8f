package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/config"
)

// OpenAIClient streams chat completions from an OpenAI-compatible endpoint
// (api.openai.com, DeepSeek, vLLM, Ollama and friends all speak this wire
// format). Reasoning deltas arrive as ThinkingChunk, answer deltas as
// TextChunk, and the final usage record as UsageChunk.
type OpenAIClient struct {
	baseURL     string
	model       string
	apiKey      string
	maxTokens   int
	temperature float64
	maxRetries  int
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewOpenAIClient builds a client from configuration. The API key is read
// from the environment variable named by cfg.APIKeyEnv; an empty key is
// allowed for local endpoints that do not authenticate.
func NewOpenAIClient(cfg *config.LLMConfig) *OpenAIClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	var apiKey string
	if cfg.APIKeyEnv != "" {
		apiKey = os.Getenv(cfg.APIKeyEnv)
	}
	return &OpenAIClient{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		model:       cfg.Model,
		apiKey:      apiKey,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		maxRetries:  cfg.MaxRetries,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      slog.With("component", "llm"),
	}
}

// Close implements Client. The shared http.Client needs no teardown.
func (c *OpenAIClient) Close() error { return nil }

// chatRequest is the OpenAI chat completions request body.
type chatRequest struct {
	Model         string         `json:"model"`
	Messages      []chatMessage  `json:"messages"`
	MaxTokens     int            `json:"max_tokens,omitempty"`
	Temperature   float64        `json:"temperature,omitempty"`
	Stream        bool           `json:"stream"`
	StreamOptions *streamOptions `json:"stream_options,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type streamOptions struct {
	IncludeUsage bool `json:"include_usage"`
}

// chatStreamChunk is one decoded SSE data payload. Reasoning models deliver
// their thinking under delta.reasoning_content.
type chatStreamChunk struct {
	Choices []struct {
		Delta *struct {
			Content          string `json:"content"`
			ReasoningContent string `json:"reasoning_content"`
		} `json:"delta"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Generate implements Client. The request itself is retried on 429 and
// transport failures with exponential backoff; once streaming has begun,
// failures are delivered as a trailing ErrorChunk instead.
func (c *OpenAIClient) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	if len(input.Messages) == 0 {
		return nil, fmt.Errorf("generate: empty conversation")
	}

	messages := make([]chatMessage, len(input.Messages))
	for i, m := range input.Messages {
		messages[i] = chatMessage{Role: m.Role, Content: m.Content}
	}
	reqBody := chatRequest{
		Model:         c.model,
		Messages:      messages,
		MaxTokens:     c.maxTokens,
		Temperature:   c.temperature,
		Stream:        true,
		StreamOptions: &streamOptions{IncludeUsage: true},
	}
	if input.MaxTokens > 0 {
		reqBody.MaxTokens = input.MaxTokens
	}
	if input.Temperature > 0 {
		reqBody.Temperature = input.Temperature
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("generate: marshal request: %w", err)
	}

	chunks := make(chan Chunk, 64)
	go func() {
		defer close(chunks)
		c.run(ctx, input, payload, chunks)
	}()
	return chunks, nil
}

// run performs the request/retry loop and streams the response into out.
func (c *OpenAIClient) run(ctx context.Context, input *GenerateInput, payload []byte, out chan<- Chunk) {
	start := time.Now()
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			c.logger.Warn("Retrying LLM request",
				"arena_id", input.ArenaID, "agent_id", input.AgentID,
				"attempt", attempt, "backoff", backoff, "error", lastErr)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				out <- &ErrorChunk{Message: ctx.Err().Error()}
				return
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			c.baseURL+"/chat/completions", bytes.NewReader(payload))
		if err != nil {
			out <- &ErrorChunk{Message: fmt.Sprintf("build request: %v", err)}
			return
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "text/event-stream")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				out <- &ErrorChunk{Message: ctx.Err().Error()}
				return
			}
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests ||
			resp.StatusCode == http.StatusServiceUnavailable {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
			continue
		}
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			out <- &ErrorChunk{Message: fmt.Sprintf("status %d: %s",
				resp.StatusCode, strings.TrimSpace(string(body)))}
			return
		}

		err = c.stream(ctx, resp.Body, out)
		resp.Body.Close()
		if err != nil {
			out <- &ErrorChunk{Message: err.Error()}
		} else {
			c.logger.Debug("LLM stream complete",
				"arena_id", input.ArenaID, "agent_id", input.AgentID,
				"duration", time.Since(start))
		}
		return
	}

	out <- &ErrorChunk{
		Message:   fmt.Sprintf("max retries exceeded: %v", lastErr),
		Retryable: true,
	}
}

// stream reads SSE lines off the response body until [DONE] or EOF.
func (c *OpenAIClient) stream(ctx context.Context, body io.Reader, out chan<- Chunk) error {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "" {
			continue
		}
		if data == "[DONE]" {
			return nil
		}

		var chunk chatStreamChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			continue
		}
		if chunk.Error != nil {
			return fmt.Errorf("provider error: %s", chunk.Error.Message)
		}
		if chunk.Usage != nil {
			select {
			case out <- &UsageChunk{
				InputTokens:  chunk.Usage.PromptTokens,
				OutputTokens: chunk.Usage.CompletionTokens,
				TotalTokens:  chunk.Usage.TotalTokens,
			}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if len(chunk.Choices) == 0 || chunk.Choices[0].Delta == nil {
			continue
		}
		delta := chunk.Choices[0].Delta
		if delta.ReasoningContent != "" {
			select {
			case out <- &ThinkingChunk{Content: delta.ReasoningContent}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if delta.Content != "" {
			select {
			case out <- &TextChunk{Content: delta.Content}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	if err := scanner.Err(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("read stream: %w", err)
	}
	return nil
}
