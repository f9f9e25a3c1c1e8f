// Package provider implements the upstream market-data API client. The
// provider speaks a fields/items JSON protocol: every call names an API,
// passes string parameters, and gets back a column-name list plus row tuples.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/config"
)

// providerRateLimitCode is the well-known "too many calls per minute"
// response code.
const providerRateLimitCode = 40203

// defaultRetryAfter is applied when the provider does not say how long to
// back off.
const defaultRetryAfter = 30 * time.Second

// Payload is one provider response page: field names plus row tuples in
// field order.
type Payload struct {
	Fields  []string
	Items   [][]any
	HasMore bool
}

// Records converts the tuple rows into field-keyed maps.
func (p *Payload) Records() []map[string]any {
	records := make([]map[string]any, 0, len(p.Items))
	for _, item := range p.Items {
		record := make(map[string]any, len(p.Fields))
		for i, field := range p.Fields {
			if i < len(item) {
				record[field] = item[i]
			}
		}
		records = append(records, record)
	}
	return records
}

// Client is a thin HTTP client for the provider API. Safe for concurrent
// use; rate limiting is the governor's job, not the client's.
type Client struct {
	baseURL    string
	token      string
	maxRetries int
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a client from configuration. The auth token is read from
// the configured environment variable.
func NewClient(cfg *config.ProviderConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      os.Getenv(cfg.TokenEnv),
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger: slog.With("component", "provider"),
	}
}

type apiRequest struct {
	APIName string            `json:"api_name"`
	Token   string            `json:"token"`
	Params  map[string]string `json:"params,omitempty"`
	Fields  string            `json:"fields,omitempty"`
}

type apiResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data *struct {
		Fields  []string `json:"fields"`
		Items   [][]any  `json:"items"`
		HasMore bool     `json:"has_more"`
	} `json:"data"`
}

// Query issues one provider call. Transient transport failures and 5xx
// responses are retried with exponential backoff; rate-limit responses are
// returned immediately as *RateLimitError so the caller can apply a governor
// penalty instead of burning the retry budget.
func (c *Client) Query(ctx context.Context, apiName string, params map[string]string, fields []string) (*Payload, error) {
	if c.token == "" {
		return nil, fmt.Errorf("provider token not configured")
	}

	body, err := json.Marshal(apiRequest{
		APIName: apiName,
		Token:   c.token,
		Params:  params,
		Fields:  strings.Join(fields, ","),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		payload, err := c.doOnce(ctx, apiName, body)
		if err == nil {
			return payload, nil
		}
		if IsRateLimit(err) || ctx.Err() != nil {
			return nil, err
		}
		if !isRetryable(err) {
			return nil, err
		}
		lastErr = err
		c.logger.Warn("Provider call failed, retrying",
			"api_name", apiName,
			"attempt", attempt+1,
			"error", err)
	}
	return nil, fmt.Errorf("provider call exhausted retries: %w", lastErr)
}

func (c *Client) doOnce(ctx context.Context, apiName string, body []byte) (*Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &transientError{err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		io.Copy(io.Discard, resp.Body)
		return nil, &RateLimitError{APIName: apiName, RetryAfter: retryAfterFrom(resp)}
	}
	if resp.StatusCode >= 500 {
		io.Copy(io.Discard, resp.Body)
		return nil, &transientError{err: fmt.Errorf("provider returned status %d", resp.StatusCode)}
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &transientError{err: fmt.Errorf("failed to read response: %w", err)}
	}

	var parsed apiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if parsed.Code == providerRateLimitCode {
		return nil, &RateLimitError{APIName: apiName, RetryAfter: defaultRetryAfter}
	}
	if parsed.Code != 0 {
		return nil, &APIError{APIName: apiName, Code: parsed.Code, Message: parsed.Msg}
	}
	if parsed.Data == nil {
		return &Payload{}, nil
	}

	return &Payload{
		Fields:  parsed.Data.Fields,
		Items:   parsed.Data.Items,
		HasMore: parsed.Data.HasMore,
	}, nil
}

func retryAfterFrom(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil && d > 0 {
			return d
		}
	}
	return defaultRetryAfter
}

// transientError marks failures worth retrying.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

func isRetryable(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}
