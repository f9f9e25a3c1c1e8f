package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	t.Setenv("TEST_PROVIDER_TOKEN", "test-token")
	return NewClient(&config.ProviderConfig{
		BaseURL:        server.URL,
		TokenEnv:       "TEST_PROVIDER_TOKEN",
		TimeoutSeconds: 5,
		MaxRetries:     2,
	})
}

func TestQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req apiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "daily", req.APIName)
		assert.Equal(t, "test-token", req.Token)
		assert.Equal(t, "20260109", req.Params["trade_date"])

		json.NewEncoder(w).Encode(map[string]any{
			"code": 0,
			"msg":  "",
			"data": map[string]any{
				"fields": []string{"ts_code", "trade_date", "close"},
				"items": [][]any{
					{"000001.SZ", "20260109", 11.45},
					{"000002.SZ", "20260109", 8.10},
				},
			},
		})
	})

	payload, err := client.Query(context.Background(), "daily",
		map[string]string{"trade_date": "20260109"},
		[]string{"ts_code", "trade_date", "close"})

	require.NoError(t, err)
	require.Len(t, payload.Items, 2)
	assert.Equal(t, []string{"ts_code", "trade_date", "close"}, payload.Fields)

	records := payload.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "000001.SZ", records[0]["ts_code"])
	assert.Equal(t, 11.45, records[0]["close"])
}

func TestQueryEmptyData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"code": 0, "msg": "", "data": nil})
	})

	payload, err := client.Query(context.Background(), "daily", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, payload.Items)
	assert.Empty(t, payload.Records())
}

func TestQueryHTTP429(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Query(context.Background(), "daily", nil, nil)
	require.Error(t, err)
	require.True(t, IsRateLimit(err))

	var rle *RateLimitError
	require.ErrorAs(t, err, &rle)
	assert.Equal(t, "daily", rle.APIName)
	assert.Equal(t, "7s", rle.RetryAfter.String())
	// Rate-limit responses bypass the retry loop
	assert.Equal(t, 1, calls)
}

func TestQueryProviderRateLimitCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"code": providerRateLimitCode, "msg": "too many calls"})
	})

	_, err := client.Query(context.Background(), "daily", nil, nil)
	require.Error(t, err)
	assert.True(t, IsRateLimit(err))
}

func TestQueryAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"code": 2002, "msg": "no permission"})
	})

	_, err := client.Query(context.Background(), "moneyflow", nil, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 2002, apiErr.Code)
	assert.Contains(t, apiErr.Error(), "no permission")
	assert.False(t, IsRateLimit(err))
}

func TestQueryRetriesServerErrors(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"code": 0,
			"data": map[string]any{"fields": []string{"ts_code"}, "items": [][]any{{"000001.SZ"}}},
		})
	})

	payload, err := client.Query(context.Background(), "daily", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Len(t, payload.Items, 1)
}

func TestQueryMissingToken(t *testing.T) {
	t.Setenv("EMPTY_TOKEN_VAR", "")
	client := NewClient(&config.ProviderConfig{
		BaseURL:        "http://localhost:1",
		TokenEnv:       "EMPTY_TOKEN_VAR",
		TimeoutSeconds: 1,
	})

	_, err := client.Query(context.Background(), "daily", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token not configured")
}
