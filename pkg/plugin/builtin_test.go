package plugin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/config"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/provider"
)

type fakeCall struct {
	apiName string
	params  map[string]string
	fields  []string
}

// fakeFetcher replays scripted payloads and records every call. errs are
// consumed per call before payloads; err applies to every call.
type fakeFetcher struct {
	calls    []fakeCall
	payloads []*provider.Payload
	errs     []error
	err      error
}

func (f *fakeFetcher) Query(ctx context.Context, apiName string, params map[string]string, fields []string) (*provider.Payload, error) {
	copied := make(map[string]string, len(params))
	for k, v := range params {
		copied[k] = v
	}
	f.calls = append(f.calls, fakeCall{apiName: apiName, params: copied, fields: fields})
	if f.err != nil {
		return nil, f.err
	}
	i := len(f.calls) - 1
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i >= len(f.payloads) {
		return &provider.Payload{}, nil
	}
	return f.payloads[i], nil
}

type fakeGate struct {
	acquired  []string
	penalties map[string]time.Duration
	err       error
}

func (g *fakeGate) Acquire(ctx context.Context, plugin string) error {
	g.acquired = append(g.acquired, plugin)
	return g.err
}

func (g *fakeGate) Penalty(plugin string, d time.Duration) error {
	if g.penalties == nil {
		g.penalties = make(map[string]time.Duration)
	}
	g.penalties[plugin] = d
	return nil
}

func defaultsConfig() *config.Config {
	return &config.Config{
		Scheduler: config.DefaultSchedulerConfig(),
		Arena:     config.DefaultArenaDefaults(),
		LLM:       config.DefaultLLMConfig(),
		Provider:  config.DefaultProviderConfig(),
	}
}

func collectBatches(t *testing.T, ex Extractor, params map[string]string) []*Batch {
	t.Helper()
	var batches []*Batch
	err := ex(context.Background(), params, func(ctx context.Context, b *Batch) error {
		batches = append(batches, b)
		return nil
	})
	require.NoError(t, err)
	return batches
}

func TestCatalogDefaults(t *testing.T) {
	plugins, err := Catalog(defaultsConfig())
	require.NoError(t, err)
	require.Len(t, plugins, 9)

	byName := make(map[string]*Plugin, len(plugins))
	for _, p := range plugins {
		byName[p.Name] = p
		assert.True(t, p.Enabled, p.Name)
		assert.Nil(t, p.Extract, "extractors bind at BuildRegistry, not in the catalog")
	}

	bar := byName["daily_bar"]
	require.NotNil(t, bar)
	assert.Equal(t, "ods_daily_bar", bar.Table)
	assert.Equal(t, RolePrimary, bar.Role)
	assert.Equal(t, 500, bar.RateLimitPerMinute)
	assert.Equal(t, config.ScheduleFrequencyDaily, bar.Schedule.Frequency)
	assert.True(t, bar.CalendarBound)
	assert.Equal(t, "trade_date", bar.DateParam)
	assert.True(t, bar.Dated())

	adj := byName["adj_factor"]
	require.NotNil(t, adj)
	assert.Equal(t, []string{"daily_bar"}, adj.Dependencies)

	basic := byName["stock_basic"]
	require.NotNil(t, basic)
	assert.Equal(t, config.ScheduleFrequencyWeekly, basic.Schedule.Frequency)
	assert.False(t, basic.Dated())
	assert.False(t, basic.CalendarBound)
}

func TestCatalogAppliesOverrides(t *testing.T) {
	cfg := defaultsConfig()
	off := false
	limit := 42
	timeout := 90
	cfg.PluginOverrides = map[string]config.PluginOverrideConfig{
		"moneyflow": {
			Enabled:            &off,
			RateLimitPerMinute: &limit,
			TimeoutSeconds:     &timeout,
		},
	}

	plugins, err := Catalog(cfg)
	require.NoError(t, err)

	for _, p := range plugins {
		if p.Name != "moneyflow" {
			continue
		}
		assert.False(t, p.Enabled)
		assert.Equal(t, 42, p.RateLimitPerMinute)
		assert.Equal(t, 90*time.Second, p.Timeout)
	}
}

func TestCatalogRejectsUnknownOverride(t *testing.T) {
	cfg := defaultsConfig()
	cfg.PluginOverrides = map[string]config.PluginOverrideConfig{
		"warp_drive": {},
	}

	_, err := Catalog(cfg)
	require.Error(t, err)

	var verr *config.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "warp_drive", verr.ID)
}

func TestLimitsSkipDisabled(t *testing.T) {
	cfg := defaultsConfig()
	off := false
	cfg.PluginOverrides = map[string]config.PluginOverrideConfig{
		"hk_daily": {Enabled: &off},
	}

	plugins, err := Catalog(cfg)
	require.NoError(t, err)

	limits := Limits(plugins)
	assert.Equal(t, 500, limits["daily_bar"])
	_, ok := limits["hk_daily"]
	assert.False(t, ok)
}

func TestBuildRegistryBindsGatedExtractors(t *testing.T) {
	plugins, err := Catalog(defaultsConfig())
	require.NoError(t, err)

	fetcher := &fakeFetcher{payloads: []*provider.Payload{{
		Fields: []string{"ts_code", "trade_date", "close"},
		Items:  [][]any{{"600519.SH", "20260820", 1700.5}},
	}}}
	gate := &fakeGate{}

	reg, err := BuildRegistry(plugins, fetcher, gate)
	require.NoError(t, err)

	bar, err := reg.Get("daily_bar")
	require.NoError(t, err)

	batches := collectBatches(t, bar.Extract, map[string]string{"trade_date": "20260820"})
	require.Len(t, batches, 1)
	require.Len(t, batches[0].Records, 1)
	assert.Equal(t, "600519.SH", batches[0].Records[0]["ts_code"])

	require.Len(t, fetcher.calls, 1)
	call := fetcher.calls[0]
	assert.Equal(t, "daily", call.apiName)
	assert.Equal(t, "20260820", call.params["trade_date"])
	assert.Equal(t, dailyBarSchema.FieldNames(), call.fields)

	assert.Equal(t, []string{"daily_bar"}, gate.acquired, "one token per provider call")
}

func TestPagedExtractorFollowsHasMore(t *testing.T) {
	fetcher := &fakeFetcher{payloads: []*provider.Payload{
		{
			Fields:  []string{"ts_code", "trade_date", "close"},
			Items:   [][]any{{"600519.SH", "20260820", 1700.5}, {"000001.SZ", "20260820", 11.2}},
			HasMore: true,
		},
		{
			Fields: []string{"ts_code", "trade_date", "close"},
			Items:  [][]any{{"601318.SH", "20260820", 55.4}},
		},
	}}

	ex := pagedExtractor(fetcher, "daily", []string{"ts_code", "trade_date", "close"})
	batches := collectBatches(t, ex, map[string]string{"trade_date": "20260820"})

	require.Len(t, batches, 2)
	assert.Len(t, batches[0].Records, 2)
	assert.Len(t, batches[1].Records, 1)

	require.Len(t, fetcher.calls, 2)
	assert.Equal(t, "0", fetcher.calls[0].params["offset"])
	assert.Equal(t, "2", fetcher.calls[1].params["offset"], "offset advances by rows seen")
}

func TestPagedExtractorNoData(t *testing.T) {
	fetcher := &fakeFetcher{payloads: []*provider.Payload{{}}}

	ex := pagedExtractor(fetcher, "daily", []string{"ts_code"})
	batches := collectBatches(t, ex, map[string]string{"trade_date": "20260815"})

	assert.Empty(t, batches, "empty payload means no batches, no error")
}

func TestCalendarExtractorDefaultsExchange(t *testing.T) {
	fetcher := &fakeFetcher{payloads: []*provider.Payload{{
		Fields: []string{"exchange", "cal_date", "is_open"},
		Items:  [][]any{{"SSE", "20260820", int64(1)}},
	}}}

	ex := calendarExtractor(fetcher)
	batches := collectBatches(t, ex, map[string]string{"start_date": "20260801", "end_date": "20260831"})

	require.Len(t, batches, 1)
	require.Len(t, fetcher.calls, 1)
	assert.Equal(t, "trade_cal", fetcher.calls[0].apiName)
	assert.Equal(t, "SSE", fetcher.calls[0].params["exchange"])
}

func TestGatedFetcherRetriesAfterPenalty(t *testing.T) {
	payload := &provider.Payload{
		Fields: []string{"ts_code", "close"},
		Items:  [][]any{{"000001.SZ", 10.5}},
	}
	fetcher := &fakeFetcher{
		errs:     []error{&provider.RateLimitError{APIName: "daily", RetryAfter: 30 * time.Second}},
		payloads: []*provider.Payload{nil, payload},
	}
	gate := &fakeGate{}

	gf := &gatedFetcher{plugin: "daily_bar", f: fetcher, gate: gate}
	got, err := gf.Query(context.Background(), "daily", map[string]string{"trade_date": "20260820"}, nil)

	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.Len(t, fetcher.calls, 2, "rate-limited call is re-issued")
	assert.Equal(t, []string{"daily_bar", "daily_bar"}, gate.acquired, "retry buys a fresh token")
	assert.Equal(t, 30*time.Second, gate.penalties["daily_bar"])
}

func TestGatedFetcherAppliesPenaltyUntilBudgetExhausted(t *testing.T) {
	fetcher := &fakeFetcher{err: &provider.RateLimitError{APIName: "daily", RetryAfter: 45 * time.Second}}
	gate := &fakeGate{}

	gf := &gatedFetcher{plugin: "daily_bar", f: fetcher, gate: gate}
	_, err := gf.Query(context.Background(), "daily", map[string]string{"trade_date": "20260820"}, nil)

	require.Error(t, err)
	assert.True(t, provider.IsRateLimit(err))
	assert.Len(t, fetcher.calls, 1+maxRateLimitRetries)
	assert.Equal(t, 45*time.Second, gate.penalties["daily_bar"])
}

func TestGatedFetcherStopsOnGateError(t *testing.T) {
	fetcher := &fakeFetcher{}
	gate := &fakeGate{err: context.Canceled}

	gf := &gatedFetcher{plugin: "daily_bar", f: fetcher, gate: gate}
	_, err := gf.Query(context.Background(), "daily", nil, nil)

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fetcher.calls, "no provider call without a token")
}
