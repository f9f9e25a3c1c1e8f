package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/arena"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/config"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/llm"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/scheduler"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store/memory"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/stream"
)

var testNow = time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

type fakeSyncer struct{}

func (fakeSyncer) Sync(_ context.Context, p *plugin.Plugin, _ *plugin.Batch) ([]plugin.Column, error) {
	return p.Schema.Columns, nil
}

type fakeLoader struct {
	mu   sync.Mutex
	rows map[string]int
}

func (f *fakeLoader) Load(_ context.Context, table string, _ []plugin.Column, batch *plugin.Batch) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rows == nil {
		f.rows = make(map[string]int)
	}
	f.rows[table] += len(batch.Records)
	return len(batch.Records), nil
}

type fakeReader struct {
	mu      sync.Mutex
	present map[string][]string
}

func (f *fakeReader) add(table string, dates ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.present == nil {
		f.present = make(map[string][]string)
	}
	f.present[table] = append(f.present[table], dates...)
	slices.Sort(f.present[table])
}

func (f *fakeReader) HasDate(_ context.Context, table, _, date string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Contains(f.present[table], date), nil
}

func (f *fakeReader) PresentDates(_ context.Context, table, _ string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.present[table]), nil
}

func (f *fakeReader) LatestDate(_ context.Context, table, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	dates := f.present[table]
	if len(dates) == 0 {
		return "", nil
	}
	return dates[len(dates)-1], nil
}

type fakeCalendar struct{ days []string }

func (f *fakeCalendar) IsTradingDay(_ context.Context, date string) (bool, error) {
	return slices.Contains(f.days, date), nil
}

func (f *fakeCalendar) TradingDaysBetween(_ context.Context, from, to string) ([]string, error) {
	var out []string
	for _, d := range f.days {
		if d >= from && d <= to {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeCalendar) MostRecentTradingDay(_ context.Context, asOf string, _ int) (string, error) {
	for i := len(f.days) - 1; i >= 0; i-- {
		if f.days[i] <= asOf {
			return f.days[i], nil
		}
	}
	return "", fmt.Errorf("no trading day on or before %s", asOf)
}

func (f *fakeCalendar) Invalidate() {}

type fakeBars struct{}

func (fakeBars) DailyBars(_ context.Context, code, _, _ string) ([]models.DailyBar, error) {
	base := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	price := 100.0
	bars := make([]models.DailyBar, 140)
	for i := range bars {
		bars[i] = models.DailyBar{
			Code:      code,
			TradeDate: models.FormatTradeDate(base.AddDate(0, 0, i)),
			Open:      price,
			High:      price * 1.01,
			Low:       price * 0.99,
			Close:     price,
			Volume:    1000,
			Amount:    1000 * price,
		}
		price *= 1.003
	}
	return bars, nil
}

// testPlugin builds a dated daily plugin whose extractor emits n rows per call.
func testPlugin(name, table string, n int) *plugin.Plugin {
	return &plugin.Plugin{
		Name:               name,
		Table:              table,
		Role:               plugin.RolePrimary,
		Category:           "market",
		RateLimitPerMinute: 600,
		Schedule: config.ScheduleConfig{
			Frequency: config.ScheduleFrequencyDaily,
			Time:      "17:30",
		},
		ScheduleEnabled:      true,
		Enabled:              true,
		CalendarBound:        true,
		DateParam:            "trade_date",
		ExpectedCallsPerDate: 1,
		Timeout:              5 * time.Second,
		Schema: plugin.TableSchema{
			Columns: []plugin.Column{
				{Name: "ts_code", Type: plugin.TypeString},
				{Name: "trade_date", Type: plugin.TypeDate},
				{Name: "close", Type: plugin.TypeFloat64, Nullable: true},
			},
			OrderBy:     []string{"ts_code", "trade_date"},
			PartitionBy: "toYYYYMM(trade_date)",
		},
		Extract: func(ctx context.Context, params map[string]string, emit plugin.EmitFunc) error {
			batch := &plugin.Batch{
				Fields:  []string{"ts_code", "trade_date", "close"},
				Records: make([]map[string]any, n),
			}
			for i := range batch.Records {
				batch.Records[i] = map[string]any{
					"ts_code":    fmt.Sprintf("0000%02d.SZ", i),
					"trade_date": params["trade_date"],
					"close":      10.5,
				}
			}
			return emit(ctx, batch)
		},
	}
}

// harness runs the full API over memory stores: a real scheduler with stub
// warehouse collaborators and a real arena manager with a scripted LLM.
type harness struct {
	stores *store.Stores
	sched  *scheduler.Scheduler
	arenas *arena.Manager
	proc   *stream.Processor
	client *llm.ScriptedClient
	loader *fakeLoader
	reader *fakeReader
	router *gin.Engine
}

func newHarness(t *testing.T, plugins []*plugin.Plugin, groups map[string]config.PluginGroupConfig) *harness {
	t.Helper()

	reg, err := plugin.NewRegistry(plugins)
	require.NoError(t, err)

	cfg := config.DefaultSchedulerConfig()
	cfg.PollInterval = 5 * time.Millisecond
	cfg.PollIntervalJitter = 2 * time.Millisecond
	cfg.GracefulShutdownTimeout = 2 * time.Second

	h := &harness{
		stores: memory.NewStores(),
		client: llm.NewScriptedClient(),
		loader: &fakeLoader{},
		reader: &fakeReader{},
	}
	cal := &fakeCalendar{days: []string{
		"20260817", "20260818", "20260819", "20260820", "20260821", "20260824",
	}}

	h.sched, err = scheduler.New(scheduler.Deps{
		Config:     cfg,
		Registry:   reg,
		Groups:     groups,
		Calendar:   cal,
		Syncer:     fakeSyncer{},
		Loader:     h.loader,
		Reader:     h.reader,
		Executions: h.stores.Executions,
		SubTasks:   h.stores.SubTasks,
		Settings:   h.stores.PluginSettings,
	}, scheduler.WithClock(func() time.Time { return testNow }))
	require.NoError(t, err)
	require.NoError(t, h.sched.Start(context.Background()))
	t.Cleanup(h.sched.Stop)

	h.proc = stream.New(h.stores.Messages, 64)
	h.arenas = arena.NewManager(arena.Deps{
		Stores: h.stores,
		Stream: h.proc,
		LLM:    h.client,
		Bars:   fakeBars{},
	})
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, h.arenas.Shutdown(ctx))
	})

	srv := NewServer(Deps{
		Scheduler: h.sched,
		Arenas:    h.arenas,
		Stream:    h.proc,
	})
	h.router = srv.Router()
	return h
}

// do performs one request against the router and decodes the envelope.
func (h *harness) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, *Response) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	var envelope Response
	if rec.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope),
			"body: %s", rec.Body.String())
	}
	return rec, &envelope
}

// dataAs re-marshals the envelope data into a typed value.
func dataAs[T any](t *testing.T, envelope *Response) T {
	t.Helper()
	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestVersionEndpoint(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_quote", "ods_daily_quote", 2)}, nil)

	rec, envelope := h.do(t, http.MethodGet, "/api/version", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, envelope.Code)

	v := dataAs[VersionResponse](t, envelope)
	assert.Equal(t, "stockdata", v.App)
	assert.NotEmpty(t, v.Version)
}

func TestHealthEndpoint(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_quote", "ods_daily_quote", 2)}, nil)

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "healthy", health.Checks["scheduler"].Status)
	// No postgres or clickhouse wired in this harness, so no checks for them.
	assert.NotContains(t, health.Checks, "postgres")
	assert.NotContains(t, health.Checks, "clickhouse")
}

func TestHealthDegradedAfterSchedulerStop(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_quote", "ods_daily_quote", 2)}, nil)
	h.sched.Stop()

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "degraded", health.Status)
	assert.Equal(t, "degraded", health.Checks["scheduler"].Status)
}

func TestUnknownRouteReturns404(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_quote", "ods_daily_quote", 2)}, nil)

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
