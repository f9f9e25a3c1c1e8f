// Package e2e boots the whole service against real PostgreSQL, a scripted
// market-data vendor, and an in-memory warehouse, then drives it over HTTP
// the way an operator or the dashboard would.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/api"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/arena"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/calendar"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/config"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/database"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/llm"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/provider"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/ratelimit"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/scheduler"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store/entstore"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/stream"
	testdb "github.com/Yourdaylight/stock-datasource-sub001/test/database"
)

const (
	providerTokenEnv = "STOCKDATA_E2E_PROVIDER_TOKEN"
	providerToken    = "e2e-provider-token"
	apiToken         = "e2e-api-token"
)

// TestApp is one fully wired service instance listening on a random port.
type TestApp struct {
	t *testing.T

	Cfg       *config.Config
	DB        *database.Client
	Stores    *store.Stores
	Provider  *StubProvider
	Warehouse *Warehouse
	LLM       *llm.ScriptedClient
	Calendar  *calendar.Calendar
	Scheduler *scheduler.Scheduler
	Stream    *stream.Processor
	Arenas    *arena.Manager
	BaseURL   string

	httpc *http.Client
}

// AppOption tweaks the config after fast-cycle defaults are applied and
// before any component is built.
type AppOption func(*config.Config)

// StartTestApp boots the service. Everything is torn down through t.Cleanup
// in reverse construction order.
func StartTestApp(t *testing.T, opts ...AppOption) *TestApp {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping end-to-end test in short mode")
	}
	app := &TestApp{t: t, httpc: &http.Client{Timeout: 30 * time.Second}}
	ctx := context.Background()

	// 1. Relational store: schema-isolated PostgreSQL plus the Ent stores.
	app.DB = testdb.NewTestClient(t)
	app.Stores = entstore.NewStores(app.DB.Client)

	// 2. Vendor stub. The token env var must be set before the provider
	// client reads it at construction.
	app.Provider = NewStubProvider(providerToken)
	t.Setenv(providerTokenEnv, providerToken)

	// 3. Config tuned for fast test cycles: tight polling, a small worker
	// pool, and a missing-data window that stays inside the fixtures.
	cfg := &config.Config{
		Scheduler:    config.DefaultSchedulerConfig(),
		Arena:        config.DefaultArenaDefaults(),
		LLM:          config.DefaultLLMConfig(),
		Provider:     config.DefaultProviderConfig(),
		PluginGroups: config.GetBuiltinConfig().PluginGroups,
	}
	cfg.Scheduler.WorkerCount = 2
	cfg.Scheduler.InnerConcurrencyCap = 2
	cfg.Scheduler.PollInterval = 20 * time.Millisecond
	cfg.Scheduler.PollIntervalJitter = 5 * time.Millisecond
	cfg.Scheduler.SubTaskTimeout = 30 * time.Second
	cfg.Scheduler.GracefulShutdownTimeout = 5 * time.Second
	cfg.Scheduler.RetentionSweepInterval = time.Hour
	cfg.Scheduler.MissingWindowDays = 10
	cfg.Provider.BaseURL = app.Provider.URL()
	cfg.Provider.TokenEnv = providerTokenEnv
	cfg.Provider.TimeoutSeconds = 10
	cfg.Provider.MaxRetries = 2
	for _, opt := range opts {
		opt(cfg)
	}
	app.Cfg = cfg

	// 4. Plugin catalog, rate governor and extractor registry over the stub.
	plugins, err := plugin.Catalog(cfg)
	require.NoError(t, err)
	gov := ratelimit.NewGovernor(plugin.Limits(plugins))
	registry, err := plugin.BuildRegistry(plugins, provider.NewClient(cfg.Provider), gov)
	require.NoError(t, err)

	// 5. Warehouse and the trading calendar reading from it.
	app.Warehouse = NewWarehouse()
	app.Calendar = calendar.New(app.Warehouse, "SSE")

	// 6. Scheduler.
	app.Scheduler, err = scheduler.New(scheduler.Deps{
		Config:     cfg.Scheduler,
		Registry:   registry,
		Groups:     cfg.PluginGroups,
		Calendar:   app.Calendar,
		Syncer:     app.Warehouse,
		Loader:     app.Warehouse,
		Reader:     app.Warehouse,
		Executions: app.Stores.Executions,
		SubTasks:   app.Stores.SubTasks,
		Settings:   app.Stores.PluginSettings,
	})
	require.NoError(t, err)
	require.NoError(t, app.Scheduler.Start(ctx))

	// 7. Thinking stream, scripted LLM, arena manager.
	app.Stream = stream.New(app.Stores.Messages, cfg.Arena.StreamQueueSize)
	app.LLM = llm.NewScriptedClient()
	app.Arenas = arena.NewManager(arena.Deps{
		Defaults: cfg.Arena,
		Stores:   app.Stores,
		Stream:   app.Stream,
		LLM:      app.LLM,
		Bars:     app.Warehouse,
	})
	require.NoError(t, app.Arenas.StartTimers())

	// 8. HTTP server on a random loopback port.
	server := api.NewServer(api.Deps{
		DB:        app.DB,
		Warehouse: app.Warehouse,
		Scheduler: app.Scheduler,
		Arenas:    app.Arenas,
		Stream:    app.Stream,
		APIToken:  apiToken,
	})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	app.BaseURL = "http://" + ln.Addr().String()

	serveCtx, stopServe := context.WithCancel(ctx)
	serveDone := make(chan error, 1)
	go func() { serveDone <- server.Serve(serveCtx, ln, 2*time.Second) }()

	t.Cleanup(func() {
		stopServe()
		select {
		case err := <-serveDone:
			require.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Error("API server did not stop")
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = app.Arenas.Shutdown(shutdownCtx)
		app.Scheduler.Stop()
		app.Provider.Close()
	})
	return app
}

// envelope is the uniform response wrapper every JSON endpoint uses.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// request sends one JSON request and decodes the envelope without asserting
// on the business code, for scenarios that probe error paths.
func (app *TestApp) request(method, path string, body any, authorized bool) (int, *envelope) {
	app.t.Helper()
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(app.t, err)
		rd = bytes.NewReader(buf)
	}
	req, err := http.NewRequest(method, app.BaseURL+path, rd)
	require.NoError(app.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+apiToken)
	}
	resp, err := app.httpc.Do(req)
	require.NoError(app.t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(app.t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, &env
}

// get fetches a read endpoint and decodes its data into out.
func (app *TestApp) get(path string, out any) *envelope {
	app.t.Helper()
	status, env := app.request(http.MethodGet, path, nil, false)
	require.Equal(app.t, http.StatusOK, status, "GET %s: %s", path, env.Message)
	require.Equal(app.t, 0, env.Code, "GET %s: %s", path, env.Message)
	if out != nil {
		require.NoError(app.t, json.Unmarshal(env.Data, out))
	}
	return env
}

// post hits a mutating endpoint with the API token and decodes its data.
func (app *TestApp) post(path string, body, out any) *envelope {
	app.t.Helper()
	status, env := app.request(http.MethodPost, path, body, true)
	require.Equal(app.t, http.StatusOK, status, "POST %s: %s", path, env.Message)
	require.Equal(app.t, 0, env.Code, "POST %s: %s", path, env.Message)
	if out != nil {
		require.NoError(app.t, json.Unmarshal(env.Data, out))
	}
	return env
}

// del hits a DELETE endpoint with the API token.
func (app *TestApp) del(path string) *envelope {
	app.t.Helper()
	status, env := app.request(http.MethodDelete, path, nil, true)
	require.Equal(app.t, http.StatusOK, status, "DELETE %s: %s", path, env.Message)
	require.Equal(app.t, 0, env.Code, "DELETE %s: %s", path, env.Message)
	return env
}

// triggerSync starts a manual sync and returns the execution id.
func (app *TestApp) triggerSync(req *models.SyncRequest) string {
	app.t.Helper()
	var ref api.ExecutionRef
	app.post("/api/datasource/sync", req, &ref)
	require.NotEmpty(app.t, ref.ExecutionID)
	return ref.ExecutionID
}

// execution fetches one execution with its sub-tasks.
func (app *TestApp) execution(id string) *models.ExecutionDetail {
	app.t.Helper()
	var detail models.ExecutionDetail
	app.get("/api/datasource/executions/"+id, &detail)
	return &detail
}

// waitExecution polls until the execution reaches a terminal status.
func (app *TestApp) waitExecution(id string, timeout time.Duration) *models.ExecutionDetail {
	app.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		detail := app.execution(id)
		if detail.Status.IsTerminal() {
			return detail
		}
		if time.Now().After(deadline) {
			app.t.Fatalf("execution %s still %s after %s", id, detail.Status, timeout)
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// subTask returns the execution's sub-task for one plugin, failing the test
// when it is absent.
func subTask(t *testing.T, detail *models.ExecutionDetail, pluginName string) *models.SubTask {
	t.Helper()
	for _, st := range detail.SubTasks {
		if st.PluginName == pluginName {
			return st
		}
	}
	t.Fatalf("execution %s has no sub-task for %s", detail.ExecutionID, pluginName)
	return nil
}

// SeedCalendar scripts the vendor calendar over [from, to] and ingests it so
// calendar-bound triggers can resolve trading days.
func (app *TestApp) SeedCalendar(from, to time.Time) {
	app.t.Helper()
	app.Provider.Script("trade_cal", CalendarRows(from, to))
	id := app.triggerSync(&models.SyncRequest{PluginName: "trade_calendar", TaskType: models.TaskTypeFull})
	detail := app.waitExecution(id, 20*time.Second)
	require.Equal(app.t, models.ExecutionStatusCompleted, detail.Status)
}

// weekdays lists every Monday-to-Friday date in [from, to] in trade-date
// format, matching the stub calendar's open days.
func weekdays(from, to time.Time) []string {
	var out []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		out = append(out, models.FormatTradeDate(d))
	}
	return out
}

// mostRecentWeekday resolves the trading day an incremental trigger lands on
// under the weekday calendar fixture.
func mostRecentWeekday(now time.Time) string {
	d := now
	for {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			return models.FormatTradeDate(d)
		}
		d = d.AddDate(0, 0, -1)
	}
}
