package e2e

import (
	"net/http"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/api"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/version"
)

func TestHealthAndVersion(t *testing.T) {
	app := StartTestApp(t)

	resp, err := http.Get(app.BaseURL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ver api.VersionResponse
	app.get("/api/version", &ver)
	assert.Equal(t, version.AppName, ver.App)
	assert.NotEmpty(t, ver.Version)
}

func TestMutatingEndpointsRequireToken(t *testing.T) {
	app := StartTestApp(t)

	status, env := app.request(http.MethodPost, "/api/datasource/sync",
		&models.SyncRequest{PluginName: "daily_bar"}, false)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, 40101, env.Code)

	// Read endpoints stay open.
	var page models.ExecutionListResponse
	app.get("/api/datasource/executions", &page)
	assert.Zero(t, page.TotalCount)
}

// TestCalendarSyncBootstrapsIncrementalIngestion walks the cold-start path:
// ingest the trading calendar, then let an incremental sync resolve the most
// recent trading day from it. A second incremental run must skip without
// touching the vendor.
func TestCalendarSyncBootstrapsIncrementalIngestion(t *testing.T) {
	app := StartTestApp(t)
	now := time.Now()

	// Small pages force the extractor through several fetches.
	app.Provider.SetPageSize(40)
	app.SeedCalendar(now.AddDate(0, 0, -45), now.AddDate(0, 0, 10))
	require.Greater(t, app.Provider.Calls("trade_cal"), 1)
	assert.Equal(t, 56, app.Warehouse.RowCount("ods_trade_calendar"))

	app.Provider.Script("daily", QuoteRows("600000.SH", "000001.SZ"))
	id := app.triggerSync(&models.SyncRequest{PluginName: "daily_bar", TaskType: models.TaskTypeIncremental})
	detail := app.waitExecution(id, 20*time.Second)
	require.Equal(t, models.ExecutionStatusCompleted, detail.Status)

	wantDate := mostRecentWeekday(now)
	sub := subTask(t, detail, "daily_bar")
	assert.Equal(t, models.SubTaskStatusCompleted, sub.Status)
	assert.Equal(t, wantDate, sub.TradeDate())
	assert.Equal(t, 2, sub.RecordsProcessed)
	params := app.Provider.Params("daily")
	require.Len(t, params, 1)
	assert.Equal(t, wantDate, params[0]["trade_date"])
	assert.Equal(t, 2, app.Warehouse.RowCount("ods_daily_bar"))

	// Re-running the same day is a no-op: the date is present, so the
	// sub-task settles skipped and the vendor sees no further call.
	id2 := app.triggerSync(&models.SyncRequest{PluginName: "daily_bar", TaskType: models.TaskTypeIncremental})
	detail2 := app.waitExecution(id2, 20*time.Second)
	require.Equal(t, models.ExecutionStatusCompleted, detail2.Status)
	assert.Equal(t, models.SubTaskStatusSkipped, subTask(t, detail2, "daily_bar").Status)
	assert.Len(t, app.Provider.Params("daily"), 1)

	var statuses []*models.PluginStatus
	app.get("/api/datasource/plugins", &statuses)
	idx := slices.IndexFunc(statuses, func(st *models.PluginStatus) bool { return st.Name == "daily_bar" })
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, wantDate, statuses[idx].LatestDataDate)
	assert.Equal(t, "ods_daily_bar", statuses[idx].Table)
}

// TestBackfillClearsMissingReport backfills exactly the trading days the
// missing-data detector reports and verifies the hole closes.
func TestBackfillClearsMissingReport(t *testing.T) {
	app := StartTestApp(t)
	now := time.Now()
	app.SeedCalendar(now.AddDate(0, 0, -45), now.AddDate(0, 0, 10))

	var report models.MissingDataReport
	app.get("/api/datasource/missing?window_days=7", &report)
	assert.Equal(t, 7, report.WindowDays)
	missing := report.Missing["daily_bar"]
	wantDates := weekdays(now.AddDate(0, 0, -7), now)
	require.Equal(t, wantDates, missing)

	app.Provider.Script("daily", QuoteRows("600000.SH", "000001.SZ"))
	id := app.triggerSync(&models.SyncRequest{
		PluginName: "daily_bar",
		TaskType:   models.TaskTypeBackfill,
		TradeDates: missing,
	})
	detail := app.waitExecution(id, 30*time.Second)
	require.Equal(t, models.ExecutionStatusCompleted, detail.Status)
	require.Len(t, detail.SubTasks, len(missing))
	assert.Equal(t, len(missing)*2, app.Warehouse.RowCount("ods_daily_bar"))

	app.get("/api/datasource/missing?window_days=7", &report)
	assert.Empty(t, report.Missing["daily_bar"])
	// The other daily feeds are still unfilled.
	assert.Equal(t, wantDates, report.Missing["index_daily"])
}

// TestGroupTriggerRunsDependentsAfterPrimary triggers the daily_core group
// and verifies the dependency gate: derived feeds load only after the
// primary quotes landed in the warehouse.
func TestGroupTriggerRunsDependentsAfterPrimary(t *testing.T) {
	app := StartTestApp(t)
	now := time.Now()
	app.SeedCalendar(now.AddDate(0, 0, -45), now.AddDate(0, 0, 10))

	quotes := QuoteRows("600000.SH", "000001.SZ")
	app.Provider.Script("daily", quotes)
	app.Provider.Script("adj_factor", quotes)
	app.Provider.Script("daily_basic", quotes)

	var ref api.ExecutionRef
	app.post("/api/datasource/group/daily_core/trigger", nil, &ref)
	detail := app.waitExecution(ref.ExecutionID, 30*time.Second)
	require.Equal(t, models.ExecutionStatusCompleted, detail.Status)
	require.Equal(t, 3, detail.TotalPlugins)
	assert.Equal(t, 3, detail.CompletedPlugins)
	assert.Equal(t, models.TriggerTypeGroup, detail.TriggerType)
	assert.Equal(t, "daily_core", detail.GroupName)

	order := app.Warehouse.LoadOrder()
	primary := slices.Index(order, "ods_daily_bar")
	require.GreaterOrEqual(t, primary, 0)
	for _, derived := range []string{"ods_adj_factor", "ods_daily_basic"} {
		i := slices.Index(order, derived)
		require.GreaterOrEqual(t, i, 0)
		assert.Greater(t, i, primary, "%s loaded before the primary quotes", derived)
	}
}

// TestProviderOutageFailsExecutionAndRetryHeals fails one group member at
// the vendor, then heals it with a partial retry that keeps the completed
// members untouched.
func TestProviderOutageFailsExecutionAndRetryHeals(t *testing.T) {
	app := StartTestApp(t)
	now := time.Now()
	app.SeedCalendar(now.AddDate(0, 0, -45), now.AddDate(0, 0, 10))

	quotes := QuoteRows("600000.SH", "000001.SZ")
	app.Provider.Script("daily", quotes)
	app.Provider.Script("adj_factor", quotes)
	app.Provider.Script("daily_basic", quotes)
	app.Provider.FailNext("adj_factor", Failure{Code: 40301, Msg: "daily quota exhausted"})

	var ref api.ExecutionRef
	app.post("/api/datasource/group/daily_core/trigger", nil, &ref)
	detail := app.waitExecution(ref.ExecutionID, 30*time.Second)
	require.Equal(t, models.ExecutionStatusFailed, detail.Status)
	assert.Equal(t, 2, detail.CompletedPlugins)
	assert.Equal(t, 1, detail.FailedPlugins)
	assert.True(t, detail.CanRetry)
	assert.Contains(t, detail.ErrorSummary, "1 of 3 sub-tasks failed")
	assert.Contains(t, detail.ErrorSummary, "adj_factor")
	failedSub := subTask(t, detail, "adj_factor")
	assert.Equal(t, models.SubTaskStatusFailed, failedSub.Status)
	assert.Contains(t, failedSub.ErrorMessage, "daily quota exhausted")

	dailyCalls := app.Provider.Calls("daily")

	// Partial retry re-queues only the failed member under the same id.
	var retryRef api.ExecutionRef
	app.post("/api/datasource/executions/"+ref.ExecutionID+"/retry", nil, &retryRef)
	require.Equal(t, ref.ExecutionID, retryRef.ExecutionID)
	detail = app.waitExecution(ref.ExecutionID, 30*time.Second)
	require.Equal(t, models.ExecutionStatusCompleted, detail.Status)
	assert.Equal(t, 3, detail.CompletedPlugins)
	assert.False(t, detail.CanRetry)
	assert.Empty(t, detail.ErrorSummary)

	assert.Equal(t, dailyCalls, app.Provider.Calls("daily"), "completed members must not re-fetch")
	assert.Equal(t, 2, app.Provider.Calls("adj_factor"))
}

// TestTransientProviderErrorIsRetriedInFlight scripts a single 500 and
// expects the provider client to absorb it without surfacing a failure.
func TestTransientProviderErrorIsRetriedInFlight(t *testing.T) {
	app := StartTestApp(t)
	now := time.Now()
	app.SeedCalendar(now.AddDate(0, 0, -45), now.AddDate(0, 0, 10))

	app.Provider.Script("index_daily", QuoteRows("000001.SH", "399001.SZ"))
	app.Provider.FailNext("index_daily", Failure{Status: http.StatusInternalServerError, Msg: "backend unavailable"})

	id := app.triggerSync(&models.SyncRequest{PluginName: "index_daily", TaskType: models.TaskTypeIncremental})
	detail := app.waitExecution(id, 30*time.Second)
	require.Equal(t, models.ExecutionStatusCompleted, detail.Status)
	assert.Equal(t, 2, app.Provider.Calls("index_daily"))
	assert.Equal(t, 2, app.Warehouse.RowCount("ods_index_daily"))
}

// TestStopExecutionCancelsQueuedDates holds the vendor open, stops a
// backfill mid-flight, and verifies queued dates are cancelled while the
// execution settles as stopped and stays retryable.
func TestStopExecutionCancelsQueuedDates(t *testing.T) {
	app := StartTestApp(t)
	now := time.Now()

	dates := weekdays(now.AddDate(0, 0, -10), now.AddDate(0, 0, -1))
	require.GreaterOrEqual(t, len(dates), 6)
	dates = dates[:6]

	app.Provider.Script("daily", QuoteRows("600000.SH", "000001.SZ"))
	entered, release := app.Provider.Hold("daily")
	defer release()

	id := app.triggerSync(&models.SyncRequest{
		PluginName: "daily_bar",
		TaskType:   models.TaskTypeBackfill,
		TradeDates: dates,
	})

	// Both workers must be parked inside a vendor call before the stop.
	for i := 0; i < 2; i++ {
		select {
		case <-entered:
		case <-time.After(10 * time.Second):
			t.Fatal("vendor never saw the held requests")
		}
	}
	app.post("/api/datasource/executions/"+id+"/stop", nil, nil)
	release()

	detail := app.waitExecution(id, 30*time.Second)
	require.Equal(t, models.ExecutionStatusStopped, detail.Status)
	require.True(t, detail.CanRetry)
	assert.Contains(t, detail.ErrorSummary, "6 cancelled")
	for _, sub := range detail.SubTasks {
		assert.Equal(t, models.SubTaskStatusCancelled, sub.Status)
	}

	// Stopping an already-stopped execution is rejected as inactive.
	status, env := app.request(http.MethodPost, "/api/datasource/executions/"+id+"/stop", nil, true)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, 40001, env.Code)

	var retryRef api.ExecutionRef
	app.post("/api/datasource/executions/"+id+"/retry", nil, &retryRef)
	require.Equal(t, id, retryRef.ExecutionID)
	detail = app.waitExecution(id, 30*time.Second)
	require.Equal(t, models.ExecutionStatusCompleted, detail.Status)
	assert.Equal(t, len(dates)*2, app.Warehouse.RowCount("ods_daily_bar"))
}

// TestScheduleOverrideExcludesPluginFromReport toggles a plugin's schedule
// at runtime and watches the missing-data detector drop it.
func TestScheduleOverrideExcludesPluginFromReport(t *testing.T) {
	app := StartTestApp(t)
	now := time.Now()
	app.SeedCalendar(now.AddDate(0, 0, -45), now.AddDate(0, 0, 10))

	var report models.MissingDataReport
	app.get("/api/datasource/missing?window_days=5", &report)
	_, covered := report.Missing["moneyflow"]
	require.True(t, covered)

	disabled := false
	app.post("/api/datasource/plugins/moneyflow/schedule", map[string]*bool{"schedule_enabled": &disabled}, nil)

	app.get("/api/datasource/missing?window_days=5", &report)
	_, covered = report.Missing["moneyflow"]
	assert.False(t, covered)

	var statuses []*models.PluginStatus
	app.get("/api/datasource/plugins", &statuses)
	idx := slices.IndexFunc(statuses, func(st *models.PluginStatus) bool { return st.Name == "moneyflow" })
	require.GreaterOrEqual(t, idx, 0)
	assert.False(t, statuses[idx].ScheduleEnabled)

	enabled := true
	app.post("/api/datasource/plugins/moneyflow/schedule", map[string]*bool{"schedule_enabled": &enabled}, nil)
	app.get("/api/datasource/missing?window_days=5", &report)
	_, covered = report.Missing["moneyflow"]
	assert.True(t, covered)
}

// TestDeleteExecutionRemovesHistory verifies terminal-only deletion.
func TestDeleteExecutionRemovesHistory(t *testing.T) {
	app := StartTestApp(t)
	now := time.Now()
	app.SeedCalendar(now.AddDate(0, 0, -45), now.AddDate(0, 0, 10))

	app.Provider.Script("daily", QuoteRows("600000.SH"))
	id := app.triggerSync(&models.SyncRequest{PluginName: "daily_bar", TaskType: models.TaskTypeIncremental})
	app.waitExecution(id, 20*time.Second)

	app.del("/api/datasource/executions/" + id)

	status, env := app.request(http.MethodGet, "/api/datasource/executions/"+id, nil, false)
	assert.Equal(t, http.StatusNotFound, status)
	assert.NotZero(t, env.Code)

	var page models.ExecutionListResponse
	app.get("/api/datasource/executions", &page)
	// The calendar seed execution is still listed.
	assert.Equal(t, 1, page.TotalCount)
}
