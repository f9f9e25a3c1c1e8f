package scheduler

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/config"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store/memory"
)

var testNow = time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

type fakeSyncer struct {
	mu    sync.Mutex
	calls int
	fail  map[string]error
}

func (f *fakeSyncer) Sync(_ context.Context, p *plugin.Plugin, _ *plugin.Batch) ([]plugin.Column, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if err := f.fail[p.Name]; err != nil {
		return nil, err
	}
	return p.Schema.Columns, nil
}

func (f *fakeSyncer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeLoader struct {
	mu   sync.Mutex
	rows map[string]int
	err  error
}

func (f *fakeLoader) Load(_ context.Context, table string, _ []plugin.Column, batch *plugin.Batch) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	if f.rows == nil {
		f.rows = make(map[string]int)
	}
	f.rows[table] += len(batch.Records)
	return len(batch.Records), nil
}

func (f *fakeLoader) loaded(table string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[table]
}

type fakeReader struct {
	mu      sync.Mutex
	present map[string][]string
}

func newFakeReader() *fakeReader {
	return &fakeReader{present: make(map[string][]string)}
}

func (f *fakeReader) add(table string, dates ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
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

type fakeCalendar struct {
	days        []string
	invalidated atomic.Int64
}

func newFakeCalendar() *fakeCalendar {
	return &fakeCalendar{days: []string{
		"20260817", "20260818", "20260819", "20260820", "20260821", "20260824",
	}}
}

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

func (f *fakeCalendar) Invalidate() { f.invalidated.Add(1) }

// testPlugin builds a dated daily plugin backed by the given extractor.
func testPlugin(name, table string, deps []string, extract plugin.Extractor) *plugin.Plugin {
	return &plugin.Plugin{
		Name:               name,
		Table:              table,
		Role:               plugin.RolePrimary,
		Category:           "market",
		RateLimitPerMinute: 60,
		Schedule: config.ScheduleConfig{
			Frequency: config.ScheduleFrequencyDaily,
			Time:      "17:30",
		},
		ScheduleEnabled:      true,
		Enabled:              true,
		CalendarBound:        true,
		Dependencies:         deps,
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
		Extract: extract,
	}
}

// basicPlugin builds a date-less reference plugin.
func basicPlugin(name, table string, extract plugin.Extractor) *plugin.Plugin {
	p := testPlugin(name, table, nil, extract)
	p.Role = plugin.RoleBasic
	p.Category = "reference"
	p.CalendarBound = false
	p.DateParam = ""
	return p
}

// emitRows is an extractor that emits one batch of n rows per call.
func emitRows(n int) plugin.Extractor {
	return func(ctx context.Context, params map[string]string, emit plugin.EmitFunc) error {
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
	}
}

// emitNothing is an extractor for tuples the provider has no data for.
func emitNothing(context.Context, map[string]string, plugin.EmitFunc) error {
	return nil
}

type harness struct {
	s      *Scheduler
	stores *store.Stores
	syncer *fakeSyncer
	loader *fakeLoader
	reader *fakeReader
	cal    *fakeCalendar
}

func newHarness(t *testing.T, plugins []*plugin.Plugin, groups map[string]config.PluginGroupConfig, opts ...func(*config.SchedulerConfig)) *harness {
	t.Helper()

	reg, err := plugin.NewRegistry(plugins)
	require.NoError(t, err)

	cfg := config.DefaultSchedulerConfig()
	cfg.PollInterval = 5 * time.Millisecond
	cfg.PollIntervalJitter = 2 * time.Millisecond
	cfg.GracefulShutdownTimeout = 2 * time.Second
	for _, opt := range opts {
		opt(cfg)
	}

	h := &harness{
		stores: memory.NewStores(),
		syncer: &fakeSyncer{},
		loader: &fakeLoader{},
		reader: newFakeReader(),
		cal:    newFakeCalendar(),
	}
	s, err := New(Deps{
		Config:     cfg,
		Registry:   reg,
		Groups:     groups,
		Calendar:   h.cal,
		Syncer:     h.syncer,
		Loader:     h.loader,
		Reader:     h.reader,
		Executions: h.stores.Executions,
		SubTasks:   h.stores.SubTasks,
		Settings:   h.stores.PluginSettings,
	}, WithClock(func() time.Time { return testNow }))
	require.NoError(t, err)
	h.s = s
	return h
}

// start launches the scheduler and registers a clean shutdown.
func (h *harness) start(t *testing.T) {
	t.Helper()
	require.NoError(t, h.s.Start(context.Background()))
	t.Cleanup(h.s.Stop)
}

// markStarted accepts triggers without launching workers, so created
// executions sit untouched for inspection.
func (h *harness) markStarted() { h.s.started = true }

func (h *harness) waitExecution(t *testing.T, id string, want models.ExecutionStatus) *models.BatchExecution {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for {
		exec, err := h.stores.Executions.Get(context.Background(), id)
		require.NoError(t, err)
		if exec.Status == want {
			return exec
		}
		if exec.Status.IsTerminal() {
			t.Fatalf("execution %s ended %s, want %s (summary %q)", id, exec.Status, want, exec.ErrorSummary)
		}
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for execution %s to reach %s, still %s", id, want, exec.Status)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func (h *harness) waitAnySubTask(t *testing.T, executionID string, want models.SubTaskStatus) *models.SubTask {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for {
		tasks, err := h.stores.SubTasks.ListByExecution(context.Background(), executionID)
		require.NoError(t, err)
		for _, sub := range tasks {
			if sub.Status == want {
				return sub
			}
		}
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for a %s sub-task of %s", want, executionID)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func (h *harness) subTasks(t *testing.T, executionID string) []*models.SubTask {
	t.Helper()
	tasks, err := h.stores.SubTasks.ListByExecution(context.Background(), executionID)
	require.NoError(t, err)
	return tasks
}

func TestNewValidatesDeps(t *testing.T) {
	reg, err := plugin.NewRegistry([]*plugin.Plugin{testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(1))})
	require.NoError(t, err)

	stores := memory.NewStores()
	deps := Deps{
		Config:     config.DefaultSchedulerConfig(),
		Registry:   reg,
		Calendar:   newFakeCalendar(),
		Syncer:     &fakeSyncer{},
		Loader:     &fakeLoader{},
		Reader:     newFakeReader(),
		Executions: stores.Executions,
		SubTasks:   stores.SubTasks,
		Settings:   stores.PluginSettings,
	}

	_, err = New(deps)
	require.NoError(t, err)

	broken := deps
	broken.Config = nil
	_, err = New(broken)
	assert.Error(t, err)

	broken = deps
	broken.Calendar = nil
	_, err = New(broken)
	assert.Error(t, err)

	broken = deps
	broken.SubTasks = nil
	_, err = New(broken)
	assert.Error(t, err)
}

func TestInnerConcurrency(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		expected int
		cap      int
		want     int
	}{
		{name: "generous rate clamps to cap", rate: 500, expected: 1, cap: 8, want: 8},
		{name: "rate divided by expected calls", rate: 8, expected: 2, cap: 8, want: 4},
		{name: "tight rate floors at one", rate: 1, expected: 5, cap: 8, want: 1},
		{name: "zero cap treated as one", rate: 500, expected: 1, cap: 0, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPlugin("p", "ods_p", nil, emitRows(1))
			p.RateLimitPerMinute = tt.rate
			p.ExpectedCallsPerDate = tt.expected
			assert.Equal(t, tt.want, innerConcurrency(p, tt.cap))
		})
	}
}

func TestCoversDates(t *testing.T) {
	p := testPlugin("p", "ods_p", nil, emitRows(1))
	undated := newTaskUnit(p, models.TaskTypeIncremental, nil, nil, false)
	single20 := newDatedUnit(p, models.TaskTypeBackfill, "20260820", false)
	single21 := newDatedUnit(p, models.TaskTypeBackfill, "20260821", false)
	rangeA := newRangeUnit(p, models.TaskTypeFull, "20260817", "20260824",
		[]string{"20260817", "20260818", "20260819", "20260820", "20260821", "20260824"}, false)
	rangeB := newRangeUnit(p, models.TaskTypeFull, "20260817", "20260824",
		[]string{"20260817", "20260818", "20260819", "20260820", "20260821", "20260824"}, false)

	assert.True(t, coversDates(undated, single20))
	assert.True(t, coversDates(single20, undated))
	assert.True(t, coversDates(single20, single20))
	assert.False(t, coversDates(single20, single21))
	assert.True(t, coversDates(rangeA, single20))
	assert.False(t, coversDates(rangeA, newDatedUnit(p, models.TaskTypeBackfill, "20260815", false)))
	assert.True(t, coversDates(rangeA, rangeB))
}
