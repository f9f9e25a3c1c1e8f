package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/config"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
)

func TestCronSpec(t *testing.T) {
	spec, err := cronSpec(config.ScheduleConfig{Frequency: config.ScheduleFrequencyDaily, Time: "17:30"})
	require.NoError(t, err)
	assert.Equal(t, "30 17 * * *", spec)

	spec, err = cronSpec(config.ScheduleConfig{Frequency: config.ScheduleFrequencyWeekly, Time: "08:05", DayOfWeek: 1})
	require.NoError(t, err)
	assert.Equal(t, "5 8 * * 1", spec)

	_, err = cronSpec(config.ScheduleConfig{Frequency: config.ScheduleFrequencyDaily, Time: "1730"})
	assert.Error(t, err)

	_, err = cronSpec(config.ScheduleConfig{Frequency: config.ScheduleFrequencyDaily, Time: "25:00"})
	assert.Error(t, err)
}

func TestNormalizeDates(t *testing.T) {
	dates, err := normalizeDates([]string{"20260820", "20260818", "20260820"})
	require.NoError(t, err)
	assert.Equal(t, []string{"20260818", "20260820"}, dates)

	_, err = normalizeDates([]string{"2026-08-20"})
	require.ErrorIs(t, err, ErrInvalidRequest)

	dates, err = normalizeDates(nil)
	require.NoError(t, err)
	assert.Nil(t, dates)
}

func TestTriggerManualValidation(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(2))}, nil)
	ctx := context.Background()

	_, err := h.s.TriggerManual(ctx, models.SyncRequest{PluginName: "daily_bar"})
	require.ErrorIs(t, err, ErrNotStarted)

	h.markStarted()

	_, err = h.s.TriggerManual(ctx, models.SyncRequest{})
	require.ErrorIs(t, err, ErrInvalidRequest)

	_, err = h.s.TriggerManual(ctx, models.SyncRequest{PluginName: "nope"})
	require.ErrorIs(t, err, plugin.ErrNotFound)

	_, err = h.s.TriggerManual(ctx, models.SyncRequest{PluginName: "daily_bar", TaskType: "weird"})
	require.ErrorIs(t, err, ErrInvalidRequest)

	_, err = h.s.TriggerManual(ctx, models.SyncRequest{
		PluginName: "daily_bar",
		TaskType:   models.TaskTypeIncremental,
		TradeDates: []string{"20260820"},
	})
	require.ErrorIs(t, err, ErrInvalidRequest)

	_, err = h.s.TriggerManual(ctx, models.SyncRequest{
		PluginName: "daily_bar",
		TaskType:   models.TaskTypeBackfill,
	})
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestTriggerManualIncrementalResolvesTradingDay(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(2))}, nil)
	h.markStarted()

	// Pretend today (20260824) is not a trading day.
	h.cal.days = []string{"20260817", "20260818", "20260819", "20260820", "20260821"}

	exec, err := h.s.TriggerManual(context.Background(), models.SyncRequest{PluginName: "daily_bar"})
	require.NoError(t, err)

	assert.Equal(t, models.TriggerTypeManual, exec.TriggerType)
	assert.Equal(t, models.ExecutionStatusPending, exec.Status)
	assert.Equal(t, []string{"20260821"}, exec.DateRange)

	tasks := h.subTasks(t, exec.ExecutionID)
	require.Len(t, tasks, 1)
	assert.Equal(t, "20260821", tasks[0].TradeDate())
	assert.Equal(t, models.TaskTypeIncremental, tasks[0].TaskType)
}

func TestTriggerManualBackfillDecomposition(t *testing.T) {
	bar := testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(2))
	adj := testPlugin("adj_factor", "ods_adj_factor", []string{"daily_bar"}, emitRows(1))
	basic := basicPlugin("stock_basic", "ods_stock_basic", emitRows(3))

	group := map[string]config.PluginGroupConfig{
		"daily_all": {Plugins: []string{"stock_basic", "adj_factor", "daily_bar"}},
	}
	h := newHarness(t, []*plugin.Plugin{bar, adj, basic}, group)
	h.markStarted()

	exec, err := h.s.TriggerGroup(context.Background(), "daily_all", models.GroupTriggerRequest{
		TaskType:   models.TaskTypeBackfill,
		TradeDates: []string{"20260821", "20260820"},
	})
	require.NoError(t, err)

	tasks := h.subTasks(t, exec.ExecutionID)
	require.Len(t, tasks, 5)

	// Date-less reference unit first, then date-major clusters in
	// dependency order.
	assert.Equal(t, "stock_basic", tasks[0].PluginName)
	assert.Equal(t, "", tasks[0].TradeDate())
	assert.Equal(t, "daily_bar", tasks[1].PluginName)
	assert.Equal(t, "20260820", tasks[1].TradeDate())
	assert.Equal(t, "adj_factor", tasks[2].PluginName)
	assert.Equal(t, "20260820", tasks[2].TradeDate())
	assert.Equal(t, "daily_bar", tasks[3].PluginName)
	assert.Equal(t, "20260821", tasks[3].TradeDate())
	assert.Equal(t, "adj_factor", tasks[4].PluginName)
	assert.Equal(t, "20260821", tasks[4].TradeDate())

	assert.Equal(t, []string{"20260820", "20260821"}, exec.DateRange)
	assert.Equal(t, 5, exec.TotalPlugins)
}

func TestTriggerManualForceOverwriteRecorded(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(2))}, nil)
	h.markStarted()

	exec, err := h.s.TriggerManual(context.Background(), models.SyncRequest{
		PluginName:     "daily_bar",
		TaskType:       models.TaskTypeBackfill,
		TradeDates:     []string{"20260820"},
		ForceOverwrite: true,
	})
	require.NoError(t, err)

	tasks := h.subTasks(t, exec.ExecutionID)
	require.Len(t, tasks, 1)
	assert.Equal(t, true, tasks[0].Parameters["force_overwrite"])
}

func TestTriggerManualFullBuildsRangeUnit(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(2))}, nil,
		func(cfg *config.SchedulerConfig) { cfg.MissingWindowDays = 30 })
	h.markStarted()

	exec, err := h.s.TriggerManual(context.Background(), models.SyncRequest{
		PluginName: "daily_bar",
		TaskType:   models.TaskTypeFull,
	})
	require.NoError(t, err)

	tasks := h.subTasks(t, exec.ExecutionID)
	require.Len(t, tasks, 1)
	assert.Equal(t, "", tasks[0].TradeDate())
	assert.Equal(t, "20260725", tasks[0].Parameters["start_date"])
	assert.Equal(t, "20260824", tasks[0].Parameters["end_date"])
}

func TestTriggerGroupValidation(t *testing.T) {
	bar := testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(2))
	groups := map[string]config.PluginGroupConfig{
		"daily_all": {Plugins: []string{"daily_bar", "hk_daily"}, TaskType: "incremental"},
		"ghosts":    {Plugins: []string{"hk_daily"}},
	}
	h := newHarness(t, []*plugin.Plugin{bar}, groups)
	h.markStarted()
	ctx := context.Background()

	_, err := h.s.TriggerGroup(ctx, "missing", models.GroupTriggerRequest{})
	require.ErrorIs(t, err, config.ErrGroupNotFound)

	// Every member unregistered: nothing to run.
	_, err = h.s.TriggerGroup(ctx, "ghosts", models.GroupTriggerRequest{})
	require.ErrorIs(t, err, ErrInvalidRequest)

	// Unregistered members are skipped, the rest run.
	exec, err := h.s.TriggerGroup(ctx, "daily_all", models.GroupTriggerRequest{})
	require.NoError(t, err)
	assert.Equal(t, models.TriggerTypeGroup, exec.TriggerType)
	assert.Equal(t, "daily_all", exec.GroupName)

	tasks := h.subTasks(t, exec.ExecutionID)
	require.Len(t, tasks, 1)
	assert.Equal(t, "daily_bar", tasks[0].PluginName)
}
