package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/config"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

func TestMissingData(t *testing.T) {
	bar := testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(1))
	etf := testPlugin("etf_daily", "ods_etf_daily", nil, emitRows(1))
	hk := testPlugin("hk_daily", "ods_hk_daily", nil, emitRows(1))
	weekly := testPlugin("moneyflow", "ods_moneyflow", nil, emitRows(1))
	weekly.Schedule = config.ScheduleConfig{
		Frequency: config.ScheduleFrequencyWeekly,
		Time:      "17:30",
		DayOfWeek: 1,
	}
	basic := basicPlugin("stock_basic", "ods_stock_basic", emitRows(1))

	h := newHarness(t, []*plugin.Plugin{bar, etf, hk, weekly, basic}, nil)
	ctx := context.Background()

	h.reader.add("ods_daily_bar", "20260817", "20260818", "20260819", "20260820", "20260821")
	h.reader.add("ods_etf_daily",
		"20260817", "20260818", "20260819", "20260820", "20260821", "20260824")

	_, err := h.s.SetScheduleEnabled(ctx, "hk_daily", false)
	require.NoError(t, err)

	report, err := h.s.MissingData(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 30, report.WindowDays)

	// Weekly, date-less, and schedule-disabled plugins are not listed.
	require.Len(t, report.Missing, 2)
	assert.Equal(t, []string{"20260824"}, report.Missing["daily_bar"])

	covered, ok := report.Missing["etf_daily"]
	require.True(t, ok)
	assert.NotNil(t, covered)
	assert.Empty(t, covered)
}

func TestMissingDataDefaultWindow(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(1))}, nil,
		func(cfg *config.SchedulerConfig) { cfg.MissingWindowDays = 30 })

	report, err := h.s.MissingData(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 30, report.WindowDays)
	assert.Len(t, report.Missing["daily_bar"], 6)
}

func TestPluginStatuses(t *testing.T) {
	bar := testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(1))
	basic := basicPlugin("stock_basic", "ods_stock_basic", emitRows(1))
	h := newHarness(t, []*plugin.Plugin{bar, basic}, nil,
		func(cfg *config.SchedulerConfig) { cfg.MissingWindowDays = 30 })
	ctx := context.Background()

	h.reader.add("ods_daily_bar", "20260817", "20260818", "20260819", "20260820", "20260821")

	statuses, err := h.s.PluginStatuses(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 2)

	assert.Equal(t, "daily_bar", statuses[0].Name)
	assert.Equal(t, "ods_daily_bar", statuses[0].Table)
	assert.Equal(t, "daily", statuses[0].Frequency)
	assert.Equal(t, 60, statuses[0].RateLimitPerMinute)
	assert.True(t, statuses[0].ScheduleEnabled)
	assert.Equal(t, "20260821", statuses[0].LatestDataDate)
	assert.Equal(t, 1, statuses[0].MissingCount)

	assert.Equal(t, "stock_basic", statuses[1].Name)
	assert.Empty(t, statuses[1].LatestDataDate)
	assert.Equal(t, 0, statuses[1].MissingCount)

	// A runtime override flips the reported flag and drops the plugin from
	// the missing-data scan.
	_, err = h.s.SetScheduleEnabled(ctx, "daily_bar", false)
	require.NoError(t, err)

	statuses, err = h.s.PluginStatuses(ctx)
	require.NoError(t, err)
	assert.False(t, statuses[0].ScheduleEnabled)
	assert.Equal(t, 0, statuses[0].MissingCount)
}

func TestSetScheduleEnabled(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_bar", "ods_daily_bar", nil, emitRows(1))}, nil)
	ctx := context.Background()

	// No override stored until one is set.
	_, err := h.stores.PluginSettings.Get(ctx, "daily_bar")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = h.s.SetScheduleEnabled(ctx, "nope", true)
	require.ErrorIs(t, err, plugin.ErrNotFound)

	setting, err := h.s.SetScheduleEnabled(ctx, "daily_bar", false)
	require.NoError(t, err)
	assert.Equal(t, "daily_bar", setting.PluginName)
	assert.False(t, setting.ScheduleEnabled)
	assert.Equal(t, testNow, setting.UpdatedAt)

	stored, err := h.stores.PluginSettings.Get(ctx, "daily_bar")
	require.NoError(t, err)
	assert.False(t, stored.ScheduleEnabled)

	// Flipping back overwrites the prior override.
	_, err = h.s.SetScheduleEnabled(ctx, "daily_bar", true)
	require.NoError(t, err)
	stored, err = h.stores.PluginSettings.Get(ctx, "daily_bar")
	require.NoError(t, err)
	assert.True(t, stored.ScheduleEnabled)
}
