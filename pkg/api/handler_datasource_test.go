package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/config"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
)

func TestPluginsEndpoint(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_quote", "ods_daily_quote", 2)}, nil)
	h.reader.add("ods_daily_quote", "20260820", "20260821")

	rec, envelope := h.do(t, http.MethodGet, "/api/datasource/plugins", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 0, envelope.Code)

	statuses := dataAs[[]*models.PluginStatus](t, envelope)
	require.Len(t, statuses, 1)
	assert.Equal(t, "daily_quote", statuses[0].Name)
	assert.Equal(t, "ods_daily_quote", statuses[0].Table)
	assert.True(t, statuses[0].ScheduleEnabled)
	assert.Equal(t, "20260821", statuses[0].LatestDataDate)
	// 20260817..20260824 has six trading days, two are present.
	assert.Equal(t, 4, statuses[0].MissingCount)
}

func TestSyncEndpoint(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_quote", "ods_daily_quote", 3)}, nil)

	t.Run("missing plugin name rejected", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodPost, "/api/datasource/sync", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
		assert.Contains(t, envelope.Message, "plugin_name")
	})

	t.Run("unknown plugin maps to not found", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodPost, "/api/datasource/sync",
			map[string]any{"plugin_name": "nope"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, codeNotFound, envelope.Code)
	})

	t.Run("invalid task type rejected", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodPost, "/api/datasource/sync",
			map[string]any{"plugin_name": "daily_quote", "task_type": "hourly"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodPost, "/api/datasource/sync", "not an object")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
	})

	t.Run("incremental sync runs to completion", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodPost, "/api/datasource/sync",
			map[string]any{"plugin_name": "daily_quote"})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 0, envelope.Code, "message: %s", envelope.Message)

		ref := dataAs[ExecutionRef](t, envelope)
		require.NotEmpty(t, ref.ExecutionID)

		require.Eventually(t, func() bool {
			_, env := h.do(t, http.MethodGet, "/api/datasource/executions/"+ref.ExecutionID, nil)
			detail := dataAs[models.ExecutionDetail](t, env)
			return detail.Status == models.ExecutionStatusCompleted
		}, 5*time.Second, 20*time.Millisecond)

		_, env := h.do(t, http.MethodGet, "/api/datasource/executions/"+ref.ExecutionID, nil)
		detail := dataAs[models.ExecutionDetail](t, env)
		assert.Equal(t, 1, detail.TotalPlugins)
		assert.Equal(t, 1, detail.CompletedPlugins)
		require.Len(t, detail.SubTasks, 1)
		assert.Equal(t, models.SubTaskStatusCompleted, detail.SubTasks[0].Status)
		assert.Equal(t, 3, detail.SubTasks[0].RecordsProcessed)
	})
}

func TestGroupTriggerEndpoint(t *testing.T) {
	groups := map[string]config.PluginGroupConfig{
		"market_daily": {Plugins: []string{"daily_quote"}},
	}
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_quote", "ods_daily_quote", 2)}, groups)

	t.Run("unknown group maps to not found", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodPost, "/api/datasource/group/nope/trigger", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, codeNotFound, envelope.Code)
	})

	t.Run("trigger without body uses group defaults", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodPost, "/api/datasource/group/market_daily/trigger", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 0, envelope.Code, "message: %s", envelope.Message)
		assert.NotEmpty(t, dataAs[ExecutionRef](t, envelope).ExecutionID)
	})
}

func TestMissingEndpoint(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_quote", "ods_daily_quote", 2)}, nil)
	h.reader.add("ods_daily_quote", "20260820", "20260821", "20260824")

	t.Run("invalid window rejected", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodGet, "/api/datasource/missing?window_days=abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
	})

	t.Run("report lists uncovered trading days", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodGet, "/api/datasource/missing?window_days=7", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 0, envelope.Code)

		report := dataAs[models.MissingDataReport](t, envelope)
		assert.Equal(t, 7, report.WindowDays)
		assert.Equal(t, []string{"20260817", "20260818", "20260819"}, report.Missing["daily_quote"])
	})
}

func TestScheduleOverrideEndpoint(t *testing.T) {
	h := newHarness(t, []*plugin.Plugin{testPlugin("daily_quote", "ods_daily_quote", 2)}, nil)

	t.Run("missing flag rejected", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodPost, "/api/datasource/plugins/daily_quote/schedule",
			map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeInvalidArgs, envelope.Code)
		assert.Contains(t, envelope.Message, "schedule_enabled")
	})

	t.Run("unknown plugin maps to not found", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodPost, "/api/datasource/plugins/nope/schedule",
			map[string]any{"schedule_enabled": false})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, codeNotFound, envelope.Code)
	})

	t.Run("override persists and shows in plugin status", func(t *testing.T) {
		rec, envelope := h.do(t, http.MethodPost, "/api/datasource/plugins/daily_quote/schedule",
			map[string]any{"schedule_enabled": false})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 0, envelope.Code)

		setting := dataAs[models.PluginSetting](t, envelope)
		assert.Equal(t, "daily_quote", setting.PluginName)
		assert.False(t, setting.ScheduleEnabled)

		_, env := h.do(t, http.MethodGet, "/api/datasource/plugins", nil)
		statuses := dataAs[[]*models.PluginStatus](t, env)
		require.Len(t, statuses, 1)
		assert.False(t, statuses[0].ScheduleEnabled)
	})
}
