package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configDir := t.TempDir()
	err := os.WriteFile(filepath.Join(configDir, "stockdata.yaml"), []byte(content), 0644)
	require.NoError(t, err)
	return configDir
}

func TestInitialize(t *testing.T) {
	configDir := writeConfig(t, `
scheduler:
  worker_count: 4
plugins:
  daily_bar:
    rate_limit_per_minute: 200
plugin_groups:
  my_group:
    plugins: [daily_bar, moneyflow]
    task_type: backfill
`)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	// User value overrides the default
	assert.Equal(t, 4, cfg.Scheduler.WorkerCount)
	// Unset values keep defaults
	assert.Equal(t, 500*time.Millisecond, cfg.Scheduler.PollInterval)
	assert.Equal(t, 30, cfg.Scheduler.RetentionDays)
	assert.Equal(t, 1825, cfg.Scheduler.MissingWindowDays)
	assert.Equal(t, 5, cfg.Arena.AgentCount)
	assert.Equal(t, "18:00", cfg.Arena.DailyEvaluationTime)
	assert.Equal(t, "https://api.tushare.pro", cfg.Provider.BaseURL)
	assert.Equal(t, "LLM_API_KEY", cfg.LLM.APIKeyEnv)

	// Plugin override parsed
	require.Contains(t, cfg.PluginOverrides, "daily_bar")
	require.NotNil(t, cfg.PluginOverrides["daily_bar"].RateLimitPerMinute)
	assert.Equal(t, 200, *cfg.PluginOverrides["daily_bar"].RateLimitPerMinute)

	// Built-in groups survive alongside the user group
	assert.Contains(t, cfg.PluginGroups, "daily_core")
	assert.Contains(t, cfg.PluginGroups, "my_group")

	stats := cfg.Stats()
	assert.Equal(t, 1, stats.PluginOverrides)
	assert.Greater(t, stats.PluginGroups, 1)
}

func TestInitializeConfigNotFound(t *testing.T) {
	ctx := context.Background()
	_, err := Initialize(ctx, "/nonexistent/directory")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := writeConfig(t, `scheduler: [not: a: mapping`)

	ctx := context.Background()
	_, err := Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := writeConfig(t, `
scheduler:
  worker_count: -1
`)

	ctx := context.Background()
	_, err := Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "worker_count")
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("TEST_PROVIDER_URL", "https://provider.example.com")
	configDir := writeConfig(t, `
provider:
  base_url: "{{.TEST_PROVIDER_URL}}"
`)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.Equal(t, "https://provider.example.com", cfg.Provider.BaseURL)
}

func TestGroupLookup(t *testing.T) {
	configDir := writeConfig(t, `
plugin_groups:
  custom:
    plugins: [stock_basic]
`)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	group, err := cfg.Group("custom")
	require.NoError(t, err)
	assert.Equal(t, []string{"stock_basic"}, group.Plugins)

	_, err = cfg.Group("no-such-group")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestUserGroupOverridesBuiltin(t *testing.T) {
	configDir := writeConfig(t, `
plugin_groups:
  daily_core:
    plugins: [daily_bar]
    task_type: full
`)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	group, err := cfg.Group("daily_core")
	require.NoError(t, err)
	assert.Equal(t, []string{"daily_bar"}, group.Plugins)
	assert.Equal(t, "full", group.TaskType)
}
