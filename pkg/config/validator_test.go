package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Scheduler:       DefaultSchedulerConfig(),
		Arena:           DefaultArenaDefaults(),
		LLM:             DefaultLLMConfig(),
		Provider:        DefaultProviderConfig(),
		PluginOverrides: map[string]PluginOverrideConfig{},
		PluginGroups:    GetBuiltinConfig().PluginGroups,
	}
}

func TestValidateAllDefaults(t *testing.T) {
	require.NoError(t, NewValidator(validConfig()).ValidateAll())
}

func TestValidateScheduler(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero worker count",
			mutate:  func(c *Config) { c.Scheduler.WorkerCount = 0 },
			wantErr: "worker_count",
		},
		{
			name:    "zero inner concurrency cap",
			mutate:  func(c *Config) { c.Scheduler.InnerConcurrencyCap = 0 },
			wantErr: "inner_concurrency_cap",
		},
		{
			name:    "zero retention days",
			mutate:  func(c *Config) { c.Scheduler.RetentionDays = 0 },
			wantErr: "retention_days",
		},
		{
			name:    "negative missing window",
			mutate:  func(c *Config) { c.Scheduler.MissingWindowDays = -1 },
			wantErr: "missing_window_days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateArena(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "agent count below floor",
			mutate:  func(c *Config) { c.Arena.AgentCount = 2 },
			wantErr: "agent_count",
		},
		{
			name:    "agent count above ceiling",
			mutate:  func(c *Config) { c.Arena.AgentCount = 11 },
			wantErr: "agent_count",
		},
		{
			name:    "bad evaluation time",
			mutate:  func(c *Config) { c.Arena.DailyEvaluationTime = "25:00" },
			wantErr: "daily_evaluation_time",
		},
		{
			name:    "bad weekly day",
			mutate:  func(c *Config) { c.Arena.WeeklyEvaluationDay = 7 },
			wantErr: "weekly_evaluation_day",
		},
		{
			name:    "monthly day past 28",
			mutate:  func(c *Config) { c.Arena.MonthlyEvaluationDay = 31 },
			wantErr: "monthly_evaluation_day",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidatePluginOverrides(t *testing.T) {
	badLimit := 0
	cfg := validConfig()
	cfg.PluginOverrides = map[string]PluginOverrideConfig{
		"daily_bar": {RateLimitPerMinute: &badLimit},
	}

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit_per_minute")
	assert.Contains(t, err.Error(), "daily_bar")
}

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		name     string
		schedule ScheduleConfig
		wantErr  string
	}{
		{
			name:     "unknown frequency",
			schedule: ScheduleConfig{Frequency: "hourly", Time: "10:00"},
			wantErr:  "schedule.frequency",
		},
		{
			name:     "daily missing time",
			schedule: ScheduleConfig{Frequency: ScheduleFrequencyDaily},
			wantErr:  "schedule.time",
		},
		{
			name:     "weekly bad day",
			schedule: ScheduleConfig{Frequency: ScheduleFrequencyWeekly, Time: "08:00", DayOfWeek: 9},
			wantErr:  "schedule.day_of_week",
		},
		{
			name:     "manual needs nothing else",
			schedule: ScheduleConfig{Frequency: ScheduleFrequencyManual},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := tt.schedule
			cfg := validConfig()
			cfg.PluginOverrides = map[string]PluginOverrideConfig{
				"p": {Schedule: &schedule},
			}
			err := NewValidator(cfg).ValidateAll()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidatePluginGroups(t *testing.T) {
	tests := []struct {
		name    string
		group   PluginGroupConfig
		wantErr string
	}{
		{
			name:    "empty plugin list",
			group:   PluginGroupConfig{},
			wantErr: "at least one plugin",
		},
		{
			name:    "bad task type",
			group:   PluginGroupConfig{Plugins: []string{"a"}, TaskType: "sideways"},
			wantErr: "task_type",
		},
		{
			name:    "duplicate plugin",
			group:   PluginGroupConfig{Plugins: []string{"a", "a"}},
			wantErr: "duplicate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.PluginGroups = map[string]PluginGroupConfig{"g": tt.group}
			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidationErrorFormat(t *testing.T) {
	err := NewValidationError("plugin", "daily_bar", "rate_limit_per_minute", ErrInvalidValue)
	assert.Equal(t, fmt.Sprintf("plugin 'daily_bar': field 'rate_limit_per_minute': %v", ErrInvalidValue), err.Error())
	assert.ErrorIs(t, err, ErrInvalidValue)

	noField := NewValidationError("plugin", "daily_bar", "", ErrInvalidValue)
	assert.Equal(t, fmt.Sprintf("plugin 'daily_bar': %v", ErrInvalidValue), noField.Error())
}
