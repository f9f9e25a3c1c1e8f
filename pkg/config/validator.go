package config

import (
	"fmt"
	"regexp"
)

var wallClockRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var groupTaskTypes = map[string]bool{
	"":            true, // unset falls back to incremental at trigger time
	"incremental": true,
	"full":        true,
	"backfill":    true,
}

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateScheduler(); err != nil {
		return fmt.Errorf("scheduler validation failed: %w", err)
	}

	if err := v.validateArena(); err != nil {
		return fmt.Errorf("arena validation failed: %w", err)
	}

	if err := v.validateLLM(); err != nil {
		return fmt.Errorf("llm validation failed: %w", err)
	}

	if err := v.validateProvider(); err != nil {
		return fmt.Errorf("provider validation failed: %w", err)
	}

	if err := v.validatePluginOverrides(); err != nil {
		return fmt.Errorf("plugin override validation failed: %w", err)
	}

	if err := v.validatePluginGroups(); err != nil {
		return fmt.Errorf("plugin group validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateScheduler() error {
	s := v.cfg.Scheduler
	if s.WorkerCount < 1 {
		return NewValidationError("scheduler", "scheduler", "worker_count",
			fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidValue, s.WorkerCount))
	}
	if s.InnerConcurrencyCap < 1 {
		return NewValidationError("scheduler", "scheduler", "inner_concurrency_cap",
			fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidValue, s.InnerConcurrencyCap))
	}
	if s.RetentionDays < 1 {
		return NewValidationError("scheduler", "scheduler", "retention_days",
			fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidValue, s.RetentionDays))
	}
	if s.MissingWindowDays < 1 {
		return NewValidationError("scheduler", "scheduler", "missing_window_days",
			fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidValue, s.MissingWindowDays))
	}
	return nil
}

func (v *ConfigValidator) validateArena() error {
	a := v.cfg.Arena
	if a.AgentCount < 3 || a.AgentCount > 10 {
		return NewValidationError("arena", "defaults", "agent_count",
			fmt.Errorf("%w: must be between 3 and 10, got %d", ErrInvalidValue, a.AgentCount))
	}
	if a.MinActiveStrategies < 1 {
		return NewValidationError("arena", "defaults", "min_active_strategies",
			fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidValue, a.MinActiveStrategies))
	}
	if a.DiscussionMaxRounds < 1 {
		return NewValidationError("arena", "defaults", "discussion_max_rounds",
			fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidValue, a.DiscussionMaxRounds))
	}
	if !wallClockRe.MatchString(a.DailyEvaluationTime) {
		return NewValidationError("arena", "defaults", "daily_evaluation_time",
			fmt.Errorf("%w: want HH:MM, got %q", ErrInvalidValue, a.DailyEvaluationTime))
	}
	if !wallClockRe.MatchString(a.PortfolioAnalysisTime) {
		return NewValidationError("arena", "defaults", "portfolio_analysis_time",
			fmt.Errorf("%w: want HH:MM, got %q", ErrInvalidValue, a.PortfolioAnalysisTime))
	}
	if a.WeeklyEvaluationDay < 0 || a.WeeklyEvaluationDay > 6 {
		return NewValidationError("arena", "defaults", "weekly_evaluation_day",
			fmt.Errorf("%w: must be between 0 and 6, got %d", ErrInvalidValue, a.WeeklyEvaluationDay))
	}
	if a.MonthlyEvaluationDay < 1 || a.MonthlyEvaluationDay > 28 {
		return NewValidationError("arena", "defaults", "monthly_evaluation_day",
			fmt.Errorf("%w: must be between 1 and 28, got %d", ErrInvalidValue, a.MonthlyEvaluationDay))
	}
	if a.StreamQueueSize < 1 {
		return NewValidationError("arena", "defaults", "stream_queue_size",
			fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidValue, a.StreamQueueSize))
	}
	return nil
}

func (v *ConfigValidator) validateLLM() error {
	l := v.cfg.LLM
	if l.BaseURL == "" {
		return NewValidationError("llm", "llm", "base_url", ErrMissingRequiredField)
	}
	if l.Model == "" {
		return NewValidationError("llm", "llm", "model", ErrMissingRequiredField)
	}
	return nil
}

func (v *ConfigValidator) validateProvider() error {
	p := v.cfg.Provider
	if p.BaseURL == "" {
		return NewValidationError("provider", "provider", "base_url", ErrMissingRequiredField)
	}
	if p.TimeoutSeconds < 1 {
		return NewValidationError("provider", "provider", "timeout_seconds",
			fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidValue, p.TimeoutSeconds))
	}
	return nil
}

func (v *ConfigValidator) validatePluginOverrides() error {
	for name, override := range v.cfg.PluginOverrides {
		if override.RateLimitPerMinute != nil && *override.RateLimitPerMinute < 1 {
			return NewValidationError("plugin", name, "rate_limit_per_minute",
				fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidValue, *override.RateLimitPerMinute))
		}
		if override.TimeoutSeconds != nil && *override.TimeoutSeconds < 1 {
			return NewValidationError("plugin", name, "timeout_seconds",
				fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidValue, *override.TimeoutSeconds))
		}
		if override.Schedule != nil {
			if err := v.validateSchedule(name, override.Schedule); err != nil {
				return err
			}
		}
	}
	return nil
}

func (v *ConfigValidator) validateSchedule(pluginName string, schedule *ScheduleConfig) error {
	if !schedule.Frequency.IsValid() {
		return NewValidationError("plugin", pluginName, "schedule.frequency",
			fmt.Errorf("%w: %q", ErrInvalidValue, schedule.Frequency))
	}
	if schedule.Frequency == ScheduleFrequencyManual {
		return nil
	}
	if !wallClockRe.MatchString(schedule.Time) {
		return NewValidationError("plugin", pluginName, "schedule.time",
			fmt.Errorf("%w: want HH:MM, got %q", ErrInvalidValue, schedule.Time))
	}
	if schedule.Frequency == ScheduleFrequencyWeekly && (schedule.DayOfWeek < 0 || schedule.DayOfWeek > 6) {
		return NewValidationError("plugin", pluginName, "schedule.day_of_week",
			fmt.Errorf("%w: must be between 0 and 6, got %d", ErrInvalidValue, schedule.DayOfWeek))
	}
	return nil
}

func (v *ConfigValidator) validatePluginGroups() error {
	for name, group := range v.cfg.PluginGroups {
		if len(group.Plugins) == 0 {
			return NewValidationError("plugin_group", name, "plugins",
				fmt.Errorf("%w: at least one plugin required", ErrMissingRequiredField))
		}
		if !groupTaskTypes[group.TaskType] {
			return NewValidationError("plugin_group", name, "task_type",
				fmt.Errorf("%w: %q", ErrInvalidValue, group.TaskType))
		}
		seen := make(map[string]bool, len(group.Plugins))
		for _, plugin := range group.Plugins {
			if plugin == "" {
				return NewValidationError("plugin_group", name, "plugins",
					fmt.Errorf("%w: empty plugin name", ErrInvalidValue))
			}
			if seen[plugin] {
				return NewValidationError("plugin_group", name, "plugins",
					fmt.Errorf("%w: duplicate plugin %q", ErrInvalidValue, plugin))
			}
			seen[plugin] = true
		}
	}
	return nil
}
