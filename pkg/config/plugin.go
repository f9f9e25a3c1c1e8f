package config

// ScheduleFrequency defines how often a plugin's cron trigger fires
type ScheduleFrequency string

const (
	// ScheduleFrequencyDaily fires every trading day at the configured time
	ScheduleFrequencyDaily ScheduleFrequency = "daily"
	// ScheduleFrequencyWeekly fires once a week on the configured day
	ScheduleFrequencyWeekly ScheduleFrequency = "weekly"
	// ScheduleFrequencyManual never fires from cron
	ScheduleFrequencyManual ScheduleFrequency = "manual"
)

// IsValid checks if the schedule frequency is valid
func (f ScheduleFrequency) IsValid() bool {
	return f == ScheduleFrequencyDaily || f == ScheduleFrequencyWeekly || f == ScheduleFrequencyManual
}

// ScheduleConfig declares when a plugin's cron trigger fires.
type ScheduleConfig struct {
	Frequency ScheduleFrequency `yaml:"frequency"`

	// Time is the wall-clock "HH:MM" for daily and weekly schedules.
	Time string `yaml:"time,omitempty"`

	// DayOfWeek (0=Sunday) applies to weekly schedules only.
	DayOfWeek int `yaml:"day_of_week,omitempty"`
}

// PluginOverrideConfig is the per-plugin YAML override applied on top of the
// built-in catalog. Only set fields override; runtime schedule_enabled
// overrides persisted through the API win over both.
type PluginOverrideConfig struct {
	Enabled            *bool           `yaml:"enabled,omitempty"`
	ScheduleEnabled    *bool           `yaml:"schedule_enabled,omitempty"`
	RateLimitPerMinute *int            `yaml:"rate_limit_per_minute,omitempty"`
	Schedule           *ScheduleConfig `yaml:"schedule,omitempty"`

	// TimeoutSeconds overrides the per-extractor-call timeout.
	TimeoutSeconds *int `yaml:"timeout_seconds,omitempty"`
}

// PluginGroupConfig is a named bundle of plugins triggered together.
type PluginGroupConfig struct {
	Description string   `yaml:"description,omitempty"`
	Plugins     []string `yaml:"plugins"`

	// TaskType is the default task type when the trigger request leaves it
	// unset. One of incremental, full, backfill.
	TaskType string `yaml:"task_type,omitempty"`
}
