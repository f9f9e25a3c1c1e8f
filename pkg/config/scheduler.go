package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SchedulerConfig contains worker pool and housekeeping configuration for the
// ingestion scheduler. These values control how sub-tasks are polled, claimed,
// and processed.
type SchedulerConfig struct {
	// WorkerCount is the number of sub-task worker goroutines.
	WorkerCount int `yaml:"worker_count"`

	// InnerConcurrencyCap bounds the per-sub-task date fan-out regardless of
	// how generous the plugin's rate limit is.
	InnerConcurrencyCap int `yaml:"inner_concurrency_cap"`

	// PollInterval is the base interval for checking dispatchable sub-tasks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// SubTaskTimeout is the maximum wall-clock time one sub-task may run.
	SubTaskTimeout time.Duration `yaml:"sub_task_timeout"`

	// GracefulShutdownTimeout is the max time to wait for in-flight sub-tasks
	// to reach a batch boundary during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// RetentionDays is how many days execution and sub-task history is kept
	// before the sweep prunes it.
	RetentionDays int `yaml:"retention_days"`

	// RetentionSweepInterval is how often the retention sweep runs.
	RetentionSweepInterval time.Duration `yaml:"retention_sweep_interval"`

	// MissingWindowDays is the default lookback window of the missing-data
	// detector.
	MissingWindowDays int `yaml:"missing_window_days"`
}

// ParseWallClock splits an "HH:MM" schedule time into its components.
// Plugin schedules and arena evaluation timers share this format.
func ParseWallClock(v string) (hour, minute int, err error) {
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid schedule time %q: want HH:MM", v)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid schedule hour %q", parts[0])
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid schedule minute %q", parts[1])
	}
	return hour, minute, nil
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		WorkerCount:             3,
		InnerConcurrencyCap:     8,
		PollInterval:            500 * time.Millisecond,
		PollIntervalJitter:      200 * time.Millisecond,
		SubTaskTimeout:          30 * time.Minute,
		GracefulShutdownTimeout: 2 * time.Minute,
		RetentionDays:           30,
		RetentionSweepInterval:  12 * time.Hour,
		MissingWindowDays:       1825,
	}
}
