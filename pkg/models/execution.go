package models

import "time"

// TriggerType identifies what started a batch execution.
type TriggerType string

const (
	// TriggerTypeScheduled is a cron-originated execution
	TriggerTypeScheduled TriggerType = "scheduled"
	// TriggerTypeManual is a user-submitted sync request
	TriggerTypeManual TriggerType = "manual"
	// TriggerTypeGroup is a plugin-group trigger
	TriggerTypeGroup TriggerType = "group"
	// TriggerTypeRetry is a full retry cloned from a terminal execution
	TriggerTypeRetry TriggerType = "retry"
)

// IsValid checks if the trigger type is valid
func (t TriggerType) IsValid() bool {
	switch t {
	case TriggerTypeScheduled, TriggerTypeManual, TriggerTypeGroup, TriggerTypeRetry:
		return true
	default:
		return false
	}
}

// ExecutionStatus is the lifecycle state of a BatchExecution.
type ExecutionStatus string

const (
	ExecutionStatusPending     ExecutionStatus = "pending"
	ExecutionStatusRunning     ExecutionStatus = "running"
	ExecutionStatusCompleted   ExecutionStatus = "completed"
	ExecutionStatusFailed      ExecutionStatus = "failed"
	ExecutionStatusStopping    ExecutionStatus = "stopping"
	ExecutionStatusStopped     ExecutionStatus = "stopped"
	ExecutionStatusSkipped     ExecutionStatus = "skipped"
	ExecutionStatusInterrupted ExecutionStatus = "interrupted"
)

// IsValid checks if the execution status is valid
func (s ExecutionStatus) IsValid() bool {
	switch s {
	case ExecutionStatusPending, ExecutionStatusRunning, ExecutionStatusCompleted,
		ExecutionStatusFailed, ExecutionStatusStopping, ExecutionStatusStopped,
		ExecutionStatusSkipped, ExecutionStatusInterrupted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further status change is expected.
func (s ExecutionStatus) IsTerminal() bool {
	switch s {
	case ExecutionStatusCompleted, ExecutionStatusFailed, ExecutionStatusStopped,
		ExecutionStatusSkipped, ExecutionStatusInterrupted:
		return true
	default:
		return false
	}
}

// TaskType distinguishes how a sync walks its date space.
type TaskType string

const (
	// TaskTypeIncremental ingests the latest trade date only
	TaskTypeIncremental TaskType = "incremental"
	// TaskTypeFull re-ingests the full declared range
	TaskTypeFull TaskType = "full"
	// TaskTypeBackfill ingests an explicit list of dates
	TaskTypeBackfill TaskType = "backfill"
)

// IsValid checks if the task type is valid
func (t TaskType) IsValid() bool {
	return t == TaskTypeIncremental || t == TaskTypeFull || t == TaskTypeBackfill
}

// SubTaskStatus is the lifecycle state of a SubTask.
type SubTaskStatus string

const (
	SubTaskStatusPending   SubTaskStatus = "pending"
	SubTaskStatusRunning   SubTaskStatus = "running"
	SubTaskStatusCompleted SubTaskStatus = "completed"
	SubTaskStatusFailed    SubTaskStatus = "failed"
	SubTaskStatusCancelled SubTaskStatus = "cancelled"
	SubTaskStatusSkipped   SubTaskStatus = "skipped"
)

// IsValid checks if the sub-task status is valid
func (s SubTaskStatus) IsValid() bool {
	switch s {
	case SubTaskStatusPending, SubTaskStatusRunning, SubTaskStatusCompleted,
		SubTaskStatusFailed, SubTaskStatusCancelled, SubTaskStatusSkipped:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the sub-task has finished.
func (s SubTaskStatus) IsTerminal() bool {
	switch s {
	case SubTaskStatusCompleted, SubTaskStatusFailed, SubTaskStatusCancelled, SubTaskStatusSkipped:
		return true
	default:
		return false
	}
}

// BatchExecution is one top-level unit of ingestion work. Counters are
// recomputed from children and guarded by Version (compare-and-swap on
// update).
type BatchExecution struct {
	ExecutionID      string          `json:"execution_id"`
	TriggerType      TriggerType     `json:"trigger_type"`
	GroupName        string          `json:"group_name,omitempty"`
	DateRange        []string        `json:"date_range,omitempty"`
	Status           ExecutionStatus `json:"status"`
	TotalPlugins     int             `json:"total_plugins"`
	CompletedPlugins int             `json:"completed_plugins"`
	FailedPlugins    int             `json:"failed_plugins"`
	ErrorSummary     string          `json:"error_summary,omitempty"`
	CanRetry         bool            `json:"can_retry"`
	StartedAt        time.Time       `json:"started_at"`
	CompletedAt      *time.Time      `json:"completed_at,omitempty"`
	Version          int64           `json:"-"`
}

// SubTask is one (plugin × parameters) unit inside a BatchExecution.
type SubTask struct {
	TaskID           string         `json:"task_id"`
	ExecutionID      string         `json:"execution_id"`
	PluginName       string         `json:"plugin_name"`
	TaskType         TaskType       `json:"task_type"`
	Parameters       map[string]any `json:"parameters,omitempty"`
	Status           SubTaskStatus  `json:"status"`
	Progress         int            `json:"progress"`
	RecordsProcessed int            `json:"records_processed"`
	RecordsFailed    int            `json:"records_failed"`
	StartedAt        *time.Time     `json:"started_at,omitempty"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
	ErrorMessage     string         `json:"error_message,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

// TradeDate returns the trade_date parameter, or "" for date-less tasks.
func (t *SubTask) TradeDate() string {
	if t.Parameters == nil {
		return ""
	}
	if v, ok := t.Parameters["trade_date"].(string); ok {
		return v
	}
	return ""
}

// NoData reports the completed-with-zero-rows outcome, distinct from failure.
func (t *SubTask) NoData() bool {
	return t.Status == SubTaskStatusCompleted && t.RecordsProcessed == 0
}
