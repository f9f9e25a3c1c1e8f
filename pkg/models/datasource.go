package models

import "time"

// SyncRequest is a manual ingestion trigger for a single plugin.
type SyncRequest struct {
	PluginName     string   `json:"plugin_name"`
	TaskType       TaskType `json:"task_type"`
	TradeDates     []string `json:"trade_dates,omitempty"`
	ForceOverwrite bool     `json:"force_overwrite,omitempty"`
}

// GroupTriggerRequest triggers a named plugin group.
type GroupTriggerRequest struct {
	TaskType       TaskType `json:"task_type,omitempty"`
	TradeDates     []string `json:"trade_dates,omitempty"`
	ForceOverwrite bool     `json:"force_overwrite,omitempty"`
}

// ExecutionFilters narrows execution history listings.
type ExecutionFilters struct {
	Status      ExecutionStatus `json:"status,omitempty"`
	TriggerType TriggerType     `json:"trigger_type,omitempty"`
	Limit       int             `json:"limit,omitempty"`
	Offset      int             `json:"offset,omitempty"`
}

// ExecutionDetail is an execution with its sub-tasks loaded.
type ExecutionDetail struct {
	*BatchExecution
	SubTasks []*SubTask `json:"sub_tasks"`
}

// ExecutionListResponse is a paginated execution history page.
type ExecutionListResponse struct {
	Executions []*BatchExecution `json:"executions"`
	TotalCount int               `json:"total_count"`
	Limit      int               `json:"limit"`
	Offset     int               `json:"offset"`
}

// PluginStatus is the per-plugin row of the datasource overview.
type PluginStatus struct {
	Name               string `json:"name"`
	Table              string `json:"table"`
	Role               string `json:"role"`
	Category           string `json:"category"`
	Frequency          string `json:"frequency"`
	RateLimitPerMinute int    `json:"rate_limit_per_minute"`
	ScheduleEnabled    bool   `json:"schedule_enabled"`
	LatestDataDate     string `json:"latest_data_date,omitempty"`
	MissingCount       int    `json:"missing_count"`
}

// PluginSetting is a persisted runtime override for one plugin. It wins over
// the static declaration at dispatch time.
type PluginSetting struct {
	PluginName      string    `json:"plugin_name"`
	ScheduleEnabled bool      `json:"schedule_enabled"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MissingDataReport maps plugin name to its missing trade dates inside the
// inspected window.
type MissingDataReport struct {
	WindowDays int                 `json:"window_days"`
	Missing    map[string][]string `json:"missing"`
}

// SchemaAuditAction classifies a DDL audit entry.
type SchemaAuditAction string

const (
	SchemaAuditActionCreateTable     SchemaAuditAction = "CREATE_TABLE"
	SchemaAuditActionAddColumn       SchemaAuditAction = "ADD_COLUMN"
	SchemaAuditActionWidenType       SchemaAuditAction = "WIDEN_TYPE"
	SchemaAuditActionWidenTypeFailed SchemaAuditAction = "WIDEN_TYPE_FAILED"
)

// SchemaAudit records one schema synchronizer decision against an ODS table.
type SchemaAudit struct {
	ID      int64             `json:"id"`
	Table   string            `json:"table"`
	Column  string            `json:"column,omitempty"`
	Action  SchemaAuditAction `json:"action"`
	OldType string            `json:"old_type,omitempty"`
	NewType string            `json:"new_type,omitempty"`
	Reason  string            `json:"reason,omitempty"`
	At      time.Time         `json:"at"`
}
