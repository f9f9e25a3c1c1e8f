// Code generated by ent, DO NOT EDIT.

package batchexecution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the batchexecution type in the database.
	Label = "batch_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "execution_id"
	// FieldTriggerType holds the string denoting the trigger_type field in the database.
	FieldTriggerType = "trigger_type"
	// FieldGroupName holds the string denoting the group_name field in the database.
	FieldGroupName = "group_name"
	// FieldDateRange holds the string denoting the date_range field in the database.
	FieldDateRange = "date_range"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTotalPlugins holds the string denoting the total_plugins field in the database.
	FieldTotalPlugins = "total_plugins"
	// FieldCompletedPlugins holds the string denoting the completed_plugins field in the database.
	FieldCompletedPlugins = "completed_plugins"
	// FieldFailedPlugins holds the string denoting the failed_plugins field in the database.
	FieldFailedPlugins = "failed_plugins"
	// FieldErrorSummary holds the string denoting the error_summary field in the database.
	FieldErrorSummary = "error_summary"
	// FieldCanRetry holds the string denoting the can_retry field in the database.
	FieldCanRetry = "can_retry"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// EdgeSubTasks holds the string denoting the sub_tasks edge name in mutations.
	EdgeSubTasks = "sub_tasks"
	// SubTaskFieldID holds the string denoting the ID field of the SubTask.
	SubTaskFieldID = "task_id"
	// Table holds the table name of the batchexecution in the database.
	Table = "batch_executions"
	// SubTasksTable is the table that holds the sub_tasks relation/edge.
	SubTasksTable = "sub_tasks"
	// SubTasksInverseTable is the table name for the SubTask entity.
	// It exists in this package in order to avoid circular dependency with the "subtask" package.
	SubTasksInverseTable = "sub_tasks"
	// SubTasksColumn is the table column denoting the sub_tasks relation/edge.
	SubTasksColumn = "execution_id"
)

// Columns holds all SQL columns for batchexecution fields.
var Columns = []string{
	FieldID,
	FieldTriggerType,
	FieldGroupName,
	FieldDateRange,
	FieldStatus,
	FieldTotalPlugins,
	FieldCompletedPlugins,
	FieldFailedPlugins,
	FieldErrorSummary,
	FieldCanRetry,
	FieldStartedAt,
	FieldCompletedAt,
	FieldVersion,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTotalPlugins holds the default value on creation for the "total_plugins" field.
	DefaultTotalPlugins int
	// DefaultCompletedPlugins holds the default value on creation for the "completed_plugins" field.
	DefaultCompletedPlugins int
	// DefaultFailedPlugins holds the default value on creation for the "failed_plugins" field.
	DefaultFailedPlugins int
	// DefaultCanRetry holds the default value on creation for the "can_retry" field.
	DefaultCanRetry bool
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int64
)

// TriggerType defines the type for the "trigger_type" enum field.
type TriggerType string

// TriggerType values.
const (
	TriggerTypeScheduled TriggerType = "scheduled"
	TriggerTypeManual    TriggerType = "manual"
	TriggerTypeGroup     TriggerType = "group"
	TriggerTypeRetry     TriggerType = "retry"
)

func (tt TriggerType) String() string {
	return string(tt)
}

// TriggerTypeValidator is a validator for the "trigger_type" field enum values. It is called by the builders before save.
func TriggerTypeValidator(tt TriggerType) error {
	switch tt {
	case TriggerTypeScheduled, TriggerTypeManual, TriggerTypeGroup, TriggerTypeRetry:
		return nil
	default:
		return fmt.Errorf("batchexecution: invalid enum value for trigger_type field: %q", tt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending     Status = "pending"
	StatusRunning     Status = "running"
	StatusCompleted   Status = "completed"
	StatusFailed      Status = "failed"
	StatusStopping    Status = "stopping"
	StatusStopped     Status = "stopped"
	StatusSkipped     Status = "skipped"
	StatusInterrupted Status = "interrupted"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed, StatusStopping, StatusStopped, StatusSkipped, StatusInterrupted:
		return nil
	default:
		return fmt.Errorf("batchexecution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the BatchExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTriggerType orders the results by the trigger_type field.
func ByTriggerType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerType, opts...).ToFunc()
}

// ByGroupName orders the results by the group_name field.
func ByGroupName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTotalPlugins orders the results by the total_plugins field.
func ByTotalPlugins(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPlugins, opts...).ToFunc()
}

// ByCompletedPlugins orders the results by the completed_plugins field.
func ByCompletedPlugins(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedPlugins, opts...).ToFunc()
}

// ByFailedPlugins orders the results by the failed_plugins field.
func ByFailedPlugins(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedPlugins, opts...).ToFunc()
}

// ByErrorSummary orders the results by the error_summary field.
func ByErrorSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorSummary, opts...).ToFunc()
}

// ByCanRetry orders the results by the can_retry field.
func ByCanRetry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanRetry, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// BySubTasksCount orders the results by sub_tasks count.
func BySubTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubTasksStep(), opts...)
	}
}

// BySubTasks orders the results by sub_tasks terms.
func BySubTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSubTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubTasksInverseTable, SubTaskFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubTasksTable, SubTasksColumn),
	)
}
