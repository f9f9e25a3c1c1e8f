// Code generated by ent, DO NOT EDIT.

package subtask

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the subtask type in the database.
	Label = "sub_task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldExecutionID holds the string denoting the execution_id field in the database.
	FieldExecutionID = "execution_id"
	// FieldPluginName holds the string denoting the plugin_name field in the database.
	FieldPluginName = "plugin_name"
	// FieldTaskType holds the string denoting the task_type field in the database.
	FieldTaskType = "task_type"
	// FieldParameters holds the string denoting the parameters field in the database.
	FieldParameters = "parameters"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProgress holds the string denoting the progress field in the database.
	FieldProgress = "progress"
	// FieldRecordsProcessed holds the string denoting the records_processed field in the database.
	FieldRecordsProcessed = "records_processed"
	// FieldRecordsFailed holds the string denoting the records_failed field in the database.
	FieldRecordsFailed = "records_failed"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeExecution holds the string denoting the execution edge name in mutations.
	EdgeExecution = "execution"
	// BatchExecutionFieldID holds the string denoting the ID field of the BatchExecution.
	BatchExecutionFieldID = "execution_id"
	// Table holds the table name of the subtask in the database.
	Table = "sub_tasks"
	// ExecutionTable is the table that holds the execution relation/edge.
	ExecutionTable = "sub_tasks"
	// ExecutionInverseTable is the table name for the BatchExecution entity.
	// It exists in this package in order to avoid circular dependency with the "batchexecution" package.
	ExecutionInverseTable = "batch_executions"
	// ExecutionColumn is the table column denoting the execution relation/edge.
	ExecutionColumn = "execution_id"
)

// Columns holds all SQL columns for subtask fields.
var Columns = []string{
	FieldID,
	FieldExecutionID,
	FieldPluginName,
	FieldTaskType,
	FieldParameters,
	FieldStatus,
	FieldProgress,
	FieldRecordsProcessed,
	FieldRecordsFailed,
	FieldStartedAt,
	FieldCompletedAt,
	FieldErrorMessage,
	FieldCreatedAt,
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
	// DefaultProgress holds the default value on creation for the "progress" field.
	DefaultProgress int
	// DefaultRecordsProcessed holds the default value on creation for the "records_processed" field.
	DefaultRecordsProcessed int
	// DefaultRecordsFailed holds the default value on creation for the "records_failed" field.
	DefaultRecordsFailed int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// TaskType defines the type for the "task_type" enum field.
type TaskType string

// TaskType values.
const (
	TaskTypeIncremental TaskType = "incremental"
	TaskTypeFull        TaskType = "full"
	TaskTypeBackfill    TaskType = "backfill"
)

func (tt TaskType) String() string {
	return string(tt)
}

// TaskTypeValidator is a validator for the "task_type" field enum values. It is called by the builders before save.
func TaskTypeValidator(tt TaskType) error {
	switch tt {
	case TaskTypeIncremental, TaskTypeFull, TaskTypeBackfill:
		return nil
	default:
		return fmt.Errorf("subtask: invalid enum value for task_type field: %q", tt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
	StatusSkipped   Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed, StatusCancelled, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("subtask: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the SubTask queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExecutionID orders the results by the execution_id field.
func ByExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionID, opts...).ToFunc()
}

// ByPluginName orders the results by the plugin_name field.
func ByPluginName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPluginName, opts...).ToFunc()
}

// ByTaskType orders the results by the task_type field.
func ByTaskType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProgress orders the results by the progress field.
func ByProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgress, opts...).ToFunc()
}

// ByRecordsProcessed orders the results by the records_processed field.
func ByRecordsProcessed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordsProcessed, opts...).ToFunc()
}

// ByRecordsFailed orders the results by the records_failed field.
func ByRecordsFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordsFailed, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByExecutionField orders the results by execution field.
func ByExecutionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionStep(), sql.OrderByField(field, opts...))
	}
}
func newExecutionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionInverseTable, BatchExecutionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
	)
}
