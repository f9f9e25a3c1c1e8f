// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/batchexecution"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/subtask"
)

// SubTask is the model entity for the SubTask schema.
type SubTask struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ExecutionID holds the value of the "execution_id" field.
	ExecutionID string `json:"execution_id,omitempty"`
	// PluginName holds the value of the "plugin_name" field.
	PluginName string `json:"plugin_name,omitempty"`
	// TaskType holds the value of the "task_type" field.
	TaskType subtask.TaskType `json:"task_type,omitempty"`
	// Dispatch parameters (trade_date, force_overwrite, ...)
	Parameters map[string]interface{} `json:"parameters,omitempty"`
	// Status holds the value of the "status" field.
	Status subtask.Status `json:"status,omitempty"`
	// 0-100
	Progress int `json:"progress,omitempty"`
	// RecordsProcessed holds the value of the "records_processed" field.
	RecordsProcessed int `json:"records_processed,omitempty"`
	// RecordsFailed holds the value of the "records_failed" field.
	RecordsFailed int `json:"records_failed,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubTaskQuery when eager-loading is set.
	Edges        SubTaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubTaskEdges holds the relations/edges for other nodes in the graph.
type SubTaskEdges struct {
	// Execution holds the value of the execution edge.
	Execution *BatchExecution `json:"execution,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExecutionOrErr returns the Execution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubTaskEdges) ExecutionOrErr() (*BatchExecution, error) {
	if e.Execution != nil {
		return e.Execution, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: batchexecution.Label}
	}
	return nil, &NotLoadedError{edge: "execution"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subtask.FieldParameters:
			values[i] = new([]byte)
		case subtask.FieldProgress, subtask.FieldRecordsProcessed, subtask.FieldRecordsFailed:
			values[i] = new(sql.NullInt64)
		case subtask.FieldID, subtask.FieldExecutionID, subtask.FieldPluginName, subtask.FieldTaskType, subtask.FieldStatus, subtask.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case subtask.FieldStartedAt, subtask.FieldCompletedAt, subtask.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubTask fields.
func (_m *SubTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subtask.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case subtask.FieldExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_id", values[i])
			} else if value.Valid {
				_m.ExecutionID = value.String
			}
		case subtask.FieldPluginName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plugin_name", values[i])
			} else if value.Valid {
				_m.PluginName = value.String
			}
		case subtask.FieldTaskType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_type", values[i])
			} else if value.Valid {
				_m.TaskType = subtask.TaskType(value.String)
			}
		case subtask.FieldParameters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field parameters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Parameters); err != nil {
					return fmt.Errorf("unmarshal field parameters: %w", err)
				}
			}
		case subtask.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = subtask.Status(value.String)
			}
		case subtask.FieldProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value.Valid {
				_m.Progress = int(value.Int64)
			}
		case subtask.FieldRecordsProcessed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field records_processed", values[i])
			} else if value.Valid {
				_m.RecordsProcessed = int(value.Int64)
			}
		case subtask.FieldRecordsFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field records_failed", values[i])
			} else if value.Valid {
				_m.RecordsFailed = int(value.Int64)
			}
		case subtask.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case subtask.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case subtask.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case subtask.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SubTask.
// This includes values selected through modifiers, order, etc.
func (_m *SubTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExecution queries the "execution" edge of the SubTask entity.
func (_m *SubTask) QueryExecution() *BatchExecutionQuery {
	return NewSubTaskClient(_m.config).QueryExecution(_m)
}

// Update returns a builder for updating this SubTask.
// Note that you need to call SubTask.Unwrap() before calling this method if this SubTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SubTask) Update() *SubTaskUpdateOne {
	return NewSubTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SubTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SubTask) Unwrap() *SubTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SubTask) String() string {
	var builder strings.Builder
	builder.WriteString("SubTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("execution_id=")
	builder.WriteString(_m.ExecutionID)
	builder.WriteString(", ")
	builder.WriteString("plugin_name=")
	builder.WriteString(_m.PluginName)
	builder.WriteString(", ")
	builder.WriteString("task_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskType))
	builder.WriteString(", ")
	builder.WriteString("parameters=")
	builder.WriteString(fmt.Sprintf("%v", _m.Parameters))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.Progress))
	builder.WriteString(", ")
	builder.WriteString("records_processed=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecordsProcessed))
	builder.WriteString(", ")
	builder.WriteString("records_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecordsFailed))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SubTasks is a parsable slice of SubTask.
type SubTasks []*SubTask
