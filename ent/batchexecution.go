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
)

// BatchExecution is the model entity for the BatchExecution schema.
type BatchExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TriggerType holds the value of the "trigger_type" field.
	TriggerType batchexecution.TriggerType `json:"trigger_type,omitempty"`
	// Set for group-triggered executions
	GroupName string `json:"group_name,omitempty"`
	// Trade dates this execution covers (YYYYMMDD)
	DateRange []string `json:"date_range,omitempty"`
	// Status holds the value of the "status" field.
	Status batchexecution.Status `json:"status,omitempty"`
	// TotalPlugins holds the value of the "total_plugins" field.
	TotalPlugins int `json:"total_plugins,omitempty"`
	// CompletedPlugins holds the value of the "completed_plugins" field.
	CompletedPlugins int `json:"completed_plugins,omitempty"`
	// FailedPlugins holds the value of the "failed_plugins" field.
	FailedPlugins int `json:"failed_plugins,omitempty"`
	// Aggregated failure lines, one per failed sub-task
	ErrorSummary string `json:"error_summary,omitempty"`
	// CanRetry holds the value of the "can_retry" field.
	CanRetry bool `json:"can_retry,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Optimistic lock guard for counter updates
	Version int64 `json:"version,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BatchExecutionQuery when eager-loading is set.
	Edges        BatchExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BatchExecutionEdges holds the relations/edges for other nodes in the graph.
type BatchExecutionEdges struct {
	// SubTasks holds the value of the sub_tasks edge.
	SubTasks []*SubTask `json:"sub_tasks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SubTasksOrErr returns the SubTasks value or an error if the edge
// was not loaded in eager-loading.
func (e BatchExecutionEdges) SubTasksOrErr() ([]*SubTask, error) {
	if e.loadedTypes[0] {
		return e.SubTasks, nil
	}
	return nil, &NotLoadedError{edge: "sub_tasks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BatchExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case batchexecution.FieldDateRange:
			values[i] = new([]byte)
		case batchexecution.FieldCanRetry:
			values[i] = new(sql.NullBool)
		case batchexecution.FieldTotalPlugins, batchexecution.FieldCompletedPlugins, batchexecution.FieldFailedPlugins, batchexecution.FieldVersion:
			values[i] = new(sql.NullInt64)
		case batchexecution.FieldID, batchexecution.FieldTriggerType, batchexecution.FieldGroupName, batchexecution.FieldStatus, batchexecution.FieldErrorSummary:
			values[i] = new(sql.NullString)
		case batchexecution.FieldStartedAt, batchexecution.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BatchExecution fields.
func (_m *BatchExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case batchexecution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case batchexecution.FieldTriggerType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_type", values[i])
			} else if value.Valid {
				_m.TriggerType = batchexecution.TriggerType(value.String)
			}
		case batchexecution.FieldGroupName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_name", values[i])
			} else if value.Valid {
				_m.GroupName = value.String
			}
		case batchexecution.FieldDateRange:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field date_range", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DateRange); err != nil {
					return fmt.Errorf("unmarshal field date_range: %w", err)
				}
			}
		case batchexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = batchexecution.Status(value.String)
			}
		case batchexecution.FieldTotalPlugins:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_plugins", values[i])
			} else if value.Valid {
				_m.TotalPlugins = int(value.Int64)
			}
		case batchexecution.FieldCompletedPlugins:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_plugins", values[i])
			} else if value.Valid {
				_m.CompletedPlugins = int(value.Int64)
			}
		case batchexecution.FieldFailedPlugins:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_plugins", values[i])
			} else if value.Valid {
				_m.FailedPlugins = int(value.Int64)
			}
		case batchexecution.FieldErrorSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_summary", values[i])
			} else if value.Valid {
				_m.ErrorSummary = value.String
			}
		case batchexecution.FieldCanRetry:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field can_retry", values[i])
			} else if value.Valid {
				_m.CanRetry = value.Bool
			}
		case batchexecution.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case batchexecution.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case batchexecution.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BatchExecution.
// This includes values selected through modifiers, order, etc.
func (_m *BatchExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubTasks queries the "sub_tasks" edge of the BatchExecution entity.
func (_m *BatchExecution) QuerySubTasks() *SubTaskQuery {
	return NewBatchExecutionClient(_m.config).QuerySubTasks(_m)
}

// Update returns a builder for updating this BatchExecution.
// Note that you need to call BatchExecution.Unwrap() before calling this method if this BatchExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BatchExecution) Update() *BatchExecutionUpdateOne {
	return NewBatchExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BatchExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BatchExecution) Unwrap() *BatchExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BatchExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BatchExecution) String() string {
	var builder strings.Builder
	builder.WriteString("BatchExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("trigger_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggerType))
	builder.WriteString(", ")
	builder.WriteString("group_name=")
	builder.WriteString(_m.GroupName)
	builder.WriteString(", ")
	builder.WriteString("date_range=")
	builder.WriteString(fmt.Sprintf("%v", _m.DateRange))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("total_plugins=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPlugins))
	builder.WriteString(", ")
	builder.WriteString("completed_plugins=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedPlugins))
	builder.WriteString(", ")
	builder.WriteString("failed_plugins=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedPlugins))
	builder.WriteString(", ")
	builder.WriteString("error_summary=")
	builder.WriteString(_m.ErrorSummary)
	builder.WriteString(", ")
	builder.WriteString("can_retry=")
	builder.WriteString(fmt.Sprintf("%v", _m.CanRetry))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteByte(')')
	return builder.String()
}

// BatchExecutions is a parsable slice of BatchExecution.
type BatchExecutions []*BatchExecution
