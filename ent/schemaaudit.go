// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/schemaaudit"
)

// SchemaAudit is the model entity for the SchemaAudit schema.
type SchemaAudit struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// TableName holds the value of the "table_name" field.
	TableName string `json:"table_name,omitempty"`
	// Empty for table-level actions (CREATE_TABLE)
	ColumnName string `json:"column_name,omitempty"`
	// CREATE_TABLE, ADD_COLUMN, WIDEN_TYPE or WIDEN_TYPE_FAILED
	Action string `json:"action,omitempty"`
	// OldType holds the value of the "old_type" field.
	OldType string `json:"old_type,omitempty"`
	// NewType holds the value of the "new_type" field.
	NewType string `json:"new_type,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SchemaAudit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case schemaaudit.FieldID:
			values[i] = new(sql.NullInt64)
		case schemaaudit.FieldTableName, schemaaudit.FieldColumnName, schemaaudit.FieldAction, schemaaudit.FieldOldType, schemaaudit.FieldNewType, schemaaudit.FieldReason:
			values[i] = new(sql.NullString)
		case schemaaudit.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SchemaAudit fields.
func (_m *SchemaAudit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case schemaaudit.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case schemaaudit.FieldTableName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field table_name", values[i])
			} else if value.Valid {
				_m.TableName = value.String
			}
		case schemaaudit.FieldColumnName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field column_name", values[i])
			} else if value.Valid {
				_m.ColumnName = value.String
			}
		case schemaaudit.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case schemaaudit.FieldOldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field old_type", values[i])
			} else if value.Valid {
				_m.OldType = value.String
			}
		case schemaaudit.FieldNewType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field new_type", values[i])
			} else if value.Valid {
				_m.NewType = value.String
			}
		case schemaaudit.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case schemaaudit.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SchemaAudit.
// This includes values selected through modifiers, order, etc.
func (_m *SchemaAudit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SchemaAudit.
// Note that you need to call SchemaAudit.Unwrap() before calling this method if this SchemaAudit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SchemaAudit) Update() *SchemaAuditUpdateOne {
	return NewSchemaAuditClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SchemaAudit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SchemaAudit) Unwrap() *SchemaAudit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SchemaAudit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SchemaAudit) String() string {
	var builder strings.Builder
	builder.WriteString("SchemaAudit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("table_name=")
	builder.WriteString(_m.TableName)
	builder.WriteString(", ")
	builder.WriteString("column_name=")
	builder.WriteString(_m.ColumnName)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("old_type=")
	builder.WriteString(_m.OldType)
	builder.WriteString(", ")
	builder.WriteString("new_type=")
	builder.WriteString(_m.NewType)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SchemaAudits is a parsable slice of SchemaAudit.
type SchemaAudits []*SchemaAudit
