// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/pluginsetting"
)

// PluginSetting is the model entity for the PluginSetting schema.
type PluginSetting struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ScheduleEnabled holds the value of the "schedule_enabled" field.
	ScheduleEnabled bool `json:"schedule_enabled,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PluginSetting) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pluginsetting.FieldScheduleEnabled:
			values[i] = new(sql.NullBool)
		case pluginsetting.FieldID:
			values[i] = new(sql.NullString)
		case pluginsetting.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PluginSetting fields.
func (_m *PluginSetting) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pluginsetting.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pluginsetting.FieldScheduleEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field schedule_enabled", values[i])
			} else if value.Valid {
				_m.ScheduleEnabled = value.Bool
			}
		case pluginsetting.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PluginSetting.
// This includes values selected through modifiers, order, etc.
func (_m *PluginSetting) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PluginSetting.
// Note that you need to call PluginSetting.Unwrap() before calling this method if this PluginSetting
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PluginSetting) Update() *PluginSettingUpdateOne {
	return NewPluginSettingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PluginSetting entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PluginSetting) Unwrap() *PluginSetting {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PluginSetting is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PluginSetting) String() string {
	var builder strings.Builder
	builder.WriteString("PluginSetting(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("schedule_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScheduleEnabled))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PluginSettings is a parsable slice of PluginSetting.
type PluginSettings []*PluginSetting
