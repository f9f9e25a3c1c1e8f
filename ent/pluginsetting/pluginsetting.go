// Code generated by ent, DO NOT EDIT.

package pluginsetting

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pluginsetting type in the database.
	Label = "plugin_setting"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "plugin_name"
	// FieldScheduleEnabled holds the string denoting the schedule_enabled field in the database.
	FieldScheduleEnabled = "schedule_enabled"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the pluginsetting in the database.
	Table = "plugin_settings"
)

// Columns holds all SQL columns for pluginsetting fields.
var Columns = []string{
	FieldID,
	FieldScheduleEnabled,
	FieldUpdatedAt,
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
	// DefaultScheduleEnabled holds the default value on creation for the "schedule_enabled" field.
	DefaultScheduleEnabled bool
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the PluginSetting queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByScheduleEnabled orders the results by the schedule_enabled field.
func ByScheduleEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduleEnabled, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
