// Code generated by ent, DO NOT EDIT.

package schemaaudit

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the schemaaudit type in the database.
	Label = "schema_audit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "audit_id"
	// FieldTableName holds the string denoting the table_name field in the database.
	FieldTableName = "table_name"
	// FieldColumnName holds the string denoting the column_name field in the database.
	FieldColumnName = "column_name"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldOldType holds the string denoting the old_type field in the database.
	FieldOldType = "old_type"
	// FieldNewType holds the string denoting the new_type field in the database.
	FieldNewType = "new_type"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the schemaaudit in the database.
	Table = "schema_audits"
)

// Columns holds all SQL columns for schemaaudit fields.
var Columns = []string{
	FieldID,
	FieldTableName,
	FieldColumnName,
	FieldAction,
	FieldOldType,
	FieldNewType,
	FieldReason,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the SchemaAudit queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTableName orders the results by the table_name field.
func ByTableName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTableName, opts...).ToFunc()
}

// ByColumnName orders the results by the column_name field.
func ByColumnName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColumnName, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByOldType orders the results by the old_type field.
func ByOldType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOldType, opts...).ToFunc()
}

// ByNewType orders the results by the new_type field.
func ByNewType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewType, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
