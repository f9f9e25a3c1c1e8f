package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SchemaAudit holds the schema definition for the SchemaAudit entity.
// Append-only log of schema synchronizer decisions against ODS tables.
type SchemaAudit struct {
	ent.Schema
}

// Fields of the SchemaAudit.
func (SchemaAudit) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("audit_id"),
		field.String("table_name"),
		field.String("column_name").
			Optional().
			Comment("Empty for table-level actions (CREATE_TABLE)"),
		field.String("action").
			Comment("CREATE_TABLE, ADD_COLUMN, WIDEN_TYPE or WIDEN_TYPE_FAILED"),
		field.String("old_type").
			Optional(),
		field.String("new_type").
			Optional(),
		field.Text("reason").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SchemaAudit.
func (SchemaAudit) Indexes() []ent.Index {
	return []ent.Index{
		// History is read newest-first, optionally per table
		index.Fields("table_name", "created_at"),
		index.Fields("created_at"),
	}
}
