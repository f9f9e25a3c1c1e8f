package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubTask holds the schema definition for the SubTask entity.
// One (plugin × parameters) unit inside a BatchExecution.
type SubTask struct {
	ent.Schema
}

// Fields of the SubTask.
func (SubTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("execution_id").
			Immutable(),
		field.String("plugin_name"),
		field.Enum("task_type").
			Values("incremental", "full", "backfill"),
		field.JSON("parameters", map[string]interface{}{}).
			Optional().
			Comment("Dispatch parameters (trade_date, force_overwrite, ...)"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "cancelled", "skipped").
			Default("pending"),
		field.Int("progress").
			Default(0).
			Comment("0-100"),
		field.Int("records_processed").
			Default(0),
		field.Int("records_failed").
			Default(0),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SubTask.
func (SubTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", BatchExecution.Type).
			Ref("sub_tasks").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SubTask.
func (SubTask) Indexes() []ent.Index {
	return []ent.Index{
		// Detail listing is creation order within an execution
		index.Fields("execution_id", "created_at"),
		index.Fields("plugin_name"),
		index.Fields("status"),
	}
}
