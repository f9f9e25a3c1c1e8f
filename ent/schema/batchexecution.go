package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BatchExecution holds the schema definition for the BatchExecution entity.
// One top-level unit of ingestion work; counters are aggregated from sub-tasks.
type BatchExecution struct {
	ent.Schema
}

// Fields of the BatchExecution.
func (BatchExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.Enum("trigger_type").
			Values("scheduled", "manual", "group", "retry"),
		field.String("group_name").
			Optional().
			Comment("Set for group-triggered executions"),
		field.JSON("date_range", []string{}).
			Optional().
			Comment("Trade dates this execution covers (YYYYMMDD)"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "stopping", "stopped", "skipped", "interrupted").
			Default("pending"),
		field.Int("total_plugins").
			Default(0),
		field.Int("completed_plugins").
			Default(0),
		field.Int("failed_plugins").
			Default(0),
		field.Text("error_summary").
			Optional().
			Comment("Aggregated failure lines, one per failed sub-task"),
		field.Bool("can_retry").
			Default(false),
		field.Time("started_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int64("version").
			Default(1).
			Comment("Optimistic lock guard for counter updates"),
	}
}

// Edges of the BatchExecution.
func (BatchExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sub_tasks", SubTask.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the BatchExecution.
func (BatchExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("trigger_type"),

		// History listing is newest-first, narrowed by status
		index.Fields("status", "started_at"),
		index.Fields("started_at"),
	}
}
