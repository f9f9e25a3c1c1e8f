package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EliminationEvent holds the schema definition for the EliminationEvent entity.
// Records one strategy removal, whether by evaluator or operator.
type EliminationEvent struct {
	ent.Schema
}

// Fields of the EliminationEvent.
func (EliminationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("event_id"),
		field.String("arena_id").
			Immutable(),
		field.Enum("period").
			Values("daily", "weekly", "monthly", "manual"),
		field.String("strategy_id"),
		field.Float("score").
			Comment("Composite score at elimination time"),
		field.Text("reason"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EliminationEvent.
func (EliminationEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("arena", Arena.Type).
			Ref("eliminations").
			Field("arena_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EliminationEvent.
func (EliminationEvent) Indexes() []ent.Index {
	return []ent.Index{
		// History is read oldest-first per arena
		index.Fields("arena_id", "created_at"),
		index.Fields("strategy_id"),
	}
}
