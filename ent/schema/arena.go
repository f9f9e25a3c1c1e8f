package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// Arena holds the schema definition for the Arena entity.
// The tournament aggregate; strategies, rounds, messages, eliminations and
// reports hang off it and are removed with it.
type Arena struct {
	ent.Schema
}

// Fields of the Arena.
func (Arena) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("arena_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.JSON("config", models.ArenaConfig{}).
			Comment("Agent count, elimination floor, discussion settings, symbol universe"),
		field.Enum("state").
			Values("created", "initializing", "discussing", "backtesting", "simulating", "evaluating", "paused", "completed", "failed").
			Default("created"),
		field.Enum("resume_state").
			Values("created", "initializing", "discussing", "backtesting", "simulating", "evaluating", "paused", "completed", "failed").
			Optional().
			Nillable().
			Comment("Phase to re-enter after a pause; nil unless paused"),
		field.Int("rounds_completed").
			Default(0),
		field.Int("evaluations_run").
			Default(0),
		field.Text("last_error").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Arena.
func (Arena) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("strategies", Strategy.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("rounds", DiscussionRound.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("messages", ThinkingMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("eliminations", EliminationEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("reports", EvaluationReport.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Arena.
func (Arena) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),

		// Listing is newest-first
		index.Fields("created_at"),
	}
}
