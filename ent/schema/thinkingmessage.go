package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ThinkingMessage holds the schema definition for the ThinkingMessage entity.
// Append-only entry in an arena's live stream; also the replay source for
// reconnecting subscribers.
type ThinkingMessage struct {
	ent.Schema
}

// Fields of the ThinkingMessage.
func (ThinkingMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("arena_id").
			Immutable(),
		field.String("agent_id").
			Optional().
			Comment("Empty for system and operator messages"),
		field.Enum("agent_role").
			Values("strategy_generator", "strategy_reviewer", "risk_analyst", "market_sentiment", "quant_researcher").
			Optional().
			Nillable(),
		field.String("round_id").
			Optional(),
		field.Enum("message_type").
			Values("thinking", "argument", "conclusion", "intervention", "system", "error"),
		field.Text("content"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Type-specific data (token usage, report links, source)"),
		field.Int64("sequence").
			Comment("Strictly increasing per arena, assigned at publish time"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ThinkingMessage.
func (ThinkingMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("arena", Arena.Type).
			Ref("messages").
			Field("arena_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ThinkingMessage.
func (ThinkingMessage) Indexes() []ent.Index {
	return []ent.Index{
		// Replay reads are ordered by sequence within an arena
		index.Fields("arena_id", "sequence").
			Unique(),
		index.Fields("round_id"),
	}
}
