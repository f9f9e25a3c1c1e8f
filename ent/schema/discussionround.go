package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DiscussionRound holds the schema definition for the DiscussionRound entity.
// One multi-agent exchange inside an Arena.
type DiscussionRound struct {
	ent.Schema
}

// Fields of the DiscussionRound.
func (DiscussionRound) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("round_id").
			Unique().
			Immutable(),
		field.String("arena_id").
			Immutable(),
		field.Int("round_number").
			Comment("1-based, monotonic across discussion cycles"),
		field.Enum("mode").
			Values("debate", "collaboration", "review"),
		field.JSON("participants", []string{}).
			Comment("Agent IDs in speaking order"),
		field.JSON("conclusions", map[string]string{}).
			Optional().
			Comment("agent_id -> closing position, filled as agents finish"),
		field.Time("started_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the DiscussionRound.
func (DiscussionRound) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("arena", Arena.Type).
			Ref("rounds").
			Field("arena_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DiscussionRound.
func (DiscussionRound) Indexes() []ent.Index {
	return []ent.Index{
		// Round numbers never repeat within an arena
		index.Fields("arena_id", "round_number").
			Unique(),
	}
}
