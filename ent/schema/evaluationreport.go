package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// EvaluationReport holds the schema definition for the EvaluationReport entity.
// Persisted summary of one evaluator pass with its leaderboard snapshot.
type EvaluationReport struct {
	ent.Schema
}

// Fields of the EvaluationReport.
func (EvaluationReport) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("report_id").
			Unique().
			Immutable(),
		field.String("arena_id").
			Immutable(),
		field.Enum("period").
			Values("daily", "weekly", "monthly", "manual"),
		field.Int("evaluated").
			Comment("Strategies scored in this pass"),
		field.Int("eliminated").
			Default(0),
		field.Bool("min_floor_applied").
			Default(false).
			Comment("True when the elimination quota was cut to honor min_active_strategies"),
		field.JSON("rankings", []models.RankingEntry{}).
			Comment("Leaderboard snapshot at evaluation time"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EvaluationReport.
func (EvaluationReport) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("arena", Arena.Type).
			Ref("reports").
			Field("arena_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EvaluationReport.
func (EvaluationReport) Indexes() []ent.Index {
	return []ent.Index{
		// Latest-report lookups scan newest-first per arena
		index.Fields("arena_id", "created_at"),
	}
}
