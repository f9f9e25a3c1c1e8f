package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// Strategy holds the schema definition for the Strategy entity.
// A rule-set competing inside an Arena, owned by one agent.
type Strategy struct {
	ent.Schema
}

// Fields of the Strategy.
func (Strategy) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("strategy_id").
			Unique().
			Immutable(),
		field.String("arena_id").
			Immutable(),
		field.String("name"),
		field.String("agent_id").
			Comment("Owning agent within the arena roster"),
		field.Enum("agent_role").
			Values("strategy_generator", "strategy_reviewer", "risk_analyst", "market_sentiment", "quant_researcher"),
		field.Enum("stage").
			Values("backtest", "simulated", "live").
			Default("backtest"),
		field.Bool("is_active").
			Default(true).
			Comment("False once eliminated; rows are kept for history"),
		field.Float("current_score").
			Default(0),
		field.Int("current_rank").
			Default(0).
			Comment("1-based leaderboard position; 0 before the first evaluation"),
		field.Text("logic").
			Optional().
			Comment("Natural-language description of the trading idea"),
		field.JSON("rules", models.StrategyRules{}).
			Comment("Typed rule-set the scoring engine evaluates"),
		field.Float("profitability_score").
			Default(0),
		field.Float("risk_score").
			Default(0),
		field.Float("stability_score").
			Default(0),
		field.Float("adaptability_score").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Strategy.
func (Strategy) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("arena", Arena.Type).
			Ref("strategies").
			Field("arena_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Strategy.
func (Strategy) Indexes() []ent.Index {
	return []ent.Index{
		// Active roster and leaderboard queries
		index.Fields("arena_id", "is_active"),

		// Full listing is creation order within an arena
		index.Fields("arena_id", "created_at"),
	}
}
