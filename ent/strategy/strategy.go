// Code generated by ent, DO NOT EDIT.

package strategy

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the strategy type in the database.
	Label = "strategy"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "strategy_id"
	// FieldArenaID holds the string denoting the arena_id field in the database.
	FieldArenaID = "arena_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldAgentRole holds the string denoting the agent_role field in the database.
	FieldAgentRole = "agent_role"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCurrentScore holds the string denoting the current_score field in the database.
	FieldCurrentScore = "current_score"
	// FieldCurrentRank holds the string denoting the current_rank field in the database.
	FieldCurrentRank = "current_rank"
	// FieldLogic holds the string denoting the logic field in the database.
	FieldLogic = "logic"
	// FieldRules holds the string denoting the rules field in the database.
	FieldRules = "rules"
	// FieldProfitabilityScore holds the string denoting the profitability_score field in the database.
	FieldProfitabilityScore = "profitability_score"
	// FieldRiskScore holds the string denoting the risk_score field in the database.
	FieldRiskScore = "risk_score"
	// FieldStabilityScore holds the string denoting the stability_score field in the database.
	FieldStabilityScore = "stability_score"
	// FieldAdaptabilityScore holds the string denoting the adaptability_score field in the database.
	FieldAdaptabilityScore = "adaptability_score"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeArena holds the string denoting the arena edge name in mutations.
	EdgeArena = "arena"
	// ArenaFieldID holds the string denoting the ID field of the Arena.
	ArenaFieldID = "arena_id"
	// Table holds the table name of the strategy in the database.
	Table = "strategies"
	// ArenaTable is the table that holds the arena relation/edge.
	ArenaTable = "strategies"
	// ArenaInverseTable is the table name for the Arena entity.
	// It exists in this package in order to avoid circular dependency with the "arena" package.
	ArenaInverseTable = "arenas"
	// ArenaColumn is the table column denoting the arena relation/edge.
	ArenaColumn = "arena_id"
)

// Columns holds all SQL columns for strategy fields.
var Columns = []string{
	FieldID,
	FieldArenaID,
	FieldName,
	FieldAgentID,
	FieldAgentRole,
	FieldStage,
	FieldIsActive,
	FieldCurrentScore,
	FieldCurrentRank,
	FieldLogic,
	FieldRules,
	FieldProfitabilityScore,
	FieldRiskScore,
	FieldStabilityScore,
	FieldAdaptabilityScore,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCurrentScore holds the default value on creation for the "current_score" field.
	DefaultCurrentScore float64
	// DefaultCurrentRank holds the default value on creation for the "current_rank" field.
	DefaultCurrentRank int
	// DefaultProfitabilityScore holds the default value on creation for the "profitability_score" field.
	DefaultProfitabilityScore float64
	// DefaultRiskScore holds the default value on creation for the "risk_score" field.
	DefaultRiskScore float64
	// DefaultStabilityScore holds the default value on creation for the "stability_score" field.
	DefaultStabilityScore float64
	// DefaultAdaptabilityScore holds the default value on creation for the "adaptability_score" field.
	DefaultAdaptabilityScore float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// AgentRole defines the type for the "agent_role" enum field.
type AgentRole string

// AgentRole values.
const (
	AgentRoleStrategyGenerator AgentRole = "strategy_generator"
	AgentRoleStrategyReviewer  AgentRole = "strategy_reviewer"
	AgentRoleRiskAnalyst       AgentRole = "risk_analyst"
	AgentRoleMarketSentiment   AgentRole = "market_sentiment"
	AgentRoleQuantResearcher   AgentRole = "quant_researcher"
)

func (ar AgentRole) String() string {
	return string(ar)
}

// AgentRoleValidator is a validator for the "agent_role" field enum values. It is called by the builders before save.
func AgentRoleValidator(ar AgentRole) error {
	switch ar {
	case AgentRoleStrategyGenerator, AgentRoleStrategyReviewer, AgentRoleRiskAnalyst, AgentRoleMarketSentiment, AgentRoleQuantResearcher:
		return nil
	default:
		return fmt.Errorf("strategy: invalid enum value for agent_role field: %q", ar)
	}
}

// Stage defines the type for the "stage" enum field.
type Stage string

// StageBacktest is the default value of the Stage enum.
const DefaultStage = StageBacktest

// Stage values.
const (
	StageBacktest  Stage = "backtest"
	StageSimulated Stage = "simulated"
	StageLive      Stage = "live"
)

func (s Stage) String() string {
	return string(s)
}

// StageValidator is a validator for the "stage" field enum values. It is called by the builders before save.
func StageValidator(s Stage) error {
	switch s {
	case StageBacktest, StageSimulated, StageLive:
		return nil
	default:
		return fmt.Errorf("strategy: invalid enum value for stage field: %q", s)
	}
}

// OrderOption defines the ordering options for the Strategy queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByArenaID orders the results by the arena_id field.
func ByArenaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArenaID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByAgentRole orders the results by the agent_role field.
func ByAgentRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentRole, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCurrentScore orders the results by the current_score field.
func ByCurrentScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentScore, opts...).ToFunc()
}

// ByCurrentRank orders the results by the current_rank field.
func ByCurrentRank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentRank, opts...).ToFunc()
}

// ByLogic orders the results by the logic field.
func ByLogic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogic, opts...).ToFunc()
}

// ByProfitabilityScore orders the results by the profitability_score field.
func ByProfitabilityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfitabilityScore, opts...).ToFunc()
}

// ByRiskScore orders the results by the risk_score field.
func ByRiskScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskScore, opts...).ToFunc()
}

// ByStabilityScore orders the results by the stability_score field.
func ByStabilityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStabilityScore, opts...).ToFunc()
}

// ByAdaptabilityScore orders the results by the adaptability_score field.
func ByAdaptabilityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdaptabilityScore, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByArenaField orders the results by arena field.
func ByArenaField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newArenaStep(), sql.OrderByField(field, opts...))
	}
}
func newArenaStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ArenaInverseTable, ArenaFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ArenaTable, ArenaColumn),
	)
}
