// Code generated by ent, DO NOT EDIT.

package thinkingmessage

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the thinkingmessage type in the database.
	Label = "thinking_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "message_id"
	// FieldArenaID holds the string denoting the arena_id field in the database.
	FieldArenaID = "arena_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldAgentRole holds the string denoting the agent_role field in the database.
	FieldAgentRole = "agent_role"
	// FieldRoundID holds the string denoting the round_id field in the database.
	FieldRoundID = "round_id"
	// FieldMessageType holds the string denoting the message_type field in the database.
	FieldMessageType = "message_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeArena holds the string denoting the arena edge name in mutations.
	EdgeArena = "arena"
	// ArenaFieldID holds the string denoting the ID field of the Arena.
	ArenaFieldID = "arena_id"
	// Table holds the table name of the thinkingmessage in the database.
	Table = "thinking_messages"
	// ArenaTable is the table that holds the arena relation/edge.
	ArenaTable = "thinking_messages"
	// ArenaInverseTable is the table name for the Arena entity.
	// It exists in this package in order to avoid circular dependency with the "arena" package.
	ArenaInverseTable = "arenas"
	// ArenaColumn is the table column denoting the arena relation/edge.
	ArenaColumn = "arena_id"
)

// Columns holds all SQL columns for thinkingmessage fields.
var Columns = []string{
	FieldID,
	FieldArenaID,
	FieldAgentID,
	FieldAgentRole,
	FieldRoundID,
	FieldMessageType,
	FieldContent,
	FieldMetadata,
	FieldSequence,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
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
		return fmt.Errorf("thinkingmessage: invalid enum value for agent_role field: %q", ar)
	}
}

// MessageType defines the type for the "message_type" enum field.
type MessageType string

// MessageType values.
const (
	MessageTypeThinking     MessageType = "thinking"
	MessageTypeArgument     MessageType = "argument"
	MessageTypeConclusion   MessageType = "conclusion"
	MessageTypeIntervention MessageType = "intervention"
	MessageTypeSystem       MessageType = "system"
	MessageTypeError        MessageType = "error"
)

func (mt MessageType) String() string {
	return string(mt)
}

// MessageTypeValidator is a validator for the "message_type" field enum values. It is called by the builders before save.
func MessageTypeValidator(mt MessageType) error {
	switch mt {
	case MessageTypeThinking, MessageTypeArgument, MessageTypeConclusion, MessageTypeIntervention, MessageTypeSystem, MessageTypeError:
		return nil
	default:
		return fmt.Errorf("thinkingmessage: invalid enum value for message_type field: %q", mt)
	}
}

// OrderOption defines the ordering options for the ThinkingMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByArenaID orders the results by the arena_id field.
func ByArenaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArenaID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByAgentRole orders the results by the agent_role field.
func ByAgentRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentRole, opts...).ToFunc()
}

// ByRoundID orders the results by the round_id field.
func ByRoundID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoundID, opts...).ToFunc()
}

// ByMessageType orders the results by the message_type field.
func ByMessageType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageType, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
