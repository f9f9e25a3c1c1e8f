// Code generated by ent, DO NOT EDIT.

package arena

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the arena type in the database.
	Label = "arena"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "arena_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldResumeState holds the string denoting the resume_state field in the database.
	FieldResumeState = "resume_state"
	// FieldRoundsCompleted holds the string denoting the rounds_completed field in the database.
	FieldRoundsCompleted = "rounds_completed"
	// FieldEvaluationsRun holds the string denoting the evaluations_run field in the database.
	FieldEvaluationsRun = "evaluations_run"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeStrategies holds the string denoting the strategies edge name in mutations.
	EdgeStrategies = "strategies"
	// EdgeRounds holds the string denoting the rounds edge name in mutations.
	EdgeRounds = "rounds"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeEliminations holds the string denoting the eliminations edge name in mutations.
	EdgeEliminations = "eliminations"
	// EdgeReports holds the string denoting the reports edge name in mutations.
	EdgeReports = "reports"
	// StrategyFieldID holds the string denoting the ID field of the Strategy.
	StrategyFieldID = "strategy_id"
	// DiscussionRoundFieldID holds the string denoting the ID field of the DiscussionRound.
	DiscussionRoundFieldID = "round_id"
	// ThinkingMessageFieldID holds the string denoting the ID field of the ThinkingMessage.
	ThinkingMessageFieldID = "message_id"
	// EliminationEventFieldID holds the string denoting the ID field of the EliminationEvent.
	EliminationEventFieldID = "event_id"
	// EvaluationReportFieldID holds the string denoting the ID field of the EvaluationReport.
	EvaluationReportFieldID = "report_id"
	// Table holds the table name of the arena in the database.
	Table = "arenas"
	// StrategiesTable is the table that holds the strategies relation/edge.
	StrategiesTable = "strategies"
	// StrategiesInverseTable is the table name for the Strategy entity.
	// It exists in this package in order to avoid circular dependency with the "strategy" package.
	StrategiesInverseTable = "strategies"
	// StrategiesColumn is the table column denoting the strategies relation/edge.
	StrategiesColumn = "arena_id"
	// RoundsTable is the table that holds the rounds relation/edge.
	RoundsTable = "discussion_rounds"
	// RoundsInverseTable is the table name for the DiscussionRound entity.
	// It exists in this package in order to avoid circular dependency with the "discussionround" package.
	RoundsInverseTable = "discussion_rounds"
	// RoundsColumn is the table column denoting the rounds relation/edge.
	RoundsColumn = "arena_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "thinking_messages"
	// MessagesInverseTable is the table name for the ThinkingMessage entity.
	// It exists in this package in order to avoid circular dependency with the "thinkingmessage" package.
	MessagesInverseTable = "thinking_messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "arena_id"
	// EliminationsTable is the table that holds the eliminations relation/edge.
	EliminationsTable = "elimination_events"
	// EliminationsInverseTable is the table name for the EliminationEvent entity.
	// It exists in this package in order to avoid circular dependency with the "eliminationevent" package.
	EliminationsInverseTable = "elimination_events"
	// EliminationsColumn is the table column denoting the eliminations relation/edge.
	EliminationsColumn = "arena_id"
	// ReportsTable is the table that holds the reports relation/edge.
	ReportsTable = "evaluation_reports"
	// ReportsInverseTable is the table name for the EvaluationReport entity.
	// It exists in this package in order to avoid circular dependency with the "evaluationreport" package.
	ReportsInverseTable = "evaluation_reports"
	// ReportsColumn is the table column denoting the reports relation/edge.
	ReportsColumn = "arena_id"
)

// Columns holds all SQL columns for arena fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldConfig,
	FieldState,
	FieldResumeState,
	FieldRoundsCompleted,
	FieldEvaluationsRun,
	FieldLastError,
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
	// DefaultRoundsCompleted holds the default value on creation for the "rounds_completed" field.
	DefaultRoundsCompleted int
	// DefaultEvaluationsRun holds the default value on creation for the "evaluations_run" field.
	DefaultEvaluationsRun int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateCreated is the default value of the State enum.
const DefaultState = StateCreated

// State values.
const (
	StateCreated      State = "created"
	StateInitializing State = "initializing"
	StateDiscussing   State = "discussing"
	StateBacktesting  State = "backtesting"
	StateSimulating   State = "simulating"
	StateEvaluating   State = "evaluating"
	StatePaused       State = "paused"
	StateCompleted    State = "completed"
	StateFailed       State = "failed"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateCreated, StateInitializing, StateDiscussing, StateBacktesting, StateSimulating, StateEvaluating, StatePaused, StateCompleted, StateFailed:
		return nil
	default:
		return fmt.Errorf("arena: invalid enum value for state field: %q", s)
	}
}

// ResumeState defines the type for the "resume_state" enum field.
type ResumeState string

// ResumeState values.
const (
	ResumeStateCreated      ResumeState = "created"
	ResumeStateInitializing ResumeState = "initializing"
	ResumeStateDiscussing   ResumeState = "discussing"
	ResumeStateBacktesting  ResumeState = "backtesting"
	ResumeStateSimulating   ResumeState = "simulating"
	ResumeStateEvaluating   ResumeState = "evaluating"
	ResumeStatePaused       ResumeState = "paused"
	ResumeStateCompleted    ResumeState = "completed"
	ResumeStateFailed       ResumeState = "failed"
)

func (rs ResumeState) String() string {
	return string(rs)
}

// ResumeStateValidator is a validator for the "resume_state" field enum values. It is called by the builders before save.
func ResumeStateValidator(rs ResumeState) error {
	switch rs {
	case ResumeStateCreated, ResumeStateInitializing, ResumeStateDiscussing, ResumeStateBacktesting, ResumeStateSimulating, ResumeStateEvaluating, ResumeStatePaused, ResumeStateCompleted, ResumeStateFailed:
		return nil
	default:
		return fmt.Errorf("arena: invalid enum value for resume_state field: %q", rs)
	}
}

// OrderOption defines the ordering options for the Arena queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByResumeState orders the results by the resume_state field.
func ByResumeState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResumeState, opts...).ToFunc()
}

// ByRoundsCompleted orders the results by the rounds_completed field.
func ByRoundsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoundsCompleted, opts...).ToFunc()
}

// ByEvaluationsRun orders the results by the evaluations_run field.
func ByEvaluationsRun(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluationsRun, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByStrategiesCount orders the results by strategies count.
func ByStrategiesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStrategiesStep(), opts...)
	}
}

// ByStrategies orders the results by strategies terms.
func ByStrategies(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStrategiesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRoundsCount orders the results by rounds count.
func ByRoundsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRoundsStep(), opts...)
	}
}

// ByRounds orders the results by rounds terms.
func ByRounds(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRoundsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEliminationsCount orders the results by eliminations count.
func ByEliminationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEliminationsStep(), opts...)
	}
}

// ByEliminations orders the results by eliminations terms.
func ByEliminations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEliminationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByReportsCount orders the results by reports count.
func ByReportsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReportsStep(), opts...)
	}
}

// ByReports orders the results by reports terms.
func ByReports(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReportsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStrategiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StrategiesInverseTable, StrategyFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StrategiesTable, StrategiesColumn),
	)
}
func newRoundsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RoundsInverseTable, DiscussionRoundFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RoundsTable, RoundsColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, ThinkingMessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newEliminationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EliminationsInverseTable, EliminationEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EliminationsTable, EliminationsColumn),
	)
}
func newReportsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReportsInverseTable, EvaluationReportFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReportsTable, ReportsColumn),
	)
}
