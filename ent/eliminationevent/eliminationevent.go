// Code generated by ent, DO NOT EDIT.

package eliminationevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the eliminationevent type in the database.
	Label = "elimination_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldArenaID holds the string denoting the arena_id field in the database.
	FieldArenaID = "arena_id"
	// FieldPeriod holds the string denoting the period field in the database.
	FieldPeriod = "period"
	// FieldStrategyID holds the string denoting the strategy_id field in the database.
	FieldStrategyID = "strategy_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeArena holds the string denoting the arena edge name in mutations.
	EdgeArena = "arena"
	// ArenaFieldID holds the string denoting the ID field of the Arena.
	ArenaFieldID = "arena_id"
	// Table holds the table name of the eliminationevent in the database.
	Table = "elimination_events"
	// ArenaTable is the table that holds the arena relation/edge.
	ArenaTable = "elimination_events"
	// ArenaInverseTable is the table name for the Arena entity.
	// It exists in this package in order to avoid circular dependency with the "arena" package.
	ArenaInverseTable = "arenas"
	// ArenaColumn is the table column denoting the arena relation/edge.
	ArenaColumn = "arena_id"
)

// Columns holds all SQL columns for eliminationevent fields.
var Columns = []string{
	FieldID,
	FieldArenaID,
	FieldPeriod,
	FieldStrategyID,
	FieldScore,
	FieldReason,
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

// Period defines the type for the "period" enum field.
type Period string

// Period values.
const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodManual  Period = "manual"
)

func (pe Period) String() string {
	return string(pe)
}

// PeriodValidator is a validator for the "period" field enum values. It is called by the builders before save.
func PeriodValidator(pe Period) error {
	switch pe {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodManual:
		return nil
	default:
		return fmt.Errorf("eliminationevent: invalid enum value for period field: %q", pe)
	}
}

// OrderOption defines the ordering options for the EliminationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByArenaID orders the results by the arena_id field.
func ByArenaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArenaID, opts...).ToFunc()
}

// ByPeriod orders the results by the period field.
func ByPeriod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriod, opts...).ToFunc()
}

// ByStrategyID orders the results by the strategy_id field.
func ByStrategyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrategyID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
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
