// Code generated by ent, DO NOT EDIT.

package evaluationreport

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the evaluationreport type in the database.
	Label = "evaluation_report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "report_id"
	// FieldArenaID holds the string denoting the arena_id field in the database.
	FieldArenaID = "arena_id"
	// FieldPeriod holds the string denoting the period field in the database.
	FieldPeriod = "period"
	// FieldEvaluated holds the string denoting the evaluated field in the database.
	FieldEvaluated = "evaluated"
	// FieldEliminated holds the string denoting the eliminated field in the database.
	FieldEliminated = "eliminated"
	// FieldMinFloorApplied holds the string denoting the min_floor_applied field in the database.
	FieldMinFloorApplied = "min_floor_applied"
	// FieldRankings holds the string denoting the rankings field in the database.
	FieldRankings = "rankings"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeArena holds the string denoting the arena edge name in mutations.
	EdgeArena = "arena"
	// ArenaFieldID holds the string denoting the ID field of the Arena.
	ArenaFieldID = "arena_id"
	// Table holds the table name of the evaluationreport in the database.
	Table = "evaluation_reports"
	// ArenaTable is the table that holds the arena relation/edge.
	ArenaTable = "evaluation_reports"
	// ArenaInverseTable is the table name for the Arena entity.
	// It exists in this package in order to avoid circular dependency with the "arena" package.
	ArenaInverseTable = "arenas"
	// ArenaColumn is the table column denoting the arena relation/edge.
	ArenaColumn = "arena_id"
)

// Columns holds all SQL columns for evaluationreport fields.
var Columns = []string{
	FieldID,
	FieldArenaID,
	FieldPeriod,
	FieldEvaluated,
	FieldEliminated,
	FieldMinFloorApplied,
	FieldRankings,
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
	// DefaultEliminated holds the default value on creation for the "eliminated" field.
	DefaultEliminated int
	// DefaultMinFloorApplied holds the default value on creation for the "min_floor_applied" field.
	DefaultMinFloorApplied bool
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
		return fmt.Errorf("evaluationreport: invalid enum value for period field: %q", pe)
	}
}

// OrderOption defines the ordering options for the EvaluationReport queries.
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

// ByEvaluated orders the results by the evaluated field.
func ByEvaluated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluated, opts...).ToFunc()
}

// ByEliminated orders the results by the eliminated field.
func ByEliminated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEliminated, opts...).ToFunc()
}

// ByMinFloorApplied orders the results by the min_floor_applied field.
func ByMinFloorApplied(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinFloorApplied, opts...).ToFunc()
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
