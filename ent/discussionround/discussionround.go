// Code generated by ent, DO NOT EDIT.

package discussionround

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the discussionround type in the database.
	Label = "discussion_round"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "round_id"
	// FieldArenaID holds the string denoting the arena_id field in the database.
	FieldArenaID = "arena_id"
	// FieldRoundNumber holds the string denoting the round_number field in the database.
	FieldRoundNumber = "round_number"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldParticipants holds the string denoting the participants field in the database.
	FieldParticipants = "participants"
	// FieldConclusions holds the string denoting the conclusions field in the database.
	FieldConclusions = "conclusions"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeArena holds the string denoting the arena edge name in mutations.
	EdgeArena = "arena"
	// ArenaFieldID holds the string denoting the ID field of the Arena.
	ArenaFieldID = "arena_id"
	// Table holds the table name of the discussionround in the database.
	Table = "discussion_rounds"
	// ArenaTable is the table that holds the arena relation/edge.
	ArenaTable = "discussion_rounds"
	// ArenaInverseTable is the table name for the Arena entity.
	// It exists in this package in order to avoid circular dependency with the "arena" package.
	ArenaInverseTable = "arenas"
	// ArenaColumn is the table column denoting the arena relation/edge.
	ArenaColumn = "arena_id"
)

// Columns holds all SQL columns for discussionround fields.
var Columns = []string{
	FieldID,
	FieldArenaID,
	FieldRoundNumber,
	FieldMode,
	FieldParticipants,
	FieldConclusions,
	FieldStartedAt,
	FieldCompletedAt,
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
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// Mode defines the type for the "mode" enum field.
type Mode string

// Mode values.
const (
	ModeDebate        Mode = "debate"
	ModeCollaboration Mode = "collaboration"
	ModeReview        Mode = "review"
)

func (m Mode) String() string {
	return string(m)
}

// ModeValidator is a validator for the "mode" field enum values. It is called by the builders before save.
func ModeValidator(m Mode) error {
	switch m {
	case ModeDebate, ModeCollaboration, ModeReview:
		return nil
	default:
		return fmt.Errorf("discussionround: invalid enum value for mode field: %q", m)
	}
}

// OrderOption defines the ordering options for the DiscussionRound queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByArenaID orders the results by the arena_id field.
func ByArenaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArenaID, opts...).ToFunc()
}

// ByRoundNumber orders the results by the round_number field.
func ByRoundNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoundNumber, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
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
