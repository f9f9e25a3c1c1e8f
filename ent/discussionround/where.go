// Code generated by ent, DO NOT EDIT.

package discussionround

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldContainsFold(FieldID, id))
}

// ArenaID applies equality check predicate on the "arena_id" field. It's identical to ArenaIDEQ.
func ArenaID(v string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldEQ(FieldArenaID, v))
}

// RoundNumber applies equality check predicate on the "round_number" field. It's identical to RoundNumberEQ.
func RoundNumber(v int) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldEQ(FieldRoundNumber, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldEQ(FieldCompletedAt, v))
}

// ArenaIDEQ applies the EQ predicate on the "arena_id" field.
func ArenaIDEQ(v string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldEQ(FieldArenaID, v))
}

// ArenaIDNEQ applies the NEQ predicate on the "arena_id" field.
func ArenaIDNEQ(v string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldNEQ(FieldArenaID, v))
}

// ArenaIDIn applies the In predicate on the "arena_id" field.
func ArenaIDIn(vs ...string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldIn(FieldArenaID, vs...))
}

// ArenaIDNotIn applies the NotIn predicate on the "arena_id" field.
func ArenaIDNotIn(vs ...string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldNotIn(FieldArenaID, vs...))
}

// ArenaIDGT applies the GT predicate on the "arena_id" field.
func ArenaIDGT(v string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldGT(FieldArenaID, v))
}

// ArenaIDGTE applies the GTE predicate on the "arena_id" field.
func ArenaIDGTE(v string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldGTE(FieldArenaID, v))
}

// ArenaIDLT applies the LT predicate on the "arena_id" field.
func ArenaIDLT(v string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldLT(FieldArenaID, v))
}

// ArenaIDLTE applies the LTE predicate on the "arena_id" field.
func ArenaIDLTE(v string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldLTE(FieldArenaID, v))
}

// ArenaIDContains applies the Contains predicate on the "arena_id" field.
func ArenaIDContains(v string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldContains(FieldArenaID, v))
}

// ArenaIDHasPrefix applies the HasPrefix predicate on the "arena_id" field.
func ArenaIDHasPrefix(v string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldHasPrefix(FieldArenaID, v))
}

// ArenaIDHasSuffix applies the HasSuffix predicate on the "arena_id" field.
func ArenaIDHasSuffix(v string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldHasSuffix(FieldArenaID, v))
}

// ArenaIDEqualFold applies the EqualFold predicate on the "arena_id" field.
func ArenaIDEqualFold(v string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldEqualFold(FieldArenaID, v))
}

// ArenaIDContainsFold applies the ContainsFold predicate on the "arena_id" field.
func ArenaIDContainsFold(v string) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldContainsFold(FieldArenaID, v))
}

// RoundNumberEQ applies the EQ predicate on the "round_number" field.
func RoundNumberEQ(v int) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldEQ(FieldRoundNumber, v))
}

// RoundNumberNEQ applies the NEQ predicate on the "round_number" field.
func RoundNumberNEQ(v int) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldNEQ(FieldRoundNumber, v))
}

// RoundNumberIn applies the In predicate on the "round_number" field.
func RoundNumberIn(vs ...int) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldIn(FieldRoundNumber, vs...))
}

// RoundNumberNotIn applies the NotIn predicate on the "round_number" field.
func RoundNumberNotIn(vs ...int) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldNotIn(FieldRoundNumber, vs...))
}

// RoundNumberGT applies the GT predicate on the "round_number" field.
func RoundNumberGT(v int) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldGT(FieldRoundNumber, v))
}

// RoundNumberGTE applies the GTE predicate on the "round_number" field.
func RoundNumberGTE(v int) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldGTE(FieldRoundNumber, v))
}

// RoundNumberLT applies the LT predicate on the "round_number" field.
func RoundNumberLT(v int) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldLT(FieldRoundNumber, v))
}

// RoundNumberLTE applies the LTE predicate on the "round_number" field.
func RoundNumberLTE(v int) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldLTE(FieldRoundNumber, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v Mode) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v Mode) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...Mode) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...Mode) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldNotIn(FieldMode, vs...))
}

// ConclusionsIsNil applies the IsNil predicate on the "conclusions" field.
func ConclusionsIsNil() predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldIsNull(FieldConclusions))
}

// ConclusionsNotNil applies the NotNil predicate on the "conclusions" field.
func ConclusionsNotNil() predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldNotNull(FieldConclusions))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.FieldNotNull(FieldCompletedAt))
}

// HasArena applies the HasEdge predicate on the "arena" edge.
func HasArena() predicate.DiscussionRound {
	return predicate.DiscussionRound(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ArenaTable, ArenaColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArenaWith applies the HasEdge predicate on the "arena" edge with a given conditions (other predicates).
func HasArenaWith(preds ...predicate.Arena) predicate.DiscussionRound {
	return predicate.DiscussionRound(func(s *sql.Selector) {
		step := newArenaStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DiscussionRound) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DiscussionRound) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DiscussionRound) predicate.DiscussionRound {
	return predicate.DiscussionRound(sql.NotPredicates(p))
}
