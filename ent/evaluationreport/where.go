// Code generated by ent, DO NOT EDIT.

package evaluationreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldContainsFold(FieldID, id))
}

// ArenaID applies equality check predicate on the "arena_id" field. It's identical to ArenaIDEQ.
func ArenaID(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldArenaID, v))
}

// Evaluated applies equality check predicate on the "evaluated" field. It's identical to EvaluatedEQ.
func Evaluated(v int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldEvaluated, v))
}

// Eliminated applies equality check predicate on the "eliminated" field. It's identical to EliminatedEQ.
func Eliminated(v int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldEliminated, v))
}

// MinFloorApplied applies equality check predicate on the "min_floor_applied" field. It's identical to MinFloorAppliedEQ.
func MinFloorApplied(v bool) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldMinFloorApplied, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldCreatedAt, v))
}

// ArenaIDEQ applies the EQ predicate on the "arena_id" field.
func ArenaIDEQ(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldArenaID, v))
}

// ArenaIDNEQ applies the NEQ predicate on the "arena_id" field.
func ArenaIDNEQ(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNEQ(FieldArenaID, v))
}

// ArenaIDIn applies the In predicate on the "arena_id" field.
func ArenaIDIn(vs ...string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIn(FieldArenaID, vs...))
}

// ArenaIDNotIn applies the NotIn predicate on the "arena_id" field.
func ArenaIDNotIn(vs ...string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotIn(FieldArenaID, vs...))
}

// ArenaIDGT applies the GT predicate on the "arena_id" field.
func ArenaIDGT(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGT(FieldArenaID, v))
}

// ArenaIDGTE applies the GTE predicate on the "arena_id" field.
func ArenaIDGTE(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGTE(FieldArenaID, v))
}

// ArenaIDLT applies the LT predicate on the "arena_id" field.
func ArenaIDLT(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLT(FieldArenaID, v))
}

// ArenaIDLTE applies the LTE predicate on the "arena_id" field.
func ArenaIDLTE(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLTE(FieldArenaID, v))
}

// ArenaIDContains applies the Contains predicate on the "arena_id" field.
func ArenaIDContains(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldContains(FieldArenaID, v))
}

// ArenaIDHasPrefix applies the HasPrefix predicate on the "arena_id" field.
func ArenaIDHasPrefix(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldHasPrefix(FieldArenaID, v))
}

// ArenaIDHasSuffix applies the HasSuffix predicate on the "arena_id" field.
func ArenaIDHasSuffix(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldHasSuffix(FieldArenaID, v))
}

// ArenaIDEqualFold applies the EqualFold predicate on the "arena_id" field.
func ArenaIDEqualFold(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEqualFold(FieldArenaID, v))
}

// ArenaIDContainsFold applies the ContainsFold predicate on the "arena_id" field.
func ArenaIDContainsFold(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldContainsFold(FieldArenaID, v))
}

// PeriodEQ applies the EQ predicate on the "period" field.
func PeriodEQ(v Period) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldPeriod, v))
}

// PeriodNEQ applies the NEQ predicate on the "period" field.
func PeriodNEQ(v Period) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNEQ(FieldPeriod, v))
}

// PeriodIn applies the In predicate on the "period" field.
func PeriodIn(vs ...Period) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIn(FieldPeriod, vs...))
}

// PeriodNotIn applies the NotIn predicate on the "period" field.
func PeriodNotIn(vs ...Period) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotIn(FieldPeriod, vs...))
}

// EvaluatedEQ applies the EQ predicate on the "evaluated" field.
func EvaluatedEQ(v int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldEvaluated, v))
}

// EvaluatedNEQ applies the NEQ predicate on the "evaluated" field.
func EvaluatedNEQ(v int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNEQ(FieldEvaluated, v))
}

// EvaluatedIn applies the In predicate on the "evaluated" field.
func EvaluatedIn(vs ...int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIn(FieldEvaluated, vs...))
}

// EvaluatedNotIn applies the NotIn predicate on the "evaluated" field.
func EvaluatedNotIn(vs ...int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotIn(FieldEvaluated, vs...))
}

// EvaluatedGT applies the GT predicate on the "evaluated" field.
func EvaluatedGT(v int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGT(FieldEvaluated, v))
}

// EvaluatedGTE applies the GTE predicate on the "evaluated" field.
func EvaluatedGTE(v int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGTE(FieldEvaluated, v))
}

// EvaluatedLT applies the LT predicate on the "evaluated" field.
func EvaluatedLT(v int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLT(FieldEvaluated, v))
}

// EvaluatedLTE applies the LTE predicate on the "evaluated" field.
func EvaluatedLTE(v int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLTE(FieldEvaluated, v))
}

// EliminatedEQ applies the EQ predicate on the "eliminated" field.
func EliminatedEQ(v int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldEliminated, v))
}

// EliminatedNEQ applies the NEQ predicate on the "eliminated" field.
func EliminatedNEQ(v int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNEQ(FieldEliminated, v))
}

// EliminatedIn applies the In predicate on the "eliminated" field.
func EliminatedIn(vs ...int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIn(FieldEliminated, vs...))
}

// EliminatedNotIn applies the NotIn predicate on the "eliminated" field.
func EliminatedNotIn(vs ...int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotIn(FieldEliminated, vs...))
}

// EliminatedGT applies the GT predicate on the "eliminated" field.
func EliminatedGT(v int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGT(FieldEliminated, v))
}

// EliminatedGTE applies the GTE predicate on the "eliminated" field.
func EliminatedGTE(v int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGTE(FieldEliminated, v))
}

// EliminatedLT applies the LT predicate on the "eliminated" field.
func EliminatedLT(v int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLT(FieldEliminated, v))
}

// EliminatedLTE applies the LTE predicate on the "eliminated" field.
func EliminatedLTE(v int) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLTE(FieldEliminated, v))
}

// MinFloorAppliedEQ applies the EQ predicate on the "min_floor_applied" field.
func MinFloorAppliedEQ(v bool) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldMinFloorApplied, v))
}

// MinFloorAppliedNEQ applies the NEQ predicate on the "min_floor_applied" field.
func MinFloorAppliedNEQ(v bool) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNEQ(FieldMinFloorApplied, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLTE(FieldCreatedAt, v))
}

// HasArena applies the HasEdge predicate on the "arena" edge.
func HasArena() predicate.EvaluationReport {
	return predicate.EvaluationReport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ArenaTable, ArenaColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArenaWith applies the HasEdge predicate on the "arena" edge with a given conditions (other predicates).
func HasArenaWith(preds ...predicate.Arena) predicate.EvaluationReport {
	return predicate.EvaluationReport(func(s *sql.Selector) {
		step := newArenaStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvaluationReport) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvaluationReport) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvaluationReport) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.NotPredicates(p))
}
