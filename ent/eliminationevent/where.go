// Code generated by ent, DO NOT EDIT.

package eliminationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldLTE(FieldID, id))
}

// ArenaID applies equality check predicate on the "arena_id" field. It's identical to ArenaIDEQ.
func ArenaID(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldEQ(FieldArenaID, v))
}

// StrategyID applies equality check predicate on the "strategy_id" field. It's identical to StrategyIDEQ.
func StrategyID(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldEQ(FieldStrategyID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldEQ(FieldScore, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldEQ(FieldReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// ArenaIDEQ applies the EQ predicate on the "arena_id" field.
func ArenaIDEQ(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldEQ(FieldArenaID, v))
}

// ArenaIDNEQ applies the NEQ predicate on the "arena_id" field.
func ArenaIDNEQ(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldNEQ(FieldArenaID, v))
}

// ArenaIDIn applies the In predicate on the "arena_id" field.
func ArenaIDIn(vs ...string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldIn(FieldArenaID, vs...))
}

// ArenaIDNotIn applies the NotIn predicate on the "arena_id" field.
func ArenaIDNotIn(vs ...string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldNotIn(FieldArenaID, vs...))
}

// ArenaIDGT applies the GT predicate on the "arena_id" field.
func ArenaIDGT(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldGT(FieldArenaID, v))
}

// ArenaIDGTE applies the GTE predicate on the "arena_id" field.
func ArenaIDGTE(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldGTE(FieldArenaID, v))
}

// ArenaIDLT applies the LT predicate on the "arena_id" field.
func ArenaIDLT(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldLT(FieldArenaID, v))
}

// ArenaIDLTE applies the LTE predicate on the "arena_id" field.
func ArenaIDLTE(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldLTE(FieldArenaID, v))
}

// ArenaIDContains applies the Contains predicate on the "arena_id" field.
func ArenaIDContains(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldContains(FieldArenaID, v))
}

// ArenaIDHasPrefix applies the HasPrefix predicate on the "arena_id" field.
func ArenaIDHasPrefix(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldHasPrefix(FieldArenaID, v))
}

// ArenaIDHasSuffix applies the HasSuffix predicate on the "arena_id" field.
func ArenaIDHasSuffix(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldHasSuffix(FieldArenaID, v))
}

// ArenaIDEqualFold applies the EqualFold predicate on the "arena_id" field.
func ArenaIDEqualFold(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldEqualFold(FieldArenaID, v))
}

// ArenaIDContainsFold applies the ContainsFold predicate on the "arena_id" field.
func ArenaIDContainsFold(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldContainsFold(FieldArenaID, v))
}

// PeriodEQ applies the EQ predicate on the "period" field.
func PeriodEQ(v Period) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldEQ(FieldPeriod, v))
}

// PeriodNEQ applies the NEQ predicate on the "period" field.
func PeriodNEQ(v Period) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldNEQ(FieldPeriod, v))
}

// PeriodIn applies the In predicate on the "period" field.
func PeriodIn(vs ...Period) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldIn(FieldPeriod, vs...))
}

// PeriodNotIn applies the NotIn predicate on the "period" field.
func PeriodNotIn(vs ...Period) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldNotIn(FieldPeriod, vs...))
}

// StrategyIDEQ applies the EQ predicate on the "strategy_id" field.
func StrategyIDEQ(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldEQ(FieldStrategyID, v))
}

// StrategyIDNEQ applies the NEQ predicate on the "strategy_id" field.
func StrategyIDNEQ(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldNEQ(FieldStrategyID, v))
}

// StrategyIDIn applies the In predicate on the "strategy_id" field.
func StrategyIDIn(vs ...string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldIn(FieldStrategyID, vs...))
}

// StrategyIDNotIn applies the NotIn predicate on the "strategy_id" field.
func StrategyIDNotIn(vs ...string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldNotIn(FieldStrategyID, vs...))
}

// StrategyIDGT applies the GT predicate on the "strategy_id" field.
func StrategyIDGT(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldGT(FieldStrategyID, v))
}

// StrategyIDGTE applies the GTE predicate on the "strategy_id" field.
func StrategyIDGTE(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldGTE(FieldStrategyID, v))
}

// StrategyIDLT applies the LT predicate on the "strategy_id" field.
func StrategyIDLT(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldLT(FieldStrategyID, v))
}

// StrategyIDLTE applies the LTE predicate on the "strategy_id" field.
func StrategyIDLTE(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldLTE(FieldStrategyID, v))
}

// StrategyIDContains applies the Contains predicate on the "strategy_id" field.
func StrategyIDContains(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldContains(FieldStrategyID, v))
}

// StrategyIDHasPrefix applies the HasPrefix predicate on the "strategy_id" field.
func StrategyIDHasPrefix(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldHasPrefix(FieldStrategyID, v))
}

// StrategyIDHasSuffix applies the HasSuffix predicate on the "strategy_id" field.
func StrategyIDHasSuffix(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldHasSuffix(FieldStrategyID, v))
}

// StrategyIDEqualFold applies the EqualFold predicate on the "strategy_id" field.
func StrategyIDEqualFold(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldEqualFold(FieldStrategyID, v))
}

// StrategyIDContainsFold applies the ContainsFold predicate on the "strategy_id" field.
func StrategyIDContainsFold(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldContainsFold(FieldStrategyID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldLTE(FieldScore, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldContainsFold(FieldReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasArena applies the HasEdge predicate on the "arena" edge.
func HasArena() predicate.EliminationEvent {
	return predicate.EliminationEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ArenaTable, ArenaColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArenaWith applies the HasEdge predicate on the "arena" edge with a given conditions (other predicates).
func HasArenaWith(preds ...predicate.Arena) predicate.EliminationEvent {
	return predicate.EliminationEvent(func(s *sql.Selector) {
		step := newArenaStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EliminationEvent) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EliminationEvent) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EliminationEvent) predicate.EliminationEvent {
	return predicate.EliminationEvent(sql.NotPredicates(p))
}
