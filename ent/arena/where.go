// Code generated by ent, DO NOT EDIT.

package arena

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Arena {
	return predicate.Arena(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Arena {
	return predicate.Arena(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Arena {
	return predicate.Arena(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Arena {
	return predicate.Arena(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Arena {
	return predicate.Arena(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Arena {
	return predicate.Arena(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Arena {
	return predicate.Arena(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Arena {
	return predicate.Arena(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Arena {
	return predicate.Arena(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Arena {
	return predicate.Arena(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Arena {
	return predicate.Arena(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Arena {
	return predicate.Arena(sql.FieldEQ(FieldName, v))
}

// RoundsCompleted applies equality check predicate on the "rounds_completed" field. It's identical to RoundsCompletedEQ.
func RoundsCompleted(v int) predicate.Arena {
	return predicate.Arena(sql.FieldEQ(FieldRoundsCompleted, v))
}

// EvaluationsRun applies equality check predicate on the "evaluations_run" field. It's identical to EvaluationsRunEQ.
func EvaluationsRun(v int) predicate.Arena {
	return predicate.Arena(sql.FieldEQ(FieldEvaluationsRun, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.Arena {
	return predicate.Arena(sql.FieldEQ(FieldLastError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Arena {
	return predicate.Arena(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Arena {
	return predicate.Arena(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Arena {
	return predicate.Arena(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Arena {
	return predicate.Arena(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Arena {
	return predicate.Arena(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Arena {
	return predicate.Arena(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Arena {
	return predicate.Arena(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Arena {
	return predicate.Arena(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Arena {
	return predicate.Arena(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Arena {
	return predicate.Arena(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Arena {
	return predicate.Arena(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Arena {
	return predicate.Arena(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Arena {
	return predicate.Arena(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Arena {
	return predicate.Arena(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Arena {
	return predicate.Arena(sql.FieldContainsFold(FieldName, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Arena {
	return predicate.Arena(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Arena {
	return predicate.Arena(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Arena {
	return predicate.Arena(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Arena {
	return predicate.Arena(sql.FieldNotIn(FieldState, vs...))
}

// ResumeStateEQ applies the EQ predicate on the "resume_state" field.
func ResumeStateEQ(v ResumeState) predicate.Arena {
	return predicate.Arena(sql.FieldEQ(FieldResumeState, v))
}

// ResumeStateNEQ applies the NEQ predicate on the "resume_state" field.
func ResumeStateNEQ(v ResumeState) predicate.Arena {
	return predicate.Arena(sql.FieldNEQ(FieldResumeState, v))
}

// ResumeStateIn applies the In predicate on the "resume_state" field.
func ResumeStateIn(vs ...ResumeState) predicate.Arena {
	return predicate.Arena(sql.FieldIn(FieldResumeState, vs...))
}

// ResumeStateNotIn applies the NotIn predicate on the "resume_state" field.
func ResumeStateNotIn(vs ...ResumeState) predicate.Arena {
	return predicate.Arena(sql.FieldNotIn(FieldResumeState, vs...))
}

// ResumeStateIsNil applies the IsNil predicate on the "resume_state" field.
func ResumeStateIsNil() predicate.Arena {
	return predicate.Arena(sql.FieldIsNull(FieldResumeState))
}

// ResumeStateNotNil applies the NotNil predicate on the "resume_state" field.
func ResumeStateNotNil() predicate.Arena {
	return predicate.Arena(sql.FieldNotNull(FieldResumeState))
}

// RoundsCompletedEQ applies the EQ predicate on the "rounds_completed" field.
func RoundsCompletedEQ(v int) predicate.Arena {
	return predicate.Arena(sql.FieldEQ(FieldRoundsCompleted, v))
}

// RoundsCompletedNEQ applies the NEQ predicate on the "rounds_completed" field.
func RoundsCompletedNEQ(v int) predicate.Arena {
	return predicate.Arena(sql.FieldNEQ(FieldRoundsCompleted, v))
}

// RoundsCompletedIn applies the In predicate on the "rounds_completed" field.
func RoundsCompletedIn(vs ...int) predicate.Arena {
	return predicate.Arena(sql.FieldIn(FieldRoundsCompleted, vs...))
}

// RoundsCompletedNotIn applies the NotIn predicate on the "rounds_completed" field.
func RoundsCompletedNotIn(vs ...int) predicate.Arena {
	return predicate.Arena(sql.FieldNotIn(FieldRoundsCompleted, vs...))
}

// RoundsCompletedGT applies the GT predicate on the "rounds_completed" field.
func RoundsCompletedGT(v int) predicate.Arena {
	return predicate.Arena(sql.FieldGT(FieldRoundsCompleted, v))
}

// RoundsCompletedGTE applies the GTE predicate on the "rounds_completed" field.
func RoundsCompletedGTE(v int) predicate.Arena {
	return predicate.Arena(sql.FieldGTE(FieldRoundsCompleted, v))
}

// RoundsCompletedLT applies the LT predicate on the "rounds_completed" field.
func RoundsCompletedLT(v int) predicate.Arena {
	return predicate.Arena(sql.FieldLT(FieldRoundsCompleted, v))
}

// RoundsCompletedLTE applies the LTE predicate on the "rounds_completed" field.
func RoundsCompletedLTE(v int) predicate.Arena {
	return predicate.Arena(sql.FieldLTE(FieldRoundsCompleted, v))
}

// EvaluationsRunEQ applies the EQ predicate on the "evaluations_run" field.
func EvaluationsRunEQ(v int) predicate.Arena {
	return predicate.Arena(sql.FieldEQ(FieldEvaluationsRun, v))
}

// EvaluationsRunNEQ applies the NEQ predicate on the "evaluations_run" field.
func EvaluationsRunNEQ(v int) predicate.Arena {
	return predicate.Arena(sql.FieldNEQ(FieldEvaluationsRun, v))
}

// EvaluationsRunIn applies the In predicate on the "evaluations_run" field.
func EvaluationsRunIn(vs ...int) predicate.Arena {
	return predicate.Arena(sql.FieldIn(FieldEvaluationsRun, vs...))
}

// EvaluationsRunNotIn applies the NotIn predicate on the "evaluations_run" field.
func EvaluationsRunNotIn(vs ...int) predicate.Arena {
	return predicate.Arena(sql.FieldNotIn(FieldEvaluationsRun, vs...))
}

// EvaluationsRunGT applies the GT predicate on the "evaluations_run" field.
func EvaluationsRunGT(v int) predicate.Arena {
	return predicate.Arena(sql.FieldGT(FieldEvaluationsRun, v))
}

// EvaluationsRunGTE applies the GTE predicate on the "evaluations_run" field.
func EvaluationsRunGTE(v int) predicate.Arena {
	return predicate.Arena(sql.FieldGTE(FieldEvaluationsRun, v))
}

// EvaluationsRunLT applies the LT predicate on the "evaluations_run" field.
func EvaluationsRunLT(v int) predicate.Arena {
	return predicate.Arena(sql.FieldLT(FieldEvaluationsRun, v))
}

// EvaluationsRunLTE applies the LTE predicate on the "evaluations_run" field.
func EvaluationsRunLTE(v int) predicate.Arena {
	return predicate.Arena(sql.FieldLTE(FieldEvaluationsRun, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.Arena {
	return predicate.Arena(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.Arena {
	return predicate.Arena(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.Arena {
	return predicate.Arena(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.Arena {
	return predicate.Arena(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.Arena {
	return predicate.Arena(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.Arena {
	return predicate.Arena(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.Arena {
	return predicate.Arena(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.Arena {
	return predicate.Arena(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.Arena {
	return predicate.Arena(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.Arena {
	return predicate.Arena(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.Arena {
	return predicate.Arena(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.Arena {
	return predicate.Arena(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.Arena {
	return predicate.Arena(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.Arena {
	return predicate.Arena(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.Arena {
	return predicate.Arena(sql.FieldContainsFold(FieldLastError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Arena {
	return predicate.Arena(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Arena {
	return predicate.Arena(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Arena {
	return predicate.Arena(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Arena {
	return predicate.Arena(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Arena {
	return predicate.Arena(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Arena {
	return predicate.Arena(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Arena {
	return predicate.Arena(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Arena {
	return predicate.Arena(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Arena {
	return predicate.Arena(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Arena {
	return predicate.Arena(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Arena {
	return predicate.Arena(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Arena {
	return predicate.Arena(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Arena {
	return predicate.Arena(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Arena {
	return predicate.Arena(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Arena {
	return predicate.Arena(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Arena {
	return predicate.Arena(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasStrategies applies the HasEdge predicate on the "strategies" edge.
func HasStrategies() predicate.Arena {
	return predicate.Arena(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StrategiesTable, StrategiesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStrategiesWith applies the HasEdge predicate on the "strategies" edge with a given conditions (other predicates).
func HasStrategiesWith(preds ...predicate.Strategy) predicate.Arena {
	return predicate.Arena(func(s *sql.Selector) {
		step := newStrategiesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRounds applies the HasEdge predicate on the "rounds" edge.
func HasRounds() predicate.Arena {
	return predicate.Arena(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RoundsTable, RoundsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRoundsWith applies the HasEdge predicate on the "rounds" edge with a given conditions (other predicates).
func HasRoundsWith(preds ...predicate.DiscussionRound) predicate.Arena {
	return predicate.Arena(func(s *sql.Selector) {
		step := newRoundsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Arena {
	return predicate.Arena(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.ThinkingMessage) predicate.Arena {
	return predicate.Arena(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEliminations applies the HasEdge predicate on the "eliminations" edge.
func HasEliminations() predicate.Arena {
	return predicate.Arena(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EliminationsTable, EliminationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEliminationsWith applies the HasEdge predicate on the "eliminations" edge with a given conditions (other predicates).
func HasEliminationsWith(preds ...predicate.EliminationEvent) predicate.Arena {
	return predicate.Arena(func(s *sql.Selector) {
		step := newEliminationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReports applies the HasEdge predicate on the "reports" edge.
func HasReports() predicate.Arena {
	return predicate.Arena(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReportsTable, ReportsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportsWith applies the HasEdge predicate on the "reports" edge with a given conditions (other predicates).
func HasReportsWith(preds ...predicate.EvaluationReport) predicate.Arena {
	return predicate.Arena(func(s *sql.Selector) {
		step := newReportsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Arena) predicate.Arena {
	return predicate.Arena(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Arena) predicate.Arena {
	return predicate.Arena(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Arena) predicate.Arena {
	return predicate.Arena(sql.NotPredicates(p))
}
