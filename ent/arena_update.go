// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/arena"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/discussionround"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/eliminationevent"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/evaluationreport"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/predicate"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/strategy"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/thinkingmessage"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// ArenaUpdate is the builder for updating Arena entities.
type ArenaUpdate struct {
	config
	hooks    []Hook
	mutation *ArenaMutation
}

// Where appends a list predicates to the ArenaUpdate builder.
func (_u *ArenaUpdate) Where(ps ...predicate.Arena) *ArenaUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ArenaUpdate) SetName(v string) *ArenaUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ArenaUpdate) SetNillableName(v *string) *ArenaUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *ArenaUpdate) SetConfig(v models.ArenaConfig) *ArenaUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// SetNillableConfig sets the "config" field if the given value is not nil.
func (_u *ArenaUpdate) SetNillableConfig(v *models.ArenaConfig) *ArenaUpdate {
	if v != nil {
		_u.SetConfig(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *ArenaUpdate) SetState(v arena.State) *ArenaUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ArenaUpdate) SetNillableState(v *arena.State) *ArenaUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetResumeState sets the "resume_state" field.
func (_u *ArenaUpdate) SetResumeState(v arena.ResumeState) *ArenaUpdate {
	_u.mutation.SetResumeState(v)
	return _u
}

// SetNillableResumeState sets the "resume_state" field if the given value is not nil.
func (_u *ArenaUpdate) SetNillableResumeState(v *arena.ResumeState) *ArenaUpdate {
	if v != nil {
		_u.SetResumeState(*v)
	}
	return _u
}

// ClearResumeState clears the value of the "resume_state" field.
func (_u *ArenaUpdate) ClearResumeState() *ArenaUpdate {
	_u.mutation.ClearResumeState()
	return _u
}

// SetRoundsCompleted sets the "rounds_completed" field.
func (_u *ArenaUpdate) SetRoundsCompleted(v int) *ArenaUpdate {
	_u.mutation.ResetRoundsCompleted()
	_u.mutation.SetRoundsCompleted(v)
	return _u
}

// SetNillableRoundsCompleted sets the "rounds_completed" field if the given value is not nil.
func (_u *ArenaUpdate) SetNillableRoundsCompleted(v *int) *ArenaUpdate {
	if v != nil {
		_u.SetRoundsCompleted(*v)
	}
	return _u
}

// AddRoundsCompleted adds value to the "rounds_completed" field.
func (_u *ArenaUpdate) AddRoundsCompleted(v int) *ArenaUpdate {
	_u.mutation.AddRoundsCompleted(v)
	return _u
}

// SetEvaluationsRun sets the "evaluations_run" field.
func (_u *ArenaUpdate) SetEvaluationsRun(v int) *ArenaUpdate {
	_u.mutation.ResetEvaluationsRun()
	_u.mutation.SetEvaluationsRun(v)
	return _u
}

// SetNillableEvaluationsRun sets the "evaluations_run" field if the given value is not nil.
func (_u *ArenaUpdate) SetNillableEvaluationsRun(v *int) *ArenaUpdate {
	if v != nil {
		_u.SetEvaluationsRun(*v)
	}
	return _u
}

// AddEvaluationsRun adds value to the "evaluations_run" field.
func (_u *ArenaUpdate) AddEvaluationsRun(v int) *ArenaUpdate {
	_u.mutation.AddEvaluationsRun(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ArenaUpdate) SetLastError(v string) *ArenaUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ArenaUpdate) SetNillableLastError(v *string) *ArenaUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ArenaUpdate) ClearLastError() *ArenaUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ArenaUpdate) SetUpdatedAt(v time.Time) *ArenaUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddStrategyIDs adds the "strategies" edge to the Strategy entity by IDs.
func (_u *ArenaUpdate) AddStrategyIDs(ids ...string) *ArenaUpdate {
	_u.mutation.AddStrategyIDs(ids...)
	return _u
}

// AddStrategies adds the "strategies" edges to the Strategy entity.
func (_u *ArenaUpdate) AddStrategies(v ...*Strategy) *ArenaUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStrategyIDs(ids...)
}

// AddRoundIDs adds the "rounds" edge to the DiscussionRound entity by IDs.
func (_u *ArenaUpdate) AddRoundIDs(ids ...string) *ArenaUpdate {
	_u.mutation.AddRoundIDs(ids...)
	return _u
}

// AddRounds adds the "rounds" edges to the DiscussionRound entity.
func (_u *ArenaUpdate) AddRounds(v ...*DiscussionRound) *ArenaUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRoundIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the ThinkingMessage entity by IDs.
func (_u *ArenaUpdate) AddMessageIDs(ids ...string) *ArenaUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ThinkingMessage entity.
func (_u *ArenaUpdate) AddMessages(v ...*ThinkingMessage) *ArenaUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddEliminationIDs adds the "eliminations" edge to the EliminationEvent entity by IDs.
func (_u *ArenaUpdate) AddEliminationIDs(ids ...int64) *ArenaUpdate {
	_u.mutation.AddEliminationIDs(ids...)
	return _u
}

// AddEliminations adds the "eliminations" edges to the EliminationEvent entity.
func (_u *ArenaUpdate) AddEliminations(v ...*EliminationEvent) *ArenaUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEliminationIDs(ids...)
}

// AddReportIDs adds the "reports" edge to the EvaluationReport entity by IDs.
func (_u *ArenaUpdate) AddReportIDs(ids ...string) *ArenaUpdate {
	_u.mutation.AddReportIDs(ids...)
	return _u
}

// AddReports adds the "reports" edges to the EvaluationReport entity.
func (_u *ArenaUpdate) AddReports(v ...*EvaluationReport) *ArenaUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReportIDs(ids...)
}

// Mutation returns the ArenaMutation object of the builder.
func (_u *ArenaUpdate) Mutation() *ArenaMutation {
	return _u.mutation
}

// ClearStrategies clears all "strategies" edges to the Strategy entity.
func (_u *ArenaUpdate) ClearStrategies() *ArenaUpdate {
	_u.mutation.ClearStrategies()
	return _u
}

// RemoveStrategyIDs removes the "strategies" edge to Strategy entities by IDs.
func (_u *ArenaUpdate) RemoveStrategyIDs(ids ...string) *ArenaUpdate {
	_u.mutation.RemoveStrategyIDs(ids...)
	return _u
}

// RemoveStrategies removes "strategies" edges to Strategy entities.
func (_u *ArenaUpdate) RemoveStrategies(v ...*Strategy) *ArenaUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStrategyIDs(ids...)
}

// ClearRounds clears all "rounds" edges to the DiscussionRound entity.
func (_u *ArenaUpdate) ClearRounds() *ArenaUpdate {
	_u.mutation.ClearRounds()
	return _u
}

// RemoveRoundIDs removes the "rounds" edge to DiscussionRound entities by IDs.
func (_u *ArenaUpdate) RemoveRoundIDs(ids ...string) *ArenaUpdate {
	_u.mutation.RemoveRoundIDs(ids...)
	return _u
}

// RemoveRounds removes "rounds" edges to DiscussionRound entities.
func (_u *ArenaUpdate) RemoveRounds(v ...*DiscussionRound) *ArenaUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRoundIDs(ids...)
}

// ClearMessages clears all "messages" edges to the ThinkingMessage entity.
func (_u *ArenaUpdate) ClearMessages() *ArenaUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ThinkingMessage entities by IDs.
func (_u *ArenaUpdate) RemoveMessageIDs(ids ...string) *ArenaUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ThinkingMessage entities.
func (_u *ArenaUpdate) RemoveMessages(v ...*ThinkingMessage) *ArenaUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearEliminations clears all "eliminations" edges to the EliminationEvent entity.
func (_u *ArenaUpdate) ClearEliminations() *ArenaUpdate {
	_u.mutation.ClearEliminations()
	return _u
}

// RemoveEliminationIDs removes the "eliminations" edge to EliminationEvent entities by IDs.
func (_u *ArenaUpdate) RemoveEliminationIDs(ids ...int64) *ArenaUpdate {
	_u.mutation.RemoveEliminationIDs(ids...)
	return _u
}

// RemoveEliminations removes "eliminations" edges to EliminationEvent entities.
func (_u *ArenaUpdate) RemoveEliminations(v ...*EliminationEvent) *ArenaUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEliminationIDs(ids...)
}

// ClearReports clears all "reports" edges to the EvaluationReport entity.
func (_u *ArenaUpdate) ClearReports() *ArenaUpdate {
	_u.mutation.ClearReports()
	return _u
}

// RemoveReportIDs removes the "reports" edge to EvaluationReport entities by IDs.
func (_u *ArenaUpdate) RemoveReportIDs(ids ...string) *ArenaUpdate {
	_u.mutation.RemoveReportIDs(ids...)
	return _u
}

// RemoveReports removes "reports" edges to EvaluationReport entities.
func (_u *ArenaUpdate) RemoveReports(v ...*EvaluationReport) *ArenaUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReportIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArenaUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArenaUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArenaUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArenaUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ArenaUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := arena.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArenaUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := arena.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Arena.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResumeState(); ok {
		if err := arena.ResumeStateValidator(v); err != nil {
			return &ValidationError{Name: "resume_state", err: fmt.Errorf(`ent: validator failed for field "Arena.resume_state": %w`, err)}
		}
	}
	return nil
}

func (_u *ArenaUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(arena.Table, arena.Columns, sqlgraph.NewFieldSpec(arena.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(arena.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(arena.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(arena.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResumeState(); ok {
		_spec.SetField(arena.FieldResumeState, field.TypeEnum, value)
	}
	if _u.mutation.ResumeStateCleared() {
		_spec.ClearField(arena.FieldResumeState, field.TypeEnum)
	}
	if value, ok := _u.mutation.RoundsCompleted(); ok {
		_spec.SetField(arena.FieldRoundsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundsCompleted(); ok {
		_spec.AddField(arena.FieldRoundsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EvaluationsRun(); ok {
		_spec.SetField(arena.FieldEvaluationsRun, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvaluationsRun(); ok {
		_spec.AddField(arena.FieldEvaluationsRun, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(arena.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(arena.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(arena.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StrategiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.StrategiesTable,
			Columns: []string{arena.StrategiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(strategy.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStrategiesIDs(); len(nodes) > 0 && !_u.mutation.StrategiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.StrategiesTable,
			Columns: []string{arena.StrategiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(strategy.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StrategiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.StrategiesTable,
			Columns: []string{arena.StrategiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(strategy.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RoundsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.RoundsTable,
			Columns: []string{arena.RoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(discussionround.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRoundsIDs(); len(nodes) > 0 && !_u.mutation.RoundsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.RoundsTable,
			Columns: []string{arena.RoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(discussionround.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoundsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.RoundsTable,
			Columns: []string{arena.RoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(discussionround.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.MessagesTable,
			Columns: []string{arena.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thinkingmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.MessagesTable,
			Columns: []string{arena.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thinkingmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.MessagesTable,
			Columns: []string{arena.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thinkingmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EliminationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.EliminationsTable,
			Columns: []string{arena.EliminationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eliminationevent.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEliminationsIDs(); len(nodes) > 0 && !_u.mutation.EliminationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.EliminationsTable,
			Columns: []string{arena.EliminationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eliminationevent.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EliminationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.EliminationsTable,
			Columns: []string{arena.EliminationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eliminationevent.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.ReportsTable,
			Columns: []string{arena.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationreport.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReportsIDs(); len(nodes) > 0 && !_u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.ReportsTable,
			Columns: []string{arena.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationreport.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.ReportsTable,
			Columns: []string{arena.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationreport.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{arena.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArenaUpdateOne is the builder for updating a single Arena entity.
type ArenaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArenaMutation
}

// SetName sets the "name" field.
func (_u *ArenaUpdateOne) SetName(v string) *ArenaUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ArenaUpdateOne) SetNillableName(v *string) *ArenaUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *ArenaUpdateOne) SetConfig(v models.ArenaConfig) *ArenaUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// SetNillableConfig sets the "config" field if the given value is not nil.
func (_u *ArenaUpdateOne) SetNillableConfig(v *models.ArenaConfig) *ArenaUpdateOne {
	if v != nil {
		_u.SetConfig(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *ArenaUpdateOne) SetState(v arena.State) *ArenaUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ArenaUpdateOne) SetNillableState(v *arena.State) *ArenaUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetResumeState sets the "resume_state" field.
func (_u *ArenaUpdateOne) SetResumeState(v arena.ResumeState) *ArenaUpdateOne {
	_u.mutation.SetResumeState(v)
	return _u
}

// SetNillableResumeState sets the "resume_state" field if the given value is not nil.
func (_u *ArenaUpdateOne) SetNillableResumeState(v *arena.ResumeState) *ArenaUpdateOne {
	if v != nil {
		_u.SetResumeState(*v)
	}
	return _u
}

// ClearResumeState clears the value of the "resume_state" field.
func (_u *ArenaUpdateOne) ClearResumeState() *ArenaUpdateOne {
	_u.mutation.ClearResumeState()
	return _u
}

// SetRoundsCompleted sets the "rounds_completed" field.
func (_u *ArenaUpdateOne) SetRoundsCompleted(v int) *ArenaUpdateOne {
	_u.mutation.ResetRoundsCompleted()
	_u.mutation.SetRoundsCompleted(v)
	return _u
}

// SetNillableRoundsCompleted sets the "rounds_completed" field if the given value is not nil.
func (_u *ArenaUpdateOne) SetNillableRoundsCompleted(v *int) *ArenaUpdateOne {
	if v != nil {
		_u.SetRoundsCompleted(*v)
	}
	return _u
}

// AddRoundsCompleted adds value to the "rounds_completed" field.
func (_u *ArenaUpdateOne) AddRoundsCompleted(v int) *ArenaUpdateOne {
	_u.mutation.AddRoundsCompleted(v)
	return _u
}

// SetEvaluationsRun sets the "evaluations_run" field.
func (_u *ArenaUpdateOne) SetEvaluationsRun(v int) *ArenaUpdateOne {
	_u.mutation.ResetEvaluationsRun()
	_u.mutation.SetEvaluationsRun(v)
	return _u
}

// SetNillableEvaluationsRun sets the "evaluations_run" field if the given value is not nil.
func (_u *ArenaUpdateOne) SetNillableEvaluationsRun(v *int) *ArenaUpdateOne {
	if v != nil {
		_u.SetEvaluationsRun(*v)
	}
	return _u
}

// AddEvaluationsRun adds value to the "evaluations_run" field.
func (_u *ArenaUpdateOne) AddEvaluationsRun(v int) *ArenaUpdateOne {
	_u.mutation.AddEvaluationsRun(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ArenaUpdateOne) SetLastError(v string) *ArenaUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ArenaUpdateOne) SetNillableLastError(v *string) *ArenaUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ArenaUpdateOne) ClearLastError() *ArenaUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ArenaUpdateOne) SetUpdatedAt(v time.Time) *ArenaUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddStrategyIDs adds the "strategies" edge to the Strategy entity by IDs.
func (_u *ArenaUpdateOne) AddStrategyIDs(ids ...string) *ArenaUpdateOne {
	_u.mutation.AddStrategyIDs(ids...)
	return _u
}

// AddStrategies adds the "strategies" edges to the Strategy entity.
func (_u *ArenaUpdateOne) AddStrategies(v ...*Strategy) *ArenaUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStrategyIDs(ids...)
}

// AddRoundIDs adds the "rounds" edge to the DiscussionRound entity by IDs.
func (_u *ArenaUpdateOne) AddRoundIDs(ids ...string) *ArenaUpdateOne {
	_u.mutation.AddRoundIDs(ids...)
	return _u
}

// AddRounds adds the "rounds" edges to the DiscussionRound entity.
func (_u *ArenaUpdateOne) AddRounds(v ...*DiscussionRound) *ArenaUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRoundIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the ThinkingMessage entity by IDs.
func (_u *ArenaUpdateOne) AddMessageIDs(ids ...string) *ArenaUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ThinkingMessage entity.
func (_u *ArenaUpdateOne) AddMessages(v ...*ThinkingMessage) *ArenaUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddEliminationIDs adds the "eliminations" edge to the EliminationEvent entity by IDs.
func (_u *ArenaUpdateOne) AddEliminationIDs(ids ...int64) *ArenaUpdateOne {
	_u.mutation.AddEliminationIDs(ids...)
	return _u
}

// AddEliminations adds the "eliminations" edges to the EliminationEvent entity.
func (_u *ArenaUpdateOne) AddEliminations(v ...*EliminationEvent) *ArenaUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEliminationIDs(ids...)
}

// AddReportIDs adds the "reports" edge to the EvaluationReport entity by IDs.
func (_u *ArenaUpdateOne) AddReportIDs(ids ...string) *ArenaUpdateOne {
	_u.mutation.AddReportIDs(ids...)
	return _u
}

// AddReports adds the "reports" edges to the EvaluationReport entity.
func (_u *ArenaUpdateOne) AddReports(v ...*EvaluationReport) *ArenaUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReportIDs(ids...)
}

// Mutation returns the ArenaMutation object of the builder.
func (_u *ArenaUpdateOne) Mutation() *ArenaMutation {
	return _u.mutation
}

// ClearStrategies clears all "strategies" edges to the Strategy entity.
func (_u *ArenaUpdateOne) ClearStrategies() *ArenaUpdateOne {
	_u.mutation.ClearStrategies()
	return _u
}

// RemoveStrategyIDs removes the "strategies" edge to Strategy entities by IDs.
func (_u *ArenaUpdateOne) RemoveStrategyIDs(ids ...string) *ArenaUpdateOne {
	_u.mutation.RemoveStrategyIDs(ids...)
	return _u
}

// RemoveStrategies removes "strategies" edges to Strategy entities.
func (_u *ArenaUpdateOne) RemoveStrategies(v ...*Strategy) *ArenaUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStrategyIDs(ids...)
}

// ClearRounds clears all "rounds" edges to the DiscussionRound entity.
func (_u *ArenaUpdateOne) ClearRounds() *ArenaUpdateOne {
	_u.mutation.ClearRounds()
	return _u
}

// RemoveRoundIDs removes the "rounds" edge to DiscussionRound entities by IDs.
func (_u *ArenaUpdateOne) RemoveRoundIDs(ids ...string) *ArenaUpdateOne {
	_u.mutation.RemoveRoundIDs(ids...)
	return _u
}

// RemoveRounds removes "rounds" edges to DiscussionRound entities.
func (_u *ArenaUpdateOne) RemoveRounds(v ...*DiscussionRound) *ArenaUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRoundIDs(ids...)
}

// ClearMessages clears all "messages" edges to the ThinkingMessage entity.
func (_u *ArenaUpdateOne) ClearMessages() *ArenaUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ThinkingMessage entities by IDs.
func (_u *ArenaUpdateOne) RemoveMessageIDs(ids ...string) *ArenaUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ThinkingMessage entities.
func (_u *ArenaUpdateOne) RemoveMessages(v ...*ThinkingMessage) *ArenaUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearEliminations clears all "eliminations" edges to the EliminationEvent entity.
func (_u *ArenaUpdateOne) ClearEliminations() *ArenaUpdateOne {
	_u.mutation.ClearEliminations()
	return _u
}

// RemoveEliminationIDs removes the "eliminations" edge to EliminationEvent entities by IDs.
func (_u *ArenaUpdateOne) RemoveEliminationIDs(ids ...int64) *ArenaUpdateOne {
	_u.mutation.RemoveEliminationIDs(ids...)
	return _u
}

// RemoveEliminations removes "eliminations" edges to EliminationEvent entities.
func (_u *ArenaUpdateOne) RemoveEliminations(v ...*EliminationEvent) *ArenaUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEliminationIDs(ids...)
}

// ClearReports clears all "reports" edges to the EvaluationReport entity.
func (_u *ArenaUpdateOne) ClearReports() *ArenaUpdateOne {
	_u.mutation.ClearReports()
	return _u
}

// RemoveReportIDs removes the "reports" edge to EvaluationReport entities by IDs.
func (_u *ArenaUpdateOne) RemoveReportIDs(ids ...string) *ArenaUpdateOne {
	_u.mutation.RemoveReportIDs(ids...)
	return _u
}

// RemoveReports removes "reports" edges to EvaluationReport entities.
func (_u *ArenaUpdateOne) RemoveReports(v ...*EvaluationReport) *ArenaUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReportIDs(ids...)
}

// Where appends a list predicates to the ArenaUpdate builder.
func (_u *ArenaUpdateOne) Where(ps ...predicate.Arena) *ArenaUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArenaUpdateOne) Select(field string, fields ...string) *ArenaUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Arena entity.
func (_u *ArenaUpdateOne) Save(ctx context.Context) (*Arena, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArenaUpdateOne) SaveX(ctx context.Context) *Arena {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArenaUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArenaUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ArenaUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := arena.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArenaUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := arena.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Arena.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResumeState(); ok {
		if err := arena.ResumeStateValidator(v); err != nil {
			return &ValidationError{Name: "resume_state", err: fmt.Errorf(`ent: validator failed for field "Arena.resume_state": %w`, err)}
		}
	}
	return nil
}

func (_u *ArenaUpdateOne) sqlSave(ctx context.Context) (_node *Arena, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(arena.Table, arena.Columns, sqlgraph.NewFieldSpec(arena.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Arena.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, arena.FieldID)
		for _, f := range fields {
			if !arena.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != arena.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(arena.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(arena.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(arena.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResumeState(); ok {
		_spec.SetField(arena.FieldResumeState, field.TypeEnum, value)
	}
	if _u.mutation.ResumeStateCleared() {
		_spec.ClearField(arena.FieldResumeState, field.TypeEnum)
	}
	if value, ok := _u.mutation.RoundsCompleted(); ok {
		_spec.SetField(arena.FieldRoundsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundsCompleted(); ok {
		_spec.AddField(arena.FieldRoundsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EvaluationsRun(); ok {
		_spec.SetField(arena.FieldEvaluationsRun, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvaluationsRun(); ok {
		_spec.AddField(arena.FieldEvaluationsRun, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(arena.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(arena.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(arena.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StrategiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.StrategiesTable,
			Columns: []string{arena.StrategiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(strategy.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStrategiesIDs(); len(nodes) > 0 && !_u.mutation.StrategiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.StrategiesTable,
			Columns: []string{arena.StrategiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(strategy.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StrategiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.StrategiesTable,
			Columns: []string{arena.StrategiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(strategy.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RoundsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.RoundsTable,
			Columns: []string{arena.RoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(discussionround.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRoundsIDs(); len(nodes) > 0 && !_u.mutation.RoundsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.RoundsTable,
			Columns: []string{arena.RoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(discussionround.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoundsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.RoundsTable,
			Columns: []string{arena.RoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(discussionround.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.MessagesTable,
			Columns: []string{arena.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thinkingmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.MessagesTable,
			Columns: []string{arena.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thinkingmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.MessagesTable,
			Columns: []string{arena.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(thinkingmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EliminationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.EliminationsTable,
			Columns: []string{arena.EliminationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eliminationevent.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEliminationsIDs(); len(nodes) > 0 && !_u.mutation.EliminationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.EliminationsTable,
			Columns: []string{arena.EliminationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eliminationevent.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EliminationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.EliminationsTable,
			Columns: []string{arena.EliminationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eliminationevent.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.ReportsTable,
			Columns: []string{arena.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationreport.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReportsIDs(); len(nodes) > 0 && !_u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.ReportsTable,
			Columns: []string{arena.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationreport.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   arena.ReportsTable,
			Columns: []string{arena.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationreport.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Arena{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{arena.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
