// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/eliminationevent"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/predicate"
)

// EliminationEventUpdate is the builder for updating EliminationEvent entities.
type EliminationEventUpdate struct {
	config
	hooks    []Hook
	mutation *EliminationEventMutation
}

// Where appends a list predicates to the EliminationEventUpdate builder.
func (_u *EliminationEventUpdate) Where(ps ...predicate.EliminationEvent) *EliminationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPeriod sets the "period" field.
func (_u *EliminationEventUpdate) SetPeriod(v eliminationevent.Period) *EliminationEventUpdate {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *EliminationEventUpdate) SetNillablePeriod(v *eliminationevent.Period) *EliminationEventUpdate {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// SetStrategyID sets the "strategy_id" field.
func (_u *EliminationEventUpdate) SetStrategyID(v string) *EliminationEventUpdate {
	_u.mutation.SetStrategyID(v)
	return _u
}

// SetNillableStrategyID sets the "strategy_id" field if the given value is not nil.
func (_u *EliminationEventUpdate) SetNillableStrategyID(v *string) *EliminationEventUpdate {
	if v != nil {
		_u.SetStrategyID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *EliminationEventUpdate) SetScore(v float64) *EliminationEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *EliminationEventUpdate) SetNillableScore(v *float64) *EliminationEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *EliminationEventUpdate) AddScore(v float64) *EliminationEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *EliminationEventUpdate) SetReason(v string) *EliminationEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *EliminationEventUpdate) SetNillableReason(v *string) *EliminationEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the EliminationEventMutation object of the builder.
func (_u *EliminationEventUpdate) Mutation() *EliminationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EliminationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EliminationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EliminationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EliminationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EliminationEventUpdate) check() error {
	if v, ok := _u.mutation.Period(); ok {
		if err := eliminationevent.PeriodValidator(v); err != nil {
			return &ValidationError{Name: "period", err: fmt.Errorf(`ent: validator failed for field "EliminationEvent.period": %w`, err)}
		}
	}
	if _u.mutation.ArenaCleared() && len(_u.mutation.ArenaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EliminationEvent.arena"`)
	}
	return nil
}

func (_u *EliminationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eliminationevent.Table, eliminationevent.Columns, sqlgraph.NewFieldSpec(eliminationevent.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Period(); ok {
		_spec.SetField(eliminationevent.FieldPeriod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StrategyID(); ok {
		_spec.SetField(eliminationevent.FieldStrategyID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(eliminationevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(eliminationevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(eliminationevent.FieldReason, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eliminationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EliminationEventUpdateOne is the builder for updating a single EliminationEvent entity.
type EliminationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EliminationEventMutation
}

// SetPeriod sets the "period" field.
func (_u *EliminationEventUpdateOne) SetPeriod(v eliminationevent.Period) *EliminationEventUpdateOne {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *EliminationEventUpdateOne) SetNillablePeriod(v *eliminationevent.Period) *EliminationEventUpdateOne {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// SetStrategyID sets the "strategy_id" field.
func (_u *EliminationEventUpdateOne) SetStrategyID(v string) *EliminationEventUpdateOne {
	_u.mutation.SetStrategyID(v)
	return _u
}

// SetNillableStrategyID sets the "strategy_id" field if the given value is not nil.
func (_u *EliminationEventUpdateOne) SetNillableStrategyID(v *string) *EliminationEventUpdateOne {
	if v != nil {
		_u.SetStrategyID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *EliminationEventUpdateOne) SetScore(v float64) *EliminationEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *EliminationEventUpdateOne) SetNillableScore(v *float64) *EliminationEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *EliminationEventUpdateOne) AddScore(v float64) *EliminationEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *EliminationEventUpdateOne) SetReason(v string) *EliminationEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *EliminationEventUpdateOne) SetNillableReason(v *string) *EliminationEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the EliminationEventMutation object of the builder.
func (_u *EliminationEventUpdateOne) Mutation() *EliminationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EliminationEventUpdate builder.
func (_u *EliminationEventUpdateOne) Where(ps ...predicate.EliminationEvent) *EliminationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EliminationEventUpdateOne) Select(field string, fields ...string) *EliminationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EliminationEvent entity.
func (_u *EliminationEventUpdateOne) Save(ctx context.Context) (*EliminationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EliminationEventUpdateOne) SaveX(ctx context.Context) *EliminationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EliminationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EliminationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EliminationEventUpdateOne) check() error {
	if v, ok := _u.mutation.Period(); ok {
		if err := eliminationevent.PeriodValidator(v); err != nil {
			return &ValidationError{Name: "period", err: fmt.Errorf(`ent: validator failed for field "EliminationEvent.period": %w`, err)}
		}
	}
	if _u.mutation.ArenaCleared() && len(_u.mutation.ArenaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EliminationEvent.arena"`)
	}
	return nil
}

func (_u *EliminationEventUpdateOne) sqlSave(ctx context.Context) (_node *EliminationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eliminationevent.Table, eliminationevent.Columns, sqlgraph.NewFieldSpec(eliminationevent.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EliminationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, eliminationevent.FieldID)
		for _, f := range fields {
			if !eliminationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != eliminationevent.FieldID {
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
	if value, ok := _u.mutation.Period(); ok {
		_spec.SetField(eliminationevent.FieldPeriod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StrategyID(); ok {
		_spec.SetField(eliminationevent.FieldStrategyID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(eliminationevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(eliminationevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(eliminationevent.FieldReason, field.TypeString, value)
	}
	_node = &EliminationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eliminationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
