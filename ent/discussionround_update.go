// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/discussionround"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/predicate"
)

// DiscussionRoundUpdate is the builder for updating DiscussionRound entities.
type DiscussionRoundUpdate struct {
	config
	hooks    []Hook
	mutation *DiscussionRoundMutation
}

// Where appends a list predicates to the DiscussionRoundUpdate builder.
func (_u *DiscussionRoundUpdate) Where(ps ...predicate.DiscussionRound) *DiscussionRoundUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRoundNumber sets the "round_number" field.
func (_u *DiscussionRoundUpdate) SetRoundNumber(v int) *DiscussionRoundUpdate {
	_u.mutation.ResetRoundNumber()
	_u.mutation.SetRoundNumber(v)
	return _u
}

// SetNillableRoundNumber sets the "round_number" field if the given value is not nil.
func (_u *DiscussionRoundUpdate) SetNillableRoundNumber(v *int) *DiscussionRoundUpdate {
	if v != nil {
		_u.SetRoundNumber(*v)
	}
	return _u
}

// AddRoundNumber adds value to the "round_number" field.
func (_u *DiscussionRoundUpdate) AddRoundNumber(v int) *DiscussionRoundUpdate {
	_u.mutation.AddRoundNumber(v)
	return _u
}

// SetMode sets the "mode" field.
func (_u *DiscussionRoundUpdate) SetMode(v discussionround.Mode) *DiscussionRoundUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *DiscussionRoundUpdate) SetNillableMode(v *discussionround.Mode) *DiscussionRoundUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetParticipants sets the "participants" field.
func (_u *DiscussionRoundUpdate) SetParticipants(v []string) *DiscussionRoundUpdate {
	_u.mutation.SetParticipants(v)
	return _u
}

// AppendParticipants appends value to the "participants" field.
func (_u *DiscussionRoundUpdate) AppendParticipants(v []string) *DiscussionRoundUpdate {
	_u.mutation.AppendParticipants(v)
	return _u
}

// SetConclusions sets the "conclusions" field.
func (_u *DiscussionRoundUpdate) SetConclusions(v map[string]string) *DiscussionRoundUpdate {
	_u.mutation.SetConclusions(v)
	return _u
}

// ClearConclusions clears the value of the "conclusions" field.
func (_u *DiscussionRoundUpdate) ClearConclusions() *DiscussionRoundUpdate {
	_u.mutation.ClearConclusions()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *DiscussionRoundUpdate) SetStartedAt(v time.Time) *DiscussionRoundUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *DiscussionRoundUpdate) SetNillableStartedAt(v *time.Time) *DiscussionRoundUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DiscussionRoundUpdate) SetCompletedAt(v time.Time) *DiscussionRoundUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DiscussionRoundUpdate) SetNillableCompletedAt(v *time.Time) *DiscussionRoundUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DiscussionRoundUpdate) ClearCompletedAt() *DiscussionRoundUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the DiscussionRoundMutation object of the builder.
func (_u *DiscussionRoundUpdate) Mutation() *DiscussionRoundMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiscussionRoundUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiscussionRoundUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiscussionRoundUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiscussionRoundUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiscussionRoundUpdate) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := discussionround.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "DiscussionRound.mode": %w`, err)}
		}
	}
	if _u.mutation.ArenaCleared() && len(_u.mutation.ArenaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DiscussionRound.arena"`)
	}
	return nil
}

func (_u *DiscussionRoundUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(discussionround.Table, discussionround.Columns, sqlgraph.NewFieldSpec(discussionround.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoundNumber(); ok {
		_spec.SetField(discussionround.FieldRoundNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundNumber(); ok {
		_spec.AddField(discussionround.FieldRoundNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(discussionround.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Participants(); ok {
		_spec.SetField(discussionround.FieldParticipants, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParticipants(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, discussionround.FieldParticipants, value)
		})
	}
	if value, ok := _u.mutation.Conclusions(); ok {
		_spec.SetField(discussionround.FieldConclusions, field.TypeJSON, value)
	}
	if _u.mutation.ConclusionsCleared() {
		_spec.ClearField(discussionround.FieldConclusions, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(discussionround.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(discussionround.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(discussionround.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{discussionround.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiscussionRoundUpdateOne is the builder for updating a single DiscussionRound entity.
type DiscussionRoundUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiscussionRoundMutation
}

// SetRoundNumber sets the "round_number" field.
func (_u *DiscussionRoundUpdateOne) SetRoundNumber(v int) *DiscussionRoundUpdateOne {
	_u.mutation.ResetRoundNumber()
	_u.mutation.SetRoundNumber(v)
	return _u
}

// SetNillableRoundNumber sets the "round_number" field if the given value is not nil.
func (_u *DiscussionRoundUpdateOne) SetNillableRoundNumber(v *int) *DiscussionRoundUpdateOne {
	if v != nil {
		_u.SetRoundNumber(*v)
	}
	return _u
}

// AddRoundNumber adds value to the "round_number" field.
func (_u *DiscussionRoundUpdateOne) AddRoundNumber(v int) *DiscussionRoundUpdateOne {
	_u.mutation.AddRoundNumber(v)
	return _u
}

// SetMode sets the "mode" field.
func (_u *DiscussionRoundUpdateOne) SetMode(v discussionround.Mode) *DiscussionRoundUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *DiscussionRoundUpdateOne) SetNillableMode(v *discussionround.Mode) *DiscussionRoundUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetParticipants sets the "participants" field.
func (_u *DiscussionRoundUpdateOne) SetParticipants(v []string) *DiscussionRoundUpdateOne {
	_u.mutation.SetParticipants(v)
	return _u
}

// AppendParticipants appends value to the "participants" field.
func (_u *DiscussionRoundUpdateOne) AppendParticipants(v []string) *DiscussionRoundUpdateOne {
	_u.mutation.AppendParticipants(v)
	return _u
}

// SetConclusions sets the "conclusions" field.
func (_u *DiscussionRoundUpdateOne) SetConclusions(v map[string]string) *DiscussionRoundUpdateOne {
	_u.mutation.SetConclusions(v)
	return _u
}

// ClearConclusions clears the value of the "conclusions" field.
func (_u *DiscussionRoundUpdateOne) ClearConclusions() *DiscussionRoundUpdateOne {
	_u.mutation.ClearConclusions()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *DiscussionRoundUpdateOne) SetStartedAt(v time.Time) *DiscussionRoundUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *DiscussionRoundUpdateOne) SetNillableStartedAt(v *time.Time) *DiscussionRoundUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DiscussionRoundUpdateOne) SetCompletedAt(v time.Time) *DiscussionRoundUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DiscussionRoundUpdateOne) SetNillableCompletedAt(v *time.Time) *DiscussionRoundUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DiscussionRoundUpdateOne) ClearCompletedAt() *DiscussionRoundUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the DiscussionRoundMutation object of the builder.
func (_u *DiscussionRoundUpdateOne) Mutation() *DiscussionRoundMutation {
	return _u.mutation
}

// Where appends a list predicates to the DiscussionRoundUpdate builder.
func (_u *DiscussionRoundUpdateOne) Where(ps ...predicate.DiscussionRound) *DiscussionRoundUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiscussionRoundUpdateOne) Select(field string, fields ...string) *DiscussionRoundUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DiscussionRound entity.
func (_u *DiscussionRoundUpdateOne) Save(ctx context.Context) (*DiscussionRound, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiscussionRoundUpdateOne) SaveX(ctx context.Context) *DiscussionRound {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiscussionRoundUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiscussionRoundUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiscussionRoundUpdateOne) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := discussionround.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "DiscussionRound.mode": %w`, err)}
		}
	}
	if _u.mutation.ArenaCleared() && len(_u.mutation.ArenaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DiscussionRound.arena"`)
	}
	return nil
}

func (_u *DiscussionRoundUpdateOne) sqlSave(ctx context.Context) (_node *DiscussionRound, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(discussionround.Table, discussionround.Columns, sqlgraph.NewFieldSpec(discussionround.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DiscussionRound.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, discussionround.FieldID)
		for _, f := range fields {
			if !discussionround.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != discussionround.FieldID {
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
	if value, ok := _u.mutation.RoundNumber(); ok {
		_spec.SetField(discussionround.FieldRoundNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundNumber(); ok {
		_spec.AddField(discussionround.FieldRoundNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(discussionround.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Participants(); ok {
		_spec.SetField(discussionround.FieldParticipants, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParticipants(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, discussionround.FieldParticipants, value)
		})
	}
	if value, ok := _u.mutation.Conclusions(); ok {
		_spec.SetField(discussionround.FieldConclusions, field.TypeJSON, value)
	}
	if _u.mutation.ConclusionsCleared() {
		_spec.ClearField(discussionround.FieldConclusions, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(discussionround.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(discussionround.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(discussionround.FieldCompletedAt, field.TypeTime)
	}
	_node = &DiscussionRound{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{discussionround.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
