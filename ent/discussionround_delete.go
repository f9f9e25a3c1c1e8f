// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/discussionround"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/predicate"
)

// DiscussionRoundDelete is the builder for deleting a DiscussionRound entity.
type DiscussionRoundDelete struct {
	config
	hooks    []Hook
	mutation *DiscussionRoundMutation
}

// Where appends a list predicates to the DiscussionRoundDelete builder.
func (_d *DiscussionRoundDelete) Where(ps ...predicate.DiscussionRound) *DiscussionRoundDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DiscussionRoundDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DiscussionRoundDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DiscussionRoundDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(discussionround.Table, sqlgraph.NewFieldSpec(discussionround.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DiscussionRoundDeleteOne is the builder for deleting a single DiscussionRound entity.
type DiscussionRoundDeleteOne struct {
	_d *DiscussionRoundDelete
}

// Where appends a list predicates to the DiscussionRoundDelete builder.
func (_d *DiscussionRoundDeleteOne) Where(ps ...predicate.DiscussionRound) *DiscussionRoundDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DiscussionRoundDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{discussionround.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DiscussionRoundDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
