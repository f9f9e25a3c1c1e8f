// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/arena"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/discussionround"
)

// DiscussionRoundCreate is the builder for creating a DiscussionRound entity.
type DiscussionRoundCreate struct {
	config
	mutation *DiscussionRoundMutation
	hooks    []Hook
}

// SetArenaID sets the "arena_id" field.
func (_c *DiscussionRoundCreate) SetArenaID(v string) *DiscussionRoundCreate {
	_c.mutation.SetArenaID(v)
	return _c
}

// SetRoundNumber sets the "round_number" field.
func (_c *DiscussionRoundCreate) SetRoundNumber(v int) *DiscussionRoundCreate {
	_c.mutation.SetRoundNumber(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *DiscussionRoundCreate) SetMode(v discussionround.Mode) *DiscussionRoundCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetParticipants sets the "participants" field.
func (_c *DiscussionRoundCreate) SetParticipants(v []string) *DiscussionRoundCreate {
	_c.mutation.SetParticipants(v)
	return _c
}

// SetConclusions sets the "conclusions" field.
func (_c *DiscussionRoundCreate) SetConclusions(v map[string]string) *DiscussionRoundCreate {
	_c.mutation.SetConclusions(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *DiscussionRoundCreate) SetStartedAt(v time.Time) *DiscussionRoundCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *DiscussionRoundCreate) SetNillableStartedAt(v *time.Time) *DiscussionRoundCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *DiscussionRoundCreate) SetCompletedAt(v time.Time) *DiscussionRoundCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *DiscussionRoundCreate) SetNillableCompletedAt(v *time.Time) *DiscussionRoundCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DiscussionRoundCreate) SetID(v string) *DiscussionRoundCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetArena sets the "arena" edge to the Arena entity.
func (_c *DiscussionRoundCreate) SetArena(v *Arena) *DiscussionRoundCreate {
	return _c.SetArenaID(v.ID)
}

// Mutation returns the DiscussionRoundMutation object of the builder.
func (_c *DiscussionRoundCreate) Mutation() *DiscussionRoundMutation {
	return _c.mutation
}

// Save creates the DiscussionRound in the database.
func (_c *DiscussionRoundCreate) Save(ctx context.Context) (*DiscussionRound, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DiscussionRoundCreate) SaveX(ctx context.Context) *DiscussionRound {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiscussionRoundCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiscussionRoundCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DiscussionRoundCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := discussionround.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DiscussionRoundCreate) check() error {
	if _, ok := _c.mutation.ArenaID(); !ok {
		return &ValidationError{Name: "arena_id", err: errors.New(`ent: missing required field "DiscussionRound.arena_id"`)}
	}
	if _, ok := _c.mutation.RoundNumber(); !ok {
		return &ValidationError{Name: "round_number", err: errors.New(`ent: missing required field "DiscussionRound.round_number"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "DiscussionRound.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := discussionround.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "DiscussionRound.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Participants(); !ok {
		return &ValidationError{Name: "participants", err: errors.New(`ent: missing required field "DiscussionRound.participants"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "DiscussionRound.started_at"`)}
	}
	if len(_c.mutation.ArenaIDs()) == 0 {
		return &ValidationError{Name: "arena", err: errors.New(`ent: missing required edge "DiscussionRound.arena"`)}
	}
	return nil
}

func (_c *DiscussionRoundCreate) sqlSave(ctx context.Context) (*DiscussionRound, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected DiscussionRound.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DiscussionRoundCreate) createSpec() (*DiscussionRound, *sqlgraph.CreateSpec) {
	var (
		_node = &DiscussionRound{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(discussionround.Table, sqlgraph.NewFieldSpec(discussionround.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RoundNumber(); ok {
		_spec.SetField(discussionround.FieldRoundNumber, field.TypeInt, value)
		_node.RoundNumber = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(discussionround.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Participants(); ok {
		_spec.SetField(discussionround.FieldParticipants, field.TypeJSON, value)
		_node.Participants = value
	}
	if value, ok := _c.mutation.Conclusions(); ok {
		_spec.SetField(discussionround.FieldConclusions, field.TypeJSON, value)
		_node.Conclusions = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(discussionround.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(discussionround.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ArenaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   discussionround.ArenaTable,
			Columns: []string{discussionround.ArenaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(arena.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ArenaID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DiscussionRoundCreateBulk is the builder for creating many DiscussionRound entities in bulk.
type DiscussionRoundCreateBulk struct {
	config
	err      error
	builders []*DiscussionRoundCreate
}

// Save creates the DiscussionRound entities in the database.
func (_c *DiscussionRoundCreateBulk) Save(ctx context.Context) ([]*DiscussionRound, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DiscussionRound, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DiscussionRoundMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DiscussionRoundCreateBulk) SaveX(ctx context.Context) []*DiscussionRound {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiscussionRoundCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiscussionRoundCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
