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
	"github.com/Yourdaylight/stock-datasource-sub001/ent/eliminationevent"
)

// EliminationEventCreate is the builder for creating a EliminationEvent entity.
type EliminationEventCreate struct {
	config
	mutation *EliminationEventMutation
	hooks    []Hook
}

// SetArenaID sets the "arena_id" field.
func (_c *EliminationEventCreate) SetArenaID(v string) *EliminationEventCreate {
	_c.mutation.SetArenaID(v)
	return _c
}

// SetPeriod sets the "period" field.
func (_c *EliminationEventCreate) SetPeriod(v eliminationevent.Period) *EliminationEventCreate {
	_c.mutation.SetPeriod(v)
	return _c
}

// SetStrategyID sets the "strategy_id" field.
func (_c *EliminationEventCreate) SetStrategyID(v string) *EliminationEventCreate {
	_c.mutation.SetStrategyID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *EliminationEventCreate) SetScore(v float64) *EliminationEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *EliminationEventCreate) SetReason(v string) *EliminationEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EliminationEventCreate) SetCreatedAt(v time.Time) *EliminationEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EliminationEventCreate) SetNillableCreatedAt(v *time.Time) *EliminationEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EliminationEventCreate) SetID(v int64) *EliminationEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetArena sets the "arena" edge to the Arena entity.
func (_c *EliminationEventCreate) SetArena(v *Arena) *EliminationEventCreate {
	return _c.SetArenaID(v.ID)
}

// Mutation returns the EliminationEventMutation object of the builder.
func (_c *EliminationEventCreate) Mutation() *EliminationEventMutation {
	return _c.mutation
}

// Save creates the EliminationEvent in the database.
func (_c *EliminationEventCreate) Save(ctx context.Context) (*EliminationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EliminationEventCreate) SaveX(ctx context.Context) *EliminationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EliminationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EliminationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EliminationEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := eliminationevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EliminationEventCreate) check() error {
	if _, ok := _c.mutation.ArenaID(); !ok {
		return &ValidationError{Name: "arena_id", err: errors.New(`ent: missing required field "EliminationEvent.arena_id"`)}
	}
	if _, ok := _c.mutation.Period(); !ok {
		return &ValidationError{Name: "period", err: errors.New(`ent: missing required field "EliminationEvent.period"`)}
	}
	if v, ok := _c.mutation.Period(); ok {
		if err := eliminationevent.PeriodValidator(v); err != nil {
			return &ValidationError{Name: "period", err: fmt.Errorf(`ent: validator failed for field "EliminationEvent.period": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StrategyID(); !ok {
		return &ValidationError{Name: "strategy_id", err: errors.New(`ent: missing required field "EliminationEvent.strategy_id"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "EliminationEvent.score"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "EliminationEvent.reason"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EliminationEvent.created_at"`)}
	}
	if len(_c.mutation.ArenaIDs()) == 0 {
		return &ValidationError{Name: "arena", err: errors.New(`ent: missing required edge "EliminationEvent.arena"`)}
	}
	return nil
}

func (_c *EliminationEventCreate) sqlSave(ctx context.Context) (*EliminationEvent, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EliminationEventCreate) createSpec() (*EliminationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &EliminationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(eliminationevent.Table, sqlgraph.NewFieldSpec(eliminationevent.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Period(); ok {
		_spec.SetField(eliminationevent.FieldPeriod, field.TypeEnum, value)
		_node.Period = value
	}
	if value, ok := _c.mutation.StrategyID(); ok {
		_spec.SetField(eliminationevent.FieldStrategyID, field.TypeString, value)
		_node.StrategyID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(eliminationevent.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(eliminationevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(eliminationevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ArenaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   eliminationevent.ArenaTable,
			Columns: []string{eliminationevent.ArenaColumn},
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

// EliminationEventCreateBulk is the builder for creating many EliminationEvent entities in bulk.
type EliminationEventCreateBulk struct {
	config
	err      error
	builders []*EliminationEventCreate
}

// Save creates the EliminationEvent entities in the database.
func (_c *EliminationEventCreateBulk) Save(ctx context.Context) ([]*EliminationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EliminationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EliminationEventMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
				}
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
func (_c *EliminationEventCreateBulk) SaveX(ctx context.Context) []*EliminationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EliminationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EliminationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
