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
	"github.com/Yourdaylight/stock-datasource-sub001/ent/eliminationevent"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/evaluationreport"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/strategy"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/thinkingmessage"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// ArenaCreate is the builder for creating a Arena entity.
type ArenaCreate struct {
	config
	mutation *ArenaMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ArenaCreate) SetName(v string) *ArenaCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *ArenaCreate) SetConfig(v models.ArenaConfig) *ArenaCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetState sets the "state" field.
func (_c *ArenaCreate) SetState(v arena.State) *ArenaCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ArenaCreate) SetNillableState(v *arena.State) *ArenaCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetResumeState sets the "resume_state" field.
func (_c *ArenaCreate) SetResumeState(v arena.ResumeState) *ArenaCreate {
	_c.mutation.SetResumeState(v)
	return _c
}

// SetNillableResumeState sets the "resume_state" field if the given value is not nil.
func (_c *ArenaCreate) SetNillableResumeState(v *arena.ResumeState) *ArenaCreate {
	if v != nil {
		_c.SetResumeState(*v)
	}
	return _c
}

// SetRoundsCompleted sets the "rounds_completed" field.
func (_c *ArenaCreate) SetRoundsCompleted(v int) *ArenaCreate {
	_c.mutation.SetRoundsCompleted(v)
	return _c
}

// SetNillableRoundsCompleted sets the "rounds_completed" field if the given value is not nil.
func (_c *ArenaCreate) SetNillableRoundsCompleted(v *int) *ArenaCreate {
	if v != nil {
		_c.SetRoundsCompleted(*v)
	}
	return _c
}

// SetEvaluationsRun sets the "evaluations_run" field.
func (_c *ArenaCreate) SetEvaluationsRun(v int) *ArenaCreate {
	_c.mutation.SetEvaluationsRun(v)
	return _c
}

// SetNillableEvaluationsRun sets the "evaluations_run" field if the given value is not nil.
func (_c *ArenaCreate) SetNillableEvaluationsRun(v *int) *ArenaCreate {
	if v != nil {
		_c.SetEvaluationsRun(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *ArenaCreate) SetLastError(v string) *ArenaCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *ArenaCreate) SetNillableLastError(v *string) *ArenaCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ArenaCreate) SetCreatedAt(v time.Time) *ArenaCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ArenaCreate) SetNillableCreatedAt(v *time.Time) *ArenaCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ArenaCreate) SetUpdatedAt(v time.Time) *ArenaCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ArenaCreate) SetNillableUpdatedAt(v *time.Time) *ArenaCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ArenaCreate) SetID(v string) *ArenaCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStrategyIDs adds the "strategies" edge to the Strategy entity by IDs.
func (_c *ArenaCreate) AddStrategyIDs(ids ...string) *ArenaCreate {
	_c.mutation.AddStrategyIDs(ids...)
	return _c
}

// AddStrategies adds the "strategies" edges to the Strategy entity.
func (_c *ArenaCreate) AddStrategies(v ...*Strategy) *ArenaCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStrategyIDs(ids...)
}

// AddRoundIDs adds the "rounds" edge to the DiscussionRound entity by IDs.
func (_c *ArenaCreate) AddRoundIDs(ids ...string) *ArenaCreate {
	_c.mutation.AddRoundIDs(ids...)
	return _c
}

// AddRounds adds the "rounds" edges to the DiscussionRound entity.
func (_c *ArenaCreate) AddRounds(v ...*DiscussionRound) *ArenaCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRoundIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the ThinkingMessage entity by IDs.
func (_c *ArenaCreate) AddMessageIDs(ids ...string) *ArenaCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the ThinkingMessage entity.
func (_c *ArenaCreate) AddMessages(v ...*ThinkingMessage) *ArenaCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddEliminationIDs adds the "eliminations" edge to the EliminationEvent entity by IDs.
func (_c *ArenaCreate) AddEliminationIDs(ids ...int64) *ArenaCreate {
	_c.mutation.AddEliminationIDs(ids...)
	return _c
}

// AddEliminations adds the "eliminations" edges to the EliminationEvent entity.
func (_c *ArenaCreate) AddEliminations(v ...*EliminationEvent) *ArenaCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEliminationIDs(ids...)
}

// AddReportIDs adds the "reports" edge to the EvaluationReport entity by IDs.
func (_c *ArenaCreate) AddReportIDs(ids ...string) *ArenaCreate {
	_c.mutation.AddReportIDs(ids...)
	return _c
}

// AddReports adds the "reports" edges to the EvaluationReport entity.
func (_c *ArenaCreate) AddReports(v ...*EvaluationReport) *ArenaCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReportIDs(ids...)
}

// Mutation returns the ArenaMutation object of the builder.
func (_c *ArenaCreate) Mutation() *ArenaMutation {
	return _c.mutation
}

// Save creates the Arena in the database.
func (_c *ArenaCreate) Save(ctx context.Context) (*Arena, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArenaCreate) SaveX(ctx context.Context) *Arena {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArenaCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArenaCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArenaCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := arena.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.RoundsCompleted(); !ok {
		v := arena.DefaultRoundsCompleted
		_c.mutation.SetRoundsCompleted(v)
	}
	if _, ok := _c.mutation.EvaluationsRun(); !ok {
		v := arena.DefaultEvaluationsRun
		_c.mutation.SetEvaluationsRun(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := arena.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := arena.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArenaCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Arena.name"`)}
	}
	if _, ok := _c.mutation.Config(); !ok {
		return &ValidationError{Name: "config", err: errors.New(`ent: missing required field "Arena.config"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Arena.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := arena.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Arena.state": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ResumeState(); ok {
		if err := arena.ResumeStateValidator(v); err != nil {
			return &ValidationError{Name: "resume_state", err: fmt.Errorf(`ent: validator failed for field "Arena.resume_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RoundsCompleted(); !ok {
		return &ValidationError{Name: "rounds_completed", err: errors.New(`ent: missing required field "Arena.rounds_completed"`)}
	}
	if _, ok := _c.mutation.EvaluationsRun(); !ok {
		return &ValidationError{Name: "evaluations_run", err: errors.New(`ent: missing required field "Arena.evaluations_run"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Arena.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Arena.updated_at"`)}
	}
	return nil
}

func (_c *ArenaCreate) sqlSave(ctx context.Context) (*Arena, error) {
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
			return nil, fmt.Errorf("unexpected Arena.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ArenaCreate) createSpec() (*Arena, *sqlgraph.CreateSpec) {
	var (
		_node = &Arena{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(arena.Table, sqlgraph.NewFieldSpec(arena.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(arena.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(arena.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(arena.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.ResumeState(); ok {
		_spec.SetField(arena.FieldResumeState, field.TypeEnum, value)
		_node.ResumeState = &value
	}
	if value, ok := _c.mutation.RoundsCompleted(); ok {
		_spec.SetField(arena.FieldRoundsCompleted, field.TypeInt, value)
		_node.RoundsCompleted = value
	}
	if value, ok := _c.mutation.EvaluationsRun(); ok {
		_spec.SetField(arena.FieldEvaluationsRun, field.TypeInt, value)
		_node.EvaluationsRun = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(arena.FieldLastError, field.TypeString, value)
		_node.LastError = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(arena.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(arena.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.StrategiesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RoundsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EliminationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReportsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ArenaCreateBulk is the builder for creating many Arena entities in bulk.
type ArenaCreateBulk struct {
	config
	err      error
	builders []*ArenaCreate
}

// Save creates the Arena entities in the database.
func (_c *ArenaCreateBulk) Save(ctx context.Context) ([]*Arena, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Arena, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArenaMutation)
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
func (_c *ArenaCreateBulk) SaveX(ctx context.Context) []*Arena {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArenaCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArenaCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
