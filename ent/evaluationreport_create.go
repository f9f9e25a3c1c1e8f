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
	"github.com/Yourdaylight/stock-datasource-sub001/ent/evaluationreport"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// EvaluationReportCreate is the builder for creating a EvaluationReport entity.
type EvaluationReportCreate struct {
	config
	mutation *EvaluationReportMutation
	hooks    []Hook
}

// SetArenaID sets the "arena_id" field.
func (_c *EvaluationReportCreate) SetArenaID(v string) *EvaluationReportCreate {
	_c.mutation.SetArenaID(v)
	return _c
}

// SetPeriod sets the "period" field.
func (_c *EvaluationReportCreate) SetPeriod(v evaluationreport.Period) *EvaluationReportCreate {
	_c.mutation.SetPeriod(v)
	return _c
}

// SetEvaluated sets the "evaluated" field.
func (_c *EvaluationReportCreate) SetEvaluated(v int) *EvaluationReportCreate {
	_c.mutation.SetEvaluated(v)
	return _c
}

// SetEliminated sets the "eliminated" field.
func (_c *EvaluationReportCreate) SetEliminated(v int) *EvaluationReportCreate {
	_c.mutation.SetEliminated(v)
	return _c
}

// SetNillableEliminated sets the "eliminated" field if the given value is not nil.
func (_c *EvaluationReportCreate) SetNillableEliminated(v *int) *EvaluationReportCreate {
	if v != nil {
		_c.SetEliminated(*v)
	}
	return _c
}

// SetMinFloorApplied sets the "min_floor_applied" field.
func (_c *EvaluationReportCreate) SetMinFloorApplied(v bool) *EvaluationReportCreate {
	_c.mutation.SetMinFloorApplied(v)
	return _c
}

// SetNillableMinFloorApplied sets the "min_floor_applied" field if the given value is not nil.
func (_c *EvaluationReportCreate) SetNillableMinFloorApplied(v *bool) *EvaluationReportCreate {
	if v != nil {
		_c.SetMinFloorApplied(*v)
	}
	return _c
}

// SetRankings sets the "rankings" field.
func (_c *EvaluationReportCreate) SetRankings(v []models.RankingEntry) *EvaluationReportCreate {
	_c.mutation.SetRankings(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvaluationReportCreate) SetCreatedAt(v time.Time) *EvaluationReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvaluationReportCreate) SetNillableCreatedAt(v *time.Time) *EvaluationReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvaluationReportCreate) SetID(v string) *EvaluationReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetArena sets the "arena" edge to the Arena entity.
func (_c *EvaluationReportCreate) SetArena(v *Arena) *EvaluationReportCreate {
	return _c.SetArenaID(v.ID)
}

// Mutation returns the EvaluationReportMutation object of the builder.
func (_c *EvaluationReportCreate) Mutation() *EvaluationReportMutation {
	return _c.mutation
}

// Save creates the EvaluationReport in the database.
func (_c *EvaluationReportCreate) Save(ctx context.Context) (*EvaluationReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationReportCreate) SaveX(ctx context.Context) *EvaluationReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationReportCreate) defaults() {
	if _, ok := _c.mutation.Eliminated(); !ok {
		v := evaluationreport.DefaultEliminated
		_c.mutation.SetEliminated(v)
	}
	if _, ok := _c.mutation.MinFloorApplied(); !ok {
		v := evaluationreport.DefaultMinFloorApplied
		_c.mutation.SetMinFloorApplied(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evaluationreport.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationReportCreate) check() error {
	if _, ok := _c.mutation.ArenaID(); !ok {
		return &ValidationError{Name: "arena_id", err: errors.New(`ent: missing required field "EvaluationReport.arena_id"`)}
	}
	if _, ok := _c.mutation.Period(); !ok {
		return &ValidationError{Name: "period", err: errors.New(`ent: missing required field "EvaluationReport.period"`)}
	}
	if v, ok := _c.mutation.Period(); ok {
		if err := evaluationreport.PeriodValidator(v); err != nil {
			return &ValidationError{Name: "period", err: fmt.Errorf(`ent: validator failed for field "EvaluationReport.period": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Evaluated(); !ok {
		return &ValidationError{Name: "evaluated", err: errors.New(`ent: missing required field "EvaluationReport.evaluated"`)}
	}
	if _, ok := _c.mutation.Eliminated(); !ok {
		return &ValidationError{Name: "eliminated", err: errors.New(`ent: missing required field "EvaluationReport.eliminated"`)}
	}
	if _, ok := _c.mutation.MinFloorApplied(); !ok {
		return &ValidationError{Name: "min_floor_applied", err: errors.New(`ent: missing required field "EvaluationReport.min_floor_applied"`)}
	}
	if _, ok := _c.mutation.Rankings(); !ok {
		return &ValidationError{Name: "rankings", err: errors.New(`ent: missing required field "EvaluationReport.rankings"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EvaluationReport.created_at"`)}
	}
	if len(_c.mutation.ArenaIDs()) == 0 {
		return &ValidationError{Name: "arena", err: errors.New(`ent: missing required edge "EvaluationReport.arena"`)}
	}
	return nil
}

func (_c *EvaluationReportCreate) sqlSave(ctx context.Context) (*EvaluationReport, error) {
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
			return nil, fmt.Errorf("unexpected EvaluationReport.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvaluationReportCreate) createSpec() (*EvaluationReport, *sqlgraph.CreateSpec) {
	var (
		_node = &EvaluationReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluationreport.Table, sqlgraph.NewFieldSpec(evaluationreport.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Period(); ok {
		_spec.SetField(evaluationreport.FieldPeriod, field.TypeEnum, value)
		_node.Period = value
	}
	if value, ok := _c.mutation.Evaluated(); ok {
		_spec.SetField(evaluationreport.FieldEvaluated, field.TypeInt, value)
		_node.Evaluated = value
	}
	if value, ok := _c.mutation.Eliminated(); ok {
		_spec.SetField(evaluationreport.FieldEliminated, field.TypeInt, value)
		_node.Eliminated = value
	}
	if value, ok := _c.mutation.MinFloorApplied(); ok {
		_spec.SetField(evaluationreport.FieldMinFloorApplied, field.TypeBool, value)
		_node.MinFloorApplied = value
	}
	if value, ok := _c.mutation.Rankings(); ok {
		_spec.SetField(evaluationreport.FieldRankings, field.TypeJSON, value)
		_node.Rankings = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evaluationreport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ArenaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evaluationreport.ArenaTable,
			Columns: []string{evaluationreport.ArenaColumn},
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

// EvaluationReportCreateBulk is the builder for creating many EvaluationReport entities in bulk.
type EvaluationReportCreateBulk struct {
	config
	err      error
	builders []*EvaluationReportCreate
}

// Save creates the EvaluationReport entities in the database.
func (_c *EvaluationReportCreateBulk) Save(ctx context.Context) ([]*EvaluationReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvaluationReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationReportMutation)
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
func (_c *EvaluationReportCreateBulk) SaveX(ctx context.Context) []*EvaluationReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
