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
	"github.com/Yourdaylight/stock-datasource-sub001/ent/strategy"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// StrategyCreate is the builder for creating a Strategy entity.
type StrategyCreate struct {
	config
	mutation *StrategyMutation
	hooks    []Hook
}

// SetArenaID sets the "arena_id" field.
func (_c *StrategyCreate) SetArenaID(v string) *StrategyCreate {
	_c.mutation.SetArenaID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *StrategyCreate) SetName(v string) *StrategyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *StrategyCreate) SetAgentID(v string) *StrategyCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetAgentRole sets the "agent_role" field.
func (_c *StrategyCreate) SetAgentRole(v strategy.AgentRole) *StrategyCreate {
	_c.mutation.SetAgentRole(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *StrategyCreate) SetStage(v strategy.Stage) *StrategyCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *StrategyCreate) SetNillableStage(v *strategy.Stage) *StrategyCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *StrategyCreate) SetIsActive(v bool) *StrategyCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *StrategyCreate) SetNillableIsActive(v *bool) *StrategyCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCurrentScore sets the "current_score" field.
func (_c *StrategyCreate) SetCurrentScore(v float64) *StrategyCreate {
	_c.mutation.SetCurrentScore(v)
	return _c
}

// SetNillableCurrentScore sets the "current_score" field if the given value is not nil.
func (_c *StrategyCreate) SetNillableCurrentScore(v *float64) *StrategyCreate {
	if v != nil {
		_c.SetCurrentScore(*v)
	}
	return _c
}

// SetCurrentRank sets the "current_rank" field.
func (_c *StrategyCreate) SetCurrentRank(v int) *StrategyCreate {
	_c.mutation.SetCurrentRank(v)
	return _c
}

// SetNillableCurrentRank sets the "current_rank" field if the given value is not nil.
func (_c *StrategyCreate) SetNillableCurrentRank(v *int) *StrategyCreate {
	if v != nil {
		_c.SetCurrentRank(*v)
	}
	return _c
}

// SetLogic sets the "logic" field.
func (_c *StrategyCreate) SetLogic(v string) *StrategyCreate {
	_c.mutation.SetLogic(v)
	return _c
}

// SetNillableLogic sets the "logic" field if the given value is not nil.
func (_c *StrategyCreate) SetNillableLogic(v *string) *StrategyCreate {
	if v != nil {
		_c.SetLogic(*v)
	}
	return _c
}

// SetRules sets the "rules" field.
func (_c *StrategyCreate) SetRules(v models.StrategyRules) *StrategyCreate {
	_c.mutation.SetRules(v)
	return _c
}

// SetProfitabilityScore sets the "profitability_score" field.
func (_c *StrategyCreate) SetProfitabilityScore(v float64) *StrategyCreate {
	_c.mutation.SetProfitabilityScore(v)
	return _c
}

// SetNillableProfitabilityScore sets the "profitability_score" field if the given value is not nil.
func (_c *StrategyCreate) SetNillableProfitabilityScore(v *float64) *StrategyCreate {
	if v != nil {
		_c.SetProfitabilityScore(*v)
	}
	return _c
}

// SetRiskScore sets the "risk_score" field.
func (_c *StrategyCreate) SetRiskScore(v float64) *StrategyCreate {
	_c.mutation.SetRiskScore(v)
	return _c
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_c *StrategyCreate) SetNillableRiskScore(v *float64) *StrategyCreate {
	if v != nil {
		_c.SetRiskScore(*v)
	}
	return _c
}

// SetStabilityScore sets the "stability_score" field.
func (_c *StrategyCreate) SetStabilityScore(v float64) *StrategyCreate {
	_c.mutation.SetStabilityScore(v)
	return _c
}

// SetNillableStabilityScore sets the "stability_score" field if the given value is not nil.
func (_c *StrategyCreate) SetNillableStabilityScore(v *float64) *StrategyCreate {
	if v != nil {
		_c.SetStabilityScore(*v)
	}
	return _c
}

// SetAdaptabilityScore sets the "adaptability_score" field.
func (_c *StrategyCreate) SetAdaptabilityScore(v float64) *StrategyCreate {
	_c.mutation.SetAdaptabilityScore(v)
	return _c
}

// SetNillableAdaptabilityScore sets the "adaptability_score" field if the given value is not nil.
func (_c *StrategyCreate) SetNillableAdaptabilityScore(v *float64) *StrategyCreate {
	if v != nil {
		_c.SetAdaptabilityScore(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StrategyCreate) SetCreatedAt(v time.Time) *StrategyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StrategyCreate) SetNillableCreatedAt(v *time.Time) *StrategyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StrategyCreate) SetUpdatedAt(v time.Time) *StrategyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StrategyCreate) SetNillableUpdatedAt(v *time.Time) *StrategyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StrategyCreate) SetID(v string) *StrategyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetArena sets the "arena" edge to the Arena entity.
func (_c *StrategyCreate) SetArena(v *Arena) *StrategyCreate {
	return _c.SetArenaID(v.ID)
}

// Mutation returns the StrategyMutation object of the builder.
func (_c *StrategyCreate) Mutation() *StrategyMutation {
	return _c.mutation
}

// Save creates the Strategy in the database.
func (_c *StrategyCreate) Save(ctx context.Context) (*Strategy, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StrategyCreate) SaveX(ctx context.Context) *Strategy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StrategyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StrategyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StrategyCreate) defaults() {
	if _, ok := _c.mutation.Stage(); !ok {
		v := strategy.DefaultStage
		_c.mutation.SetStage(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := strategy.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CurrentScore(); !ok {
		v := strategy.DefaultCurrentScore
		_c.mutation.SetCurrentScore(v)
	}
	if _, ok := _c.mutation.CurrentRank(); !ok {
		v := strategy.DefaultCurrentRank
		_c.mutation.SetCurrentRank(v)
	}
	if _, ok := _c.mutation.ProfitabilityScore(); !ok {
		v := strategy.DefaultProfitabilityScore
		_c.mutation.SetProfitabilityScore(v)
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		v := strategy.DefaultRiskScore
		_c.mutation.SetRiskScore(v)
	}
	if _, ok := _c.mutation.StabilityScore(); !ok {
		v := strategy.DefaultStabilityScore
		_c.mutation.SetStabilityScore(v)
	}
	if _, ok := _c.mutation.AdaptabilityScore(); !ok {
		v := strategy.DefaultAdaptabilityScore
		_c.mutation.SetAdaptabilityScore(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := strategy.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := strategy.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StrategyCreate) check() error {
	if _, ok := _c.mutation.ArenaID(); !ok {
		return &ValidationError{Name: "arena_id", err: errors.New(`ent: missing required field "Strategy.arena_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Strategy.name"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "Strategy.agent_id"`)}
	}
	if _, ok := _c.mutation.AgentRole(); !ok {
		return &ValidationError{Name: "agent_role", err: errors.New(`ent: missing required field "Strategy.agent_role"`)}
	}
	if v, ok := _c.mutation.AgentRole(); ok {
		if err := strategy.AgentRoleValidator(v); err != nil {
			return &ValidationError{Name: "agent_role", err: fmt.Errorf(`ent: validator failed for field "Strategy.agent_role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "Strategy.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := strategy.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Strategy.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Strategy.is_active"`)}
	}
	if _, ok := _c.mutation.CurrentScore(); !ok {
		return &ValidationError{Name: "current_score", err: errors.New(`ent: missing required field "Strategy.current_score"`)}
	}
	if _, ok := _c.mutation.CurrentRank(); !ok {
		return &ValidationError{Name: "current_rank", err: errors.New(`ent: missing required field "Strategy.current_rank"`)}
	}
	if _, ok := _c.mutation.Rules(); !ok {
		return &ValidationError{Name: "rules", err: errors.New(`ent: missing required field "Strategy.rules"`)}
	}
	if _, ok := _c.mutation.ProfitabilityScore(); !ok {
		return &ValidationError{Name: "profitability_score", err: errors.New(`ent: missing required field "Strategy.profitability_score"`)}
	}
	if _, ok := _c.mutation.RiskScore(); !ok {
		return &ValidationError{Name: "risk_score", err: errors.New(`ent: missing required field "Strategy.risk_score"`)}
	}
	if _, ok := _c.mutation.StabilityScore(); !ok {
		return &ValidationError{Name: "stability_score", err: errors.New(`ent: missing required field "Strategy.stability_score"`)}
	}
	if _, ok := _c.mutation.AdaptabilityScore(); !ok {
		return &ValidationError{Name: "adaptability_score", err: errors.New(`ent: missing required field "Strategy.adaptability_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Strategy.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Strategy.updated_at"`)}
	}
	if len(_c.mutation.ArenaIDs()) == 0 {
		return &ValidationError{Name: "arena", err: errors.New(`ent: missing required edge "Strategy.arena"`)}
	}
	return nil
}

func (_c *StrategyCreate) sqlSave(ctx context.Context) (*Strategy, error) {
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
			return nil, fmt.Errorf("unexpected Strategy.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StrategyCreate) createSpec() (*Strategy, *sqlgraph.CreateSpec) {
	var (
		_node = &Strategy{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(strategy.Table, sqlgraph.NewFieldSpec(strategy.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(strategy.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(strategy.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.AgentRole(); ok {
		_spec.SetField(strategy.FieldAgentRole, field.TypeEnum, value)
		_node.AgentRole = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(strategy.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(strategy.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CurrentScore(); ok {
		_spec.SetField(strategy.FieldCurrentScore, field.TypeFloat64, value)
		_node.CurrentScore = value
	}
	if value, ok := _c.mutation.CurrentRank(); ok {
		_spec.SetField(strategy.FieldCurrentRank, field.TypeInt, value)
		_node.CurrentRank = value
	}
	if value, ok := _c.mutation.Logic(); ok {
		_spec.SetField(strategy.FieldLogic, field.TypeString, value)
		_node.Logic = value
	}
	if value, ok := _c.mutation.Rules(); ok {
		_spec.SetField(strategy.FieldRules, field.TypeJSON, value)
		_node.Rules = value
	}
	if value, ok := _c.mutation.ProfitabilityScore(); ok {
		_spec.SetField(strategy.FieldProfitabilityScore, field.TypeFloat64, value)
		_node.ProfitabilityScore = value
	}
	if value, ok := _c.mutation.RiskScore(); ok {
		_spec.SetField(strategy.FieldRiskScore, field.TypeFloat64, value)
		_node.RiskScore = value
	}
	if value, ok := _c.mutation.StabilityScore(); ok {
		_spec.SetField(strategy.FieldStabilityScore, field.TypeFloat64, value)
		_node.StabilityScore = value
	}
	if value, ok := _c.mutation.AdaptabilityScore(); ok {
		_spec.SetField(strategy.FieldAdaptabilityScore, field.TypeFloat64, value)
		_node.AdaptabilityScore = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(strategy.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(strategy.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ArenaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   strategy.ArenaTable,
			Columns: []string{strategy.ArenaColumn},
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

// StrategyCreateBulk is the builder for creating many Strategy entities in bulk.
type StrategyCreateBulk struct {
	config
	err      error
	builders []*StrategyCreate
}

// Save creates the Strategy entities in the database.
func (_c *StrategyCreateBulk) Save(ctx context.Context) ([]*Strategy, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Strategy, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StrategyMutation)
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
func (_c *StrategyCreateBulk) SaveX(ctx context.Context) []*Strategy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StrategyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StrategyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
