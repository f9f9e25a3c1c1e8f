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
	"github.com/Yourdaylight/stock-datasource-sub001/ent/predicate"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/strategy"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// StrategyUpdate is the builder for updating Strategy entities.
type StrategyUpdate struct {
	config
	hooks    []Hook
	mutation *StrategyMutation
}

// Where appends a list predicates to the StrategyUpdate builder.
func (_u *StrategyUpdate) Where(ps ...predicate.Strategy) *StrategyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *StrategyUpdate) SetName(v string) *StrategyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StrategyUpdate) SetNillableName(v *string) *StrategyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *StrategyUpdate) SetAgentID(v string) *StrategyUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *StrategyUpdate) SetNillableAgentID(v *string) *StrategyUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetAgentRole sets the "agent_role" field.
func (_u *StrategyUpdate) SetAgentRole(v strategy.AgentRole) *StrategyUpdate {
	_u.mutation.SetAgentRole(v)
	return _u
}

// SetNillableAgentRole sets the "agent_role" field if the given value is not nil.
func (_u *StrategyUpdate) SetNillableAgentRole(v *strategy.AgentRole) *StrategyUpdate {
	if v != nil {
		_u.SetAgentRole(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *StrategyUpdate) SetStage(v strategy.Stage) *StrategyUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *StrategyUpdate) SetNillableStage(v *strategy.Stage) *StrategyUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *StrategyUpdate) SetIsActive(v bool) *StrategyUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *StrategyUpdate) SetNillableIsActive(v *bool) *StrategyUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCurrentScore sets the "current_score" field.
func (_u *StrategyUpdate) SetCurrentScore(v float64) *StrategyUpdate {
	_u.mutation.ResetCurrentScore()
	_u.mutation.SetCurrentScore(v)
	return _u
}

// SetNillableCurrentScore sets the "current_score" field if the given value is not nil.
func (_u *StrategyUpdate) SetNillableCurrentScore(v *float64) *StrategyUpdate {
	if v != nil {
		_u.SetCurrentScore(*v)
	}
	return _u
}

// AddCurrentScore adds value to the "current_score" field.
func (_u *StrategyUpdate) AddCurrentScore(v float64) *StrategyUpdate {
	_u.mutation.AddCurrentScore(v)
	return _u
}

// SetCurrentRank sets the "current_rank" field.
func (_u *StrategyUpdate) SetCurrentRank(v int) *StrategyUpdate {
	_u.mutation.ResetCurrentRank()
	_u.mutation.SetCurrentRank(v)
	return _u
}

// SetNillableCurrentRank sets the "current_rank" field if the given value is not nil.
func (_u *StrategyUpdate) SetNillableCurrentRank(v *int) *StrategyUpdate {
	if v != nil {
		_u.SetCurrentRank(*v)
	}
	return _u
}

// AddCurrentRank adds value to the "current_rank" field.
func (_u *StrategyUpdate) AddCurrentRank(v int) *StrategyUpdate {
	_u.mutation.AddCurrentRank(v)
	return _u
}

// SetLogic sets the "logic" field.
func (_u *StrategyUpdate) SetLogic(v string) *StrategyUpdate {
	_u.mutation.SetLogic(v)
	return _u
}

// SetNillableLogic sets the "logic" field if the given value is not nil.
func (_u *StrategyUpdate) SetNillableLogic(v *string) *StrategyUpdate {
	if v != nil {
		_u.SetLogic(*v)
	}
	return _u
}

// ClearLogic clears the value of the "logic" field.
func (_u *StrategyUpdate) ClearLogic() *StrategyUpdate {
	_u.mutation.ClearLogic()
	return _u
}

// SetRules sets the "rules" field.
func (_u *StrategyUpdate) SetRules(v models.StrategyRules) *StrategyUpdate {
	_u.mutation.SetRules(v)
	return _u
}

// SetNillableRules sets the "rules" field if the given value is not nil.
func (_u *StrategyUpdate) SetNillableRules(v *models.StrategyRules) *StrategyUpdate {
	if v != nil {
		_u.SetRules(*v)
	}
	return _u
}

// SetProfitabilityScore sets the "profitability_score" field.
func (_u *StrategyUpdate) SetProfitabilityScore(v float64) *StrategyUpdate {
	_u.mutation.ResetProfitabilityScore()
	_u.mutation.SetProfitabilityScore(v)
	return _u
}

// SetNillableProfitabilityScore sets the "profitability_score" field if the given value is not nil.
func (_u *StrategyUpdate) SetNillableProfitabilityScore(v *float64) *StrategyUpdate {
	if v != nil {
		_u.SetProfitabilityScore(*v)
	}
	return _u
}

// AddProfitabilityScore adds value to the "profitability_score" field.
func (_u *StrategyUpdate) AddProfitabilityScore(v float64) *StrategyUpdate {
	_u.mutation.AddProfitabilityScore(v)
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *StrategyUpdate) SetRiskScore(v float64) *StrategyUpdate {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *StrategyUpdate) SetNillableRiskScore(v *float64) *StrategyUpdate {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *StrategyUpdate) AddRiskScore(v float64) *StrategyUpdate {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetStabilityScore sets the "stability_score" field.
func (_u *StrategyUpdate) SetStabilityScore(v float64) *StrategyUpdate {
	_u.mutation.ResetStabilityScore()
	_u.mutation.SetStabilityScore(v)
	return _u
}

// SetNillableStabilityScore sets the "stability_score" field if the given value is not nil.
func (_u *StrategyUpdate) SetNillableStabilityScore(v *float64) *StrategyUpdate {
	if v != nil {
		_u.SetStabilityScore(*v)
	}
	return _u
}

// AddStabilityScore adds value to the "stability_score" field.
func (_u *StrategyUpdate) AddStabilityScore(v float64) *StrategyUpdate {
	_u.mutation.AddStabilityScore(v)
	return _u
}

// SetAdaptabilityScore sets the "adaptability_score" field.
func (_u *StrategyUpdate) SetAdaptabilityScore(v float64) *StrategyUpdate {
	_u.mutation.ResetAdaptabilityScore()
	_u.mutation.SetAdaptabilityScore(v)
	return _u
}

// SetNillableAdaptabilityScore sets the "adaptability_score" field if the given value is not nil.
func (_u *StrategyUpdate) SetNillableAdaptabilityScore(v *float64) *StrategyUpdate {
	if v != nil {
		_u.SetAdaptabilityScore(*v)
	}
	return _u
}

// AddAdaptabilityScore adds value to the "adaptability_score" field.
func (_u *StrategyUpdate) AddAdaptabilityScore(v float64) *StrategyUpdate {
	_u.mutation.AddAdaptabilityScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StrategyUpdate) SetUpdatedAt(v time.Time) *StrategyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StrategyMutation object of the builder.
func (_u *StrategyUpdate) Mutation() *StrategyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StrategyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StrategyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StrategyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StrategyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StrategyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := strategy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StrategyUpdate) check() error {
	if v, ok := _u.mutation.AgentRole(); ok {
		if err := strategy.AgentRoleValidator(v); err != nil {
			return &ValidationError{Name: "agent_role", err: fmt.Errorf(`ent: validator failed for field "Strategy.agent_role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := strategy.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Strategy.stage": %w`, err)}
		}
	}
	if _u.mutation.ArenaCleared() && len(_u.mutation.ArenaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Strategy.arena"`)
	}
	return nil
}

func (_u *StrategyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(strategy.Table, strategy.Columns, sqlgraph.NewFieldSpec(strategy.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(strategy.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(strategy.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentRole(); ok {
		_spec.SetField(strategy.FieldAgentRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(strategy.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(strategy.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CurrentScore(); ok {
		_spec.SetField(strategy.FieldCurrentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentScore(); ok {
		_spec.AddField(strategy.FieldCurrentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentRank(); ok {
		_spec.SetField(strategy.FieldCurrentRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentRank(); ok {
		_spec.AddField(strategy.FieldCurrentRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Logic(); ok {
		_spec.SetField(strategy.FieldLogic, field.TypeString, value)
	}
	if _u.mutation.LogicCleared() {
		_spec.ClearField(strategy.FieldLogic, field.TypeString)
	}
	if value, ok := _u.mutation.Rules(); ok {
		_spec.SetField(strategy.FieldRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ProfitabilityScore(); ok {
		_spec.SetField(strategy.FieldProfitabilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProfitabilityScore(); ok {
		_spec.AddField(strategy.FieldProfitabilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(strategy.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(strategy.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StabilityScore(); ok {
		_spec.SetField(strategy.FieldStabilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStabilityScore(); ok {
		_spec.AddField(strategy.FieldStabilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AdaptabilityScore(); ok {
		_spec.SetField(strategy.FieldAdaptabilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAdaptabilityScore(); ok {
		_spec.AddField(strategy.FieldAdaptabilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(strategy.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{strategy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StrategyUpdateOne is the builder for updating a single Strategy entity.
type StrategyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StrategyMutation
}

// SetName sets the "name" field.
func (_u *StrategyUpdateOne) SetName(v string) *StrategyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StrategyUpdateOne) SetNillableName(v *string) *StrategyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *StrategyUpdateOne) SetAgentID(v string) *StrategyUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *StrategyUpdateOne) SetNillableAgentID(v *string) *StrategyUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetAgentRole sets the "agent_role" field.
func (_u *StrategyUpdateOne) SetAgentRole(v strategy.AgentRole) *StrategyUpdateOne {
	_u.mutation.SetAgentRole(v)
	return _u
}

// SetNillableAgentRole sets the "agent_role" field if the given value is not nil.
func (_u *StrategyUpdateOne) SetNillableAgentRole(v *strategy.AgentRole) *StrategyUpdateOne {
	if v != nil {
		_u.SetAgentRole(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *StrategyUpdateOne) SetStage(v strategy.Stage) *StrategyUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *StrategyUpdateOne) SetNillableStage(v *strategy.Stage) *StrategyUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *StrategyUpdateOne) SetIsActive(v bool) *StrategyUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *StrategyUpdateOne) SetNillableIsActive(v *bool) *StrategyUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCurrentScore sets the "current_score" field.
func (_u *StrategyUpdateOne) SetCurrentScore(v float64) *StrategyUpdateOne {
	_u.mutation.ResetCurrentScore()
	_u.mutation.SetCurrentScore(v)
	return _u
}

// SetNillableCurrentScore sets the "current_score" field if the given value is not nil.
func (_u *StrategyUpdateOne) SetNillableCurrentScore(v *float64) *StrategyUpdateOne {
	if v != nil {
		_u.SetCurrentScore(*v)
	}
	return _u
}

// AddCurrentScore adds value to the "current_score" field.
func (_u *StrategyUpdateOne) AddCurrentScore(v float64) *StrategyUpdateOne {
	_u.mutation.AddCurrentScore(v)
	return _u
}

// SetCurrentRank sets the "current_rank" field.
func (_u *StrategyUpdateOne) SetCurrentRank(v int) *StrategyUpdateOne {
	_u.mutation.ResetCurrentRank()
	_u.mutation.SetCurrentRank(v)
	return _u
}

// SetNillableCurrentRank sets the "current_rank" field if the given value is not nil.
func (_u *StrategyUpdateOne) SetNillableCurrentRank(v *int) *StrategyUpdateOne {
	if v != nil {
		_u.SetCurrentRank(*v)
	}
	return _u
}

// AddCurrentRank adds value to the "current_rank" field.
func (_u *StrategyUpdateOne) AddCurrentRank(v int) *StrategyUpdateOne {
	_u.mutation.AddCurrentRank(v)
	return _u
}

// SetLogic sets the "logic" field.
func (_u *StrategyUpdateOne) SetLogic(v string) *StrategyUpdateOne {
	_u.mutation.SetLogic(v)
	return _u
}

// SetNillableLogic sets the "logic" field if the given value is not nil.
func (_u *StrategyUpdateOne) SetNillableLogic(v *string) *StrategyUpdateOne {
	if v != nil {
		_u.SetLogic(*v)
	}
	return _u
}

// ClearLogic clears the value of the "logic" field.
func (_u *StrategyUpdateOne) ClearLogic() *StrategyUpdateOne {
	_u.mutation.ClearLogic()
	return _u
}

// SetRules sets the "rules" field.
func (_u *StrategyUpdateOne) SetRules(v models.StrategyRules) *StrategyUpdateOne {
	_u.mutation.SetRules(v)
	return _u
}

// SetNillableRules sets the "rules" field if the given value is not nil.
func (_u *StrategyUpdateOne) SetNillableRules(v *models.StrategyRules) *StrategyUpdateOne {
	if v != nil {
		_u.SetRules(*v)
	}
	return _u
}

// SetProfitabilityScore sets the "profitability_score" field.
func (_u *StrategyUpdateOne) SetProfitabilityScore(v float64) *StrategyUpdateOne {
	_u.mutation.ResetProfitabilityScore()
	_u.mutation.SetProfitabilityScore(v)
	return _u
}

// SetNillableProfitabilityScore sets the "profitability_score" field if the given value is not nil.
func (_u *StrategyUpdateOne) SetNillableProfitabilityScore(v *float64) *StrategyUpdateOne {
	if v != nil {
		_u.SetProfitabilityScore(*v)
	}
	return _u
}

// AddProfitabilityScore adds value to the "profitability_score" field.
func (_u *StrategyUpdateOne) AddProfitabilityScore(v float64) *StrategyUpdateOne {
	_u.mutation.AddProfitabilityScore(v)
	return _u
}

// SetRiskScore sets the "risk_score" field.
func (_u *StrategyUpdateOne) SetRiskScore(v float64) *StrategyUpdateOne {
	_u.mutation.ResetRiskScore()
	_u.mutation.SetRiskScore(v)
	return _u
}

// SetNillableRiskScore sets the "risk_score" field if the given value is not nil.
func (_u *StrategyUpdateOne) SetNillableRiskScore(v *float64) *StrategyUpdateOne {
	if v != nil {
		_u.SetRiskScore(*v)
	}
	return _u
}

// AddRiskScore adds value to the "risk_score" field.
func (_u *StrategyUpdateOne) AddRiskScore(v float64) *StrategyUpdateOne {
	_u.mutation.AddRiskScore(v)
	return _u
}

// SetStabilityScore sets the "stability_score" field.
func (_u *StrategyUpdateOne) SetStabilityScore(v float64) *StrategyUpdateOne {
	_u.mutation.ResetStabilityScore()
	_u.mutation.SetStabilityScore(v)
	return _u
}

// SetNillableStabilityScore sets the "stability_score" field if the given value is not nil.
func (_u *StrategyUpdateOne) SetNillableStabilityScore(v *float64) *StrategyUpdateOne {
	if v != nil {
		_u.SetStabilityScore(*v)
	}
	return _u
}

// AddStabilityScore adds value to the "stability_score" field.
func (_u *StrategyUpdateOne) AddStabilityScore(v float64) *StrategyUpdateOne {
	_u.mutation.AddStabilityScore(v)
	return _u
}

// SetAdaptabilityScore sets the "adaptability_score" field.
func (_u *StrategyUpdateOne) SetAdaptabilityScore(v float64) *StrategyUpdateOne {
	_u.mutation.ResetAdaptabilityScore()
	_u.mutation.SetAdaptabilityScore(v)
	return _u
}

// SetNillableAdaptabilityScore sets the "adaptability_score" field if the given value is not nil.
func (_u *StrategyUpdateOne) SetNillableAdaptabilityScore(v *float64) *StrategyUpdateOne {
	if v != nil {
		_u.SetAdaptabilityScore(*v)
	}
	return _u
}

// AddAdaptabilityScore adds value to the "adaptability_score" field.
func (_u *StrategyUpdateOne) AddAdaptabilityScore(v float64) *StrategyUpdateOne {
	_u.mutation.AddAdaptabilityScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StrategyUpdateOne) SetUpdatedAt(v time.Time) *StrategyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StrategyMutation object of the builder.
func (_u *StrategyUpdateOne) Mutation() *StrategyMutation {
	return _u.mutation
}

// Where appends a list predicates to the StrategyUpdate builder.
func (_u *StrategyUpdateOne) Where(ps ...predicate.Strategy) *StrategyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StrategyUpdateOne) Select(field string, fields ...string) *StrategyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Strategy entity.
func (_u *StrategyUpdateOne) Save(ctx context.Context) (*Strategy, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StrategyUpdateOne) SaveX(ctx context.Context) *Strategy {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StrategyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StrategyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StrategyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := strategy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StrategyUpdateOne) check() error {
	if v, ok := _u.mutation.AgentRole(); ok {
		if err := strategy.AgentRoleValidator(v); err != nil {
			return &ValidationError{Name: "agent_role", err: fmt.Errorf(`ent: validator failed for field "Strategy.agent_role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := strategy.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Strategy.stage": %w`, err)}
		}
	}
	if _u.mutation.ArenaCleared() && len(_u.mutation.ArenaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Strategy.arena"`)
	}
	return nil
}

func (_u *StrategyUpdateOne) sqlSave(ctx context.Context) (_node *Strategy, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(strategy.Table, strategy.Columns, sqlgraph.NewFieldSpec(strategy.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Strategy.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, strategy.FieldID)
		for _, f := range fields {
			if !strategy.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != strategy.FieldID {
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
		_spec.SetField(strategy.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(strategy.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentRole(); ok {
		_spec.SetField(strategy.FieldAgentRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(strategy.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(strategy.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CurrentScore(); ok {
		_spec.SetField(strategy.FieldCurrentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentScore(); ok {
		_spec.AddField(strategy.FieldCurrentScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentRank(); ok {
		_spec.SetField(strategy.FieldCurrentRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentRank(); ok {
		_spec.AddField(strategy.FieldCurrentRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Logic(); ok {
		_spec.SetField(strategy.FieldLogic, field.TypeString, value)
	}
	if _u.mutation.LogicCleared() {
		_spec.ClearField(strategy.FieldLogic, field.TypeString)
	}
	if value, ok := _u.mutation.Rules(); ok {
		_spec.SetField(strategy.FieldRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ProfitabilityScore(); ok {
		_spec.SetField(strategy.FieldProfitabilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProfitabilityScore(); ok {
		_spec.AddField(strategy.FieldProfitabilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskScore(); ok {
		_spec.SetField(strategy.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskScore(); ok {
		_spec.AddField(strategy.FieldRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StabilityScore(); ok {
		_spec.SetField(strategy.FieldStabilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStabilityScore(); ok {
		_spec.AddField(strategy.FieldStabilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AdaptabilityScore(); ok {
		_spec.SetField(strategy.FieldAdaptabilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAdaptabilityScore(); ok {
		_spec.AddField(strategy.FieldAdaptabilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(strategy.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Strategy{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{strategy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
