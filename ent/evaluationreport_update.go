// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/evaluationreport"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/predicate"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// EvaluationReportUpdate is the builder for updating EvaluationReport entities.
type EvaluationReportUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationReportMutation
}

// Where appends a list predicates to the EvaluationReportUpdate builder.
func (_u *EvaluationReportUpdate) Where(ps ...predicate.EvaluationReport) *EvaluationReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPeriod sets the "period" field.
func (_u *EvaluationReportUpdate) SetPeriod(v evaluationreport.Period) *EvaluationReportUpdate {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *EvaluationReportUpdate) SetNillablePeriod(v *evaluationreport.Period) *EvaluationReportUpdate {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// SetEvaluated sets the "evaluated" field.
func (_u *EvaluationReportUpdate) SetEvaluated(v int) *EvaluationReportUpdate {
	_u.mutation.ResetEvaluated()
	_u.mutation.SetEvaluated(v)
	return _u
}

// SetNillableEvaluated sets the "evaluated" field if the given value is not nil.
func (_u *EvaluationReportUpdate) SetNillableEvaluated(v *int) *EvaluationReportUpdate {
	if v != nil {
		_u.SetEvaluated(*v)
	}
	return _u
}

// AddEvaluated adds value to the "evaluated" field.
func (_u *EvaluationReportUpdate) AddEvaluated(v int) *EvaluationReportUpdate {
	_u.mutation.AddEvaluated(v)
	return _u
}

// SetEliminated sets the "eliminated" field.
func (_u *EvaluationReportUpdate) SetEliminated(v int) *EvaluationReportUpdate {
	_u.mutation.ResetEliminated()
	_u.mutation.SetEliminated(v)
	return _u
}

// SetNillableEliminated sets the "eliminated" field if the given value is not nil.
func (_u *EvaluationReportUpdate) SetNillableEliminated(v *int) *EvaluationReportUpdate {
	if v != nil {
		_u.SetEliminated(*v)
	}
	return _u
}

// AddEliminated adds value to the "eliminated" field.
func (_u *EvaluationReportUpdate) AddEliminated(v int) *EvaluationReportUpdate {
	_u.mutation.AddEliminated(v)
	return _u
}

// SetMinFloorApplied sets the "min_floor_applied" field.
func (_u *EvaluationReportUpdate) SetMinFloorApplied(v bool) *EvaluationReportUpdate {
	_u.mutation.SetMinFloorApplied(v)
	return _u
}

// SetNillableMinFloorApplied sets the "min_floor_applied" field if the given value is not nil.
func (_u *EvaluationReportUpdate) SetNillableMinFloorApplied(v *bool) *EvaluationReportUpdate {
	if v != nil {
		_u.SetMinFloorApplied(*v)
	}
	return _u
}

// SetRankings sets the "rankings" field.
func (_u *EvaluationReportUpdate) SetRankings(v []models.RankingEntry) *EvaluationReportUpdate {
	_u.mutation.SetRankings(v)
	return _u
}

// AppendRankings appends value to the "rankings" field.
func (_u *EvaluationReportUpdate) AppendRankings(v []models.RankingEntry) *EvaluationReportUpdate {
	_u.mutation.AppendRankings(v)
	return _u
}

// Mutation returns the EvaluationReportMutation object of the builder.
func (_u *EvaluationReportUpdate) Mutation() *EvaluationReportMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationReportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationReportUpdate) check() error {
	if v, ok := _u.mutation.Period(); ok {
		if err := evaluationreport.PeriodValidator(v); err != nil {
			return &ValidationError{Name: "period", err: fmt.Errorf(`ent: validator failed for field "EvaluationReport.period": %w`, err)}
		}
	}
	if _u.mutation.ArenaCleared() && len(_u.mutation.ArenaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvaluationReport.arena"`)
	}
	return nil
}

func (_u *EvaluationReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationreport.Table, evaluationreport.Columns, sqlgraph.NewFieldSpec(evaluationreport.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Period(); ok {
		_spec.SetField(evaluationreport.FieldPeriod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Evaluated(); ok {
		_spec.SetField(evaluationreport.FieldEvaluated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvaluated(); ok {
		_spec.AddField(evaluationreport.FieldEvaluated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Eliminated(); ok {
		_spec.SetField(evaluationreport.FieldEliminated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEliminated(); ok {
		_spec.AddField(evaluationreport.FieldEliminated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MinFloorApplied(); ok {
		_spec.SetField(evaluationreport.FieldMinFloorApplied, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Rankings(); ok {
		_spec.SetField(evaluationreport.FieldRankings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRankings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationreport.FieldRankings, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationReportUpdateOne is the builder for updating a single EvaluationReport entity.
type EvaluationReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationReportMutation
}

// SetPeriod sets the "period" field.
func (_u *EvaluationReportUpdateOne) SetPeriod(v evaluationreport.Period) *EvaluationReportUpdateOne {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *EvaluationReportUpdateOne) SetNillablePeriod(v *evaluationreport.Period) *EvaluationReportUpdateOne {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// SetEvaluated sets the "evaluated" field.
func (_u *EvaluationReportUpdateOne) SetEvaluated(v int) *EvaluationReportUpdateOne {
	_u.mutation.ResetEvaluated()
	_u.mutation.SetEvaluated(v)
	return _u
}

// SetNillableEvaluated sets the "evaluated" field if the given value is not nil.
func (_u *EvaluationReportUpdateOne) SetNillableEvaluated(v *int) *EvaluationReportUpdateOne {
	if v != nil {
		_u.SetEvaluated(*v)
	}
	return _u
}

// AddEvaluated adds value to the "evaluated" field.
func (_u *EvaluationReportUpdateOne) AddEvaluated(v int) *EvaluationReportUpdateOne {
	_u.mutation.AddEvaluated(v)
	return _u
}

// SetEliminated sets the "eliminated" field.
func (_u *EvaluationReportUpdateOne) SetEliminated(v int) *EvaluationReportUpdateOne {
	_u.mutation.ResetEliminated()
	_u.mutation.SetEliminated(v)
	return _u
}

// SetNillableEliminated sets the "eliminated" field if the given value is not nil.
func (_u *EvaluationReportUpdateOne) SetNillableEliminated(v *int) *EvaluationReportUpdateOne {
	if v != nil {
		_u.SetEliminated(*v)
	}
	return _u
}

// AddEliminated adds value to the "eliminated" field.
func (_u *EvaluationReportUpdateOne) AddEliminated(v int) *EvaluationReportUpdateOne {
	_u.mutation.AddEliminated(v)
	return _u
}

// SetMinFloorApplied sets the "min_floor_applied" field.
func (_u *EvaluationReportUpdateOne) SetMinFloorApplied(v bool) *EvaluationReportUpdateOne {
	_u.mutation.SetMinFloorApplied(v)
	return _u
}

// SetNillableMinFloorApplied sets the "min_floor_applied" field if the given value is not nil.
func (_u *EvaluationReportUpdateOne) SetNillableMinFloorApplied(v *bool) *EvaluationReportUpdateOne {
	if v != nil {
		_u.SetMinFloorApplied(*v)
	}
	return _u
}

// SetRankings sets the "rankings" field.
func (_u *EvaluationReportUpdateOne) SetRankings(v []models.RankingEntry) *EvaluationReportUpdateOne {
	_u.mutation.SetRankings(v)
	return _u
}

// AppendRankings appends value to the "rankings" field.
func (_u *EvaluationReportUpdateOne) AppendRankings(v []models.RankingEntry) *EvaluationReportUpdateOne {
	_u.mutation.AppendRankings(v)
	return _u
}

// Mutation returns the EvaluationReportMutation object of the builder.
func (_u *EvaluationReportUpdateOne) Mutation() *EvaluationReportMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvaluationReportUpdate builder.
func (_u *EvaluationReportUpdateOne) Where(ps ...predicate.EvaluationReport) *EvaluationReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationReportUpdateOne) Select(field string, fields ...string) *EvaluationReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvaluationReport entity.
func (_u *EvaluationReportUpdateOne) Save(ctx context.Context) (*EvaluationReport, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationReportUpdateOne) SaveX(ctx context.Context) *EvaluationReport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationReportUpdateOne) check() error {
	if v, ok := _u.mutation.Period(); ok {
		if err := evaluationreport.PeriodValidator(v); err != nil {
			return &ValidationError{Name: "period", err: fmt.Errorf(`ent: validator failed for field "EvaluationReport.period": %w`, err)}
		}
	}
	if _u.mutation.ArenaCleared() && len(_u.mutation.ArenaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvaluationReport.arena"`)
	}
	return nil
}

func (_u *EvaluationReportUpdateOne) sqlSave(ctx context.Context) (_node *EvaluationReport, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationreport.Table, evaluationreport.Columns, sqlgraph.NewFieldSpec(evaluationreport.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvaluationReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluationreport.FieldID)
		for _, f := range fields {
			if !evaluationreport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluationreport.FieldID {
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
		_spec.SetField(evaluationreport.FieldPeriod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Evaluated(); ok {
		_spec.SetField(evaluationreport.FieldEvaluated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvaluated(); ok {
		_spec.AddField(evaluationreport.FieldEvaluated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Eliminated(); ok {
		_spec.SetField(evaluationreport.FieldEliminated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEliminated(); ok {
		_spec.AddField(evaluationreport.FieldEliminated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MinFloorApplied(); ok {
		_spec.SetField(evaluationreport.FieldMinFloorApplied, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Rankings(); ok {
		_spec.SetField(evaluationreport.FieldRankings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRankings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationreport.FieldRankings, value)
		})
	}
	_node = &EvaluationReport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
