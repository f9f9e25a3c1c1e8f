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
	"github.com/Yourdaylight/stock-datasource-sub001/ent/batchexecution"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/predicate"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/subtask"
)

// BatchExecutionUpdate is the builder for updating BatchExecution entities.
type BatchExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *BatchExecutionMutation
}

// Where appends a list predicates to the BatchExecutionUpdate builder.
func (_u *BatchExecutionUpdate) Where(ps ...predicate.BatchExecution) *BatchExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTriggerType sets the "trigger_type" field.
func (_u *BatchExecutionUpdate) SetTriggerType(v batchexecution.TriggerType) *BatchExecutionUpdate {
	_u.mutation.SetTriggerType(v)
	return _u
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_u *BatchExecutionUpdate) SetNillableTriggerType(v *batchexecution.TriggerType) *BatchExecutionUpdate {
	if v != nil {
		_u.SetTriggerType(*v)
	}
	return _u
}

// SetGroupName sets the "group_name" field.
func (_u *BatchExecutionUpdate) SetGroupName(v string) *BatchExecutionUpdate {
	_u.mutation.SetGroupName(v)
	return _u
}

// SetNillableGroupName sets the "group_name" field if the given value is not nil.
func (_u *BatchExecutionUpdate) SetNillableGroupName(v *string) *BatchExecutionUpdate {
	if v != nil {
		_u.SetGroupName(*v)
	}
	return _u
}

// ClearGroupName clears the value of the "group_name" field.
func (_u *BatchExecutionUpdate) ClearGroupName() *BatchExecutionUpdate {
	_u.mutation.ClearGroupName()
	return _u
}

// SetDateRange sets the "date_range" field.
func (_u *BatchExecutionUpdate) SetDateRange(v []string) *BatchExecutionUpdate {
	_u.mutation.SetDateRange(v)
	return _u
}

// AppendDateRange appends value to the "date_range" field.
func (_u *BatchExecutionUpdate) AppendDateRange(v []string) *BatchExecutionUpdate {
	_u.mutation.AppendDateRange(v)
	return _u
}

// ClearDateRange clears the value of the "date_range" field.
func (_u *BatchExecutionUpdate) ClearDateRange() *BatchExecutionUpdate {
	_u.mutation.ClearDateRange()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchExecutionUpdate) SetStatus(v batchexecution.Status) *BatchExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchExecutionUpdate) SetNillableStatus(v *batchexecution.Status) *BatchExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalPlugins sets the "total_plugins" field.
func (_u *BatchExecutionUpdate) SetTotalPlugins(v int) *BatchExecutionUpdate {
	_u.mutation.ResetTotalPlugins()
	_u.mutation.SetTotalPlugins(v)
	return _u
}

// SetNillableTotalPlugins sets the "total_plugins" field if the given value is not nil.
func (_u *BatchExecutionUpdate) SetNillableTotalPlugins(v *int) *BatchExecutionUpdate {
	if v != nil {
		_u.SetTotalPlugins(*v)
	}
	return _u
}

// AddTotalPlugins adds value to the "total_plugins" field.
func (_u *BatchExecutionUpdate) AddTotalPlugins(v int) *BatchExecutionUpdate {
	_u.mutation.AddTotalPlugins(v)
	return _u
}

// SetCompletedPlugins sets the "completed_plugins" field.
func (_u *BatchExecutionUpdate) SetCompletedPlugins(v int) *BatchExecutionUpdate {
	_u.mutation.ResetCompletedPlugins()
	_u.mutation.SetCompletedPlugins(v)
	return _u
}

// SetNillableCompletedPlugins sets the "completed_plugins" field if the given value is not nil.
func (_u *BatchExecutionUpdate) SetNillableCompletedPlugins(v *int) *BatchExecutionUpdate {
	if v != nil {
		_u.SetCompletedPlugins(*v)
	}
	return _u
}

// AddCompletedPlugins adds value to the "completed_plugins" field.
func (_u *BatchExecutionUpdate) AddCompletedPlugins(v int) *BatchExecutionUpdate {
	_u.mutation.AddCompletedPlugins(v)
	return _u
}

// SetFailedPlugins sets the "failed_plugins" field.
func (_u *BatchExecutionUpdate) SetFailedPlugins(v int) *BatchExecutionUpdate {
	_u.mutation.ResetFailedPlugins()
	_u.mutation.SetFailedPlugins(v)
	return _u
}

// SetNillableFailedPlugins sets the "failed_plugins" field if the given value is not nil.
func (_u *BatchExecutionUpdate) SetNillableFailedPlugins(v *int) *BatchExecutionUpdate {
	if v != nil {
		_u.SetFailedPlugins(*v)
	}
	return _u
}

// AddFailedPlugins adds value to the "failed_plugins" field.
func (_u *BatchExecutionUpdate) AddFailedPlugins(v int) *BatchExecutionUpdate {
	_u.mutation.AddFailedPlugins(v)
	return _u
}

// SetErrorSummary sets the "error_summary" field.
func (_u *BatchExecutionUpdate) SetErrorSummary(v string) *BatchExecutionUpdate {
	_u.mutation.SetErrorSummary(v)
	return _u
}

// SetNillableErrorSummary sets the "error_summary" field if the given value is not nil.
func (_u *BatchExecutionUpdate) SetNillableErrorSummary(v *string) *BatchExecutionUpdate {
	if v != nil {
		_u.SetErrorSummary(*v)
	}
	return _u
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (_u *BatchExecutionUpdate) ClearErrorSummary() *BatchExecutionUpdate {
	_u.mutation.ClearErrorSummary()
	return _u
}

// SetCanRetry sets the "can_retry" field.
func (_u *BatchExecutionUpdate) SetCanRetry(v bool) *BatchExecutionUpdate {
	_u.mutation.SetCanRetry(v)
	return _u
}

// SetNillableCanRetry sets the "can_retry" field if the given value is not nil.
func (_u *BatchExecutionUpdate) SetNillableCanRetry(v *bool) *BatchExecutionUpdate {
	if v != nil {
		_u.SetCanRetry(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *BatchExecutionUpdate) SetStartedAt(v time.Time) *BatchExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *BatchExecutionUpdate) SetNillableStartedAt(v *time.Time) *BatchExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BatchExecutionUpdate) SetCompletedAt(v time.Time) *BatchExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BatchExecutionUpdate) SetNillableCompletedAt(v *time.Time) *BatchExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BatchExecutionUpdate) ClearCompletedAt() *BatchExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetVersion sets the "version" field.
func (_u *BatchExecutionUpdate) SetVersion(v int64) *BatchExecutionUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *BatchExecutionUpdate) SetNillableVersion(v *int64) *BatchExecutionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *BatchExecutionUpdate) AddVersion(v int64) *BatchExecutionUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// AddSubTaskIDs adds the "sub_tasks" edge to the SubTask entity by IDs.
func (_u *BatchExecutionUpdate) AddSubTaskIDs(ids ...string) *BatchExecutionUpdate {
	_u.mutation.AddSubTaskIDs(ids...)
	return _u
}

// AddSubTasks adds the "sub_tasks" edges to the SubTask entity.
func (_u *BatchExecutionUpdate) AddSubTasks(v ...*SubTask) *BatchExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubTaskIDs(ids...)
}

// Mutation returns the BatchExecutionMutation object of the builder.
func (_u *BatchExecutionUpdate) Mutation() *BatchExecutionMutation {
	return _u.mutation
}

// ClearSubTasks clears all "sub_tasks" edges to the SubTask entity.
func (_u *BatchExecutionUpdate) ClearSubTasks() *BatchExecutionUpdate {
	_u.mutation.ClearSubTasks()
	return _u
}

// RemoveSubTaskIDs removes the "sub_tasks" edge to SubTask entities by IDs.
func (_u *BatchExecutionUpdate) RemoveSubTaskIDs(ids ...string) *BatchExecutionUpdate {
	_u.mutation.RemoveSubTaskIDs(ids...)
	return _u
}

// RemoveSubTasks removes "sub_tasks" edges to SubTask entities.
func (_u *BatchExecutionUpdate) RemoveSubTasks(v ...*SubTask) *BatchExecutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubTaskIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BatchExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BatchExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchExecutionUpdate) check() error {
	if v, ok := _u.mutation.TriggerType(); ok {
		if err := batchexecution.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "BatchExecution.trigger_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := batchexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BatchExecution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BatchExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batchexecution.Table, batchexecution.Columns, sqlgraph.NewFieldSpec(batchexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TriggerType(); ok {
		_spec.SetField(batchexecution.FieldTriggerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GroupName(); ok {
		_spec.SetField(batchexecution.FieldGroupName, field.TypeString, value)
	}
	if _u.mutation.GroupNameCleared() {
		_spec.ClearField(batchexecution.FieldGroupName, field.TypeString)
	}
	if value, ok := _u.mutation.DateRange(); ok {
		_spec.SetField(batchexecution.FieldDateRange, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDateRange(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, batchexecution.FieldDateRange, value)
		})
	}
	if _u.mutation.DateRangeCleared() {
		_spec.ClearField(batchexecution.FieldDateRange, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batchexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalPlugins(); ok {
		_spec.SetField(batchexecution.FieldTotalPlugins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPlugins(); ok {
		_spec.AddField(batchexecution.FieldTotalPlugins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedPlugins(); ok {
		_spec.SetField(batchexecution.FieldCompletedPlugins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedPlugins(); ok {
		_spec.AddField(batchexecution.FieldCompletedPlugins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedPlugins(); ok {
		_spec.SetField(batchexecution.FieldFailedPlugins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedPlugins(); ok {
		_spec.AddField(batchexecution.FieldFailedPlugins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorSummary(); ok {
		_spec.SetField(batchexecution.FieldErrorSummary, field.TypeString, value)
	}
	if _u.mutation.ErrorSummaryCleared() {
		_spec.ClearField(batchexecution.FieldErrorSummary, field.TypeString)
	}
	if value, ok := _u.mutation.CanRetry(); ok {
		_spec.SetField(batchexecution.FieldCanRetry, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(batchexecution.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(batchexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(batchexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(batchexecution.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(batchexecution.FieldVersion, field.TypeInt64, value)
	}
	if _u.mutation.SubTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batchexecution.SubTasksTable,
			Columns: []string{batchexecution.SubTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubTasksIDs(); len(nodes) > 0 && !_u.mutation.SubTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batchexecution.SubTasksTable,
			Columns: []string{batchexecution.SubTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubTasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batchexecution.SubTasksTable,
			Columns: []string{batchexecution.SubTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batchexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BatchExecutionUpdateOne is the builder for updating a single BatchExecution entity.
type BatchExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BatchExecutionMutation
}

// SetTriggerType sets the "trigger_type" field.
func (_u *BatchExecutionUpdateOne) SetTriggerType(v batchexecution.TriggerType) *BatchExecutionUpdateOne {
	_u.mutation.SetTriggerType(v)
	return _u
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_u *BatchExecutionUpdateOne) SetNillableTriggerType(v *batchexecution.TriggerType) *BatchExecutionUpdateOne {
	if v != nil {
		_u.SetTriggerType(*v)
	}
	return _u
}

// SetGroupName sets the "group_name" field.
func (_u *BatchExecutionUpdateOne) SetGroupName(v string) *BatchExecutionUpdateOne {
	_u.mutation.SetGroupName(v)
	return _u
}

// SetNillableGroupName sets the "group_name" field if the given value is not nil.
func (_u *BatchExecutionUpdateOne) SetNillableGroupName(v *string) *BatchExecutionUpdateOne {
	if v != nil {
		_u.SetGroupName(*v)
	}
	return _u
}

// ClearGroupName clears the value of the "group_name" field.
func (_u *BatchExecutionUpdateOne) ClearGroupName() *BatchExecutionUpdateOne {
	_u.mutation.ClearGroupName()
	return _u
}

// SetDateRange sets the "date_range" field.
func (_u *BatchExecutionUpdateOne) SetDateRange(v []string) *BatchExecutionUpdateOne {
	_u.mutation.SetDateRange(v)
	return _u
}

// AppendDateRange appends value to the "date_range" field.
func (_u *BatchExecutionUpdateOne) AppendDateRange(v []string) *BatchExecutionUpdateOne {
	_u.mutation.AppendDateRange(v)
	return _u
}

// ClearDateRange clears the value of the "date_range" field.
func (_u *BatchExecutionUpdateOne) ClearDateRange() *BatchExecutionUpdateOne {
	_u.mutation.ClearDateRange()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchExecutionUpdateOne) SetStatus(v batchexecution.Status) *BatchExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchExecutionUpdateOne) SetNillableStatus(v *batchexecution.Status) *BatchExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalPlugins sets the "total_plugins" field.
func (_u *BatchExecutionUpdateOne) SetTotalPlugins(v int) *BatchExecutionUpdateOne {
	_u.mutation.ResetTotalPlugins()
	_u.mutation.SetTotalPlugins(v)
	return _u
}

// SetNillableTotalPlugins sets the "total_plugins" field if the given value is not nil.
func (_u *BatchExecutionUpdateOne) SetNillableTotalPlugins(v *int) *BatchExecutionUpdateOne {
	if v != nil {
		_u.SetTotalPlugins(*v)
	}
	return _u
}

// AddTotalPlugins adds value to the "total_plugins" field.
func (_u *BatchExecutionUpdateOne) AddTotalPlugins(v int) *BatchExecutionUpdateOne {
	_u.mutation.AddTotalPlugins(v)
	return _u
}

// SetCompletedPlugins sets the "completed_plugins" field.
func (_u *BatchExecutionUpdateOne) SetCompletedPlugins(v int) *BatchExecutionUpdateOne {
	_u.mutation.ResetCompletedPlugins()
	_u.mutation.SetCompletedPlugins(v)
	return _u
}

// SetNillableCompletedPlugins sets the "completed_plugins" field if the given value is not nil.
func (_u *BatchExecutionUpdateOne) SetNillableCompletedPlugins(v *int) *BatchExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedPlugins(*v)
	}
	return _u
}

// AddCompletedPlugins adds value to the "completed_plugins" field.
func (_u *BatchExecutionUpdateOne) AddCompletedPlugins(v int) *BatchExecutionUpdateOne {
	_u.mutation.AddCompletedPlugins(v)
	return _u
}

// SetFailedPlugins sets the "failed_plugins" field.
func (_u *BatchExecutionUpdateOne) SetFailedPlugins(v int) *BatchExecutionUpdateOne {
	_u.mutation.ResetFailedPlugins()
	_u.mutation.SetFailedPlugins(v)
	return _u
}

// SetNillableFailedPlugins sets the "failed_plugins" field if the given value is not nil.
func (_u *BatchExecutionUpdateOne) SetNillableFailedPlugins(v *int) *BatchExecutionUpdateOne {
	if v != nil {
		_u.SetFailedPlugins(*v)
	}
	return _u
}

// AddFailedPlugins adds value to the "failed_plugins" field.
func (_u *BatchExecutionUpdateOne) AddFailedPlugins(v int) *BatchExecutionUpdateOne {
	_u.mutation.AddFailedPlugins(v)
	return _u
}

// SetErrorSummary sets the "error_summary" field.
func (_u *BatchExecutionUpdateOne) SetErrorSummary(v string) *BatchExecutionUpdateOne {
	_u.mutation.SetErrorSummary(v)
	return _u
}

// SetNillableErrorSummary sets the "error_summary" field if the given value is not nil.
func (_u *BatchExecutionUpdateOne) SetNillableErrorSummary(v *string) *BatchExecutionUpdateOne {
	if v != nil {
		_u.SetErrorSummary(*v)
	}
	return _u
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (_u *BatchExecutionUpdateOne) ClearErrorSummary() *BatchExecutionUpdateOne {
	_u.mutation.ClearErrorSummary()
	return _u
}

// SetCanRetry sets the "can_retry" field.
func (_u *BatchExecutionUpdateOne) SetCanRetry(v bool) *BatchExecutionUpdateOne {
	_u.mutation.SetCanRetry(v)
	return _u
}

// SetNillableCanRetry sets the "can_retry" field if the given value is not nil.
func (_u *BatchExecutionUpdateOne) SetNillableCanRetry(v *bool) *BatchExecutionUpdateOne {
	if v != nil {
		_u.SetCanRetry(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *BatchExecutionUpdateOne) SetStartedAt(v time.Time) *BatchExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *BatchExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *BatchExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *BatchExecutionUpdateOne) SetCompletedAt(v time.Time) *BatchExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *BatchExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *BatchExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *BatchExecutionUpdateOne) ClearCompletedAt() *BatchExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetVersion sets the "version" field.
func (_u *BatchExecutionUpdateOne) SetVersion(v int64) *BatchExecutionUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *BatchExecutionUpdateOne) SetNillableVersion(v *int64) *BatchExecutionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *BatchExecutionUpdateOne) AddVersion(v int64) *BatchExecutionUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// AddSubTaskIDs adds the "sub_tasks" edge to the SubTask entity by IDs.
func (_u *BatchExecutionUpdateOne) AddSubTaskIDs(ids ...string) *BatchExecutionUpdateOne {
	_u.mutation.AddSubTaskIDs(ids...)
	return _u
}

// AddSubTasks adds the "sub_tasks" edges to the SubTask entity.
func (_u *BatchExecutionUpdateOne) AddSubTasks(v ...*SubTask) *BatchExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubTaskIDs(ids...)
}

// Mutation returns the BatchExecutionMutation object of the builder.
func (_u *BatchExecutionUpdateOne) Mutation() *BatchExecutionMutation {
	return _u.mutation
}

// ClearSubTasks clears all "sub_tasks" edges to the SubTask entity.
func (_u *BatchExecutionUpdateOne) ClearSubTasks() *BatchExecutionUpdateOne {
	_u.mutation.ClearSubTasks()
	return _u
}

// RemoveSubTaskIDs removes the "sub_tasks" edge to SubTask entities by IDs.
func (_u *BatchExecutionUpdateOne) RemoveSubTaskIDs(ids ...string) *BatchExecutionUpdateOne {
	_u.mutation.RemoveSubTaskIDs(ids...)
	return _u
}

// RemoveSubTasks removes "sub_tasks" edges to SubTask entities.
func (_u *BatchExecutionUpdateOne) RemoveSubTasks(v ...*SubTask) *BatchExecutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubTaskIDs(ids...)
}

// Where appends a list predicates to the BatchExecutionUpdate builder.
func (_u *BatchExecutionUpdateOne) Where(ps ...predicate.BatchExecution) *BatchExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BatchExecutionUpdateOne) Select(field string, fields ...string) *BatchExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BatchExecution entity.
func (_u *BatchExecutionUpdateOne) Save(ctx context.Context) (*BatchExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchExecutionUpdateOne) SaveX(ctx context.Context) *BatchExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BatchExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.TriggerType(); ok {
		if err := batchexecution.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "BatchExecution.trigger_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := batchexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BatchExecution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BatchExecutionUpdateOne) sqlSave(ctx context.Context) (_node *BatchExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batchexecution.Table, batchexecution.Columns, sqlgraph.NewFieldSpec(batchexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BatchExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, batchexecution.FieldID)
		for _, f := range fields {
			if !batchexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != batchexecution.FieldID {
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
	if value, ok := _u.mutation.TriggerType(); ok {
		_spec.SetField(batchexecution.FieldTriggerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GroupName(); ok {
		_spec.SetField(batchexecution.FieldGroupName, field.TypeString, value)
	}
	if _u.mutation.GroupNameCleared() {
		_spec.ClearField(batchexecution.FieldGroupName, field.TypeString)
	}
	if value, ok := _u.mutation.DateRange(); ok {
		_spec.SetField(batchexecution.FieldDateRange, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDateRange(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, batchexecution.FieldDateRange, value)
		})
	}
	if _u.mutation.DateRangeCleared() {
		_spec.ClearField(batchexecution.FieldDateRange, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batchexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalPlugins(); ok {
		_spec.SetField(batchexecution.FieldTotalPlugins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPlugins(); ok {
		_spec.AddField(batchexecution.FieldTotalPlugins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedPlugins(); ok {
		_spec.SetField(batchexecution.FieldCompletedPlugins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedPlugins(); ok {
		_spec.AddField(batchexecution.FieldCompletedPlugins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedPlugins(); ok {
		_spec.SetField(batchexecution.FieldFailedPlugins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedPlugins(); ok {
		_spec.AddField(batchexecution.FieldFailedPlugins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorSummary(); ok {
		_spec.SetField(batchexecution.FieldErrorSummary, field.TypeString, value)
	}
	if _u.mutation.ErrorSummaryCleared() {
		_spec.ClearField(batchexecution.FieldErrorSummary, field.TypeString)
	}
	if value, ok := _u.mutation.CanRetry(); ok {
		_spec.SetField(batchexecution.FieldCanRetry, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(batchexecution.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(batchexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(batchexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(batchexecution.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(batchexecution.FieldVersion, field.TypeInt64, value)
	}
	if _u.mutation.SubTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batchexecution.SubTasksTable,
			Columns: []string{batchexecution.SubTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubTasksIDs(); len(nodes) > 0 && !_u.mutation.SubTasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batchexecution.SubTasksTable,
			Columns: []string{batchexecution.SubTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubTasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batchexecution.SubTasksTable,
			Columns: []string{batchexecution.SubTasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BatchExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batchexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
