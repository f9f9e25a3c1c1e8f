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
	"github.com/Yourdaylight/stock-datasource-sub001/ent/subtask"
)

// SubTaskUpdate is the builder for updating SubTask entities.
type SubTaskUpdate struct {
	config
	hooks    []Hook
	mutation *SubTaskMutation
}

// Where appends a list predicates to the SubTaskUpdate builder.
func (_u *SubTaskUpdate) Where(ps ...predicate.SubTask) *SubTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPluginName sets the "plugin_name" field.
func (_u *SubTaskUpdate) SetPluginName(v string) *SubTaskUpdate {
	_u.mutation.SetPluginName(v)
	return _u
}

// SetNillablePluginName sets the "plugin_name" field if the given value is not nil.
func (_u *SubTaskUpdate) SetNillablePluginName(v *string) *SubTaskUpdate {
	if v != nil {
		_u.SetPluginName(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *SubTaskUpdate) SetTaskType(v subtask.TaskType) *SubTaskUpdate {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *SubTaskUpdate) SetNillableTaskType(v *subtask.TaskType) *SubTaskUpdate {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *SubTaskUpdate) SetParameters(v map[string]interface{}) *SubTaskUpdate {
	_u.mutation.SetParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *SubTaskUpdate) ClearParameters() *SubTaskUpdate {
	_u.mutation.ClearParameters()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubTaskUpdate) SetStatus(v subtask.Status) *SubTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubTaskUpdate) SetNillableStatus(v *subtask.Status) *SubTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *SubTaskUpdate) SetProgress(v int) *SubTaskUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *SubTaskUpdate) SetNillableProgress(v *int) *SubTaskUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *SubTaskUpdate) AddProgress(v int) *SubTaskUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetRecordsProcessed sets the "records_processed" field.
func (_u *SubTaskUpdate) SetRecordsProcessed(v int) *SubTaskUpdate {
	_u.mutation.ResetRecordsProcessed()
	_u.mutation.SetRecordsProcessed(v)
	return _u
}

// SetNillableRecordsProcessed sets the "records_processed" field if the given value is not nil.
func (_u *SubTaskUpdate) SetNillableRecordsProcessed(v *int) *SubTaskUpdate {
	if v != nil {
		_u.SetRecordsProcessed(*v)
	}
	return _u
}

// AddRecordsProcessed adds value to the "records_processed" field.
func (_u *SubTaskUpdate) AddRecordsProcessed(v int) *SubTaskUpdate {
	_u.mutation.AddRecordsProcessed(v)
	return _u
}

// SetRecordsFailed sets the "records_failed" field.
func (_u *SubTaskUpdate) SetRecordsFailed(v int) *SubTaskUpdate {
	_u.mutation.ResetRecordsFailed()
	_u.mutation.SetRecordsFailed(v)
	return _u
}

// SetNillableRecordsFailed sets the "records_failed" field if the given value is not nil.
func (_u *SubTaskUpdate) SetNillableRecordsFailed(v *int) *SubTaskUpdate {
	if v != nil {
		_u.SetRecordsFailed(*v)
	}
	return _u
}

// AddRecordsFailed adds value to the "records_failed" field.
func (_u *SubTaskUpdate) AddRecordsFailed(v int) *SubTaskUpdate {
	_u.mutation.AddRecordsFailed(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SubTaskUpdate) SetStartedAt(v time.Time) *SubTaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SubTaskUpdate) SetNillableStartedAt(v *time.Time) *SubTaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SubTaskUpdate) ClearStartedAt() *SubTaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SubTaskUpdate) SetCompletedAt(v time.Time) *SubTaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SubTaskUpdate) SetNillableCompletedAt(v *time.Time) *SubTaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SubTaskUpdate) ClearCompletedAt() *SubTaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SubTaskUpdate) SetErrorMessage(v string) *SubTaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SubTaskUpdate) SetNillableErrorMessage(v *string) *SubTaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SubTaskUpdate) ClearErrorMessage() *SubTaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the SubTaskMutation object of the builder.
func (_u *SubTaskUpdate) Mutation() *SubTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubTaskUpdate) check() error {
	if v, ok := _u.mutation.TaskType(); ok {
		if err := subtask.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "SubTask.task_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := subtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SubTask.status": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubTask.execution"`)
	}
	return nil
}

func (_u *SubTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtask.Table, subtask.Columns, sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PluginName(); ok {
		_spec.SetField(subtask.FieldPluginName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(subtask.FieldTaskType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(subtask.FieldParameters, field.TypeJSON, value)
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(subtask.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(subtask.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(subtask.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecordsProcessed(); ok {
		_spec.SetField(subtask.FieldRecordsProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordsProcessed(); ok {
		_spec.AddField(subtask.FieldRecordsProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecordsFailed(); ok {
		_spec.SetField(subtask.FieldRecordsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordsFailed(); ok {
		_spec.AddField(subtask.FieldRecordsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(subtask.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(subtask.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(subtask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(subtask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(subtask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(subtask.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubTaskUpdateOne is the builder for updating a single SubTask entity.
type SubTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubTaskMutation
}

// SetPluginName sets the "plugin_name" field.
func (_u *SubTaskUpdateOne) SetPluginName(v string) *SubTaskUpdateOne {
	_u.mutation.SetPluginName(v)
	return _u
}

// SetNillablePluginName sets the "plugin_name" field if the given value is not nil.
func (_u *SubTaskUpdateOne) SetNillablePluginName(v *string) *SubTaskUpdateOne {
	if v != nil {
		_u.SetPluginName(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *SubTaskUpdateOne) SetTaskType(v subtask.TaskType) *SubTaskUpdateOne {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *SubTaskUpdateOne) SetNillableTaskType(v *subtask.TaskType) *SubTaskUpdateOne {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *SubTaskUpdateOne) SetParameters(v map[string]interface{}) *SubTaskUpdateOne {
	_u.mutation.SetParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *SubTaskUpdateOne) ClearParameters() *SubTaskUpdateOne {
	_u.mutation.ClearParameters()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubTaskUpdateOne) SetStatus(v subtask.Status) *SubTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubTaskUpdateOne) SetNillableStatus(v *subtask.Status) *SubTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *SubTaskUpdateOne) SetProgress(v int) *SubTaskUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *SubTaskUpdateOne) SetNillableProgress(v *int) *SubTaskUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *SubTaskUpdateOne) AddProgress(v int) *SubTaskUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetRecordsProcessed sets the "records_processed" field.
func (_u *SubTaskUpdateOne) SetRecordsProcessed(v int) *SubTaskUpdateOne {
	_u.mutation.ResetRecordsProcessed()
	_u.mutation.SetRecordsProcessed(v)
	return _u
}

// SetNillableRecordsProcessed sets the "records_processed" field if the given value is not nil.
func (_u *SubTaskUpdateOne) SetNillableRecordsProcessed(v *int) *SubTaskUpdateOne {
	if v != nil {
		_u.SetRecordsProcessed(*v)
	}
	return _u
}

// AddRecordsProcessed adds value to the "records_processed" field.
func (_u *SubTaskUpdateOne) AddRecordsProcessed(v int) *SubTaskUpdateOne {
	_u.mutation.AddRecordsProcessed(v)
	return _u
}

// SetRecordsFailed sets the "records_failed" field.
func (_u *SubTaskUpdateOne) SetRecordsFailed(v int) *SubTaskUpdateOne {
	_u.mutation.ResetRecordsFailed()
	_u.mutation.SetRecordsFailed(v)
	return _u
}

// SetNillableRecordsFailed sets the "records_failed" field if the given value is not nil.
func (_u *SubTaskUpdateOne) SetNillableRecordsFailed(v *int) *SubTaskUpdateOne {
	if v != nil {
		_u.SetRecordsFailed(*v)
	}
	return _u
}

// AddRecordsFailed adds value to the "records_failed" field.
func (_u *SubTaskUpdateOne) AddRecordsFailed(v int) *SubTaskUpdateOne {
	_u.mutation.AddRecordsFailed(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SubTaskUpdateOne) SetStartedAt(v time.Time) *SubTaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SubTaskUpdateOne) SetNillableStartedAt(v *time.Time) *SubTaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SubTaskUpdateOne) ClearStartedAt() *SubTaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SubTaskUpdateOne) SetCompletedAt(v time.Time) *SubTaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SubTaskUpdateOne) SetNillableCompletedAt(v *time.Time) *SubTaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SubTaskUpdateOne) ClearCompletedAt() *SubTaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SubTaskUpdateOne) SetErrorMessage(v string) *SubTaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SubTaskUpdateOne) SetNillableErrorMessage(v *string) *SubTaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SubTaskUpdateOne) ClearErrorMessage() *SubTaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the SubTaskMutation object of the builder.
func (_u *SubTaskUpdateOne) Mutation() *SubTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubTaskUpdate builder.
func (_u *SubTaskUpdateOne) Where(ps ...predicate.SubTask) *SubTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubTaskUpdateOne) Select(field string, fields ...string) *SubTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubTask entity.
func (_u *SubTaskUpdateOne) Save(ctx context.Context) (*SubTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubTaskUpdateOne) SaveX(ctx context.Context) *SubTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubTaskUpdateOne) check() error {
	if v, ok := _u.mutation.TaskType(); ok {
		if err := subtask.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "SubTask.task_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := subtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SubTask.status": %w`, err)}
		}
	}
	if _u.mutation.ExecutionCleared() && len(_u.mutation.ExecutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubTask.execution"`)
	}
	return nil
}

func (_u *SubTaskUpdateOne) sqlSave(ctx context.Context) (_node *SubTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtask.Table, subtask.Columns, sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subtask.FieldID)
		for _, f := range fields {
			if !subtask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subtask.FieldID {
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
	if value, ok := _u.mutation.PluginName(); ok {
		_spec.SetField(subtask.FieldPluginName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(subtask.FieldTaskType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(subtask.FieldParameters, field.TypeJSON, value)
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(subtask.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(subtask.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(subtask.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecordsProcessed(); ok {
		_spec.SetField(subtask.FieldRecordsProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordsProcessed(); ok {
		_spec.AddField(subtask.FieldRecordsProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecordsFailed(); ok {
		_spec.SetField(subtask.FieldRecordsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordsFailed(); ok {
		_spec.AddField(subtask.FieldRecordsFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(subtask.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(subtask.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(subtask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(subtask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(subtask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(subtask.FieldErrorMessage, field.TypeString)
	}
	_node = &SubTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
