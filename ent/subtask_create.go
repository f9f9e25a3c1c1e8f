// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/batchexecution"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/subtask"
)

// SubTaskCreate is the builder for creating a SubTask entity.
type SubTaskCreate struct {
	config
	mutation *SubTaskMutation
	hooks    []Hook
}

// SetExecutionID sets the "execution_id" field.
func (_c *SubTaskCreate) SetExecutionID(v string) *SubTaskCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetPluginName sets the "plugin_name" field.
func (_c *SubTaskCreate) SetPluginName(v string) *SubTaskCreate {
	_c.mutation.SetPluginName(v)
	return _c
}

// SetTaskType sets the "task_type" field.
func (_c *SubTaskCreate) SetTaskType(v subtask.TaskType) *SubTaskCreate {
	_c.mutation.SetTaskType(v)
	return _c
}

// SetParameters sets the "parameters" field.
func (_c *SubTaskCreate) SetParameters(v map[string]interface{}) *SubTaskCreate {
	_c.mutation.SetParameters(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SubTaskCreate) SetStatus(v subtask.Status) *SubTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SubTaskCreate) SetNillableStatus(v *subtask.Status) *SubTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *SubTaskCreate) SetProgress(v int) *SubTaskCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *SubTaskCreate) SetNillableProgress(v *int) *SubTaskCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetRecordsProcessed sets the "records_processed" field.
func (_c *SubTaskCreate) SetRecordsProcessed(v int) *SubTaskCreate {
	_c.mutation.SetRecordsProcessed(v)
	return _c
}

// SetNillableRecordsProcessed sets the "records_processed" field if the given value is not nil.
func (_c *SubTaskCreate) SetNillableRecordsProcessed(v *int) *SubTaskCreate {
	if v != nil {
		_c.SetRecordsProcessed(*v)
	}
	return _c
}

// SetRecordsFailed sets the "records_failed" field.
func (_c *SubTaskCreate) SetRecordsFailed(v int) *SubTaskCreate {
	_c.mutation.SetRecordsFailed(v)
	return _c
}

// SetNillableRecordsFailed sets the "records_failed" field if the given value is not nil.
func (_c *SubTaskCreate) SetNillableRecordsFailed(v *int) *SubTaskCreate {
	if v != nil {
		_c.SetRecordsFailed(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SubTaskCreate) SetStartedAt(v time.Time) *SubTaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SubTaskCreate) SetNillableStartedAt(v *time.Time) *SubTaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SubTaskCreate) SetCompletedAt(v time.Time) *SubTaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SubTaskCreate) SetNillableCompletedAt(v *time.Time) *SubTaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SubTaskCreate) SetErrorMessage(v string) *SubTaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SubTaskCreate) SetNillableErrorMessage(v *string) *SubTaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubTaskCreate) SetCreatedAt(v time.Time) *SubTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubTaskCreate) SetNillableCreatedAt(v *time.Time) *SubTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubTaskCreate) SetID(v string) *SubTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetExecution sets the "execution" edge to the BatchExecution entity.
func (_c *SubTaskCreate) SetExecution(v *BatchExecution) *SubTaskCreate {
	return _c.SetExecutionID(v.ID)
}

// Mutation returns the SubTaskMutation object of the builder.
func (_c *SubTaskCreate) Mutation() *SubTaskMutation {
	return _c.mutation
}

// Save creates the SubTask in the database.
func (_c *SubTaskCreate) Save(ctx context.Context) (*SubTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubTaskCreate) SaveX(ctx context.Context) *SubTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubTaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := subtask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := subtask.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.RecordsProcessed(); !ok {
		v := subtask.DefaultRecordsProcessed
		_c.mutation.SetRecordsProcessed(v)
	}
	if _, ok := _c.mutation.RecordsFailed(); !ok {
		v := subtask.DefaultRecordsFailed
		_c.mutation.SetRecordsFailed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := subtask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubTaskCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "SubTask.execution_id"`)}
	}
	if _, ok := _c.mutation.PluginName(); !ok {
		return &ValidationError{Name: "plugin_name", err: errors.New(`ent: missing required field "SubTask.plugin_name"`)}
	}
	if _, ok := _c.mutation.TaskType(); !ok {
		return &ValidationError{Name: "task_type", err: errors.New(`ent: missing required field "SubTask.task_type"`)}
	}
	if v, ok := _c.mutation.TaskType(); ok {
		if err := subtask.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "SubTask.task_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SubTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := subtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SubTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "SubTask.progress"`)}
	}
	if _, ok := _c.mutation.RecordsProcessed(); !ok {
		return &ValidationError{Name: "records_processed", err: errors.New(`ent: missing required field "SubTask.records_processed"`)}
	}
	if _, ok := _c.mutation.RecordsFailed(); !ok {
		return &ValidationError{Name: "records_failed", err: errors.New(`ent: missing required field "SubTask.records_failed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SubTask.created_at"`)}
	}
	if len(_c.mutation.ExecutionIDs()) == 0 {
		return &ValidationError{Name: "execution", err: errors.New(`ent: missing required edge "SubTask.execution"`)}
	}
	return nil
}

func (_c *SubTaskCreate) sqlSave(ctx context.Context) (*SubTask, error) {
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
			return nil, fmt.Errorf("unexpected SubTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubTaskCreate) createSpec() (*SubTask, *sqlgraph.CreateSpec) {
	var (
		_node = &SubTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subtask.Table, sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PluginName(); ok {
		_spec.SetField(subtask.FieldPluginName, field.TypeString, value)
		_node.PluginName = value
	}
	if value, ok := _c.mutation.TaskType(); ok {
		_spec.SetField(subtask.FieldTaskType, field.TypeEnum, value)
		_node.TaskType = value
	}
	if value, ok := _c.mutation.Parameters(); ok {
		_spec.SetField(subtask.FieldParameters, field.TypeJSON, value)
		_node.Parameters = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(subtask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(subtask.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.RecordsProcessed(); ok {
		_spec.SetField(subtask.FieldRecordsProcessed, field.TypeInt, value)
		_node.RecordsProcessed = value
	}
	if value, ok := _c.mutation.RecordsFailed(); ok {
		_spec.SetField(subtask.FieldRecordsFailed, field.TypeInt, value)
		_node.RecordsFailed = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(subtask.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(subtask.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(subtask.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(subtask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ExecutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subtask.ExecutionTable,
			Columns: []string{subtask.ExecutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ExecutionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubTaskCreateBulk is the builder for creating many SubTask entities in bulk.
type SubTaskCreateBulk struct {
	config
	err      error
	builders []*SubTaskCreate
}

// Save creates the SubTask entities in the database.
func (_c *SubTaskCreateBulk) Save(ctx context.Context) ([]*SubTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubTaskMutation)
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
func (_c *SubTaskCreateBulk) SaveX(ctx context.Context) []*SubTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
