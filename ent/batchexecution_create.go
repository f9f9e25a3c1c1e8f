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

// BatchExecutionCreate is the builder for creating a BatchExecution entity.
type BatchExecutionCreate struct {
	config
	mutation *BatchExecutionMutation
	hooks    []Hook
}

// SetTriggerType sets the "trigger_type" field.
func (_c *BatchExecutionCreate) SetTriggerType(v batchexecution.TriggerType) *BatchExecutionCreate {
	_c.mutation.SetTriggerType(v)
	return _c
}

// SetGroupName sets the "group_name" field.
func (_c *BatchExecutionCreate) SetGroupName(v string) *BatchExecutionCreate {
	_c.mutation.SetGroupName(v)
	return _c
}

// SetNillableGroupName sets the "group_name" field if the given value is not nil.
func (_c *BatchExecutionCreate) SetNillableGroupName(v *string) *BatchExecutionCreate {
	if v != nil {
		_c.SetGroupName(*v)
	}
	return _c
}

// SetDateRange sets the "date_range" field.
func (_c *BatchExecutionCreate) SetDateRange(v []string) *BatchExecutionCreate {
	_c.mutation.SetDateRange(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *BatchExecutionCreate) SetStatus(v batchexecution.Status) *BatchExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BatchExecutionCreate) SetNillableStatus(v *batchexecution.Status) *BatchExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalPlugins sets the "total_plugins" field.
func (_c *BatchExecutionCreate) SetTotalPlugins(v int) *BatchExecutionCreate {
	_c.mutation.SetTotalPlugins(v)
	return _c
}

// SetNillableTotalPlugins sets the "total_plugins" field if the given value is not nil.
func (_c *BatchExecutionCreate) SetNillableTotalPlugins(v *int) *BatchExecutionCreate {
	if v != nil {
		_c.SetTotalPlugins(*v)
	}
	return _c
}

// SetCompletedPlugins sets the "completed_plugins" field.
func (_c *BatchExecutionCreate) SetCompletedPlugins(v int) *BatchExecutionCreate {
	_c.mutation.SetCompletedPlugins(v)
	return _c
}

// SetNillableCompletedPlugins sets the "completed_plugins" field if the given value is not nil.
func (_c *BatchExecutionCreate) SetNillableCompletedPlugins(v *int) *BatchExecutionCreate {
	if v != nil {
		_c.SetCompletedPlugins(*v)
	}
	return _c
}

// SetFailedPlugins sets the "failed_plugins" field.
func (_c *BatchExecutionCreate) SetFailedPlugins(v int) *BatchExecutionCreate {
	_c.mutation.SetFailedPlugins(v)
	return _c
}

// SetNillableFailedPlugins sets the "failed_plugins" field if the given value is not nil.
func (_c *BatchExecutionCreate) SetNillableFailedPlugins(v *int) *BatchExecutionCreate {
	if v != nil {
		_c.SetFailedPlugins(*v)
	}
	return _c
}

// SetErrorSummary sets the "error_summary" field.
func (_c *BatchExecutionCreate) SetErrorSummary(v string) *BatchExecutionCreate {
	_c.mutation.SetErrorSummary(v)
	return _c
}

// SetNillableErrorSummary sets the "error_summary" field if the given value is not nil.
func (_c *BatchExecutionCreate) SetNillableErrorSummary(v *string) *BatchExecutionCreate {
	if v != nil {
		_c.SetErrorSummary(*v)
	}
	return _c
}

// SetCanRetry sets the "can_retry" field.
func (_c *BatchExecutionCreate) SetCanRetry(v bool) *BatchExecutionCreate {
	_c.mutation.SetCanRetry(v)
	return _c
}

// SetNillableCanRetry sets the "can_retry" field if the given value is not nil.
func (_c *BatchExecutionCreate) SetNillableCanRetry(v *bool) *BatchExecutionCreate {
	if v != nil {
		_c.SetCanRetry(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *BatchExecutionCreate) SetStartedAt(v time.Time) *BatchExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *BatchExecutionCreate) SetNillableStartedAt(v *time.Time) *BatchExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *BatchExecutionCreate) SetCompletedAt(v time.Time) *BatchExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *BatchExecutionCreate) SetNillableCompletedAt(v *time.Time) *BatchExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *BatchExecutionCreate) SetVersion(v int64) *BatchExecutionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *BatchExecutionCreate) SetNillableVersion(v *int64) *BatchExecutionCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BatchExecutionCreate) SetID(v string) *BatchExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddSubTaskIDs adds the "sub_tasks" edge to the SubTask entity by IDs.
func (_c *BatchExecutionCreate) AddSubTaskIDs(ids ...string) *BatchExecutionCreate {
	_c.mutation.AddSubTaskIDs(ids...)
	return _c
}

// AddSubTasks adds the "sub_tasks" edges to the SubTask entity.
func (_c *BatchExecutionCreate) AddSubTasks(v ...*SubTask) *BatchExecutionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubTaskIDs(ids...)
}

// Mutation returns the BatchExecutionMutation object of the builder.
func (_c *BatchExecutionCreate) Mutation() *BatchExecutionMutation {
	return _c.mutation
}

// Save creates the BatchExecution in the database.
func (_c *BatchExecutionCreate) Save(ctx context.Context) (*BatchExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BatchExecutionCreate) SaveX(ctx context.Context) *BatchExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BatchExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := batchexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalPlugins(); !ok {
		v := batchexecution.DefaultTotalPlugins
		_c.mutation.SetTotalPlugins(v)
	}
	if _, ok := _c.mutation.CompletedPlugins(); !ok {
		v := batchexecution.DefaultCompletedPlugins
		_c.mutation.SetCompletedPlugins(v)
	}
	if _, ok := _c.mutation.FailedPlugins(); !ok {
		v := batchexecution.DefaultFailedPlugins
		_c.mutation.SetFailedPlugins(v)
	}
	if _, ok := _c.mutation.CanRetry(); !ok {
		v := batchexecution.DefaultCanRetry
		_c.mutation.SetCanRetry(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := batchexecution.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := batchexecution.DefaultVersion
		_c.mutation.SetVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BatchExecutionCreate) check() error {
	if _, ok := _c.mutation.TriggerType(); !ok {
		return &ValidationError{Name: "trigger_type", err: errors.New(`ent: missing required field "BatchExecution.trigger_type"`)}
	}
	if v, ok := _c.mutation.TriggerType(); ok {
		if err := batchexecution.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "BatchExecution.trigger_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "BatchExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := batchexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BatchExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalPlugins(); !ok {
		return &ValidationError{Name: "total_plugins", err: errors.New(`ent: missing required field "BatchExecution.total_plugins"`)}
	}
	if _, ok := _c.mutation.CompletedPlugins(); !ok {
		return &ValidationError{Name: "completed_plugins", err: errors.New(`ent: missing required field "BatchExecution.completed_plugins"`)}
	}
	if _, ok := _c.mutation.FailedPlugins(); !ok {
		return &ValidationError{Name: "failed_plugins", err: errors.New(`ent: missing required field "BatchExecution.failed_plugins"`)}
	}
	if _, ok := _c.mutation.CanRetry(); !ok {
		return &ValidationError{Name: "can_retry", err: errors.New(`ent: missing required field "BatchExecution.can_retry"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "BatchExecution.started_at"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "BatchExecution.version"`)}
	}
	return nil
}

func (_c *BatchExecutionCreate) sqlSave(ctx context.Context) (*BatchExecution, error) {
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
			return nil, fmt.Errorf("unexpected BatchExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BatchExecutionCreate) createSpec() (*BatchExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &BatchExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(batchexecution.Table, sqlgraph.NewFieldSpec(batchexecution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TriggerType(); ok {
		_spec.SetField(batchexecution.FieldTriggerType, field.TypeEnum, value)
		_node.TriggerType = value
	}
	if value, ok := _c.mutation.GroupName(); ok {
		_spec.SetField(batchexecution.FieldGroupName, field.TypeString, value)
		_node.GroupName = value
	}
	if value, ok := _c.mutation.DateRange(); ok {
		_spec.SetField(batchexecution.FieldDateRange, field.TypeJSON, value)
		_node.DateRange = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(batchexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalPlugins(); ok {
		_spec.SetField(batchexecution.FieldTotalPlugins, field.TypeInt, value)
		_node.TotalPlugins = value
	}
	if value, ok := _c.mutation.CompletedPlugins(); ok {
		_spec.SetField(batchexecution.FieldCompletedPlugins, field.TypeInt, value)
		_node.CompletedPlugins = value
	}
	if value, ok := _c.mutation.FailedPlugins(); ok {
		_spec.SetField(batchexecution.FieldFailedPlugins, field.TypeInt, value)
		_node.FailedPlugins = value
	}
	if value, ok := _c.mutation.ErrorSummary(); ok {
		_spec.SetField(batchexecution.FieldErrorSummary, field.TypeString, value)
		_node.ErrorSummary = value
	}
	if value, ok := _c.mutation.CanRetry(); ok {
		_spec.SetField(batchexecution.FieldCanRetry, field.TypeBool, value)
		_node.CanRetry = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(batchexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(batchexecution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(batchexecution.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if nodes := _c.mutation.SubTasksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BatchExecutionCreateBulk is the builder for creating many BatchExecution entities in bulk.
type BatchExecutionCreateBulk struct {
	config
	err      error
	builders []*BatchExecutionCreate
}

// Save creates the BatchExecution entities in the database.
func (_c *BatchExecutionCreateBulk) Save(ctx context.Context) ([]*BatchExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BatchExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BatchExecutionMutation)
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
func (_c *BatchExecutionCreateBulk) SaveX(ctx context.Context) []*BatchExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
