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
	"github.com/Yourdaylight/stock-datasource-sub001/ent/pluginsetting"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/predicate"
)

// PluginSettingUpdate is the builder for updating PluginSetting entities.
type PluginSettingUpdate struct {
	config
	hooks    []Hook
	mutation *PluginSettingMutation
}

// Where appends a list predicates to the PluginSettingUpdate builder.
func (_u *PluginSettingUpdate) Where(ps ...predicate.PluginSetting) *PluginSettingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScheduleEnabled sets the "schedule_enabled" field.
func (_u *PluginSettingUpdate) SetScheduleEnabled(v bool) *PluginSettingUpdate {
	_u.mutation.SetScheduleEnabled(v)
	return _u
}

// SetNillableScheduleEnabled sets the "schedule_enabled" field if the given value is not nil.
func (_u *PluginSettingUpdate) SetNillableScheduleEnabled(v *bool) *PluginSettingUpdate {
	if v != nil {
		_u.SetScheduleEnabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PluginSettingUpdate) SetUpdatedAt(v time.Time) *PluginSettingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PluginSettingMutation object of the builder.
func (_u *PluginSettingUpdate) Mutation() *PluginSettingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PluginSettingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PluginSettingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PluginSettingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PluginSettingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PluginSettingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pluginsetting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PluginSettingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(pluginsetting.Table, pluginsetting.Columns, sqlgraph.NewFieldSpec(pluginsetting.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ScheduleEnabled(); ok {
		_spec.SetField(pluginsetting.FieldScheduleEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pluginsetting.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pluginsetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PluginSettingUpdateOne is the builder for updating a single PluginSetting entity.
type PluginSettingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PluginSettingMutation
}

// SetScheduleEnabled sets the "schedule_enabled" field.
func (_u *PluginSettingUpdateOne) SetScheduleEnabled(v bool) *PluginSettingUpdateOne {
	_u.mutation.SetScheduleEnabled(v)
	return _u
}

// SetNillableScheduleEnabled sets the "schedule_enabled" field if the given value is not nil.
func (_u *PluginSettingUpdateOne) SetNillableScheduleEnabled(v *bool) *PluginSettingUpdateOne {
	if v != nil {
		_u.SetScheduleEnabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PluginSettingUpdateOne) SetUpdatedAt(v time.Time) *PluginSettingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PluginSettingMutation object of the builder.
func (_u *PluginSettingUpdateOne) Mutation() *PluginSettingMutation {
	return _u.mutation
}

// Where appends a list predicates to the PluginSettingUpdate builder.
func (_u *PluginSettingUpdateOne) Where(ps ...predicate.PluginSetting) *PluginSettingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PluginSettingUpdateOne) Select(field string, fields ...string) *PluginSettingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PluginSetting entity.
func (_u *PluginSettingUpdateOne) Save(ctx context.Context) (*PluginSetting, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PluginSettingUpdateOne) SaveX(ctx context.Context) *PluginSetting {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PluginSettingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PluginSettingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PluginSettingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pluginsetting.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PluginSettingUpdateOne) sqlSave(ctx context.Context) (_node *PluginSetting, err error) {
	_spec := sqlgraph.NewUpdateSpec(pluginsetting.Table, pluginsetting.Columns, sqlgraph.NewFieldSpec(pluginsetting.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PluginSetting.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pluginsetting.FieldID)
		for _, f := range fields {
			if !pluginsetting.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pluginsetting.FieldID {
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
	if value, ok := _u.mutation.ScheduleEnabled(); ok {
		_spec.SetField(pluginsetting.FieldScheduleEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pluginsetting.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PluginSetting{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pluginsetting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
