// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/pluginsetting"
)

// PluginSettingCreate is the builder for creating a PluginSetting entity.
type PluginSettingCreate struct {
	config
	mutation *PluginSettingMutation
	hooks    []Hook
}

// SetScheduleEnabled sets the "schedule_enabled" field.
func (_c *PluginSettingCreate) SetScheduleEnabled(v bool) *PluginSettingCreate {
	_c.mutation.SetScheduleEnabled(v)
	return _c
}

// SetNillableScheduleEnabled sets the "schedule_enabled" field if the given value is not nil.
func (_c *PluginSettingCreate) SetNillableScheduleEnabled(v *bool) *PluginSettingCreate {
	if v != nil {
		_c.SetScheduleEnabled(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PluginSettingCreate) SetUpdatedAt(v time.Time) *PluginSettingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PluginSettingCreate) SetNillableUpdatedAt(v *time.Time) *PluginSettingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PluginSettingCreate) SetID(v string) *PluginSettingCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PluginSettingMutation object of the builder.
func (_c *PluginSettingCreate) Mutation() *PluginSettingMutation {
	return _c.mutation
}

// Save creates the PluginSetting in the database.
func (_c *PluginSettingCreate) Save(ctx context.Context) (*PluginSetting, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PluginSettingCreate) SaveX(ctx context.Context) *PluginSetting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PluginSettingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PluginSettingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PluginSettingCreate) defaults() {
	if _, ok := _c.mutation.ScheduleEnabled(); !ok {
		v := pluginsetting.DefaultScheduleEnabled
		_c.mutation.SetScheduleEnabled(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pluginsetting.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PluginSettingCreate) check() error {
	if _, ok := _c.mutation.ScheduleEnabled(); !ok {
		return &ValidationError{Name: "schedule_enabled", err: errors.New(`ent: missing required field "PluginSetting.schedule_enabled"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PluginSetting.updated_at"`)}
	}
	return nil
}

func (_c *PluginSettingCreate) sqlSave(ctx context.Context) (*PluginSetting, error) {
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
			return nil, fmt.Errorf("unexpected PluginSetting.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PluginSettingCreate) createSpec() (*PluginSetting, *sqlgraph.CreateSpec) {
	var (
		_node = &PluginSetting{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pluginsetting.Table, sqlgraph.NewFieldSpec(pluginsetting.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ScheduleEnabled(); ok {
		_spec.SetField(pluginsetting.FieldScheduleEnabled, field.TypeBool, value)
		_node.ScheduleEnabled = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pluginsetting.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PluginSettingCreateBulk is the builder for creating many PluginSetting entities in bulk.
type PluginSettingCreateBulk struct {
	config
	err      error
	builders []*PluginSettingCreate
}

// Save creates the PluginSetting entities in the database.
func (_c *PluginSettingCreateBulk) Save(ctx context.Context) ([]*PluginSetting, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PluginSetting, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PluginSettingMutation)
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
func (_c *PluginSettingCreateBulk) SaveX(ctx context.Context) []*PluginSetting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PluginSettingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PluginSettingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
