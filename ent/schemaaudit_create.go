// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/schemaaudit"
)

// SchemaAuditCreate is the builder for creating a SchemaAudit entity.
type SchemaAuditCreate struct {
	config
	mutation *SchemaAuditMutation
	hooks    []Hook
}

// SetTableName sets the "table_name" field.
func (_c *SchemaAuditCreate) SetTableName(v string) *SchemaAuditCreate {
	_c.mutation.SetTableName(v)
	return _c
}

// SetColumnName sets the "column_name" field.
func (_c *SchemaAuditCreate) SetColumnName(v string) *SchemaAuditCreate {
	_c.mutation.SetColumnName(v)
	return _c
}

// SetNillableColumnName sets the "column_name" field if the given value is not nil.
func (_c *SchemaAuditCreate) SetNillableColumnName(v *string) *SchemaAuditCreate {
	if v != nil {
		_c.SetColumnName(*v)
	}
	return _c
}

// SetAction sets the "action" field.
func (_c *SchemaAuditCreate) SetAction(v string) *SchemaAuditCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetOldType sets the "old_type" field.
func (_c *SchemaAuditCreate) SetOldType(v string) *SchemaAuditCreate {
	_c.mutation.SetOldType(v)
	return _c
}

// SetNillableOldType sets the "old_type" field if the given value is not nil.
func (_c *SchemaAuditCreate) SetNillableOldType(v *string) *SchemaAuditCreate {
	if v != nil {
		_c.SetOldType(*v)
	}
	return _c
}

// SetNewType sets the "new_type" field.
func (_c *SchemaAuditCreate) SetNewType(v string) *SchemaAuditCreate {
	_c.mutation.SetNewType(v)
	return _c
}

// SetNillableNewType sets the "new_type" field if the given value is not nil.
func (_c *SchemaAuditCreate) SetNillableNewType(v *string) *SchemaAuditCreate {
	if v != nil {
		_c.SetNewType(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *SchemaAuditCreate) SetReason(v string) *SchemaAuditCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *SchemaAuditCreate) SetNillableReason(v *string) *SchemaAuditCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SchemaAuditCreate) SetCreatedAt(v time.Time) *SchemaAuditCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SchemaAuditCreate) SetNillableCreatedAt(v *time.Time) *SchemaAuditCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SchemaAuditCreate) SetID(v int64) *SchemaAuditCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SchemaAuditMutation object of the builder.
func (_c *SchemaAuditCreate) Mutation() *SchemaAuditMutation {
	return _c.mutation
}

// Save creates the SchemaAudit in the database.
func (_c *SchemaAuditCreate) Save(ctx context.Context) (*SchemaAudit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SchemaAuditCreate) SaveX(ctx context.Context) *SchemaAudit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchemaAuditCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchemaAuditCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SchemaAuditCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := schemaaudit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SchemaAuditCreate) check() error {
	if _, ok := _c.mutation.TableName(); !ok {
		return &ValidationError{Name: "table_name", err: errors.New(`ent: missing required field "SchemaAudit.table_name"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "SchemaAudit.action"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SchemaAudit.created_at"`)}
	}
	return nil
}

func (_c *SchemaAuditCreate) sqlSave(ctx context.Context) (*SchemaAudit, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SchemaAuditCreate) createSpec() (*SchemaAudit, *sqlgraph.CreateSpec) {
	var (
		_node = &SchemaAudit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(schemaaudit.Table, sqlgraph.NewFieldSpec(schemaaudit.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TableName(); ok {
		_spec.SetField(schemaaudit.FieldTableName, field.TypeString, value)
		_node.TableName = value
	}
	if value, ok := _c.mutation.ColumnName(); ok {
		_spec.SetField(schemaaudit.FieldColumnName, field.TypeString, value)
		_node.ColumnName = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(schemaaudit.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.OldType(); ok {
		_spec.SetField(schemaaudit.FieldOldType, field.TypeString, value)
		_node.OldType = value
	}
	if value, ok := _c.mutation.NewType(); ok {
		_spec.SetField(schemaaudit.FieldNewType, field.TypeString, value)
		_node.NewType = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(schemaaudit.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(schemaaudit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SchemaAuditCreateBulk is the builder for creating many SchemaAudit entities in bulk.
type SchemaAuditCreateBulk struct {
	config
	err      error
	builders []*SchemaAuditCreate
}

// Save creates the SchemaAudit entities in the database.
func (_c *SchemaAuditCreateBulk) Save(ctx context.Context) ([]*SchemaAudit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SchemaAudit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SchemaAuditMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
				}
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
func (_c *SchemaAuditCreateBulk) SaveX(ctx context.Context) []*SchemaAudit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchemaAuditCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchemaAuditCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
