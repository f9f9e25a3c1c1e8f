// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/predicate"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/schemaaudit"
)

// SchemaAuditUpdate is the builder for updating SchemaAudit entities.
type SchemaAuditUpdate struct {
	config
	hooks    []Hook
	mutation *SchemaAuditMutation
}

// Where appends a list predicates to the SchemaAuditUpdate builder.
func (_u *SchemaAuditUpdate) Where(ps ...predicate.SchemaAudit) *SchemaAuditUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTableName sets the "table_name" field.
func (_u *SchemaAuditUpdate) SetTableName(v string) *SchemaAuditUpdate {
	_u.mutation.SetTableName(v)
	return _u
}

// SetNillableTableName sets the "table_name" field if the given value is not nil.
func (_u *SchemaAuditUpdate) SetNillableTableName(v *string) *SchemaAuditUpdate {
	if v != nil {
		_u.SetTableName(*v)
	}
	return _u
}

// SetColumnName sets the "column_name" field.
func (_u *SchemaAuditUpdate) SetColumnName(v string) *SchemaAuditUpdate {
	_u.mutation.SetColumnName(v)
	return _u
}

// SetNillableColumnName sets the "column_name" field if the given value is not nil.
func (_u *SchemaAuditUpdate) SetNillableColumnName(v *string) *SchemaAuditUpdate {
	if v != nil {
		_u.SetColumnName(*v)
	}
	return _u
}

// ClearColumnName clears the value of the "column_name" field.
func (_u *SchemaAuditUpdate) ClearColumnName() *SchemaAuditUpdate {
	_u.mutation.ClearColumnName()
	return _u
}

// SetAction sets the "action" field.
func (_u *SchemaAuditUpdate) SetAction(v string) *SchemaAuditUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SchemaAuditUpdate) SetNillableAction(v *string) *SchemaAuditUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetOldType sets the "old_type" field.
func (_u *SchemaAuditUpdate) SetOldType(v string) *SchemaAuditUpdate {
	_u.mutation.SetOldType(v)
	return _u
}

// SetNillableOldType sets the "old_type" field if the given value is not nil.
func (_u *SchemaAuditUpdate) SetNillableOldType(v *string) *SchemaAuditUpdate {
	if v != nil {
		_u.SetOldType(*v)
	}
	return _u
}

// ClearOldType clears the value of the "old_type" field.
func (_u *SchemaAuditUpdate) ClearOldType() *SchemaAuditUpdate {
	_u.mutation.ClearOldType()
	return _u
}

// SetNewType sets the "new_type" field.
func (_u *SchemaAuditUpdate) SetNewType(v string) *SchemaAuditUpdate {
	_u.mutation.SetNewType(v)
	return _u
}

// SetNillableNewType sets the "new_type" field if the given value is not nil.
func (_u *SchemaAuditUpdate) SetNillableNewType(v *string) *SchemaAuditUpdate {
	if v != nil {
		_u.SetNewType(*v)
	}
	return _u
}

// ClearNewType clears the value of the "new_type" field.
func (_u *SchemaAuditUpdate) ClearNewType() *SchemaAuditUpdate {
	_u.mutation.ClearNewType()
	return _u
}

// SetReason sets the "reason" field.
func (_u *SchemaAuditUpdate) SetReason(v string) *SchemaAuditUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *SchemaAuditUpdate) SetNillableReason(v *string) *SchemaAuditUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *SchemaAuditUpdate) ClearReason() *SchemaAuditUpdate {
	_u.mutation.ClearReason()
	return _u
}

// Mutation returns the SchemaAuditMutation object of the builder.
func (_u *SchemaAuditUpdate) Mutation() *SchemaAuditMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SchemaAuditUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchemaAuditUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SchemaAuditUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchemaAuditUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SchemaAuditUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(schemaaudit.Table, schemaaudit.Columns, sqlgraph.NewFieldSpec(schemaaudit.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TableName(); ok {
		_spec.SetField(schemaaudit.FieldTableName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ColumnName(); ok {
		_spec.SetField(schemaaudit.FieldColumnName, field.TypeString, value)
	}
	if _u.mutation.ColumnNameCleared() {
		_spec.ClearField(schemaaudit.FieldColumnName, field.TypeString)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(schemaaudit.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldType(); ok {
		_spec.SetField(schemaaudit.FieldOldType, field.TypeString, value)
	}
	if _u.mutation.OldTypeCleared() {
		_spec.ClearField(schemaaudit.FieldOldType, field.TypeString)
	}
	if value, ok := _u.mutation.NewType(); ok {
		_spec.SetField(schemaaudit.FieldNewType, field.TypeString, value)
	}
	if _u.mutation.NewTypeCleared() {
		_spec.ClearField(schemaaudit.FieldNewType, field.TypeString)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(schemaaudit.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(schemaaudit.FieldReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schemaaudit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SchemaAuditUpdateOne is the builder for updating a single SchemaAudit entity.
type SchemaAuditUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SchemaAuditMutation
}

// SetTableName sets the "table_name" field.
func (_u *SchemaAuditUpdateOne) SetTableName(v string) *SchemaAuditUpdateOne {
	_u.mutation.SetTableName(v)
	return _u
}

// SetNillableTableName sets the "table_name" field if the given value is not nil.
func (_u *SchemaAuditUpdateOne) SetNillableTableName(v *string) *SchemaAuditUpdateOne {
	if v != nil {
		_u.SetTableName(*v)
	}
	return _u
}

// SetColumnName sets the "column_name" field.
func (_u *SchemaAuditUpdateOne) SetColumnName(v string) *SchemaAuditUpdateOne {
	_u.mutation.SetColumnName(v)
	return _u
}

// SetNillableColumnName sets the "column_name" field if the given value is not nil.
func (_u *SchemaAuditUpdateOne) SetNillableColumnName(v *string) *SchemaAuditUpdateOne {
	if v != nil {
		_u.SetColumnName(*v)
	}
	return _u
}

// ClearColumnName clears the value of the "column_name" field.
func (_u *SchemaAuditUpdateOne) ClearColumnName() *SchemaAuditUpdateOne {
	_u.mutation.ClearColumnName()
	return _u
}

// SetAction sets the "action" field.
func (_u *SchemaAuditUpdateOne) SetAction(v string) *SchemaAuditUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SchemaAuditUpdateOne) SetNillableAction(v *string) *SchemaAuditUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetOldType sets the "old_type" field.
func (_u *SchemaAuditUpdateOne) SetOldType(v string) *SchemaAuditUpdateOne {
	_u.mutation.SetOldType(v)
	return _u
}

// SetNillableOldType sets the "old_type" field if the given value is not nil.
func (_u *SchemaAuditUpdateOne) SetNillableOldType(v *string) *SchemaAuditUpdateOne {
	if v != nil {
		_u.SetOldType(*v)
	}
	return _u
}

// ClearOldType clears the value of the "old_type" field.
func (_u *SchemaAuditUpdateOne) ClearOldType() *SchemaAuditUpdateOne {
	_u.mutation.ClearOldType()
	return _u
}

// SetNewType sets the "new_type" field.
func (_u *SchemaAuditUpdateOne) SetNewType(v string) *SchemaAuditUpdateOne {
	_u.mutation.SetNewType(v)
	return _u
}

// SetNillableNewType sets the "new_type" field if the given value is not nil.
func (_u *SchemaAuditUpdateOne) SetNillableNewType(v *string) *SchemaAuditUpdateOne {
	if v != nil {
		_u.SetNewType(*v)
	}
	return _u
}

// ClearNewType clears the value of the "new_type" field.
func (_u *SchemaAuditUpdateOne) ClearNewType() *SchemaAuditUpdateOne {
	_u.mutation.ClearNewType()
	return _u
}

// SetReason sets the "reason" field.
func (_u *SchemaAuditUpdateOne) SetReason(v string) *SchemaAuditUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *SchemaAuditUpdateOne) SetNillableReason(v *string) *SchemaAuditUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *SchemaAuditUpdateOne) ClearReason() *SchemaAuditUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// Mutation returns the SchemaAuditMutation object of the builder.
func (_u *SchemaAuditUpdateOne) Mutation() *SchemaAuditMutation {
	return _u.mutation
}

// Where appends a list predicates to the SchemaAuditUpdate builder.
func (_u *SchemaAuditUpdateOne) Where(ps ...predicate.SchemaAudit) *SchemaAuditUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SchemaAuditUpdateOne) Select(field string, fields ...string) *SchemaAuditUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SchemaAudit entity.
func (_u *SchemaAuditUpdateOne) Save(ctx context.Context) (*SchemaAudit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SchemaAuditUpdateOne) SaveX(ctx context.Context) *SchemaAudit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SchemaAuditUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SchemaAuditUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SchemaAuditUpdateOne) sqlSave(ctx context.Context) (_node *SchemaAudit, err error) {
	_spec := sqlgraph.NewUpdateSpec(schemaaudit.Table, schemaaudit.Columns, sqlgraph.NewFieldSpec(schemaaudit.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SchemaAudit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schemaaudit.FieldID)
		for _, f := range fields {
			if !schemaaudit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != schemaaudit.FieldID {
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
	if value, ok := _u.mutation.TableName(); ok {
		_spec.SetField(schemaaudit.FieldTableName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ColumnName(); ok {
		_spec.SetField(schemaaudit.FieldColumnName, field.TypeString, value)
	}
	if _u.mutation.ColumnNameCleared() {
		_spec.ClearField(schemaaudit.FieldColumnName, field.TypeString)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(schemaaudit.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldType(); ok {
		_spec.SetField(schemaaudit.FieldOldType, field.TypeString, value)
	}
	if _u.mutation.OldTypeCleared() {
		_spec.ClearField(schemaaudit.FieldOldType, field.TypeString)
	}
	if value, ok := _u.mutation.NewType(); ok {
		_spec.SetField(schemaaudit.FieldNewType, field.TypeString, value)
	}
	if _u.mutation.NewTypeCleared() {
		_spec.ClearField(schemaaudit.FieldNewType, field.TypeString)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(schemaaudit.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(schemaaudit.FieldReason, field.TypeString)
	}
	_node = &SchemaAudit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schemaaudit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
