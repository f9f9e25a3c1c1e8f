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
	"github.com/Yourdaylight/stock-datasource-sub001/ent/thinkingmessage"
)

// ThinkingMessageUpdate is the builder for updating ThinkingMessage entities.
type ThinkingMessageUpdate struct {
	config
	hooks    []Hook
	mutation *ThinkingMessageMutation
}

// Where appends a list predicates to the ThinkingMessageUpdate builder.
func (_u *ThinkingMessageUpdate) Where(ps ...predicate.ThinkingMessage) *ThinkingMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ThinkingMessageUpdate) SetAgentID(v string) *ThinkingMessageUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ThinkingMessageUpdate) SetNillableAgentID(v *string) *ThinkingMessageUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *ThinkingMessageUpdate) ClearAgentID() *ThinkingMessageUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetAgentRole sets the "agent_role" field.
func (_u *ThinkingMessageUpdate) SetAgentRole(v thinkingmessage.AgentRole) *ThinkingMessageUpdate {
	_u.mutation.SetAgentRole(v)
	return _u
}

// SetNillableAgentRole sets the "agent_role" field if the given value is not nil.
func (_u *ThinkingMessageUpdate) SetNillableAgentRole(v *thinkingmessage.AgentRole) *ThinkingMessageUpdate {
	if v != nil {
		_u.SetAgentRole(*v)
	}
	return _u
}

// ClearAgentRole clears the value of the "agent_role" field.
func (_u *ThinkingMessageUpdate) ClearAgentRole() *ThinkingMessageUpdate {
	_u.mutation.ClearAgentRole()
	return _u
}

// SetRoundID sets the "round_id" field.
func (_u *ThinkingMessageUpdate) SetRoundID(v string) *ThinkingMessageUpdate {
	_u.mutation.SetRoundID(v)
	return _u
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_u *ThinkingMessageUpdate) SetNillableRoundID(v *string) *ThinkingMessageUpdate {
	if v != nil {
		_u.SetRoundID(*v)
	}
	return _u
}

// ClearRoundID clears the value of the "round_id" field.
func (_u *ThinkingMessageUpdate) ClearRoundID() *ThinkingMessageUpdate {
	_u.mutation.ClearRoundID()
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *ThinkingMessageUpdate) SetMessageType(v thinkingmessage.MessageType) *ThinkingMessageUpdate {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *ThinkingMessageUpdate) SetNillableMessageType(v *thinkingmessage.MessageType) *ThinkingMessageUpdate {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ThinkingMessageUpdate) SetContent(v string) *ThinkingMessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ThinkingMessageUpdate) SetNillableContent(v *string) *ThinkingMessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ThinkingMessageUpdate) SetMetadata(v map[string]interface{}) *ThinkingMessageUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ThinkingMessageUpdate) ClearMetadata() *ThinkingMessageUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *ThinkingMessageUpdate) SetSequence(v int64) *ThinkingMessageUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *ThinkingMessageUpdate) SetNillableSequence(v *int64) *ThinkingMessageUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *ThinkingMessageUpdate) AddSequence(v int64) *ThinkingMessageUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// Mutation returns the ThinkingMessageMutation object of the builder.
func (_u *ThinkingMessageUpdate) Mutation() *ThinkingMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ThinkingMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThinkingMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ThinkingMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThinkingMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ThinkingMessageUpdate) check() error {
	if v, ok := _u.mutation.AgentRole(); ok {
		if err := thinkingmessage.AgentRoleValidator(v); err != nil {
			return &ValidationError{Name: "agent_role", err: fmt.Errorf(`ent: validator failed for field "ThinkingMessage.agent_role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageType(); ok {
		if err := thinkingmessage.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "ThinkingMessage.message_type": %w`, err)}
		}
	}
	if _u.mutation.ArenaCleared() && len(_u.mutation.ArenaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ThinkingMessage.arena"`)
	}
	return nil
}

func (_u *ThinkingMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(thinkingmessage.Table, thinkingmessage.Columns, sqlgraph.NewFieldSpec(thinkingmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(thinkingmessage.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(thinkingmessage.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentRole(); ok {
		_spec.SetField(thinkingmessage.FieldAgentRole, field.TypeEnum, value)
	}
	if _u.mutation.AgentRoleCleared() {
		_spec.ClearField(thinkingmessage.FieldAgentRole, field.TypeEnum)
	}
	if value, ok := _u.mutation.RoundID(); ok {
		_spec.SetField(thinkingmessage.FieldRoundID, field.TypeString, value)
	}
	if _u.mutation.RoundIDCleared() {
		_spec.ClearField(thinkingmessage.FieldRoundID, field.TypeString)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(thinkingmessage.FieldMessageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(thinkingmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(thinkingmessage.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(thinkingmessage.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(thinkingmessage.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(thinkingmessage.FieldSequence, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{thinkingmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ThinkingMessageUpdateOne is the builder for updating a single ThinkingMessage entity.
type ThinkingMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ThinkingMessageMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *ThinkingMessageUpdateOne) SetAgentID(v string) *ThinkingMessageUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ThinkingMessageUpdateOne) SetNillableAgentID(v *string) *ThinkingMessageUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *ThinkingMessageUpdateOne) ClearAgentID() *ThinkingMessageUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetAgentRole sets the "agent_role" field.
func (_u *ThinkingMessageUpdateOne) SetAgentRole(v thinkingmessage.AgentRole) *ThinkingMessageUpdateOne {
	_u.mutation.SetAgentRole(v)
	return _u
}

// SetNillableAgentRole sets the "agent_role" field if the given value is not nil.
func (_u *ThinkingMessageUpdateOne) SetNillableAgentRole(v *thinkingmessage.AgentRole) *ThinkingMessageUpdateOne {
	if v != nil {
		_u.SetAgentRole(*v)
	}
	return _u
}

// ClearAgentRole clears the value of the "agent_role" field.
func (_u *ThinkingMessageUpdateOne) ClearAgentRole() *ThinkingMessageUpdateOne {
	_u.mutation.ClearAgentRole()
	return _u
}

// SetRoundID sets the "round_id" field.
func (_u *ThinkingMessageUpdateOne) SetRoundID(v string) *ThinkingMessageUpdateOne {
	_u.mutation.SetRoundID(v)
	return _u
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_u *ThinkingMessageUpdateOne) SetNillableRoundID(v *string) *ThinkingMessageUpdateOne {
	if v != nil {
		_u.SetRoundID(*v)
	}
	return _u
}

// ClearRoundID clears the value of the "round_id" field.
func (_u *ThinkingMessageUpdateOne) ClearRoundID() *ThinkingMessageUpdateOne {
	_u.mutation.ClearRoundID()
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *ThinkingMessageUpdateOne) SetMessageType(v thinkingmessage.MessageType) *ThinkingMessageUpdateOne {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *ThinkingMessageUpdateOne) SetNillableMessageType(v *thinkingmessage.MessageType) *ThinkingMessageUpdateOne {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ThinkingMessageUpdateOne) SetContent(v string) *ThinkingMessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ThinkingMessageUpdateOne) SetNillableContent(v *string) *ThinkingMessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ThinkingMessageUpdateOne) SetMetadata(v map[string]interface{}) *ThinkingMessageUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ThinkingMessageUpdateOne) ClearMetadata() *ThinkingMessageUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *ThinkingMessageUpdateOne) SetSequence(v int64) *ThinkingMessageUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *ThinkingMessageUpdateOne) SetNillableSequence(v *int64) *ThinkingMessageUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *ThinkingMessageUpdateOne) AddSequence(v int64) *ThinkingMessageUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// Mutation returns the ThinkingMessageMutation object of the builder.
func (_u *ThinkingMessageUpdateOne) Mutation() *ThinkingMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the ThinkingMessageUpdate builder.
func (_u *ThinkingMessageUpdateOne) Where(ps ...predicate.ThinkingMessage) *ThinkingMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ThinkingMessageUpdateOne) Select(field string, fields ...string) *ThinkingMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ThinkingMessage entity.
func (_u *ThinkingMessageUpdateOne) Save(ctx context.Context) (*ThinkingMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThinkingMessageUpdateOne) SaveX(ctx context.Context) *ThinkingMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ThinkingMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThinkingMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ThinkingMessageUpdateOne) check() error {
	if v, ok := _u.mutation.AgentRole(); ok {
		if err := thinkingmessage.AgentRoleValidator(v); err != nil {
			return &ValidationError{Name: "agent_role", err: fmt.Errorf(`ent: validator failed for field "ThinkingMessage.agent_role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageType(); ok {
		if err := thinkingmessage.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "ThinkingMessage.message_type": %w`, err)}
		}
	}
	if _u.mutation.ArenaCleared() && len(_u.mutation.ArenaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ThinkingMessage.arena"`)
	}
	return nil
}

func (_u *ThinkingMessageUpdateOne) sqlSave(ctx context.Context) (_node *ThinkingMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(thinkingmessage.Table, thinkingmessage.Columns, sqlgraph.NewFieldSpec(thinkingmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ThinkingMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, thinkingmessage.FieldID)
		for _, f := range fields {
			if !thinkingmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != thinkingmessage.FieldID {
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
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(thinkingmessage.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(thinkingmessage.FieldAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.AgentRole(); ok {
		_spec.SetField(thinkingmessage.FieldAgentRole, field.TypeEnum, value)
	}
	if _u.mutation.AgentRoleCleared() {
		_spec.ClearField(thinkingmessage.FieldAgentRole, field.TypeEnum)
	}
	if value, ok := _u.mutation.RoundID(); ok {
		_spec.SetField(thinkingmessage.FieldRoundID, field.TypeString, value)
	}
	if _u.mutation.RoundIDCleared() {
		_spec.ClearField(thinkingmessage.FieldRoundID, field.TypeString)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(thinkingmessage.FieldMessageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(thinkingmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(thinkingmessage.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(thinkingmessage.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(thinkingmessage.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(thinkingmessage.FieldSequence, field.TypeInt64, value)
	}
	_node = &ThinkingMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{thinkingmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
