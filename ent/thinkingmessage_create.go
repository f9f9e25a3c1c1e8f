// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/arena"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/thinkingmessage"
)

// ThinkingMessageCreate is the builder for creating a ThinkingMessage entity.
type ThinkingMessageCreate struct {
	config
	mutation *ThinkingMessageMutation
	hooks    []Hook
}

// SetArenaID sets the "arena_id" field.
func (_c *ThinkingMessageCreate) SetArenaID(v string) *ThinkingMessageCreate {
	_c.mutation.SetArenaID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *ThinkingMessageCreate) SetAgentID(v string) *ThinkingMessageCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *ThinkingMessageCreate) SetNillableAgentID(v *string) *ThinkingMessageCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetAgentRole sets the "agent_role" field.
func (_c *ThinkingMessageCreate) SetAgentRole(v thinkingmessage.AgentRole) *ThinkingMessageCreate {
	_c.mutation.SetAgentRole(v)
	return _c
}

// SetNillableAgentRole sets the "agent_role" field if the given value is not nil.
func (_c *ThinkingMessageCreate) SetNillableAgentRole(v *thinkingmessage.AgentRole) *ThinkingMessageCreate {
	if v != nil {
		_c.SetAgentRole(*v)
	}
	return _c
}

// SetRoundID sets the "round_id" field.
func (_c *ThinkingMessageCreate) SetRoundID(v string) *ThinkingMessageCreate {
	_c.mutation.SetRoundID(v)
	return _c
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_c *ThinkingMessageCreate) SetNillableRoundID(v *string) *ThinkingMessageCreate {
	if v != nil {
		_c.SetRoundID(*v)
	}
	return _c
}

// SetMessageType sets the "message_type" field.
func (_c *ThinkingMessageCreate) SetMessageType(v thinkingmessage.MessageType) *ThinkingMessageCreate {
	_c.mutation.SetMessageType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ThinkingMessageCreate) SetContent(v string) *ThinkingMessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ThinkingMessageCreate) SetMetadata(v map[string]interface{}) *ThinkingMessageCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *ThinkingMessageCreate) SetSequence(v int64) *ThinkingMessageCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ThinkingMessageCreate) SetCreatedAt(v time.Time) *ThinkingMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ThinkingMessageCreate) SetNillableCreatedAt(v *time.Time) *ThinkingMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ThinkingMessageCreate) SetID(v string) *ThinkingMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetArena sets the "arena" edge to the Arena entity.
func (_c *ThinkingMessageCreate) SetArena(v *Arena) *ThinkingMessageCreate {
	return _c.SetArenaID(v.ID)
}

// Mutation returns the ThinkingMessageMutation object of the builder.
func (_c *ThinkingMessageCreate) Mutation() *ThinkingMessageMutation {
	return _c.mutation
}

// Save creates the ThinkingMessage in the database.
func (_c *ThinkingMessageCreate) Save(ctx context.Context) (*ThinkingMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ThinkingMessageCreate) SaveX(ctx context.Context) *ThinkingMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThinkingMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThinkingMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ThinkingMessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := thinkingmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ThinkingMessageCreate) check() error {
	if _, ok := _c.mutation.ArenaID(); !ok {
		return &ValidationError{Name: "arena_id", err: errors.New(`ent: missing required field "ThinkingMessage.arena_id"`)}
	}
	if v, ok := _c.mutation.AgentRole(); ok {
		if err := thinkingmessage.AgentRoleValidator(v); err != nil {
			return &ValidationError{Name: "agent_role", err: fmt.Errorf(`ent: validator failed for field "ThinkingMessage.agent_role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MessageType(); !ok {
		return &ValidationError{Name: "message_type", err: errors.New(`ent: missing required field "ThinkingMessage.message_type"`)}
	}
	if v, ok := _c.mutation.MessageType(); ok {
		if err := thinkingmessage.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "ThinkingMessage.message_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ThinkingMessage.content"`)}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ThinkingMessage.sequence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ThinkingMessage.created_at"`)}
	}
	if len(_c.mutation.ArenaIDs()) == 0 {
		return &ValidationError{Name: "arena", err: errors.New(`ent: missing required edge "ThinkingMessage.arena"`)}
	}
	return nil
}

func (_c *ThinkingMessageCreate) sqlSave(ctx context.Context) (*ThinkingMessage, error) {
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
			return nil, fmt.Errorf("unexpected ThinkingMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ThinkingMessageCreate) createSpec() (*ThinkingMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &ThinkingMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(thinkingmessage.Table, sqlgraph.NewFieldSpec(thinkingmessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(thinkingmessage.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.AgentRole(); ok {
		_spec.SetField(thinkingmessage.FieldAgentRole, field.TypeEnum, value)
		_node.AgentRole = &value
	}
	if value, ok := _c.mutation.RoundID(); ok {
		_spec.SetField(thinkingmessage.FieldRoundID, field.TypeString, value)
		_node.RoundID = value
	}
	if value, ok := _c.mutation.MessageType(); ok {
		_spec.SetField(thinkingmessage.FieldMessageType, field.TypeEnum, value)
		_node.MessageType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(thinkingmessage.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(thinkingmessage.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(thinkingmessage.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(thinkingmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ArenaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   thinkingmessage.ArenaTable,
			Columns: []string{thinkingmessage.ArenaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(arena.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ArenaID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ThinkingMessageCreateBulk is the builder for creating many ThinkingMessage entities in bulk.
type ThinkingMessageCreateBulk struct {
	config
	err      error
	builders []*ThinkingMessageCreate
}

// Save creates the ThinkingMessage entities in the database.
func (_c *ThinkingMessageCreateBulk) Save(ctx context.Context) ([]*ThinkingMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ThinkingMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ThinkingMessageMutation)
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
func (_c *ThinkingMessageCreateBulk) SaveX(ctx context.Context) []*ThinkingMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThinkingMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThinkingMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
