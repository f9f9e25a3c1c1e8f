// Code generated by ent, DO NOT EDIT.

package thinkingmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldContainsFold(FieldID, id))
}

// ArenaID applies equality check predicate on the "arena_id" field. It's identical to ArenaIDEQ.
func ArenaID(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldEQ(FieldArenaID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldEQ(FieldAgentID, v))
}

// RoundID applies equality check predicate on the "round_id" field. It's identical to RoundIDEQ.
func RoundID(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldEQ(FieldRoundID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldEQ(FieldContent, v))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldEQ(FieldSequence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// ArenaIDEQ applies the EQ predicate on the "arena_id" field.
func ArenaIDEQ(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldEQ(FieldArenaID, v))
}

// ArenaIDNEQ applies the NEQ predicate on the "arena_id" field.
func ArenaIDNEQ(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldNEQ(FieldArenaID, v))
}

// ArenaIDIn applies the In predicate on the "arena_id" field.
func ArenaIDIn(vs ...string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldIn(FieldArenaID, vs...))
}

// ArenaIDNotIn applies the NotIn predicate on the "arena_id" field.
func ArenaIDNotIn(vs ...string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldNotIn(FieldArenaID, vs...))
}

// ArenaIDGT applies the GT predicate on the "arena_id" field.
func ArenaIDGT(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldGT(FieldArenaID, v))
}

// ArenaIDGTE applies the GTE predicate on the "arena_id" field.
func ArenaIDGTE(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldGTE(FieldArenaID, v))
}

// ArenaIDLT applies the LT predicate on the "arena_id" field.
func ArenaIDLT(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldLT(FieldArenaID, v))
}

// ArenaIDLTE applies the LTE predicate on the "arena_id" field.
func ArenaIDLTE(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldLTE(FieldArenaID, v))
}

// ArenaIDContains applies the Contains predicate on the "arena_id" field.
func ArenaIDContains(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldContains(FieldArenaID, v))
}

// ArenaIDHasPrefix applies the HasPrefix predicate on the "arena_id" field.
func ArenaIDHasPrefix(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldHasPrefix(FieldArenaID, v))
}

// ArenaIDHasSuffix applies the HasSuffix predicate on the "arena_id" field.
func ArenaIDHasSuffix(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldHasSuffix(FieldArenaID, v))
}

// ArenaIDEqualFold applies the EqualFold predicate on the "arena_id" field.
func ArenaIDEqualFold(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldEqualFold(FieldArenaID, v))
}

// ArenaIDContainsFold applies the ContainsFold predicate on the "arena_id" field.
func ArenaIDContainsFold(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldContainsFold(FieldArenaID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldNotNull(FieldAgentID))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldContainsFold(FieldAgentID, v))
}

// AgentRoleEQ applies the EQ predicate on the "agent_role" field.
func AgentRoleEQ(v AgentRole) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldEQ(FieldAgentRole, v))
}

// AgentRoleNEQ applies the NEQ predicate on the "agent_role" field.
func AgentRoleNEQ(v AgentRole) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldNEQ(FieldAgentRole, v))
}

// AgentRoleIn applies the In predicate on the "agent_role" field.
func AgentRoleIn(vs ...AgentRole) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldIn(FieldAgentRole, vs...))
}

// AgentRoleNotIn applies the NotIn predicate on the "agent_role" field.
func AgentRoleNotIn(vs ...AgentRole) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldNotIn(FieldAgentRole, vs...))
}

// AgentRoleIsNil applies the IsNil predicate on the "agent_role" field.
func AgentRoleIsNil() predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldIsNull(FieldAgentRole))
}

// AgentRoleNotNil applies the NotNil predicate on the "agent_role" field.
func AgentRoleNotNil() predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldNotNull(FieldAgentRole))
}

// RoundIDEQ applies the EQ predicate on the "round_id" field.
func RoundIDEQ(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldEQ(FieldRoundID, v))
}

// RoundIDNEQ applies the NEQ predicate on the "round_id" field.
func RoundIDNEQ(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldNEQ(FieldRoundID, v))
}

// RoundIDIn applies the In predicate on the "round_id" field.
func RoundIDIn(vs ...string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldIn(FieldRoundID, vs...))
}

// RoundIDNotIn applies the NotIn predicate on the "round_id" field.
func RoundIDNotIn(vs ...string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldNotIn(FieldRoundID, vs...))
}

// RoundIDGT applies the GT predicate on the "round_id" field.
func RoundIDGT(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldGT(FieldRoundID, v))
}

// RoundIDGTE applies the GTE predicate on the "round_id" field.
func RoundIDGTE(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldGTE(FieldRoundID, v))
}

// RoundIDLT applies the LT predicate on the "round_id" field.
func RoundIDLT(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldLT(FieldRoundID, v))
}

// RoundIDLTE applies the LTE predicate on the "round_id" field.
func RoundIDLTE(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldLTE(FieldRoundID, v))
}

// RoundIDContains applies the Contains predicate on the "round_id" field.
func RoundIDContains(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldContains(FieldRoundID, v))
}

// RoundIDHasPrefix applies the HasPrefix predicate on the "round_id" field.
func RoundIDHasPrefix(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldHasPrefix(FieldRoundID, v))
}

// RoundIDHasSuffix applies the HasSuffix predicate on the "round_id" field.
func RoundIDHasSuffix(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldHasSuffix(FieldRoundID, v))
}

// RoundIDIsNil applies the IsNil predicate on the "round_id" field.
func RoundIDIsNil() predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldIsNull(FieldRoundID))
}

// RoundIDNotNil applies the NotNil predicate on the "round_id" field.
func RoundIDNotNil() predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldNotNull(FieldRoundID))
}

// RoundIDEqualFold applies the EqualFold predicate on the "round_id" field.
func RoundIDEqualFold(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldEqualFold(FieldRoundID, v))
}

// RoundIDContainsFold applies the ContainsFold predicate on the "round_id" field.
func RoundIDContainsFold(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldContainsFold(FieldRoundID, v))
}

// MessageTypeEQ applies the EQ predicate on the "message_type" field.
func MessageTypeEQ(v MessageType) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldEQ(FieldMessageType, v))
}

// MessageTypeNEQ applies the NEQ predicate on the "message_type" field.
func MessageTypeNEQ(v MessageType) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldNEQ(FieldMessageType, v))
}

// MessageTypeIn applies the In predicate on the "message_type" field.
func MessageTypeIn(vs ...MessageType) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldIn(FieldMessageType, vs...))
}

// MessageTypeNotIn applies the NotIn predicate on the "message_type" field.
func MessageTypeNotIn(vs ...MessageType) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldNotIn(FieldMessageType, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldContainsFold(FieldContent, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldNotNull(FieldMetadata))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldLTE(FieldSequence, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// HasArena applies the HasEdge predicate on the "arena" edge.
func HasArena() predicate.ThinkingMessage {
	return predicate.ThinkingMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ArenaTable, ArenaColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArenaWith applies the HasEdge predicate on the "arena" edge with a given conditions (other predicates).
func HasArenaWith(preds ...predicate.Arena) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(func(s *sql.Selector) {
		step := newArenaStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ThinkingMessage) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ThinkingMessage) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ThinkingMessage) predicate.ThinkingMessage {
	return predicate.ThinkingMessage(sql.NotPredicates(p))
}
