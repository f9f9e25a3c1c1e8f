// Code generated by ent, DO NOT EDIT.

package strategy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Strategy {
	return predicate.Strategy(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Strategy {
	return predicate.Strategy(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Strategy {
	return predicate.Strategy(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Strategy {
	return predicate.Strategy(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Strategy {
	return predicate.Strategy(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Strategy {
	return predicate.Strategy(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Strategy {
	return predicate.Strategy(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Strategy {
	return predicate.Strategy(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Strategy {
	return predicate.Strategy(sql.FieldContainsFold(FieldID, id))
}

// ArenaID applies equality check predicate on the "arena_id" field. It's identical to ArenaIDEQ.
func ArenaID(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldArenaID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldName, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldAgentID, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldIsActive, v))
}

// CurrentScore applies equality check predicate on the "current_score" field. It's identical to CurrentScoreEQ.
func CurrentScore(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldCurrentScore, v))
}

// CurrentRank applies equality check predicate on the "current_rank" field. It's identical to CurrentRankEQ.
func CurrentRank(v int) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldCurrentRank, v))
}

// Logic applies equality check predicate on the "logic" field. It's identical to LogicEQ.
func Logic(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldLogic, v))
}

// ProfitabilityScore applies equality check predicate on the "profitability_score" field. It's identical to ProfitabilityScoreEQ.
func ProfitabilityScore(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldProfitabilityScore, v))
}

// RiskScore applies equality check predicate on the "risk_score" field. It's identical to RiskScoreEQ.
func RiskScore(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldRiskScore, v))
}

// StabilityScore applies equality check predicate on the "stability_score" field. It's identical to StabilityScoreEQ.
func StabilityScore(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldStabilityScore, v))
}

// AdaptabilityScore applies equality check predicate on the "adaptability_score" field. It's identical to AdaptabilityScoreEQ.
func AdaptabilityScore(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldAdaptabilityScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldUpdatedAt, v))
}

// ArenaIDEQ applies the EQ predicate on the "arena_id" field.
func ArenaIDEQ(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldArenaID, v))
}

// ArenaIDNEQ applies the NEQ predicate on the "arena_id" field.
func ArenaIDNEQ(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldNEQ(FieldArenaID, v))
}

// ArenaIDIn applies the In predicate on the "arena_id" field.
func ArenaIDIn(vs ...string) predicate.Strategy {
	return predicate.Strategy(sql.FieldIn(FieldArenaID, vs...))
}

// ArenaIDNotIn applies the NotIn predicate on the "arena_id" field.
func ArenaIDNotIn(vs ...string) predicate.Strategy {
	return predicate.Strategy(sql.FieldNotIn(FieldArenaID, vs...))
}

// ArenaIDGT applies the GT predicate on the "arena_id" field.
func ArenaIDGT(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldGT(FieldArenaID, v))
}

// ArenaIDGTE applies the GTE predicate on the "arena_id" field.
func ArenaIDGTE(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldGTE(FieldArenaID, v))
}

// ArenaIDLT applies the LT predicate on the "arena_id" field.
func ArenaIDLT(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldLT(FieldArenaID, v))
}

// ArenaIDLTE applies the LTE predicate on the "arena_id" field.
func ArenaIDLTE(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldLTE(FieldArenaID, v))
}

// ArenaIDContains applies the Contains predicate on the "arena_id" field.
func ArenaIDContains(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldContains(FieldArenaID, v))
}

// ArenaIDHasPrefix applies the HasPrefix predicate on the "arena_id" field.
func ArenaIDHasPrefix(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldHasPrefix(FieldArenaID, v))
}

// ArenaIDHasSuffix applies the HasSuffix predicate on the "arena_id" field.
func ArenaIDHasSuffix(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldHasSuffix(FieldArenaID, v))
}

// ArenaIDEqualFold applies the EqualFold predicate on the "arena_id" field.
func ArenaIDEqualFold(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldEqualFold(FieldArenaID, v))
}

// ArenaIDContainsFold applies the ContainsFold predicate on the "arena_id" field.
func ArenaIDContainsFold(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldContainsFold(FieldArenaID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Strategy {
	return predicate.Strategy(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Strategy {
	return predicate.Strategy(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldContainsFold(FieldName, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.Strategy {
	return predicate.Strategy(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.Strategy {
	return predicate.Strategy(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldContainsFold(FieldAgentID, v))
}

// AgentRoleEQ applies the EQ predicate on the "agent_role" field.
func AgentRoleEQ(v AgentRole) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldAgentRole, v))
}

// AgentRoleNEQ applies the NEQ predicate on the "agent_role" field.
func AgentRoleNEQ(v AgentRole) predicate.Strategy {
	return predicate.Strategy(sql.FieldNEQ(FieldAgentRole, v))
}

// AgentRoleIn applies the In predicate on the "agent_role" field.
func AgentRoleIn(vs ...AgentRole) predicate.Strategy {
	return predicate.Strategy(sql.FieldIn(FieldAgentRole, vs...))
}

// AgentRoleNotIn applies the NotIn predicate on the "agent_role" field.
func AgentRoleNotIn(vs ...AgentRole) predicate.Strategy {
	return predicate.Strategy(sql.FieldNotIn(FieldAgentRole, vs...))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v Stage) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v Stage) predicate.Strategy {
	return predicate.Strategy(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...Stage) predicate.Strategy {
	return predicate.Strategy(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...Stage) predicate.Strategy {
	return predicate.Strategy(sql.FieldNotIn(FieldStage, vs...))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Strategy {
	return predicate.Strategy(sql.FieldNEQ(FieldIsActive, v))
}

// CurrentScoreEQ applies the EQ predicate on the "current_score" field.
func CurrentScoreEQ(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldCurrentScore, v))
}

// CurrentScoreNEQ applies the NEQ predicate on the "current_score" field.
func CurrentScoreNEQ(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldNEQ(FieldCurrentScore, v))
}

// CurrentScoreIn applies the In predicate on the "current_score" field.
func CurrentScoreIn(vs ...float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldIn(FieldCurrentScore, vs...))
}

// CurrentScoreNotIn applies the NotIn predicate on the "current_score" field.
func CurrentScoreNotIn(vs ...float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldNotIn(FieldCurrentScore, vs...))
}

// CurrentScoreGT applies the GT predicate on the "current_score" field.
func CurrentScoreGT(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldGT(FieldCurrentScore, v))
}

// CurrentScoreGTE applies the GTE predicate on the "current_score" field.
func CurrentScoreGTE(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldGTE(FieldCurrentScore, v))
}

// CurrentScoreLT applies the LT predicate on the "current_score" field.
func CurrentScoreLT(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldLT(FieldCurrentScore, v))
}

// CurrentScoreLTE applies the LTE predicate on the "current_score" field.
func CurrentScoreLTE(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldLTE(FieldCurrentScore, v))
}

// CurrentRankEQ applies the EQ predicate on the "current_rank" field.
func CurrentRankEQ(v int) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldCurrentRank, v))
}

// CurrentRankNEQ applies the NEQ predicate on the "current_rank" field.
func CurrentRankNEQ(v int) predicate.Strategy {
	return predicate.Strategy(sql.FieldNEQ(FieldCurrentRank, v))
}

// CurrentRankIn applies the In predicate on the "current_rank" field.
func CurrentRankIn(vs ...int) predicate.Strategy {
	return predicate.Strategy(sql.FieldIn(FieldCurrentRank, vs...))
}

// CurrentRankNotIn applies the NotIn predicate on the "current_rank" field.
func CurrentRankNotIn(vs ...int) predicate.Strategy {
	return predicate.Strategy(sql.FieldNotIn(FieldCurrentRank, vs...))
}

// CurrentRankGT applies the GT predicate on the "current_rank" field.
func CurrentRankGT(v int) predicate.Strategy {
	return predicate.Strategy(sql.FieldGT(FieldCurrentRank, v))
}

// CurrentRankGTE applies the GTE predicate on the "current_rank" field.
func CurrentRankGTE(v int) predicate.Strategy {
	return predicate.Strategy(sql.FieldGTE(FieldCurrentRank, v))
}

// CurrentRankLT applies the LT predicate on the "current_rank" field.
func CurrentRankLT(v int) predicate.Strategy {
	return predicate.Strategy(sql.FieldLT(FieldCurrentRank, v))
}

// CurrentRankLTE applies the LTE predicate on the "current_rank" field.
func CurrentRankLTE(v int) predicate.Strategy {
	return predicate.Strategy(sql.FieldLTE(FieldCurrentRank, v))
}

// LogicEQ applies the EQ predicate on the "logic" field.
func LogicEQ(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldLogic, v))
}

// LogicNEQ applies the NEQ predicate on the "logic" field.
func LogicNEQ(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldNEQ(FieldLogic, v))
}

// LogicIn applies the In predicate on the "logic" field.
func LogicIn(vs ...string) predicate.Strategy {
	return predicate.Strategy(sql.FieldIn(FieldLogic, vs...))
}

// LogicNotIn applies the NotIn predicate on the "logic" field.
func LogicNotIn(vs ...string) predicate.Strategy {
	return predicate.Strategy(sql.FieldNotIn(FieldLogic, vs...))
}

// LogicGT applies the GT predicate on the "logic" field.
func LogicGT(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldGT(FieldLogic, v))
}

// LogicGTE applies the GTE predicate on the "logic" field.
func LogicGTE(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldGTE(FieldLogic, v))
}

// LogicLT applies the LT predicate on the "logic" field.
func LogicLT(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldLT(FieldLogic, v))
}

// LogicLTE applies the LTE predicate on the "logic" field.
func LogicLTE(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldLTE(FieldLogic, v))
}

// LogicContains applies the Contains predicate on the "logic" field.
func LogicContains(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldContains(FieldLogic, v))
}

// LogicHasPrefix applies the HasPrefix predicate on the "logic" field.
func LogicHasPrefix(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldHasPrefix(FieldLogic, v))
}

// LogicHasSuffix applies the HasSuffix predicate on the "logic" field.
func LogicHasSuffix(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldHasSuffix(FieldLogic, v))
}

// LogicIsNil applies the IsNil predicate on the "logic" field.
func LogicIsNil() predicate.Strategy {
	return predicate.Strategy(sql.FieldIsNull(FieldLogic))
}

// LogicNotNil applies the NotNil predicate on the "logic" field.
func LogicNotNil() predicate.Strategy {
	return predicate.Strategy(sql.FieldNotNull(FieldLogic))
}

// LogicEqualFold applies the EqualFold predicate on the "logic" field.
func LogicEqualFold(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldEqualFold(FieldLogic, v))
}

// LogicContainsFold applies the ContainsFold predicate on the "logic" field.
func LogicContainsFold(v string) predicate.Strategy {
	return predicate.Strategy(sql.FieldContainsFold(FieldLogic, v))
}

// ProfitabilityScoreEQ applies the EQ predicate on the "profitability_score" field.
func ProfitabilityScoreEQ(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldProfitabilityScore, v))
}

// ProfitabilityScoreNEQ applies the NEQ predicate on the "profitability_score" field.
func ProfitabilityScoreNEQ(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldNEQ(FieldProfitabilityScore, v))
}

// ProfitabilityScoreIn applies the In predicate on the "profitability_score" field.
func ProfitabilityScoreIn(vs ...float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldIn(FieldProfitabilityScore, vs...))
}

// ProfitabilityScoreNotIn applies the NotIn predicate on the "profitability_score" field.
func ProfitabilityScoreNotIn(vs ...float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldNotIn(FieldProfitabilityScore, vs...))
}

// ProfitabilityScoreGT applies the GT predicate on the "profitability_score" field.
func ProfitabilityScoreGT(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldGT(FieldProfitabilityScore, v))
}

// ProfitabilityScoreGTE applies the GTE predicate on the "profitability_score" field.
func ProfitabilityScoreGTE(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldGTE(FieldProfitabilityScore, v))
}

// ProfitabilityScoreLT applies the LT predicate on the "profitability_score" field.
func ProfitabilityScoreLT(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldLT(FieldProfitabilityScore, v))
}

// ProfitabilityScoreLTE applies the LTE predicate on the "profitability_score" field.
func ProfitabilityScoreLTE(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldLTE(FieldProfitabilityScore, v))
}

// RiskScoreEQ applies the EQ predicate on the "risk_score" field.
func RiskScoreEQ(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldRiskScore, v))
}

// RiskScoreNEQ applies the NEQ predicate on the "risk_score" field.
func RiskScoreNEQ(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldNEQ(FieldRiskScore, v))
}

// RiskScoreIn applies the In predicate on the "risk_score" field.
func RiskScoreIn(vs ...float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldIn(FieldRiskScore, vs...))
}

// RiskScoreNotIn applies the NotIn predicate on the "risk_score" field.
func RiskScoreNotIn(vs ...float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldNotIn(FieldRiskScore, vs...))
}

// RiskScoreGT applies the GT predicate on the "risk_score" field.
func RiskScoreGT(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldGT(FieldRiskScore, v))
}

// RiskScoreGTE applies the GTE predicate on the "risk_score" field.
func RiskScoreGTE(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldGTE(FieldRiskScore, v))
}

// RiskScoreLT applies the LT predicate on the "risk_score" field.
func RiskScoreLT(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldLT(FieldRiskScore, v))
}

// RiskScoreLTE applies the LTE predicate on the "risk_score" field.
func RiskScoreLTE(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldLTE(FieldRiskScore, v))
}

// StabilityScoreEQ applies the EQ predicate on the "stability_score" field.
func StabilityScoreEQ(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldStabilityScore, v))
}

// StabilityScoreNEQ applies the NEQ predicate on the "stability_score" field.
func StabilityScoreNEQ(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldNEQ(FieldStabilityScore, v))
}

// StabilityScoreIn applies the In predicate on the "stability_score" field.
func StabilityScoreIn(vs ...float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldIn(FieldStabilityScore, vs...))
}

// StabilityScoreNotIn applies the NotIn predicate on the "stability_score" field.
func StabilityScoreNotIn(vs ...float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldNotIn(FieldStabilityScore, vs...))
}

// StabilityScoreGT applies the GT predicate on the "stability_score" field.
func StabilityScoreGT(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldGT(FieldStabilityScore, v))
}

// StabilityScoreGTE applies the GTE predicate on the "stability_score" field.
func StabilityScoreGTE(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldGTE(FieldStabilityScore, v))
}

// StabilityScoreLT applies the LT predicate on the "stability_score" field.
func StabilityScoreLT(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldLT(FieldStabilityScore, v))
}

// StabilityScoreLTE applies the LTE predicate on the "stability_score" field.
func StabilityScoreLTE(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldLTE(FieldStabilityScore, v))
}

// AdaptabilityScoreEQ applies the EQ predicate on the "adaptability_score" field.
func AdaptabilityScoreEQ(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldAdaptabilityScore, v))
}

// AdaptabilityScoreNEQ applies the NEQ predicate on the "adaptability_score" field.
func AdaptabilityScoreNEQ(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldNEQ(FieldAdaptabilityScore, v))
}

// AdaptabilityScoreIn applies the In predicate on the "adaptability_score" field.
func AdaptabilityScoreIn(vs ...float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldIn(FieldAdaptabilityScore, vs...))
}

// AdaptabilityScoreNotIn applies the NotIn predicate on the "adaptability_score" field.
func AdaptabilityScoreNotIn(vs ...float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldNotIn(FieldAdaptabilityScore, vs...))
}

// AdaptabilityScoreGT applies the GT predicate on the "adaptability_score" field.
func AdaptabilityScoreGT(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldGT(FieldAdaptabilityScore, v))
}

// AdaptabilityScoreGTE applies the GTE predicate on the "adaptability_score" field.
func AdaptabilityScoreGTE(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldGTE(FieldAdaptabilityScore, v))
}

// AdaptabilityScoreLT applies the LT predicate on the "adaptability_score" field.
func AdaptabilityScoreLT(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldLT(FieldAdaptabilityScore, v))
}

// AdaptabilityScoreLTE applies the LTE predicate on the "adaptability_score" field.
func AdaptabilityScoreLTE(v float64) predicate.Strategy {
	return predicate.Strategy(sql.FieldLTE(FieldAdaptabilityScore, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Strategy {
	return predicate.Strategy(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Strategy {
	return predicate.Strategy(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Strategy {
	return predicate.Strategy(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Strategy {
	return predicate.Strategy(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Strategy {
	return predicate.Strategy(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Strategy {
	return predicate.Strategy(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Strategy {
	return predicate.Strategy(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Strategy {
	return predicate.Strategy(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Strategy {
	return predicate.Strategy(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Strategy {
	return predicate.Strategy(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Strategy {
	return predicate.Strategy(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Strategy {
	return predicate.Strategy(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Strategy {
	return predicate.Strategy(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Strategy {
	return predicate.Strategy(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Strategy {
	return predicate.Strategy(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasArena applies the HasEdge predicate on the "arena" edge.
func HasArena() predicate.Strategy {
	return predicate.Strategy(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ArenaTable, ArenaColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArenaWith applies the HasEdge predicate on the "arena" edge with a given conditions (other predicates).
func HasArenaWith(preds ...predicate.Arena) predicate.Strategy {
	return predicate.Strategy(func(s *sql.Selector) {
		step := newArenaStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Strategy) predicate.Strategy {
	return predicate.Strategy(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Strategy) predicate.Strategy {
	return predicate.Strategy(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Strategy) predicate.Strategy {
	return predicate.Strategy(sql.NotPredicates(p))
}
