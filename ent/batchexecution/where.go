// Code generated by ent, DO NOT EDIT.

package batchexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldContainsFold(FieldID, id))
}

// GroupName applies equality check predicate on the "group_name" field. It's identical to GroupNameEQ.
func GroupName(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEQ(FieldGroupName, v))
}

// TotalPlugins applies equality check predicate on the "total_plugins" field. It's identical to TotalPluginsEQ.
func TotalPlugins(v int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEQ(FieldTotalPlugins, v))
}

// CompletedPlugins applies equality check predicate on the "completed_plugins" field. It's identical to CompletedPluginsEQ.
func CompletedPlugins(v int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEQ(FieldCompletedPlugins, v))
}

// FailedPlugins applies equality check predicate on the "failed_plugins" field. It's identical to FailedPluginsEQ.
func FailedPlugins(v int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEQ(FieldFailedPlugins, v))
}

// ErrorSummary applies equality check predicate on the "error_summary" field. It's identical to ErrorSummaryEQ.
func ErrorSummary(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEQ(FieldErrorSummary, v))
}

// CanRetry applies equality check predicate on the "can_retry" field. It's identical to CanRetryEQ.
func CanRetry(v bool) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEQ(FieldCanRetry, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEQ(FieldVersion, v))
}

// TriggerTypeEQ applies the EQ predicate on the "trigger_type" field.
func TriggerTypeEQ(v TriggerType) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEQ(FieldTriggerType, v))
}

// TriggerTypeNEQ applies the NEQ predicate on the "trigger_type" field.
func TriggerTypeNEQ(v TriggerType) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNEQ(FieldTriggerType, v))
}

// TriggerTypeIn applies the In predicate on the "trigger_type" field.
func TriggerTypeIn(vs ...TriggerType) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldIn(FieldTriggerType, vs...))
}

// TriggerTypeNotIn applies the NotIn predicate on the "trigger_type" field.
func TriggerTypeNotIn(vs ...TriggerType) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNotIn(FieldTriggerType, vs...))
}

// GroupNameEQ applies the EQ predicate on the "group_name" field.
func GroupNameEQ(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEQ(FieldGroupName, v))
}

// GroupNameNEQ applies the NEQ predicate on the "group_name" field.
func GroupNameNEQ(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNEQ(FieldGroupName, v))
}

// GroupNameIn applies the In predicate on the "group_name" field.
func GroupNameIn(vs ...string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldIn(FieldGroupName, vs...))
}

// GroupNameNotIn applies the NotIn predicate on the "group_name" field.
func GroupNameNotIn(vs ...string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNotIn(FieldGroupName, vs...))
}

// GroupNameGT applies the GT predicate on the "group_name" field.
func GroupNameGT(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldGT(FieldGroupName, v))
}

// GroupNameGTE applies the GTE predicate on the "group_name" field.
func GroupNameGTE(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldGTE(FieldGroupName, v))
}

// GroupNameLT applies the LT predicate on the "group_name" field.
func GroupNameLT(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldLT(FieldGroupName, v))
}

// GroupNameLTE applies the LTE predicate on the "group_name" field.
func GroupNameLTE(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldLTE(FieldGroupName, v))
}

// GroupNameContains applies the Contains predicate on the "group_name" field.
func GroupNameContains(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldContains(FieldGroupName, v))
}

// GroupNameHasPrefix applies the HasPrefix predicate on the "group_name" field.
func GroupNameHasPrefix(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldHasPrefix(FieldGroupName, v))
}

// GroupNameHasSuffix applies the HasSuffix predicate on the "group_name" field.
func GroupNameHasSuffix(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldHasSuffix(FieldGroupName, v))
}

// GroupNameIsNil applies the IsNil predicate on the "group_name" field.
func GroupNameIsNil() predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldIsNull(FieldGroupName))
}

// GroupNameNotNil applies the NotNil predicate on the "group_name" field.
func GroupNameNotNil() predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNotNull(FieldGroupName))
}

// GroupNameEqualFold applies the EqualFold predicate on the "group_name" field.
func GroupNameEqualFold(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEqualFold(FieldGroupName, v))
}

// GroupNameContainsFold applies the ContainsFold predicate on the "group_name" field.
func GroupNameContainsFold(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldContainsFold(FieldGroupName, v))
}

// DateRangeIsNil applies the IsNil predicate on the "date_range" field.
func DateRangeIsNil() predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldIsNull(FieldDateRange))
}

// DateRangeNotNil applies the NotNil predicate on the "date_range" field.
func DateRangeNotNil() predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNotNull(FieldDateRange))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// TotalPluginsEQ applies the EQ predicate on the "total_plugins" field.
func TotalPluginsEQ(v int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEQ(FieldTotalPlugins, v))
}

// TotalPluginsNEQ applies the NEQ predicate on the "total_plugins" field.
func TotalPluginsNEQ(v int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNEQ(FieldTotalPlugins, v))
}

// TotalPluginsIn applies the In predicate on the "total_plugins" field.
func TotalPluginsIn(vs ...int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldIn(FieldTotalPlugins, vs...))
}

// TotalPluginsNotIn applies the NotIn predicate on the "total_plugins" field.
func TotalPluginsNotIn(vs ...int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNotIn(FieldTotalPlugins, vs...))
}

// TotalPluginsGT applies the GT predicate on the "total_plugins" field.
func TotalPluginsGT(v int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldGT(FieldTotalPlugins, v))
}

// TotalPluginsGTE applies the GTE predicate on the "total_plugins" field.
func TotalPluginsGTE(v int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldGTE(FieldTotalPlugins, v))
}

// TotalPluginsLT applies the LT predicate on the "total_plugins" field.
func TotalPluginsLT(v int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldLT(FieldTotalPlugins, v))
}

// TotalPluginsLTE applies the LTE predicate on the "total_plugins" field.
func TotalPluginsLTE(v int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldLTE(FieldTotalPlugins, v))
}

// CompletedPluginsEQ applies the EQ predicate on the "completed_plugins" field.
func CompletedPluginsEQ(v int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEQ(FieldCompletedPlugins, v))
}

// CompletedPluginsNEQ applies the NEQ predicate on the "completed_plugins" field.
func CompletedPluginsNEQ(v int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNEQ(FieldCompletedPlugins, v))
}

// CompletedPluginsIn applies the In predicate on the "completed_plugins" field.
func CompletedPluginsIn(vs ...int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldIn(FieldCompletedPlugins, vs...))
}

// CompletedPluginsNotIn applies the NotIn predicate on the "completed_plugins" field.
func CompletedPluginsNotIn(vs ...int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNotIn(FieldCompletedPlugins, vs...))
}

// CompletedPluginsGT applies the GT predicate on the "completed_plugins" field.
func CompletedPluginsGT(v int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldGT(FieldCompletedPlugins, v))
}

// CompletedPluginsGTE applies the GTE predicate on the "completed_plugins" field.
func CompletedPluginsGTE(v int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldGTE(FieldCompletedPlugins, v))
}

// CompletedPluginsLT applies the LT predicate on the "completed_plugins" field.
func CompletedPluginsLT(v int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldLT(FieldCompletedPlugins, v))
}

// CompletedPluginsLTE applies the LTE predicate on the "completed_plugins" field.
func CompletedPluginsLTE(v int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldLTE(FieldCompletedPlugins, v))
}

// FailedPluginsEQ applies the EQ predicate on the "failed_plugins" field.
func FailedPluginsEQ(v int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEQ(FieldFailedPlugins, v))
}

// FailedPluginsNEQ applies the NEQ predicate on the "failed_plugins" field.
func FailedPluginsNEQ(v int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNEQ(FieldFailedPlugins, v))
}

// FailedPluginsIn applies the In predicate on the "failed_plugins" field.
func FailedPluginsIn(vs ...int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldIn(FieldFailedPlugins, vs...))
}

// FailedPluginsNotIn applies the NotIn predicate on the "failed_plugins" field.
func FailedPluginsNotIn(vs ...int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNotIn(FieldFailedPlugins, vs...))
}

// FailedPluginsGT applies the GT predicate on the "failed_plugins" field.
func FailedPluginsGT(v int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldGT(FieldFailedPlugins, v))
}

// FailedPluginsGTE applies the GTE predicate on the "failed_plugins" field.
func FailedPluginsGTE(v int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldGTE(FieldFailedPlugins, v))
}

// FailedPluginsLT applies the LT predicate on the "failed_plugins" field.
func FailedPluginsLT(v int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldLT(FieldFailedPlugins, v))
}

// FailedPluginsLTE applies the LTE predicate on the "failed_plugins" field.
func FailedPluginsLTE(v int) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldLTE(FieldFailedPlugins, v))
}

// ErrorSummaryEQ applies the EQ predicate on the "error_summary" field.
func ErrorSummaryEQ(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEQ(FieldErrorSummary, v))
}

// ErrorSummaryNEQ applies the NEQ predicate on the "error_summary" field.
func ErrorSummaryNEQ(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNEQ(FieldErrorSummary, v))
}

// ErrorSummaryIn applies the In predicate on the "error_summary" field.
func ErrorSummaryIn(vs ...string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldIn(FieldErrorSummary, vs...))
}

// ErrorSummaryNotIn applies the NotIn predicate on the "error_summary" field.
func ErrorSummaryNotIn(vs ...string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNotIn(FieldErrorSummary, vs...))
}

// ErrorSummaryGT applies the GT predicate on the "error_summary" field.
func ErrorSummaryGT(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldGT(FieldErrorSummary, v))
}

// ErrorSummaryGTE applies the GTE predicate on the "error_summary" field.
func ErrorSummaryGTE(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldGTE(FieldErrorSummary, v))
}

// ErrorSummaryLT applies the LT predicate on the "error_summary" field.
func ErrorSummaryLT(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldLT(FieldErrorSummary, v))
}

// ErrorSummaryLTE applies the LTE predicate on the "error_summary" field.
func ErrorSummaryLTE(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldLTE(FieldErrorSummary, v))
}

// ErrorSummaryContains applies the Contains predicate on the "error_summary" field.
func ErrorSummaryContains(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldContains(FieldErrorSummary, v))
}

// ErrorSummaryHasPrefix applies the HasPrefix predicate on the "error_summary" field.
func ErrorSummaryHasPrefix(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldHasPrefix(FieldErrorSummary, v))
}

// ErrorSummaryHasSuffix applies the HasSuffix predicate on the "error_summary" field.
func ErrorSummaryHasSuffix(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldHasSuffix(FieldErrorSummary, v))
}

// ErrorSummaryIsNil applies the IsNil predicate on the "error_summary" field.
func ErrorSummaryIsNil() predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldIsNull(FieldErrorSummary))
}

// ErrorSummaryNotNil applies the NotNil predicate on the "error_summary" field.
func ErrorSummaryNotNil() predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNotNull(FieldErrorSummary))
}

// ErrorSummaryEqualFold applies the EqualFold predicate on the "error_summary" field.
func ErrorSummaryEqualFold(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEqualFold(FieldErrorSummary, v))
}

// ErrorSummaryContainsFold applies the ContainsFold predicate on the "error_summary" field.
func ErrorSummaryContainsFold(v string) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldContainsFold(FieldErrorSummary, v))
}

// CanRetryEQ applies the EQ predicate on the "can_retry" field.
func CanRetryEQ(v bool) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEQ(FieldCanRetry, v))
}

// CanRetryNEQ applies the NEQ predicate on the "can_retry" field.
func CanRetryNEQ(v bool) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNEQ(FieldCanRetry, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNotNull(FieldCompletedAt))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.BatchExecution {
	return predicate.BatchExecution(sql.FieldLTE(FieldVersion, v))
}

// HasSubTasks applies the HasEdge predicate on the "sub_tasks" edge.
func HasSubTasks() predicate.BatchExecution {
	return predicate.BatchExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubTasksTable, SubTasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubTasksWith applies the HasEdge predicate on the "sub_tasks" edge with a given conditions (other predicates).
func HasSubTasksWith(preds ...predicate.SubTask) predicate.BatchExecution {
	return predicate.BatchExecution(func(s *sql.Selector) {
		step := newSubTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BatchExecution) predicate.BatchExecution {
	return predicate.BatchExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BatchExecution) predicate.BatchExecution {
	return predicate.BatchExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BatchExecution) predicate.BatchExecution {
	return predicate.BatchExecution(sql.NotPredicates(p))
}
