// Code generated by ent, DO NOT EDIT.

package pluginsetting

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PluginSetting {
	return predicate.PluginSetting(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PluginSetting {
	return predicate.PluginSetting(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PluginSetting {
	return predicate.PluginSetting(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PluginSetting {
	return predicate.PluginSetting(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PluginSetting {
	return predicate.PluginSetting(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PluginSetting {
	return predicate.PluginSetting(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PluginSetting {
	return predicate.PluginSetting(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PluginSetting {
	return predicate.PluginSetting(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PluginSetting {
	return predicate.PluginSetting(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PluginSetting {
	return predicate.PluginSetting(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PluginSetting {
	return predicate.PluginSetting(sql.FieldContainsFold(FieldID, id))
}

// ScheduleEnabled applies equality check predicate on the "schedule_enabled" field. It's identical to ScheduleEnabledEQ.
func ScheduleEnabled(v bool) predicate.PluginSetting {
	return predicate.PluginSetting(sql.FieldEQ(FieldScheduleEnabled, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PluginSetting {
	return predicate.PluginSetting(sql.FieldEQ(FieldUpdatedAt, v))
}

// ScheduleEnabledEQ applies the EQ predicate on the "schedule_enabled" field.
func ScheduleEnabledEQ(v bool) predicate.PluginSetting {
	return predicate.PluginSetting(sql.FieldEQ(FieldScheduleEnabled, v))
}

// ScheduleEnabledNEQ applies the NEQ predicate on the "schedule_enabled" field.
func ScheduleEnabledNEQ(v bool) predicate.PluginSetting {
	return predicate.PluginSetting(sql.FieldNEQ(FieldScheduleEnabled, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PluginSetting {
	return predicate.PluginSetting(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PluginSetting {
	return predicate.PluginSetting(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PluginSetting {
	return predicate.PluginSetting(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PluginSetting {
	return predicate.PluginSetting(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PluginSetting {
	return predicate.PluginSetting(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PluginSetting {
	return predicate.PluginSetting(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PluginSetting {
	return predicate.PluginSetting(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PluginSetting {
	return predicate.PluginSetting(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PluginSetting) predicate.PluginSetting {
	return predicate.PluginSetting(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PluginSetting) predicate.PluginSetting {
	return predicate.PluginSetting(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PluginSetting) predicate.PluginSetting {
	return predicate.PluginSetting(sql.NotPredicates(p))
}
