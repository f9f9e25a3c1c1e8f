// Code generated by ent, DO NOT EDIT.

package schemaaudit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldLTE(FieldID, id))
}

// TableName applies equality check predicate on the "table_name" field. It's identical to TableNameEQ.
func TableName(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldEQ(FieldTableName, v))
}

// ColumnName applies equality check predicate on the "column_name" field. It's identical to ColumnNameEQ.
func ColumnName(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldEQ(FieldColumnName, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldEQ(FieldAction, v))
}

// OldType applies equality check predicate on the "old_type" field. It's identical to OldTypeEQ.
func OldType(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldEQ(FieldOldType, v))
}

// NewType applies equality check predicate on the "new_type" field. It's identical to NewTypeEQ.
func NewType(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldEQ(FieldNewType, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldEQ(FieldReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldEQ(FieldCreatedAt, v))
}

// TableNameEQ applies the EQ predicate on the "table_name" field.
func TableNameEQ(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldEQ(FieldTableName, v))
}

// TableNameNEQ applies the NEQ predicate on the "table_name" field.
func TableNameNEQ(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldNEQ(FieldTableName, v))
}

// TableNameIn applies the In predicate on the "table_name" field.
func TableNameIn(vs ...string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldIn(FieldTableName, vs...))
}

// TableNameNotIn applies the NotIn predicate on the "table_name" field.
func TableNameNotIn(vs ...string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldNotIn(FieldTableName, vs...))
}

// TableNameGT applies the GT predicate on the "table_name" field.
func TableNameGT(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldGT(FieldTableName, v))
}

// TableNameGTE applies the GTE predicate on the "table_name" field.
func TableNameGTE(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldGTE(FieldTableName, v))
}

// TableNameLT applies the LT predicate on the "table_name" field.
func TableNameLT(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldLT(FieldTableName, v))
}

// TableNameLTE applies the LTE predicate on the "table_name" field.
func TableNameLTE(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldLTE(FieldTableName, v))
}

// TableNameContains applies the Contains predicate on the "table_name" field.
func TableNameContains(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldContains(FieldTableName, v))
}

// TableNameHasPrefix applies the HasPrefix predicate on the "table_name" field.
func TableNameHasPrefix(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldHasPrefix(FieldTableName, v))
}

// TableNameHasSuffix applies the HasSuffix predicate on the "table_name" field.
func TableNameHasSuffix(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldHasSuffix(FieldTableName, v))
}

// TableNameEqualFold applies the EqualFold predicate on the "table_name" field.
func TableNameEqualFold(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldEqualFold(FieldTableName, v))
}

// TableNameContainsFold applies the ContainsFold predicate on the "table_name" field.
func TableNameContainsFold(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldContainsFold(FieldTableName, v))
}

// ColumnNameEQ applies the EQ predicate on the "column_name" field.
func ColumnNameEQ(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldEQ(FieldColumnName, v))
}

// ColumnNameNEQ applies the NEQ predicate on the "column_name" field.
func ColumnNameNEQ(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldNEQ(FieldColumnName, v))
}

// ColumnNameIn applies the In predicate on the "column_name" field.
func ColumnNameIn(vs ...string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldIn(FieldColumnName, vs...))
}

// ColumnNameNotIn applies the NotIn predicate on the "column_name" field.
func ColumnNameNotIn(vs ...string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldNotIn(FieldColumnName, vs...))
}

// ColumnNameGT applies the GT predicate on the "column_name" field.
func ColumnNameGT(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldGT(FieldColumnName, v))
}

// ColumnNameGTE applies the GTE predicate on the "column_name" field.
func ColumnNameGTE(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldGTE(FieldColumnName, v))
}

// ColumnNameLT applies the LT predicate on the "column_name" field.
func ColumnNameLT(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldLT(FieldColumnName, v))
}

// ColumnNameLTE applies the LTE predicate on the "column_name" field.
func ColumnNameLTE(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldLTE(FieldColumnName, v))
}

// ColumnNameContains applies the Contains predicate on the "column_name" field.
func ColumnNameContains(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldContains(FieldColumnName, v))
}

// ColumnNameHasPrefix applies the HasPrefix predicate on the "column_name" field.
func ColumnNameHasPrefix(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldHasPrefix(FieldColumnName, v))
}

// ColumnNameHasSuffix applies the HasSuffix predicate on the "column_name" field.
func ColumnNameHasSuffix(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldHasSuffix(FieldColumnName, v))
}

// ColumnNameIsNil applies the IsNil predicate on the "column_name" field.
func ColumnNameIsNil() predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldIsNull(FieldColumnName))
}

// ColumnNameNotNil applies the NotNil predicate on the "column_name" field.
func ColumnNameNotNil() predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldNotNull(FieldColumnName))
}

// ColumnNameEqualFold applies the EqualFold predicate on the "column_name" field.
func ColumnNameEqualFold(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldEqualFold(FieldColumnName, v))
}

// ColumnNameContainsFold applies the ContainsFold predicate on the "column_name" field.
func ColumnNameContainsFold(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldContainsFold(FieldColumnName, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldContainsFold(FieldAction, v))
}

// OldTypeEQ applies the EQ predicate on the "old_type" field.
func OldTypeEQ(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldEQ(FieldOldType, v))
}

// OldTypeNEQ applies the NEQ predicate on the "old_type" field.
func OldTypeNEQ(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldNEQ(FieldOldType, v))
}

// OldTypeIn applies the In predicate on the "old_type" field.
func OldTypeIn(vs ...string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldIn(FieldOldType, vs...))
}

// OldTypeNotIn applies the NotIn predicate on the "old_type" field.
func OldTypeNotIn(vs ...string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldNotIn(FieldOldType, vs...))
}

// OldTypeGT applies the GT predicate on the "old_type" field.
func OldTypeGT(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldGT(FieldOldType, v))
}

// OldTypeGTE applies the GTE predicate on the "old_type" field.
func OldTypeGTE(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldGTE(FieldOldType, v))
}

// OldTypeLT applies the LT predicate on the "old_type" field.
func OldTypeLT(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldLT(FieldOldType, v))
}

// OldTypeLTE applies the LTE predicate on the "old_type" field.
func OldTypeLTE(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldLTE(FieldOldType, v))
}

// OldTypeContains applies the Contains predicate on the "old_type" field.
func OldTypeContains(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldContains(FieldOldType, v))
}

// OldTypeHasPrefix applies the HasPrefix predicate on the "old_type" field.
func OldTypeHasPrefix(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldHasPrefix(FieldOldType, v))
}

// OldTypeHasSuffix applies the HasSuffix predicate on the "old_type" field.
func OldTypeHasSuffix(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldHasSuffix(FieldOldType, v))
}

// OldTypeIsNil applies the IsNil predicate on the "old_type" field.
func OldTypeIsNil() predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldIsNull(FieldOldType))
}

// OldTypeNotNil applies the NotNil predicate on the "old_type" field.
func OldTypeNotNil() predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldNotNull(FieldOldType))
}

// OldTypeEqualFold applies the EqualFold predicate on the "old_type" field.
func OldTypeEqualFold(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldEqualFold(FieldOldType, v))
}

// OldTypeContainsFold applies the ContainsFold predicate on the "old_type" field.
func OldTypeContainsFold(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldContainsFold(FieldOldType, v))
}

// NewTypeEQ applies the EQ predicate on the "new_type" field.
func NewTypeEQ(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldEQ(FieldNewType, v))
}

// NewTypeNEQ applies the NEQ predicate on the "new_type" field.
func NewTypeNEQ(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldNEQ(FieldNewType, v))
}

// NewTypeIn applies the In predicate on the "new_type" field.
func NewTypeIn(vs ...string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldIn(FieldNewType, vs...))
}

// NewTypeNotIn applies the NotIn predicate on the "new_type" field.
func NewTypeNotIn(vs ...string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldNotIn(FieldNewType, vs...))
}

// NewTypeGT applies the GT predicate on the "new_type" field.
func NewTypeGT(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldGT(FieldNewType, v))
}

// NewTypeGTE applies the GTE predicate on the "new_type" field.
func NewTypeGTE(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldGTE(FieldNewType, v))
}

// NewTypeLT applies the LT predicate on the "new_type" field.
func NewTypeLT(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldLT(FieldNewType, v))
}

// NewTypeLTE applies the LTE predicate on the "new_type" field.
func NewTypeLTE(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldLTE(FieldNewType, v))
}

// NewTypeContains applies the Contains predicate on the "new_type" field.
func NewTypeContains(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldContains(FieldNewType, v))
}

// NewTypeHasPrefix applies the HasPrefix predicate on the "new_type" field.
func NewTypeHasPrefix(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldHasPrefix(FieldNewType, v))
}

// NewTypeHasSuffix applies the HasSuffix predicate on the "new_type" field.
func NewTypeHasSuffix(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldHasSuffix(FieldNewType, v))
}

// NewTypeIsNil applies the IsNil predicate on the "new_type" field.
func NewTypeIsNil() predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldIsNull(FieldNewType))
}

// NewTypeNotNil applies the NotNil predicate on the "new_type" field.
func NewTypeNotNil() predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldNotNull(FieldNewType))
}

// NewTypeEqualFold applies the EqualFold predicate on the "new_type" field.
func NewTypeEqualFold(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldEqualFold(FieldNewType, v))
}

// NewTypeContainsFold applies the ContainsFold predicate on the "new_type" field.
func NewTypeContainsFold(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldContainsFold(FieldNewType, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldContainsFold(FieldReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SchemaAudit) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SchemaAudit) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SchemaAudit) predicate.SchemaAudit {
	return predicate.SchemaAudit(sql.NotPredicates(p))
}
