// Code generated by ent, DO NOT EDIT.

package contextcheckpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeframe-hq/codeframe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldEQ(FieldProjectID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldEQ(FieldAgentID, v))
}

// ItemsCount applies equality check predicate on the "items_count" field. It's identical to ItemsCountEQ.
func ItemsCount(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldEQ(FieldItemsCount, v))
}

// ItemsArchived applies equality check predicate on the "items_archived" field. It's identical to ItemsArchivedEQ.
func ItemsArchived(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldEQ(FieldItemsArchived, v))
}

// HotItemsRetained applies equality check predicate on the "hot_items_retained" field. It's identical to HotItemsRetainedEQ.
func HotItemsRetained(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldEQ(FieldHotItemsRetained, v))
}

// TokenCount applies equality check predicate on the "token_count" field. It's identical to TokenCountEQ.
func TokenCount(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldEQ(FieldTokenCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldContainsFold(FieldProjectID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldContainsFold(FieldAgentID, v))
}

// ItemsCountEQ applies the EQ predicate on the "items_count" field.
func ItemsCountEQ(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldEQ(FieldItemsCount, v))
}

// ItemsCountNEQ applies the NEQ predicate on the "items_count" field.
func ItemsCountNEQ(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldNEQ(FieldItemsCount, v))
}

// ItemsCountIn applies the In predicate on the "items_count" field.
func ItemsCountIn(vs ...int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldIn(FieldItemsCount, vs...))
}

// ItemsCountNotIn applies the NotIn predicate on the "items_count" field.
func ItemsCountNotIn(vs ...int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldNotIn(FieldItemsCount, vs...))
}

// ItemsCountGT applies the GT predicate on the "items_count" field.
func ItemsCountGT(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldGT(FieldItemsCount, v))
}

// ItemsCountGTE applies the GTE predicate on the "items_count" field.
func ItemsCountGTE(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldGTE(FieldItemsCount, v))
}

// ItemsCountLT applies the LT predicate on the "items_count" field.
func ItemsCountLT(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldLT(FieldItemsCount, v))
}

// ItemsCountLTE applies the LTE predicate on the "items_count" field.
func ItemsCountLTE(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldLTE(FieldItemsCount, v))
}

// ItemsArchivedEQ applies the EQ predicate on the "items_archived" field.
func ItemsArchivedEQ(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldEQ(FieldItemsArchived, v))
}

// ItemsArchivedNEQ applies the NEQ predicate on the "items_archived" field.
func ItemsArchivedNEQ(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldNEQ(FieldItemsArchived, v))
}

// ItemsArchivedIn applies the In predicate on the "items_archived" field.
func ItemsArchivedIn(vs ...int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldIn(FieldItemsArchived, vs...))
}

// ItemsArchivedNotIn applies the NotIn predicate on the "items_archived" field.
func ItemsArchivedNotIn(vs ...int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldNotIn(FieldItemsArchived, vs...))
}

// ItemsArchivedGT applies the GT predicate on the "items_archived" field.
func ItemsArchivedGT(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldGT(FieldItemsArchived, v))
}

// ItemsArchivedGTE applies the GTE predicate on the "items_archived" field.
func ItemsArchivedGTE(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldGTE(FieldItemsArchived, v))
}

// ItemsArchivedLT applies the LT predicate on the "items_archived" field.
func ItemsArchivedLT(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldLT(FieldItemsArchived, v))
}

// ItemsArchivedLTE applies the LTE predicate on the "items_archived" field.
func ItemsArchivedLTE(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldLTE(FieldItemsArchived, v))
}

// HotItemsRetainedEQ applies the EQ predicate on the "hot_items_retained" field.
func HotItemsRetainedEQ(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldEQ(FieldHotItemsRetained, v))
}

// HotItemsRetainedNEQ applies the NEQ predicate on the "hot_items_retained" field.
func HotItemsRetainedNEQ(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldNEQ(FieldHotItemsRetained, v))
}

// HotItemsRetainedIn applies the In predicate on the "hot_items_retained" field.
func HotItemsRetainedIn(vs ...int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldIn(FieldHotItemsRetained, vs...))
}

// HotItemsRetainedNotIn applies the NotIn predicate on the "hot_items_retained" field.
func HotItemsRetainedNotIn(vs ...int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldNotIn(FieldHotItemsRetained, vs...))
}

// HotItemsRetainedGT applies the GT predicate on the "hot_items_retained" field.
func HotItemsRetainedGT(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldGT(FieldHotItemsRetained, v))
}

// HotItemsRetainedGTE applies the GTE predicate on the "hot_items_retained" field.
func HotItemsRetainedGTE(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldGTE(FieldHotItemsRetained, v))
}

// HotItemsRetainedLT applies the LT predicate on the "hot_items_retained" field.
func HotItemsRetainedLT(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldLT(FieldHotItemsRetained, v))
}

// HotItemsRetainedLTE applies the LTE predicate on the "hot_items_retained" field.
func HotItemsRetainedLTE(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldLTE(FieldHotItemsRetained, v))
}

// TokenCountEQ applies the EQ predicate on the "token_count" field.
func TokenCountEQ(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldEQ(FieldTokenCount, v))
}

// TokenCountNEQ applies the NEQ predicate on the "token_count" field.
func TokenCountNEQ(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldNEQ(FieldTokenCount, v))
}

// TokenCountIn applies the In predicate on the "token_count" field.
func TokenCountIn(vs ...int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldIn(FieldTokenCount, vs...))
}

// TokenCountNotIn applies the NotIn predicate on the "token_count" field.
func TokenCountNotIn(vs ...int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldNotIn(FieldTokenCount, vs...))
}

// TokenCountGT applies the GT predicate on the "token_count" field.
func TokenCountGT(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldGT(FieldTokenCount, v))
}

// TokenCountGTE applies the GTE predicate on the "token_count" field.
func TokenCountGTE(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldGTE(FieldTokenCount, v))
}

// TokenCountLT applies the LT predicate on the "token_count" field.
func TokenCountLT(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldLT(FieldTokenCount, v))
}

// TokenCountLTE applies the LTE predicate on the "token_count" field.
func TokenCountLTE(v int) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldLTE(FieldTokenCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContextCheckpoint) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContextCheckpoint) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContextCheckpoint) predicate.ContextCheckpoint {
	return predicate.ContextCheckpoint(sql.NotPredicates(p))
}
