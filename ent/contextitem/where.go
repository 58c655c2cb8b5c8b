// Code generated by ent, DO NOT EDIT.

package contextitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeframe-hq/codeframe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldEQ(FieldProjectID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldEQ(FieldAgentID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldEQ(FieldContent, v))
}

// ImportanceScore applies equality check predicate on the "importance_score" field. It's identical to ImportanceScoreEQ.
func ImportanceScore(v float64) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldEQ(FieldImportanceScore, v))
}

// AccessCount applies equality check predicate on the "access_count" field. It's identical to AccessCountEQ.
func AccessCount(v int) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldEQ(FieldAccessCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldEQ(FieldCreatedAt, v))
}

// LastAccessed applies equality check predicate on the "last_accessed" field. It's identical to LastAccessedEQ.
func LastAccessed(v time.Time) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldEQ(FieldLastAccessed, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldContainsFold(FieldProjectID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldContainsFold(FieldAgentID, v))
}

// ItemTypeEQ applies the EQ predicate on the "item_type" field.
func ItemTypeEQ(v ItemType) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldEQ(FieldItemType, v))
}

// ItemTypeNEQ applies the NEQ predicate on the "item_type" field.
func ItemTypeNEQ(v ItemType) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldNEQ(FieldItemType, v))
}

// ItemTypeIn applies the In predicate on the "item_type" field.
func ItemTypeIn(vs ...ItemType) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldIn(FieldItemType, vs...))
}

// ItemTypeNotIn applies the NotIn predicate on the "item_type" field.
func ItemTypeNotIn(vs ...ItemType) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldNotIn(FieldItemType, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldContainsFold(FieldContent, v))
}

// ImportanceScoreEQ applies the EQ predicate on the "importance_score" field.
func ImportanceScoreEQ(v float64) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldEQ(FieldImportanceScore, v))
}

// ImportanceScoreNEQ applies the NEQ predicate on the "importance_score" field.
func ImportanceScoreNEQ(v float64) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldNEQ(FieldImportanceScore, v))
}

// ImportanceScoreIn applies the In predicate on the "importance_score" field.
func ImportanceScoreIn(vs ...float64) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldIn(FieldImportanceScore, vs...))
}

// ImportanceScoreNotIn applies the NotIn predicate on the "importance_score" field.
func ImportanceScoreNotIn(vs ...float64) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldNotIn(FieldImportanceScore, vs...))
}

// ImportanceScoreGT applies the GT predicate on the "importance_score" field.
func ImportanceScoreGT(v float64) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldGT(FieldImportanceScore, v))
}

// ImportanceScoreGTE applies the GTE predicate on the "importance_score" field.
func ImportanceScoreGTE(v float64) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldGTE(FieldImportanceScore, v))
}

// ImportanceScoreLT applies the LT predicate on the "importance_score" field.
func ImportanceScoreLT(v float64) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldLT(FieldImportanceScore, v))
}

// ImportanceScoreLTE applies the LTE predicate on the "importance_score" field.
func ImportanceScoreLTE(v float64) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldLTE(FieldImportanceScore, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v Tier) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v Tier) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...Tier) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...Tier) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldNotIn(FieldTier, vs...))
}

// AccessCountEQ applies the EQ predicate on the "access_count" field.
func AccessCountEQ(v int) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldEQ(FieldAccessCount, v))
}

// AccessCountNEQ applies the NEQ predicate on the "access_count" field.
func AccessCountNEQ(v int) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldNEQ(FieldAccessCount, v))
}

// AccessCountIn applies the In predicate on the "access_count" field.
func AccessCountIn(vs ...int) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldIn(FieldAccessCount, vs...))
}

// AccessCountNotIn applies the NotIn predicate on the "access_count" field.
func AccessCountNotIn(vs ...int) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldNotIn(FieldAccessCount, vs...))
}

// AccessCountGT applies the GT predicate on the "access_count" field.
func AccessCountGT(v int) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldGT(FieldAccessCount, v))
}

// AccessCountGTE applies the GTE predicate on the "access_count" field.
func AccessCountGTE(v int) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldGTE(FieldAccessCount, v))
}

// AccessCountLT applies the LT predicate on the "access_count" field.
func AccessCountLT(v int) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldLT(FieldAccessCount, v))
}

// AccessCountLTE applies the LTE predicate on the "access_count" field.
func AccessCountLTE(v int) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldLTE(FieldAccessCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldLTE(FieldCreatedAt, v))
}

// LastAccessedEQ applies the EQ predicate on the "last_accessed" field.
func LastAccessedEQ(v time.Time) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldEQ(FieldLastAccessed, v))
}

// LastAccessedNEQ applies the NEQ predicate on the "last_accessed" field.
func LastAccessedNEQ(v time.Time) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldNEQ(FieldLastAccessed, v))
}

// LastAccessedIn applies the In predicate on the "last_accessed" field.
func LastAccessedIn(vs ...time.Time) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldIn(FieldLastAccessed, vs...))
}

// LastAccessedNotIn applies the NotIn predicate on the "last_accessed" field.
func LastAccessedNotIn(vs ...time.Time) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldNotIn(FieldLastAccessed, vs...))
}

// LastAccessedGT applies the GT predicate on the "last_accessed" field.
func LastAccessedGT(v time.Time) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldGT(FieldLastAccessed, v))
}

// LastAccessedGTE applies the GTE predicate on the "last_accessed" field.
func LastAccessedGTE(v time.Time) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldGTE(FieldLastAccessed, v))
}

// LastAccessedLT applies the LT predicate on the "last_accessed" field.
func LastAccessedLT(v time.Time) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldLT(FieldLastAccessed, v))
}

// LastAccessedLTE applies the LTE predicate on the "last_accessed" field.
func LastAccessedLTE(v time.Time) predicate.ContextItem {
	return predicate.ContextItem(sql.FieldLTE(FieldLastAccessed, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.ContextItem {
	return predicate.ContextItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.ContextItem {
	return predicate.ContextItem(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContextItem) predicate.ContextItem {
	return predicate.ContextItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContextItem) predicate.ContextItem {
	return predicate.ContextItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContextItem) predicate.ContextItem {
	return predicate.ContextItem(sql.NotPredicates(p))
}
