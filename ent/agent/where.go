// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeframe-hq/codeframe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldID, id))
}

// Metrics applies equality check predicate on the "metrics" field. It's identical to MetricsEQ.
func Metrics(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldMetrics, v))
}

// MaturityScore applies equality check predicate on the "maturity_score" field. It's identical to MaturityScoreEQ.
func MaturityScore(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldMaturityScore, v))
}

// CompletedCount applies equality check predicate on the "completed_count" field. It's identical to CompletedCountEQ.
func CompletedCount(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCompletedCount, v))
}

// LastAssessedAt applies equality check predicate on the "last_assessed_at" field. It's identical to LastAssessedAtEQ.
func LastAssessedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastAssessedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// AgentTypeEQ applies the EQ predicate on the "agent_type" field.
func AgentTypeEQ(v AgentType) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAgentType, v))
}

// AgentTypeNEQ applies the NEQ predicate on the "agent_type" field.
func AgentTypeNEQ(v AgentType) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldAgentType, v))
}

// AgentTypeIn applies the In predicate on the "agent_type" field.
func AgentTypeIn(vs ...AgentType) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldAgentType, vs...))
}

// AgentTypeNotIn applies the NotIn predicate on the "agent_type" field.
func AgentTypeNotIn(vs ...AgentType) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldAgentType, vs...))
}

// MaturityEQ applies the EQ predicate on the "maturity" field.
func MaturityEQ(v Maturity) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldMaturity, v))
}

// MaturityNEQ applies the NEQ predicate on the "maturity" field.
func MaturityNEQ(v Maturity) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldMaturity, v))
}

// MaturityIn applies the In predicate on the "maturity" field.
func MaturityIn(vs ...Maturity) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldMaturity, vs...))
}

// MaturityNotIn applies the NotIn predicate on the "maturity" field.
func MaturityNotIn(vs ...Maturity) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldMaturity, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldStatus, vs...))
}

// MetricsEQ applies the EQ predicate on the "metrics" field.
func MetricsEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldMetrics, v))
}

// MetricsNEQ applies the NEQ predicate on the "metrics" field.
func MetricsNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldMetrics, v))
}

// MetricsIn applies the In predicate on the "metrics" field.
func MetricsIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldMetrics, vs...))
}

// MetricsNotIn applies the NotIn predicate on the "metrics" field.
func MetricsNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldMetrics, vs...))
}

// MetricsGT applies the GT predicate on the "metrics" field.
func MetricsGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldMetrics, v))
}

// MetricsGTE applies the GTE predicate on the "metrics" field.
func MetricsGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldMetrics, v))
}

// MetricsLT applies the LT predicate on the "metrics" field.
func MetricsLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldMetrics, v))
}

// MetricsLTE applies the LTE predicate on the "metrics" field.
func MetricsLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldMetrics, v))
}

// MetricsContains applies the Contains predicate on the "metrics" field.
func MetricsContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldMetrics, v))
}

// MetricsHasPrefix applies the HasPrefix predicate on the "metrics" field.
func MetricsHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldMetrics, v))
}

// MetricsHasSuffix applies the HasSuffix predicate on the "metrics" field.
func MetricsHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldMetrics, v))
}

// MetricsIsNil applies the IsNil predicate on the "metrics" field.
func MetricsIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldMetrics))
}

// MetricsNotNil applies the NotNil predicate on the "metrics" field.
func MetricsNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldMetrics))
}

// MetricsEqualFold applies the EqualFold predicate on the "metrics" field.
func MetricsEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldMetrics, v))
}

// MetricsContainsFold applies the ContainsFold predicate on the "metrics" field.
func MetricsContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldMetrics, v))
}

// MaturityScoreEQ applies the EQ predicate on the "maturity_score" field.
func MaturityScoreEQ(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldMaturityScore, v))
}

// MaturityScoreNEQ applies the NEQ predicate on the "maturity_score" field.
func MaturityScoreNEQ(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldMaturityScore, v))
}

// MaturityScoreIn applies the In predicate on the "maturity_score" field.
func MaturityScoreIn(vs ...float64) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldMaturityScore, vs...))
}

// MaturityScoreNotIn applies the NotIn predicate on the "maturity_score" field.
func MaturityScoreNotIn(vs ...float64) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldMaturityScore, vs...))
}

// MaturityScoreGT applies the GT predicate on the "maturity_score" field.
func MaturityScoreGT(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldMaturityScore, v))
}

// MaturityScoreGTE applies the GTE predicate on the "maturity_score" field.
func MaturityScoreGTE(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldMaturityScore, v))
}

// MaturityScoreLT applies the LT predicate on the "maturity_score" field.
func MaturityScoreLT(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldMaturityScore, v))
}

// MaturityScoreLTE applies the LTE predicate on the "maturity_score" field.
func MaturityScoreLTE(v float64) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldMaturityScore, v))
}

// MaturityScoreIsNil applies the IsNil predicate on the "maturity_score" field.
func MaturityScoreIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldMaturityScore))
}

// MaturityScoreNotNil applies the NotNil predicate on the "maturity_score" field.
func MaturityScoreNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldMaturityScore))
}

// CompletedCountEQ applies the EQ predicate on the "completed_count" field.
func CompletedCountEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCompletedCount, v))
}

// CompletedCountNEQ applies the NEQ predicate on the "completed_count" field.
func CompletedCountNEQ(v int) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCompletedCount, v))
}

// CompletedCountIn applies the In predicate on the "completed_count" field.
func CompletedCountIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCompletedCount, vs...))
}

// CompletedCountNotIn applies the NotIn predicate on the "completed_count" field.
func CompletedCountNotIn(vs ...int) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCompletedCount, vs...))
}

// CompletedCountGT applies the GT predicate on the "completed_count" field.
func CompletedCountGT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCompletedCount, v))
}

// CompletedCountGTE applies the GTE predicate on the "completed_count" field.
func CompletedCountGTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCompletedCount, v))
}

// CompletedCountLT applies the LT predicate on the "completed_count" field.
func CompletedCountLT(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCompletedCount, v))
}

// CompletedCountLTE applies the LTE predicate on the "completed_count" field.
func CompletedCountLTE(v int) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCompletedCount, v))
}

// LastAssessedAtEQ applies the EQ predicate on the "last_assessed_at" field.
func LastAssessedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastAssessedAt, v))
}

// LastAssessedAtNEQ applies the NEQ predicate on the "last_assessed_at" field.
func LastAssessedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldLastAssessedAt, v))
}

// LastAssessedAtIn applies the In predicate on the "last_assessed_at" field.
func LastAssessedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldLastAssessedAt, vs...))
}

// LastAssessedAtNotIn applies the NotIn predicate on the "last_assessed_at" field.
func LastAssessedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldLastAssessedAt, vs...))
}

// LastAssessedAtGT applies the GT predicate on the "last_assessed_at" field.
func LastAssessedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldLastAssessedAt, v))
}

// LastAssessedAtGTE applies the GTE predicate on the "last_assessed_at" field.
func LastAssessedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldLastAssessedAt, v))
}

// LastAssessedAtLT applies the LT predicate on the "last_assessed_at" field.
func LastAssessedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldLastAssessedAt, v))
}

// LastAssessedAtLTE applies the LTE predicate on the "last_assessed_at" field.
func LastAssessedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldLastAssessedAt, v))
}

// LastAssessedAtIsNil applies the IsNil predicate on the "last_assessed_at" field.
func LastAssessedAtIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldLastAssessedAt))
}

// LastAssessedAtNotNil applies the NotNil predicate on the "last_assessed_at" field.
func LastAssessedAtNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldLastAssessedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.NotPredicates(p))
}
