// Code generated by ent, DO NOT EDIT.

package evidence

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeframe-hq/codeframe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldTaskID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldAgentID, v))
}

// TaskDescription applies equality check predicate on the "task_description" field. It's identical to TaskDescriptionEQ.
func TaskDescription(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldTaskDescription, v))
}

// Verified applies equality check predicate on the "verified" field. It's identical to VerifiedEQ.
func Verified(v bool) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldVerified, v))
}

// Coverage applies equality check predicate on the "coverage" field. It's identical to CoverageEQ.
func Coverage(v float64) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldCoverage, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldLanguage, v))
}

// Framework applies equality check predicate on the "framework" field. It's identical to FrameworkEQ.
func Framework(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldFramework, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContainsFold(FieldTaskID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContainsFold(FieldAgentID, v))
}

// TaskDescriptionEQ applies the EQ predicate on the "task_description" field.
func TaskDescriptionEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldTaskDescription, v))
}

// TaskDescriptionNEQ applies the NEQ predicate on the "task_description" field.
func TaskDescriptionNEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldTaskDescription, v))
}

// TaskDescriptionIn applies the In predicate on the "task_description" field.
func TaskDescriptionIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldTaskDescription, vs...))
}

// TaskDescriptionNotIn applies the NotIn predicate on the "task_description" field.
func TaskDescriptionNotIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldTaskDescription, vs...))
}

// TaskDescriptionGT applies the GT predicate on the "task_description" field.
func TaskDescriptionGT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldTaskDescription, v))
}

// TaskDescriptionGTE applies the GTE predicate on the "task_description" field.
func TaskDescriptionGTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldTaskDescription, v))
}

// TaskDescriptionLT applies the LT predicate on the "task_description" field.
func TaskDescriptionLT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldTaskDescription, v))
}

// TaskDescriptionLTE applies the LTE predicate on the "task_description" field.
func TaskDescriptionLTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldTaskDescription, v))
}

// TaskDescriptionContains applies the Contains predicate on the "task_description" field.
func TaskDescriptionContains(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContains(FieldTaskDescription, v))
}

// TaskDescriptionHasPrefix applies the HasPrefix predicate on the "task_description" field.
func TaskDescriptionHasPrefix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasPrefix(FieldTaskDescription, v))
}

// TaskDescriptionHasSuffix applies the HasSuffix predicate on the "task_description" field.
func TaskDescriptionHasSuffix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasSuffix(FieldTaskDescription, v))
}

// TaskDescriptionIsNil applies the IsNil predicate on the "task_description" field.
func TaskDescriptionIsNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldIsNull(FieldTaskDescription))
}

// TaskDescriptionNotNil applies the NotNil predicate on the "task_description" field.
func TaskDescriptionNotNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldNotNull(FieldTaskDescription))
}

// TaskDescriptionEqualFold applies the EqualFold predicate on the "task_description" field.
func TaskDescriptionEqualFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEqualFold(FieldTaskDescription, v))
}

// TaskDescriptionContainsFold applies the ContainsFold predicate on the "task_description" field.
func TaskDescriptionContainsFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContainsFold(FieldTaskDescription, v))
}

// VerifiedEQ applies the EQ predicate on the "verified" field.
func VerifiedEQ(v bool) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldVerified, v))
}

// VerifiedNEQ applies the NEQ predicate on the "verified" field.
func VerifiedNEQ(v bool) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldVerified, v))
}

// TestResultIsNil applies the IsNil predicate on the "test_result" field.
func TestResultIsNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldIsNull(FieldTestResult))
}

// TestResultNotNil applies the NotNil predicate on the "test_result" field.
func TestResultNotNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldNotNull(FieldTestResult))
}

// SkipViolationsIsNil applies the IsNil predicate on the "skip_violations" field.
func SkipViolationsIsNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldIsNull(FieldSkipViolations))
}

// SkipViolationsNotNil applies the NotNil predicate on the "skip_violations" field.
func SkipViolationsNotNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldNotNull(FieldSkipViolations))
}

// CoverageEQ applies the EQ predicate on the "coverage" field.
func CoverageEQ(v float64) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldCoverage, v))
}

// CoverageNEQ applies the NEQ predicate on the "coverage" field.
func CoverageNEQ(v float64) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldCoverage, v))
}

// CoverageIn applies the In predicate on the "coverage" field.
func CoverageIn(vs ...float64) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldCoverage, vs...))
}

// CoverageNotIn applies the NotIn predicate on the "coverage" field.
func CoverageNotIn(vs ...float64) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldCoverage, vs...))
}

// CoverageGT applies the GT predicate on the "coverage" field.
func CoverageGT(v float64) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldCoverage, v))
}

// CoverageGTE applies the GTE predicate on the "coverage" field.
func CoverageGTE(v float64) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldCoverage, v))
}

// CoverageLT applies the LT predicate on the "coverage" field.
func CoverageLT(v float64) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldCoverage, v))
}

// CoverageLTE applies the LTE predicate on the "coverage" field.
func CoverageLTE(v float64) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldCoverage, v))
}

// CoverageIsNil applies the IsNil predicate on the "coverage" field.
func CoverageIsNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldIsNull(FieldCoverage))
}

// CoverageNotNil applies the NotNil predicate on the "coverage" field.
func CoverageNotNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldNotNull(FieldCoverage))
}

// QualityMetricsIsNil applies the IsNil predicate on the "quality_metrics" field.
func QualityMetricsIsNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldIsNull(FieldQualityMetrics))
}

// QualityMetricsNotNil applies the NotNil predicate on the "quality_metrics" field.
func QualityMetricsNotNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldNotNull(FieldQualityMetrics))
}

// VerificationErrorsIsNil applies the IsNil predicate on the "verification_errors" field.
func VerificationErrorsIsNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldIsNull(FieldVerificationErrors))
}

// VerificationErrorsNotNil applies the NotNil predicate on the "verification_errors" field.
func VerificationErrorsNotNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldNotNull(FieldVerificationErrors))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageIsNil applies the IsNil predicate on the "language" field.
func LanguageIsNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldIsNull(FieldLanguage))
}

// LanguageNotNil applies the NotNil predicate on the "language" field.
func LanguageNotNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldNotNull(FieldLanguage))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContainsFold(FieldLanguage, v))
}

// FrameworkEQ applies the EQ predicate on the "framework" field.
func FrameworkEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldFramework, v))
}

// FrameworkNEQ applies the NEQ predicate on the "framework" field.
func FrameworkNEQ(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldFramework, v))
}

// FrameworkIn applies the In predicate on the "framework" field.
func FrameworkIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldFramework, vs...))
}

// FrameworkNotIn applies the NotIn predicate on the "framework" field.
func FrameworkNotIn(vs ...string) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldFramework, vs...))
}

// FrameworkGT applies the GT predicate on the "framework" field.
func FrameworkGT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldFramework, v))
}

// FrameworkGTE applies the GTE predicate on the "framework" field.
func FrameworkGTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldFramework, v))
}

// FrameworkLT applies the LT predicate on the "framework" field.
func FrameworkLT(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldFramework, v))
}

// FrameworkLTE applies the LTE predicate on the "framework" field.
func FrameworkLTE(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldFramework, v))
}

// FrameworkContains applies the Contains predicate on the "framework" field.
func FrameworkContains(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContains(FieldFramework, v))
}

// FrameworkHasPrefix applies the HasPrefix predicate on the "framework" field.
func FrameworkHasPrefix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasPrefix(FieldFramework, v))
}

// FrameworkHasSuffix applies the HasSuffix predicate on the "framework" field.
func FrameworkHasSuffix(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldHasSuffix(FieldFramework, v))
}

// FrameworkIsNil applies the IsNil predicate on the "framework" field.
func FrameworkIsNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldIsNull(FieldFramework))
}

// FrameworkNotNil applies the NotNil predicate on the "framework" field.
func FrameworkNotNil() predicate.Evidence {
	return predicate.Evidence(sql.FieldNotNull(FieldFramework))
}

// FrameworkEqualFold applies the EqualFold predicate on the "framework" field.
func FrameworkEqualFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldEqualFold(FieldFramework, v))
}

// FrameworkContainsFold applies the ContainsFold predicate on the "framework" field.
func FrameworkContainsFold(v string) predicate.Evidence {
	return predicate.Evidence(sql.FieldContainsFold(FieldFramework, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Evidence {
	return predicate.Evidence(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Evidence) predicate.Evidence {
	return predicate.Evidence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Evidence) predicate.Evidence {
	return predicate.Evidence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Evidence) predicate.Evidence {
	return predicate.Evidence(sql.NotPredicates(p))
}
