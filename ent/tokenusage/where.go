// Code generated by ent, DO NOT EDIT.

package tokenusage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codeframe-hq/codeframe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldTaskID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldAgentID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldProjectID, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldModel, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldOutputTokens, v))
}

// EstimatedCostUsd applies equality check predicate on the "estimated_cost_usd" field. It's identical to EstimatedCostUsdEQ.
func EstimatedCostUsd(v float64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldEstimatedCostUsd, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDIsNil applies the IsNil predicate on the "task_id" field.
func TaskIDIsNil() predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIsNull(FieldTaskID))
}

// TaskIDNotNil applies the NotNil predicate on the "task_id" field.
func TaskIDNotNil() predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotNull(FieldTaskID))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContainsFold(FieldTaskID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContainsFold(FieldAgentID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDIsNil applies the IsNil predicate on the "project_id" field.
func ProjectIDIsNil() predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIsNull(FieldProjectID))
}

// ProjectIDNotNil applies the NotNil predicate on the "project_id" field.
func ProjectIDNotNil() predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotNull(FieldProjectID))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContainsFold(FieldProjectID, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldContainsFold(FieldModel, v))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldOutputTokens, v))
}

// EstimatedCostUsdEQ applies the EQ predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdEQ(v float64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdNEQ applies the NEQ predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdNEQ(v float64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdIn applies the In predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdIn(vs ...float64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldEstimatedCostUsd, vs...))
}

// EstimatedCostUsdNotIn applies the NotIn predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdNotIn(vs ...float64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldEstimatedCostUsd, vs...))
}

// EstimatedCostUsdGT applies the GT predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdGT(v float64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdGTE applies the GTE predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdGTE(v float64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdLT applies the LT predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdLT(v float64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdLTE applies the LTE predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdLTE(v float64) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldEstimatedCostUsd, v))
}

// CallTypeEQ applies the EQ predicate on the "call_type" field.
func CallTypeEQ(v CallType) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldCallType, v))
}

// CallTypeNEQ applies the NEQ predicate on the "call_type" field.
func CallTypeNEQ(v CallType) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldCallType, v))
}

// CallTypeIn applies the In predicate on the "call_type" field.
func CallTypeIn(vs ...CallType) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldCallType, vs...))
}

// CallTypeNotIn applies the NotIn predicate on the "call_type" field.
func CallTypeNotIn(vs ...CallType) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldCallType, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TokenUsage {
	return predicate.TokenUsage(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TokenUsage) predicate.TokenUsage {
	return predicate.TokenUsage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TokenUsage) predicate.TokenUsage {
	return predicate.TokenUsage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TokenUsage) predicate.TokenUsage {
	return predicate.TokenUsage(sql.NotPredicates(p))
}
