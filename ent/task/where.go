// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeframe-hq/codeframe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldProjectID, v))
}

// IssueID applies equality check predicate on the "issue_id" field. It's identical to IssueIDEQ.
func IssueID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIssueID, v))
}

// TaskNumber applies equality check predicate on the "task_number" field. It's identical to TaskNumberEQ.
func TaskNumber(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTaskNumber, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// AssignedTo applies equality check predicate on the "assigned_to" field. It's identical to AssignedToEQ.
func AssignedTo(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAssignedTo, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriority, v))
}

// QualityGateFailures applies equality check predicate on the "quality_gate_failures" field. It's identical to QualityGateFailuresEQ.
func QualityGateFailures(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldQualityGateFailures, v))
}

// RequiresHumanApproval applies equality check predicate on the "requires_human_approval" field. It's identical to RequiresHumanApprovalEQ.
func RequiresHumanApproval(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRequiresHumanApproval, v))
}

// CommitSha applies equality check predicate on the "commit_sha" field. It's identical to CommitShaEQ.
func CommitSha(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCommitSha, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompletedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldProjectID, v))
}

// IssueIDEQ applies the EQ predicate on the "issue_id" field.
func IssueIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIssueID, v))
}

// IssueIDNEQ applies the NEQ predicate on the "issue_id" field.
func IssueIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldIssueID, v))
}

// IssueIDIn applies the In predicate on the "issue_id" field.
func IssueIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldIssueID, vs...))
}

// IssueIDNotIn applies the NotIn predicate on the "issue_id" field.
func IssueIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldIssueID, vs...))
}

// IssueIDGT applies the GT predicate on the "issue_id" field.
func IssueIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldIssueID, v))
}

// IssueIDGTE applies the GTE predicate on the "issue_id" field.
func IssueIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldIssueID, v))
}

// IssueIDLT applies the LT predicate on the "issue_id" field.
func IssueIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldIssueID, v))
}

// IssueIDLTE applies the LTE predicate on the "issue_id" field.
func IssueIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldIssueID, v))
}

// IssueIDContains applies the Contains predicate on the "issue_id" field.
func IssueIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldIssueID, v))
}

// IssueIDHasPrefix applies the HasPrefix predicate on the "issue_id" field.
func IssueIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldIssueID, v))
}

// IssueIDHasSuffix applies the HasSuffix predicate on the "issue_id" field.
func IssueIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldIssueID, v))
}

// IssueIDIsNil applies the IsNil predicate on the "issue_id" field.
func IssueIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldIssueID))
}

// IssueIDNotNil applies the NotNil predicate on the "issue_id" field.
func IssueIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldIssueID))
}

// IssueIDEqualFold applies the EqualFold predicate on the "issue_id" field.
func IssueIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldIssueID, v))
}

// IssueIDContainsFold applies the ContainsFold predicate on the "issue_id" field.
func IssueIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldIssueID, v))
}

// TaskNumberEQ applies the EQ predicate on the "task_number" field.
func TaskNumberEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTaskNumber, v))
}

// TaskNumberNEQ applies the NEQ predicate on the "task_number" field.
func TaskNumberNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTaskNumber, v))
}

// TaskNumberIn applies the In predicate on the "task_number" field.
func TaskNumberIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTaskNumber, vs...))
}

// TaskNumberNotIn applies the NotIn predicate on the "task_number" field.
func TaskNumberNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTaskNumber, vs...))
}

// TaskNumberGT applies the GT predicate on the "task_number" field.
func TaskNumberGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTaskNumber, v))
}

// TaskNumberGTE applies the GTE predicate on the "task_number" field.
func TaskNumberGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTaskNumber, v))
}

// TaskNumberLT applies the LT predicate on the "task_number" field.
func TaskNumberLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTaskNumber, v))
}

// TaskNumberLTE applies the LTE predicate on the "task_number" field.
func TaskNumberLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTaskNumber, v))
}

// TaskNumberContains applies the Contains predicate on the "task_number" field.
func TaskNumberContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldTaskNumber, v))
}

// TaskNumberHasPrefix applies the HasPrefix predicate on the "task_number" field.
func TaskNumberHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldTaskNumber, v))
}

// TaskNumberHasSuffix applies the HasSuffix predicate on the "task_number" field.
func TaskNumberHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldTaskNumber, v))
}

// TaskNumberEqualFold applies the EqualFold predicate on the "task_number" field.
func TaskNumberEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldTaskNumber, v))
}

// TaskNumberContainsFold applies the ContainsFold predicate on the "task_number" field.
func TaskNumberContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldTaskNumber, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStatus, vs...))
}

// AssignedToEQ applies the EQ predicate on the "assigned_to" field.
func AssignedToEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAssignedTo, v))
}

// AssignedToNEQ applies the NEQ predicate on the "assigned_to" field.
func AssignedToNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAssignedTo, v))
}

// AssignedToIn applies the In predicate on the "assigned_to" field.
func AssignedToIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAssignedTo, vs...))
}

// AssignedToNotIn applies the NotIn predicate on the "assigned_to" field.
func AssignedToNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAssignedTo, vs...))
}

// AssignedToGT applies the GT predicate on the "assigned_to" field.
func AssignedToGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldAssignedTo, v))
}

// AssignedToGTE applies the GTE predicate on the "assigned_to" field.
func AssignedToGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldAssignedTo, v))
}

// AssignedToLT applies the LT predicate on the "assigned_to" field.
func AssignedToLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldAssignedTo, v))
}

// AssignedToLTE applies the LTE predicate on the "assigned_to" field.
func AssignedToLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldAssignedTo, v))
}

// AssignedToContains applies the Contains predicate on the "assigned_to" field.
func AssignedToContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldAssignedTo, v))
}

// AssignedToHasPrefix applies the HasPrefix predicate on the "assigned_to" field.
func AssignedToHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldAssignedTo, v))
}

// AssignedToHasSuffix applies the HasSuffix predicate on the "assigned_to" field.
func AssignedToHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldAssignedTo, v))
}

// AssignedToIsNil applies the IsNil predicate on the "assigned_to" field.
func AssignedToIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldAssignedTo))
}

// AssignedToNotNil applies the NotNil predicate on the "assigned_to" field.
func AssignedToNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldAssignedTo))
}

// AssignedToEqualFold applies the EqualFold predicate on the "assigned_to" field.
func AssignedToEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldAssignedTo, v))
}

// AssignedToContainsFold applies the ContainsFold predicate on the "assigned_to" field.
func AssignedToContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldAssignedTo, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPriority, v))
}

// QualityGateStatusEQ applies the EQ predicate on the "quality_gate_status" field.
func QualityGateStatusEQ(v QualityGateStatus) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldQualityGateStatus, v))
}

// QualityGateStatusNEQ applies the NEQ predicate on the "quality_gate_status" field.
func QualityGateStatusNEQ(v QualityGateStatus) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldQualityGateStatus, v))
}

// QualityGateStatusIn applies the In predicate on the "quality_gate_status" field.
func QualityGateStatusIn(vs ...QualityGateStatus) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldQualityGateStatus, vs...))
}

// QualityGateStatusNotIn applies the NotIn predicate on the "quality_gate_status" field.
func QualityGateStatusNotIn(vs ...QualityGateStatus) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldQualityGateStatus, vs...))
}

// QualityGateFailuresEQ applies the EQ predicate on the "quality_gate_failures" field.
func QualityGateFailuresEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldQualityGateFailures, v))
}

// QualityGateFailuresNEQ applies the NEQ predicate on the "quality_gate_failures" field.
func QualityGateFailuresNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldQualityGateFailures, v))
}

// QualityGateFailuresIn applies the In predicate on the "quality_gate_failures" field.
func QualityGateFailuresIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldQualityGateFailures, vs...))
}

// QualityGateFailuresNotIn applies the NotIn predicate on the "quality_gate_failures" field.
func QualityGateFailuresNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldQualityGateFailures, vs...))
}

// QualityGateFailuresGT applies the GT predicate on the "quality_gate_failures" field.
func QualityGateFailuresGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldQualityGateFailures, v))
}

// QualityGateFailuresGTE applies the GTE predicate on the "quality_gate_failures" field.
func QualityGateFailuresGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldQualityGateFailures, v))
}

// QualityGateFailuresLT applies the LT predicate on the "quality_gate_failures" field.
func QualityGateFailuresLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldQualityGateFailures, v))
}

// QualityGateFailuresLTE applies the LTE predicate on the "quality_gate_failures" field.
func QualityGateFailuresLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldQualityGateFailures, v))
}

// QualityGateFailuresContains applies the Contains predicate on the "quality_gate_failures" field.
func QualityGateFailuresContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldQualityGateFailures, v))
}

// QualityGateFailuresHasPrefix applies the HasPrefix predicate on the "quality_gate_failures" field.
func QualityGateFailuresHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldQualityGateFailures, v))
}

// QualityGateFailuresHasSuffix applies the HasSuffix predicate on the "quality_gate_failures" field.
func QualityGateFailuresHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldQualityGateFailures, v))
}

// QualityGateFailuresIsNil applies the IsNil predicate on the "quality_gate_failures" field.
func QualityGateFailuresIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldQualityGateFailures))
}

// QualityGateFailuresNotNil applies the NotNil predicate on the "quality_gate_failures" field.
func QualityGateFailuresNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldQualityGateFailures))
}

// QualityGateFailuresEqualFold applies the EqualFold predicate on the "quality_gate_failures" field.
func QualityGateFailuresEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldQualityGateFailures, v))
}

// QualityGateFailuresContainsFold applies the ContainsFold predicate on the "quality_gate_failures" field.
func QualityGateFailuresContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldQualityGateFailures, v))
}

// RequiresHumanApprovalEQ applies the EQ predicate on the "requires_human_approval" field.
func RequiresHumanApprovalEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRequiresHumanApproval, v))
}

// RequiresHumanApprovalNEQ applies the NEQ predicate on the "requires_human_approval" field.
func RequiresHumanApprovalNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldRequiresHumanApproval, v))
}

// CommitShaEQ applies the EQ predicate on the "commit_sha" field.
func CommitShaEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCommitSha, v))
}

// CommitShaNEQ applies the NEQ predicate on the "commit_sha" field.
func CommitShaNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCommitSha, v))
}

// CommitShaIn applies the In predicate on the "commit_sha" field.
func CommitShaIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCommitSha, vs...))
}

// CommitShaNotIn applies the NotIn predicate on the "commit_sha" field.
func CommitShaNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCommitSha, vs...))
}

// CommitShaGT applies the GT predicate on the "commit_sha" field.
func CommitShaGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCommitSha, v))
}

// CommitShaGTE applies the GTE predicate on the "commit_sha" field.
func CommitShaGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCommitSha, v))
}

// CommitShaLT applies the LT predicate on the "commit_sha" field.
func CommitShaLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCommitSha, v))
}

// CommitShaLTE applies the LTE predicate on the "commit_sha" field.
func CommitShaLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCommitSha, v))
}

// CommitShaContains applies the Contains predicate on the "commit_sha" field.
func CommitShaContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldCommitSha, v))
}

// CommitShaHasPrefix applies the HasPrefix predicate on the "commit_sha" field.
func CommitShaHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldCommitSha, v))
}

// CommitShaHasSuffix applies the HasSuffix predicate on the "commit_sha" field.
func CommitShaHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldCommitSha, v))
}

// CommitShaIsNil applies the IsNil predicate on the "commit_sha" field.
func CommitShaIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCommitSha))
}

// CommitShaNotNil applies the NotNil predicate on the "commit_sha" field.
func CommitShaNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCommitSha))
}

// CommitShaEqualFold applies the EqualFold predicate on the "commit_sha" field.
func CommitShaEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldCommitSha, v))
}

// CommitShaContainsFold applies the ContainsFold predicate on the "commit_sha" field.
func CommitShaContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldCommitSha, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCompletedAt))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasIssue applies the HasEdge predicate on the "issue" edge.
func HasIssue() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, IssueTable, IssueColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIssueWith applies the HasEdge predicate on the "issue" edge with a given conditions (other predicates).
func HasIssueWith(preds ...predicate.Issue) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newIssueStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTestResults applies the HasEdge predicate on the "test_results" edge.
func HasTestResults() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TestResultsTable, TestResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTestResultsWith applies the HasEdge predicate on the "test_results" edge with a given conditions (other predicates).
func HasTestResultsWith(preds ...predicate.TestResult) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newTestResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCorrectionAttempts applies the HasEdge predicate on the "correction_attempts" edge.
func HasCorrectionAttempts() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CorrectionAttemptsTable, CorrectionAttemptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCorrectionAttemptsWith applies the HasEdge predicate on the "correction_attempts" edge with a given conditions (other predicates).
func HasCorrectionAttemptsWith(preds ...predicate.CorrectionAttempt) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newCorrectionAttemptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
