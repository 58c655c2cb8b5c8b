// Code generated by ent, DO NOT EDIT.

package correctionattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeframe-hq/codeframe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldEQ(FieldTaskID, v))
}

// AttemptNumber applies equality check predicate on the "attempt_number" field. It's identical to AttemptNumberEQ.
func AttemptNumber(v int) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldEQ(FieldAttemptNumber, v))
}

// ErrorAnalysis applies equality check predicate on the "error_analysis" field. It's identical to ErrorAnalysisEQ.
func ErrorAnalysis(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldEQ(FieldErrorAnalysis, v))
}

// FixDescription applies equality check predicate on the "fix_description" field. It's identical to FixDescriptionEQ.
func FixDescription(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldEQ(FieldFixDescription, v))
}

// CodeChanges applies equality check predicate on the "code_changes" field. It's identical to CodeChangesEQ.
func CodeChanges(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldEQ(FieldCodeChanges, v))
}

// TestResultID applies equality check predicate on the "test_result_id" field. It's identical to TestResultIDEQ.
func TestResultID(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldEQ(FieldTestResultID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldContainsFold(FieldTaskID, v))
}

// AttemptNumberEQ applies the EQ predicate on the "attempt_number" field.
func AttemptNumberEQ(v int) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldEQ(FieldAttemptNumber, v))
}

// AttemptNumberNEQ applies the NEQ predicate on the "attempt_number" field.
func AttemptNumberNEQ(v int) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldNEQ(FieldAttemptNumber, v))
}

// AttemptNumberIn applies the In predicate on the "attempt_number" field.
func AttemptNumberIn(vs ...int) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldIn(FieldAttemptNumber, vs...))
}

// AttemptNumberNotIn applies the NotIn predicate on the "attempt_number" field.
func AttemptNumberNotIn(vs ...int) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldNotIn(FieldAttemptNumber, vs...))
}

// AttemptNumberGT applies the GT predicate on the "attempt_number" field.
func AttemptNumberGT(v int) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldGT(FieldAttemptNumber, v))
}

// AttemptNumberGTE applies the GTE predicate on the "attempt_number" field.
func AttemptNumberGTE(v int) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldGTE(FieldAttemptNumber, v))
}

// AttemptNumberLT applies the LT predicate on the "attempt_number" field.
func AttemptNumberLT(v int) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldLT(FieldAttemptNumber, v))
}

// AttemptNumberLTE applies the LTE predicate on the "attempt_number" field.
func AttemptNumberLTE(v int) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldLTE(FieldAttemptNumber, v))
}

// ErrorAnalysisEQ applies the EQ predicate on the "error_analysis" field.
func ErrorAnalysisEQ(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldEQ(FieldErrorAnalysis, v))
}

// ErrorAnalysisNEQ applies the NEQ predicate on the "error_analysis" field.
func ErrorAnalysisNEQ(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldNEQ(FieldErrorAnalysis, v))
}

// ErrorAnalysisIn applies the In predicate on the "error_analysis" field.
func ErrorAnalysisIn(vs ...string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldIn(FieldErrorAnalysis, vs...))
}

// ErrorAnalysisNotIn applies the NotIn predicate on the "error_analysis" field.
func ErrorAnalysisNotIn(vs ...string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldNotIn(FieldErrorAnalysis, vs...))
}

// ErrorAnalysisGT applies the GT predicate on the "error_analysis" field.
func ErrorAnalysisGT(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldGT(FieldErrorAnalysis, v))
}

// ErrorAnalysisGTE applies the GTE predicate on the "error_analysis" field.
func ErrorAnalysisGTE(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldGTE(FieldErrorAnalysis, v))
}

// ErrorAnalysisLT applies the LT predicate on the "error_analysis" field.
func ErrorAnalysisLT(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldLT(FieldErrorAnalysis, v))
}

// ErrorAnalysisLTE applies the LTE predicate on the "error_analysis" field.
func ErrorAnalysisLTE(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldLTE(FieldErrorAnalysis, v))
}

// ErrorAnalysisContains applies the Contains predicate on the "error_analysis" field.
func ErrorAnalysisContains(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldContains(FieldErrorAnalysis, v))
}

// ErrorAnalysisHasPrefix applies the HasPrefix predicate on the "error_analysis" field.
func ErrorAnalysisHasPrefix(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldHasPrefix(FieldErrorAnalysis, v))
}

// ErrorAnalysisHasSuffix applies the HasSuffix predicate on the "error_analysis" field.
func ErrorAnalysisHasSuffix(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldHasSuffix(FieldErrorAnalysis, v))
}

// ErrorAnalysisEqualFold applies the EqualFold predicate on the "error_analysis" field.
func ErrorAnalysisEqualFold(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldEqualFold(FieldErrorAnalysis, v))
}

// ErrorAnalysisContainsFold applies the ContainsFold predicate on the "error_analysis" field.
func ErrorAnalysisContainsFold(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldContainsFold(FieldErrorAnalysis, v))
}

// FixDescriptionEQ applies the EQ predicate on the "fix_description" field.
func FixDescriptionEQ(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldEQ(FieldFixDescription, v))
}

// FixDescriptionNEQ applies the NEQ predicate on the "fix_description" field.
func FixDescriptionNEQ(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldNEQ(FieldFixDescription, v))
}

// FixDescriptionIn applies the In predicate on the "fix_description" field.
func FixDescriptionIn(vs ...string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldIn(FieldFixDescription, vs...))
}

// FixDescriptionNotIn applies the NotIn predicate on the "fix_description" field.
func FixDescriptionNotIn(vs ...string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldNotIn(FieldFixDescription, vs...))
}

// FixDescriptionGT applies the GT predicate on the "fix_description" field.
func FixDescriptionGT(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldGT(FieldFixDescription, v))
}

// FixDescriptionGTE applies the GTE predicate on the "fix_description" field.
func FixDescriptionGTE(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldGTE(FieldFixDescription, v))
}

// FixDescriptionLT applies the LT predicate on the "fix_description" field.
func FixDescriptionLT(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldLT(FieldFixDescription, v))
}

// FixDescriptionLTE applies the LTE predicate on the "fix_description" field.
func FixDescriptionLTE(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldLTE(FieldFixDescription, v))
}

// FixDescriptionContains applies the Contains predicate on the "fix_description" field.
func FixDescriptionContains(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldContains(FieldFixDescription, v))
}

// FixDescriptionHasPrefix applies the HasPrefix predicate on the "fix_description" field.
func FixDescriptionHasPrefix(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldHasPrefix(FieldFixDescription, v))
}

// FixDescriptionHasSuffix applies the HasSuffix predicate on the "fix_description" field.
func FixDescriptionHasSuffix(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldHasSuffix(FieldFixDescription, v))
}

// FixDescriptionEqualFold applies the EqualFold predicate on the "fix_description" field.
func FixDescriptionEqualFold(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldEqualFold(FieldFixDescription, v))
}

// FixDescriptionContainsFold applies the ContainsFold predicate on the "fix_description" field.
func FixDescriptionContainsFold(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldContainsFold(FieldFixDescription, v))
}

// CodeChangesEQ applies the EQ predicate on the "code_changes" field.
func CodeChangesEQ(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldEQ(FieldCodeChanges, v))
}

// CodeChangesNEQ applies the NEQ predicate on the "code_changes" field.
func CodeChangesNEQ(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldNEQ(FieldCodeChanges, v))
}

// CodeChangesIn applies the In predicate on the "code_changes" field.
func CodeChangesIn(vs ...string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldIn(FieldCodeChanges, vs...))
}

// CodeChangesNotIn applies the NotIn predicate on the "code_changes" field.
func CodeChangesNotIn(vs ...string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldNotIn(FieldCodeChanges, vs...))
}

// CodeChangesGT applies the GT predicate on the "code_changes" field.
func CodeChangesGT(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldGT(FieldCodeChanges, v))
}

// CodeChangesGTE applies the GTE predicate on the "code_changes" field.
func CodeChangesGTE(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldGTE(FieldCodeChanges, v))
}

// CodeChangesLT applies the LT predicate on the "code_changes" field.
func CodeChangesLT(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldLT(FieldCodeChanges, v))
}

// CodeChangesLTE applies the LTE predicate on the "code_changes" field.
func CodeChangesLTE(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldLTE(FieldCodeChanges, v))
}

// CodeChangesContains applies the Contains predicate on the "code_changes" field.
func CodeChangesContains(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldContains(FieldCodeChanges, v))
}

// CodeChangesHasPrefix applies the HasPrefix predicate on the "code_changes" field.
func CodeChangesHasPrefix(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldHasPrefix(FieldCodeChanges, v))
}

// CodeChangesHasSuffix applies the HasSuffix predicate on the "code_changes" field.
func CodeChangesHasSuffix(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldHasSuffix(FieldCodeChanges, v))
}

// CodeChangesIsNil applies the IsNil predicate on the "code_changes" field.
func CodeChangesIsNil() predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldIsNull(FieldCodeChanges))
}

// CodeChangesNotNil applies the NotNil predicate on the "code_changes" field.
func CodeChangesNotNil() predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldNotNull(FieldCodeChanges))
}

// CodeChangesEqualFold applies the EqualFold predicate on the "code_changes" field.
func CodeChangesEqualFold(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldEqualFold(FieldCodeChanges, v))
}

// CodeChangesContainsFold applies the ContainsFold predicate on the "code_changes" field.
func CodeChangesContainsFold(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldContainsFold(FieldCodeChanges, v))
}

// TestResultIDEQ applies the EQ predicate on the "test_result_id" field.
func TestResultIDEQ(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldEQ(FieldTestResultID, v))
}

// TestResultIDNEQ applies the NEQ predicate on the "test_result_id" field.
func TestResultIDNEQ(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldNEQ(FieldTestResultID, v))
}

// TestResultIDIn applies the In predicate on the "test_result_id" field.
func TestResultIDIn(vs ...string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldIn(FieldTestResultID, vs...))
}

// TestResultIDNotIn applies the NotIn predicate on the "test_result_id" field.
func TestResultIDNotIn(vs ...string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldNotIn(FieldTestResultID, vs...))
}

// TestResultIDGT applies the GT predicate on the "test_result_id" field.
func TestResultIDGT(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldGT(FieldTestResultID, v))
}

// TestResultIDGTE applies the GTE predicate on the "test_result_id" field.
func TestResultIDGTE(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldGTE(FieldTestResultID, v))
}

// TestResultIDLT applies the LT predicate on the "test_result_id" field.
func TestResultIDLT(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldLT(FieldTestResultID, v))
}

// TestResultIDLTE applies the LTE predicate on the "test_result_id" field.
func TestResultIDLTE(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldLTE(FieldTestResultID, v))
}

// TestResultIDContains applies the Contains predicate on the "test_result_id" field.
func TestResultIDContains(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldContains(FieldTestResultID, v))
}

// TestResultIDHasPrefix applies the HasPrefix predicate on the "test_result_id" field.
func TestResultIDHasPrefix(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldHasPrefix(FieldTestResultID, v))
}

// TestResultIDHasSuffix applies the HasSuffix predicate on the "test_result_id" field.
func TestResultIDHasSuffix(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldHasSuffix(FieldTestResultID, v))
}

// TestResultIDIsNil applies the IsNil predicate on the "test_result_id" field.
func TestResultIDIsNil() predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldIsNull(FieldTestResultID))
}

// TestResultIDNotNil applies the NotNil predicate on the "test_result_id" field.
func TestResultIDNotNil() predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldNotNull(FieldTestResultID))
}

// TestResultIDEqualFold applies the EqualFold predicate on the "test_result_id" field.
func TestResultIDEqualFold(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldEqualFold(FieldTestResultID, v))
}

// TestResultIDContainsFold applies the ContainsFold predicate on the "test_result_id" field.
func TestResultIDContainsFold(v string) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldContainsFold(FieldTestResultID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CorrectionAttempt) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CorrectionAttempt) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CorrectionAttempt) predicate.CorrectionAttempt {
	return predicate.CorrectionAttempt(sql.NotPredicates(p))
}
