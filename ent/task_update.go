// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeframe-hq/codeframe/ent/correctionattempt"
	"github.com/codeframe-hq/codeframe/ent/predicate"
	"github.com/codeframe-hq/codeframe/ent/task"
	"github.com/codeframe-hq/codeframe/ent/testresult"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskNumber sets the "task_number" field.
func (_u *TaskUpdate) SetTaskNumber(v string) *TaskUpdate {
	_u.mutation.SetTaskNumber(v)
	return _u
}

// SetNillableTaskNumber sets the "task_number" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTaskNumber(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTaskNumber(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdate) SetTitle(v string) *TaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdate) ClearDescription() *TaskUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *TaskUpdate) SetAssignedTo(v string) *TaskUpdate {
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAssignedTo(v *string) *TaskUpdate {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (_u *TaskUpdate) ClearAssignedTo() *TaskUpdate {
	_u.mutation.ClearAssignedTo()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdate) SetPriority(v int) *TaskUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePriority(v *int) *TaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TaskUpdate) AddPriority(v int) *TaskUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetQualityGateStatus sets the "quality_gate_status" field.
func (_u *TaskUpdate) SetQualityGateStatus(v task.QualityGateStatus) *TaskUpdate {
	_u.mutation.SetQualityGateStatus(v)
	return _u
}

// SetNillableQualityGateStatus sets the "quality_gate_status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableQualityGateStatus(v *task.QualityGateStatus) *TaskUpdate {
	if v != nil {
		_u.SetQualityGateStatus(*v)
	}
	return _u
}

// SetQualityGateFailures sets the "quality_gate_failures" field.
func (_u *TaskUpdate) SetQualityGateFailures(v string) *TaskUpdate {
	_u.mutation.SetQualityGateFailures(v)
	return _u
}

// SetNillableQualityGateFailures sets the "quality_gate_failures" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableQualityGateFailures(v *string) *TaskUpdate {
	if v != nil {
		_u.SetQualityGateFailures(*v)
	}
	return _u
}

// ClearQualityGateFailures clears the value of the "quality_gate_failures" field.
func (_u *TaskUpdate) ClearQualityGateFailures() *TaskUpdate {
	_u.mutation.ClearQualityGateFailures()
	return _u
}

// SetRequiresHumanApproval sets the "requires_human_approval" field.
func (_u *TaskUpdate) SetRequiresHumanApproval(v bool) *TaskUpdate {
	_u.mutation.SetRequiresHumanApproval(v)
	return _u
}

// SetNillableRequiresHumanApproval sets the "requires_human_approval" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRequiresHumanApproval(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetRequiresHumanApproval(*v)
	}
	return _u
}

// SetCommitSha sets the "commit_sha" field.
func (_u *TaskUpdate) SetCommitSha(v string) *TaskUpdate {
	_u.mutation.SetCommitSha(v)
	return _u
}

// SetNillableCommitSha sets the "commit_sha" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCommitSha(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCommitSha(*v)
	}
	return _u
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (_u *TaskUpdate) ClearCommitSha() *TaskUpdate {
	_u.mutation.ClearCommitSha()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdate) SetStartedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStartedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdate) ClearStartedAt() *TaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdate) SetCompletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddTestResultIDs adds the "test_results" edge to the TestResult entity by IDs.
func (_u *TaskUpdate) AddTestResultIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddTestResultIDs(ids...)
	return _u
}

// AddTestResults adds the "test_results" edges to the TestResult entity.
func (_u *TaskUpdate) AddTestResults(v ...*TestResult) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTestResultIDs(ids...)
}

// AddCorrectionAttemptIDs adds the "correction_attempts" edge to the CorrectionAttempt entity by IDs.
func (_u *TaskUpdate) AddCorrectionAttemptIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddCorrectionAttemptIDs(ids...)
	return _u
}

// AddCorrectionAttempts adds the "correction_attempts" edges to the CorrectionAttempt entity.
func (_u *TaskUpdate) AddCorrectionAttempts(v ...*CorrectionAttempt) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCorrectionAttemptIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearTestResults clears all "test_results" edges to the TestResult entity.
func (_u *TaskUpdate) ClearTestResults() *TaskUpdate {
	_u.mutation.ClearTestResults()
	return _u
}

// RemoveTestResultIDs removes the "test_results" edge to TestResult entities by IDs.
func (_u *TaskUpdate) RemoveTestResultIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveTestResultIDs(ids...)
	return _u
}

// RemoveTestResults removes "test_results" edges to TestResult entities.
func (_u *TaskUpdate) RemoveTestResults(v ...*TestResult) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTestResultIDs(ids...)
}

// ClearCorrectionAttempts clears all "correction_attempts" edges to the CorrectionAttempt entity.
func (_u *TaskUpdate) ClearCorrectionAttempts() *TaskUpdate {
	_u.mutation.ClearCorrectionAttempts()
	return _u
}

// RemoveCorrectionAttemptIDs removes the "correction_attempts" edge to CorrectionAttempt entities by IDs.
func (_u *TaskUpdate) RemoveCorrectionAttemptIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveCorrectionAttemptIDs(ids...)
	return _u
}

// RemoveCorrectionAttempts removes "correction_attempts" edges to CorrectionAttempt entities.
func (_u *TaskUpdate) RemoveCorrectionAttempts(v ...*CorrectionAttempt) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCorrectionAttemptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QualityGateStatus(); ok {
		if err := task.QualityGateStatusValidator(v); err != nil {
			return &ValidationError{Name: "quality_gate_status", err: fmt.Errorf(`ent: validator failed for field "Task.quality_gate_status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.project"`)
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskNumber(); ok {
		_spec.SetField(task.FieldTaskNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(task.FieldAssignedTo, field.TypeString, value)
	}
	if _u.mutation.AssignedToCleared() {
		_spec.ClearField(task.FieldAssignedTo, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QualityGateStatus(); ok {
		_spec.SetField(task.FieldQualityGateStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QualityGateFailures(); ok {
		_spec.SetField(task.FieldQualityGateFailures, field.TypeString, value)
	}
	if _u.mutation.QualityGateFailuresCleared() {
		_spec.ClearField(task.FieldQualityGateFailures, field.TypeString)
	}
	if value, ok := _u.mutation.RequiresHumanApproval(); ok {
		_spec.SetField(task.FieldRequiresHumanApproval, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CommitSha(); ok {
		_spec.SetField(task.FieldCommitSha, field.TypeString, value)
	}
	if _u.mutation.CommitShaCleared() {
		_spec.ClearField(task.FieldCommitSha, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TestResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.TestResultsTable,
			Columns: []string{task.TestResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testresult.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTestResultsIDs(); len(nodes) > 0 && !_u.mutation.TestResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.TestResultsTable,
			Columns: []string{task.TestResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.TestResultsTable,
			Columns: []string{task.TestResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CorrectionAttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CorrectionAttemptsTable,
			Columns: []string{task.CorrectionAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(correctionattempt.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCorrectionAttemptsIDs(); len(nodes) > 0 && !_u.mutation.CorrectionAttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CorrectionAttemptsTable,
			Columns: []string{task.CorrectionAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(correctionattempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CorrectionAttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CorrectionAttemptsTable,
			Columns: []string{task.CorrectionAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(correctionattempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetTaskNumber sets the "task_number" field.
func (_u *TaskUpdateOne) SetTaskNumber(v string) *TaskUpdateOne {
	_u.mutation.SetTaskNumber(v)
	return _u
}

// SetNillableTaskNumber sets the "task_number" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTaskNumber(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTaskNumber(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdateOne) SetTitle(v string) *TaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdateOne) ClearDescription() *TaskUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *TaskUpdateOne) SetAssignedTo(v string) *TaskUpdateOne {
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAssignedTo(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (_u *TaskUpdateOne) ClearAssignedTo() *TaskUpdateOne {
	_u.mutation.ClearAssignedTo()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdateOne) SetPriority(v int) *TaskUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePriority(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TaskUpdateOne) AddPriority(v int) *TaskUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetQualityGateStatus sets the "quality_gate_status" field.
func (_u *TaskUpdateOne) SetQualityGateStatus(v task.QualityGateStatus) *TaskUpdateOne {
	_u.mutation.SetQualityGateStatus(v)
	return _u
}

// SetNillableQualityGateStatus sets the "quality_gate_status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableQualityGateStatus(v *task.QualityGateStatus) *TaskUpdateOne {
	if v != nil {
		_u.SetQualityGateStatus(*v)
	}
	return _u
}

// SetQualityGateFailures sets the "quality_gate_failures" field.
func (_u *TaskUpdateOne) SetQualityGateFailures(v string) *TaskUpdateOne {
	_u.mutation.SetQualityGateFailures(v)
	return _u
}

// SetNillableQualityGateFailures sets the "quality_gate_failures" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableQualityGateFailures(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetQualityGateFailures(*v)
	}
	return _u
}

// ClearQualityGateFailures clears the value of the "quality_gate_failures" field.
func (_u *TaskUpdateOne) ClearQualityGateFailures() *TaskUpdateOne {
	_u.mutation.ClearQualityGateFailures()
	return _u
}

// SetRequiresHumanApproval sets the "requires_human_approval" field.
func (_u *TaskUpdateOne) SetRequiresHumanApproval(v bool) *TaskUpdateOne {
	_u.mutation.SetRequiresHumanApproval(v)
	return _u
}

// SetNillableRequiresHumanApproval sets the "requires_human_approval" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRequiresHumanApproval(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetRequiresHumanApproval(*v)
	}
	return _u
}

// SetCommitSha sets the "commit_sha" field.
func (_u *TaskUpdateOne) SetCommitSha(v string) *TaskUpdateOne {
	_u.mutation.SetCommitSha(v)
	return _u
}

// SetNillableCommitSha sets the "commit_sha" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCommitSha(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCommitSha(*v)
	}
	return _u
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (_u *TaskUpdateOne) ClearCommitSha() *TaskUpdateOne {
	_u.mutation.ClearCommitSha()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdateOne) SetStartedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStartedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdateOne) ClearStartedAt() *TaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdateOne) SetCompletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddTestResultIDs adds the "test_results" edge to the TestResult entity by IDs.
func (_u *TaskUpdateOne) AddTestResultIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddTestResultIDs(ids...)
	return _u
}

// AddTestResults adds the "test_results" edges to the TestResult entity.
func (_u *TaskUpdateOne) AddTestResults(v ...*TestResult) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTestResultIDs(ids...)
}

// AddCorrectionAttemptIDs adds the "correction_attempts" edge to the CorrectionAttempt entity by IDs.
func (_u *TaskUpdateOne) AddCorrectionAttemptIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddCorrectionAttemptIDs(ids...)
	return _u
}

// AddCorrectionAttempts adds the "correction_attempts" edges to the CorrectionAttempt entity.
func (_u *TaskUpdateOne) AddCorrectionAttempts(v ...*CorrectionAttempt) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCorrectionAttemptIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearTestResults clears all "test_results" edges to the TestResult entity.
func (_u *TaskUpdateOne) ClearTestResults() *TaskUpdateOne {
	_u.mutation.ClearTestResults()
	return _u
}

// RemoveTestResultIDs removes the "test_results" edge to TestResult entities by IDs.
func (_u *TaskUpdateOne) RemoveTestResultIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveTestResultIDs(ids...)
	return _u
}

// RemoveTestResults removes "test_results" edges to TestResult entities.
func (_u *TaskUpdateOne) RemoveTestResults(v ...*TestResult) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTestResultIDs(ids...)
}

// ClearCorrectionAttempts clears all "correction_attempts" edges to the CorrectionAttempt entity.
func (_u *TaskUpdateOne) ClearCorrectionAttempts() *TaskUpdateOne {
	_u.mutation.ClearCorrectionAttempts()
	return _u
}

// RemoveCorrectionAttemptIDs removes the "correction_attempts" edge to CorrectionAttempt entities by IDs.
func (_u *TaskUpdateOne) RemoveCorrectionAttemptIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveCorrectionAttemptIDs(ids...)
	return _u
}

// RemoveCorrectionAttempts removes "correction_attempts" edges to CorrectionAttempt entities.
func (_u *TaskUpdateOne) RemoveCorrectionAttempts(v ...*CorrectionAttempt) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCorrectionAttemptIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QualityGateStatus(); ok {
		if err := task.QualityGateStatusValidator(v); err != nil {
			return &ValidationError{Name: "quality_gate_status", err: fmt.Errorf(`ent: validator failed for field "Task.quality_gate_status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.project"`)
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskNumber(); ok {
		_spec.SetField(task.FieldTaskNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(task.FieldAssignedTo, field.TypeString, value)
	}
	if _u.mutation.AssignedToCleared() {
		_spec.ClearField(task.FieldAssignedTo, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QualityGateStatus(); ok {
		_spec.SetField(task.FieldQualityGateStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QualityGateFailures(); ok {
		_spec.SetField(task.FieldQualityGateFailures, field.TypeString, value)
	}
	if _u.mutation.QualityGateFailuresCleared() {
		_spec.ClearField(task.FieldQualityGateFailures, field.TypeString)
	}
	if value, ok := _u.mutation.RequiresHumanApproval(); ok {
		_spec.SetField(task.FieldRequiresHumanApproval, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CommitSha(); ok {
		_spec.SetField(task.FieldCommitSha, field.TypeString, value)
	}
	if _u.mutation.CommitShaCleared() {
		_spec.ClearField(task.FieldCommitSha, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TestResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.TestResultsTable,
			Columns: []string{task.TestResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testresult.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTestResultsIDs(); len(nodes) > 0 && !_u.mutation.TestResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.TestResultsTable,
			Columns: []string{task.TestResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.TestResultsTable,
			Columns: []string{task.TestResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CorrectionAttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CorrectionAttemptsTable,
			Columns: []string{task.CorrectionAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(correctionattempt.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCorrectionAttemptsIDs(); len(nodes) > 0 && !_u.mutation.CorrectionAttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CorrectionAttemptsTable,
			Columns: []string{task.CorrectionAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(correctionattempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CorrectionAttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CorrectionAttemptsTable,
			Columns: []string{task.CorrectionAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(correctionattempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
