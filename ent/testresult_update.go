// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeframe-hq/codeframe/ent/predicate"
	"github.com/codeframe-hq/codeframe/ent/testresult"
)

// TestResultUpdate is the builder for updating TestResult entities.
type TestResultUpdate struct {
	config
	hooks    []Hook
	mutation *TestResultMutation
}

// Where appends a list predicates to the TestResultUpdate builder.
func (_u *TestResultUpdate) Where(ps ...predicate.TestResult) *TestResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TestResultUpdate) SetStatus(v testresult.Status) *TestResultUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableStatus(v *testresult.Status) *TestResultUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *TestResultUpdate) SetPassed(v int) *TestResultUpdate {
	_u.mutation.ResetPassed()
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillablePassed(v *int) *TestResultUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// AddPassed adds value to the "passed" field.
func (_u *TestResultUpdate) AddPassed(v int) *TestResultUpdate {
	_u.mutation.AddPassed(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *TestResultUpdate) SetFailed(v int) *TestResultUpdate {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableFailed(v *int) *TestResultUpdate {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *TestResultUpdate) AddFailed(v int) *TestResultUpdate {
	_u.mutation.AddFailed(v)
	return _u
}

// SetErrors sets the "errors" field.
func (_u *TestResultUpdate) SetErrors(v int) *TestResultUpdate {
	_u.mutation.ResetErrors()
	_u.mutation.SetErrors(v)
	return _u
}

// SetNillableErrors sets the "errors" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableErrors(v *int) *TestResultUpdate {
	if v != nil {
		_u.SetErrors(*v)
	}
	return _u
}

// AddErrors adds value to the "errors" field.
func (_u *TestResultUpdate) AddErrors(v int) *TestResultUpdate {
	_u.mutation.AddErrors(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *TestResultUpdate) SetSkipped(v int) *TestResultUpdate {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableSkipped(v *int) *TestResultUpdate {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *TestResultUpdate) AddSkipped(v int) *TestResultUpdate {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *TestResultUpdate) SetDurationSeconds(v float64) *TestResultUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableDurationSeconds(v *float64) *TestResultUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *TestResultUpdate) AddDurationSeconds(v float64) *TestResultUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetOutput sets the "output" field.
func (_u *TestResultUpdate) SetOutput(v string) *TestResultUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *TestResultUpdate) SetNillableOutput(v *string) *TestResultUpdate {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *TestResultUpdate) ClearOutput() *TestResultUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// Mutation returns the TestResultMutation object of the builder.
func (_u *TestResultUpdate) Mutation() *TestResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestResultUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := testresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TestResult.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Passed(); ok {
		if err := testresult.PassedValidator(v); err != nil {
			return &ValidationError{Name: "passed", err: fmt.Errorf(`ent: validator failed for field "TestResult.passed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Failed(); ok {
		if err := testresult.FailedValidator(v); err != nil {
			return &ValidationError{Name: "failed", err: fmt.Errorf(`ent: validator failed for field "TestResult.failed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Errors(); ok {
		if err := testresult.ErrorsValidator(v); err != nil {
			return &ValidationError{Name: "errors", err: fmt.Errorf(`ent: validator failed for field "TestResult.errors": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skipped(); ok {
		if err := testresult.SkippedValidator(v); err != nil {
			return &ValidationError{Name: "skipped", err: fmt.Errorf(`ent: validator failed for field "TestResult.skipped": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TestResult.task"`)
	}
	return nil
}

func (_u *TestResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testresult.Table, testresult.Columns, sqlgraph.NewFieldSpec(testresult.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(testresult.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(testresult.FieldPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassed(); ok {
		_spec.AddField(testresult.FieldPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(testresult.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(testresult.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(testresult.FieldErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrors(); ok {
		_spec.AddField(testresult.FieldErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(testresult.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(testresult.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(testresult.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(testresult.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(testresult.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(testresult.FieldOutput, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestResultUpdateOne is the builder for updating a single TestResult entity.
type TestResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestResultMutation
}

// SetStatus sets the "status" field.
func (_u *TestResultUpdateOne) SetStatus(v testresult.Status) *TestResultUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableStatus(v *testresult.Status) *TestResultUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *TestResultUpdateOne) SetPassed(v int) *TestResultUpdateOne {
	_u.mutation.ResetPassed()
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillablePassed(v *int) *TestResultUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// AddPassed adds value to the "passed" field.
func (_u *TestResultUpdateOne) AddPassed(v int) *TestResultUpdateOne {
	_u.mutation.AddPassed(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *TestResultUpdateOne) SetFailed(v int) *TestResultUpdateOne {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableFailed(v *int) *TestResultUpdateOne {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *TestResultUpdateOne) AddFailed(v int) *TestResultUpdateOne {
	_u.mutation.AddFailed(v)
	return _u
}

// SetErrors sets the "errors" field.
func (_u *TestResultUpdateOne) SetErrors(v int) *TestResultUpdateOne {
	_u.mutation.ResetErrors()
	_u.mutation.SetErrors(v)
	return _u
}

// SetNillableErrors sets the "errors" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableErrors(v *int) *TestResultUpdateOne {
	if v != nil {
		_u.SetErrors(*v)
	}
	return _u
}

// AddErrors adds value to the "errors" field.
func (_u *TestResultUpdateOne) AddErrors(v int) *TestResultUpdateOne {
	_u.mutation.AddErrors(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *TestResultUpdateOne) SetSkipped(v int) *TestResultUpdateOne {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableSkipped(v *int) *TestResultUpdateOne {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *TestResultUpdateOne) AddSkipped(v int) *TestResultUpdateOne {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *TestResultUpdateOne) SetDurationSeconds(v float64) *TestResultUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableDurationSeconds(v *float64) *TestResultUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *TestResultUpdateOne) AddDurationSeconds(v float64) *TestResultUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetOutput sets the "output" field.
func (_u *TestResultUpdateOne) SetOutput(v string) *TestResultUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *TestResultUpdateOne) SetNillableOutput(v *string) *TestResultUpdateOne {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *TestResultUpdateOne) ClearOutput() *TestResultUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// Mutation returns the TestResultMutation object of the builder.
func (_u *TestResultUpdateOne) Mutation() *TestResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the TestResultUpdate builder.
func (_u *TestResultUpdateOne) Where(ps ...predicate.TestResult) *TestResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestResultUpdateOne) Select(field string, fields ...string) *TestResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestResult entity.
func (_u *TestResultUpdateOne) Save(ctx context.Context) (*TestResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestResultUpdateOne) SaveX(ctx context.Context) *TestResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestResultUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := testresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TestResult.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Passed(); ok {
		if err := testresult.PassedValidator(v); err != nil {
			return &ValidationError{Name: "passed", err: fmt.Errorf(`ent: validator failed for field "TestResult.passed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Failed(); ok {
		if err := testresult.FailedValidator(v); err != nil {
			return &ValidationError{Name: "failed", err: fmt.Errorf(`ent: validator failed for field "TestResult.failed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Errors(); ok {
		if err := testresult.ErrorsValidator(v); err != nil {
			return &ValidationError{Name: "errors", err: fmt.Errorf(`ent: validator failed for field "TestResult.errors": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skipped(); ok {
		if err := testresult.SkippedValidator(v); err != nil {
			return &ValidationError{Name: "skipped", err: fmt.Errorf(`ent: validator failed for field "TestResult.skipped": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TestResult.task"`)
	}
	return nil
}

func (_u *TestResultUpdateOne) sqlSave(ctx context.Context) (_node *TestResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testresult.Table, testresult.Columns, sqlgraph.NewFieldSpec(testresult.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TestResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testresult.FieldID)
		for _, f := range fields {
			if !testresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != testresult.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(testresult.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(testresult.FieldPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassed(); ok {
		_spec.AddField(testresult.FieldPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(testresult.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(testresult.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(testresult.FieldErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrors(); ok {
		_spec.AddField(testresult.FieldErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(testresult.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(testresult.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(testresult.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(testresult.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(testresult.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(testresult.FieldOutput, field.TypeString)
	}
	_node = &TestResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
