// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeframe-hq/codeframe/ent/correctionattempt"
	"github.com/codeframe-hq/codeframe/ent/predicate"
)

// CorrectionAttemptUpdate is the builder for updating CorrectionAttempt entities.
type CorrectionAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *CorrectionAttemptMutation
}

// Where appends a list predicates to the CorrectionAttemptUpdate builder.
func (_u *CorrectionAttemptUpdate) Where(ps ...predicate.CorrectionAttempt) *CorrectionAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *CorrectionAttemptUpdate) SetAttemptNumber(v int) *CorrectionAttemptUpdate {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *CorrectionAttemptUpdate) SetNillableAttemptNumber(v *int) *CorrectionAttemptUpdate {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *CorrectionAttemptUpdate) AddAttemptNumber(v int) *CorrectionAttemptUpdate {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetErrorAnalysis sets the "error_analysis" field.
func (_u *CorrectionAttemptUpdate) SetErrorAnalysis(v string) *CorrectionAttemptUpdate {
	_u.mutation.SetErrorAnalysis(v)
	return _u
}

// SetNillableErrorAnalysis sets the "error_analysis" field if the given value is not nil.
func (_u *CorrectionAttemptUpdate) SetNillableErrorAnalysis(v *string) *CorrectionAttemptUpdate {
	if v != nil {
		_u.SetErrorAnalysis(*v)
	}
	return _u
}

// SetFixDescription sets the "fix_description" field.
func (_u *CorrectionAttemptUpdate) SetFixDescription(v string) *CorrectionAttemptUpdate {
	_u.mutation.SetFixDescription(v)
	return _u
}

// SetNillableFixDescription sets the "fix_description" field if the given value is not nil.
func (_u *CorrectionAttemptUpdate) SetNillableFixDescription(v *string) *CorrectionAttemptUpdate {
	if v != nil {
		_u.SetFixDescription(*v)
	}
	return _u
}

// SetCodeChanges sets the "code_changes" field.
func (_u *CorrectionAttemptUpdate) SetCodeChanges(v string) *CorrectionAttemptUpdate {
	_u.mutation.SetCodeChanges(v)
	return _u
}

// SetNillableCodeChanges sets the "code_changes" field if the given value is not nil.
func (_u *CorrectionAttemptUpdate) SetNillableCodeChanges(v *string) *CorrectionAttemptUpdate {
	if v != nil {
		_u.SetCodeChanges(*v)
	}
	return _u
}

// ClearCodeChanges clears the value of the "code_changes" field.
func (_u *CorrectionAttemptUpdate) ClearCodeChanges() *CorrectionAttemptUpdate {
	_u.mutation.ClearCodeChanges()
	return _u
}

// SetTestResultID sets the "test_result_id" field.
func (_u *CorrectionAttemptUpdate) SetTestResultID(v string) *CorrectionAttemptUpdate {
	_u.mutation.SetTestResultID(v)
	return _u
}

// SetNillableTestResultID sets the "test_result_id" field if the given value is not nil.
func (_u *CorrectionAttemptUpdate) SetNillableTestResultID(v *string) *CorrectionAttemptUpdate {
	if v != nil {
		_u.SetTestResultID(*v)
	}
	return _u
}

// ClearTestResultID clears the value of the "test_result_id" field.
func (_u *CorrectionAttemptUpdate) ClearTestResultID() *CorrectionAttemptUpdate {
	_u.mutation.ClearTestResultID()
	return _u
}

// Mutation returns the CorrectionAttemptMutation object of the builder.
func (_u *CorrectionAttemptUpdate) Mutation() *CorrectionAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CorrectionAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CorrectionAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CorrectionAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CorrectionAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CorrectionAttemptUpdate) check() error {
	if v, ok := _u.mutation.AttemptNumber(); ok {
		if err := correctionattempt.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "CorrectionAttempt.attempt_number": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CorrectionAttempt.task"`)
	}
	return nil
}

func (_u *CorrectionAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(correctionattempt.Table, correctionattempt.Columns, sqlgraph.NewFieldSpec(correctionattempt.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(correctionattempt.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(correctionattempt.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorAnalysis(); ok {
		_spec.SetField(correctionattempt.FieldErrorAnalysis, field.TypeString, value)
	}
	if value, ok := _u.mutation.FixDescription(); ok {
		_spec.SetField(correctionattempt.FieldFixDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.CodeChanges(); ok {
		_spec.SetField(correctionattempt.FieldCodeChanges, field.TypeString, value)
	}
	if _u.mutation.CodeChangesCleared() {
		_spec.ClearField(correctionattempt.FieldCodeChanges, field.TypeString)
	}
	if value, ok := _u.mutation.TestResultID(); ok {
		_spec.SetField(correctionattempt.FieldTestResultID, field.TypeString, value)
	}
	if _u.mutation.TestResultIDCleared() {
		_spec.ClearField(correctionattempt.FieldTestResultID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{correctionattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CorrectionAttemptUpdateOne is the builder for updating a single CorrectionAttempt entity.
type CorrectionAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CorrectionAttemptMutation
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *CorrectionAttemptUpdateOne) SetAttemptNumber(v int) *CorrectionAttemptUpdateOne {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *CorrectionAttemptUpdateOne) SetNillableAttemptNumber(v *int) *CorrectionAttemptUpdateOne {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *CorrectionAttemptUpdateOne) AddAttemptNumber(v int) *CorrectionAttemptUpdateOne {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetErrorAnalysis sets the "error_analysis" field.
func (_u *CorrectionAttemptUpdateOne) SetErrorAnalysis(v string) *CorrectionAttemptUpdateOne {
	_u.mutation.SetErrorAnalysis(v)
	return _u
}

// SetNillableErrorAnalysis sets the "error_analysis" field if the given value is not nil.
func (_u *CorrectionAttemptUpdateOne) SetNillableErrorAnalysis(v *string) *CorrectionAttemptUpdateOne {
	if v != nil {
		_u.SetErrorAnalysis(*v)
	}
	return _u
}

// SetFixDescription sets the "fix_description" field.
func (_u *CorrectionAttemptUpdateOne) SetFixDescription(v string) *CorrectionAttemptUpdateOne {
	_u.mutation.SetFixDescription(v)
	return _u
}

// SetNillableFixDescription sets the "fix_description" field if the given value is not nil.
func (_u *CorrectionAttemptUpdateOne) SetNillableFixDescription(v *string) *CorrectionAttemptUpdateOne {
	if v != nil {
		_u.SetFixDescription(*v)
	}
	return _u
}

// SetCodeChanges sets the "code_changes" field.
func (_u *CorrectionAttemptUpdateOne) SetCodeChanges(v string) *CorrectionAttemptUpdateOne {
	_u.mutation.SetCodeChanges(v)
	return _u
}

// SetNillableCodeChanges sets the "code_changes" field if the given value is not nil.
func (_u *CorrectionAttemptUpdateOne) SetNillableCodeChanges(v *string) *CorrectionAttemptUpdateOne {
	if v != nil {
		_u.SetCodeChanges(*v)
	}
	return _u
}

// ClearCodeChanges clears the value of the "code_changes" field.
func (_u *CorrectionAttemptUpdateOne) ClearCodeChanges() *CorrectionAttemptUpdateOne {
	_u.mutation.ClearCodeChanges()
	return _u
}

// SetTestResultID sets the "test_result_id" field.
func (_u *CorrectionAttemptUpdateOne) SetTestResultID(v string) *CorrectionAttemptUpdateOne {
	_u.mutation.SetTestResultID(v)
	return _u
}

// SetNillableTestResultID sets the "test_result_id" field if the given value is not nil.
func (_u *CorrectionAttemptUpdateOne) SetNillableTestResultID(v *string) *CorrectionAttemptUpdateOne {
	if v != nil {
		_u.SetTestResultID(*v)
	}
	return _u
}

// ClearTestResultID clears the value of the "test_result_id" field.
func (_u *CorrectionAttemptUpdateOne) ClearTestResultID() *CorrectionAttemptUpdateOne {
	_u.mutation.ClearTestResultID()
	return _u
}

// Mutation returns the CorrectionAttemptMutation object of the builder.
func (_u *CorrectionAttemptUpdateOne) Mutation() *CorrectionAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the CorrectionAttemptUpdate builder.
func (_u *CorrectionAttemptUpdateOne) Where(ps ...predicate.CorrectionAttempt) *CorrectionAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CorrectionAttemptUpdateOne) Select(field string, fields ...string) *CorrectionAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CorrectionAttempt entity.
func (_u *CorrectionAttemptUpdateOne) Save(ctx context.Context) (*CorrectionAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CorrectionAttemptUpdateOne) SaveX(ctx context.Context) *CorrectionAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CorrectionAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CorrectionAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CorrectionAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptNumber(); ok {
		if err := correctionattempt.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "CorrectionAttempt.attempt_number": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CorrectionAttempt.task"`)
	}
	return nil
}

func (_u *CorrectionAttemptUpdateOne) sqlSave(ctx context.Context) (_node *CorrectionAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(correctionattempt.Table, correctionattempt.Columns, sqlgraph.NewFieldSpec(correctionattempt.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CorrectionAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, correctionattempt.FieldID)
		for _, f := range fields {
			if !correctionattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != correctionattempt.FieldID {
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
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(correctionattempt.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(correctionattempt.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorAnalysis(); ok {
		_spec.SetField(correctionattempt.FieldErrorAnalysis, field.TypeString, value)
	}
	if value, ok := _u.mutation.FixDescription(); ok {
		_spec.SetField(correctionattempt.FieldFixDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.CodeChanges(); ok {
		_spec.SetField(correctionattempt.FieldCodeChanges, field.TypeString, value)
	}
	if _u.mutation.CodeChangesCleared() {
		_spec.ClearField(correctionattempt.FieldCodeChanges, field.TypeString)
	}
	if value, ok := _u.mutation.TestResultID(); ok {
		_spec.SetField(correctionattempt.FieldTestResultID, field.TypeString, value)
	}
	if _u.mutation.TestResultIDCleared() {
		_spec.ClearField(correctionattempt.FieldTestResultID, field.TypeString)
	}
	_node = &CorrectionAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{correctionattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
