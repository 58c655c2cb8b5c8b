// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/codeframe-hq/codeframe/ent/evidence"
	"github.com/codeframe-hq/codeframe/ent/predicate"
)

// EvidenceUpdate is the builder for updating Evidence entities.
type EvidenceUpdate struct {
	config
	hooks    []Hook
	mutation *EvidenceMutation
}

// Where appends a list predicates to the EvidenceUpdate builder.
func (_u *EvidenceUpdate) Where(ps ...predicate.Evidence) *EvidenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskDescription sets the "task_description" field.
func (_u *EvidenceUpdate) SetTaskDescription(v string) *EvidenceUpdate {
	_u.mutation.SetTaskDescription(v)
	return _u
}

// SetNillableTaskDescription sets the "task_description" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableTaskDescription(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetTaskDescription(*v)
	}
	return _u
}

// ClearTaskDescription clears the value of the "task_description" field.
func (_u *EvidenceUpdate) ClearTaskDescription() *EvidenceUpdate {
	_u.mutation.ClearTaskDescription()
	return _u
}

// SetVerified sets the "verified" field.
func (_u *EvidenceUpdate) SetVerified(v bool) *EvidenceUpdate {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableVerified(v *bool) *EvidenceUpdate {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// SetTestResult sets the "test_result" field.
func (_u *EvidenceUpdate) SetTestResult(v map[string]interface{}) *EvidenceUpdate {
	_u.mutation.SetTestResult(v)
	return _u
}

// ClearTestResult clears the value of the "test_result" field.
func (_u *EvidenceUpdate) ClearTestResult() *EvidenceUpdate {
	_u.mutation.ClearTestResult()
	return _u
}

// SetSkipViolations sets the "skip_violations" field.
func (_u *EvidenceUpdate) SetSkipViolations(v []map[string]interface{}) *EvidenceUpdate {
	_u.mutation.SetSkipViolations(v)
	return _u
}

// AppendSkipViolations appends value to the "skip_violations" field.
func (_u *EvidenceUpdate) AppendSkipViolations(v []map[string]interface{}) *EvidenceUpdate {
	_u.mutation.AppendSkipViolations(v)
	return _u
}

// ClearSkipViolations clears the value of the "skip_violations" field.
func (_u *EvidenceUpdate) ClearSkipViolations() *EvidenceUpdate {
	_u.mutation.ClearSkipViolations()
	return _u
}

// SetCoverage sets the "coverage" field.
func (_u *EvidenceUpdate) SetCoverage(v float64) *EvidenceUpdate {
	_u.mutation.ResetCoverage()
	_u.mutation.SetCoverage(v)
	return _u
}

// SetNillableCoverage sets the "coverage" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableCoverage(v *float64) *EvidenceUpdate {
	if v != nil {
		_u.SetCoverage(*v)
	}
	return _u
}

// AddCoverage adds value to the "coverage" field.
func (_u *EvidenceUpdate) AddCoverage(v float64) *EvidenceUpdate {
	_u.mutation.AddCoverage(v)
	return _u
}

// ClearCoverage clears the value of the "coverage" field.
func (_u *EvidenceUpdate) ClearCoverage() *EvidenceUpdate {
	_u.mutation.ClearCoverage()
	return _u
}

// SetQualityMetrics sets the "quality_metrics" field.
func (_u *EvidenceUpdate) SetQualityMetrics(v map[string]interface{}) *EvidenceUpdate {
	_u.mutation.SetQualityMetrics(v)
	return _u
}

// ClearQualityMetrics clears the value of the "quality_metrics" field.
func (_u *EvidenceUpdate) ClearQualityMetrics() *EvidenceUpdate {
	_u.mutation.ClearQualityMetrics()
	return _u
}

// SetVerificationErrors sets the "verification_errors" field.
func (_u *EvidenceUpdate) SetVerificationErrors(v []string) *EvidenceUpdate {
	_u.mutation.SetVerificationErrors(v)
	return _u
}

// AppendVerificationErrors appends value to the "verification_errors" field.
func (_u *EvidenceUpdate) AppendVerificationErrors(v []string) *EvidenceUpdate {
	_u.mutation.AppendVerificationErrors(v)
	return _u
}

// ClearVerificationErrors clears the value of the "verification_errors" field.
func (_u *EvidenceUpdate) ClearVerificationErrors() *EvidenceUpdate {
	_u.mutation.ClearVerificationErrors()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *EvidenceUpdate) SetLanguage(v string) *EvidenceUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableLanguage(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *EvidenceUpdate) ClearLanguage() *EvidenceUpdate {
	_u.mutation.ClearLanguage()
	return _u
}

// SetFramework sets the "framework" field.
func (_u *EvidenceUpdate) SetFramework(v string) *EvidenceUpdate {
	_u.mutation.SetFramework(v)
	return _u
}

// SetNillableFramework sets the "framework" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableFramework(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetFramework(*v)
	}
	return _u
}

// ClearFramework clears the value of the "framework" field.
func (_u *EvidenceUpdate) ClearFramework() *EvidenceUpdate {
	_u.mutation.ClearFramework()
	return _u
}

// Mutation returns the EvidenceMutation object of the builder.
func (_u *EvidenceUpdate) Mutation() *EvidenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvidenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvidenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EvidenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(evidence.Table, evidence.Columns, sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskDescription(); ok {
		_spec.SetField(evidence.FieldTaskDescription, field.TypeString, value)
	}
	if _u.mutation.TaskDescriptionCleared() {
		_spec.ClearField(evidence.FieldTaskDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(evidence.FieldVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TestResult(); ok {
		_spec.SetField(evidence.FieldTestResult, field.TypeJSON, value)
	}
	if _u.mutation.TestResultCleared() {
		_spec.ClearField(evidence.FieldTestResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.SkipViolations(); ok {
		_spec.SetField(evidence.FieldSkipViolations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkipViolations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evidence.FieldSkipViolations, value)
		})
	}
	if _u.mutation.SkipViolationsCleared() {
		_spec.ClearField(evidence.FieldSkipViolations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Coverage(); ok {
		_spec.SetField(evidence.FieldCoverage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoverage(); ok {
		_spec.AddField(evidence.FieldCoverage, field.TypeFloat64, value)
	}
	if _u.mutation.CoverageCleared() {
		_spec.ClearField(evidence.FieldCoverage, field.TypeFloat64)
	}
	if value, ok := _u.mutation.QualityMetrics(); ok {
		_spec.SetField(evidence.FieldQualityMetrics, field.TypeJSON, value)
	}
	if _u.mutation.QualityMetricsCleared() {
		_spec.ClearField(evidence.FieldQualityMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.VerificationErrors(); ok {
		_spec.SetField(evidence.FieldVerificationErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVerificationErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evidence.FieldVerificationErrors, value)
		})
	}
	if _u.mutation.VerificationErrorsCleared() {
		_spec.ClearField(evidence.FieldVerificationErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(evidence.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(evidence.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.Framework(); ok {
		_spec.SetField(evidence.FieldFramework, field.TypeString, value)
	}
	if _u.mutation.FrameworkCleared() {
		_spec.ClearField(evidence.FieldFramework, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvidenceUpdateOne is the builder for updating a single Evidence entity.
type EvidenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvidenceMutation
}

// SetTaskDescription sets the "task_description" field.
func (_u *EvidenceUpdateOne) SetTaskDescription(v string) *EvidenceUpdateOne {
	_u.mutation.SetTaskDescription(v)
	return _u
}

// SetNillableTaskDescription sets the "task_description" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableTaskDescription(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetTaskDescription(*v)
	}
	return _u
}

// ClearTaskDescription clears the value of the "task_description" field.
func (_u *EvidenceUpdateOne) ClearTaskDescription() *EvidenceUpdateOne {
	_u.mutation.ClearTaskDescription()
	return _u
}

// SetVerified sets the "verified" field.
func (_u *EvidenceUpdateOne) SetVerified(v bool) *EvidenceUpdateOne {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableVerified(v *bool) *EvidenceUpdateOne {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// SetTestResult sets the "test_result" field.
func (_u *EvidenceUpdateOne) SetTestResult(v map[string]interface{}) *EvidenceUpdateOne {
	_u.mutation.SetTestResult(v)
	return _u
}

// ClearTestResult clears the value of the "test_result" field.
func (_u *EvidenceUpdateOne) ClearTestResult() *EvidenceUpdateOne {
	_u.mutation.ClearTestResult()
	return _u
}

// SetSkipViolations sets the "skip_violations" field.
func (_u *EvidenceUpdateOne) SetSkipViolations(v []map[string]interface{}) *EvidenceUpdateOne {
	_u.mutation.SetSkipViolations(v)
	return _u
}

// AppendSkipViolations appends value to the "skip_violations" field.
func (_u *EvidenceUpdateOne) AppendSkipViolations(v []map[string]interface{}) *EvidenceUpdateOne {
	_u.mutation.AppendSkipViolations(v)
	return _u
}

// ClearSkipViolations clears the value of the "skip_violations" field.
func (_u *EvidenceUpdateOne) ClearSkipViolations() *EvidenceUpdateOne {
	_u.mutation.ClearSkipViolations()
	return _u
}

// SetCoverage sets the "coverage" field.
func (_u *EvidenceUpdateOne) SetCoverage(v float64) *EvidenceUpdateOne {
	_u.mutation.ResetCoverage()
	_u.mutation.SetCoverage(v)
	return _u
}

// SetNillableCoverage sets the "coverage" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableCoverage(v *float64) *EvidenceUpdateOne {
	if v != nil {
		_u.SetCoverage(*v)
	}
	return _u
}

// AddCoverage adds value to the "coverage" field.
func (_u *EvidenceUpdateOne) AddCoverage(v float64) *EvidenceUpdateOne {
	_u.mutation.AddCoverage(v)
	return _u
}

// ClearCoverage clears the value of the "coverage" field.
func (_u *EvidenceUpdateOne) ClearCoverage() *EvidenceUpdateOne {
	_u.mutation.ClearCoverage()
	return _u
}

// SetQualityMetrics sets the "quality_metrics" field.
func (_u *EvidenceUpdateOne) SetQualityMetrics(v map[string]interface{}) *EvidenceUpdateOne {
	_u.mutation.SetQualityMetrics(v)
	return _u
}

// ClearQualityMetrics clears the value of the "quality_metrics" field.
func (_u *EvidenceUpdateOne) ClearQualityMetrics() *EvidenceUpdateOne {
	_u.mutation.ClearQualityMetrics()
	return _u
}

// SetVerificationErrors sets the "verification_errors" field.
func (_u *EvidenceUpdateOne) SetVerificationErrors(v []string) *EvidenceUpdateOne {
	_u.mutation.SetVerificationErrors(v)
	return _u
}

// AppendVerificationErrors appends value to the "verification_errors" field.
func (_u *EvidenceUpdateOne) AppendVerificationErrors(v []string) *EvidenceUpdateOne {
	_u.mutation.AppendVerificationErrors(v)
	return _u
}

// ClearVerificationErrors clears the value of the "verification_errors" field.
func (_u *EvidenceUpdateOne) ClearVerificationErrors() *EvidenceUpdateOne {
	_u.mutation.ClearVerificationErrors()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *EvidenceUpdateOne) SetLanguage(v string) *EvidenceUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableLanguage(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *EvidenceUpdateOne) ClearLanguage() *EvidenceUpdateOne {
	_u.mutation.ClearLanguage()
	return _u
}

// SetFramework sets the "framework" field.
func (_u *EvidenceUpdateOne) SetFramework(v string) *EvidenceUpdateOne {
	_u.mutation.SetFramework(v)
	return _u
}

// SetNillableFramework sets the "framework" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableFramework(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetFramework(*v)
	}
	return _u
}

// ClearFramework clears the value of the "framework" field.
func (_u *EvidenceUpdateOne) ClearFramework() *EvidenceUpdateOne {
	_u.mutation.ClearFramework()
	return _u
}

// Mutation returns the EvidenceMutation object of the builder.
func (_u *EvidenceUpdateOne) Mutation() *EvidenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvidenceUpdate builder.
func (_u *EvidenceUpdateOne) Where(ps ...predicate.Evidence) *EvidenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvidenceUpdateOne) Select(field string, fields ...string) *EvidenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Evidence entity.
func (_u *EvidenceUpdateOne) Save(ctx context.Context) (*Evidence, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceUpdateOne) SaveX(ctx context.Context) *Evidence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvidenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EvidenceUpdateOne) sqlSave(ctx context.Context) (_node *Evidence, err error) {
	_spec := sqlgraph.NewUpdateSpec(evidence.Table, evidence.Columns, sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Evidence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evidence.FieldID)
		for _, f := range fields {
			if !evidence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evidence.FieldID {
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
	if value, ok := _u.mutation.TaskDescription(); ok {
		_spec.SetField(evidence.FieldTaskDescription, field.TypeString, value)
	}
	if _u.mutation.TaskDescriptionCleared() {
		_spec.ClearField(evidence.FieldTaskDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(evidence.FieldVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TestResult(); ok {
		_spec.SetField(evidence.FieldTestResult, field.TypeJSON, value)
	}
	if _u.mutation.TestResultCleared() {
		_spec.ClearField(evidence.FieldTestResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.SkipViolations(); ok {
		_spec.SetField(evidence.FieldSkipViolations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkipViolations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evidence.FieldSkipViolations, value)
		})
	}
	if _u.mutation.SkipViolationsCleared() {
		_spec.ClearField(evidence.FieldSkipViolations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Coverage(); ok {
		_spec.SetField(evidence.FieldCoverage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoverage(); ok {
		_spec.AddField(evidence.FieldCoverage, field.TypeFloat64, value)
	}
	if _u.mutation.CoverageCleared() {
		_spec.ClearField(evidence.FieldCoverage, field.TypeFloat64)
	}
	if value, ok := _u.mutation.QualityMetrics(); ok {
		_spec.SetField(evidence.FieldQualityMetrics, field.TypeJSON, value)
	}
	if _u.mutation.QualityMetricsCleared() {
		_spec.ClearField(evidence.FieldQualityMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.VerificationErrors(); ok {
		_spec.SetField(evidence.FieldVerificationErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVerificationErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evidence.FieldVerificationErrors, value)
		})
	}
	if _u.mutation.VerificationErrorsCleared() {
		_spec.ClearField(evidence.FieldVerificationErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(evidence.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(evidence.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.Framework(); ok {
		_spec.SetField(evidence.FieldFramework, field.TypeString, value)
	}
	if _u.mutation.FrameworkCleared() {
		_spec.ClearField(evidence.FieldFramework, field.TypeString)
	}
	_node = &Evidence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
