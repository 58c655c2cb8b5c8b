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
	"github.com/codeframe-hq/codeframe/ent/tokenusage"
)

// TokenUsageUpdate is the builder for updating TokenUsage entities.
type TokenUsageUpdate struct {
	config
	hooks    []Hook
	mutation *TokenUsageMutation
}

// Where appends a list predicates to the TokenUsageUpdate builder.
func (_u *TokenUsageUpdate) Where(ps ...predicate.TokenUsage) *TokenUsageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *TokenUsageUpdate) SetInputTokens(v int) *TokenUsageUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableInputTokens(v *int) *TokenUsageUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *TokenUsageUpdate) AddInputTokens(v int) *TokenUsageUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *TokenUsageUpdate) SetOutputTokens(v int) *TokenUsageUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableOutputTokens(v *int) *TokenUsageUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *TokenUsageUpdate) AddOutputTokens(v int) *TokenUsageUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (_u *TokenUsageUpdate) SetEstimatedCostUsd(v float64) *TokenUsageUpdate {
	_u.mutation.ResetEstimatedCostUsd()
	_u.mutation.SetEstimatedCostUsd(v)
	return _u
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableEstimatedCostUsd(v *float64) *TokenUsageUpdate {
	if v != nil {
		_u.SetEstimatedCostUsd(*v)
	}
	return _u
}

// AddEstimatedCostUsd adds value to the "estimated_cost_usd" field.
func (_u *TokenUsageUpdate) AddEstimatedCostUsd(v float64) *TokenUsageUpdate {
	_u.mutation.AddEstimatedCostUsd(v)
	return _u
}

// SetCallType sets the "call_type" field.
func (_u *TokenUsageUpdate) SetCallType(v tokenusage.CallType) *TokenUsageUpdate {
	_u.mutation.SetCallType(v)
	return _u
}

// SetNillableCallType sets the "call_type" field if the given value is not nil.
func (_u *TokenUsageUpdate) SetNillableCallType(v *tokenusage.CallType) *TokenUsageUpdate {
	if v != nil {
		_u.SetCallType(*v)
	}
	return _u
}

// Mutation returns the TokenUsageMutation object of the builder.
func (_u *TokenUsageUpdate) Mutation() *TokenUsageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TokenUsageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenUsageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TokenUsageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenUsageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenUsageUpdate) check() error {
	if v, ok := _u.mutation.InputTokens(); ok {
		if err := tokenusage.InputTokensValidator(v); err != nil {
			return &ValidationError{Name: "input_tokens", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.input_tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OutputTokens(); ok {
		if err := tokenusage.OutputTokensValidator(v); err != nil {
			return &ValidationError{Name: "output_tokens", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.output_tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CallType(); ok {
		if err := tokenusage.CallTypeValidator(v); err != nil {
			return &ValidationError{Name: "call_type", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.call_type": %w`, err)}
		}
	}
	return nil
}

func (_u *TokenUsageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokenusage.Table, tokenusage.Columns, sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(tokenusage.FieldTaskID, field.TypeString)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(tokenusage.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(tokenusage.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(tokenusage.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(tokenusage.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(tokenusage.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(tokenusage.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCostUsd(); ok {
		_spec.AddField(tokenusage.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CallType(); ok {
		_spec.SetField(tokenusage.FieldCallType, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TokenUsageUpdateOne is the builder for updating a single TokenUsage entity.
type TokenUsageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TokenUsageMutation
}

// SetInputTokens sets the "input_tokens" field.
func (_u *TokenUsageUpdateOne) SetInputTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableInputTokens(v *int) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *TokenUsageUpdateOne) AddInputTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *TokenUsageUpdateOne) SetOutputTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableOutputTokens(v *int) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *TokenUsageUpdateOne) AddOutputTokens(v int) *TokenUsageUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (_u *TokenUsageUpdateOne) SetEstimatedCostUsd(v float64) *TokenUsageUpdateOne {
	_u.mutation.ResetEstimatedCostUsd()
	_u.mutation.SetEstimatedCostUsd(v)
	return _u
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableEstimatedCostUsd(v *float64) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetEstimatedCostUsd(*v)
	}
	return _u
}

// AddEstimatedCostUsd adds value to the "estimated_cost_usd" field.
func (_u *TokenUsageUpdateOne) AddEstimatedCostUsd(v float64) *TokenUsageUpdateOne {
	_u.mutation.AddEstimatedCostUsd(v)
	return _u
}

// SetCallType sets the "call_type" field.
func (_u *TokenUsageUpdateOne) SetCallType(v tokenusage.CallType) *TokenUsageUpdateOne {
	_u.mutation.SetCallType(v)
	return _u
}

// SetNillableCallType sets the "call_type" field if the given value is not nil.
func (_u *TokenUsageUpdateOne) SetNillableCallType(v *tokenusage.CallType) *TokenUsageUpdateOne {
	if v != nil {
		_u.SetCallType(*v)
	}
	return _u
}

// Mutation returns the TokenUsageMutation object of the builder.
func (_u *TokenUsageUpdateOne) Mutation() *TokenUsageMutation {
	return _u.mutation
}

// Where appends a list predicates to the TokenUsageUpdate builder.
func (_u *TokenUsageUpdateOne) Where(ps ...predicate.TokenUsage) *TokenUsageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TokenUsageUpdateOne) Select(field string, fields ...string) *TokenUsageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TokenUsage entity.
func (_u *TokenUsageUpdateOne) Save(ctx context.Context) (*TokenUsage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenUsageUpdateOne) SaveX(ctx context.Context) *TokenUsage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TokenUsageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenUsageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenUsageUpdateOne) check() error {
	if v, ok := _u.mutation.InputTokens(); ok {
		if err := tokenusage.InputTokensValidator(v); err != nil {
			return &ValidationError{Name: "input_tokens", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.input_tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OutputTokens(); ok {
		if err := tokenusage.OutputTokensValidator(v); err != nil {
			return &ValidationError{Name: "output_tokens", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.output_tokens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CallType(); ok {
		if err := tokenusage.CallTypeValidator(v); err != nil {
			return &ValidationError{Name: "call_type", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.call_type": %w`, err)}
		}
	}
	return nil
}

func (_u *TokenUsageUpdateOne) sqlSave(ctx context.Context) (_node *TokenUsage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokenusage.Table, tokenusage.Columns, sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TokenUsage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tokenusage.FieldID)
		for _, f := range fields {
			if !tokenusage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tokenusage.FieldID {
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
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(tokenusage.FieldTaskID, field.TypeString)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(tokenusage.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(tokenusage.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(tokenusage.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(tokenusage.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(tokenusage.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(tokenusage.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCostUsd(); ok {
		_spec.AddField(tokenusage.FieldEstimatedCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CallType(); ok {
		_spec.SetField(tokenusage.FieldCallType, field.TypeEnum, value)
	}
	_node = &TokenUsage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
