// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeframe-hq/codeframe/ent/tokenusage"
)

// TokenUsageCreate is the builder for creating a TokenUsage entity.
type TokenUsageCreate struct {
	config
	mutation *TokenUsageMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *TokenUsageCreate) SetTaskID(v string) *TokenUsageCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableTaskID(v *string) *TokenUsageCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *TokenUsageCreate) SetAgentID(v string) *TokenUsageCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *TokenUsageCreate) SetProjectID(v string) *TokenUsageCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableProjectID(v *string) *TokenUsageCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *TokenUsageCreate) SetModel(v string) *TokenUsageCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *TokenUsageCreate) SetInputTokens(v int) *TokenUsageCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableInputTokens(v *int) *TokenUsageCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *TokenUsageCreate) SetOutputTokens(v int) *TokenUsageCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableOutputTokens(v *int) *TokenUsageCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetEstimatedCostUsd sets the "estimated_cost_usd" field.
func (_c *TokenUsageCreate) SetEstimatedCostUsd(v float64) *TokenUsageCreate {
	_c.mutation.SetEstimatedCostUsd(v)
	return _c
}

// SetNillableEstimatedCostUsd sets the "estimated_cost_usd" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableEstimatedCostUsd(v *float64) *TokenUsageCreate {
	if v != nil {
		_c.SetEstimatedCostUsd(*v)
	}
	return _c
}

// SetCallType sets the "call_type" field.
func (_c *TokenUsageCreate) SetCallType(v tokenusage.CallType) *TokenUsageCreate {
	_c.mutation.SetCallType(v)
	return _c
}

// SetNillableCallType sets the "call_type" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableCallType(v *tokenusage.CallType) *TokenUsageCreate {
	if v != nil {
		_c.SetCallType(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TokenUsageCreate) SetCreatedAt(v time.Time) *TokenUsageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TokenUsageCreate) SetNillableCreatedAt(v *time.Time) *TokenUsageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TokenUsageCreate) SetID(v string) *TokenUsageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TokenUsageMutation object of the builder.
func (_c *TokenUsageCreate) Mutation() *TokenUsageMutation {
	return _c.mutation
}

// Save creates the TokenUsage in the database.
func (_c *TokenUsageCreate) Save(ctx context.Context) (*TokenUsage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TokenUsageCreate) SaveX(ctx context.Context) *TokenUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenUsageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenUsageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TokenUsageCreate) defaults() {
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := tokenusage.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := tokenusage.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.EstimatedCostUsd(); !ok {
		v := tokenusage.DefaultEstimatedCostUsd
		_c.mutation.SetEstimatedCostUsd(v)
	}
	if _, ok := _c.mutation.CallType(); !ok {
		v := tokenusage.DefaultCallType
		_c.mutation.SetCallType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tokenusage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TokenUsageCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "TokenUsage.agent_id"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "TokenUsage.model"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "TokenUsage.input_tokens"`)}
	}
	if v, ok := _c.mutation.InputTokens(); ok {
		if err := tokenusage.InputTokensValidator(v); err != nil {
			return &ValidationError{Name: "input_tokens", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.input_tokens": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "TokenUsage.output_tokens"`)}
	}
	if v, ok := _c.mutation.OutputTokens(); ok {
		if err := tokenusage.OutputTokensValidator(v); err != nil {
			return &ValidationError{Name: "output_tokens", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.output_tokens": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EstimatedCostUsd(); !ok {
		return &ValidationError{Name: "estimated_cost_usd", err: errors.New(`ent: missing required field "TokenUsage.estimated_cost_usd"`)}
	}
	if _, ok := _c.mutation.CallType(); !ok {
		return &ValidationError{Name: "call_type", err: errors.New(`ent: missing required field "TokenUsage.call_type"`)}
	}
	if v, ok := _c.mutation.CallType(); ok {
		if err := tokenusage.CallTypeValidator(v); err != nil {
			return &ValidationError{Name: "call_type", err: fmt.Errorf(`ent: validator failed for field "TokenUsage.call_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TokenUsage.created_at"`)}
	}
	return nil
}

func (_c *TokenUsageCreate) sqlSave(ctx context.Context) (*TokenUsage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TokenUsage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TokenUsageCreate) createSpec() (*TokenUsage, *sqlgraph.CreateSpec) {
	var (
		_node = &TokenUsage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tokenusage.Table, sqlgraph.NewFieldSpec(tokenusage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(tokenusage.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(tokenusage.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(tokenusage.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(tokenusage.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(tokenusage.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(tokenusage.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.EstimatedCostUsd(); ok {
		_spec.SetField(tokenusage.FieldEstimatedCostUsd, field.TypeFloat64, value)
		_node.EstimatedCostUsd = value
	}
	if value, ok := _c.mutation.CallType(); ok {
		_spec.SetField(tokenusage.FieldCallType, field.TypeEnum, value)
		_node.CallType = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tokenusage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TokenUsageCreateBulk is the builder for creating many TokenUsage entities in bulk.
type TokenUsageCreateBulk struct {
	config
	err      error
	builders []*TokenUsageCreate
}

// Save creates the TokenUsage entities in the database.
func (_c *TokenUsageCreateBulk) Save(ctx context.Context) ([]*TokenUsage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TokenUsage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TokenUsageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TokenUsageCreateBulk) SaveX(ctx context.Context) []*TokenUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenUsageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenUsageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
