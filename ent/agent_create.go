// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeframe-hq/codeframe/ent/agent"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
}

// SetAgentType sets the "agent_type" field.
func (_c *AgentCreate) SetAgentType(v agent.AgentType) *AgentCreate {
	_c.mutation.SetAgentType(v)
	return _c
}

// SetMaturity sets the "maturity" field.
func (_c *AgentCreate) SetMaturity(v agent.Maturity) *AgentCreate {
	_c.mutation.SetMaturity(v)
	return _c
}

// SetNillableMaturity sets the "maturity" field if the given value is not nil.
func (_c *AgentCreate) SetNillableMaturity(v *agent.Maturity) *AgentCreate {
	if v != nil {
		_c.SetMaturity(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentCreate) SetStatus(v agent.Status) *AgentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentCreate) SetNillableStatus(v *agent.Status) *AgentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMetrics sets the "metrics" field.
func (_c *AgentCreate) SetMetrics(v string) *AgentCreate {
	_c.mutation.SetMetrics(v)
	return _c
}

// SetNillableMetrics sets the "metrics" field if the given value is not nil.
func (_c *AgentCreate) SetNillableMetrics(v *string) *AgentCreate {
	if v != nil {
		_c.SetMetrics(*v)
	}
	return _c
}

// SetMaturityScore sets the "maturity_score" field.
func (_c *AgentCreate) SetMaturityScore(v float64) *AgentCreate {
	_c.mutation.SetMaturityScore(v)
	return _c
}

// SetNillableMaturityScore sets the "maturity_score" field if the given value is not nil.
func (_c *AgentCreate) SetNillableMaturityScore(v *float64) *AgentCreate {
	if v != nil {
		_c.SetMaturityScore(*v)
	}
	return _c
}

// SetCompletedCount sets the "completed_count" field.
func (_c *AgentCreate) SetCompletedCount(v int) *AgentCreate {
	_c.mutation.SetCompletedCount(v)
	return _c
}

// SetNillableCompletedCount sets the "completed_count" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCompletedCount(v *int) *AgentCreate {
	if v != nil {
		_c.SetCompletedCount(*v)
	}
	return _c
}

// SetLastAssessedAt sets the "last_assessed_at" field.
func (_c *AgentCreate) SetLastAssessedAt(v time.Time) *AgentCreate {
	_c.mutation.SetLastAssessedAt(v)
	return _c
}

// SetNillableLastAssessedAt sets the "last_assessed_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableLastAssessedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetLastAssessedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentCreate) SetCreatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCreatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentCreate) SetID(v string) *AgentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.Maturity(); !ok {
		v := agent.DefaultMaturity
		_c.mutation.SetMaturity(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := agent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.MaturityScore(); !ok {
		v := agent.DefaultMaturityScore
		_c.mutation.SetMaturityScore(v)
	}
	if _, ok := _c.mutation.CompletedCount(); !ok {
		v := agent.DefaultCompletedCount
		_c.mutation.SetCompletedCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.AgentType(); !ok {
		return &ValidationError{Name: "agent_type", err: errors.New(`ent: missing required field "Agent.agent_type"`)}
	}
	if v, ok := _c.mutation.AgentType(); ok {
		if err := agent.AgentTypeValidator(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "Agent.agent_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Maturity(); !ok {
		return &ValidationError{Name: "maturity", err: errors.New(`ent: missing required field "Agent.maturity"`)}
	}
	if v, ok := _c.mutation.Maturity(); ok {
		if err := agent.MaturityValidator(v); err != nil {
			return &ValidationError{Name: "maturity", err: fmt.Errorf(`ent: validator failed for field "Agent.maturity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Agent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedCount(); !ok {
		return &ValidationError{Name: "completed_count", err: errors.New(`ent: missing required field "Agent.completed_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Agent.created_at"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
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
			return nil, fmt.Errorf("unexpected Agent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentType(); ok {
		_spec.SetField(agent.FieldAgentType, field.TypeEnum, value)
		_node.AgentType = value
	}
	if value, ok := _c.mutation.Maturity(); ok {
		_spec.SetField(agent.FieldMaturity, field.TypeEnum, value)
		_node.Maturity = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Metrics(); ok {
		_spec.SetField(agent.FieldMetrics, field.TypeString, value)
		_node.Metrics = value
	}
	if value, ok := _c.mutation.MaturityScore(); ok {
		_spec.SetField(agent.FieldMaturityScore, field.TypeFloat64, value)
		_node.MaturityScore = value
	}
	if value, ok := _c.mutation.CompletedCount(); ok {
		_spec.SetField(agent.FieldCompletedCount, field.TypeInt, value)
		_node.CompletedCount = value
	}
	if value, ok := _c.mutation.LastAssessedAt(); ok {
		_spec.SetField(agent.FieldLastAssessedAt, field.TypeTime, value)
		_node.LastAssessedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
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
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
