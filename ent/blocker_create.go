// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeframe-hq/codeframe/ent/blocker"
)

// BlockerCreate is the builder for creating a Blocker entity.
type BlockerCreate struct {
	config
	mutation *BlockerMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *BlockerCreate) SetAgentID(v string) *BlockerCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *BlockerCreate) SetProjectID(v string) *BlockerCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *BlockerCreate) SetTaskID(v string) *BlockerCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *BlockerCreate) SetNillableTaskID(v *string) *BlockerCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetBlockerType sets the "blocker_type" field.
func (_c *BlockerCreate) SetBlockerType(v blocker.BlockerType) *BlockerCreate {
	_c.mutation.SetBlockerType(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *BlockerCreate) SetQuestion(v string) *BlockerCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *BlockerCreate) SetAnswer(v string) *BlockerCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_c *BlockerCreate) SetNillableAnswer(v *string) *BlockerCreate {
	if v != nil {
		_c.SetAnswer(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *BlockerCreate) SetStatus(v blocker.Status) *BlockerCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BlockerCreate) SetNillableStatus(v *blocker.Status) *BlockerCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BlockerCreate) SetCreatedAt(v time.Time) *BlockerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BlockerCreate) SetNillableCreatedAt(v *time.Time) *BlockerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *BlockerCreate) SetResolvedAt(v time.Time) *BlockerCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *BlockerCreate) SetNillableResolvedAt(v *time.Time) *BlockerCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BlockerCreate) SetID(v string) *BlockerCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BlockerMutation object of the builder.
func (_c *BlockerCreate) Mutation() *BlockerMutation {
	return _c.mutation
}

// Save creates the Blocker in the database.
func (_c *BlockerCreate) Save(ctx context.Context) (*Blocker, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlockerCreate) SaveX(ctx context.Context) *Blocker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlockerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlockerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlockerCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := blocker.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := blocker.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlockerCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "Blocker.agent_id"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Blocker.project_id"`)}
	}
	if _, ok := _c.mutation.BlockerType(); !ok {
		return &ValidationError{Name: "blocker_type", err: errors.New(`ent: missing required field "Blocker.blocker_type"`)}
	}
	if v, ok := _c.mutation.BlockerType(); ok {
		if err := blocker.BlockerTypeValidator(v); err != nil {
			return &ValidationError{Name: "blocker_type", err: fmt.Errorf(`ent: validator failed for field "Blocker.blocker_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "Blocker.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := blocker.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Blocker.question": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Answer(); ok {
		if err := blocker.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Blocker.answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Blocker.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := blocker.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Blocker.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Blocker.created_at"`)}
	}
	return nil
}

func (_c *BlockerCreate) sqlSave(ctx context.Context) (*Blocker, error) {
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
			return nil, fmt.Errorf("unexpected Blocker.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BlockerCreate) createSpec() (*Blocker, *sqlgraph.CreateSpec) {
	var (
		_node = &Blocker{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blocker.Table, sqlgraph.NewFieldSpec(blocker.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(blocker.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(blocker.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(blocker.FieldTaskID, field.TypeString, value)
		_node.TaskID = &value
	}
	if value, ok := _c.mutation.BlockerType(); ok {
		_spec.SetField(blocker.FieldBlockerType, field.TypeEnum, value)
		_node.BlockerType = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(blocker.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(blocker.FieldAnswer, field.TypeString, value)
		_node.Answer = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(blocker.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(blocker.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(blocker.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	return _node, _spec
}

// BlockerCreateBulk is the builder for creating many Blocker entities in bulk.
type BlockerCreateBulk struct {
	config
	err      error
	builders []*BlockerCreate
}

// Save creates the Blocker entities in the database.
func (_c *BlockerCreateBulk) Save(ctx context.Context) ([]*Blocker, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Blocker, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlockerMutation)
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
func (_c *BlockerCreateBulk) SaveX(ctx context.Context) []*Blocker {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlockerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlockerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
