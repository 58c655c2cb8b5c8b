// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeframe-hq/codeframe/ent/correctionattempt"
	"github.com/codeframe-hq/codeframe/ent/task"
)

// CorrectionAttemptCreate is the builder for creating a CorrectionAttempt entity.
type CorrectionAttemptCreate struct {
	config
	mutation *CorrectionAttemptMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *CorrectionAttemptCreate) SetTaskID(v string) *CorrectionAttemptCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetAttemptNumber sets the "attempt_number" field.
func (_c *CorrectionAttemptCreate) SetAttemptNumber(v int) *CorrectionAttemptCreate {
	_c.mutation.SetAttemptNumber(v)
	return _c
}

// SetErrorAnalysis sets the "error_analysis" field.
func (_c *CorrectionAttemptCreate) SetErrorAnalysis(v string) *CorrectionAttemptCreate {
	_c.mutation.SetErrorAnalysis(v)
	return _c
}

// SetFixDescription sets the "fix_description" field.
func (_c *CorrectionAttemptCreate) SetFixDescription(v string) *CorrectionAttemptCreate {
	_c.mutation.SetFixDescription(v)
	return _c
}

// SetCodeChanges sets the "code_changes" field.
func (_c *CorrectionAttemptCreate) SetCodeChanges(v string) *CorrectionAttemptCreate {
	_c.mutation.SetCodeChanges(v)
	return _c
}

// SetNillableCodeChanges sets the "code_changes" field if the given value is not nil.
func (_c *CorrectionAttemptCreate) SetNillableCodeChanges(v *string) *CorrectionAttemptCreate {
	if v != nil {
		_c.SetCodeChanges(*v)
	}
	return _c
}

// SetTestResultID sets the "test_result_id" field.
func (_c *CorrectionAttemptCreate) SetTestResultID(v string) *CorrectionAttemptCreate {
	_c.mutation.SetTestResultID(v)
	return _c
}

// SetNillableTestResultID sets the "test_result_id" field if the given value is not nil.
func (_c *CorrectionAttemptCreate) SetNillableTestResultID(v *string) *CorrectionAttemptCreate {
	if v != nil {
		_c.SetTestResultID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CorrectionAttemptCreate) SetCreatedAt(v time.Time) *CorrectionAttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CorrectionAttemptCreate) SetNillableCreatedAt(v *time.Time) *CorrectionAttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CorrectionAttemptCreate) SetID(v string) *CorrectionAttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *CorrectionAttemptCreate) SetTask(v *Task) *CorrectionAttemptCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the CorrectionAttemptMutation object of the builder.
func (_c *CorrectionAttemptCreate) Mutation() *CorrectionAttemptMutation {
	return _c.mutation
}

// Save creates the CorrectionAttempt in the database.
func (_c *CorrectionAttemptCreate) Save(ctx context.Context) (*CorrectionAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CorrectionAttemptCreate) SaveX(ctx context.Context) *CorrectionAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CorrectionAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CorrectionAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CorrectionAttemptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := correctionattempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CorrectionAttemptCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "CorrectionAttempt.task_id"`)}
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		return &ValidationError{Name: "attempt_number", err: errors.New(`ent: missing required field "CorrectionAttempt.attempt_number"`)}
	}
	if v, ok := _c.mutation.AttemptNumber(); ok {
		if err := correctionattempt.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "CorrectionAttempt.attempt_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ErrorAnalysis(); !ok {
		return &ValidationError{Name: "error_analysis", err: errors.New(`ent: missing required field "CorrectionAttempt.error_analysis"`)}
	}
	if _, ok := _c.mutation.FixDescription(); !ok {
		return &ValidationError{Name: "fix_description", err: errors.New(`ent: missing required field "CorrectionAttempt.fix_description"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CorrectionAttempt.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "CorrectionAttempt.task"`)}
	}
	return nil
}

func (_c *CorrectionAttemptCreate) sqlSave(ctx context.Context) (*CorrectionAttempt, error) {
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
			return nil, fmt.Errorf("unexpected CorrectionAttempt.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CorrectionAttemptCreate) createSpec() (*CorrectionAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &CorrectionAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(correctionattempt.Table, sqlgraph.NewFieldSpec(correctionattempt.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AttemptNumber(); ok {
		_spec.SetField(correctionattempt.FieldAttemptNumber, field.TypeInt, value)
		_node.AttemptNumber = value
	}
	if value, ok := _c.mutation.ErrorAnalysis(); ok {
		_spec.SetField(correctionattempt.FieldErrorAnalysis, field.TypeString, value)
		_node.ErrorAnalysis = value
	}
	if value, ok := _c.mutation.FixDescription(); ok {
		_spec.SetField(correctionattempt.FieldFixDescription, field.TypeString, value)
		_node.FixDescription = value
	}
	if value, ok := _c.mutation.CodeChanges(); ok {
		_spec.SetField(correctionattempt.FieldCodeChanges, field.TypeString, value)
		_node.CodeChanges = value
	}
	if value, ok := _c.mutation.TestResultID(); ok {
		_spec.SetField(correctionattempt.FieldTestResultID, field.TypeString, value)
		_node.TestResultID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(correctionattempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   correctionattempt.TaskTable,
			Columns: []string{correctionattempt.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CorrectionAttemptCreateBulk is the builder for creating many CorrectionAttempt entities in bulk.
type CorrectionAttemptCreateBulk struct {
	config
	err      error
	builders []*CorrectionAttemptCreate
}

// Save creates the CorrectionAttempt entities in the database.
func (_c *CorrectionAttemptCreateBulk) Save(ctx context.Context) ([]*CorrectionAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CorrectionAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CorrectionAttemptMutation)
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
func (_c *CorrectionAttemptCreateBulk) SaveX(ctx context.Context) []*CorrectionAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CorrectionAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CorrectionAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
