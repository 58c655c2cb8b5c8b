// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeframe-hq/codeframe/ent/task"
	"github.com/codeframe-hq/codeframe/ent/testresult"
)

// TestResultCreate is the builder for creating a TestResult entity.
type TestResultCreate struct {
	config
	mutation *TestResultMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *TestResultCreate) SetTaskID(v string) *TestResultCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TestResultCreate) SetStatus(v testresult.Status) *TestResultCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *TestResultCreate) SetPassed(v int) *TestResultCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_c *TestResultCreate) SetNillablePassed(v *int) *TestResultCreate {
	if v != nil {
		_c.SetPassed(*v)
	}
	return _c
}

// SetFailed sets the "failed" field.
func (_c *TestResultCreate) SetFailed(v int) *TestResultCreate {
	_c.mutation.SetFailed(v)
	return _c
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_c *TestResultCreate) SetNillableFailed(v *int) *TestResultCreate {
	if v != nil {
		_c.SetFailed(*v)
	}
	return _c
}

// SetErrors sets the "errors" field.
func (_c *TestResultCreate) SetErrors(v int) *TestResultCreate {
	_c.mutation.SetErrors(v)
	return _c
}

// SetNillableErrors sets the "errors" field if the given value is not nil.
func (_c *TestResultCreate) SetNillableErrors(v *int) *TestResultCreate {
	if v != nil {
		_c.SetErrors(*v)
	}
	return _c
}

// SetSkipped sets the "skipped" field.
func (_c *TestResultCreate) SetSkipped(v int) *TestResultCreate {
	_c.mutation.SetSkipped(v)
	return _c
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_c *TestResultCreate) SetNillableSkipped(v *int) *TestResultCreate {
	if v != nil {
		_c.SetSkipped(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *TestResultCreate) SetDurationSeconds(v float64) *TestResultCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *TestResultCreate) SetNillableDurationSeconds(v *float64) *TestResultCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetOutput sets the "output" field.
func (_c *TestResultCreate) SetOutput(v string) *TestResultCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_c *TestResultCreate) SetNillableOutput(v *string) *TestResultCreate {
	if v != nil {
		_c.SetOutput(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TestResultCreate) SetCreatedAt(v time.Time) *TestResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TestResultCreate) SetNillableCreatedAt(v *time.Time) *TestResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TestResultCreate) SetID(v string) *TestResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *TestResultCreate) SetTask(v *Task) *TestResultCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the TestResultMutation object of the builder.
func (_c *TestResultCreate) Mutation() *TestResultMutation {
	return _c.mutation
}

// Save creates the TestResult in the database.
func (_c *TestResultCreate) Save(ctx context.Context) (*TestResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestResultCreate) SaveX(ctx context.Context) *TestResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestResultCreate) defaults() {
	if _, ok := _c.mutation.Passed(); !ok {
		v := testresult.DefaultPassed
		_c.mutation.SetPassed(v)
	}
	if _, ok := _c.mutation.Failed(); !ok {
		v := testresult.DefaultFailed
		_c.mutation.SetFailed(v)
	}
	if _, ok := _c.mutation.Errors(); !ok {
		v := testresult.DefaultErrors
		_c.mutation.SetErrors(v)
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		v := testresult.DefaultSkipped
		_c.mutation.SetSkipped(v)
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		v := testresult.DefaultDurationSeconds
		_c.mutation.SetDurationSeconds(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := testresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestResultCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TestResult.task_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TestResult.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := testresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TestResult.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "TestResult.passed"`)}
	}
	if v, ok := _c.mutation.Passed(); ok {
		if err := testresult.PassedValidator(v); err != nil {
			return &ValidationError{Name: "passed", err: fmt.Errorf(`ent: validator failed for field "TestResult.passed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Failed(); !ok {
		return &ValidationError{Name: "failed", err: errors.New(`ent: missing required field "TestResult.failed"`)}
	}
	if v, ok := _c.mutation.Failed(); ok {
		if err := testresult.FailedValidator(v); err != nil {
			return &ValidationError{Name: "failed", err: fmt.Errorf(`ent: validator failed for field "TestResult.failed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Errors(); !ok {
		return &ValidationError{Name: "errors", err: errors.New(`ent: missing required field "TestResult.errors"`)}
	}
	if v, ok := _c.mutation.Errors(); ok {
		if err := testresult.ErrorsValidator(v); err != nil {
			return &ValidationError{Name: "errors", err: fmt.Errorf(`ent: validator failed for field "TestResult.errors": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		return &ValidationError{Name: "skipped", err: errors.New(`ent: missing required field "TestResult.skipped"`)}
	}
	if v, ok := _c.mutation.Skipped(); ok {
		if err := testresult.SkippedValidator(v); err != nil {
			return &ValidationError{Name: "skipped", err: fmt.Errorf(`ent: validator failed for field "TestResult.skipped": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		return &ValidationError{Name: "duration_seconds", err: errors.New(`ent: missing required field "TestResult.duration_seconds"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TestResult.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "TestResult.task"`)}
	}
	return nil
}

func (_c *TestResultCreate) sqlSave(ctx context.Context) (*TestResult, error) {
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
			return nil, fmt.Errorf("unexpected TestResult.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TestResultCreate) createSpec() (*TestResult, *sqlgraph.CreateSpec) {
	var (
		_node = &TestResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testresult.Table, sqlgraph.NewFieldSpec(testresult.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(testresult.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(testresult.FieldPassed, field.TypeInt, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.Failed(); ok {
		_spec.SetField(testresult.FieldFailed, field.TypeInt, value)
		_node.Failed = value
	}
	if value, ok := _c.mutation.Errors(); ok {
		_spec.SetField(testresult.FieldErrors, field.TypeInt, value)
		_node.Errors = value
	}
	if value, ok := _c.mutation.Skipped(); ok {
		_spec.SetField(testresult.FieldSkipped, field.TypeInt, value)
		_node.Skipped = value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(testresult.FieldDurationSeconds, field.TypeFloat64, value)
		_node.DurationSeconds = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(testresult.FieldOutput, field.TypeString, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(testresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   testresult.TaskTable,
			Columns: []string{testresult.TaskColumn},
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

// TestResultCreateBulk is the builder for creating many TestResult entities in bulk.
type TestResultCreateBulk struct {
	config
	err      error
	builders []*TestResultCreate
}

// Save creates the TestResult entities in the database.
func (_c *TestResultCreateBulk) Save(ctx context.Context) ([]*TestResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestResultMutation)
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
func (_c *TestResultCreateBulk) SaveX(ctx context.Context) []*TestResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
