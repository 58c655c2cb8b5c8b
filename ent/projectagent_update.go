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
	"github.com/codeframe-hq/codeframe/ent/projectagent"
)

// ProjectAgentUpdate is the builder for updating ProjectAgent entities.
type ProjectAgentUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectAgentMutation
}

// Where appends a list predicates to the ProjectAgentUpdate builder.
func (_u *ProjectAgentUpdate) Where(ps ...predicate.ProjectAgent) *ProjectAgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ProjectAgentUpdate) SetIsActive(v bool) *ProjectAgentUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ProjectAgentUpdate) SetNillableIsActive(v *bool) *ProjectAgentUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the ProjectAgentMutation object of the builder.
func (_u *ProjectAgentUpdate) Mutation() *ProjectAgentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectAgentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectAgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectAgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectAgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProjectAgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(projectagent.Table, projectagent.Columns, sqlgraph.NewFieldSpec(projectagent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(projectagent.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectagent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectAgentUpdateOne is the builder for updating a single ProjectAgent entity.
type ProjectAgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectAgentMutation
}

// SetIsActive sets the "is_active" field.
func (_u *ProjectAgentUpdateOne) SetIsActive(v bool) *ProjectAgentUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ProjectAgentUpdateOne) SetNillableIsActive(v *bool) *ProjectAgentUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the ProjectAgentMutation object of the builder.
func (_u *ProjectAgentUpdateOne) Mutation() *ProjectAgentMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProjectAgentUpdate builder.
func (_u *ProjectAgentUpdateOne) Where(ps ...predicate.ProjectAgent) *ProjectAgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectAgentUpdateOne) Select(field string, fields ...string) *ProjectAgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProjectAgent entity.
func (_u *ProjectAgentUpdateOne) Save(ctx context.Context) (*ProjectAgent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectAgentUpdateOne) SaveX(ctx context.Context) *ProjectAgent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectAgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectAgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProjectAgentUpdateOne) sqlSave(ctx context.Context) (_node *ProjectAgent, err error) {
	_spec := sqlgraph.NewUpdateSpec(projectagent.Table, projectagent.Columns, sqlgraph.NewFieldSpec(projectagent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProjectAgent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, projectagent.FieldID)
		for _, f := range fields {
			if !projectagent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != projectagent.FieldID {
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
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(projectagent.FieldIsActive, field.TypeBool, value)
	}
	_node = &ProjectAgent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{projectagent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
