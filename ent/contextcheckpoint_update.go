// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeframe-hq/codeframe/ent/contextcheckpoint"
	"github.com/codeframe-hq/codeframe/ent/predicate"
)

// ContextCheckpointUpdate is the builder for updating ContextCheckpoint entities.
type ContextCheckpointUpdate struct {
	config
	hooks    []Hook
	mutation *ContextCheckpointMutation
}

// Where appends a list predicates to the ContextCheckpointUpdate builder.
func (_u *ContextCheckpointUpdate) Where(ps ...predicate.ContextCheckpoint) *ContextCheckpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ContextCheckpointMutation object of the builder.
func (_u *ContextCheckpointUpdate) Mutation() *ContextCheckpointMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContextCheckpointUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContextCheckpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContextCheckpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContextCheckpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ContextCheckpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(contextcheckpoint.Table, contextcheckpoint.Columns, sqlgraph.NewFieldSpec(contextcheckpoint.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contextcheckpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContextCheckpointUpdateOne is the builder for updating a single ContextCheckpoint entity.
type ContextCheckpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContextCheckpointMutation
}

// Mutation returns the ContextCheckpointMutation object of the builder.
func (_u *ContextCheckpointUpdateOne) Mutation() *ContextCheckpointMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContextCheckpointUpdate builder.
func (_u *ContextCheckpointUpdateOne) Where(ps ...predicate.ContextCheckpoint) *ContextCheckpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContextCheckpointUpdateOne) Select(field string, fields ...string) *ContextCheckpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContextCheckpoint entity.
func (_u *ContextCheckpointUpdateOne) Save(ctx context.Context) (*ContextCheckpoint, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContextCheckpointUpdateOne) SaveX(ctx context.Context) *ContextCheckpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContextCheckpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContextCheckpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ContextCheckpointUpdateOne) sqlSave(ctx context.Context) (_node *ContextCheckpoint, err error) {
	_spec := sqlgraph.NewUpdateSpec(contextcheckpoint.Table, contextcheckpoint.Columns, sqlgraph.NewFieldSpec(contextcheckpoint.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContextCheckpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contextcheckpoint.FieldID)
		for _, f := range fields {
			if !contextcheckpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contextcheckpoint.FieldID {
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
	_node = &ContextCheckpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contextcheckpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
