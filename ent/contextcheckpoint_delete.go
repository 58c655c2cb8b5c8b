// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeframe-hq/codeframe/ent/contextcheckpoint"
	"github.com/codeframe-hq/codeframe/ent/predicate"
)

// ContextCheckpointDelete is the builder for deleting a ContextCheckpoint entity.
type ContextCheckpointDelete struct {
	config
	hooks    []Hook
	mutation *ContextCheckpointMutation
}

// Where appends a list predicates to the ContextCheckpointDelete builder.
func (_d *ContextCheckpointDelete) Where(ps ...predicate.ContextCheckpoint) *ContextCheckpointDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ContextCheckpointDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ContextCheckpointDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ContextCheckpointDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(contextcheckpoint.Table, sqlgraph.NewFieldSpec(contextcheckpoint.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ContextCheckpointDeleteOne is the builder for deleting a single ContextCheckpoint entity.
type ContextCheckpointDeleteOne struct {
	_d *ContextCheckpointDelete
}

// Where appends a list predicates to the ContextCheckpointDelete builder.
func (_d *ContextCheckpointDeleteOne) Where(ps ...predicate.ContextCheckpoint) *ContextCheckpointDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ContextCheckpointDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{contextcheckpoint.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ContextCheckpointDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
