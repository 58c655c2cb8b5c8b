// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeframe-hq/codeframe/ent/correctionattempt"
	"github.com/codeframe-hq/codeframe/ent/predicate"
)

// CorrectionAttemptDelete is the builder for deleting a CorrectionAttempt entity.
type CorrectionAttemptDelete struct {
	config
	hooks    []Hook
	mutation *CorrectionAttemptMutation
}

// Where appends a list predicates to the CorrectionAttemptDelete builder.
func (_d *CorrectionAttemptDelete) Where(ps ...predicate.CorrectionAttempt) *CorrectionAttemptDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CorrectionAttemptDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CorrectionAttemptDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CorrectionAttemptDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(correctionattempt.Table, sqlgraph.NewFieldSpec(correctionattempt.FieldID, field.TypeString))
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

// CorrectionAttemptDeleteOne is the builder for deleting a single CorrectionAttempt entity.
type CorrectionAttemptDeleteOne struct {
	_d *CorrectionAttemptDelete
}

// Where appends a list predicates to the CorrectionAttemptDelete builder.
func (_d *CorrectionAttemptDeleteOne) Where(ps ...predicate.CorrectionAttempt) *CorrectionAttemptDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CorrectionAttemptDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{correctionattempt.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CorrectionAttemptDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
