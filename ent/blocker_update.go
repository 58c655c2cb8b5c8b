// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeframe-hq/codeframe/ent/blocker"
	"github.com/codeframe-hq/codeframe/ent/predicate"
)

// BlockerUpdate is the builder for updating Blocker entities.
type BlockerUpdate struct {
	config
	hooks    []Hook
	mutation *BlockerMutation
}

// Where appends a list predicates to the BlockerUpdate builder.
func (_u *BlockerUpdate) Where(ps ...predicate.Blocker) *BlockerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBlockerType sets the "blocker_type" field.
func (_u *BlockerUpdate) SetBlockerType(v blocker.BlockerType) *BlockerUpdate {
	_u.mutation.SetBlockerType(v)
	return _u
}

// SetNillableBlockerType sets the "blocker_type" field if the given value is not nil.
func (_u *BlockerUpdate) SetNillableBlockerType(v *blocker.BlockerType) *BlockerUpdate {
	if v != nil {
		_u.SetBlockerType(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *BlockerUpdate) SetQuestion(v string) *BlockerUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *BlockerUpdate) SetNillableQuestion(v *string) *BlockerUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *BlockerUpdate) SetAnswer(v string) *BlockerUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *BlockerUpdate) SetNillableAnswer(v *string) *BlockerUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *BlockerUpdate) ClearAnswer() *BlockerUpdate {
	_u.mutation.ClearAnswer()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BlockerUpdate) SetStatus(v blocker.Status) *BlockerUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BlockerUpdate) SetNillableStatus(v *blocker.Status) *BlockerUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *BlockerUpdate) SetResolvedAt(v time.Time) *BlockerUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *BlockerUpdate) SetNillableResolvedAt(v *time.Time) *BlockerUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *BlockerUpdate) ClearResolvedAt() *BlockerUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the BlockerMutation object of the builder.
func (_u *BlockerUpdate) Mutation() *BlockerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BlockerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlockerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BlockerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlockerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlockerUpdate) check() error {
	if v, ok := _u.mutation.BlockerType(); ok {
		if err := blocker.BlockerTypeValidator(v); err != nil {
			return &ValidationError{Name: "blocker_type", err: fmt.Errorf(`ent: validator failed for field "Blocker.blocker_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := blocker.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Blocker.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := blocker.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Blocker.answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := blocker.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Blocker.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BlockerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blocker.Table, blocker.Columns, sqlgraph.NewFieldSpec(blocker.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(blocker.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.BlockerType(); ok {
		_spec.SetField(blocker.FieldBlockerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(blocker.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(blocker.FieldAnswer, field.TypeString, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(blocker.FieldAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(blocker.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(blocker.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(blocker.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blocker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BlockerUpdateOne is the builder for updating a single Blocker entity.
type BlockerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BlockerMutation
}

// SetBlockerType sets the "blocker_type" field.
func (_u *BlockerUpdateOne) SetBlockerType(v blocker.BlockerType) *BlockerUpdateOne {
	_u.mutation.SetBlockerType(v)
	return _u
}

// SetNillableBlockerType sets the "blocker_type" field if the given value is not nil.
func (_u *BlockerUpdateOne) SetNillableBlockerType(v *blocker.BlockerType) *BlockerUpdateOne {
	if v != nil {
		_u.SetBlockerType(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *BlockerUpdateOne) SetQuestion(v string) *BlockerUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *BlockerUpdateOne) SetNillableQuestion(v *string) *BlockerUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *BlockerUpdateOne) SetAnswer(v string) *BlockerUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *BlockerUpdateOne) SetNillableAnswer(v *string) *BlockerUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *BlockerUpdateOne) ClearAnswer() *BlockerUpdateOne {
	_u.mutation.ClearAnswer()
	return _u
}

// SetStatus sets the "status" field.
func (_u *BlockerUpdateOne) SetStatus(v blocker.Status) *BlockerUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BlockerUpdateOne) SetNillableStatus(v *blocker.Status) *BlockerUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *BlockerUpdateOne) SetResolvedAt(v time.Time) *BlockerUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *BlockerUpdateOne) SetNillableResolvedAt(v *time.Time) *BlockerUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *BlockerUpdateOne) ClearResolvedAt() *BlockerUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the BlockerMutation object of the builder.
func (_u *BlockerUpdateOne) Mutation() *BlockerMutation {
	return _u.mutation
}

// Where appends a list predicates to the BlockerUpdate builder.
func (_u *BlockerUpdateOne) Where(ps ...predicate.Blocker) *BlockerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BlockerUpdateOne) Select(field string, fields ...string) *BlockerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Blocker entity.
func (_u *BlockerUpdateOne) Save(ctx context.Context) (*Blocker, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlockerUpdateOne) SaveX(ctx context.Context) *Blocker {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BlockerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlockerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlockerUpdateOne) check() error {
	if v, ok := _u.mutation.BlockerType(); ok {
		if err := blocker.BlockerTypeValidator(v); err != nil {
			return &ValidationError{Name: "blocker_type", err: fmt.Errorf(`ent: validator failed for field "Blocker.blocker_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := blocker.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Blocker.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := blocker.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Blocker.answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := blocker.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Blocker.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BlockerUpdateOne) sqlSave(ctx context.Context) (_node *Blocker, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blocker.Table, blocker.Columns, sqlgraph.NewFieldSpec(blocker.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Blocker.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blocker.FieldID)
		for _, f := range fields {
			if !blocker.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != blocker.FieldID {
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
		_spec.ClearField(blocker.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.BlockerType(); ok {
		_spec.SetField(blocker.FieldBlockerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(blocker.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(blocker.FieldAnswer, field.TypeString, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(blocker.FieldAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(blocker.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(blocker.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(blocker.FieldResolvedAt, field.TypeTime)
	}
	_node = &Blocker{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blocker.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
