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
	"github.com/codeframe-hq/codeframe/ent/contextitem"
	"github.com/codeframe-hq/codeframe/ent/predicate"
)

// ContextItemUpdate is the builder for updating ContextItem entities.
type ContextItemUpdate struct {
	config
	hooks    []Hook
	mutation *ContextItemMutation
}

// Where appends a list predicates to the ContextItemUpdate builder.
func (_u *ContextItemUpdate) Where(ps ...predicate.ContextItem) *ContextItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *ContextItemUpdate) SetItemType(v contextitem.ItemType) *ContextItemUpdate {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *ContextItemUpdate) SetNillableItemType(v *contextitem.ItemType) *ContextItemUpdate {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ContextItemUpdate) SetContent(v string) *ContextItemUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ContextItemUpdate) SetNillableContent(v *string) *ContextItemUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetImportanceScore sets the "importance_score" field.
func (_u *ContextItemUpdate) SetImportanceScore(v float64) *ContextItemUpdate {
	_u.mutation.ResetImportanceScore()
	_u.mutation.SetImportanceScore(v)
	return _u
}

// SetNillableImportanceScore sets the "importance_score" field if the given value is not nil.
func (_u *ContextItemUpdate) SetNillableImportanceScore(v *float64) *ContextItemUpdate {
	if v != nil {
		_u.SetImportanceScore(*v)
	}
	return _u
}

// AddImportanceScore adds value to the "importance_score" field.
func (_u *ContextItemUpdate) AddImportanceScore(v float64) *ContextItemUpdate {
	_u.mutation.AddImportanceScore(v)
	return _u
}

// SetTier sets the "tier" field.
func (_u *ContextItemUpdate) SetTier(v contextitem.Tier) *ContextItemUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *ContextItemUpdate) SetNillableTier(v *contextitem.Tier) *ContextItemUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetAccessCount sets the "access_count" field.
func (_u *ContextItemUpdate) SetAccessCount(v int) *ContextItemUpdate {
	_u.mutation.ResetAccessCount()
	_u.mutation.SetAccessCount(v)
	return _u
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_u *ContextItemUpdate) SetNillableAccessCount(v *int) *ContextItemUpdate {
	if v != nil {
		_u.SetAccessCount(*v)
	}
	return _u
}

// AddAccessCount adds value to the "access_count" field.
func (_u *ContextItemUpdate) AddAccessCount(v int) *ContextItemUpdate {
	_u.mutation.AddAccessCount(v)
	return _u
}

// SetLastAccessed sets the "last_accessed" field.
func (_u *ContextItemUpdate) SetLastAccessed(v time.Time) *ContextItemUpdate {
	_u.mutation.SetLastAccessed(v)
	return _u
}

// SetNillableLastAccessed sets the "last_accessed" field if the given value is not nil.
func (_u *ContextItemUpdate) SetNillableLastAccessed(v *time.Time) *ContextItemUpdate {
	if v != nil {
		_u.SetLastAccessed(*v)
	}
	return _u
}

// Mutation returns the ContextItemMutation object of the builder.
func (_u *ContextItemUpdate) Mutation() *ContextItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContextItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContextItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContextItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContextItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContextItemUpdate) check() error {
	if v, ok := _u.mutation.ItemType(); ok {
		if err := contextitem.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "ContextItem.item_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := contextitem.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "ContextItem.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccessCount(); ok {
		if err := contextitem.AccessCountValidator(v); err != nil {
			return &ValidationError{Name: "access_count", err: fmt.Errorf(`ent: validator failed for field "ContextItem.access_count": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ContextItem.project"`)
	}
	return nil
}

func (_u *ContextItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contextitem.Table, contextitem.Columns, sqlgraph.NewFieldSpec(contextitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(contextitem.FieldItemType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(contextitem.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImportanceScore(); ok {
		_spec.SetField(contextitem.FieldImportanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImportanceScore(); ok {
		_spec.AddField(contextitem.FieldImportanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(contextitem.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AccessCount(); ok {
		_spec.SetField(contextitem.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccessCount(); ok {
		_spec.AddField(contextitem.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAccessed(); ok {
		_spec.SetField(contextitem.FieldLastAccessed, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contextitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContextItemUpdateOne is the builder for updating a single ContextItem entity.
type ContextItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContextItemMutation
}

// SetItemType sets the "item_type" field.
func (_u *ContextItemUpdateOne) SetItemType(v contextitem.ItemType) *ContextItemUpdateOne {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *ContextItemUpdateOne) SetNillableItemType(v *contextitem.ItemType) *ContextItemUpdateOne {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ContextItemUpdateOne) SetContent(v string) *ContextItemUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ContextItemUpdateOne) SetNillableContent(v *string) *ContextItemUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetImportanceScore sets the "importance_score" field.
func (_u *ContextItemUpdateOne) SetImportanceScore(v float64) *ContextItemUpdateOne {
	_u.mutation.ResetImportanceScore()
	_u.mutation.SetImportanceScore(v)
	return _u
}

// SetNillableImportanceScore sets the "importance_score" field if the given value is not nil.
func (_u *ContextItemUpdateOne) SetNillableImportanceScore(v *float64) *ContextItemUpdateOne {
	if v != nil {
		_u.SetImportanceScore(*v)
	}
	return _u
}

// AddImportanceScore adds value to the "importance_score" field.
func (_u *ContextItemUpdateOne) AddImportanceScore(v float64) *ContextItemUpdateOne {
	_u.mutation.AddImportanceScore(v)
	return _u
}

// SetTier sets the "tier" field.
func (_u *ContextItemUpdateOne) SetTier(v contextitem.Tier) *ContextItemUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *ContextItemUpdateOne) SetNillableTier(v *contextitem.Tier) *ContextItemUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetAccessCount sets the "access_count" field.
func (_u *ContextItemUpdateOne) SetAccessCount(v int) *ContextItemUpdateOne {
	_u.mutation.ResetAccessCount()
	_u.mutation.SetAccessCount(v)
	return _u
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_u *ContextItemUpdateOne) SetNillableAccessCount(v *int) *ContextItemUpdateOne {
	if v != nil {
		_u.SetAccessCount(*v)
	}
	return _u
}

// AddAccessCount adds value to the "access_count" field.
func (_u *ContextItemUpdateOne) AddAccessCount(v int) *ContextItemUpdateOne {
	_u.mutation.AddAccessCount(v)
	return _u
}

// SetLastAccessed sets the "last_accessed" field.
func (_u *ContextItemUpdateOne) SetLastAccessed(v time.Time) *ContextItemUpdateOne {
	_u.mutation.SetLastAccessed(v)
	return _u
}

// SetNillableLastAccessed sets the "last_accessed" field if the given value is not nil.
func (_u *ContextItemUpdateOne) SetNillableLastAccessed(v *time.Time) *ContextItemUpdateOne {
	if v != nil {
		_u.SetLastAccessed(*v)
	}
	return _u
}

// Mutation returns the ContextItemMutation object of the builder.
func (_u *ContextItemUpdateOne) Mutation() *ContextItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContextItemUpdate builder.
func (_u *ContextItemUpdateOne) Where(ps ...predicate.ContextItem) *ContextItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContextItemUpdateOne) Select(field string, fields ...string) *ContextItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContextItem entity.
func (_u *ContextItemUpdateOne) Save(ctx context.Context) (*ContextItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContextItemUpdateOne) SaveX(ctx context.Context) *ContextItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContextItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContextItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContextItemUpdateOne) check() error {
	if v, ok := _u.mutation.ItemType(); ok {
		if err := contextitem.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "ContextItem.item_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := contextitem.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "ContextItem.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccessCount(); ok {
		if err := contextitem.AccessCountValidator(v); err != nil {
			return &ValidationError{Name: "access_count", err: fmt.Errorf(`ent: validator failed for field "ContextItem.access_count": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ContextItem.project"`)
	}
	return nil
}

func (_u *ContextItemUpdateOne) sqlSave(ctx context.Context) (_node *ContextItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contextitem.Table, contextitem.Columns, sqlgraph.NewFieldSpec(contextitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContextItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contextitem.FieldID)
		for _, f := range fields {
			if !contextitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contextitem.FieldID {
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
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(contextitem.FieldItemType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(contextitem.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImportanceScore(); ok {
		_spec.SetField(contextitem.FieldImportanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImportanceScore(); ok {
		_spec.AddField(contextitem.FieldImportanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(contextitem.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AccessCount(); ok {
		_spec.SetField(contextitem.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccessCount(); ok {
		_spec.AddField(contextitem.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAccessed(); ok {
		_spec.SetField(contextitem.FieldLastAccessed, field.TypeTime, value)
	}
	_node = &ContextItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contextitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
