// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeframe-hq/codeframe/ent/contextcheckpoint"
)

// ContextCheckpointCreate is the builder for creating a ContextCheckpoint entity.
type ContextCheckpointCreate struct {
	config
	mutation *ContextCheckpointMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *ContextCheckpointCreate) SetProjectID(v string) *ContextCheckpointCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *ContextCheckpointCreate) SetAgentID(v string) *ContextCheckpointCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetItems sets the "items" field.
func (_c *ContextCheckpointCreate) SetItems(v []map[string]interface{}) *ContextCheckpointCreate {
	_c.mutation.SetItems(v)
	return _c
}

// SetItemsCount sets the "items_count" field.
func (_c *ContextCheckpointCreate) SetItemsCount(v int) *ContextCheckpointCreate {
	_c.mutation.SetItemsCount(v)
	return _c
}

// SetItemsArchived sets the "items_archived" field.
func (_c *ContextCheckpointCreate) SetItemsArchived(v int) *ContextCheckpointCreate {
	_c.mutation.SetItemsArchived(v)
	return _c
}

// SetHotItemsRetained sets the "hot_items_retained" field.
func (_c *ContextCheckpointCreate) SetHotItemsRetained(v int) *ContextCheckpointCreate {
	_c.mutation.SetHotItemsRetained(v)
	return _c
}

// SetTokenCount sets the "token_count" field.
func (_c *ContextCheckpointCreate) SetTokenCount(v int) *ContextCheckpointCreate {
	_c.mutation.SetTokenCount(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContextCheckpointCreate) SetCreatedAt(v time.Time) *ContextCheckpointCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContextCheckpointCreate) SetNillableCreatedAt(v *time.Time) *ContextCheckpointCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContextCheckpointCreate) SetID(v string) *ContextCheckpointCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ContextCheckpointMutation object of the builder.
func (_c *ContextCheckpointCreate) Mutation() *ContextCheckpointMutation {
	return _c.mutation
}

// Save creates the ContextCheckpoint in the database.
func (_c *ContextCheckpointCreate) Save(ctx context.Context) (*ContextCheckpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContextCheckpointCreate) SaveX(ctx context.Context) *ContextCheckpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContextCheckpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContextCheckpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContextCheckpointCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contextcheckpoint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContextCheckpointCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "ContextCheckpoint.project_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "ContextCheckpoint.agent_id"`)}
	}
	if _, ok := _c.mutation.Items(); !ok {
		return &ValidationError{Name: "items", err: errors.New(`ent: missing required field "ContextCheckpoint.items"`)}
	}
	if _, ok := _c.mutation.ItemsCount(); !ok {
		return &ValidationError{Name: "items_count", err: errors.New(`ent: missing required field "ContextCheckpoint.items_count"`)}
	}
	if _, ok := _c.mutation.ItemsArchived(); !ok {
		return &ValidationError{Name: "items_archived", err: errors.New(`ent: missing required field "ContextCheckpoint.items_archived"`)}
	}
	if _, ok := _c.mutation.HotItemsRetained(); !ok {
		return &ValidationError{Name: "hot_items_retained", err: errors.New(`ent: missing required field "ContextCheckpoint.hot_items_retained"`)}
	}
	if _, ok := _c.mutation.TokenCount(); !ok {
		return &ValidationError{Name: "token_count", err: errors.New(`ent: missing required field "ContextCheckpoint.token_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContextCheckpoint.created_at"`)}
	}
	return nil
}

func (_c *ContextCheckpointCreate) sqlSave(ctx context.Context) (*ContextCheckpoint, error) {
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
			return nil, fmt.Errorf("unexpected ContextCheckpoint.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContextCheckpointCreate) createSpec() (*ContextCheckpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &ContextCheckpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contextcheckpoint.Table, sqlgraph.NewFieldSpec(contextcheckpoint.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(contextcheckpoint.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(contextcheckpoint.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.Items(); ok {
		_spec.SetField(contextcheckpoint.FieldItems, field.TypeJSON, value)
		_node.Items = value
	}
	if value, ok := _c.mutation.ItemsCount(); ok {
		_spec.SetField(contextcheckpoint.FieldItemsCount, field.TypeInt, value)
		_node.ItemsCount = value
	}
	if value, ok := _c.mutation.ItemsArchived(); ok {
		_spec.SetField(contextcheckpoint.FieldItemsArchived, field.TypeInt, value)
		_node.ItemsArchived = value
	}
	if value, ok := _c.mutation.HotItemsRetained(); ok {
		_spec.SetField(contextcheckpoint.FieldHotItemsRetained, field.TypeInt, value)
		_node.HotItemsRetained = value
	}
	if value, ok := _c.mutation.TokenCount(); ok {
		_spec.SetField(contextcheckpoint.FieldTokenCount, field.TypeInt, value)
		_node.TokenCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contextcheckpoint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ContextCheckpointCreateBulk is the builder for creating many ContextCheckpoint entities in bulk.
type ContextCheckpointCreateBulk struct {
	config
	err      error
	builders []*ContextCheckpointCreate
}

// Save creates the ContextCheckpoint entities in the database.
func (_c *ContextCheckpointCreateBulk) Save(ctx context.Context) ([]*ContextCheckpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContextCheckpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContextCheckpointMutation)
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
func (_c *ContextCheckpointCreateBulk) SaveX(ctx context.Context) []*ContextCheckpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContextCheckpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContextCheckpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
