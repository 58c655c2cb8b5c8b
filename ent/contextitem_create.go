// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeframe-hq/codeframe/ent/contextitem"
	"github.com/codeframe-hq/codeframe/ent/project"
)

// ContextItemCreate is the builder for creating a ContextItem entity.
type ContextItemCreate struct {
	config
	mutation *ContextItemMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *ContextItemCreate) SetProjectID(v string) *ContextItemCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *ContextItemCreate) SetAgentID(v string) *ContextItemCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetItemType sets the "item_type" field.
func (_c *ContextItemCreate) SetItemType(v contextitem.ItemType) *ContextItemCreate {
	_c.mutation.SetItemType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ContextItemCreate) SetContent(v string) *ContextItemCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetImportanceScore sets the "importance_score" field.
func (_c *ContextItemCreate) SetImportanceScore(v float64) *ContextItemCreate {
	_c.mutation.SetImportanceScore(v)
	return _c
}

// SetNillableImportanceScore sets the "importance_score" field if the given value is not nil.
func (_c *ContextItemCreate) SetNillableImportanceScore(v *float64) *ContextItemCreate {
	if v != nil {
		_c.SetImportanceScore(*v)
	}
	return _c
}

// SetTier sets the "tier" field.
func (_c *ContextItemCreate) SetTier(v contextitem.Tier) *ContextItemCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_c *ContextItemCreate) SetNillableTier(v *contextitem.Tier) *ContextItemCreate {
	if v != nil {
		_c.SetTier(*v)
	}
	return _c
}

// SetAccessCount sets the "access_count" field.
func (_c *ContextItemCreate) SetAccessCount(v int) *ContextItemCreate {
	_c.mutation.SetAccessCount(v)
	return _c
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_c *ContextItemCreate) SetNillableAccessCount(v *int) *ContextItemCreate {
	if v != nil {
		_c.SetAccessCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContextItemCreate) SetCreatedAt(v time.Time) *ContextItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContextItemCreate) SetNillableCreatedAt(v *time.Time) *ContextItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastAccessed sets the "last_accessed" field.
func (_c *ContextItemCreate) SetLastAccessed(v time.Time) *ContextItemCreate {
	_c.mutation.SetLastAccessed(v)
	return _c
}

// SetNillableLastAccessed sets the "last_accessed" field if the given value is not nil.
func (_c *ContextItemCreate) SetNillableLastAccessed(v *time.Time) *ContextItemCreate {
	if v != nil {
		_c.SetLastAccessed(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContextItemCreate) SetID(v string) *ContextItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *ContextItemCreate) SetProject(v *Project) *ContextItemCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the ContextItemMutation object of the builder.
func (_c *ContextItemCreate) Mutation() *ContextItemMutation {
	return _c.mutation
}

// Save creates the ContextItem in the database.
func (_c *ContextItemCreate) Save(ctx context.Context) (*ContextItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContextItemCreate) SaveX(ctx context.Context) *ContextItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContextItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContextItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContextItemCreate) defaults() {
	if _, ok := _c.mutation.ImportanceScore(); !ok {
		v := contextitem.DefaultImportanceScore
		_c.mutation.SetImportanceScore(v)
	}
	if _, ok := _c.mutation.Tier(); !ok {
		v := contextitem.DefaultTier
		_c.mutation.SetTier(v)
	}
	if _, ok := _c.mutation.AccessCount(); !ok {
		v := contextitem.DefaultAccessCount
		_c.mutation.SetAccessCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contextitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastAccessed(); !ok {
		v := contextitem.DefaultLastAccessed()
		_c.mutation.SetLastAccessed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContextItemCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "ContextItem.project_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "ContextItem.agent_id"`)}
	}
	if _, ok := _c.mutation.ItemType(); !ok {
		return &ValidationError{Name: "item_type", err: errors.New(`ent: missing required field "ContextItem.item_type"`)}
	}
	if v, ok := _c.mutation.ItemType(); ok {
		if err := contextitem.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "ContextItem.item_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ContextItem.content"`)}
	}
	if _, ok := _c.mutation.ImportanceScore(); !ok {
		return &ValidationError{Name: "importance_score", err: errors.New(`ent: missing required field "ContextItem.importance_score"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "ContextItem.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := contextitem.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "ContextItem.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AccessCount(); !ok {
		return &ValidationError{Name: "access_count", err: errors.New(`ent: missing required field "ContextItem.access_count"`)}
	}
	if v, ok := _c.mutation.AccessCount(); ok {
		if err := contextitem.AccessCountValidator(v); err != nil {
			return &ValidationError{Name: "access_count", err: fmt.Errorf(`ent: validator failed for field "ContextItem.access_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContextItem.created_at"`)}
	}
	if _, ok := _c.mutation.LastAccessed(); !ok {
		return &ValidationError{Name: "last_accessed", err: errors.New(`ent: missing required field "ContextItem.last_accessed"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "ContextItem.project"`)}
	}
	return nil
}

func (_c *ContextItemCreate) sqlSave(ctx context.Context) (*ContextItem, error) {
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
			return nil, fmt.Errorf("unexpected ContextItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContextItemCreate) createSpec() (*ContextItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ContextItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contextitem.Table, sqlgraph.NewFieldSpec(contextitem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(contextitem.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.ItemType(); ok {
		_spec.SetField(contextitem.FieldItemType, field.TypeEnum, value)
		_node.ItemType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(contextitem.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.ImportanceScore(); ok {
		_spec.SetField(contextitem.FieldImportanceScore, field.TypeFloat64, value)
		_node.ImportanceScore = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(contextitem.FieldTier, field.TypeEnum, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.AccessCount(); ok {
		_spec.SetField(contextitem.FieldAccessCount, field.TypeInt, value)
		_node.AccessCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contextitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastAccessed(); ok {
		_spec.SetField(contextitem.FieldLastAccessed, field.TypeTime, value)
		_node.LastAccessed = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextitem.ProjectTable,
			Columns: []string{contextitem.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContextItemCreateBulk is the builder for creating many ContextItem entities in bulk.
type ContextItemCreateBulk struct {
	config
	err      error
	builders []*ContextItemCreate
}

// Save creates the ContextItem entities in the database.
func (_c *ContextItemCreateBulk) Save(ctx context.Context) ([]*ContextItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContextItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContextItemMutation)
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
func (_c *ContextItemCreateBulk) SaveX(ctx context.Context) []*ContextItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContextItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContextItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
