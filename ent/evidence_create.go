// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeframe-hq/codeframe/ent/evidence"
)

// EvidenceCreate is the builder for creating a Evidence entity.
type EvidenceCreate struct {
	config
	mutation *EvidenceMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *EvidenceCreate) SetTaskID(v string) *EvidenceCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *EvidenceCreate) SetAgentID(v string) *EvidenceCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetTaskDescription sets the "task_description" field.
func (_c *EvidenceCreate) SetTaskDescription(v string) *EvidenceCreate {
	_c.mutation.SetTaskDescription(v)
	return _c
}

// SetNillableTaskDescription sets the "task_description" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableTaskDescription(v *string) *EvidenceCreate {
	if v != nil {
		_c.SetTaskDescription(*v)
	}
	return _c
}

// SetVerified sets the "verified" field.
func (_c *EvidenceCreate) SetVerified(v bool) *EvidenceCreate {
	_c.mutation.SetVerified(v)
	return _c
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableVerified(v *bool) *EvidenceCreate {
	if v != nil {
		_c.SetVerified(*v)
	}
	return _c
}

// SetTestResult sets the "test_result" field.
func (_c *EvidenceCreate) SetTestResult(v map[string]interface{}) *EvidenceCreate {
	_c.mutation.SetTestResult(v)
	return _c
}

// SetSkipViolations sets the "skip_violations" field.
func (_c *EvidenceCreate) SetSkipViolations(v []map[string]interface{}) *EvidenceCreate {
	_c.mutation.SetSkipViolations(v)
	return _c
}

// SetCoverage sets the "coverage" field.
func (_c *EvidenceCreate) SetCoverage(v float64) *EvidenceCreate {
	_c.mutation.SetCoverage(v)
	return _c
}

// SetNillableCoverage sets the "coverage" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableCoverage(v *float64) *EvidenceCreate {
	if v != nil {
		_c.SetCoverage(*v)
	}
	return _c
}

// SetQualityMetrics sets the "quality_metrics" field.
func (_c *EvidenceCreate) SetQualityMetrics(v map[string]interface{}) *EvidenceCreate {
	_c.mutation.SetQualityMetrics(v)
	return _c
}

// SetVerificationErrors sets the "verification_errors" field.
func (_c *EvidenceCreate) SetVerificationErrors(v []string) *EvidenceCreate {
	_c.mutation.SetVerificationErrors(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *EvidenceCreate) SetLanguage(v string) *EvidenceCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableLanguage(v *string) *EvidenceCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetFramework sets the "framework" field.
func (_c *EvidenceCreate) SetFramework(v string) *EvidenceCreate {
	_c.mutation.SetFramework(v)
	return _c
}

// SetNillableFramework sets the "framework" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableFramework(v *string) *EvidenceCreate {
	if v != nil {
		_c.SetFramework(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvidenceCreate) SetCreatedAt(v time.Time) *EvidenceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableCreatedAt(v *time.Time) *EvidenceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvidenceCreate) SetID(v string) *EvidenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EvidenceMutation object of the builder.
func (_c *EvidenceCreate) Mutation() *EvidenceMutation {
	return _c.mutation
}

// Save creates the Evidence in the database.
func (_c *EvidenceCreate) Save(ctx context.Context) (*Evidence, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvidenceCreate) SaveX(ctx context.Context) *Evidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvidenceCreate) defaults() {
	if _, ok := _c.mutation.Verified(); !ok {
		v := evidence.DefaultVerified
		_c.mutation.SetVerified(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evidence.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvidenceCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "Evidence.task_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "Evidence.agent_id"`)}
	}
	if _, ok := _c.mutation.Verified(); !ok {
		return &ValidationError{Name: "verified", err: errors.New(`ent: missing required field "Evidence.verified"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Evidence.created_at"`)}
	}
	return nil
}

func (_c *EvidenceCreate) sqlSave(ctx context.Context) (*Evidence, error) {
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
			return nil, fmt.Errorf("unexpected Evidence.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvidenceCreate) createSpec() (*Evidence, *sqlgraph.CreateSpec) {
	var (
		_node = &Evidence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evidence.Table, sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(evidence.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(evidence.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.TaskDescription(); ok {
		_spec.SetField(evidence.FieldTaskDescription, field.TypeString, value)
		_node.TaskDescription = value
	}
	if value, ok := _c.mutation.Verified(); ok {
		_spec.SetField(evidence.FieldVerified, field.TypeBool, value)
		_node.Verified = value
	}
	if value, ok := _c.mutation.TestResult(); ok {
		_spec.SetField(evidence.FieldTestResult, field.TypeJSON, value)
		_node.TestResult = value
	}
	if value, ok := _c.mutation.SkipViolations(); ok {
		_spec.SetField(evidence.FieldSkipViolations, field.TypeJSON, value)
		_node.SkipViolations = value
	}
	if value, ok := _c.mutation.Coverage(); ok {
		_spec.SetField(evidence.FieldCoverage, field.TypeFloat64, value)
		_node.Coverage = &value
	}
	if value, ok := _c.mutation.QualityMetrics(); ok {
		_spec.SetField(evidence.FieldQualityMetrics, field.TypeJSON, value)
		_node.QualityMetrics = value
	}
	if value, ok := _c.mutation.VerificationErrors(); ok {
		_spec.SetField(evidence.FieldVerificationErrors, field.TypeJSON, value)
		_node.VerificationErrors = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(evidence.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Framework(); ok {
		_spec.SetField(evidence.FieldFramework, field.TypeString, value)
		_node.Framework = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evidence.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// EvidenceCreateBulk is the builder for creating many Evidence entities in bulk.
type EvidenceCreateBulk struct {
	config
	err      error
	builders []*EvidenceCreate
}

// Save creates the Evidence entities in the database.
func (_c *EvidenceCreateBulk) Save(ctx context.Context) ([]*Evidence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Evidence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvidenceMutation)
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
func (_c *EvidenceCreateBulk) SaveX(ctx context.Context) []*Evidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
