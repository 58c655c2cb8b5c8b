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
	"github.com/codeframe-hq/codeframe/ent/agent"
	"github.com/codeframe-hq/codeframe/ent/predicate"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *AgentUpdate) SetAgentType(v agent.AgentType) *AgentUpdate {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableAgentType(v *agent.AgentType) *AgentUpdate {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetMaturity sets the "maturity" field.
func (_u *AgentUpdate) SetMaturity(v agent.Maturity) *AgentUpdate {
	_u.mutation.SetMaturity(v)
	return _u
}

// SetNillableMaturity sets the "maturity" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableMaturity(v *agent.Maturity) *AgentUpdate {
	if v != nil {
		_u.SetMaturity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdate) SetStatus(v agent.Status) *AgentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableStatus(v *agent.Status) *AgentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *AgentUpdate) SetMetrics(v string) *AgentUpdate {
	_u.mutation.SetMetrics(v)
	return _u
}

// SetNillableMetrics sets the "metrics" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableMetrics(v *string) *AgentUpdate {
	if v != nil {
		_u.SetMetrics(*v)
	}
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *AgentUpdate) ClearMetrics() *AgentUpdate {
	_u.mutation.ClearMetrics()
	return _u
}

// SetMaturityScore sets the "maturity_score" field.
func (_u *AgentUpdate) SetMaturityScore(v float64) *AgentUpdate {
	_u.mutation.ResetMaturityScore()
	_u.mutation.SetMaturityScore(v)
	return _u
}

// SetNillableMaturityScore sets the "maturity_score" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableMaturityScore(v *float64) *AgentUpdate {
	if v != nil {
		_u.SetMaturityScore(*v)
	}
	return _u
}

// AddMaturityScore adds value to the "maturity_score" field.
func (_u *AgentUpdate) AddMaturityScore(v float64) *AgentUpdate {
	_u.mutation.AddMaturityScore(v)
	return _u
}

// ClearMaturityScore clears the value of the "maturity_score" field.
func (_u *AgentUpdate) ClearMaturityScore() *AgentUpdate {
	_u.mutation.ClearMaturityScore()
	return _u
}

// SetCompletedCount sets the "completed_count" field.
func (_u *AgentUpdate) SetCompletedCount(v int) *AgentUpdate {
	_u.mutation.ResetCompletedCount()
	_u.mutation.SetCompletedCount(v)
	return _u
}

// SetNillableCompletedCount sets the "completed_count" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableCompletedCount(v *int) *AgentUpdate {
	if v != nil {
		_u.SetCompletedCount(*v)
	}
	return _u
}

// AddCompletedCount adds value to the "completed_count" field.
func (_u *AgentUpdate) AddCompletedCount(v int) *AgentUpdate {
	_u.mutation.AddCompletedCount(v)
	return _u
}

// SetLastAssessedAt sets the "last_assessed_at" field.
func (_u *AgentUpdate) SetLastAssessedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetLastAssessedAt(v)
	return _u
}

// SetNillableLastAssessedAt sets the "last_assessed_at" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableLastAssessedAt(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetLastAssessedAt(*v)
	}
	return _u
}

// ClearLastAssessedAt clears the value of the "last_assessed_at" field.
func (_u *AgentUpdate) ClearLastAssessedAt() *AgentUpdate {
	_u.mutation.ClearLastAssessedAt()
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if v, ok := _u.mutation.AgentType(); ok {
		if err := agent.AgentTypeValidator(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "Agent.agent_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Maturity(); ok {
		if err := agent.MaturityValidator(v); err != nil {
			return &ValidationError{Name: "maturity", err: fmt.Errorf(`ent: validator failed for field "Agent.maturity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(agent.FieldAgentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Maturity(); ok {
		_spec.SetField(agent.FieldMaturity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(agent.FieldMetrics, field.TypeString, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(agent.FieldMetrics, field.TypeString)
	}
	if value, ok := _u.mutation.MaturityScore(); ok {
		_spec.SetField(agent.FieldMaturityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaturityScore(); ok {
		_spec.AddField(agent.FieldMaturityScore, field.TypeFloat64, value)
	}
	if _u.mutation.MaturityScoreCleared() {
		_spec.ClearField(agent.FieldMaturityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CompletedCount(); ok {
		_spec.SetField(agent.FieldCompletedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedCount(); ok {
		_spec.AddField(agent.FieldCompletedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAssessedAt(); ok {
		_spec.SetField(agent.FieldLastAssessedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAssessedAtCleared() {
		_spec.ClearField(agent.FieldLastAssessedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetAgentType sets the "agent_type" field.
func (_u *AgentUpdateOne) SetAgentType(v agent.AgentType) *AgentUpdateOne {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableAgentType(v *agent.AgentType) *AgentUpdateOne {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetMaturity sets the "maturity" field.
func (_u *AgentUpdateOne) SetMaturity(v agent.Maturity) *AgentUpdateOne {
	_u.mutation.SetMaturity(v)
	return _u
}

// SetNillableMaturity sets the "maturity" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableMaturity(v *agent.Maturity) *AgentUpdateOne {
	if v != nil {
		_u.SetMaturity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdateOne) SetStatus(v agent.Status) *AgentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableStatus(v *agent.Status) *AgentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *AgentUpdateOne) SetMetrics(v string) *AgentUpdateOne {
	_u.mutation.SetMetrics(v)
	return _u
}

// SetNillableMetrics sets the "metrics" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableMetrics(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetMetrics(*v)
	}
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *AgentUpdateOne) ClearMetrics() *AgentUpdateOne {
	_u.mutation.ClearMetrics()
	return _u
}

// SetMaturityScore sets the "maturity_score" field.
func (_u *AgentUpdateOne) SetMaturityScore(v float64) *AgentUpdateOne {
	_u.mutation.ResetMaturityScore()
	_u.mutation.SetMaturityScore(v)
	return _u
}

// SetNillableMaturityScore sets the "maturity_score" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableMaturityScore(v *float64) *AgentUpdateOne {
	if v != nil {
		_u.SetMaturityScore(*v)
	}
	return _u
}

// AddMaturityScore adds value to the "maturity_score" field.
func (_u *AgentUpdateOne) AddMaturityScore(v float64) *AgentUpdateOne {
	_u.mutation.AddMaturityScore(v)
	return _u
}

// ClearMaturityScore clears the value of the "maturity_score" field.
func (_u *AgentUpdateOne) ClearMaturityScore() *AgentUpdateOne {
	_u.mutation.ClearMaturityScore()
	return _u
}

// SetCompletedCount sets the "completed_count" field.
func (_u *AgentUpdateOne) SetCompletedCount(v int) *AgentUpdateOne {
	_u.mutation.ResetCompletedCount()
	_u.mutation.SetCompletedCount(v)
	return _u
}

// SetNillableCompletedCount sets the "completed_count" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableCompletedCount(v *int) *AgentUpdateOne {
	if v != nil {
		_u.SetCompletedCount(*v)
	}
	return _u
}

// AddCompletedCount adds value to the "completed_count" field.
func (_u *AgentUpdateOne) AddCompletedCount(v int) *AgentUpdateOne {
	_u.mutation.AddCompletedCount(v)
	return _u
}

// SetLastAssessedAt sets the "last_assessed_at" field.
func (_u *AgentUpdateOne) SetLastAssessedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetLastAssessedAt(v)
	return _u
}

// SetNillableLastAssessedAt sets the "last_assessed_at" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableLastAssessedAt(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetLastAssessedAt(*v)
	}
	return _u
}

// ClearLastAssessedAt clears the value of the "last_assessed_at" field.
func (_u *AgentUpdateOne) ClearLastAssessedAt() *AgentUpdateOne {
	_u.mutation.ClearLastAssessedAt()
	return _u
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if v, ok := _u.mutation.AgentType(); ok {
		if err := agent.AgentTypeValidator(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "Agent.agent_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Maturity(); ok {
		if err := agent.MaturityValidator(v); err != nil {
			return &ValidationError{Name: "maturity", err: fmt.Errorf(`ent: validator failed for field "Agent.maturity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
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
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(agent.FieldAgentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Maturity(); ok {
		_spec.SetField(agent.FieldMaturity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(agent.FieldMetrics, field.TypeString, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(agent.FieldMetrics, field.TypeString)
	}
	if value, ok := _u.mutation.MaturityScore(); ok {
		_spec.SetField(agent.FieldMaturityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaturityScore(); ok {
		_spec.AddField(agent.FieldMaturityScore, field.TypeFloat64, value)
	}
	if _u.mutation.MaturityScoreCleared() {
		_spec.ClearField(agent.FieldMaturityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CompletedCount(); ok {
		_spec.SetField(agent.FieldCompletedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedCount(); ok {
		_spec.AddField(agent.FieldCompletedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAssessedAt(); ok {
		_spec.SetField(agent.FieldLastAssessedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAssessedAtCleared() {
		_spec.ClearField(agent.FieldLastAssessedAt, field.TypeTime)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
