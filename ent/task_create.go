// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeframe-hq/codeframe/ent/correctionattempt"
	"github.com/codeframe-hq/codeframe/ent/issue"
	"github.com/codeframe-hq/codeframe/ent/project"
	"github.com/codeframe-hq/codeframe/ent/task"
	"github.com/codeframe-hq/codeframe/ent/testresult"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *TaskCreate) SetProjectID(v string) *TaskCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetIssueID sets the "issue_id" field.
func (_c *TaskCreate) SetIssueID(v string) *TaskCreate {
	_c.mutation.SetIssueID(v)
	return _c
}

// SetNillableIssueID sets the "issue_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableIssueID(v *string) *TaskCreate {
	if v != nil {
		_c.SetIssueID(*v)
	}
	return _c
}

// SetTaskNumber sets the "task_number" field.
func (_c *TaskCreate) SetTaskNumber(v string) *TaskCreate {
	_c.mutation.SetTaskNumber(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *TaskCreate) SetTitle(v string) *TaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TaskCreate) SetDescription(v string) *TaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDescription(v *string) *TaskCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v task.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *task.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAssignedTo sets the "assigned_to" field.
func (_c *TaskCreate) SetAssignedTo(v string) *TaskCreate {
	_c.mutation.SetAssignedTo(v)
	return _c
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAssignedTo(v *string) *TaskCreate {
	if v != nil {
		_c.SetAssignedTo(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *TaskCreate) SetPriority(v int) *TaskCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePriority(v *int) *TaskCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetQualityGateStatus sets the "quality_gate_status" field.
func (_c *TaskCreate) SetQualityGateStatus(v task.QualityGateStatus) *TaskCreate {
	_c.mutation.SetQualityGateStatus(v)
	return _c
}

// SetNillableQualityGateStatus sets the "quality_gate_status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableQualityGateStatus(v *task.QualityGateStatus) *TaskCreate {
	if v != nil {
		_c.SetQualityGateStatus(*v)
	}
	return _c
}

// SetQualityGateFailures sets the "quality_gate_failures" field.
func (_c *TaskCreate) SetQualityGateFailures(v string) *TaskCreate {
	_c.mutation.SetQualityGateFailures(v)
	return _c
}

// SetNillableQualityGateFailures sets the "quality_gate_failures" field if the given value is not nil.
func (_c *TaskCreate) SetNillableQualityGateFailures(v *string) *TaskCreate {
	if v != nil {
		_c.SetQualityGateFailures(*v)
	}
	return _c
}

// SetRequiresHumanApproval sets the "requires_human_approval" field.
func (_c *TaskCreate) SetRequiresHumanApproval(v bool) *TaskCreate {
	_c.mutation.SetRequiresHumanApproval(v)
	return _c
}

// SetNillableRequiresHumanApproval sets the "requires_human_approval" field if the given value is not nil.
func (_c *TaskCreate) SetNillableRequiresHumanApproval(v *bool) *TaskCreate {
	if v != nil {
		_c.SetRequiresHumanApproval(*v)
	}
	return _c
}

// SetCommitSha sets the "commit_sha" field.
func (_c *TaskCreate) SetCommitSha(v string) *TaskCreate {
	_c.mutation.SetCommitSha(v)
	return _c
}

// SetNillableCommitSha sets the "commit_sha" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCommitSha(v *string) *TaskCreate {
	if v != nil {
		_c.SetCommitSha(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TaskCreate) SetStartedAt(v time.Time) *TaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStartedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskCreate) SetCompletedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCompletedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v string) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *TaskCreate) SetProject(v *Project) *TaskCreate {
	return _c.SetProjectID(v.ID)
}

// SetIssue sets the "issue" edge to the Issue entity.
func (_c *TaskCreate) SetIssue(v *Issue) *TaskCreate {
	return _c.SetIssueID(v.ID)
}

// AddTestResultIDs adds the "test_results" edge to the TestResult entity by IDs.
func (_c *TaskCreate) AddTestResultIDs(ids ...string) *TaskCreate {
	_c.mutation.AddTestResultIDs(ids...)
	return _c
}

// AddTestResults adds the "test_results" edges to the TestResult entity.
func (_c *TaskCreate) AddTestResults(v ...*TestResult) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTestResultIDs(ids...)
}

// AddCorrectionAttemptIDs adds the "correction_attempts" edge to the CorrectionAttempt entity by IDs.
func (_c *TaskCreate) AddCorrectionAttemptIDs(ids ...string) *TaskCreate {
	_c.mutation.AddCorrectionAttemptIDs(ids...)
	return _c
}

// AddCorrectionAttempts adds the "correction_attempts" edges to the CorrectionAttempt entity.
func (_c *TaskCreate) AddCorrectionAttempts(v ...*CorrectionAttempt) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCorrectionAttemptIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := task.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.QualityGateStatus(); !ok {
		v := task.DefaultQualityGateStatus
		_c.mutation.SetQualityGateStatus(v)
	}
	if _, ok := _c.mutation.RequiresHumanApproval(); !ok {
		v := task.DefaultRequiresHumanApproval
		_c.mutation.SetRequiresHumanApproval(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Task.project_id"`)}
	}
	if _, ok := _c.mutation.TaskNumber(); !ok {
		return &ValidationError{Name: "task_number", err: errors.New(`ent: missing required field "Task.task_number"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Task.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Task.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QualityGateStatus(); !ok {
		return &ValidationError{Name: "quality_gate_status", err: errors.New(`ent: missing required field "Task.quality_gate_status"`)}
	}
	if v, ok := _c.mutation.QualityGateStatus(); ok {
		if err := task.QualityGateStatusValidator(v); err != nil {
			return &ValidationError{Name: "quality_gate_status", err: fmt.Errorf(`ent: validator failed for field "Task.quality_gate_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequiresHumanApproval(); !ok {
		return &ValidationError{Name: "requires_human_approval", err: errors.New(`ent: missing required field "Task.requires_human_approval"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Task.project"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
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
			return nil, fmt.Errorf("unexpected Task.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskNumber(); ok {
		_spec.SetField(task.FieldTaskNumber, field.TypeString, value)
		_node.TaskNumber = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AssignedTo(); ok {
		_spec.SetField(task.FieldAssignedTo, field.TypeString, value)
		_node.AssignedTo = &value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.QualityGateStatus(); ok {
		_spec.SetField(task.FieldQualityGateStatus, field.TypeEnum, value)
		_node.QualityGateStatus = value
	}
	if value, ok := _c.mutation.QualityGateFailures(); ok {
		_spec.SetField(task.FieldQualityGateFailures, field.TypeString, value)
		_node.QualityGateFailures = value
	}
	if value, ok := _c.mutation.RequiresHumanApproval(); ok {
		_spec.SetField(task.FieldRequiresHumanApproval, field.TypeBool, value)
		_node.RequiresHumanApproval = value
	}
	if value, ok := _c.mutation.CommitSha(); ok {
		_spec.SetField(task.FieldCommitSha, field.TypeString, value)
		_node.CommitSha = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ProjectTable,
			Columns: []string{task.ProjectColumn},
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
	if nodes := _c.mutation.IssueIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.IssueTable,
			Columns: []string{task.IssueColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(issue.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.IssueID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TestResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.TestResultsTable,
			Columns: []string{task.TestResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CorrectionAttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CorrectionAttemptsTable,
			Columns: []string{task.CorrectionAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(correctionattempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
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
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
