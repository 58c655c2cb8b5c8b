// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeframe-hq/codeframe/ent/issue"
	"github.com/codeframe-hq/codeframe/ent/project"
	"github.com/codeframe-hq/codeframe/ent/task"
)

// Task is the model entity for the Task schema.
type Task struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// IssueID holds the value of the "issue_id" field.
	IssueID string `json:"issue_id,omitempty"`
	// Hierarchical ordinal, e.g. '3.2.1'
	TaskNumber string `json:"task_number,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Status holds the value of the "status" field.
	Status task.Status `json:"status,omitempty"`
	// Agent id of the current owner
	AssignedTo *string `json:"assigned_to,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority int `json:"priority,omitempty"`
	// QualityGateStatus holds the value of the "quality_gate_status" field.
	QualityGateStatus task.QualityGateStatus `json:"quality_gate_status,omitempty"`
	// JSON-serialized list of gate failures
	QualityGateFailures string `json:"quality_gate_failures,omitempty"`
	// Set when touched files match sensitive path patterns
	RequiresHumanApproval bool `json:"requires_human_approval,omitempty"`
	// CommitSha holds the value of the "commit_sha" field.
	CommitSha *string `json:"commit_sha,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskQuery when eager-loading is set.
	Edges        TaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskEdges holds the relations/edges for other nodes in the graph.
type TaskEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Issue holds the value of the issue edge.
	Issue *Issue `json:"issue,omitempty"`
	// TestResults holds the value of the test_results edge.
	TestResults []*TestResult `json:"test_results,omitempty"`
	// CorrectionAttempts holds the value of the correction_attempts edge.
	CorrectionAttempts []*CorrectionAttempt `json:"correction_attempts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// IssueOrErr returns the Issue value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEdges) IssueOrErr() (*Issue, error) {
	if e.Issue != nil {
		return e.Issue, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: issue.Label}
	}
	return nil, &NotLoadedError{edge: "issue"}
}

// TestResultsOrErr returns the TestResults value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) TestResultsOrErr() ([]*TestResult, error) {
	if e.loadedTypes[2] {
		return e.TestResults, nil
	}
	return nil, &NotLoadedError{edge: "test_results"}
}

// CorrectionAttemptsOrErr returns the CorrectionAttempts value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) CorrectionAttemptsOrErr() ([]*CorrectionAttempt, error) {
	if e.loadedTypes[3] {
		return e.CorrectionAttempts, nil
	}
	return nil, &NotLoadedError{edge: "correction_attempts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Task) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case task.FieldRequiresHumanApproval:
			values[i] = new(sql.NullBool)
		case task.FieldPriority:
			values[i] = new(sql.NullInt64)
		case task.FieldID, task.FieldProjectID, task.FieldIssueID, task.FieldTaskNumber, task.FieldTitle, task.FieldDescription, task.FieldStatus, task.FieldAssignedTo, task.FieldQualityGateStatus, task.FieldQualityGateFailures, task.FieldCommitSha:
			values[i] = new(sql.NullString)
		case task.FieldCreatedAt, task.FieldStartedAt, task.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Task fields.
func (_m *Task) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case task.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case task.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case task.FieldIssueID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issue_id", values[i])
			} else if value.Valid {
				_m.IssueID = value.String
			}
		case task.FieldTaskNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_number", values[i])
			} else if value.Valid {
				_m.TaskNumber = value.String
			}
		case task.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case task.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case task.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = task.Status(value.String)
			}
		case task.FieldAssignedTo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_to", values[i])
			} else if value.Valid {
				_m.AssignedTo = new(string)
				*_m.AssignedTo = value.String
			}
		case task.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case task.FieldQualityGateStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quality_gate_status", values[i])
			} else if value.Valid {
				_m.QualityGateStatus = task.QualityGateStatus(value.String)
			}
		case task.FieldQualityGateFailures:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quality_gate_failures", values[i])
			} else if value.Valid {
				_m.QualityGateFailures = value.String
			}
		case task.FieldRequiresHumanApproval:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field requires_human_approval", values[i])
			} else if value.Valid {
				_m.RequiresHumanApproval = value.Bool
			}
		case task.FieldCommitSha:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field commit_sha", values[i])
			} else if value.Valid {
				_m.CommitSha = new(string)
				*_m.CommitSha = value.String
			}
		case task.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case task.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case task.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Task.
// This includes values selected through modifiers, order, etc.
func (_m *Task) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Task entity.
func (_m *Task) QueryProject() *ProjectQuery {
	return NewTaskClient(_m.config).QueryProject(_m)
}

// QueryIssue queries the "issue" edge of the Task entity.
func (_m *Task) QueryIssue() *IssueQuery {
	return NewTaskClient(_m.config).QueryIssue(_m)
}

// QueryTestResults queries the "test_results" edge of the Task entity.
func (_m *Task) QueryTestResults() *TestResultQuery {
	return NewTaskClient(_m.config).QueryTestResults(_m)
}

// QueryCorrectionAttempts queries the "correction_attempts" edge of the Task entity.
func (_m *Task) QueryCorrectionAttempts() *CorrectionAttemptQuery {
	return NewTaskClient(_m.config).QueryCorrectionAttempts(_m)
}

// Update returns a builder for updating this Task.
// Note that you need to call Task.Unwrap() before calling this method if this Task
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Task) Update() *TaskUpdateOne {
	return NewTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Task entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Task) Unwrap() *Task {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Task is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Task) String() string {
	var builder strings.Builder
	builder.WriteString("Task(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("issue_id=")
	builder.WriteString(_m.IssueID)
	builder.WriteString(", ")
	builder.WriteString("task_number=")
	builder.WriteString(_m.TaskNumber)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.AssignedTo; v != nil {
		builder.WriteString("assigned_to=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("quality_gate_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.QualityGateStatus))
	builder.WriteString(", ")
	builder.WriteString("quality_gate_failures=")
	builder.WriteString(_m.QualityGateFailures)
	builder.WriteString(", ")
	builder.WriteString("requires_human_approval=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiresHumanApproval))
	builder.WriteString(", ")
	if v := _m.CommitSha; v != nil {
		builder.WriteString("commit_sha=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Tasks is a parsable slice of Task.
type Tasks []*Task
