// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeframe-hq/codeframe/ent/correctionattempt"
	"github.com/codeframe-hq/codeframe/ent/task"
)

// CorrectionAttempt is the model entity for the CorrectionAttempt schema.
type CorrectionAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// AttemptNumber holds the value of the "attempt_number" field.
	AttemptNumber int `json:"attempt_number,omitempty"`
	// ErrorAnalysis holds the value of the "error_analysis" field.
	ErrorAnalysis string `json:"error_analysis,omitempty"`
	// FixDescription holds the value of the "fix_description" field.
	FixDescription string `json:"fix_description,omitempty"`
	// CodeChanges holds the value of the "code_changes" field.
	CodeChanges string `json:"code_changes,omitempty"`
	// TestResultID holds the value of the "test_result_id" field.
	TestResultID *string `json:"test_result_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CorrectionAttemptQuery when eager-loading is set.
	Edges        CorrectionAttemptEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CorrectionAttemptEdges holds the relations/edges for other nodes in the graph.
type CorrectionAttemptEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CorrectionAttemptEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CorrectionAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case correctionattempt.FieldAttemptNumber:
			values[i] = new(sql.NullInt64)
		case correctionattempt.FieldID, correctionattempt.FieldTaskID, correctionattempt.FieldErrorAnalysis, correctionattempt.FieldFixDescription, correctionattempt.FieldCodeChanges, correctionattempt.FieldTestResultID:
			values[i] = new(sql.NullString)
		case correctionattempt.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CorrectionAttempt fields.
func (_m *CorrectionAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case correctionattempt.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case correctionattempt.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case correctionattempt.FieldAttemptNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_number", values[i])
			} else if value.Valid {
				_m.AttemptNumber = int(value.Int64)
			}
		case correctionattempt.FieldErrorAnalysis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_analysis", values[i])
			} else if value.Valid {
				_m.ErrorAnalysis = value.String
			}
		case correctionattempt.FieldFixDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fix_description", values[i])
			} else if value.Valid {
				_m.FixDescription = value.String
			}
		case correctionattempt.FieldCodeChanges:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code_changes", values[i])
			} else if value.Valid {
				_m.CodeChanges = value.String
			}
		case correctionattempt.FieldTestResultID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field test_result_id", values[i])
			} else if value.Valid {
				_m.TestResultID = new(string)
				*_m.TestResultID = value.String
			}
		case correctionattempt.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CorrectionAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *CorrectionAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the CorrectionAttempt entity.
func (_m *CorrectionAttempt) QueryTask() *TaskQuery {
	return NewCorrectionAttemptClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this CorrectionAttempt.
// Note that you need to call CorrectionAttempt.Unwrap() before calling this method if this CorrectionAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CorrectionAttempt) Update() *CorrectionAttemptUpdateOne {
	return NewCorrectionAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CorrectionAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CorrectionAttempt) Unwrap() *CorrectionAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CorrectionAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CorrectionAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("CorrectionAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("attempt_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptNumber))
	builder.WriteString(", ")
	builder.WriteString("error_analysis=")
	builder.WriteString(_m.ErrorAnalysis)
	builder.WriteString(", ")
	builder.WriteString("fix_description=")
	builder.WriteString(_m.FixDescription)
	builder.WriteString(", ")
	builder.WriteString("code_changes=")
	builder.WriteString(_m.CodeChanges)
	builder.WriteString(", ")
	if v := _m.TestResultID; v != nil {
		builder.WriteString("test_result_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CorrectionAttempts is a parsable slice of CorrectionAttempt.
type CorrectionAttempts []*CorrectionAttempt
