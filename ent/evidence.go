// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeframe-hq/codeframe/ent/evidence"
)

// Evidence is the model entity for the Evidence schema.
type Evidence struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// TaskDescription holds the value of the "task_description" field.
	TaskDescription string `json:"task_description,omitempty"`
	// Verified holds the value of the "verified" field.
	Verified bool `json:"verified,omitempty"`
	// Embedded test result at verification time
	TestResult map[string]interface{} `json:"test_result,omitempty"`
	// SkipViolations holds the value of the "skip_violations" field.
	SkipViolations []map[string]interface{} `json:"skip_violations,omitempty"`
	// null = coverage not collected
	Coverage *float64 `json:"coverage,omitempty"`
	// QualityMetrics holds the value of the "quality_metrics" field.
	QualityMetrics map[string]interface{} `json:"quality_metrics,omitempty"`
	// VerificationErrors holds the value of the "verification_errors" field.
	VerificationErrors []string `json:"verification_errors,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// Framework holds the value of the "framework" field.
	Framework string `json:"framework,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Evidence) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evidence.FieldTestResult, evidence.FieldSkipViolations, evidence.FieldQualityMetrics, evidence.FieldVerificationErrors:
			values[i] = new([]byte)
		case evidence.FieldVerified:
			values[i] = new(sql.NullBool)
		case evidence.FieldCoverage:
			values[i] = new(sql.NullFloat64)
		case evidence.FieldID, evidence.FieldTaskID, evidence.FieldAgentID, evidence.FieldTaskDescription, evidence.FieldLanguage, evidence.FieldFramework:
			values[i] = new(sql.NullString)
		case evidence.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Evidence fields.
func (_m *Evidence) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evidence.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case evidence.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case evidence.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case evidence.FieldTaskDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_description", values[i])
			} else if value.Valid {
				_m.TaskDescription = value.String
			}
		case evidence.FieldVerified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field verified", values[i])
			} else if value.Valid {
				_m.Verified = value.Bool
			}
		case evidence.FieldTestResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field test_result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TestResult); err != nil {
					return fmt.Errorf("unmarshal field test_result: %w", err)
				}
			}
		case evidence.FieldSkipViolations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skip_violations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SkipViolations); err != nil {
					return fmt.Errorf("unmarshal field skip_violations: %w", err)
				}
			}
		case evidence.FieldCoverage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field coverage", values[i])
			} else if value.Valid {
				_m.Coverage = new(float64)
				*_m.Coverage = value.Float64
			}
		case evidence.FieldQualityMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field quality_metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QualityMetrics); err != nil {
					return fmt.Errorf("unmarshal field quality_metrics: %w", err)
				}
			}
		case evidence.FieldVerificationErrors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field verification_errors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.VerificationErrors); err != nil {
					return fmt.Errorf("unmarshal field verification_errors: %w", err)
				}
			}
		case evidence.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case evidence.FieldFramework:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field framework", values[i])
			} else if value.Valid {
				_m.Framework = value.String
			}
		case evidence.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Evidence.
// This includes values selected through modifiers, order, etc.
func (_m *Evidence) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Evidence.
// Note that you need to call Evidence.Unwrap() before calling this method if this Evidence
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Evidence) Update() *EvidenceUpdateOne {
	return NewEvidenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Evidence entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Evidence) Unwrap() *Evidence {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Evidence is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Evidence) String() string {
	var builder strings.Builder
	builder.WriteString("Evidence(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("task_description=")
	builder.WriteString(_m.TaskDescription)
	builder.WriteString(", ")
	builder.WriteString("verified=")
	builder.WriteString(fmt.Sprintf("%v", _m.Verified))
	builder.WriteString(", ")
	builder.WriteString("test_result=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestResult))
	builder.WriteString(", ")
	builder.WriteString("skip_violations=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkipViolations))
	builder.WriteString(", ")
	if v := _m.Coverage; v != nil {
		builder.WriteString("coverage=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("quality_metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.QualityMetrics))
	builder.WriteString(", ")
	builder.WriteString("verification_errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.VerificationErrors))
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("framework=")
	builder.WriteString(_m.Framework)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Evidences is a parsable slice of Evidence.
type Evidences []*Evidence
