// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeframe-hq/codeframe/ent/agent"
)

// Agent is the model entity for the Agent schema.
type Agent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentType holds the value of the "agent_type" field.
	AgentType agent.AgentType `json:"agent_type,omitempty"`
	// D1 directive, D2 coaching, D3 supporting, D4 delegating
	Maturity agent.Maturity `json:"maturity,omitempty"`
	// Status holds the value of the "status" field.
	Status agent.Status `json:"status,omitempty"`
	// JSON-serialized assessment metrics
	Metrics string `json:"metrics,omitempty"`
	// MaturityScore holds the value of the "maturity_score" field.
	MaturityScore float64 `json:"maturity_score,omitempty"`
	// Completed-task count at the last maturity assessment
	CompletedCount int `json:"completed_count,omitempty"`
	// LastAssessedAt holds the value of the "last_assessed_at" field.
	LastAssessedAt *time.Time `json:"last_assessed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Agent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agent.FieldMaturityScore:
			values[i] = new(sql.NullFloat64)
		case agent.FieldCompletedCount:
			values[i] = new(sql.NullInt64)
		case agent.FieldID, agent.FieldAgentType, agent.FieldMaturity, agent.FieldStatus, agent.FieldMetrics:
			values[i] = new(sql.NullString)
		case agent.FieldLastAssessedAt, agent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Agent fields.
func (_m *Agent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agent.FieldAgentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_type", values[i])
			} else if value.Valid {
				_m.AgentType = agent.AgentType(value.String)
			}
		case agent.FieldMaturity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field maturity", values[i])
			} else if value.Valid {
				_m.Maturity = agent.Maturity(value.String)
			}
		case agent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agent.Status(value.String)
			}
		case agent.FieldMetrics:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field metrics", values[i])
			} else if value.Valid {
				_m.Metrics = value.String
			}
		case agent.FieldMaturityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field maturity_score", values[i])
			} else if value.Valid {
				_m.MaturityScore = value.Float64
			}
		case agent.FieldCompletedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_count", values[i])
			} else if value.Valid {
				_m.CompletedCount = int(value.Int64)
			}
		case agent.FieldLastAssessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_assessed_at", values[i])
			} else if value.Valid {
				_m.LastAssessedAt = new(time.Time)
				*_m.LastAssessedAt = value.Time
			}
		case agent.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Agent.
// This includes values selected through modifiers, order, etc.
func (_m *Agent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Agent.
// Note that you need to call Agent.Unwrap() before calling this method if this Agent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Agent) Update() *AgentUpdateOne {
	return NewAgentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Agent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Agent) Unwrap() *Agent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Agent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Agent) String() string {
	var builder strings.Builder
	builder.WriteString("Agent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentType))
	builder.WriteString(", ")
	builder.WriteString("maturity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Maturity))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("metrics=")
	builder.WriteString(_m.Metrics)
	builder.WriteString(", ")
	builder.WriteString("maturity_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaturityScore))
	builder.WriteString(", ")
	builder.WriteString("completed_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedCount))
	builder.WriteString(", ")
	if v := _m.LastAssessedAt; v != nil {
		builder.WriteString("last_assessed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Agents is a parsable slice of Agent.
type Agents []*Agent
