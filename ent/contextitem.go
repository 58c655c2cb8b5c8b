// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeframe-hq/codeframe/ent/contextitem"
	"github.com/codeframe-hq/codeframe/ent/project"
)

// ContextItem is the model entity for the ContextItem schema.
type ContextItem struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// ItemType holds the value of the "item_type" field.
	ItemType contextitem.ItemType `json:"item_type,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// In [0,1]; recomputed by the scorer
	ImportanceScore float64 `json:"importance_score,omitempty"`
	// Tier holds the value of the "tier" field.
	Tier contextitem.Tier `json:"tier,omitempty"`
	// AccessCount holds the value of the "access_count" field.
	AccessCount int `json:"access_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// LastAccessed holds the value of the "last_accessed" field.
	LastAccessed time.Time `json:"last_accessed,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContextItemQuery when eager-loading is set.
	Edges        ContextItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContextItemEdges holds the relations/edges for other nodes in the graph.
type ContextItemEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContextItemEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContextItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contextitem.FieldImportanceScore:
			values[i] = new(sql.NullFloat64)
		case contextitem.FieldAccessCount:
			values[i] = new(sql.NullInt64)
		case contextitem.FieldID, contextitem.FieldProjectID, contextitem.FieldAgentID, contextitem.FieldItemType, contextitem.FieldContent, contextitem.FieldTier:
			values[i] = new(sql.NullString)
		case contextitem.FieldCreatedAt, contextitem.FieldLastAccessed:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContextItem fields.
func (_m *ContextItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contextitem.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case contextitem.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case contextitem.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case contextitem.FieldItemType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_type", values[i])
			} else if value.Valid {
				_m.ItemType = contextitem.ItemType(value.String)
			}
		case contextitem.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case contextitem.FieldImportanceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field importance_score", values[i])
			} else if value.Valid {
				_m.ImportanceScore = value.Float64
			}
		case contextitem.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = contextitem.Tier(value.String)
			}
		case contextitem.FieldAccessCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field access_count", values[i])
			} else if value.Valid {
				_m.AccessCount = int(value.Int64)
			}
		case contextitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case contextitem.FieldLastAccessed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_accessed", values[i])
			} else if value.Valid {
				_m.LastAccessed = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContextItem.
// This includes values selected through modifiers, order, etc.
func (_m *ContextItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the ContextItem entity.
func (_m *ContextItem) QueryProject() *ProjectQuery {
	return NewContextItemClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this ContextItem.
// Note that you need to call ContextItem.Unwrap() before calling this method if this ContextItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContextItem) Update() *ContextItemUpdateOne {
	return NewContextItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContextItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContextItem) Unwrap() *ContextItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContextItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContextItem) String() string {
	var builder strings.Builder
	builder.WriteString("ContextItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("item_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemType))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("importance_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImportanceScore))
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tier))
	builder.WriteString(", ")
	builder.WriteString("access_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccessCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_accessed=")
	builder.WriteString(_m.LastAccessed.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ContextItems is a parsable slice of ContextItem.
type ContextItems []*ContextItem
