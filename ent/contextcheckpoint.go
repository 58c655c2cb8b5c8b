// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeframe-hq/codeframe/ent/contextcheckpoint"
)

// ContextCheckpoint is the model entity for the ContextCheckpoint schema.
type ContextCheckpoint struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// Full item snapshot (all tiers) at flash-save time
	Items []map[string]interface{} `json:"items,omitempty"`
	// ItemsCount holds the value of the "items_count" field.
	ItemsCount int `json:"items_count,omitempty"`
	// COLD items removed by the flash save
	ItemsArchived int `json:"items_archived,omitempty"`
	// HotItemsRetained holds the value of the "hot_items_retained" field.
	HotItemsRetained int `json:"hot_items_retained,omitempty"`
	// Token footprint before archival
	TokenCount int `json:"token_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContextCheckpoint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contextcheckpoint.FieldItems:
			values[i] = new([]byte)
		case contextcheckpoint.FieldItemsCount, contextcheckpoint.FieldItemsArchived, contextcheckpoint.FieldHotItemsRetained, contextcheckpoint.FieldTokenCount:
			values[i] = new(sql.NullInt64)
		case contextcheckpoint.FieldID, contextcheckpoint.FieldProjectID, contextcheckpoint.FieldAgentID:
			values[i] = new(sql.NullString)
		case contextcheckpoint.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContextCheckpoint fields.
func (_m *ContextCheckpoint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contextcheckpoint.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case contextcheckpoint.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case contextcheckpoint.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case contextcheckpoint.FieldItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Items); err != nil {
					return fmt.Errorf("unmarshal field items: %w", err)
				}
			}
		case contextcheckpoint.FieldItemsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field items_count", values[i])
			} else if value.Valid {
				_m.ItemsCount = int(value.Int64)
			}
		case contextcheckpoint.FieldItemsArchived:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field items_archived", values[i])
			} else if value.Valid {
				_m.ItemsArchived = int(value.Int64)
			}
		case contextcheckpoint.FieldHotItemsRetained:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hot_items_retained", values[i])
			} else if value.Valid {
				_m.HotItemsRetained = int(value.Int64)
			}
		case contextcheckpoint.FieldTokenCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field token_count", values[i])
			} else if value.Valid {
				_m.TokenCount = int(value.Int64)
			}
		case contextcheckpoint.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ContextCheckpoint.
// This includes values selected through modifiers, order, etc.
func (_m *ContextCheckpoint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ContextCheckpoint.
// Note that you need to call ContextCheckpoint.Unwrap() before calling this method if this ContextCheckpoint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContextCheckpoint) Update() *ContextCheckpointUpdateOne {
	return NewContextCheckpointClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContextCheckpoint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContextCheckpoint) Unwrap() *ContextCheckpoint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContextCheckpoint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContextCheckpoint) String() string {
	var builder strings.Builder
	builder.WriteString("ContextCheckpoint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("items=")
	builder.WriteString(fmt.Sprintf("%v", _m.Items))
	builder.WriteString(", ")
	builder.WriteString("items_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemsCount))
	builder.WriteString(", ")
	builder.WriteString("items_archived=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemsArchived))
	builder.WriteString(", ")
	builder.WriteString("hot_items_retained=")
	builder.WriteString(fmt.Sprintf("%v", _m.HotItemsRetained))
	builder.WriteString(", ")
	builder.WriteString("token_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokenCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ContextCheckpoints is a parsable slice of ContextCheckpoint.
type ContextCheckpoints []*ContextCheckpoint
