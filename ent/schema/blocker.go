package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Blocker holds the schema definition for the Blocker entity — a
// question-answer artifact that pauses (SYNC) or annotates (ASYNC) a task.
// Transitions are monotonic: PENDING → RESOLVED or PENDING → EXPIRED only.
type Blocker struct {
	ent.Schema
}

// Fields of the Blocker.
func (Blocker) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("blocker_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("task_id").
			Optional().
			Nillable().
			Immutable(),
		field.Enum("blocker_type").
			Values("SYNC", "ASYNC"),
		field.Text("question").
			NotEmpty().
			MaxLen(2000),
		field.Text("answer").
			Optional().
			Nillable().
			MaxLen(5000),
		field.Enum("status").
			Values("PENDING", "RESOLVED", "EXPIRED").
			Default("PENDING"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Blocker.
func (Blocker) Indexes() []ent.Index {
	return []ent.Index{
		// Oldest-pending lookup per agent
		index.Fields("agent_id", "status", "created_at"),
		index.Fields("project_id", "status"),
		// Expiry sweeps
		index.Fields("status", "created_at"),
	}
}
