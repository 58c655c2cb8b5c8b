package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CorrectionAttempt holds the schema definition for the CorrectionAttempt
// entity. At most 3 attempts exist per task, enforced by the attempt_number
// range plus the unique (task_id, attempt_number) index.
type CorrectionAttempt struct {
	ent.Schema
}

// Fields of the CorrectionAttempt.
func (CorrectionAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("attempt_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Int("attempt_number").
			Min(1).
			Max(3),
		field.Text("error_analysis"),
		field.Text("fix_description"),
		field.Text("code_changes").
			Optional(),
		field.String("test_result_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CorrectionAttempt.
func (CorrectionAttempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("correction_attempts").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CorrectionAttempt.
func (CorrectionAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "attempt_number").
			Unique(),
	}
}
