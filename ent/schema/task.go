package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity — the unit of worker
// execution. Status transitions out of in_progress are made only by the
// agent that owns the task.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("issue_id").
			Optional().
			Immutable(),
		field.String("task_number").
			Comment("Hierarchical ordinal, e.g. '3.2.1'"),
		field.String("title").
			NotEmpty(),
		field.Text("description").
			Optional(),
		field.Enum("status").
			Values("pending", "assigned", "in_progress", "blocked", "completed", "failed").
			Default("pending"),
		field.String("assigned_to").
			Optional().
			Nillable().
			Comment("Agent id of the current owner"),
		field.Int("priority").
			Default(2).
			Min(0).
			Max(4),
		field.Enum("quality_gate_status").
			Values("pending", "running", "passed", "failed").
			Default("pending"),
		field.Text("quality_gate_failures").
			Optional().
			Comment("JSON-serialized list of gate failures"),
		field.Bool("requires_human_approval").
			Default(false).
			Comment("Set when touched files match sensitive path patterns"),
		field.String("commit_sha").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("tasks").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.From("issue", Issue.Type).
			Ref("tasks").
			Field("issue_id").
			Unique().
			Immutable(),
		edge.To("test_results", TestResult.Type),
		edge.To("correction_attempts", CorrectionAttempt.Type),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// Queue polling: pending tasks by priority
		index.Fields("project_id", "status"),
		index.Fields("assigned_to", "status"),
		index.Fields("status", "priority", "created_at"),
	}
}
