package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Project holds the schema definition for the Project entity.
// The core only reads workspace_path; lifecycle transitions are owned by
// the planning layer outside this codebase.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("workspace_path").
			Comment("Absolute path to the project working tree"),
		field.Enum("status").
			Values("init", "planning", "running", "active", "paused", "completed").
			Default("init"),
		field.Enum("phase").
			Values("discovery", "planning", "active", "review", "complete").
			Default("discovery"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("issues", Issue.Type),
		edge.To("tasks", Task.Type),
		edge.To("context_items", ContextItem.Type),
	}
}
