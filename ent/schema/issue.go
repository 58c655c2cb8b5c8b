package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Issue holds the schema definition for the Issue entity.
// Issues are created by planning and parent a set of Tasks.
type Issue struct {
	ent.Schema
}

// Fields of the Issue.
func (Issue) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("issue_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("title").
			NotEmpty(),
		field.Text("description").
			Optional(),
		field.Int("priority").
			Default(2).
			Min(0).
			Max(4).
			Comment("0 is highest priority"),
		field.Int("workflow_step").
			Default(1).
			Min(1).
			Max(15).
			Comment("Ordinal position in the planning pipeline"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Issue.
func (Issue) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("issues").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("tasks", Task.Type),
	}
}

// Indexes of the Issue.
func (Issue) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "priority"),
	}
}
