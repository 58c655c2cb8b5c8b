package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProjectAgent holds the schema definition for the project-agent assignment
// join. Assignments are many-to-many with an is_active flag; the partial
// uniqueness constraint on (project_id, agent_id) WHERE is_active is created
// by database.CreatePartialUniqueIndexes — Ent cannot express it.
type ProjectAgent struct {
	ent.Schema
}

// Fields of the ProjectAgent.
func (ProjectAgent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("assignment_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ProjectAgent.
func (ProjectAgent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "is_active"),
		index.Fields("agent_id", "is_active"),
	}
}
