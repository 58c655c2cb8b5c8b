package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContextItem holds the schema definition for the ContextItem entity — a
// piece of text an agent chose to remember, subject to tiering and eviction.
// Invariant: tier == assignTier(importance_score) after any recalculation.
type ContextItem struct {
	ent.Schema
}

// Fields of the ContextItem.
func (ContextItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("item_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.Enum("item_type").
			Values("TASK", "CODE", "ERROR", "TEST_RESULT", "PRD_SECTION"),
		field.Text("content"),
		field.Float("importance_score").
			Default(0.5).
			Comment("In [0,1]; recomputed by the scorer"),
		field.Enum("tier").
			Values("HOT", "WARM", "COLD").
			Default("WARM"),
		field.Int("access_count").
			Default(0).
			NonNegative(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_accessed").
			Default(time.Now),
	}
}

// Edges of the ContextItem.
func (ContextItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("context_items").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ContextItem.
func (ContextItem) Indexes() []ent.Index {
	return []ent.Index{
		// Working-set loads: per-agent items ordered by score
		index.Fields("project_id", "agent_id", "tier"),
		index.Fields("project_id", "agent_id", "importance_score"),
	}
}
