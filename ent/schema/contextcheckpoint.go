package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContextCheckpoint holds the schema definition for the ContextCheckpoint
// entity — an immutable snapshot of an agent's context items taken at flash
// save. Checkpoints are the only recovery path for archived COLD items and
// are never written twice.
type ContextCheckpoint struct {
	ent.Schema
}

// Fields of the ContextCheckpoint.
func (ContextCheckpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.JSON("items", []map[string]interface{}{}).
			Immutable().
			Comment("Full item snapshot (all tiers) at flash-save time"),
		field.Int("items_count").
			Immutable(),
		field.Int("items_archived").
			Immutable().
			Comment("COLD items removed by the flash save"),
		field.Int("hot_items_retained").
			Immutable(),
		field.Int("token_count").
			Immutable().
			Comment("Token footprint before archival"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ContextCheckpoint.
func (ContextCheckpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "agent_id", "created_at"),
	}
}
