package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity — a named worker
// backed by an LLM with a type and a situational-leadership maturity level.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.Enum("agent_type").
			Values("lead", "backend", "frontend", "test", "review"),
		field.Enum("maturity").
			Values("D1", "D2", "D3", "D4").
			Default("D1").
			Comment("D1 directive, D2 coaching, D3 supporting, D4 delegating"),
		field.Enum("status").
			Values("idle", "working", "blocked", "offline").
			Default("idle"),
		field.Text("metrics").
			Optional().
			Comment("JSON-serialized assessment metrics"),
		field.Float("maturity_score").
			Optional().
			Default(0),
		field.Int("completed_count").
			Default(0).
			Comment("Completed-task count at the last maturity assessment"),
		field.Time("last_assessed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_type", "status"),
	}
}
