package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TokenUsage holds the schema definition for the TokenUsage entity.
// Append-only accounting of LLM consumption per call.
type TokenUsage struct {
	ent.Schema
}

// Annotations of the TokenUsage.
func (TokenUsage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "token_usage"},
	}
}

// Fields of the TokenUsage.
func (TokenUsage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("usage_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Optional().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("project_id").
			Optional().
			Immutable(),
		field.String("model").
			Immutable(),
		field.Int("input_tokens").
			Default(0).
			NonNegative(),
		field.Int("output_tokens").
			Default(0).
			NonNegative(),
		field.Float("estimated_cost_usd").
			Default(0),
		field.Enum("call_type").
			Values("task_execution", "code_review", "coordination", "other").
			Default("task_execution"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TokenUsage.
func (TokenUsage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "created_at"),
		index.Fields("project_id", "created_at"),
	}
}
