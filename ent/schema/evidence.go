package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Evidence holds the schema definition for the Evidence entity — the
// structured, verifiable record of what tests ran, what coverage was
// achieved, and the pass/fail decision. Written once per completion attempt;
// failed verification is stored with verified=false for audit.
type Evidence struct {
	ent.Schema
}

// Annotations of the Evidence.
func (Evidence) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "evidence"},
	}
}

// Fields of the Evidence.
func (Evidence) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("evidence_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.Text("task_description").
			Optional(),
		field.Bool("verified").
			Default(false),
		field.JSON("test_result", map[string]interface{}{}).
			Optional().
			Comment("Embedded test result at verification time"),
		field.JSON("skip_violations", []map[string]interface{}{}).
			Optional(),
		field.Float("coverage").
			Optional().
			Nillable().
			Comment("null = coverage not collected"),
		field.JSON("quality_metrics", map[string]interface{}{}).
			Optional(),
		field.JSON("verification_errors", []string{}).
			Optional(),
		field.String("language").
			Optional(),
		field.String("framework").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Evidence.
func (Evidence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "created_at"),
		index.Fields("task_id", "verified"),
	}
}
