package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TestResult holds the schema definition for the TestResult entity.
// Written by the quality-gate pipeline after each test run.
type TestResult struct {
	ent.Schema
}

// Fields of the TestResult.
func (TestResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("result_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Enum("status").
			Values("passed", "failed", "error", "timeout", "no_tests"),
		field.Int("passed").
			Default(0).
			NonNegative(),
		field.Int("failed").
			Default(0).
			NonNegative(),
		field.Int("errors").
			Default(0).
			NonNegative(),
		field.Int("skipped").
			Default(0).
			NonNegative(),
		field.Float("duration_seconds").
			Default(0),
		field.Text("output").
			Optional().
			Comment("Raw runner output, truncated for storage"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TestResult.
func (TestResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("test_results").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TestResult.
func (TestResult) Indexes() []ent.Index {
	return []ent.Index{
		// Most recent result per task
		index.Fields("task_id", "created_at"),
	}
}
