package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity.
// Append-only; rows past the configured retention window are removed by the
// cleanup service.
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable(),
		field.String("event_type").
			NotEmpty().
			Immutable().
			Comment("e.g. 'llm.call.started', 'agent.maturity.assessed'"),
		field.String("user_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("resource_type").
			Optional().
			Immutable(),
		field.String("resource_id").
			Optional().
			Immutable(),
		field.String("ip_address").
			Optional().
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_type", "created_at"),
		// Retention sweeps
		index.Fields("created_at"),
	}
}
