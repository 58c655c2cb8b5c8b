package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/codeframe-hq/codeframe/ent"
	entauditlog "github.com/codeframe-hq/codeframe/ent/auditlog"
	"github.com/codeframe-hq/codeframe/pkg/config"
	"github.com/codeframe-hq/codeframe/pkg/masking"
)

// AuditService appends events to the audit trail. Audit failures never block
// the primary operation: they are logged and swallowed.
type AuditService struct {
	client    *ent.Client
	verbosity config.AuditVerbosity
	masker    *masking.Service
}

// NewAuditService creates an AuditService.
func NewAuditService(client *ent.Client, verbosity config.AuditVerbosity) *AuditService {
	return &AuditService{client: client, verbosity: verbosity, masker: masking.NewService()}
}

// Record appends one audit event. Metadata is credential-masked before it is
// persisted. Never returns an error.
func (s *AuditService) Record(ctx context.Context, eventType, resourceType, resourceID string, metadata map[string]interface{}) {
	create := s.client.AuditLog.Create().
		SetID(uuid.NewString()).
		SetEventType(eventType).
		SetResourceType(resourceType).
		SetResourceID(resourceID)
	if metadata != nil {
		create = create.SetMetadata(s.maskMetadata(metadata))
	}

	if err := create.Exec(ctx); err != nil {
		slog.Warn("Failed to write audit event",
			"event_type", eventType,
			"resource_id", resourceID,
			"error", err)
		return
	}

	if s.verbosity == config.AuditVerbosityHigh {
		slog.Info("Audit event", "event_type", eventType, "resource_type", resourceType, "resource_id", resourceID)
	}
}

// maskMetadata redacts credential shapes in string-valued metadata. Other
// value types pass through untouched.
func (s *AuditService) maskMetadata(metadata map[string]interface{}) map[string]interface{} {
	masked := make(map[string]interface{}, len(metadata))
	for key, value := range metadata {
		switch v := value.(type) {
		case string:
			masked[key] = s.masker.Mask(v)
		case []string:
			items := make([]string, len(v))
			for i, item := range v {
				items[i] = s.masker.Mask(item)
			}
			masked[key] = items
		default:
			masked[key] = value
		}
	}
	return masked
}

// Audit implements the LLM gateway's audit sink.
func (s *AuditService) Audit(ctx context.Context, eventType, resourceType, resourceID string, metadata map[string]interface{}) {
	s.Record(ctx, eventType, resourceType, resourceID, metadata)
}

// DeleteOlderThan removes audit rows created before the cutoff. Used by the
// retention loop.
func (s *AuditService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	return s.client.AuditLog.Delete().
		Where(entauditlog.CreatedAtLT(cutoff)).
		Exec(ctx)
}
