// Package cleanup provides the background retention loop: pruning old audit
// log rows and expiring stale pending blockers.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/codeframe-hq/codeframe/pkg/blocker"
	"github.com/codeframe-hq/codeframe/pkg/config"
	"github.com/codeframe-hq/codeframe/pkg/services"
)

// Service periodically enforces retention policies:
//   - Deletes audit log rows older than the retention window
//   - Expires pending blockers past their expiry age
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	config   *config.RetentionConfig
	audit    *services.AuditService
	blockers *blocker.Registry

	cancel context.CancelFunc
	done   chan struct{}

	now func() time.Time
}

// NewService creates a cleanup service.
func NewService(cfg *config.RetentionConfig, audit *services.AuditService, blockers *blocker.Registry) *Service {
	return &Service{
		config:   cfg,
		audit:    audit,
		blockers: blockers,
		now:      time.Now,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"audit_retention_days", s.config.AuditRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll performs one cleanup pass.
func (s *Service) RunAll(ctx context.Context) {
	s.pruneAuditLogs(ctx)
	s.expireStaleBlockers(ctx)
}

func (s *Service) pruneAuditLogs(ctx context.Context) {
	cutoff := s.now().AddDate(0, 0, -s.config.AuditRetentionDays)
	count, err := s.audit.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: audit log pruning failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned old audit logs", "count", count)
	}
}

func (s *Service) expireStaleBlockers(ctx context.Context) {
	expired, err := s.blockers.ExpireStale(ctx, blocker.DefaultExpiryHours)
	if err != nil {
		slog.Error("Retention: blocker expiry failed", "error", err)
		return
	}
	if len(expired) > 0 {
		slog.Info("Retention: expired stale blockers", "count", len(expired))
	}
}
