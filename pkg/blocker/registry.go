// Package blocker implements the question-answer blocker registry: creation
// with per-agent rate limiting, atomic resolution, stale expiry, and
// per-project metrics. SYNC blockers halt their owning task; ASYNC blockers
// are informational only.
package blocker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/codeframe-hq/codeframe/ent"
	entblocker "github.com/codeframe-hq/codeframe/ent/blocker"
	enttask "github.com/codeframe-hq/codeframe/ent/task"
	"github.com/codeframe-hq/codeframe/pkg/config"
	"github.com/codeframe-hq/codeframe/pkg/metrics"
	"github.com/codeframe-hq/codeframe/pkg/services"
)

const (
	// MaxQuestionLen caps blocker questions; longer input is rejected.
	MaxQuestionLen = 2000

	maxAnswerLen = 5000

	// DefaultExpiryHours is the age after which a pending blocker expires.
	DefaultExpiryHours = 24
)

// RateLimitError reports a refused creation. It is a structured outcome, not
// a transient failure; callers must not retry immediately.
type RateLimitError struct {
	AgentID string
	Limit   int
	Window  time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("agent %s exceeded %d blocker creations per %s", e.AgentID, e.Limit, e.Window)
}

// Registry manages blocker lifecycle over the store. Creation windows are
// per-agent and in-memory; they do not survive restarts.
type Registry struct {
	client *ent.Client
	rate   *config.RateLimitConfig

	mu      sync.Mutex
	byAgent map[string][]time.Time

	// Injectable for tests
	now func() time.Time
}

// NewRegistry creates a blocker registry.
func NewRegistry(client *ent.Client, rate *config.RateLimitConfig) *Registry {
	return &Registry{
		client:  client,
		rate:    rate,
		byAgent: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// CreateInput describes a new blocker. TaskID is optional; project-level
// questions carry none.
type CreateInput struct {
	AgentID   string
	ProjectID string
	TaskID    *string
	Type      entblocker.BlockerType
	Question  string
}

// Create stores a PENDING blocker. SYNC blockers with a task move that task
// to blocked so the worker cannot progress until resolution or expiry.
func (r *Registry) Create(ctx context.Context, in CreateInput) (*ent.Blocker, error) {
	if in.Question == "" {
		return nil, fmt.Errorf("blocker question must not be empty: %w", services.ErrInvalidInput)
	}
	if len(in.Question) > MaxQuestionLen {
		return nil, fmt.Errorf("blocker question exceeds %d chars (got %d): %w", MaxQuestionLen, len(in.Question), services.ErrInvalidInput)
	}
	if err := r.checkRate(in.AgentID); err != nil {
		return nil, err
	}

	create := r.client.Blocker.Create().
		SetID(uuid.NewString()).
		SetAgentID(in.AgentID).
		SetProjectID(in.ProjectID).
		SetBlockerType(in.Type).
		SetQuestion(in.Question).
		SetStatus(entblocker.StatusPENDING).
		SetCreatedAt(r.now())
	if in.TaskID != nil {
		create = create.SetTaskID(*in.TaskID)
	}

	b, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create blocker: %w", err)
	}

	if in.Type == entblocker.BlockerTypeSYNC && in.TaskID != nil {
		n, err := r.client.Task.Update().
			Where(
				enttask.IDEQ(*in.TaskID),
				enttask.StatusIn(enttask.StatusAssigned, enttask.StatusInProgress),
			).
			SetStatus(enttask.StatusBlocked).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to block task %s: %w", *in.TaskID, err)
		}
		if n == 0 {
			slog.Warn("SYNC blocker created for task not in a blockable state",
				"blocker_id", b.ID, "task_id", *in.TaskID)
		}
	}

	metrics.BlockersCreated.WithLabelValues(string(in.Type)).Inc()
	slog.Info("Blocker created",
		"blocker_id", b.ID,
		"agent_id", in.AgentID,
		"project_id", in.ProjectID,
		"type", in.Type)
	return b, nil
}

// Resolve transitions PENDING → RESOLVED and stores the answer. Returns
// false when the blocker is missing or no longer pending; the conditional
// update makes retries idempotent. Resolving the last pending SYNC blocker
// of a blocked task moves the task back to in_progress.
func (r *Registry) Resolve(ctx context.Context, blockerID, answer string) (bool, error) {
	if len(answer) > maxAnswerLen {
		return false, fmt.Errorf("blocker answer exceeds %d chars (got %d): %w", maxAnswerLen, len(answer), services.ErrInvalidInput)
	}

	n, err := r.client.Blocker.Update().
		Where(
			entblocker.IDEQ(blockerID),
			entblocker.StatusEQ(entblocker.StatusPENDING),
		).
		SetStatus(entblocker.StatusRESOLVED).
		SetAnswer(answer).
		SetResolvedAt(r.now()).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to resolve blocker %s: %w", blockerID, err)
	}
	if n == 0 {
		return false, nil
	}

	if err := r.unblockTaskIfClear(ctx, blockerID); err != nil {
		return true, err
	}
	return true, nil
}

// unblockTaskIfClear returns a blocked task to in_progress once no pending
// SYNC blockers remain on it.
func (r *Registry) unblockTaskIfClear(ctx context.Context, blockerID string) error {
	b, err := r.client.Blocker.Get(ctx, blockerID)
	if err != nil {
		return fmt.Errorf("failed to reload blocker %s: %w", blockerID, err)
	}
	if b.BlockerType != entblocker.BlockerTypeSYNC || b.TaskID == nil {
		return nil
	}

	remaining, err := r.client.Blocker.Query().
		Where(
			entblocker.TaskIDEQ(*b.TaskID),
			entblocker.BlockerTypeEQ(entblocker.BlockerTypeSYNC),
			entblocker.StatusEQ(entblocker.StatusPENDING),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending blockers for task %s: %w", *b.TaskID, err)
	}
	if remaining > 0 {
		return nil
	}

	_, err = r.client.Task.Update().
		Where(
			enttask.IDEQ(*b.TaskID),
			enttask.StatusEQ(enttask.StatusBlocked),
		).
		SetStatus(enttask.StatusInProgress).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to unblock task %s: %w", *b.TaskID, err)
	}
	return nil
}

// PendingFor returns the agent's oldest PENDING blocker, or nil.
func (r *Registry) PendingFor(ctx context.Context, agentID string) (*ent.Blocker, error) {
	b, err := r.client.Blocker.Query().
		Where(
			entblocker.AgentIDEQ(agentID),
			entblocker.StatusEQ(entblocker.StatusPENDING),
		).
		Order(ent.Asc(entblocker.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query pending blockers for agent %s: %w", agentID, err)
	}
	return b, nil
}

// ExpireStale transitions pending blockers older than the cutoff to EXPIRED
// and returns their ids.
func (r *Registry) ExpireStale(ctx context.Context, hours int) ([]string, error) {
	if hours <= 0 {
		hours = DefaultExpiryHours
	}
	cutoff := r.now().Add(-time.Duration(hours) * time.Hour)

	ids, err := r.client.Blocker.Query().
		Where(
			entblocker.StatusEQ(entblocker.StatusPENDING),
			entblocker.CreatedAtLT(cutoff),
		).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale blockers: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	n, err := r.client.Blocker.Update().
		Where(
			entblocker.IDIn(ids...),
			entblocker.StatusEQ(entblocker.StatusPENDING),
		).
		SetStatus(entblocker.StatusEXPIRED).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to expire blockers: %w", err)
	}

	slog.Info("Expired stale blockers", "count", n, "cutoff", cutoff)
	return ids, nil
}

// Metrics summarizes a project's blocker activity.
type Metrics struct {
	CountsByStatus    map[string]int `json:"counts_by_status"`
	CountsByType      map[string]int `json:"counts_by_type"`
	AvgResolutionSecs float64        `json:"avg_resolution_secs"`
	ExpirationRate    float64        `json:"expiration_rate"`
}

// ProjectMetrics computes blocker counts, mean resolution time, and the
// expiration rate for one project.
func (r *Registry) ProjectMetrics(ctx context.Context, projectID string) (*Metrics, error) {
	blockers, err := r.client.Blocker.Query().
		Where(entblocker.ProjectIDEQ(projectID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query blockers for project %s: %w", projectID, err)
	}

	m := &Metrics{
		CountsByStatus: make(map[string]int),
		CountsByType:   make(map[string]int),
	}
	var resolutionTotal time.Duration
	resolved, expired := 0, 0
	for _, b := range blockers {
		m.CountsByStatus[string(b.Status)]++
		m.CountsByType[string(b.BlockerType)]++
		switch b.Status {
		case entblocker.StatusRESOLVED:
			resolved++
			if b.ResolvedAt != nil {
				resolutionTotal += b.ResolvedAt.Sub(b.CreatedAt)
			}
		case entblocker.StatusEXPIRED:
			expired++
		}
	}
	if resolved > 0 {
		m.AvgResolutionSecs = resolutionTotal.Seconds() / float64(resolved)
	}
	if len(blockers) > 0 {
		m.ExpirationRate = float64(expired) / float64(len(blockers))
	}
	return m, nil
}

// checkRate enforces the per-agent creation window.
func (r *Registry) checkRate(agentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	cutoff := now.Add(-r.rate.Window)
	stamps := r.byAgent[agentID]
	kept := stamps[:0]
	for _, ts := range stamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= r.rate.BlockerCreationsPerMinute {
		r.byAgent[agentID] = kept
		return &RateLimitError{
			AgentID: agentID,
			Limit:   r.rate.BlockerCreationsPerMinute,
			Window:  r.rate.Window,
		}
	}
	r.byAgent[agentID] = append(kept, now)
	return nil
}
