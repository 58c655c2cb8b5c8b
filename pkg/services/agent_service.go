package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/codeframe-hq/codeframe/ent"
	entagent "github.com/codeframe-hq/codeframe/ent/agent"
	"github.com/codeframe-hq/codeframe/pkg/models"
)

// AgentService manages worker agent records.
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates an AgentService.
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{client: client}
}

// GetByID returns an agent or ErrNotFound.
func (s *AgentService) GetByID(ctx context.Context, agentID string) (*ent.Agent, error) {
	a, err := s.client.Agent.Get(ctx, agentID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("agent %s: %w", agentID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get agent %s: %w", agentID, err)
	}
	return a, nil
}

// GetOrCreate returns the agent, creating an idle D1 record when absent.
func (s *AgentService) GetOrCreate(ctx context.Context, agentID string, agentType entagent.AgentType) (*ent.Agent, error) {
	a, err := s.client.Agent.Get(ctx, agentID)
	if err == nil {
		return a, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get agent %s: %w", agentID, err)
	}

	a, err = s.client.Agent.Create().
		SetID(agentID).
		SetAgentType(agentType).
		Save(ctx)
	if err != nil {
		// Lost the creation race: someone else inserted it
		if ent.IsConstraintError(err) {
			return s.GetByID(ctx, agentID)
		}
		return nil, fmt.Errorf("failed to create agent %s: %w", agentID, err)
	}
	return a, nil
}

// SetStatus updates the agent's availability status.
func (s *AgentService) SetStatus(ctx context.Context, agentID string, status entagent.Status) error {
	if err := s.client.Agent.UpdateOneID(agentID).
		SetStatus(status).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to set status for agent %s: %w", agentID, err)
	}
	return nil
}

// PersistAssessment stores a maturity assessment on the agent record.
func (s *AgentService) PersistAssessment(ctx context.Context, agentID string, assessment *models.MaturityAssessment, completedCount int, assessedAt time.Time) error {
	metricsJSON, err := json.Marshal(assessment.Metrics)
	if err != nil {
		return fmt.Errorf("failed to serialize maturity metrics: %w", err)
	}

	if err := s.client.Agent.UpdateOneID(agentID).
		SetMaturity(entagent.Maturity(assessment.MaturityLevel)).
		SetMaturityScore(assessment.MaturityScore).
		SetMetrics(string(metricsJSON)).
		SetCompletedCount(completedCount).
		SetLastAssessedAt(assessedAt).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to persist assessment for agent %s: %w", agentID, err)
	}
	return nil
}
