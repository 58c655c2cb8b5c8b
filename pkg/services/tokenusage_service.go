package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/codeframe-hq/codeframe/ent"
	enttokenusage "github.com/codeframe-hq/codeframe/ent/tokenusage"
	"github.com/codeframe-hq/codeframe/pkg/llm"
	"github.com/codeframe-hq/codeframe/pkg/models"
)

// TokenUsageService records per-call LLM consumption. Rows are append-only.
type TokenUsageService struct {
	client *ent.Client
}

// NewTokenUsageService creates a TokenUsageService.
func NewTokenUsageService(client *ent.Client) *TokenUsageService {
	return &TokenUsageService{client: client}
}

// RecordUsageInput describes one LLM call's consumption.
type RecordUsageInput struct {
	TaskID           string
	AgentID          string
	ProjectID        string
	Model            string
	InputTokens      int
	OutputTokens     int
	EstimatedCostUSD float64
	CallType         string
}

// Record appends one usage row. Unknown call types land in "other".
func (s *TokenUsageService) Record(ctx context.Context, in RecordUsageInput) (*ent.TokenUsage, error) {
	if in.AgentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}
	if in.Model == "" {
		return nil, NewValidationError("model", "required")
	}

	callType := enttokenusage.CallType(in.CallType)
	switch callType {
	case enttokenusage.CallTypeTaskExecution, enttokenusage.CallTypeCodeReview, enttokenusage.CallTypeCoordination:
	default:
		callType = enttokenusage.CallTypeOther
	}

	usage, err := s.client.TokenUsage.Create().
		SetID(uuid.NewString()).
		SetTaskID(in.TaskID).
		SetAgentID(in.AgentID).
		SetProjectID(in.ProjectID).
		SetModel(in.Model).
		SetInputTokens(in.InputTokens).
		SetOutputTokens(in.OutputTokens).
		SetEstimatedCostUsd(in.EstimatedCostUSD).
		SetCallType(callType).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record token usage: %w", err)
	}
	return usage, nil
}

// RecordUsage adapts the gateway's usage sink onto Record, so every
// successful gateway call lands one usage row keyed by its call type.
func (s *TokenUsageService) RecordUsage(ctx context.Context, u llm.UsageRecord) error {
	_, err := s.Record(ctx, RecordUsageInput{
		TaskID:           u.TaskID,
		AgentID:          u.AgentID,
		ProjectID:        u.ProjectID,
		Model:            u.Model,
		InputTokens:      u.InputTokens,
		OutputTokens:     u.OutputTokens,
		EstimatedCostUSD: u.EstimatedCostUSD,
		CallType:         u.CallType,
	})
	return err
}

// TotalsForTask sums consumption over all calls recorded against a task.
func (s *TokenUsageService) TotalsForTask(ctx context.Context, taskID string) (*models.TokenUsageData, error) {
	rows, err := s.client.TokenUsage.Query().
		Where(enttokenusage.TaskIDEQ(taskID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query token usage for task %s: %w", taskID, err)
	}

	totals := &models.TokenUsageData{}
	for _, row := range rows {
		totals.InputTokens += row.InputTokens
		totals.OutputTokens += row.OutputTokens
		totals.EstimatedCostUSD += row.EstimatedCostUsd
	}
	return totals, nil
}

// TotalsForAgent sums consumption over all calls recorded against an agent.
func (s *TokenUsageService) TotalsForAgent(ctx context.Context, agentID string) (*models.TokenUsageData, error) {
	rows, err := s.client.TokenUsage.Query().
		Where(enttokenusage.AgentIDEQ(agentID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query token usage for agent %s: %w", agentID, err)
	}

	totals := &models.TokenUsageData{}
	for _, row := range rows {
		totals.InputTokens += row.InputTokens
		totals.OutputTokens += row.OutputTokens
		totals.EstimatedCostUSD += row.EstimatedCostUsd
	}
	return totals, nil
}
