// Package maturity implements the agent feedback loop: scoring each agent
// from its historical task outcomes, mapping the score to a situational
// leadership level (D1 directive … D4 delegating), and tracking per-project
// quality trends for degradation detection.
package maturity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeframe-hq/codeframe/ent"
	entcorrection "github.com/codeframe-hq/codeframe/ent/correctionattempt"
	enttask "github.com/codeframe-hq/codeframe/ent/task"
	enttestresult "github.com/codeframe-hq/codeframe/ent/testresult"
	"github.com/codeframe-hq/codeframe/pkg/models"
	"github.com/codeframe-hq/codeframe/pkg/services"
)

// Assessment cadence: reassess after 24 hours or 5 newly completed tasks,
// whichever comes first.
const (
	reassessAfter        = 24 * time.Hour
	minTasksBetweenRuns  = 5
	weightCompletion     = 0.4
	weightTestPassRate   = 0.3
	weightSelfCorrection = 0.3
)

// LevelForScore maps a maturity score to its level.
func LevelForScore(score float64) string {
	switch {
	case score >= 0.9:
		return "D4"
	case score >= 0.7:
		return "D3"
	case score >= 0.5:
		return "D2"
	default:
		return "D1"
	}
}

// Assessor computes and persists agent maturity.
type Assessor struct {
	client *ent.Client
	agents *services.AgentService
	audit  *services.AuditService

	// Injectable for tests
	now func() time.Time
}

// NewAssessor creates an assessor. audit may be nil.
func NewAssessor(client *ent.Client, agents *services.AgentService, audit *services.AuditService) *Assessor {
	return &Assessor{
		client: client,
		agents: agents,
		now:    time.Now,
		audit:  audit,
	}
}

// Assess scores the agent from its task history, persists the result on the
// agent record, and emits an audit event. An agent with no tasks is D1 with
// zero metrics.
func (a *Assessor) Assess(ctx context.Context, agentID string) (*models.MaturityAssessment, error) {
	agent, err := a.agents.GetByID(ctx, agentID)
	if err != nil {
		return nil, err
	}

	metrics, err := a.computeMetrics(ctx, agentID)
	if err != nil {
		return nil, err
	}

	score := weightCompletion*metrics.CompletionRate +
		weightTestPassRate*metrics.AvgTestPassRate +
		weightSelfCorrection*metrics.SelfCorrectionRate
	level := LevelForScore(score)

	assessment := &models.MaturityAssessment{
		MaturityLevel: level,
		MaturityScore: score,
		Metrics:       *metrics,
		Changed:       level != string(agent.Maturity),
	}

	if err := a.agents.PersistAssessment(ctx, agentID, assessment, metrics.CompletedTasks, a.now()); err != nil {
		return nil, err
	}

	if a.audit != nil {
		a.audit.Record(ctx, "agent.maturity.assessed", "agent", agentID, map[string]interface{}{
			"old_level":            string(agent.Maturity),
			"new_level":            level,
			"score":                score,
			"completion_rate":      metrics.CompletionRate,
			"avg_test_pass_rate":   metrics.AvgTestPassRate,
			"self_correction_rate": metrics.SelfCorrectionRate,
			"total_tasks":          metrics.TotalTasks,
			"completed_tasks":      metrics.CompletedTasks,
		})
	}

	slog.Info("Agent maturity assessed",
		"agent_id", agentID,
		"old_level", agent.Maturity,
		"new_level", level,
		"score", score)
	return assessment, nil
}

// ShouldAssess reports whether the agent is due: never assessed, last
// assessment older than 24 hours, or enough newly completed tasks.
func (a *Assessor) ShouldAssess(ctx context.Context, agentID string) (bool, error) {
	agent, err := a.agents.GetByID(ctx, agentID)
	if err != nil {
		return false, err
	}
	if agent.LastAssessedAt == nil {
		return true, nil
	}
	if a.now().Sub(*agent.LastAssessedAt) > reassessAfter {
		return true, nil
	}

	completed, err := a.client.Task.Query().
		Where(
			enttask.AssignedToEQ(agentID),
			enttask.StatusEQ(enttask.StatusCompleted),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count completed tasks for agent %s: %w", agentID, err)
	}
	return completed-agent.CompletedCount >= minTasksBetweenRuns, nil
}

// computeMetrics derives the weighted inputs from the agent's task history.
func (a *Assessor) computeMetrics(ctx context.Context, agentID string) (*models.MaturityMetrics, error) {
	tasks, err := a.client.Task.Query().
		Where(enttask.AssignedToEQ(agentID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks for agent %s: %w", agentID, err)
	}

	metrics := &models.MaturityMetrics{TotalTasks: len(tasks)}
	if len(tasks) == 0 {
		return metrics, nil
	}

	var completed []*ent.Task
	for _, t := range tasks {
		if t.Status == enttask.StatusCompleted {
			completed = append(completed, t)
		}
	}
	metrics.CompletedTasks = len(completed)
	metrics.CompletionRate = float64(len(completed)) / float64(len(tasks))
	if len(completed) == 0 {
		return metrics, nil
	}

	// Mean pass rate over the most recent test result per completed task,
	// ignoring tasks that never ran tests
	passRateSum, passRateCount := 0.0, 0
	cleanCompletions := 0
	for _, t := range completed {
		result, err := a.client.TestResult.Query().
			Where(enttestresult.TaskIDEQ(t.ID)).
			Order(ent.Desc(enttestresult.FieldCreatedAt)).
			First(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to query test results for task %s: %w", t.ID, err)
		}
		if result != nil {
			executed := result.Passed + result.Failed
			if executed > 0 {
				passRateSum += float64(result.Passed) / float64(executed)
				passRateCount++
			}
		}

		attempts, err := a.client.CorrectionAttempt.Query().
			Where(entcorrection.TaskIDEQ(t.ID)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count corrections for task %s: %w", t.ID, err)
		}
		if attempts == 0 {
			cleanCompletions++
		}
	}
	if passRateCount > 0 {
		metrics.AvgTestPassRate = passRateSum / float64(passRateCount)
	}
	metrics.SelfCorrectionRate = float64(cleanCompletions) / float64(len(completed))
	return metrics, nil
}
