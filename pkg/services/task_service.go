package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeframe-hq/codeframe/ent"
	entcorrection "github.com/codeframe-hq/codeframe/ent/correctionattempt"
	enttask "github.com/codeframe-hq/codeframe/ent/task"
	"github.com/codeframe-hq/codeframe/pkg/models"
)

// maxCorrectionAttempts bounds self-correction retries per task.
const maxCorrectionAttempts = 3

// TaskService manages task lifecycle and the completion transaction.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a TaskService.
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// GetByID returns a task or ErrNotFound.
func (s *TaskService) GetByID(ctx context.Context, taskID string) (*ent.Task, error) {
	t, err := s.client.Task.Get(ctx, taskID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("task %s: %w", taskID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task %s: %w", taskID, err)
	}
	return t, nil
}

// PendingTasks returns claimable tasks ordered by priority then age.
// Priority 0 is the most urgent, so the scan is ascending.
func (s *TaskService) PendingTasks(ctx context.Context, limit int) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(enttask.StatusEQ(enttask.StatusPending)).
		Order(
			ent.Asc(enttask.FieldPriority),
			ent.Asc(enttask.FieldCreatedAt),
		).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending tasks: %w", err)
	}
	return tasks, nil
}

// Claim atomically assigns a pending task to an agent. Returns false when
// another worker claimed it first.
func (s *TaskService) Claim(ctx context.Context, taskID, agentID string) (bool, error) {
	n, err := s.client.Task.Update().
		Where(
			enttask.IDEQ(taskID),
			enttask.StatusEQ(enttask.StatusPending),
		).
		SetStatus(enttask.StatusAssigned).
		SetAssignedTo(agentID).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to claim task %s: %w", taskID, err)
	}
	return n == 1, nil
}

// Start moves an assigned task to in_progress for its owner.
func (s *TaskService) Start(ctx context.Context, taskID, agentID string) error {
	n, err := s.client.Task.Update().
		Where(
			enttask.IDEQ(taskID),
			enttask.StatusEQ(enttask.StatusAssigned),
			enttask.AssignedToEQ(agentID),
		).
		SetStatus(enttask.StatusInProgress).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to start task %s: %w", taskID, err)
	}
	if n == 0 {
		return fmt.Errorf("task %s is not assigned to agent %s: %w", taskID, agentID, ErrConcurrentModification)
	}
	return nil
}

// Fail marks a task failed. Used when execution errors are unrecoverable.
func (s *TaskService) Fail(ctx context.Context, taskID string) error {
	if err := s.client.Task.UpdateOneID(taskID).
		SetStatus(enttask.StatusFailed).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark task %s failed: %w", taskID, err)
	}
	return nil
}

// updatableColumns is the whitelist for UpdateFields. Anything else is a
// validation error.
var updatableColumns = map[string]bool{
	"status":                  true,
	"assigned_to":             true,
	"priority":                true,
	"description":             true,
	"quality_gate_status":     true,
	"quality_gate_failures":   true,
	"requires_human_approval": true,
	"commit_sha":              true,
}

// UpdateFields applies a whitelisted column set to a task. Unknown columns
// or mistyped values fail validation without touching the row.
func (s *TaskService) UpdateFields(ctx context.Context, taskID string, fields map[string]interface{}) error {
	update := s.client.Task.UpdateOneID(taskID)
	for column, value := range fields {
		if !updatableColumns[column] {
			return NewValidationError(column, "not an updatable column")
		}
		switch column {
		case "status":
			str, ok := value.(string)
			if !ok {
				return NewValidationError(column, "expected string")
			}
			status := enttask.Status(str)
			if err := enttask.StatusValidator(status); err != nil {
				return NewValidationError(column, err.Error())
			}
			update = update.SetStatus(status)
		case "assigned_to":
			str, ok := value.(string)
			if !ok {
				return NewValidationError(column, "expected string")
			}
			update = update.SetAssignedTo(str)
		case "priority":
			n, ok := value.(int)
			if !ok {
				return NewValidationError(column, "expected int")
			}
			update = update.SetPriority(n)
		case "description":
			str, ok := value.(string)
			if !ok {
				return NewValidationError(column, "expected string")
			}
			update = update.SetDescription(str)
		case "quality_gate_status":
			str, ok := value.(string)
			if !ok {
				return NewValidationError(column, "expected string")
			}
			status := enttask.QualityGateStatus(str)
			if err := enttask.QualityGateStatusValidator(status); err != nil {
				return NewValidationError(column, err.Error())
			}
			update = update.SetQualityGateStatus(status)
		case "quality_gate_failures":
			str, ok := value.(string)
			if !ok {
				return NewValidationError(column, "expected string")
			}
			update = update.SetQualityGateFailures(str)
		case "requires_human_approval":
			b, ok := value.(bool)
			if !ok {
				return NewValidationError(column, "expected bool")
			}
			update = update.SetRequiresHumanApproval(b)
		case "commit_sha":
			str, ok := value.(string)
			if !ok {
				return NewValidationError(column, "expected string")
			}
			update = update.SetCommitSha(str)
		}
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("task %s: %w", taskID, ErrNotFound)
		}
		return fmt.Errorf("failed to update task %s: %w", taskID, err)
	}
	return nil
}

// CompleteWithEvidence commits the completion transaction: the verified
// evidence row and the in_progress → completed transition succeed or fail
// together. On any error the task is left untouched.
func (s *TaskService) CompleteWithEvidence(ctx context.Context, taskID, agentID string, ev *models.EvidenceData) (string, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start completion transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	evidenceID, err := createEvidence(ctx, tx.Evidence, ev)
	if err != nil {
		return "", err
	}

	var n int
	n, err = tx.Task.Update().
		Where(
			enttask.IDEQ(taskID),
			enttask.StatusEQ(enttask.StatusInProgress),
			enttask.AssignedToEQ(agentID),
		).
		SetStatus(enttask.StatusCompleted).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		err = fmt.Errorf("failed to complete task %s: %w", taskID, err)
		return "", err
	}
	if n == 0 {
		err = fmt.Errorf("task %s is not in progress for agent %s: %w", taskID, agentID, ErrConcurrentModification)
		return "", err
	}

	if err = tx.Commit(); err != nil {
		err = fmt.Errorf("failed to commit completion of task %s: %w", taskID, err)
		return "", err
	}
	return evidenceID, nil
}

// SaveEvidence persists an evidence record outside the completion
// transaction. Used for failed verification, which is kept for audit.
func (s *TaskService) SaveEvidence(ctx context.Context, ev *models.EvidenceData) (string, error) {
	return createEvidence(ctx, s.client.Evidence, ev)
}

// createEvidence builds the evidence row from its value form. Shared between
// the transactional and standalone paths.
func createEvidence(ctx context.Context, client *ent.EvidenceClient, ev *models.EvidenceData) (string, error) {
	testResult, err := toJSONMap(ev.TestResult)
	if err != nil {
		return "", fmt.Errorf("failed to serialize test result: %w", err)
	}
	violations, err := toJSONMapSlice(ev.SkipViolations)
	if err != nil {
		return "", fmt.Errorf("failed to serialize skip violations: %w", err)
	}
	qualityMetrics, err := toJSONMap(ev.QualityMetrics)
	if err != nil {
		return "", fmt.Errorf("failed to serialize quality metrics: %w", err)
	}

	id := uuid.NewString()
	create := client.Create().
		SetID(id).
		SetTaskID(ev.TaskID).
		SetAgentID(ev.AgentID).
		SetTaskDescription(ev.TaskDescription).
		SetVerified(ev.Verified).
		SetVerificationErrors(ev.VerificationErrors).
		SetLanguage(ev.Language).
		SetFramework(ev.Framework)
	if testResult != nil {
		create = create.SetTestResult(testResult)
	}
	if violations != nil {
		create = create.SetSkipViolations(violations)
	}
	if qualityMetrics != nil {
		create = create.SetQualityMetrics(qualityMetrics)
	}
	if ev.Coverage != nil {
		create = create.SetCoverage(*ev.Coverage)
	}

	if err := create.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to save evidence for task %s: %w", ev.TaskID, err)
	}
	return id, nil
}

// RecordCorrection appends a self-correction attempt, numbered sequentially
// per task and capped at 3.
func (s *TaskService) RecordCorrection(ctx context.Context, taskID, errorAnalysis, fixDescription, codeChanges string) (*ent.CorrectionAttempt, error) {
	existing, err := s.client.CorrectionAttempt.Query().
		Where(entcorrection.TaskIDEQ(taskID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count correction attempts for task %s: %w", taskID, err)
	}
	if existing >= maxCorrectionAttempts {
		return nil, NewValidationError("attempt_number",
			fmt.Sprintf("task %s already has %d correction attempts", taskID, maxCorrectionAttempts))
	}

	attempt, err := s.client.CorrectionAttempt.Create().
		SetID(uuid.NewString()).
		SetTaskID(taskID).
		SetAttemptNumber(existing + 1).
		SetErrorAnalysis(errorAnalysis).
		SetFixDescription(fixDescription).
		SetCodeChanges(codeChanges).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record correction attempt for task %s: %w", taskID, err)
	}
	return attempt, nil
}

func toJSONMap(v interface{}) (map[string]interface{}, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func toJSONMapSlice(v interface{}) ([]map[string]interface{}, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m []map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
