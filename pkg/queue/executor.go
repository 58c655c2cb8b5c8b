// Package queue implements the worker pool that drains the pending-task
// queue: each pool worker claims one task at a time, executes it through a
// dedicated worker agent, and drives the completion workflow.
package queue

import (
	"context"
	"errors"
	"log/slog"

	"github.com/codeframe-hq/codeframe/ent"
	"github.com/codeframe-hq/codeframe/pkg/agent"
	"github.com/codeframe-hq/codeframe/pkg/models"
)

// Queue sentinel errors.
var (
	ErrNoTasksAvailable = errors.New("no pending tasks available")
	ErrClaimLost        = errors.New("task claimed by another worker")
)

// ExecutionResult is the terminal outcome of processing one task.
type ExecutionResult struct {
	Status  models.CompleteStatus
	Message string
	Error   error
}

// TaskExecutor processes one claimed task end to end. Implementations own
// all task status transitions past in_progress.
type TaskExecutor interface {
	Execute(ctx context.Context, task *ent.Task) *ExecutionResult
}

// ExecutorFactory builds the executor for one pool worker's agent identity.
type ExecutorFactory func(agentID string) TaskExecutor

// AgentExecutor runs tasks through a worker agent: LLM execution, then the
// gate/evidence completion workflow, then a maturity check when due.
type AgentExecutor struct {
	worker *agent.Worker
}

// NewAgentExecutor wraps a worker agent as a queue executor.
func NewAgentExecutor(worker *agent.Worker) *AgentExecutor {
	return &AgentExecutor{worker: worker}
}

// Execute drives one task through execution and completion.
func (e *AgentExecutor) Execute(ctx context.Context, task *ent.Task) *ExecutionResult {
	exec := e.worker.ExecuteTask(ctx, task, "", 0)
	if exec.Status != "completed" {
		return &ExecutionResult{
			Status:  models.CompleteStatusFailed,
			Message: exec.Error,
			Error:   errors.New(exec.Error),
		}
	}

	complete := e.worker.CompleteTask(ctx, task, "", nil)

	// Reassessment is due-date driven; a failure here never affects the
	// task outcome.
	e.maybeAssess(ctx)

	return &ExecutionResult{
		Status:  complete.Status,
		Message: complete.Message,
	}
}

func (e *AgentExecutor) maybeAssess(ctx context.Context) {
	assessment, err := e.worker.AssessMaturityIfDue(ctx)
	if err != nil {
		slog.Warn("Maturity assessment failed", "agent_id", e.worker.ID(), "error", err)
		return
	}
	if assessment != nil && assessment.Changed {
		slog.Info("Agent maturity level changed",
			"agent_id", e.worker.ID(), "level", assessment.MaturityLevel)
	}
}
