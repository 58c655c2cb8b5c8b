// Package agent implements the worker agent: the orchestrator that executes
// a task against the LLM gateway and drives the completion workflow through
// quality gates, evidence verification, and blocker escalation.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/codeframe-hq/codeframe/ent"
	entblocker "github.com/codeframe-hq/codeframe/ent/blocker"
	"github.com/codeframe-hq/codeframe/ent/contextitem"
	"github.com/codeframe-hq/codeframe/pkg/blocker"
	"github.com/codeframe-hq/codeframe/pkg/config"
	"github.com/codeframe-hq/codeframe/pkg/contextmgr"
	"github.com/codeframe-hq/codeframe/pkg/evidence"
	"github.com/codeframe-hq/codeframe/pkg/gates"
	"github.com/codeframe-hq/codeframe/pkg/llm"
	"github.com/codeframe-hq/codeframe/pkg/maturity"
	"github.com/codeframe-hq/codeframe/pkg/metrics"
	"github.com/codeframe-hq/codeframe/pkg/models"
	"github.com/codeframe-hq/codeframe/pkg/services"
)

const (
	// DefaultMaxTokens is the output budget when the caller does not set one.
	DefaultMaxTokens = 4096

	// DefaultMaxResponses is the response count that triggers a context
	// reset recommendation.
	DefaultMaxResponses = 20

	// Blocker questions render at most this many gate failures.
	maxFailuresInBlocker = 10
	// Failure details are trimmed to this many lines in blocker questions.
	maxDetailLines = 3
)

const taskSystemPrompt = "You are a software engineering agent. " +
	"Complete the assigned task with working, tested code. " +
	"Respond with the implementation and a short summary of what was done."

// ErrNoActiveTask is returned by operations that derive their project scope
// from the current task when no task is active.
var ErrNoActiveTask = fmt.Errorf("no active task: %w", services.ErrInvalidInput)

// Worker executes and completes tasks for a single agent. A Worker is bound
// to one agent id and handles one task at a time; it is not safe for
// concurrent use.
type Worker struct {
	id       string
	client   *ent.Client
	llmCfg   *config.LLMConfig
	gateway  *llm.Gateway
	tasks    *services.TaskService
	pipeline *gates.Pipeline
	verifier *evidence.Verifier
	blockers *blocker.Registry
	contexts *contextmgr.Manager
	assessor *maturity.Assessor
	tracker  *maturity.Tracker

	currentTask   *ent.Task
	responseCount int

	now func() time.Time
}

// Deps carries the collaborators a Worker orchestrates.
type Deps struct {
	Client   *ent.Client
	LLM      *config.LLMConfig
	Gateway  *llm.Gateway
	Tasks    *services.TaskService
	Pipeline *gates.Pipeline
	Verifier *evidence.Verifier
	Blockers *blocker.Registry
	Contexts *contextmgr.Manager
	Assessor *maturity.Assessor
	Tracker  *maturity.Tracker
}

// NewWorker creates a worker bound to the given agent id.
func NewWorker(agentID string, deps Deps) *Worker {
	return &Worker{
		id:       agentID,
		client:   deps.Client,
		llmCfg:   deps.LLM,
		gateway:  deps.Gateway,
		tasks:    deps.Tasks,
		pipeline: deps.Pipeline,
		verifier: deps.Verifier,
		blockers: deps.Blockers,
		contexts: deps.Contexts,
		assessor: deps.Assessor,
		tracker:  deps.Tracker,
		now:      time.Now,
	}
}

// ID returns the agent id this worker acts as.
func (w *Worker) ID() string { return w.id }

// ResponseCount returns how many LLM responses this worker has consumed.
func (w *Worker) ResponseCount() int { return w.responseCount }

// ExecuteTask sends the task to the LLM and returns the model's output.
// Gateway refusals and provider failures never raise: they come back as a
// failed result carrying the refusal code or error text.
func (w *Worker) ExecuteTask(ctx context.Context, task *ent.Task, model string, maxTokens int) *models.ExecuteResult {
	w.currentTask = task
	if model == "" {
		model = w.llmCfg.DefaultModel
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	description, _ := llm.Sanitize(task.Description)
	prompt := fmt.Sprintf("Task #%s: %s\n\nDescription:\n%s\n\nPlease complete this task.",
		task.TaskNumber, task.Title, description)

	result, err := w.gateway.Call(ctx, llm.CallInput{
		AgentID:   w.id,
		TaskID:    task.ID,
		ProjectID: task.ProjectID,
		Model:     model,
		System:    taskSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens: maxTokens,
		CallType:  "task_execution",
	})
	if err != nil {
		code := llm.GatewayCode(err)
		if code == "" {
			code = err.Error()
		}
		slog.Warn("Task execution failed",
			"agent_id", w.id, "task_id", task.ID, "error", err)
		return &models.ExecuteResult{Status: "failed", Error: code}
	}

	w.responseCount++

	// Usage rows are written by the gateway itself; a bookkeeping failure
	// there never undoes a completed LLM call.
	return &models.ExecuteResult{
		Status:              "completed",
		Output:              result.Content,
		Model:               result.Model,
		TokenTrackingFailed: result.UsageTrackingFailed,
		Usage: &models.TokenUsageData{
			InputTokens:      result.InputTokens,
			OutputTokens:     result.OutputTokens,
			EstimatedCostUSD: result.EstimatedCostUSD,
		},
	}
}

// CompleteTask drives the completion workflow: quality gates, evidence
// verification, quality-trend tracking, and the final atomic commit. Any
// outcome short of completion either blocks the task behind a SYNC blocker
// or reports a failed status; it never raises.
func (w *Worker) CompleteTask(ctx context.Context, task *ent.Task, projectRoot string, touchedFiles []string) *models.CompleteResult {
	w.currentTask = task
	if task.ProjectID == "" {
		return failResult("task has no project")
	}

	if projectRoot == "" {
		project, err := w.client.Project.Get(ctx, task.ProjectID)
		if err != nil {
			return failResult(fmt.Sprintf("failed to resolve project %s: %v", task.ProjectID, err))
		}
		projectRoot = project.WorkspacePath
	}

	gateResult, err := w.pipeline.RunAll(ctx, task, projectRoot, touchedFiles)
	if err != nil {
		return failResult(fmt.Sprintf("quality gates failed to run: %v", err))
	}

	testResult := gateResult.TestResult
	if testResult == nil {
		testResult = models.NoTestsResult()
	}

	ev := w.verifier.Collect(evidence.CollectInput{
		TaskID:          task.ID,
		AgentID:         w.id,
		TaskDescription: task.Description,
		TestResult:      testResult,
		SkipViolations:  gateResult.SkipViolations,
		Coverage:        gateResult.Coverage,
		Language:        gateResult.Language,
		Framework:       gateResult.Framework,
	})
	if !w.verifier.Verify(ev) {
		evidenceID, err := w.tasks.SaveEvidence(ctx, ev)
		if err != nil {
			slog.Warn("Failed to persist rejected evidence",
				"task_id", task.ID, "error", err)
		}
		question := "Evidence verification failed.\n\n" + evidence.GenerateReport(ev)
		blockerID, err := w.createTaskBlocker(ctx, task, question)
		if err != nil {
			return failResult(fmt.Sprintf("failed to create evidence blocker: %v", err))
		}
		result := &models.CompleteResult{
			Status:            models.CompleteStatusBlocked,
			QualityGateResult: gateResult,
			BlockerID:         blockerID,
			EvidenceID:        evidenceID,
			EvidenceErrors:    ev.VerificationErrors,
			Message:           "evidence verification failed",
		}
		metrics.TaskCompletions.WithLabelValues(string(result.Status)).Inc()
		return result
	}

	coverage := 0.0
	if gateResult.Coverage != nil {
		coverage = *gateResult.Coverage
	}
	record := models.QualityMetrics{
		Timestamp:     w.now(),
		ResponseCount: w.responseCount,
		TestPassRate:  testResult.PassRate(),
		CoveragePct:   coverage,
		TestsPassed:   testResult.Passed,
		TestsFailed:   testResult.Failed,
		TestsSkipped:  testResult.Skipped,
		Language:      gateResult.Language,
		Framework:     gateResult.Framework,
	}
	ev.QualityMetrics = &record
	if err := w.tracker.Append(projectRoot, record); err != nil {
		slog.Warn("Failed to record quality metrics",
			"task_id", task.ID, "error", err)
	}

	if degradation := w.tracker.DetectDegradation(w.tracker.Load(projectRoot)); degradation != nil {
		question := fmt.Sprintf(
			"Quality degradation detected: peak score %.1f dropped to %.1f (drop %.1f points). "+
				"Review recent changes before continuing.",
			degradation.PeakScore, degradation.RecentScore, degradation.Drop)
		blockerID, err := w.createTaskBlocker(ctx, task, question)
		if err != nil {
			return failResult(fmt.Sprintf("failed to create degradation blocker: %v", err))
		}
		result := &models.CompleteResult{
			Status:            models.CompleteStatusBlocked,
			QualityGateResult: gateResult,
			BlockerID:         blockerID,
			Degradation:       degradation,
			Message:           "quality degradation detected",
		}
		metrics.TaskCompletions.WithLabelValues(string(result.Status)).Inc()
		return result
	}

	if gateResult.Passed {
		evidenceID, err := w.tasks.CompleteWithEvidence(ctx, task.ID, w.id, ev)
		if err != nil {
			return failResult(fmt.Sprintf("failed to commit completion: %v", err))
		}
		result := &models.CompleteResult{
			Success:           true,
			Status:            models.CompleteStatusCompleted,
			QualityGateResult: gateResult,
			EvidenceID:        evidenceID,
			Message:           "task completed with verified evidence",
		}
		metrics.TaskCompletions.WithLabelValues(string(result.Status)).Inc()
		slog.Info("Task completed",
			"agent_id", w.id, "task_id", task.ID, "evidence_id", evidenceID)
		return result
	}

	blockerID, err := w.createTaskBlocker(ctx, task, gateBlockerQuestion(gateResult.Failures))
	if err != nil {
		return failResult(fmt.Sprintf("failed to create gate blocker: %v", err))
	}
	result := &models.CompleteResult{
		Status:            models.CompleteStatusBlocked,
		QualityGateResult: gateResult,
		BlockerID:         blockerID,
		Message:           fmt.Sprintf("%d quality gate failures", len(gateResult.Failures)),
	}
	metrics.TaskCompletions.WithLabelValues(string(result.Status)).Inc()
	return result
}

// AssessMaturity scores this agent from its task history.
func (w *Worker) AssessMaturity(ctx context.Context) (*models.MaturityAssessment, error) {
	return w.assessor.Assess(ctx, w.id)
}

// AssessMaturityIfDue assesses only when the cadence says one is due; it
// returns nil when it is not.
func (w *Worker) AssessMaturityIfDue(ctx context.Context) (*models.MaturityAssessment, error) {
	due, err := w.assessor.ShouldAssess(ctx, w.id)
	if err != nil || !due {
		return nil, err
	}
	return w.assessor.Assess(ctx, w.id)
}

// ShouldRecommendContextReset reports whether the worker's context should be
// reset: too many responses consumed, or quality trending down. Pass
// maxResponses <= 0 for the default.
func (w *Worker) ShouldRecommendContextReset(ctx context.Context, maxResponses int) (*models.ContextResetRecommendation, error) {
	if maxResponses <= 0 {
		maxResponses = DefaultMaxResponses
	}

	rec := &models.ContextResetRecommendation{}
	if w.responseCount >= maxResponses {
		rec.Reasons = append(rec.Reasons,
			fmt.Sprintf("response count %d reached limit %d", w.responseCount, maxResponses))
	}

	if w.currentTask != nil && w.currentTask.ProjectID != "" {
		project, err := w.client.Project.Get(ctx, w.currentTask.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve project %s: %w", w.currentTask.ProjectID, err)
		}
		if d := w.tracker.DetectDegradation(w.tracker.Load(project.WorkspacePath)); d != nil {
			rec.Reasons = append(rec.Reasons,
				fmt.Sprintf("quality dropped %.1f points from peak %.1f", d.Drop, d.PeakScore))
		}
	}

	if len(rec.Reasons) > 0 {
		rec.ShouldReset = true
		rec.Recommendation = "flash save the context and start a fresh session"
	}
	return rec, nil
}

// SaveContextItem stores a context item scoped to the current task's project.
func (w *Worker) SaveContextItem(ctx context.Context, itemType contextitem.ItemType, content string) (string, error) {
	projectID, err := w.projectID()
	if err != nil {
		return "", err
	}
	return w.contexts.Save(ctx, projectID, w.id, itemType, content)
}

// LoadContext loads this agent's context items for the current project.
func (w *Worker) LoadContext(ctx context.Context, opts contextmgr.LoadOptions) ([]*ent.ContextItem, error) {
	projectID, err := w.projectID()
	if err != nil {
		return nil, err
	}
	return w.contexts.Load(ctx, projectID, w.id, opts)
}

// GetContextItem fetches one context item, bumping its access count.
func (w *Worker) GetContextItem(ctx context.Context, itemID string) (*ent.ContextItem, error) {
	projectID, err := w.projectID()
	if err != nil {
		return nil, err
	}
	return w.contexts.Get(ctx, projectID, w.id, itemID)
}

// UpdateTiers recomputes scores and tiers for the current project's context.
func (w *Worker) UpdateTiers(ctx context.Context) (int, error) {
	projectID, err := w.projectID()
	if err != nil {
		return 0, err
	}
	return w.contexts.UpdateTiers(ctx, projectID, w.id)
}

// ShouldFlashSave reports whether the context footprint warrants a flash save.
func (w *Worker) ShouldFlashSave(ctx context.Context, force bool) (bool, error) {
	projectID, err := w.projectID()
	if err != nil {
		return false, err
	}
	return w.contexts.ShouldFlashSave(ctx, projectID, w.id, force)
}

// FlashSave checkpoints the current project's context and drops COLD items.
func (w *Worker) FlashSave(ctx context.Context) (*models.FlashSaveResult, error) {
	projectID, err := w.projectID()
	if err != nil {
		return nil, err
	}
	return w.contexts.FlashSave(ctx, projectID, w.id)
}

func (w *Worker) projectID() (string, error) {
	if w.currentTask == nil || w.currentTask.ProjectID == "" {
		return "", ErrNoActiveTask
	}
	return w.currentTask.ProjectID, nil
}

func (w *Worker) createTaskBlocker(ctx context.Context, task *ent.Task, question string) (string, error) {
	if len(question) > blocker.MaxQuestionLen {
		question = question[:blocker.MaxQuestionLen]
	}
	b, err := w.blockers.Create(ctx, blocker.CreateInput{
		AgentID:   w.id,
		ProjectID: task.ProjectID,
		TaskID:    &task.ID,
		Type:      entblocker.BlockerTypeSYNC,
		Question:  question,
	})
	if err != nil {
		return "", err
	}
	return b.ID, nil
}

// gateBlockerQuestion renders gate failures for a human: severity icon,
// uppercased gate name, reason, and the first lines of details, capped at
// ten failures.
func gateBlockerQuestion(failures []models.GateFailure) string {
	var b strings.Builder
	b.WriteString("Quality gates failed. Please review:\n")

	shown := failures
	if len(shown) > maxFailuresInBlocker {
		shown = shown[:maxFailuresInBlocker]
	}
	for _, f := range shown {
		fmt.Fprintf(&b, "\n%s %s: %s\n", f.Severity.Icon(), strings.ToUpper(string(f.Gate)), f.Reason)
		if f.Details != "" {
			lines := strings.Split(f.Details, "\n")
			if len(lines) > maxDetailLines {
				lines = lines[:maxDetailLines]
			}
			for _, line := range lines {
				fmt.Fprintf(&b, "  %s\n", line)
			}
		}
	}
	if extra := len(failures) - len(shown); extra > 0 {
		fmt.Fprintf(&b, "\n... %d more failures\n", extra)
	}
	return b.String()
}

func failResult(message string) *models.CompleteResult {
	metrics.TaskCompletions.WithLabelValues(string(models.CompleteStatusFailed)).Inc()
	return &models.CompleteResult{
		Status:  models.CompleteStatusFailed,
		Message: message,
	}
}
