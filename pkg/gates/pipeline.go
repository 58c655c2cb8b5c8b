package gates

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/codeframe-hq/codeframe/ent"
	enttask "github.com/codeframe-hq/codeframe/ent/task"
	enttestresult "github.com/codeframe-hq/codeframe/ent/testresult"
	"github.com/codeframe-hq/codeframe/pkg/config"
	"github.com/codeframe-hq/codeframe/pkg/metrics"
	"github.com/codeframe-hq/codeframe/pkg/models"
)

// Pipeline runs the quality gates for one task. Fail-slow: every gate runs
// and failures accumulate; the aggregate verdict and serialized failures are
// written back to the task.
type Pipeline struct {
	client   *ent.Client
	cfg      *config.GatesConfig
	security *config.SecurityConfig
	reviewer Reviewer

	// Injectable for tests
	run runnerFunc
}

// NewPipeline creates a pipeline. reviewer may be nil; review then reports
// no findings.
func NewPipeline(client *ent.Client, cfg *config.GatesConfig, security *config.SecurityConfig, reviewer Reviewer) *Pipeline {
	if reviewer == nil {
		reviewer = NoopReviewer{}
	}
	return &Pipeline{
		client:   client,
		cfg:      cfg,
		security: security,
		reviewer: reviewer,
		run:      runTool,
	}
}

// RunAll executes every gate against the task's project and persists the
// verdict. touchedFiles feeds the sensitive-path check; it may be empty.
func (p *Pipeline) RunAll(ctx context.Context, task *ent.Task, projectRoot string, touchedFiles []string) (*models.PipelineResult, error) {
	if err := p.client.Task.UpdateOneID(task.ID).
		SetQualityGateStatus(enttask.QualityGateStatusRunning).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to mark gates running for task %s: %w", task.ID, err)
	}

	if err := p.flagSensitivePaths(ctx, task, touchedFiles); err != nil {
		return nil, err
	}

	language, framework := DetectProject(projectRoot)
	result := &models.PipelineResult{
		Language:  language,
		Framework: framework,
	}

	result.Gates = append(result.Gates, p.runLint(ctx, projectRoot, language))
	result.Gates = append(result.Gates, p.runTypecheck(ctx, projectRoot, language))
	result.Gates = append(result.Gates, p.runSkipDetection(projectRoot, language, result))
	testGate, testData := p.runTests(ctx, projectRoot, language)
	result.Gates = append(result.Gates, testGate)
	result.TestResult = testData
	result.Gates = append(result.Gates, p.runCoverage(ctx, projectRoot, language, result))
	result.Gates = append(result.Gates, p.runReview(ctx, task, projectRoot))

	for _, gate := range result.Gates {
		metrics.GateDuration.WithLabelValues(string(gate.Gate)).Observe(gate.Duration.Seconds())
		for _, failure := range gate.Failures {
			metrics.GateFailures.WithLabelValues(string(gate.Gate), string(failure.Severity)).Inc()
			result.Failures = append(result.Failures, failure)
		}
	}
	result.Passed = len(result.Failures) == 0

	if err := p.persistVerdict(ctx, task, result); err != nil {
		return nil, err
	}

	slog.Info("Quality gates finished",
		"task_id", task.ID,
		"passed", result.Passed,
		"failures", len(result.Failures),
		"language", language)
	return result, nil
}

// flagSensitivePaths sets requires_human_approval when any touched file path
// contains a sensitive pattern. The flag never fails gates by itself.
func (p *Pipeline) flagSensitivePaths(ctx context.Context, task *ent.Task, touchedFiles []string) error {
	for _, file := range touchedFiles {
		lower := strings.ToLower(file)
		for _, pattern := range p.security.SensitivePathPatterns {
			if strings.Contains(lower, pattern) {
				slog.Warn("Task touches sensitive path, requiring human approval",
					"task_id", task.ID, "file", file, "pattern", pattern)
				if err := p.client.Task.UpdateOneID(task.ID).
					SetRequiresHumanApproval(true).
					Exec(ctx); err != nil {
					return fmt.Errorf("failed to flag task %s for approval: %w", task.ID, err)
				}
				return nil
			}
		}
	}
	return nil
}

func (p *Pipeline) runLint(ctx context.Context, projectRoot, language string) models.GateResult {
	gate := models.GateResult{Gate: models.GateLint, Passed: true}
	tool, ok := p.cfg.Tools[language+".lint"]
	if !ok {
		return gate
	}

	res := p.run(ctx, projectRoot, tool)
	gate.Duration = res.Duration
	switch {
	case res.ToolMissing:
		// Skipped: absent tooling is not the agent's failure
	case res.TimedOut:
		gate.Passed = false
		gate.Failures = append(gate.Failures, models.GateFailure{
			Gate: models.GateLint, Reason: "Timeout",
			Details: fmt.Sprintf("linter exceeded %s", tool.Timeout), Severity: models.SeverityMedium,
		})
	case res.ExitCode != 0:
		gate.Passed = false
		gate.Failures = append(gate.Failures, models.GateFailure{
			Gate: models.GateLint, Reason: "lint violations",
			Details: firstLines(res.Output(), 20), Severity: models.SeverityMedium,
		})
	}
	return gate
}

func (p *Pipeline) runTypecheck(ctx context.Context, projectRoot, language string) models.GateResult {
	gate := models.GateResult{Gate: models.GateTypecheck, Passed: true}
	tool, ok := p.cfg.Tools[language+".typecheck"]
	if !ok {
		return gate
	}

	res := p.run(ctx, projectRoot, tool)
	gate.Duration = res.Duration
	switch {
	case res.ToolMissing:
	case res.TimedOut:
		gate.Passed = false
		gate.Failures = append(gate.Failures, models.GateFailure{
			Gate: models.GateTypecheck, Reason: "Timeout",
			Details: fmt.Sprintf("type checker exceeded %s", tool.Timeout), Severity: models.SeverityHigh,
		})
	case res.ExitCode != 0:
		gate.Passed = false
		reason := "type errors"
		if n := countTypeErrors(res.Output()); n > 0 {
			reason = fmt.Sprintf("%d type error(s)", n)
		}
		gate.Failures = append(gate.Failures, models.GateFailure{
			Gate: models.GateTypecheck, Reason: reason,
			Details: firstLines(res.Output(), 20), Severity: models.SeverityHigh,
		})
	}
	return gate
}

func (p *Pipeline) runSkipDetection(projectRoot, language string, result *models.PipelineResult) models.GateResult {
	gate := models.GateResult{Gate: models.GateSkipDetection, Passed: true}
	if !p.cfg.SkipDetectionEnabled {
		return gate
	}

	start := time.Now()
	violations, err := DetectSkips(projectRoot, language)
	gate.Duration = time.Since(start)
	result.SkipViolations = violations

	if err != nil {
		// Detector trouble is reported, never fatal
		gate.Passed = false
		gate.Failures = append(gate.Failures, models.GateFailure{
			Gate: models.GateSkipDetection, Reason: "skip detector error",
			Details: err.Error(), Severity: models.SeverityLow,
		})
	}
	for _, v := range violations {
		severity := models.SeverityMedium
		if v.Level == "error" {
			severity = models.SeverityHigh
		}
		gate.Passed = false
		gate.Failures = append(gate.Failures, models.GateFailure{
			Gate:     models.GateSkipDetection,
			Reason:   fmt.Sprintf("skip marker %s", v.Marker),
			Details:  fmt.Sprintf("%s:%d — %s", v.File, v.Line, v.Description),
			Severity: severity,
		})
	}
	return gate
}

func (p *Pipeline) runTests(ctx context.Context, projectRoot, language string) (models.GateResult, *models.TestResultData) {
	gate := models.GateResult{Gate: models.GateTests, Passed: true}
	tool, ok := p.cfg.Tools[language+".test"]
	if !ok {
		return gate, nil
	}

	res := p.run(ctx, projectRoot, tool)
	gate.Duration = res.Duration

	if res.ToolMissing {
		return gate, nil
	}

	data := &models.TestResultData{
		DurationSeconds: res.Duration.Seconds(),
		Output:          truncate(res.Output(), 16*1024),
	}

	if res.TimedOut {
		data.Status = "timeout"
		gate.Passed = false
		gate.Failures = append(gate.Failures, models.GateFailure{
			Gate: models.GateTests, Reason: "Timeout",
			Details: fmt.Sprintf("test runner exceeded %s", tool.Timeout), Severity: models.SeverityHigh,
		})
		return gate, data
	}

	counts := parseTestOutput(res.Output())
	data.Passed = counts.Passed
	data.Failed = counts.Failed
	data.Errors = counts.Errors
	data.Skipped = counts.Skipped

	if res.ExitCode == 0 {
		data.Status = "passed"
		if counts.Summary == "Unknown" && counts.Passed == 0 {
			data.Status = "no_tests"
		}
		return gate, data
	}

	data.Status = "failed"
	gate.Passed = false
	gate.Failures = append(gate.Failures, models.GateFailure{
		Gate:     models.GateTests,
		Reason:   counts.Summary,
		Details:  firstLines(res.Output(), 20),
		Severity: models.SeverityHigh,
	})
	return gate, data
}

func (p *Pipeline) runCoverage(ctx context.Context, projectRoot, language string, result *models.PipelineResult) models.GateResult {
	gate := models.GateResult{Gate: models.GateCoverage, Passed: true}
	tool, ok := p.cfg.Tools[language+".coverage"]
	if !ok {
		return gate
	}

	res := p.run(ctx, projectRoot, tool)
	gate.Duration = res.Duration
	if res.ToolMissing {
		return gate
	}
	if res.TimedOut {
		gate.Passed = false
		gate.Failures = append(gate.Failures, models.GateFailure{
			Gate: models.GateCoverage, Reason: "Timeout",
			Details: fmt.Sprintf("coverage run exceeded %s", tool.Timeout), Severity: models.SeverityHigh,
		})
		return gate
	}

	pct := parseCoverage(res.Output())
	result.Coverage = pct
	if pct != nil && *pct < p.cfg.CoverageThreshold {
		gate.Passed = false
		gate.Failures = append(gate.Failures, models.GateFailure{
			Gate:     models.GateCoverage,
			Reason:   fmt.Sprintf("coverage %.1f%% below threshold %.1f%%", *pct, p.cfg.CoverageThreshold),
			Severity: models.SeverityHigh,
		})
	}
	return gate
}

func (p *Pipeline) runReview(ctx context.Context, task *ent.Task, projectRoot string) models.GateResult {
	gate := models.GateResult{Gate: models.GateReview, Passed: true}

	start := time.Now()
	findings, err := p.reviewer.Review(ctx, task, projectRoot)
	gate.Duration = time.Since(start)
	if err != nil {
		gate.Passed = false
		gate.Failures = append(gate.Failures, models.GateFailure{
			Gate: models.GateReview, Reason: "review unavailable",
			Details: err.Error(), Severity: models.SeverityLow,
		})
		return gate
	}

	// Only critical and high findings fail the gate
	for _, f := range findings {
		if f.Severity != models.SeverityCritical && f.Severity != models.SeverityHigh {
			continue
		}
		gate.Passed = false
		gate.Failures = append(gate.Failures, models.GateFailure{
			Gate:     models.GateReview,
			Reason:   f.Message,
			Details:  f.File,
			Severity: f.Severity,
		})
	}
	return gate
}

// persistVerdict writes the gate verdict and serialized failures to the task
// and stores the test result row when tests actually ran.
func (p *Pipeline) persistVerdict(ctx context.Context, task *ent.Task, result *models.PipelineResult) error {
	status := enttask.QualityGateStatusPassed
	if !result.Passed {
		status = enttask.QualityGateStatusFailed
	}

	failuresJSON, err := json.Marshal(result.Failures)
	if err != nil {
		return fmt.Errorf("failed to serialize gate failures: %w", err)
	}

	if err := p.client.Task.UpdateOneID(task.ID).
		SetQualityGateStatus(status).
		SetQualityGateFailures(string(failuresJSON)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to persist gate verdict for task %s: %w", task.ID, err)
	}

	if result.TestResult != nil {
		err := p.client.TestResult.Create().
			SetID(uuid.NewString()).
			SetTaskID(task.ID).
			SetStatus(enttestresult.Status(result.TestResult.Status)).
			SetPassed(result.TestResult.Passed).
			SetFailed(result.TestResult.Failed).
			SetErrors(result.TestResult.Errors).
			SetSkipped(result.TestResult.Skipped).
			SetDurationSeconds(result.TestResult.DurationSeconds).
			SetOutput(result.TestResult.Output).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to persist test result for task %s: %w", task.ID, err)
		}
	}
	return nil
}
