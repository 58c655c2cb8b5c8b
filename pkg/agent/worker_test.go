package agent

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeframe-hq/codeframe/ent"
	entagent "github.com/codeframe-hq/codeframe/ent/agent"
	entblocker "github.com/codeframe-hq/codeframe/ent/blocker"
	"github.com/codeframe-hq/codeframe/ent/contextitem"
	entevidence "github.com/codeframe-hq/codeframe/ent/evidence"
	enttask "github.com/codeframe-hq/codeframe/ent/task"
	enttokenusage "github.com/codeframe-hq/codeframe/ent/tokenusage"
	"github.com/codeframe-hq/codeframe/pkg/blocker"
	"github.com/codeframe-hq/codeframe/pkg/config"
	"github.com/codeframe-hq/codeframe/pkg/contextmgr"
	"github.com/codeframe-hq/codeframe/pkg/evidence"
	"github.com/codeframe-hq/codeframe/pkg/gates"
	"github.com/codeframe-hq/codeframe/pkg/llm"
	"github.com/codeframe-hq/codeframe/pkg/maturity"
	"github.com/codeframe-hq/codeframe/pkg/models"
	"github.com/codeframe-hq/codeframe/pkg/services"
	"github.com/codeframe-hq/codeframe/pkg/tokens"
	testdb "github.com/codeframe-hq/codeframe/test/database"
)

type fakeProvider struct {
	calls int
	err   error
	resp  llm.Response
}

func (p *fakeProvider) Call(_ context.Context, req llm.Request) (*llm.Response, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	resp := p.resp
	if resp.Model == "" {
		resp.Model = req.Model
	}
	return &resp, nil
}

func (p *fakeProvider) Name() string { return "fake" }

type workerFixture struct {
	worker   *Worker
	client   *ent.Client
	provider *fakeProvider
	task     *ent.Task
	root     string
	agentID  string
}

// fixtureOpts shape one test's environment: gate tools are shell scripts
// keyed by gate name (lint/typecheck/test/coverage) so subprocess outcomes
// stay deterministic.
type fixtureOpts struct {
	scripts   map[string]string
	evidence  *config.EvidenceConfig
	rateLimit int
}

func setupWorker(t *testing.T, opts fixtureOpts) *workerFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "pyproject.toml"), []byte("[project]\nname = \"demo\"\n"), 0o600))

	projectID := uuid.NewString()
	_, err := client.Project.Create().
		SetID(projectID).
		SetName("demo").
		SetWorkspacePath(root).
		Save(ctx)
	require.NoError(t, err)

	agentID := uuid.NewString()
	_, err = client.Agent.Create().
		SetID(agentID).
		SetAgentType(entagent.AgentTypeBackend).
		Save(ctx)
	require.NoError(t, err)

	task, err := client.Task.Create().
		SetID(uuid.NewString()).
		SetProjectID(projectID).
		SetTaskNumber("7").
		SetTitle("implement parser").
		SetDescription("Build the parser module.").
		SetStatus(enttask.StatusInProgress).
		SetAssignedTo(agentID).
		Save(ctx)
	require.NoError(t, err)

	tools := map[string]config.GateToolConfig{}
	for gate, script := range opts.scripts {
		tools["python."+gate] = config.GateToolConfig{
			Command: []string{"sh", "-c", script},
			Timeout: 30 * time.Second,
		}
	}
	gatesCfg := &config.GatesConfig{
		SkipDetectionEnabled: true,
		CoverageThreshold:    85.0,
		Tools:                tools,
	}

	llmCfg := config.DefaultLLMConfig()
	rateCfg := config.DefaultRateLimitConfig()
	if opts.rateLimit > 0 {
		rateCfg.AgentCallsPerMinute = opts.rateLimit
	}
	evCfg := opts.evidence
	if evCfg == nil {
		evCfg = config.DefaultEvidenceConfig()
	}

	provider := &fakeProvider{resp: llm.Response{Content: "done", InputTokens: 100, OutputTokens: 50}}
	counter := tokens.NewCounter()
	audit := services.NewAuditService(client.Client, config.AuditVerbosityLow)
	usage := services.NewTokenUsageService(client.Client)
	gateway := llm.NewGateway(provider, llmCfg, rateCfg, counter, audit, usage)
	agents := services.NewAgentService(client.Client)

	worker := NewWorker(agentID, Deps{
		Client:   client.Client,
		LLM:      llmCfg,
		Gateway:  gateway,
		Tasks:    services.NewTaskService(client.Client),
		Pipeline: gates.NewPipeline(client.Client, gatesCfg, config.DefaultSecurityConfig(), nil),
		Verifier: evidence.NewVerifier(evCfg),
		Blockers: blocker.NewRegistry(client.Client, rateCfg),
		Contexts: contextmgr.NewManager(client.Client, counter),
		Assessor: maturity.NewAssessor(client.Client, agents, audit),
		Tracker:  maturity.NewTracker(),
	})
	return &workerFixture{
		worker:   worker,
		client:   client.Client,
		provider: provider,
		task:     task,
		root:     root,
		agentID:  agentID,
	}
}

func TestExecuteTaskRecordsUsage(t *testing.T) {
	f := setupWorker(t, fixtureOpts{})
	ctx := context.Background()

	result := f.worker.ExecuteTask(ctx, f.task, "", 0)
	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, "done", result.Output)
	assert.False(t, result.TokenTrackingFailed)
	require.NotNil(t, result.Usage)
	assert.Equal(t, 100, result.Usage.InputTokens)
	assert.Equal(t, 50, result.Usage.OutputTokens)
	assert.Equal(t, 1, f.worker.ResponseCount())

	// The gateway writes the usage row, keyed by the call type.
	count, err := f.client.TokenUsage.Query().
		Where(
			enttokenusage.AgentIDEQ(f.agentID),
			enttokenusage.CallTypeEQ(enttokenusage.CallTypeTaskExecution),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestExecuteTaskEmptyContentCompletes(t *testing.T) {
	f := setupWorker(t, fixtureOpts{})
	f.provider.resp = llm.Response{Content: "", InputTokens: 10, OutputTokens: 0}

	result := f.worker.ExecuteTask(context.Background(), f.task, "", 0)
	assert.Equal(t, "completed", result.Status)
	assert.Empty(t, result.Output)
}

func TestExecuteTaskUnknownModelFailsWithoutCall(t *testing.T) {
	f := setupWorker(t, fixtureOpts{})

	result := f.worker.ExecuteTask(context.Background(), f.task, "gpt-nonexistent", 0)
	assert.Equal(t, "failed", result.Status)
	assert.NotEmpty(t, result.Error)
	assert.Zero(t, f.provider.calls, "disallowed models never reach the provider")
}

func TestExecuteTaskRateLimitSurfacesAsFailedResult(t *testing.T) {
	f := setupWorker(t, fixtureOpts{rateLimit: 1})
	ctx := context.Background()

	first := f.worker.ExecuteTask(ctx, f.task, "", 0)
	require.Equal(t, "completed", first.Status)

	second := f.worker.ExecuteTask(ctx, f.task, "", 0)
	assert.Equal(t, "failed", second.Status)
	assert.Equal(t, llm.CodeAgentRateLimitExceeded, second.Error)
	assert.Equal(t, 1, f.provider.calls)
	assert.Equal(t, 1, f.worker.ResponseCount(), "refused calls do not count as responses")
}

func TestCompleteTaskCommitsWhenGatesAndEvidencePass(t *testing.T) {
	f := setupWorker(t, fixtureOpts{scripts: map[string]string{
		"test":     "echo '12 passed'",
		"coverage": "echo 'TOTAL 95%'",
	}})
	ctx := context.Background()

	result := f.worker.CompleteTask(ctx, f.task, "", nil)
	assert.True(t, result.Success)
	assert.Equal(t, models.CompleteStatusCompleted, result.Status)
	require.NotEmpty(t, result.EvidenceID)

	task, err := f.client.Task.Get(ctx, f.task.ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusCompleted, task.Status)
	assert.Equal(t, enttask.QualityGateStatusPassed, task.QualityGateStatus)

	ev, err := f.client.Evidence.Get(ctx, result.EvidenceID)
	require.NoError(t, err)
	assert.True(t, ev.Verified)
	require.NotNil(t, ev.Coverage)
	assert.InDelta(t, 95.0, *ev.Coverage, 1e-9)

	// The quality record that feeds the trend tracker is persisted with the
	// evidence row.
	require.NotNil(t, ev.QualityMetrics)
	assert.InDelta(t, 100.0, ev.QualityMetrics["test_pass_rate"], 1e-9)
	assert.InDelta(t, 95.0, ev.QualityMetrics["coverage_pct"], 1e-9)
}

func TestCompleteTaskBlocksOnInvalidEvidence(t *testing.T) {
	f := setupWorker(t, fixtureOpts{scripts: map[string]string{
		"test":     "echo '12 passed'",
		"coverage": "echo 'TOTAL 60%'",
	}})
	ctx := context.Background()

	result := f.worker.CompleteTask(ctx, f.task, "", nil)
	assert.False(t, result.Success)
	assert.Equal(t, models.CompleteStatusBlocked, result.Status)
	require.NotEmpty(t, result.BlockerID)
	assert.NotEmpty(t, result.EvidenceErrors)

	// The failed evidence is kept for diagnosis
	count, err := f.client.Evidence.Query().
		Where(entevidence.TaskIDEQ(f.task.ID), entevidence.Verified(false)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// SYNC blocker halted the task
	b, err := f.client.Blocker.Get(ctx, result.BlockerID)
	require.NoError(t, err)
	assert.Equal(t, entblocker.BlockerTypeSYNC, b.BlockerType)
	assert.Equal(t, entblocker.StatusPENDING, b.Status)
	assert.Contains(t, b.Question, "Evidence verification")

	task, err := f.client.Task.Get(ctx, f.task.ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusBlocked, task.Status)
}

func TestCompleteTaskBlocksOnGateFailures(t *testing.T) {
	f := setupWorker(t, fixtureOpts{scripts: map[string]string{
		"lint":     "echo 'E501 line too long'; exit 1",
		"test":     "echo '12 passed'",
		"coverage": "echo 'TOTAL 95%'",
	}})
	ctx := context.Background()

	result := f.worker.CompleteTask(ctx, f.task, "", nil)
	assert.Equal(t, models.CompleteStatusBlocked, result.Status)
	require.NotEmpty(t, result.BlockerID)

	b, err := f.client.Blocker.Get(ctx, result.BlockerID)
	require.NoError(t, err)
	assert.Contains(t, b.Question, "LINT")
	assert.Contains(t, b.Question, "E501")

	task, err := f.client.Task.Get(ctx, f.task.ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusBlocked, task.Status)
	assert.Equal(t, enttask.QualityGateStatusFailed, task.QualityGateStatus)
}

func TestCompleteTaskBlocksOnQualityDegradation(t *testing.T) {
	f := setupWorker(t, fixtureOpts{
		scripts: map[string]string{
			"test":     "echo '10 passed'",
			"coverage": "echo 'TOTAL 60%'",
		},
		// Relaxed floor so the 60% run still verifies and reaches the
		// trend check.
		evidence: &config.EvidenceConfig{
			RequireCoverage: true,
			MinCoverage:     50.0,
			MinPassRate:     100.0,
		},
	})
	ctx := context.Background()

	// A prior perfect run establishes the peak.
	require.NoError(t, f.worker.tracker.Append(f.root, models.QualityMetrics{
		Timestamp:    time.Now().Add(-time.Hour),
		TestPassRate: 100,
		CoveragePct:  100,
	}))

	result := f.worker.CompleteTask(ctx, f.task, "", nil)
	assert.Equal(t, models.CompleteStatusBlocked, result.Status)
	require.NotNil(t, result.Degradation)
	assert.InDelta(t, 100.0, result.Degradation.PeakScore, 1e-9)
	assert.InDelta(t, 20.0, result.Degradation.Drop, 1e-9)
	require.NotEmpty(t, result.BlockerID)

	b, err := f.client.Blocker.Get(ctx, result.BlockerID)
	require.NoError(t, err)
	assert.Contains(t, b.Question, "degradation")
}

func TestCompleteTaskFailsWithoutProject(t *testing.T) {
	f := setupWorker(t, fixtureOpts{})
	orphan := &ent.Task{ID: uuid.NewString()}

	result := f.worker.CompleteTask(context.Background(), orphan, "", nil)
	assert.Equal(t, models.CompleteStatusFailed, result.Status)
	assert.Contains(t, result.Message, "no project")
}

func TestGateBlockerQuestionFormat(t *testing.T) {
	var failures []models.GateFailure
	for i := 0; i < 12; i++ {
		failures = append(failures, models.GateFailure{
			Gate:     models.GateLint,
			Reason:   fmt.Sprintf("violation %d", i),
			Details:  "line one\nline two\nline three\nline four",
			Severity: models.SeverityMedium,
		})
	}

	question := gateBlockerQuestion(failures)
	assert.Contains(t, question, "🟡 LINT: violation 0")
	assert.Contains(t, question, "... 2 more failures")
	assert.Equal(t, 10, strings.Count(question, "LINT:"))
	assert.Contains(t, question, "line three")
	assert.NotContains(t, question, "line four", "details are trimmed to three lines")
}

func TestShouldRecommendContextReset(t *testing.T) {
	f := setupWorker(t, fixtureOpts{})
	ctx := context.Background()

	rec, err := f.worker.ShouldRecommendContextReset(ctx, 0)
	require.NoError(t, err)
	assert.False(t, rec.ShouldReset)

	f.worker.responseCount = DefaultMaxResponses
	rec, err = f.worker.ShouldRecommendContextReset(ctx, 0)
	require.NoError(t, err)
	assert.True(t, rec.ShouldReset)
	require.Len(t, rec.Reasons, 1)
	assert.Contains(t, rec.Reasons[0], "response count")
}

func TestContextWrappersRequireActiveTask(t *testing.T) {
	f := setupWorker(t, fixtureOpts{})
	ctx := context.Background()

	_, err := f.worker.SaveContextItem(ctx, contextitem.ItemTypeCODE, "snippet")
	require.ErrorIs(t, err, ErrNoActiveTask)

	// Executing a task binds the project scope
	f.worker.ExecuteTask(ctx, f.task, "", 0)

	id, err := f.worker.SaveContextItem(ctx, contextitem.ItemTypeCODE, "snippet")
	require.NoError(t, err)

	item, err := f.worker.GetContextItem(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "snippet", item.Content)

	items, err := f.worker.LoadContext(ctx, contextmgr.LoadOptions{})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestAssessMaturityDelegates(t *testing.T) {
	f := setupWorker(t, fixtureOpts{})

	assessment, err := f.worker.AssessMaturity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "D1", assessment.MaturityLevel)
}
