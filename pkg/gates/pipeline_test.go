package gates

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeframe-hq/codeframe/ent"
	enttask "github.com/codeframe-hq/codeframe/ent/task"
	enttestresult "github.com/codeframe-hq/codeframe/ent/testresult"
	"github.com/codeframe-hq/codeframe/pkg/config"
	"github.com/codeframe-hq/codeframe/pkg/models"
	testdb "github.com/codeframe-hq/codeframe/test/database"
)

// scriptedRunner returns canned results keyed by the tool's first argument
// ("lint", "typecheck", ...), mapped from the configured command.
type scriptedRunner struct {
	results map[string]*runResult
}

func (s *scriptedRunner) run(_ context.Context, _ string, tool config.GateToolConfig) *runResult {
	if res, ok := s.results[tool.Command[0]]; ok {
		return res
	}
	return &runResult{ToolMissing: true}
}

func setupPipeline(t *testing.T, runner *scriptedRunner) (*Pipeline, *ent.Client, *ent.Task, string) {
	t.Helper()
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	projectID := uuid.NewString()
	_, err := client.Project.Create().
		SetID(projectID).
		SetName("demo").
		SetWorkspacePath("/tmp/demo").
		Save(ctx)
	require.NoError(t, err)

	task, err := client.Task.Create().
		SetID(uuid.NewString()).
		SetProjectID(projectID).
		SetTaskNumber("1").
		SetTitle("implement feature").
		SetStatus(enttask.StatusInProgress).
		Save(ctx)
	require.NoError(t, err)

	// A Python project so the default tool table applies
	root := t.TempDir()
	writeFile(t, root, "requirements.txt", "pytest\n")

	cfg := config.DefaultGatesConfig()
	p := NewPipeline(client.Client, cfg, config.DefaultSecurityConfig(), nil)
	p.run = runner.run
	return p, client.Client, task, root
}

func TestRunAllPasses(t *testing.T) {
	runner := &scriptedRunner{results: map[string]*runResult{
		"ruff":   {ExitCode: 0},
		"mypy":   {ExitCode: 0},
		"pytest": {ExitCode: 0, Stdout: "12 passed in 1.0s\nTOTAL   100   5   95%"},
	}}
	p, client, task, root := setupPipeline(t, runner)
	ctx := context.Background()

	result, err := p.RunAll(ctx, task, root, nil)
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Empty(t, result.Failures)
	assert.Equal(t, LangPython, result.Language)
	require.NotNil(t, result.TestResult)
	assert.Equal(t, 12, result.TestResult.Passed)
	require.NotNil(t, result.Coverage)
	assert.InDelta(t, 95.0, *result.Coverage, 1e-9)

	got, err := client.Task.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.QualityGateStatusPassed, got.QualityGateStatus)
	assert.False(t, got.RequiresHumanApproval)

	// The test run is persisted
	count, err := client.TestResult.Query().
		Where(enttestresult.TaskIDEQ(task.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRunAllAggregatesFailuresFailSlow(t *testing.T) {
	runner := &scriptedRunner{results: map[string]*runResult{
		"ruff":   {ExitCode: 1, Stdout: "x.py:1:1: E501 line too long"},
		"mypy":   {ExitCode: 1, Stdout: "x.py:3: error: bad type"},
		"pytest": {ExitCode: 1, Stdout: "3 passed, 2 failed\nTOTAL  100  40  60%"},
	}}
	p, client, task, root := setupPipeline(t, runner)
	ctx := context.Background()

	result, err := p.RunAll(ctx, task, root, nil)
	require.NoError(t, err)
	assert.False(t, result.Passed)

	// Every gate ran despite earlier failures: lint, typecheck, tests, coverage
	gates := map[models.GateName]models.Severity{}
	for _, f := range result.Failures {
		gates[f.Gate] = f.Severity
	}
	assert.Equal(t, models.SeverityMedium, gates[models.GateLint])
	assert.Equal(t, models.SeverityHigh, gates[models.GateTypecheck])
	assert.Equal(t, models.SeverityHigh, gates[models.GateTests])
	assert.Equal(t, models.SeverityHigh, gates[models.GateCoverage])

	got, err := client.Task.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.QualityGateStatusFailed, got.QualityGateStatus)

	var failures []models.GateFailure
	require.NoError(t, json.Unmarshal([]byte(got.QualityGateFailures), &failures))
	assert.Equal(t, len(result.Failures), len(failures))
}

func TestRunAllMissingToolsPass(t *testing.T) {
	runner := &scriptedRunner{results: map[string]*runResult{}}
	p, _, task, root := setupPipeline(t, runner)

	result, err := p.RunAll(context.Background(), task, root, nil)
	require.NoError(t, err)
	assert.True(t, result.Passed, "absent tooling is treated as a skipped pass")
	assert.Nil(t, result.TestResult, "no test data when the runner never executed")
}

func TestRunAllTestTimeout(t *testing.T) {
	runner := &scriptedRunner{results: map[string]*runResult{
		"ruff":   {ExitCode: 0},
		"mypy":   {ExitCode: 0},
		"pytest": {TimedOut: true, ExitCode: -1},
	}}
	p, _, task, root := setupPipeline(t, runner)

	result, err := p.RunAll(context.Background(), task, root, nil)
	require.NoError(t, err)
	assert.False(t, result.Passed)
	require.NotNil(t, result.TestResult)
	assert.Equal(t, "timeout", result.TestResult.Status)

	var timeoutFailure *models.GateFailure
	for i := range result.Failures {
		if result.Failures[i].Gate == models.GateTests {
			timeoutFailure = &result.Failures[i]
		}
	}
	require.NotNil(t, timeoutFailure)
	assert.Equal(t, "Timeout", timeoutFailure.Reason)
}

func TestRunAllFlagsSensitivePaths(t *testing.T) {
	runner := &scriptedRunner{results: map[string]*runResult{}}
	p, client, task, root := setupPipeline(t, runner)
	ctx := context.Background()

	result, err := p.RunAll(ctx, task, root, []string{"src/payment/charge.py"})
	require.NoError(t, err)
	assert.True(t, result.Passed, "the approval flag does not fail gates")

	got, err := client.Task.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, got.RequiresHumanApproval)
}

func TestRunAllSkipDetection(t *testing.T) {
	runner := &scriptedRunner{results: map[string]*runResult{
		"ruff":   {ExitCode: 0},
		"mypy":   {ExitCode: 0},
		"pytest": {ExitCode: 0, Stdout: "2 passed, 1 skipped\nTOTAL  10  0  100%"},
	}}
	p, _, task, root := setupPipeline(t, runner)
	writeFile(t, root, "test_feature.py", `
@pytest.mark.skip(reason="later")
def test_edge():
    pass
`)

	result, err := p.RunAll(context.Background(), task, root, nil)
	require.NoError(t, err)
	assert.False(t, result.Passed)
	require.Len(t, result.SkipViolations, 1)
	assert.Equal(t, "error", result.SkipViolations[0].Level)

	found := false
	for _, f := range result.Failures {
		if f.Gate == models.GateSkipDetection {
			found = true
			assert.Equal(t, models.SeverityHigh, f.Severity)
		}
	}
	assert.True(t, found)
}

func TestRunAllSkipDetectionDisabled(t *testing.T) {
	runner := &scriptedRunner{results: map[string]*runResult{}}
	p, _, task, root := setupPipeline(t, runner)
	p.cfg.SkipDetectionEnabled = false
	writeFile(t, root, "test_feature.py", `@pytest.mark.skip(reason="later")`)

	result, err := p.RunAll(context.Background(), task, root, nil)
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Empty(t, result.SkipViolations)
}

type stubReviewer struct {
	findings []Finding
}

func (s *stubReviewer) Review(context.Context, *ent.Task, string) ([]Finding, error) {
	return s.findings, nil
}

func TestRunAllReviewFindings(t *testing.T) {
	runner := &scriptedRunner{results: map[string]*runResult{}}
	p, _, task, root := setupPipeline(t, runner)
	p.reviewer = &stubReviewer{findings: []Finding{
		{Severity: models.SeverityCritical, Message: "SQL injection in query builder", File: "db.py"},
		{Severity: models.SeverityLow, Message: "nit: rename variable"},
	}}

	result, err := p.RunAll(context.Background(), task, root, nil)
	require.NoError(t, err)
	assert.False(t, result.Passed)
	require.Len(t, result.Failures, 1, "only critical/high findings become failures")
	assert.Equal(t, models.GateReview, result.Failures[0].Gate)
	assert.Equal(t, models.SeverityCritical, result.Failures[0].Severity)
}

func TestParseFindings(t *testing.T) {
	content := "Here are my findings:\n```json\n" +
		`[{"severity":"high","message":"missing auth check","file":"api.py"},` +
		`{"severity":"bogus","message":"style nit"}]` + "\n```"
	findings := parseFindings(content)
	require.Len(t, findings, 2)
	assert.Equal(t, models.SeverityHigh, findings[0].Severity)
	assert.Equal(t, "missing auth check", findings[0].Message)
	assert.Equal(t, models.SeverityLow, findings[1].Severity, "unknown severities degrade to low")

	assert.Nil(t, parseFindings("no JSON array here"))
	assert.Empty(t, parseFindings("[]"))
}
