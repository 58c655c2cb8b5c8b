package maturity

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeframe-hq/codeframe/ent"
	entagent "github.com/codeframe-hq/codeframe/ent/agent"
	entauditlog "github.com/codeframe-hq/codeframe/ent/auditlog"
	enttask "github.com/codeframe-hq/codeframe/ent/task"
	enttestresult "github.com/codeframe-hq/codeframe/ent/testresult"
	"github.com/codeframe-hq/codeframe/pkg/config"
	"github.com/codeframe-hq/codeframe/pkg/services"
	testdb "github.com/codeframe-hq/codeframe/test/database"
)

func setupAssessor(t *testing.T) (*Assessor, *ent.Client, string, string) {
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

	agentID := uuid.NewString()
	_, err = client.Agent.Create().
		SetID(agentID).
		SetAgentType(entagent.AgentTypeBackend).
		Save(ctx)
	require.NoError(t, err)

	agents := services.NewAgentService(client.Client)
	audit := services.NewAuditService(client.Client, config.AuditVerbosityLow)
	return NewAssessor(client.Client, agents, audit), client.Client, projectID, agentID
}

// addTasks creates n tasks for the agent with the given status; completed
// tasks get one test result with the given counts.
func addTasks(t *testing.T, client *ent.Client, projectID, agentID string, n int, status enttask.Status, passed, failed int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		task, err := client.Task.Create().
			SetID(uuid.NewString()).
			SetProjectID(projectID).
			SetTaskNumber(fmt.Sprintf("%s-%d", status, i)).
			SetTitle("task").
			SetStatus(status).
			SetAssignedTo(agentID).
			Save(ctx)
		require.NoError(t, err)

		if status == enttask.StatusCompleted {
			resultStatus := enttestresult.StatusPassed
			if failed > 0 {
				resultStatus = enttestresult.StatusFailed
			}
			_, err = client.TestResult.Create().
				SetID(uuid.NewString()).
				SetTaskID(task.ID).
				SetStatus(resultStatus).
				SetPassed(passed).
				SetFailed(failed).
				Save(ctx)
			require.NoError(t, err)
		}
	}
}

func TestLevelForScoreBoundaries(t *testing.T) {
	assert.Equal(t, "D4", LevelForScore(0.9))
	assert.Equal(t, "D3", LevelForScore(0.8999))
	assert.Equal(t, "D3", LevelForScore(0.7))
	assert.Equal(t, "D2", LevelForScore(0.6999))
	assert.Equal(t, "D2", LevelForScore(0.5))
	assert.Equal(t, "D1", LevelForScore(0.4999))
	assert.Equal(t, "D1", LevelForScore(0))
}

func TestAssessNoTasksIsD1(t *testing.T) {
	assessor, _, _, agentID := setupAssessor(t)

	result, err := assessor.Assess(context.Background(), agentID)
	require.NoError(t, err)
	assert.Equal(t, "D1", result.MaturityLevel)
	assert.Zero(t, result.MaturityScore)
	assert.Zero(t, result.Metrics.TotalTasks)
	assert.False(t, result.Changed, "D1 to D1 is not a change")
}

func TestAssessPerfectHistoryIsD4(t *testing.T) {
	assessor, client, projectID, agentID := setupAssessor(t)
	ctx := context.Background()

	addTasks(t, client, projectID, agentID, 50, enttask.StatusCompleted, 10, 0)

	result, err := assessor.Assess(ctx, agentID)
	require.NoError(t, err)
	assert.Equal(t, "D4", result.MaturityLevel)
	assert.GreaterOrEqual(t, result.MaturityScore, 0.9)
	assert.True(t, result.Changed)

	// Persisted on the agent record
	agent, err := client.Agent.Get(ctx, agentID)
	require.NoError(t, err)
	assert.Equal(t, entagent.MaturityD4, agent.Maturity)
	assert.Equal(t, 50, agent.CompletedCount)
	assert.NotNil(t, agent.LastAssessedAt)

	// Audited
	count, err := client.AuditLog.Query().
		Where(entauditlog.EventTypeEQ("agent.maturity.assessed")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAssessDropsAfterFailures(t *testing.T) {
	assessor, client, projectID, agentID := setupAssessor(t)
	ctx := context.Background()

	addTasks(t, client, projectID, agentID, 50, enttask.StatusCompleted, 10, 0)
	first, err := assessor.Assess(ctx, agentID)
	require.NoError(t, err)
	require.Equal(t, "D4", first.MaturityLevel)

	addTasks(t, client, projectID, agentID, 40, enttask.StatusFailed, 0, 0)
	second, err := assessor.Assess(ctx, agentID)
	require.NoError(t, err)
	assert.Less(t, second.MaturityScore, first.MaturityScore)
	assert.NotEqual(t, "D4", second.MaturityLevel)
}

func TestSelfCorrectionRateLowersScore(t *testing.T) {
	assessor, client, projectID, agentID := setupAssessor(t)
	ctx := context.Background()

	addTasks(t, client, projectID, agentID, 10, enttask.StatusCompleted, 10, 0)

	// Half the completed tasks needed corrections
	tasks, err := client.Task.Query().Where(enttask.AssignedToEQ(agentID)).Limit(5).All(ctx)
	require.NoError(t, err)
	taskSvc := services.NewTaskService(client)
	for _, task := range tasks {
		_, err := taskSvc.RecordCorrection(ctx, task.ID, "analysis", "fix", "")
		require.NoError(t, err)
	}

	result, err := assessor.Assess(ctx, agentID)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, result.Metrics.SelfCorrectionRate, 1e-9)
	assert.InDelta(t, 0.4+0.3+0.3*0.5, result.MaturityScore, 1e-9)
}

func TestShouldAssess(t *testing.T) {
	assessor, client, projectID, agentID := setupAssessor(t)
	ctx := context.Background()

	due, err := assessor.ShouldAssess(ctx, agentID)
	require.NoError(t, err)
	assert.True(t, due, "never-assessed agents are due")

	_, err = assessor.Assess(ctx, agentID)
	require.NoError(t, err)

	due, err = assessor.ShouldAssess(ctx, agentID)
	require.NoError(t, err)
	assert.False(t, due, "freshly assessed with no new work")

	// Five newly completed tasks make it due again
	addTasks(t, client, projectID, agentID, 5, enttask.StatusCompleted, 10, 0)
	due, err = assessor.ShouldAssess(ctx, agentID)
	require.NoError(t, err)
	assert.True(t, due)
}

func TestShouldAssessAfter24Hours(t *testing.T) {
	assessor, _, _, agentID := setupAssessor(t)
	ctx := context.Background()

	_, err := assessor.Assess(ctx, agentID)
	require.NoError(t, err)

	assessor.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
	due, err := assessor.ShouldAssess(ctx, agentID)
	require.NoError(t, err)
	assert.True(t, due)
}
