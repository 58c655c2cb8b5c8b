package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeframe-hq/codeframe/ent"
	entevidence "github.com/codeframe-hq/codeframe/ent/evidence"
	enttask "github.com/codeframe-hq/codeframe/ent/task"
	"github.com/codeframe-hq/codeframe/pkg/models"
	testdb "github.com/codeframe-hq/codeframe/test/database"
)

func setupTaskService(t *testing.T) (*TaskService, *ent.Client, string) {
	t.Helper()
	client := testdb.NewTestClient(t)

	projectID := uuid.NewString()
	_, err := client.Project.Create().
		SetID(projectID).
		SetName("demo").
		SetWorkspacePath("/tmp/demo").
		Save(context.Background())
	require.NoError(t, err)

	return NewTaskService(client.Client), client.Client, projectID
}

func newTask(t *testing.T, client *ent.Client, projectID string, status enttask.Status) *ent.Task {
	t.Helper()
	builder := client.Task.Create().
		SetID(uuid.NewString()).
		SetProjectID(projectID).
		SetTaskNumber("1.1").
		SetTitle("implement parser").
		SetStatus(status)
	if status == enttask.StatusInProgress || status == enttask.StatusAssigned {
		builder = builder.SetAssignedTo("agent-1")
	}
	task, err := builder.Save(context.Background())
	require.NoError(t, err)
	return task
}

func verifiedEvidence(taskID string) *models.EvidenceData {
	coverage := 92.0
	return &models.EvidenceData{
		TaskID:     taskID,
		AgentID:    "agent-1",
		Verified:   true,
		TestResult: &models.TestResultData{Status: "passed", Passed: 10},
		Coverage:   &coverage,
		Language:   "python",
	}
}

func TestClaimIsExclusive(t *testing.T) {
	svc, _, projectID := setupTaskService(t)
	ctx := context.Background()
	task := newTask(t, svc.client, projectID, enttask.StatusPending)

	ok, err := svc.Claim(ctx, task.ID, "agent-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Claim(ctx, task.ID, "agent-2")
	require.NoError(t, err)
	assert.False(t, ok, "a claimed task cannot be claimed again")

	got, err := svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusAssigned, got.Status)
	require.NotNil(t, got.AssignedTo)
	assert.Equal(t, "agent-1", *got.AssignedTo)
}

func TestStartRequiresOwnership(t *testing.T) {
	svc, _, projectID := setupTaskService(t)
	ctx := context.Background()
	task := newTask(t, svc.client, projectID, enttask.StatusAssigned)

	err := svc.Start(ctx, task.ID, "agent-2")
	require.ErrorIs(t, err, ErrConcurrentModification)

	require.NoError(t, svc.Start(ctx, task.ID, "agent-1"))
	got, err := svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusInProgress, got.Status)
	assert.NotNil(t, got.StartedAt)
}

func TestUpdateFieldsWhitelist(t *testing.T) {
	svc, _, projectID := setupTaskService(t)
	ctx := context.Background()
	task := newTask(t, svc.client, projectID, enttask.StatusPending)

	err := svc.UpdateFields(ctx, task.ID, map[string]interface{}{
		"priority":    4,
		"description": "updated",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Priority)
	assert.Equal(t, "updated", got.Description)

	err = svc.UpdateFields(ctx, task.ID, map[string]interface{}{"task_number": "2"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err), "non-whitelisted columns are rejected")

	err = svc.UpdateFields(ctx, task.ID, map[string]interface{}{"status": "bogus"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestCompleteWithEvidenceCommitsAtomically(t *testing.T) {
	svc, client, projectID := setupTaskService(t)
	ctx := context.Background()
	task := newTask(t, client, projectID, enttask.StatusInProgress)

	evidenceID, err := svc.CompleteWithEvidence(ctx, task.ID, "agent-1", verifiedEvidence(task.ID))
	require.NoError(t, err)
	require.NotEmpty(t, evidenceID)

	got, err := svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusCompleted, got.Status)
	assert.NotNil(t, got.CompletedAt)

	ev, err := client.Evidence.Get(ctx, evidenceID)
	require.NoError(t, err)
	assert.True(t, ev.Verified)
	require.NotNil(t, ev.Coverage)
	assert.InDelta(t, 92.0, *ev.Coverage, 1e-9)
}

func TestCompleteWithEvidenceRollsBackTogether(t *testing.T) {
	svc, client, projectID := setupTaskService(t)
	ctx := context.Background()

	// Owned by another agent: the conditional update matches nothing and the
	// evidence insert must roll back with it.
	task := newTask(t, client, projectID, enttask.StatusInProgress)

	_, err := svc.CompleteWithEvidence(ctx, task.ID, "agent-2", verifiedEvidence(task.ID))
	require.ErrorIs(t, err, ErrConcurrentModification)

	got, err := svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusInProgress, got.Status, "task unchanged on failure")

	count, err := client.Evidence.Query().
		Where(entevidence.TaskIDEQ(task.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "no evidence row survives the rollback")
}

func TestSaveEvidenceKeepsFailedVerification(t *testing.T) {
	svc, client, projectID := setupTaskService(t)
	ctx := context.Background()
	task := newTask(t, client, projectID, enttask.StatusInProgress)

	ev := verifiedEvidence(task.ID)
	ev.Verified = false
	ev.VerificationErrors = []string{"coverage 60.0% below minimum 85.0%"}

	id, err := svc.SaveEvidence(ctx, ev)
	require.NoError(t, err)

	got, err := client.Evidence.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, got.Verified)
	assert.Equal(t, ev.VerificationErrors, got.VerificationErrors)

	// The task itself is untouched.
	reloaded, err := svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusInProgress, reloaded.Status)
}

func TestRecordCorrectionCapsAtThree(t *testing.T) {
	svc, client, projectID := setupTaskService(t)
	ctx := context.Background()
	task := newTask(t, client, projectID, enttask.StatusInProgress)

	for i := 1; i <= 3; i++ {
		attempt, err := svc.RecordCorrection(ctx, task.ID, "analysis", "fix", "")
		require.NoError(t, err)
		assert.Equal(t, i, attempt.AttemptNumber)
	}

	_, err := svc.RecordCorrection(ctx, task.ID, "analysis", "fix", "")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestPendingTasksOrder(t *testing.T) {
	svc, client, projectID := setupTaskService(t)
	ctx := context.Background()

	low, err := client.Task.Create().
		SetID(uuid.NewString()).SetProjectID(projectID).
		SetTaskNumber("1").SetTitle("low").SetPriority(1).
		Save(ctx)
	require.NoError(t, err)
	high, err := client.Task.Create().
		SetID(uuid.NewString()).SetProjectID(projectID).
		SetTaskNumber("2").SetTitle("high").SetPriority(4).
		Save(ctx)
	require.NoError(t, err)

	tasks, err := svc.PendingTasks(ctx, 10)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, high.ID, tasks[0].ID)
	assert.Equal(t, low.ID, tasks[1].ID)
}
