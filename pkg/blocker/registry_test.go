package blocker

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeframe-hq/codeframe/ent"
	entblocker "github.com/codeframe-hq/codeframe/ent/blocker"
	enttask "github.com/codeframe-hq/codeframe/ent/task"
	"github.com/codeframe-hq/codeframe/pkg/config"
	testdb "github.com/codeframe-hq/codeframe/test/database"
)

func setupRegistry(t *testing.T) (*Registry, *ent.Client, string) {
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

	return NewRegistry(client.Client, config.DefaultRateLimitConfig()), client.Client, projectID
}

func createTask(t *testing.T, client *ent.Client, projectID string, status enttask.Status) *ent.Task {
	t.Helper()
	task, err := client.Task.Create().
		SetID(uuid.NewString()).
		SetProjectID(projectID).
		SetTaskNumber("1").
		SetTitle("implement feature").
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return task
}

func TestCreateAndResolve(t *testing.T) {
	reg, client, projectID := setupRegistry(t)
	ctx := context.Background()

	b, err := reg.Create(ctx, CreateInput{
		AgentID:   "agent-1",
		ProjectID: projectID,
		Type:      entblocker.BlockerTypeASYNC,
		Question:  "which auth provider should we use?",
	})
	require.NoError(t, err)
	assert.Equal(t, entblocker.StatusPENDING, b.Status)

	ok, err := reg.Resolve(ctx, b.ID, "use OIDC")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := client.Blocker.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, entblocker.StatusRESOLVED, got.Status)
	require.NotNil(t, got.Answer)
	assert.Equal(t, "use OIDC", *got.Answer)
	assert.NotNil(t, got.ResolvedAt)
}

func TestResolveReturnsFalseWhenNotPending(t *testing.T) {
	reg, _, projectID := setupRegistry(t)
	ctx := context.Background()

	b, err := reg.Create(ctx, CreateInput{
		AgentID:   "agent-1",
		ProjectID: projectID,
		Type:      entblocker.BlockerTypeASYNC,
		Question:  "q",
	})
	require.NoError(t, err)

	ok, err := reg.Resolve(ctx, b.ID, "a")
	require.NoError(t, err)
	require.True(t, ok)

	// Second resolution is a no-op, not an error.
	ok, err = reg.Resolve(ctx, b.ID, "different answer")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = reg.Resolve(ctx, uuid.NewString(), "a")
	require.NoError(t, err)
	assert.False(t, ok, "unknown ids resolve to false")
}

func TestCreateValidatesQuestion(t *testing.T) {
	reg, _, projectID := setupRegistry(t)
	ctx := context.Background()

	_, err := reg.Create(ctx, CreateInput{
		AgentID:   "agent-1",
		ProjectID: projectID,
		Type:      entblocker.BlockerTypeASYNC,
		Question:  "",
	})
	assert.Error(t, err)

	_, err = reg.Create(ctx, CreateInput{
		AgentID:   "agent-1",
		ProjectID: projectID,
		Type:      entblocker.BlockerTypeASYNC,
		Question:  strings.Repeat("q", 2001),
	})
	assert.Error(t, err)
}

func TestCreationRateLimit(t *testing.T) {
	reg, _, projectID := setupRegistry(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := reg.Create(ctx, CreateInput{
			AgentID:   "agent-1",
			ProjectID: projectID,
			Type:      entblocker.BlockerTypeASYNC,
			Question:  "q",
		})
		require.NoError(t, err, "creation %d", i+1)
	}

	_, err := reg.Create(ctx, CreateInput{
		AgentID:   "agent-1",
		ProjectID: projectID,
		Type:      entblocker.BlockerTypeASYNC,
		Question:  "q",
	})
	require.Error(t, err)
	var rle *RateLimitError
	assert.ErrorAs(t, err, &rle)

	// Other agents are unaffected.
	_, err = reg.Create(ctx, CreateInput{
		AgentID:   "agent-2",
		ProjectID: projectID,
		Type:      entblocker.BlockerTypeASYNC,
		Question:  "q",
	})
	assert.NoError(t, err)
}

func TestSyncBlockerHaltsAndResolutionUnblocks(t *testing.T) {
	reg, client, projectID := setupRegistry(t)
	ctx := context.Background()

	task := createTask(t, client, projectID, enttask.StatusInProgress)

	b, err := reg.Create(ctx, CreateInput{
		AgentID:   "agent-1",
		ProjectID: projectID,
		TaskID:    &task.ID,
		Type:      entblocker.BlockerTypeSYNC,
		Question:  "tests are failing, how should the edge case behave?",
	})
	require.NoError(t, err)

	got, err := client.Task.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusBlocked, got.Status)

	ok, err := reg.Resolve(ctx, b.ID, "round half up")
	require.NoError(t, err)
	require.True(t, ok)

	got, err = client.Task.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusInProgress, got.Status)
}

func TestTaskStaysBlockedWhileSyncBlockersRemain(t *testing.T) {
	reg, client, projectID := setupRegistry(t)
	ctx := context.Background()

	task := createTask(t, client, projectID, enttask.StatusInProgress)

	first, err := reg.Create(ctx, CreateInput{
		AgentID: "agent-1", ProjectID: projectID, TaskID: &task.ID,
		Type: entblocker.BlockerTypeSYNC, Question: "q1",
	})
	require.NoError(t, err)
	_, err = reg.Create(ctx, CreateInput{
		AgentID: "agent-1", ProjectID: projectID, TaskID: &task.ID,
		Type: entblocker.BlockerTypeSYNC, Question: "q2",
	})
	require.NoError(t, err)

	ok, err := reg.Resolve(ctx, first.ID, "a1")
	require.NoError(t, err)
	require.True(t, ok)

	got, err := client.Task.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusBlocked, got.Status, "one pending SYNC blocker still holds the task")
}

func TestAsyncBlockerLeavesTaskAlone(t *testing.T) {
	reg, client, projectID := setupRegistry(t)
	ctx := context.Background()

	task := createTask(t, client, projectID, enttask.StatusInProgress)

	_, err := reg.Create(ctx, CreateInput{
		AgentID: "agent-1", ProjectID: projectID, TaskID: &task.ID,
		Type: entblocker.BlockerTypeASYNC, Question: "fyi",
	})
	require.NoError(t, err)

	got, err := client.Task.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusInProgress, got.Status)
}

func TestPendingForReturnsOldest(t *testing.T) {
	reg, _, projectID := setupRegistry(t)
	ctx := context.Background()

	now := time.Now()
	reg.now = func() time.Time { return now }
	oldest, err := reg.Create(ctx, CreateInput{
		AgentID: "agent-1", ProjectID: projectID,
		Type: entblocker.BlockerTypeASYNC, Question: "first",
	})
	require.NoError(t, err)

	reg.now = func() time.Time { return now.Add(time.Second) }
	_, err = reg.Create(ctx, CreateInput{
		AgentID: "agent-1", ProjectID: projectID,
		Type: entblocker.BlockerTypeASYNC, Question: "second",
	})
	require.NoError(t, err)

	b, err := reg.PendingFor(ctx, "agent-1")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, oldest.ID, b.ID)

	none, err := reg.PendingFor(ctx, "agent-2")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestExpireStale(t *testing.T) {
	reg, client, projectID := setupRegistry(t)
	ctx := context.Background()

	now := time.Now()
	reg.now = func() time.Time { return now.Add(-48 * time.Hour) }
	stale, err := reg.Create(ctx, CreateInput{
		AgentID: "agent-1", ProjectID: projectID,
		Type: entblocker.BlockerTypeASYNC, Question: "old question",
	})
	require.NoError(t, err)

	reg.now = func() time.Time { return now }
	fresh, err := reg.Create(ctx, CreateInput{
		AgentID: "agent-1", ProjectID: projectID,
		Type: entblocker.BlockerTypeASYNC, Question: "new question",
	})
	require.NoError(t, err)

	ids, err := reg.ExpireStale(ctx, 24)
	require.NoError(t, err)
	assert.Equal(t, []string{stale.ID}, ids)

	got, err := client.Blocker.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, entblocker.StatusEXPIRED, got.Status)

	got, err = client.Blocker.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, entblocker.StatusPENDING, got.Status)
}

func TestProjectMetrics(t *testing.T) {
	reg, _, projectID := setupRegistry(t)
	ctx := context.Background()

	base := time.Now()
	reg.now = func() time.Time { return base }
	resolved, err := reg.Create(ctx, CreateInput{
		AgentID: "agent-1", ProjectID: projectID,
		Type: entblocker.BlockerTypeSYNC, Question: "q1",
	})
	require.NoError(t, err)
	_, err = reg.Create(ctx, CreateInput{
		AgentID: "agent-1", ProjectID: projectID,
		Type: entblocker.BlockerTypeASYNC, Question: "q2",
	})
	require.NoError(t, err)

	reg.now = func() time.Time { return base.Add(30 * time.Second) }
	ok, err := reg.Resolve(ctx, resolved.ID, "a1")
	require.NoError(t, err)
	require.True(t, ok)

	m, err := reg.ProjectMetrics(ctx, projectID)
	require.NoError(t, err)
	assert.Equal(t, 1, m.CountsByStatus["RESOLVED"])
	assert.Equal(t, 1, m.CountsByStatus["PENDING"])
	assert.Equal(t, 1, m.CountsByType["SYNC"])
	assert.Equal(t, 1, m.CountsByType["ASYNC"])
	assert.InDelta(t, 30.0, m.AvgResolutionSecs, 0.5)
	assert.Zero(t, m.ExpirationRate)
}
