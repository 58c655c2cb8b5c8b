package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeframe-hq/codeframe/ent"
	entauditlog "github.com/codeframe-hq/codeframe/ent/auditlog"
	entblocker "github.com/codeframe-hq/codeframe/ent/blocker"
	"github.com/codeframe-hq/codeframe/pkg/blocker"
	"github.com/codeframe-hq/codeframe/pkg/config"
	"github.com/codeframe-hq/codeframe/pkg/services"
	testdb "github.com/codeframe-hq/codeframe/test/database"
)

func setupCleanup(t *testing.T) (*Service, *ent.Client, string) {
	t.Helper()
	client := testdb.NewTestClient(t)

	projectID := uuid.NewString()
	_, err := client.Project.Create().
		SetID(projectID).
		SetName("demo").
		SetWorkspacePath("/tmp/demo").
		Save(context.Background())
	require.NoError(t, err)

	audit := services.NewAuditService(client.Client, config.AuditVerbosityLow)
	registry := blocker.NewRegistry(client.Client, config.DefaultRateLimitConfig())
	svc := NewService(config.DefaultRetentionConfig(), audit, registry)
	return svc, client.Client, projectID
}

func TestRunAllPrunesOldAuditLogs(t *testing.T) {
	svc, client, _ := setupCleanup(t)
	ctx := context.Background()

	old, err := client.AuditLog.Create().
		SetID(uuid.NewString()).
		SetEventType("llm.call.completed").
		SetResourceType("task").
		SetCreatedAt(time.Now().AddDate(0, 0, -120)).
		Save(ctx)
	require.NoError(t, err)

	fresh, err := client.AuditLog.Create().
		SetID(uuid.NewString()).
		SetEventType("llm.call.completed").
		SetResourceType("task").
		Save(ctx)
	require.NoError(t, err)

	svc.RunAll(ctx)

	_, err = client.AuditLog.Get(ctx, old.ID)
	assert.True(t, ent.IsNotFound(err), "rows past retention are deleted")
	_, err = client.AuditLog.Get(ctx, fresh.ID)
	assert.NoError(t, err)

	count, err := client.AuditLog.Query().
		Where(entauditlog.EventTypeEQ("llm.call.completed")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRunAllExpiresStaleBlockers(t *testing.T) {
	svc, client, projectID := setupCleanup(t)
	ctx := context.Background()

	stale, err := client.Blocker.Create().
		SetID(uuid.NewString()).
		SetAgentID("agent-1").
		SetProjectID(projectID).
		SetBlockerType(entblocker.BlockerTypeASYNC).
		SetQuestion("old question").
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	svc.RunAll(ctx)

	got, err := client.Blocker.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, entblocker.StatusEXPIRED, got.Status)
}

func TestStartStopIdempotent(t *testing.T) {
	svc, _, _ := setupCleanup(t)

	ctx := context.Background()
	svc.Start(ctx)
	svc.Start(ctx) // no-op
	svc.Stop()
}
