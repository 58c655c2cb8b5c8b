package contextmgr

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeframe-hq/codeframe/ent"
	"github.com/codeframe-hq/codeframe/ent/contextitem"
	"github.com/codeframe-hq/codeframe/pkg/tokens"
	testdb "github.com/codeframe-hq/codeframe/test/database"
)

func setupManager(t *testing.T) (*Manager, *ent.Client, string) {
	t.Helper()
	client := testdb.NewTestClient(t)

	projectID := uuid.NewString()
	_, err := client.Project.Create().
		SetID(projectID).
		SetName("demo").
		SetWorkspacePath("/tmp/demo").
		Save(context.Background())
	require.NoError(t, err)

	return NewManager(client.Client, tokens.NewCounter()), client.Client, projectID
}

func createItem(t *testing.T, client *ent.Client, projectID, agentID string, itemType contextitem.ItemType, tier contextitem.Tier, content string, createdAt time.Time) *ent.ContextItem {
	t.Helper()
	item, err := client.ContextItem.Create().
		SetID(uuid.NewString()).
		SetProjectID(projectID).
		SetAgentID(agentID).
		SetItemType(itemType).
		SetContent(content).
		SetImportanceScore(0.5).
		SetTier(tier).
		SetCreatedAt(createdAt).
		SetLastAccessed(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return item
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	mgr, _, projectID := setupManager(t)
	ctx := context.Background()

	id, err := mgr.Save(ctx, projectID, "agent-1", contextitem.ItemTypeCODE, "func main() {}")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	items, err := mgr.Load(ctx, projectID, "agent-1", LoadOptions{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "func main() {}", items[0].Content)
	assert.Equal(t, contextitem.ItemTypeCODE, items[0].ItemType)
	assert.Equal(t, 1, items[0].AccessCount, "a load counts as one access")

	got, err := mgr.Get(ctx, projectID, "agent-1", id)
	require.NoError(t, err)
	assert.Equal(t, 2, got.AccessCount)
}

func TestFreshItemTierDependsOnType(t *testing.T) {
	mgr, client, projectID := setupManager(t)
	ctx := context.Background()

	taskID, err := mgr.Save(ctx, projectID, "agent-1", contextitem.ItemTypeTASK, "implement auth")
	require.NoError(t, err)
	prdID, err := mgr.Save(ctx, projectID, "agent-1", contextitem.ItemTypePRD_SECTION, "requirements")
	require.NoError(t, err)

	task, err := client.ContextItem.Get(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, contextitem.TierHOT, task.Tier)

	prd, err := client.ContextItem.Get(ctx, prdID)
	require.NoError(t, err)
	assert.Equal(t, contextitem.TierWARM, prd.Tier)
}

func TestLoadOrdersByImportanceDesc(t *testing.T) {
	mgr, _, projectID := setupManager(t)
	ctx := context.Background()

	_, err := mgr.Save(ctx, projectID, "agent-1", contextitem.ItemTypePRD_SECTION, "low")
	require.NoError(t, err)
	_, err = mgr.Save(ctx, projectID, "agent-1", contextitem.ItemTypeTASK, "high")
	require.NoError(t, err)
	_, err = mgr.Save(ctx, projectID, "agent-1", contextitem.ItemTypeCODE, "mid")
	require.NoError(t, err)

	items, err := mgr.Load(ctx, projectID, "agent-1", LoadOptions{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "high", items[0].Content)
	assert.Equal(t, "mid", items[1].Content)
	assert.Equal(t, "low", items[2].Content)
}

func TestLoadFiltersByTierAndPaginates(t *testing.T) {
	mgr, client, projectID := setupManager(t)
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 3; i++ {
		createItem(t, client, projectID, "agent-1", contextitem.ItemTypeCODE, contextitem.TierHOT, "hot item", now)
	}
	createItem(t, client, projectID, "agent-1", contextitem.ItemTypeCODE, contextitem.TierCOLD, "cold item", now)

	hot := contextitem.TierHOT
	items, err := mgr.Load(ctx, projectID, "agent-1", LoadOptions{Tier: &hot})
	require.NoError(t, err)
	assert.Len(t, items, 3)

	page, err := mgr.Load(ctx, projectID, "agent-1", LoadOptions{Tier: &hot, Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, page, 1)
}

func TestLoadScopesToAgent(t *testing.T) {
	mgr, _, projectID := setupManager(t)
	ctx := context.Background()

	_, err := mgr.Save(ctx, projectID, "agent-1", contextitem.ItemTypeCODE, "mine")
	require.NoError(t, err)
	_, err = mgr.Save(ctx, projectID, "agent-2", contextitem.ItemTypeCODE, "theirs")
	require.NoError(t, err)

	items, err := mgr.Load(ctx, projectID, "agent-1", LoadOptions{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "mine", items[0].Content)
}

func TestUpdateTiersDemotesStaleItems(t *testing.T) {
	mgr, client, projectID := setupManager(t)
	ctx := context.Background()

	// A month-old PRD section with no accesses scores 0.2 and belongs in COLD.
	old := createItem(t, client, projectID, "agent-1", contextitem.ItemTypePRD_SECTION,
		contextitem.TierHOT, "stale requirements", time.Now().Add(-30*24*time.Hour))

	changed, err := mgr.UpdateTiers(ctx, projectID, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	got, err := client.ContextItem.Get(ctx, old.ID)
	require.NoError(t, err)
	assert.Equal(t, contextitem.TierCOLD, got.Tier)
	assert.Less(t, got.ImportanceScore, 0.4)
}

func TestRecalculateScoresLeavesTiersAlone(t *testing.T) {
	mgr, client, projectID := setupManager(t)
	ctx := context.Background()

	old := createItem(t, client, projectID, "agent-1", contextitem.ItemTypePRD_SECTION,
		contextitem.TierHOT, "stale requirements", time.Now().Add(-30*24*time.Hour))

	count, err := mgr.RecalculateScores(ctx, projectID, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := client.ContextItem.Get(ctx, old.ID)
	require.NoError(t, err)
	assert.Equal(t, contextitem.TierHOT, got.Tier, "tier is untouched by score recalculation")
	assert.Less(t, got.ImportanceScore, 0.4)
}

func TestShouldFlashSave(t *testing.T) {
	mgr, _, projectID := setupManager(t)
	ctx := context.Background()

	due, err := mgr.ShouldFlashSave(ctx, projectID, "agent-1", false)
	require.NoError(t, err)
	assert.False(t, due, "empty context is under threshold")

	due, err = mgr.ShouldFlashSave(ctx, projectID, "agent-1", true)
	require.NoError(t, err)
	assert.True(t, due, "force overrides the threshold")
}

func TestFlashSaveArchivesColdItems(t *testing.T) {
	mgr, client, projectID := setupManager(t)
	ctx := context.Background()
	now := time.Now()

	// 30 HOT (~500 tokens), 70 WARM (~300), 50 COLD (~400): COLD holds over
	// 30% of the footprint.
	for i := 0; i < 30; i++ {
		createItem(t, client, projectID, "agent-1", contextitem.ItemTypeTASK,
			contextitem.TierHOT, strings.Repeat("ctx ", 500), now)
	}
	for i := 0; i < 70; i++ {
		createItem(t, client, projectID, "agent-1", contextitem.ItemTypeCODE,
			contextitem.TierWARM, strings.Repeat("ctx ", 300), now)
	}
	for i := 0; i < 50; i++ {
		createItem(t, client, projectID, "agent-1", contextitem.ItemTypePRD_SECTION,
			contextitem.TierCOLD, strings.Repeat("ctx ", 400), now)
	}

	result, err := mgr.FlashSave(ctx, projectID, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, 50, result.ItemsArchived)
	assert.Equal(t, 30, result.HotRetained)
	assert.Equal(t, 70, result.WarmRetained)
	assert.GreaterOrEqual(t, result.ReductionPct, 30.0)
	assert.Less(t, result.TokensAfter, result.TokensBefore)
	require.NotEmpty(t, result.CheckpointID)

	// COLD items are gone from the working set.
	remaining, err := client.ContextItem.Query().
		Where(
			contextitem.ProjectIDEQ(projectID),
			contextitem.AgentIDEQ("agent-1"),
			contextitem.TierEQ(contextitem.TierCOLD),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, remaining)

	// The checkpoint snapshots everything, including what was evicted.
	checkpoint, err := client.ContextCheckpoint.Get(ctx, result.CheckpointID)
	require.NoError(t, err)
	assert.Equal(t, 150, checkpoint.ItemsCount)
	assert.Equal(t, 50, checkpoint.ItemsArchived)
	assert.Equal(t, 30, checkpoint.HotItemsRetained)
	assert.Equal(t, result.TokensBefore, checkpoint.TokenCount)
	assert.Len(t, checkpoint.Items, 150)
}

func TestFlashSaveIdempotentAfterEviction(t *testing.T) {
	mgr, client, projectID := setupManager(t)
	ctx := context.Background()
	now := time.Now()

	createItem(t, client, projectID, "agent-1", contextitem.ItemTypeTASK,
		contextitem.TierHOT, "keep me", now)
	createItem(t, client, projectID, "agent-1", contextitem.ItemTypePRD_SECTION,
		contextitem.TierCOLD, "evict me", now)

	first, err := mgr.FlashSave(ctx, projectID, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, 1, first.ItemsArchived)

	// A second save on a freshly flashed agent finds nothing to evict.
	second, err := mgr.FlashSave(ctx, projectID, "agent-1")
	require.NoError(t, err)
	assert.Zero(t, second.ItemsArchived)
	assert.Equal(t, 1, second.HotRetained)
	assert.NotEqual(t, first.CheckpointID, second.CheckpointID)
}
