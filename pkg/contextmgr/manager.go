package contextmgr

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/codeframe-hq/codeframe/ent"
	"github.com/codeframe-hq/codeframe/ent/contextitem"
	"github.com/codeframe-hq/codeframe/pkg/metrics"
	"github.com/codeframe-hq/codeframe/pkg/models"
	"github.com/codeframe-hq/codeframe/pkg/tokens"
)

// Token budget. A flash save triggers at 80% of the context limit so the
// reduction lands before the agent actually runs out.
const (
	ContextTokenLimit  = 180_000
	FlashSaveThreshold = 144_000

	defaultLoadLimit = 100
)

// Manager operates per (project, agent) on the tiered context store. Safe
// for concurrent use; the token counter is serialized internally.
type Manager struct {
	client  *ent.Client
	counter *tokens.Counter
	countMu sync.Mutex

	// Injectable for tests
	now func() time.Time
}

// NewManager creates a context manager over the given store.
func NewManager(client *ent.Client, counter *tokens.Counter) *Manager {
	return &Manager{
		client:  client,
		counter: counter,
		now:     time.Now,
	}
}

// LoadOptions narrows a Load call. Zero value means all tiers, first page of
// 100 items.
type LoadOptions struct {
	Tier   *contextitem.Tier
	Limit  int
	Offset int
}

// Save persists a freshly created context item. New items score with full
// recency and no access history, so tier placement depends only on the item
// type until the next recalculation.
func (m *Manager) Save(ctx context.Context, projectID, agentID string, itemType contextitem.ItemType, content string) (string, error) {
	now := m.now()
	score := ComputeScore(itemType, now, 0, now)

	item, err := m.client.ContextItem.Create().
		SetID(uuid.NewString()).
		SetProjectID(projectID).
		SetAgentID(agentID).
		SetItemType(itemType).
		SetContent(content).
		SetImportanceScore(score).
		SetTier(AssignTier(score)).
		SetAccessCount(0).
		SetCreatedAt(now).
		SetLastAccessed(now).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to save context item: %w", err)
	}
	return item.ID, nil
}

// Load returns items ordered by importance score then last access, both
// descending. Every returned item has its access count incremented and its
// last_accessed bumped, so loading is itself a relevance signal.
func (m *Manager) Load(ctx context.Context, projectID, agentID string, opts LoadOptions) ([]*ent.ContextItem, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLoadLimit
	}

	q := m.client.ContextItem.Query().
		Where(
			contextitem.ProjectIDEQ(projectID),
			contextitem.AgentIDEQ(agentID),
		)
	if opts.Tier != nil {
		q = q.Where(contextitem.TierEQ(*opts.Tier))
	}

	items, err := q.
		Order(
			ent.Desc(contextitem.FieldImportanceScore),
			ent.Desc(contextitem.FieldLastAccessed),
		).
		Limit(limit).
		Offset(opts.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load context items: %w", err)
	}

	now := m.now()
	touched := make([]*ent.ContextItem, 0, len(items))
	for _, item := range items {
		updated, err := m.client.ContextItem.UpdateOneID(item.ID).
			AddAccessCount(1).
			SetLastAccessed(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to record access for item %s: %w", item.ID, err)
		}
		touched = append(touched, updated)
	}
	return touched, nil
}

// Get returns a single item by id, recording the access.
func (m *Manager) Get(ctx context.Context, projectID, agentID, itemID string) (*ent.ContextItem, error) {
	item, err := m.client.ContextItem.Query().
		Where(
			contextitem.IDEQ(itemID),
			contextitem.ProjectIDEQ(projectID),
			contextitem.AgentIDEQ(agentID),
		).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get context item %s: %w", itemID, err)
	}

	updated, err := m.client.ContextItem.UpdateOneID(item.ID).
		AddAccessCount(1).
		SetLastAccessed(m.now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record access for item %s: %w", itemID, err)
	}
	return updated, nil
}

// RecalculateScores recomputes every item's importance score from current
// timestamps and stored access counts. Tiers are left untouched. Returns the
// number of items updated.
func (m *Manager) RecalculateScores(ctx context.Context, projectID, agentID string) (int, error) {
	items, err := m.allItems(ctx, projectID, agentID)
	if err != nil {
		return 0, err
	}

	now := m.now()
	for _, item := range items {
		score := ComputeScore(item.ItemType, item.CreatedAt, item.AccessCount, now)
		if err := m.client.ContextItem.UpdateOneID(item.ID).
			SetImportanceScore(score).
			Exec(ctx); err != nil {
			return 0, fmt.Errorf("failed to update score for item %s: %w", item.ID, err)
		}
	}
	return len(items), nil
}

// UpdateTiers recomputes scores and reassigns tiers. Returns the number of
// items whose tier changed.
func (m *Manager) UpdateTiers(ctx context.Context, projectID, agentID string) (int, error) {
	items, err := m.allItems(ctx, projectID, agentID)
	if err != nil {
		return 0, err
	}

	now := m.now()
	changed := 0
	for _, item := range items {
		score := ComputeScore(item.ItemType, item.CreatedAt, item.AccessCount, now)
		tier := AssignTier(score)
		if err := m.client.ContextItem.UpdateOneID(item.ID).
			SetImportanceScore(score).
			SetTier(tier).
			Exec(ctx); err != nil {
			return 0, fmt.Errorf("failed to update tier for item %s: %w", item.ID, err)
		}
		if tier != item.Tier {
			changed++
		}
	}
	return changed, nil
}

// TokenFootprint sums the token counts over all of the agent's item contents.
func (m *Manager) TokenFootprint(ctx context.Context, projectID, agentID string) (int, error) {
	contents, err := m.client.ContextItem.Query().
		Where(
			contextitem.ProjectIDEQ(projectID),
			contextitem.AgentIDEQ(agentID),
		).
		Select(contextitem.FieldContent).
		Strings(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query context contents: %w", err)
	}
	return m.countAll(contents), nil
}

// ShouldFlashSave reports whether a flash save is due: always when forced,
// otherwise when the token footprint reached the threshold.
func (m *Manager) ShouldFlashSave(ctx context.Context, projectID, agentID string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	total, err := m.TokenFootprint(ctx, projectID, agentID)
	if err != nil {
		return false, err
	}
	return total >= FlashSaveThreshold, nil
}

// FlashSave checkpoints the full working set and evicts COLD items. The
// checkpoint and the eviction commit together: an archived item is always
// recoverable from its checkpoint.
func (m *Manager) FlashSave(ctx context.Context, projectID, agentID string) (*models.FlashSaveResult, error) {
	tx, err := m.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start flash save transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	items, err := tx.ContextItem.Query().
		Where(
			contextitem.ProjectIDEQ(projectID),
			contextitem.AgentIDEQ(agentID),
		).
		Order(ent.Desc(contextitem.FieldImportanceScore)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load context items for flash save: %w", err)
	}

	contents := make([]string, len(items))
	for i, item := range items {
		contents[i] = item.Content
	}
	tokensBefore := m.countAll(contents)

	snapshot := make([]map[string]interface{}, len(items))
	tokensAfter := 0
	hotRetained, warmRetained, coldCount := 0, 0, 0
	for i, item := range items {
		snapshot[i] = map[string]interface{}{
			"id":               item.ID,
			"item_type":        string(item.ItemType),
			"content":          item.Content,
			"importance_score": item.ImportanceScore,
			"tier":             string(item.Tier),
			"access_count":     item.AccessCount,
			"created_at":       item.CreatedAt.Format(time.RFC3339Nano),
			"last_accessed":    item.LastAccessed.Format(time.RFC3339Nano),
		}
		switch item.Tier {
		case contextitem.TierHOT:
			hotRetained++
			tokensAfter += m.count(item.Content)
		case contextitem.TierWARM:
			warmRetained++
			tokensAfter += m.count(item.Content)
		default:
			coldCount++
		}
	}

	checkpoint, err := tx.ContextCheckpoint.Create().
		SetID(uuid.NewString()).
		SetProjectID(projectID).
		SetAgentID(agentID).
		SetItems(snapshot).
		SetItemsCount(len(items)).
		SetItemsArchived(coldCount).
		SetHotItemsRetained(hotRetained).
		SetTokenCount(tokensBefore).
		SetCreatedAt(m.now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create context checkpoint: %w", err)
	}

	_, err = tx.ContextItem.Delete().
		Where(
			contextitem.ProjectIDEQ(projectID),
			contextitem.AgentIDEQ(agentID),
			contextitem.TierEQ(contextitem.TierCOLD),
		).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to archive cold items: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit flash save: %w", err)
	}

	reductionPct := 0.0
	if tokensBefore > 0 {
		reductionPct = float64(tokensBefore-tokensAfter) / float64(tokensBefore) * 100
	}

	metrics.FlashSaves.Inc()
	slog.Info("Flash save completed",
		"project_id", projectID,
		"agent_id", agentID,
		"checkpoint_id", checkpoint.ID,
		"items_archived", coldCount,
		"tokens_before", tokensBefore,
		"tokens_after", tokensAfter)

	return &models.FlashSaveResult{
		CheckpointID:  checkpoint.ID,
		TokensBefore:  tokensBefore,
		TokensAfter:   tokensAfter,
		ReductionPct:  reductionPct,
		ItemsArchived: coldCount,
		HotRetained:   hotRetained,
		WarmRetained:  warmRetained,
	}, nil
}

func (m *Manager) allItems(ctx context.Context, projectID, agentID string) ([]*ent.ContextItem, error) {
	items, err := m.client.ContextItem.Query().
		Where(
			contextitem.ProjectIDEQ(projectID),
			contextitem.AgentIDEQ(agentID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query context items: %w", err)
	}
	return items, nil
}

func (m *Manager) count(text string) int {
	m.countMu.Lock()
	defer m.countMu.Unlock()
	return m.counter.Count(text)
}

func (m *Manager) countAll(texts []string) int {
	m.countMu.Lock()
	defer m.countMu.Unlock()
	return m.counter.CountAll(texts)
}
