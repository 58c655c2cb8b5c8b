package contextmgr

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/codeframe-hq/codeframe/ent/contextitem"
)

func TestAssignTierBoundaries(t *testing.T) {
	assert.Equal(t, contextitem.TierHOT, AssignTier(0.8), "HOT lower edge is inclusive")
	assert.Equal(t, contextitem.TierWARM, AssignTier(0.7999))
	assert.Equal(t, contextitem.TierWARM, AssignTier(0.4), "WARM lower edge is inclusive")
	assert.Equal(t, contextitem.TierCOLD, AssignTier(0.3999))
	assert.Equal(t, contextitem.TierHOT, AssignTier(1.0))
	assert.Equal(t, contextitem.TierCOLD, AssignTier(0.0))
}

func TestComputeScoreFreshItems(t *testing.T) {
	now := time.Now()

	// A fresh item has full recency and no access boost, so only the type
	// weight differentiates.
	assert.InDelta(t, 0.8, ComputeScore(contextitem.ItemTypeTASK, now, 0, now), 1e-9)
	assert.InDelta(t, 0.72, ComputeScore(contextitem.ItemTypeCODE, now, 0, now), 1e-9)
	assert.InDelta(t, 0.68, ComputeScore(contextitem.ItemTypeERROR, now, 0, now), 1e-9)
	assert.InDelta(t, 0.64, ComputeScore(contextitem.ItemTypeTEST_RESULT, now, 0, now), 1e-9)
	assert.InDelta(t, 0.6, ComputeScore(contextitem.ItemTypePRD_SECTION, now, 0, now), 1e-9)
}

func TestComputeScoreUnknownTypeUsesDefaultWeight(t *testing.T) {
	now := time.Now()
	score := ComputeScore(contextitem.ItemType("BOGUS"), now, 0, now)
	assert.InDelta(t, 0.6, score, 1e-9)
}

func TestComputeScoreAgeDecay(t *testing.T) {
	now := time.Now()

	twoDaysOld := ComputeScore(contextitem.ItemTypeTASK, now.Add(-48*time.Hour), 0, now)
	assert.InDelta(t, 0.4+0.4*math.Exp(-1), twoDaysOld, 1e-9)

	// Items from the future decay to zero instead of inflating the score.
	future := ComputeScore(contextitem.ItemTypeTASK, now.Add(time.Hour), 0, now)
	assert.InDelta(t, 0.4, future, 1e-9)
}

func TestComputeScoreAccessBoost(t *testing.T) {
	now := time.Now()

	none := ComputeScore(contextitem.ItemTypeTASK, now, 0, now)
	some := ComputeScore(contextitem.ItemTypeTASK, now, 5, now)
	assert.Greater(t, some, none)
	assert.InDelta(t, 0.8+0.2*math.Log(6)/10, some, 1e-9)

	// Boost saturates at 1.0: a maximally accessed fresh TASK scores exactly 1.
	heavy := ComputeScore(contextitem.ItemTypeTASK, now, 1_000_000, now)
	assert.InDelta(t, 1.0, heavy, 1e-9)

	negative := ComputeScore(contextitem.ItemTypeTASK, now, -3, now)
	assert.InDelta(t, 0.8, negative, 1e-9)
}

func TestScoreStaysInUnitInterval(t *testing.T) {
	now := time.Now()
	ages := []time.Duration{-time.Hour, 0, 24 * time.Hour, 90 * 24 * time.Hour}
	counts := []int{-1, 0, 1, 100, 10_000_000}
	for _, age := range ages {
		for _, count := range counts {
			score := ComputeScore(contextitem.ItemTypeTASK, now.Add(-age), count, now)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	}
}

func TestTierMonotonicInScore(t *testing.T) {
	rank := map[contextitem.Tier]int{
		contextitem.TierCOLD: 0,
		contextitem.TierWARM: 1,
		contextitem.TierHOT:  2,
	}
	prev := contextitem.TierCOLD
	for score := 0.0; score <= 1.0; score += 0.01 {
		tier := AssignTier(score)
		assert.GreaterOrEqual(t, rank[tier], rank[prev], "score %f", score)
		prev = tier
	}
}
