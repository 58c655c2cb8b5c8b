// Package contextmgr maintains each agent's tiered working set of context
// items: importance scoring, tier assignment, and flash saves that checkpoint
// and evict cold items when the token footprint crosses the budget.
package contextmgr

import (
	"math"
	"time"

	"github.com/codeframe-hq/codeframe/ent/contextitem"
)

// Tier thresholds. Boundaries are inclusive on the lower edge: 0.8 is HOT,
// 0.4 is WARM.
const (
	hotThreshold  = 0.8
	warmThreshold = 0.4
)

// typeWeights rank how intrinsically valuable each item type is to keep in
// the working set. Unknown types weigh like PRD sections.
var typeWeights = map[contextitem.ItemType]float64{
	contextitem.ItemTypeTASK:        1.0,
	contextitem.ItemTypeCODE:        0.8,
	contextitem.ItemTypeERROR:       0.7,
	contextitem.ItemTypeTEST_RESULT: 0.6,
	contextitem.ItemTypePRD_SECTION: 0.5,
}

const defaultTypeWeight = 0.5

// ComputeScore returns the importance score in [0,1]:
//
//	score = 0.4·type_weight + 0.4·age_decay + 0.2·access_boost
//
// where age_decay = exp(-0.5·age_days) and access_boost =
// min(1, ln(access_count+1)/10). Negative ages decay to 0 and negative
// access counts boost 0, so clock skew and bad data degrade the score
// instead of inflating it.
func ComputeScore(itemType contextitem.ItemType, createdAt time.Time, accessCount int, now time.Time) float64 {
	weight, ok := typeWeights[itemType]
	if !ok {
		weight = defaultTypeWeight
	}

	ageDays := now.Sub(createdAt).Hours() / 24
	ageDecay := 0.0
	if ageDays >= 0 {
		ageDecay = math.Exp(-0.5 * ageDays)
	}

	accessBoost := 0.0
	if accessCount > 0 {
		accessBoost = math.Min(1.0, math.Log(float64(accessCount)+1)/10)
	}

	return 0.4*weight + 0.4*ageDecay + 0.2*accessBoost
}

// AssignTier maps a score to its tier. Monotonic: a strictly higher score
// never yields a lower tier.
func AssignTier(score float64) contextitem.Tier {
	switch {
	case score >= hotThreshold:
		return contextitem.TierHOT
	case score >= warmThreshold:
		return contextitem.TierWARM
	default:
		return contextitem.TierCOLD
	}
}
