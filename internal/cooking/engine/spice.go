package engine

import (
	"github.com/rsned/totk-cooking-server/internal/cooking/catalog"
	"github.com/rsned/totk-cooking-server/pkg/cooking"
)

// applySpice folds per-material spice boosts into the baseline and into
// whichever Monster Extract or Critical vector is currently active, per
// spec.md §4.6. Spice never applies to failure or rock-hard meals.
func applySpice(s *state, cat *catalog.Catalog) {
	if isDisabledRecipe(s, cat) {
		return
	}

	for _, m := range dedupByActor(s.Materials) {
		applyHealthAndTimeSpice(s, m)
		applyLevelSpice(s, m)
	}
}

// dedupByActor returns materials deduplicated by ActorName, first-seen
// order preserved, per the reference's observed behavior.
func dedupByActor(materials []cooking.Material) []cooking.Material {
	seen := make(map[string]struct{}, len(materials))
	out := make([]cooking.Material, 0, len(materials))
	for _, m := range materials {
		if _, ok := seen[m.ActorName]; ok {
			continue
		}
		seen[m.ActorName] = struct{}{}
		out = append(out, m)
	}
	return out
}

func applyHealthAndTimeSpice(s *state, m cooking.Material) {
	if m.CookTag == cooking.CookTagEnemy {
		return
	}

	if s.Critical != nil && s.Critical.HitPointRecover != nil {
		addToAll(s.Critical.HitPointRecover, m.SpiceBoostHitPointRecover)
	} else if s.MonsterExtract != nil && s.MonsterExtract.HitPointRecover != nil {
		addToAll(s.MonsterExtract.HitPointRecover, m.SpiceBoostHitPointRecover)
	}
	s.HitPointRecover += m.SpiceBoostHitPointRecover

	if s.Critical != nil && s.Critical.EffectTime != nil {
		addToAll(s.Critical.EffectTime, float64(m.SpiceBoostEffectiveTime))
	} else if s.MonsterExtract != nil && s.MonsterExtract.TimeActive {
		addToAll(s.MonsterExtract.EffectTime, float64(m.SpiceBoostEffectiveTime))
	}
	s.EffectTime += float64(m.SpiceBoostEffectiveTime)
}

func applyLevelSpice(s *state, m cooking.Material) {
	if m.CookTag != cooking.CookTagSpice {
		return
	}

	switch s.Effect {
	case cooking.EffectLifeMaxUp:
		addLevelSpice(s, m.SpiceBoostMaxHeartLevel)
	case cooking.EffectStaminaRecover, cooking.EffectExStaminaMaxUp:
		addLevelSpice(s, m.SpiceBoostStaminaLevel)
	}
}

func addLevelSpice(s *state, boost float64) {
	if s.Critical != nil && s.Critical.EffectLevel != nil {
		addToAll(s.Critical.EffectLevel, boost)
	} else if s.MonsterExtract != nil && s.MonsterExtract.EffectLevel != nil {
		addToAll(s.MonsterExtract.EffectLevel, boost)
	}
	s.EffectLevel += boost
}
