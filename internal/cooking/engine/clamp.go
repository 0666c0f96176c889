package engine

import (
	"math"

	"github.com/rsned/totk-cooking-server/internal/cooking/catalog"
	"github.com/rsned/totk-cooking-server/pkg/cooking"
)

// bonusAndClamp applies recipe bonuses, clamps every view to its cap,
// promotes the 120 sentinel to full recovery, and quantises effect
// levels, per spec.md §4.7.
func bonusAndClamp(s *state, cat *catalog.Catalog) {
	lifeRecover := cat.Effects[cooking.EffectLifeRecoverKey]
	bonusTime(s, cat, lifeRecover)
	bonusHealth(s, cat, lifeRecover)
	clampLevels(s, cat)
}

func bonusTime(s *state, cat *catalog.Catalog, lifeRecover cooking.Effect) {
	bonus := float64(s.Recipe.Recipe.BonusTime)

	switch {
	case s.MonsterExtract != nil && s.MonsterExtract.TimeActive:
		addToAll(s.MonsterExtract.EffectTime, bonus)
		clampMax(s.MonsterExtract.EffectTime, 1800)
	case s.Critical != nil && s.Critical.EffectTime != nil:
		addToAll(s.Critical.EffectTime, bonus)
		clampMax(s.Critical.EffectTime, 1800)
	}

	s.EffectTime += bonus
	if s.EffectTime > 1800 {
		s.EffectTime = 1800
	}
}

func bonusHealth(s *state, cat *catalog.Catalog, lifeRecover cooking.Effect) {
	bonus := s.Recipe.Recipe.BonusHeart

	healthActive := func(v []float64) bool { return v != nil }

	switch {
	case s.Critical != nil && healthActive(s.Critical.HitPointRecover):
		finishHealthVector(s.Critical.HitPointRecover, bonus, s.Effect, lifeRecover)
	case s.MonsterExtract != nil && healthActive(s.MonsterExtract.HitPointRecover):
		finishHealthVector(s.MonsterExtract.HitPointRecover, bonus, s.Effect, lifeRecover)
	}

	s.HitPointRecover += bonus
	if s.HitPointRecover > 120 {
		s.HitPointRecover = 120
	}
	if s.HitPointRecover == 120 {
		s.HitPointRecover = lifeRecover.MaxLv
	}
	if s.Effect == cooking.EffectLifeMaxUp {
		s.HitPointRecover = lifeRecover.MaxLv
	}
	if s.Effect == "" && s.HitPointRecover == 0 {
		s.HitPointRecover = 1
	}
}

// finishHealthVector adds the recipe heart bonus to every element of a
// health vector, clamps to 120, promotes 120 to full recovery, and forces
// the LifeMaxUp / all-zero overrides element-wise.
func finishHealthVector(v []float64, bonus float64, effect string, lifeRecover cooking.Effect) {
	for i := range v {
		v[i] += bonus
		if v[i] > 120 {
			v[i] = 120
		}
		if v[i] == 120 {
			v[i] = lifeRecover.MaxLv
		}
	}
	if effect == cooking.EffectLifeMaxUp {
		for i := range v {
			v[i] = lifeRecover.MaxLv
		}
	}
	if effect == "" {
		for i := range v {
			if v[i] == 0 {
				v[i] = 1
			}
		}
	}
}

// clampLevels clamps baseline and any active level vector into
// [1, effect.MaxLv] (the lower bound applies only to values in (0, 1]),
// quantises LifeMaxUp/LifeRepair to the nearest multiple of 4 (at least 4
// for values in (0, 4]), and floors every element.
func clampLevels(s *state, cat *catalog.Catalog) {
	if s.Effect == "" {
		return
	}
	effect := cat.Effects[s.Effect]

	switch {
	case s.MonsterExtract != nil && s.MonsterExtract.EffectLevel != nil:
		finishLevelVector(s.MonsterExtract.EffectLevel, s.Effect, effect)
	case s.Critical != nil && s.Critical.EffectLevel != nil:
		finishLevelVector(s.Critical.EffectLevel, s.Effect, effect)
	}

	s.EffectLevel = finishLevelScalar(s.EffectLevel, s.Effect, effect)
}

func finishLevelVector(v []float64, effectType string, effect cooking.Effect) {
	for i := range v {
		v[i] = finishLevelScalar(v[i], effectType, effect)
	}
}

func finishLevelScalar(level float64, effectType string, effect cooking.Effect) float64 {
	if level > effect.MaxLv {
		level = effect.MaxLv
	}
	if level > 0 && level <= 1.0 {
		level = 1.0
	}
	if effectType == cooking.EffectLifeMaxUp || effectType == cooking.EffectLifeRepair {
		raw := level
		level = 4 * math.Round(level/4)
		if raw > 0 && raw <= 4.0 {
			level = 4
		}
	}
	return math.Floor(level)
}
