package engine

import (
	"github.com/rsned/totk-cooking-server/internal/cooking/catalog"
	"github.com/rsned/totk-cooking-server/pkg/cooking"
)

// aggregateBase computes the pre-randomness baseline: raw health recovery
// and the committed status effect, per spec.md §4.4.
func aggregateBase(s *state, cat *catalog.Catalog) {
	aggregateHealth(s, cat)
	aggregateEffect(s, cat)
	applyPostCorrections(s, cat)
}

// aggregateHealth sums per-material HitPointRecover and scales it by the
// failure or normal life-recovery rate.
func aggregateHealth(s *state, cat *catalog.Catalog) {
	var raw float64
	for _, m := range s.Materials {
		raw += m.HitPointRecover
	}

	rate := cat.System.LifeRecoverRate
	if s.Recipe.Recipe.ResultActorName == cat.System.FailActorName {
		rate = cat.System.SubtleLifeRecoverRate
	}
	s.HitPointRecover = raw * rate
}

// aggregateEffect walks effect types in catalog order, committing the
// first one any material carries and clearing it on a later conflict (or
// downgrading the recipe to FAILURE_RECIPE for the Elixir family).
func aggregateEffect(s *state, cat *catalog.Catalog) {
	var bonusTime float64
	for _, m := range s.Materials {
		if m.CookTag == cooking.CookTagEnemy {
			bonusTime += float64(m.SpiceBoostEffectiveTime)
		}
	}

	committed := false
	for _, effectType := range cat.EffectOrder {
		n := 0
		for _, m := range s.Materials {
			if m.CureEffectType == effectType {
				n++
			}
		}
		if n == 0 {
			continue
		}

		if committed {
			s.Effect = ""
			s.EffectLevel = 0
			s.EffectTime = 0
			if s.Recipe.Recipe.ResultActorName == cooking.ActorElixirFamily {
				s.Recipe = failureCompiled(cat)
			}
			continue
		}

		effect := cat.Effects[effectType]
		s.Effect = effectType
		s.EffectTime += bonusTime
		for range s.Materials {
			s.EffectTime += 30
		}
		s.EffectTime += float64(n) * float64(effect.BaseTime)

		var potency float64
		for _, m := range s.Materials {
			if m.CureEffectType == effectType {
				potency += m.CureEffectLevel
			}
		}
		s.EffectLevel = effect.Rate * potency

		switch effectType {
		case cooking.EffectLifeMaxUp:
			s.EffectLevel += bonusYellowHearts(s.Materials)
		case cooking.EffectStaminaRecover, cooking.EffectExStaminaMaxUp:
			s.EffectLevel += bonusStamina(s.Materials)
		}
		if s.EffectLevel > effect.MaxLv {
			s.EffectLevel = effect.MaxLv
		}
		committed = true
	}
}

func bonusYellowHearts(materials []cooking.Material) float64 {
	var total float64
	for _, m := range materials {
		if m.CookTag == cooking.CookTagEnemy {
			total += m.SpiceBoostMaxHeartLevel
		}
	}
	return total
}

func bonusStamina(materials []cooking.Material) float64 {
	var total float64
	for _, m := range materials {
		if m.CookTag == cooking.CookTagEnemy {
			total += m.SpiceBoostStaminaLevel
		}
	}
	return total
}

// applyPostCorrections zeroes the effect for fairy-tonic, failure, and
// rock-hard meals, and forces effect_time to 0 for every non-timed effect.
func applyPostCorrections(s *state, cat *catalog.Catalog) {
	name := s.Recipe.Recipe.ResultActorName
	if name == cat.System.FairyActorName || name == cat.System.FailActorName || name == cat.System.RockHardActorName {
		s.Effect = ""
		s.EffectLevel = 0
		s.EffectTime = 0
		return
	}

	switch s.Effect {
	case cooking.EffectLifeMaxUp, cooking.EffectStaminaRecover, cooking.EffectExStaminaMaxUp, cooking.EffectLifeRepair:
		s.EffectTime = 0
	}
}
