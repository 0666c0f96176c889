package engine

import (
	"github.com/rsned/totk-cooking-server/internal/cooking/catalog"
	"github.com/rsned/totk-cooking-server/pkg/cooking"
)

// planRandomness sets the Monster Extract and Critical mode flags and
// their branch-value vectors, per spec.md §4.5. The two subsystems are
// mutually exclusive: Monster Extract, when active, inhibits criticals.
func planRandomness(s *state, cat *catalog.Catalog) {
	if isDisabledRecipe(s, cat) {
		return
	}

	if planMonsterExtract(s, cat) {
		return
	}
	planCritical(s, cat)
}

func isDisabledRecipe(s *state, cat *catalog.Catalog) bool {
	name := s.Recipe.Recipe.ResultActorName
	return name == cat.System.FailActorName || name == cat.System.RockHardActorName
}

// planMonsterExtract activates Monster Extract mode when any material is
// the enemy-extract actor, and reports whether it did.
func planMonsterExtract(s *state, cat *catalog.Catalog) bool {
	active := false
	for _, m := range s.Materials {
		if m.ActorName == cat.System.EnemyExtractActorName {
			active = true
			break
		}
	}
	if !active {
		return false
	}

	me := &monsterExtractState{}
	s.MonsterExtract = me

	if s.Effect != "" && s.EffectTime > 0 {
		me.TimeActive = true
		me.EffectTime = []float64{60, 600, 1800}
	}

	lifeRecover := cat.Effects[cooking.EffectLifeRecoverKey]
	hasEffect := s.Effect != ""
	noHealth := s.HitPointRecover == 0 && hasEffect

	switch {
	case noHealth || s.Effect == cooking.EffectLifeMaxUp:
		effect := cat.Effects[s.Effect]
		me.Mode = MonsterExtractOnlyLevel
		me.EffectLevel = []float64{effect.MinLv, s.EffectLevel, s.EffectLevel + effect.SuperSuccessAddVolume}
	case noHealth:
		// Dead branch: its predicate is a strict subset of the one above,
		// which always wins first. Kept for parity with the reference.
		me.Mode = MonsterExtractOnlyHealthUp
		me.HitPointRecover = []float64{s.HitPointRecover + lifeRecover.SuperSuccessAddVolume}
	case hasEffect:
		effect := cat.Effects[s.Effect]
		me.Mode = MonsterExtractHealthLevelRandom
		me.HitPointRecover = []float64{1, s.HitPointRecover, s.HitPointRecover + lifeRecover.SuperSuccessAddVolume}
		me.EffectLevel = []float64{effect.MinLv, s.EffectLevel, s.EffectLevel + effect.SuperSuccessAddVolume}
	default:
		me.Mode = MonsterExtractOnlyHealthRandom
		me.HitPointRecover = []float64{1, s.HitPointRecover + lifeRecover.SuperSuccessAddVolume}
	}

	return true
}

// planCritical selects the critical-hit branch shape, per the priority
// rules of spec.md §4.5. It always allocates a Critical state once reached,
// since Monster Extract already returned early when active.
func planCritical(s *state, cat *catalog.Catalog) {
	crit := &criticalState{}
	s.Critical = crit

	if s.EffectLevel <= 1.0 {
		s.EffectLevel = 1.0
	}

	lifeRecover := cat.Effects[cooking.EffectLifeRecoverKey]
	health := func() []float64 {
		return []float64{s.HitPointRecover, s.HitPointRecover + lifeRecover.SuperSuccessAddVolume}
	}
	level := func() []float64 {
		effect := cat.Effects[s.Effect]
		return []float64{s.EffectLevel, s.EffectLevel + effect.SuperSuccessAddVolume}
	}
	timeVec := func() []float64 {
		return []float64{s.EffectTime, s.EffectTime + float64(cat.System.SuperSuccessAddEffectiveTime)}
	}

	switch {
	case s.Effect == "":
		crit.Mode = CriticalOnlyHealth
		crit.HitPointRecover = health()
	case s.Effect == cooking.EffectLifeMaxUp:
		crit.Mode = CriticalOnlyLevel
		crit.EffectLevel = level()
	case s.Effect == cooking.EffectStaminaRecover || s.Effect == cooking.EffectExStaminaMaxUp:
		effect := cat.Effects[s.Effect]
		if s.EffectLevel >= effect.MaxLv {
			crit.Mode = CriticalOnlyHealth
			crit.HitPointRecover = health()
		} else {
			crit.Mode = CriticalHealthLevel
			crit.HitPointRecover = health()
			crit.EffectLevel = level()
		}
	default:
		effect := cat.Effects[s.Effect]
		switch {
		case s.EffectLevel >= effect.MaxLv && s.HitPointRecover >= lifeRecover.MaxLv:
			crit.Mode = CriticalOnlyTime
			crit.EffectTime = timeVec()
		case s.EffectLevel >= effect.MaxLv:
			crit.Mode = CriticalHealthTime
			crit.HitPointRecover = health()
			crit.EffectTime = timeVec()
		case s.HitPointRecover >= lifeRecover.MaxLv:
			crit.Mode = CriticalHealthLevel
			crit.HitPointRecover = health()
			crit.EffectLevel = level()
		default:
			crit.Mode = CriticalHealthLevelTime
			crit.HitPointRecover = health()
			crit.EffectLevel = level()
			crit.EffectTime = timeVec()
		}
	}
}
