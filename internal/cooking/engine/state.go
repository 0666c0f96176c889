// Package engine implements the cooking resolution pipeline: recipe
// matching, effect aggregation, the Monster Extract / Critical branch
// models, spice application, bonus/clamp, and final formatting.
package engine

import (
	"github.com/rsned/totk-cooking-server/internal/cooking/catalog"
	"github.com/rsned/totk-cooking-server/pkg/cooking"
)

// MonsterExtractMode names the non-time branch shape Monster Extract
// selected for a cook, in the priority order the planner tries them.
type MonsterExtractMode int

const (
	MonsterExtractNone MonsterExtractMode = iota
	MonsterExtractOnlyLevel
	// MonsterExtractOnlyHealthUp is unreachable: its predicate is a strict
	// subset of MonsterExtractOnlyLevel's, which is tried first. Kept so the
	// branch-selection order matches the reference exactly.
	MonsterExtractOnlyHealthUp
	MonsterExtractHealthLevelRandom
	MonsterExtractOnlyHealthRandom
)

// monsterExtractState holds the possibility vectors Monster Extract
// contributes, once activated. A nil slice means that quantity has no
// active branch.
type monsterExtractState struct {
	Mode MonsterExtractMode

	TimeActive bool
	EffectTime []float64 // 3 equiprobable branches, present when TimeActive

	HitPointRecover []float64
	EffectLevel     []float64
}

// CriticalMode names the branch shape a critical success selected.
type CriticalMode int

const (
	CriticalNone CriticalMode = iota
	CriticalOnlyHealth
	CriticalOnlyLevel
	CriticalHealthLevel
	CriticalOnlyTime
	CriticalHealthTime
	CriticalHealthLevelTime
)

// criticalState holds the two-element (non-crit, crit) vectors a
// critical success varies.
type criticalState struct {
	Mode CriticalMode

	HitPointRecover []float64
	EffectLevel     []float64
	EffectTime      []float64
}

// state is the mutable intermediate record threaded through the pipeline
// stages for a single cook() invocation. It is private to the engine and
// discarded once the Finisher builds the output record.
type state struct {
	Materials []cooking.Material
	Recipe    catalog.CompiledRecipe

	HitPointRecover float64
	Effect          string // "" means no effect committed
	EffectLevel     float64
	EffectTime      float64

	MonsterExtract *monsterExtractState
	Critical       *criticalState

	SellingPrice int
	CriticalRate int // uncapped; display caps at 100
}

func addToAll(v []float64, delta float64) {
	for i := range v {
		v[i] += delta
	}
}

func clampMax(v []float64, max float64) {
	for i := range v {
		if v[i] > max {
			v[i] = max
		}
	}
}
