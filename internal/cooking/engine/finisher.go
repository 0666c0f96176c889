package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rsned/totk-cooking-server/internal/cooking/catalog"
	"github.com/rsned/totk-cooking-server/pkg/cooking"
)

// finish builds the final display-ready result record, per spec.md §4.8:
// sell price, critical rate, the rock-hard/failure/fairy-tonic overrides,
// Elixir actor-id promotion, and the RNG narrative.
func finish(s *state, cat *catalog.Catalog, lang string) cooking.CookResult {
	applySpecialOverrides(s, cat)

	sellPrice := computeSellPrice(s, cat)
	critRate := computeCriticalRate(s, cat)

	baseActor := s.Recipe.Recipe.ResultActorName
	actorName := baseActor
	recipeNumber := s.Recipe.Recipe.PictureBookNum
	if baseActor == cooking.ActorElixirFamily && s.Effect != "" {
		actorName, recipeNumber = promoteElixir(baseActor, s.Effect, cat, recipeNumber)
	}

	lifeRecover := cat.Effects[cooking.EffectLifeRecoverKey]

	return cooking.CookResult{
		MealName:       mealName(s.Effect, baseActor, cat, lang),
		ActorName:      actorName,
		RecipeNumber:   recipeNumber,
		HealthRecovery: formatHearts(s.HitPointRecover, s.Effect, lifeRecover, cat.Locale, lang),
		Effect:         effectDisplayName(s.Effect, cat.Locale, lang),
		EffectDuration: formatEffectDuration(s),
		EffectLevel:    strconv.Itoa(int(s.EffectLevel)),
		CriticalRate:   formatCriticalRate(critRate),
		SellPrice:      formatPrice(sellPrice),
		Description:    mealDescription(baseActor, s.Effect, int(s.EffectLevel), cat, lang),
		RNG:            rngNarrative(s),
	}
}

// mealName composes the dish's display name, prefixing the committed
// effect's localized name onto the base actor's meal name (e.g. "Hearty
// Elixir"), per the cooking logic's Meal name = Effect name + ' ' + Meal
// name composition. Falls back to the bare meal name when there is no
// effect, or no localized name for it.
func mealName(effect, baseActor string, cat *catalog.Catalog, lang string) string {
	base := cat.Locale.Get("Meal", baseActor+"_Name", lang)
	if effect == "" {
		return base
	}
	prefix := cat.Locale.Get("Effect", effect+"_Name", lang)
	if prefix == "" {
		return base
	}
	return prefix + " " + base
}

// promoteElixir suffixes the Elixir family actor with its committed
// effect type and derives the resulting recipe-book page from its position
// in RecipeCardTable (1-indexed), per spec.md §4.8. Falls back to the
// unpromoted page number if the suffixed id isn't in the card table.
func promoteElixir(baseActor, effect string, cat *catalog.Catalog, fallback int) (string, int) {
	suffixed := baseActor + "_" + effect
	for i, id := range cat.RecipeCardTable {
		if id == suffixed {
			return suffixed, i + 1
		}
	}
	return suffixed, fallback
}

// applySpecialOverrides fixes HitPointRecover for the rock-hard and
// failure recipes, per spec.md §4.8. Effect/level/time are already zeroed
// by the Base Aggregator's post-corrections (§4.4).
func applySpecialOverrides(s *state, cat *catalog.Catalog) {
	name := s.Recipe.Recipe.ResultActorName
	switch name {
	case cat.System.RockHardActorName:
		s.HitPointRecover = cat.System.FailLifeRecover
	case cat.System.FailActorName:
		s.HitPointRecover = cat.System.SubtleLifeRecover
	}
}

// computeSellPrice sums per-material selling price (or 1 for CookLowPrice
// materials), scales by the material-count price rate, and floors the
// result. Rock-hard, failure, and fairy-tonic recipes fix the price to 2.
func computeSellPrice(s *state, cat *catalog.Catalog) int {
	name := s.Recipe.Recipe.ResultActorName
	if name == cat.System.RockHardActorName || name == cat.System.FailActorName || name == cat.System.FairyActorName {
		return 2
	}

	var total float64
	for _, m := range s.Materials {
		if m.CookLowPrice {
			total++
			continue
		}
		total += float64(m.SellingPrice)
	}

	return int(math.Floor(total * priceRate(cat, len(s.Materials))))
}

func priceRate(cat *catalog.Catalog, materialCount int) float64 {
	for _, entry := range cat.System.PriceRateList {
		if entry.MaterialNum == materialCount {
			return entry.Rate
		}
	}
	return 1.0
}

// computeCriticalRate is the max per-material SpiceBoostSuccessRate plus
// a bonus keyed by the number of unique ingredients, per spec.md §4.8. The
// result is uncapped; only the formatted display caps at 100.
func computeCriticalRate(s *state, cat *catalog.Catalog) int {
	base := 0
	for _, m := range s.Materials {
		if m.SpiceBoostSuccessRate > base {
			base = m.SpiceBoostSuccessRate
		}
	}

	seen := make(map[string]struct{}, len(s.Materials))
	for _, m := range s.Materials {
		seen[m.ActorName] = struct{}{}
	}
	uniqueCount := len(seen)

	bonus := 0.0
	for _, entry := range cat.System.SuperSuccessRateList {
		if entry.MaterialTypeNum == uniqueCount {
			bonus = entry.Rate
			break
		}
	}

	return base + int(bonus)
}

// formatEffectDuration reports "None" for no effect and for the four
// untimed effect types, even though EffectTime may be nonzero internally
// for them (it's forced to 0 by the aggregator, but the display rule is
// keyed on effect type, not on the numeric value).
func formatEffectDuration(s *state) string {
	if s.Effect == "" || untimedDisplayEffects[s.Effect] {
		return "None"
	}
	return formatDuration(s.EffectTime)
}

// rngNarrative describes the active randomness subsystem in prose, never
// both: Monster Extract inhibits criticals (spec.md §3 invariants), so at
// most one of s.MonsterExtract / s.Critical is non-nil.
func rngNarrative(s *state) string {
	switch {
	case s.MonsterExtract != nil:
		return monsterExtractNarrative(s.MonsterExtract)
	case s.Critical != nil:
		return criticalNarrative(s.Critical)
	default:
		return ""
	}
}

func monsterExtractNarrative(me *monsterExtractState) string {
	var parts []string
	if me.TimeActive {
		parts = append(parts, fmt.Sprintf(
			"Monster Extract sets effect duration to one of %s (equal chance)",
			formatSecondsList(me.EffectTime)))
	}
	switch me.Mode {
	case MonsterExtractOnlyLevel:
		parts = append(parts, fmt.Sprintf(
			"Monster Extract sets effect level to one of %s (equal chance)",
			formatFloatList(me.EffectLevel)))
	case MonsterExtractOnlyHealthUp:
		parts = append(parts, fmt.Sprintf(
			"Monster Extract sets health recovery to %s",
			formatFloatList(me.HitPointRecover)))
	case MonsterExtractHealthLevelRandom:
		parts = append(parts, fmt.Sprintf(
			"Monster Extract sets health recovery to one of %s and effect level to one of %s (equal chance)",
			formatFloatList(me.HitPointRecover), formatFloatList(me.EffectLevel)))
	case MonsterExtractOnlyHealthRandom:
		parts = append(parts, fmt.Sprintf(
			"Monster Extract sets health recovery to one of %s (equal chance)",
			formatFloatList(me.HitPointRecover)))
	}
	return strings.Join(parts, "; ")
}

func criticalNarrative(c *criticalState) string {
	switch c.Mode {
	case CriticalOnlyHealth:
		return fmt.Sprintf("Critical success raises health recovery to %s", formatFloatList(c.HitPointRecover))
	case CriticalOnlyLevel:
		return fmt.Sprintf("Critical success raises effect level to %s", formatFloatList(c.EffectLevel))
	case CriticalHealthLevel:
		return fmt.Sprintf("Critical success raises health recovery to %s and effect level to %s",
			formatFloatList(c.HitPointRecover), formatFloatList(c.EffectLevel))
	case CriticalOnlyTime:
		return fmt.Sprintf("Critical success raises effect duration to %s", formatSecondsList(c.EffectTime))
	case CriticalHealthTime:
		return fmt.Sprintf("Critical success raises health recovery to %s and effect duration to %s",
			formatFloatList(c.HitPointRecover), formatSecondsList(c.EffectTime))
	case CriticalHealthLevelTime:
		return fmt.Sprintf("Critical success raises health recovery to %s, effect level to %s, and effect duration to %s",
			formatFloatList(c.HitPointRecover), formatFloatList(c.EffectLevel), formatSecondsList(c.EffectTime))
	default:
		return ""
	}
}

func formatFloatList(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'f', -1, 64)
	}
	return strings.Join(parts, " / ")
}

func formatSecondsList(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = formatDuration(x)
	}
	return strings.Join(parts, " / ")
}
