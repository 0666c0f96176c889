package engine

import (
	"fmt"
	"strconv"

	"github.com/rsned/totk-cooking-server/internal/cooking/catalog"
	"github.com/rsned/totk-cooking-server/pkg/cooking"
)

// quarterHeartGlyph maps a 0-3 quarter-heart remainder to its display
// glyph, per spec.md §6 (¼, ½, ¾ prefixes).
var quarterHeartGlyph = [4]string{"", "¼", "½", "¾"}

// formatHearts renders a quarter-heart quantity as the game's heart
// string, promoting the LifeRecover.MaxLv sentinel (or a LifeMaxUp
// effect) to the locale's "Full Recovery" text.
func formatHearts(quarterHearts float64, effect string, lifeRecover cooking.Effect, locale cooking.LocaleDict, lang string) string {
	if effect == cooking.EffectLifeMaxUp || quarterHearts == lifeRecover.MaxLv {
		return "♥" + locale.Get("App", "FullRecovery_Name", lang)
	}

	whole := int(quarterHearts) / 4
	rem := int(quarterHearts) % 4

	str := ""
	for i := 0; i < whole; i++ {
		str += "♥"
	}
	if rem != 0 {
		str += quarterHeartGlyph[rem] + "♥"
	}
	if str == "" {
		return "None"
	}
	return str
}

// formatDuration renders a seconds quantity as "MM:SS".
func formatDuration(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// formatPrice renders a sell price as "N Rupees".
func formatPrice(price int) string {
	return strconv.Itoa(price) + " Rupees"
}

// formatCriticalRate renders a critical rate as "N%", displayed capped
// at 100 regardless of the uncapped internal value.
func formatCriticalRate(rate int) string {
	if rate > 100 {
		rate = 100
	}
	return strconv.Itoa(rate) + "%"
}

// effectDisplayName looks up a committed effect's player-facing buff
// name, falling back to "None" when the locale has no translation (the
// reference's observed behavior for effects with no distinct buff text).
func effectDisplayName(effect string, locale cooking.LocaleDict, lang string) string {
	if effect == "" {
		return "None"
	}
	name := locale.Get("Buff", effect, lang)
	if name == "" {
		return "None"
	}
	return name
}

// untimedDisplayEffects names the effect types whose duration is never shown,
// even when EffectTime is nonzero internally.
var untimedDisplayEffects = map[string]bool{
	cooking.EffectLifeMaxUp:      true,
	cooking.EffectStaminaRecover: true,
	cooking.EffectExStaminaMaxUp: true,
	cooking.EffectLifeRepair:     true,
}

// mealDescription composes a meal's flavor text from its effect
// description (level-specific, for low-MaxLv effects above level 1) and
// its actor caption, joined by a single space. Line breaks inside either
// text are kept as they are.
func mealDescription(resultActor, effect string, effectLevel int, cat *catalog.Catalog, lang string) string {
	caption := cat.Locale.Get("Meal", resultActor+"_Caption", lang)

	var effectDesc string
	if effect != "" {
		key := effect
		if resultActor == cooking.ActorElixirFamily {
			key += "_MedicineDesc"
		} else {
			key += "_Desc"
		}
		if e, ok := cat.Effects[effect]; ok && e.MaxLv <= 3 && effectLevel > 1 {
			key += fmt.Sprintf("_%02d", effectLevel)
		}
		effectDesc = cat.Locale.Get("Effect", key, lang)
	}

	desc := effectDesc
	if desc != "" {
		desc += " "
	}
	desc += caption
	return desc
}
