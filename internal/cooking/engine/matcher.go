package engine

import (
	"github.com/rsned/totk-cooking-server/internal/cooking/catalog"
	"github.com/rsned/totk-cooking-server/pkg/cooking"
)

// actorTag is a (ActorName, CookTag) pair, deduplicated in first-seen order
// before the matcher runs.
type actorTag struct {
	actor string
	tag   string
}

// literalMatches reports whether an OR-literal matches a (actor, tag) pair:
// either by exact actor id or by cook tag.
func literalMatches(literal string, p actorTag) bool {
	return literal == p.actor || literal == p.tag
}

// matchRecipe resolves the recipe for an ordered list of materials,
// following the recipe matcher procedure of spec.md §4.3: single-recipe
// match on a sole (actor, tag) pair, else AND-of-OR set-cover over the
// normal recipe table, else a spice fallback against the single-recipe
// table, else the FAILURE_RECIPE default.
//
// Scanning the recipe table also tracks "the current best" default: every
// time a table entry whose ResultActorName is the catalog's own failure
// actor is passed over, it replaces the running default, whether or not it
// ends up the matched recipe. If nothing ever matches, that running
// default — not the bare FAILURE_RECIPE constant — is the result, mirroring
// the reference implementation exactly.
func matchRecipe(cat *catalog.Catalog, materials []cooking.Material) catalog.CompiledRecipe {
	best := catalog.CompiledRecipe{
		Recipe:   cooking.FailureRecipe,
		AndParts: [][]string{{cooking.CookTagEnemy, cooking.CookTagInsect}},
	}
	unique := dedupActorTag(materials)

	if len(unique) == 1 {
		r, ok, newBest := matchSingleTracked(cat.SingleRecipes, cat.System.FailActorName, unique[0], best)
		if ok {
			return r
		}
		return newBest
	}

	r, ok, newBest := matchNormalTracked(cat.Recipes, cat.System.FailActorName, unique, best)
	if ok {
		return r
	}
	best = newBest

	if hasSpice(materials) {
		r, ok, newBest := matchSingleTracked(cat.SingleRecipes, cat.System.FailActorName, unique[0], best)
		if ok {
			return r
		}
		best = newBest
	}

	return best
}

// matchSingleTracked scans single recipes in table order, matching p
// against exactly one (actor, tag) pair, updating the running default
// whenever a failure-actor entry is passed.
func matchSingleTracked(
	single []catalog.CompiledRecipe,
	failActorName string,
	p actorTag,
	current catalog.CompiledRecipe,
) (catalog.CompiledRecipe, bool, catalog.CompiledRecipe) {
	best := current
	for _, r := range single {
		if r.Recipe.ResultActorName == failActorName {
			best = r
		}
		for _, literal := range r.AndParts[0] {
			if literalMatches(literal, p) {
				return r, true, best
			}
		}
	}
	return catalog.CompiledRecipe{}, false, best
}

// matchNormalTracked scans the AND-of-OR recipe table, consuming at most
// one still-unused pair from the working set per AND-part, updating the
// running default whenever a failure-actor entry is passed.
func matchNormalTracked(
	recipes []catalog.CompiledRecipe,
	failActorName string,
	unique []actorTag,
	current catalog.CompiledRecipe,
) (catalog.CompiledRecipe, bool, catalog.CompiledRecipe) {
	best := current
	for _, r := range recipes {
		if r.Recipe.ResultActorName == failActorName {
			best = r
		}
		if len(r.AndParts) > len(unique) {
			continue
		}

		working := append([]actorTag(nil), unique...)
		ok := true
		for _, andPart := range r.AndParts {
			consumed := -1
			for i, p := range working {
				for _, literal := range andPart {
					if literalMatches(literal, p) {
						consumed = i
						break
					}
				}
				if consumed >= 0 {
					break
				}
			}
			if consumed < 0 {
				ok = false
				break
			}
			working = append(working[:consumed], working[consumed+1:]...)
		}
		if ok {
			return r, true, best
		}
	}
	return catalog.CompiledRecipe{}, false, best
}

// dedupActorTag builds the first-seen-order, deduplicated (actor, tag)
// pair list the matcher operates on.
func dedupActorTag(materials []cooking.Material) []actorTag {
	seen := make(map[actorTag]struct{}, len(materials))
	unique := make([]actorTag, 0, len(materials))
	for _, m := range materials {
		p := actorTag{actor: m.ActorName, tag: m.CookTag}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	return unique
}

func hasSpice(materials []cooking.Material) bool {
	for _, m := range materials {
		if m.CookTag == cooking.CookTagSpice {
			return true
		}
	}
	return false
}

// failureCompiled returns the catalog's own failure recipe entry, compiled,
// for the Elixir multi-effect conflict downgrade in aggregateEffect. Falls
// back to the bare FailureRecipe constant if the catalog's recipe table has
// no entry for the failure actor; catalog loading does not reject such a
// catalog.
func failureCompiled(cat *catalog.Catalog) catalog.CompiledRecipe {
	for _, r := range cat.Recipes {
		if r.Recipe.ResultActorName == cat.System.FailActorName {
			return r
		}
	}
	return catalog.CompiledRecipe{Recipe: cooking.FailureRecipe}
}
