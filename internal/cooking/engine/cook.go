package engine

import (
	"github.com/rsned/totk-cooking-server/internal/cooking/catalog"
	"github.com/rsned/totk-cooking-server/internal/cooking/locale"
	"github.com/rsned/totk-cooking-server/pkg/cooking"
)

// Cook is the public entry point of spec.md §6: it resolves an ordered
// list of display names against the catalog, then runs the eight-stage
// cooking resolution pipeline, returning a display-ready result in the
// requested language.
//
// Cook is a pure function of (materials, catalog): no I/O, no shared
// mutable state, safe to call concurrently for any number of callers
// sharing the same *catalog.Catalog.
func Cook(cat *catalog.Catalog, names []string, lang string) (cooking.CookResult, error) {
	materials, err := locale.New(cat).ResolveMaterials(names)
	if err != nil {
		return cooking.CookResult{}, err
	}
	return CookMaterials(cat, materials, lang), nil
}

// CookMaterials runs the pipeline against already-resolved materials,
// for callers that hold Material records directly instead of display
// names.
func CookMaterials(cat *catalog.Catalog, materials []cooking.Material, lang string) cooking.CookResult {
	s := &state{Materials: materials}
	s.Recipe = matchRecipe(cat, materials)

	aggregateBase(s, cat)
	planRandomness(s, cat)
	applySpice(s, cat)
	bonusAndClamp(s, cat)

	return finish(s, cat, lang)
}
