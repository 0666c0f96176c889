// Package locale resolves player-facing display names to internal actor
// ids and validates a cook request's ingredient list.
package locale

import (
	"github.com/rsned/totk-cooking-server/internal/cooking/catalog"
	"github.com/rsned/totk-cooking-server/pkg/cooking"
)

// Resolver maps display names to Material records using a loaded catalog.
type Resolver struct {
	cat *catalog.Catalog
}

// New creates a Resolver backed by the given catalog.
func New(cat *catalog.Catalog) *Resolver {
	return &Resolver{cat: cat}
}

// ResolveMaterials validates and resolves an ordered list of display
// names into Material records, preserving order and duplicates.
func (r *Resolver) ResolveMaterials(names []string) ([]cooking.Material, error) {
	if len(names) == 0 {
		return nil, cooking.EmptyMaterialListError{}
	}

	materials := make([]cooking.Material, 0, len(names))
	for _, name := range names {
		actorName, ok := r.cat.ResolveName(name)
		if !ok {
			return nil, cooking.InvalidMaterialError{Name: name}
		}
		material, ok := r.cat.Material(actorName)
		if !ok {
			return nil, cooking.InvalidMaterialError{Name: name}
		}
		materials = append(materials, material)
	}

	return materials, nil
}
