// Package sync imports a catalog directory into the SQLite cache so a
// long-running server can serve cook() calls without re-parsing JSON on
// every request.
package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/rsned/totk-cooking-server/internal/cooking/catalog"
	"github.com/rsned/totk-cooking-server/internal/cooking/store"
)

// Syncer imports catalog directories into a store.DB.
type Syncer struct {
	catalogs *store.CatalogStore
	db       *store.DB
}

// NewSyncer creates a Syncer backed by the given database.
func NewSyncer(database *store.DB) *Syncer {
	return &Syncer{
		catalogs: store.NewCatalogStore(database),
		db:       database,
	}
}

// ImportCatalogDir reads the seven canonical catalog JSON tables from dir,
// persists them to the store, and returns the compiled catalog.
func (s *Syncer) ImportCatalogDir(ctx context.Context, dir string) (*catalog.Catalog, error) {
	cat, err := s.catalogs.ImportDir(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("importing catalog from %s: %w", dir, err)
	}

	if err := s.db.SetSyncMetadata(ctx, "catalog_last_sync", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return nil, err
	}
	if err := s.db.SetSyncMetadata(ctx, "catalog_material_count", fmt.Sprintf("%d", len(cat.Materials))); err != nil {
		return nil, err
	}

	return cat, nil
}

// LoadCachedCatalog reconstructs the catalog previously imported into the
// store, returning (nil, nil) if nothing has been imported yet.
func (s *Syncer) LoadCachedCatalog(ctx context.Context) (*catalog.Catalog, error) {
	return s.catalogs.Load(ctx)
}
