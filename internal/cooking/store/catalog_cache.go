package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing/fstest"
	"time"

	"github.com/rsned/totk-cooking-server/internal/cooking/catalog"
)

// catalogFiles names the seven canonical JSON tables a catalog directory
// must contain, per spec.md §6.
var catalogFiles = []string{
	"SystemData.json",
	"MaterialData.json",
	"EffectData.json",
	"RecipeData.json",
	"SingleRecipeData.json",
	"RecipeCardData.json",
	"LanguageData.json",
}

// CatalogStore persists the raw catalog JSON tables as blobs so a server
// process can import a catalog directory once and reload the compiled
// catalog on every subsequent start without touching the filesystem again.
type CatalogStore struct {
	db *DB
}

// NewCatalogStore creates a CatalogStore backed by the given database.
func NewCatalogStore(db *DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// ImportDir reads the seven canonical catalog files from dir, persists
// them as blobs, and returns the compiled catalog.
func (s *CatalogStore) ImportDir(ctx context.Context, dir string) (*catalog.Catalog, error) {
	mapFS := fstest.MapFS{}
	importedAt := time.Now().UTC().Format(time.RFC3339)

	for _, name := range catalogFiles {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		mapFS[name] = &fstest.MapFile{Data: data}
		if err := s.putBlob(ctx, name, data, importedAt); err != nil {
			return nil, err
		}
	}

	return catalog.LoadFS(mapFS)
}

func (s *CatalogStore) putBlob(ctx context.Context, name string, data []byte, importedAt string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO catalog_blobs (table_name, data, imported_at)
		VALUES (?, ?, ?)
		ON CONFLICT(table_name) DO UPDATE SET data = excluded.data, imported_at = excluded.imported_at
	`, name, string(data), importedAt)
	if err != nil {
		return fmt.Errorf("storing catalog blob %s: %w", name, err)
	}
	return nil
}

// Load reconstructs a *catalog.Catalog from previously imported blobs. It
// returns (nil, nil) if no catalog has ever been imported into this store.
func (s *CatalogStore) Load(ctx context.Context) (*catalog.Catalog, error) {
	mapFS := fstest.MapFS{}

	for _, name := range catalogFiles {
		var data string
		err := s.db.QueryRowContext(ctx, `SELECT data FROM catalog_blobs WHERE table_name = ?`, name).Scan(&data)
		if err == sql.ErrNoRows {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("loading catalog blob %s: %w", name, err)
		}
		mapFS[name] = &fstest.MapFile{Data: []byte(data)}
	}

	return catalog.LoadFS(mapFS)
}

// ImportedAt returns when the given table was last imported, or "" if
// never imported.
func (s *CatalogStore) ImportedAt(ctx context.Context, tableName string) (string, error) {
	var importedAt string
	err := s.db.QueryRowContext(ctx, `SELECT imported_at FROM catalog_blobs WHERE table_name = ?`, tableName).Scan(&importedAt)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("querying catalog import time: %w", err)
	}
	return importedAt, nil
}
