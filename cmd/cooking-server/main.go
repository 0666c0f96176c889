// totk-cooking-server runs the Tears of the Kingdom cooking resolution
// engine behind a stdio MCP server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/rsned/totk-cooking-server/internal/cooking/cache"
	"github.com/rsned/totk-cooking-server/internal/cooking/catalog"
	"github.com/rsned/totk-cooking-server/internal/cooking/mcp"
	"github.com/rsned/totk-cooking-server/internal/cooking/store"
	"github.com/rsned/totk-cooking-server/internal/cooking/sync"
)

// resultCacheSize bounds the number of distinct (materials, lang) cook
// results held in memory at once.
const resultCacheSize = 512

func main() {
	dbPath := flag.String("db", "data/cooking/cooking.db", "Path to the SQLite catalog cache")
	catalogDir := flag.String("catalog", "", "Directory of catalog JSON files, used when the cache is empty")
	importCatalog := flag.String("import-catalog", "", "Re-import the catalog from this directory into the cache, then continue")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	banner := isatty.IsTerminal(os.Stderr.Fd())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("shutting down...")
		cancel()
	}()

	database, err := store.OpenAndInit(ctx, *dbPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = database.Close() }()

	syncer := sync.NewSyncer(database)

	cat, err := loadCatalog(ctx, syncer, *catalogDir, *importCatalog, logger, banner)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	logs := store.NewCookLogStore(database)

	results, err := cache.New(resultCacheSize)
	if err != nil {
		logger.Error("failed to create result cache", "error", err)
		os.Exit(1)
	}

	server := mcp.NewServer(cat, logs, results, logger)

	logger.Info("starting MCP server", "db", *dbPath, "materials", len(cat.Materials), "recipes", len(cat.Recipes))
	if err := server.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	fmt.Fprintln(os.Stderr, "server stopped")
}

// loadCatalog resolves the active catalog: an explicit -import-catalog
// always re-imports and overwrites the cache; otherwise the cache is
// reused if present, falling back to -catalog for a first-time import.
func loadCatalog(ctx context.Context, syncer *sync.Syncer, catalogDir, importDir string, logger *slog.Logger, banner bool) (*catalog.Catalog, error) {
	if importDir != "" {
		start := time.Now()
		cat, err := syncer.ImportCatalogDir(ctx, importDir)
		if err != nil {
			return nil, fmt.Errorf("importing catalog: %w", err)
		}
		elapsed := time.Since(start)
		if banner {
			fmt.Fprintf(os.Stderr, "imported %s materials in %s\n",
				humanize.Comma(int64(len(cat.Materials))), elapsed.Round(time.Millisecond))
		}
		logger.Info("catalog imported", "dir", importDir, "materials", len(cat.Materials), "elapsed", elapsed)
		return cat, nil
	}

	cached, err := syncer.LoadCachedCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading cached catalog: %w", err)
	}
	if cached != nil {
		logger.Info("catalog loaded from cache", "materials", len(cached.Materials))
		return cached, nil
	}

	if catalogDir == "" {
		return nil, fmt.Errorf("no cached catalog and -catalog not set: pass -catalog <dir> or -import-catalog <dir>")
	}
	return syncer.ImportCatalogDir(ctx, catalogDir)
}
