package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"staffhub/internal/config"
	"staffhub/internal/database/migration"
	dbpostgres "staffhub/internal/database/postgres"
	"staffhub/internal/importer"
	"staffhub/internal/repository"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	source := flag.String("source", "", "taxonomy page URL (overrides IMPORTER_SOURCE_URL)")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall crawl timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if s := strings.TrimSpace(*source); s != "" {
		cfg.Importer.SourceURL = s
	}

	connCtx, connCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer connCancel()

	db, err := dbpostgres.Connect(connCtx, cfg.Database)
	if err != nil {
		logger.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := (migration.Runner{Dir: "migrations"}).Run(connCtx, db.SQLDB()); err != nil {
		logger.Fatalf("migration failed: %v", err)
	}

	imp, err := importer.New(repository.NewPostgresSkillRepository(db), cfg.Importer, logger)
	if err != nil {
		logger.Fatalf("importer init failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	stats, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed: %v", err)
	}
	logger.Printf("Catalog import done | scanned=%d imported=%d skipped=%d", stats.Scanned, stats.Imported, stats.Skipped)
}
