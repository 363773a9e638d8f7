package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/nc-news-api/internal/platform/logger"
	"github.com/phrazzld/nc-news-api/internal/seed"
)

// loadDataset returns the dataset at path, or the built-in one when path is empty.
func loadDataset(path string) (*seed.Dataset, error) {
	if path == "" {
		return seed.Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	return seed.Load(f)
}

// runSeed is the seed command. It replaces every table's contents.
func runSeed(ctx context.Context, configFile, dataFile string) error {
	cfg, log, err := bootstrap(configFile)
	if err != nil {
		return err
	}

	ds, err := loadDataset(dataFile)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}()

	if err := seed.Run(logger.WithLogger(ctx, log), db, ds); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	log.Info("database seeded",
		slog.Int("topics", len(ds.Topics)),
		slog.Int("users", len(ds.Users)),
		slog.Int("articles", len(ds.Articles)),
		slog.Int("comments", len(ds.Comments)))
	return nil
}
