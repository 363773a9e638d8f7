package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/nc-news-api/internal/platform/postgres"
)

// migrationCommands lists the arguments accepted by the migrate command.
func migrationCommands() []string {
	return append([]string(nil), postgres.MigrationCommands...)
}

// runMigrate is the migrate command. Every run logs under its own
// correlation id so that the goose output of one invocation can be grouped.
func runMigrate(ctx context.Context, configFile, command string) error {
	cfg, logger, err := bootstrap(configFile)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}()

	log := logger.With(slog.String("correlation_id", uuid.NewString()))
	log.Info("running migrations", slog.String("command", command))

	if err := postgres.Migrate(ctx, db, command, log); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
