package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/nc-news-api/internal/config"
	"github.com/phrazzld/nc-news-api/internal/platform/logger"
)

// setupAppLogger configures and initializes the application logger based on config settings.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(logger.LoggerConfig{
		Level:  cfg.Server.LogLevel,
		Format: cfg.Server.LogFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	return l, nil
}

// bootstrap loads configuration and builds the logger shared by every command.
func bootstrap(configFile string) (*config.Config, *slog.Logger, error) {
	cfg, err := loadAppConfig(configFile)
	if err != nil {
		return nil, nil, err
	}

	l, err := setupAppLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	logConfigSummary(cfg, l)
	return cfg, l, nil
}
