package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/nc-news-api/internal/config"
)

// loadAppConfig loads the application configuration from environment variables
// and the optional config file.
func loadAppConfig(configFile string) (*config.Config, error) {
	cfg, err := config.LoadFrom(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logConfigSummary reports the loaded settings without secrets.
func logConfigSummary(cfg *config.Config, logger *slog.Logger) {
	logger.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Float64("rate_limit_rps", cfg.Server.RateLimitRPS))
	logger.Debug("database configuration",
		slog.Bool("url_present", cfg.Database.URL != ""),
		slog.Int("max_open_conns", cfg.Database.MaxOpenConns))
	if cfg.Docs.EndpointsFile != "" {
		logger.Debug("endpoints document override", slog.String("path", cfg.Docs.EndpointsFile))
	}
}
