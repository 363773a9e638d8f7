package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/nc-news-api/internal/api/middleware"
	"github.com/phrazzld/nc-news-api/internal/config"
	"github.com/phrazzld/nc-news-api/internal/docs"
	"github.com/phrazzld/nc-news-api/internal/platform/postgres"
	"github.com/phrazzld/nc-news-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// pinger is the part of *sql.DB the health check needs.
type pinger interface {
	PingContext(ctx context.Context) error
}

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB
	health pinger

	topicStore   store.TopicStore
	userStore    store.UserStore
	articleStore store.ArticleStore
	commentStore store.CommentStore

	endpoints *docs.Endpoints
	metrics   *middleware.Metrics
}

// newApplication wires the stores, the endpoint docs and the metrics registry
// around an open database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	endpoints, err := docs.Load(cfg.Docs.EndpointsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load endpoints document: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, "ncnews"),
	)

	app := &application{
		config:       cfg,
		logger:       logger,
		db:           db,
		health:       db,
		topicStore:   postgres.NewPostgresTopicStore(db, logger),
		userStore:    postgres.NewPostgresUserStore(db, logger),
		articleStore: postgres.NewPostgresArticleStore(db, logger),
		commentStore: postgres.NewPostgresCommentStore(db, logger),
		endpoints:    endpoints,
		metrics:      middleware.NewMetrics(reg),
	}

	logger.Info("application initialized", slog.Int("documented_routes", len(endpoints.Routes())))
	return app, nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}
	app.logger.Info("application shutdown completed")
}

// runServe is the serve command: connect, build the router and serve until ctx ends.
func runServe(ctx context.Context, configFile string) error {
	cfg, logger, err := bootstrap(configFile)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		_ = db.Close()
		return err
	}
	defer app.cleanup()

	return app.Run(ctx)
}

// Run serves HTTP on the configured port until ctx is cancelled.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
