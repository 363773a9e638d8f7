package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/nc-news-api/internal/api"
	"github.com/phrazzld/nc-news-api/internal/api/middleware"
	"github.com/phrazzld/nc-news-api/internal/store"
)

const healthTimeout = 2 * time.Second

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Trace(app.logger))
	r.Use(chimw.Logger)
	r.Use(middleware.Recover)
	r.Use(app.metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},
		ExposedHeaders: []string{"X-Trace-ID", "Retry-After"},
		MaxAge:         300,
	}))

	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	topicHandler := api.NewTopicHandler(app.topicStore, app.logger)
	userHandler := api.NewUserHandler(app.userStore, app.logger)
	articleHandler := api.NewArticleHandler(app.articleStore, app.logger)
	commentHandler := api.NewCommentHandler(app.commentStore, app.logger)
	endpointsHandler := api.NewEndpointsHandler(app.endpoints, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(app.config.Server.RateLimitRPS, app.config.Server.RateLimitBurst))

		r.Get("/", endpointsHandler.GetEndpoints)
		r.Get("/topics", topicHandler.ListTopics)

		r.Get("/articles", articleHandler.ListArticles)
		r.Post("/articles", articleHandler.CreateArticle)
		r.Get("/articles/{article_id}", articleHandler.GetArticle)
		r.Patch("/articles/{article_id}", articleHandler.UpdateArticleVotes)
		r.Get("/articles/{article_id}/comments", commentHandler.ListArticleComments)
		r.Post("/articles/{article_id}/comments", commentHandler.CreateComment)

		r.Patch("/comments/{comment_id}", commentHandler.UpdateCommentVotes)
		r.Delete("/comments/{comment_id}", commentHandler.DeleteComment)

		r.Get("/users", userHandler.ListUsers)
		r.Get("/users/{username}", userHandler.GetUser)
	})

	r.Get("/health", app.healthCheck)
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	return r
}

// routeNotFound answers unknown paths and unsupported methods with the 404 envelope.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	api.HandleAPIError(w, r, fmt.Errorf("%w: no route for %s %s", store.ErrNotFound, r.Method, r.URL.Path))
}

// healthCheck reports 200 when the database answers a ping, 503 otherwise.
func (app *application) healthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	status, body := http.StatusOK, "OK"
	if err := app.health.PingContext(ctx); err != nil {
		app.logger.Warn("health check failed", "error", err)
		status, body = http.StatusServiceUnavailable, "Service Unavailable"
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		app.logger.Error("failed to write health check response", "error", err)
	}
}
