package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/nc-news-api/internal/docs"
	"github.com/phrazzld/nc-news-api/internal/platform/logger"
)

// EndpointsHandler serves the endpoint documentation.
type EndpointsHandler struct {
	body   []byte
	logger *slog.Logger
}

// NewEndpointsHandler creates a handler that serves doc as loaded at startup.
func NewEndpointsHandler(doc *docs.Endpoints, logger *slog.Logger) *EndpointsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EndpointsHandler{
		body:   doc.JSON(),
		logger: logger.With(slog.String("component", "endpoints_handler")),
	}
}

// GetEndpoints handles GET /api.
func (h *EndpointsHandler) GetEndpoints(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.body); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Warn("failed to write endpoints document", slog.String("error", err.Error()))
	}
}
