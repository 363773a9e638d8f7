package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/nc-news-api/internal/api/shared"
	"github.com/phrazzld/nc-news-api/internal/domain"
	"github.com/phrazzld/nc-news-api/internal/platform/logger"
	"github.com/phrazzld/nc-news-api/internal/store"
)

// ArticleHandler handles article-related HTTP requests.
type ArticleHandler struct {
	articles store.ArticleStore
	logger   *slog.Logger
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articles store.ArticleStore, logger *slog.Logger) *ArticleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArticleHandler{
		articles: articles,
		logger:   logger.With(slog.String("component", "article_handler")),
	}
}

// GetArticle handles GET /api/articles/{article_id}.
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, paramArticleID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	article, err := h.articles.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ArticleResponse{Article: article})
}

// ListArticles handles GET /api/articles.
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	q, err := getArticleQuery(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	list, err := h.articles.List(r.Context(), q)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ArticleListResponse{
		Articles:   list.Articles,
		TotalCount: list.TotalCount,
	})
}

// CreateArticle handles POST /api/articles.
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var in domain.NewArticle
	if err := shared.DecodeJSON(r, &in); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	article, err := h.articles.Create(r.Context(), in)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Debug("article published", slog.Int("article_id", article.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, ArticleResponse{Article: article})
}

// UpdateArticleVotes handles PATCH /api/articles/{article_id}.
// The id is checked before the body.
func (h *ArticleHandler) UpdateArticleVotes(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, paramArticleID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req VoteRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	delta, err := domain.ValidateVoteIncrement(req.IncVotes)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	article, err := h.articles.IncrementVotes(r.Context(), id, delta)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ArticleVoteResponse{Article: article})
}
