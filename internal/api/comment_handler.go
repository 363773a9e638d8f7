package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/nc-news-api/internal/api/shared"
	"github.com/phrazzld/nc-news-api/internal/domain"
	"github.com/phrazzld/nc-news-api/internal/platform/logger"
	"github.com/phrazzld/nc-news-api/internal/store"
)

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	comments store.CommentStore
	logger   *slog.Logger
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments store.CommentStore, logger *slog.Logger) *CommentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommentHandler{
		comments: comments,
		logger:   logger.With(slog.String("component", "comment_handler")),
	}
}

// ListArticleComments handles GET /api/articles/{article_id}/comments.
func (h *CommentHandler) ListArticleComments(w http.ResponseWriter, r *http.Request) {
	articleID, err := getPathID(r, paramArticleID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	page, err := getPage(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	comments, err := h.comments.ListByArticle(r.Context(), articleID, page)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CommentListResponse{Comments: comments})
}

// CreateComment handles POST /api/articles/{article_id}/comments.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	articleID, err := getPathID(r, paramArticleID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var in domain.NewComment
	if err := shared.DecodeJSON(r, &in); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	in.ArticleID = articleID

	comment, err := h.comments.Create(r.Context(), in)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Debug("comment posted", slog.Int("comment_id", comment.ID), slog.Int("article_id", articleID))
	shared.RespondWithJSON(w, r, http.StatusCreated, CommentResponse{Comment: comment})
}

// UpdateCommentVotes handles PATCH /api/comments/{comment_id}.
func (h *CommentHandler) UpdateCommentVotes(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, paramCommentID)
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

	comment, err := h.comments.IncrementVotes(r.Context(), id, delta)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CommentResponse{Comment: comment})
}

// DeleteComment handles DELETE /api/comments/{comment_id}.
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, paramCommentID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.comments.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
