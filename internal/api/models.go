package api

import (
	"github.com/phrazzld/nc-news-api/internal/domain"
)

// VoteRequest is the body of the vote endpoints. IncVotes is a pointer so a
// missing field can be told apart from zero.
type VoteRequest struct {
	IncVotes *int `json:"incVotes"`
}

// ArticleResponse wraps a single article.
type ArticleResponse struct {
	Article *domain.Article `json:"article"`
}

// ArticleVoteResponse wraps an article after a vote change. The key is
// "comment" for compatibility with existing clients of this endpoint.
type ArticleVoteResponse struct {
	Article *domain.Article `json:"comment"`
}

// ArticleListResponse is one page of articles plus the total number of matches.
type ArticleListResponse struct {
	Articles   []domain.ArticleSummary `json:"articles"`
	TotalCount int                     `json:"total_count"`
}

// CommentResponse wraps a single comment.
type CommentResponse struct {
	Comment *domain.Comment `json:"comment"`
}

// CommentListResponse wraps one page of comments.
type CommentListResponse struct {
	Comments []domain.Comment `json:"comments"`
}
