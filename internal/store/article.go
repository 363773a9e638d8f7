package store

import (
	"context"

	"github.com/phrazzld/nc-news-api/internal/domain"
)

// ArticleQuery describes one article listing request.
// Sort and Order are whitelisted values; Topic is always bound as a parameter.
type ArticleQuery struct {
	Topic string
	Sort  ArticleSort
	Order SortOrder
	Page  Page
}

// ArticleList is one page of articles plus the total number of matches.
type ArticleList struct {
	Articles   []domain.ArticleSummary
	TotalCount int
}

// ArticleStore defines the interface for article data access.
type ArticleStore interface {
	// GetByID retrieves an article with its comment count.
	// Returns domain.ErrInvalidQuery for a non-positive id and
	// ErrArticleNotFound if no article has that id.
	GetByID(ctx context.Context, id int) (*domain.Article, error)

	// List returns one page of article summaries.
	// Returns ErrTopicNotFound if a topic filter was given and nothing matched.
	List(ctx context.Context, q ArticleQuery) (*ArticleList, error)

	// Create inserts a new article with zero votes and the current timestamp.
	// Returns an error wrapping domain.ErrInvalidBody if required fields are missing.
	Create(ctx context.Context, in domain.NewArticle) (*domain.Article, error)

	// IncrementVotes adds delta to the article's votes and returns the updated article.
	// Returns domain.ErrInvalidBody for a zero delta and ErrArticleNotFound for an unknown id.
	IncrementVotes(ctx context.Context, id int, delta int) (*domain.Article, error)
}
