package store

import (
	"context"

	"github.com/phrazzld/nc-news-api/internal/domain"
)

// CommentStore defines the interface for comment data access.
type CommentStore interface {
	// ListByArticle returns one page of an article's comments, newest first.
	// An existing article without comments yields an empty slice;
	// an unknown article yields ErrArticleNotFound.
	ListByArticle(ctx context.Context, articleID int, page Page) ([]domain.Comment, error)

	// Create inserts a comment with zero votes and the current timestamp.
	// Returns domain.ErrInvalidQuery for a bad article id, an error wrapping
	// domain.ErrInvalidBody for missing fields and ErrNotFound when the article
	// or author does not exist.
	Create(ctx context.Context, in domain.NewComment) (*domain.Comment, error)

	// IncrementVotes adds delta to the comment's votes and returns the updated comment.
	IncrementVotes(ctx context.Context, id int, delta int) (*domain.Comment, error)

	// Delete permanently removes a comment.
	// Returns ErrCommentNotFound if no comment has that id.
	Delete(ctx context.Context, id int) error
}
