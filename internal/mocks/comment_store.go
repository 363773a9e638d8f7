package mocks

import (
	"context"

	"github.com/phrazzld/nc-news-api/internal/domain"
	"github.com/phrazzld/nc-news-api/internal/store"
)

// MockCommentStore implements store.CommentStore for testing
type MockCommentStore struct {
	ListByArticleFn  func(ctx context.Context, articleID int, page store.Page) ([]domain.Comment, error)
	CreateFn         func(ctx context.Context, in domain.NewComment) (*domain.Comment, error)
	IncrementVotesFn func(ctx context.Context, id int, delta int) (*domain.Comment, error)
	DeleteFn         func(ctx context.Context, id int) error

	// Default response values
	Comments []domain.Comment
	Comment  *domain.Comment
	Err      error

	ListByArticleCalls  Calls
	CreateCalls         Calls
	IncrementVotesCalls Calls
	DeleteCalls         Calls
}

var _ store.CommentStore = (*MockCommentStore)(nil)

// ListByArticle implements store.CommentStore
func (m *MockCommentStore) ListByArticle(
	ctx context.Context,
	articleID int,
	page store.Page,
) ([]domain.Comment, error) {
	m.ListByArticleCalls.record(articleID, page)
	if m.ListByArticleFn != nil {
		return m.ListByArticleFn(ctx, articleID, page)
	}
	return m.Comments, m.Err
}

// Create implements store.CommentStore
func (m *MockCommentStore) Create(ctx context.Context, in domain.NewComment) (*domain.Comment, error) {
	m.CreateCalls.record(in)
	if m.CreateFn != nil {
		return m.CreateFn(ctx, in)
	}
	return m.Comment, m.Err
}

// IncrementVotes implements store.CommentStore
func (m *MockCommentStore) IncrementVotes(ctx context.Context, id int, delta int) (*domain.Comment, error) {
	m.IncrementVotesCalls.record(id, delta)
	if m.IncrementVotesFn != nil {
		return m.IncrementVotesFn(ctx, id, delta)
	}
	return m.Comment, m.Err
}

// Delete implements store.CommentStore
func (m *MockCommentStore) Delete(ctx context.Context, id int) error {
	m.DeleteCalls.record(id)
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}
