package mocks

import (
	"context"

	"github.com/phrazzld/nc-news-api/internal/domain"
	"github.com/phrazzld/nc-news-api/internal/store"
)

// MockArticleStore implements store.ArticleStore for testing
type MockArticleStore struct {
	GetByIDFn        func(ctx context.Context, id int) (*domain.Article, error)
	ListFn           func(ctx context.Context, q store.ArticleQuery) (*store.ArticleList, error)
	CreateFn         func(ctx context.Context, in domain.NewArticle) (*domain.Article, error)
	IncrementVotesFn func(ctx context.Context, id int, delta int) (*domain.Article, error)

	// Default response values
	Article     *domain.Article
	ArticleList *store.ArticleList
	Err         error

	GetByIDCalls        Calls
	ListCalls           Calls
	CreateCalls         Calls
	IncrementVotesCalls Calls
}

var _ store.ArticleStore = (*MockArticleStore)(nil)

// GetByID implements store.ArticleStore
func (m *MockArticleStore) GetByID(ctx context.Context, id int) (*domain.Article, error) {
	m.GetByIDCalls.record(id)
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Article, m.Err
}

// List implements store.ArticleStore
func (m *MockArticleStore) List(ctx context.Context, q store.ArticleQuery) (*store.ArticleList, error) {
	m.ListCalls.record(q)
	if m.ListFn != nil {
		return m.ListFn(ctx, q)
	}
	return m.ArticleList, m.Err
}

// Create implements store.ArticleStore
func (m *MockArticleStore) Create(ctx context.Context, in domain.NewArticle) (*domain.Article, error) {
	m.CreateCalls.record(in)
	if m.CreateFn != nil {
		return m.CreateFn(ctx, in)
	}
	return m.Article, m.Err
}

// IncrementVotes implements store.ArticleStore
func (m *MockArticleStore) IncrementVotes(ctx context.Context, id int, delta int) (*domain.Article, error) {
	m.IncrementVotesCalls.record(id, delta)
	if m.IncrementVotesFn != nil {
		return m.IncrementVotesFn(ctx, id, delta)
	}
	return m.Article, m.Err
}
