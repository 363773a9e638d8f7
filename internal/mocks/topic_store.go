package mocks

import (
	"context"

	"github.com/phrazzld/nc-news-api/internal/domain"
	"github.com/phrazzld/nc-news-api/internal/store"
)

// MockTopicStore implements store.TopicStore for testing
type MockTopicStore struct {
	ListFn func(ctx context.Context) ([]domain.Topic, error)

	Topics []domain.Topic
	Err    error

	ListCalls Calls
}

var _ store.TopicStore = (*MockTopicStore)(nil)

// List implements store.TopicStore
func (m *MockTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	m.ListCalls.record()
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Topics, m.Err
}
