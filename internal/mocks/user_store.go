package mocks

import (
	"context"

	"github.com/phrazzld/nc-news-api/internal/domain"
	"github.com/phrazzld/nc-news-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	ListFn          func(ctx context.Context) ([]domain.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)

	// Users backs the default implementation, keyed by username.
	Users map[string]domain.User
	Err   error

	ListCalls          Calls
	GetByUsernameCalls Calls
}

var _ store.UserStore = (*MockUserStore)(nil)

// List implements store.UserStore
func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	m.ListCalls.record()
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	users := make([]domain.User, 0, len(m.Users))
	for _, u := range m.Users {
		users = append(users, u)
	}
	return users, nil
}

// GetByUsername implements store.UserStore
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	m.GetByUsernameCalls.record(username)
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	u, ok := m.Users[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &u, nil
}
