// Package mocks provides centralized mock implementations of the store
// interfaces for handler and router tests.
//
// Each mock has a function field per interface method. An unset field falls
// back to the mock's default data and Err, so a test only configures the
// behaviour it cares about:
//
//	articles := &mocks.MockArticleStore{
//	    GetByIDFn: func(ctx context.Context, id int) (*domain.Article, error) {
//	        return nil, store.ErrArticleNotFound
//	    },
//	}
//
// Calls are recorded so tests can assert that validation failures never
// reach the store.
package mocks
