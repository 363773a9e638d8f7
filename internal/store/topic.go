package store

import (
	"context"

	"github.com/phrazzld/nc-news-api/internal/domain"
)

// TopicStore defines the interface for topic data access.
type TopicStore interface {
	// List returns every topic. An empty table yields an empty slice.
	List(ctx context.Context) ([]domain.Topic, error)
}
