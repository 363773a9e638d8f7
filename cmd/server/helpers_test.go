package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/nc-news-api/internal/api/middleware"
	"github.com/phrazzld/nc-news-api/internal/config"
	"github.com/phrazzld/nc-news-api/internal/docs"
	"github.com/phrazzld/nc-news-api/internal/mocks"
	"github.com/stretchr/testify/require"
)

// testApp bundles an application wired to fakes with handles on those fakes.
type testApp struct {
	app      *application
	topics   *mocks.MockTopicStore
	users    *mocks.MockUserStore
	articles *mocks.MockArticleStore
	comments *mocks.MockCommentStore
	dbMock   sqlmock.Sqlmock
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   8080,
			LogLevel:               "error",
			LogFormat:              "json",
			ReadTimeoutSeconds:     5,
			WriteTimeoutSeconds:    5,
			ShutdownTimeoutSeconds: 2,
			CORSAllowedOrigins:     []string{"*"},
		},
		Database: config.DatabaseConfig{
			URL:                    "postgres://localhost:5432/nc_news_test",
			MaxOpenConns:           5,
			MaxIdleConns:           1,
			ConnMaxLifetimeMinutes: 5,
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestApp builds an application whose stores are fakes and whose health
// check pings a sqlmock connection.
func newTestApp(t *testing.T, cfg *config.Config) *testApp {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	endpoints, err := docs.Default()
	require.NoError(t, err)

	ta := &testApp{
		topics:   &mocks.MockTopicStore{},
		users:    &mocks.MockUserStore{},
		articles: &mocks.MockArticleStore{},
		comments: &mocks.MockCommentStore{},
		dbMock:   mock,
	}
	ta.app = &application{
		config:       cfg,
		logger:       discardLogger(),
		health:       db,
		topicStore:   ta.topics,
		userStore:    ta.users,
		articleStore: ta.articles,
		commentStore: ta.comments,
		endpoints:    endpoints,
		metrics:      middleware.NewMetrics(nil),
	}
	return ta
}
