package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/nc-news-api/internal/domain"
	"github.com/phrazzld/nc-news-api/internal/platform/logger"
	"github.com/phrazzld/nc-news-api/internal/redact"
	"github.com/phrazzld/nc-news-api/internal/store"
)

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the CommentStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

// ListByArticle implements store.CommentStore.ListByArticle
// An empty page is only an error when the article itself does not exist.
func (s *PostgresCommentStore) ListByArticle(
	ctx context.Context,
	articleID int,
	page store.Page,
) ([]domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateID("article_id", articleID); err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	query := `
		SELECT comment_id, article_id, author, body, votes, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC, comment_id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := s.db.QueryContext(ctx, query, articleID, page.Limit, page.Offset())
	if err != nil {
		log.Error("failed to query comments",
			slog.String("error", redact.Error(err)),
			slog.Int("article_id", articleID))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt); err != nil {
			log.Error("failed to scan comment row", slog.String("error", redact.Error(err)))
			return nil, err
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating comment rows", slog.String("error", redact.Error(err)))
		return nil, err
	}

	if len(comments) == 0 {
		exists, err := s.articleExists(ctx, articleID)
		if err != nil {
			return nil, err
		}
		if !exists {
			log.Debug("article not found for comment listing", slog.Int("article_id", articleID))
			return nil, store.ErrArticleNotFound
		}
	}

	return comments, nil
}

func (s *PostgresCommentStore) articleExists(ctx context.Context, articleID int) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)`,
		articleID,
	).Scan(&exists)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to check article existence",
			slog.String("error", redact.Error(err)),
			slog.Int("article_id", articleID))
		return false, MapError(err)
	}
	return exists, nil
}

// Create implements store.CommentStore.Create
// An unknown article or author violates a foreign key and is reported as
// store.ErrNotFound.
func (s *PostgresCommentStore) Create(ctx context.Context, in domain.NewComment) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := in.Validate(); err != nil {
		log.Warn("comment validation failed during create", slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		INSERT INTO comments (article_id, author, body, votes, created_at)
		VALUES ($1, $2, $3, 0, CURRENT_TIMESTAMP)
		RETURNING comment_id, article_id, author, body, votes, created_at
	`

	var c domain.Comment
	err := s.db.QueryRowContext(ctx, query, in.ArticleID, in.Author, in.Body).Scan(
		&c.ID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("comment references unknown article or author",
				slog.Int("article_id", in.ArticleID),
				slog.String("author", in.Author))
		} else {
			log.Error("failed to create comment",
				slog.String("error", redact.Error(err)),
				slog.Int("article_id", in.ArticleID))
		}
		return nil, MapError(err)
	}

	log.Info("comment created",
		slog.Int("comment_id", c.ID),
		slog.Int("article_id", c.ArticleID))
	return &c, nil
}

// IncrementVotes implements store.CommentStore.IncrementVotes
func (s *PostgresCommentStore) IncrementVotes(ctx context.Context, id int, delta int) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateID("comment_id", id); err != nil {
		return nil, err
	}
	if _, err := domain.ValidateVoteIncrement(&delta); err != nil {
		return nil, err
	}

	query := `
		UPDATE comments
		SET votes = votes + $2
		WHERE comment_id = $1
		RETURNING comment_id, article_id, author, body, votes, created_at
	`

	var c domain.Comment
	err := s.db.QueryRowContext(ctx, query, id, delta).Scan(
		&c.ID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("comment not found for vote update", slog.Int("comment_id", id))
			return nil, store.ErrCommentNotFound
		}
		log.Error("failed to update comment votes",
			slog.String("error", redact.Error(err)),
			slog.Int("comment_id", id))
		return nil, MapError(err)
	}

	return &c, nil
}

// Delete implements store.CommentStore.Delete
func (s *PostgresCommentStore) Delete(ctx context.Context, id int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateID("comment_id", id); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = $1`, id)
	if err != nil {
		log.Error("failed to delete comment",
			slog.String("error", redact.Error(err)),
			slog.Int("comment_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCommentNotFound); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("comment not found for delete", slog.Int("comment_id", id))
		}
		return err
	}

	log.Info("comment deleted", slog.Int("comment_id", id))
	return nil
}
