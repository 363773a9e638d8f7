package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/nc-news-api/internal/domain"
	"github.com/phrazzld/nc-news-api/internal/platform/logger"
	"github.com/phrazzld/nc-news-api/internal/redact"
	"github.com/phrazzld/nc-news-api/internal/store"
)

// articleSortColumns is the closed set of ORDER BY expressions an article
// listing may use. Request text never reaches the query; only these values do.
var articleSortColumns = map[store.ArticleSort]string{
	store.SortByCreatedAt:    "a.created_at",
	store.SortByID:           "a.article_id",
	store.SortByTitle:        "a.title",
	store.SortByTopic:        "a.topic",
	store.SortByAuthor:       "a.author",
	store.SortByVotes:        "a.votes",
	store.SortByCommentCount: "comment_count",
}

// sortDirections is the closed set of ORDER BY directions.
var sortDirections = map[store.SortOrder]string{
	store.Ascending:  "ASC",
	store.Descending: "DESC",
}

// orderByClause resolves a sort and direction through the lookup tables.
// article_id breaks ties so that pages never overlap.
func orderByClause(sort store.ArticleSort, order store.SortOrder) (string, error) {
	column, ok := articleSortColumns[sort]
	if !ok {
		return "", store.ErrUnsupportedSort
	}
	dir, ok := sortDirections[order]
	if !ok {
		return "", store.ErrUnsupportedOrder
	}
	if sort == store.SortByID {
		return column + " " + dir, nil
	}
	return fmt.Sprintf("%s %s, a.article_id %s", column, dir, dir), nil
}

const articleColumns = `
	a.article_id, a.title, a.topic, a.author, a.created_at, a.votes, a.article_img_url,
	COUNT(c.comment_id) AS comment_count`

// PostgresArticleStore implements the store.ArticleStore interface
// using a PostgreSQL database as the storage backend.
type PostgresArticleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresArticleStore creates a new PostgreSQL implementation of the ArticleStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresArticleStore(db store.DBTX, logger *slog.Logger) *PostgresArticleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresArticleStore{
		db:     db,
		logger: logger.With(slog.String("component", "article_store")),
	}
}

// Ensure PostgresArticleStore implements store.ArticleStore interface
var _ store.ArticleStore = (*PostgresArticleStore)(nil)

// GetByID implements store.ArticleStore.GetByID
// The comment count is computed from the comments table on every call.
func (s *PostgresArticleStore) GetByID(ctx context.Context, id int) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateID("article_id", id); err != nil {
		return nil, err
	}

	query := `
		SELECT` + articleColumns + `, a.body
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
		WHERE a.article_id = $1
		GROUP BY a.article_id
	`

	var article domain.Article
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&article.ID,
		&article.Title,
		&article.Topic,
		&article.Author,
		&article.CreatedAt,
		&article.Votes,
		&article.ArticleImgURL,
		&article.CommentCount,
		&article.Body,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("article not found", slog.Int("article_id", id))
			return nil, store.ErrArticleNotFound
		}
		log.Error("failed to get article by ID",
			slog.String("error", redact.Error(err)),
			slog.Int("article_id", id))
		return nil, MapError(err)
	}

	return &article, nil
}

// List implements store.ArticleStore.List
// The topic is always a bound parameter; it only decides whether the WHERE
// clause is present. The total match count is read from a window function
// and falls back to a separate count when the requested page is empty.
func (s *PostgresArticleStore) List(ctx context.Context, q store.ArticleQuery) (*store.ArticleList, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := q.Page.Validate(); err != nil {
		return nil, err
	}
	orderBy, err := orderByClause(q.Sort, q.Order)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	args := make([]any, 0, 3)

	sb.WriteString("SELECT")
	sb.WriteString(articleColumns)
	sb.WriteString(",\n\tCOUNT(*) OVER() AS total_count\n")
	sb.WriteString("FROM articles a\nLEFT JOIN comments c ON c.article_id = a.article_id\n")
	if q.Topic != "" {
		args = append(args, q.Topic)
		sb.WriteString("WHERE a.topic = $1\n")
	}
	sb.WriteString("GROUP BY a.article_id\n")
	sb.WriteString("ORDER BY " + orderBy + "\n")
	args = append(args, q.Page.Limit, q.Page.Offset())
	fmt.Fprintf(&sb, "LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		log.Error("failed to query articles",
			slog.String("error", redact.Error(err)),
			slog.String("sort_by", q.Sort.String()),
			slog.String("order", q.Order.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	list := &store.ArticleList{Articles: []domain.ArticleSummary{}}
	for rows.Next() {
		var a domain.ArticleSummary
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Topic,
			&a.Author,
			&a.CreatedAt,
			&a.Votes,
			&a.ArticleImgURL,
			&a.CommentCount,
			&list.TotalCount,
		); err != nil {
			log.Error("failed to scan article row", slog.String("error", redact.Error(err)))
			return nil, err
		}
		list.Articles = append(list.Articles, a)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating article rows", slog.String("error", redact.Error(err)))
		return nil, err
	}

	if len(list.Articles) == 0 && q.Page.Number > 1 {
		total, err := s.count(ctx, q.Topic)
		if err != nil {
			return nil, err
		}
		list.TotalCount = total
	}

	if list.TotalCount == 0 && q.Topic != "" {
		log.Debug("no articles matched topic", slog.String("topic", q.Topic))
		return nil, store.ErrTopicNotFound
	}

	log.Debug("articles retrieved",
		slog.Int("count", len(list.Articles)),
		slog.Int("total_count", list.TotalCount))
	return list, nil
}

// count returns the number of articles, optionally restricted to one topic.
func (s *PostgresArticleStore) count(ctx context.Context, topic string) (int, error) {
	query := `SELECT COUNT(*) FROM articles`
	args := []any{}
	if topic != "" {
		query += ` WHERE topic = $1`
		args = append(args, topic)
	}

	var total int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to count articles",
			slog.String("error", redact.Error(err)))
		return 0, MapError(err)
	}
	return total, nil
}

// Create implements store.ArticleStore.Create
// Unknown authors or topics surface as store.ErrNotFound through the foreign keys.
func (s *PostgresArticleStore) Create(ctx context.Context, in domain.NewArticle) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	in.Normalize()
	if err := in.Validate(); err != nil {
		log.Warn("article validation failed during create", slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		INSERT INTO articles (title, topic, author, body, article_img_url, votes, created_at)
		VALUES ($1, $2, $3, $4, $5, 0, CURRENT_TIMESTAMP)
		RETURNING article_id, title, topic, author, created_at, votes, article_img_url, body
	`

	var article domain.Article
	err := s.db.QueryRowContext(ctx, query, in.Title, in.Topic, in.Author, in.Body, in.ArticleImgURL).Scan(
		&article.ID,
		&article.Title,
		&article.Topic,
		&article.Author,
		&article.CreatedAt,
		&article.Votes,
		&article.ArticleImgURL,
		&article.Body,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("article references unknown author or topic",
				slog.String("author", in.Author),
				slog.String("topic", in.Topic))
		} else {
			log.Error("failed to create article", slog.String("error", redact.Error(err)))
		}
		return nil, MapError(err)
	}

	log.Info("article created", slog.Int("article_id", article.ID), slog.String("topic", article.Topic))
	return &article, nil
}

// IncrementVotes implements store.ArticleStore.IncrementVotes
// The update is relative, so concurrent increments never lose votes.
func (s *PostgresArticleStore) IncrementVotes(ctx context.Context, id int, delta int) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateID("article_id", id); err != nil {
		return nil, err
	}
	if _, err := domain.ValidateVoteIncrement(&delta); err != nil {
		return nil, err
	}

	query := `
		WITH updated AS (
			UPDATE articles
			SET votes = votes + $2
			WHERE article_id = $1
			RETURNING article_id, title, topic, author, created_at, votes, article_img_url, body
		)
		SELECT u.article_id, u.title, u.topic, u.author, u.created_at, u.votes, u.article_img_url,
			(SELECT COUNT(*) FROM comments c WHERE c.article_id = u.article_id) AS comment_count,
			u.body
		FROM updated u
	`

	var article domain.Article
	err := s.db.QueryRowContext(ctx, query, id, delta).Scan(
		&article.ID,
		&article.Title,
		&article.Topic,
		&article.Author,
		&article.CreatedAt,
		&article.Votes,
		&article.ArticleImgURL,
		&article.CommentCount,
		&article.Body,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("article not found for vote update", slog.Int("article_id", id))
			return nil, store.ErrArticleNotFound
		}
		log.Error("failed to update article votes",
			slog.String("error", redact.Error(err)),
			slog.Int("article_id", id))
		return nil, MapError(err)
	}

	log.Debug("article votes updated",
		slog.Int("article_id", id),
		slog.Int("delta", delta),
		slog.Int("votes", article.Votes))
	return &article, nil
}
