package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/nc-news-api/internal/domain"
	"github.com/phrazzld/nc-news-api/internal/platform/logger"
	"github.com/phrazzld/nc-news-api/internal/store"
)

// Run replaces the contents of every table with ds in a single transaction.
func Run(ctx context.Context, db *sql.DB, ds *Dataset) error {
	return store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		return Insert(ctx, tx, ds)
	})
}

// Insert truncates the tables and writes ds through db. Identity sequences
// restart, so the first article inserted gets id 1.
func Insert(ctx context.Context, db store.DBTX, ds *Dataset) error {
	log := logger.FromContext(ctx).With(slog.String("component", "seed"))

	if _, err := db.ExecContext(ctx,
		`TRUNCATE comments, articles, users, topics RESTART IDENTITY CASCADE`,
	); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	for _, t := range ds.Topics {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO topics (slug, description) VALUES ($1, $2)`,
			t.Slug, t.Description,
		); err != nil {
			return fmt.Errorf("failed to insert topic %q: %w", t.Slug, err)
		}
	}

	for _, u := range ds.Users {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO users (username, name, avatar_url) VALUES ($1, $2, $3)`,
			u.Username, u.Name, u.AvatarURL,
		); err != nil {
			return fmt.Errorf("failed to insert user %q: %w", u.Username, err)
		}
	}

	articleIDs := make([]int, len(ds.Articles))
	for i, a := range ds.Articles {
		img := a.ArticleImgURL
		if img == "" {
			img = domain.DefaultArticleImageURL
		}
		if err := db.QueryRowContext(ctx, `
			INSERT INTO articles (title, topic, author, body, created_at, votes, article_img_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING article_id`,
			a.Title, a.Topic, a.Author, a.Body, a.CreatedAt, a.Votes, img,
		).Scan(&articleIDs[i]); err != nil {
			return fmt.Errorf("failed to insert article %q: %w", a.Title, err)
		}
	}

	for i, c := range ds.Comments {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO comments (article_id, author, body, votes, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			articleIDs[c.Article-1], c.Author, c.Body, c.Votes, c.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert comment %d: %w", i+1, err)
		}
	}

	log.Info("seed data inserted",
		slog.Int("topics", len(ds.Topics)),
		slog.Int("users", len(ds.Users)),
		slog.Int("articles", len(ds.Articles)),
		slog.Int("comments", len(ds.Comments)))
	return nil
}
