package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/nc-news-api/internal/domain"
	"github.com/phrazzld/nc-news-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commentColumns = []string{"comment_id", "article_id", "author", "body", "votes", "created_at"}

func TestPostgresCommentStore_ListByArticle(t *testing.T) {
	ctx := context.Background()

	t.Run("newest first with pagination", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresCommentStore(db, discardLogger())

		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, comment_id DESC LIMIT $2 OFFSET $3")).
			WithArgs(1, 2, 2).
			WillReturnRows(sqlmock.NewRows(commentColumns).
				AddRow(5, 1, "icellusedkars", "I hate streaming noses", 0, fixedTime).
				AddRow(2, 1, "butter_bridge", "The beautiful thing", 14, fixedTime))

		comments, err := s.ListByArticle(ctx, 1, store.Page{Limit: 2, Number: 2})
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, 5, comments[0].ID)
		assert.Equal(t, 14, comments[1].Votes)
	})

	t.Run("existing article without comments", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresCommentStore(db, discardLogger())

		mock.ExpectQuery("FROM comments").
			WithArgs(2, 10, 0).
			WillReturnRows(sqlmock.NewRows(commentColumns))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		comments, err := s.ListByArticle(ctx, 2, store.DefaultPage())
		require.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)
	})

	t.Run("unknown article", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresCommentStore(db, discardLogger())

		mock.ExpectQuery("FROM comments").
			WithArgs(999, 10, 0).
			WillReturnRows(sqlmock.NewRows(commentColumns))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(999).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		_, err := s.ListByArticle(ctx, 999, store.DefaultPage())
		assert.ErrorIs(t, err, store.ErrArticleNotFound)
	})

	t.Run("invalid id never queries", func(t *testing.T) {
		db, _ := newMockDB(t)
		s := NewPostgresCommentStore(db, discardLogger())

		_, err := s.ListByArticle(ctx, 0, store.DefaultPage())
		assert.ErrorIs(t, err, domain.ErrInvalidQuery)
	})
}

func TestPostgresCommentStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts with zero votes", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresCommentStore(db, discardLogger())

		mock.ExpectQuery("INSERT INTO comments").
			WithArgs(1, "butter_bridge", "fish & chips").
			WillReturnRows(sqlmock.NewRows(commentColumns).
				AddRow(19, 1, "butter_bridge", "fish & chips", 0, fixedTime))

		c, err := s.Create(ctx, domain.NewComment{ArticleID: 1, Author: "butter_bridge", Body: "fish & chips"})
		require.NoError(t, err)
		assert.Equal(t, 19, c.ID)
		assert.Zero(t, c.Votes)
	})

	t.Run("markup and entities are stored as typed", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresCommentStore(db, discardLogger())

		body := "&lt;script&gt; if a<b and c>d"
		mock.ExpectQuery("INSERT INTO comments").
			WithArgs(1, "butter_bridge", body).
			WillReturnRows(sqlmock.NewRows(commentColumns).
				AddRow(20, 1, "butter_bridge", body, 0, fixedTime))

		c, err := s.Create(ctx, domain.NewComment{ArticleID: 1, Author: "butter_bridge", Body: body})
		require.NoError(t, err)
		assert.Equal(t, body, c.Body)
	})

	t.Run("body the column cannot hold", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresCommentStore(db, discardLogger())

		mock.ExpectQuery("INSERT INTO comments").
			WillReturnError(&pgconn.PgError{Code: invalidByteSequenceCode, Message: "invalid byte sequence for encoding \"UTF8\": 0x00"})

		_, err := s.Create(ctx, domain.NewComment{ArticleID: 1, Author: "butter_bridge", Body: "nul\u0000"})
		assert.ErrorIs(t, err, domain.ErrInvalidBody)
	})

	t.Run("unknown author or article", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresCommentStore(db, discardLogger())

		mock.ExpectQuery("INSERT INTO comments").
			WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "comments_author_fkey"})

		_, err := s.Create(ctx, domain.NewComment{ArticleID: 1, Author: "ghost", Body: "boo"})
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.ErrorIs(t, err, store.ErrMissingReference)
	})

	t.Run("invalid article id before body", func(t *testing.T) {
		db, _ := newMockDB(t)
		s := NewPostgresCommentStore(db, discardLogger())

		_, err := s.Create(ctx, domain.NewComment{ArticleID: -1})
		assert.ErrorIs(t, err, domain.ErrInvalidQuery)
	})

	t.Run("missing body", func(t *testing.T) {
		db, _ := newMockDB(t)
		s := NewPostgresCommentStore(db, discardLogger())

		_, err := s.Create(ctx, domain.NewComment{ArticleID: 1, Author: "lurker"})
		assert.ErrorIs(t, err, domain.ErrInvalidBody)
	})
}

func TestPostgresCommentStore_IncrementVotes(t *testing.T) {
	ctx := context.Background()

	t.Run("relative update", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresCommentStore(db, discardLogger())

		mock.ExpectQuery(regexp.QuoteMeta("SET votes = votes + $2")).
			WithArgs(1, 3).
			WillReturnRows(sqlmock.NewRows(commentColumns).
				AddRow(1, 9, "butter_bridge", "Oh, I've got compassion", 19, fixedTime))

		c, err := s.IncrementVotes(ctx, 1, 3)
		require.NoError(t, err)
		assert.Equal(t, 19, c.Votes)
	})

	t.Run("unknown comment", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresCommentStore(db, discardLogger())

		mock.ExpectQuery("UPDATE comments").
			WithArgs(999, 1).
			WillReturnRows(sqlmock.NewRows(commentColumns))

		_, err := s.IncrementVotes(ctx, 999, 1)
		assert.ErrorIs(t, err, store.ErrCommentNotFound)
	})

	t.Run("zero delta", func(t *testing.T) {
		db, _ := newMockDB(t)
		s := NewPostgresCommentStore(db, discardLogger())

		_, err := s.IncrementVotes(ctx, 1, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidBody)
	})
}

func TestPostgresCommentStore_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresCommentStore(db, discardLogger())

		mock.ExpectExec("DELETE FROM comments WHERE comment_id = \\$1").
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, s.Delete(ctx, 1))
	})

	t.Run("unknown comment", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresCommentStore(db, discardLogger())

		mock.ExpectExec("DELETE FROM comments").
			WithArgs(999).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.Delete(ctx, 999), store.ErrCommentNotFound)
	})

	t.Run("driver error", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresCommentStore(db, discardLogger())

		mock.ExpectExec("DELETE FROM comments").
			WithArgs(1).
			WillReturnError(errors.New("connection reset"))

		err := s.Delete(ctx, 1)
		require.Error(t, err)
		assert.False(t, store.IsNotFoundError(err))
	})

	t.Run("invalid id", func(t *testing.T) {
		db, _ := newMockDB(t)
		s := NewPostgresCommentStore(db, discardLogger())

		assert.ErrorIs(t, s.Delete(ctx, 0), domain.ErrInvalidQuery)
	})
}
