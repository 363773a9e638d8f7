//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/phrazzld/nc-news-api/internal/seed"
	"github.com/stretchr/testify/require"
)

// WithTx runs fn inside a transaction that is always rolled back afterwards.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// Expecting runs fn under a savepoint that is rolled back afterwards, so a
// statement that fails on purpose does not abort the enclosing transaction.
func Expecting(t *testing.T, tx *sql.Tx, fn func()) {
	t.Helper()

	ctx := context.Background()
	_, err := tx.ExecContext(ctx, "SAVEPOINT expecting")
	require.NoError(t, err, "Failed to create savepoint")

	fn()

	_, err = tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT expecting")
	require.NoError(t, err, "Failed to roll back to savepoint")
}

// Seed replaces the table contents visible to tx with the bundled dataset.
func Seed(t *testing.T, tx *sql.Tx) *seed.Dataset {
	t.Helper()

	ds, err := seed.Default()
	require.NoError(t, err)
	require.NoError(t, seed.Insert(context.Background(), tx, ds))
	return ds
}
