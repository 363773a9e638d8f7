//go:build integration

// Package testdb provides utilities for PostgreSQL integration tests.
//
// Each test runs in its own transaction, which is rolled back when the test
// completes, so tests never see each other's writes and no cleanup is needed.
//
//	func TestListTopics(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        testdb.Seed(t, tx)
//	        topics, err := postgres.NewPostgresTopicStore(tx, nil).List(context.Background())
//	        require.NoError(t, err)
//	        assert.Len(t, topics, 3)
//	    })
//	}
//
// Tests are skipped unless DATABASE_URL points at a PostgreSQL database. The
// embedded migrations are applied once per test binary.
package testdb
