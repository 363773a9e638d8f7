package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/nc-news-api/internal/domain"
	"github.com/phrazzld/nc-news-api/internal/store"
)

// SQLSTATE codes raised by the schema's constraints.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	notNullViolationCode    = "23502"

	// votes would overflow the INTEGER column
	numericOutOfRangeCode = "22003"
	// text wider than its VARCHAR column
	stringTooLongCode = "22001"
	// bytes PostgreSQL cannot store as UTF8 text, such as NUL
	invalidByteSequenceCode = "22021"
)

// pgErrorMapping says which sentinel a SQLSTATE code becomes and how to describe it.
type pgErrorMapping struct {
	sentinel error
	describe func(*pgconn.PgError) string
}

// pgErrorMappings covers every code MapError translates. A foreign key
// violation means a referenced topic, article or user does not exist.
// Data the columns cannot hold is the client's fault.
var pgErrorMappings = map[string]pgErrorMapping{
	uniqueViolationCode: {
		sentinel: store.ErrDuplicate,
		describe: func(e *pgconn.PgError) string { return "unique violation (" + e.ConstraintName + ")" },
	},
	foreignKeyViolationCode: {
		sentinel: store.ErrMissingReference,
		describe: func(e *pgconn.PgError) string { return "missing reference (" + e.ConstraintName + ")" },
	},
	checkViolationCode: {
		sentinel: domain.ErrInvalidBody,
		describe: func(e *pgconn.PgError) string { return "check constraint (" + e.ConstraintName + ")" },
	},
	notNullViolationCode: {
		sentinel: domain.ErrInvalidBody,
		describe: func(e *pgconn.PgError) string { return "null value in " + e.ColumnName },
	},
	numericOutOfRangeCode: {
		sentinel: domain.ErrInvalidBody,
		describe: func(*pgconn.PgError) string { return "value out of range" },
	},
	stringTooLongCode: {
		sentinel: domain.ErrInvalidBody,
		describe: func(*pgconn.PgError) string { return "value too long" },
	},
	invalidByteSequenceCode: {
		sentinel: domain.ErrInvalidBody,
		describe: func(*pgconn.PgError) string { return "invalid byte sequence" },
	},
}

// MapError translates driver errors into the store and domain sentinels.
// The original error stays in the message for logging. Errors with no
// mapping are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	m, ok := pgErrorMappings[pgErr.Code]
	if !ok {
		return err
	}
	return fmt.Errorf("%w: %s: %v", m.sentinel, m.describe(pgErr), err)
}

// IsForeignKeyViolation reports whether err is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// CheckRowsAffected returns notFound when result touched no rows.
// A nil notFound falls back to store.ErrNotFound.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return errors.New("nil result provided to CheckRowsAffected")
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n > 0 {
		return nil
	}

	if notFound == nil {
		return store.ErrNotFound
	}
	return notFound
}
