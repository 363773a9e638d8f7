package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store,
	// or when a listing filter matches nothing.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrTopicNotFound indicates that no article matched the requested topic filter.
	ErrTopicNotFound = fmt.Errorf("%w: topic", ErrNotFound)

	// ErrArticleNotFound indicates that the requested article does not exist.
	ErrArticleNotFound = fmt.Errorf("%w: article", ErrNotFound)

	// ErrCommentNotFound indicates that the requested comment does not exist.
	ErrCommentNotFound = fmt.Errorf("%w: comment", ErrNotFound)

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrMissingReference indicates that a write named a topic, article or
	// user that does not exist.
	ErrMissingReference = fmt.Errorf("%w: referenced entity", ErrNotFound)

	// Query-shape errors. An unsupported sort column or direction is reported
	// as "not found" rather than as a bad request.

	// ErrUnsupportedSort indicates a sort_by value outside the whitelist.
	ErrUnsupportedSort = fmt.Errorf("%w: sort column", ErrNotFound)

	// ErrUnsupportedOrder indicates an order value outside the whitelist.
	ErrUnsupportedOrder = fmt.Errorf("%w: sort order", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
