package domain

import (
	"strconv"
)

// ParseID converts a route parameter into a positive integer identifier.
// Non-numeric values, decimals, zero, negatives and values outside the
// 32-bit serial range all fail with ErrInvalidQuery.
func ParseID(field, raw string) (int, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, NewValidationError(field, "must be an integer", ErrInvalidQuery)
	}

	if err := ValidateID(field, int(id)); err != nil {
		return 0, err
	}

	return int(id), nil
}

// ValidateID checks that an already typed identifier is positive.
// Passing validation says nothing about whether the entity exists.
func ValidateID(field string, id int) error {
	if id <= 0 {
		return NewValidationError(field, "must be positive", ErrInvalidQuery)
	}
	return nil
}
