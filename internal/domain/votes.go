package domain

// ValidateVoteIncrement checks a relative vote change taken from a request body.
// A missing increment and an increment of zero are both rejected with
// ErrInvalidBody; zero is refused because it would be a no-op update.
func ValidateVoteIncrement(inc *int) (int, error) {
	if inc == nil {
		return 0, NewValidationError("incVotes", "is required", ErrInvalidBody)
	}
	if *inc == 0 {
		return 0, NewValidationError("incVotes", "must be non-zero", ErrInvalidBody)
	}
	return *inc, nil
}
