package counts

import "errors"

var (
	// ErrNegativeValue is returned when the submitted people count is below zero.
	ErrNegativeValue = errors.New("count value must be zero or greater")
	// ErrAlreadyCounted is returned when the user already submitted a count
	// for this screening.
	ErrAlreadyCounted = errors.New("count already submitted for this screening")
	// ErrScreeningNotFound is returned when the target screening does not exist.
	ErrScreeningNotFound = errors.New("screening not found")
	// ErrTooManyRequests is returned when the submit rate limit is exceeded.
	ErrTooManyRequests = errors.New("too many requests")
)
