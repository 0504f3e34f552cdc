package reviews

import "errors"

var (
	// ErrInvalidRating is returned when the star rating is outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrScreeningNotFound is returned when the target screening does not exist.
	ErrScreeningNotFound = errors.New("screening not found")
)
