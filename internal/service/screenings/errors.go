package screenings

import "errors"

var (
	ErrScreeningNotFound = errors.New("screening not found")
	ErrTitleRequired     = errors.New("movie title is required")
	ErrCinemaTooShort    = errors.New("cinema name is too short")
)
