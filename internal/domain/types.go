package domain

import (
	"fmt"
	"time"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Screening struct {
	ID         string    `json:"id"`
	MovieID    int64     `json:"movie_id,omitempty"`
	MovieTitle string    `json:"movie_title"`
	PosterPath string    `json:"poster_path,omitempty"`
	CinemaName string    `json:"cinema_name"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// Count is one user's reported headcount for a screening. Its ID is the
// composite "{screeningID}_{userID}", which makes the one-count-per-user
// invariant a primary-key property rather than an application-level check.
type Count struct {
	ID          string    `json:"id"`
	ScreeningID string    `json:"screening_id"`
	UserID      string    `json:"user_id"`
	Value       int       `json:"value"`
	CreatedAt   time.Time `json:"created_at"`
}

type Review struct {
	ID          string    `json:"id"`
	ScreeningID string    `json:"screening_id"`
	UserID      string    `json:"user_id"`
	Stars       int       `json:"stars"`
	Comment     string    `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CountID builds the composite document key for a count record.
func CountID(screeningID, userID string) string {
	return fmt.Sprintf("%s_%s", screeningID, userID)
}
