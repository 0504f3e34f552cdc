package httpgin

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

type CreateScreeningRequest struct {
	MovieID    int64  `json:"movie_id"`
	MovieTitle string `json:"movie_title" binding:"required"`
	PosterPath string `json:"poster_path"`
	CinemaName string `json:"cinema_name" binding:"required,min=2"`
}

type SubmitCountRequest struct {
	Value *int `json:"value" binding:"required,gte=0"`
}

type SubmitReviewRequest struct {
	Stars   int    `json:"stars" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
