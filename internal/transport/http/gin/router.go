package httpgin

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/countapp/countd/internal/feed"
	redisrepo "github.com/countapp/countd/internal/repository/redis"
	"github.com/countapp/countd/internal/service"
	"github.com/countapp/countd/internal/service/auth"
	"github.com/countapp/countd/internal/service/counts"
	"github.com/countapp/countd/internal/service/reviews"
	"github.com/countapp/countd/internal/service/screenings"
	"github.com/countapp/countd/internal/tmdb"
	"github.com/countapp/countd/internal/token"
)

const liveHeartbeat = 25 * time.Second

func NewRouter(
	svcs *service.Services,
	hub *feed.Hub,
	idem *redisrepo.IdempotencyStore,
	tokens *token.Manager,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public API
	r.POST("/auth/register", handleRegister(svcs))
	r.POST("/auth/login", handleLogin(svcs))

	r.GET("/screenings", handleListScreenings(svcs))
	r.GET("/screenings/:id", handleGetScreening(svcs))
	r.GET("/screenings/:id/detail", handleGetDetail(svcs))
	r.GET("/screenings/:id/chart", handleGetChart(svcs))
	r.GET("/screenings/:id/counts", handleListCounts(svcs))
	r.GET("/screenings/:id/reviews", handleListReviews(svcs))
	r.GET("/screenings/:id/live", handleLive(svcs, hub))

	r.GET("/movies/search", handleSearchMovies(svcs))

	// Authenticated API
	authed := r.Group("/", AuthRequired(tokens))
	{
		authed.POST("/screenings", handleCreateScreening(svcs, idem))
		authed.POST("/screenings/:id/counts", handleSubmitCount(svcs))
		authed.POST("/screenings/:id/reviews", handleSubmitReview(svcs))
		authed.GET("/me/activity", handleUserActivity(svcs))
		authed.GET("/me/dashboard", handleUserDashboard(svcs))
	}

	return r
}

// --- Handlers with Swagger annotations ---

// @Summary  Register account
// @Param    req body  RegisterRequest true "payload"
// @Success  201 {object} AuthResponse
// @Failure  409 {object} ErrorResponse "email in use"
// @Router   /auth/register [post]
func handleRegister(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		user, signed, err := svcs.Auth.Register(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusCreated, AuthResponse{
			UserID: user.ID,
			Email:  user.Email,
			Token:  signed,
		})
	}
}

// @Summary  Log in
// @Param    req body  LoginRequest true "payload"
// @Success  200 {object} AuthResponse
// @Failure  401 {object} ErrorResponse "invalid credentials"
// @Failure  429 {object} ErrorResponse "rate limited"
// @Router   /auth/login [post]
func handleLogin(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		rlKey := "ip:" + c.ClientIP()

		user, signed, err := svcs.Auth.Login(c.Request.Context(), req.Email, req.Password, rlKey)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, AuthResponse{
			UserID: user.ID,
			Email:  user.Email,
			Token:  signed,
		})
	}
}

// @Summary  List screenings
// @Param    limit  query  int  false "page size"
// @Param    offset query  int  false "offset"
// @Success  200 {array} domain.Screening
// @Router   /screenings [get]
func handleListScreenings(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := parseIntDefault(c.Query("limit"), 0)
		offset := parseIntDefault(c.Query("offset"), 0)

		out, err := svcs.Screenings.List(c.Request.Context(), limit, offset)
		if err != nil {
			respondErr(c, err)
			return
		}
		// ETag + Cache-Control 15s
		writeJSONWithCache(c, http.StatusOK, out, "public, max-age=15", true)
	}
}

// @Summary  Get screening
// @Param    id  path  string  true  "Screening ID"
// @Success  200 {object} domain.Screening
// @Failure  404 {object} ErrorResponse
// @Router   /screenings/{id} [get]
func handleGetScreening(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := svcs.Screenings.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondErr(c, err)
			return
		}
		// ETag + Cache-Control 60s
		writeJSONWithCache(c, http.StatusOK, s, "public, max-age=60", true)
	}
}

// @Summary  Get screening detail with aggregates
// @Param    id  path  string  true  "Screening ID"
// @Success  200 {object} screenings.Detail
// @Failure  404 {object} ErrorResponse
// @Router   /screenings/{id}/detail [get]
func handleGetDetail(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := svcs.Screenings.GetDetail(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondErr(c, err)
			return
		}

		writeJSONWithCache(c, http.StatusOK, d, "public, max-age=5", true)
	}
}

// @Summary  Get per-user chart series
// @Param    id  path  string  true  "Screening ID"
// @Success  200 {object} stats.Series
// @Router   /screenings/{id}/chart [get]
func handleGetChart(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		series, err := svcs.Counts.Series(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondErr(c, err)
			return
		}

		writeJSONWithCache(c, http.StatusOK, series, "public, max-age=5", true)
	}
}

// @Summary  List counts for a screening
// @Param    id  path  string  true  "Screening ID"
// @Success  200 {array} domain.Count
// @Router   /screenings/{id}/counts [get]
func handleListCounts(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svcs.Counts.ListForScreening(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondErr(c, err)
			return
		}

		writeJSONWithCache(c, http.StatusOK, out, "public, max-age=5", true)
	}
}

// @Summary  List reviews for a screening
// @Param    id  path  string  true  "Screening ID"
// @Success  200 {array} domain.Review
// @Router   /screenings/{id}/reviews [get]
func handleListReviews(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svcs.Reviews.ListForScreening(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondErr(c, err)
			return
		}

		writeJSONWithCache(c, http.StatusOK, out, "public, max-age=5", true)
	}
}

// @Summary  Live screening updates (SSE)
// @Param    id  path  string  true  "Screening ID"
// @Produce  text/event-stream
// @Router   /screenings/{id}/live [get]
func handleLive(svcs *service.Services, hub *feed.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		screeningID := c.Param("id")

		// Reject unknown screenings before upgrading to a stream.
		detail, err := svcs.Screenings.GetDetail(c.Request.Context(), screeningID)
		if err != nil {
			respondErr(c, err)
			return
		}

		sub := hub.Register(screeningID)
		defer hub.Unsubscribe(sub)

		c.Header("Cache-Control", "no-cache")
		c.Header("X-Accel-Buffering", "no")

		// Initial snapshot so the client renders without waiting for a change.
		c.SSEvent("snapshot", detail)
		c.Writer.Flush()

		heartbeat := time.NewTicker(liveHeartbeat)
		defer heartbeat.Stop()

		ctx := c.Request.Context()

		c.Stream(func(w io.Writer) bool {
			select {
			case <-ctx.Done():
				return false
			case <-heartbeat.C:
				c.SSEvent("ping", time.Now().UTC().Unix())
				return true
			case <-sub.C:
				d, err := svcs.Screenings.GetDetail(ctx, screeningID)
				if err != nil {
					return false
				}
				c.SSEvent("snapshot", d)
				return true
			}
		})
	}
}

// @Summary  Search movies by title
// @Param    query  query  string  true  "title query"
// @Success  200 {array} tmdb.Movie
// @Router   /movies/search [get]
func handleSearchMovies(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("query")
		if query == "" {
			query = c.Query("q")
		}

		movies := svcs.Screenings.SearchMovies(c.Request.Context(), query)
		if movies == nil {
			movies = []tmdb.Movie{}
		}

		writeJSONWithCache(c, http.StatusOK, movies, "public, max-age=60", true)
	}
}

// @Summary  Create screening (idempotent)
// @Param    req body  CreateScreeningRequest true "payload"
// @Header   201 {string} Idempotency-Key "echo"
// @Success  201 {object} domain.Screening
// @Failure  400 {object} ErrorResponse
// @Router   /screenings [post]
func handleCreateScreening(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateScreeningRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
		var idemStorageKey string
		if idem != nil && idemKey != "" {
			idemStorageKey = redisrepo.KeyIdemScreening(idemKey)

			if payload, ok, _ := idem.GetResult(c.Request.Context(), idemStorageKey); ok {
				c.Header("Idempotency-Key", idemKey)
				c.Data(http.StatusCreated, "application/json; charset=utf-8", []byte(payload))
				return
			}

			locked, err := idem.AcquireLock(c.Request.Context(), idemStorageKey, 60*time.Second)
			if err != nil {
				respondErr(c, err)
				return
			}
			if !locked {
				if payload, ok, _ := idem.GetResult(c.Request.Context(), idemStorageKey); ok {
					c.Header("Idempotency-Key", idemKey)
					c.Data(http.StatusCreated, "application/json; charset=utf-8", []byte(payload))
					return
				}
				c.Header("Retry-After", "1")
				c.JSON(http.StatusConflict, ErrorResponse{Error: "idempotency key in progress"})
				return
			}
		}

		s, err := svcs.Screenings.Create(c.Request.Context(), currentUserID(c), screenings.CreateInput{
			MovieID:    req.MovieID,
			MovieTitle: req.MovieTitle,
			PosterPath: req.PosterPath,
			CinemaName: req.CinemaName,
		})
		if err != nil {
			if idemStorageKey != "" && idem != nil {
				_ = idem.Release(c.Request.Context(), idemStorageKey)
			}
			respondErr(c, err)
			return
		}

		if idemStorageKey != "" && idem != nil {
			b, _ := json.Marshal(s)
			_ = idem.SaveResult(c.Request.Context(), idemStorageKey, string(b))
			c.Header("Idempotency-Key", idemKey)
		}

		c.JSON(http.StatusCreated, s)
	}
}

// @Summary  Submit a people count
// @Param    id   path  string             true "Screening ID"
// @Param    req  body  SubmitCountRequest true "payload"
// @Success  201 {object} domain.Count
// @Failure  409 {object} ErrorResponse "already counted"
// @Failure  429 {object} ErrorResponse "rate limited"
// @Router   /screenings/{id}/counts [post]
func handleSubmitCount(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubmitCountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		rlKey := "ip:" + c.ClientIP()

		count, err := svcs.Counts.Submit(
			c.Request.Context(),
			c.Param("id"),
			currentUserID(c),
			*req.Value,
			rlKey,
		)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusCreated, count)
	}
}

// @Summary  Submit a review
// @Param    id   path  string              true "Screening ID"
// @Param    req  body  SubmitReviewRequest true "payload"
// @Success  201 {object} domain.Review
// @Failure  400 {object} ErrorResponse
// @Router   /screenings/{id}/reviews [post]
func handleSubmitReview(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubmitReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		review, err := svcs.Reviews.Submit(
			c.Request.Context(),
			c.Param("id"),
			currentUserID(c),
			req.Stars,
			req.Comment,
		)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusCreated, review)
	}
}

// @Summary  Current user's counting activity
// @Success  200 {array} stats.ActivityItem
// @Router   /me/activity [get]
func handleUserActivity(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svcs.Activity.UserActivity(c.Request.Context(), currentUserID(c))
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, items)
	}
}

// @Summary  Current user's dashboard numbers
// @Success  200 {object} activity.Dashboard
// @Router   /me/dashboard [get]
func handleUserDashboard(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := svcs.Activity.UserDashboard(c.Request.Context(), currentUserID(c))
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, d)
	}
}

// --- Helpers ---

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	switch {
	// auth service
	case errors.Is(err, auth.ErrMissingFields):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email and password are required"})
		return
	case errors.Is(err, auth.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "password too weak"})
		return
	case errors.Is(err, auth.ErrEmailInUse):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "email already in use"})
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		return
	case errors.Is(err, auth.ErrTooManyAttempts):
		c.Header("Retry-After", "60")
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "too many attempts"})
		return
	// screenings service
	case errors.Is(err, screenings.ErrScreeningNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "screening not found"})
		return
	case errors.Is(err, screenings.ErrTitleRequired):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "movie title is required"})
		return
	case errors.Is(err, screenings.ErrCinemaTooShort):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cinema name is too short"})
		return
	// counts service
	case errors.Is(err, counts.ErrNegativeValue):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "count value must be zero or greater"})
		return
	case errors.Is(err, counts.ErrScreeningNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "screening not found"})
		return
	case errors.Is(err, counts.ErrAlreadyCounted):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "count already submitted"})
		return
	case errors.Is(err, counts.ErrTooManyRequests):
		c.Header("Retry-After", "60")
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "too many requests"})
		return
	// reviews service
	case errors.Is(err, reviews.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "rating must be between 1 and 5"})
		return
	case errors.Is(err, reviews.ErrScreeningNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "screening not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
