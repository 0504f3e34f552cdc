package screenings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/countapp/countd/internal/domain"
	"github.com/countapp/countd/internal/repository"
	postgresrepo "github.com/countapp/countd/internal/repository/postgres"
	redisrepo "github.com/countapp/countd/internal/repository/redis"
	"github.com/countapp/countd/internal/stats"
	"github.com/countapp/countd/internal/tmdb"
	"github.com/countapp/countd/internal/uow"
)

type Config struct {
	SummaryTTL      time.Duration
	DefaultPageSize int
	MaxPageSize     int
}

type Service struct {
	store  *postgresrepo.Store
	cache  *redisrepo.Cache
	pubsub *redisrepo.ScreeningsPubSub
	tmdb   *tmdb.Client
	uow    *uow.UoW
	cfg    Config
}

func New(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *redisrepo.ScreeningsPubSub,
	tmdbClient *tmdb.Client,
	cfg Config,
) *Service {
	if cfg.SummaryTTL <= 0 {
		cfg.SummaryTTL = 15 * time.Second
	}

	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 50
	}

	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 200
	}

	return &Service{
		store:  store,
		cache:  cache,
		pubsub: pubsub,
		tmdb:   tmdbClient,
		uow:    uow.NewUoW(store),
		cfg:    cfg,
	}
}

type CreateInput struct {
	MovieID    int64
	MovieTitle string
	PosterPath string
	CinemaName string
}

// Detail is the full screening snapshot rendered by the detail view: the
// screening itself, a best-effort synopsis, and the aggregates recomputed
// from the current counts and reviews.
type Detail struct {
	Screening domain.Screening    `json:"screening"`
	Overview  string              `json:"overview,omitempty"`
	Counts    []domain.Count      `json:"counts"`
	Summary   stats.Summary       `json:"summary"`
	Chart     stats.Series        `json:"chart"`
	Reviews   []domain.Review     `json:"reviews"`
	Ratings   stats.RatingSummary `json:"ratings"`
}

// Create validates and stores a screening. When no poster was supplied but
// a movie id is known, the poster is filled from TMDB on a best-effort
// basis; a metadata failure never fails the create.
//
// Returns:
//   - screenings.ErrTitleRequired when the movie title is blank.
//   - screenings.ErrCinemaTooShort when the cinema name has fewer than 2 characters.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (*domain.Screening, error) {
	const op = "service.screenings.Create"

	in.MovieTitle = strings.TrimSpace(in.MovieTitle)
	in.CinemaName = strings.TrimSpace(in.CinemaName)

	if in.MovieTitle == "" {
		return nil, fmt.Errorf("%s:%w", op, ErrTitleRequired)
	}

	if len(in.CinemaName) < 2 {
		return nil, fmt.Errorf("%s:%w", op, ErrCinemaTooShort)
	}

	if in.PosterPath == "" && in.MovieID != 0 && s.tmdb != nil {
		if d, ok := s.tmdb.MovieDetails(ctx, in.MovieID); ok {
			in.PosterPath = d.PosterPath
		}
	}

	screening := &domain.Screening{
		ID:         uuid.New().String(),
		MovieID:    in.MovieID,
		MovieTitle: in.MovieTitle,
		PosterPath: in.PosterPath,
		CinemaName: in.CinemaName,
		CreatedBy:  userID,
		CreatedAt:  time.Now().UTC(),
	}

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Screenings().With(tx).Create(ctx, screening); err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.pubsub.PublishScreeningChanged(ctx, screening.ID)
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return screening, nil
}

// Get retrieves a screening through a short-lived cache.
//
// Returns:
//   - screenings.ErrScreeningNotFound when the screening does not exist.
func (s *Service) Get(ctx context.Context, id string) (*domain.Screening, error) {
	const op = "service.screenings.Get"

	key := redisrepo.KeyScreeningSummary(id)

	screening, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		key,
		s.cfg.SummaryTTL,
		func(ctx context.Context) (domain.Screening, error) {
			sc, err := s.store.Screenings().Get(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return domain.Screening{}, ErrScreeningNotFound
				}

				return domain.Screening{}, err
			}

			return *sc, nil
		},
	)
	if err != nil {
		if errors.Is(err, ErrScreeningNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrScreeningNotFound)
		}

		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return &screening, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Screening, error) {
	const op = "service.screenings.List"

	if limit <= 0 {
		limit = s.cfg.DefaultPageSize
	}

	if limit > s.cfg.MaxPageSize {
		limit = s.cfg.MaxPageSize
	}

	out, err := s.store.Screenings().List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// GetDetail assembles the full detail snapshot. Counts and reviews are
// fetched independently; the result may therefore pair a fresh counts
// snapshot with a slightly stale reviews one, which the next change
// notification heals. The synopsis lookup is best-effort and its failure
// is invisible to the caller.
func (s *Service) GetDetail(ctx context.Context, id string) (*Detail, error) {
	const op = "service.screenings.GetDetail"

	screening, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	counts, err := s.store.Counts().ListByScreening(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	reviews, err := s.store.Reviews().ListByScreening(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	values := make([]float64, len(counts))
	for i, c := range counts {
		values[i] = float64(c.Value)
	}

	ratings := make([]int, len(reviews))
	for i, r := range reviews {
		ratings[i] = r.Stars
	}

	detail := &Detail{
		Screening: *screening,
		Counts:    counts,
		Summary:   stats.Summarize(values),
		Chart:     stats.ToSeries(counts),
		Reviews:   reviews,
		Ratings:   stats.SummarizeRatings(ratings),
	}

	if s.tmdb != nil && screening.MovieID != 0 {
		if d, ok := s.tmdb.MovieDetails(ctx, screening.MovieID); ok {
			detail.Overview = d.Overview
		}
	}

	return detail, nil
}

// SearchMovies proxies the TMDB title search. Best-effort: failures come
// back as an empty list.
func (s *Service) SearchMovies(ctx context.Context, query string) []tmdb.Movie {
	if s.tmdb == nil {
		return nil
	}

	return s.tmdb.SearchMovies(ctx, query)
}
