package counts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/countapp/countd/internal/domain"
	"github.com/countapp/countd/internal/repository"
	postgresrepo "github.com/countapp/countd/internal/repository/postgres"
	redisrepo "github.com/countapp/countd/internal/repository/redis"
	"github.com/countapp/countd/internal/stats"
	"github.com/countapp/countd/internal/uow"
)

type Service struct {
	store   *postgresrepo.Store
	cache   *redisrepo.Cache
	pubsub  *redisrepo.ScreeningsPubSub
	limiter *redisrepo.SlidingWindowLimiter
	uow     *uow.UoW
}

func New(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *redisrepo.ScreeningsPubSub,
	limiter *redisrepo.SlidingWindowLimiter,
) *Service {
	return &Service{
		store:   store,
		cache:   cache,
		pubsub:  pubsub,
		limiter: limiter,
		uow:     uow.NewUoW(store),
	}
}

// Submit records a user's people count for a screening. A user gets exactly
// one count per screening: the count id is the screening/user pair, so a
// duplicate submit loses the insert race at the database and comes back as
// ErrAlreadyCounted no matter how many submits run concurrently.
//
// Returns:
//   - counts.ErrNegativeValue when value is below zero.
//   - counts.ErrScreeningNotFound when the screening does not exist.
//   - counts.ErrAlreadyCounted when the user already counted this screening.
//   - counts.ErrTooManyRequests when the rate limit is exceeded.
func (s *Service) Submit(ctx context.Context, screeningID, userID string, value int, rlKey string) (*domain.Count, error) {
	const op = "service.counts.Submit"

	if value < 0 {
		return nil, fmt.Errorf("%s:%w", op, ErrNegativeValue)
	}

	if s.limiter != nil && rlKey != "" {
		allowed, _, _, err := s.limiter.Allow(ctx, "counts:"+rlKey)
		if err == nil && !allowed {
			return nil, fmt.Errorf("%s:%w", op, ErrTooManyRequests)
		}
	}

	if _, err := s.store.Screenings().Get(ctx, screeningID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrScreeningNotFound)
		}

		return nil, fmt.Errorf("%s:%w", op, err)
	}

	count := &domain.Count{
		ID:          domain.CountID(screeningID, userID),
		ScreeningID: screeningID,
		UserID:      userID,
		Value:       value,
		CreatedAt:   time.Now().UTC(),
	}

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Counts().With(tx).Insert(ctx, count); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return fmt.Errorf("%s:%w", op, ErrAlreadyCounted)
			}

			return fmt.Errorf("%s:%w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateScreening(ctx, screeningID)
			_ = s.pubsub.PublishScreeningChanged(ctx, screeningID)
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return count, nil
}

func (s *Service) ListForScreening(ctx context.Context, screeningID string) ([]domain.Count, error) {
	const op = "service.counts.ListForScreening"

	out, err := s.store.Counts().ListByScreening(ctx, screeningID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// Summary recomputes the attendance aggregates from the current counts.
func (s *Service) Summary(ctx context.Context, screeningID string) (stats.Summary, error) {
	const op = "service.counts.Summary"

	values, err := s.store.Counts().ValuesByScreening(ctx, screeningID)
	if err != nil {
		return stats.Summary{}, fmt.Errorf("%s:%w", op, err)
	}

	return stats.Summarize(values), nil
}

// Series builds the per-user chart series for a screening.
func (s *Service) Series(ctx context.Context, screeningID string) (stats.Series, error) {
	const op = "service.counts.Series"

	counts, err := s.store.Counts().ListByScreening(ctx, screeningID)
	if err != nil {
		return stats.Series{}, fmt.Errorf("%s:%w", op, err)
	}

	return stats.ToSeries(counts), nil
}
