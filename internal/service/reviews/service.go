package reviews

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
	"github.com/countapp/countd/internal/uow"
)

type Service struct {
	store  *postgresrepo.Store
	cache  *redisrepo.Cache
	pubsub *redisrepo.ScreeningsPubSub
	uow    *uow.UoW
}

func New(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *redisrepo.ScreeningsPubSub,
) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		pubsub: pubsub,
		uow:    uow.NewUoW(store),
	}
}

// Submit stores a star rating with an optional comment. Unlike counts,
// reviews are not unique per user; a user may review a screening again.
//
// Returns:
//   - reviews.ErrInvalidRating when stars is outside 1..5.
//   - reviews.ErrScreeningNotFound when the screening does not exist.
func (s *Service) Submit(ctx context.Context, screeningID, userID string, stars int, comment string) (*domain.Review, error) {
	const op = "service.reviews.Submit"

	if stars < 1 || stars > 5 {
		return nil, fmt.Errorf("%s:%w", op, ErrInvalidRating)
	}

	if _, err := s.store.Screenings().Get(ctx, screeningID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrScreeningNotFound)
		}

		return nil, fmt.Errorf("%s:%w", op, err)
	}

	review := &domain.Review{
		ID:          uuid.New().String(),
		ScreeningID: screeningID,
		UserID:      userID,
		Stars:       stars,
		Comment:     strings.TrimSpace(comment),
		CreatedAt:   time.Now().UTC(),
	}

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.store.Reviews().With(tx).Insert(ctx, review); err != nil {
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

	return review, nil
}

func (s *Service) ListForScreening(ctx context.Context, screeningID string) ([]domain.Review, error) {
	const op = "service.reviews.ListForScreening"

	out, err := s.store.Reviews().ListByScreening(ctx, screeningID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// RatingSummary recomputes the review aggregates for a screening.
func (s *Service) RatingSummary(ctx context.Context, screeningID string) (stats.RatingSummary, error) {
	const op = "service.reviews.RatingSummary"

	reviews, err := s.store.Reviews().ListByScreening(ctx, screeningID)
	if err != nil {
		return stats.RatingSummary{}, fmt.Errorf("%s:%w", op, err)
	}

	ratings := make([]int, len(reviews))
	for i, r := range reviews {
		ratings[i] = r.Stars
	}

	return stats.SummarizeRatings(ratings), nil
}
