package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/countapp/countd/internal/domain"
	postgresrepo "github.com/countapp/countd/internal/repository/postgres"
	"github.com/countapp/countd/internal/stats"
)

type Service struct {
	store *postgresrepo.Store
}

func New(store *postgresrepo.Store) *Service {
	return &Service{store: store}
}

// Dashboard summarizes a user's counting history: lifetime total, counts
// submitted in the current calendar month, and the most recent entries.
type Dashboard struct {
	Total     int                  `json:"total"`
	ThisMonth int                  `json:"this_month"`
	Recent    []stats.ActivityItem `json:"recent"`
}

const recentLimit = 3

// UserActivity returns the user's counts joined with their screenings,
// newest first. Counts whose screening no longer resolves are dropped
// rather than rendered half-empty.
func (s *Service) UserActivity(ctx context.Context, userID string) ([]stats.ActivityItem, error) {
	const op = "service.activity.UserActivity"

	counts, err := s.store.Counts().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	if len(counts) == 0 {
		return []stats.ActivityItem{}, nil
	}

	ids := make([]string, 0, len(counts))
	seen := make(map[string]struct{}, len(counts))
	for _, c := range counts {
		if _, ok := seen[c.ScreeningID]; ok {
			continue
		}
		seen[c.ScreeningID] = struct{}{}
		ids = append(ids, c.ScreeningID)
	}

	screenings, err := s.store.Screenings().GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	items := stats.Attach(counts, func(id string) (domain.Screening, bool) {
		sc, ok := screenings[id]
		return sc, ok
	})

	return items, nil
}

// UserDashboard builds the home view numbers from the activity feed.
func (s *Service) UserDashboard(ctx context.Context, userID string) (*Dashboard, error) {
	items, err := s.UserActivity(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	d := &Dashboard{Total: len(items), Recent: []stats.ActivityItem{}}
	for _, it := range items {
		ts := it.Count.CreatedAt
		if ts.Year() == now.Year() && ts.Month() == now.Month() {
			d.ThisMonth++
		}
	}

	if len(items) > recentLimit {
		d.Recent = items[:recentLimit]
	} else {
		d.Recent = items
	}

	return d, nil
}
