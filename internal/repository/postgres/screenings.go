package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/countapp/countd/internal/domain"
)

type ScreeningRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ScreeningRepo) With(db DB) *ScreeningRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ScreeningRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *ScreeningRepo) Create(ctx context.Context, s *domain.Screening) error {
	const op = "postgres.ScreeningRepo.Create"

	db := r.handle()

	_, err := db.Exec(ctx,
		`INSERT INTO screenings(id, movie_id, movie_title, poster_path, cinema_name, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.MovieID, s.MovieTitle, s.PosterPath, s.CinemaName, s.CreatedBy, s.CreatedAt,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// Get retrieves a screening by id. Returns repository.ErrNotFound when it
// does not exist.
func (r *ScreeningRepo) Get(ctx context.Context, id string) (*domain.Screening, error) {
	const op = "postgres.ScreeningRepo.Get"

	db := r.handle()

	var s domain.Screening
	err := db.QueryRow(ctx,
		`SELECT id, movie_id, movie_title, poster_path, cinema_name, created_by, created_at
		 FROM screenings WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.MovieID, &s.MovieTitle, &s.PosterPath, &s.CinemaName, &s.CreatedBy, &s.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &s, nil
}

func (r *ScreeningRepo) List(ctx context.Context, limit, offset int) ([]domain.Screening, error) {
	const op = "postgres.ScreeningRepo.List"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, movie_id, movie_title, poster_path, cinema_name, created_by, created_at
		 FROM screenings
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Screening
	for rows.Next() {
		var s domain.Screening
		if err := rows.Scan(
			&s.ID, &s.MovieID, &s.MovieTitle, &s.PosterPath,
			&s.CinemaName, &s.CreatedBy, &s.CreatedAt,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

// GetByIDs fetches the screenings for the given ids in one round trip. IDs
// that do not resolve are simply missing from the result, which the
// activity join treats as dropped rows.
func (r *ScreeningRepo) GetByIDs(ctx context.Context, ids []string) (map[string]domain.Screening, error) {
	const op = "postgres.ScreeningRepo.GetByIDs"

	out := make(map[string]domain.Screening, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, movie_id, movie_title, poster_path, cinema_name, created_by, created_at
		 FROM screenings
		 WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	for rows.Next() {
		var s domain.Screening
		if err := rows.Scan(
			&s.ID, &s.MovieID, &s.MovieTitle, &s.PosterPath,
			&s.CinemaName, &s.CreatedBy, &s.CreatedAt,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out[s.ID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}
