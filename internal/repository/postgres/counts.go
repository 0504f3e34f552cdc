package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/countapp/countd/internal/domain"
)

type CountRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *CountRepo) With(db DB) *CountRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *CountRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Insert writes a count record keyed by its composite id. The primary key
// makes the write atomic insert-if-absent: a second count for the same
// (screening, user) pair fails with repository.ErrConflict, including a
// race between two devices.
func (r *CountRepo) Insert(ctx context.Context, c *domain.Count) error {
	const op = "postgres.CountRepo.Insert"

	db := r.handle()

	_, err := db.Exec(ctx,
		`INSERT INTO counts(id, screening_id, user_id, value, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.ScreeningID, c.UserID, c.Value, c.CreatedAt,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

func (r *CountRepo) ListByScreening(ctx context.Context, screeningID string) ([]domain.Count, error) {
	const op = "postgres.CountRepo.ListByScreening"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, screening_id, user_id, value, created_at
		 FROM counts
		 WHERE screening_id = $1
		 ORDER BY created_at DESC`,
		screeningID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	return scanCounts(op, rows)
}

func (r *CountRepo) ListByUser(ctx context.Context, userID string) ([]domain.Count, error) {
	const op = "postgres.CountRepo.ListByUser"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, screening_id, user_id, value, created_at
		 FROM counts
		 WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	return scanCounts(op, rows)
}

// ValuesByScreening returns just the count values, NULLs collapsed to 0 so
// malformed records never break the aggregation.
func (r *CountRepo) ValuesByScreening(ctx context.Context, screeningID string) ([]float64, error) {
	const op = "postgres.CountRepo.ValuesByScreening"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT COALESCE(value, 0)
		 FROM counts
		 WHERE screening_id = $1`,
		screeningID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func scanCounts(op string, rows pgx.Rows) ([]domain.Count, error) {
	var out []domain.Count
	for rows.Next() {
		var c domain.Count
		if err := rows.Scan(&c.ID, &c.ScreeningID, &c.UserID, &c.Value, &c.CreatedAt); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}
