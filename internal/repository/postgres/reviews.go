package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/countapp/countd/internal/domain"
)

type ReviewRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ReviewRepo) With(db DB) *ReviewRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ReviewRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Insert writes a review. Reviews carry their own generated id and are not
// unique per (screening, user): a user may publish several.
func (r *ReviewRepo) Insert(ctx context.Context, rv *domain.Review) error {
	const op = "postgres.ReviewRepo.Insert"

	db := r.handle()

	_, err := db.Exec(ctx,
		`INSERT INTO reviews(id, screening_id, user_id, stars, comment, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rv.ID, rv.ScreeningID, rv.UserID, rv.Stars, rv.Comment, rv.CreatedAt,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

func (r *ReviewRepo) ListByScreening(ctx context.Context, screeningID string) ([]domain.Review, error) {
	const op = "postgres.ReviewRepo.ListByScreening"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, screening_id, user_id, COALESCE(stars, 0), comment, created_at
		 FROM reviews
		 WHERE screening_id = $1
		 ORDER BY created_at DESC`,
		screeningID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.ScreeningID, &rv.UserID, &rv.Stars, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, wrapDBErr(op, err)
		}

		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}
