package postgres

import (
	"context"
	"database/sql"

	"cat-collector/internal/domain/feedings"
)

type FeedingsRepo struct {
	db *sql.DB
}

func NewFeedingsRepo(db *sql.DB) *FeedingsRepo {
	return &FeedingsRepo{db: db}
}

func (r *FeedingsRepo) Create(ctx context.Context, f feedings.Feeding) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO feedings (id, cat_id, date, meal, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`, f.ID, f.CatID, f.Date, string(f.Meal), f.CreatedAt)
	return mapErr(err)
}

func (r *FeedingsRepo) ListByCat(ctx context.Context, catID string) ([]feedings.Feeding, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, cat_id, date, meal, created_at
		FROM feedings
		WHERE cat_id = $1
		ORDER BY date DESC, created_at DESC
	`, catID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]feedings.Feeding, 0)
	for rows.Next() {
		var f feedings.Feeding
		var meal string
		if err := rows.Scan(&f.ID, &f.CatID, &f.Date, &meal, &f.CreatedAt); err != nil {
			return nil, err
		}
		// date es DATE; pgx lo devuelve a medianoche UTC
		f.Date = f.Date.UTC()
		f.Meal = feedings.Meal(meal)
		out = append(out, f)
	}
	return out, rows.Err()
}
