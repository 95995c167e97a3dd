package postgres

import (
	"context"
	"database/sql"
	"strings"

	"cat-collector/internal/domain/cats"
	"cat-collector/internal/domain/domainerr"
)

type CatsRepo struct {
	db *sql.DB
}

func NewCatsRepo(db *sql.DB) *CatsRepo {
	return &CatsRepo{db: db}
}

func (r *CatsRepo) Create(ctx context.Context, c cats.Cat) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cats (
			id, owner_user_id,
			name, breed, description, age,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		c.ID,
		c.OwnerUserID,
		c.Name,
		c.Breed,
		c.Description,
		c.Age,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return mapErr(err)
}

// Update no toca owner_user_id ni name: ninguno se edita después de crear.
func (r *CatsRepo) Update(ctx context.Context, c cats.Cat) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cats
		SET
			breed = $2,
			description = $3,
			age = $4,
			updated_at = $5
		WHERE id = $1
	`,
		c.ID,
		c.Breed,
		c.Description,
		c.Age,
		c.UpdatedAt,
	)
	if err != nil {
		return mapErr(err)
	}
	return rowsAffected(res)
}

// Delete: feedings, photos y cat_toys caen por ON DELETE CASCADE.
func (r *CatsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cats WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	return rowsAffected(res)
}

func (r *CatsRepo) GetByID(ctx context.Context, id string) (cats.Cat, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return cats.Cat{}, domainerr.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, owner_user_id,
			name, breed, description, age,
			created_at, updated_at
		FROM cats
		WHERE id = $1
	`, id)

	var c cats.Cat
	if err := row.Scan(
		&c.ID,
		&c.OwnerUserID,
		&c.Name,
		&c.Breed,
		&c.Description,
		&c.Age,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return cats.Cat{}, mapErr(err)
	}
	return c, nil
}

func (r *CatsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]cats.Cat, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, owner_user_id,
			name, breed, description, age,
			created_at, updated_at
		FROM cats
		WHERE owner_user_id = $1
		ORDER BY created_at ASC, id ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]cats.Cat, 0)
	for rows.Next() {
		var c cats.Cat
		if err := rows.Scan(
			&c.ID,
			&c.OwnerUserID,
			&c.Name,
			&c.Breed,
			&c.Description,
			&c.Age,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

func (r *CatsRepo) AddToy(ctx context.Context, catID, toyID string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cat_toys (cat_id, toy_id)
		VALUES ($1,$2)
		ON CONFLICT (cat_id, toy_id) DO NOTHING
	`, catID, toyID)
	return mapErr(err)
}

func (r *CatsRepo) RemoveToy(ctx context.Context, catID, toyID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cat_toys WHERE cat_id = $1 AND toy_id = $2
	`, catID, toyID)
	return mapErr(err)
}

func (r *CatsRepo) ListToyIDs(ctx context.Context, catID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT toy_id FROM cat_toys WHERE cat_id = $1 ORDER BY toy_id
	`, catID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
