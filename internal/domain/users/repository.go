package users

import "context"

type Repository interface {
	// Create devuelve domainerr.ErrConflict si el username ya existe.
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
}
