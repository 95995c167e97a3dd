package toys

import "context"

type Repository interface {
	Create(ctx context.Context, t Toy) error
	Update(ctx context.Context, t Toy) error
	// Delete también borra las asociaciones del juguete con gatos.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Toy, error)
	List(ctx context.Context) ([]Toy, error)
}
