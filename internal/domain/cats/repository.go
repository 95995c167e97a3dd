package cats

import (
	"context"

	"cat-collector/internal/domain/toys"
)

type Repository interface {
	Create(ctx context.Context, c Cat) error
	Update(ctx context.Context, c Cat) error
	// Delete borra el gato y en cascada feedings, photos y asociaciones.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Cat, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Cat, error)

	// AddToy / RemoveToy son idempotentes.
	AddToy(ctx context.Context, catID, toyID string) error
	RemoveToy(ctx context.Context, catID, toyID string) error
	ListToyIDs(ctx context.Context, catID string) ([]string, error)
}

// ToyCatalog es lo que cats necesita del catálogo (toys.Repository lo cumple).
type ToyCatalog interface {
	GetByID(ctx context.Context, id string) (toys.Toy, error)
	List(ctx context.Context) ([]toys.Toy, error)
}
