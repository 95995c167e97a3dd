package feedings

import "context"

type Repository interface {
	Create(ctx context.Context, f Feeding) error
	// ListByCat devuelve las comidas más recientes primero.
	ListByCat(ctx context.Context, catID string) ([]Feeding, error)
}
