package cats

import (
	"time"

	"cat-collector/internal/domain/toys"
)

// Cat es el perfil de una mascota. OwnerUserID no cambia después del alta.
type Cat struct {
	ID          string
	OwnerUserID string

	Name        string
	Breed       string
	Description string
	Age         int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ToySets separa los juguetes del gato de los que todavía se le pueden asignar.
type ToySets struct {
	Assigned  []toys.Toy
	Available []toys.Toy
}
