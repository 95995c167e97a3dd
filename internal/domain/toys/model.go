package toys

import "time"

// Toy es parte del catálogo compartido: no tiene dueño.
type Toy struct {
	ID    string
	Name  string
	Color string

	CreatedAt time.Time
	UpdatedAt time.Time
}
