package photos

import "time"

// Photo apunta a una imagen guardada en el object store.
type Photo struct {
	ID    string
	CatID string

	URL string
	Key string

	CreatedAt time.Time
}
