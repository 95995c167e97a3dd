package memory

import (
	"sync"

	"cat-collector/internal/domain/cats"
	"cat-collector/internal/domain/feedings"
	"cat-collector/internal/domain/photos"
	"cat-collector/internal/domain/toys"
	"cat-collector/internal/domain/users"
)

// Store guarda todo en memoria detrás de un único mutex, así los borrados en
// cascada (gato => feedings/photos/asociaciones) son atómicos como en Postgres.
type Store struct {
	mu sync.RWMutex

	users    map[string]users.User
	cats     map[string]cats.Cat
	toys     map[string]toys.Toy
	feedings map[string]feedings.Feeding
	photos   map[string]photos.Photo

	// catToys[catID][toyID]
	catToys map[string]map[string]struct{}
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]users.User),
		cats:     make(map[string]cats.Cat),
		toys:     make(map[string]toys.Toy),
		feedings: make(map[string]feedings.Feeding),
		photos:   make(map[string]photos.Photo),
		catToys:  make(map[string]map[string]struct{}),
	}
}

func (s *Store) Users() users.Repository       { return &userRepo{s: s} }
func (s *Store) Cats() cats.Repository         { return &catRepo{s: s} }
func (s *Store) Toys() toys.Repository         { return &toyRepo{s: s} }
func (s *Store) Feedings() feedings.Repository { return &feedingRepo{s: s} }
func (s *Store) Photos() photos.Repository     { return &photoRepo{s: s} }
