package cats

import (
	"context"
	"strings"
	"time"

	"cat-collector/internal/domain/domainerr"
	"cat-collector/internal/domain/toys"
	"cat-collector/internal/platform/forms"
	"cat-collector/internal/ports/auth"

	"github.com/google/uuid"
)

type Service struct {
	repo    Repository
	catalog ToyCatalog
	now     func() time.Time
}

func NewService(repo Repository, catalog ToyCatalog) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		now:     time.Now,
	}
}

type CreateInput struct {
	Name        string `form:"name" validate:"required,max=100"`
	Breed       string `form:"breed" validate:"required,max=100"`
	Description string `form:"description" validate:"max=250"`
	Age         *int   `form:"age" validate:"required,gte=0"`
}

// UpdateInput no tiene Name: el nombre no se edita después del alta.
type UpdateInput struct {
	Breed       string `form:"breed" validate:"required,max=100"`
	Description string `form:"description" validate:"max=250"`
	Age         *int   `form:"age" validate:"required,gte=0"`
}

// ageOf: Age es puntero para distinguir "sin edad" de 0.
func ageOf(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func (s *Service) Create(ctx context.Context, caller auth.Claims, in CreateInput) (Cat, error) {
	if !caller.Authenticated() {
		return Cat{}, domainerr.ErrUnauthorized
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Breed = strings.TrimSpace(in.Breed)
	in.Description = strings.TrimSpace(in.Description)
	if err := forms.Validate(in); err != nil {
		return Cat{}, err
	}

	now := s.now()
	c := Cat{
		ID:          uuid.NewString(),
		OwnerUserID: caller.UserID,
		Name:        in.Name,
		Breed:       in.Breed,
		Description: in.Description,
		Age:         ageOf(in.Age),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Cat{}, err
	}
	return c, nil
}

// Authorize resuelve el gato y exige que el caller sea el dueño.
// Orden: sin sesión => Unauthorized, inexistente => NotFound, ajeno => Forbidden.
func (s *Service) Authorize(ctx context.Context, caller auth.Claims, catID string) (Cat, error) {
	if !caller.Authenticated() {
		return Cat{}, domainerr.ErrUnauthorized
	}
	catID = strings.TrimSpace(catID)
	if catID == "" {
		return Cat{}, domainerr.ErrNotFound
	}
	c, err := s.repo.GetByID(ctx, catID)
	if err != nil {
		return Cat{}, err
	}
	if c.OwnerUserID != caller.UserID {
		return Cat{}, domainerr.ErrForbidden
	}
	return c, nil
}

// CheckOwner es Authorize sin devolver el gato (lo usan feedings/photos).
func (s *Service) CheckOwner(ctx context.Context, caller auth.Claims, catID string) error {
	_, err := s.Authorize(ctx, caller, catID)
	return err
}

func (s *Service) Get(ctx context.Context, caller auth.Claims, id string) (Cat, error) {
	return s.Authorize(ctx, caller, id)
}

func (s *Service) ListByOwner(ctx context.Context, caller auth.Claims) ([]Cat, error) {
	if !caller.Authenticated() {
		return nil, domainerr.ErrUnauthorized
	}
	return s.repo.ListByOwner(ctx, caller.UserID)
}

func (s *Service) Update(ctx context.Context, caller auth.Claims, id string, in UpdateInput) (Cat, error) {
	current, err := s.Authorize(ctx, caller, id)
	if err != nil {
		return Cat{}, err
	}
	in.Breed = strings.TrimSpace(in.Breed)
	in.Description = strings.TrimSpace(in.Description)
	if err := forms.Validate(in); err != nil {
		return Cat{}, err
	}

	current.Breed = in.Breed
	current.Description = in.Description
	current.Age = ageOf(in.Age)
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Cat{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, caller auth.Claims, id string) error {
	c, err := s.Authorize(ctx, caller, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, c.ID)
}

// ToysFor devuelve los juguetes del gato y el resto del catálogo.
func (s *Service) ToysFor(ctx context.Context, caller auth.Claims, catID string) (ToySets, error) {
	c, err := s.Authorize(ctx, caller, catID)
	if err != nil {
		return ToySets{}, err
	}

	ids, err := s.repo.ListToyIDs(ctx, c.ID)
	if err != nil {
		return ToySets{}, err
	}
	catalog, err := s.catalog.List(ctx)
	if err != nil {
		return ToySets{}, err
	}

	assigned, available := SplitToys(catalog, ids)
	return ToySets{Assigned: assigned, Available: available}, nil
}

// SplitToys parte el catálogo en (asignados, disponibles) según assignedIDs.
// available es exactamente catalog \ assigned, en el orden del catálogo.
func SplitToys(catalog []toys.Toy, assignedIDs []string) (assigned, available []toys.Toy) {
	has := make(map[string]struct{}, len(assignedIDs))
	for _, id := range assignedIDs {
		has[id] = struct{}{}
	}

	assigned = make([]toys.Toy, 0, len(assignedIDs))
	available = make([]toys.Toy, 0, len(catalog))
	for _, t := range catalog {
		if _, ok := has[t.ID]; ok {
			assigned = append(assigned, t)
			continue
		}
		available = append(available, t)
	}
	return assigned, available
}

func (s *Service) AssociateToy(ctx context.Context, caller auth.Claims, catID, toyID string) error {
	c, t, err := s.resolvePair(ctx, caller, catID, toyID)
	if err != nil {
		return err
	}
	return s.repo.AddToy(ctx, c.ID, t.ID)
}

func (s *Service) DisassociateToy(ctx context.Context, caller auth.Claims, catID, toyID string) error {
	c, t, err := s.resolvePair(ctx, caller, catID, toyID)
	if err != nil {
		return err
	}
	return s.repo.RemoveToy(ctx, c.ID, t.ID)
}

func (s *Service) resolvePair(ctx context.Context, caller auth.Claims, catID, toyID string) (Cat, toys.Toy, error) {
	c, err := s.Authorize(ctx, caller, catID)
	if err != nil {
		return Cat{}, toys.Toy{}, err
	}
	toyID = strings.TrimSpace(toyID)
	if toyID == "" {
		return Cat{}, toys.Toy{}, domainerr.ErrNotFound
	}
	t, err := s.catalog.GetByID(ctx, toyID)
	if err != nil {
		return Cat{}, toys.Toy{}, err
	}
	return c, t, nil
}
