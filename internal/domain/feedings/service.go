package feedings

import (
	"context"
	"strings"
	"time"

	"cat-collector/internal/domain/domainerr"
	"cat-collector/internal/platform/forms"
	"cat-collector/internal/ports/auth"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// CatAccess evita importar el paquete cats (rompe ciclos).
type CatAccess interface {
	CheckOwner(ctx context.Context, caller auth.Claims, catID string) error
}

type Service struct {
	repo Repository
	cats CatAccess
	now  func() time.Time
}

func NewService(repo Repository, cats CatAccess) *Service {
	return &Service{
		repo: repo,
		cats: cats,
		now:  time.Now,
	}
}

type AddInput struct {
	Date string `form:"date" validate:"required,datetime=2006-01-02"`
	Meal string `form:"meal" validate:"required,oneof=B L D"`
}

// Add registra una comida. El catID sale del path: se valida existencia y dueño
// antes de mirar el formulario.
func (s *Service) Add(ctx context.Context, caller auth.Claims, catID string, in AddInput) (Feeding, error) {
	catID = strings.TrimSpace(catID)
	if err := s.cats.CheckOwner(ctx, caller, catID); err != nil {
		return Feeding{}, err
	}

	in.Date = strings.TrimSpace(in.Date)
	in.Meal = strings.TrimSpace(in.Meal)
	if err := forms.Validate(in); err != nil {
		return Feeding{}, err
	}
	day, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return Feeding{}, forms.NewValidationError("date", "Enter a valid date (YYYY-MM-DD).")
	}

	f := Feeding{
		ID:        uuid.NewString(),
		CatID:     catID,
		Date:      day,
		Meal:      Meal(in.Meal),
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return Feeding{}, err
	}
	return f, nil
}

// ListByCat no chequea dueño: lo llama el detalle del gato, que ya autorizó.
func (s *Service) ListByCat(ctx context.Context, catID string) ([]Feeding, error) {
	catID = strings.TrimSpace(catID)
	if catID == "" {
		return nil, domainerr.ErrNotFound
	}
	return s.repo.ListByCat(ctx, catID)
}

// FedForToday es true cuando hay al menos tantas comidas de hoy como tipos de comida.
func (s *Service) FedForToday(items []Feeding) bool {
	return FedOn(items, s.now())
}

func FedOn(items []Feeding, day time.Time) bool {
	today := day.Format(dateLayout)
	n := 0
	for _, f := range items {
		if f.Date.Format(dateLayout) == today {
			n++
		}
	}
	return n >= len(Meals)
}
