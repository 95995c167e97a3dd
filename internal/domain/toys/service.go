package toys

import (
	"context"
	"strings"
	"time"

	"cat-collector/internal/domain/domainerr"
	"cat-collector/internal/platform/forms"
	"cat-collector/internal/ports/auth"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Input sirve para alta y edición (los dos formularios tienen name y color).
type Input struct {
	Name  string `form:"name" validate:"required,max=50"`
	Color string `form:"color" validate:"required,max=20"`
}

func (in Input) normalized() Input {
	return Input{
		Name:  strings.TrimSpace(in.Name),
		Color: strings.TrimSpace(in.Color),
	}
}

// El catálogo es compartido: cualquier usuario logueado puede mutarlo,
// pero siempre tiene que haber un caller autenticado.
func requireCaller(caller auth.Claims) error {
	if !caller.Authenticated() {
		return domainerr.ErrUnauthorized
	}
	return nil
}

func (s *Service) List(ctx context.Context, caller auth.Claims) ([]Toy, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, caller auth.Claims, id string) (Toy, error) {
	if err := requireCaller(caller); err != nil {
		return Toy{}, err
	}
	return s.GetByID(ctx, id)
}

// GetByID es el lookup sin caller que usan otros módulos (asociaciones).
func (s *Service) GetByID(ctx context.Context, id string) (Toy, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Toy{}, domainerr.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, caller auth.Claims, in Input) (Toy, error) {
	if err := requireCaller(caller); err != nil {
		return Toy{}, err
	}
	in = in.normalized()
	if err := forms.Validate(in); err != nil {
		return Toy{}, err
	}

	now := s.now()
	t := Toy{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Color:     in.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return Toy{}, err
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, caller auth.Claims, id string, in Input) (Toy, error) {
	if err := requireCaller(caller); err != nil {
		return Toy{}, err
	}
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Toy{}, err
	}
	in = in.normalized()
	if err := forms.Validate(in); err != nil {
		return Toy{}, err
	}

	current.Name = in.Name
	current.Color = in.Color
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Toy{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, caller auth.Claims, id string) error {
	if err := requireCaller(caller); err != nil {
		return err
	}
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, strings.TrimSpace(id))
}
