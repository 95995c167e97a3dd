package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"cat-collector/internal/domain/domainerr"
	"cat-collector/internal/domain/toys"
)

type toyRepo struct {
	s *Store
}

func (r *toyRepo) Create(ctx context.Context, t toys.Toy) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errors.New("toy id required")
	}
	if _, exists := r.s.toys[t.ID]; exists {
		return errors.New("toy already exists")
	}
	r.s.toys[t.ID] = t
	return nil
}

func (r *toyRepo) Update(ctx context.Context, t toys.Toy) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.toys[t.ID]; !exists {
		return domainerr.ErrNotFound
	}
	r.s.toys[t.ID] = t
	return nil
}

func (r *toyRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.toys[id]; !exists {
		return domainerr.ErrNotFound
	}
	delete(r.s.toys, id)
	for _, set := range r.s.catToys {
		delete(set, id)
	}
	return nil
}

func (r *toyRepo) GetByID(ctx context.Context, id string) (toys.Toy, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.toys[id]
	if !ok {
		return toys.Toy{}, domainerr.ErrNotFound
	}
	return t, nil
}

func (r *toyRepo) List(ctx context.Context) ([]toys.Toy, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]toys.Toy, 0, len(r.s.toys))
	for _, t := range r.s.toys {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
