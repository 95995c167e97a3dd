package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"cat-collector/internal/domain/domainerr"
	"cat-collector/internal/domain/photos"
)

type photoRepo struct {
	s *Store
}

func (r *photoRepo) Create(ctx context.Context, p photos.Photo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("photo id required")
	}
	if _, ok := r.s.cats[p.CatID]; !ok {
		return domainerr.ErrNotFound
	}
	r.s.photos[p.ID] = p
	return nil
}

func (r *photoRepo) ListByCat(ctx context.Context, catID string) ([]photos.Photo, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]photos.Photo, 0)
	for _, p := range r.s.photos {
		if p.CatID == catID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
