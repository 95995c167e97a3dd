package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"cat-collector/internal/domain/domainerr"
	"cat-collector/internal/domain/feedings"
)

type feedingRepo struct {
	s *Store
}

func (r *feedingRepo) Create(ctx context.Context, f feedings.Feeding) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(f.ID) == "" {
		return errors.New("feeding id required")
	}
	// mismo comportamiento que la FK en Postgres
	if _, ok := r.s.cats[f.CatID]; !ok {
		return domainerr.ErrNotFound
	}
	r.s.feedings[f.ID] = f
	return nil
}

func (r *feedingRepo) ListByCat(ctx context.Context, catID string) ([]feedings.Feeding, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]feedings.Feeding, 0)
	for _, f := range r.s.feedings {
		if f.CatID == catID {
			out = append(out, f)
		}
	}
	// más reciente primero; a igual fecha, por orden de carga
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}
