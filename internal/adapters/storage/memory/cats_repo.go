package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"cat-collector/internal/domain/cats"
	"cat-collector/internal/domain/domainerr"
)

type catRepo struct {
	s *Store
}

func (r *catRepo) Create(ctx context.Context, c cats.Cat) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("cat id required")
	}
	if _, exists := r.s.cats[c.ID]; exists {
		return errors.New("cat already exists")
	}
	r.s.cats[c.ID] = c
	return nil
}

func (r *catRepo) Update(ctx context.Context, c cats.Cat) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, exists := r.s.cats[c.ID]
	if !exists {
		return domainerr.ErrNotFound
	}
	// el dueño no cambia nunca, aunque venga otro valor
	c.OwnerUserID = current.OwnerUserID
	r.s.cats[c.ID] = c
	return nil
}

func (r *catRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.cats[id]; !exists {
		return domainerr.ErrNotFound
	}
	delete(r.s.cats, id)
	delete(r.s.catToys, id)
	for fid, f := range r.s.feedings {
		if f.CatID == id {
			delete(r.s.feedings, fid)
		}
	}
	for pid, p := range r.s.photos {
		if p.CatID == id {
			delete(r.s.photos, pid)
		}
	}
	return nil
}

func (r *catRepo) GetByID(ctx context.Context, id string) (cats.Cat, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.cats[id]
	if !ok {
		return cats.Cat{}, domainerr.ErrNotFound
	}
	return c, nil
}

func (r *catRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]cats.Cat, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]cats.Cat, 0)
	for _, c := range r.s.cats {
		if c.OwnerUserID == ownerUserID {
			out = append(out, c)
		}
	}

	// Orden estable por created_at asc (igual que Postgres)
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *catRepo) AddToy(ctx context.Context, catID, toyID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.cats[catID]; !ok {
		return domainerr.ErrNotFound
	}
	if _, ok := r.s.toys[toyID]; !ok {
		return domainerr.ErrNotFound
	}
	set, ok := r.s.catToys[catID]
	if !ok {
		set = make(map[string]struct{})
		r.s.catToys[catID] = set
	}
	set[toyID] = struct{}{}
	return nil
}

func (r *catRepo) RemoveToy(ctx context.Context, catID, toyID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if set, ok := r.s.catToys[catID]; ok {
		delete(set, toyID)
	}
	return nil
}

func (r *catRepo) ListToyIDs(ctx context.Context, catID string) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]string, 0, len(r.s.catToys[catID]))
	for id := range r.s.catToys[catID] {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}
