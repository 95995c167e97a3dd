package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cat-collector/internal/domain/cats"
	"cat-collector/internal/domain/domainerr"
	"cat-collector/internal/domain/feedings"
	"cat-collector/internal/domain/photos"
	"cat-collector/internal/domain/toys"
	"cat-collector/internal/domain/users"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func seed(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, s.Cats().Create(ctx, cats.Cat{ID: "c1", OwnerUserID: "u1", Name: "Milo", CreatedAt: now}))
	require.NoError(t, s.Cats().Create(ctx, cats.Cat{ID: "c2", OwnerUserID: "u1", Name: "Luna", CreatedAt: now.Add(time.Second)}))
	require.NoError(t, s.Toys().Create(ctx, toys.Toy{ID: "t1", Name: "Ball", Color: "red", CreatedAt: now}))
	require.NoError(t, s.Toys().Create(ctx, toys.Toy{ID: "t2", Name: "Mouse", Color: "grey", CreatedAt: now.Add(time.Second)}))
}

func TestUsers_UsernameIsUniqueIgnoringCase(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.Users().Create(ctx, users.User{ID: "u1", Username: "alice"}))
	assert.ErrorIs(t, s.Users().Create(ctx, users.User{ID: "u2", Username: "ALICE"}), domainerr.ErrConflict)

	u, err := s.Users().GetByUsername(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = s.Users().GetByID(ctx, "nope")
	assert.ErrorIs(t, err, domainerr.ErrNotFound)
}

func TestCats_ListByOwnerOrdered(t *testing.T) {
	s := NewStore()
	seed(t, s)
	ctx := context.Background()

	require.NoError(t, s.Cats().Create(ctx, cats.Cat{ID: "c3", OwnerUserID: "u2", Name: "Tom"}))

	list, err := s.Cats().ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Milo", list[0].Name)
	assert.Equal(t, "Luna", list[1].Name)
}

func TestCats_UpdateKeepsOwner(t *testing.T) {
	s := NewStore()
	seed(t, s)
	ctx := context.Background()

	require.NoError(t, s.Cats().Update(ctx, cats.Cat{ID: "c1", OwnerUserID: "intruder", Name: "Milo", Breed: "tabby"}))
	c, err := s.Cats().GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "u1", c.OwnerUserID)
	assert.Equal(t, "tabby", c.Breed)

	assert.ErrorIs(t, s.Cats().Update(ctx, cats.Cat{ID: "missing"}), domainerr.ErrNotFound)
}

func TestCats_AddRemoveToyIdempotent(t *testing.T) {
	s := NewStore()
	seed(t, s)
	ctx := context.Background()

	require.NoError(t, s.Cats().AddToy(ctx, "c1", "t1"))
	require.NoError(t, s.Cats().AddToy(ctx, "c1", "t1"))
	ids, err := s.Cats().ListToyIDs(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, ids)

	require.NoError(t, s.Cats().RemoveToy(ctx, "c1", "t1"))
	require.NoError(t, s.Cats().RemoveToy(ctx, "c1", "t1"))
	ids, err = s.Cats().ListToyIDs(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, ids)

	assert.ErrorIs(t, s.Cats().AddToy(ctx, "c1", "missing"), domainerr.ErrNotFound)
	assert.ErrorIs(t, s.Cats().AddToy(ctx, "missing", "t1"), domainerr.ErrNotFound)
}

func TestCats_DeleteCascades(t *testing.T) {
	s := NewStore()
	seed(t, s)
	ctx := context.Background()

	require.NoError(t, s.Cats().AddToy(ctx, "c1", "t1"))
	require.NoError(t, s.Feedings().Create(ctx, feedings.Feeding{ID: "f1", CatID: "c1", Date: day("2024-01-01"), Meal: feedings.MealBreakfast}))
	require.NoError(t, s.Feedings().Create(ctx, feedings.Feeding{ID: "f2", CatID: "c2", Date: day("2024-01-01"), Meal: feedings.MealLunch}))
	require.NoError(t, s.Photos().Create(ctx, photos.Photo{ID: "p1", CatID: "c1", URL: "https://x/a.png", Key: "a.png"}))

	require.NoError(t, s.Cats().Delete(ctx, "c1"))

	_, err := s.Cats().GetByID(ctx, "c1")
	assert.ErrorIs(t, err, domainerr.ErrNotFound)

	fs, _ := s.Feedings().ListByCat(ctx, "c1")
	assert.Empty(t, fs)
	ps, _ := s.Photos().ListByCat(ctx, "c1")
	assert.Empty(t, ps)
	ids, _ := s.Cats().ListToyIDs(ctx, "c1")
	assert.Empty(t, ids)

	// el otro gato y el catálogo quedan intactos
	fs, _ = s.Feedings().ListByCat(ctx, "c2")
	assert.Len(t, fs, 1)
	_, err = s.Toys().GetByID(ctx, "t1")
	assert.NoError(t, err)

	assert.ErrorIs(t, s.Cats().Delete(ctx, "c1"), domainerr.ErrNotFound)
}

func TestToys_DeleteRemovesAssociations(t *testing.T) {
	s := NewStore()
	seed(t, s)
	ctx := context.Background()

	require.NoError(t, s.Cats().AddToy(ctx, "c1", "t1"))
	require.NoError(t, s.Cats().AddToy(ctx, "c2", "t1"))
	require.NoError(t, s.Cats().AddToy(ctx, "c2", "t2"))

	require.NoError(t, s.Toys().Delete(ctx, "t1"))

	ids, _ := s.Cats().ListToyIDs(ctx, "c1")
	assert.Empty(t, ids)
	ids, _ = s.Cats().ListToyIDs(ctx, "c2")
	assert.Equal(t, []string{"t2"}, ids)

	list, err := s.Toys().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "t2", list[0].ID)
}

func TestFeedings_NewestFirstAndRequireCat(t *testing.T) {
	s := NewStore()
	seed(t, s)
	ctx := context.Background()

	require.NoError(t, s.Feedings().Create(ctx, feedings.Feeding{ID: "f1", CatID: "c1", Date: day("2024-01-01"), Meal: feedings.MealBreakfast}))
	require.NoError(t, s.Feedings().Create(ctx, feedings.Feeding{ID: "f2", CatID: "c1", Date: day("2024-03-01"), Meal: feedings.MealDinner}))
	require.NoError(t, s.Feedings().Create(ctx, feedings.Feeding{ID: "f3", CatID: "c1", Date: day("2024-02-01"), Meal: feedings.MealLunch}))

	fs, err := s.Feedings().ListByCat(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, fs, 3)
	assert.Equal(t, []string{"f2", "f3", "f1"}, []string{fs[0].ID, fs[1].ID, fs[2].ID})

	err = s.Feedings().Create(ctx, feedings.Feeding{ID: "f4", CatID: "missing", Date: day("2024-01-01"), Meal: feedings.MealLunch})
	assert.ErrorIs(t, err, domainerr.ErrNotFound)
}
