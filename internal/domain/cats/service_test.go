package cats_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "cat-collector/internal/adapters/storage/memory"
	"cat-collector/internal/domain/cats"
	"cat-collector/internal/domain/domainerr"
	"cat-collector/internal/domain/feedings"
	"cat-collector/internal/domain/photos"
	"cat-collector/internal/domain/toys"
	"cat-collector/internal/platform/forms"
	"cat-collector/internal/ports/auth"
)

var (
	alice = auth.Claims{UserID: "u-alice", Username: "alice"}
	bob   = auth.Claims{UserID: "u-bob", Username: "bob"}
	anon  = auth.Claims{}
)

type fixture struct {
	store *mem.Store
	cats  *cats.Service
	toys  *toys.Service
}

func newFixture() fixture {
	s := mem.NewStore()
	return fixture{
		store: s,
		cats:  cats.NewService(s.Cats(), s.Toys()),
		toys:  toys.NewService(s.Toys()),
	}
}

func intp(v int) *int { return &v }

func (f fixture) milo(t *testing.T) cats.Cat {
	t.Helper()
	c, err := f.cats.Create(context.Background(), alice, cats.CreateInput{
		Name: "Milo", Breed: "tabby", Description: "orange", Age: intp(3),
	})
	require.NoError(t, err)
	return c
}

func (f fixture) toy(t *testing.T, name string) toys.Toy {
	t.Helper()
	ty, err := f.toys.Create(context.Background(), alice, toys.Input{Name: name, Color: "red"})
	require.NoError(t, err)
	return ty
}

func TestCreate_OwnedByCaller(t *testing.T) {
	f := newFixture()
	c := f.milo(t)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, alice.UserID, c.OwnerUserID)
	assert.Equal(t, "Milo", c.Name)
}

func TestCreate_RequiresCaller(t *testing.T) {
	f := newFixture()
	_, err := f.cats.Create(context.Background(), anon, cats.CreateInput{Name: "Milo", Breed: "tabby"})
	assert.ErrorIs(t, err, domainerr.ErrUnauthorized)
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.cats.Create(ctx, alice, cats.CreateInput{Name: "  ", Breed: "tabby", Age: intp(-1)})
	require.ErrorIs(t, err, domainerr.ErrInvalidInput)
	fields := forms.Fields(err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "age")

	long := make([]byte, 251)
	for i := range long {
		long[i] = 'x'
	}
	_, err = f.cats.Create(ctx, alice, cats.CreateInput{Name: "Milo", Breed: "tabby", Description: string(long), Age: intp(1)})
	require.ErrorIs(t, err, domainerr.ErrInvalidInput)
	assert.Contains(t, forms.Fields(err), "description")

	list, _ := f.cats.ListByOwner(ctx, alice)
	assert.Empty(t, list)
}

func TestCreate_AgeRequired(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.cats.Create(ctx, alice, cats.CreateInput{Name: "Milo", Breed: "tabby"})
	require.ErrorIs(t, err, domainerr.ErrInvalidInput)
	assert.Contains(t, forms.Fields(err), "age")

	kitten, err := f.cats.Create(ctx, alice, cats.CreateInput{Name: "Tom", Breed: "tabby", Age: intp(0)})
	require.NoError(t, err)
	assert.Equal(t, 0, kitten.Age)

	_, err = f.cats.Update(ctx, alice, kitten.ID, cats.UpdateInput{Breed: "siamese"})
	require.ErrorIs(t, err, domainerr.ErrInvalidInput)
	assert.Contains(t, forms.Fields(err), "age")
}

func TestListByOwner_Isolation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.milo(t)

	mine, err := f.cats.ListByOwner(ctx, alice)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	theirs, err := f.cats.ListByOwner(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	_, err = f.cats.ListByOwner(ctx, anon)
	assert.ErrorIs(t, err, domainerr.ErrUnauthorized)
}

func TestGet_OwnershipAndExistence(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.milo(t)

	got, err := f.cats.Get(ctx, alice, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	_, err = f.cats.Get(ctx, bob, c.ID)
	assert.ErrorIs(t, err, domainerr.ErrForbidden)

	_, err = f.cats.Get(ctx, alice, "missing")
	assert.ErrorIs(t, err, domainerr.ErrNotFound)

	_, err = f.cats.Get(ctx, anon, c.ID)
	assert.ErrorIs(t, err, domainerr.ErrUnauthorized)
}

func TestUpdate_KeepsNameAndOwner(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.milo(t)

	updated, err := f.cats.Update(ctx, alice, c.ID, cats.UpdateInput{Breed: "siamese", Description: "calm", Age: intp(4)})
	require.NoError(t, err)
	assert.Equal(t, "Milo", updated.Name)
	assert.Equal(t, "siamese", updated.Breed)
	assert.Equal(t, 4, updated.Age)

	stored, err := f.cats.Get(ctx, alice, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milo", stored.Name)
	assert.Equal(t, alice.UserID, stored.OwnerUserID)
	assert.Equal(t, "calm", stored.Description)
}

func TestUpdate_Forbidden(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.milo(t)

	_, err := f.cats.Update(ctx, bob, c.ID, cats.UpdateInput{Breed: "stolen"})
	assert.ErrorIs(t, err, domainerr.ErrForbidden)

	stored, _ := f.cats.Get(ctx, alice, c.ID)
	assert.Equal(t, "tabby", stored.Breed)
}

func TestDelete_CascadesAndIsOwnerOnly(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.milo(t)
	ball := f.toy(t, "Ball")

	require.NoError(t, f.cats.AssociateToy(ctx, alice, c.ID, ball.ID))
	require.NoError(t, f.store.Feedings().Create(ctx, feedings.Feeding{
		ID: "f1", CatID: c.ID, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Meal: feedings.MealBreakfast,
	}))
	require.NoError(t, f.store.Photos().Create(ctx, photos.Photo{ID: "p1", CatID: c.ID, URL: "https://x/a.png", Key: "a.png"}))

	assert.ErrorIs(t, f.cats.Delete(ctx, bob, c.ID), domainerr.ErrForbidden)

	require.NoError(t, f.cats.Delete(ctx, alice, c.ID))
	_, err := f.cats.Get(ctx, alice, c.ID)
	assert.ErrorIs(t, err, domainerr.ErrNotFound)

	fs, _ := f.store.Feedings().ListByCat(ctx, c.ID)
	assert.Empty(t, fs)
	ps, _ := f.store.Photos().ListByCat(ctx, c.ID)
	assert.Empty(t, ps)
	ids, _ := f.store.Cats().ListToyIDs(ctx, c.ID)
	assert.Empty(t, ids)

	// el juguete sigue en el catálogo
	_, err = f.toys.GetByID(ctx, ball.ID)
	assert.NoError(t, err)
}

func TestToyAssociation_RoundTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.milo(t)
	ball := f.toy(t, "Ball")
	mouse := f.toy(t, "Mouse")
	yarn := f.toy(t, "Yarn")

	sets, err := f.cats.ToysFor(ctx, alice, c.ID)
	require.NoError(t, err)
	assert.Empty(t, sets.Assigned)
	assert.Len(t, sets.Available, 3)

	// dos veces: idempotente
	require.NoError(t, f.cats.AssociateToy(ctx, alice, c.ID, ball.ID))
	require.NoError(t, f.cats.AssociateToy(ctx, alice, c.ID, ball.ID))

	sets, err = f.cats.ToysFor(ctx, alice, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{ball.ID}, toyIDs(sets.Assigned))
	assert.ElementsMatch(t, []string{mouse.ID, yarn.ID}, toyIDs(sets.Available))

	require.NoError(t, f.cats.DisassociateToy(ctx, alice, c.ID, ball.ID))
	require.NoError(t, f.cats.DisassociateToy(ctx, alice, c.ID, ball.ID))

	sets, err = f.cats.ToysFor(ctx, alice, c.ID)
	require.NoError(t, err)
	assert.Empty(t, sets.Assigned)
	assert.ElementsMatch(t, []string{ball.ID, mouse.ID, yarn.ID}, toyIDs(sets.Available))
}

func TestToyAssociation_Errors(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.milo(t)
	ball := f.toy(t, "Ball")

	assert.ErrorIs(t, f.cats.AssociateToy(ctx, bob, c.ID, ball.ID), domainerr.ErrForbidden)
	assert.ErrorIs(t, f.cats.AssociateToy(ctx, alice, c.ID, "missing"), domainerr.ErrNotFound)
	assert.ErrorIs(t, f.cats.AssociateToy(ctx, alice, "missing", ball.ID), domainerr.ErrNotFound)
	assert.ErrorIs(t, f.cats.DisassociateToy(ctx, bob, c.ID, ball.ID), domainerr.ErrForbidden)

	ids, _ := f.store.Cats().ListToyIDs(ctx, c.ID)
	assert.Empty(t, ids)
}

func TestSplitToys(t *testing.T) {
	catalog := []toys.Toy{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}

	assigned, available := cats.SplitToys(catalog, []string{"c", "a", "zzz"})
	assert.Equal(t, []string{"a", "c"}, toyIDs(assigned))
	assert.Equal(t, []string{"b", "d"}, toyIDs(available))

	assigned, available = cats.SplitToys(catalog, nil)
	assert.Empty(t, assigned)
	assert.Equal(t, []string{"a", "b", "c", "d"}, toyIDs(available))

	assigned, available = cats.SplitToys(nil, []string{"a"})
	assert.Empty(t, assigned)
	assert.Empty(t, available)
}

func toyIDs(ts []toys.Toy) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.ID)
	}
	return out
}
