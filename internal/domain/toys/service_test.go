package toys_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "cat-collector/internal/adapters/storage/memory"
	"cat-collector/internal/domain/cats"
	"cat-collector/internal/domain/domainerr"
	"cat-collector/internal/domain/toys"
	"cat-collector/internal/platform/forms"
	"cat-collector/internal/ports/auth"
)

var (
	alice = auth.Claims{UserID: "u-alice", Username: "alice"}
	bob   = auth.Claims{UserID: "u-bob", Username: "bob"}
)

func TestCRUD_SharedCatalog(t *testing.T) {
	svc := toys.NewService(mem.NewStore().Toys())
	ctx := context.Background()

	ball, err := svc.Create(ctx, alice, toys.Input{Name: " Ball ", Color: "red"})
	require.NoError(t, err)
	assert.Equal(t, "Ball", ball.Name)

	// el catálogo es compartido: bob ve y edita lo que creó alice
	list, err := svc.List(ctx, bob)
	require.NoError(t, err)
	require.Len(t, list, 1)

	updated, err := svc.Update(ctx, bob, ball.ID, toys.Input{Name: "Big Ball", Color: "blue"})
	require.NoError(t, err)
	assert.Equal(t, "Big Ball", updated.Name)

	got, err := svc.Get(ctx, alice, ball.ID)
	require.NoError(t, err)
	assert.Equal(t, "blue", got.Color)

	require.NoError(t, svc.Delete(ctx, bob, ball.ID))
	_, err = svc.Get(ctx, alice, ball.ID)
	assert.ErrorIs(t, err, domainerr.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, alice, ball.ID), domainerr.ErrNotFound)
}

func TestRequiresCaller(t *testing.T) {
	svc := toys.NewService(mem.NewStore().Toys())
	ctx := context.Background()
	anon := auth.Claims{}

	_, err := svc.List(ctx, anon)
	assert.ErrorIs(t, err, domainerr.ErrUnauthorized)
	_, err = svc.Create(ctx, anon, toys.Input{Name: "Ball", Color: "red"})
	assert.ErrorIs(t, err, domainerr.ErrUnauthorized)
	assert.ErrorIs(t, svc.Delete(ctx, anon, "x"), domainerr.ErrUnauthorized)
}

func TestValidation(t *testing.T) {
	svc := toys.NewService(mem.NewStore().Toys())
	ctx := context.Background()

	_, err := svc.Create(ctx, alice, toys.Input{Name: strings.Repeat("x", 51), Color: ""})
	require.ErrorIs(t, err, domainerr.ErrInvalidInput)
	fields := forms.Fields(err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "color")

	list, _ := svc.List(ctx, alice)
	assert.Empty(t, list)
}

func TestDelete_RemovesFromCats(t *testing.T) {
	store := mem.NewStore()
	svc := toys.NewService(store.Toys())
	catsSvc := cats.NewService(store.Cats(), store.Toys())
	ctx := context.Background()
	age := 2

	ball, err := svc.Create(ctx, alice, toys.Input{Name: "Ball", Color: "red"})
	require.NoError(t, err)
	milo, err := catsSvc.Create(ctx, alice, cats.CreateInput{Name: "Milo", Breed: "tabby", Age: &age})
	require.NoError(t, err)
	require.NoError(t, catsSvc.AssociateToy(ctx, alice, milo.ID, ball.ID))

	require.NoError(t, svc.Delete(ctx, alice, ball.ID))

	sets, err := catsSvc.ToysFor(ctx, alice, milo.ID)
	require.NoError(t, err)
	assert.Empty(t, sets.Assigned)
	assert.Empty(t, sets.Available)
}
