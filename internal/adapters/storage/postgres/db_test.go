package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"cat-collector/internal/domain/domainerr"
)

func TestSchemaDeclaresCascades(t *testing.T) {
	s := Schema()
	for _, table := range []string{"users", "cats", "toys", "cat_toys", "feedings", "photos"} {
		assert.Contains(t, s, "CREATE TABLE IF NOT EXISTS "+table+" ")
	}
	// cat_toys, feedings y photos dependen del gato; cat_toys también del juguete
	assert.Equal(t, 3, strings.Count(s, "REFERENCES cats (id) ON DELETE CASCADE"))
	assert.Equal(t, 1, strings.Count(s, "REFERENCES toys (id) ON DELETE CASCADE"))
}

func TestMapErr(t *testing.T) {
	assert.NoError(t, mapErr(nil))
	assert.ErrorIs(t, mapErr(sql.ErrNoRows), domainerr.ErrNotFound)
	assert.ErrorIs(t, mapErr(fmt.Errorf("wrap: %w", &pgconn.PgError{Code: "23505"})), domainerr.ErrConflict)
	assert.ErrorIs(t, mapErr(&pgconn.PgError{Code: "23503"}), domainerr.ErrNotFound)

	other := errors.New("boom")
	assert.Equal(t, other, mapErr(other))
}
