package objectstore

import (
	"context"
	"io"
)

// Store sube binarios a un bucket externo y arma la URL pública del objeto.
type Store interface {
	Put(ctx context.Context, key, contentType string, body io.ReadSeeker) error
	URL(key string) string
}
