package auth

import (
	"context"
	"time"
)

// AuthVerifier verifica un token de sesión y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// SessionIssuer firma un token nuevo para un usuario recién autenticado.
type SessionIssuer interface {
	Issue(c Claims) (token string, expiresAt time.Time, err error)
}
