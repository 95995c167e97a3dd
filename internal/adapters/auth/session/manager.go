package session

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cat-collector/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenEmpty   = errors.New("token is empty")
	ErrTokenInvalid = errors.New("token invalid")
)

const issuer = "cat-collector"

var (
	_ auth.AuthVerifier  = (*Manager)(nil)
	_ auth.SessionIssuer = (*Manager)(nil)
)

type Config struct {
	// Secret firma los tokens (HS256). Vacío => secreto aleatorio por proceso.
	Secret string
	TTL    time.Duration
	Secure bool
}

// Manager firma/verifica tokens de sesión y maneja la cookie.
// Implementa auth.AuthVerifier y auth.SessionIssuer.
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func NewManager(cfg Config) (*Manager, error) {
	secret := []byte(strings.TrimSpace(cfg.Secret))
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("session: random secret: %w", err)
		}
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{
		secret: secret,
		ttl:    ttl,
		secure: cfg.Secure,
		now:    time.Now,
	}, nil
}

func (m *Manager) Issue(c auth.Claims) (string, time.Time, error) {
	if !c.Authenticated() {
		return "", time.Time{}, ErrTokenInvalid
	}
	now := m.now()
	exp := now.Add(m.ttl)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Username: c.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   c.UserID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("session: sign: %w", err)
	}
	return signed, exp, nil
}

func (m *Manager) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var sc sessionClaims
	_, err := jwt.ParseWithClaims(token, &sc, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	c := auth.Claims{UserID: strings.TrimSpace(sc.Subject), Username: sc.Username}
	if !c.Authenticated() {
		return auth.Claims{}, ErrTokenInvalid
	}
	return c, nil
}

// Login firma un token y lo deja en la cookie de sesión.
func (m *Manager) Login(w http.ResponseWriter, c auth.Claims) error {
	token, exp, err := m.Issue(c)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Logout borra la cookie.
func (m *Manager) Logout(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
