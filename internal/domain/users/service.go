package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cat-collector/internal/domain/domainerr"
	"cat-collector/internal/platform/forms"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	repo Repository
	now  func() time.Time
	cost int
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		cost: bcrypt.DefaultCost,
	}
}

const maxPasswordBytes = 72

func errPasswordTooLong() error {
	return forms.NewValidationError("password1", "Ensure this password has at most 72 bytes.")
}

// SignupInput replica las reglas del formulario de alta de cuenta.
type SignupInput struct {
	Username  string `form:"username" validate:"required,max=150,username"`
	Password1 string `form:"password1" validate:"required,min=8,max=72,notnumeric"`
	Password2 string `form:"password2" validate:"required,eqfield=Password1"`
}

type LoginInput struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (User, error) {
	in.Username = strings.TrimSpace(in.Username)
	if err := forms.Validate(in); err != nil {
		return User{}, err
	}
	// bcrypt no acepta más de 72 bytes; max=72 cuenta runas, no bytes.
	if len(in.Password1) > maxPasswordBytes {
		return User{}, errPasswordTooLong()
	}
	if strings.EqualFold(in.Username, in.Password1) {
		return User{}, forms.NewValidationError("password1", "The password is too similar to the username.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password1), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return User{}, errPasswordTooLong()
	}
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	u := User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, domainerr.ErrConflict) {
			return User{}, forms.NewValidationError("username", "A user with that username already exists.")
		}
		return User{}, err
	}
	return u, nil
}

// Authenticate compara contra el hash bcrypt. Usuario inexistente y password
// incorrecta devuelven el mismo error.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainerr.ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}
