package users_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "cat-collector/internal/adapters/storage/memory"
	"cat-collector/internal/domain/domainerr"
	"cat-collector/internal/domain/users"
	"cat-collector/internal/platform/forms"
)

func newService() *users.Service {
	return users.NewService(mem.NewStore().Users())
}

func TestSignup_AndAuthenticate(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	u, err := svc.Signup(ctx, users.SignupInput{Username: "alice", Password1: "whiskers42", Password2: "whiskers42"})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, "whiskers42", string(u.PasswordHash))

	got, err := svc.Authenticate(ctx, "alice", "whiskers42")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	byID, err := svc.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	_, err = svc.Authenticate(ctx, "alice", "wrong-password")
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
	_, err = svc.Authenticate(ctx, "nobody", "whiskers42")
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
	_, err = svc.Authenticate(ctx, "", "")
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
}

func TestSignup_DuplicateUsername(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, users.SignupInput{Username: "alice", Password1: "whiskers42", Password2: "whiskers42"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, users.SignupInput{Username: "Alice", Password1: "another99", Password2: "another99"})
	require.ErrorIs(t, err, domainerr.ErrInvalidInput)
	assert.Contains(t, forms.Fields(err), "username")
}

func TestSignup_MaxPasswordLength(t *testing.T) {
	svc := newService()
	pw := strings.Repeat("a", 71) + "1"

	u, err := svc.Signup(context.Background(), users.SignupInput{Username: "alice", Password1: pw, Password2: pw})
	require.NoError(t, err)
	_, err = svc.Authenticate(context.Background(), "alice", pw)
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
}

func TestSignup_Rules(t *testing.T) {
	long := strings.Repeat("a", 100) + "1"
	wide := strings.Repeat("ñ", 40) // 40 runas, 80 bytes
	cases := []struct {
		name  string
		in    users.SignupInput
		field string
	}{
		{"missing username", users.SignupInput{Password1: "whiskers42", Password2: "whiskers42"}, "username"},
		{"bad username chars", users.SignupInput{Username: "bad name!", Password1: "whiskers42", Password2: "whiskers42"}, "username"},
		{"too short", users.SignupInput{Username: "alice", Password1: "short", Password2: "short"}, "password1"},
		{"entirely numeric", users.SignupInput{Username: "alice", Password1: "1234567890", Password2: "1234567890"}, "password1"},
		{"same as username", users.SignupInput{Username: "catlover1", Password1: "CATLOVER1", Password2: "CATLOVER1"}, "password1"},
		{"mismatch", users.SignupInput{Username: "alice", Password1: "whiskers42", Password2: "whiskers43"}, "password2"},
		{"longer than bcrypt allows", users.SignupInput{Username: "alice", Password1: long, Password2: long}, "password1"},
		{"multibyte over 72 bytes", users.SignupInput{Username: "alice", Password1: wide, Password2: wide}, "password1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newService()

			_, err := svc.Signup(context.Background(), tc.in)
			require.ErrorIs(t, err, domainerr.ErrInvalidInput)
			assert.Contains(t, forms.Fields(err), tc.field)

			_, err = svc.Authenticate(context.Background(), tc.in.Username, tc.in.Password1)
			assert.ErrorIs(t, err, users.ErrInvalidCredentials)
		})
	}
}
