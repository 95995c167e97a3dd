package render

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cat-collector/internal/domain/domainerr"
	"cat-collector/internal/middleware"
	"cat-collector/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ParsesAllPages(t *testing.T) {
	rd, err := New(nil)
	require.NoError(t, err)

	for _, page := range []string{
		"home", "about", "errors/error",
		"cats/index", "cats/detail", "cats/form", "cats/confirm_delete",
		"toys/index", "toys/detail", "toys/form", "toys/confirm_delete",
		"registration/signup", "registration/login",
	} {
		assert.Contains(t, rd.pages, page)
	}
}

func TestHTML_InjectsCurrentUser(t *testing.T) {
	rd := MustNew(nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(middleware.WithClaims(req.Context(), auth.Claims{UserID: "u-1", Username: "alice"}))
	rec := httptest.NewRecorder()

	rd.HTML(rec, req, http.StatusOK, "home", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Log Out alice")
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestHTML_UnknownPage(t *testing.T) {
	rd := MustNew(nil)
	rec := httptest.NewRecorder()
	rd.HTML(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, "nope", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestFail_MapsDomainErrors(t *testing.T) {
	rd := MustNew(nil)

	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("cat: %w", domainerr.ErrNotFound), http.StatusNotFound},
		{domainerr.ErrForbidden, http.StatusForbidden},
		{domainerr.ErrInvalidInput, http.StatusBadRequest},
		{domainerr.ErrUnauthorized, http.StatusSeeOther},
		{fmt.Errorf("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		rd.Fail(rec, httptest.NewRequest(http.MethodGet, "/cats/x/", nil), tc.err)
		assert.Equal(t, tc.code, rec.Code, tc.err.Error())
	}
}
