package users

import (
	"errors"
	"net/http"
	"strings"

	"cat-collector/internal/domain/domainerr"
	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/forms"
	"cat-collector/internal/platform/logger"
	"cat-collector/internal/platform/render"
	"cat-collector/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// Sessions es lo que el handler necesita del session manager.
type Sessions interface {
	Login(w http.ResponseWriter, c auth.Claims) error
	Logout(w http.ResponseWriter)
}

func RegisterRoutes(r chi.Router, svc *Service, sessions Sessions, rd *render.Renderer, log logger.Logger, limiter *middleware.IPRateLimiter) {
	r.Route("/accounts", func(ar chi.Router) {
		if limiter != nil {
			ar.Use(middleware.RateLimit(limiter))
		}
		ar.Get("/signup", signupFormHandler(rd))
		ar.Post("/signup", signupHandler(svc, sessions, rd, log))
		ar.Get("/login", loginFormHandler(rd))
		ar.Post("/login", loginHandler(svc, sessions, rd, log))
		ar.Post("/logout", logoutHandler(sessions))
	})
}

// signupFormHandler godoc
// @Summary Formulario de alta de cuenta
// @Tags accounts
// @Produce html
// @Success 200 {string} string "html"
// @Router /accounts/signup [get]
func signupFormHandler(rd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rd.HTML(w, r, http.StatusOK, "registration/signup", render.Data{})
	}
}

// signupHandler godoc
// @Summary Crear cuenta e iniciar sesión
// @Tags accounts
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Usuario"
// @Param password1 formData string true "Password"
// @Param password2 formData string true "Confirmación"
// @Success 303 {string} string "redirect a /cats/"
// @Failure 400 {string} string "formulario con errores"
// @Router /accounts/signup [post]
func signupHandler(svc *Service, sessions Sessions, rd *render.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in SignupInput
		err := forms.Decode(r, &in)
		if err == nil {
			var u User
			u, err = svc.Signup(r.Context(), in)
			if err == nil {
				if err := sessions.Login(w, auth.Claims{UserID: u.ID, Username: u.Username}); err != nil {
					log.Error("session login failed", map[string]any{"error": err, "user_id": u.ID})
					rd.Error(w, r, http.StatusInternalServerError, "")
					return
				}
				http.Redirect(w, r, "/cats/", http.StatusSeeOther)
				return
			}
		}

		if !errors.Is(err, domainerr.ErrInvalidInput) {
			log.Error("signup failed", map[string]any{"error": err})
			rd.Error(w, r, http.StatusInternalServerError, "")
			return
		}

		// passwords no se devuelven al formulario
		rd.HTML(w, r, http.StatusBadRequest, "registration/signup", render.Data{
			"ErrorMessage": "Invalid sign up - try again",
			"Errors":       forms.Fields(err),
			"Username":     strings.TrimSpace(in.Username),
		})
	}
}

// loginFormHandler godoc
// @Summary Formulario de login
// @Tags accounts
// @Produce html
// @Param next query string false "Path local al que volver"
// @Success 200 {string} string "html"
// @Router /accounts/login [get]
func loginFormHandler(rd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rd.HTML(w, r, http.StatusOK, "registration/login", render.Data{
			"Next": safeNext(r.URL.Query().Get("next")),
		})
	}
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Tags accounts
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Usuario"
// @Param password formData string true "Password"
// @Param next formData string false "Path local al que volver"
// @Success 303 {string} string "redirect"
// @Failure 400 {string} string "credenciales inválidas"
// @Failure 429 {string} string "too many requests"
// @Router /accounts/login [post]
func loginHandler(svc *Service, sessions Sessions, rd *render.Renderer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in LoginInput
		_ = forms.Decode(r, &in)
		next := safeNext(in.Next)

		u, err := svc.Authenticate(r.Context(), in.Username, in.Password)
		if err != nil {
			if !errors.Is(err, ErrInvalidCredentials) {
				log.Error("login failed", map[string]any{"error": err})
			}
			rd.HTML(w, r, http.StatusBadRequest, "registration/login", render.Data{
				"ErrorMessage": "Please enter a correct username and password.",
				"Username":     strings.TrimSpace(in.Username),
				"Next":         next,
			})
			return
		}

		if err := sessions.Login(w, auth.Claims{UserID: u.ID, Username: u.Username}); err != nil {
			log.Error("session login failed", map[string]any{"error": err, "user_id": u.ID})
			rd.Error(w, r, http.StatusInternalServerError, "")
			return
		}
		if next == "" {
			next = "/cats/"
		}
		http.Redirect(w, r, next, http.StatusSeeOther)
	}
}

// logoutHandler godoc
// @Summary Cerrar sesión
// @Tags accounts
// @Success 303 {string} string "redirect a /"
// @Router /accounts/logout [post]
func logoutHandler(sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.Logout(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// safeNext sólo acepta paths locales ("/cats/..."), nunca "//host" ni URLs absolutas.
func safeNext(next string) string {
	next = strings.TrimSpace(next)
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	return next
}
