package feedings

import (
	"errors"
	"net/http"
	"net/url"

	"cat-collector/internal/domain/domainerr"
	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/forms"
	"cat-collector/internal/platform/render"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, rd *render.Renderer) {
	r.Post("/cats/{catID}/add_feeding", addFeedingHandler(svc, rd))
}

// addFeedingHandler godoc
// @Summary Registrar una comida
// @Description Siempre vuelve al detalle del gato. Si el formulario es inválido no se crea nada y el redirect lleva `feeding_error=invalid`.
// @Tags feedings
// @Accept x-www-form-urlencoded
// @Param catID path string true "ID del gato"
// @Param date formData string true "YYYY-MM-DD"
// @Param meal formData string true "B, L o D"
// @Success 303 {string} string "redirect al detalle"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "cat not found"
// @Router /cats/{catID}/add_feeding [post]
func addFeedingHandler(svc *Service, rd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		catID := chi.URLParam(r, "catID")
		detail := "/cats/" + url.PathEscape(catID) + "/"

		// Dueño antes que formulario: un ajeno recibe 403 aunque mande basura.
		if err := svc.cats.CheckOwner(r.Context(), claims, catID); err != nil {
			rd.Fail(w, r, err)
			return
		}

		var in AddInput
		err := forms.Decode(r, &in)
		if err == nil {
			_, err = svc.Add(r.Context(), claims, catID, in)
		}

		switch {
		case err == nil:
			http.Redirect(w, r, detail, http.StatusSeeOther)
		case errors.Is(err, domainerr.ErrInvalidInput):
			http.Redirect(w, r, detail+"?feeding_error=invalid", http.StatusSeeOther)
		default:
			rd.Fail(w, r, err)
		}
	}
}
