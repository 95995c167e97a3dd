package toys

import (
	"errors"
	"net/http"

	"cat-collector/internal/domain/domainerr"
	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/forms"
	"cat-collector/internal/platform/render"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el catálogo. El router ya aplicó RequireLogin al grupo.
func RegisterRoutes(r chi.Router, svc *Service, rd *render.Renderer) {
	r.Route("/toys", func(tr chi.Router) {
		tr.Get("/", listToysHandler(svc, rd))
		tr.Get("/new", newToyFormHandler(rd))
		tr.Post("/new", createToyHandler(svc, rd))

		tr.Get("/{toyID}", getToyHandler(svc, rd))
		tr.Get("/{toyID}/", getToyHandler(svc, rd))
		tr.Get("/{toyID}/edit", editToyFormHandler(svc, rd))
		tr.Post("/{toyID}/edit", updateToyHandler(svc, rd))
		tr.Get("/{toyID}/delete", confirmDeleteToyHandler(svc, rd))
		tr.Post("/{toyID}/delete", deleteToyHandler(svc, rd))
	})
}

// listToysHandler godoc
// @Summary Listar juguetes
// @Tags toys
// @Produce html
// @Success 200 {string} string "html"
// @Failure 303 {string} string "redirect a login"
// @Router /toys/ [get]
func listToysHandler(svc *Service, rd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		items, err := svc.List(r.Context(), claims)
		if err != nil {
			rd.Fail(w, r, err)
			return
		}
		rd.HTML(w, r, http.StatusOK, "toys/index", render.Data{"Toys": items})
	}
}

// getToyHandler godoc
// @Summary Detalle de juguete
// @Tags toys
// @Produce html
// @Param toyID path string true "ID del juguete"
// @Success 200 {string} string "html"
// @Failure 404 {string} string "toy not found"
// @Router /toys/{toyID}/ [get]
func getToyHandler(svc *Service, rd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		t, err := svc.Get(r.Context(), claims, chi.URLParam(r, "toyID"))
		if err != nil {
			rd.Fail(w, r, err)
			return
		}
		rd.HTML(w, r, http.StatusOK, "toys/detail", render.Data{"Toy": t})
	}
}

func newToyFormHandler(rd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rd.HTML(w, r, http.StatusOK, "toys/form", render.Data{
			"Toy":    Toy{},
			"Action": "/toys/new",
		})
	}
}

// createToyHandler godoc
// @Summary Crear juguete
// @Tags toys
// @Accept x-www-form-urlencoded
// @Produce html
// @Param name formData string true "Nombre (máx. 50)"
// @Param color formData string true "Color (máx. 20)"
// @Success 303 {string} string "redirect al detalle"
// @Failure 400 {string} string "formulario con errores"
// @Router /toys/new [post]
func createToyHandler(svc *Service, rd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var in Input
		err := forms.Decode(r, &in)
		if err == nil {
			var t Toy
			t, err = svc.Create(r.Context(), claims, in)
			if err == nil {
				http.Redirect(w, r, "/toys/"+t.ID+"/", http.StatusSeeOther)
				return
			}
		}
		if !errors.Is(err, domainerr.ErrInvalidInput) {
			rd.Fail(w, r, err)
			return
		}
		rd.HTML(w, r, http.StatusBadRequest, "toys/form", render.Data{
			"Toy":    Toy{Name: in.Name, Color: in.Color},
			"Action": "/toys/new",
			"Errors": forms.Fields(err),
		})
	}
}

func editToyFormHandler(svc *Service, rd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		t, err := svc.Get(r.Context(), claims, chi.URLParam(r, "toyID"))
		if err != nil {
			rd.Fail(w, r, err)
			return
		}
		rd.HTML(w, r, http.StatusOK, "toys/form", render.Data{
			"Toy":    t,
			"Action": "/toys/" + t.ID + "/edit",
		})
	}
}

// updateToyHandler godoc
// @Summary Editar juguete
// @Tags toys
// @Accept x-www-form-urlencoded
// @Produce html
// @Param toyID path string true "ID del juguete"
// @Param name formData string true "Nombre"
// @Param color formData string true "Color"
// @Success 303 {string} string "redirect al detalle"
// @Failure 400 {string} string "formulario con errores"
// @Failure 404 {string} string "toy not found"
// @Router /toys/{toyID}/edit [post]
func updateToyHandler(svc *Service, rd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		toyID := chi.URLParam(r, "toyID")

		var in Input
		err := forms.Decode(r, &in)
		if err == nil {
			var t Toy
			t, err = svc.Update(r.Context(), claims, toyID, in)
			if err == nil {
				http.Redirect(w, r, "/toys/"+t.ID+"/", http.StatusSeeOther)
				return
			}
		}
		if !errors.Is(err, domainerr.ErrInvalidInput) {
			rd.Fail(w, r, err)
			return
		}
		rd.HTML(w, r, http.StatusBadRequest, "toys/form", render.Data{
			"Toy":    Toy{ID: toyID, Name: in.Name, Color: in.Color},
			"Action": "/toys/" + toyID + "/edit",
			"Errors": forms.Fields(err),
		})
	}
}

func confirmDeleteToyHandler(svc *Service, rd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		t, err := svc.Get(r.Context(), claims, chi.URLParam(r, "toyID"))
		if err != nil {
			rd.Fail(w, r, err)
			return
		}
		rd.HTML(w, r, http.StatusOK, "toys/confirm_delete", render.Data{"Toy": t})
	}
}

// deleteToyHandler godoc
// @Summary Borrar juguete (y sus asociaciones)
// @Tags toys
// @Param toyID path string true "ID del juguete"
// @Success 303 {string} string "redirect a /toys/"
// @Failure 404 {string} string "toy not found"
// @Router /toys/{toyID}/delete [post]
func deleteToyHandler(svc *Service, rd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		if err := svc.Delete(r.Context(), claims, chi.URLParam(r, "toyID")); err != nil {
			rd.Fail(w, r, err)
			return
		}
		http.Redirect(w, r, "/toys/", http.StatusSeeOther)
	}
}
