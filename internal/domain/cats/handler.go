package cats

import (
	"context"
	"errors"
	"net/http"

	"cat-collector/internal/domain/domainerr"
	"cat-collector/internal/domain/feedings"
	"cat-collector/internal/domain/photos"
	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/forms"
	"cat-collector/internal/platform/render"

	"github.com/go-chi/chi/v5"
)

// FeedingLog y PhotoAlbum son lo que el detalle necesita de los otros módulos.
type FeedingLog interface {
	ListByCat(ctx context.Context, catID string) ([]feedings.Feeding, error)
	FedForToday(items []feedings.Feeding) bool
}

type PhotoAlbum interface {
	ListByCat(ctx context.Context, catID string) ([]photos.Photo, error)
}

var feedingErrors = map[string]string{
	"invalid": "That feeding wasn't saved: pick a valid date and meal.",
}

var photoErrors = map[string]string{
	"invalid_file":  "That file couldn't be used: upload an image with an extension (jpg, png, gif...).",
	"too_large":     "That file is too large (10 MB max).",
	"upload_failed": "The photo couldn't be uploaded. Please try again later.",
}

// RegisterRoutes registra rutas planas bajo /cats para que feedings y photos
// puedan colgar las suyas en el mismo router.
func RegisterRoutes(r chi.Router, svc *Service, feedingLog FeedingLog, album PhotoAlbum, rd *render.Renderer) {
	r.Get("/cats", listCatsHandler(svc, rd))
	r.Get("/cats/", listCatsHandler(svc, rd))
	r.Get("/cats/new", newCatFormHandler(rd))
	r.Post("/cats/new", createCatHandler(svc, rd))

	r.Get("/cats/{catID}", getCatHandler(svc, feedingLog, album, rd))
	r.Get("/cats/{catID}/", getCatHandler(svc, feedingLog, album, rd))
	r.Get("/cats/{catID}/edit", editCatFormHandler(svc, rd))
	r.Post("/cats/{catID}/edit", updateCatHandler(svc, rd))
	r.Get("/cats/{catID}/delete", confirmDeleteCatHandler(svc, rd))
	r.Post("/cats/{catID}/delete", deleteCatHandler(svc, rd))

	r.Post("/cats/{catID}/assoc_toy/{toyID}", assocToyHandler(svc, rd))
	r.Post("/cats/{catID}/unassoc_toy/{toyID}", unassocToyHandler(svc, rd))
}

// listCatsHandler godoc
// @Summary Listar mis gatos
// @Description Sólo los gatos del usuario logueado.
// @Tags cats
// @Produce html
// @Success 200 {string} string "html"
// @Failure 303 {string} string "redirect a login"
// @Router /cats/ [get]
func listCatsHandler(svc *Service, rd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		items, err := svc.ListByOwner(r.Context(), claims)
		if err != nil {
			rd.Fail(w, r, err)
			return
		}
		rd.HTML(w, r, http.StatusOK, "cats/index", render.Data{"Cats": items})
	}
}

// getCatHandler godoc
// @Summary Detalle de gato
// @Description Incluye juguetes asignados, juguetes disponibles (catálogo menos los del gato), comidas y fotos.
// @Tags cats
// @Produce html
// @Param catID path string true "ID del gato"
// @Param feeding_error query string false "invalid"
// @Param photo_error query string false "invalid_file | too_large | upload_failed"
// @Success 200 {string} string "html"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "cat not found"
// @Router /cats/{catID}/ [get]
func getCatHandler(svc *Service, feedingLog FeedingLog, album PhotoAlbum, rd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		catID := chi.URLParam(r, "catID")

		c, err := svc.Get(r.Context(), claims, catID)
		if err != nil {
			rd.Fail(w, r, err)
			return
		}

		sets, err := svc.ToysFor(r.Context(), claims, c.ID)
		if err != nil {
			rd.Fail(w, r, err)
			return
		}
		fs, err := feedingLog.ListByCat(r.Context(), c.ID)
		if err != nil {
			rd.Fail(w, r, err)
			return
		}
		ps, err := album.ListByCat(r.Context(), c.ID)
		if err != nil {
			rd.Fail(w, r, err)
			return
		}

		q := r.URL.Query()
		rd.HTML(w, r, http.StatusOK, "cats/detail", render.Data{
			"Cat":           c,
			"Toys":          sets.Assigned,
			"AvailableToys": sets.Available,
			"Feedings":      fs,
			"FedForToday":   feedingLog.FedForToday(fs),
			"Meals":         feedings.Meals,
			"Photos":        ps,
			"FeedingError":  feedingErrors[q.Get("feeding_error")],
			"PhotoError":    photoErrors[q.Get("photo_error")],
		})
	}
}

func newCatFormHandler(rd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rd.HTML(w, r, http.StatusOK, "cats/form", render.Data{
			"Cat":    Cat{},
			"Action": "/cats/new",
		})
	}
}

// createCatHandler godoc
// @Summary Crear gato
// @Description El dueño es el usuario logueado.
// @Tags cats
// @Accept x-www-form-urlencoded
// @Produce html
// @Param name formData string true "Nombre (máx. 100)"
// @Param breed formData string true "Raza (máx. 100)"
// @Param description formData string false "Descripción (máx. 250)"
// @Param age formData int true "Edad (>= 0)"
// @Success 303 {string} string "redirect al detalle"
// @Failure 400 {string} string "formulario con errores"
// @Router /cats/new [post]
func createCatHandler(svc *Service, rd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var in CreateInput
		err := forms.Decode(r, &in)
		if err == nil {
			var c Cat
			c, err = svc.Create(r.Context(), claims, in)
			if err == nil {
				http.Redirect(w, r, "/cats/"+c.ID+"/", http.StatusSeeOther)
				return
			}
		}
		if !errors.Is(err, domainerr.ErrInvalidInput) {
			rd.Fail(w, r, err)
			return
		}
		rd.HTML(w, r, http.StatusBadRequest, "cats/form", render.Data{
			"Cat": Cat{
				Name:        in.Name,
				Breed:       in.Breed,
				Description: in.Description,
				Age:         ageOf(in.Age),
			},
			"Action": "/cats/new",
			"Errors": forms.Fields(err),
		})
	}
}

func editCatFormHandler(svc *Service, rd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		c, err := svc.Get(r.Context(), claims, chi.URLParam(r, "catID"))
		if err != nil {
			rd.Fail(w, r, err)
			return
		}
		rd.HTML(w, r, http.StatusOK, "cats/form", render.Data{
			"Cat":    c,
			"Action": "/cats/" + c.ID + "/edit",
		})
	}
}

// updateCatHandler godoc
// @Summary Editar gato
// @Description El nombre no se puede cambiar. Sólo el dueño.
// @Tags cats
// @Accept x-www-form-urlencoded
// @Produce html
// @Param catID path string true "ID del gato"
// @Param breed formData string true "Raza"
// @Param description formData string false "Descripción"
// @Param age formData int true "Edad"
// @Success 303 {string} string "redirect al detalle"
// @Failure 400 {string} string "formulario con errores"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "cat not found"
// @Router /cats/{catID}/edit [post]
func updateCatHandler(svc *Service, rd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		catID := chi.URLParam(r, "catID")

		// Primero dueño/existencia, para no mostrar el form de un gato ajeno.
		current, err := svc.Get(r.Context(), claims, catID)
		if err != nil {
			rd.Fail(w, r, err)
			return
		}

		var in UpdateInput
		err = forms.Decode(r, &in)
		if err == nil {
			_, err = svc.Update(r.Context(), claims, catID, in)
			if err == nil {
				http.Redirect(w, r, "/cats/"+current.ID+"/", http.StatusSeeOther)
				return
			}
		}
		if !errors.Is(err, domainerr.ErrInvalidInput) {
			rd.Fail(w, r, err)
			return
		}

		current.Breed = in.Breed
		current.Description = in.Description
		current.Age = ageOf(in.Age)
		rd.HTML(w, r, http.StatusBadRequest, "cats/form", render.Data{
			"Cat":    current,
			"Action": "/cats/" + current.ID + "/edit",
			"Errors": forms.Fields(err),
		})
	}
}

func confirmDeleteCatHandler(svc *Service, rd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		c, err := svc.Get(r.Context(), claims, chi.URLParam(r, "catID"))
		if err != nil {
			rd.Fail(w, r, err)
			return
		}
		rd.HTML(w, r, http.StatusOK, "cats/confirm_delete", render.Data{"Cat": c})
	}
}

// deleteCatHandler godoc
// @Summary Borrar gato
// @Description Borra en cascada comidas, fotos y asociaciones. Sólo el dueño.
// @Tags cats
// @Param catID path string true "ID del gato"
// @Success 303 {string} string "redirect a /cats/"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "cat not found"
// @Router /cats/{catID}/delete [post]
func deleteCatHandler(svc *Service, rd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		if err := svc.Delete(r.Context(), claims, chi.URLParam(r, "catID")); err != nil {
			rd.Fail(w, r, err)
			return
		}
		http.Redirect(w, r, "/cats/", http.StatusSeeOther)
	}
}

// assocToyHandler godoc
// @Summary Asignar juguete a gato
// @Description Idempotente.
// @Tags cats
// @Param catID path string true "ID del gato"
// @Param toyID path string true "ID del juguete"
// @Success 303 {string} string "redirect al detalle"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "cat/toy not found"
// @Router /cats/{catID}/assoc_toy/{toyID} [post]
func assocToyHandler(svc *Service, rd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		catID := chi.URLParam(r, "catID")

		if err := svc.AssociateToy(r.Context(), claims, catID, chi.URLParam(r, "toyID")); err != nil {
			rd.Fail(w, r, err)
			return
		}
		http.Redirect(w, r, "/cats/"+catID+"/", http.StatusSeeOther)
	}
}

// unassocToyHandler godoc
// @Summary Quitar juguete de gato
// @Description Idempotente: quitar un juguete no asignado no hace nada.
// @Tags cats
// @Param catID path string true "ID del gato"
// @Param toyID path string true "ID del juguete"
// @Success 303 {string} string "redirect al detalle"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "cat/toy not found"
// @Router /cats/{catID}/unassoc_toy/{toyID} [post]
func unassocToyHandler(svc *Service, rd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		catID := chi.URLParam(r, "catID")

		if err := svc.DisassociateToy(r.Context(), claims, catID, chi.URLParam(r, "toyID")); err != nil {
			rd.Fail(w, r, err)
			return
		}
		http.Redirect(w, r, "/cats/"+catID+"/", http.StatusSeeOther)
	}
}
