package photos

import (
	"errors"
	"net/http"
	"net/url"

	"cat-collector/internal/domain/domainerr"
	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/render"

	"github.com/go-chi/chi/v5"
)

const (
	formField      = "photo-file"
	maxUploadBytes = 10 << 20
)

func RegisterRoutes(r chi.Router, svc *Service, rd *render.Renderer) {
	r.Post("/cats/{catID}/add_photo", addPhotoHandler(svc, rd))
}

// addPhotoHandler godoc
// @Summary Subir foto de un gato
// @Description Sin archivo vuelve al detalle sin hacer nada. Fallas de validación o de subida vuelven al detalle con `photo_error=invalid_file|too_large|upload_failed`.
// @Tags photos
// @Accept multipart/form-data
// @Param catID path string true "ID del gato"
// @Param photo-file formData file false "Imagen (jpg, png, gif, bmp, tiff)"
// @Success 303 {string} string "redirect al detalle"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "cat not found"
// @Router /cats/{catID}/add_photo [post]
func addPhotoHandler(svc *Service, rd *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		catID := chi.URLParam(r, "catID")
		detail := "/cats/" + url.PathEscape(catID) + "/"

		if err := svc.cats.CheckOwner(r.Context(), claims, catID); err != nil {
			rd.Fail(w, r, err)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Redirect(w, r, detail+"?photo_error=too_large", http.StatusSeeOther)
				return
			}
			// sin multipart => no hay archivo
			http.Redirect(w, r, detail, http.StatusSeeOther)
			return
		}
		defer func() {
			if r.MultipartForm != nil {
				_ = r.MultipartForm.RemoveAll()
			}
		}()

		file, header, err := r.FormFile(formField)
		if err != nil {
			http.Redirect(w, r, detail, http.StatusSeeOther)
			return
		}
		defer file.Close()

		_, err = svc.Add(r.Context(), claims, catID, Upload{
			Filename: header.Filename,
			Body:     file,
		})
		switch {
		case err == nil:
			http.Redirect(w, r, detail, http.StatusSeeOther)
		case errors.Is(err, domainerr.ErrInvalidInput):
			http.Redirect(w, r, detail+"?photo_error=invalid_file", http.StatusSeeOther)
		case errors.Is(err, domainerr.ErrUploadFailed):
			http.Redirect(w, r, detail+"?photo_error=upload_failed", http.StatusSeeOther)
		default:
			rd.Fail(w, r, err)
		}
	}
}
