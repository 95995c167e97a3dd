// Package render arma las páginas HTML (layout base + una plantilla por página).
package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"cat-collector/internal/domain/domainerr"
	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/logger"
)

//go:embed templates
var templatesFS embed.FS

// Data es lo que recibe cada plantilla. CurrentUser lo completa el Renderer.
type Data map[string]any

type Renderer struct {
	pages map[string]*template.Template
	log   logger.Logger
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	},
}

// New parsea todas las páginas embebidas. Falla si alguna plantilla no compila.
func New(log logger.Logger) (*Renderer, error) {
	if log == nil {
		log = logger.Nop()
	}
	pages := map[string]*template.Template{}

	err := fs.WalkDir(templatesFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path == "templates/base.html" || !strings.HasSuffix(path, ".html") {
			return nil
		}
		name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".html")
		t, err := template.New(name).Funcs(funcs).ParseFS(templatesFS, "templates/base.html", path)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		pages[name] = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Renderer{pages: pages, log: log}, nil
}

// MustNew es para main/tests: las plantillas van embebidas, un error es un bug.
func MustNew(log logger.Logger) *Renderer {
	r, err := New(log)
	if err != nil {
		panic(err)
	}
	return r
}

// HTML renderiza page con status. Si la plantilla falla, responde 500 sin HTML parcial.
func (rd *Renderer) HTML(w http.ResponseWriter, r *http.Request, status int, page string, data Data) {
	t, ok := rd.pages[page]
	if !ok {
		http.Error(w, "template not found: "+page, http.StatusInternalServerError)
		return
	}
	if data == nil {
		data = Data{}
	}
	claims, _ := middleware.GetClaims(r.Context())
	data["CurrentUser"] = claims

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		rd.log.Error("render failed", map[string]any{"page": page, "error": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Error renderiza la página genérica de error.
func (rd *Renderer) Error(w http.ResponseWriter, r *http.Request, status int, msg string) {
	rd.HTML(w, r, status, "errors/error", Data{
		"Status":  status,
		"Title":   http.StatusText(status),
		"Message": msg,
	})
}

// Fail traduce un error de dominio a la respuesta que corresponde.
// Los errores no esperados se loguean y terminan en 500.
func (rd *Renderer) Fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domainerr.ErrUnauthorized):
		http.Redirect(w, r, middleware.LoginURL(r.URL.RequestURI()), http.StatusSeeOther)
	case errors.Is(err, domainerr.ErrNotFound):
		rd.Error(w, r, http.StatusNotFound, "We couldn't find what you were looking for.")
	case errors.Is(err, domainerr.ErrForbidden):
		rd.Error(w, r, http.StatusForbidden, "That doesn't belong to you.")
	case errors.Is(err, domainerr.ErrInvalidInput):
		rd.Error(w, r, http.StatusBadRequest, err.Error())
	default:
		rd.log.Error("request failed", map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
			"error":  err,
		})
		rd.Error(w, r, http.StatusInternalServerError, "")
	}
}
