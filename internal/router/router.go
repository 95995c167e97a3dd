package router

import (
	"database/sql"
	"net/http"
	"time"

	"cat-collector/docs"
	"cat-collector/internal/adapters/auth/session"
	mem "cat-collector/internal/adapters/storage/memory"
	pg "cat-collector/internal/adapters/storage/postgres"
	"cat-collector/internal/domain/cats"
	"cat-collector/internal/domain/feedings"
	"cat-collector/internal/domain/photos"
	"cat-collector/internal/domain/toys"
	"cat-collector/internal/domain/users"
	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/logger"
	"cat-collector/internal/platform/render"
	"cat-collector/internal/ports/objectstore"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger

	// Sessions nil => manager con secreto aleatorio (las sesiones no sobreviven un restart).
	Sessions *session.Manager

	// Store nil => las subidas de fotos fallan con upload_failed.
	Store         objectstore.Store
	UploadTimeout time.Duration

	// LoginRatePerMinute <= 0 desactiva el límite en /accounts.
	LoginRatePerMinute int
}

type repos struct {
	users    users.Repository
	cats     cats.Repository
	toys     toys.Repository
	feedings feedings.Repository
	photos   photos.Repository
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	sessions := opts.Sessions
	if sessions == nil {
		m, err := session.NewManager(session.Config{})
		if err != nil {
			return nil, err
		}
		sessions = m
	}

	rd, err := render.New(log)
	if err != nil {
		return nil, err
	}

	rp := newRepos(opts.DB)

	// Services por módulo
	usersSvc := users.NewService(rp.users)
	toysSvc := toys.NewService(rp.toys)
	catsSvc := cats.NewService(rp.cats, rp.toys)
	feedingsSvc := feedings.NewService(rp.feedings, catsSvc)
	photosSvc := photos.NewService(rp.photos, catsSvc, photos.Options{
		Store:         opts.Store,
		Logger:        log.With(map[string]any{"component": "photos"}),
		UploadTimeout: opts.UploadTimeout,
	})

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Use(middleware.AuthContext(sessions))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", staticPage(rd, "home"))
	r.Get("/about", staticPage(rd, "about"))

	docs.SwaggerInfo.BasePath = "/"
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// En modo dev las fotos se sirven desde el store en memoria.
	if h, ok := opts.Store.(http.Handler); ok {
		r.Handle("/media/*", h)
	}

	var limiter *middleware.IPRateLimiter
	if opts.LoginRatePerMinute > 0 {
		limiter = middleware.NewIPRateLimiter(opts.LoginRatePerMinute)
	}
	users.RegisterRoutes(r, usersSvc, sessions, rd, log.With(map[string]any{"component": "accounts"}), limiter)

	// Rutas por módulo; todo lo de gatos y juguetes pide login
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireLogin)

		cats.RegisterRoutes(pr, catsSvc, feedingsSvc, photosSvc, rd)
		feedings.RegisterRoutes(pr, feedingsSvc, rd)
		photos.RegisterRoutes(pr, photosSvc, rd)
		toys.RegisterRoutes(pr, toysSvc, rd)
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		rd.Error(w, req, http.StatusNotFound, "Page not found.")
	})

	return r, nil
}

func newRepos(db *sql.DB) repos {
	if db != nil {
		return repos{
			users:    pg.NewUsersRepo(db),
			cats:     pg.NewCatsRepo(db),
			toys:     pg.NewToysRepo(db),
			feedings: pg.NewFeedingsRepo(db),
			photos:   pg.NewPhotosRepo(db),
		}
	}

	store := mem.NewStore()
	return repos{
		users:    store.Users(),
		cats:     store.Cats(),
		toys:     store.Toys(),
		feedings: store.Feedings(),
		photos:   store.Photos(),
	}
}

func staticPage(rd *render.Renderer, page string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rd.HTML(w, r, http.StatusOK, page, render.Data{})
	}
}
