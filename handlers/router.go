package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/kevinaaaquil/oct-library/middleware"
	"github.com/kevinaaaquil/oct-library/service"
	"github.com/kevinaaaquil/oct-library/store"
)

// Deps is what the router needs to serve the site.
type Deps struct {
	Store        *store.Store
	Sessions     *middleware.Sessions
	Assets       *service.AssetLinks
	Limiter      *middleware.KeyedLimiter
	Logger       *slog.Logger
	Now          func() time.Time
	AdminEnabled bool
	CORSOrigins  []string
	// TrustProxy lets X-Forwarded-For / X-Real-IP replace RemoteAddr, which the
	// rate limiter keys on. Leave off unless a proxy in front rewrites them.
	TrustProxy bool
}

// NewRouter wires the pages, the forms and the JSON API.
func NewRouter(d Deps) (http.Handler, error) {
	if d.Now == nil {
		d.Now = time.Now
	}
	renderer, err := NewRenderer(d.Assets, d.Logger)
	if err != nil {
		return nil, err
	}

	pages := &PagesHandler{Store: d.Store, Renderer: renderer, Logger: d.Logger, Now: d.Now, AdminEnabled: d.AdminEnabled}
	books := &BooksHandler{Sessions: d.Sessions, Logger: d.Logger}
	admin := &AdminHandler{Store: d.Store, Pages: pages, Logger: d.Logger, Enabled: d.AdminEnabled}
	survey := &SurveyHandler{Store: d.Store, Logger: d.Logger}
	content := &ContentAPI{Store: d.Store, Logger: d.Logger, Now: d.Now, AdminEnabled: d.AdminEnabled}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if d.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS("/api/", d.CORSOrigins))
	r.Use(middleware.RateLimit(d.Limiter, d.Logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.SecurityHeaders)
		r.Use(d.Sessions.Load)

		r.Get("/", pages.Home)
		r.Post("/books/{id}/reserve", books.ToggleReserve)
		r.Post("/books/{id}/want-to-read", books.ToggleWantToRead)
		r.Post("/survey", survey.Submit)

		r.Route("/admin", func(r chi.Router) {
			r.Use(admin.Guard)
			r.Post("/feature", admin.Feature)
			r.Post("/{collection}", admin.Add)
			r.Post("/{collection}/{id}", admin.Update)
			r.Post("/{collection}/{id}/delete", admin.Delete)
		})
	})

	humaConfig := huma.DefaultConfig("OCT Library API", "1.0.0")
	humaConfig.OpenAPIPath = "/api/openapi"
	humaConfig.DocsPath = "/api/docs"
	humaConfig.SchemasPath = "/api/schemas"
	api := humachi.New(r, humaConfig)
	RegisterErrorHandler()
	content.Register(api)

	return r, nil
}
