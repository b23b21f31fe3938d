package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/shifang52221/metrickit-content/internal/api/middleware"
	"github.com/shifang52221/metrickit-content/internal/api/shared"
	"github.com/shifang52221/metrickit-content/internal/store"
)

// NewRouter wires the content API routes over the given store.
func NewRouter(contentStore *store.ContentStore, baseURL string, log *slog.Logger) http.Handler {
	guides := NewGuideHandler(contentStore, log)
	sitemap := NewSitemapHandler(contentStore, baseURL, log)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TraceMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		shared.RespondWithJSON(w, req, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/sitemap.xml", sitemap.GetSitemap)

	r.Route("/guides", func(r chi.Router) {
		r.Get("/", guides.ListGuides)
		r.Get("/{slug}", guides.GetGuide)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", guides.ListCategories)
		r.Get("/{category}/intro", guides.GetCategoryIntro)
	})

	return r
}
