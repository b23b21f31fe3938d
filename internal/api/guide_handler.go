package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shifang52221/metrickit-content/internal/api/shared"
	"github.com/shifang52221/metrickit-content/internal/domain"
	"github.com/shifang52221/metrickit-content/internal/platform/logger"
	"github.com/shifang52221/metrickit-content/internal/store"
)

// GuideHandler handles guide and category content requests.
type GuideHandler struct {
	contentStore *store.ContentStore
	logger       *slog.Logger
}

// NewGuideHandler creates a new GuideHandler.
func NewGuideHandler(contentStore *store.ContentStore, log *slog.Logger) *GuideHandler {
	if contentStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("content store cannot be nil for GuideHandler")
	}
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for GuideHandler")
	}

	return &GuideHandler{
		contentStore: contentStore,
		logger:       log.With(slog.String("component", "guide_handler")),
	}
}

// ListGuides handles GET /guides requests. An optional ?category= query
// restricts the listing to one category of the closed set.
func (h *GuideHandler) ListGuides(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	categoryFilter := r.URL.Query().Get("category")
	if categoryFilter != "" && !domain.Category(categoryFilter).Valid() {
		log.Debug("rejecting unknown category filter", slog.String("category", categoryFilter))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Unknown category")
		return
	}

	summaries := make([]GuideSummary, 0)
	for _, g := range h.contentStore.ListGuides() {
		if categoryFilter != "" && string(g.Category) != categoryFilter {
			continue
		}
		summaries = append(summaries, guideToSummary(&g))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GuideListResponse{
		Guides: summaries,
		Total:  len(summaries),
	})
}

// GetGuide handles GET /guides/{slug} requests. A slug that resolves to no
// guide is the caller's 404, not a server failure.
func (h *GuideHandler) GetGuide(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	slug := chi.URLParam(r, "slug")
	if slug == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Guide slug is required")
		return
	}

	guide, err := h.contentStore.GetGuide(slug)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("guide not found", slog.String("slug", slug))
		}
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("serving guide", slog.String("slug", slug))
	shared.RespondWithJSON(w, r, http.StatusOK, guideToResponse(guide))
}

// ListCategories handles GET /categories requests, returning the closed
// category set in display order.
func (h *GuideHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	infos := domain.Categories()
	out := make([]CategoryResponse, 0, len(infos))
	for _, info := range infos {
		out = append(out, CategoryResponse{
			Slug:        string(info.Slug),
			Title:       info.Title,
			Description: info.Description,
		})
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// GetCategoryIntro handles GET /categories/{category}/intro requests.
// Unknown categories are 404; a known category with no authored intro
// content returns an empty block list, which renderers treat as "show no
// intro".
func (h *GuideHandler) GetCategoryIntro(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	category := domain.Category(chi.URLParam(r, "category"))
	if !category.Valid() {
		log.Debug("unknown category requested", slog.String("category", string(category)))
		shared.RespondWithError(w, r, http.StatusNotFound, "Category not found")
		return
	}

	blocks := h.contentStore.GetCategoryIntroBlocks(category)
	shared.RespondWithJSON(w, r, http.StatusOK, CategoryIntroResponse{
		Category: string(category),
		Blocks:   blocks,
	})
}
