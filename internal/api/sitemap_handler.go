package api

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shifang52221/metrickit-content/internal/domain"
	"github.com/shifang52221/metrickit-content/internal/store"
)

// sitemapURL is one <url> entry of the sitemap.
type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// sitemapURLSet is the <urlset> document root.
type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapHandler serves the XML sitemap generated from the content store.
type SitemapHandler struct {
	contentStore *store.ContentStore
	baseURL      string
	logger       *slog.Logger
}

// NewSitemapHandler creates a new SitemapHandler. baseURL is the absolute
// site origin, without a trailing slash.
func NewSitemapHandler(contentStore *store.ContentStore, baseURL string, log *slog.Logger) *SitemapHandler {
	if contentStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("content store cannot be nil for SitemapHandler")
	}
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SitemapHandler")
	}

	return &SitemapHandler{
		contentStore: contentStore,
		baseURL:      strings.TrimRight(baseURL, "/"),
		logger:       log.With(slog.String("component", "sitemap_handler")),
	}
}

// GetSitemap handles GET /sitemap.xml requests. Entries cover every
// category listing page and every guide, in store order.
func (h *SitemapHandler) GetSitemap(w http.ResponseWriter, r *http.Request) {
	urlSet := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	for _, info := range domain.Categories() {
		urlSet.URLs = append(urlSet.URLs, sitemapURL{
			Loc: fmt.Sprintf("%s/categories/%s", h.baseURL, info.Slug),
		})
	}

	for _, g := range h.contentStore.ListGuides() {
		urlSet.URLs = append(urlSet.URLs, sitemapURL{
			Loc:     fmt.Sprintf("%s/guides/%s", h.baseURL, g.Slug),
			LastMod: g.UpdatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		h.logger.Error("failed to write sitemap header", "error", err)
		return
	}
	if err := xml.NewEncoder(w).Encode(urlSet); err != nil {
		h.logger.Error("failed to encode sitemap", "error", err)
	}
}
