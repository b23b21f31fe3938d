package api

import "github.com/shifang52221/metrickit-content/internal/domain"

// GuideSummary is the listing-page projection of a guide: identity and
// display metadata without the section payload.
type GuideSummary struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	UpdatedAt   string `json:"updatedAt"`
}

// GuideListResponse wraps the guide listing.
type GuideListResponse struct {
	Guides []GuideSummary `json:"guides"`
	Total  int            `json:"total"`
}

// GuideResponse is the full guide document as served to renderers.
type GuideResponse struct {
	Slug        string           `json:"slug"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	UpdatedAt   string           `json:"updatedAt"`
	SEO         *domain.SEO      `json:"seo,omitempty"`
	Sections    []domain.Section `json:"sections"`
	FAQs        []domain.FAQ     `json:"faqs,omitempty"`
	Examples    []domain.Example `json:"examples,omitempty"`

	RelatedCalculatorSlugs []string `json:"relatedCalculatorSlugs"`
	RelatedGlossarySlugs   []string `json:"relatedGlossarySlugs,omitempty"`
}

// CategoryResponse describes one category of the closed set.
type CategoryResponse struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CategoryIntroResponse wraps the intro blocks of one category.
type CategoryIntroResponse struct {
	Category string                      `json:"category"`
	Blocks   []domain.CategoryIntroBlock `json:"blocks"`
}

// guideToSummary transforms a domain guide into its listing projection.
func guideToSummary(g *domain.Guide) GuideSummary {
	return GuideSummary{
		Slug:        g.Slug,
		Title:       g.Title,
		Description: g.Description,
		Category:    string(g.Category),
		UpdatedAt:   g.UpdatedAt,
	}
}

// guideToResponse transforms a domain guide into the full response document.
func guideToResponse(g *domain.Guide) GuideResponse {
	return GuideResponse{
		Slug:                   g.Slug,
		Title:                  g.Title,
		Description:            g.Description,
		Category:               string(g.Category),
		UpdatedAt:              g.UpdatedAt,
		SEO:                    g.SEO,
		Sections:               g.Sections,
		FAQs:                   g.FAQs,
		Examples:               g.Examples,
		RelatedCalculatorSlugs: g.RelatedCalculatorSlugs,
		RelatedGlossarySlugs:   g.RelatedGlossarySlugs,
	}
}
