package domain

import (
	"errors"
	"fmt"
)

// Guide-specific validation errors
var (
	// ErrGuideSlugEmpty is returned when a guide's slug is empty.
	ErrGuideSlugEmpty = errors.New("guide slug cannot be empty")

	// ErrGuideTitleEmpty is returned when a guide's title is empty.
	ErrGuideTitleEmpty = errors.New("guide title cannot be empty")

	// ErrGuideCategoryInvalid is returned when a guide's category is not in
	// the closed category set.
	ErrGuideCategoryInvalid = errors.New("guide category is not a known category")

	// ErrGuideSectionsEmpty is returned when a guide has no sections.
	ErrGuideSectionsEmpty = errors.New("guide must have at least one section")

	// ErrCalculatorSlugEmpty is returned when a calculator reference slug is empty.
	ErrCalculatorSlugEmpty = errors.New("calculator slug cannot be empty")

	// ErrGlossarySlugEmpty is returned when a glossary reference slug is empty.
	ErrGlossarySlugEmpty = errors.New("glossary slug cannot be empty")

	// ErrExampleLabelEmpty is returned when an example has no label.
	ErrExampleLabelEmpty = errors.New("example label cannot be empty")

	// ErrFAQIncomplete is returned when a FAQ is missing its question or answer.
	ErrFAQIncomplete = errors.New("faq must have both question and answer")
)

// SEO is an optional per-guide override of the page metadata. The content
// core treats it as opaque display data.
type SEO struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// FAQ is one question/answer pair shown at the end of a guide.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Example links a guide to a calculator with pre-filled inputs. Params maps
// calculator input names to string values; the calculator catalog owns the
// meaning of the keys.
type Example struct {
	Label          string            `json:"label"`
	CalculatorSlug string            `json:"calculatorSlug"`
	Params         map[string]string `json:"params"`
	Note           string            `json:"note,omitempty"`
}

// Guide is the primary content entity: a structured explainer document for a
// calculator topic. Slug is the stable identifier and URL segment; it is
// unique across the whole corpus. Related slugs reference the external
// calculator and glossary catalogs by convention and are checked by the
// integrity validator, not by the type system.
type Guide struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`

	// UpdatedAt is an ISO date string. The core stores it verbatim and does
	// not parse it.
	UpdatedAt string `json:"updatedAt"`

	SEO *SEO `json:"seo,omitempty"`

	RelatedCalculatorSlugs []string `json:"relatedCalculatorSlugs"`
	RelatedGlossarySlugs   []string `json:"relatedGlossarySlugs,omitempty"`

	Sections []Section `json:"sections"`
	FAQs     []FAQ     `json:"faqs,omitempty"`
	Examples []Example `json:"examples,omitempty"`
}

// Validate checks the structural invariants of the guide and everything it
// contains. It does not check cross-catalog references; that is the
// integrity validator's job.
func (g *Guide) Validate() error {
	if g.Slug == "" {
		return ErrGuideSlugEmpty
	}
	if g.Title == "" {
		return ErrGuideTitleEmpty
	}
	if !g.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrGuideCategoryInvalid, g.Category)
	}
	if len(g.Sections) == 0 {
		return ErrGuideSectionsEmpty
	}

	for i := range g.Sections {
		if err := g.Sections[i].Validate(); err != nil {
			return fmt.Errorf("guide %q section %d: %w", g.Slug, i, err)
		}
	}

	for i, slug := range g.RelatedCalculatorSlugs {
		if slug == "" {
			return fmt.Errorf("guide %q relatedCalculatorSlugs[%d]: %w", g.Slug, i, ErrCalculatorSlugEmpty)
		}
	}
	for i, slug := range g.RelatedGlossarySlugs {
		if slug == "" {
			return fmt.Errorf("guide %q relatedGlossarySlugs[%d]: %w", g.Slug, i, ErrGlossarySlugEmpty)
		}
	}

	for i, faq := range g.FAQs {
		if faq.Question == "" || faq.Answer == "" {
			return fmt.Errorf("guide %q faqs[%d]: %w", g.Slug, i, ErrFAQIncomplete)
		}
	}

	for i, ex := range g.Examples {
		if ex.Label == "" {
			return fmt.Errorf("guide %q examples[%d]: %w", g.Slug, i, ErrExampleLabelEmpty)
		}
		if ex.CalculatorSlug == "" {
			return fmt.Errorf("guide %q examples[%d]: %w", g.Slug, i, ErrCalculatorSlugEmpty)
		}
	}

	return nil
}
