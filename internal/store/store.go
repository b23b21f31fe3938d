package store

import (
	"fmt"

	"github.com/shifang52221/metrickit-content/internal/domain"
)

// ContentStore is the process-wide, read-only collection of all guides and
// category intro blocks. Construct it once with New and share it by
// reference; nothing mutates it afterwards, so concurrent reads need no
// synchronization. If the store ever needs hot reloading, build a fresh one
// and swap the pointer atomically.
type ContentStore struct {
	guides []domain.Guide
	bySlug map[string]int
	intros map[domain.Category][]domain.CategoryIntroBlock
}

// New builds a ContentStore from the authored corpus. Every guide and intro
// block is structurally validated and guide slugs are checked for
// uniqueness; any failure aborts construction. Content is compiled into the
// build, so a construction error is a fatal authoring defect, never a
// recoverable runtime condition.
func New(
	guides []domain.Guide,
	intros map[domain.Category][]domain.CategoryIntroBlock,
) (*ContentStore, error) {
	s := &ContentStore{
		guides: guides,
		bySlug: make(map[string]int, len(guides)),
		intros: make(map[domain.Category][]domain.CategoryIntroBlock, len(intros)),
	}

	for i := range guides {
		g := &guides[i]
		if err := g.Validate(); err != nil {
			return nil, NewStoreError("guide", "build", fmt.Sprintf("guide %q failed validation", g.Slug),
				fmt.Errorf("%w: %v", ErrInvalidEntity, err))
		}
		if _, exists := s.bySlug[g.Slug]; exists {
			return nil, NewStoreError("guide", "build", fmt.Sprintf("slug %q authored more than once", g.Slug),
				ErrDuplicateGuideSlug)
		}
		s.bySlug[g.Slug] = i
	}

	for category, blocks := range intros {
		if !category.Valid() {
			return nil, NewStoreError("intro block", "build",
				fmt.Sprintf("category %q is not a known category", category),
				fmt.Errorf("%w: %v", ErrInvalidEntity, domain.ErrInvalidCategory))
		}
		for i := range blocks {
			if err := blocks[i].Validate(); err != nil {
				return nil, NewStoreError("intro block", "build",
					fmt.Sprintf("category %q block %d failed validation", category, i),
					fmt.Errorf("%w: %v", ErrInvalidEntity, err))
			}
		}
		s.intros[category] = blocks
	}

	return s, nil
}

// ListGuides returns the full corpus in authored order. The returned slice
// is shared; callers must not mutate it or the guides it contains.
func (s *ContentStore) ListGuides() []domain.Guide {
	return s.guides
}

// GetGuide resolves a guide by slug with a case-sensitive exact match.
// A miss returns ErrGuideNotFound; it is the caller's 404, not a failure of
// the store. The returned guide is shared and must not be mutated.
func (s *ContentStore) GetGuide(slug string) (*domain.Guide, error) {
	i, ok := s.bySlug[slug]
	if !ok {
		return nil, ErrGuideNotFound
	}
	return &s.guides[i], nil
}

// GetCategoryIntroBlocks returns the ordered intro blocks authored for the
// category. A category with no authored intro content yields an empty
// slice; so does a value outside the closed category set. Neither case is
// an error.
func (s *ContentStore) GetCategoryIntroBlocks(c domain.Category) []domain.CategoryIntroBlock {
	blocks, ok := s.intros[c]
	if !ok {
		return []domain.CategoryIntroBlock{}
	}
	return blocks
}
