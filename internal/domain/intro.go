package domain

import "errors"

// Intro-specific validation errors
var (
	// ErrIntroTitleEmpty is returned when an intro block has no title.
	ErrIntroTitleEmpty = errors.New("intro block title cannot be empty")

	// ErrIntroParagraphsEmpty is returned when an intro block has no paragraphs.
	ErrIntroParagraphsEmpty = errors.New("intro block must have at least one paragraph")
)

// CategoryIntroBlock is one block of introductory copy shown at the top of a
// category listing page. A category may have zero, one, or many blocks;
// their order is significant.
type CategoryIntroBlock struct {
	Title      string   `json:"title"`
	Paragraphs []string `json:"paragraphs"`
	Bullets    []string `json:"bullets,omitempty"`
}

// Validate checks the structural invariants of the intro block.
func (b *CategoryIntroBlock) Validate() error {
	if b.Title == "" {
		return ErrIntroTitleEmpty
	}
	if len(b.Paragraphs) == 0 {
		return ErrIntroParagraphsEmpty
	}
	for _, p := range b.Paragraphs {
		if p == "" {
			return ErrEmptyContent
		}
	}
	return nil
}
