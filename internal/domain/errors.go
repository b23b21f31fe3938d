package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a content entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCategory is returned when a category is not part of the
	// closed category set.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrEmptySlug is returned when a slug that must be present is empty.
	ErrEmptySlug = errors.New("slug cannot be empty")

	// ErrEmptyContent is returned when required content is empty.
	ErrEmptyContent = errors.New("content cannot be empty")
)
