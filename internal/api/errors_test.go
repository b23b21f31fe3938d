package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shifang52221/metrickit-content/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "guide not found",
			err:      store.ErrGuideNotFound,
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped not found",
			err:      fmt.Errorf("lookup failed: %w", store.ErrNotFound),
			expected: http.StatusNotFound,
		},
		{
			name:     "invalid entity",
			err:      store.ErrInvalidEntity,
			expected: http.StatusBadRequest,
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Guide not found", GetSafeErrorMessage(store.ErrGuideNotFound))
	assert.Equal(t, "Resource not found", GetSafeErrorMessage(store.ErrNotFound))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(errors.New("internal detail")))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))

	// Internal detail never leaks into the safe message.
	leaky := fmt.Errorf("connection to 10.0.0.5 refused: %w", errors.New("dial tcp"))
	assert.NotContains(t, GetSafeErrorMessage(leaky), "10.0.0.5")
}
