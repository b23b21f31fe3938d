package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shifang52221/metrickit-content/internal/content"
	"github.com/shifang52221/metrickit-content/internal/store"
)

// The production corpus must always construct a valid store: unique slugs,
// well-formed sections, table rows matching their columns. A failure here
// is an authoring defect that would crash the server at startup.
func TestProductionCorpusBuilds(t *testing.T) {
	t.Parallel()

	s, err := store.New(content.Guides(), content.CategoryIntros())
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.NotEmpty(t, s.ListGuides())
}

func TestProductionGuideSlugsAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, g := range content.Guides() {
		assert.Falsef(t, seen[g.Slug], "slug %q authored more than once", g.Slug)
		seen[g.Slug] = true
	}
}

func TestProductionGuidesValidateIndividually(t *testing.T) {
	t.Parallel()

	for _, g := range content.Guides() {
		g := g
		t.Run(g.Slug, func(t *testing.T) {
			t.Parallel()
			assert.NoError(t, g.Validate())
		})
	}
}

func TestEveryCategoryHasGuides(t *testing.T) {
	t.Parallel()

	counts := make(map[string]int)
	for _, g := range content.Guides() {
		counts[string(g.Category)]++
	}
	for cat, n := range counts {
		assert.Greaterf(t, n, 0, "category %s has no guides", cat)
	}
	assert.Contains(t, counts, "saas-metrics")
	assert.Contains(t, counts, "paid-ads")
	assert.Contains(t, counts, "finance")
}
