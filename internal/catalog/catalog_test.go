package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndHas(t *testing.T) {
	t.Parallel()

	c := New([]string{"roas-calculator", "roi-calculator", "roas-calculator"})
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Has("roas-calculator"))
	assert.True(t, c.Has("roi-calculator"))
	assert.False(t, c.Has("made-up-calculator"))
	assert.False(t, c.Has(""))
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "calculators.yaml")
	content := "slugs:\n  - roas-calculator\n  - cac-calculator\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Has("cac-calculator"))
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading catalog file")
}

func TestLoadFileMalformedYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slugs: [unclosed"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error unmarshalling catalog file")
}

func TestLoadFileRejectsEmptySlug(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty-slug.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slugs:\n  - roas-calculator\n  - \"\"\n"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slug 1 is empty")
}
