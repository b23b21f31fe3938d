// Package catalog provides slug catalogs standing in for the external
// calculator registry and glossary. The content core only ever asks a
// catalog "does slug X exist"; for CI runs the slug sets are loaded from
// YAML fixture files exported from the owning systems.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is an immutable set of known slugs.
type Catalog struct {
	slugs map[string]struct{}
}

// New builds a catalog from a list of slugs. Duplicates collapse silently.
func New(slugs []string) *Catalog {
	c := &Catalog{slugs: make(map[string]struct{}, len(slugs))}
	for _, s := range slugs {
		c.slugs[s] = struct{}{}
	}
	return c
}

// Has reports whether the slug exists in the catalog.
func (c *Catalog) Has(slug string) bool {
	_, ok := c.slugs[slug]
	return ok
}

// Len returns the number of distinct slugs in the catalog.
func (c *Catalog) Len() int {
	return len(c.slugs)
}

// catalogFile is the on-disk fixture format:
//
//	slugs:
//	  - roas-calculator
//	  - roi-calculator
type catalogFile struct {
	Slugs []string `yaml:"slugs"`
}

// LoadFile reads a slug catalog from a YAML fixture file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file %s: %w", path, err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("error unmarshalling catalog file %s: %w", path, err)
	}
	for i, s := range f.Slugs {
		if s == "" {
			return nil, fmt.Errorf("catalog file %s: slug %d is empty", path, i)
		}
	}

	return New(f.Slugs), nil
}
