// Package catalog exposes the static reference data used for tender posting and filter facets.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var rawCatalog []byte

// Catalog lists the known states, categories and tender types.
type Catalog struct {
	States           []string `yaml:"states"`
	UnionTerritories []string `yaml:"union_territories"`
	Categories       []string `yaml:"categories"`
	TenderTypes      []string `yaml:"tender_types"`

	states      map[string]string
	categories  map[string]string
	tenderTypes map[string]string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog, parsed once.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(rawCatalog)
	})
	return defaultCatalog, defaultErr
}

// MustDefault is Default for callers that cannot proceed without reference data.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.States) == 0 || len(c.Categories) == 0 {
		return nil, fmt.Errorf("parse catalog: states and categories are required")
	}
	c.states = index(c.Regions())
	c.categories = index(c.Categories)
	c.tenderTypes = index(c.TenderTypes)
	return &c, nil
}

// Regions returns states followed by union territories.
func (c *Catalog) Regions() []string {
	out := make([]string, 0, len(c.States)+len(c.UnionTerritories))
	out = append(out, c.States...)
	return append(out, c.UnionTerritories...)
}

// CanonicalState resolves a state or union territory name case-insensitively.
func (c *Catalog) CanonicalState(name string) (string, bool) {
	v, ok := c.states[key(name)]
	return v, ok
}

// CanonicalCategory resolves a category name case-insensitively.
func (c *Catalog) CanonicalCategory(name string) (string, bool) {
	v, ok := c.categories[key(name)]
	return v, ok
}

// CanonicalTenderType resolves a tender type case-insensitively.
func (c *Catalog) CanonicalTenderType(name string) (string, bool) {
	v, ok := c.tenderTypes[key(name)]
	return v, ok
}

func index(values []string) map[string]string {
	m := make(map[string]string, len(values))
	for _, v := range values {
		m[key(v)] = v
	}
	return m
}

func key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
