// Package catalog provides the static career catalog and the wizard option lists.
// The catalog is embedded at build time and validated against a JSON Schema on load.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/types"
)

//go:embed catalog.json
var catalogJSON string

//go:embed catalog.schema.json
var catalogSchema string

// Catalog is the fixed set of career templates known to the system.
// Iteration order is definition order; the catalog is never mutated after load.
type Catalog struct {
	templates []types.CareerTemplate
	byTitle   map[string]int
}

// Load parses and validates the embedded career catalog.
func Load() (*Catalog, error) {
	if err := schemas.ValidateJSONString(catalogSchema, catalogJSON); err != nil {
		return nil, fmt.Errorf("career catalog failed schema validation: %w", err)
	}

	var templates []types.CareerTemplate
	if err := json.Unmarshal([]byte(catalogJSON), &templates); err != nil {
		return nil, fmt.Errorf("failed to parse career catalog: %w", err)
	}

	byTitle := make(map[string]int, len(templates))
	for i, tmpl := range templates {
		if _, exists := byTitle[tmpl.Title]; exists {
			return nil, fmt.Errorf("duplicate career title in catalog: %s", tmpl.Title)
		}
		byTitle[tmpl.Title] = i
	}

	return &Catalog{templates: templates, byTitle: byTitle}, nil
}

// Templates returns all catalog entries in definition order.
// The returned slice is a copy; callers may reorder it freely.
func (c *Catalog) Templates() []types.CareerTemplate {
	out := make([]types.CareerTemplate, len(c.templates))
	copy(out, c.templates)
	return out
}

// Lookup returns the template for a career title, if it exists in the catalog
func (c *Catalog) Lookup(title string) (types.CareerTemplate, bool) {
	idx, ok := c.byTitle[title]
	if !ok {
		return types.CareerTemplate{}, false
	}
	return c.templates[idx], true
}

// Len returns the number of catalog entries
func (c *Catalog) Len() int {
	return len(c.templates)
}
