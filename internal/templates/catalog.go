package templates

import (
	"fmt"
	"strings"
)

// Catalog is an ordered, read-only set of templates.
type Catalog struct {
	templates []*Template
	byID      map[string]*Template
}

// NewCatalog builds a catalog preserving the given order.
// Template IDs must be unique.
func NewCatalog(templates []*Template) (*Catalog, error) {
	c := &Catalog{
		templates: make([]*Template, 0, len(templates)),
		byID:      make(map[string]*Template, len(templates)),
	}
	for _, tmpl := range templates {
		if tmpl == nil {
			continue
		}
		if _, exists := c.byID[tmpl.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate template id %q", ErrInvalidTemplate, tmpl.ID)
		}
		c.byID[tmpl.ID] = tmpl
		c.templates = append(c.templates, tmpl)
	}
	return c, nil
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.templates)
}

// All returns the templates in catalog order.
func (c *Catalog) All() []*Template {
	if c == nil {
		return nil
	}
	out := make([]*Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// Lookup returns the template with the given id.
func (c *Catalog) Lookup(id string) (*Template, bool) {
	if c == nil {
		return nil, false
	}
	tmpl, ok := c.byID[id]
	return tmpl, ok
}

// Get is like Lookup but returns ErrTemplateNotFound for unknown ids.
func (c *Catalog) Get(id string) (*Template, error) {
	tmpl, ok := c.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	return tmpl, nil
}

// Filter returns the catalog templates matching query. See Filter.
func (c *Catalog) Filter(query string) []*Template {
	if c == nil {
		return nil
	}
	return Filter(c.templates, query)
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, tmpl := range c.templates {
		if _, ok := seen[tmpl.Category]; ok {
			continue
		}
		seen[tmpl.Category] = struct{}{}
		categories = append(categories, tmpl.Category)
	}
	return categories
}

// Filter returns the templates whose title, description, or category contains
// query, ignoring case. An empty query matches everything. Order is preserved.
func Filter(templates []*Template, query string) []*Template {
	needle := strings.ToLower(query)
	result := make([]*Template, 0, len(templates))
	for _, tmpl := range templates {
		if tmpl == nil {
			continue
		}
		if needle == "" || matches(tmpl, needle) {
			result = append(result, tmpl)
		}
	}
	return result
}

func matches(tmpl *Template, needle string) bool {
	return strings.Contains(strings.ToLower(tmpl.Title), needle) ||
		strings.Contains(strings.ToLower(tmpl.Description), needle) ||
		strings.Contains(strings.ToLower(tmpl.Category), needle)
}
