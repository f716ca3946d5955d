// Package templates provides the email template catalog, loading, and rendering.
package templates

import (
	"errors"
	"fmt"
	"strings"
)

// Template errors.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidTemplate  = errors.New("invalid template")
)

// Template represents a single email template.
type Template struct {
	ID           string   `yaml:"id" json:"id"`
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Category     string   `yaml:"category" json:"category"`
	Body         string   `yaml:"body" json:"body"`
	Placeholders []string `yaml:"placeholders,omitempty" json:"placeholders"`
	Source       string   `yaml:"-" json:"source"` // file path or "builtin"
}

// Marker returns the bracketed marker for a placeholder name.
func Marker(name string) string {
	return "[" + name + "]"
}

// Validate checks required fields and that every declared placeholder
// appears in the body.
func (t *Template) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: template is required", ErrInvalidTemplate)
	}
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidTemplate)
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: template %q: title is required", ErrInvalidTemplate, t.ID)
	}
	if t.Body == "" {
		return fmt.Errorf("%w: template %q: body is required", ErrInvalidTemplate, t.ID)
	}

	seen := make(map[string]struct{}, len(t.Placeholders))
	for _, name := range t.Placeholders {
		if name == "" {
			return fmt.Errorf("%w: template %q: empty placeholder name", ErrInvalidTemplate, t.ID)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: template %q: duplicate placeholder %q", ErrInvalidTemplate, t.ID, name)
		}
		seen[name] = struct{}{}
		if !strings.Contains(t.Body, Marker(name)) {
			return fmt.Errorf("%w: template %q: placeholder %q not found in body", ErrInvalidTemplate, t.ID, name)
		}
	}
	return nil
}
