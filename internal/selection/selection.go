// Package selection holds the browser's selection state and the pure
// transitions applied to it in response to user input.
package selection

import (
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/opencode-ai/emailpro/internal/templates"
)

// CopiedFlagDuration is how long a template stays flagged as copied.
const CopiedFlagDuration = 2 * time.Second

// State is the complete selection state. Transitions never mutate their
// input; they return a new State.
type State struct {
	// SelectedID is the active template id, or "" when nothing is selected.
	SelectedID string
	// Values maps placeholder names to the text entered for them.
	Values map[string]string
	// Copied maps template ids to the token of their latest successful copy.
	Copied map[string]uuid.UUID
}

// New returns an empty state.
func New() State {
	return State{
		Values: map[string]string{},
		Copied: map[string]uuid.UUID{},
	}
}

// HasSelection reports whether a template is selected.
func (s State) HasSelection() bool {
	return s.SelectedID != ""
}

// Value returns the text entered for a placeholder.
func (s State) Value(name string) string {
	return s.Values[name]
}

// Select makes id the active template and discards all entered values.
// Selecting the template that is already active changes nothing.
func Select(s State, id string) State {
	if id == s.SelectedID {
		return s
	}
	next := s.clone()
	next.SelectedID = id
	next.Values = map[string]string{}
	return next
}

// SetValue records the text entered for one placeholder.
func SetValue(s State, name, value string) State {
	next := s.clone()
	next.Values[name] = value
	return next
}

// Reset clears the selection and all entered values.
func Reset(s State) State {
	next := s.clone()
	next.SelectedID = ""
	next.Values = map[string]string{}
	return next
}

// BeginCopy clears the copied flag for id ahead of a new copy attempt.
func BeginCopy(s State, id string) State {
	if _, ok := s.Copied[id]; !ok {
		return s
	}
	next := s.clone()
	delete(next.Copied, id)
	return next
}

// MarkCopied flags id as copied and returns the token that must be passed to
// ClearCopied to remove this flag.
func MarkCopied(s State, id string) (State, uuid.UUID) {
	token := uuid.New()
	next := s.clone()
	next.Copied[id] = token
	return next, token
}

// ClearCopied removes the copied flag for id if token still identifies the
// latest copy. Tokens from superseded copies are ignored.
func ClearCopied(s State, id string, token uuid.UUID) State {
	current, ok := s.Copied[id]
	if !ok || current != token {
		return s
	}
	next := s.clone()
	delete(next.Copied, id)
	return next
}

// IsCopied reports whether id is currently flagged as copied.
func IsCopied(s State, id string) bool {
	_, ok := s.Copied[id]
	return ok
}

// Selected resolves the active template against catalog.
func Selected(s State, catalog *templates.Catalog) (*templates.Template, bool) {
	if !s.HasSelection() {
		return nil, false
	}
	return catalog.Lookup(s.SelectedID)
}

// Preview renders the active template with the entered values.
// It returns "" when nothing is selected.
func Preview(s State, catalog *templates.Catalog) string {
	tmpl, ok := Selected(s, catalog)
	if !ok {
		return ""
	}
	return templates.Render(tmpl, s.Values)
}

func (s State) clone() State {
	next := State{
		SelectedID: s.SelectedID,
		Values:     maps.Clone(s.Values),
		Copied:     maps.Clone(s.Copied),
	}
	if next.Values == nil {
		next.Values = map[string]string{}
	}
	if next.Copied == nil {
		next.Copied = map[string]uuid.UUID{}
	}
	return next
}
