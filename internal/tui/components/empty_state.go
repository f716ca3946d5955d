package components

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/emailpro/internal/tui/styles"
)

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	// Icon is an optional icon to display (e.g., "✉", "🔍").
	Icon string
	// Title is the main empty state message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions are keys the user can press.
	Suggestions []Suggestion
}

// Suggestion is a key with a short description.
type Suggestion struct {
	Key         string
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	var lines []string

	titleLine := e.Title
	if e.Icon != "" {
		titleLine = e.Icon + "  " + titleLine
	}
	lines = append(lines, styleSet.Title.Render(titleLine))

	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	if len(e.Suggestions) > 0 {
		lines = append(lines, "")
		for _, s := range e.Suggestions {
			line := fmt.Sprintf("  %s", styleSet.Accent.Render(s.Key))
			if s.Description != "" {
				line += styleSet.Muted.Render("  " + s.Description)
			}
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}

// EmptySelection is shown in the editor pane when no template is selected.
func EmptySelection() EmptyState {
	return EmptyState{
		Icon:     "✉",
		Title:    "Select a Template",
		Subtitle: "Choose an email template from the list to customize and preview it.",
		Suggestions: []Suggestion{
			{Key: "↑/↓", Description: "move"},
			{Key: "enter", Description: "select"},
			{Key: "/", Description: "search"},
		},
	}
}

// EmptySearch is shown when the search query matches nothing.
func EmptySearch(query string) EmptyState {
	return EmptyState{
		Icon:     "🔍",
		Title:    fmt.Sprintf("No templates match '%s'", query),
		Subtitle: "Press / to edit or clear the search.",
	}
}
