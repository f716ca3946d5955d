// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/emailpro/internal/templates"
	"github.com/opencode-ai/emailpro/internal/tui/styles"
)

// TemplateList stores the search query and cursor for the template list.
type TemplateList struct {
	Query string
	Index int

	catalog *templates.Catalog
}

// NewTemplateList creates a list over catalog.
func NewTemplateList(catalog *templates.Catalog) *TemplateList {
	return &TemplateList{catalog: catalog}
}

// Visible returns the templates matching the current query, in catalog order.
func (l *TemplateList) Visible() []*templates.Template {
	return l.catalog.Filter(l.Query)
}

// SetQuery updates the search query and resets the cursor.
func (l *TemplateList) SetQuery(query string) {
	l.Query = query
	l.Index = 0
	l.ClampIndex()
}

// AppendQuery adds typed text to the query.
func (l *TemplateList) AppendQuery(text string) {
	l.SetQuery(l.Query + text)
}

// Backspace removes the last rune of the query.
func (l *TemplateList) Backspace() {
	if l.Query == "" {
		return
	}
	runes := []rune(l.Query)
	l.SetQuery(string(runes[:len(runes)-1]))
}

// Move shifts the cursor, wrapping at either end.
func (l *TemplateList) Move(delta int) {
	items := l.Visible()
	if len(items) == 0 {
		l.Index = 0
		return
	}
	if delta == 0 {
		return
	}
	idx := l.Index
	if idx < 0 || idx >= len(items) {
		idx = 0
	}
	idx += delta
	if idx < 0 {
		idx = len(items) - 1
	} else if idx >= len(items) {
		idx = 0
	}
	l.Index = idx
}

// ClampIndex keeps the cursor in bounds.
func (l *TemplateList) ClampIndex() {
	items := l.Visible()
	if len(items) == 0 {
		l.Index = 0
		return
	}
	if l.Index < 0 {
		l.Index = 0
	}
	if l.Index >= len(items) {
		l.Index = len(items) - 1
	}
}

// Current returns the template under the cursor.
func (l *TemplateList) Current() *templates.Template {
	items := l.Visible()
	if l.Index < 0 || l.Index >= len(items) {
		return nil
	}
	return items[l.Index]
}

// FocusID moves the cursor to the template with the given id if it is visible.
func (l *TemplateList) FocusID(id string) {
	for idx, tmpl := range l.Visible() {
		if tmpl.ID == id {
			l.Index = idx
			return
		}
	}
}

// Render renders the list. selectedID marks the active template; focused
// controls whether the cursor is highlighted.
func (l *TemplateList) Render(styleSet styles.Styles, width int, selectedID string, focused bool) []string {
	items := l.Visible()
	if len(items) == 0 {
		return strings.Split(EmptySearch(l.Query).Render(styleSet), "\n")
	}

	lines := make([]string, 0, len(items)*2)
	for idx, tmpl := range items {
		marker := "  "
		if tmpl.ID == selectedID {
			marker = "● "
		}

		badge := styleSet.Badge.Render(tmpl.Category)
		titleWidth := width - lipgloss.Width(badge) - lipgloss.Width(marker) - 1
		title := truncate(tmpl.Title, titleWidth)
		desc := truncate(tmpl.Description, width-4)

		titleStyle := styleSet.Text
		switch {
		case focused && idx == l.Index:
			titleStyle = styleSet.Focus
			marker = "> "
		case tmpl.ID == selectedID:
			titleStyle = styleSet.Selected
		}

		gap := width - lipgloss.Width(marker) - lipgloss.Width(title) - lipgloss.Width(badge)
		if gap < 1 {
			gap = 1
		}
		lines = append(lines, fmt.Sprintf("%s%s%s%s", marker, titleStyle.Render(title), strings.Repeat(" ", gap), badge))
		lines = append(lines, styleSet.Muted.Render("    "+desc))
	}
	return lines
}

// RenderSearch renders the search box line.
func RenderSearch(styleSet styles.Styles, query string, focused bool, width int) string {
	label := "Search templates..."
	text := styleSet.Muted.Render(label)
	if query != "" {
		text = styleSet.Text.Render(query)
	}
	prefix := styleSet.Muted.Render("/ ")
	if focused {
		prefix = styleSet.Focus.Render("/ ")
		text += styleSet.Focus.Render("▏")
	}
	return styleSet.Input.Width(max(width-2, 10)).Render(prefix + text)
}

func truncate(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
