package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/emailpro/internal/selection"
	"github.com/opencode-ai/emailpro/internal/tui/components"
)

const (
	wideLayoutWidth = 100
	listPaneWidth   = 42
	panelBorder     = 2
)

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", joinLines(m.smallViewLines()))
		}
	}

	lines := []string{
		m.styles.Title.Render("Professional Email Templates"),
		m.styles.Muted.Render(fmt.Sprintf("%d templates for everyday professional situations", m.catalog.Len())),
		"",
	}

	var body string
	if m.wide() {
		list := m.styles.Panel.Width(listPaneWidth).Render(joinLines(m.listPaneLines(listPaneWidth - 4)))
		editor := m.styles.Panel.Width(m.editorWidth()).Render(joinLines(m.editorPaneLines(m.editorWidth() - 4)))
		body = lipgloss.JoinHorizontal(lipgloss.Top, list, " ", editor)
	} else {
		list := m.styles.Panel.Width(m.editorWidth()).Render(joinLines(m.listPaneLines(m.editorWidth() - 4)))
		editor := m.styles.Panel.Width(m.editorWidth()).Render(joinLines(m.editorPaneLines(m.editorWidth() - 4)))
		body = lipgloss.JoinVertical(lipgloss.Left, list, editor)
	}
	lines = append(lines, body)

	if m.toast != nil && !m.toast.Expired(m.now()) {
		lines = append(lines, "", m.toast.Render(m.styles))
	}

	if m.showHelp {
		lines = append(lines, "")
		lines = append(lines, m.helpLines()...)
	}

	lines = append(lines, "", m.styles.Muted.Render(m.shortcutLine()))

	return fmt.Sprintf("%s\n", joinLines(lines))
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

func (m model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width - 2
}

func (m model) wide() bool {
	return m.contentWidth() >= wideLayoutWidth
}

// editorWidth is the width of the editor pane, excluding its border.
func (m model) editorWidth() int {
	if m.wide() {
		return m.contentWidth() - listPaneWidth - 1 - 2*panelBorder
	}
	return m.contentWidth() - panelBorder
}

func (m model) listPaneLines(width int) []string {
	lines := []string{
		components.RenderSearch(m.styles, m.list.Query, m.focus == focusSearch, width),
	}
	if badges := components.RenderCategoryBadges(m.styles, m.catalog.Categories(), width); len(badges) > 0 {
		lines = append(lines, badges...)
	}
	lines = append(lines, "")
	lines = append(lines, m.list.Render(m.styles, width, m.state.SelectedID, m.focus != focusForm)...)
	return lines
}

func (m model) editorPaneLines(width int) []string {
	tmpl := m.selected()
	if tmpl == nil {
		return strings.Split(components.EmptySelection().Render(m.styles), "\n")
	}

	button := components.RenderCopyButton(m.styles, selection.IsCopied(m.state, tmpl.ID))
	title := m.styles.Title.Render(tmpl.Title)
	gap := max(width-lipgloss.Width(title)-lipgloss.Width(button), 1)

	lines := []string{
		title + strings.Repeat(" ", gap) + button,
		m.styles.Muted.Render(tmpl.Description),
		"",
	}
	lines = append(lines, m.form.Render(m.styles, m.state.Values, width, m.focus == focusForm)...)
	lines = append(lines, "", m.styles.Accent.Render("Email Preview"))
	lines = append(lines, m.styles.Preview.Width(max(width-2, 10)).Render(m.preview.Render(m.styles)))
	return lines
}

func (m model) helpLines() []string {
	entries := []struct{ key, desc string }{
		{"/", "search templates"},
		{"↑/↓ j/k", "move through the list"},
		{"enter", "select template, or newline in long fields"},
		{"tab / shift+tab", "next / previous field"},
		{"ctrl+y", "copy the rendered email"},
		{"ctrl+r", "reset the selection"},
		{"pgup/pgdown", "scroll the preview"},
		{"esc", "back to the list"},
		{"q / ctrl+c", "quit"},
	}
	lines := []string{m.styles.Accent.Render("Keys")}
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("  %s  %s", m.styles.Focus.Render(fmt.Sprintf("%-16s", entry.key)), m.styles.Muted.Render(entry.desc)))
	}
	return lines
}

func (m model) shortcutLine() string {
	switch m.focus {
	case focusSearch:
		return "Shortcuts: type to filter | enter done | ctrl+u clear | esc back"
	case focusForm:
		return "Shortcuts: tab next field | ctrl+y copy | ctrl+r reset | esc list | ctrl+c quit"
	default:
		return "Shortcuts: q quit | ? help | / search | enter select | ctrl+y copy | ctrl+r reset"
	}
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
