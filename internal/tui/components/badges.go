package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/emailpro/internal/tui/styles"
)

// RenderCategoryBadges lays out category badges, wrapping at width.
func RenderCategoryBadges(styleSet styles.Styles, categories []string, width int) []string {
	if len(categories) == 0 {
		return nil
	}

	var (
		lines   []string
		current []string
		used    int
	)
	for _, category := range categories {
		badge := styleSet.Badge.Render(category)
		w := lipgloss.Width(badge)
		if len(current) > 0 && width > 0 && used+1+w > width {
			lines = append(lines, strings.Join(current, " "))
			current = nil
			used = 0
		}
		if len(current) > 0 {
			used++
		}
		current = append(current, badge)
		used += w
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

// RenderCopyButton renders the copy button label.
func RenderCopyButton(styleSet styles.Styles, copied bool) string {
	if copied {
		return styleSet.Button.Render("✓ Copied!")
	}
	return styleSet.Button.Render("⧉ Copy")
}
