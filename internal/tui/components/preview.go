package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/emailpro/internal/templates"
	"github.com/opencode-ai/emailpro/internal/tui/styles"
)

// Preview displays a scrollable rendered email. Markers that are still
// unfilled are highlighted.
type Preview struct {
	Lines        []string
	ScrollOffset int
	Height       int
	Width        int

	unfilled []string
}

// NewPreview creates an empty preview.
func NewPreview() *Preview {
	return &Preview{Height: 16, Width: 60}
}

// SetContent replaces the previewed text. unfilled lists placeholder names
// whose markers remain in the text.
func (p *Preview) SetContent(content string, unfilled []string) {
	if content == "" {
		p.Lines = nil
	} else {
		p.Lines = strings.Split(content, "\n")
	}
	p.unfilled = unfilled
	p.clampScroll()
}

// ScrollUp scrolls the view up by n lines.
func (p *Preview) ScrollUp(n int) {
	p.ScrollOffset -= n
	p.clampScroll()
}

// ScrollDown scrolls the view down by n lines.
func (p *Preview) ScrollDown(n int) {
	p.ScrollOffset += n
	p.clampScroll()
}

// ScrollToTop scrolls to the top.
func (p *Preview) ScrollToTop() {
	p.ScrollOffset = 0
}

func (p *Preview) visibleLines() int {
	if p.Height <= 2 {
		return 1
	}
	return p.Height - 1 // footer
}

func (p *Preview) clampScroll() {
	maxOffset := len(p.Lines) - p.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.ScrollOffset > maxOffset {
		p.ScrollOffset = maxOffset
	}
	if p.ScrollOffset < 0 {
		p.ScrollOffset = 0
	}
}

// Render renders the visible window of the preview.
func (p *Preview) Render(styleSet styles.Styles) string {
	if len(p.Lines) == 0 {
		return styleSet.Muted.Render("Nothing to preview.")
	}

	visible := p.visibleLines()
	end := min(p.ScrollOffset+visible, len(p.Lines))

	highlighter := p.highlighter(styleSet)
	rendered := make([]string, 0, visible+1)
	for i := p.ScrollOffset; i < end; i++ {
		line := p.Lines[i]
		if p.Width > 0 && lipgloss.Width(line) > p.Width {
			line = truncate(line, p.Width)
		}
		rendered = append(rendered, highlighter(line))
	}

	if footer := p.scrollIndicator(styleSet); footer != "" {
		rendered = append(rendered, footer)
	}
	return strings.Join(rendered, "\n")
}

func (p *Preview) highlighter(styleSet styles.Styles) func(string) string {
	if len(p.unfilled) == 0 {
		return func(line string) string { return styleSet.Text.Render(line) }
	}
	pairs := make([]string, 0, len(p.unfilled)*2)
	for _, name := range p.unfilled {
		marker := templates.Marker(name)
		pairs = append(pairs, marker, styleSet.Warning.Render(marker))
	}
	replacer := strings.NewReplacer(pairs...)
	return func(line string) string {
		return replacer.Replace(line)
	}
}

func (p *Preview) scrollIndicator(styleSet styles.Styles) string {
	total := len(p.Lines)
	visible := p.visibleLines()
	if total <= visible {
		return ""
	}
	end := min(p.ScrollOffset+visible, total)
	return styleSet.Muted.Render(fmt.Sprintf("─── %d-%d of %d ───", p.ScrollOffset+1, end, total))
}
