package components

import (
	"strings"

	"github.com/opencode-ai/emailpro/internal/templates"
	"github.com/opencode-ai/emailpro/internal/tui/styles"
)

// PlaceholderForm tracks which placeholder field has focus.
type PlaceholderForm struct {
	Fields []string
	Focus  int
}

// NewPlaceholderForm creates a form for the template's placeholders.
func NewPlaceholderForm(tmpl *templates.Template) *PlaceholderForm {
	form := &PlaceholderForm{}
	if tmpl != nil {
		form.Fields = append([]string(nil), tmpl.Placeholders...)
	}
	return form
}

// Focused returns the focused field name, or "" for an empty form.
func (f *PlaceholderForm) Focused() string {
	if f == nil || len(f.Fields) == 0 {
		return ""
	}
	if f.Focus < 0 || f.Focus >= len(f.Fields) {
		return ""
	}
	return f.Fields[f.Focus]
}

// Next moves focus to the next field, wrapping.
func (f *PlaceholderForm) Next() {
	f.shift(1)
}

// Prev moves focus to the previous field, wrapping.
func (f *PlaceholderForm) Prev() {
	f.shift(-1)
}

func (f *PlaceholderForm) shift(delta int) {
	if f == nil || len(f.Fields) == 0 {
		return
	}
	f.Focus = (f.Focus + delta + len(f.Fields)) % len(f.Fields)
}

// Render renders one labelled input per placeholder. Multi-line fields keep
// their line breaks; empty fields show an input hint.
func (f *PlaceholderForm) Render(styleSet styles.Styles, values map[string]string, width int, focused bool) []string {
	if f == nil || len(f.Fields) == 0 {
		return []string{styleSet.Muted.Render("This template has no placeholders.")}
	}

	inputWidth := max(width-2, 10)
	lines := make([]string, 0, len(f.Fields)*4)
	for idx, name := range f.Fields {
		active := focused && idx == f.Focus

		label := styleSet.Muted.Render(name)
		if active {
			label = styleSet.Focus.Render(name)
		}
		lines = append(lines, label)

		value := values[name]
		var body string
		if value == "" {
			body = styleSet.Muted.Render(templates.InputHint(name))
		} else {
			body = styleSet.Text.Render(value)
		}
		if active {
			body += styleSet.Focus.Render("▏")
		}

		box := styleSet.Input.Width(inputWidth)
		if templates.IsMultiline(name) {
			box = box.Height(max(2, strings.Count(value, "\n")+1))
		}
		if active {
			box = box.BorderForeground(styleSet.Focus.GetForeground())
		}
		lines = append(lines, strings.Split(box.Render(body), "\n")...)
	}
	return lines
}
