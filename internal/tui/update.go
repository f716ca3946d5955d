package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/emailpro/internal/selection"
	"github.com/opencode-ai/emailpro/internal/templates"
	"github.com/opencode-ai/emailpro/internal/tui/components"
)

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+y":
		return m.startCopy()
	case "ctrl+r":
		return m.reset(), nil
	case "pgup":
		m.preview.ScrollUp(m.preview.Height / 2)
		return m, nil
	case "pgdown":
		m.preview.ScrollDown(m.preview.Height / 2)
		return m, nil
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusForm:
		return m.handleFormKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
	case "/":
		m.focus = focusSearch
	case "up", "k":
		m.list.Move(-1)
	case "down", "j":
		m.list.Move(1)
	case "enter", " ":
		if tmpl := m.list.Current(); tmpl != nil {
			m = m.selectTemplate(tmpl)
		}
	case "tab":
		if m.selected() != nil {
			m.focus = focusForm
		}
	case "c":
		return m.startCopy()
	case "r":
		return m.reset(), nil
	case "esc":
		if m.list.Query != "" {
			m = m.clearSearch()
		} else {
			m.showHelp = false
		}
	}
	return m, nil
}

func (m model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc, tea.KeyTab:
		m.focus = focusList
	case tea.KeyUp:
		m.list.Move(-1)
	case tea.KeyDown:
		m.list.Move(1)
	case tea.KeyBackspace:
		m.list.Backspace()
	case tea.KeyCtrlU:
		m = m.clearSearch()
	case tea.KeySpace:
		m.list.AppendQuery(" ")
	case tea.KeyRunes:
		m.list.AppendQuery(string(msg.Runes))
	}
	return m, nil
}

// clearSearch empties the query and puts the cursor back on the active template.
func (m model) clearSearch() model {
	m.list.SetQuery("")
	m.list.FocusID(m.state.SelectedID)
	return m
}

func (m model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	field := m.form.Focused()

	switch msg.Type {
	case tea.KeyEsc:
		m.focus = focusList
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.form.Next()
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.form.Prev()
		return m, nil
	}

	if field == "" {
		return m, nil
	}

	value := m.state.Value(field)
	switch msg.Type {
	case tea.KeyEnter:
		if !templates.IsMultiline(field) {
			m.form.Next()
			return m, nil
		}
		value += "\n"
	case tea.KeyBackspace:
		if value == "" {
			return m, nil
		}
		runes := []rune(value)
		value = string(runes[:len(runes)-1])
	case tea.KeyCtrlU:
		value = ""
	case tea.KeySpace:
		value += " "
	case tea.KeyRunes:
		value += string(msg.Runes)
	default:
		return m, nil
	}

	m.state = selection.SetValue(m.state, field, value)
	m.syncPreview()
	return m, nil
}

func (m model) selectTemplate(tmpl *templates.Template) model {
	if tmpl.ID == m.state.SelectedID {
		m.focus = focusForm
		return m
	}
	m.state = selection.Select(m.state, tmpl.ID)
	m.form = components.NewPlaceholderForm(tmpl)
	m.focus = focusForm
	m.preview.ScrollToTop()
	m.syncPreview()
	m.logger.Debug().Str("template_id", tmpl.ID).Msg("template selected")
	return m
}

func (m model) reset() model {
	m.state = selection.Reset(m.state)
	m.form = components.NewPlaceholderForm(nil)
	m.focus = focusList
	m.syncPreview()
	return m
}

func (m model) startCopy() (tea.Model, tea.Cmd) {
	tmpl := m.selected()
	if tmpl == nil {
		return m, nil
	}
	text := templates.Render(tmpl, m.state.Values)
	unfilled := len(templates.Unfilled(tmpl, m.state.Values))

	m.state = selection.BeginCopy(m.state, tmpl.ID)
	return m, copyCmd(m.clipboard, m.sink, m.copyTimeout, tmpl.ID, text, unfilled)
}

func (m model) handleCopyResult(msg copyResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn().Err(msg.Err).Str("template_id", msg.TemplateID).Msg("copy failed")
		return m.showToast(components.CopyFailed())
	}

	state, token := selection.MarkCopied(m.state, msg.TemplateID)
	m.state = state

	next, toastCmd := m.showToast(components.CopySucceeded())
	return next, tea.Batch(clearCopiedCmd(msg.TemplateID, token), toastCmd)
}

func (m model) showToast(toast components.Toast) (model, tea.Cmd) {
	m.toastSeq++
	toast.ID = m.toastSeq
	toast.ExpiresAt = m.now().Add(m.toastDuration)
	m.toast = &toast
	return m, toastExpiryCmd(toast.ID, m.toastDuration)
}
