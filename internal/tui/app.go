// Package tui implements the emailpro terminal user interface.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/emailpro/internal/clipboard"
	"github.com/opencode-ai/emailpro/internal/events"
	"github.com/opencode-ai/emailpro/internal/selection"
	"github.com/opencode-ai/emailpro/internal/templates"
	"github.com/opencode-ai/emailpro/internal/tui/components"
	"github.com/opencode-ai/emailpro/internal/tui/styles"
)

// Config holds the TUI dependencies.
type Config struct {
	Catalog       *templates.Catalog
	Clipboard     clipboard.Writer
	Events        events.Sink
	Theme         string
	ToastDuration time.Duration
	CopyTimeout   time.Duration
	Logger        zerolog.Logger
}

const (
	minWidth  = 60
	minHeight = 15

	defaultToastDuration = 3 * time.Second
	defaultCopyTimeout   = 2 * time.Second
)

// Run launches the TUI program.
func Run(cfg Config) error {
	program := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type focusArea int

const (
	focusList focusArea = iota
	focusSearch
	focusForm
)

type model struct {
	width  int
	height int
	styles styles.Styles

	catalog *templates.Catalog
	state   selection.State

	list    *components.TemplateList
	form    *components.PlaceholderForm
	preview *components.Preview
	focus   focusArea

	showHelp bool
	toast    *components.Toast
	toastSeq int

	clipboard     clipboard.Writer
	sink          events.Sink
	toastDuration time.Duration
	copyTimeout   time.Duration
	logger        zerolog.Logger
	now           func() time.Time
}

func newModel(cfg Config) model {
	styleSet, ok := styles.ForTheme(cfg.Theme)
	if !ok && cfg.Theme != "" {
		cfg.Logger.Warn().Str("theme", cfg.Theme).Msg("unknown theme, using default")
	}

	toastDuration := cfg.ToastDuration
	if toastDuration <= 0 {
		toastDuration = defaultToastDuration
	}
	copyTimeout := cfg.CopyTimeout
	if copyTimeout <= 0 {
		copyTimeout = defaultCopyTimeout
	}

	sink := cfg.Events
	if sink == nil {
		sink = events.NewLogSink(cfg.Logger)
	}

	return model{
		styles:        styleSet,
		catalog:       cfg.Catalog,
		state:         selection.New(),
		list:          components.NewTemplateList(cfg.Catalog),
		form:          components.NewPlaceholderForm(nil),
		preview:       components.NewPreview(),
		focus:         focusList,
		clipboard:     cfg.Clipboard,
		sink:          sink,
		toastDuration: toastDuration,
		copyTimeout:   copyTimeout,
		logger:        cfg.Logger,
		now:           time.Now,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPreview()
	case copyResultMsg:
		return m.handleCopyResult(msg)
	case clearCopiedMsg:
		m.state = selection.ClearCopied(m.state, msg.TemplateID, msg.Token)
	case toastExpiredMsg:
		if m.toast != nil && m.toast.ID == msg.ID {
			m.toast = nil
		}
	}
	return m, nil
}

func (m model) selected() *templates.Template {
	tmpl, ok := selection.Selected(m.state, m.catalog)
	if !ok {
		return nil
	}
	return tmpl
}

// syncPreview recomputes the rendered email after any state change.
func (m *model) syncPreview() {
	tmpl := m.selected()
	if tmpl == nil {
		m.preview.SetContent("", nil)
		return
	}
	m.preview.SetContent(templates.Render(tmpl, m.state.Values), templates.Unfilled(tmpl, m.state.Values))
}

func (m *model) layoutPreview() {
	m.preview.Width = max(m.editorWidth()-4, 20)
	m.preview.Height = max(m.height/2-2, 8)
	m.syncPreview()
}
