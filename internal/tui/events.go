package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/opencode-ai/emailpro/internal/clipboard"
	"github.com/opencode-ai/emailpro/internal/events"
	"github.com/opencode-ai/emailpro/internal/selection"
)

// copyResultMsg reports the outcome of a clipboard write.
type copyResultMsg struct {
	TemplateID string
	Err        error
}

// clearCopiedMsg clears the copied flag set by the copy identified by Token.
type clearCopiedMsg struct {
	TemplateID string
	Token      uuid.UUID
}

// toastExpiredMsg hides the toast with the given id if it is still shown.
type toastExpiredMsg struct {
	ID int
}

// copyCmd writes text to the clipboard off the update loop and records the
// outcome.
func copyCmd(writer clipboard.Writer, sink events.Sink, timeout time.Duration, templateID, text string, unfilled int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		var err error
		if writer == nil {
			err = clipboard.ErrUnsupported
		} else {
			err = writer.Write(ctx, text)
		}

		if sink != nil {
			_ = events.LogCopy(context.Background(), sink, templateID, len(text), unfilled, err)
		}
		return copyResultMsg{TemplateID: templateID, Err: err}
	}
}

func clearCopiedCmd(templateID string, token uuid.UUID) tea.Cmd {
	return tea.Tick(selection.CopiedFlagDuration, func(time.Time) tea.Msg {
		return clearCopiedMsg{TemplateID: templateID, Token: token}
	})
}

func toastExpiryCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return toastExpiredMsg{ID: id}
	})
}
