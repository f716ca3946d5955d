package components

import (
	"time"

	"github.com/opencode-ai/emailpro/internal/tui/styles"
)

// ToastKind selects the toast styling.
type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastError
)

// Toast is a transient notification.
type Toast struct {
	ID          int
	Kind        ToastKind
	Title       string
	Description string
	ExpiresAt   time.Time
}

// CopySucceeded is the toast shown after a successful copy.
func CopySucceeded() Toast {
	return Toast{
		Kind:        ToastSuccess,
		Title:       "✨ Copied to clipboard",
		Description: "Email template has been copied successfully.",
	}
}

// CopyFailed is the toast shown when the clipboard write fails.
func CopyFailed() Toast {
	return Toast{
		Kind:        ToastError,
		Title:       "Failed to copy",
		Description: "Please try again or copy manually.",
	}
}

// Expired reports whether the toast should no longer be shown.
func (t Toast) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}

// Render renders the toast as a single line.
func (t Toast) Render(styleSet styles.Styles) string {
	titleStyle := styleSet.Success
	if t.Kind == ToastError {
		titleStyle = styleSet.Error
	}
	line := titleStyle.Bold(true).Render(t.Title)
	if t.Description != "" {
		line += styleSet.Muted.Render("  " + t.Description)
	}
	return line
}
