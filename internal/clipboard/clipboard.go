// Package clipboard delivers rendered text to the system clipboard.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	sysclip "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"golang.org/x/term"

	"github.com/opencode-ai/emailpro/internal/config"
)

// ErrUnsupported is returned when no clipboard mechanism is available.
var ErrUnsupported = errors.New("clipboard unsupported")

// Writer copies text to a clipboard.
type Writer interface {
	Write(ctx context.Context, text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(ctx context.Context, text string) error

// Write implements Writer.
func (f WriterFunc) Write(ctx context.Context, text string) error {
	return f(ctx, text)
}

// Native writes to the OS clipboard (pbcopy, xclip/xsel/wl-copy, or the
// Windows API).
type Native struct {
	supported bool
	writeAll  func(string) error
}

// NewNative returns a Native writer.
func NewNative() *Native {
	return &Native{
		supported: !sysclip.Unsupported,
		writeAll:  sysclip.WriteAll,
	}
}

// Supported reports whether a system clipboard utility is available.
func (n *Native) Supported() bool {
	return n.supported
}

// Write implements Writer. The platform call cannot be interrupted; on
// cancellation Write returns ctx.Err() and the call finishes in the background.
func (n *Native) Write(ctx context.Context, text string) error {
	if !n.supported {
		return fmt.Errorf("native clipboard: %w", ErrUnsupported)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- n.writeAll(text)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("native clipboard: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OSC52 writes an OSC52 escape sequence so the terminal sets the clipboard.
// It works over SSH when the terminal supports it.
type OSC52 struct {
	out        io.Writer
	wrap       string
	isTerminal func(io.Writer) bool
}

// NewOSC52 returns an OSC52 writer targeting out (usually the terminal).
// wrap is one of config.WrapNone, config.WrapTmux, or config.WrapScreen.
func NewOSC52(out io.Writer, wrap string) *OSC52 {
	return &OSC52{out: out, wrap: wrap, isTerminal: isTerminal}
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Write implements Writer. It fails with ErrUnsupported unless out is a
// terminal.
func (o *OSC52) Write(ctx context.Context, text string) error {
	if o.out == nil || !o.isTerminal(o.out) {
		return fmt.Errorf("osc52: %w", ErrUnsupported)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	seq := osc52.New(text)
	switch o.wrap {
	case config.WrapTmux:
		seq = seq.Tmux()
	case config.WrapScreen:
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(o.out); err != nil {
		return fmt.Errorf("osc52: %w", err)
	}
	return nil
}

// Fallback tries each writer in order until one succeeds.
type Fallback []Writer

// Write implements Writer. If every writer fails the errors are joined.
func (f Fallback) Write(ctx context.Context, text string) error {
	if len(f) == 0 {
		return ErrUnsupported
	}
	var errs []error
	for _, w := range f {
		err := w.Write(ctx, text)
		if err == nil {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// New builds the writer for a clipboard mode. out receives OSC52 sequences.
func New(cfg config.ClipboardConfig, out io.Writer) (Writer, error) {
	switch cfg.Mode {
	case config.ClipboardNative:
		return NewNative(), nil
	case config.ClipboardOSC52:
		return NewOSC52(out, cfg.OSC52Wrap), nil
	case config.ClipboardAuto, "":
		return Fallback{NewNative(), NewOSC52(out, cfg.OSC52Wrap)}, nil
	default:
		return nil, fmt.Errorf("unknown clipboard mode %q", cfg.Mode)
	}
}
