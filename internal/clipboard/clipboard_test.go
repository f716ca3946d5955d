package clipboard

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/emailpro/internal/config"
)

// terminalOSC52 returns an OSC52 writer that treats out as a terminal.
func terminalOSC52(out io.Writer, wrap string) *OSC52 {
	w := NewOSC52(out, wrap)
	w.isTerminal = func(io.Writer) bool { return true }
	return w
}

func TestOSC52WritesSequence(t *testing.T) {
	var buf bytes.Buffer
	w := terminalOSC52(&buf, config.WrapNone)

	require.NoError(t, w.Write(context.Background(), "Hi Ravi,"))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\x1b]52;c;"), "got %q", out)
	assert.Contains(t, out, base64.StdEncoding.EncodeToString([]byte("Hi Ravi,")))
}

func TestOSC52TmuxWrap(t *testing.T) {
	var buf bytes.Buffer
	w := terminalOSC52(&buf, config.WrapTmux)

	require.NoError(t, w.Write(context.Background(), "x"))
	assert.True(t, strings.HasPrefix(buf.String(), "\x1bPtmux;"), "got %q", buf.String())
}

func TestOSC52WithoutOutput(t *testing.T) {
	err := NewOSC52(nil, config.WrapNone).Write(context.Background(), "x")
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestOSC52RejectsNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	err := NewOSC52(&buf, config.WrapNone).Write(context.Background(), "x")
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Zero(t, buf.Len())

	path := filepath.Join(t.TempDir(), "out.txt")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	err = NewOSC52(f, config.WrapNone).Write(context.Background(), "x")
	assert.ErrorIs(t, err, ErrUnsupported)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestAutoFailsWithoutClipboardOrTerminal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	unsupported := &Native{supported: false, writeAll: func(string) error { return nil }}
	w := Fallback{unsupported, NewOSC52(f, config.WrapNone)}

	assert.ErrorIs(t, w.Write(context.Background(), "Hi Ravi,"), ErrUnsupported)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestOSC52Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := terminalOSC52(&buf, config.WrapNone).Write(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}

func TestNativeUsesWriteAll(t *testing.T) {
	var got string
	n := &Native{supported: true, writeAll: func(text string) error {
		got = text
		return nil
	}}

	require.NoError(t, n.Write(context.Background(), "hello"))
	assert.Equal(t, "hello", got)
}

func TestNativeTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	n := &Native{supported: true, writeAll: func(string) error {
		<-release
		return nil
	}}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := n.Write(ctx, "slow")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNativeUnsupported(t *testing.T) {
	n := &Native{supported: false, writeAll: func(string) error { return nil }}
	assert.ErrorIs(t, n.Write(context.Background(), "x"), ErrUnsupported)
}

func TestFallback(t *testing.T) {
	failing := WriterFunc(func(context.Context, string) error { return errors.New("no display") })
	var got string
	working := WriterFunc(func(_ context.Context, text string) error {
		got = text
		return nil
	})

	require.NoError(t, Fallback{failing, working}.Write(context.Background(), "text"))
	assert.Equal(t, "text", got)

	err := Fallback{failing, failing}.Write(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no display")

	assert.ErrorIs(t, Fallback{}.Write(context.Background(), "text"), ErrUnsupported)
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	w, err := New(config.ClipboardConfig{Mode: config.ClipboardOSC52}, &buf)
	require.NoError(t, err)
	assert.IsType(t, &OSC52{}, w)

	w, err = New(config.ClipboardConfig{Mode: config.ClipboardNative}, &buf)
	require.NoError(t, err)
	assert.IsType(t, &Native{}, w)

	w, err = New(config.ClipboardConfig{Mode: config.ClipboardAuto}, &buf)
	require.NoError(t, err)
	fallback, ok := w.(Fallback)
	require.True(t, ok)
	assert.Len(t, fallback, 2)

	_, err = New(config.ClipboardConfig{Mode: "carrier-pigeon"}, &buf)
	assert.Error(t, err)
}
