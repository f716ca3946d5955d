package cli

import (
	"fmt"
	"io"
	"os"
	"time"
)

// copyStatus reports a clipboard copy on one status line.
type copyStatus struct {
	out     io.Writer
	started time.Time
}

// startCopyStatus prints "Copying <id> (<n> chars)... " and returns a status
// to finish the line. It returns nil when status output is disabled.
func startCopyStatus(out io.Writer, result *renderResult) *copyStatus {
	if out == nil || !statusEnabled() {
		return nil
	}
	fmt.Fprintf(out, "Copying %s (%d chars)... ", result.ID, len([]rune(result.Text)))
	return &copyStatus{out: out, started: time.Now()}
}

// Copied finishes the line with the elapsed time and any unfilled count.
func (s *copyStatus) Copied(unfilled int) {
	if s == nil {
		return
	}
	line := fmt.Sprintf("copied in %s", formatDuration(time.Since(s.started)))
	if unfilled > 0 {
		line += fmt.Sprintf(", %d unfilled", unfilled)
	}
	fmt.Fprintln(s.out, line)
}

func (s *copyStatus) Failed(err error) {
	if s == nil {
		return
	}
	fmt.Fprintf(s.out, "not copied: %v\n", err)
}

func statusEnabled() bool {
	if IsJSONOutput() || noProgress {
		return false
	}
	if _, ok := os.LookupEnv("EMAILPRO_NO_PROGRESS"); ok {
		return false
	}
	_, ok := os.LookupEnv("NO_PROGRESS")
	return !ok
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.String()
	}
	return d.Round(time.Millisecond).String()
}
