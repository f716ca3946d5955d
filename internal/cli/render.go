package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/emailpro/internal/clipboard"
	"github.com/opencode-ai/emailpro/internal/config"
	"github.com/opencode-ai/emailpro/internal/events"
	"github.com/opencode-ai/emailpro/internal/logging"
	"github.com/opencode-ai/emailpro/internal/templates"
)

var (
	renderValues []string
	copyValues   []string
)

func init() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(copyCmd)

	renderCmd.Flags().StringArrayVarP(&renderValues, "set", "s", nil, "placeholder value as Name=Value (repeatable)")
	copyCmd.Flags().StringArrayVarP(&copyValues, "set", "s", nil, "placeholder value as Name=Value (repeatable)")
}

var renderCmd = &cobra.Command{
	Use:   "render <id>",
	Short: "Render a template to stdout",
	Long: `Render a template with the given placeholder values.

Placeholders without a value are left as their [Name] marker.`,
	Example: `  emailpro render scheduling-meeting --set Name=Alex --set duration="30 minutes"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := renderFromArgs(args[0], renderValues)
		if err != nil {
			return err
		}
		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), result)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Text)
		return err
	},
}

var copyCmd = &cobra.Command{
	Use:   "copy <id>",
	Short: "Render a template and copy it to the clipboard",
	Long: `Render a template and copy the result to the clipboard.

The clipboard backend is chosen by clipboard.mode: native, osc52, or auto
(native first, then OSC52).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := renderFromArgs(args[0], copyValues)
		if err != nil {
			return err
		}

		cfg := GetConfig()
		if cfg == nil {
			cfg = config.Default()
		}
		writer, err := clipboard.New(cfg.Clipboard, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		result.Copied = true
		sink := events.NewLogSink(logging.Component("events"))
		if err := copyRendered(cmd.Context(), cmd.ErrOrStderr(), writer, sink, cfg.Clipboard.Timeout, result); err != nil {
			return err
		}

		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), result)
		}
		msg := fmt.Sprintf("Copied %s to clipboard.", result.ID)
		if n := len(result.Unfilled); n > 0 {
			msg += fmt.Sprintf(" %d placeholder(s) left unfilled: %s", n, strings.Join(result.Unfilled, ", "))
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), msg)
		return err
	},
}

type renderResult struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Unfilled []string `json:"unfilled"`
	Copied   bool     `json:"copied,omitempty"`
}

func renderFromArgs(id string, assignments []string) (*renderResult, error) {
	values, err := parseAssignments(assignments)
	if err != nil {
		return nil, err
	}

	catalog, err := loadCatalog(logging.Component("templates"))
	if err != nil {
		return nil, err
	}
	tmpl, err := catalog.Get(id)
	if err != nil {
		return nil, err
	}

	logger := logging.Component("render")
	for name := range values {
		if !slices.Contains(tmpl.Placeholders, name) {
			logger.Warn().Str("template_id", tmpl.ID).Str("placeholder", name).Msg("ignoring value for unknown placeholder")
		}
	}

	return renderTemplate(tmpl, values), nil
}

func renderTemplate(tmpl *templates.Template, values map[string]string) *renderResult {
	unfilled := templates.Unfilled(tmpl, values)
	if unfilled == nil {
		unfilled = []string{}
	}
	return &renderResult{
		ID:       tmpl.ID,
		Text:     templates.Render(tmpl, values),
		Unfilled: unfilled,
	}
}

// copyRendered writes result to the clipboard and records the outcome on sink.
// A status line goes to status unless progress output is disabled.
func copyRendered(ctx context.Context, status io.Writer, writer clipboard.Writer, sink events.Sink, timeout time.Duration, result *renderResult) error {
	if ctx == nil {
		ctx = context.Background()
	}
	line := startCopyStatus(status, result)

	writeCtx, cancel := context.WithTimeout(ctx, timeout)
	err := writer.Write(writeCtx, result.Text)
	cancel()

	if logErr := events.LogCopy(ctx, sink, result.ID, len(result.Text), len(result.Unfilled), err); logErr != nil {
		logger := logging.Component("events")
		logger.Warn().Err(logErr).Msg("failed to record copy event")
	}

	if err != nil {
		line.Failed(err)
		return &PreflightError{
			Message:  fmt.Sprintf("failed to copy %s: %v", result.ID, err),
			Hint:     "Set clipboard.mode to osc52 when no system clipboard is available",
			NextStep: fmt.Sprintf("emailpro render %s", result.ID),
		}
	}
	line.Copied(len(result.Unfilled))
	return nil
}

// parseAssignments turns Name=Value pairs into placeholder values. Only the
// first '=' separates; the value may contain further '=' characters.
func parseAssignments(assignments []string) (map[string]string, error) {
	values := make(map[string]string, len(assignments))
	for _, assignment := range assignments {
		name, value, ok := strings.Cut(assignment, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q: expected Name=Value", assignment)
		}
		if name == "" {
			return nil, fmt.Errorf("invalid --set %q: placeholder name is empty", assignment)
		}
		values[name] = value
	}
	return values, nil
}
