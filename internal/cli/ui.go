package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/opencode-ai/emailpro/internal/clipboard"
	"github.com/opencode-ai/emailpro/internal/config"
	"github.com/opencode-ai/emailpro/internal/events"
	"github.com/opencode-ai/emailpro/internal/logging"
	"github.com/opencode-ai/emailpro/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the emailpro TUI",
	Long:  "Launch the interactive template browser and editor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	if !IsInteractive() {
		return &PreflightError{
			Message:  "TUI requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or use CLI subcommands",
			NextStep: "emailpro render --help",
		}
	}

	cfg := GetConfig()
	if cfg == nil {
		cfg = config.Default()
	}

	logger := logging.Component("tui")
	catalog, err := loadCatalog(logging.Component("templates"))
	if err != nil {
		return err
	}

	writer, err := clipboard.New(cfg.Clipboard, os.Stdout)
	if err != nil {
		return err
	}

	return tui.Run(tui.Config{
		Catalog:       catalog,
		Clipboard:     writer,
		Events:        events.NewLogSink(logging.Component("events")),
		Theme:         cfg.TUI.Theme,
		ToastDuration: cfg.TUI.ToastDuration,
		CopyTimeout:   cfg.Clipboard.Timeout,
		Logger:        logger,
	})
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
