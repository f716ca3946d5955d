// Package cli implements the emailpro command line.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opencode-ai/emailpro/internal/config"
	"github.com/opencode-ai/emailpro/internal/logging"
	"github.com/opencode-ai/emailpro/internal/templates"
)

var (
	cfgFile        string
	logLevel       string
	logFile        string
	jsonOutput     bool
	nonInteractive bool
	noColor        bool
	noProgress     bool

	appConfig *config.Config
	version   = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "emailpro",
	Short: "Professional email templates for the terminal",
	Long: `emailpro keeps a catalog of professional email templates.

Pick a template, fill in its placeholders, preview the result and copy it
to the clipboard. Run without a subcommand to open the interactive UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.PersistentPreRunE = setup

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/emailpro/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file")
	flags.BoolVar(&jsonOutput, "json", false, "emit JSON output")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt or open the UI")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&noProgress, "no-progress", false, "disable progress output")
}

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command. The log file is closed on every exit path.
func Execute() error {
	defer func() { _ = logging.Close() }()

	rootCmd.Version = version
	err := rootCmd.Execute()
	if err != nil {
		printError(os.Stderr, err)
	}
	return err
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	return appConfig
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFile != "" {
		cfg.Logging.File = logFile
	}
	appConfig = cfg

	if noColor || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// The UI owns the terminal, so it only logs when a file is configured.
	var fallback io.Writer = os.Stderr
	if launchesTUI(cmd) {
		fallback = nil
	}
	if err := logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		File:   cfg.Logging.File,
		Pretty: cfg.Logging.File == "",
	}, fallback); err != nil {
		return err
	}

	logger := logging.Component("cli")
	logger.Debug().
		Str("command", cmd.Name()).
		Str("config", cfg.Path).
		Msg("configuration loaded")
	return nil
}

func launchesTUI(cmd *cobra.Command) bool {
	return cmd == rootCmd || cmd == uiCmd
}

// loadCatalog builds the catalog from builtins and the configured template
// directories.
func loadCatalog(logger zerolog.Logger) (*templates.Catalog, error) {
	cfg := GetConfig()
	if cfg == nil {
		cfg = config.Default()
	}
	if strings.TrimSpace(cfg.Catalog.ProjectDir) == "" {
		if wd, err := os.Getwd(); err == nil {
			cfg.Catalog.ProjectDir = wd
		}
	}
	catalog, err := templates.LoadCatalog(cfg.TemplateDirs(templates.TemplateSearchPaths), logger)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	return catalog, nil
}
