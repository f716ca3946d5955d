package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/emailpro/internal/clipboard"
	"github.com/opencode-ai/emailpro/internal/config"
)

const sampleTemplateFile = "thank-you.yaml.example"

var (
	initForce bool

	configDirFunc   = defaultConfigDir
	nativeClipboard = func() bool { return clipboard.NewNative().Supported() }
)

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the emailpro config and template directory",
	Long: `Create a commented config file and a directory for your own templates.

Files are written under $XDG_CONFIG_HOME/emailpro (or ~/.config/emailpro).
An existing config file is left alone unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		results := []initResult{
			checkPrerequisites(),
			createConfigFile(),
			createTemplateDir(),
		}
		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), results)
		}
		printInitResults(cmd.OutOrStdout(), results)
		for _, r := range results {
			if r.status == "failed" {
				return fmt.Errorf("init failed: %s", r.message)
			}
		}
		return nil
	},
}

type initResult struct {
	name    string
	status  string // done, skipped, failed
	message string
}

func (r initResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name    string `json:"name"`
		Status  string `json:"status"`
		Message string `json:"message,omitempty"`
	}{r.name, r.status, r.message})
}

func defaultConfigDir() string {
	path := config.DefaultPath()
	if path == "" {
		return ""
	}
	return filepath.Dir(path)
}

func checkPrerequisites() initResult {
	result := initResult{name: "Check clipboard"}
	if nativeClipboard() {
		result.status = "done"
		result.message = "system clipboard available"
		return result
	}
	result.status = "skipped"
	result.message = "no system clipboard utility found; copies will use OSC52"
	return result
}

func createConfigFile() initResult {
	result := initResult{name: "Create config file"}

	dir := configDirFunc()
	if dir == "" {
		result.status = "failed"
		result.message = "cannot determine config directory"
		return result
	}
	path := filepath.Join(dir, "config.yaml")

	if _, err := os.Stat(path); err == nil && !initForce {
		result.status = "skipped"
		result.message = fmt.Sprintf("%s already exists (use --force to overwrite)", path)
		return result
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		result.status = "failed"
		result.message = fmt.Sprintf("create %s: %v", dir, err)
		return result
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o644); err != nil {
		result.status = "failed"
		result.message = fmt.Sprintf("write %s: %v", path, err)
		return result
	}

	result.status = "done"
	result.message = path
	return result
}

func createTemplateDir() initResult {
	result := initResult{name: "Create template directory"}

	dir := configDirFunc()
	if dir == "" {
		result.status = "failed"
		result.message = "cannot determine config directory"
		return result
	}
	templateDir := filepath.Join(dir, "templates")
	if err := os.MkdirAll(templateDir, 0o755); err != nil {
		result.status = "failed"
		result.message = fmt.Sprintf("create %s: %v", templateDir, err)
		return result
	}

	samplePath := filepath.Join(templateDir, sampleTemplateFile)
	if _, err := os.Stat(samplePath); err == nil {
		result.status = "skipped"
		result.message = templateDir
		return result
	}
	if err := os.WriteFile(samplePath, []byte(sampleTemplate), 0o644); err != nil {
		result.status = "failed"
		result.message = fmt.Sprintf("write %s: %v", samplePath, err)
		return result
	}

	result.status = "done"
	result.message = templateDir
	return result
}

func printInitResults(out io.Writer, results []initResult) {
	for _, r := range results {
		icon := "✓"
		switch r.status {
		case "skipped":
			icon = "-"
		case "failed":
			icon = "✗"
		}
		fmt.Fprintf(out, "%s %s: %s\n", icon, r.name, r.message)
	}
}

const configTemplate = `# emailpro configuration
# Every key can also be set with an EMAILPRO_ environment variable,
# for example EMAILPRO_CLIPBOARD_MODE=osc52.

tui:
  # default or high-contrast
  theme: default
  # How long copy notifications stay visible.
  toast_duration: 3s

logging:
  # debug, info, warn, error
  level: info
  # The UI only logs when a file is set.
  file: ""

clipboard:
  # auto tries the system clipboard, then OSC52.
  # native uses only the system clipboard; osc52 only the terminal.
  mode: auto
  timeout: 2s
  # Wrap OSC52 sequences for tmux or screen: none, tmux, screen
  osc52_wrap: none

catalog:
  # Extra directories with *.yaml templates, loaded after the builtins.
  dirs: []
  # Project directory searched for .emailpro/templates (default: cwd).
  project_dir: ""
`

const sampleTemplate = `# Rename to thank-you.yaml to add this template to the catalog.
id: thank-you
title: Saying Thank You
description: Thank a colleague for their help
category: Communication
body: |-
  Hi [Name],

  Thank you for your help with [project]. It made a real difference.

  Best regards,
  [Your Name]
placeholders:
  - "Name"
  - "project"
  - "Your Name"
`
