// Package config loads emailpro configuration from file, environment, and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides (EMAILPRO_TUI_THEME, ...).
const EnvPrefix = "EMAILPRO"

// Clipboard modes.
const (
	ClipboardAuto   = "auto"
	ClipboardNative = "native"
	ClipboardOSC52  = "osc52"
)

// OSC52 wrapping modes.
const (
	WrapNone   = "none"
	WrapTmux   = "tmux"
	WrapScreen = "screen"
)

// Config is the full emailpro configuration.
type Config struct {
	TUI       TUIConfig       `mapstructure:"tui"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Clipboard ClipboardConfig `mapstructure:"clipboard"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`

	// Path is the config file that was read, if any.
	Path string `mapstructure:"-"`
}

// TUIConfig controls the terminal interface.
type TUIConfig struct {
	Theme         string        `mapstructure:"theme"`
	ToastDuration time.Duration `mapstructure:"toast_duration"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// ClipboardConfig controls how rendered emails reach the clipboard.
type ClipboardConfig struct {
	Mode      string        `mapstructure:"mode"`
	Timeout   time.Duration `mapstructure:"timeout"`
	OSC52Wrap string        `mapstructure:"osc52_wrap"`
}

// CatalogConfig lists extra template directories.
type CatalogConfig struct {
	Dirs       []string `mapstructure:"dirs"`
	ProjectDir string   `mapstructure:"project_dir"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		TUI: TUIConfig{
			Theme:         "default",
			ToastDuration: 3 * time.Second,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Clipboard: ClipboardConfig{
			Mode:      ClipboardAuto,
			Timeout:   2 * time.Second,
			OSC52Wrap: WrapNone,
		},
	}
}

// DefaultPath returns the user config file location.
func DefaultPath() string {
	if dir := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); dir != "" {
		return filepath.Join(dir, "emailpro", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "emailpro", "config.yaml")
}

// Load reads configuration. An explicit path must exist; the default path
// is optional.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultPath()
	}

	readPath := ""
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			switch {
			case explicit:
				return nil, fmt.Errorf("read config %s: %w", path, err)
			case errors.As(err, &notFound), errors.Is(err, os.ErrNotExist):
			default:
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else {
			readPath = path
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Path = readPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated values and durations.
func (c *Config) Validate() error {
	switch c.Clipboard.Mode {
	case ClipboardAuto, ClipboardNative, ClipboardOSC52:
	default:
		return fmt.Errorf("invalid clipboard.mode %q (want auto, native, or osc52)", c.Clipboard.Mode)
	}
	switch c.Clipboard.OSC52Wrap {
	case WrapNone, WrapTmux, WrapScreen:
	default:
		return fmt.Errorf("invalid clipboard.osc52_wrap %q (want none, tmux, or screen)", c.Clipboard.OSC52Wrap)
	}
	if c.Clipboard.Timeout <= 0 {
		return fmt.Errorf("clipboard.timeout must be greater than 0")
	}
	if c.TUI.ToastDuration <= 0 {
		return fmt.Errorf("tui.toast_duration must be greater than 0")
	}
	if strings.TrimSpace(c.TUI.Theme) == "" {
		return fmt.Errorf("tui.theme is required")
	}
	return nil
}

// TemplateDirs returns the directories to scan for user templates.
func (c *Config) TemplateDirs(searchPaths func(projectDir string) []string) []string {
	dirs := make([]string, 0, len(c.Catalog.Dirs)+2)
	dirs = append(dirs, c.Catalog.Dirs...)
	if searchPaths != nil {
		dirs = append(dirs, searchPaths(c.Catalog.ProjectDir)...)
	}
	return dirs
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("tui.theme", cfg.TUI.Theme)
	v.SetDefault("tui.toast_duration", cfg.TUI.ToastDuration)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("clipboard.mode", cfg.Clipboard.Mode)
	v.SetDefault("clipboard.timeout", cfg.Clipboard.Timeout)
	v.SetDefault("clipboard.osc52_wrap", cfg.Clipboard.OSC52Wrap)
	v.SetDefault("catalog.dirs", []string{})
	v.SetDefault("catalog.project_dir", "")
}
