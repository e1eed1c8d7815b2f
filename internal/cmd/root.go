package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/keycap/internal/config"
	"github.com/renato0307/keycap/internal/domain"
	"github.com/renato0307/keycap/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d" env:"KEYCAP_DEBUG"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)" env:"KEYCAP_DEBUG_FILE"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000" env:"KEYCAP_MAX_LOG_FILES"`
	Store       string           `help:"Shortcut store: sqlite or settings (overrides settings.json)" enum:"sqlite,settings," default:"" env:"KEYCAP_STORE"`

	Run       RunCmd       `cmd:"" help:"Start the shortcut editor TUI (default)" default:"1"`
	Shortcuts ShortcutsCmd `cmd:"shortcuts" help:"Show and change shortcuts (list, get, set, reset, capture)"`
	Listener  ListenerCmd  `cmd:"listener" help:"Suspend, resume or watch the global hotkey listener"`
	Serve     ServeCmd     `cmd:"serve" help:"Serve the shortcut editor over SSH"`
	Settings  SettingsCmd  `cmd:"settings" help:"Manage settings (meta)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies while the flag is at its default and the env var is unset.
	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("KEYCAP_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("KEYCAP_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child processes share the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("KEYCAP_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("KEYCAP_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("KEYCAP_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	settings := c.settings
	if settings == nil {
		settings = &config.Settings{}
	}
	if c.Store != "" {
		settings.Store = c.Store
	}

	// Bad entries are not fatal: the affected slots fall back to their defaults on load
	if err := settings.Shortcuts.Validate(domain.SlotNames()); err != nil {
		logging.Logger.Warn("Invalid shortcuts in settings.json", "error", err)
	}

	// Container is created after logging so the gorm logger has a target
	container, err := NewContainer(settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
