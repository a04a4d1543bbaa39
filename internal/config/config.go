// Package config handles global Skema configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/nbroch/skema/internal/protocol"
)

// Config represents the global Skema configuration.
type Config struct {
	// Journal is the command journal database path. Empty uses
	// DefaultJournalPath.
	Journal string `toml:"journal" env:"SKEMA_JOURNAL"`

	// Diagram holds the display flags editors receive as
	// updateDiagramOptions.
	Diagram DiagramConfig `toml:"diagram"`

	// Server configures skm serve.
	Server ServerConfig `toml:"server"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// DiagramConfig holds the diagram display flags.
type DiagramConfig struct {
	ShowTypes         bool `toml:"show_types"         env:"SKEMA_SHOW_TYPES"`
	ShowOccurrences   bool `toml:"show_occurrences"   env:"SKEMA_SHOW_OCCURRENCES"`
	ShowDocumentation bool `toml:"show_documentation" env:"SKEMA_SHOW_DOCUMENTATION"`
	Compact           bool `toml:"compact"            env:"SKEMA_COMPACT"`
}

// Options converts the flags to their wire payload.
func (d DiagramConfig) Options() protocol.DiagramOptions {
	return protocol.DiagramOptions{
		ShowTypes:         d.ShowTypes,
		ShowOccurrences:   d.ShowOccurrences,
		ShowDocumentation: d.ShowDocumentation,
		Compact:           d.Compact,
	}
}

// ServerConfig configures skm serve.
type ServerConfig struct {
	// Listen is the WebSocket listen address.
	Listen string `toml:"listen" env:"SKEMA_LISTEN"`

	// Debug enables stderr diagnostics in the host, watcher and
	// transports.
	Debug bool `toml:"debug" env:"SKEMA_DEBUG"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown
	// rendering: ANSI color codes ("0" to "255") or hex ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme for rendered markdown
	// code blocks, e.g. "monokai", "dracula", "github".
	CodeTheme string `toml:"code_theme"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Diagram: DiagramConfig{ShowTypes: true, ShowOccurrences: true},
		Server:  ServerConfig{Listen: "127.0.0.1:7433"},
	}
}

// Load reads the configuration from the default location and applies
// environment overrides. A missing file yields the defaults.
func Load() (*Config, error) {
	path := DefaultPath()

	var cfg *Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg = Default()
	} else {
		loaded, err := LoadFrom(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env overrides: %w", err)
	}
	return cfg, nil
}

// LoadFrom reads the configuration from a specific path. Environment
// overrides are not applied.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// JournalPath resolves the configured journal location.
func (c *Config) JournalPath() string {
	if c.Journal != "" {
		return c.Journal
	}
	return DefaultJournalPath()
}

// DefaultPath returns the default config file path. Checks
// ~/.config/skema/config.toml first (XDG style), then falls back to the
// OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "skema", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "skema", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// DefaultJournalPath returns where the command journal lives when the
// config does not pin it.
func DefaultJournalPath() string {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, "skema", "journal.db")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", "skema", "journal.db")
	}
	return filepath.Join(".", "skema-journal.db")
}

// CreateDefault creates a commented default config file at the default
// path if none exists.
func CreateDefault() (string, error) {
	return CreateDefaultAt(DefaultPath())
}

// CreateDefaultAt creates a commented default config file at configPath
// if none exists.
func CreateDefaultAt(configPath string) (string, error) {
	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	defaultConfig := `# Skema Configuration

# Command journal database location.
# journal = "/home/you/.local/state/skema/journal.db"

# Display flags pushed to connected editors.
# [diagram]
# show_types = true
# show_occurrences = true
# show_documentation = false
# compact = false

# Settings for skm serve. SKEMA_LISTEN and SKEMA_DEBUG override these.
# [server]
# listen = "127.0.0.1:7433"
# debug = false

# Optional accent color for terminal output: ANSI codes (0-255) or hex.
# [ui]
# accent = "39"
# code_theme = "monokai"
`

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}
