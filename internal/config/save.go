package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nbroch/skema/internal/atomicfile"
)

// persistedConfig mirrors Config with optional sections so a saved file
// only contains what differs from an empty document.
type persistedConfig struct {
	Journal *string            `toml:"journal,omitempty"`
	Diagram *DiagramConfig     `toml:"diagram,omitempty"`
	Server  *persistedServer   `toml:"server,omitempty"`
	UI      *persistedUISimple `toml:"ui,omitempty"`
}

type persistedServer struct {
	Listen *string `toml:"listen,omitempty"`
	Debug  *bool   `toml:"debug,omitempty"`
}

type persistedUISimple struct {
	Accent    *string `toml:"accent,omitempty"`
	CodeTheme *string `toml:"code_theme,omitempty"`
}

func nonEmptyPtr(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Save writes the config to the default config path.
func Save(cfg *Config) error {
	return SaveTo(DefaultPath(), cfg)
}

// SaveTo writes the config to a specific path atomically.
func SaveTo(path string, cfg *Config) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config path is required")
	}
	if cfg == nil {
		cfg = Default()
	}

	diagram := cfg.Diagram
	out := persistedConfig{
		Journal: nonEmptyPtr(cfg.Journal),
		// The diagram flags are always written in full: a bare
		// "compact = false" line is clearer than an absent one.
		Diagram: &diagram,
	}

	listen := nonEmptyPtr(cfg.Server.Listen)
	if listen != nil || cfg.Server.Debug {
		srv := &persistedServer{Listen: listen}
		if cfg.Server.Debug {
			debug := true
			srv.Debug = &debug
		}
		out.Server = srv
	}

	accent := nonEmptyPtr(cfg.UI.Accent)
	codeTheme := nonEmptyPtr(cfg.UI.CodeTheme)
	if accent != nil || codeTheme != nil {
		out.UI = &persistedUISimple{Accent: accent, CodeTheme: codeTheme}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := atomicfile.WriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}

	return nil
}
