package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nbroch/skema/internal/config"
)

func resetConfigSetFlagsForTest() {
	configSetJournal = ""
	configSetListen = ""
	configSetDebug = false
	configSetShowTypes = false
	configSetShowOccurs = false
	configSetShowDocs = false
	configSetCompact = false
	configSetUIAccent = ""
	configSetUICodeTheme = ""

	for _, name := range []string{
		"journal", "listen", "debug", "show-types", "show-occurrences",
		"show-documentation", "compact", "ui-accent", "ui-code-theme",
	} {
		if f := configSetCmd.Flags().Lookup(name); f != nil {
			f.Changed = false
		}
	}
}

func resetConfigUnsetFlagsForTest() {
	configUnsetJournal = false
	configUnsetListen = false
	configUnsetUIAccent = false
	configUnsetUICodeTheme = false
}

func TestConfigInitCreatesConfigFile(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "nested", "config.toml")

	prevConfig := configPath
	prevJSON := jsonOutput
	t.Cleanup(func() {
		configPath = prevConfig
		jsonOutput = prevJSON
	})

	configPath = cfgPath
	jsonOutput = true

	if err := configInitCmd.RunE(configInitCmd, []string{}); err != nil {
		t.Fatalf("configInitCmd.RunE returned error: %v", err)
	}

	content, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("failed to read created config: %v", err)
	}
	if !strings.Contains(string(content), "# Skema Configuration") {
		t.Fatalf("expected default config header in file, got:\n%s", string(content))
	}
}

func TestConfigSetUpdatesFields(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.toml")

	content := `journal = "/tmp/old-journal.db"

[ui]
accent = "99"
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	prevConfig := configPath
	prevJSON := jsonOutput
	t.Cleanup(func() {
		configPath = prevConfig
		jsonOutput = prevJSON
		resetConfigSetFlagsForTest()
	})

	configPath = cfgPath
	jsonOutput = true
	resetConfigSetFlagsForTest()

	configSetJournal = "/var/tmp/skema-journal.db"
	configSetListen = "127.0.0.1:9000"
	configSetDebug = true
	configSetShowTypes = false
	configSetUIAccent = "39"
	configSetUICodeTheme = "dracula"

	configSetCmd.Flags().Lookup("journal").Changed = true
	configSetCmd.Flags().Lookup("listen").Changed = true
	configSetCmd.Flags().Lookup("debug").Changed = true
	configSetCmd.Flags().Lookup("show-types").Changed = true
	configSetCmd.Flags().Lookup("ui-accent").Changed = true
	configSetCmd.Flags().Lookup("ui-code-theme").Changed = true

	if err := configSetCmd.RunE(configSetCmd, []string{}); err != nil {
		t.Fatalf("configSetCmd.RunE returned error: %v", err)
	}

	cfg, err := config.LoadFrom(cfgPath)
	if err != nil {
		t.Fatalf("reload config: %v", err)
	}
	if cfg.Journal != "/var/tmp/skema-journal.db" {
		t.Fatalf("expected journal to change, got %q", cfg.Journal)
	}
	if cfg.Server.Listen != "127.0.0.1:9000" {
		t.Fatalf("expected server.listen=127.0.0.1:9000, got %q", cfg.Server.Listen)
	}
	if !cfg.Server.Debug {
		t.Fatalf("expected server.debug=true")
	}
	if cfg.Diagram.ShowTypes {
		t.Fatalf("expected diagram.show_types=false after set")
	}
	if cfg.UI.Accent != "39" {
		t.Fatalf("expected ui.accent=39, got %q", cfg.UI.Accent)
	}
	if cfg.UI.CodeTheme != "dracula" {
		t.Fatalf("expected ui.code_theme=dracula, got %q", cfg.UI.CodeTheme)
	}
}

func TestConfigSetRejectsEmptyValue(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.toml")
	if err := os.WriteFile(cfgPath, []byte(""), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	prevConfig := configPath
	prevJSON := jsonOutput
	t.Cleanup(func() {
		configPath = prevConfig
		jsonOutput = prevJSON
		resetConfigSetFlagsForTest()
	})

	configPath = cfgPath
	jsonOutput = false
	resetConfigSetFlagsForTest()

	configSetJournal = "   "
	configSetCmd.Flags().Lookup("journal").Changed = true

	err := configSetCmd.RunE(configSetCmd, []string{})
	if err == nil {
		t.Fatalf("expected error for empty journal value")
	}
	if !strings.Contains(err.Error(), "cannot be empty") {
		t.Fatalf("expected empty-value error, got %v", err)
	}
}

func TestConfigSetRequiresAField(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.toml")
	if err := os.WriteFile(cfgPath, []byte(""), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	prevConfig := configPath
	prevJSON := jsonOutput
	t.Cleanup(func() {
		configPath = prevConfig
		jsonOutput = prevJSON
		resetConfigSetFlagsForTest()
	})

	configPath = cfgPath
	jsonOutput = false
	resetConfigSetFlagsForTest()

	err := configSetCmd.RunE(configSetCmd, []string{})
	if err == nil {
		t.Fatalf("expected error when no flags are set")
	}
	if !strings.Contains(err.Error(), "no fields provided") {
		t.Fatalf("expected missing-fields error, got %v", err)
	}
}

func TestConfigUnsetClearsFields(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.toml")

	content := `journal = "/tmp/old-journal.db"

[server]
listen = "0.0.0.0:9999"
debug = true

[ui]
accent = "39"
code_theme = "dracula"
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	prevConfig := configPath
	prevJSON := jsonOutput
	t.Cleanup(func() {
		configPath = prevConfig
		jsonOutput = prevJSON
		resetConfigUnsetFlagsForTest()
	})

	configPath = cfgPath
	jsonOutput = true
	resetConfigUnsetFlagsForTest()

	configUnsetJournal = true
	configUnsetListen = true
	configUnsetUIAccent = true
	configUnsetUICodeTheme = true

	if err := configUnsetCmd.RunE(configUnsetCmd, []string{}); err != nil {
		t.Fatalf("configUnsetCmd.RunE returned error: %v", err)
	}

	cfg, err := config.LoadFrom(cfgPath)
	if err != nil {
		t.Fatalf("reload config: %v", err)
	}
	if cfg.Journal != "" {
		t.Fatalf("expected journal to be cleared, got %q", cfg.Journal)
	}
	if want := config.Default().Server.Listen; cfg.Server.Listen != want {
		t.Fatalf("expected server.listen restored to %q, got %q", want, cfg.Server.Listen)
	}
	if !cfg.Server.Debug {
		t.Fatalf("unset should not touch server.debug")
	}
	if cfg.UI.Accent != "" {
		t.Fatalf("expected ui.accent to be cleared, got %q", cfg.UI.Accent)
	}
	if cfg.UI.CodeTheme != "" {
		t.Fatalf("expected ui.code_theme to be cleared, got %q", cfg.UI.CodeTheme)
	}
}

func TestConfigUnsetMissingFile(t *testing.T) {
	tmp := t.TempDir()

	prevConfig := configPath
	prevJSON := jsonOutput
	t.Cleanup(func() {
		configPath = prevConfig
		jsonOutput = prevJSON
		resetConfigUnsetFlagsForTest()
	})

	configPath = filepath.Join(tmp, "missing.toml")
	jsonOutput = false
	resetConfigUnsetFlagsForTest()
	configUnsetJournal = true

	err := configUnsetCmd.RunE(configUnsetCmd, []string{})
	if err == nil {
		t.Fatalf("expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("expected missing-file error, got %v", err)
	}
}
