package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nbroch/skema/internal/config"
)

var (
	configSetJournal     string
	configSetListen      string
	configSetDebug       bool
	configSetShowTypes   bool
	configSetShowOccurs  bool
	configSetShowDocs    bool
	configSetCompact     bool
	configSetUIAccent    string
	configSetUICodeTheme string

	configUnsetJournal     bool
	configUnsetListen      bool
	configUnsetUIAccent    bool
	configUnsetUICodeTheme bool
)

// resolveConfigPath picks the file config subcommands operate on: the
// global --config flag when set, otherwise the default location.
func resolveConfigPath() string {
	if p := strings.TrimSpace(configPath); p != "" {
		return p
	}
	return config.DefaultPath()
}

func loadConfigAllowMissing(path string) (*config.Config, bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return config.Default(), false, nil
		}
		return nil, false, err
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

func configShowData(cfg *config.Config, path string, exists bool) map[string]interface{} {
	return map[string]interface{}{
		"config_path": path,
		"exists":      exists,
		"journal":     cfg.JournalPath(),
		"diagram": map[string]interface{}{
			"show_types":         cfg.Diagram.ShowTypes,
			"show_occurrences":   cfg.Diagram.ShowOccurrences,
			"show_documentation": cfg.Diagram.ShowDocumentation,
			"compact":            cfg.Diagram.Compact,
		},
		"server": map[string]interface{}{
			"listen": cfg.Server.Listen,
			"debug":  cfg.Server.Debug,
		},
		"ui": map[string]interface{}{
			"accent":     strings.TrimSpace(cfg.UI.Accent),
			"code_theme": strings.TrimSpace(cfg.UI.CodeTheme),
		},
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path := resolveConfigPath()
	cfg, exists, err := loadConfigAllowMissing(path)
	if err != nil {
		return handleError(ErrConfigInvalid, err, "")
	}

	if isJSONOutput() {
		outputSuccess(configShowData(cfg, path, exists), nil)
		return nil
	}

	if !exists {
		fmt.Printf("Config file does not exist: %s\n", path)
		fmt.Println("Run 'skm config init' to create it; built-in defaults apply.")
	} else {
		fmt.Printf("config: %s\n", path)
	}

	fmt.Printf("journal: %s\n", cfg.JournalPath())
	fmt.Printf("server.listen: %s\n", cfg.Server.Listen)
	fmt.Printf("server.debug: %t\n", cfg.Server.Debug)
	fmt.Printf("diagram.show_types: %t\n", cfg.Diagram.ShowTypes)
	fmt.Printf("diagram.show_occurrences: %t\n", cfg.Diagram.ShowOccurrences)
	fmt.Printf("diagram.show_documentation: %t\n", cfg.Diagram.ShowDocumentation)
	fmt.Printf("diagram.compact: %t\n", cfg.Diagram.Compact)
	if v := strings.TrimSpace(cfg.UI.Accent); v != "" {
		fmt.Printf("ui.accent: %s\n", v)
	}
	if v := strings.TrimSpace(cfg.UI.CodeTheme); v != "" {
		fmt.Printf("ui.code_theme: %s\n", v)
	}
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global Skema config.toml settings",
	Long: `Manage global Skema config.toml settings.

Use this to initialize, inspect, and edit machine-level configuration.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default config.toml if missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		targetPath := resolveConfigPath()
		_, statErr := os.Stat(targetPath)
		existed := statErr == nil
		if statErr != nil && !os.IsNotExist(statErr) {
			return handleError(ErrFileReadError, statErr, "")
		}

		createdPath, err := config.CreateDefaultAt(targetPath)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config_path": createdPath,
				"created":     !existed,
			}, nil)
			return nil
		}

		if existed {
			fmt.Printf("Config already exists: %s\n", createdPath)
		} else {
			fmt.Printf("Created config: %s\n", createdPath)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set one or more config.toml fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveConfigPath()
		cfg, _, err := loadConfigAllowMissing(path)
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		changed := make([]string, 0, 8)

		if cmd.Flags().Changed("journal") {
			value := strings.TrimSpace(configSetJournal)
			if value == "" {
				return handleErrorMsg(ErrInvalidInput, "journal cannot be empty; use 'skm config unset --journal' to clear it", "")
			}
			cfg.Journal = value
			changed = append(changed, "journal")
		}

		if cmd.Flags().Changed("listen") {
			value := strings.TrimSpace(configSetListen)
			if value == "" {
				return handleErrorMsg(ErrInvalidInput, "listen cannot be empty; use 'skm config unset --listen' to restore the default", "")
			}
			cfg.Server.Listen = value
			changed = append(changed, "server.listen")
		}

		if cmd.Flags().Changed("debug") {
			cfg.Server.Debug = configSetDebug
			changed = append(changed, "server.debug")
		}

		if cmd.Flags().Changed("show-types") {
			cfg.Diagram.ShowTypes = configSetShowTypes
			changed = append(changed, "diagram.show_types")
		}

		if cmd.Flags().Changed("show-occurrences") {
			cfg.Diagram.ShowOccurrences = configSetShowOccurs
			changed = append(changed, "diagram.show_occurrences")
		}

		if cmd.Flags().Changed("show-documentation") {
			cfg.Diagram.ShowDocumentation = configSetShowDocs
			changed = append(changed, "diagram.show_documentation")
		}

		if cmd.Flags().Changed("compact") {
			cfg.Diagram.Compact = configSetCompact
			changed = append(changed, "diagram.compact")
		}

		if cmd.Flags().Changed("ui-accent") {
			value := strings.TrimSpace(configSetUIAccent)
			if value == "" {
				return handleErrorMsg(ErrInvalidInput, "ui-accent cannot be empty; use 'skm config unset --ui-accent' to clear it", "")
			}
			cfg.UI.Accent = value
			changed = append(changed, "ui.accent")
		}

		if cmd.Flags().Changed("ui-code-theme") {
			value := strings.TrimSpace(configSetUICodeTheme)
			if value == "" {
				return handleErrorMsg(ErrInvalidInput, "ui-code-theme cannot be empty; use 'skm config unset --ui-code-theme' to clear it", "")
			}
			cfg.UI.CodeTheme = value
			changed = append(changed, "ui.code_theme")
		}

		if len(changed) == 0 {
			return handleErrorMsg(ErrMissingArgument, "no fields provided; set at least one flag (see 'skm config set --help')", "")
		}

		if err := config.SaveTo(path, cfg); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			data := configShowData(cfg, path, true)
			data["changed"] = changed
			outputSuccess(data, nil)
			return nil
		}

		fmt.Printf("Updated config: %s\n", path)
		fmt.Printf("changed: %s\n", strings.Join(changed, ", "))
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset",
	Short: "Clear one or more config.toml fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveConfigPath()
		cfg, exists, err := loadConfigAllowMissing(path)
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		if !exists {
			return handleErrorMsg(ErrFileNotFound, fmt.Sprintf("config file does not exist: %s", path), "Run 'skm config init' to create it")
		}

		changed := make([]string, 0, 4)

		if configUnsetJournal {
			cfg.Journal = ""
			changed = append(changed, "journal")
		}
		if configUnsetListen {
			cfg.Server.Listen = config.Default().Server.Listen
			changed = append(changed, "server.listen")
		}
		if configUnsetUIAccent {
			cfg.UI.Accent = ""
			changed = append(changed, "ui.accent")
		}
		if configUnsetUICodeTheme {
			cfg.UI.CodeTheme = ""
			changed = append(changed, "ui.code_theme")
		}

		if len(changed) == 0 {
			return handleErrorMsg(ErrMissingArgument, "no fields provided; pass at least one of --journal/--listen/--ui-accent/--ui-code-theme", "")
		}

		if err := config.SaveTo(path, cfg); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			data := configShowData(cfg, path, true)
			data["changed"] = changed
			outputSuccess(data, nil)
			return nil
		}

		fmt.Printf("Updated config: %s\n", path)
		fmt.Printf("cleared: %s\n", strings.Join(changed, ", "))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current config.toml values",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	})

	configSetCmd.Flags().StringVar(&configSetJournal, "journal", "", "Set journal database path")
	configSetCmd.Flags().StringVar(&configSetListen, "listen", "", "Set serve listen address")
	configSetCmd.Flags().BoolVar(&configSetDebug, "debug", false, "Set serve debug logging")
	configSetCmd.Flags().BoolVar(&configSetShowTypes, "show-types", false, "Set diagram show_types")
	configSetCmd.Flags().BoolVar(&configSetShowOccurs, "show-occurrences", false, "Set diagram show_occurrences")
	configSetCmd.Flags().BoolVar(&configSetShowDocs, "show-documentation", false, "Set diagram show_documentation")
	configSetCmd.Flags().BoolVar(&configSetCompact, "compact", false, "Set diagram compact")
	configSetCmd.Flags().StringVar(&configSetUIAccent, "ui-accent", "", "Set UI accent color (ANSI 0-255 or #RRGGBB)")
	configSetCmd.Flags().StringVar(&configSetUICodeTheme, "ui-code-theme", "", "Set markdown code theme name")

	configUnsetCmd.Flags().BoolVar(&configUnsetJournal, "journal", false, "Clear journal path (use the default)")
	configUnsetCmd.Flags().BoolVar(&configUnsetListen, "listen", false, "Restore the default listen address")
	configUnsetCmd.Flags().BoolVar(&configUnsetUIAccent, "ui-accent", false, "Clear ui.accent")
	configUnsetCmd.Flags().BoolVar(&configUnsetUICodeTheme, "ui-code-theme", false, "Clear ui.code_theme")

	rootCmd.AddCommand(configCmd)
}
