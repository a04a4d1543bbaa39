// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nbroch/skema/internal/config"
	"github.com/nbroch/skema/internal/ui"
)

var (
	// Global flags
	configPath string

	// Resolved values
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "skm",
	Short: "Skema - addressing and command tooling for XML Schema documents",
	Long: `Skema hosts schema documents for visual editors and provides the
addressing and command layer between them.

Every schema node has a structural address ('/element:person/attribute:id[0]'),
and every edit is a small named command ("addElement", "modifyAttribute", ...).
The skm host owns the document; editors send commands and receive the full
updated schema after each change.

The same commands work offline: validate them with 'skm check', apply them
with 'skm apply', and audit recorded sessions with 'skm journal'.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Completion and help don't need config.
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = loadGlobalConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	syncRegistryMetadata(rootCmd)
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	if cfg == nil {
		return config.Default()
	}
	return cfg
}

func loadGlobalConfig() (*config.Config, error) {
	if strings.TrimSpace(configPath) != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}
