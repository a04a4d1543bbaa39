package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/nbroch/skema/internal/commands"
)

// syncRegistryMetadata pushes descriptions and examples from the command
// registry onto the cobra tree, so help text and the registry cannot
// drift apart. Use strings stay in the CLI files: the registry does not
// model variadic or conditional usage.
func syncRegistryMetadata(root *cobra.Command) {
	var walk func(cmd *cobra.Command, path string)
	walk = func(cmd *cobra.Command, path string) {
		if path != "" {
			if _, meta, ok := commands.LookupMetaByPath(path); ok {
				applyMeta(cmd, meta)
			}
		}
		for _, child := range cmd.Commands() {
			p := child.Name()
			if path != "" {
				p = path + " " + p
			}
			walk(child, p)
		}
	}
	walk(root, "")
}

func applyMeta(cmd *cobra.Command, meta commands.Meta) {
	if meta.Description != "" {
		cmd.Short = meta.Description
	}
	if meta.LongDesc == "" && len(meta.Examples) == 0 {
		return
	}
	if meta.LongDesc != "" || cmd.Long == "" {
		cmd.Long = longHelp(meta)
	}
}

func longHelp(meta commands.Meta) string {
	long := meta.Description
	if meta.LongDesc != "" {
		long = meta.LongDesc
	}
	if len(meta.Examples) == 0 {
		return long
	}

	var b strings.Builder
	b.WriteString(long)
	b.WriteString("\n\nExamples:")
	for _, ex := range meta.Examples {
		b.WriteString("\n  ")
		b.WriteString(ex)
	}
	return b.String()
}
