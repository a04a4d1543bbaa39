package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nbroch/skema/internal/document"
	"github.com/nbroch/skema/internal/ui"
)

var (
	docInitName      string
	docInitNamespace string
	docInitForce     bool

	docExportForce bool
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Create and convert schema document files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var docInitCmd = &cobra.Command{
	Use:   "init <file>",
	Short: "Create a new empty schema document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if !docInitForce {
			if _, err := os.Stat(path); err == nil {
				return handleErrorMsg(ErrDocumentExists,
					fmt.Sprintf("document already exists: %s", path),
					"Pass --force to overwrite it")
			} else if !os.IsNotExist(err) {
				return handleError(ErrFileReadError, err, "")
			}
		}

		tree := document.New()
		root := tree.Root()
		root.Name = docInitName
		root.TargetNamespace = docInitNamespace

		if err := document.SaveFile(path, tree); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"path":             path,
				"name":             docInitName,
				"target_namespace": docInitNamespace,
			}, nil)
			return nil
		}

		fmt.Println(ui.Successf("created %s", ui.FilePath(path)))
		return nil
	},
}

var docExportCmd = &cobra.Command{
	Use:   "export <in> <out>",
	Short: "Convert a schema document between JSON and YAML",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inPath, outPath := args[0], args[1]

		tree, errCode, err := loadDocumentFile(inPath)
		if err != nil {
			return handleError(errCode, err, "")
		}

		if !docExportForce {
			if _, err := os.Stat(outPath); err == nil {
				return handleErrorMsg(ErrDocumentExists,
					fmt.Sprintf("destination already exists: %s", outPath),
					"Pass --force to overwrite it")
			} else if !os.IsNotExist(err) {
				return handleError(ErrFileReadError, err, "")
			}
		}

		if err := document.SaveFile(outPath, tree); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"in":    inPath,
				"out":   outPath,
				"nodes": tree.Count(),
			}, nil)
			return nil
		}

		fmt.Println(ui.Successf("exported %s to %s", ui.FilePath(inPath), ui.FilePath(outPath)))
		return nil
	},
}

func init() {
	docInitCmd.Flags().StringVar(&docInitName, "name", "schema", "Schema name")
	docInitCmd.Flags().StringVar(&docInitNamespace, "namespace", "", "Target namespace URI")
	docInitCmd.Flags().BoolVar(&docInitForce, "force", false, "Overwrite an existing file")

	docExportCmd.Flags().BoolVar(&docExportForce, "force", false, "Overwrite an existing destination")

	docCmd.AddCommand(docInitCmd)
	docCmd.AddCommand(docExportCmd)
	rootCmd.AddCommand(docCmd)
}
