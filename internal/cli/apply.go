package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nbroch/skema/internal/document"
	"github.com/nbroch/skema/internal/executor"
	"github.com/nbroch/skema/internal/journal"
	"github.com/nbroch/skema/internal/ui"
)

var (
	applyOut     string
	applyDryRun  bool
	applyJournal string
)

type applyResult struct {
	Index   int            `json:"index"`
	Type    string         `json:"type"`
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

var applyCmd = &cobra.Command{
	Use:   "apply <document> <commands>",
	Short: "Apply a command file to a document offline",
	Long: `Apply a command file to a document offline.

Loads the document, runs each command from the commands file (a single
object or an array, "-" for stdin) through the executor, and writes the
resulting snapshot back. Execution stops at the first rejected command
and the document is left untouched.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		docPath := args[0]

		tree, errCode, err := loadDocumentFile(docPath)
		if err != nil {
			return handleError(errCode, err,
				fmt.Sprintf("Run 'skm doc init %s' to create it", docPath))
		}

		cmds, errCode, err := readCommandInput(args[1])
		if err != nil {
			return handleError(errCode, err, "")
		}

		var rec *journal.Journal
		if applyJournal != "" {
			rec, _, err = journal.OpenWithRebuild(applyJournal)
			if err != nil {
				return handleError(ErrJournalError, err, "")
			}
			defer rec.Close()
		}

		exec := executor.New(tree)
		results := make([]applyResult, 0, len(cmds))
		for i, c := range cmds {
			resp := exec.Apply(c)
			results = append(results, applyResult{
				Index:   i,
				Type:    string(c.Type),
				Success: resp.Success,
				Error:   resp.Error,
				Data:    resp.Data,
			})
			if rec != nil {
				if recErr := rec.Record(c, resp); recErr != nil {
					fmt.Fprintln(os.Stderr, ui.Warningf("journal write failed: %v", recErr))
				}
			}
			if !resp.Success {
				return handleErrorWithDetails(ErrCommandRejected,
					fmt.Sprintf("command %d (%s) rejected: %s", i, c.Type, resp.Error),
					"Fix the command and re-run; nothing was written",
					map[string]interface{}{"results": results})
			}
		}

		outPath := docPath
		if applyOut != "" {
			outPath = applyOut
		}
		if !applyDryRun {
			if err := document.SaveSnapshot(outPath, exec.Snapshot()); err != nil {
				return handleError(ErrFileWriteError, err, "")
			}
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"applied": len(results),
				"dry_run": applyDryRun,
				"path":    outPath,
				"results": results,
			}, &Meta{Count: len(results)})
			return nil
		}

		if applyDryRun {
			fmt.Println(ui.Successf("%s would apply cleanly (dry run)", ui.Pluralf(len(results), "command")))
			return nil
		}
		fmt.Println(ui.Successf("applied %s to %s", ui.Pluralf(len(results), "command"), ui.FilePath(outPath)))
		return nil
	},
}

func init() {
	applyCmd.Flags().StringVarP(&applyOut, "out", "o", "", "Write the result to this path instead of overwriting the document")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Execute without writing the result")
	applyCmd.Flags().StringVar(&applyJournal, "journal", "", "Record applied commands to this journal database")
	rootCmd.AddCommand(applyCmd)
}
