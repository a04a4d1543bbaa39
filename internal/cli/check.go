package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nbroch/skema/internal/ui"
	"github.com/nbroch/skema/internal/validate"
)

type checkResult struct {
	Index int    `json:"index"`
	Type  string `json:"type"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate command JSON without applying it",
	Long: `Validate command JSON without applying it.

Reads a single command object or an array of commands from the given
file, or from stdin when no file is given, and runs each through the
validation rules. Nothing is executed and no document is touched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		cmds, errCode, err := readCommandInput(path)
		if err != nil {
			return handleError(errCode, err, "Command JSON looks like {\"type\":\"addElement\",\"payload\":{...}}")
		}

		results := make([]checkResult, 0, len(cmds))
		invalid := 0
		for i, c := range cmds {
			res := validate.Command(c)
			if !res.Valid {
				invalid++
			}
			results = append(results, checkResult{
				Index: i,
				Type:  string(c.Type),
				Valid: res.Valid,
				Error: res.Error,
			})
		}

		if isJSONOutput() {
			if invalid > 0 {
				outputError(ErrValidationFailed,
					fmt.Sprintf("%d of %d command(s) failed validation", invalid, len(cmds)),
					map[string]interface{}{"results": results},
					"")
				return nil
			}
			outputSuccess(map[string]interface{}{
				"valid":   true,
				"results": results,
			}, &Meta{Count: len(cmds)})
			return nil
		}

		for _, r := range results {
			if r.Valid {
				continue
			}
			fmt.Println(ui.Errorf("[%d] %s: %s", r.Index, r.Type, r.Error))
		}
		if invalid > 0 {
			return handleErrorMsg(ErrValidationFailed,
				fmt.Sprintf("%d of %d command(s) failed validation", invalid, len(cmds)), "")
		}

		fmt.Println(ui.Successf("%s valid", ui.Pluralf(len(cmds), "command")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
