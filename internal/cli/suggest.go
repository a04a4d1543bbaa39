package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nbroch/skema/internal/naming"
)

var suggestType bool

var suggestCmd = &cobra.Command{
	Use:   "suggest <label>",
	Short: "Suggest a valid XML name from a label",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label := strings.Join(args, " ")

		var name string
		if suggestType {
			name = naming.SuggestType(label)
		} else {
			name = naming.Suggest(label)
		}

		if name == "" {
			if isJSONOutput() {
				outputSuccessWithWarnings(map[string]interface{}{
					"label": label,
					"name":  "",
				}, []Warning{{
					Code:    WarnNoSuggestion,
					Message: fmt.Sprintf("no usable name in %q", label),
				}}, nil)
				return nil
			}
			return handleErrorMsg(ErrInvalidInput,
				fmt.Sprintf("no usable name in %q", label),
				"Labels need at least one letter or digit")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"label": label,
				"name":  name,
			}, nil)
			return nil
		}

		fmt.Println(name)
		return nil
	},
}

func init() {
	suggestCmd.Flags().BoolVar(&suggestType, "type", false, "Suggest a type name (UpperCamel + Type suffix)")
	rootCmd.AddCommand(suggestCmd)
}
