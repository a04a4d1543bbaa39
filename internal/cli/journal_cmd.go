package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nbroch/skema/internal/dates"
	"github.com/nbroch/skema/internal/journal"
	"github.com/nbroch/skema/internal/shellquote"
	"github.com/nbroch/skema/internal/ui"
)

var (
	journalListPath     string
	journalListLimit    int
	journalListCommands []string
	journalListSince    string
	journalListFailed   bool

	journalShowPath string
)

type journalEntryJSON struct {
	ID      string `json:"id"`
	At      string `json:"at"`
	Command string `json:"command"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Address string `json:"address,omitempty"`
	Payload string `json:"payload,omitempty"`
}

func entryToJSON(e journal.Entry, withPayload bool) journalEntryJSON {
	out := journalEntryJSON{
		ID:      e.ID,
		At:      e.At.Format(time.RFC3339),
		Command: string(e.Command),
		Success: e.Success,
		Error:   e.Error,
		Address: e.Address,
	}
	if withPayload {
		out.Payload = e.Payload
	}
	return out
}

func openJournalAt(flagValue string) (*journal.Journal, string, error) {
	path := resolveJournalPath(flagValue)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, path, fmt.Errorf("no journal found at %s", path)
		}
		return nil, path, err
	}
	j, err := journal.Open(path)
	return j, path, err
}

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Inspect the command audit journal",
	Long: `Inspect the command audit journal.

Every command a serving host applies is recorded to SQLite, rejections
included. These subcommands read that record.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List journaled commands",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		j, path, err := openJournalAt(journalListPath)
		if err != nil {
			return handleError(ErrJournalError, err,
				"Run 'skm serve' with journaling enabled to start recording")
		}
		defer j.Close()

		filter := journal.Filter{
			Tags:       journalListCommands,
			FailedOnly: journalListFailed,
			Limit:      journalListLimit,
		}
		if journalListSince != "" {
			since, err := dates.ParseArg(journalListSince, time.Now())
			if err != nil {
				return handleError(ErrInvalidInput, err, "")
			}
			filter.Since = since
		}

		entries, err := j.List(filter)
		if err != nil {
			return handleError(ErrJournalError, err, "")
		}

		if isJSONOutput() {
			out := make([]journalEntryJSON, 0, len(entries))
			for _, e := range entries {
				out = append(out, entryToJSON(e, false))
			}
			outputSuccess(map[string]interface{}{
				"journal": path,
				"entries": out,
			}, &Meta{Count: len(out)})
			return nil
		}

		if len(entries) == 0 {
			fmt.Println("No journal entries match.")
			return nil
		}

		table := ui.NewTable(5)
		for _, e := range entries {
			status := ui.SymbolSuccess
			if !e.Success {
				status = ui.SymbolError
			}
			table.AddRow(
				e.ID,
				e.At.Local().Format("2006-01-02 15:04"),
				string(e.Command),
				status,
				e.Address,
			)
		}
		fmt.Print(table.String())
		fmt.Println()
		fmt.Println(ui.Count(len(entries), "entry", "entries"))
		return nil
	},
}

var journalShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one journaled command in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		j, _, err := openJournalAt(journalShowPath)
		if err != nil {
			return handleError(ErrJournalError, err, "")
		}
		defer j.Close()

		entry, err := j.Get(args[0])
		if err != nil {
			if errors.Is(err, journal.ErrEntryNotFound) {
				return handleErrorMsg(ErrEntryNotFound,
					fmt.Sprintf("no journal entry with id %s", args[0]),
					"Run 'skm journal list' to see recorded ids")
			}
			return handleError(ErrJournalError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(entryToJSON(entry, true), nil)
			return nil
		}

		fmt.Printf("id: %s\n", entry.ID)
		fmt.Printf("at: %s\n", entry.At.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("command: %s\n", entry.Command)
		if entry.Success {
			fmt.Printf("status: %s applied\n", ui.SymbolSuccess)
		} else {
			fmt.Printf("status: %s rejected\n", ui.SymbolError)
			fmt.Printf("error: %s\n", entry.Error)
		}
		if entry.Address != "" {
			fmt.Printf("address: %s\n", ui.Address(entry.Address))
		}
		fmt.Printf("payload: %s\n", entry.Payload)

		replay := fmt.Sprintf(`{"type":%q,"payload":%s}`, entry.Command, entry.Payload)
		fmt.Println()
		fmt.Println(ui.Hint(fmt.Sprintf("replay: echo %s | skm check", shellquote.Quote(replay))))
		return nil
	},
}

func init() {
	journalListCmd.Flags().StringVar(&journalListPath, "journal", "", "Journal database path (overrides config)")
	journalListCmd.Flags().IntVarP(&journalListLimit, "limit", "n", 50, "Maximum entries to list (0 = all)")
	journalListCmd.Flags().StringSliceVar(&journalListCommands, "command", nil, "Filter by command tag (repeatable)")
	journalListCmd.Flags().StringVar(&journalListSince, "since", "", "Only entries executed on or after this date")
	journalListCmd.Flags().BoolVar(&journalListFailed, "failed", false, "Only rejected commands")

	journalShowCmd.Flags().StringVar(&journalShowPath, "journal", "", "Journal database path (overrides config)")

	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalShowCmd)
	rootCmd.AddCommand(journalCmd)
}
