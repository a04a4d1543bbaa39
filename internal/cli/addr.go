package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nbroch/skema/internal/address"
	"github.com/nbroch/skema/internal/ui"
)

var (
	addrGenParent    string
	addrGenPosition  int
	addrGenNamespace string
)

var addrCmd = &cobra.Command{
	Use:   "addr",
	Short: "Parse, generate, and inspect node addresses",
	Long: `Parse, generate, and inspect node addresses.

Addresses identify schema nodes as slash-separated paths of
kind[:{namespace}name][position] segments, e.g.
/complexType:addressType/element:street.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var addrParseCmd = &cobra.Command{
	Use:   "parse <address>",
	Short: "Decompose an address into its components",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := args[0]
		parsed, err := address.Parse(addr)
		if err != nil {
			return handleErrorWithDetails(ErrAddressInvalid, err.Error(),
				"Addresses start with '/', e.g. /element:person",
				map[string]interface{}{"address": addr})
		}

		if isJSONOutput() {
			outputSuccess(struct {
				Address string `json:"address"`
				address.Parsed
				Root bool `json:"root"`
			}{addr, parsed, address.IsRoot(addr)}, nil)
			return nil
		}

		fmt.Printf("address: %s\n", ui.Address(addr))
		fmt.Printf("kind: %s\n", parsed.Kind)
		if parsed.Name != "" {
			fmt.Printf("name: %s\n", parsed.Name)
		}
		if parsed.Namespace != "" {
			fmt.Printf("namespace: %s\n", parsed.Namespace)
		}
		if parsed.Position != nil {
			fmt.Printf("position: %d\n", *parsed.Position)
		}
		if parsed.Parent != "" {
			fmt.Printf("parent: %s\n", parsed.Parent)
		}
		fmt.Printf("segments: %d\n", len(parsed.Segments))
		return nil
	},
}

var addrGenCmd = &cobra.Command{
	Use:   "gen <kind> [name]",
	Short: "Generate an address from components",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := address.Kind(strings.TrimSpace(args[0]))
		if !kind.IsValid() {
			return handleErrorWithDetails(ErrInvalidInput,
				fmt.Sprintf("unknown node kind %q", args[0]),
				"See 'skm docs reference addresses' for the kind list",
				map[string]interface{}{"kinds": address.Kinds()})
		}

		params := address.Params{
			Kind:      kind,
			Parent:    addrGenParent,
			Namespace: addrGenNamespace,
		}
		if len(args) == 2 {
			params.Name = args[1]
		}
		if addrGenPosition >= 0 {
			pos := addrGenPosition
			params.Position = &pos
		}

		addr := address.Generate(params)

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"address": addr,
				"params":  params,
			}, nil)
			return nil
		}

		fmt.Println(addr)
		return nil
	},
}

var addrParentCmd = &cobra.Command{
	Use:   "parent <address>",
	Short: "Print the parent of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := args[0]
		if address.IsRoot(addr) {
			return handleErrorMsg(ErrAddressRoot, "the document root has no parent", "")
		}
		parsed, err := address.Parse(addr)
		if err != nil {
			return handleErrorWithDetails(ErrAddressInvalid, err.Error(), "",
				map[string]interface{}{"address": addr})
		}

		parent := parsed.Parent
		topLevel := parent == ""
		if topLevel {
			parent = address.Root
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"address":   addr,
				"parent":    parent,
				"top_level": topLevel,
			}, nil)
			return nil
		}

		fmt.Println(parent)
		return nil
	},
}

func init() {
	addrGenCmd.Flags().StringVar(&addrGenParent, "parent", "", "Parent address to nest the segment under")
	addrGenCmd.Flags().IntVar(&addrGenPosition, "position", -1, "Sibling position disambiguator (omit for none)")
	addrGenCmd.Flags().StringVar(&addrGenNamespace, "namespace", "", "Namespace URI qualifying the name")

	addrCmd.AddCommand(addrParseCmd)
	addrCmd.AddCommand(addrGenCmd)
	addrCmd.AddCommand(addrParentCmd)
	rootCmd.AddCommand(addrCmd)
}
