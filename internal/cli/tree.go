package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nbroch/skema/internal/address"
	"github.com/nbroch/skema/internal/config"
	"github.com/nbroch/skema/internal/document"
	"github.com/nbroch/skema/internal/ui"
)

var (
	treeDepth         int
	treeTypes         bool
	treeOccurrences   bool
	treeDocumentation bool
	treeCompact       bool
)

const treeDocPreviewLen = 48

var treeCmd = &cobra.Command{
	Use:   "tree <document>",
	Short: "Render a schema document as a tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		docTree, errCode, err := loadDocumentFile(args[0])
		if err != nil {
			return handleError(errCode, err,
				fmt.Sprintf("Run 'skm doc init %s' to create it", args[0]))
		}

		snap := docTree.Snapshot()

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"tree": snap,
			}, &Meta{Count: docTree.Count()})
			return nil
		}

		d := getConfig().Diagram
		if cmd.Flags().Changed("types") {
			d.ShowTypes = treeTypes
		}
		if cmd.Flags().Changed("occurrences") {
			d.ShowOccurrences = treeOccurrences
		}
		if cmd.Flags().Changed("documentation") {
			d.ShowDocumentation = treeDocumentation
		}
		if cmd.Flags().Changed("compact") {
			d.Compact = treeCompact
		}

		root := &ui.TreeNode{Label: treeNodeLabel(&snap.Node, d)}
		buildTreeChildren(root, snap, d, treeDepth, 1)
		fmt.Print(ui.RenderTree(root))

		fmt.Println()
		fmt.Println(ui.Count(docTree.Count()-1, "node", "nodes"))
		return nil
	},
}

func buildTreeChildren(parent *ui.TreeNode, snap *document.Snapshot, d config.DiagramConfig, maxDepth, depth int) {
	if maxDepth > 0 && depth > maxDepth {
		return
	}
	for _, child := range snap.Children {
		if skipTreeNode(child, d) {
			continue
		}
		node := parent.AddChild(treeNodeLabel(&child.Node, d))
		buildTreeChildren(node, child, d, maxDepth, depth+1)
	}
}

// skipTreeNode hides metadata and empty anonymous nodes in compact mode.
func skipTreeNode(s *document.Snapshot, d config.DiagramConfig) bool {
	if !d.Compact {
		return false
	}
	switch s.Kind {
	case address.KindAnnotation, address.KindDocumentation:
		return true
	}
	return s.Name == "" && len(s.Children) == 0
}

func treeNodeLabel(n *document.Node, d config.DiagramConfig) string {
	var sb strings.Builder
	sb.WriteString(string(n.Kind))
	if n.Name != "" {
		sb.WriteString(" ")
		sb.WriteString(ui.Bold.Render(n.Name))
	}

	if d.ShowTypes {
		switch {
		case n.Type != "":
			sb.WriteString(" : " + n.Type)
		case n.Ref != "":
			sb.WriteString(" ref " + n.Ref)
		case n.BaseType != "":
			sb.WriteString(" base " + n.BaseType)
		}
		if n.ContentModel != "" {
			sb.WriteString(" (" + string(n.ContentModel) + ")")
		}
		if n.Kind == address.KindSchema && n.TargetNamespace != "" {
			sb.WriteString(" " + ui.Muted.Render(n.TargetNamespace))
		}
	}

	if d.ShowOccurrences {
		if rng := occursRange(n); rng != "" {
			sb.WriteString(" " + ui.Muted.Render(rng))
		}
	}

	if d.ShowDocumentation && n.Documentation != "" {
		sb.WriteString(" " + ui.Muted.Render(docPreview(n.Documentation)))
	}

	return sb.String()
}

// occursRange formats [min..max] with "*" for unbounded. Nodes with
// neither bound set yield "".
func occursRange(n *document.Node) string {
	if n.MinOccurs == nil && n.MaxOccurs == nil {
		return ""
	}
	low, high := "1", "1"
	if n.MinOccurs != nil {
		low = n.MinOccurs.String()
	}
	if n.MaxOccurs != nil {
		if n.MaxOccurs.IsUnbounded() {
			high = "*"
		} else {
			high = n.MaxOccurs.String()
		}
	}
	return "[" + low + ".." + high + "]"
}

func docPreview(doc string) string {
	text := strings.Join(strings.Fields(doc), " ")
	runes := []rune(text)
	if len(runes) > treeDocPreviewLen {
		return string(runes[:treeDocPreviewLen]) + "..."
	}
	return text
}

func init() {
	treeCmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth to render (0 = unlimited)")
	treeCmd.Flags().BoolVar(&treeTypes, "types", false, "Show node types")
	treeCmd.Flags().BoolVar(&treeOccurrences, "occurrences", false, "Show occurrence ranges")
	treeCmd.Flags().BoolVar(&treeDocumentation, "documentation", false, "Show documentation text")
	treeCmd.Flags().BoolVar(&treeCompact, "compact", false, "Skip empty structural nodes")
	rootCmd.AddCommand(treeCmd)
}
