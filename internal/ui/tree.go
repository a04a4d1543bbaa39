package ui

import "strings"

// Tree glyphs for hierarchy rendering.
const (
	TreeBranch     = "├── "
	TreeLastBranch = "└── "
	TreeVertical   = "│   "
	TreeIndent     = "    "
)

// TreeNode is one node in a renderable tree.
type TreeNode struct {
	Label    string
	Children []*TreeNode
}

// AddChild appends a child node and returns it.
func (n *TreeNode) AddChild(label string) *TreeNode {
	child := &TreeNode{Label: label}
	n.Children = append(n.Children, child)
	return child
}

// RenderTree renders a tree with box-drawing branch glyphs. The root
// label is printed without a branch prefix.
func RenderTree(root *TreeNode) string {
	if root == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(root.Label)
	sb.WriteString("\n")
	renderChildren(&sb, root.Children, "")
	return sb.String()
}

func renderChildren(sb *strings.Builder, children []*TreeNode, prefix string) {
	for i, child := range children {
		last := i == len(children)-1

		sb.WriteString(prefix)
		if last {
			sb.WriteString(TreeLastBranch)
		} else {
			sb.WriteString(TreeBranch)
		}
		sb.WriteString(child.Label)
		sb.WriteString("\n")

		childPrefix := prefix + TreeVertical
		if last {
			childPrefix = prefix + TreeIndent
		}
		renderChildren(sb, child.Children, childPrefix)
	}
}
