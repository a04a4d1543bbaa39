package cli

import (
	"strings"
	"testing"

	"github.com/nbroch/skema/internal/address"
	"github.com/nbroch/skema/internal/config"
	"github.com/nbroch/skema/internal/document"
	"github.com/nbroch/skema/internal/occurs"
	"github.com/nbroch/skema/internal/ui"
)

func occursPtr(o occurs.Occurs) *occurs.Occurs {
	return &o
}

func TestOccursRange(t *testing.T) {
	tests := []struct {
		name string
		node document.Node
		want string
	}{
		{
			name: "no bounds",
			node: document.Node{},
			want: "",
		},
		{
			name: "optional",
			node: document.Node{MinOccurs: occursPtr(occurs.FromInt(0)), MaxOccurs: occursPtr(occurs.FromInt(1))},
			want: "[0..1]",
		},
		{
			name: "repeating",
			node: document.Node{MinOccurs: occursPtr(occurs.FromInt(1)), MaxOccurs: occursPtr(occurs.Unbounded)},
			want: "[1..*]",
		},
		{
			name: "min only defaults max",
			node: document.Node{MinOccurs: occursPtr(occurs.FromInt(0))},
			want: "[0..1]",
		},
		{
			name: "max only defaults min",
			node: document.Node{MaxOccurs: occursPtr(occurs.FromInt(5))},
			want: "[1..5]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := occursRange(&tt.node); got != tt.want {
				t.Fatalf("occursRange() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDocPreview(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "short passes through", in: "A person.", want: "A person."},
		{name: "whitespace collapses", in: "one\n  two\tthree", want: "one two three"},
		{
			name: "long text truncated",
			in:   strings.Repeat("ab ", 40),
			want: strings.Repeat("ab ", 16) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := docPreview(tt.in); got != tt.want {
				t.Fatalf("docPreview(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSkipTreeNode(t *testing.T) {
	compact := config.DiagramConfig{Compact: true}
	full := config.DiagramConfig{}

	annotation := &document.Snapshot{Node: document.Node{Kind: address.KindAnnotation}}
	docNode := &document.Snapshot{Node: document.Node{Kind: address.KindDocumentation}}
	emptyAnon := &document.Snapshot{Node: document.Node{Kind: address.KindAnonymousComplexType}}
	filledAnon := &document.Snapshot{
		Node:     document.Node{Kind: address.KindAnonymousComplexType},
		Children: []*document.Snapshot{{Node: document.Node{Kind: address.KindElement, Name: "street"}}},
	}
	named := &document.Snapshot{Node: document.Node{Kind: address.KindElement, Name: "person"}}

	tests := []struct {
		name string
		snap *document.Snapshot
		d    config.DiagramConfig
		want bool
	}{
		{name: "annotation hidden in compact", snap: annotation, d: compact, want: true},
		{name: "documentation hidden in compact", snap: docNode, d: compact, want: true},
		{name: "empty anonymous hidden in compact", snap: emptyAnon, d: compact, want: true},
		{name: "anonymous with children kept", snap: filledAnon, d: compact, want: false},
		{name: "named node kept", snap: named, d: compact, want: false},
		{name: "nothing hidden without compact", snap: annotation, d: full, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := skipTreeNode(tt.snap, tt.d); got != tt.want {
				t.Fatalf("skipTreeNode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTreeNodeLabel(t *testing.T) {
	showTypes := config.DiagramConfig{ShowTypes: true}

	tests := []struct {
		name string
		node document.Node
		d    config.DiagramConfig
		want []string
		skip []string
	}{
		{
			name: "plain label without toggles",
			node: document.Node{Kind: address.KindElement, Name: "person", Type: "xs:string"},
			d:    config.DiagramConfig{},
			want: []string{"element", "person"},
			skip: []string{"xs:string"},
		},
		{
			name: "typed element",
			node: document.Node{Kind: address.KindElement, Name: "person", Type: "personType"},
			d:    showTypes,
			want: []string{"element", "person", ": personType"},
		},
		{
			name: "reference element",
			node: document.Node{Kind: address.KindElement, Ref: "party"},
			d:    showTypes,
			want: []string{"ref party"},
		},
		{
			name: "derived simple type",
			node: document.Node{Kind: address.KindSimpleType, Name: "zipType", BaseType: "xs:string"},
			d:    showTypes,
			want: []string{"simpleType", "zipType", "base xs:string"},
		},
		{
			name: "complex type content model",
			node: document.Node{Kind: address.KindComplexType, Name: "addressType", ContentModel: "sequence"},
			d:    showTypes,
			want: []string{"complexType", "addressType", "(sequence)"},
		},
		{
			name: "schema root shows target namespace",
			node: document.Node{Kind: address.KindSchema, Name: "order", TargetNamespace: "http://example.com/order"},
			d:    showTypes,
			want: []string{"schema", "order", "http://example.com/order"},
		},
		{
			name: "occurrence range",
			node: document.Node{
				Kind:      address.KindElement,
				Name:      "line",
				MinOccurs: occursPtr(occurs.FromInt(0)),
				MaxOccurs: occursPtr(occurs.Unbounded),
			},
			d:    config.DiagramConfig{ShowOccurrences: true},
			want: []string{"line", "[0..*]"},
		},
		{
			name: "documentation preview",
			node: document.Node{Kind: address.KindElement, Name: "person", Documentation: "A person record."},
			d:    config.DiagramConfig{ShowDocumentation: true},
			want: []string{"person", "A person record."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := treeNodeLabel(&tt.node, tt.d)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Fatalf("label %q missing %q", got, want)
				}
			}
			for _, skip := range tt.skip {
				if strings.Contains(got, skip) {
					t.Fatalf("label %q unexpectedly contains %q", got, skip)
				}
			}
		})
	}
}

func TestBuildTreeChildrenDepthLimit(t *testing.T) {
	snap := &document.Snapshot{
		Node: document.Node{Kind: address.KindSchema, Name: "schema"},
		Children: []*document.Snapshot{
			{
				Node: document.Node{Kind: address.KindElement, Name: "person"},
				Children: []*document.Snapshot{
					{Node: document.Node{Kind: address.KindAttribute, Name: "id"}},
				},
			},
		},
	}
	d := config.DiagramConfig{}

	unlimited := &ui.TreeNode{Label: "root"}
	buildTreeChildren(unlimited, snap, d, 0, 1)
	if len(unlimited.Children) != 1 || len(unlimited.Children[0].Children) != 1 {
		t.Fatalf("unlimited depth lost nodes: %+v", unlimited)
	}

	capped := &ui.TreeNode{Label: "root"}
	buildTreeChildren(capped, snap, d, 1, 1)
	if len(capped.Children) != 1 {
		t.Fatalf("depth 1 should keep direct children, got %d", len(capped.Children))
	}
	if len(capped.Children[0].Children) != 0 {
		t.Fatalf("depth 1 should prune grandchildren, got %d", len(capped.Children[0].Children))
	}
}

func TestBuildTreeChildrenCompactSkips(t *testing.T) {
	snap := &document.Snapshot{
		Node: document.Node{Kind: address.KindSchema},
		Children: []*document.Snapshot{
			{Node: document.Node{Kind: address.KindElement, Name: "person"}},
			{Node: document.Node{Kind: address.KindAnnotation}},
		},
	}

	root := &ui.TreeNode{Label: "root"}
	buildTreeChildren(root, snap, config.DiagramConfig{Compact: true}, 0, 1)
	if len(root.Children) != 1 {
		t.Fatalf("compact tree kept %d children, want 1", len(root.Children))
	}
	if !strings.Contains(root.Children[0].Label, "person") {
		t.Fatalf("surviving child = %q, want the person element", root.Children[0].Label)
	}
}
