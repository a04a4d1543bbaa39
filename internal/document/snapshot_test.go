package document

import (
	"strings"
	"testing"

	"github.com/nbroch/skema/internal/address"
	"github.com/nbroch/skema/internal/occurs"
)

func buildFixtureTree(t *testing.T) *Tree {
	t.Helper()
	tree := New()
	tree.Root().TargetNamespace = "http://example.com/people"

	person := mustInsert(t, tree, "/schema", Node{Kind: address.KindElement, Name: "person", Type: "PersonType"})
	unbounded := occurs.Unbounded
	zero := occurs.FromInt(0)
	mustInsert(t, tree, person, Node{
		Kind: address.KindElement, Name: "address", Type: "AddressType",
		MinOccurs: &zero, MaxOccurs: &unbounded,
	})
	mustInsert(t, tree, "/schema", Node{Kind: address.KindComplexType, Name: "PersonType", ContentModel: "sequence"})
	mustInsert(t, tree, "/schema", Node{Kind: address.KindImport, Namespace: "http://example.com/common", SchemaLocation: "common.xsd"})
	return tree
}

func addresses(tree *Tree) []string {
	var out []string
	tree.Walk(func(addr string, n *Node) bool {
		out = append(out, addr)
		return true
	})
	return out
}

func TestSnapshotJSONRoundTrip(t *testing.T) {
	tree := buildFixtureTree(t)

	data, err := tree.EncodeJSON()
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	if !strings.Contains(string(data), `"maxOccurs": "unbounded"`) {
		t.Errorf("snapshot JSON lacks unbounded bound:\n%s", data)
	}

	back, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}

	want := addresses(tree)
	got := addresses(back)
	if len(got) != len(want) {
		t.Fatalf("addresses = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("address[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	n, ok := back.Get("/element:person/element:address[0]")
	if !ok {
		t.Fatal("address child missing after round trip")
	}
	if n.Type != "AddressType" {
		t.Errorf("Type = %q", n.Type)
	}
	if n.MaxOccurs == nil || !n.MaxOccurs.IsUnbounded() {
		t.Errorf("MaxOccurs = %v", n.MaxOccurs)
	}
	if back.Root().TargetNamespace != "http://example.com/people" {
		t.Errorf("TargetNamespace = %q", back.Root().TargetNamespace)
	}
}

func TestSnapshotYAMLRoundTrip(t *testing.T) {
	tree := buildFixtureTree(t)

	data, err := tree.EncodeYAML()
	if err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}
	back, err := DecodeYAML(data)
	if err != nil {
		t.Fatalf("DecodeYAML: %v", err)
	}
	if back.Count() != tree.Count() {
		t.Errorf("Count = %d, want %d", back.Count(), tree.Count())
	}
	n, ok := back.Get("/element:person/element:address[0]")
	if !ok || n.MaxOccurs == nil || !n.MaxOccurs.IsUnbounded() {
		t.Errorf("unbounded bound lost in YAML round trip: %+v ok=%v", n, ok)
	}
}

func TestDecodeYAMLComputesAddresses(t *testing.T) {
	fixture := `
kind: schema
targetNamespace: http://example.com/people
children:
  - kind: element
    name: person
    children:
      - kind: element
        name: address
        type: AddressType
        maxOccurs: unbounded
      - kind: anonymousComplexType
        contentModel: sequence
  - kind: import
    namespace: http://example.com/common
    schemaLocation: common.xsd
`
	tree, err := DecodeYAML([]byte(fixture))
	if err != nil {
		t.Fatalf("DecodeYAML: %v", err)
	}

	for _, addr := range []string{
		"/element:person",
		"/element:person/element:address[0]",
		"/element:person/anonymousComplexType[0]",
		"/import[0]",
	} {
		if _, ok := tree.Get(addr); !ok {
			t.Errorf("missing %s", addr)
		}
	}
}

func TestFromSnapshotRejectsBadRoot(t *testing.T) {
	if _, err := FromSnapshot(nil); err == nil {
		t.Error("nil snapshot accepted")
	}
	s := &Snapshot{Node: Node{Kind: address.KindElement, Name: "person"}}
	if _, err := FromSnapshot(s); err == nil {
		t.Error("non-schema root accepted")
	}
}
