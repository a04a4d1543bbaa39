package address

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		addr       string
		wantKind   Kind
		wantName   string
		wantNS     string
		wantPos    *int
		wantParent string
		wantSegs   int
	}{
		{
			name:     "top-level element",
			addr:     "/element:person",
			wantKind: KindElement,
			wantName: "person",
			wantSegs: 1,
		},
		{
			name:       "child with position",
			addr:       "/element:person/element:address[0]",
			wantKind:   KindElement,
			wantName:   "address",
			wantPos:    intPtr(0),
			wantParent: "/element:person",
			wantSegs:   2,
		},
		{
			name:     "bare kind stays name-less",
			addr:     "/schema",
			wantKind: KindSchema,
			wantSegs: 1,
		},
		{
			name:       "anonymous kind with position",
			addr:       "/element:person/anonymousComplexType[0]",
			wantKind:   KindAnonymousComplexType,
			wantPos:    intPtr(0),
			wantParent: "/element:person",
			wantSegs:   2,
		},
		{
			name:     "namespace with slashes is not split",
			addr:     "/element:{http://example.com/ns}person",
			wantKind: KindElement,
			wantName: "person",
			wantNS:   "http://example.com/ns",
			wantSegs: 1,
		},
		{
			name:       "namespaced segment in the middle",
			addr:       "/element:{http://example.com/a/b}order/element:item[3]",
			wantKind:   KindElement,
			wantName:   "item",
			wantPos:    intPtr(3),
			wantParent: "/element:{http://example.com/a/b}order",
			wantSegs:   2,
		},
		{
			name:     "colon inside namespace does not split kind",
			addr:     "/element:{urn:example:ns}thing",
			wantKind: KindElement,
			wantName: "thing",
			wantNS:   "urn:example:ns",
			wantSegs: 1,
		},
		{
			name:     "non-numeric position folds into the name",
			addr:     "/element:person[abc]",
			wantKind: KindElement,
			wantName: "person[abc]",
			wantSegs: 1,
		},
		{
			name:     "negative position folds into the name",
			addr:     "/element:person[-1]",
			wantKind: KindElement,
			wantName: "person[-1]",
			wantSegs: 1,
		},
		{
			name:     "unterminated bracket folds into the name",
			addr:     "/element:person[3",
			wantKind: KindElement,
			wantName: "person[3",
			wantSegs: 1,
		},
		{
			name:     "empty brackets fold into the name",
			addr:     "/element:person[]",
			wantKind: KindElement,
			wantName: "person[]",
			wantSegs: 1,
		},
		{
			name:     "unbalanced brace stays literal",
			addr:     "/element:{urn:brokenperson",
			wantKind: KindElement,
			wantName: "{urn:brokenperson",
			wantSegs: 1,
		},
		{
			name:       "three levels derive a two-segment parent",
			addr:       "/element:person/anonymousComplexType[0]/element:street[1]",
			wantKind:   KindElement,
			wantName:   "street",
			wantPos:    intPtr(1),
			wantParent: "/element:person/anonymousComplexType[0]",
			wantSegs:   3,
		},
		{
			name:     "unknown kind token is preserved",
			addr:     "/widget:thing",
			wantKind: Kind("widget"),
			wantName: "thing",
			wantSegs: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.addr)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.addr, err)
			}
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", got.Kind, tt.wantKind)
			}
			if got.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantName)
			}
			if got.Namespace != tt.wantNS {
				t.Errorf("Namespace = %q, want %q", got.Namespace, tt.wantNS)
			}
			if (got.Position == nil) != (tt.wantPos == nil) {
				t.Fatalf("Position = %v, want %v", got.Position, tt.wantPos)
			}
			if got.Position != nil && *got.Position != *tt.wantPos {
				t.Errorf("Position = %d, want %d", *got.Position, *tt.wantPos)
			}
			if got.Parent != tt.wantParent {
				t.Errorf("Parent = %q, want %q", got.Parent, tt.wantParent)
			}
			if len(got.Segments) != tt.wantSegs {
				t.Errorf("Segments = %v, want %d segments", got.Segments, tt.wantSegs)
			}
		})
	}
}

func TestParseRejectsMissingLeadingSlash(t *testing.T) {
	for _, addr := range []string{"", "element:person", "relative/path", " /element:person"} {
		_, err := Parse(addr)
		if err == nil {
			t.Errorf("Parse(%q) error = nil, want FormatError", addr)
			continue
		}
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("Parse(%q) error = %T, want *FormatError", addr, err)
		}
	}
}

func TestIsTopLevel(t *testing.T) {
	top, err := IsTopLevel("/element:person")
	if err != nil {
		t.Fatalf("IsTopLevel() error = %v", err)
	}
	if !top {
		t.Error("IsTopLevel(/element:person) = false, want true")
	}

	top, err = IsTopLevel("/element:person/element:address[0]")
	if err != nil {
		t.Fatalf("IsTopLevel() error = %v", err)
	}
	if top {
		t.Error("IsTopLevel(/element:person/element:address[0]) = true, want false")
	}

	if _, err := IsTopLevel("element:person"); err == nil {
		t.Error("IsTopLevel without leading slash: error = nil, want FormatError")
	}
}

func TestProjections(t *testing.T) {
	parent, err := ParentOf("/element:person/element:address[0]")
	if err != nil {
		t.Fatalf("ParentOf() error = %v", err)
	}
	if parent != "/element:person" {
		t.Errorf("ParentOf() = %q, want %q", parent, "/element:person")
	}

	parent, err = ParentOf("/element:person")
	if err != nil {
		t.Fatalf("ParentOf() error = %v", err)
	}
	if parent != "" {
		t.Errorf("ParentOf(top-level) = %q, want empty", parent)
	}

	kind, err := KindOf("/complexType:PersonType")
	if err != nil {
		t.Fatalf("KindOf() error = %v", err)
	}
	if kind != KindComplexType {
		t.Errorf("KindOf() = %q, want %q", kind, KindComplexType)
	}

	name, err := NameOf("/element:{http://example.com/ns}person")
	if err != nil {
		t.Fatalf("NameOf() error = %v", err)
	}
	if name != "person" {
		t.Errorf("NameOf() = %q, want %q", name, "person")
	}
}

func TestIsRoot(t *testing.T) {
	if !IsRoot("/schema") {
		t.Error("IsRoot(/schema) = false, want true")
	}
	if !IsRoot("/") {
		t.Error("IsRoot(/) = false, want true")
	}
	if IsRoot("/element:person") {
		t.Error("IsRoot(/element:person) = true, want false")
	}
}
