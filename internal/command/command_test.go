package command

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/nbroch/skema/internal/occurs"
)

func TestCatalogClosed(t *testing.T) {
	if got := len(Types()); got != 30 {
		t.Fatalf("catalog has %d tags, want 30", got)
	}

	seen := make(map[Type]bool)
	for _, typ := range Types() {
		if seen[typ] {
			t.Errorf("duplicate tag %q", typ)
		}
		seen[typ] = true

		// Every tag must decode to a concrete payload shape.
		raw := fmt.Sprintf(`{"type":%q,"payload":{}}`, typ)
		var c Command
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			t.Errorf("tag %q has no payload decoder: %v", typ, err)
			continue
		}
		if c.Payload == nil {
			t.Errorf("tag %q decoded to nil payload", typ)
		}
	}
}

func TestTagShape(t *testing.T) {
	for _, typ := range Types() {
		verb := typ.Verb()
		if verb == "" {
			t.Errorf("tag %q has no verb", typ)
			continue
		}
		if !strings.HasPrefix(string(typ), string(verb)) {
			t.Errorf("tag %q does not start with its verb %q", typ, verb)
		}
		if typ.Family() == "" {
			t.Errorf("tag %q has no family", typ)
		}
	}
}

func TestUnmarshalAddElement(t *testing.T) {
	raw := `{"type":"addElement","payload":{"parent":"/element:person","name":"address","type":"AddressType"}}`

	var c Command
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if c.Type != AddElement {
		t.Errorf("Type = %q, want %q", c.Type, AddElement)
	}
	p, ok := c.Payload.(AddElementPayload)
	if !ok {
		t.Fatalf("Payload is %T, want AddElementPayload", c.Payload)
	}
	if p.Parent != "/element:person" || p.Name != "address" || p.Type != "AddressType" {
		t.Errorf("payload = %+v", p)
	}
	if p.MinOccurs != nil || p.MaxOccurs != nil {
		t.Errorf("occurrence bounds should be absent, got min=%v max=%v", p.MinOccurs, p.MaxOccurs)
	}
}

func TestUnmarshalOccurrenceBounds(t *testing.T) {
	raw := `{"type":"addElement","payload":{"parent":"/schema","name":"item","type":"xs:string","minOccurs":0,"maxOccurs":"unbounded"}}`

	var c Command
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	p := c.Payload.(AddElementPayload)
	if p.MinOccurs == nil || p.MinOccurs.Value() != 0 {
		t.Errorf("MinOccurs = %v, want 0", p.MinOccurs)
	}
	if p.MaxOccurs == nil || !p.MaxOccurs.IsUnbounded() {
		t.Errorf("MaxOccurs = %v, want unbounded", p.MaxOccurs)
	}
}

func TestUnmarshalUnknownTag(t *testing.T) {
	var c Command
	err := json.Unmarshal([]byte(`{"type":"renameElement","payload":{}}`), &c)
	if err == nil {
		t.Fatal("unknown tag decoded without error")
	}
	if !strings.Contains(err.Error(), "renameElement") {
		t.Errorf("error %q does not name the offending tag", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	name := "person"
	min := occurs.FromInt(1)
	orig := New(ModifyElement, ModifyElementPayload{
		ElementAddress: "/element:person",
		Name:           &name,
		MinOccurs:      &min,
	})

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var back Command
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	p, ok := back.Payload.(ModifyElementPayload)
	if !ok {
		t.Fatalf("Payload is %T, want ModifyElementPayload", back.Payload)
	}
	if p.ElementAddress != "/element:person" {
		t.Errorf("ElementAddress = %q", p.ElementAddress)
	}
	if p.Name == nil || *p.Name != "person" {
		t.Errorf("Name = %v, want person", p.Name)
	}
	if p.MinOccurs == nil || p.MinOccurs.Value() != 1 {
		t.Errorf("MinOccurs = %v, want 1", p.MinOccurs)
	}
	if p.Type != nil || p.Ref != nil || p.MaxOccurs != nil || p.Documentation != nil {
		t.Errorf("unset fields should stay nil: %+v", p)
	}
}

func TestVerbFamilyProjections(t *testing.T) {
	tests := []struct {
		typ    Type
		verb   Verb
		family Family
	}{
		{AddElement, VerbAdd, FamilyElement},
		{RemoveAttribute, VerbRemove, FamilyAttribute},
		{ModifySimpleType, VerbModify, FamilySimpleType},
		{AddAttributeGroup, VerbAdd, FamilyAttributeGroup},
		{ModifyInclude, VerbModify, FamilyInclude},
	}
	for _, tt := range tests {
		if got := tt.typ.Verb(); got != tt.verb {
			t.Errorf("%s.Verb() = %q, want %q", tt.typ, got, tt.verb)
		}
		if got := tt.typ.Family(); got != tt.family {
			t.Errorf("%s.Family() = %q, want %q", tt.typ, got, tt.family)
		}
	}

	if Type("dropTable").IsValid() {
		t.Error("dropTable should not be a valid tag")
	}
	if got := Type("dropTable").Verb(); got != "" {
		t.Errorf("unknown tag Verb() = %q, want empty", got)
	}
}

func TestContentModel(t *testing.T) {
	for _, m := range ContentModels() {
		if !m.IsValid() {
			t.Errorf("%q should be valid", m)
		}
	}
	if ContentModel("mixed").IsValid() {
		t.Error("mixed is not a compositor")
	}
	if ContentModel("").IsValid() {
		t.Error("empty compositor should be invalid")
	}
}
