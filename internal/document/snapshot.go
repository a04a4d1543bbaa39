package document

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nbroch/skema/internal/address"
)

// Snapshot is the nested wire form of a tree, the data of updateSchema
// and schemaModified messages. Addresses are included for readers but are
// derived state: decoding recomputes every address from structure alone,
// which keeps a snapshot and the arena it builds consistent by
// construction.
type Snapshot struct {
	Node `yaml:",inline"`

	Address  string      `json:"address,omitempty" yaml:"address,omitempty"`
	Children []*Snapshot `json:"children,omitempty" yaml:"children,omitempty"`
}

// Snapshot renders the whole tree in nested form.
func (t *Tree) Snapshot() *Snapshot {
	return t.snapshotAt(address.Root)
}

func (t *Tree) snapshotAt(addr string) *Snapshot {
	s := &Snapshot{Address: addr, Node: *t.nodes[addr]}
	for _, kid := range t.children[addr] {
		s.Children = append(s.Children, t.snapshotAt(kid))
	}
	return s
}

// FromSnapshot rebuilds an arena from nested form.
func FromSnapshot(s *Snapshot) (*Tree, error) {
	if s == nil {
		return nil, errors.New("nil snapshot")
	}
	if s.Kind != address.KindSchema {
		return nil, fmt.Errorf("snapshot root has kind %q, want %q", s.Kind, address.KindSchema)
	}

	t := New()
	*t.Root() = s.Node
	t.Root().Kind = address.KindSchema
	for _, kid := range s.Children {
		if err := t.insertSnapshot(address.Root, kid); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Tree) insertSnapshot(parent string, s *Snapshot) error {
	addr, err := t.Insert(parent, s.Node)
	if err != nil {
		return err
	}
	for _, kid := range s.Children {
		if err := t.insertSnapshot(addr, kid); err != nil {
			return err
		}
	}
	return nil
}

// EncodeJSON renders the tree as an indented JSON snapshot.
func (t *Tree) EncodeJSON() ([]byte, error) {
	return json.MarshalIndent(t.Snapshot(), "", "  ")
}

// DecodeJSON rebuilds a tree from a JSON snapshot.
func DecodeJSON(data []byte) (*Tree, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return FromSnapshot(&s)
}

// EncodeYAML renders the tree as a YAML snapshot, the fixture format.
func (t *Tree) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(t.Snapshot())
}

// DecodeYAML rebuilds a tree from a YAML snapshot.
func DecodeYAML(data []byte) (*Tree, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return FromSnapshot(&s)
}
