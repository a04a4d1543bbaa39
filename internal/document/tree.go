package document

import (
	"errors"
	"fmt"

	"github.com/nbroch/skema/internal/address"
)

var (
	// ErrNotFound means no node lives at the address.
	ErrNotFound = errors.New("node not found")
	// ErrExists means a node already occupies the address.
	ErrExists = errors.New("node already exists")
	// ErrRoot means the operation is not allowed on the schema root.
	ErrRoot = errors.New("operation not allowed on the schema root")
)

// Tree is the arena. The schema root always lives at address.Root;
// top-level components are its children even though their addresses are
// single-segment (the root is not a path prefix).
type Tree struct {
	nodes    map[string]*Node
	children map[string][]string
	parents  map[string]string
}

// New returns a tree holding only the schema root.
func New() *Tree {
	t := &Tree{
		nodes:    make(map[string]*Node),
		children: make(map[string][]string),
		parents:  make(map[string]string),
	}
	t.nodes[address.Root] = &Node{Kind: address.KindSchema}
	return t
}

func normalize(addr string) string {
	if address.IsRoot(addr) {
		return address.Root
	}
	return addr
}

// Get returns the node at addr. The pointer is live: property edits that
// do not change the node's name must go through it, renames through
// Rename.
func (t *Tree) Get(addr string) (*Node, bool) {
	n, ok := t.nodes[normalize(addr)]
	return n, ok
}

// Root returns the schema root node.
func (t *Tree) Root() *Node {
	return t.nodes[address.Root]
}

// Children returns the ordered child addresses of addr.
func (t *Tree) Children(addr string) []string {
	kids := t.children[normalize(addr)]
	out := make([]string, len(kids))
	copy(out, kids)
	return out
}

// Parent returns the parent address of addr. The root has none; for
// top-level components the parent is address.Root.
func (t *Tree) Parent(addr string) (string, bool) {
	p, ok := t.parents[normalize(addr)]
	return p, ok
}

// Count returns the number of nodes including the root.
func (t *Tree) Count() int {
	return len(t.nodes)
}

// cohortKey groups siblings that share an address stem: same kind and
// name (nameless nodes group by kind alone). The position assigned to a
// node is its index within its cohort.
func cohortKey(n *Node) string {
	return string(n.Kind) + "\x00" + n.Namespace + "\x00" + n.Name
}

// childAddress computes the address of a node sitting at cohort index idx
// under parent. Named top-level components carry no position (their names
// are unique per kind); everything else is disambiguated by position.
func childAddress(parent string, n *Node, idx int) string {
	p := address.Params{
		Kind:      n.Kind,
		Name:      n.Name,
		Namespace: n.Namespace,
	}
	if parent != address.Root {
		p.Parent = parent
		p.Position = &idx
	} else if n.Anonymous() {
		p.Position = &idx
	}
	return address.Generate(p)
}

func (t *Tree) cohortSize(parent string, key string) int {
	size := 0
	for _, sib := range t.children[parent] {
		if cohortKey(t.nodes[sib]) == key {
			size++
		}
	}
	return size
}

// Insert adds n as the last child of parent and returns the address it
// was assigned.
func (t *Tree) Insert(parent string, n Node) (string, error) {
	p := normalize(parent)
	if _, ok := t.nodes[p]; !ok {
		return "", fmt.Errorf("parent %s: %w", parent, ErrNotFound)
	}
	if !n.Kind.IsValid() {
		return "", fmt.Errorf("invalid node kind %q", n.Kind)
	}

	node := n
	idx := t.cohortSize(p, cohortKey(&node))
	addr := childAddress(p, &node, idx)
	if _, taken := t.nodes[addr]; taken {
		return "", fmt.Errorf("node %s: %w", addr, ErrExists)
	}

	t.nodes[addr] = &node
	t.children[p] = append(t.children[p], addr)
	t.parents[addr] = p
	return addr, nil
}

// Remove deletes the subtree at addr and re-addresses displaced siblings.
func (t *Tree) Remove(addr string) error {
	a := normalize(addr)
	if a == address.Root {
		return ErrRoot
	}
	if _, ok := t.nodes[a]; !ok {
		return fmt.Errorf("node %s: %w", addr, ErrNotFound)
	}

	p := t.parents[a]
	t.deleteSubtree(a)

	kids := t.children[p]
	for i, kid := range kids {
		if kid == a {
			t.children[p] = append(kids[:i:i], kids[i+1:]...)
			break
		}
	}
	t.reindex(p)
	return nil
}

// Rename changes the node's name and returns its new address. Later
// siblings in both the old and new cohorts are re-addressed.
func (t *Tree) Rename(addr, newName string) (string, error) {
	a := normalize(addr)
	if a == address.Root {
		return "", ErrRoot
	}
	n, ok := t.nodes[a]
	if !ok {
		return "", fmt.Errorf("node %s: %w", addr, ErrNotFound)
	}
	if n.Name == newName {
		return a, nil
	}

	p := t.parents[a]
	if p == address.Root && newName != "" {
		probe := Node{Kind: n.Kind, Name: newName, Namespace: n.Namespace}
		if t.cohortSize(p, cohortKey(&probe)) > 0 {
			return "", fmt.Errorf("top-level %s %q: %w", n.Kind, newName, ErrExists)
		}
	}

	n.Name = newName
	t.reindex(p)
	for _, kid := range t.children[p] {
		if t.nodes[kid] == n {
			return kid, nil
		}
	}
	return "", fmt.Errorf("node %s: %w", addr, ErrNotFound)
}

func (t *Tree) deleteSubtree(addr string) {
	for _, kid := range t.children[addr] {
		t.deleteSubtree(kid)
	}
	delete(t.children, addr)
	delete(t.parents, addr)
	delete(t.nodes, addr)
}

// reindex recomputes every child address under parent and moves the
// subtrees whose addresses changed. Movers are detached before any is
// reattached: after a rename, one sibling's old address can be another
// sibling's new one.
func (t *Tree) reindex(parent string) {
	kids := t.children[parent]
	counts := make(map[string]int)
	wants := make([]string, len(kids))
	for i, kid := range kids {
		n := t.nodes[kid]
		key := cohortKey(n)
		wants[i] = childAddress(parent, n, counts[key])
		counts[key]++
	}

	detached := make(map[string]*subtree)
	for i, kid := range kids {
		if wants[i] != kid {
			detached[kid] = t.detach(kid)
		}
	}
	if len(detached) == 0 {
		return
	}
	for i, kid := range kids {
		if s, moved := detached[kid]; moved {
			t.attach(wants[i], s, parent)
			kids[i] = wants[i]
		}
	}
}

// subtree is a detached slice of the arena, held only while reindex moves
// it to its new address.
type subtree struct {
	node *Node
	kids []*subtree
}

func (t *Tree) detach(addr string) *subtree {
	s := &subtree{node: t.nodes[addr]}
	for _, kid := range t.children[addr] {
		s.kids = append(s.kids, t.detach(kid))
	}
	delete(t.nodes, addr)
	delete(t.parents, addr)
	delete(t.children, addr)
	return s
}

// attach reinserts a detached subtree at addr, recomputing descendant
// addresses under the new prefix. Cohort order inside the subtree is
// untouched, so positions are preserved.
func (t *Tree) attach(addr string, s *subtree, parent string) {
	t.nodes[addr] = s.node
	t.parents[addr] = parent
	if len(s.kids) == 0 {
		return
	}
	names := make([]string, len(s.kids))
	counts := make(map[string]int)
	for i, kid := range s.kids {
		key := cohortKey(kid.node)
		kidAddr := childAddress(addr, kid.node, counts[key])
		counts[key]++
		t.attach(kidAddr, kid, addr)
		names[i] = kidAddr
	}
	t.children[addr] = names
}

// Walk visits every node depth-first in document order, root included.
// Returning false from fn stops the walk.
func (t *Tree) Walk(fn func(addr string, n *Node) bool) {
	t.walk(address.Root, fn)
}

func (t *Tree) walk(addr string, fn func(addr string, n *Node) bool) bool {
	if !fn(addr, t.nodes[addr]) {
		return false
	}
	for _, kid := range t.children[addr] {
		if !t.walk(kid, fn) {
			return false
		}
	}
	return true
}
