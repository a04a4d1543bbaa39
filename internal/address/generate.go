package address

import (
	"strconv"
	"strings"
)

// Generate builds the address for the node described by p.
//
// The trailing segment is kind[:{namespace}name][[position]]; a name-less
// node with a position collapses to kind[position], and a node with neither
// collapses to the bare kind token. When a parent address is supplied the
// segment is appended to the normalized parent, otherwise the segment forms
// a single-segment address.
//
// Generate is total over well-formed inputs and performs no legality
// checks; see the validate package for those.
func Generate(p Params) string {
	var b strings.Builder
	b.WriteString(string(p.Kind))
	if p.Name != "" {
		b.WriteByte(':')
		if p.Namespace != "" {
			b.WriteByte('{')
			b.WriteString(p.Namespace)
			b.WriteByte('}')
		}
		b.WriteString(p.Name)
	}
	if p.Position != nil {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(*p.Position))
		b.WriteByte(']')
	}

	if p.Parent == "" {
		return "/" + b.String()
	}
	return normalizeParent(p.Parent) + "/" + b.String()
}

// normalizeParent guarantees a leading "/" and strips trailing separators so
// concatenation cannot produce empty segments.
func normalizeParent(parent string) string {
	if !strings.HasPrefix(parent, "/") {
		parent = "/" + parent
	}
	for len(parent) > 1 && strings.HasSuffix(parent, "/") {
		parent = parent[:len(parent)-1]
	}
	if parent == "/" {
		return ""
	}
	return parent
}

// Child returns the address of a child node directly, a convenience over
// Generate for callers that already hold the parent address.
func Child(parent string, kind Kind, name string, position *int) string {
	return Generate(Params{Kind: kind, Name: name, Parent: parent, Position: position})
}
