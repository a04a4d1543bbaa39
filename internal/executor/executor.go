// Package executor owns the live document tree and applies commands to it.
//
// Apply never panics and never returns a Go error: every outcome is a
// command.Response. Validation runs first; the checks the validators
// defer — parent and target existence, reference resolution, top-level
// name uniqueness — happen here, where the tree is visible. Apply is
// serialized by a mutex: the tree is this package's to lock.
package executor

import (
	"strings"
	"sync"

	"github.com/nbroch/skema/internal/address"
	"github.com/nbroch/skema/internal/command"
	"github.com/nbroch/skema/internal/document"
	"github.com/nbroch/skema/internal/validate"
)

// Executor applies commands to the tree it owns.
type Executor struct {
	mu   sync.Mutex
	tree *document.Tree
}

// New returns an executor over the given tree, or over a fresh empty
// schema when tree is nil.
func New(tree *document.Tree) *Executor {
	if tree == nil {
		tree = document.New()
	}
	return &Executor{tree: tree}
}

// Apply validates and executes one command.
func (e *Executor) Apply(c command.Command) command.Response {
	if r := validate.Command(c); !r.Valid {
		return command.Fail("%s", r.Error)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	switch p := c.Payload.(type) {
	case command.AddElementPayload:
		return e.addElement(p)
	case command.RemoveElementPayload:
		return e.removeElement(p)
	case command.ModifyElementPayload:
		return e.modifyElement(p)
	case command.AddAttributePayload:
		return e.addAttribute(p)
	case command.RemoveAttributePayload:
		return e.removeAttribute(p)
	case command.ModifyAttributePayload:
		return e.modifyAttribute(p)
	case command.AddSimpleTypePayload:
		return e.addSimpleType(p)
	case command.RemoveSimpleTypePayload:
		return e.removeSimpleType(p)
	case command.ModifySimpleTypePayload:
		return e.modifySimpleType(p)
	case command.AddComplexTypePayload:
		return e.addComplexType(p)
	case command.RemoveComplexTypePayload:
		return e.removeComplexType(p)
	case command.ModifyComplexTypePayload:
		return e.modifyComplexType(p)
	case command.AddGroupPayload:
		return e.addGroup(p)
	case command.RemoveGroupPayload:
		return e.removeGroup(p)
	case command.ModifyGroupPayload:
		return e.modifyGroup(p)
	case command.AddAttributeGroupPayload:
		return e.addAttributeGroup(p)
	case command.RemoveAttributeGroupPayload:
		return e.removeAttributeGroup(p)
	case command.ModifyAttributeGroupPayload:
		return e.modifyAttributeGroup(p)
	case command.AddAnnotationPayload:
		return e.addAnnotation(p)
	case command.RemoveAnnotationPayload:
		return e.removeAnnotation(p)
	case command.ModifyAnnotationPayload:
		return e.modifyAnnotation(p)
	case command.AddDocumentationPayload:
		return e.addDocumentation(p)
	case command.RemoveDocumentationPayload:
		return e.removeDocumentation(p)
	case command.ModifyDocumentationPayload:
		return e.modifyDocumentation(p)
	case command.AddImportPayload:
		return e.addImport(p)
	case command.RemoveImportPayload:
		return e.removeImport(p)
	case command.ModifyImportPayload:
		return e.modifyImport(p)
	case command.AddIncludePayload:
		return e.addInclude(p)
	case command.RemoveIncludePayload:
		return e.removeInclude(p)
	case command.ModifyIncludePayload:
		return e.modifyInclude(p)
	}
	return command.Fail("Unknown command type: %s", c.Type)
}

// Snapshot renders the current tree.
func (e *Executor) Snapshot() *document.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tree.Snapshot()
}

// Replace swaps in a freshly loaded tree, e.g. after the schema file
// changed on disk.
func (e *Executor) Replace(tree *document.Tree) {
	if tree == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tree = tree
}

// familyKinds maps a command family to the node kinds it may target.
var familyKinds = map[command.Family][]address.Kind{
	command.FamilyElement:        {address.KindElement},
	command.FamilyAttribute:      {address.KindAttribute},
	command.FamilySimpleType:     {address.KindSimpleType, address.KindAnonymousSimpleType},
	command.FamilyComplexType:    {address.KindComplexType, address.KindAnonymousComplexType},
	command.FamilyGroup:          {address.KindGroup},
	command.FamilyAttributeGroup: {address.KindAttributeGroup},
	command.FamilyAnnotation:     {address.KindAnnotation},
	command.FamilyDocumentation:  {address.KindDocumentation},
	command.FamilyImport:         {address.KindImport},
	command.FamilyInclude:        {address.KindInclude},
}

var familyNouns = map[command.Family]string{
	command.FamilyElement:        "an element",
	command.FamilyAttribute:      "an attribute",
	command.FamilySimpleType:     "a simple type",
	command.FamilyComplexType:    "a complex type",
	command.FamilyGroup:          "a group",
	command.FamilyAttributeGroup: "an attribute group",
	command.FamilyAnnotation:     "an annotation",
	command.FamilyDocumentation:  "a documentation block",
	command.FamilyImport:         "an import",
	command.FamilyInclude:        "an include",
}

// target resolves a remove/modify target and checks it belongs to the
// family. The returned response is meaningful only when ok is false.
func (e *Executor) target(family command.Family, addr string) (*document.Node, command.Response, bool) {
	n, found := e.tree.Get(addr)
	if !found {
		return nil, command.Fail("Node not found: %s", addr), false
	}
	for _, k := range familyKinds[family] {
		if n.Kind == k {
			return n, command.Response{}, true
		}
	}
	return nil, command.Fail("Target is not %s: %s", familyNouns[family], addr), false
}

// resolveRef looks a reference up among the top-level declarations of the
// given kind. A namespace prefix on the reference is ignored for lookup.
func (e *Executor) resolveRef(kind address.Kind, ref string) bool {
	name := ref
	if i := strings.LastIndex(ref, ":"); i >= 0 {
		name = ref[i+1:]
	}
	_, ok := e.tree.Get(address.Generate(address.Params{Kind: kind, Name: name}))
	return ok
}

// isTopLevel reports whether addr names a top-level node (the schema root
// counts). Malformed addresses are left for the tree lookup to reject.
func isTopLevel(addr string) bool {
	if address.IsRoot(addr) {
		return true
	}
	top, err := address.IsTopLevel(addr)
	return err == nil && top
}
