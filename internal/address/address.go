// Package address implements the stable textual identifiers used to address
// nodes in a schema document tree.
//
// An address is a "/"-separated path of segments, one per ancestor, computed
// purely from structural facts (kind, name, namespace, sibling position) so
// that the editor and the host derive identical identifiers without any
// coordination. Examples:
//
//	/element:person
//	/element:person/element:address[0]
//	/element:{http://example.com/ns}person
//	/complexType:PersonType
//
// A position suffix disambiguates same-named siblings; a namespace is
// embedded in Clark notation ({uri}local). Generation performs no legality
// checks: validating names and occurrence ranges is the validate package's
// job, and existence checks belong to the executor.
package address

import "fmt"

// Kind identifies the category of an addressed schema node.
type Kind string

// Addressable node kinds. The set is closed; parsing preserves unknown
// tokens so validators can reject them with a useful message.
const (
	KindSchema               Kind = "schema"
	KindElement              Kind = "element"
	KindComplexType          Kind = "complexType"
	KindSimpleType           Kind = "simpleType"
	KindGroup                Kind = "group"
	KindAttributeGroup       Kind = "attributeGroup"
	KindAttribute            Kind = "attribute"
	KindAnonymousComplexType Kind = "anonymousComplexType"
	KindAnonymousSimpleType  Kind = "anonymousSimpleType"
	KindImport               Kind = "import"
	KindInclude              Kind = "include"
	KindAnnotation           Kind = "annotation"
	KindDocumentation        Kind = "documentation"
)

// Root is the address of the schema document root.
const Root = "/" + string(KindSchema)

// Kinds returns every addressable kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindSchema,
		KindElement,
		KindComplexType,
		KindSimpleType,
		KindGroup,
		KindAttributeGroup,
		KindAttribute,
		KindAnonymousComplexType,
		KindAnonymousSimpleType,
		KindImport,
		KindInclude,
		KindAnnotation,
		KindDocumentation,
	}
}

// IsValid reports whether k is one of the known node kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindSchema, KindElement, KindComplexType, KindSimpleType,
		KindGroup, KindAttributeGroup, KindAttribute,
		KindAnonymousComplexType, KindAnonymousSimpleType,
		KindImport, KindInclude, KindAnnotation, KindDocumentation:
		return true
	}
	return false
}

// Anonymous reports whether nodes of this kind are addressed without a name.
func (k Kind) Anonymous() bool {
	switch k {
	case KindAnonymousComplexType, KindAnonymousSimpleType,
		KindAnnotation, KindDocumentation, KindImport, KindInclude:
		return true
	}
	return false
}

// Params describes a node for address generation.
type Params struct {
	Kind      Kind   `json:"kind"`
	Name      string `json:"name,omitempty"`
	Parent    string `json:"parent,omitempty"`
	Position  *int   `json:"position,omitempty"`
	Namespace string `json:"namespace,omitempty"`
}

// Parsed is the structured form of an address.
//
// Parent is derived from the segment list (all but the last segment) and is
// empty for single-segment addresses. Segments holds the raw segment text in
// document order, including the final one.
type Parsed struct {
	Kind      Kind     `json:"kind"`
	Name      string   `json:"name,omitempty"`
	Namespace string   `json:"namespace,omitempty"`
	Position  *int     `json:"position,omitempty"`
	Parent    string   `json:"parent,omitempty"`
	Segments  []string `json:"segments"`
}

// FormatError reports a malformed address. The only hard failure today is a
// missing leading "/"; other malformed shapes parse permissively.
type FormatError struct {
	Address string
	Reason  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid node address %q: %s", e.Address, e.Reason)
}

// IsRoot reports whether addr addresses the schema document root.
func IsRoot(addr string) bool {
	return addr == Root || addr == "/"
}
