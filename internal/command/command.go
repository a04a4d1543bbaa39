// Package command defines the closed set of schema mutation commands and
// their payload shapes, plus the uniform response every command produces.
//
// Each command is discriminated by a fixed string tag (addElement,
// removeAttribute, ...). The tags form one closed union: ten component
// families crossed with the add/remove/modify verbs. Commands are transient
// values built by the editor and consumed once by the executor; they carry
// no identity beyond that single use.
package command

import (
	"encoding/json"
	"fmt"
)

// Type is a command discriminator tag.
type Type string

// Verb is the mutation verb encoded in a command tag.
type Verb string

// Family is the schema component family a command targets.
type Family string

const (
	VerbAdd    Verb = "add"
	VerbRemove Verb = "remove"
	VerbModify Verb = "modify"
)

const (
	FamilyElement        Family = "element"
	FamilyAttribute      Family = "attribute"
	FamilySimpleType     Family = "simpleType"
	FamilyComplexType    Family = "complexType"
	FamilyGroup          Family = "group"
	FamilyAttributeGroup Family = "attributeGroup"
	FamilyAnnotation     Family = "annotation"
	FamilyDocumentation  Family = "documentation"
	FamilyImport         Family = "import"
	FamilyInclude        Family = "include"
)

// The full command tag set. These literals are part of the wire protocol
// and must never change.
const (
	AddElement           Type = "addElement"
	RemoveElement        Type = "removeElement"
	ModifyElement        Type = "modifyElement"
	AddAttribute         Type = "addAttribute"
	RemoveAttribute      Type = "removeAttribute"
	ModifyAttribute      Type = "modifyAttribute"
	AddSimpleType        Type = "addSimpleType"
	RemoveSimpleType     Type = "removeSimpleType"
	ModifySimpleType     Type = "modifySimpleType"
	AddComplexType       Type = "addComplexType"
	RemoveComplexType    Type = "removeComplexType"
	ModifyComplexType    Type = "modifyComplexType"
	AddGroup             Type = "addGroup"
	RemoveGroup          Type = "removeGroup"
	ModifyGroup          Type = "modifyGroup"
	AddAttributeGroup    Type = "addAttributeGroup"
	RemoveAttributeGroup Type = "removeAttributeGroup"
	ModifyAttributeGroup Type = "modifyAttributeGroup"
	AddAnnotation        Type = "addAnnotation"
	RemoveAnnotation     Type = "removeAnnotation"
	ModifyAnnotation     Type = "modifyAnnotation"
	AddDocumentation     Type = "addDocumentation"
	RemoveDocumentation  Type = "removeDocumentation"
	ModifyDocumentation  Type = "modifyDocumentation"
	AddImport            Type = "addImport"
	RemoveImport         Type = "removeImport"
	ModifyImport         Type = "modifyImport"
	AddInclude           Type = "addInclude"
	RemoveInclude        Type = "removeInclude"
	ModifyInclude        Type = "modifyInclude"
)

// catalog is the single source of truth for the command set. Adding a tag
// here without extending decodePayload is a bug caught by TestCatalogClosed.
var catalog = []struct {
	Type   Type
	Verb   Verb
	Family Family
}{
	{AddElement, VerbAdd, FamilyElement},
	{RemoveElement, VerbRemove, FamilyElement},
	{ModifyElement, VerbModify, FamilyElement},
	{AddAttribute, VerbAdd, FamilyAttribute},
	{RemoveAttribute, VerbRemove, FamilyAttribute},
	{ModifyAttribute, VerbModify, FamilyAttribute},
	{AddSimpleType, VerbAdd, FamilySimpleType},
	{RemoveSimpleType, VerbRemove, FamilySimpleType},
	{ModifySimpleType, VerbModify, FamilySimpleType},
	{AddComplexType, VerbAdd, FamilyComplexType},
	{RemoveComplexType, VerbRemove, FamilyComplexType},
	{ModifyComplexType, VerbModify, FamilyComplexType},
	{AddGroup, VerbAdd, FamilyGroup},
	{RemoveGroup, VerbRemove, FamilyGroup},
	{ModifyGroup, VerbModify, FamilyGroup},
	{AddAttributeGroup, VerbAdd, FamilyAttributeGroup},
	{RemoveAttributeGroup, VerbRemove, FamilyAttributeGroup},
	{ModifyAttributeGroup, VerbModify, FamilyAttributeGroup},
	{AddAnnotation, VerbAdd, FamilyAnnotation},
	{RemoveAnnotation, VerbRemove, FamilyAnnotation},
	{ModifyAnnotation, VerbModify, FamilyAnnotation},
	{AddDocumentation, VerbAdd, FamilyDocumentation},
	{RemoveDocumentation, VerbRemove, FamilyDocumentation},
	{ModifyDocumentation, VerbModify, FamilyDocumentation},
	{AddImport, VerbAdd, FamilyImport},
	{RemoveImport, VerbRemove, FamilyImport},
	{ModifyImport, VerbModify, FamilyImport},
	{AddInclude, VerbAdd, FamilyInclude},
	{RemoveInclude, VerbRemove, FamilyInclude},
	{ModifyInclude, VerbModify, FamilyInclude},
}

var catalogIndex = func() map[Type]int {
	m := make(map[Type]int, len(catalog))
	for i, e := range catalog {
		m[e.Type] = i
	}
	return m
}()

// Types returns every command tag in catalog order.
func Types() []Type {
	out := make([]Type, len(catalog))
	for i, e := range catalog {
		out[i] = e.Type
	}
	return out
}

// IsValid reports whether t is a known command tag.
func (t Type) IsValid() bool {
	_, ok := catalogIndex[t]
	return ok
}

// Verb returns the mutation verb of the tag, or "" for unknown tags.
func (t Type) Verb() Verb {
	if i, ok := catalogIndex[t]; ok {
		return catalog[i].Verb
	}
	return ""
}

// Family returns the component family of the tag, or "" for unknown tags.
func (t Type) Family() Family {
	if i, ok := catalogIndex[t]; ok {
		return catalog[i].Family
	}
	return ""
}

// ContentModel is a compositor kind for complex type and group content.
type ContentModel string

const (
	Sequence ContentModel = "sequence"
	Choice   ContentModel = "choice"
	All      ContentModel = "all"
)

// IsValid reports whether m names a known compositor.
func (m ContentModel) IsValid() bool {
	switch m {
	case Sequence, Choice, All:
		return true
	}
	return false
}

// ContentModels returns the compositor kinds in declaration order.
func ContentModels() []ContentModel {
	return []ContentModel{Sequence, Choice, All}
}

// Command pairs a tag with its payload. Payload holds the concrete payload
// struct for the tag (by value), e.g. AddElementPayload for AddElement.
type Command struct {
	Type    Type `json:"type"`
	Payload any  `json:"payload"`
}

// New builds a command, trusting the caller to pair tag and payload
// correctly. Mispaired commands fail validation, not construction.
func New(t Type, payload any) Command {
	return Command{Type: t, Payload: payload}
}

// UnmarshalJSON decodes the tagged union, selecting the payload shape from
// the tag. Unknown tags are an error: the union is closed.
func (c *Command) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type    Type            `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !raw.Type.IsValid() {
		return fmt.Errorf("unknown command type %q", raw.Type)
	}
	payload, err := decodePayload(raw.Type, raw.Payload)
	if err != nil {
		return fmt.Errorf("decode %s payload: %w", raw.Type, err)
	}
	c.Type = raw.Type
	c.Payload = payload
	return nil
}

func decodeAs[T any](data json.RawMessage) (any, error) {
	var p T
	if len(data) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return p, nil
}

// decodePayload maps each tag to its concrete payload struct. The switch is
// deliberately exhaustive over the catalog; a new tag must be added here.
func decodePayload(t Type, data json.RawMessage) (any, error) {
	switch t {
	case AddElement:
		return decodeAs[AddElementPayload](data)
	case RemoveElement:
		return decodeAs[RemoveElementPayload](data)
	case ModifyElement:
		return decodeAs[ModifyElementPayload](data)
	case AddAttribute:
		return decodeAs[AddAttributePayload](data)
	case RemoveAttribute:
		return decodeAs[RemoveAttributePayload](data)
	case ModifyAttribute:
		return decodeAs[ModifyAttributePayload](data)
	case AddSimpleType:
		return decodeAs[AddSimpleTypePayload](data)
	case RemoveSimpleType:
		return decodeAs[RemoveSimpleTypePayload](data)
	case ModifySimpleType:
		return decodeAs[ModifySimpleTypePayload](data)
	case AddComplexType:
		return decodeAs[AddComplexTypePayload](data)
	case RemoveComplexType:
		return decodeAs[RemoveComplexTypePayload](data)
	case ModifyComplexType:
		return decodeAs[ModifyComplexTypePayload](data)
	case AddGroup:
		return decodeAs[AddGroupPayload](data)
	case RemoveGroup:
		return decodeAs[RemoveGroupPayload](data)
	case ModifyGroup:
		return decodeAs[ModifyGroupPayload](data)
	case AddAttributeGroup:
		return decodeAs[AddAttributeGroupPayload](data)
	case RemoveAttributeGroup:
		return decodeAs[RemoveAttributeGroupPayload](data)
	case ModifyAttributeGroup:
		return decodeAs[ModifyAttributeGroupPayload](data)
	case AddAnnotation:
		return decodeAs[AddAnnotationPayload](data)
	case RemoveAnnotation:
		return decodeAs[RemoveAnnotationPayload](data)
	case ModifyAnnotation:
		return decodeAs[ModifyAnnotationPayload](data)
	case AddDocumentation:
		return decodeAs[AddDocumentationPayload](data)
	case RemoveDocumentation:
		return decodeAs[RemoveDocumentationPayload](data)
	case ModifyDocumentation:
		return decodeAs[ModifyDocumentationPayload](data)
	case AddImport:
		return decodeAs[AddImportPayload](data)
	case RemoveImport:
		return decodeAs[RemoveImportPayload](data)
	case ModifyImport:
		return decodeAs[ModifyImportPayload](data)
	case AddInclude:
		return decodeAs[AddIncludePayload](data)
	case RemoveInclude:
		return decodeAs[RemoveIncludePayload](data)
	case ModifyInclude:
		return decodeAs[ModifyIncludePayload](data)
	}
	return nil, fmt.Errorf("unknown command type %q", t)
}
