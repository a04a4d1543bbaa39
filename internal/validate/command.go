package validate

import (
	"strings"

	"github.com/nbroch/skema/internal/address"
	"github.com/nbroch/skema/internal/command"
)

// Command validates one command against the rules of its family. The
// switch is exhaustive over the command catalog; an unknown tag or a
// mispaired payload fails rather than passing silently.
func Command(c command.Command) Result {
	switch c.Type {
	case command.AddElement:
		return as(c, addElement)
	case command.RemoveElement:
		return as(c, removeElement)
	case command.ModifyElement:
		return as(c, modifyElement)
	case command.AddAttribute:
		return as(c, addAttribute)
	case command.RemoveAttribute:
		return as(c, removeAttribute)
	case command.ModifyAttribute:
		return as(c, modifyAttribute)
	case command.AddSimpleType:
		return as(c, addSimpleType)
	case command.RemoveSimpleType:
		return as(c, removeSimpleType)
	case command.ModifySimpleType:
		return as(c, modifySimpleType)
	case command.AddComplexType:
		return as(c, addComplexType)
	case command.RemoveComplexType:
		return as(c, removeComplexType)
	case command.ModifyComplexType:
		return as(c, modifyComplexType)
	case command.AddGroup:
		return as(c, addGroup)
	case command.RemoveGroup:
		return as(c, removeGroup)
	case command.ModifyGroup:
		return as(c, modifyGroup)
	case command.AddAttributeGroup:
		return as(c, addAttributeGroup)
	case command.RemoveAttributeGroup:
		return as(c, removeAttributeGroup)
	case command.ModifyAttributeGroup:
		return as(c, modifyAttributeGroup)
	case command.AddAnnotation:
		return as(c, addAnnotation)
	case command.RemoveAnnotation:
		return as(c, removeAnnotation)
	case command.ModifyAnnotation:
		return as(c, modifyAnnotation)
	case command.AddDocumentation:
		return as(c, addDocumentation)
	case command.RemoveDocumentation:
		return as(c, removeDocumentation)
	case command.ModifyDocumentation:
		return as(c, modifyDocumentation)
	case command.AddImport:
		return as(c, addImport)
	case command.RemoveImport:
		return as(c, removeImport)
	case command.ModifyImport:
		return as(c, modifyImport)
	case command.AddInclude:
		return as(c, addInclude)
	case command.RemoveInclude:
		return as(c, removeInclude)
	case command.ModifyInclude:
		return as(c, modifyInclude)
	}
	return fail("Unknown command type: %s", c.Type)
}

// as narrows the payload to the shape the tag promises.
func as[T any](c command.Command, validate func(T) Result) Result {
	p, ok := c.Payload.(T)
	if !ok {
		return fail("Command %s carries a %T payload", c.Type, c.Payload)
	}
	return validate(p)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// requireTarget enforces the shared Remove/Modify rule: the target
// identifier must not be empty or whitespace-only.
func requireTarget(what, addr string) Result {
	if blank(addr) {
		return fail("%s address is required", what)
	}
	return ok()
}

func requireName(what, name string) Result {
	if blank(name) {
		return fail("%s name is required", what)
	}
	if !IsValidXMLName(name) {
		return fail("Invalid %s name: %s", strings.ToLower(what), name)
	}
	return ok()
}

func addElement(p command.AddElementPayload) Result {
	if blank(p.Parent) {
		return fail("Parent address is required")
	}
	if p.Ref != "" {
		if p.Name != "" || p.Type != "" {
			return fail("Cannot combine ref with name or type")
		}
		if address.IsRoot(p.Parent) {
			return fail("Top-level elements cannot be references")
		}
	} else {
		if r := requireName("Element", p.Name); !r.Valid {
			return r
		}
		if blank(p.Type) {
			return fail("Element type is required")
		}
	}
	return Occurrences(p.MinOccurs, p.MaxOccurs)
}

func removeElement(p command.RemoveElementPayload) Result {
	return requireTarget("Element", p.ElementAddress)
}

func modifyElement(p command.ModifyElementPayload) Result {
	if r := requireTarget("Element", p.ElementAddress); !r.Valid {
		return r
	}
	if p.Ref != nil && *p.Ref != "" {
		if (p.Name != nil && *p.Name != "") || (p.Type != nil && *p.Type != "") {
			return fail("Cannot combine ref with name or type")
		}
	}
	if p.Name != nil {
		if r := requireName("Element", *p.Name); !r.Valid {
			return r
		}
	}
	return Occurrences(p.MinOccurs, p.MaxOccurs)
}

func addAttribute(p command.AddAttributePayload) Result {
	if blank(p.Parent) {
		return fail("Parent address is required")
	}
	if p.Ref != "" {
		if p.Name != "" || p.Type != "" {
			return fail("Cannot combine ref with name or type")
		}
		if address.IsRoot(p.Parent) {
			return fail("Top-level attributes cannot be references")
		}
		if p.Default != nil || p.Fixed != nil {
			return fail("Default and fixed values are not allowed on references")
		}
	} else {
		if r := requireName("Attribute", p.Name); !r.Valid {
			return r
		}
		if blank(p.Type) {
			return fail("Attribute type is required")
		}
	}
	if p.Default != nil && p.Fixed != nil {
		return fail("Cannot specify both default and fixed values")
	}
	return ok()
}

func removeAttribute(p command.RemoveAttributePayload) Result {
	return requireTarget("Attribute", p.AttributeAddress)
}

func modifyAttribute(p command.ModifyAttributePayload) Result {
	if r := requireTarget("Attribute", p.AttributeAddress); !r.Valid {
		return r
	}
	if p.Ref != nil && *p.Ref != "" {
		if (p.Name != nil && *p.Name != "") || (p.Type != nil && *p.Type != "") {
			return fail("Cannot combine ref with name or type")
		}
		if p.Default != nil || p.Fixed != nil {
			return fail("Default and fixed values are not allowed on references")
		}
	}
	if p.Name != nil {
		if r := requireName("Attribute", *p.Name); !r.Valid {
			return r
		}
	}
	if p.Default != nil && p.Fixed != nil {
		return fail("Cannot specify both default and fixed values")
	}
	return ok()
}

func addSimpleType(p command.AddSimpleTypePayload) Result {
	if r := requireName("Type", p.TypeName); !r.Valid {
		return r
	}
	if blank(p.BaseType) {
		return fail("Base type is required")
	}
	return facets(p.Facets)
}

func removeSimpleType(p command.RemoveSimpleTypePayload) Result {
	return requireTarget("Type", p.TypeAddress)
}

func modifySimpleType(p command.ModifySimpleTypePayload) Result {
	if r := requireTarget("Type", p.TypeAddress); !r.Valid {
		return r
	}
	if p.TypeName != nil {
		if r := requireName("Type", *p.TypeName); !r.Valid {
			return r
		}
	}
	if p.BaseType != nil && blank(*p.BaseType) {
		return fail("Base type cannot be empty")
	}
	return facets(p.Facets)
}

func addComplexType(p command.AddComplexTypePayload) Result {
	if r := requireName("Type", p.TypeName); !r.Valid {
		return r
	}
	return contentModel(p.ContentModel, true)
}

func removeComplexType(p command.RemoveComplexTypePayload) Result {
	return requireTarget("Type", p.TypeAddress)
}

func modifyComplexType(p command.ModifyComplexTypePayload) Result {
	if r := requireTarget("Type", p.TypeAddress); !r.Valid {
		return r
	}
	if p.TypeName != nil {
		if r := requireName("Type", *p.TypeName); !r.Valid {
			return r
		}
	}
	if p.ContentModel != nil {
		return contentModel(*p.ContentModel, true)
	}
	return ok()
}

func addGroup(p command.AddGroupPayload) Result {
	if r := requireName("Group", p.GroupName); !r.Valid {
		return r
	}
	return contentModel(p.ContentModel, true)
}

func removeGroup(p command.RemoveGroupPayload) Result {
	return requireTarget("Group", p.GroupAddress)
}

func modifyGroup(p command.ModifyGroupPayload) Result {
	if r := requireTarget("Group", p.GroupAddress); !r.Valid {
		return r
	}
	if p.GroupName != nil {
		if r := requireName("Group", *p.GroupName); !r.Valid {
			return r
		}
	}
	if p.ContentModel != nil {
		return contentModel(*p.ContentModel, true)
	}
	return ok()
}

func addAttributeGroup(p command.AddAttributeGroupPayload) Result {
	return requireName("Attribute group", p.GroupName)
}

func removeAttributeGroup(p command.RemoveAttributeGroupPayload) Result {
	return requireTarget("Attribute group", p.GroupAddress)
}

func modifyAttributeGroup(p command.ModifyAttributeGroupPayload) Result {
	if r := requireTarget("Attribute group", p.GroupAddress); !r.Valid {
		return r
	}
	if p.GroupName != nil {
		return requireName("Attribute group", *p.GroupName)
	}
	return ok()
}

func addAnnotation(p command.AddAnnotationPayload) Result {
	if blank(p.TargetAddress) {
		return fail("Target address is required")
	}
	return ok()
}

func removeAnnotation(p command.RemoveAnnotationPayload) Result {
	return requireTarget("Annotation", p.AnnotationAddress)
}

func modifyAnnotation(p command.ModifyAnnotationPayload) Result {
	return requireTarget("Annotation", p.AnnotationAddress)
}

func addDocumentation(p command.AddDocumentationPayload) Result {
	if blank(p.TargetAddress) {
		return fail("Target address is required")
	}
	if blank(p.Content) {
		return fail("Documentation content is required")
	}
	return ok()
}

func removeDocumentation(p command.RemoveDocumentationPayload) Result {
	return requireTarget("Documentation", p.DocumentationAddress)
}

func modifyDocumentation(p command.ModifyDocumentationPayload) Result {
	if r := requireTarget("Documentation", p.DocumentationAddress); !r.Valid {
		return r
	}
	if p.Content != nil && blank(*p.Content) {
		return fail("Documentation content cannot be empty")
	}
	return ok()
}

func addImport(p command.AddImportPayload) Result {
	if blank(p.Namespace) {
		return fail("Namespace is required")
	}
	if blank(p.SchemaLocation) {
		return fail("Schema location is required")
	}
	return ok()
}

func removeImport(p command.RemoveImportPayload) Result {
	return requireTarget("Import", p.ImportAddress)
}

func modifyImport(p command.ModifyImportPayload) Result {
	if r := requireTarget("Import", p.ImportAddress); !r.Valid {
		return r
	}
	if p.Namespace != nil && blank(*p.Namespace) {
		return fail("Namespace cannot be empty")
	}
	if p.SchemaLocation != nil && blank(*p.SchemaLocation) {
		return fail("Schema location cannot be empty")
	}
	return ok()
}

func addInclude(p command.AddIncludePayload) Result {
	if blank(p.SchemaLocation) {
		return fail("Schema location is required")
	}
	return ok()
}

func removeInclude(p command.RemoveIncludePayload) Result {
	return requireTarget("Include", p.IncludeAddress)
}

func modifyInclude(p command.ModifyIncludePayload) Result {
	if r := requireTarget("Include", p.IncludeAddress); !r.Valid {
		return r
	}
	if p.SchemaLocation != nil && blank(*p.SchemaLocation) {
		return fail("Schema location cannot be empty")
	}
	return ok()
}

// contentModel checks membership in the compositor enumeration.
func contentModel(m command.ContentModel, required bool) Result {
	if m == "" {
		if required {
			return fail("Content model is required")
		}
		return ok()
	}
	if !m.IsValid() {
		return fail("Invalid content model: %s", m)
	}
	return ok()
}

// facets checks the internally-checkable facet rules; value-space
// interpretation against the base type is left to the executor.
func facets(f *command.Facets) Result {
	if f.IsEmpty() {
		return ok()
	}
	if f.WhiteSpace != nil && !f.WhiteSpace.IsValid() {
		return fail("Invalid whiteSpace facet: %s", *f.WhiteSpace)
	}
	for _, c := range []struct {
		name  string
		value *int
	}{
		{"length", f.Length},
		{"minLength", f.MinLength},
		{"maxLength", f.MaxLength},
		{"totalDigits", f.TotalDigits},
		{"fractionDigits", f.FractionDigits},
	} {
		if c.value != nil && *c.value < 0 {
			return fail("%s cannot be negative", c.name)
		}
	}
	if f.MinLength != nil && f.MaxLength != nil && *f.MinLength > *f.MaxLength {
		return fail("minLength must be <= maxLength")
	}
	return ok()
}
