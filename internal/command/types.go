package command

// AddSimpleTypePayload creates a top-level simple type restricting BaseType.
type AddSimpleTypePayload struct {
	TypeName      string  `json:"typeName"`
	BaseType      string  `json:"baseType"`
	Facets        *Facets `json:"facets,omitempty"`
	Documentation string  `json:"documentation,omitempty"`
}

// RemoveSimpleTypePayload deletes the simple type at TypeAddress.
type RemoveSimpleTypePayload struct {
	TypeAddress string `json:"typeAddress"`
}

// ModifySimpleTypePayload patches the simple type at TypeAddress.
type ModifySimpleTypePayload struct {
	TypeAddress   string  `json:"typeAddress"`
	TypeName      *string `json:"typeName,omitempty"`
	BaseType      *string `json:"baseType,omitempty"`
	Facets        *Facets `json:"facets,omitempty"`
	Documentation *string `json:"documentation,omitempty"`
}

// AddComplexTypePayload creates a top-level complex type whose children are
// composed under ContentModel. BaseType, when set, is extended.
type AddComplexTypePayload struct {
	TypeName      string       `json:"typeName"`
	ContentModel  ContentModel `json:"contentModel"`
	Abstract      bool         `json:"abstract,omitempty"`
	BaseType      string       `json:"baseType,omitempty"`
	Mixed         bool         `json:"mixed,omitempty"`
	Documentation string       `json:"documentation,omitempty"`
}

// RemoveComplexTypePayload deletes the complex type at TypeAddress.
type RemoveComplexTypePayload struct {
	TypeAddress string `json:"typeAddress"`
}

// ModifyComplexTypePayload patches the complex type at TypeAddress.
type ModifyComplexTypePayload struct {
	TypeAddress   string        `json:"typeAddress"`
	TypeName      *string       `json:"typeName,omitempty"`
	ContentModel  *ContentModel `json:"contentModel,omitempty"`
	Abstract      *bool         `json:"abstract,omitempty"`
	BaseType      *string       `json:"baseType,omitempty"`
	Mixed         *bool         `json:"mixed,omitempty"`
	Documentation *string       `json:"documentation,omitempty"`
}
