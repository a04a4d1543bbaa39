package command

// AddAttributePayload creates an attribute under Parent.
//
// Name+Type and Ref are mutually exclusive, as for elements. Default and
// Fixed are mutually exclusive with each other and invalid on a reference;
// they are pointers because an empty default value is meaningful.
type AddAttributePayload struct {
	Parent        string  `json:"parent"`
	Name          string  `json:"name,omitempty"`
	Type          string  `json:"type,omitempty"`
	Ref           string  `json:"ref,omitempty"`
	Required      bool    `json:"required,omitempty"`
	Default       *string `json:"default,omitempty"`
	Fixed         *string `json:"fixed,omitempty"`
	Documentation string  `json:"documentation,omitempty"`
}

// RemoveAttributePayload deletes the attribute at AttributeAddress.
type RemoveAttributePayload struct {
	AttributeAddress string `json:"attributeAddress"`
}

// ModifyAttributePayload patches the attribute at AttributeAddress.
type ModifyAttributePayload struct {
	AttributeAddress string  `json:"attributeAddress"`
	Name             *string `json:"name,omitempty"`
	Type             *string `json:"type,omitempty"`
	Ref              *string `json:"ref,omitempty"`
	Required         *bool   `json:"required,omitempty"`
	Default          *string `json:"default,omitempty"`
	Fixed            *string `json:"fixed,omitempty"`
	Documentation    *string `json:"documentation,omitempty"`
}
