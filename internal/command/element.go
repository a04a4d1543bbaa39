package command

import "github.com/nbroch/skema/internal/occurs"

// AddElementPayload creates an element under Parent.
//
// Either Name+Type or Ref must be set, never both: Ref points at an
// existing top-level element declaration and is forbidden when Parent is
// the document root.
type AddElementPayload struct {
	Parent        string         `json:"parent"`
	Name          string         `json:"name,omitempty"`
	Type          string         `json:"type,omitempty"`
	Ref           string         `json:"ref,omitempty"`
	MinOccurs     *occurs.Occurs `json:"minOccurs,omitempty"`
	MaxOccurs     *occurs.Occurs `json:"maxOccurs,omitempty"`
	Documentation string         `json:"documentation,omitempty"`
}

// RemoveElementPayload deletes the element at ElementAddress.
type RemoveElementPayload struct {
	ElementAddress string `json:"elementAddress"`
}

// ModifyElementPayload patches the element at ElementAddress. Nil fields
// are left untouched; setting Ref clears Name/Type and vice versa.
type ModifyElementPayload struct {
	ElementAddress string         `json:"elementAddress"`
	Name           *string        `json:"name,omitempty"`
	Type           *string        `json:"type,omitempty"`
	Ref            *string        `json:"ref,omitempty"`
	MinOccurs      *occurs.Occurs `json:"minOccurs,omitempty"`
	MaxOccurs      *occurs.Occurs `json:"maxOccurs,omitempty"`
	Documentation  *string        `json:"documentation,omitempty"`
}
