package command

// AddImportPayload imports a foreign namespace into the schema.
type AddImportPayload struct {
	Namespace      string `json:"namespace"`
	SchemaLocation string `json:"schemaLocation"`
}

// RemoveImportPayload deletes the import at ImportAddress.
type RemoveImportPayload struct {
	ImportAddress string `json:"importAddress"`
}

// ModifyImportPayload patches the import at ImportAddress.
type ModifyImportPayload struct {
	ImportAddress  string  `json:"importAddress"`
	Namespace      *string `json:"namespace,omitempty"`
	SchemaLocation *string `json:"schemaLocation,omitempty"`
}

// AddIncludePayload includes another schema document from the same target
// namespace.
type AddIncludePayload struct {
	SchemaLocation string `json:"schemaLocation"`
}

// RemoveIncludePayload deletes the include at IncludeAddress.
type RemoveIncludePayload struct {
	IncludeAddress string `json:"includeAddress"`
}

// ModifyIncludePayload patches the include at IncludeAddress.
type ModifyIncludePayload struct {
	IncludeAddress string  `json:"includeAddress"`
	SchemaLocation *string `json:"schemaLocation,omitempty"`
}
