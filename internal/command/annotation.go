package command

// AddAnnotationPayload attaches an annotation to the node at TargetAddress.
// Documentation and AppInfo are the annotation's two optional text bodies.
type AddAnnotationPayload struct {
	TargetAddress string `json:"targetAddress"`
	Documentation string `json:"documentation,omitempty"`
	AppInfo       string `json:"appInfo,omitempty"`
}

// RemoveAnnotationPayload deletes the annotation at AnnotationAddress.
type RemoveAnnotationPayload struct {
	AnnotationAddress string `json:"annotationAddress"`
}

// ModifyAnnotationPayload patches the annotation at AnnotationAddress.
type ModifyAnnotationPayload struct {
	AnnotationAddress string  `json:"annotationAddress"`
	Documentation     *string `json:"documentation,omitempty"`
	AppInfo           *string `json:"appInfo,omitempty"`
}

// AddDocumentationPayload attaches a documentation block to the node at
// TargetAddress. Language is an optional xml:lang code.
type AddDocumentationPayload struct {
	TargetAddress string `json:"targetAddress"`
	Content       string `json:"content"`
	Language      string `json:"language,omitempty"`
}

// RemoveDocumentationPayload deletes the block at DocumentationAddress.
type RemoveDocumentationPayload struct {
	DocumentationAddress string `json:"documentationAddress"`
}

// ModifyDocumentationPayload patches the block at DocumentationAddress.
type ModifyDocumentationPayload struct {
	DocumentationAddress string  `json:"documentationAddress"`
	Content              *string `json:"content,omitempty"`
	Language             *string `json:"language,omitempty"`
}
