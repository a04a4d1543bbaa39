// Package document holds the authoritative schema tree as an arena of
// nodes keyed by their stable address.
//
// Nodes never point at each other: all structure lives in address maps,
// and every structural edit recomputes the addresses of displaced
// siblings and their subtrees so the arena keys stay truthful.
package document

import (
	"github.com/nbroch/skema/internal/address"
	"github.com/nbroch/skema/internal/command"
	"github.com/nbroch/skema/internal/occurs"
)

// Node is one schema component. The fields are the union of everything a
// command can set; which ones are meaningful depends on Kind.
type Node struct {
	Kind      address.Kind `json:"kind" yaml:"kind"`
	Name      string       `json:"name,omitempty" yaml:"name,omitempty"`
	Namespace string       `json:"namespace,omitempty" yaml:"namespace,omitempty"`

	// Element and attribute declarations.
	Type      string         `json:"type,omitempty" yaml:"type,omitempty"`
	Ref       string         `json:"ref,omitempty" yaml:"ref,omitempty"`
	MinOccurs *occurs.Occurs `json:"minOccurs,omitempty" yaml:"minOccurs,omitempty"`
	MaxOccurs *occurs.Occurs `json:"maxOccurs,omitempty" yaml:"maxOccurs,omitempty"`
	Required  bool           `json:"required,omitempty" yaml:"required,omitempty"`
	Default   *string        `json:"default,omitempty" yaml:"default,omitempty"`
	Fixed     *string        `json:"fixed,omitempty" yaml:"fixed,omitempty"`

	// Type definitions and groups.
	ContentModel command.ContentModel `json:"contentModel,omitempty" yaml:"contentModel,omitempty"`
	BaseType     string               `json:"baseType,omitempty" yaml:"baseType,omitempty"`
	Abstract     bool                 `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Mixed        bool                 `json:"mixed,omitempty" yaml:"mixed,omitempty"`
	Facets       *command.Facets      `json:"facets,omitempty" yaml:"facets,omitempty"`

	// Annotation and documentation bodies.
	Documentation     string `json:"documentation,omitempty" yaml:"documentation,omitempty"`
	DocumentationHTML string `json:"documentationHtml,omitempty" yaml:"documentationHtml,omitempty"`
	AppInfo           string `json:"appInfo,omitempty" yaml:"appInfo,omitempty"`
	Content           string `json:"content,omitempty" yaml:"content,omitempty"`
	Language          string `json:"language,omitempty" yaml:"language,omitempty"`

	// Imports, includes and the schema root.
	SchemaLocation  string `json:"schemaLocation,omitempty" yaml:"schemaLocation,omitempty"`
	TargetNamespace string `json:"targetNamespace,omitempty" yaml:"targetNamespace,omitempty"`
}

// Anonymous reports whether the node is addressed by position alone.
func (n *Node) Anonymous() bool {
	return n.Name == ""
}

// Label is a short human-readable identification for UI surfaces.
func (n *Node) Label() string {
	if n.Name != "" {
		return string(n.Kind) + " " + n.Name
	}
	return string(n.Kind)
}
