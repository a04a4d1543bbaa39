// Package docrender turns markdown documentation payloads into HTML.
// Documentation text rides the tree as markdown; the editor wants HTML
// for tooltips and detail panes, so snapshots leaving the host get a
// rendered documentationHtml alongside the source.
//
// Terminal rendering of the same markdown lives in internal/ui.
package docrender

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/nbroch/skema/internal/address"
	"github.com/nbroch/skema/internal/document"
)

var md = goldmark.New()

// HTML renders markdown to HTML.
func HTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render documentation: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// Enrich fills documentationHtml on every node of a snapshot that
// carries markdown: attached documentation on any node, and the content
// of documentation nodes themselves. Nodes whose markdown fails to
// render keep an empty documentationHtml rather than blocking the push.
func Enrich(s *document.Snapshot) {
	if s == nil {
		return
	}
	enrichNode(&s.Node)
	for _, kid := range s.Children {
		Enrich(kid)
	}
}

func enrichNode(n *document.Node) {
	source := n.Documentation
	if n.Kind == address.KindDocumentation && n.Content != "" {
		source = n.Content
	}
	if source == "" {
		return
	}
	html, err := HTML(source)
	if err != nil {
		return
	}
	n.DocumentationHTML = html
}
