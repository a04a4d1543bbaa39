// Package naming derives legal XML names from free-form labels. The
// diagram lets people type anything into a node caption; these helpers
// turn "Order line!" into something a schema will accept.
package naming

import (
	"strings"
	"unicode"

	goslug "github.com/gosimple/slug"

	"github.com/nbroch/skema/internal/validate"
)

// Suggest derives a camelCase element or attribute name from a label:
// "Order line!" becomes "orderLine". It returns "" when the label has
// nothing usable in it.
func Suggest(label string) string {
	parts := words(label)
	if len(parts) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		b.WriteString(upperFirst(p))
	}
	name := b.String()

	// Slugs can start with a digit; XML names cannot.
	if !startsLegally(name) {
		name = "_" + name
	}
	if !validate.IsValidXMLName(name) {
		return ""
	}
	return name
}

// SuggestType derives an UpperCamel type name with the conventional
// Type suffix: "order line" becomes "OrderLineType". A trailing "type"
// word in the label is folded into the suffix.
func SuggestType(label string) string {
	parts := words(label)
	if len(parts) > 1 && parts[len(parts)-1] == "type" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 {
		return ""
	}

	var b strings.Builder
	for _, p := range parts {
		b.WriteString(upperFirst(p))
	}
	name := b.String() + "Type"

	if !startsLegally(name) {
		name = "_" + name
	}
	if !validate.IsValidXMLName(name) {
		return ""
	}
	return name
}

// words slugifies the label and splits it into lowercase fragments.
func words(label string) []string {
	s := goslug.Make(label)
	if s == "" {
		return nil
	}
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_'
	})
}

func upperFirst(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func startsLegally(s string) bool {
	for _, r := range s {
		return unicode.IsLetter(r) || r == '_'
	}
	return false
}
