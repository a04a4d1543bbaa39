package address

import (
	"strconv"
	"strings"
)

// Parse decodes addr into its structured form.
//
// An address must start with "/"; anything else is a *FormatError. The
// remainder is split on "/" with any separator between "{" and its matching
// "}" treated as part of the namespace. The final segment yields the node's
// kind, optional name, optional Clark-notation namespace, and optional
// position; the preceding segments, rejoined, form the parent address.
//
// Malformed trailing segments degrade permissively rather than failing: an
// unparseable position suffix is folded into the name, an unbalanced brace
// stays literal, and a bare token is just the kind with no fabricated name.
// Editors round-trip addresses they did not mint, so leniency here is
// deliberate.
func Parse(addr string) (Parsed, error) {
	if !strings.HasPrefix(addr, "/") {
		return Parsed{}, &FormatError{Address: addr, Reason: "must start with '/'"}
	}

	segments := splitSegments(addr[1:])
	kind, name, namespace, position := parseSegment(segments[len(segments)-1])

	parent := ""
	if len(segments) > 1 {
		parent = "/" + strings.Join(segments[:len(segments)-1], "/")
	}

	return Parsed{
		Kind:      kind,
		Name:      name,
		Namespace: namespace,
		Position:  position,
		Parent:    parent,
		Segments:  segments,
	}, nil
}

// IsTopLevel reports whether addr is a single-segment address, i.e. a node
// hanging directly off the document root.
func IsTopLevel(addr string) (bool, error) {
	p, err := Parse(addr)
	if err != nil {
		return false, err
	}
	return len(p.Segments) == 1, nil
}

// ParentOf returns the parent address of addr, or "" for a top-level
// address.
func ParentOf(addr string) (string, error) {
	p, err := Parse(addr)
	if err != nil {
		return "", err
	}
	return p.Parent, nil
}

// KindOf returns the kind token of addr's final segment.
func KindOf(addr string) (Kind, error) {
	p, err := Parse(addr)
	if err != nil {
		return "", err
	}
	return p.Kind, nil
}

// NameOf returns the local name of addr's final segment, "" when the
// segment is name-less.
func NameOf(addr string) (string, error) {
	p, err := Parse(addr)
	if err != nil {
		return "", err
	}
	return p.Name, nil
}

// splitSegments splits s on "/", keeping any "/" between "{" and its
// matching "}" literal so namespace URIs survive intact.
func splitSegments(s string) []string {
	var segments []string
	var b strings.Builder
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '{':
			depth++
			b.WriteByte(c)
		case '}':
			if depth > 0 {
				depth--
			}
			b.WriteByte(c)
		case '/':
			if depth > 0 {
				b.WriteByte(c)
			} else {
				segments = append(segments, b.String())
				b.Reset()
			}
		default:
			b.WriteByte(c)
		}
	}
	segments = append(segments, b.String())
	return segments
}

// parseSegment decodes one segment into kind, name, namespace and position.
func parseSegment(seg string) (Kind, string, string, *int) {
	rest := seg

	var position *int
	if i := strings.LastIndexByte(rest, '['); i >= 0 && strings.HasSuffix(rest, "]") {
		digits := rest[i+1 : len(rest)-1]
		if isDigits(digits) {
			if n, err := strconv.Atoi(digits); err == nil {
				position = &n
				rest = rest[:i]
			}
		}
	}

	kindPart, namePart, found := cutOutsideBraces(rest, ':')
	if !found {
		return Kind(rest), "", "", position
	}

	namespace := ""
	name := namePart
	if strings.HasPrefix(namePart, "{") {
		if j := strings.IndexByte(namePart, '}'); j >= 0 {
			namespace = namePart[1:j]
			name = namePart[j+1:]
		}
	}

	return Kind(kindPart), name, namespace, position
}

// cutOutsideBraces slices s around the first sep that is not inside {…}.
func cutOutsideBraces(s string, sep byte) (before, after string, found bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				return s[:i], s[i+1:], true
			}
		}
	}
	return s, "", false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
