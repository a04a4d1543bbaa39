package commands

import (
	"sort"
	"strings"
)

// ResolveCommandID resolves a CLI command path to a registry command ID.
// Example: "addr parse" -> "addr_parse"
func ResolveCommandID(path string) (string, bool) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", false
	}

	if _, ok := Registry[trimmed]; ok {
		return trimmed, true
	}

	underscored := strings.ReplaceAll(trimmed, " ", "_")
	if _, ok := Registry[underscored]; ok {
		return underscored, true
	}

	return "", false
}

// LookupMetaByPath resolves a CLI command path and returns the registry metadata.
func LookupMetaByPath(path string) (string, Meta, bool) {
	id, ok := ResolveCommandID(path)
	if !ok {
		return "", Meta{}, false
	}
	meta, ok := Registry[id]
	return id, meta, ok
}

// IDs returns all registered command IDs in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(Registry))
	for id := range Registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
