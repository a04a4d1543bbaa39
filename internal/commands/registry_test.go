package commands

import (
	"strings"
	"testing"
)

// TestRegistryHasRequiredCommands verifies that essential commands exist.
func TestRegistryHasRequiredCommands(t *testing.T) {
	requiredCommands := []string{
		"serve", "check", "apply", "tree", "suggest",
		"addr_parse", "addr_gen", "addr_parent",
		"doc_init", "doc_export",
		"journal_list", "journal_show",
	}

	for _, cmd := range requiredCommands {
		if _, ok := Registry[cmd]; !ok {
			t.Errorf("Registry missing required command %q", cmd)
		}
	}
}

// TestRegistryMetadataComplete verifies all commands have required metadata.
func TestRegistryMetadataComplete(t *testing.T) {
	for name, meta := range Registry {
		t.Run(name, func(t *testing.T) {
			if meta.Name == "" {
				t.Error("Command has empty Name")
			}
			if meta.Name != name {
				t.Errorf("Command Name %q does not match registry key %q", meta.Name, name)
			}
			if meta.Description == "" {
				t.Error("Command has empty Description")
			}

			for i, arg := range meta.Args {
				if arg.Name == "" {
					t.Errorf("Arg %d has empty Name", i)
				}
				if arg.Description == "" {
					t.Errorf("Arg %q has empty Description", arg.Name)
				}
			}

			for i, flag := range meta.Flags {
				if flag.Name == "" {
					t.Errorf("Flag %d has empty Name", i)
				}
				if flag.Description == "" {
					t.Errorf("Flag %q has empty Description", flag.Name)
				}
				if flag.Type == "" {
					t.Errorf("Flag %q has empty Type", flag.Name)
				}
			}
		})
	}
}

// TestRegistryExamplesNameTheBinary keeps examples copy-pasteable.
func TestRegistryExamplesNameTheBinary(t *testing.T) {
	for name, meta := range Registry {
		for _, ex := range meta.Examples {
			if !strings.Contains(ex, "skm ") {
				t.Errorf("%s example %q does not invoke skm", name, ex)
			}
		}
	}
}

func TestResolveCommandID(t *testing.T) {
	tests := []struct {
		path   string
		wantID string
		wantOK bool
	}{
		{path: "serve", wantID: "serve", wantOK: true},
		{path: "addr parse", wantID: "addr_parse", wantOK: true},
		{path: "journal list", wantID: "journal_list", wantOK: true},
		{path: "doc_export", wantID: "doc_export", wantOK: true},
		{path: "not a real command", wantID: "", wantOK: false},
		{path: "  ", wantID: "", wantOK: false},
	}

	for _, tt := range tests {
		gotID, gotOK := ResolveCommandID(tt.path)
		if gotOK != tt.wantOK {
			t.Fatalf("ResolveCommandID(%q) ok=%v, want %v", tt.path, gotOK, tt.wantOK)
		}
		if gotID != tt.wantID {
			t.Fatalf("ResolveCommandID(%q) id=%q, want %q", tt.path, gotID, tt.wantID)
		}
	}
}

func TestMutatingCommandFlags(t *testing.T) {
	cases := []struct {
		id      string
		mutates bool
	}{
		{id: "serve", mutates: true},
		{id: "apply", mutates: true},
		{id: "doc_init", mutates: true},
		{id: "check", mutates: false},
		{id: "tree", mutates: false},
		{id: "addr_parse", mutates: false},
	}

	for _, tc := range cases {
		meta, ok := Registry[tc.id]
		if !ok {
			t.Fatalf("Registry missing %q", tc.id)
		}
		if meta.MutatesDocument != tc.mutates {
			t.Fatalf("Registry[%q].MutatesDocument=%v, want %v", tc.id, meta.MutatesDocument, tc.mutates)
		}
	}
}

func TestIDsSortedAndComplete(t *testing.T) {
	ids := IDs()
	if len(ids) != len(Registry) {
		t.Fatalf("IDs() returned %d ids, Registry has %d", len(ids), len(Registry))
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("IDs() not sorted: %q before %q", ids[i-1], ids[i])
		}
	}
}
