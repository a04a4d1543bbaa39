// Package testutil provides reusable test utilities for Skema integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestWorkspace represents a temporary directory for integration tests:
// a schema document, a config file, and whatever else a test needs. CLI
// runs started through it use the workspace as their working directory.
type TestWorkspace struct {
	Path   string
	t      *testing.T
	config string
	files  map[string]string
}

// NewTestWorkspace creates a new workspace builder.
// Call Build() to create the actual directory.
func NewTestWorkspace(t *testing.T) *TestWorkspace {
	t.Helper()
	return &TestWorkspace{
		t:     t,
		files: make(map[string]string),
	}
}

// WithConfig sets the config.toml content for the workspace.
func (w *TestWorkspace) WithConfig(toml string) *TestWorkspace {
	w.config = toml
	return w
}

// WithDocument adds a schema document to the workspace.
// The name is relative to the workspace root; the extension picks the codec.
func (w *TestWorkspace) WithDocument(name, content string) *TestWorkspace {
	w.files[name] = content
	return w
}

// WithFile adds a file to the workspace.
// The path is relative to the workspace root.
func (w *TestWorkspace) WithFile(path, content string) *TestWorkspace {
	w.files[path] = content
	return w
}

// Build creates the workspace directory and all configured files.
// Returns the TestWorkspace for method chaining.
func (w *TestWorkspace) Build() *TestWorkspace {
	w.t.Helper()

	w.Path = w.t.TempDir()

	// Every workspace carries its own config so runs never read the
	// developer's real one.
	w.writeFile("config.toml", w.config)

	for path, content := range w.files {
		w.writeFile(path, content)
	}

	return w
}

// ConfigPath returns the workspace config file location.
func (w *TestWorkspace) ConfigPath() string {
	return filepath.Join(w.Path, "config.toml")
}

// writeFile writes a file to the workspace, creating directories as needed.
func (w *TestWorkspace) writeFile(relPath, content string) {
	w.t.Helper()
	fullPath := filepath.Join(w.Path, relPath)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		w.t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		w.t.Fatalf("failed to write file %s: %v", fullPath, err)
	}
}

// ReadFile reads a file from the workspace.
// Returns the content as a string.
func (w *TestWorkspace) ReadFile(relPath string) string {
	w.t.Helper()
	fullPath := filepath.Join(w.Path, relPath)
	content, err := os.ReadFile(fullPath)
	if err != nil {
		w.t.Fatalf("failed to read file %s: %v", fullPath, err)
	}
	return string(content)
}

// FileExists checks if a file exists in the workspace.
func (w *TestWorkspace) FileExists(relPath string) bool {
	w.t.Helper()
	fullPath := filepath.Join(w.Path, relPath)
	_, err := os.Stat(fullPath)
	return err == nil
}

// MinimalDocument returns a minimal valid schema document in JSON form.
func MinimalDocument() string {
	return `{
  "kind": "schema",
  "name": "schema"
}
`
}

// OrderDocument returns a schema document with an element declaration and
// its complex type.
func OrderDocument() string {
	return `{
  "kind": "schema",
  "name": "order",
  "targetNamespace": "http://example.com/order",
  "children": [
    {"kind": "element", "name": "order", "type": "OrderType"},
    {
      "kind": "complexType",
      "name": "OrderType",
      "contentModel": "sequence",
      "children": [
        {"kind": "element", "name": "id", "type": "xs:string"},
        {"kind": "attribute", "name": "status", "type": "xs:string"}
      ]
    }
  ]
}
`
}
