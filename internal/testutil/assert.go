package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// AssertFileExists fails the test if the file does not exist.
func (w *TestWorkspace) AssertFileExists(relPath string) {
	w.t.Helper()
	fullPath := filepath.Join(w.Path, relPath)
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		w.t.Errorf("expected file to exist: %s", relPath)
	}
}

// AssertFileNotExists fails the test if the file exists.
func (w *TestWorkspace) AssertFileNotExists(relPath string) {
	w.t.Helper()
	fullPath := filepath.Join(w.Path, relPath)
	if _, err := os.Stat(fullPath); err == nil {
		w.t.Errorf("expected file to not exist: %s", relPath)
	}
}

// AssertFileContains fails the test if the file does not contain the substring.
func (w *TestWorkspace) AssertFileContains(relPath, substr string) {
	w.t.Helper()
	content := w.ReadFile(relPath)
	if !strings.Contains(content, substr) {
		w.t.Errorf("expected file %s to contain %q, got:\n%s", relPath, substr, content)
	}
}

// AssertFileNotContains fails the test if the file contains the substring.
func (w *TestWorkspace) AssertFileNotContains(relPath, substr string) {
	w.t.Helper()
	content := w.ReadFile(relPath)
	if strings.Contains(content, substr) {
		w.t.Errorf("expected file %s to not contain %q, got:\n%s", relPath, substr, content)
	}
}

// AssertDirExists fails the test if the directory does not exist.
func (w *TestWorkspace) AssertDirExists(relPath string) {
	w.t.Helper()
	fullPath := filepath.Join(w.Path, relPath)
	info, err := os.Stat(fullPath)
	if os.IsNotExist(err) {
		w.t.Errorf("expected directory to exist: %s", relPath)
		return
	}
	if !info.IsDir() {
		w.t.Errorf("expected %s to be a directory, but it's a file", relPath)
	}
}

// AssertNodeExists renders the document tree and checks that a node with
// the given address is present.
func (w *TestWorkspace) AssertNodeExists(document, nodeAddress string) {
	w.t.Helper()
	if !w.treeHasAddress(document, nodeAddress) {
		w.t.Errorf("expected node to exist: %s", nodeAddress)
	}
}

// AssertNodeNotExists renders the document tree and checks that no node
// with the given address is present.
func (w *TestWorkspace) AssertNodeNotExists(document, nodeAddress string) {
	w.t.Helper()
	if w.treeHasAddress(document, nodeAddress) {
		w.t.Errorf("expected node to not exist: %s, but it does", nodeAddress)
	}
}

func (w *TestWorkspace) treeHasAddress(document, nodeAddress string) bool {
	w.t.Helper()
	result := w.RunCLI("tree", document)
	result.MustSucceed(w.t)
	tree, ok := result.Data["tree"].(map[string]interface{})
	if !ok {
		w.t.Fatalf("tree output has no tree field\nRaw: %s", result.RawJSON)
	}
	return snapshotHasAddress(tree, nodeAddress)
}

// snapshotHasAddress walks a decoded snapshot looking for the address.
func snapshotHasAddress(node map[string]interface{}, nodeAddress string) bool {
	if addr, _ := node["address"].(string); addr == nodeAddress {
		return true
	}
	children, _ := node["children"].([]interface{})
	for _, c := range children {
		if child, ok := c.(map[string]interface{}); ok && snapshotHasAddress(child, nodeAddress) {
			return true
		}
	}
	return false
}

// AssertNodeCount renders the document tree and verifies the total node
// count, root included.
func (w *TestWorkspace) AssertNodeCount(document string, expectedCount int) {
	w.t.Helper()
	result := w.RunCLI("tree", document)
	result.MustSucceed(w.t)
	got := 0
	if result.Meta != nil {
		got = result.Meta.Count
	}
	if got != expectedCount {
		w.t.Errorf("document %s: expected %d nodes, got %d\nRaw: %s",
			document, expectedCount, got, result.RawJSON)
	}
}

// AssertHasWarning checks that the result contains a warning with the given code.
func (r *CLIResult) AssertHasWarning(t *testing.T, code string) {
	t.Helper()
	for _, w := range r.Warnings {
		if w.Code == code {
			return
		}
	}
	t.Errorf("expected warning with code %s, got warnings: %+v", code, r.Warnings)
}

// AssertNoWarnings checks that the result has no warnings.
func (r *CLIResult) AssertNoWarnings(t *testing.T) {
	t.Helper()
	if len(r.Warnings) > 0 {
		t.Errorf("expected no warnings, got: %+v", r.Warnings)
	}
}

// AssertResultCount checks that a result list has the expected length.
func (r *CLIResult) AssertResultCount(t *testing.T, key string, expected int) {
	t.Helper()
	results := r.DataList(key)
	if len(results) != expected {
		t.Errorf("expected %d %s, got %d\nRaw: %s", expected, key, len(results), r.RawJSON)
	}
}
