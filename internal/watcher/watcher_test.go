package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nbroch/skema/internal/address"
	"github.com/nbroch/skema/internal/document"
)

type reloadEvent struct {
	tree *document.Tree
	err  error
}

func writeSnapshot(t *testing.T, path, name string) {
	t.Helper()
	body := `{"kind":"schema","children":[{"kind":"element","name":"` + name + `"}]}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
}

func topLevelName(t *testing.T, tr *document.Tree) string {
	t.Helper()
	kids := tr.Children(address.Root)
	if len(kids) != 1 {
		t.Fatalf("tree has %d top-level nodes, want 1", len(kids))
	}
	n, ok := tr.Get(kids[0])
	if !ok {
		t.Fatalf("Get %s: not found", kids[0])
	}
	return n.Name
}

func TestNewValidation(t *testing.T) {
	if _, err := New(Config{OnReload: func(*document.Tree, error) {}}); err == nil {
		t.Error("missing path accepted")
	}
	if _, err := New(Config{Path: "schema.json"}); err == nil {
		t.Error("missing callback accepted")
	}
}

func TestReloadDirect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	writeSnapshot(t, path, "person")

	events := make(chan reloadEvent, 1)
	w, err := New(Config{
		Path:     path,
		OnReload: func(tr *document.Tree, err error) { events <- reloadEvent{tr, err} },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	w.Reload()
	ev := <-events
	if ev.err != nil {
		t.Fatalf("Reload: %v", ev.err)
	}
	if got := topLevelName(t, ev.tree); got != "person" {
		t.Errorf("top-level element = %q, want person", got)
	}
}

func TestWatchPicksUpExternalWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.json")
	writeSnapshot(t, path, "person")

	events := make(chan reloadEvent, 4)
	w, err := New(Config{
		Path:     path,
		OnReload: func(tr *document.Tree, err error) { events <- reloadEvent{tr, err} },
		Debounce: 50 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Start(ctx) }()

	// Give the watch time to establish before touching the file.
	time.Sleep(250 * time.Millisecond)

	writeSnapshot(t, path, "order")
	select {
	case ev := <-events:
		if ev.err != nil {
			t.Fatalf("reload: %v", ev.err)
		}
		if got := topLevelName(t, ev.tree); got != "order" {
			t.Errorf("top-level element = %q, want order", got)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload after external write")
	}

	// A broken write surfaces the load error instead of a tree.
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write garbage: %v", err)
	}
	select {
	case ev := <-events:
		if ev.err == nil {
			t.Fatal("garbage snapshot reloaded without error")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload after garbage write")
	}
}
