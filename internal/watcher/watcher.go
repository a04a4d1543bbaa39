// Package watcher reloads the schema document when something other than
// the host writes it: a git checkout, another tool, a manual edit. The
// host swaps the rebuilt tree in and pushes schemaModified to its
// editors.
//
// It watches the document's directory rather than the file itself so
// that atomic saves (write temp, rename over target) keep being seen
// after the inode changes.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nbroch/skema/internal/document"
)

// Loader rebuilds a document tree from the file at path.
type Loader func(path string) (*document.Tree, error)

// Config holds configuration options for the Watcher.
type Config struct {
	// Path is the schema document file to watch.
	Path string

	// Load rebuilds the tree after a change. Defaults to
	// document.LoadFile, which reads the JSON and YAML snapshot
	// formats.
	Load Loader

	// OnReload receives the rebuilt tree, or the load error when the
	// file is unreadable mid-save.
	OnReload func(t *document.Tree, err error)

	// Debounce collapses bursts of write events. Default: 100ms.
	Debounce time.Duration

	Debug bool
}

// Watcher monitors one schema document for external changes.
type Watcher struct {
	path     string
	load     Loader
	onReload func(*document.Tree, error)
	debounce time.Duration
	debug    bool

	mu      sync.Mutex
	dirty   bool
	touched time.Time
}

// New creates a Watcher with the given configuration.
func New(cfg Config) (*Watcher, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("document path is required")
	}
	if cfg.OnReload == nil {
		return nil, fmt.Errorf("reload callback is required")
	}

	path, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve document path: %w", err)
	}

	load := cfg.Load
	if load == nil {
		load = document.LoadFile
	}
	debounce := cfg.Debounce
	if debounce == 0 {
		debounce = 100 * time.Millisecond
	}

	return &Watcher{
		path:     path,
		load:     load,
		onReload: cfg.OnReload,
		debounce: debounce,
		debug:    cfg.Debug,
	}, nil
}

// Start begins watching the document. It blocks until the context is
// cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fsWatcher.Close()

	if err := fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}

	w.logDebug("Watching document: %s", w.path)

	go w.processDebounced(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logDebug("Watcher error: %v", err)
		}
	}
}

// handleEvent processes a single filesystem event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}

	w.logDebug("Event: %s %s", event.Op, w.path)

	// Create covers the rename half of an atomic save.
	switch {
	case event.Op&fsnotify.Write != 0, event.Op&fsnotify.Create != 0:
		w.mu.Lock()
		w.dirty = true
		w.touched = time.Now()
		w.mu.Unlock()
	case event.Op&fsnotify.Remove != 0, event.Op&fsnotify.Rename != 0:
		// The document going away is not a reload; if a new file lands
		// in its place the Create event reschedules.
		w.logDebug("Document moved away")
	}
}

// processDebounced reloads once a burst of events has settled.
func (w *Watcher) processDebounced(ctx context.Context) {
	ticker := time.NewTicker(25 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.mu.Lock()
			ready := w.dirty && time.Since(w.touched) >= w.debounce
			if ready {
				w.dirty = false
			}
			w.mu.Unlock()
			if ready {
				w.Reload()
			}
		}
	}
}

// Reload rebuilds the tree from disk and invokes the callback. It can
// be called directly without starting the watcher.
func (w *Watcher) Reload() {
	t, err := w.load(w.path)
	w.onReload(t, err)
	if err != nil {
		w.logDebug("Failed to reload %s: %v", w.path, err)
	} else {
		w.logDebug("Reloaded: %s", w.path)
	}
}

// logDebug logs a debug message if debug mode is enabled.
func (w *Watcher) logDebug(format string, args ...any) {
	if w.debug {
		fmt.Fprintf(os.Stderr, "[skm-watcher] "+format+"\n", args...)
	}
}
