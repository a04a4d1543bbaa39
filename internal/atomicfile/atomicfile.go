// Package atomicfile writes files without exposing torn intermediate
// states: the schema document a watcher or editor extension is reading
// must never be caught half-written.
package atomicfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile replaces the file at path with data by writing a temporary
// sibling and renaming it into place. An existing file keeps its mode;
// new files get 0644.
func WriteFile(path string, data []byte) error {
	perm := os.FileMode(0644)
	if st, err := os.Stat(path); err == nil {
		perm = st.Mode()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := writeAndClose(tmp, data, perm); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		// Windows refuses to rename over an existing file; retry after
		// removing the target, giving up atomicity there.
		os.Remove(path)
		if err2 := os.Rename(tmpPath, path); err2 != nil {
			os.Remove(tmpPath)
			return fmt.Errorf("rename temp file: %w", err)
		}
	}
	return nil
}

func writeAndClose(f *os.File, data []byte, perm os.FileMode) error {
	// Chmod is best-effort; some filesystems refuse it on open handles.
	_ = f.Chmod(perm)

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	return nil
}
