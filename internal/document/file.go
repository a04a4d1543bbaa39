package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nbroch/skema/internal/atomicfile"
)

// LoadFile reads a snapshot file and rebuilds its tree. The extension
// picks the codec: .yaml and .yml decode as YAML, everything else as
// JSON.
func LoadFile(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	if hasYAMLExt(path) {
		return DecodeYAML(data)
	}
	return DecodeJSON(data)
}

// SaveFile writes the tree's snapshot to path atomically, picking the
// codec from the extension like LoadFile.
func SaveFile(path string, t *Tree) error {
	var data []byte
	var err error
	if hasYAMLExt(path) {
		data, err = t.EncodeYAML()
	} else {
		data, err = t.EncodeJSON()
		if err == nil {
			data = append(data, '\n')
		}
	}
	if err != nil {
		return err
	}
	return atomicfile.WriteFile(path, data)
}

// SaveSnapshot writes an already-rendered snapshot to path atomically,
// without rebuilding a tree first.
func SaveSnapshot(path string, s *Snapshot) error {
	var data []byte
	var err error
	if hasYAMLExt(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	}
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return atomicfile.WriteFile(path, data)
}

func hasYAMLExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
