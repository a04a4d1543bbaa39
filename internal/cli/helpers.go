package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/nbroch/skema/internal/command"
	"github.com/nbroch/skema/internal/document"
)

// loadDocumentFile loads a schema document, mapping failures to stable
// error codes.
func loadDocumentFile(path string) (*document.Tree, string, error) {
	tree, err := document.LoadFile(path)
	if err == nil {
		return tree, "", nil
	}
	if os.IsNotExist(err) {
		return nil, ErrDocumentNotFound, fmt.Errorf("document not found: %s", path)
	}
	return nil, ErrDocumentInvalid, err
}

// decodeCommands parses command JSON: either a single command object or
// an array of commands.
func decodeCommands(data []byte) ([]command.Command, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty command input")
	}

	if trimmed[0] == '[' {
		var cmds []command.Command
		if err := json.Unmarshal(trimmed, &cmds); err != nil {
			return nil, err
		}
		if len(cmds) == 0 {
			return nil, fmt.Errorf("empty command array")
		}
		return cmds, nil
	}

	var c command.Command
	if err := json.Unmarshal(trimmed, &c); err != nil {
		return nil, err
	}
	return []command.Command{c}, nil
}

// readCommandInput reads command JSON from a file, or from stdin when
// path is empty or "-". An interactive stdin with no file is rejected
// rather than left hanging on a read.
func readCommandInput(path string) ([]command.Command, string, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			return nil, ErrMissingArgument,
				fmt.Errorf("no command input: pass a file or pipe JSON on stdin")
		}
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, ErrFileReadError, fmt.Errorf("failed to read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, ErrFileNotFound, fmt.Errorf("file not found: %s", path)
			}
			return nil, ErrFileReadError, err
		}
	}

	cmds, err := decodeCommands(data)
	if err != nil {
		return nil, ErrCommandInvalid, fmt.Errorf("invalid command JSON: %w", err)
	}
	return cmds, "", nil
}

// resolveJournalPath picks the journal database location: the flag when
// set, otherwise the configured path.
func resolveJournalPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return getConfig().JournalPath()
}

// payloadJSON renders a command payload as compact JSON for display.
func payloadJSON(payload any) string {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%+v", payload)
	}
	return string(data)
}
