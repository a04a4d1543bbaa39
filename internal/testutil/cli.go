package testutil

import (
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
)

// The skm binary is built once per test process and shared.
var (
	buildMu    sync.Mutex
	binaryPath string
	buildErr   error
)

// CLIResult is the parsed outcome of one skm invocation in --json mode.
type CLIResult struct {
	OK       bool
	Data     map[string]any
	Error    *CLIError
	Warnings []CLIWarning
	Meta     *CLIMeta
	RawJSON  string
	ExitCode int
}

// CLIError mirrors the error half of the CLI's JSON envelope.
type CLIError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	Suggestion string         `json:"suggestion,omitempty"`
}

// CLIWarning mirrors one envelope warning.
type CLIWarning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Address string `json:"address,omitempty"`
}

// CLIMeta mirrors the envelope meta block.
type CLIMeta struct {
	Count      int   `json:"count,omitempty"`
	DurationMs int64 `json:"duration_ms,omitempty"`
}

// BuildCLI compiles cmd/skm into a temp directory and returns the binary
// path. RunCLI calls it implicitly.
func BuildCLI(t *testing.T) string {
	t.Helper()

	buildMu.Lock()
	defer buildMu.Unlock()

	if binaryPath != "" {
		if _, err := os.Stat(binaryPath); err == nil {
			return binaryPath
		}
		// Temp cleanup can race us on some runners; rebuild.
		binaryPath, buildErr = "", nil
	}

	binaryPath, buildErr = buildOnce()
	if buildErr != nil {
		binaryPath = ""
		t.Fatalf("failed to build CLI: %v", buildErr)
	}
	return binaryPath
}

func buildOnce() (string, error) {
	root, err := findProjectRoot()
	if err != nil {
		return "", err
	}
	tmpDir, err := os.MkdirTemp("", "skm-cli-bin-*")
	if err != nil {
		return "", err
	}

	name := "skm"
	if runtime.GOOS == "windows" {
		name = "skm.exe"
	}
	bin := filepath.Join(tmpDir, name)

	cmd := exec.Command("go", "build", "-o", bin, "./cmd/skm")
	cmd.Dir = root
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", &BuildError{Output: string(output), Err: err}
	}
	return bin, nil
}

// BuildError carries the compiler output alongside the exec failure.
type BuildError struct {
	Output string
	Err    error
}

func (e *BuildError) Error() string {
	return e.Err.Error() + "\n" + e.Output
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// RunCLI runs skm in the workspace with --json and the workspace config,
// returning the parsed envelope.
func (w *TestWorkspace) RunCLI(args ...string) *CLIResult {
	w.t.Helper()
	return w.run("", args)
}

// RunCLIWithStdin is RunCLI with stdin content.
func (w *TestWorkspace) RunCLIWithStdin(stdin string, args ...string) *CLIResult {
	w.t.Helper()
	return w.run(stdin, args)
}

func (w *TestWorkspace) run(stdin string, args []string) *CLIResult {
	w.t.Helper()

	binary := BuildCLI(w.t)

	cmdArgs := append([]string{"--json", "--config", w.ConfigPath()}, args...)
	cmd := exec.Command(binary, cmdArgs...)
	cmd.Dir = w.Path
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	output, err := cmd.CombinedOutput()

	result := &CLIResult{RawJSON: string(output)}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
	}

	var resp struct {
		OK       bool           `json:"ok"`
		Data     map[string]any `json:"data,omitempty"`
		Error    *CLIError      `json:"error,omitempty"`
		Warnings []CLIWarning   `json:"warnings,omitempty"`
		Meta     *CLIMeta       `json:"meta,omitempty"`
	}
	if err := json.Unmarshal(output, &resp); err != nil {
		result.OK = false
		result.Error = &CLIError{
			Code:    "PARSE_ERROR",
			Message: "Failed to parse JSON output: " + err.Error(),
			Details: map[string]any{"raw": string(output)},
		}
		return result
	}

	result.OK = resp.OK
	result.Data = resp.Data
	result.Error = resp.Error
	result.Warnings = resp.Warnings
	result.Meta = resp.Meta
	return result
}

// MustSucceed fails the test unless the command succeeded.
func (r *CLIResult) MustSucceed(t *testing.T) *CLIResult {
	t.Helper()
	if !r.OK {
		msg := "unknown error"
		if r.Error != nil {
			msg = r.Error.Code + ": " + r.Error.Message
		}
		t.Fatalf("expected command to succeed, got error: %s\nRaw output: %s", msg, r.RawJSON)
	}
	return r
}

// MustFail fails the test unless the command failed with exactly code.
func (r *CLIResult) MustFail(t *testing.T, code string) *CLIResult {
	t.Helper()
	if r.OK {
		t.Fatalf("expected command to fail with code %s, but it succeeded\nRaw output: %s", code, r.RawJSON)
	}
	if r.Error == nil {
		t.Fatalf("expected error with code %s, but error is nil\nRaw output: %s", code, r.RawJSON)
	}
	if r.Error.Code != code {
		t.Fatalf("expected error code %s, got %s: %s\nRaw output: %s", code, r.Error.Code, r.Error.Message, r.RawJSON)
	}
	return r
}

// MustFailWithMessage fails the test unless the command failed and the
// message or suggestion contains msgSubstr.
func (r *CLIResult) MustFailWithMessage(t *testing.T, msgSubstr string) *CLIResult {
	t.Helper()
	if r.OK {
		t.Fatalf("expected command to fail, but it succeeded\nRaw output: %s", r.RawJSON)
	}
	if msgSubstr != "" && r.Error != nil {
		if !strings.Contains(r.Error.Message, msgSubstr) && !strings.Contains(r.Error.Suggestion, msgSubstr) {
			t.Errorf("expected error to contain %q, got: %s (suggestion: %s)", msgSubstr, r.Error.Message, r.Error.Suggestion)
		}
	}
	return r
}

// DataList extracts a list value from Data.
func (r *CLIResult) DataList(key string) []any {
	if r.Data == nil {
		return nil
	}
	list, _ := r.Data[key].([]any)
	return list
}

// DataString extracts a string value from Data.
func (r *CLIResult) DataString(key string) string {
	if r.Data == nil {
		return ""
	}
	s, _ := r.Data[key].(string)
	return s
}
