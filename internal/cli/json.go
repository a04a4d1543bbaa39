// Package cli implements the skm command-line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// jsonOutput mirrors the global --json flag.
var jsonOutput bool

// Response is the JSON envelope every skm command emits in --json mode.
// Scripts key off OK and Error.Code; Message and Suggestion are for
// people.
type Response struct {
	OK       bool      `json:"ok"`
	Data     any       `json:"data,omitempty"`
	Error    *CLIError `json:"error,omitempty"`
	Warnings []Warning `json:"warnings,omitempty"`
	Meta     *Meta     `json:"meta,omitempty"`
}

// CLIError is the error half of the envelope. Code is one of the stable
// Err* constants in errors.go.
type CLIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Warning is a non-fatal finding attached to an otherwise successful
// result, optionally pinned to a node address.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Address string `json:"address,omitempty"`
}

// Meta carries result counts and timings.
type Meta struct {
	Count      int   `json:"count,omitempty"`
	DurationMs int64 `json:"duration_ms,omitempty"`
}

func outputJSON(resp Response) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

func outputSuccess(data any, meta *Meta) {
	outputJSON(Response{OK: true, Data: data, Meta: meta})
}

func outputSuccessWithWarnings(data any, warnings []Warning, meta *Meta) {
	outputJSON(Response{OK: true, Data: data, Warnings: warnings, Meta: meta})
}

func outputError(code, message string, details any, suggestion string) {
	outputJSON(Response{OK: false, Error: &CLIError{
		Code:       code,
		Message:    message,
		Details:    details,
		Suggestion: suggestion,
	}})
}

func isJSONOutput() bool {
	return jsonOutput
}

// handleError reports err in the active output mode: as a JSON envelope in
// --json mode (returning nil so cobra does not print it again), or as the
// error itself for cobra's stderr path.
func handleError(code string, err error, suggestion string) error {
	if jsonOutput {
		outputError(code, err.Error(), nil, suggestion)
		return nil
	}
	return err
}

func handleErrorMsg(code, message, suggestion string) error {
	if jsonOutput {
		outputError(code, message, nil, suggestion)
		return nil
	}
	return fmt.Errorf("%s", message)
}

func handleErrorWithDetails(code, message, suggestion string, details any) error {
	if jsonOutput {
		outputError(code, message, details, suggestion)
		return nil
	}
	return fmt.Errorf("%s", message)
}
