package command

import (
	"encoding/json"
	"fmt"
)

// Response is the uniform result of executing one command.
//
// Success is strictly binary. Error is present exactly when Success is
// false and always carries a user-presentable message. Data, when present,
// is family-specific; add commands report the address of the created node
// under the "address" key.
type Response struct {
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

// OK returns a success response. data may be nil.
func OK(data map[string]any) Response {
	return Response{Success: true, Data: data}
}

// Created returns a success response carrying the address of a new node.
func Created(address string) Response {
	return OK(map[string]any{"address": address})
}

// Fail returns a failure response with a formatted message.
func Fail(format string, args ...any) Response {
	return Response{Success: false, Error: fmt.Sprintf(format, args...)}
}

// UnmarshalJSON rejects responses that violate the error-iff-failure
// invariant so a malformed host cannot smuggle an ambiguous result in.
func (r *Response) UnmarshalJSON(data []byte) error {
	type plain Response
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Success && p.Error != "" {
		return fmt.Errorf("command response marked success but carries error %q", p.Error)
	}
	if !p.Success && p.Error == "" {
		return fmt.Errorf("command response marked failure without an error message")
	}
	*r = Response(p)
	return nil
}

// Address returns the created-node address from Data, if any.
func (r Response) Address() (string, bool) {
	if r.Data == nil {
		return "", false
	}
	s, ok := r.Data["address"].(string)
	return s, ok && s != ""
}
