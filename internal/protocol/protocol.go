// Package protocol defines the message envelope that crosses the boundary
// between the visual editor and the host process owning the document tree.
//
// Every message is {"command": <tag>, "data": <payload>}. The envelope
// carries no correlation id: a commandResult is matched to the most
// recently sent executeCommand, so callers must keep at most one command
// outstanding (the session package enforces this).
package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/nbroch/skema/internal/command"
)

// MessageType is a message envelope tag.
type MessageType string

// Editor to host.
const (
	ExecuteCommand MessageType = "executeCommand"
	NodeClicked    MessageType = "nodeClicked"
)

// Host to editor.
const (
	UpdateSchema         MessageType = "updateSchema"
	SchemaModified       MessageType = "schemaModified"
	CommandResult        MessageType = "commandResult"
	ErrorMessage         MessageType = "error"
	UpdateDiagramOptions MessageType = "updateDiagramOptions"
)

var messageTypes = map[MessageType]bool{
	ExecuteCommand:       true,
	NodeClicked:          true,
	UpdateSchema:         true,
	SchemaModified:       true,
	CommandResult:        true,
	ErrorMessage:         true,
	UpdateDiagramOptions: true,
}

// IsValid reports whether t is a known envelope tag.
func (t MessageType) IsValid() bool {
	return messageTypes[t]
}

// FromEditor reports whether messages of this tag originate in the editor.
func (t MessageType) FromEditor() bool {
	return t == ExecuteCommand || t == NodeClicked
}

// Message is one envelope. Data stays raw until a typed accessor decodes
// it for the tag at hand.
type Message struct {
	Type MessageType     `json:"command"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Decode parses one envelope and rejects unknown tags.
func Decode(data []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return Message{}, fmt.Errorf("decode message: %w", err)
	}
	if !m.Type.IsValid() {
		return Message{}, fmt.Errorf("unknown message tag %q", m.Type)
	}
	return m, nil
}

// Encode serializes one envelope.
func (m Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

func newMessage(t MessageType, payload any) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("encode %s data: %w", t, err)
	}
	return Message{Type: t, Data: data}, nil
}

// NodeClickedData is the nodeClicked payload.
type NodeClickedData struct {
	NodeAddress string `json:"nodeAddress"`
}

// ErrorData is the error payload: a user-presentable message with an
// optional machine code and diagnostic stack.
type ErrorData struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

// DiagramOptions is the updateDiagramOptions payload: display flags for
// the editor's diagram surface.
type DiagramOptions struct {
	ShowTypes         bool `json:"showTypes"`
	ShowOccurrences   bool `json:"showOccurrences"`
	ShowDocumentation bool `json:"showDocumentation"`
	Compact           bool `json:"compact"`
}

// NewExecuteCommand wraps a command for sending.
func NewExecuteCommand(c command.Command) (Message, error) {
	return newMessage(ExecuteCommand, c)
}

// NewNodeClicked wraps a clicked node address.
func NewNodeClicked(nodeAddress string) (Message, error) {
	return newMessage(NodeClicked, NodeClickedData{NodeAddress: nodeAddress})
}

// NewUpdateSchema wraps a full tree snapshot.
func NewUpdateSchema(snapshot any) (Message, error) {
	return newMessage(UpdateSchema, snapshot)
}

// NewSchemaModified wraps a tree snapshot refreshed from outside the
// editing session, such as the schema file changing on disk.
func NewSchemaModified(snapshot any) (Message, error) {
	return newMessage(SchemaModified, snapshot)
}

// NewCommandResult wraps a command response.
func NewCommandResult(r command.Response) (Message, error) {
	return newMessage(CommandResult, r)
}

// NewError wraps an error report.
func NewError(e ErrorData) (Message, error) {
	return newMessage(ErrorMessage, e)
}

// NewUpdateDiagramOptions wraps display flags.
func NewUpdateDiagramOptions(o DiagramOptions) (Message, error) {
	return newMessage(UpdateDiagramOptions, o)
}

func (m Message) expect(t MessageType) error {
	if m.Type != t {
		return fmt.Errorf("message is %q, not %q", m.Type, t)
	}
	return nil
}

// ExecuteCommand decodes an executeCommand payload.
func (m Message) ExecuteCommand() (command.Command, error) {
	if err := m.expect(ExecuteCommand); err != nil {
		return command.Command{}, err
	}
	var c command.Command
	if err := json.Unmarshal(m.Data, &c); err != nil {
		return command.Command{}, fmt.Errorf("decode executeCommand data: %w", err)
	}
	return c, nil
}

// NodeClicked decodes a nodeClicked payload.
func (m Message) NodeClicked() (NodeClickedData, error) {
	if err := m.expect(NodeClicked); err != nil {
		return NodeClickedData{}, err
	}
	var d NodeClickedData
	if err := json.Unmarshal(m.Data, &d); err != nil {
		return NodeClickedData{}, fmt.Errorf("decode nodeClicked data: %w", err)
	}
	return d, nil
}

// CommandResult decodes a commandResult payload.
func (m Message) CommandResult() (command.Response, error) {
	if err := m.expect(CommandResult); err != nil {
		return command.Response{}, err
	}
	var r command.Response
	if err := json.Unmarshal(m.Data, &r); err != nil {
		return command.Response{}, fmt.Errorf("decode commandResult data: %w", err)
	}
	return r, nil
}

// ErrorData decodes an error payload.
func (m Message) ErrorData() (ErrorData, error) {
	if err := m.expect(ErrorMessage); err != nil {
		return ErrorData{}, err
	}
	var e ErrorData
	if err := json.Unmarshal(m.Data, &e); err != nil {
		return ErrorData{}, fmt.Errorf("decode error data: %w", err)
	}
	return e, nil
}

// DiagramOptions decodes an updateDiagramOptions payload.
func (m Message) DiagramOptions() (DiagramOptions, error) {
	if err := m.expect(UpdateDiagramOptions); err != nil {
		return DiagramOptions{}, err
	}
	var o DiagramOptions
	if err := json.Unmarshal(m.Data, &o); err != nil {
		return DiagramOptions{}, fmt.Errorf("decode updateDiagramOptions data: %w", err)
	}
	return o, nil
}

// Snapshot decodes an updateSchema or schemaModified payload into v.
func (m Message) Snapshot(v any) error {
	if m.Type != UpdateSchema && m.Type != SchemaModified {
		return fmt.Errorf("message is %q, not a snapshot", m.Type)
	}
	if err := json.Unmarshal(m.Data, v); err != nil {
		return fmt.Errorf("decode %s data: %w", m.Type, err)
	}
	return nil
}
