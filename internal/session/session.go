// Package session implements the editor side of the command exchange: a
// one-shot request/response over an asynchronous message transport.
//
// The envelope carries no correlation id, so a commandResult can only be
// matched to the most recently sent executeCommand. Execute therefore
// holds an internal lock for the duration of each exchange: commands are
// strictly one at a time, and the next response or error-message settles
// the one in flight. Pushed messages (schema snapshots, diagram options,
// unsolicited errors) are routed to the registered handlers instead.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/nbroch/skema/internal/command"
	"github.com/nbroch/skema/internal/protocol"
)

// Transport moves messages across the process boundary. Implementations
// must preserve per-direction FIFO order.
type Transport interface {
	Send(ctx context.Context, m protocol.Message) error
	Receive(ctx context.Context) (protocol.Message, error)
}

// Handlers receive the host's pushed messages. Nil fields drop the
// corresponding push.
type Handlers struct {
	// Schema receives updateSchema and schemaModified payloads; modified
	// is true for the latter.
	Schema func(snapshot []byte, modified bool)
	// DiagramOptions receives updateDiagramOptions payloads.
	DiagramOptions func(protocol.DiagramOptions)
	// Error receives error messages arriving while no command is
	// outstanding.
	Error func(protocol.ErrorData)
	// Debugf, when set, receives protocol oddities worth a log line.
	Debugf func(format string, args ...any)
}

// ExecutionError is an error message that arrived in place of a
// commandResult.
type ExecutionError struct {
	Data protocol.ErrorData
}

func (e *ExecutionError) Error() string {
	return e.Data.Message
}

type outcome struct {
	response command.Response
	err      error
}

// Session drives one editor connection.
type Session struct {
	transport Transport
	handlers  Handlers

	execMu sync.Mutex // one command in flight

	mu      sync.Mutex
	pending chan outcome
}

// New returns a session over the transport. Run must be started for
// responses and pushes to flow.
func New(t Transport, h Handlers) *Session {
	return &Session{transport: t, handlers: h}
}

// Run receives and routes inbound messages until the context is canceled
// or the transport fails.
func (s *Session) Run(ctx context.Context) error {
	for {
		m, err := s.transport.Receive(ctx)
		if err != nil {
			return err
		}
		s.dispatch(m)
	}
}

// Execute sends one command and waits for its result. Cancelling the
// context abandons the wait, not the remote execution: the command may
// still apply on the host.
func (s *Session) Execute(ctx context.Context, c command.Command) (command.Response, error) {
	s.execMu.Lock()
	defer s.execMu.Unlock()

	msg, err := protocol.NewExecuteCommand(c)
	if err != nil {
		return command.Response{}, err
	}

	ch := make(chan outcome, 1)
	s.mu.Lock()
	s.pending = ch
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.pending = nil
		s.mu.Unlock()
	}()

	if err := s.transport.Send(ctx, msg); err != nil {
		return command.Response{}, fmt.Errorf("send command: %w", err)
	}

	select {
	case <-ctx.Done():
		return command.Response{}, ctx.Err()
	case out := <-ch:
		return out.response, out.err
	}
}

// NodeClicked tells the host a node was selected in the diagram. Fire and
// forget: no response flows back.
func (s *Session) NodeClicked(ctx context.Context, nodeAddress string) error {
	msg, err := protocol.NewNodeClicked(nodeAddress)
	if err != nil {
		return err
	}
	return s.transport.Send(ctx, msg)
}

// settle hands an outcome to the pending Execute, if any.
func (s *Session) settle(out outcome) bool {
	s.mu.Lock()
	ch := s.pending
	s.pending = nil
	s.mu.Unlock()
	if ch == nil {
		return false
	}
	ch <- out
	return true
}

func (s *Session) dispatch(m protocol.Message) {
	switch m.Type {
	case protocol.CommandResult:
		r, err := m.CommandResult()
		if err != nil {
			s.settle(outcome{err: err})
			return
		}
		if !s.settle(outcome{response: r}) {
			s.debugf("commandResult with no command outstanding: %+v", r)
		}

	case protocol.ErrorMessage:
		e, err := m.ErrorData()
		if err != nil {
			s.settle(outcome{err: err})
			return
		}
		if s.settle(outcome{err: &ExecutionError{Data: e}}) {
			return
		}
		if s.handlers.Error != nil {
			s.handlers.Error(e)
		}

	case protocol.UpdateSchema, protocol.SchemaModified:
		if s.handlers.Schema != nil {
			s.handlers.Schema(m.Data, m.Type == protocol.SchemaModified)
		}

	case protocol.UpdateDiagramOptions:
		o, err := m.DiagramOptions()
		if err != nil {
			s.debugf("bad updateDiagramOptions payload: %v", err)
			return
		}
		if s.handlers.DiagramOptions != nil {
			s.handlers.DiagramOptions(o)
		}

	default:
		s.debugf("unexpected %s message on the editor side", m.Type)
	}
}

func (s *Session) debugf(format string, args ...any) {
	if s.handlers.Debugf != nil {
		s.handlers.Debugf(format, args...)
	}
}
