// Package host is the document-owning side of the editing protocol. A
// Host holds the executor (and through it the schema tree), speaks the
// message envelope with attached editors, and fans tree updates out to
// every connection after each successful command.
//
// Transports attach editors: Stdio serves the extension-embedding case
// over newline-delimited JSON, WebSocket serves webview embedding. The
// protocol stream owns stdout and the socket; diagnostics go to stderr,
// gated on the debug flag.
package host

import (
	"fmt"
	"os"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/nbroch/skema/internal/command"
	"github.com/nbroch/skema/internal/document"
	"github.com/nbroch/skema/internal/executor"
	"github.com/nbroch/skema/internal/protocol"
)

// Recorder observes every command the host applies, successful or not.
// The journal implements it; a nil recorder disables auditing.
type Recorder interface {
	Record(c command.Command, r command.Response) error
}

// Config assembles a Host.
type Config struct {
	// Executor owns the tree. Nil starts from an empty schema.
	Executor *executor.Executor

	// Options are the diagram display flags pushed to editors on connect.
	Options protocol.DiagramOptions

	// Recorder receives every applied command.
	Recorder Recorder

	// OnNodeClicked is invoked with the address the editor clicked, for
	// reveal-in-source integrations.
	OnNodeClicked func(nodeAddress string)

	// Enrich, when set, post-processes every outgoing snapshot. The CLI
	// installs the documentation HTML renderer here.
	Enrich func(*document.Snapshot)

	// Debug enables stderr diagnostics.
	Debug bool
}

// Host owns the document tree on behalf of connected editors.
type Host struct {
	exec     *executor.Executor
	recorder Recorder
	onClick  func(string)
	enrich   func(*document.Snapshot)
	debug    bool

	mu      sync.Mutex // protects options and conns
	options protocol.DiagramOptions
	conns   map[*conn]struct{}
}

// New builds a Host from cfg.
func New(cfg Config) *Host {
	exec := cfg.Executor
	if exec == nil {
		exec = executor.New(nil)
	}
	return &Host{
		exec:     exec,
		recorder: cfg.Recorder,
		onClick:  cfg.OnNodeClicked,
		enrich:   cfg.Enrich,
		debug:    cfg.Debug,
		options:  cfg.Options,
		conns:    make(map[*conn]struct{}),
	}
}

// Executor exposes the underlying executor for in-process callers.
func (h *Host) Executor() *executor.Executor {
	return h.exec
}

// Execute applies one command on behalf of an in-process caller and
// pushes the refreshed tree to every editor on success. Editor traffic
// takes the transport path instead, so the issuing connection sees its
// commandResult before the schema push.
func (h *Host) Execute(c command.Command) command.Response {
	resp := h.apply(c)
	if resp.Success {
		h.broadcastSchema(false)
	}
	return resp
}

func (h *Host) apply(c command.Command) command.Response {
	resp := h.exec.Apply(c)
	if h.recorder != nil {
		if err := h.recorder.Record(c, resp); err != nil {
			h.logDebug("record %s: %v", c.Type, err)
		}
	}
	return resp
}

// ReplaceTree swaps in a tree rebuilt outside the editing session, such
// as the watcher reloading the document file, and pushes schemaModified
// to every editor.
func (h *Host) ReplaceTree(t *document.Tree) {
	h.exec.Replace(t)
	h.broadcastSchema(true)
}

// DiagramOptions returns the current display flags.
func (h *Host) DiagramOptions() protocol.DiagramOptions {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.options
}

// SetDiagramOptions stores new display flags and pushes them to every
// editor.
func (h *Host) SetDiagramOptions(o protocol.DiagramOptions) {
	h.mu.Lock()
	h.options = o
	h.mu.Unlock()

	m, err := protocol.NewUpdateDiagramOptions(o)
	if err != nil {
		h.logDebug("encode diagram options: %v", err)
		return
	}
	h.broadcast(m)
}

// conn is one attached editor, whatever its transport. write sends one
// encoded envelope; the mutex keeps replies and broadcast pushes from
// interleaving on the wire.
type conn struct {
	id    string
	mu    sync.Mutex
	write func(data []byte) error
}

func newConn(write func([]byte) error) *conn {
	return &conn{id: ulid.Make().String(), write: write}
}

func (c *conn) send(m protocol.Message) error {
	data, err := m.Encode()
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.write(data)
}

func (h *Host) attach(c *conn) {
	h.mu.Lock()
	h.conns[c] = struct{}{}
	h.mu.Unlock()
	h.logDebug("editor %s attached", c.id)
}

func (h *Host) detach(c *conn) {
	h.mu.Lock()
	delete(h.conns, c)
	h.mu.Unlock()
	h.logDebug("editor %s detached", c.id)
}

// greet sends the connect handshake: the full tree, then the diagram
// options.
func (h *Host) greet(c *conn) error {
	m, err := protocol.NewUpdateSchema(h.snapshot())
	if err != nil {
		return err
	}
	if err := c.send(m); err != nil {
		return err
	}
	m, err = protocol.NewUpdateDiagramOptions(h.DiagramOptions())
	if err != nil {
		return err
	}
	return c.send(m)
}

// handle dispatches one editor message. Replies go to the issuing
// connection; schema refreshes fan out to everyone.
func (h *Host) handle(c *conn, m protocol.Message) {
	switch m.Type {
	case protocol.ExecuteCommand:
		cmd, err := m.ExecuteCommand()
		if err != nil {
			h.logDebug("editor %s: %v", c.id, err)
			h.sendError(c, err, "BAD_COMMAND")
			return
		}
		resp := h.apply(cmd)
		reply, err := protocol.NewCommandResult(resp)
		if err != nil {
			h.logDebug("editor %s: encode result: %v", c.id, err)
			return
		}
		if err := c.send(reply); err != nil {
			h.logDebug("editor %s: send result: %v", c.id, err)
			return
		}
		if resp.Success {
			h.broadcastSchema(false)
		}
	case protocol.NodeClicked:
		data, err := m.NodeClicked()
		if err != nil {
			h.logDebug("editor %s: %v", c.id, err)
			return
		}
		h.logDebug("editor %s clicked %s", c.id, data.NodeAddress)
		if h.onClick != nil {
			h.onClick(data.NodeAddress)
		}
	default:
		// Host-to-editor tags coming back the other way.
		h.logDebug("editor %s sent %q, dropping it", c.id, m.Type)
	}
}

func (h *Host) sendError(c *conn, cause error, code string) {
	m, err := protocol.NewError(protocol.ErrorData{Message: cause.Error(), Code: code})
	if err != nil {
		return
	}
	if err := c.send(m); err != nil {
		h.logDebug("editor %s: send error: %v", c.id, err)
	}
}

func (h *Host) snapshot() *document.Snapshot {
	snap := h.exec.Snapshot()
	if h.enrich != nil {
		h.enrich(snap)
	}
	return snap
}

// broadcastSchema pushes the current tree to every editor, tagged
// schemaModified when the change came from outside the editing session.
func (h *Host) broadcastSchema(modified bool) {
	snap := h.snapshot()
	var m protocol.Message
	var err error
	if modified {
		m, err = protocol.NewSchemaModified(snap)
	} else {
		m, err = protocol.NewUpdateSchema(snap)
	}
	if err != nil {
		h.logDebug("encode snapshot: %v", err)
		return
	}
	h.broadcast(m)
}

func (h *Host) broadcast(m protocol.Message) {
	h.mu.Lock()
	conns := make([]*conn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		if err := c.send(m); err != nil {
			h.logDebug("editor %s: push failed: %v", c.id, err)
		}
	}
}

func (h *Host) logDebug(format string, args ...any) {
	if h.debug {
		fmt.Fprintf(os.Stderr, "[skm-host] "+format+"\n", args...)
	}
}
