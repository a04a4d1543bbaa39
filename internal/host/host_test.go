package host

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nbroch/skema/internal/address"
	"github.com/nbroch/skema/internal/command"
	"github.com/nbroch/skema/internal/document"
	"github.com/nbroch/skema/internal/protocol"
)

type captureRecorder struct {
	mu      sync.Mutex
	applied []command.Type
}

func (r *captureRecorder) Record(c command.Command, _ command.Response) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applied = append(r.applied, c.Type)
	return nil
}

func (r *captureRecorder) types() []command.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]command.Type(nil), r.applied...)
}

// decodeStream splits a finished stdio output buffer back into
// envelopes.
func decodeStream(t *testing.T, data []byte) []protocol.Message {
	t.Helper()
	var msgs []protocol.Message
	dec := json.NewDecoder(bytes.NewReader(data))
	for {
		var m protocol.Message
		err := dec.Decode(&m)
		if err == io.EOF {
			return msgs
		}
		if err != nil {
			t.Fatalf("decode host output: %v", err)
		}
		msgs = append(msgs, m)
	}
}

// editor is a live stdio peer: it feeds lines to a running Stdio server
// through one pipe and collects the host's messages from another.
type editor struct {
	t    *testing.T
	in   *io.PipeWriter
	msgs chan protocol.Message
}

func dialStdio(t *testing.T, h *Host) *editor {
	t.Helper()
	inR, inW := io.Pipe()
	outR, outW := io.Pipe()

	s := NewStdio(h)
	s.in, s.out = inR, outW
	go func() {
		_ = s.Run(context.Background())
		outW.Close()
	}()

	ed := &editor{t: t, in: inW, msgs: make(chan protocol.Message, 16)}
	go func() {
		dec := json.NewDecoder(outR)
		for {
			var m protocol.Message
			if err := dec.Decode(&m); err != nil {
				close(ed.msgs)
				return
			}
			ed.msgs <- m
		}
	}()
	t.Cleanup(func() { inW.Close() })
	return ed
}

func (e *editor) send(m protocol.Message) {
	e.t.Helper()
	data, err := m.Encode()
	if err != nil {
		e.t.Fatalf("encode message: %v", err)
	}
	if _, err := fmt.Fprintln(e.in, string(data)); err != nil {
		e.t.Fatalf("write to host: %v", err)
	}
}

func (e *editor) next() protocol.Message {
	e.t.Helper()
	select {
	case m, ok := <-e.msgs:
		if !ok {
			e.t.Fatal("host output closed")
		}
		return m
	case <-time.After(2 * time.Second):
		e.t.Fatal("timed out waiting for host message")
	}
	return protocol.Message{}
}

// handshake consumes the two connect pushes.
func (e *editor) handshake() {
	e.t.Helper()
	if m := e.next(); m.Type != protocol.UpdateSchema {
		e.t.Fatalf("first message = %q, want %q", m.Type, protocol.UpdateSchema)
	}
	if m := e.next(); m.Type != protocol.UpdateDiagramOptions {
		e.t.Fatalf("second message = %q, want %q", m.Type, protocol.UpdateDiagramOptions)
	}
}

func TestStdioSession(t *testing.T) {
	var clicked string
	rec := &captureRecorder{}
	h := New(Config{
		Options:       protocol.DiagramOptions{ShowTypes: true, ShowOccurrences: true},
		Recorder:      rec,
		OnNodeClicked: func(addr string) { clicked = addr },
	})

	input := strings.Join([]string{
		`{"command":"executeCommand","data":{"type":"addElement","payload":{"parent":"/schema","name":"person","type":"xs:string"}}}`,
		`{"command":"nodeClicked","data":{"nodeAddress":"/element:person"}}`,
	}, "\n") + "\n"

	var out bytes.Buffer
	s := NewStdio(h)
	s.in, s.out = strings.NewReader(input), &out
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	msgs := decodeStream(t, out.Bytes())
	wantTypes := []protocol.MessageType{
		protocol.UpdateSchema,
		protocol.UpdateDiagramOptions,
		protocol.CommandResult,
		protocol.UpdateSchema,
	}
	if len(msgs) != len(wantTypes) {
		t.Fatalf("got %d messages, want %d", len(msgs), len(wantTypes))
	}
	for i, want := range wantTypes {
		if msgs[i].Type != want {
			t.Errorf("message %d = %q, want %q", i, msgs[i].Type, want)
		}
	}

	opts, err := msgs[1].DiagramOptions()
	if err != nil {
		t.Fatalf("decode handshake options: %v", err)
	}
	if !opts.ShowTypes || !opts.ShowOccurrences {
		t.Errorf("handshake options = %+v", opts)
	}

	resp, err := msgs[2].CommandResult()
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if !resp.Success {
		t.Fatalf("command failed: %s", resp.Error)
	}
	if addr, ok := resp.Address(); !ok || addr != "/element:person" {
		t.Errorf("created address = %q, want /element:person", addr)
	}

	var snap document.Snapshot
	if err := msgs[3].Snapshot(&snap); err != nil {
		t.Fatalf("decode pushed snapshot: %v", err)
	}
	if len(snap.Children) != 1 || snap.Children[0].Name != "person" {
		t.Errorf("pushed snapshot children = %+v", snap.Children)
	}

	if clicked != "/element:person" {
		t.Errorf("clicked = %q, want /element:person", clicked)
	}
	if got := rec.types(); len(got) != 1 || got[0] != command.AddElement {
		t.Errorf("recorded commands = %v", got)
	}
}

func TestStdioFailedCommandDoesNotPush(t *testing.T) {
	h := New(Config{})

	input := `{"command":"executeCommand","data":{"type":"addElement","payload":{"parent":"/schema","name":""}}}` + "\n"
	var out bytes.Buffer
	s := NewStdio(h)
	s.in, s.out = strings.NewReader(input), &out
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	msgs := decodeStream(t, out.Bytes())
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want handshake + result only", len(msgs))
	}
	resp, err := msgs[2].CommandResult()
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if resp.Success {
		t.Fatal("blank element name accepted")
	}
	if resp.Error != "Element name is required" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestStdioRejectsMalformedInput(t *testing.T) {
	h := New(Config{})

	input := strings.Join([]string{
		`this is not json`,
		`{"command":"renameEverything"}`,
		`{"command":"executeCommand","data":{"type":"addElement","payload":{"parent":"/schema","name":"person","type":"xs:string"}}}`,
	}, "\n") + "\n"

	var out bytes.Buffer
	s := NewStdio(h)
	s.in, s.out = strings.NewReader(input), &out
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	msgs := decodeStream(t, out.Bytes())
	wantTypes := []protocol.MessageType{
		protocol.UpdateSchema,
		protocol.UpdateDiagramOptions,
		protocol.ErrorMessage,
		protocol.ErrorMessage,
		protocol.CommandResult,
		protocol.UpdateSchema,
	}
	if len(msgs) != len(wantTypes) {
		t.Fatalf("got %d messages, want %d", len(msgs), len(wantTypes))
	}
	for i, want := range wantTypes {
		if msgs[i].Type != want {
			t.Errorf("message %d = %q, want %q", i, msgs[i].Type, want)
		}
	}
	e, err := msgs[2].ErrorData()
	if err != nil {
		t.Fatalf("decode error message: %v", err)
	}
	if e.Code != "BAD_MESSAGE" || e.Message == "" {
		t.Errorf("error data = %+v", e)
	}
}

func TestBroadcastReachesAllEditors(t *testing.T) {
	h := New(Config{})
	a := dialStdio(t, h)
	a.handshake()
	b := dialStdio(t, h)
	b.handshake()

	m, err := protocol.NewExecuteCommand(command.New(command.AddElement, command.AddElementPayload{
		Parent: address.Root,
		Name:   "invoice",
		Type:   "xs:string",
	}))
	if err != nil {
		t.Fatalf("build message: %v", err)
	}
	a.send(m)

	if got := a.next(); got.Type != protocol.CommandResult {
		t.Fatalf("issuer got %q before its result", got.Type)
	}
	if got := a.next(); got.Type != protocol.UpdateSchema {
		t.Fatalf("issuer got %q, want schema push", got.Type)
	}

	got := b.next()
	if got.Type != protocol.UpdateSchema {
		t.Fatalf("bystander got %q, want schema push", got.Type)
	}
	var snap document.Snapshot
	if err := got.Snapshot(&snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if len(snap.Children) != 1 || snap.Children[0].Name != "invoice" {
		t.Errorf("bystander snapshot children = %+v", snap.Children)
	}
}

func TestHostPushes(t *testing.T) {
	h := New(Config{Options: protocol.DiagramOptions{ShowTypes: true}})
	ed := dialStdio(t, h)
	ed.handshake()

	resp := h.Execute(command.New(command.AddSimpleType, command.AddSimpleTypePayload{
		TypeName: "ZipType",
		BaseType: "xs:string",
	}))
	if !resp.Success {
		t.Fatalf("Execute: %s", resp.Error)
	}
	if got := ed.next(); got.Type != protocol.UpdateSchema {
		t.Fatalf("after Execute got %q", got.Type)
	}

	h.SetDiagramOptions(protocol.DiagramOptions{Compact: true})
	got := ed.next()
	if got.Type != protocol.UpdateDiagramOptions {
		t.Fatalf("after SetDiagramOptions got %q", got.Type)
	}
	opts, err := got.DiagramOptions()
	if err != nil {
		t.Fatalf("decode options: %v", err)
	}
	if !opts.Compact || opts.ShowTypes {
		t.Errorf("pushed options = %+v", opts)
	}

	fresh := document.New()
	if _, err := fresh.Insert(address.Root, document.Node{Kind: address.KindElement, Name: "order"}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	h.ReplaceTree(fresh)
	got = ed.next()
	if got.Type != protocol.SchemaModified {
		t.Fatalf("after ReplaceTree got %q", got.Type)
	}
	var snap document.Snapshot
	if err := got.Snapshot(&snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if len(snap.Children) != 1 || snap.Children[0].Name != "order" {
		t.Errorf("reloaded snapshot children = %+v", snap.Children)
	}
}

func TestEnrichHookRunsOnEveryPush(t *testing.T) {
	h := New(Config{
		Enrich: func(s *document.Snapshot) {
			if s.TargetNamespace == "" {
				s.TargetNamespace = "enriched"
			}
		},
	})

	input := `{"command":"executeCommand","data":{"type":"addElement","payload":{"parent":"/schema","name":"person","type":"xs:string"}}}` + "\n"
	var out bytes.Buffer
	s := NewStdio(h)
	s.in, s.out = strings.NewReader(input), &out
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	msgs := decodeStream(t, out.Bytes())
	if len(msgs) != 4 {
		t.Fatalf("got %d messages, want 4", len(msgs))
	}
	for _, i := range []int{0, 3} {
		var snap document.Snapshot
		if err := msgs[i].Snapshot(&snap); err != nil {
			t.Fatalf("decode message %d: %v", i, err)
		}
		if snap.TargetNamespace != "enriched" {
			t.Errorf("message %d not enriched", i)
		}
	}
}
