package host

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/nbroch/skema/internal/protocol"
)

// maxMessageBytes bounds one stdio line. Snapshots of large schemas
// travel the other way, but commands carrying documentation blocks can
// still run long.
const maxMessageBytes = 4 * 1024 * 1024

// Stdio serves a single editor over newline-delimited JSON, one
// envelope per line. The embedding extension spawns the host and owns
// both ends of the pipe.
type Stdio struct {
	host *Host
	in   io.Reader
	out  io.Writer
}

// NewStdio wires a stdio transport to h, reading os.Stdin and writing
// os.Stdout.
func NewStdio(h *Host) *Stdio {
	return &Stdio{host: h, in: os.Stdin, out: os.Stdout}
}

// Run attaches to the host, sends the connect handshake, and pumps
// messages until the input closes or ctx is cancelled. A closed input
// is a normal editor shutdown and returns nil.
func (s *Stdio) Run(ctx context.Context) error {
	c := newConn(func(data []byte) error {
		_, err := fmt.Fprintln(s.out, string(data))
		return err
	})
	s.host.attach(c)
	defer s.host.detach(c)

	if err := s.host.greet(c); err != nil {
		return fmt.Errorf("handshake: %w", err)
	}

	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 64*1024), maxMessageBytes)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := scanner.Text()
		if line == "" {
			continue
		}
		m, err := protocol.Decode([]byte(line))
		if err != nil {
			s.host.logDebug("editor %s: %v", c.id, err)
			s.host.sendError(c, err, "BAD_MESSAGE")
			continue
		}
		s.host.handle(c, m)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read editor input: %w", err)
	}
	return nil
}
