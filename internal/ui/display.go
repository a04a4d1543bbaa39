package ui

import (
	"os"

	"github.com/charmbracelet/x/term"
)

// DefaultTermWidth is the wrap width used when stdout is not a terminal or
// width detection fails; it keeps rendered docs and trees readable when
// piped.
const DefaultTermWidth = 100

// DisplayContext captures the terminal properties rendering decisions hang
// off: whether stdout is a TTY, and how wide it is.
type DisplayContext struct {
	TermWidth int
	IsTTY     bool
}

// NewDisplayContext probes stdout and returns the detected context.
func NewDisplayContext() *DisplayContext {
	fd := os.Stdout.Fd()
	d := &DisplayContext{TermWidth: DefaultTermWidth, IsTTY: term.IsTerminal(fd)}
	if !d.IsTTY {
		return d
	}
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		d.TermWidth = w
	}
	return d
}

// NewDisplayContextWithWidth returns a TTY context pinned to a fixed width
// so tests render deterministically.
func NewDisplayContextWithWidth(width int) *DisplayContext {
	return &DisplayContext{TermWidth: width, IsTTY: true}
}
