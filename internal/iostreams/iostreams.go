// Package iostreams provides testable standard stream access for commands.
package iostreams

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IOStreams provides access to standard input/output/error streams.
// Commands write through these instead of the os globals so tests can
// capture output.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// TTY state cache: -1 unchecked, 0 false, 1 true.
	isOutputTTY int
	isStderrTTY int
}

// NewIOStreams creates an IOStreams connected to the process streams.
func NewIOStreams() *IOStreams {
	return &IOStreams{
		In:          os.Stdin,
		Out:         os.Stdout,
		ErrOut:      os.Stderr,
		isOutputTTY: -1,
		isStderrTTY: -1,
	}
}

// IsOutputTTY reports whether stdout is a terminal.
func (s *IOStreams) IsOutputTTY() bool {
	if s.isOutputTTY == -1 {
		s.isOutputTTY = detectTTY(s.Out)
	}
	return s.isOutputTTY == 1
}

// IsStderrTTY reports whether stderr is a terminal.
func (s *IOStreams) IsStderrTTY() bool {
	if s.isStderrTTY == -1 {
		s.isStderrTTY = detectTTY(s.ErrOut)
	}
	return s.isStderrTTY == 1
}

func detectTTY(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return 1
	}
	return 0
}
