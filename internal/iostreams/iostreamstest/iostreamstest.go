// Package iostreamstest provides test doubles for the iostreams package.
package iostreamstest

import (
	"bytes"

	"github.com/sevanssp/avm/internal/iostreams"
)

// TestIOStreams wraps IOStreams with accessible output buffers.
type TestIOStreams struct {
	*iostreams.IOStreams
	InBuf  *bytes.Buffer
	OutBuf *bytes.Buffer
	ErrBuf *bytes.Buffer
}

// New creates IOStreams for testing. The zero TTY cache values mean both
// output streams report non-TTY.
func New() *TestIOStreams {
	in := &bytes.Buffer{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	return &TestIOStreams{
		IOStreams: &iostreams.IOStreams{
			In:     in,
			Out:    out,
			ErrOut: errOut,
		},
		InBuf:  in,
		OutBuf: out,
		ErrBuf: errOut,
	}
}
