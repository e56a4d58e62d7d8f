package cmdutil

import (
	"fmt"

	"github.com/sevanssp/avm/internal/iostreams"
)

// PrintHelpHint prints a contextual help hint to stderr. cmdPath should be
// cmd.CommandPath(), e.g. "avm exe".
func PrintHelpHint(ios *iostreams.IOStreams, cmdPath string) {
	fmt.Fprintf(ios.ErrOut, "\nRun '%s --help' for more information.\n", cmdPath)
}

// PrintError prints an error to stderr in the standard form.
func PrintError(ios *iostreams.IOStreams, err error) {
	fmt.Fprintf(ios.ErrOut, "Error: %s\n", err)
}
