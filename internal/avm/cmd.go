// Package avm hosts the CLI entry point.
package avm

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/sevanssp/avm/internal/cmd/factory"
	"github.com/sevanssp/avm/internal/cmd/root"
	"github.com/sevanssp/avm/internal/cmdutil"
	"github.com/sevanssp/avm/internal/logger"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = ""
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
	// exitMiss is returned for soft misses: unregistered application or
	// version, no default flagged, or a resolved path that does not exist.
	exitMiss = 3
)

// Main runs the avm CLI and returns the process exit code.
func Main() int {
	defer logger.CloseFileWriter()

	f := factory.New(Version, Commit)
	rootCmd := root.NewCmdRoot(f, Version, BuildDate)

	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		return handleError(f, cmd, err)
	}
	return exitOK
}

// handleError renders err and maps it to an exit code. Commands print their
// own miss messages and return ExitError; everything else is rendered here.
func handleError(f *cmdutil.Factory, cmd *cobra.Command, err error) int {
	var exitErr *cmdutil.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if errors.Is(err, cmdutil.SilentError) {
		return exitError
	}

	cmdutil.PrintError(f.IOStreams, err)

	var flagErr *cmdutil.FlagError
	if errors.As(err, &flagErr) {
		cmdutil.PrintHelpHint(f.IOStreams, cmd.CommandPath())
		return exitUsage
	}
	return exitError
}
