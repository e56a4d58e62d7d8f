package cmdutil

import (
	"github.com/sevanssp/avm/internal/config"
	"github.com/sevanssp/avm/internal/iostreams"
)

// Factory provides shared dependencies for CLI commands. The struct defines
// the contract; internal/cmd/factory wires the real implementations.
// Commands extract only the fields they need into per-command Options
// structs.
type Factory struct {
	// Configuration from persistent flags (set before command execution)
	RegistryPath string
	Debug        bool

	// Version info (set at build time via ldflags)
	Version string
	Commit  string

	// IO streams for input/output (for testability)
	IOStreams *iostreams.IOStreams

	// Settings loads the user settings once and caches the result.
	Settings func() (*config.Settings, error)
}
