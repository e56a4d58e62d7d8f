// Package factory wires the real dependencies into a cmdutil.Factory.
package factory

import (
	"sync"

	"github.com/sevanssp/avm/internal/cmdutil"
	"github.com/sevanssp/avm/internal/config"
	"github.com/sevanssp/avm/internal/iostreams"
)

// New creates a fully-wired Factory. Called once at the CLI entry point.
// Tests should not import this package; construct &cmdutil.Factory{}
// directly instead.
func New(version, commit string) *cmdutil.Factory {
	f := &cmdutil.Factory{
		Version:   version,
		Commit:    commit,
		IOStreams: iostreams.NewIOStreams(),
	}

	// Settings are loaded at most once per process.
	var (
		settingsOnce sync.Once
		settings     *config.Settings
		settingsErr  error
	)
	f.Settings = func() (*config.Settings, error) {
		settingsOnce.Do(func() {
			var loader *config.SettingsLoader
			loader, settingsErr = config.NewSettingsLoader()
			if settingsErr == nil {
				settings, settingsErr = loader.Load()
			}
		})
		return settings, settingsErr
	}

	return f
}
