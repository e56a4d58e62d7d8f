package cmdutil

import (
	"github.com/sevanssp/avm/internal/logger"
)

// RegistryPath returns the registry document path a command should load.
// Precedence: the --registry flag, then the AVM_REGISTRY environment
// variable or the settings file (viper resolves that ordering), then "" —
// which lets registry.Load fall back to the APPDATA default.
func RegistryPath(f *Factory) string {
	if f.RegistryPath != "" {
		return f.RegistryPath
	}
	s, err := f.Settings()
	if err != nil {
		logger.Warn().Err(err).Msg("ignoring unreadable settings")
		return ""
	}
	return s.Registry
}
