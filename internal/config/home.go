// Package config resolves avm's own directories and user settings.
//
// This is configuration of the tool itself (log rotation, registry path
// override), not the application registry it queries; that lives in
// internal/registry.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AvmHomeEnv overrides the avm home directory.
	AvmHomeEnv = "AVM_HOME"
	// DefaultAvmDir is the default directory name under the user home.
	DefaultAvmDir = ".avm"
	// LogsSubdir holds rotated log files.
	LogsSubdir = "logs"
	// SettingsFileName is the user settings file inside the avm home.
	SettingsFileName = "settings.yaml"
)

// AvmHome returns the avm home directory. AVM_HOME wins when set, otherwise
// ~/.avm.
func AvmHome() (string, error) {
	if home := os.Getenv(AvmHomeEnv); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultAvmDir), nil
}

// LogsDir returns the log file directory (~/.avm/logs).
func LogsDir() (string, error) {
	home, err := AvmHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, LogsSubdir), nil
}
