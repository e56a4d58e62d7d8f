package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Settings are the user-level settings loaded from ~/.avm/settings.yaml.
// The file is optional; a missing file yields defaults.
type Settings struct {
	// Registry overrides the registry document path. Also settable through
	// the AVM_REGISTRY environment variable, which wins over the file.
	Registry string `mapstructure:"registry"`

	Logging LoggingSettings `mapstructure:"logging"`
}

// LoggingSettings configures the rotating log file.
type LoggingSettings struct {
	// FileEnabled toggles file logging. Nil means enabled.
	FileEnabled *bool `mapstructure:"file_enabled"`
	MaxSizeMB   int   `mapstructure:"max_size_mb"`
	MaxAgeDays  int   `mapstructure:"max_age_days"`
	MaxBackups  int   `mapstructure:"max_backups"`
}

// SettingsLoader reads the user settings file.
type SettingsLoader struct {
	path  string
	viper *viper.Viper
}

// NewSettingsLoader creates a loader pointed at the settings file inside the
// avm home directory.
func NewSettingsLoader() (*SettingsLoader, error) {
	home, err := AvmHome()
	if err != nil {
		return nil, err
	}
	return &SettingsLoader{
		path:  filepath.Join(home, SettingsFileName),
		viper: viper.New(),
	}, nil
}

// Path returns the settings file path.
func (l *SettingsLoader) Path() string {
	return l.path
}

// Load reads and parses the settings file. A missing file is not an error;
// defaults and environment overrides still apply.
func (l *SettingsLoader) Load() (*Settings, error) {
	v := l.viper
	v.SetConfigFile(l.path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("AVM")
	if err := v.BindEnv("registry"); err != nil {
		return nil, err
	}

	if _, err := os.Stat(l.path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading settings file %s: %w", l.path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("parsing settings file %s: %w", l.path, err)
	}
	return &s, nil
}
