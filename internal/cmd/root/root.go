// Package root assembles the avm command tree.
package root

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	execmd "github.com/sevanssp/avm/internal/cmd/exe"
	"github.com/sevanssp/avm/internal/cmd/installdir"
	"github.com/sevanssp/avm/internal/cmd/list"
	versioncmd "github.com/sevanssp/avm/internal/cmd/version"
	"github.com/sevanssp/avm/internal/cmdutil"
	"github.com/sevanssp/avm/internal/config"
	"github.com/sevanssp/avm/internal/logger"
)

// NewCmdRoot creates the root command for the avm CLI.
func NewCmdRoot(f *cmdutil.Factory, version, buildDate string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "avm <command>",
		Short: "Look up applications registered in DNVGL Application Version Manager",
		Long: `Avm resolves executable paths and installation directories of DNV GL
applications from the Application Version Manager registry document
(ApplicationVersions.xml).

The document is located through --registry, the AVM_REGISTRY environment
variable, the settings file (~/.avm/settings.yaml), or the default location
under %APPDATA%, in that order.`,
		Example: `  # List registered applications
  avm list

  # Executable of the default SIMO version
  avm exe simo

  # Installation directory of a specific RIFLEX version
  avm install-dir riflex v1`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Annotations: map[string]string{
			"versionInfo": versioncmd.Format(version, buildDate),
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initializeLogger(f.Debug)

			logger.Debug().
				Str("version", f.Version).
				Bool("debug", f.Debug).
				Msg("avm starting")
		},
		Version: version,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&f.Debug, "debug", "D", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&f.RegistryPath, "registry", "", "Path to ApplicationVersions.xml")

	// Accept underscores in flag names for parity with the settings keys.
	cmd.PersistentFlags().SetNormalizeFunc(func(fs *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	cmd.SetVersionTemplate(versioncmd.Format(version, buildDate))

	// Surface bad flags as FlagError so Main exits with the usage code.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return cmdutil.FlagErrorWrap(err)
	})

	cmd.AddCommand(list.NewCmdList(f, nil))
	cmd.AddCommand(execmd.NewCmdExe(f, nil))
	cmd.AddCommand(installdir.NewCmdInstallDir(f, nil))
	cmd.AddCommand(versioncmd.NewCmdVersion(f, version, buildDate))

	return cmd
}

// initializeLogger sets up the logger with file logging if possible, falling
// back to console-only logging on any error.
func initializeLogger(debug bool) {
	loader, err := config.NewSettingsLoader()
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to create settings loader")
		return
	}

	settings, err := loader.Load()
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to load settings")
		return
	}

	logsDir, err := config.LogsDir()
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to get logs directory")
		return
	}

	logCfg := &logger.LoggingConfig{
		FileEnabled: settings.Logging.FileEnabled,
		MaxSizeMB:   settings.Logging.MaxSizeMB,
		MaxAgeDays:  settings.Logging.MaxAgeDays,
		MaxBackups:  settings.Logging.MaxBackups,
	}

	if err := logger.InitWithFile(debug, logsDir, logCfg); err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to initialize file writer")
	}
}
