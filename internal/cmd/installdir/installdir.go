// Package installdir implements the "avm install-dir" command.
package installdir

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevanssp/avm/internal/cmdutil"
	"github.com/sevanssp/avm/internal/iostreams"
	"github.com/sevanssp/avm/internal/registry"
)

// Options holds options for the install-dir command.
type Options struct {
	IOStreams    *iostreams.IOStreams
	RegistryPath func() string

	App     string
	Version string
	Quote   bool
}

// NewCmdInstallDir creates the install-dir command.
func NewCmdInstallDir(f *cmdutil.Factory, runF func(*Options) error) *cobra.Command {
	opts := &Options{
		IOStreams:    f.IOStreams,
		RegistryPath: func() string { return cmdutil.RegistryPath(f) },
	}

	cmd := &cobra.Command{
		Use:   "install-dir <application> [version]",
		Short: "Print the installation directory of a registered application",
		Long: `Prints the installation directory of an application registered in DNVGL
Application Version Manager.

Without a version argument, the version flagged as default is used. The
directory must exist on this machine; otherwise nothing is printed and avm
exits with status 3.`,
		Example: `  # Default version of SIMO
  avm install-dir simo

  # A specific version
  avm install-dir wadam v9.5`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.App = args[0]
			if len(args) > 1 {
				opts.Version = args[1]
			}
			if runF != nil {
				return runF(opts)
			}
			return installDirRun(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Quote, "quote", false, "Wrap the result in double quotes")

	return cmd
}

func installDirRun(opts *Options) error {
	reg, err := registry.Load(opts.RegistryPath())
	if err != nil {
		return err
	}

	res := registry.NewResolver(registry.Options{Quote: opts.Quote})
	dir, ok := res.InstallDir(reg, opts.App, opts.Version)
	if !ok {
		if opts.Version == "" {
			fmt.Fprintf(opts.IOStreams.ErrOut, "no installation directory found for %s (default version)\n", opts.App)
		} else {
			fmt.Fprintf(opts.IOStreams.ErrOut, "no installation directory found for %s %s\n", opts.App, opts.Version)
		}
		return &cmdutil.ExitError{Code: 3}
	}

	fmt.Fprintln(opts.IOStreams.Out, dir)
	return nil
}
