// Package exe implements the "avm exe" command.
package exe

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sevanssp/avm/internal/cmdutil"
	"github.com/sevanssp/avm/internal/iostreams"
	"github.com/sevanssp/avm/internal/registry"
	"github.com/sevanssp/avm/internal/watch"
)

// Options holds options for the exe command.
type Options struct {
	IOStreams    *iostreams.IOStreams
	RegistryPath func() string

	App     string
	Version string
	Quote   bool
	Wait    time.Duration
}

// NewCmdExe creates the exe command.
func NewCmdExe(f *cmdutil.Factory, runF func(context.Context, *Options) error) *cobra.Command {
	opts := &Options{
		IOStreams:    f.IOStreams,
		RegistryPath: func() string { return cmdutil.RegistryPath(f) },
	}

	cmd := &cobra.Command{
		Use:   "exe <application> [version]",
		Short: "Print the executable path of a registered application",
		Long: `Prints the absolute path to the executable of an application registered
in DNVGL Application Version Manager.

Without a version argument, the version flagged as default is used. Lookups
are case-insensitive. The resolved path must exist on this machine;
otherwise nothing is printed and avm exits with status 3.`,
		Example: `  # Default version of SIMO
  avm exe simo

  # A specific RIFLEX version, quoted for shell use
  avm exe riflex v1 --quote

  # Wait up to a minute for the registry document to appear first
  avm exe simo --wait 1m`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.App = args[0]
			if len(args) > 1 {
				opts.Version = args[1]
			}
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return exeRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Quote, "quote", false, "Wrap the result in double quotes")
	cmd.Flags().DurationVar(&opts.Wait, "wait", 0, "Wait up to this long for the registry document to appear")

	return cmd
}

func exeRun(ctx context.Context, opts *Options) error {
	path := opts.RegistryPath()

	if opts.Wait > 0 {
		if path == "" {
			p, err := registry.DefaultPath()
			if err != nil {
				return err
			}
			path = p
		}
		if err := watch.WaitForFile(ctx, path, opts.Wait); err != nil {
			return err
		}
	}

	reg, err := registry.Load(path)
	if err != nil {
		return err
	}

	res := registry.NewResolver(registry.Options{Quote: opts.Quote})
	exePath, ok := res.Executable(reg, opts.App, opts.Version)
	if !ok {
		fmt.Fprintf(opts.IOStreams.ErrOut, "no executable found for %s\n", queryString(opts.App, opts.Version))
		return &cmdutil.ExitError{Code: 3}
	}

	fmt.Fprintln(opts.IOStreams.Out, exePath)
	return nil
}

func queryString(app, version string) string {
	if version == "" {
		return fmt.Sprintf("%s (default version)", app)
	}
	return fmt.Sprintf("%s %s", app, version)
}
