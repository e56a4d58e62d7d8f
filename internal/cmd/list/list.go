// Package list implements the "avm list" command.
package list

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sevanssp/avm/internal/cmdutil"
	"github.com/sevanssp/avm/internal/iostreams"
	"github.com/sevanssp/avm/internal/registry"
)

// ListOptions holds options for the list command.
type ListOptions struct {
	IOStreams    *iostreams.IOStreams
	RegistryPath func() string

	Format *cmdutil.FormatFlags
}

// versionRow is the display/serialization type for format dispatch.
type versionRow struct {
	Application string `json:"application"`
	Version     string `json:"version"`
	Default     bool   `json:"default"`
	Platform    string `json:"platform"`
	ProductType string `json:"product_type"`
	Category    string `json:"category"`
	ExePath     string `json:"exe_path"`
	InstallDir  string `json:"install_dir"`
}

// NewCmdList creates the list command.
func NewCmdList(f *cmdutil.Factory, runF func(*ListOptions) error) *cobra.Command {
	opts := &ListOptions{
		IOStreams:    f.IOStreams,
		RegistryPath: func() string { return cmdutil.RegistryPath(f) },
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List registered applications and versions",
		Long: `Lists all applications and versions registered in DNVGL Application
Version Manager, in the order they appear in the registry document.`,
		Example: `  # List everything
  avm list

  # Application names only
  avm list -q

  # Output as JSON
  avm list --json

  # Custom Go template
  avm list --format '{{.Application}} {{.Version}}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Format.Parse(); err != nil {
				return err
			}
			if runF != nil {
				return runF(opts)
			}
			return listRun(opts)
		},
	}

	opts.Format = cmdutil.AddFormatFlags(cmd)

	return cmd
}

func listRun(opts *ListOptions) error {
	ios := opts.IOStreams

	reg, err := registry.Load(opts.RegistryPath())
	if err != nil {
		return err
	}

	if reg.Len() == 0 {
		fmt.Fprintln(ios.ErrOut, "No applications registered in Application Version Manager.")
		return nil
	}

	rows := buildRows(reg)

	switch {
	case opts.Format.Quiet:
		for _, name := range reg.Names() {
			fmt.Fprintln(ios.Out, name)
		}
		return nil

	case opts.Format.IsJSON():
		return cmdutil.WriteJSON(ios.Out, rows)

	case opts.Format.IsTemplate():
		return cmdutil.ExecuteTemplate(ios.Out, opts.Format.Format, cmdutil.ToAny(rows))

	default:
		tw := tabwriter.NewWriter(ios.Out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "APPLICATION\tVERSION\tDEFAULT\tPLATFORM\tTYPE\tCATEGORY")
		for _, r := range rows {
			def := ""
			if r.Default {
				def = "*"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				r.Application, r.Version, def, r.Platform, r.ProductType, r.Category)
		}
		return tw.Flush()
	}
}

func buildRows(reg *registry.Registry) []versionRow {
	var rows []versionRow
	for _, name := range reg.Names() {
		table, _ := reg.App(name)
		for _, num := range table.Numbers() {
			v, _ := table.Version(num)
			rows = append(rows, versionRow{
				Application: name,
				Version:     v.Number,
				Default:     v.Default,
				Platform:    v.Platform,
				ProductType: v.ProductType,
				Category:    v.Category,
				ExePath:     v.ExePath,
				InstallDir:  v.InstallDir,
			})
		}
	}
	return rows
}
