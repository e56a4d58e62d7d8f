// Package version implements the "avm version" command.
package version

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sevanssp/avm/internal/cmdutil"
)

// NewCmdVersion creates the version command.
func NewCmdVersion(f *cmdutil.Factory, version, buildDate string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of avm",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(f.IOStreams.Out, cmd.Root().Annotations["versionInfo"])
		},
	}

	return cmd
}

// Format returns the version string for display.
func Format(version, buildDate string) string {
	version = strings.TrimPrefix(version, "v")

	var dateStr string
	if buildDate != "" {
		dateStr = fmt.Sprintf(" (%s)", buildDate)
	}

	return fmt.Sprintf("avm version %s%s\n", version, dateStr)
}
