package version

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jongio/humanurl/cliout"
)

// NewCommand creates the version command. format is resolved when the
// command runs, so it can depend on flags parsed by the root command.
func NewCommand(info *Info, format func() cliout.Format) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Display %s version information", info.Name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cliout.FormatText
			if format != nil {
				f = format()
			}
			p := cliout.NewPrinter(cmd.OutOrStdout(), f)

			return p.Print(info, func(w io.Writer) {
				if quiet {
					fmt.Fprintln(w, info.Version)
					return
				}
				p.Label("Version", info.Version)
				p.Label("Built", info.BuildDate)
				p.Label("Commit", info.GitCommit)
			})
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print version number")
	return cmd
}
