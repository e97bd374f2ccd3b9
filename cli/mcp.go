package cli

import (
	"github.com/spf13/cobra"

	"github.com/jongio/humanurl/mcptool"
	"github.com/jongio/humanurl/version"
)

func (a *app) newMCPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve humanurl tools over the Model Context Protocol (stdio)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcptool.NewServer(mcptool.Options{
				Name:      "humanurl",
				Version:   version.Version,
				RateLimit: a.cfg.MCP.RateLimit,
				Burst:     a.cfg.MCP.Burst,
			})
			return s.ServeStdio(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
