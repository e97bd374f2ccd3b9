package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/jongio/humanurl/permissive"
	"github.com/jongio/humanurl/urlutil"
)

func (a *app) newComponentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "components URL",
		Short: "Show the components of a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := permissive.Parse(urlutil.NormalizeScheme(args[0], a.cfg.AssumeScheme))
			if err != nil {
				return err
			}
			u := parsed.Redacted()

			p := a.printer(cmd)
			return p.Print(u, func(io.Writer) {
				p.Label("Scheme", deref(u.Scheme))
				p.Label("Username", deref(u.Username))
				p.Label("Password", deref(u.Password))
				p.Label("Host", u.Host)
				p.Label("Port", deref(u.Port))
				p.Label("Path", u.Path)
				p.Label("Query", deref(u.Query))
				p.Label("Fragment", deref(u.Fragment))
			})
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
