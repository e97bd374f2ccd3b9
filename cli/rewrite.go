package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jongio/humanurl/permissive"
	"github.com/jongio/humanurl/urlutil"
)

type rewriteResult struct {
	Input     string `json:"input" yaml:"input"`
	Rewritten string `json:"rewritten" yaml:"rewritten"`
}

// componentFlags are the rewrite flags that set a component verbatim.
var componentFlags = []string{"scheme", "username", "password", "host", "port", "path", "query", "fragment"}

func (a *app) newRewriteCommand() *cobra.Command {
	var clearList []string
	cmd := &cobra.Command{
		Use:   "rewrite URL",
		Short: "Replace URL components without validation",
		Long: `Parse URL strictly, then replace components verbatim. Unlike a
standards-conformant parser, any value is accepted, including schemes that
are not registered or would change the URL's kind.`,
		Example: `  humanurl rewrite https://example.com --scheme jojo
  humanurl rewrite https://u:p@example.com:8443/a?q=1 --clear userinfo,port,query`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edits, err := editsFromFlags(cmd.Flags(), clearList)
			if err != nil {
				return err
			}

			u, err := permissive.Parse(urlutil.NormalizeScheme(args[0], a.cfg.AssumeScheme))
			if err != nil {
				return err
			}
			edits.Apply(u)
			log.Debug("rewrote url", "input", args[0], "output", u.String())

			out := rewriteResult{Input: args[0], Rewritten: u.String()}
			return a.printer(cmd).Print(out, func(w io.Writer) {
				fmt.Fprintln(w, out.Rewritten)
			})
		},
	}

	for _, name := range componentFlags {
		cmd.Flags().String(name, "", fmt.Sprintf("Set the %s verbatim (an empty value keeps an empty %s; use --clear to remove it)", name, name))
	}
	cmd.Flags().StringSliceVar(&clearList, "clear", nil, "Components to remove ("+permissive.ComponentNames()+")")
	cmd.Flags().String("assume-scheme", "", "Scheme to prepend when URL has none")
	return cmd
}

// editsFromFlags builds edits from the flags that were set explicitly, so an
// explicit empty value is kept as an empty component.
func editsFromFlags(flags *pflag.FlagSet, clearList []string) (permissive.Edits, error) {
	var e permissive.Edits
	set := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}

	e.Scheme = set("scheme")
	e.Username = set("username")
	e.Password = set("password")
	e.Host = set("host")
	e.Port = set("port")
	e.Path = set("path")
	e.Query = set("query")
	e.Fragment = set("fragment")

	for _, name := range clearList {
		c, ok := permissive.ParseComponent(name)
		if !ok {
			return e, fmt.Errorf("unknown component %q for --clear (valid: %s)", name, permissive.ComponentNames())
		}
		e.Clear = append(e.Clear, c)
	}
	return e, nil
}
