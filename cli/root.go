// Package cli builds the humanurl command tree.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jongio/humanurl/cliout"
	"github.com/jongio/humanurl/config"
	"github.com/jongio/humanurl/logutil"
	"github.com/jongio/humanurl/version"
)

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"output":        "output",
	"debug":         "debug",
	"hyperlinks":    "link",
	"assume_scheme": "assume-scheme",
	"max_width":     "max-width",
}

var log = logutil.NewLogger("cli")

type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
}

// NewRootCommand creates the humanurl root command with all subcommands.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "humanurl",
		Short: "Shorten URLs for display and rewrite URL components freely",
		Long: `humanurl renders URLs for narrow displays and edits URL components
without the validation a standards-conformant parser applies.

  humanurl humanize https://user:pw@example.com:443/docs?q=1   # example.com/docs
  humanurl rewrite https://example.com --scheme jojo            # jojo://example.com/`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./humanurl.yaml, then the user config dir)")
	root.PersistentFlags().StringP("output", "o", "text", "Output format (text, json, yaml)")
	root.PersistentFlags().Bool("debug", false, "Enable debug logging")

	root.AddCommand(
		a.newHumanizeCommand(),
		a.newRewriteCommand(),
		a.newComponentsCommand(),
		a.newMCPCommand(),
		version.NewCommand(version.New("humanurl"), a.format),
	)
	return root
}

// setup loads configuration and configures logging before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.v = config.NewViper(a.cfgFile)
	if err := config.BindFlags(a.v, cmd.Flags(), flagKeys); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logutil.SetupLoggerWithWriter(cmd.ErrOrStderr(), cfg.Debug, cfg.Log.Structured)
	log.Debug("configuration loaded", "config", a.v.ConfigFileUsed(), "output", cfg.Output)
	return nil
}

func (a *app) format() cliout.Format {
	if a.cfg == nil {
		return cliout.FormatText
	}
	return a.cfg.Format()
}

func (a *app) printer(cmd *cobra.Command) *cliout.Printer {
	return cliout.NewPrinter(cmd.OutOrStdout(), a.format())
}
