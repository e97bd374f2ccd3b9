package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jongio/humanurl/cliout"
	"github.com/jongio/humanurl/humanize"
	"github.com/jongio/humanurl/urlutil"
)

// humanizeResult is one line of humanize output.
type humanizeResult struct {
	Input     string `json:"input" yaml:"input"`
	Humanized string `json:"humanized,omitempty" yaml:"humanized,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// errSomeFailed is returned when at least one input could not be parsed;
// the individual errors have already been printed.
var errSomeFailed = errors.New("one or more URLs could not be humanized")

func (a *app) newHumanizeCommand() *cobra.Command {
	var fit bool
	cmd := &cobra.Command{
		Use:   "humanize [URL...]",
		Short: "Print the display form of URLs",
		Long: `Print each URL without scheme, credentials, query, fragment, default
port or root path. With no arguments, URLs are read from stdin, one per line.`,
		Example: `  humanurl humanize https://example.com:8443/a/b
  cat urls.txt | humanurl humanize --assume-scheme https -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				var err error
				if inputs, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			width := a.cfg.MaxWidth
			if fit {
				width = cliout.TerminalWidth(cmd.OutOrStdout())
			}
			return a.runHumanize(cmd, inputs, width)
		},
	}

	cmd.Flags().String("assume-scheme", "", "Scheme to prepend to inputs without one (e.g. https)")
	cmd.Flags().Int("max-width", 0, "Truncate output to this many characters (0 disables)")
	cmd.Flags().BoolVar(&fit, "fit", false, "Truncate output to the terminal width")
	cmd.Flags().String("link", "auto", "Wrap output in terminal hyperlinks (auto, always, never)")
	return cmd
}

func (a *app) runHumanize(cmd *cobra.Command, inputs []string, width int) error {
	p := a.printer(cmd)
	errs := cliout.NewPrinter(cmd.ErrOrStderr(), cliout.FormatText)
	links := a.cfg.LinkMode().Enabled(cmd.OutOrStdout())

	results := make([]humanizeResult, 0, len(inputs))
	failed := false
	for _, raw := range inputs {
		target := urlutil.NormalizeScheme(raw, a.cfg.AssumeScheme)
		out, err := humanize.Humanize(target)
		if err != nil {
			log.Debug("humanize failed", "input", raw, "error", err)
			results = append(results, humanizeResult{Input: raw, Error: err.Error()})
			failed = true
			continue
		}
		results = append(results, humanizeResult{Input: raw, Humanized: out})
	}

	err := p.Print(results, func(w io.Writer) {
		for _, r := range results {
			if r.Error != "" {
				errs.Error("%s", r.Error)
				continue
			}
			label := p.URL(cliout.Truncate(r.Humanized, width))
			if links {
				label = cliout.Hyperlink(urlutil.NormalizeScheme(r.Input, a.cfg.AssumeScheme), label)
			}
			fmt.Fprintln(w, label)
		}
	})
	if err != nil {
		return err
	}
	if failed {
		return errSomeFailed
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read urls from stdin: %w", err)
	}
	return lines, nil
}
