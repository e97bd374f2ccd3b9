// Package cliout formats humanurl command output.
//
// A Printer writes either human-readable text or a machine-readable
// encoding (JSON, YAML) of the same data, so each command builds one result
// value and one text formatter.
//
//	p := cliout.NewPrinter(cmd.OutOrStdout(), cliout.FormatJSON)
//	err := p.Print(result, func(w io.Writer) {
//		fmt.Fprintln(w, result.Humanized)
//	})
//
// Terminal helpers (IsTerminal, TerminalWidth) use golang.org/x/term.
// Hyperlink wraps a label in an OSC 8 escape sequence so terminals that
// support it show the humanized text while linking to the full URL.
package cliout
