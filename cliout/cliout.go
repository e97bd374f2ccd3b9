package cliout

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	// FormatText is the default human-readable format.
	FormatText Format = "text"
	// FormatJSON is indented JSON.
	FormatJSON Format = "json"
	// FormatYAML is YAML.
	FormatYAML Format = "yaml"
)

// ANSI codes used by the text formatters.
const (
	Reset      = "\033[0m"
	Bold       = "\033[1m"
	Dim        = "\033[2m"
	BrightRed  = "\033[91m"
	BrightBlue = "\033[94m"
)

// ParseFormat validates a format name. The empty string and "default" map
// to FormatText.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid output format: %s (valid options: text, json, yaml)", s)
	}
}

// Printer writes command results to w in a fixed format.
type Printer struct {
	w      io.Writer
	format Format
	color  bool
}

// NewPrinter creates a Printer. Color is enabled when w is a terminal.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{
		w:      w,
		format: format,
		color:  IsTerminal(w),
	}
}

// Format returns the printer's output format.
func (p *Printer) Format() Format {
	return p.format
}

// SetColor overrides terminal detection for ANSI styling.
func (p *Printer) SetColor(enabled bool) {
	p.color = enabled
}

// Print outputs data in the configured format. For FormatText the text
// function is called with the printer's writer.
func (p *Printer) Print(data any, text func(w io.Writer)) error {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to encode json output: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to encode yaml output: %w", err)
		}
		return enc.Close()
	default:
		text(p.w)
		return nil
	}
}

// Label prints a dimmed label and a value.
func (p *Printer) Label(label, value string) {
	fmt.Fprintf(p.w, "%s%-10s%s %s\n", p.style(Dim), label+":", p.style(Reset), value)
}

// Error prints an error line in red.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintf(p.w, "%s%s%s\n", p.style(BrightRed), fmt.Sprintf(format, args...), p.style(Reset))
}

// URL styles a URL in bright blue.
func (p *Printer) URL(s string) string {
	return p.style(BrightBlue) + s + p.style(Reset)
}

func (p *Printer) style(code string) string {
	if !p.color {
		return ""
	}
	return code
}
