package cliout

import (
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

const defaultTermWidth = 80

// Ellipsis marks truncated output.
const Ellipsis = "…"

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the column count for w. COLUMNS takes precedence,
// then the size reported by the terminal, then 80.
func TerminalWidth(w io.Writer) int {
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}

// Truncate shortens s to at most width runes, ending with an ellipsis.
// A width below 1 disables truncation.
func Truncate(s string, width int) string {
	if width < 1 || utf8.RuneCountInString(s) <= width {
		return s
	}
	if width == 1 {
		return Ellipsis
	}

	var b strings.Builder
	n := 0
	for _, r := range s {
		if n == width-1 {
			break
		}
		b.WriteRune(r)
		n++
	}
	b.WriteString(Ellipsis)
	return b.String()
}

// Hyperlink wraps label in an OSC 8 hyperlink pointing at target.
func Hyperlink(target, label string) string {
	return "\x1b]8;;" + target + "\x1b\\" + label + "\x1b]8;;\x1b\\"
}

// LinkMode controls when Hyperlink escapes are emitted.
type LinkMode string

const (
	LinkAuto   LinkMode = "auto"
	LinkAlways LinkMode = "always"
	LinkNever  LinkMode = "never"
)

// ParseLinkMode validates a hyperlink mode; the empty string means auto.
func ParseLinkMode(s string) (LinkMode, bool) {
	switch LinkMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", LinkAuto:
		return LinkAuto, true
	case LinkAlways:
		return LinkAlways, true
	case LinkNever:
		return LinkNever, true
	default:
		return "", false
	}
}

// Enabled reports whether links should be written to w.
func (m LinkMode) Enabled(w io.Writer) bool {
	switch m {
	case LinkAlways:
		return true
	case LinkNever:
		return false
	default:
		return IsTerminal(w)
	}
}
