package cliout

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type sample struct {
	Input     string `json:"input" yaml:"input"`
	Humanized string `json:"humanized" yaml:"humanized"`
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"default", FormatText, false},
		{"TEXT", FormatText, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPrinter_Text(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatText)

	err := p.Print(sample{Input: "https://example.com/", Humanized: "example.com"}, func(w io.Writer) {
		io.WriteString(w, "example.com\n")
	})
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != "example.com\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestPrinter_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)

	called := false
	err := p.Print(sample{Input: "https://example.com/", Humanized: "example.com"}, func(io.Writer) { called = true })
	if err != nil {
		t.Fatal(err)
	}
	if called {
		t.Error("text formatter called in JSON mode")
	}

	var got sample
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if got.Humanized != "example.com" {
		t.Errorf("humanized = %q", got.Humanized)
	}
}

func TestPrinter_YAML(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatYAML)

	if err := p.Print(sample{Input: "https://example.com/", Humanized: "example.com"}, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "humanized: example.com") {
		t.Errorf("unexpected yaml: %s", buf.String())
	}

	var got sample
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if got.Input != "https://example.com/" {
		t.Errorf("input = %q", got.Input)
	}
}

func TestPrinter_ColorOnlyWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatText)

	p.Label("Host", "example.com")
	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("unexpected ANSI codes for non-terminal writer: %q", buf.String())
	}
	if got := p.URL("example.com"); got != "example.com" {
		t.Errorf("URL() = %q", got)
	}

	buf.Reset()
	p.SetColor(true)
	p.Error("boom %d", 1)
	if !strings.HasPrefix(buf.String(), BrightRed) || !strings.Contains(buf.String(), "boom 1") {
		t.Errorf("expected colored error, got %q", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"example.com/a/b", 0, "example.com/a/b"},
		{"example.com/a/b", 15, "example.com/a/b"},
		{"example.com/a/b", 40, "example.com/a/b"},
		{"example.com/a/b", 10, "example.c…"},
		{"example.com", 1, "…"},
		{"bücher.example/ü", 8, "bücher.…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.input, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestHyperlink(t *testing.T) {
	got := Hyperlink("https://example.com/", "example.com")
	want := "\x1b]8;;https://example.com/\x1b\\example.com\x1b]8;;\x1b\\"
	if got != want {
		t.Errorf("Hyperlink() = %q, want %q", got, want)
	}
}

func TestLinkMode(t *testing.T) {
	var buf bytes.Buffer

	for _, tt := range []struct {
		input string
		want  LinkMode
		on    bool
	}{
		{"", LinkAuto, false},
		{"auto", LinkAuto, false},
		{"Always", LinkAlways, true},
		{"never", LinkNever, false},
	} {
		m, ok := ParseLinkMode(tt.input)
		if !ok || m != tt.want {
			t.Errorf("ParseLinkMode(%q) = (%q, %v), want %q", tt.input, m, ok, tt.want)
		}
		if got := m.Enabled(&buf); got != tt.on {
			t.Errorf("%q.Enabled(buffer) = %v, want %v", m, got, tt.on)
		}
	}

	if _, ok := ParseLinkMode("sometimes"); ok {
		t.Error("ParseLinkMode accepted an invalid mode")
	}
}

func TestTerminalWidth(t *testing.T) {
	var buf bytes.Buffer

	t.Setenv("COLUMNS", "132")
	if got := TerminalWidth(&buf); got != 132 {
		t.Errorf("TerminalWidth with COLUMNS=132 = %d", got)
	}

	t.Setenv("COLUMNS", "wide")
	if got := TerminalWidth(&buf); got != defaultTermWidth {
		t.Errorf("TerminalWidth fallback = %d, want %d", got, defaultTermWidth)
	}

	if IsTerminal(&buf) {
		t.Error("bytes.Buffer reported as terminal")
	}
}
