// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetupLogger(t *testing.T) {
	t.Setenv(EnvDebug, "")

	SetupLogger(true, false)
	if !IsDebugEnabled() {
		t.Error("expected debug to be enabled")
	}

	SetupLogger(false, false)
	if GetLevel() != LevelInfo {
		t.Errorf("expected LevelInfo, got %v", GetLevel())
	}
}

func TestSetupLogger_EnvVar(t *testing.T) {
	t.Setenv(EnvDebug, "true")
	defer SetupLogger(false, false)

	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)
	if !IsDebugEnabled() {
		t.Fatal("expected HUMANURL_DEBUG=true to enable debug")
	}

	Debug("env enabled debug")
	if !strings.Contains(buf.String(), "env enabled debug") {
		t.Errorf("expected debug output, got: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{" info ", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"ERROR", LevelError},
		{"unknown", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	for _, l := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		if got := ParseLevel(l.String()); got != l {
			t.Errorf("ParseLevel(%q) = %v, want %v", l.String(), got, l)
		}
	}
}

func TestLogOutputText(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, true, false)
	defer SetupLogger(false, false)

	Debug("parsed url", "host", "example.com")

	output := buf.String()
	if !strings.Contains(output, "parsed url") {
		t.Errorf("expected message in output, got: %s", output)
	}
	if !strings.Contains(output, "host=example.com") {
		t.Errorf("expected host=example.com in output, got: %s", output)
	}
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, true)
	defer SetupLogger(false, false)

	Info("humanized", "count", 42)

	output := buf.String()
	if !strings.Contains(output, `"msg":"humanized"`) {
		t.Errorf("expected JSON msg field, got: %s", output)
	}
	if !strings.Contains(output, `"count":42`) {
		t.Errorf("expected JSON count field, got: %s", output)
	}
}

func TestDebugWhenDisabled(t *testing.T) {
	t.Setenv(EnvDebug, "")

	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)
	defer SetupLogger(false, false)

	Debug("should not appear")
	if strings.Contains(buf.String(), "should not appear") {
		t.Errorf("debug message logged while disabled: %s", buf.String())
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)
	defer SetupLogger(false, false)

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}

	Warn("filtered warning")
	Error("kept error")
	output := buf.String()
	if strings.Contains(output, "filtered warning") {
		t.Errorf("warning logged at error level: %s", output)
	}
	if !strings.Contains(output, "kept error") {
		t.Errorf("expected error in output, got: %s", output)
	}
}

func TestSetOutput(t *testing.T) {
	var first, second bytes.Buffer
	SetupLoggerWithWriter(&first, true, false)
	defer SetupLogger(false, false)

	SetOutput(&second)
	Debug("after SetOutput")

	if first.Len() != 0 {
		t.Errorf("expected old writer untouched, got: %s", first.String())
	}
	if !strings.Contains(second.String(), "after SetOutput") {
		t.Errorf("expected message on new writer, got: %s", second.String())
	}
	if !IsDebugEnabled() {
		t.Error("SetOutput should keep the debug level")
	}
}

func TestLogger(t *testing.T) {
	if Logger() == nil {
		t.Error("Logger() returned nil")
	}
}
