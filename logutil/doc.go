// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides the structured logger shared by humanurl packages.
// It wraps log/slog with a process-wide logger that the CLI configures once.
//
// # Basic Usage
//
//	// In the CLI's PersistentPreRun
//	logutil.SetupLogger(debug, structured)
//
//	logutil.Debug("parsed url", "host", u.Host)
//	logutil.Error("rewrite failed", "error", err)
//
// Library packages use component loggers, which resolve the global logger on
// every call and so follow later SetupLogger calls:
//
//	var log = logutil.NewLogger("humanize")
//	log.Debug("humanize rejected input", "input", raw)
//
// # Debug Mode
//
// Debug logging is enabled by SetupLogger(true, ...) or by setting
// HUMANURL_DEBUG=true in the environment.
//
// # Structured Logging
//
// With structured=true records are written as JSON:
//
//	{"time":"2026-01-15T10:30:00Z","level":"DEBUG","msg":"parsed url","host":"example.com"}
//
// Otherwise the slog text format is used:
//
//	time=2026-01-15T10:30:00Z level=DEBUG msg="parsed url" host=example.com
package logutil
