/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package logging configures the process-wide structured logger.
package logging

import (
	"log/slog"
	"os"
)

// SetDefaultStructuredLogger installs a slog handler on stderr as the
// process default. Debug enables debug-level records, which is how
// per-line rejection details become visible. jsonFormat switches from
// the human-oriented text handler to JSON records.
func SetDefaultStructuredLogger(name, version string, debug, jsonFormat bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if jsonFormat {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler).With(
		slog.String("name", name),
		slog.String("version", version),
	))
}
