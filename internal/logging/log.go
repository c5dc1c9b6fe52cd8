// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides structured logging and utilities for secure
// error presentation. Log output goes to stderr so it never interleaves
// with command output; sensitive values are masked before they reach
// either logs or the terminal.
package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	Level(zerolog.InfoLevel).
	With().Timestamp().Logger()

// Setup configures the global log level. Unknown levels fall back to info.
func Setup(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	logger = logger.Level(lvl)
}

// Logger returns the process-wide logger.
func Logger() *zerolog.Logger {
	return &logger
}
