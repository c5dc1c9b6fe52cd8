// Copyright (c) 2026 Wili
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "warn with whitespace", level: " WARN ", want: zerolog.WarnLevel},
		{name: "unknown falls back to info", level: "nonsense", want: zerolog.InfoLevel},
		{name: "empty falls back to info", level: "", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Setup(tt.level)
			if got := Logger().GetLevel(); got != tt.want {
				t.Errorf("Logger().GetLevel() = %v, want %v", got, tt.want)
			}
		})
	}
	Setup("info")
}

func TestLoggerEventChaining(t *testing.T) {
	// The accessor must hand out a logger whose event constructors are
	// directly chainable the way call sites use them.
	Logger().Debug().Str("key", "value").Msg("chained debug event")
	Logger().Warn().Msg("chained warn event")
}
