package logging

import (
	"context"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"DEBUG", log.DebugLevel},
		{"bogus", log.InfoLevel},
		{"", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := New(tt.level)
			if logger.GetLevel() != tt.want {
				t.Errorf("New(%q) level = %v, want %v", tt.level, logger.GetLevel(), tt.want)
			}
		})
	}
}

func TestDefaultIsStable(t *testing.T) {
	a := Default()
	b := Default()
	if a != b {
		t.Error("Default() returned different loggers")
	}
}

func TestFromContext(t *testing.T) {
	//nolint:staticcheck // exercising the nil-context fallback deliberately
	if FromContext(nil) == nil {
		t.Fatal("FromContext(nil) returned nil")
	}

	if FromContext(context.Background()) != Default() {
		t.Error("FromContext without logger should return Default()")
	}

	custom := New("debug")
	ctx := WithLogger(context.Background(), custom)
	if FromContext(ctx) != custom {
		t.Error("FromContext did not return the attached logger")
	}
}
