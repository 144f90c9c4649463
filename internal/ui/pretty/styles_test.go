package pretty

import (
	"bytes"
	"testing"
)

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	if !IsColorEnabled("always", &buf) {
		t.Error("always should enable color")
	}
	if IsColorEnabled("never", &buf) {
		t.Error("never should disable color")
	}
	if IsColorEnabled("auto", &buf) {
		t.Error("auto with a non-TTY writer should disable color")
	}
}

func TestIsColorEnabledNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	if IsColorEnabled("auto", &buf) {
		t.Error("NO_COLOR should disable color in auto mode")
	}
	if !IsColorEnabled("always", &buf) {
		t.Error("always overrides NO_COLOR")
	}
}

func TestNewStylesNoColorIsPlain(t *testing.T) {
	styles := NewStyles(false)
	if got := styles.Error.Render("boom"); got != "boom" {
		t.Errorf("no-color Error.Render = %q, want plain text", got)
	}
}

func TestTerminalWidthNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	if got := TerminalWidth(&buf); got != defaultTermWidth {
		t.Errorf("TerminalWidth(non-file) = %d, want %d", got, defaultTermWidth)
	}
}
