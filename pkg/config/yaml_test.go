package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.SeverityDefault != string(SeverityWarning) {
		t.Errorf("SeverityDefault = %q", cfg.SeverityDefault)
	}
	if cfg.Rules == nil {
		t.Error("Rules map should be initialized")
	}
	if cfg.Fix || cfg.DryRun {
		t.Error("CLI options should default to false")
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
severity_default: error
extensions: [".c", ".go"]
ignore:
  - "vendor/**"
rules:
  SP003:
    enabled: true
    severity: info
    auto_fix: false
    options:
      style: space
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.SeverityDefault != "error" {
		t.Errorf("SeverityDefault = %q", cfg.SeverityDefault)
	}
	if len(cfg.Extensions) != 2 || cfg.Extensions[0] != ".c" {
		t.Errorf("Extensions = %v", cfg.Extensions)
	}
	if len(cfg.Ignore) != 1 || cfg.Ignore[0] != "vendor/**" {
		t.Errorf("Ignore = %v", cfg.Ignore)
	}

	rc, ok := cfg.Rules["SP003"]
	if !ok {
		t.Fatal("rule SP003 missing")
	}
	if rc.Enabled == nil || !*rc.Enabled {
		t.Error("Enabled not parsed")
	}
	if rc.Severity == nil || *rc.Severity != "info" {
		t.Error("Severity not parsed")
	}
	if rc.AutoFix == nil || *rc.AutoFix {
		t.Error("AutoFix not parsed")
	}
	if got, ok := rc.Options["style"].(string); !ok || got != "space" {
		t.Errorf("Options = %v", rc.Options)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("rules: [not a map")); err == nil {
		t.Error("expected parse error")
	}
}

func TestParseInvalidSeverity(t *testing.T) {
	if _, err := Parse([]byte("severity_default: fatal\n")); err == nil {
		t.Error("expected validation error for severity_default")
	}

	data := []byte("rules:\n  SP001:\n    severity: loud\n")
	if _, err := Parse(data); err == nil {
		t.Error("expected validation error for rule severity")
	}
}

func TestSeverityIsValid(t *testing.T) {
	for _, s := range []Severity{SeverityError, SeverityWarning, SeverityInfo} {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if Severity("fatal").IsValid() {
		t.Error("unknown severity should be invalid")
	}
}

func TestOutputFormatIsValid(t *testing.T) {
	if !FormatText.IsValid() || !FormatJSON.IsValid() {
		t.Error("built-in formats should be valid")
	}
	if OutputFormat("xml").IsValid() {
		t.Error("unknown format should be invalid")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("severity_default: info\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.SeverityDefault != "info" {
		t.Errorf("SeverityDefault = %q", cfg.SeverityDefault)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
