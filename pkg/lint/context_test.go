package lint

import (
	"context"
	"testing"

	"github.com/yaklabco/spacelint/pkg/config"
	"github.com/yaklabco/spacelint/pkg/scanner"
)

func TestRuleContextCancelled(t *testing.T) {
	buf := scanner.Parse("t.c", []byte("x"))

	ctx, cancel := context.WithCancel(context.Background())
	rc := NewRuleContext(ctx, buf, nil, nil)

	if rc.Cancelled() {
		t.Error("fresh context should not be cancelled")
	}
	cancel()
	if !rc.Cancelled() {
		t.Error("cancelled context not detected")
	}
}

func TestRuleContextPositionsCached(t *testing.T) {
	buf := scanner.Parse("t.c", []byte("f(a)"))
	rc := NewRuleContext(context.Background(), buf, nil, nil)

	if rc.Positions() != rc.Positions() {
		t.Error("position index should be built once per context")
	}
}

func TestRuleContextOptions(t *testing.T) {
	ruleCfg := &config.RuleConfig{
		Options: map[string]any{
			"style":     "space",
			"max":       3,
			"enabled":   true,
			"operators": []any{"=", "=="},
			"floaty":    float64(7),
		},
	}
	rc := NewRuleContext(context.Background(), nil, nil, ruleCfg)

	if got := rc.OptionString("style", "no_space"); got != "space" {
		t.Errorf("OptionString = %q", got)
	}
	if got := rc.OptionString("missing", "dflt"); got != "dflt" {
		t.Errorf("missing key = %q", got)
	}
	if got := rc.OptionInt("max", 1); got != 3 {
		t.Errorf("OptionInt = %d", got)
	}
	if got := rc.OptionInt("floaty", 1); got != 7 {
		t.Errorf("float option = %d, YAML numbers may decode as float64", got)
	}
	if got := rc.OptionBool("enabled", false); !got {
		t.Error("OptionBool = false")
	}
	if got := rc.OptionStringSlice("operators", nil); len(got) != 2 || got[0] != "=" {
		t.Errorf("OptionStringSlice = %v", got)
	}
	if got := rc.OptionStringSlice("missing", []string{"d"}); len(got) != 1 || got[0] != "d" {
		t.Errorf("missing slice = %v", got)
	}
}

func TestRuleContextOptionsNilConfig(t *testing.T) {
	rc := NewRuleContext(context.Background(), nil, nil, nil)

	if got := rc.OptionString("style", "dflt"); got != "dflt" {
		t.Errorf("nil rule config should yield defaults, got %q", got)
	}
	if got := rc.Option("anything", 42); got != 42 {
		t.Errorf("Option = %v", got)
	}
}
