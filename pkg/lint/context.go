package lint

import (
	"context"

	"github.com/yaklabco/spacelint/pkg/config"
	"github.com/yaklabco/spacelint/pkg/fix"
	"github.com/yaklabco/spacelint/pkg/source"
)

// RuleContext provides all context needed by a rule to perform linting.
//
// Design note: RuleContext stores context.Context as a field (Ctx) rather
// than passing it as a method parameter. This is acceptable because
// RuleContext is a short-lived parameter object created per-rule-invocation,
// not a long-lived struct. This design keeps the Rule interface to a single
// Apply method while still providing cancellation via the Cancelled() helper.
type RuleContext struct {
	// Ctx is the context for cancellation and timeouts.
	Ctx context.Context

	// Buffer is the scanned source buffer for this pass.
	Buffer *source.Buffer

	// Root is the root node (convenience alias for Buffer.Root).
	Root *source.Node

	// Config is the resolved configuration.
	Config *config.Config

	// RuleConfig is the rule-specific configuration (may be nil).
	RuleConfig *config.RuleConfig

	// Builder accumulates text edits for auto-fix.
	Builder *fix.EditBuilder

	// Registry provides access to the rule registry for name lookups.
	Registry *Registry

	// posIndex is the cached position index, lazily initialized.
	// It lives exactly as long as this context: one file, one pass.
	posIndex *PositionIndex
}

// NewRuleContext creates a RuleContext for the given buffer and configuration.
func NewRuleContext(
	ctx context.Context,
	buf *source.Buffer,
	cfg *config.Config,
	ruleCfg *config.RuleConfig,
) *RuleContext {
	var root *source.Node
	if buf != nil {
		root = buf.Root
	}

	return &RuleContext{
		Ctx:        ctx,
		Buffer:     buf,
		Root:       root,
		Config:     cfg,
		RuleConfig: ruleCfg,
		Builder:    fix.NewEditBuilder(),
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// Positions returns the position index for this pass, building it on first
// use. The index is never shared across files or passes.
func (rc *RuleContext) Positions() *PositionIndex {
	if rc.posIndex == nil {
		rc.posIndex = NewPositionIndex(rc.Buffer)
	}
	return rc.posIndex
}

// Option returns a rule-specific option value, or the default if not set.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.RuleConfig == nil || rc.RuleConfig.Options == nil {
		return defaultValue
	}
	if v, ok := rc.RuleConfig.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns a rule-specific integer option, or the default.
func (rc *RuleContext) OptionInt(key string, defaultValue int) int {
	v := rc.Option(key, defaultValue)
	switch val := v.(type) {
	case int:
		return val
	case float64:
		return int(val)
	default:
		return defaultValue
	}
}

// OptionString returns a rule-specific string option, or the default.
func (rc *RuleContext) OptionString(key string, defaultValue string) string {
	v := rc.Option(key, defaultValue)
	if s, ok := v.(string); ok {
		return s
	}
	return defaultValue
}

// OptionBool returns a rule-specific boolean option, or the default.
func (rc *RuleContext) OptionBool(key string, defaultValue bool) bool {
	v := rc.Option(key, defaultValue)
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultValue
}

// OptionStringSlice returns a rule-specific string slice option, or the default.
func (rc *RuleContext) OptionStringSlice(key string, defaultValue []string) []string {
	v := rc.Option(key, defaultValue)
	if slice, ok := v.([]string); ok {
		return slice
	}
	// Handle []interface{} from YAML parsing.
	if iface, ok := v.([]interface{}); ok {
		result := make([]string, 0, len(iface))
		for _, item := range iface {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
