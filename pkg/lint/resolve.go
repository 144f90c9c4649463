package lint

import "github.com/yaklabco/spacelint/pkg/config"

// ResolvedRule pairs a rule with its effective configuration for one run.
type ResolvedRule struct {
	Rule     Rule
	Config   *config.RuleConfig
	Severity config.Severity
	AutoFix  bool
}

// ResolveRules determines which rules run and with what severity, merging
// each rule's defaults with any per-rule configuration.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule

	for _, rule := range registry.All() {
		var ruleCfg *config.RuleConfig
		if cfg != nil && cfg.Rules != nil {
			if rc, ok := cfg.Rules[rule.ID()]; ok {
				ruleCfg = &rc
			}
		}

		if !ruleEnabled(rule, ruleCfg) {
			continue
		}

		resolved = append(resolved, ResolvedRule{
			Rule:     rule,
			Config:   ruleCfg,
			Severity: resolveSeverity(rule, ruleCfg, cfg),
			AutoFix:  resolveAutoFix(rule, ruleCfg),
		})
	}

	return resolved
}

func ruleEnabled(rule Rule, ruleCfg *config.RuleConfig) bool {
	if ruleCfg != nil && ruleCfg.Enabled != nil {
		return *ruleCfg.Enabled
	}
	return rule.DefaultEnabled()
}

func resolveSeverity(rule Rule, ruleCfg *config.RuleConfig, cfg *config.Config) config.Severity {
	if ruleCfg != nil && ruleCfg.Severity != nil {
		if s := config.Severity(*ruleCfg.Severity); s.IsValid() {
			return s
		}
	}
	if cfg != nil && cfg.SeverityDefault != "" {
		if s := config.Severity(cfg.SeverityDefault); s.IsValid() {
			return s
		}
	}
	return rule.DefaultSeverity()
}

func resolveAutoFix(rule Rule, ruleCfg *config.RuleConfig) bool {
	if !rule.CanFix() {
		return false
	}
	if ruleCfg != nil && ruleCfg.AutoFix != nil {
		return *ruleCfg.AutoFix
	}
	return true
}
