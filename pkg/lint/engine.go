package lint

import (
	"context"
	"fmt"
	"sort"

	"github.com/yaklabco/spacelint/pkg/config"
	"github.com/yaklabco/spacelint/pkg/fix"
	"github.com/yaklabco/spacelint/pkg/source"
)

// FileResult contains the results of linting a single file.
type FileResult struct {
	// Buffer is the scanned file.
	Buffer *source.Buffer

	// Diagnostics contains all issues found.
	Diagnostics []Diagnostic

	// Edits contains validated, sorted edits for auto-fix.
	// Empty if no fixes are available or fixing was not requested.
	Edits []fix.TextEdit

	// SkippedEdits contains edits that were skipped due to conflicts.
	// When edits overlap, earlier edits (by start position) take precedence.
	SkippedEdits []fix.TextEdit

	// RuleErrors contains any errors from rule execution, keyed by rule ID.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// HasFixes returns true if any fixes are available.
func (fr *FileResult) HasFixes() bool {
	return len(fr.Edits) > 0
}

// FixableCount returns the number of diagnostics with fixes.
func (fr *FileResult) FixableCount() int {
	count := 0
	for _, d := range fr.Diagnostics {
		if d.HasFix() {
			count++
		}
	}
	return count
}

// Engine coordinates rule execution for one file at a time.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine backed by the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// LintBuffer runs all enabled rules against an already-scanned buffer.
// Each rule invocation gets its own RuleContext; the buffer and its token
// stream are treated as immutable for the duration of the pass.
func (e *Engine) LintBuffer(
	ctx context.Context,
	buf *source.Buffer,
	cfg *config.Config,
) (*FileResult, error) {
	resolved := ResolveRules(e.Registry, cfg)

	result := &FileResult{
		Buffer:     buf,
		RuleErrors: make(map[string]error),
	}

	var allEdits []fix.TextEdit

	for _, rr := range resolved {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, buf, cfg, rr.Config)
		ruleCtx.Registry = e.Registry

		diags, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
			continue
		}

		for i := range diags {
			diags[i].Severity = rr.Severity

			if diags[i].FilePath == "" {
				diags[i].FilePath = buf.Path
			}
			if diags[i].RuleName == "" {
				diags[i].RuleName = rr.Rule.Name()
			}

			if rr.AutoFix && len(diags[i].FixEdits) > 0 {
				allEdits = append(allEdits, diags[i].FixEdits...)
			}
		}

		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	sortDiagnostics(result.Diagnostics)

	if cfg != nil && cfg.Fix && len(allEdits) > 0 {
		accepted, skipped, _, err := fix.PrepareEditsFiltered(allEdits, len(buf.Content))
		if err != nil {
			return result, fmt.Errorf("prepare edits: %w", err)
		}
		result.Edits = accepted
		result.SkippedEdits = skipped
	}

	return result, nil
}

// sortDiagnostics orders diagnostics by position, then rule ID, for
// deterministic output regardless of rule execution order.
func sortDiagnostics(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i], diags[j]
		if a.StartLine != b.StartLine {
			return a.StartLine < b.StartLine
		}
		if a.StartColumn != b.StartColumn {
			return a.StartColumn < b.StartColumn
		}
		return a.RuleID < b.RuleID
	})
}
