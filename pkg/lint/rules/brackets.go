package rules

import (
	"fmt"

	"github.com/yaklabco/spacelint/pkg/lint"
	"github.com/yaklabco/spacelint/pkg/source"
)

// SpaceInsideParensRule forbids spaces just inside parentheses.
type SpaceInsideParensRule struct {
	lint.BaseRule
}

// NewSpaceInsideParensRule creates a new space-inside-parens rule.
func NewSpaceInsideParensRule() *SpaceInsideParensRule {
	return &SpaceInsideParensRule{
		BaseRule: lint.NewBaseRule(
			"SP001",
			"space-inside-parens",
			"Parentheses should not contain space just inside the delimiters",
			[]string{"spacing", "brackets"},
			true,
		),
	}
}

// Apply checks every balanced paren pair in the file.
func (r *SpaceInsideParensRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	return noSpaceInsideGroups(ctx, r.ID(), '(', "%{command} space inside parentheses.")
}

// SpaceInsideBracketsRule forbids spaces just inside square brackets.
type SpaceInsideBracketsRule struct {
	lint.BaseRule
}

// NewSpaceInsideBracketsRule creates a new space-inside-brackets rule.
func NewSpaceInsideBracketsRule() *SpaceInsideBracketsRule {
	return &SpaceInsideBracketsRule{
		BaseRule: lint.NewBaseRule(
			"SP002",
			"space-inside-brackets",
			"Square brackets should not contain space just inside the delimiters",
			[]string{"spacing", "brackets"},
			true,
		),
	}
}

// Apply checks every balanced bracket pair in the file.
func (r *SpaceInsideBracketsRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	return noSpaceInsideGroups(ctx, r.ID(), '[', "%{command} space inside square brackets.")
}

// SpaceInsideBracesRule enforces spacing just inside curly braces.
// The "style" option selects "space" (default, one space required) or
// "no_space" (spaces forbidden).
type SpaceInsideBracesRule struct {
	lint.BaseRule
}

// NewSpaceInsideBracesRule creates a new space-inside-braces rule.
func NewSpaceInsideBracesRule() *SpaceInsideBracesRule {
	return &SpaceInsideBracesRule{
		BaseRule: lint.NewBaseRule(
			"SP003",
			"space-inside-braces",
			"Curly braces should contain a single space just inside the delimiters",
			[]string{"spacing", "brackets"},
			true,
		),
	}
}

// Apply checks every single-line, non-empty brace pair in the file.
func (r *SpaceInsideBracesRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Buffer == nil {
		return nil, nil
	}

	style := ctx.OptionString("style", "space")
	if style != "space" && style != "no_space" {
		return nil, fmt.Errorf("space-inside-braces: unknown style %q", style)
	}

	var diags []lint.Diagnostic

	for _, group := range source.FindGroups(ctx.Root, '{') {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		left, right, ok := groupDelimiters(ctx, group)
		if !ok {
			continue
		}

		// Pairs with no solid interior token ({} and { }) have nothing to
		// pad; multi-line bodies are laid out vertically and are not checked.
		_, _, hasContent := lint.FirstTokenWithin(group, func(tok source.Token) bool {
			return tok.StartOffset >= left.EndOffset && tok.EndOffset <= right.StartOffset
		})
		if !hasContent || !group.Span().IsSingleLine() {
			continue
		}

		chk := lint.SurroundingCheck{
			Node:    group,
			Left:    left,
			Right:   right,
			Message: "%{command} space inside curly braces.",
		}

		if style == "space" {
			diags = append(diags, lint.RequireSpaceOffenses(ctx, r.ID(), chk)...)
		} else {
			diags = append(diags, lint.NoSpaceOffenses(ctx, r.ID(), chk)...)
		}
	}

	return diags, nil
}

// noSpaceInsideGroups runs the no-space check over every balanced group
// opened by delim.
func noSpaceInsideGroups(
	ctx *lint.RuleContext,
	ruleID string,
	delim byte,
	message string,
) ([]lint.Diagnostic, error) {
	if ctx.Buffer == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic

	for _, group := range source.FindGroups(ctx.Root, delim) {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		left, right, ok := groupDelimiters(ctx, group)
		if !ok {
			continue
		}

		diags = append(diags, lint.NoSpaceOffenses(ctx, ruleID, lint.SurroundingCheck{
			Node:    group,
			Left:    left,
			Right:   right,
			Message: message,
		})...)
	}

	return diags, nil
}

// groupDelimiters resolves a group's opening and closing tokens through the
// pass's position index. Unterminated groups are skipped.
func groupDelimiters(ctx *lint.RuleContext, group *source.Node) (*source.Token, *source.Token, bool) {
	if group.Group == nil || group.Group.CloseToken < 0 {
		return nil, nil, false
	}

	buf := ctx.Buffer
	open := ctx.Positions().IndexOfFirstToken(group)
	last, ok := ctx.Positions().IndexOfLastToken(group)
	if !ok {
		return nil, nil, false
	}

	// The end-column walk lands on the token just past the close delimiter
	// when another token starts at the group's end boundary; step back in.
	end := group.SourceRange().End
	for last > open && buf.Tokens[last].StartOffset >= end {
		last--
	}

	return &buf.Tokens[open], &buf.Tokens[last], true
}
