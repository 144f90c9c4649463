package rules

import (
	"fmt"

	"github.com/yaklabco/spacelint/pkg/lint"
	"github.com/yaklabco/spacelint/pkg/source"
)

// SpaceAfterCommaRule forbids space before a comma and requires a single
// space after it (unless the comma ends its line).
type SpaceAfterCommaRule struct {
	lint.BaseRule
}

// NewSpaceAfterCommaRule creates a new space-after-comma rule.
func NewSpaceAfterCommaRule() *SpaceAfterCommaRule {
	return &SpaceAfterCommaRule{
		BaseRule: lint.NewBaseRule(
			"SP005",
			"space-after-comma",
			"Commas should be followed, and never preceded, by a space",
			[]string{"spacing", "punctuation"},
			true,
		),
	}
}

// Apply checks every comma token in the file.
func (r *SpaceAfterCommaRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Buffer == nil {
		return nil, nil
	}

	buf := ctx.Buffer
	var diags []lint.Diagnostic

	for i := range buf.Tokens {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		tok := &buf.Tokens[i]
		if tok.Kind != source.TokComma {
			continue
		}

		// No space before the comma. Only the right boundary is set: the
		// comma itself is the token whose preceding gap is inspected.
		diags = append(diags, lint.NoSpaceOffenses(ctx, r.ID(), lint.SurroundingCheck{
			Right:   tok,
			Message: "%{command} space before comma.",
		})...)

		// One space after the comma, unless the comma ends its line.
		diags = append(diags, lint.RequireSpaceOffenses(ctx, r.ID(), lint.SurroundingCheck{
			Left:    tok,
			Message: "%{command} space after comma.",
			StartOK: atLineEdge(buf, tok.EndOffset),
		})...)
	}

	return diags, nil
}
