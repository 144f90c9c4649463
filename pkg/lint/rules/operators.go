package rules

import (
	"fmt"

	"github.com/yaklabco/spacelint/pkg/lint"
	"github.com/yaklabco/spacelint/pkg/source"
)

// defaultOperators is the set of operator spellings checked by SP004 when the
// "operators" option is not set. Plain '<' and '>' are treated as comparisons;
// drop them via the option for languages where they bracket type parameters.
var defaultOperators = []string{
	"=", "==", "!=", "<", ">", "<=", ">=", "&&", "||",
	"+", "-", "*", "/", "+=", "-=", "*=", "/=",
}

// SpaceAroundOperatorsRule requires a single space on both sides of binary
// operators. The "operators" option replaces the default operator set.
type SpaceAroundOperatorsRule struct {
	lint.BaseRule
}

// NewSpaceAroundOperatorsRule creates a new space-around-operators rule.
func NewSpaceAroundOperatorsRule() *SpaceAroundOperatorsRule {
	return &SpaceAroundOperatorsRule{
		BaseRule: lint.NewBaseRule(
			"SP004",
			"space-around-operators",
			"Binary operators should be surrounded by single spaces",
			[]string{"spacing", "operators"},
			true,
		),
	}
}

// Apply checks every operator token against the configured set.
func (r *SpaceAroundOperatorsRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Buffer == nil {
		return nil, nil
	}

	wanted := make(map[string]bool)
	for _, op := range ctx.OptionStringSlice("operators", defaultOperators) {
		wanted[op] = true
	}

	buf := ctx.Buffer
	var diags []lint.Diagnostic

	for i := range buf.Tokens {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		tok := &buf.Tokens[i]
		if tok.Kind != source.TokOperator || !wanted[string(tok.Text(buf.Content))] {
			continue
		}
		if !binaryPosition(buf, i) {
			continue
		}

		chk := lint.SurroundingCheck{
			Left:    tok,
			Right:   tok,
			Message: "%{command} space around operator.",
			// An operator ending a line, or starting a continuation line,
			// needs no space on that side.
			StartOK: atLineEdge(buf, tok.EndOffset),
			EndOK:   atLineEdge(buf, tok.StartOffset-1),
		}

		diags = append(diags, lint.RequireSpaceOffenses(ctx, r.ID(), chk)...)
	}

	return diags, nil
}

// binaryPosition reports whether the operator token at index i follows an
// operand on the same line. A '-' or '*' after an open delimiter, a comma,
// a keyword, or another operator is unary and carries no spacing requirement.
func binaryPosition(buf *source.Buffer, i int) bool {
	for j := i - 1; j >= 0; j-- {
		switch buf.Tokens[j].Kind {
		case source.TokWhitespace:
			continue
		case source.TokIdent, source.TokNumber, source.TokString,
			source.TokParenClose, source.TokBracketClose, source.TokBraceClose:
			return true
		default:
			return false
		}
	}
	return false
}

// atLineEdge reports whether the byte at offset is a line boundary: a newline
// character, or outside the buffer entirely (start or end of file).
func atLineEdge(buf *source.Buffer, offset int) bool {
	b, ok := buf.ByteAt(offset)
	if !ok {
		return true
	}
	return b == '\n' || b == '\r'
}
