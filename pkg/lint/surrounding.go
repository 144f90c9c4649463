package lint

import (
	"strings"

	"github.com/yaklabco/spacelint/pkg/fix"
	"github.com/yaklabco/spacelint/pkg/source"
)

// Message commands substituted for the %{command} placeholder.
const (
	CmdDoNotUse = "Do not use"
	CmdUse      = "Use"
)

// RenderMessage substitutes the %{command} placeholder in a rule's message
// template.
func RenderMessage(template, command string) string {
	return strings.ReplaceAll(template, "%{command}", command)
}

// SurroundingCheck describes one delimiter pair to examine for spacing.
//
// Left and Right are the tokens bounding the construct; Right may be nil in
// require-space mode when the right boundary is implicit or optional.
// Message is a template with a %{command} placeholder. StartOK and EndOK
// mark a side as already acceptable, suppressing its check.
type SurroundingCheck struct {
	Node    *source.Node
	Left    *source.Token
	Right   *source.Token
	Message string
	StartOK bool
	EndOK   bool
}

// NoSpaceOffenses reports violations of a "no space" rule: whitespace
// following Left, or preceding Right, is an offense. The two sides are
// independent; both are checked even if only one fails. Each diagnostic is
// pinned to the exact whitespace range and carries the deletion that fixes
// it.
func NoSpaceOffenses(ctx *RuleContext, ruleID string, chk SurroundingCheck) []Diagnostic {
	buf := ctx.Buffer
	var diags []Diagnostic

	if !chk.StartOK && chk.Left != nil && SpaceAfter(buf, *chk.Left) {
		r := SideSpaceRange(buf, chk.Left.Range(), SideRight)
		diags = append(diags, spaceDiagnostic(ctx, ruleID, chk.Message, CmdDoNotUse, r, deleteEdit(r)))
	}

	if !chk.EndOK && chk.Right != nil && SpaceBefore(buf, *chk.Right) {
		r := SideSpaceRange(buf, chk.Right.Range(), SideLeft)
		diags = append(diags, spaceDiagnostic(ctx, ruleID, chk.Message, CmdDoNotUse, r, deleteEdit(r)))
	}

	return diags
}

// RequireSpaceOffenses reports violations of a "require space" rule: missing
// whitespace after Left, or before Right, is an offense reported at the
// zero-width boundary range.
//
// The right-side check passes through in two cases: when Right is nil (the
// construct's right boundary is implicit), and when extra whitespace already
// follows Right. The latter relies on a cooperating extra-space rule to
// report that condition; silencing it here avoids duplicate, contradictory
// offenses on the same gap.
func RequireSpaceOffenses(ctx *RuleContext, ruleID string, chk SurroundingCheck) []Diagnostic {
	buf := ctx.Buffer
	var diags []Diagnostic

	if !chk.StartOK && chk.Left != nil && !SpaceAfter(buf, *chk.Left) {
		r := SideSpaceRange(buf, chk.Left.Range(), SideRight)
		diags = append(diags, spaceDiagnostic(ctx, ruleID, chk.Message, CmdUse, r, insertEdit(chk.Left.EndOffset)))
	}

	if chk.Right != nil && !chk.EndOK && !SpaceAfter(buf, *chk.Right) && !SpaceBefore(buf, *chk.Right) {
		r := SideSpaceRange(buf, chk.Right.Range(), SideLeft)
		diags = append(diags, spaceDiagnostic(ctx, ruleID, chk.Message, CmdUse, r, insertEdit(chk.Right.StartOffset)))
	}

	return diags
}

// CorrectNoSpace queues deletions for whitespace adjacent to the pair.
// Running it against already-corrected text queues nothing: the probes
// re-check the buffer, so the correction is idempotent.
func CorrectNoSpace(buf *source.Buffer, builder *fix.EditBuilder, left, right *source.Token) {
	if left != nil && SpaceAfter(buf, *left) {
		builder.DeleteRange(SideSpaceRange(buf, left.Range(), SideRight))
	}
	if right != nil && SpaceBefore(buf, *right) {
		builder.DeleteRange(SideSpaceRange(buf, right.Range(), SideLeft))
	}
}

// CorrectRequireSpace queues single-space insertions where whitespace is
// missing around the pair. Idempotent for the same reason as CorrectNoSpace.
func CorrectRequireSpace(buf *source.Buffer, builder *fix.EditBuilder, left, right *source.Token) {
	if left != nil && !SpaceAfter(buf, *left) {
		builder.InsertAt(left.EndOffset, " ")
	}
	if right != nil && !SpaceBefore(buf, *right) {
		builder.InsertAt(right.StartOffset, " ")
	}
}

// spaceDiagnostic builds one offense pinned to the whitespace range r.
func spaceDiagnostic(
	ctx *RuleContext,
	ruleID, template, command string,
	r source.Range,
	edit fix.TextEdit,
) Diagnostic {
	return NewDiagnosticForRange(ruleID, ctx.Buffer, r, RenderMessage(template, command)).
		WithEdit(edit).
		Build()
}

func deleteEdit(r source.Range) fix.TextEdit {
	return fix.TextEdit{Start: r.Start, End: r.End}
}

func insertEdit(offset int) fix.TextEdit {
	return fix.TextEdit{Start: offset, End: offset, NewText: " "}
}
