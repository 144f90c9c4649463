package lint

import (
	"iter"

	"github.com/yaklabco/spacelint/pkg/source"
)

// TokensWithin returns a lazy, restartable sequence of the tokens whose full
// range lies inside the node's source range, paired with their sequence
// indices, in original token order. Rules use it to pick specific interior
// tokens, e.g. the first token after an opening bracket.
func TokensWithin(node *source.Node) iter.Seq2[int, source.Token] {
	return func(yield func(int, source.Token) bool) {
		if node == nil || node.Buffer == nil {
			return
		}

		nodeRange := node.SourceRange()
		first, last := tokenScanBounds(node)

		for i := first; i <= last && i < len(node.Buffer.Tokens); i++ {
			tok := node.Buffer.Tokens[i]
			if !nodeRange.Covers(tok.Range()) {
				continue
			}
			if !yield(i, tok) {
				return
			}
		}
	}
}

// FirstTokenWithin returns the first token inside node matching pred,
// skipping whitespace and newline tokens. The boolean is false if none match.
func FirstTokenWithin(node *source.Node, pred func(source.Token) bool) (int, source.Token, bool) {
	for i, tok := range TokensWithin(node) {
		if tok.Kind == source.TokWhitespace || tok.Kind == source.TokNewline {
			continue
		}
		if pred(tok) {
			return i, tok, true
		}
	}
	return 0, source.Token{}, false
}

// tokenScanBounds narrows the scan to the node's own token span when the
// node carries one; nodes without a span fall back to the full stream.
func tokenScanBounds(node *source.Node) (int, int) {
	if node.FirstToken >= 0 && node.LastToken >= node.FirstToken {
		return node.FirstToken, node.LastToken
	}
	return 0, len(node.Buffer.Tokens) - 1
}
