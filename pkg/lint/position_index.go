package lint

import (
	"fmt"

	"github.com/yaklabco/spacelint/pkg/source"
)

// PositionIndex maps token start positions (1-based line, column) to token
// sequence indices, enabling "which token starts exactly here" lookups.
//
// The index is built once per analysis pass from the full ordered token list
// and is read-only afterwards. When two tokens report the same start
// position (only possible with synthetic tokens), the later token wins.
type PositionIndex struct {
	buf   *source.Buffer
	table map[int]map[int]int // line -> column -> token index
}

// NewPositionIndex builds the index for one buffer's token stream.
// Cost is O(total tokens).
func NewPositionIndex(buf *source.Buffer) *PositionIndex {
	idx := &PositionIndex{
		buf:   buf,
		table: make(map[int]map[int]int, len(buf.Lines)),
	}

	for i, tok := range buf.Tokens {
		line, col := buf.LineAt(tok.StartOffset)
		cols, ok := idx.table[line]
		if !ok {
			cols = make(map[int]int)
			idx.table[line] = cols
		}
		cols[col] = i
	}

	return idx
}

// IndexOfFirstToken returns the sequence index of the token starting exactly
// at the node's start position.
//
// Well-formed nodes always begin at a token boundary; a miss means the
// caller handed in a malformed node, which is a programming error, so this
// panics rather than absorbing it.
func (idx *PositionIndex) IndexOfFirstToken(node *source.Node) int {
	span := node.Span()
	if i, ok := idx.lookup(span.StartLine, span.StartColumn); ok {
		return i
	}
	panic(fmt.Sprintf("lint: no token starts at %d:%d (node does not begin at a token boundary)",
		span.StartLine, span.StartColumn))
}

// IndexOfLastToken returns the sequence index of the last token starting at
// or before the node's end column on the node's last line. The boolean is
// false when no token starts there, a legitimate outcome for degenerate or
// empty spans that callers must branch on.
func (idx *PositionIndex) IndexOfLastToken(node *source.Node) (int, bool) {
	span := node.Span()
	for col := span.EndColumn; col >= 1; col-- {
		if i, ok := idx.lookup(span.EndLine, col); ok {
			return i, true
		}
	}
	return 0, false
}

// lookup returns the token index registered at (line, col), if any.
func (idx *PositionIndex) lookup(line, col int) (int, bool) {
	cols, ok := idx.table[line]
	if !ok {
		return 0, false
	}
	i, ok := cols[col]
	return i, ok
}
