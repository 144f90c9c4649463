package scanner

import "github.com/yaklabco/spacelint/pkg/source"

// Parse tokenizes content and builds the delimiter-group structure,
// returning a fully populated Buffer ready for one analysis pass.
func Parse(path string, content []byte) *source.Buffer {
	buf := source.NewBuffer(path, content)
	buf.Tokens = Tokenize(content)
	buf.Root = buildGroups(buf)
	return buf
}

// buildGroups walks the token stream once and nests a NodeGroup for every
// balanced (), [] or {} pair. Stray closers are ignored; unterminated groups
// extend to the last token and keep CloseToken == -1.
func buildGroups(buf *source.Buffer) *source.Node {
	root := source.NewNode(source.NodeSource)
	root.Buffer = buf
	if len(buf.Tokens) > 0 {
		root.FirstToken = 0
		root.LastToken = len(buf.Tokens) - 1
	}

	// Stack of currently open groups; root sits at the bottom.
	stack := []*source.Node{root}

	for i, tok := range buf.Tokens {
		switch {
		case tok.IsOpenDelimiter():
			group := source.NewNode(source.NodeGroup)
			group.Buffer = buf
			group.FirstToken = i
			group.Group = &source.GroupAttrs{
				Delim:      buf.Content[tok.StartOffset],
				OpenToken:  i,
				CloseToken: -1,
			}
			source.AppendChild(stack[len(stack)-1], group)
			stack = append(stack, group)

		case tok.IsCloseDelimiter():
			top := stack[len(stack)-1]
			if top.Kind != source.NodeGroup || !closes(top.Group.Delim, tok.Kind) {
				// Stray or mismatched closer; leave the structure as-is.
				continue
			}
			top.LastToken = i
			top.Group.CloseToken = i
			stack = stack[:len(stack)-1]
		}
	}

	// Unterminated groups span to the end of the token stream.
	for len(stack) > 1 {
		top := stack[len(stack)-1]
		top.LastToken = len(buf.Tokens) - 1
		stack = stack[:len(stack)-1]
	}

	return root
}

// closes reports whether kind is the closing delimiter for open.
func closes(open byte, kind source.TokenKind) bool {
	switch open {
	case '(':
		return kind == source.TokParenClose
	case '[':
		return kind == source.TokBracketClose
	case '{':
		return kind == source.TokBraceClose
	default:
		return false
	}
}
